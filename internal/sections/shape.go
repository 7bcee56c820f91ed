package sections

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/proposta-ai/propgen/internal/proposal"
	"github.com/proposta-ai/propgen/internal/template"
)

// fitField fits a string to a field constraint, counting runes. Max-mode
// fields are truncated at a rune boundary; exact-mode fields are truncated or
// right-padded so the measured width always matches.
func fitField(s string, fc template.FieldConstraint) string {
	s = strings.TrimSpace(s)
	if fc.Limit == 0 {
		return s
	}
	runes := []rune(s)
	if fc.Mode == template.ModeExact {
		if len(runes) > fc.Limit {
			return string(runes[:fc.Limit])
		}
		if len(runes) < fc.Limit {
			return s + strings.Repeat(" ", fc.Limit-len(runes))
		}
		return s
	}
	if len(runes) > fc.Limit {
		return strings.TrimSpace(string(runes[:fc.Limit]))
	}
	return s
}

// fitCount fits a slice to a collection's cardinality bound: extra entries
// are dropped, missing ones are supplied by pad(i).
func fitCount[T any](items []T, col template.CollectionConstraint, pad func(i int) T) []T {
	min, max := col.Min, col.Max
	if col.Exact > 0 {
		min, max = col.Exact, col.Exact
	}
	if max > 0 && len(items) > max {
		items = items[:max]
	}
	for i := len(items); i < min; i++ {
		items = append(items, pad(i))
	}
	return items
}

func newID() string {
	return uuid.NewString()
}

// finishTopics assigns identity and ordering to already-fitted topics.
func finishTopics(topics []proposal.Topic) []proposal.Topic {
	for i := range topics {
		topics[i].ID = newID()
		topics[i].SortOrder = i
		topics[i].Hidden = false
	}
	return topics
}

// assignRecommended applies the price-rank recommendation rule in place:
// two plans recommend the pricier one, three recommend the middle, a single
// plan carries no recommendation.
func assignRecommended(plans []proposal.Plan) {
	for i := range plans {
		plans[i].Recommended = false
	}
	if len(plans) < 2 {
		return
	}

	prices := make([]int, len(plans))
	for i, p := range plans {
		prices[i] = p.Price
	}
	sort.Ints(prices)

	var target int
	if len(plans) == 2 {
		target = prices[len(prices)-1]
	} else {
		target = prices[1]
	}
	for i := range plans {
		if plans[i].Price == target {
			plans[i].Recommended = true
			return
		}
	}
}
