package sections

import (
	"context"
	"fmt"
	"strings"

	"github.com/proposta-ai/propgen/internal/agent"
	"github.com/proposta-ai/propgen/internal/proposal"
	"github.com/proposta-ai/propgen/internal/template"
)

type planDTO struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         int      `json:"price"`
	Period        string   `json:"period"`
	IncludedItems []string `json:"includedItems"`
}

type investmentDTO struct {
	Title string    `json:"title"`
	Plans []planDTO `json:"plans"`
}

// Investment generates the pricing block: the section heading plus the plan
// list, shaped into final form.
func Investment(ctx context.Context, c Completer, in Input) (proposal.Investment, []proposal.Plan, Outcome) {
	spec, _ := in.Contract.Spec(template.SectionInvestment)

	dto, models, err := run[investmentDTO](ctx, c, in, template.SectionInvestment, spec)
	if err != nil {
		inv, plans := fallbackInvestment(in, spec)
		return inv, plans, Outcome{Fallback: true}
	}

	inv := proposal.Investment{Title: fitField(dto.Title, spec.Fields["title"])}
	return inv, shapePlans(dto.Plans, in, spec), Outcome{ModelsUsed: models}
}

func shapePlans(dtos []planDTO, in Input, spec template.SectionSpec) []proposal.Plan {
	col := spec.Collections["plans"]
	nested := col.ItemCollections["includedItems"]

	// Surplus plans are dropped deterministically; a shortfall is left for
	// the validator to reject.
	if len(dtos) > in.PlanCount {
		dtos = dtos[:in.PlanCount]
	}

	plans := make([]proposal.Plan, 0, len(dtos))
	for i, dto := range dtos {
		price := dto.Price
		if price <= 0 {
			price = tierPrice(in.Agent.PricingModel, i)
		}
		items := fitIncludedItems(dto.IncludedItems, nested, in.Agent)
		plans = append(plans, proposal.Plan{
			ID:            newID(),
			Title:         fitField(dto.Title, col.Item["title"]),
			Description:   fitField(dto.Description, col.Item["description"]),
			Price:         price,
			PriceLabel:    proposal.FormatPrice(price),
			Period:        normalizePeriod(dto.Period, in.Agent.PricingModel),
			IncludedItems: items,
			SortOrder:     i,
			Hidden:        false,
		})
	}
	assignRecommended(plans)
	return plans
}

func fallbackInvestment(in Input, spec template.SectionSpec) (proposal.Investment, []proposal.Plan) {
	col := spec.Collections["plans"]
	nested := col.ItemCollections["includedItems"]

	plans := make([]proposal.Plan, 0, in.PlanCount)
	for i := 0; i < in.PlanCount; i++ {
		price := tierPrice(in.Agent.PricingModel, i)
		label := fmt.Sprintf("Plano %d", i+1)
		if i < len(in.PlanLabels) {
			label = in.PlanLabels[i]
		}
		plans = append(plans, proposal.Plan{
			ID:            newID(),
			Title:         fitField(label, col.Item["title"]),
			Description:   fitField(fmt.Sprintf("Plano %s com escopo ajustado ao projeto.", label), col.Item["description"]),
			Price:         price,
			PriceLabel:    proposal.FormatPrice(price),
			Period:        defaultPeriod(in.Agent.PricingModel),
			IncludedItems: fitIncludedItems(nil, nested, in.Agent),
			SortOrder:     i,
			Hidden:        false,
		})
	}
	assignRecommended(plans)

	return proposal.Investment{Title: fitField("Investimento", spec.Fields["title"])}, plans
}

// fitIncludedItems fits a plan's deliverable list to the nested bound,
// padding from the agent's common services and then from neutral defaults.
func fitIncludedItems(items []string, col template.CollectionConstraint, a *agent.Config) []string {
	padding := append([]string{}, a.CommonServices...)
	padding = append(padding,
		"Suporte por e-mail",
		"Relatório de acompanhamento",
		"Reunião de alinhamento",
	)

	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		out = append(out, item)
	}
	out = fitCount(out, col, func(i int) string {
		return padding[i%len(padding)]
	})
	if col.Element != nil {
		for i := range out {
			out[i] = fitField(out[i], *col.Element)
		}
	}
	return out
}

// tierPrice returns the fallback price for a plan tier, derived from how the
// sector usually charges. Tiers scale roughly 1x / 1.8x / 3x.
func tierPrice(model agent.PricingModel, tier int) int {
	base := 5000
	switch model {
	case agent.PricingMonthlyRetainer:
		base = 2500
	case agent.PricingProjectBased:
		base = 5000
	case agent.PricingHourlyOrProject:
		base = 4500
	case agent.PricingProjectPercentage:
		base = 8000
	case agent.PricingSessionBased:
		base = 1200
	case agent.PricingConsultationBased:
		base = 1800
	}
	multipliers := []float64{1.0, 1.8, 3.0}
	m := multipliers[0]
	if tier < len(multipliers) {
		m = multipliers[tier]
	}
	price := int(float64(base) * m)
	return price - price%100
}

func defaultPeriod(model agent.PricingModel) proposal.PlanPeriod {
	if model == agent.PricingMonthlyRetainer {
		return proposal.PeriodMonthly
	}
	return proposal.PeriodOneTime
}

// normalizePeriod maps the period strings models actually produce onto the
// enum, falling back to the sector's default billing period.
func normalizePeriod(raw string, model agent.PricingModel) proposal.PlanPeriod {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "monthly", "mensal", "por mês":
		return proposal.PeriodMonthly
	case "one-time", "one_time", "onetime", "one time", "único", "unico", "única", "unica":
		return proposal.PeriodOneTime
	case "yearly", "annual", "anual":
		return proposal.PeriodYearly
	default:
		return defaultPeriod(model)
	}
}
