package proposal

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/proposta-ai/propgen/internal/template"
)

var validate = validator.New()

// Validate enforces every declared constraint over a generated proposal:
// struct-level requirements and enums first, then the template contract's
// character and cardinality bounds, then the plan business rules. It stops
// at the first violation and returns a *ValidationError naming the field,
// the declared bound, and the measured value.
//
// wantPlans must already be clamped into the contract's supported range.
func Validate(p *Proposal, contract *template.Contract, wantPlans int) error {
	if err := validate.Struct(p); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			e := verrs[0]
			return violation(e.StructNamespace(), "rule %q", e.Tag(), "value %v", e.Value())
		}
		return err
	}

	if spec, ok := contract.Spec(template.SectionIntroduction); ok {
		if err := checkFields("introduction", spec.Fields, map[string]string{
			"title":       p.Introduction.Title,
			"subtitle":    p.Introduction.Subtitle,
			"description": p.Introduction.Description,
		}); err != nil {
			return err
		}
	}

	if spec, ok := contract.Spec(template.SectionAboutUs); ok {
		if err := checkFields("aboutUs", spec.Fields, map[string]string{
			"title":       p.AboutUs.Title,
			"description": p.AboutUs.Description,
		}); err != nil {
			return err
		}
	}

	if err := validateTeam(p, contract); err != nil {
		return err
	}

	if spec, ok := contract.Spec(template.SectionSpecialties); ok {
		if err := checkField("specialties.title", p.Specialties.Title, spec.Fields["title"]); err != nil {
			return err
		}
		if err := checkTopics("specialties.topics", p.Specialties.Topics, spec.Collections["topics"]); err != nil {
			return err
		}
	}

	if spec, ok := contract.Spec(template.SectionSteps); ok {
		if err := checkField("steps.title", p.Steps.Title, spec.Fields["title"]); err != nil {
			return err
		}
		if err := checkTopics("steps.topics", p.Steps.Topics, spec.Collections["topics"]); err != nil {
			return err
		}
	}

	if err := validatePlans(p, contract, wantPlans); err != nil {
		return err
	}

	if p.Terms != nil {
		if spec, ok := contract.Spec(template.SectionTerms); ok {
			col := spec.Collections["items"]
			if !col.Fits(len(p.Terms.Items)) {
				return violation("terms.items", "%s", col.Describe(), "%d items", len(p.Terms.Items))
			}
			for i, item := range p.Terms.Items {
				path := fmt.Sprintf("terms.items[%d]", i)
				if err := checkField(path+".title", item.Title, col.Item["title"]); err != nil {
					return err
				}
				if err := checkField(path+".description", item.Description, col.Item["description"]); err != nil {
					return err
				}
			}
		}
	}

	if p.FAQ != nil {
		if spec, ok := contract.Spec(template.SectionFAQ); ok {
			col := spec.Collections["items"]
			if !col.Fits(len(p.FAQ.Items)) {
				return violation("faq.items", "%s", col.Describe(), "%d items", len(p.FAQ.Items))
			}
			for i, item := range p.FAQ.Items {
				path := fmt.Sprintf("faq.items[%d]", i)
				if err := checkField(path+".question", item.Question, col.Item["question"]); err != nil {
					return err
				}
				if err := checkField(path+".answer", item.Answer, col.Item["answer"]); err != nil {
					return err
				}
			}
		}
	}

	if spec, ok := contract.Spec(template.SectionFooter); ok {
		if err := checkFields("footer", spec.Fields, map[string]string{
			"callToAction": p.Footer.CallToAction,
			"validity":     p.Footer.Validity,
		}); err != nil {
			return err
		}
	}
	if p.Footer.Phone != "" && !ValidPhone(p.Footer.Phone) {
		return violation("footer.phone", "%s", "a plausible phone number", "%q", p.Footer.Phone)
	}

	return nil
}

func validateTeam(p *Proposal, contract *template.Contract) error {
	spec, ok := contract.Spec(template.SectionTeam)
	if !ok {
		if p.Team != nil {
			return violation("team", "%s", "no team section in this template style", "%s", "present")
		}
		return nil
	}
	if p.Team == nil {
		return violation("team", "%s", "team section present", "%s", "absent")
	}
	if err := checkFields("team", spec.Fields, map[string]string{
		"title":       p.Team.Title,
		"description": p.Team.Description,
	}); err != nil {
		return err
	}
	col := spec.Collections["members"]
	if !col.Fits(len(p.Team.Members)) {
		return violation("team.members", "%s", col.Describe(), "%d items", len(p.Team.Members))
	}
	for i, m := range p.Team.Members {
		path := fmt.Sprintf("team.members[%d]", i)
		if err := checkField(path+".name", m.Name, col.Item["name"]); err != nil {
			return err
		}
		if err := checkField(path+".role", m.Role, col.Item["role"]); err != nil {
			return err
		}
	}
	return nil
}

func validatePlans(p *Proposal, contract *template.Contract, wantPlans int) error {
	spec, ok := contract.Spec(template.SectionInvestment)
	if !ok {
		return nil
	}
	if err := checkField("investment.title", p.Investment.Title, spec.Fields["title"]); err != nil {
		return err
	}

	if len(p.Plans) != wantPlans {
		return violation("plans", "exactly %d plans", wantPlans, "%d", len(p.Plans))
	}

	col := spec.Collections["plans"]
	nested := col.ItemCollections["includedItems"]
	for i, plan := range p.Plans {
		path := fmt.Sprintf("plans[%d]", i)
		if err := checkField(path+".title", plan.Title, col.Item["title"]); err != nil {
			return err
		}
		if err := checkField(path+".description", plan.Description, col.Item["description"]); err != nil {
			return err
		}
		if !ValidPriceLabel(plan.PriceLabel) {
			return violation(path+".priceLabel", "format %s", `R$<dot-grouped integer>`, "%q", plan.PriceLabel)
		}
		if !nested.Fits(len(plan.IncludedItems)) {
			return violation(path+".includedItems", "%s", nested.Describe(), "%d items", len(plan.IncludedItems))
		}
		if nested.Element != nil {
			for j, item := range plan.IncludedItems {
				itemPath := fmt.Sprintf("%s.includedItems[%d]", path, j)
				if err := checkField(itemPath, item, *nested.Element); err != nil {
					return err
				}
			}
		}
	}

	return checkRecommended(p.Plans)
}

// checkRecommended enforces the single-recommendation business rule: with
// two plans the higher-priced one is recommended, with three the
// middle-priced one, and with a single plan a recommendation is optional.
func checkRecommended(plans []Plan) error {
	recommended := -1
	count := 0
	for i, plan := range plans {
		if plan.Recommended {
			recommended = i
			count++
		}
	}

	switch len(plans) {
	case 1:
		if count > 1 {
			return violation("plans", "%s", "at most one recommended plan", "%d recommended", count)
		}
		return nil
	case 2, 3:
		if count != 1 {
			return violation("plans", "%s", "exactly one recommended plan", "%d recommended", count)
		}
	default:
		return violation("plans", "%s", "between 1 and 3 plans", "%d", len(plans))
	}

	prices := make([]int, len(plans))
	for i, plan := range plans {
		prices[i] = plan.Price
	}
	sort.Ints(prices)

	var expectedPrice int
	if len(plans) == 2 {
		expectedPrice = prices[1] // highest
	} else {
		expectedPrice = prices[1] // middle of three, ascending
	}
	if plans[recommended].Price != expectedPrice {
		return violation("plans.recommended", "plan priced %d", expectedPrice, "plan priced %d", plans[recommended].Price)
	}
	return nil
}

func checkFields(path string, constraints map[string]template.FieldConstraint, values map[string]string) error {
	// Iterate the constraint set so every declared field is checked against
	// exactly one constraint.
	for _, name := range sortedNames(constraints) {
		if err := checkField(path+"."+name, values[name], constraints[name]); err != nil {
			return err
		}
	}
	return nil
}

func checkField(path, value string, fc template.FieldConstraint) error {
	if fc.Limit == 0 {
		return nil
	}
	n := utf8.RuneCountInString(value)
	if fc.Mode == template.ModeExact {
		if n != fc.Limit {
			return violation(path, "exactly %d characters", fc.Limit, "%d", n)
		}
		return nil
	}
	if n > fc.Limit {
		return violation(path, "at most %d characters", fc.Limit, "%d", n)
	}
	return nil
}

func checkTopics(path string, topics []Topic, col template.CollectionConstraint) error {
	if !col.Fits(len(topics)) {
		return violation(path, "%s", col.Describe(), "%d items", len(topics))
	}
	for i, topic := range topics {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		if err := checkField(itemPath+".title", topic.Title, col.Item["title"]); err != nil {
			return err
		}
		if err := checkField(itemPath+".description", topic.Description, col.Item["description"]); err != nil {
			return err
		}
	}
	return nil
}

func sortedNames(m map[string]template.FieldConstraint) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
