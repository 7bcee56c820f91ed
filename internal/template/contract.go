// Package template declares the per-style section contracts: for every
// proposal section, the prompt template sent to the model, the expected JSON
// shape, and the character and cardinality constraints.
//
// A contract is the single source of truth for its limits. The same
// FieldConstraint that renders the limit line inside the prompt text is the
// one the validator enforces after generation, so the two can never drift.
package template

import (
	"fmt"
	"sort"
	"strings"
)

// Style names a proposal template profile. Each style carries its own
// per-section prompts and constraints.
type Style string

const (
	StyleFlash   Style = "flash"
	StylePrime   Style = "prime"
	StyleMinimal Style = "minimal"
)

// Section names a subtree of the generated proposal.
type Section string

const (
	SectionIntroduction Section = "introduction"
	SectionAboutUs      Section = "aboutUs"
	SectionTeam         Section = "team"
	SectionSpecialties  Section = "specialties"
	SectionSteps        Section = "steps"
	SectionInvestment   Section = "investment"
	SectionTerms        Section = "terms"
	SectionFAQ          Section = "faq"
	SectionFooter       Section = "footer"
)

// Mode selects how a character limit is applied.
type Mode string

const (
	// ModeMax allows any length up to the limit.
	ModeMax Mode = "max"
	// ModeExact requires the field to measure exactly the limit, in runes.
	ModeExact Mode = "exact"
)

// FieldConstraint bounds a scalar string field. Limits are rune counts.
type FieldConstraint struct {
	Limit int
	Mode  Mode
}

// Describe renders the constraint as a prompt instruction in the content
// language.
func (c FieldConstraint) Describe() string {
	if c.Mode == ModeExact {
		return fmt.Sprintf("exatamente %d caracteres", c.Limit)
	}
	return fmt.Sprintf("no máximo %d caracteres", c.Limit)
}

// CollectionConstraint bounds an ordered collection. When Exact is non-zero
// it overrides Min/Max. Item constrains object elements field by field,
// Element constrains plain-string elements, and ItemCollections constrains
// nested collections inside each element.
type CollectionConstraint struct {
	Min   int
	Max   int
	Exact int

	Item            map[string]FieldConstraint
	Element         *FieldConstraint
	ItemCollections map[string]CollectionConstraint
}

// Describe renders the cardinality bound as a prompt instruction.
func (c CollectionConstraint) Describe() string {
	if c.Exact > 0 {
		return fmt.Sprintf("exatamente %d itens", c.Exact)
	}
	return fmt.Sprintf("entre %d e %d itens", c.Min, c.Max)
}

// Fits reports whether a collection of length n satisfies the bound.
func (c CollectionConstraint) Fits(n int) bool {
	if c.Exact > 0 {
		return n == c.Exact
	}
	return n >= c.Min && n <= c.Max
}

// SectionSpec is the full generation contract for one section: the literal
// prompt template (with {placeholder} names), the expected-output descriptor
// shown to the model, and the constraint set.
type SectionSpec struct {
	Prompt      string
	Format      string
	Fields      map[string]FieldConstraint
	Collections map[string]CollectionConstraint
}

// Contract is the immutable per-style section map. Contracts are declared
// once at package init and shared read-only across concurrent requests.
type Contract struct {
	Style    Style
	MinPlans int
	MaxPlans int
	Sections map[Section]SectionSpec
}

// ForStyle returns the contract for a template style.
func ForStyle(s Style) (*Contract, error) {
	switch s {
	case StyleFlash:
		return flashContract, nil
	case StylePrime:
		return primeContract, nil
	case StyleMinimal:
		return minimalContract, nil
	default:
		return nil, fmt.Errorf("unknown template style: %q", s)
	}
}

// Styles lists the known template styles.
func Styles() []Style {
	return []Style{StyleFlash, StylePrime, StyleMinimal}
}

// ClampPlanCount clamps a requested plan count into the contract's supported
// range. Counts outside the range are an input-normalization concern, not a
// validation failure.
func (c *Contract) ClampPlanCount(n int) int {
	if n < c.MinPlans {
		return c.MinPlans
	}
	if n > c.MaxPlans {
		return c.MaxPlans
	}
	return n
}

// Spec returns the section spec, reporting whether the section exists in
// this style.
func (c *Contract) Spec(s Section) (SectionSpec, bool) {
	spec, ok := c.Sections[s]
	return spec, ok
}

// newSectionSpec assembles a SectionSpec, appending the rendered limit lines
// and the expected format to the base prompt so the model always sees the
// exact bounds the validator will enforce.
func newSectionSpec(base, format string, fields map[string]FieldConstraint, collections map[string]CollectionConstraint) SectionSpec {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(base))
	b.WriteString("\n\nLimites obrigatórios (contagem de caracteres):\n")

	for _, name := range sortedKeys(fields) {
		fmt.Fprintf(&b, "- %q: %s\n", name, fields[name].Describe())
	}
	for _, name := range sortedKeys(collections) {
		col := collections[name]
		fmt.Fprintf(&b, "- %q: %s\n", name, col.Describe())
		for _, item := range sortedKeys(col.Item) {
			fmt.Fprintf(&b, "  - %q: %s\n", item, col.Item[item].Describe())
		}
		if col.Element != nil {
			fmt.Fprintf(&b, "  - cada item: %s\n", col.Element.Describe())
		}
		for _, nested := range sortedKeys(col.ItemCollections) {
			nc := col.ItemCollections[nested]
			fmt.Fprintf(&b, "  - %q: %s\n", nested, nc.Describe())
			if nc.Element != nil {
				fmt.Fprintf(&b, "    - cada item: %s\n", nc.Element.Describe())
			}
		}
	}

	b.WriteString("\nResponda SOMENTE com JSON válido, sem texto antes ou depois, no formato:\n")
	b.WriteString(strings.TrimSpace(format))

	return SectionSpec{
		Prompt:      b.String(),
		Format:      strings.TrimSpace(format),
		Fields:      fields,
		Collections: collections,
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
