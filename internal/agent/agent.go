// Package agent holds the sector-specific generation profiles and the
// registry that resolves one from a (sector, template style) pair.
package agent

import (
	"errors"
	"fmt"

	"github.com/proposta-ai/propgen/internal/template"
)

// ErrAgentNotFound is returned when no configuration exists for a requested
// (sector, template style) pair. Callers must treat it as a hard stop for the
// whole generation request; no sector default is silently substituted.
var ErrAgentNotFound = errors.New("agent not found")

// Sector identifies a service sector.
type Sector string

const (
	SectorDesign       Sector = "design"
	SectorArchitecture Sector = "architecture"
	SectorMarketing    Sector = "marketing"
	SectorDevelopment  Sector = "development"
	SectorConsulting   Sector = "consulting"
	SectorPhotography  Sector = "photography"
)

// Sectors lists the built-in sectors.
func Sectors() []Sector {
	return []Sector{
		SectorDesign, SectorArchitecture, SectorMarketing,
		SectorDevelopment, SectorConsulting, SectorPhotography,
	}
}

// ParseSector validates a sector label.
func ParseSector(s string) (Sector, error) {
	for _, known := range Sectors() {
		if Sector(s) == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown sector: %q", s)
}

// PricingModel tags how a sector usually charges.
type PricingModel string

const (
	PricingMonthlyRetainer   PricingModel = "monthly-retainer"
	PricingProjectBased      PricingModel = "project-based"
	PricingHourlyOrProject   PricingModel = "hourly-or-project"
	PricingProjectPercentage PricingModel = "project-percentage"
	PricingSessionBased      PricingModel = "session-based"
	PricingConsultationBased PricingModel = "consultation-based"
)

// StyleProfile tunes the writing of each section for a template style.
type StyleProfile struct {
	IntroductionStyle   string `yaml:"introductionStyle" json:"introductionStyle"`
	AboutUsFocus        string `yaml:"aboutUsFocus" json:"aboutUsFocus"`
	SpecialtiesApproach string `yaml:"specialtiesApproach" json:"specialtiesApproach"`
	ProcessEmphasis     string `yaml:"processEmphasis" json:"processEmphasis"`
	InvestmentStrategy  string `yaml:"investmentStrategy" json:"investmentStrategy"`
}

// Config is a sector-specific generation profile. Configs are registered at
// startup and shared read-only across concurrent requests.
type Config struct {
	ID                string            `yaml:"id" json:"id"`
	Name              string            `yaml:"name" json:"name"`
	Sector            Sector            `yaml:"sector" json:"sector"`
	Style             template.Style    `yaml:"style" json:"style"`
	SystemPrompt      string            `yaml:"systemPrompt" json:"systemPrompt"`
	Expertise         []string          `yaml:"expertise" json:"expertise"`
	CommonServices    []string          `yaml:"commonServices" json:"commonServices"`
	PricingModel      PricingModel      `yaml:"pricingModel" json:"pricingModel"`
	ProposalStructure []string          `yaml:"proposalStructure" json:"proposalStructure"`
	KeyTerms          map[string]string `yaml:"keyTerms" json:"keyTerms"`
	Profile           StyleProfile      `yaml:"profile" json:"profile"`
}

// Registry resolves an agent configuration. Both the static in-memory table
// and the file-backed store satisfy this contract, and the orchestrator
// depends only on it.
type Registry interface {
	// Lookup returns the configuration for the pair, or an error wrapping
	// ErrAgentNotFound when no entry matches.
	Lookup(sector Sector, style template.Style) (*Config, error)
	// List returns all registered configurations.
	List() []*Config
}

// key is the explicit two-column lookup key. No string transformation is
// involved in deriving it.
type key struct {
	sector Sector
	style  template.Style
}

// StaticRegistry is the in-process registry backed by a fixed table.
type StaticRegistry struct {
	entries map[key]*Config
}

// NewStaticRegistry builds a registry from explicit configs. Later entries
// for the same (sector, style) pair win.
func NewStaticRegistry(configs []*Config) *StaticRegistry {
	entries := make(map[key]*Config, len(configs))
	for _, c := range configs {
		entries[key{c.Sector, c.Style}] = c
	}
	return &StaticRegistry{entries: entries}
}

// Lookup implements Registry.
func (r *StaticRegistry) Lookup(sector Sector, style template.Style) (*Config, error) {
	if c, ok := r.entries[key{sector, style}]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("sector %q, style %q: %w", sector, style, ErrAgentNotFound)
}

// List implements Registry.
func (r *StaticRegistry) List() []*Config {
	out := make([]*Config, 0, len(r.entries))
	for _, c := range r.entries {
		out = append(out, c)
	}
	return out
}
