// Package proposal defines the generation request, the produced proposal
// tree, and the validator that enforces the template contract over it.
package proposal

// PlanPeriod is the billing period of a plan.
type PlanPeriod string

const (
	PeriodMonthly PlanPeriod = "monthly"
	PeriodOneTime PlanPeriod = "one-time"
	PeriodYearly  PlanPeriod = "yearly"
)

// Introduction is the proposal cover section.
type Introduction struct {
	Title       string `json:"title" validate:"required"`
	Subtitle    string `json:"subtitle" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// AboutUs presents the company.
type AboutUs struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// TeamMember is one entry of the team section.
type TeamMember struct {
	ID        string `json:"id" validate:"required,uuid4"`
	Name      string `json:"name" validate:"required"`
	Role      string `json:"role" validate:"required"`
	SortOrder int    `json:"sortOrder"`
	Hidden    bool   `json:"hidden"`
}

// Team presents the people behind the project. Absent in styles without a
// team section.
type Team struct {
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description" validate:"required"`
	Members     []TeamMember `json:"members" validate:"dive"`
}

// Topic is one titled entry in a list section (specialties, steps).
type Topic struct {
	ID          string `json:"id" validate:"required,uuid4"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	SortOrder   int    `json:"sortOrder"`
	Hidden      bool   `json:"hidden"`
}

// Specialties lists the company's relevant expertise.
type Specialties struct {
	Title  string  `json:"title" validate:"required"`
	Topics []Topic `json:"topics" validate:"dive"`
}

// Steps describes the working process.
type Steps struct {
	Title  string  `json:"title" validate:"required"`
	Topics []Topic `json:"topics" validate:"dive"`
}

// Investment heads the pricing block.
type Investment struct {
	Title string `json:"title" validate:"required"`
}

// Plan is one pricing option. Price is an integer amount in BRL; PriceLabel
// is the display form ("R$3.500", no whitespace, no cents).
type Plan struct {
	ID            string     `json:"id" validate:"required,uuid4"`
	Title         string     `json:"title" validate:"required"`
	Description   string     `json:"description" validate:"required"`
	Price         int        `json:"price" validate:"gt=0"`
	PriceLabel    string     `json:"priceLabel" validate:"required"`
	Period        PlanPeriod `json:"period" validate:"required,oneof=monthly one-time yearly"`
	Recommended   bool       `json:"recommended"`
	IncludedItems []string   `json:"includedItems" validate:"min=1,dive,required"`
	SortOrder     int        `json:"sortOrder"`
	Hidden        bool       `json:"hidden"`
}

// TermItem is one terms-and-conditions entry.
type TermItem struct {
	ID          string `json:"id" validate:"required,uuid4"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	SortOrder   int    `json:"sortOrder"`
}

// Terms is the optional terms section.
type Terms struct {
	Items []TermItem `json:"items" validate:"min=1,dive"`
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	ID        string `json:"id" validate:"required,uuid4"`
	Question  string `json:"question" validate:"required"`
	Answer    string `json:"answer" validate:"required"`
	SortOrder int    `json:"sortOrder"`
}

// FAQ is the optional frequently-asked-questions section.
type FAQ struct {
	Items []FAQItem `json:"items" validate:"min=1,dive"`
}

// Footer closes the proposal. Email and Phone come from the caller's company
// info and are structurally validated when present.
type Footer struct {
	CallToAction string `json:"callToAction" validate:"required"`
	Validity     string `json:"validity" validate:"required"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string `json:"phone,omitempty"`
}

// Proposal is the produced artifact: a tree of named sections. It is built
// section by section by the orchestrator, validated once, and never mutated
// afterwards.
type Proposal struct {
	Introduction Introduction `json:"introduction"`
	AboutUs      AboutUs      `json:"aboutUs"`
	Team         *Team        `json:"team,omitempty"`
	Specialties  Specialties  `json:"specialties"`
	Steps        Steps        `json:"steps"`
	Investment   Investment   `json:"investment"`
	Plans        []Plan       `json:"plans" validate:"min=1,max=3,dive"`
	Terms        *Terms       `json:"terms,omitempty"`
	FAQ          *FAQ         `json:"faq,omitempty"`
	Footer       Footer       `json:"footer"`
}
