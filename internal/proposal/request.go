package proposal

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PlanSelection accepts the two wire forms callers use for plan selection:
// a bare count (`"selectedPlans": 2`) or an explicit list of plan labels
// (`"selectedPlans": ["Essencial", "Completo"]`).
type PlanSelection struct {
	Count int
	Names []string
}

// UnmarshalJSON implements the number-or-string-list contract.
func (p *PlanSelection) UnmarshalJSON(data []byte) error {
	var count int
	if err := json.Unmarshal(data, &count); err == nil {
		p.Count = count
		p.Names = nil
		return nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		p.Names = names
		p.Count = len(names)
		return nil
	}
	return fmt.Errorf("selectedPlans must be a number or a list of plan names")
}

// MarshalJSON renders the richer of the two forms.
func (p PlanSelection) MarshalJSON() ([]byte, error) {
	if len(p.Names) > 0 {
		return json.Marshal(p.Names)
	}
	return json.Marshal(p.Count)
}

// Labels returns the plan labels to feed the prompt, synthesizing numbered
// defaults when the caller only provided a count.
func (p PlanSelection) Labels(n int) []string {
	if len(p.Names) >= n {
		return p.Names[:n]
	}
	defaults := []string{"Essencial", "Profissional", "Completo"}
	labels := make([]string, 0, n)
	labels = append(labels, p.Names...)
	for i := len(labels); i < n; i++ {
		labels = append(labels, defaults[i%len(defaults)])
	}
	return labels
}

// Request is the caller-supplied generation input. It is constructed once
// per incoming request, never mutated, and shared by reference across the
// section generators.
type Request struct {
	SelectedService    string        `json:"selectedService" validate:"required"`
	ClientName         string        `json:"clientName" validate:"required"`
	ProjectName        string        `json:"projectName" validate:"required"`
	ProjectDescription string        `json:"projectDescription" validate:"required"`
	CompanyInfo        string        `json:"companyInfo,omitempty"`
	CompanyEmail       string        `json:"companyEmail,omitempty" validate:"omitempty,email"`
	CompanyPhone       string        `json:"companyPhone,omitempty"`
	SelectedPlans      PlanSelection `json:"selectedPlans"`
	PlanDetails        string        `json:"planDetails,omitempty"`
	IncludeTerms       bool          `json:"includeTerms"`
	IncludeFAQ         bool          `json:"includeFAQ"`
	TemplateType       string        `json:"templateType" validate:"required"`
	MainColor          string        `json:"mainColor,omitempty"`
}

// Normalize trims free-text inputs in place on a copy and returns it.
func (r Request) Normalize() Request {
	r.SelectedService = strings.TrimSpace(strings.ToLower(r.SelectedService))
	r.ClientName = strings.TrimSpace(r.ClientName)
	r.ProjectName = strings.TrimSpace(r.ProjectName)
	r.ProjectDescription = strings.TrimSpace(r.ProjectDescription)
	r.CompanyInfo = strings.TrimSpace(r.CompanyInfo)
	r.PlanDetails = strings.TrimSpace(r.PlanDetails)
	r.TemplateType = strings.TrimSpace(strings.ToLower(r.TemplateType))
	return r
}
