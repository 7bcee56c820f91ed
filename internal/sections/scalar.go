package sections

import (
	"context"
	"fmt"

	"github.com/proposta-ai/propgen/internal/proposal"
	"github.com/proposta-ai/propgen/internal/template"
)

type introductionDTO struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}

// Introduction generates the proposal cover section.
func Introduction(ctx context.Context, c Completer, in Input) (proposal.Introduction, Outcome) {
	spec, _ := in.Contract.Spec(template.SectionIntroduction)

	dto, models, err := run[introductionDTO](ctx, c, in, template.SectionIntroduction, spec)
	if err != nil {
		return fallbackIntroduction(in, spec), Outcome{Fallback: true}
	}
	return proposal.Introduction{
		Title:       fitField(dto.Title, spec.Fields["title"]),
		Subtitle:    fitField(dto.Subtitle, spec.Fields["subtitle"]),
		Description: fitField(dto.Description, spec.Fields["description"]),
	}, Outcome{ModelsUsed: models}
}

func fallbackIntroduction(in Input, spec template.SectionSpec) proposal.Introduction {
	title := fmt.Sprintf("Proposta para %s", in.Request.ProjectName)
	subtitle := fmt.Sprintf("Preparada especialmente para %s", in.Request.ClientName)
	description := in.Request.ProjectDescription
	if description == "" {
		description = fmt.Sprintf(
			"Esta proposta apresenta nossa abordagem para o projeto %s, com escopo, processo e investimento detalhados nas próximas seções.",
			in.Request.ProjectName)
	}
	return proposal.Introduction{
		Title:       fitField(title, spec.Fields["title"]),
		Subtitle:    fitField(subtitle, spec.Fields["subtitle"]),
		Description: fitField(description, spec.Fields["description"]),
	}
}

type aboutUsDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AboutUs generates the company presentation section.
func AboutUs(ctx context.Context, c Completer, in Input) (proposal.AboutUs, Outcome) {
	spec, _ := in.Contract.Spec(template.SectionAboutUs)

	dto, models, err := run[aboutUsDTO](ctx, c, in, template.SectionAboutUs, spec)
	if err != nil {
		return fallbackAboutUs(in, spec), Outcome{Fallback: true}
	}
	return proposal.AboutUs{
		Title:       fitField(dto.Title, spec.Fields["title"]),
		Description: fitField(dto.Description, spec.Fields["description"]),
	}, Outcome{ModelsUsed: models}
}

func fallbackAboutUs(in Input, spec template.SectionSpec) proposal.AboutUs {
	description := in.Request.CompanyInfo
	if description == "" {
		description = fmt.Sprintf(
			"Somos uma equipe especializada em %s, com processo estruturado e foco em resultado. Trabalhamos próximos ao cliente em cada etapa, do diagnóstico à entrega.",
			in.Agent.Name)
	}
	return proposal.AboutUs{
		Title:       fitField("Sobre nós", spec.Fields["title"]),
		Description: fitField(description, spec.Fields["description"]),
	}
}

type footerDTO struct {
	CallToAction string `json:"callToAction"`
	Validity     string `json:"validity"`
}

// Footer generates the closing section. Contact fields come straight from
// the request, never from the model.
func Footer(ctx context.Context, c Completer, in Input) (proposal.Footer, Outcome) {
	spec, _ := in.Contract.Spec(template.SectionFooter)

	dto, models, err := run[footerDTO](ctx, c, in, template.SectionFooter, spec)
	if err != nil {
		return fallbackFooter(in, spec), Outcome{Fallback: true}
	}
	f := proposal.Footer{
		CallToAction: fitField(dto.CallToAction, spec.Fields["callToAction"]),
		Validity:     fitField(dto.Validity, spec.Fields["validity"]),
	}
	applyContact(&f, in)
	return f, Outcome{ModelsUsed: models}
}

func fallbackFooter(in Input, spec template.SectionSpec) proposal.Footer {
	f := proposal.Footer{
		CallToAction: fitField("Aprove a proposta e vamos começar.", spec.Fields["callToAction"]),
		Validity:     fitField("Válida por 15 dias.", spec.Fields["validity"]),
	}
	applyContact(&f, in)
	return f
}

func applyContact(f *proposal.Footer, in Input) {
	f.Email = in.Request.CompanyEmail
	if proposal.ValidPhone(in.Request.CompanyPhone) {
		f.Phone = in.Request.CompanyPhone
	}
}
