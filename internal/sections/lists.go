package sections

import (
	"context"
	"fmt"

	"github.com/proposta-ai/propgen/internal/proposal"
	"github.com/proposta-ai/propgen/internal/template"
)

type memberDTO struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type teamDTO struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Members     []memberDTO `json:"members"`
}

// Team generates the team section. Styles without a team section return nil.
func Team(ctx context.Context, c Completer, in Input) (*proposal.Team, Outcome) {
	spec, ok := in.Contract.Spec(template.SectionTeam)
	if !ok {
		return nil, Outcome{}
	}

	dto, models, err := run[teamDTO](ctx, c, in, template.SectionTeam, spec)
	if err != nil {
		return fallbackTeam(in, spec), Outcome{Fallback: true}
	}

	col := spec.Collections["members"]
	members := make([]proposal.TeamMember, 0, len(dto.Members))
	for _, m := range dto.Members {
		members = append(members, proposal.TeamMember{
			Name: fitField(m.Name, col.Item["name"]),
			Role: fitField(m.Role, col.Item["role"]),
		})
	}
	return &proposal.Team{
		Title:       fitField(dto.Title, spec.Fields["title"]),
		Description: fitField(dto.Description, spec.Fields["description"]),
		Members:     finishMembers(members),
	}, Outcome{ModelsUsed: models}
}

func fallbackTeam(in Input, spec template.SectionSpec) *proposal.Team {
	col := spec.Collections["members"]
	members := []proposal.TeamMember{
		{Name: "Equipe de Projeto", Role: "Execução e entregas"},
		{Name: "Atendimento", Role: "Relacionamento com o cliente"},
	}
	members = fitCount(members, col, func(i int) proposal.TeamMember {
		return proposal.TeamMember{
			Name: fmt.Sprintf("Especialista %d", i+1),
			Role: "Suporte ao projeto",
		}
	})
	for i := range members {
		members[i].Name = fitField(members[i].Name, col.Item["name"])
		members[i].Role = fitField(members[i].Role, col.Item["role"])
	}
	return &proposal.Team{
		Title:       fitField("Nossa equipe", spec.Fields["title"]),
		Description: fitField(fmt.Sprintf("Profissionais dedicados ao projeto %s, do planejamento à entrega.", in.Request.ProjectName), spec.Fields["description"]),
		Members:     finishMembers(members),
	}
}

func finishMembers(members []proposal.TeamMember) []proposal.TeamMember {
	for i := range members {
		members[i].ID = newID()
		members[i].SortOrder = i
		members[i].Hidden = false
	}
	return members
}

type topicDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type topicsDTO struct {
	Title  string     `json:"title"`
	Topics []topicDTO `json:"topics"`
}

// Specialties generates the expertise section.
func Specialties(ctx context.Context, c Completer, in Input) (proposal.Specialties, Outcome) {
	spec, _ := in.Contract.Spec(template.SectionSpecialties)

	dto, models, err := run[topicsDTO](ctx, c, in, template.SectionSpecialties, spec)
	if err != nil {
		return fallbackSpecialties(in, spec), Outcome{Fallback: true}
	}
	return proposal.Specialties{
		Title:  fitField(dto.Title, spec.Fields["title"]),
		Topics: shapeTopicDTOs(dto.Topics, spec.Collections["topics"]),
	}, Outcome{ModelsUsed: models}
}

func fallbackSpecialties(in Input, spec template.SectionSpec) proposal.Specialties {
	col := spec.Collections["topics"]
	topics := make([]proposal.Topic, 0, len(in.Agent.Expertise))
	for _, area := range in.Agent.Expertise {
		topics = append(topics, proposal.Topic{
			Title:       fitField(area, col.Item["title"]),
			Description: fitField(fmt.Sprintf("Atuação consolidada em %s, aplicada ao seu projeto.", area), col.Item["description"]),
		})
	}
	topics = fitCount(topics, col, func(i int) proposal.Topic {
		return proposal.Topic{
			Title:       fitField("Atendimento dedicado", col.Item["title"]),
			Description: fitField("Acompanhamento próximo em todas as fases do projeto.", col.Item["description"]),
		}
	})
	return proposal.Specialties{
		Title:  fitField("Especialidades", spec.Fields["title"]),
		Topics: finishTopics(topics),
	}
}

// Steps generates the working-process section.
func Steps(ctx context.Context, c Completer, in Input) (proposal.Steps, Outcome) {
	spec, _ := in.Contract.Spec(template.SectionSteps)

	dto, models, err := run[topicsDTO](ctx, c, in, template.SectionSteps, spec)
	if err != nil {
		return fallbackSteps(in, spec), Outcome{Fallback: true}
	}
	return proposal.Steps{
		Title:  fitField(dto.Title, spec.Fields["title"]),
		Topics: shapeTopicDTOs(dto.Topics, spec.Collections["topics"]),
	}, Outcome{ModelsUsed: models}
}

func fallbackSteps(in Input, spec template.SectionSpec) proposal.Steps {
	col := spec.Collections["topics"]
	topics := make([]proposal.Topic, 0, len(in.Agent.ProposalStructure))
	for _, step := range in.Agent.ProposalStructure {
		topics = append(topics, proposal.Topic{
			Title:       fitField(step, col.Item["title"]),
			Description: fitField("Etapa conduzida com alinhamento e validação junto ao cliente.", col.Item["description"]),
		})
	}
	topics = fitCount(topics, col, func(i int) proposal.Topic {
		return proposal.Topic{
			Title:       fitField("Acompanhamento", col.Item["title"]),
			Description: fitField("Monitoramento contínuo dos resultados após a entrega.", col.Item["description"]),
		}
	})
	return proposal.Steps{
		Title:  fitField("Como trabalhamos", spec.Fields["title"]),
		Topics: finishTopics(topics),
	}
}

func shapeTopicDTOs(dtos []topicDTO, col template.CollectionConstraint) []proposal.Topic {
	topics := make([]proposal.Topic, 0, len(dtos))
	for _, t := range dtos {
		topics = append(topics, proposal.Topic{
			Title:       fitField(t.Title, col.Item["title"]),
			Description: fitField(t.Description, col.Item["description"]),
		})
	}
	return finishTopics(topics)
}

type termDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type termsDTO struct {
	Items []termDTO `json:"items"`
}

// TermsSection generates the optional terms-and-conditions section.
func TermsSection(ctx context.Context, c Completer, in Input) (*proposal.Terms, Outcome) {
	spec, ok := in.Contract.Spec(template.SectionTerms)
	if !ok {
		return nil, Outcome{}
	}

	dto, models, err := run[termsDTO](ctx, c, in, template.SectionTerms, spec)
	if err != nil {
		return fallbackTerms(spec), Outcome{Fallback: true}
	}

	col := spec.Collections["items"]
	items := make([]proposal.TermItem, 0, len(dto.Items))
	for i, t := range dto.Items {
		items = append(items, proposal.TermItem{
			ID:          newID(),
			Title:       fitField(t.Title, col.Item["title"]),
			Description: fitField(t.Description, col.Item["description"]),
			SortOrder:   i,
		})
	}
	return &proposal.Terms{Items: items}, Outcome{ModelsUsed: models}
}

func fallbackTerms(spec template.SectionSpec) *proposal.Terms {
	col := spec.Collections["items"]
	defaults := []proposal.TermItem{
		{Title: "Validade", Description: "Esta proposta é válida por 15 dias a partir da data de envio."},
		{Title: "Pagamento", Description: "50% na aprovação e 50% na entrega, salvo acordo em contrário."},
		{Title: "Escopo", Description: "Alterações de escopo são orçadas à parte mediante alinhamento prévio."},
	}
	defaults = fitCount(defaults, col, func(i int) proposal.TermItem {
		return proposal.TermItem{
			Title:       "Condições gerais",
			Description: "Demais condições são formalizadas em contrato na aprovação.",
		}
	})
	for i := range defaults {
		defaults[i].ID = newID()
		defaults[i].Title = fitField(defaults[i].Title, col.Item["title"])
		defaults[i].Description = fitField(defaults[i].Description, col.Item["description"])
		defaults[i].SortOrder = i
	}
	return &proposal.Terms{Items: defaults}
}

type faqDTO struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type faqListDTO struct {
	Items []faqDTO `json:"items"`
}

// FAQSection generates the optional frequently-asked-questions section.
func FAQSection(ctx context.Context, c Completer, in Input) (*proposal.FAQ, Outcome) {
	spec, ok := in.Contract.Spec(template.SectionFAQ)
	if !ok {
		return nil, Outcome{}
	}

	dto, models, err := run[faqListDTO](ctx, c, in, template.SectionFAQ, spec)
	if err != nil {
		return fallbackFAQ(spec), Outcome{Fallback: true}
	}

	col := spec.Collections["items"]
	items := make([]proposal.FAQItem, 0, len(dto.Items))
	for i, q := range dto.Items {
		items = append(items, proposal.FAQItem{
			ID:        newID(),
			Question:  fitField(q.Question, col.Item["question"]),
			Answer:    fitField(q.Answer, col.Item["answer"]),
			SortOrder: i,
		})
	}
	return &proposal.FAQ{Items: items}, Outcome{ModelsUsed: models}
}

func fallbackFAQ(spec template.SectionSpec) *proposal.FAQ {
	col := spec.Collections["items"]
	defaults := []proposal.FAQItem{
		{Question: "Qual o prazo de início?", Answer: "Iniciamos em até 5 dias úteis após a aprovação da proposta."},
		{Question: "Como funcionam as revisões?", Answer: "Cada entrega inclui rodadas de ajuste definidas no escopo."},
		{Question: "Quais as formas de pagamento?", Answer: "Aceitamos transferência e boleto, com condições descritas nos termos."},
		{Question: "O material produzido é meu?", Answer: "Sim, a titularidade é transferida após a quitação do projeto."},
	}
	defaults = fitCount(defaults, col, func(i int) proposal.FAQItem {
		return proposal.FAQItem{
			Question: "Posso tirar dúvidas durante o projeto?",
			Answer:   "Sim, mantemos um canal direto de comunicação durante todo o projeto.",
		}
	})
	for i := range defaults {
		defaults[i].ID = newID()
		defaults[i].Question = fitField(defaults[i].Question, col.Item["question"])
		defaults[i].Answer = fitField(defaults[i].Answer, col.Item["answer"])
		defaults[i].SortOrder = i
	}
	return &proposal.FAQ{Items: defaults}
}
