package proposal

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proposta-ai/propgen/internal/template"
)

func exactTitle(base string, n int) string {
	runes := []rune(base)
	if len(runes) > n {
		return string(runes[:n])
	}
	return base + strings.Repeat(" ", n-len(runes))
}

func validPlan(title string, price int, recommended bool, sortOrder int) Plan {
	return Plan{
		ID:            uuid.NewString(),
		Title:         title,
		Description:   "Escopo ajustado ao projeto.",
		Price:         price,
		PriceLabel:    FormatPrice(price),
		Period:        PeriodOneTime,
		Recommended:   recommended,
		IncludedItems: []string{"Reunião de briefing", "Entrega das peças", "Uma rodada de ajustes"},
		SortOrder:     sortOrder,
	}
}

func validFlashProposal() *Proposal {
	return &Proposal{
		Introduction: Introduction{
			Title:       exactTitle("Proposta de identidade visual para o Café Aurora", 60),
			Subtitle:    "Uma marca à altura do seu produto",
			Description: "Apresentamos nossa abordagem para o rebranding completo da cafeteria.",
		},
		AboutUs: AboutUs{
			Title:       "Sobre nós",
			Description: "Estúdio de design com dez anos de estrada e foco em marcas de varejo.",
		},
		Team: &Team{
			Title:       "Nossa equipe",
			Description: "Profissionais dedicados ao seu projeto.",
			Members: []TeamMember{
				{ID: uuid.NewString(), Name: "Ana Lima", Role: "Direção criativa"},
				{ID: uuid.NewString(), Name: "Bruno Reis", Role: "Design gráfico", SortOrder: 1},
			},
		},
		Specialties: Specialties{
			Title: "Especialidades",
			Topics: []Topic{
				{ID: uuid.NewString(), Title: "Branding", Description: "Identidades que posicionam."},
				{ID: uuid.NewString(), Title: "Design editorial", Description: "Materiais impressos e digitais.", SortOrder: 1},
				{ID: uuid.NewString(), Title: "Sistemas de design", Description: "Consistência em todos os pontos.", SortOrder: 2},
			},
		},
		Steps: Steps{
			Title: "Como trabalhamos",
			Topics: []Topic{
				{ID: uuid.NewString(), Title: "Imersão", Description: "Entendimento do negócio e do público."},
				{ID: uuid.NewString(), Title: "Criação", Description: "Desenvolvimento das direções visuais.", SortOrder: 1},
				{ID: uuid.NewString(), Title: "Entrega", Description: "Arquivos finais e manual de uso.", SortOrder: 2},
			},
		},
		Investment: Investment{Title: "Investimento"},
		Plans: []Plan{
			validPlan("Essencial", 3000, false, 0),
			validPlan("Completo", 5000, true, 1),
		},
		Footer: Footer{
			CallToAction: "Aprove a proposta e vamos começar.",
			Validity:     "Válida por 15 dias.",
			Email:        "contato@estudio.com.br",
			Phone:        "(11) 91234-5678",
		},
	}
}

func flashContractForTest(t *testing.T) *template.Contract {
	t.Helper()
	c, err := template.ForStyle(template.StyleFlash)
	require.NoError(t, err)
	return c
}

func TestValidateAcceptsValidProposal(t *testing.T) {
	p := validFlashProposal()
	require.NoError(t, Validate(p, flashContractForTest(t), 2))
}

func TestValidateFirstViolationWins(t *testing.T) {
	p := validFlashProposal()
	p.Introduction.Subtitle = strings.Repeat("x", 200) // over 140
	p.AboutUs.Description = strings.Repeat("y", 700)   // over 600, but later in order

	err := Validate(p, flashContractForTest(t), 2)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "introduction.subtitle", verr.Field)
	assert.Contains(t, verr.Expected, "140")
	assert.Contains(t, verr.Actual, "200")
}

func TestValidateExactTitleWidth(t *testing.T) {
	p := validFlashProposal()
	p.Introduction.Title = "Curto demais"

	err := Validate(p, flashContractForTest(t), 2)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "introduction.title", verr.Field)
	assert.Contains(t, verr.Expected, "exactly 60")
}

func TestValidateRuneCountNotByteCount(t *testing.T) {
	p := validFlashProposal()
	// 60 accented runes is 120 bytes; the limit must count runes.
	p.Introduction.Title = strings.Repeat("ã", 60)
	require.NoError(t, Validate(p, flashContractForTest(t), 2))
}

func TestValidatePlanCount(t *testing.T) {
	p := validFlashProposal()
	err := Validate(p, flashContractForTest(t), 3)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "plans", verr.Field)
}

func TestValidateIncludedItemsCardinality(t *testing.T) {
	p := validFlashProposal()
	p.Plans[0].IncludedItems = p.Plans[0].IncludedItems[:2] // below min 3

	err := Validate(p, flashContractForTest(t), 2)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "plans[0].includedItems", verr.Field)
}

func TestValidatePriceLabelFormat(t *testing.T) {
	for _, bad := range []string{"R$ 3.500", "R$3500,00", "3.500", "R$3,500"} {
		p := validFlashProposal()
		p.Plans[0].PriceLabel = bad
		err := Validate(p, flashContractForTest(t), 2)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr), "label %q", bad)
		assert.Equal(t, "plans[0].priceLabel", verr.Field)
	}
}

func TestValidateRecommendedRules(t *testing.T) {
	t.Run("two plans must recommend the pricier", func(t *testing.T) {
		p := validFlashProposal()
		p.Plans[0].Recommended = true
		p.Plans[1].Recommended = false

		err := Validate(p, flashContractForTest(t), 2)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "plans.recommended", verr.Field)
	})

	t.Run("no recommendation fails with two plans", func(t *testing.T) {
		p := validFlashProposal()
		p.Plans[1].Recommended = false
		err := Validate(p, flashContractForTest(t), 2)
		require.Error(t, err)
	})

	t.Run("three plans recommend the middle", func(t *testing.T) {
		p := validFlashProposal()
		p.Plans[1].Recommended = false
		p.Plans = append(p.Plans, validPlan("Intermediário", 4000, true, 2))
		require.NoError(t, Validate(p, flashContractForTest(t), 3))
	})

	t.Run("three plans recommending the priciest fails", func(t *testing.T) {
		p := validFlashProposal()
		p.Plans = append(p.Plans, validPlan("Intermediário", 4000, false, 2))
		err := Validate(p, flashContractForTest(t), 3)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "plans.recommended", verr.Field)
	})

	t.Run("single plan needs no recommendation", func(t *testing.T) {
		p := validFlashProposal()
		p.Plans = p.Plans[:1]
		p.Plans[0].Recommended = false
		require.NoError(t, Validate(p, flashContractForTest(t), 1))
	})
}

func TestValidateStructTagsRunFirst(t *testing.T) {
	p := validFlashProposal()
	p.Plans[0].Period = "weekly"

	err := Validate(p, flashContractForTest(t), 2)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Expected, "oneof")
}

func TestValidateTeamPresence(t *testing.T) {
	minimal, err := template.ForStyle(template.StyleMinimal)
	require.NoError(t, err)

	p := validFlashProposal()
	// Adjust fields that exceed minimal's tighter budgets.
	p.Introduction.Title = "Proposta para o Café Aurora"
	p.Footer.CallToAction = "Vamos começar."
	p.Footer.Validity = "Válida por 15 dias."

	verr := requireValidationError(t, Validate(p, minimal, 2))
	assert.Equal(t, "team", verr.Field)

	p.Team = nil
	require.NoError(t, Validate(p, minimal, 2))

	flash := flashContractForTest(t)
	p2 := validFlashProposal()
	p2.Team = nil
	verr = requireValidationError(t, Validate(p2, flash, 2))
	assert.Equal(t, "team", verr.Field)
}

func requireValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	return verr
}
