package sections

import (
	"context"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proposta-ai/propgen/internal/agent"
	"github.com/proposta-ai/propgen/internal/proposal"
	"github.com/proposta-ai/propgen/internal/template"
)

// stubCompleter returns a fixed response, or a fixed error, for every call.
type stubCompleter struct {
	response string
	err      error
}

func (s stubCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, []string, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return s.response, []string{"stub-model"}, nil
}

func testInput(t *testing.T, style template.Style, planCount int) Input {
	t.Helper()
	contract, err := template.ForStyle(style)
	require.NoError(t, err)
	cfg, err := agent.DefaultRegistry().Lookup(agent.SectorDesign, style)
	require.NoError(t, err)

	sel := proposal.PlanSelection{Count: planCount}
	return Input{
		Request: proposal.Request{
			SelectedService:    "design",
			ClientName:         "Café Aurora",
			ProjectName:        "Identidade visual",
			ProjectDescription: "Rebranding completo da cafeteria.",
			CompanyEmail:       "contato@estudio.com.br",
			CompanyPhone:       "(11) 91234-5678",
			IncludeTerms:       true,
			IncludeFAQ:         true,
			TemplateType:       string(style),
		},
		Agent:      cfg,
		Contract:   contract,
		PlanCount:  planCount,
		PlanLabels: sel.Labels(planCount),
	}
}

func assemble(ctx context.Context, c Completer, in Input) (*proposal.Proposal, bool) {
	var p proposal.Proposal
	fallback := false
	collect := func(out Outcome) { fallback = fallback || out.Fallback }

	var out Outcome
	p.Introduction, out = Introduction(ctx, c, in)
	collect(out)
	p.AboutUs, out = AboutUs(ctx, c, in)
	collect(out)
	p.Team, out = Team(ctx, c, in)
	collect(out)
	p.Specialties, out = Specialties(ctx, c, in)
	collect(out)
	p.Steps, out = Steps(ctx, c, in)
	collect(out)
	var plans []proposal.Plan
	p.Investment, plans, out = Investment(ctx, c, in)
	p.Plans = plans
	collect(out)
	p.Terms, out = TermsSection(ctx, c, in)
	collect(out)
	p.FAQ, out = FAQSection(ctx, c, in)
	collect(out)
	p.Footer, out = Footer(ctx, c, in)
	collect(out)
	return &p, fallback
}

// With the model layer completely down, every section must still come out of
// its deterministic fallback and the assembled proposal must validate, for
// every template style.
func TestFallbacksSatisfyEveryContract(t *testing.T) {
	down := stubCompleter{err: errors.New("backend down")}

	for _, style := range template.Styles() {
		t.Run(string(style), func(t *testing.T) {
			in := testInput(t, style, 2)
			p, fallback := assemble(context.Background(), down, in)

			assert.True(t, fallback)
			require.NoError(t, proposal.Validate(p, in.Contract, 2))
		})
	}
}

func TestFallbacksSatisfyEveryPlanCount(t *testing.T) {
	down := stubCompleter{err: errors.New("backend down")}
	for planCount := 1; planCount <= 3; planCount++ {
		in := testInput(t, template.StyleFlash, planCount)
		p, _ := assemble(context.Background(), down, in)
		require.NoError(t, proposal.Validate(p, in.Contract, planCount), "planCount=%d", planCount)
	}
}

func TestMalformedJSONTriggersFallback(t *testing.T) {
	garbage := stubCompleter{response: "desculpe, não consegui gerar o JSON"}
	in := testInput(t, template.StyleFlash, 2)

	intro, out := Introduction(context.Background(), garbage, in)
	assert.True(t, out.Fallback)
	assert.NotEmpty(t, intro.Title)
}

func TestIntroductionShapingFitsExactTitle(t *testing.T) {
	in := testInput(t, template.StyleFlash, 2)
	long := stubCompleter{response: `{"title": "Uma proposta de identidade visual absurdamente longa para o Café Aurora que estoura o limite", "subtitle": "ok", "description": "ok"}`}

	intro, out := Introduction(context.Background(), long, in)
	assert.False(t, out.Fallback)
	assert.Equal(t, []string{"stub-model"}, out.ModelsUsed)
	assert.Equal(t, 60, utf8.RuneCountInString(intro.Title))
}

func TestIntroductionShapingPadsShortExactTitle(t *testing.T) {
	in := testInput(t, template.StyleFlash, 2)
	short := stubCompleter{response: `{"title": "Curto", "subtitle": "ok", "description": "ok"}`}

	intro, _ := Introduction(context.Background(), short, in)
	assert.Equal(t, 60, utf8.RuneCountInString(intro.Title))
}

func TestInvestmentShaping(t *testing.T) {
	in := testInput(t, template.StyleFlash, 2)
	resp := stubCompleter{response: `{
		"title": "Investimento",
		"plans": [
			{"title": "Essencial", "description": "Básico.", "price": 3000, "period": "mensal", "includedItems": ["Logo", "Papelaria", "Manual"]},
			{"title": "Completo", "description": "Tudo incluso.", "price": 7000, "period": "one-time", "includedItems": ["Logo", "Papelaria", "Manual", "Site"]},
			{"title": "Extra", "description": "Não pedido.", "price": 9000, "period": "one-time", "includedItems": ["Logo", "Papelaria", "Manual"]}
		]
	}`}

	_, plans, out := Investment(context.Background(), resp, in)
	require.False(t, out.Fallback)

	// Surplus plans are dropped to the requested count.
	require.Len(t, plans, 2)

	// Identity and ordering are assigned during shaping.
	for i, p := range plans {
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, i, p.SortOrder)
		assert.False(t, p.Hidden)
	}

	// The label is always derived from the integer price.
	assert.Equal(t, "R$3.000", plans[0].PriceLabel)
	assert.Equal(t, "R$7.000", plans[1].PriceLabel)

	// Period aliases are normalized onto the enum.
	assert.Equal(t, proposal.PeriodMonthly, plans[0].Period)

	// Two plans: the pricier one is recommended regardless of model output.
	assert.False(t, plans[0].Recommended)
	assert.True(t, plans[1].Recommended)
}

func TestInvestmentFallbackPricesScaleByTier(t *testing.T) {
	in := testInput(t, template.StyleFlash, 3)
	down := stubCompleter{err: errors.New("down")}

	_, plans, out := Investment(context.Background(), down, in)
	require.True(t, out.Fallback)
	require.Len(t, plans, 3)
	assert.Less(t, plans[0].Price, plans[1].Price)
	assert.Less(t, plans[1].Price, plans[2].Price)
	// Three plans: the middle one is recommended.
	assert.True(t, plans[1].Recommended)
}

func TestTeamSkippedForMinimal(t *testing.T) {
	in := testInput(t, template.StyleMinimal, 2)
	team, out := Team(context.Background(), stubCompleter{response: "{}"}, in)
	assert.Nil(t, team)
	assert.False(t, out.Fallback)
}

func TestFooterUsesRequestContact(t *testing.T) {
	in := testInput(t, template.StyleFlash, 2)
	resp := stubCompleter{response: `{"callToAction": "Vamos?", "validity": "15 dias", "email": "modelo@invalido"}`}

	footer, _ := Footer(context.Background(), resp, in)
	assert.Equal(t, "contato@estudio.com.br", footer.Email)
	assert.Equal(t, "(11) 91234-5678", footer.Phone)
}

func TestFitField(t *testing.T) {
	exact := template.FieldConstraint{Limit: 5, Mode: template.ModeExact}
	assert.Equal(t, 5, utf8.RuneCountInString(fitField("ab", exact)))
	assert.Equal(t, "abcde", fitField("abcdefgh", exact))

	max := template.FieldConstraint{Limit: 4, Mode: template.ModeMax}
	assert.Equal(t, "abcd", fitField("abcdxyz", max))
	assert.Equal(t, "ab", fitField("  ab  ", max))

	unbounded := template.FieldConstraint{}
	assert.Equal(t, "qualquer coisa", fitField("qualquer coisa", unbounded))
}
