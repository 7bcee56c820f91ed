package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proposta-ai/propgen/internal/agent"
	"github.com/proposta-ai/propgen/internal/proposal"
)

// scriptedCompleter answers each section by recognizing the JSON shape its
// prompt asks for. Responses are valid for the flash contract with two plans.
type scriptedCompleter struct{}

func (scriptedCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, []string, error) {
	var body string
	switch {
	case strings.Contains(userPrompt, `"subtitle"`):
		body = `{"title": "Identidade visual para o Café Aurora", "subtitle": "Uma marca à altura do seu café", "description": "Rebranding completo, da estratégia à papelaria."}`
	case strings.Contains(userPrompt, `"members"`):
		body = `{"title": "Nossa equipe", "description": "Quem vai cuidar do projeto.", "members": [
			{"name": "Ana Ribeiro", "role": "Diretora de criação"},
			{"name": "Bruno Lima", "role": "Designer sênior"}
		]}`
	case strings.Contains(userPrompt, `"plans"`):
		body = `{"title": "Investimento", "plans": [
			{"title": "Essencial", "description": "Identidade básica.", "price": 3000, "period": "one-time", "includedItems": ["Logotipo", "Paleta de cores", "Tipografia"]},
			{"title": "Completo", "description": "Identidade completa.", "price": 7000, "period": "one-time", "includedItems": ["Logotipo", "Paleta de cores", "Tipografia", "Papelaria"]}
		]}`
	case strings.Contains(userPrompt, `"question"`):
		body = `{"items": [
			{"question": "Qual o prazo?", "answer": "Seis semanas a partir da aprovação."},
			{"question": "Quantas revisões?", "answer": "Duas rodadas por entrega."},
			{"question": "Como pago?", "answer": "Metade na aprovação, metade na entrega."}
		]}`
	case strings.Contains(userPrompt, `"callToAction"`):
		body = `{"callToAction": "Aprove e vamos começar.", "validity": "Válida por 15 dias."}`
	case strings.Contains(userPrompt, `"topics"`):
		body = `{"title": "O que fazemos", "topics": [
			{"title": "Diagnóstico", "description": "Entendimento do negócio e do público."},
			{"title": "Criação", "description": "Conceito e desenho da identidade."},
			{"title": "Entrega", "description": "Manual de marca e arquivos finais."}
		]}`
	case strings.Contains(userPrompt, `"items"`):
		body = `{"items": [
			{"title": "Validade", "description": "Proposta válida por 15 dias."},
			{"title": "Pagamento", "description": "50% na aprovação e 50% na entrega."}
		]}`
	default:
		body = `{"title": "Sobre nós", "description": "Estúdio especializado em marcas para o setor de alimentação."}`
	}
	return body, []string{"scripted-model"}, nil
}

// brokenSectionCompleter answers like scriptedCompleter except for one
// section, whose prompt gets an unparseable reply.
type brokenSectionCompleter struct {
	promptMarker string
}

func (c brokenSectionCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, []string, error) {
	if strings.Contains(userPrompt, c.promptMarker) {
		return "desculpe, não consegui montar o JSON pedido", []string{"scripted-model"}, nil
	}
	return scriptedCompleter{}.Complete(ctx, systemPrompt, userPrompt)
}

// failingCompleter takes every section down the fallback path.
type failingCompleter struct{}

func (failingCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, []string, error) {
	return "", nil, errors.New("backend down")
}

func testRequest() proposal.Request {
	return proposal.Request{
		SelectedService:    "design",
		TemplateType:       "flash",
		ClientName:         "Café Aurora",
		ProjectName:        "Identidade visual",
		ProjectDescription: "Rebranding completo da cafeteria.",
		CompanyEmail:       "contato@estudio.com.br",
		CompanyPhone:       "(11) 91234-5678",
		IncludeTerms:       true,
		IncludeFAQ:         true,
		SelectedPlans:      proposal.PlanSelection{Count: 2},
	}
}

func TestRunAssemblesValidProposal(t *testing.T) {
	o := New(agent.DefaultRegistry(), scriptedCompleter{}, "", 0)

	res, err := o.Run(context.Background(), testRequest())
	require.NoError(t, err)

	assert.False(t, res.FallbackUsed)
	assert.Equal(t, []string{"scripted-model"}, res.ModelsUsed)
	assert.GreaterOrEqual(t, res.TimingMs, int64(0))

	p := res.Proposal
	require.NotNil(t, p)
	require.Len(t, p.Plans, 2)
	assert.True(t, p.Plans[1].Recommended)
	require.NotNil(t, p.Team)
	require.NotNil(t, p.Terms)
	require.NotNil(t, p.FAQ)
	assert.Equal(t, "contato@estudio.com.br", p.Footer.Email)
}

// With the whole model layer down the run still succeeds: every section comes
// from its fallback and the result says so.
func TestRunSurvivesTotalBackendFailure(t *testing.T) {
	o := New(agent.DefaultRegistry(), failingCompleter{}, "", 0)

	res, err := o.Run(context.Background(), testRequest())
	require.NoError(t, err)

	assert.True(t, res.FallbackUsed)
	assert.Empty(t, res.ModelsUsed)
	require.Len(t, res.Proposal.Plans, 2)
}

// One section coming back unparseable must not sink the run: that section
// falls back, the rest keep their model output, and the assembled proposal
// still validates.
func TestRunSurvivesSingleSectionFailure(t *testing.T) {
	o := New(agent.DefaultRegistry(), brokenSectionCompleter{promptMarker: "especialidades"}, "", 0)

	res, err := o.Run(context.Background(), testRequest())
	require.NoError(t, err)

	assert.True(t, res.FallbackUsed)
	assert.Equal(t, []string{"scripted-model"}, res.ModelsUsed)

	p := res.Proposal
	topics := p.Specialties.Topics
	assert.GreaterOrEqual(t, len(topics), 3)
	assert.LessOrEqual(t, len(topics), 6)

	// The other sections kept their model output.
	assert.Equal(t, "Sobre nós", p.AboutUs.Title)
	require.Len(t, p.Plans, 2)
	assert.Equal(t, "R$3.000", p.Plans[0].PriceLabel)
}

func TestRunOmitsOptionalSections(t *testing.T) {
	o := New(agent.DefaultRegistry(), scriptedCompleter{}, "", 0)

	req := testRequest()
	req.IncludeTerms = false
	req.IncludeFAQ = false

	res, err := o.Run(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, res.Proposal.Terms)
	assert.Nil(t, res.Proposal.FAQ)
}

func TestRunMinimalStyleHasNoTeam(t *testing.T) {
	o := New(agent.DefaultRegistry(), scriptedCompleter{}, "", 0)

	req := testRequest()
	req.TemplateType = "minimal"

	res, err := o.Run(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, res.Proposal.Team)
}

func TestRunUnknownSectorFailsFast(t *testing.T) {
	o := New(agent.DefaultRegistry(), scriptedCompleter{}, "", 0)

	req := testRequest()
	req.SelectedService = "astrologia"

	_, err := o.Run(context.Background(), req)
	require.ErrorIs(t, err, agent.ErrAgentNotFound)
}

func TestRunUnknownStyleFailsFast(t *testing.T) {
	o := New(agent.DefaultRegistry(), scriptedCompleter{}, "", 0)

	req := testRequest()
	req.TemplateType = "corporate"

	_, err := o.Run(context.Background(), req)
	require.Error(t, err)
}

func TestRunClampsPlanCount(t *testing.T) {
	o := New(agent.DefaultRegistry(), failingCompleter{}, "", 0)

	req := testRequest()
	req.SelectedPlans = proposal.PlanSelection{Count: 9}

	res, err := o.Run(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, res.Proposal.Plans, 3)
}

func TestAttemptSequenceFirstSuccessWins(t *testing.T) {
	want := &Result{TimingMs: 1}
	var secondRan bool
	seq := AttemptSequence{
		{Name: "mixture", Run: func(ctx context.Context) (*Result, error) { return want, nil }},
		{Name: "single-model", Run: func(ctx context.Context) (*Result, error) {
			secondRan = true
			return nil, errors.New("unreachable")
		}},
	}

	res, err := seq.Execute(context.Background())
	require.NoError(t, err)
	assert.Same(t, want, res)
	assert.False(t, secondRan)
}

func TestAttemptSequenceFallsThroughToNextTier(t *testing.T) {
	want := &Result{TimingMs: 2}
	seq := AttemptSequence{
		{Name: "mixture", Run: func(ctx context.Context) (*Result, error) { return nil, errors.New("all models failed") }},
		{Name: "single-model", Run: func(ctx context.Context) (*Result, error) { return want, nil }},
	}

	res, err := seq.Execute(context.Background())
	require.NoError(t, err)
	assert.Same(t, want, res)
}

func TestAttemptSequenceReportsEveryFailure(t *testing.T) {
	seq := AttemptSequence{
		{Name: "mixture", Run: func(ctx context.Context) (*Result, error) { return nil, errors.New("down") }},
		{Name: "single-model", Run: func(ctx context.Context) (*Result, error) { return nil, errors.New("also down") }},
	}

	_, err := seq.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mixture")
	assert.Contains(t, err.Error(), "single-model")
}

func TestAttemptSequenceEmpty(t *testing.T) {
	_, err := AttemptSequence{}.Execute(context.Background())
	require.Error(t, err)
}

func TestAttemptSequenceHonorsAttemptTimeout(t *testing.T) {
	seq := AttemptSequence{
		{Name: "slow", Timeout: 10 * time.Millisecond, Run: func(ctx context.Context) (*Result, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}},
		{Name: "fast", Run: func(ctx context.Context) (*Result, error) { return &Result{}, nil }},
	}

	res, err := seq.Execute(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, res)
}
