package moa

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proposta-ai/propgen/internal/llm"
)

// scriptedModel is a chat model stub with a fixed reply or error.
type scriptedModel struct {
	reply string
	err   error
	calls int
}

func (m *scriptedModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &schema.Message{Role: schema.Assistant, Content: m.reply}, nil
}

func (m *scriptedModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not used")
}

func client(name string, m *scriptedModel) *llm.ChatClient {
	return llm.NewChatClient(m, name)
}

func newTestService(t *testing.T, refs []*llm.ChatClient, agg *llm.ChatClient) *Service {
	t.Helper()
	s, err := NewService(refs, agg, Options{ReferenceTemperature: 0.7, AggregatorTemperature: 0.3, MaxTokens: 512})
	require.NoError(t, err)
	return s
}

func TestCompleteAggregatesSurvivors(t *testing.T) {
	aggModel := &scriptedModel{reply: `{"title": "consenso"}`}
	svc := newTestService(t,
		[]*llm.ChatClient{
			client("ref-a", &scriptedModel{reply: `{"title": "a"}`}),
			client("ref-b", &scriptedModel{reply: `{"title": "b"}`}),
		},
		client("agg", aggModel))

	text, models, err := svc.Complete(context.Background(), "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, `{"title": "consenso"}`, text)
	assert.Equal(t, []string{"ref-a", "ref-b", "agg"}, models)
	assert.Equal(t, 1, aggModel.calls)
}

// A partial wipeout degrades gracefully: the failed reference is dropped and
// the run continues with whoever answered.
func TestCompleteToleratesReferenceFailures(t *testing.T) {
	aggModel := &scriptedModel{reply: "agregado"}
	svc := newTestService(t,
		[]*llm.ChatClient{
			client("ref-ok", &scriptedModel{reply: "resposta"}),
			client("ref-down", &scriptedModel{err: errors.New("connection refused")}),
		},
		client("agg", aggModel))

	text, models, err := svc.Complete(context.Background(), "sys", "user")
	require.NoError(t, err)
	// Single survivor: aggregation is skipped.
	assert.Equal(t, "resposta", text)
	assert.Equal(t, []string{"ref-ok"}, models)
	assert.Equal(t, 0, aggModel.calls)
}

func TestCompleteAllReferencesFailed(t *testing.T) {
	svc := newTestService(t,
		[]*llm.ChatClient{
			client("ref-a", &scriptedModel{err: errors.New("down")}),
			client("ref-b", &scriptedModel{err: errors.New("down")}),
		},
		nil)

	_, _, err := svc.Complete(context.Background(), "sys", "user")
	require.ErrorIs(t, err, ErrAllModelsFailed)
}

func TestAggregationPromptCarriesEveryAnswer(t *testing.T) {
	got := aggregationPrompt("tarefa", []answer{
		{model: "a", text: "primeira"},
		{model: "b", text: "segunda"},
	})
	assert.True(t, strings.Contains(got, "tarefa"))
	assert.True(t, strings.Contains(got, "primeira"))
	assert.True(t, strings.Contains(got, "segunda"))
	assert.True(t, strings.Contains(got, "(a)"))
}

func TestNewServiceRequiresReferences(t *testing.T) {
	_, err := NewService(nil, nil, Options{})
	require.Error(t, err)
}

func TestGenerateDecodesAggregatedJSON(t *testing.T) {
	type dto struct {
		Title string `json:"title"`
	}
	svc := newTestService(t,
		[]*llm.ChatClient{client("ref", &scriptedModel{reply: `{"title": "ok"}`})},
		nil)

	res := Generate[dto](context.Background(), svc, "sys", "user")
	require.True(t, res.OK)
	assert.Equal(t, "ok", res.Value.Title)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, []string{"ref"}, res.ModelsUsed)
}

func TestGenerateReportsDecodeFailure(t *testing.T) {
	type dto struct {
		Title string `json:"title"`
	}
	svc := newTestService(t,
		[]*llm.ChatClient{client("ref", &scriptedModel{reply: "sem json nenhum"})},
		nil)

	res := Generate[dto](context.Background(), svc, "sys", "user")
	assert.False(t, res.OK)
	assert.Error(t, res.Err)
}

func TestGenerateWithRetryStopsOnSuccess(t *testing.T) {
	type dto struct {
		Title string `json:"title"`
	}
	m := &scriptedModel{reply: `{"title": "ok"}`}
	svc := newTestService(t, []*llm.ChatClient{client("ref", m)}, nil)

	res := GenerateWithRetry[dto](context.Background(), svc, "sys", "user", 3)
	require.True(t, res.OK)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, 1, m.calls)
}

func TestGenerateWithRetryExhaustsAttempts(t *testing.T) {
	type dto struct {
		Title string `json:"title"`
	}
	m := &scriptedModel{err: errors.New("down")}
	svc := newTestService(t, []*llm.ChatClient{client("ref", m)}, nil)

	res := GenerateWithRetry[dto](context.Background(), svc, "sys", "user", 2)
	assert.False(t, res.OK)
	assert.Equal(t, 2, res.Attempts)
	assert.Equal(t, 2, m.calls)
}
