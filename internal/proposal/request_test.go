package proposal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanSelectionAcceptsCount(t *testing.T) {
	var req Request
	require.NoError(t, json.Unmarshal([]byte(`{"selectedPlans": 2}`), &req))
	assert.Equal(t, 2, req.SelectedPlans.Count)
	assert.Empty(t, req.SelectedPlans.Names)
}

func TestPlanSelectionAcceptsNames(t *testing.T) {
	var req Request
	require.NoError(t, json.Unmarshal([]byte(`{"selectedPlans": ["Essencial", "Completo"]}`), &req))
	assert.Equal(t, 2, req.SelectedPlans.Count)
	assert.Equal(t, []string{"Essencial", "Completo"}, req.SelectedPlans.Names)
}

func TestPlanSelectionRejectsOtherShapes(t *testing.T) {
	var req Request
	err := json.Unmarshal([]byte(`{"selectedPlans": {"n": 2}}`), &req)
	require.Error(t, err)
}

func TestPlanSelectionLabels(t *testing.T) {
	withNames := PlanSelection{Count: 2, Names: []string{"Básico", "Top"}}
	assert.Equal(t, []string{"Básico", "Top"}, withNames.Labels(2))

	countOnly := PlanSelection{Count: 3}
	assert.Equal(t, []string{"Essencial", "Profissional", "Completo"}, countOnly.Labels(3))

	partial := PlanSelection{Count: 1, Names: []string{"Único"}}
	labels := partial.Labels(2)
	assert.Equal(t, "Único", labels[0])
	assert.Len(t, labels, 2)
}

func TestNormalize(t *testing.T) {
	req := Request{
		SelectedService: "  Design ",
		ClientName:      " Café Aurora ",
		TemplateType:    "Flash",
	}
	n := req.Normalize()
	assert.Equal(t, "design", n.SelectedService)
	assert.Equal(t, "Café Aurora", n.ClientName)
	assert.Equal(t, "flash", n.TemplateType)
	// The original is untouched.
	assert.Equal(t, "  Design ", req.SelectedService)
}
