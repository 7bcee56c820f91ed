package template

import (
	"strings"
	"testing"
)

func TestForStyle(t *testing.T) {
	for _, style := range Styles() {
		c, err := ForStyle(style)
		if err != nil {
			t.Fatalf("ForStyle(%s): %v", style, err)
		}
		if c.Style != style {
			t.Errorf("contract style = %s, want %s", c.Style, style)
		}
	}

	if _, err := ForStyle("corporate"); err == nil {
		t.Error("expected error for unknown style")
	}
}

func TestMinimalHasNoTeamSection(t *testing.T) {
	c, _ := ForStyle(StyleMinimal)
	if _, ok := c.Spec(SectionTeam); ok {
		t.Error("minimal style must not declare a team section")
	}

	for _, style := range []Style{StyleFlash, StylePrime} {
		c, _ := ForStyle(style)
		if _, ok := c.Spec(SectionTeam); !ok {
			t.Errorf("%s style must declare a team section", style)
		}
	}
}

func TestFlashIntroductionTitleIsExact(t *testing.T) {
	c, _ := ForStyle(StyleFlash)
	spec, _ := c.Spec(SectionIntroduction)
	fc := spec.Fields["title"]
	if fc.Mode != ModeExact || fc.Limit != 60 {
		t.Errorf("flash introduction title constraint = %+v, want exact 60", fc)
	}
}

// Every declared limit must be stated inside the prompt text itself, so the
// model sees exactly what the validator will enforce.
func TestPromptsStateTheirLimits(t *testing.T) {
	for _, style := range Styles() {
		c, _ := ForStyle(style)
		for section, spec := range c.Sections {
			for name, fc := range spec.Fields {
				if !strings.Contains(spec.Prompt, fc.Describe()) {
					t.Errorf("%s/%s: prompt missing limit line for field %q", style, section, name)
				}
			}
			for name, col := range spec.Collections {
				if !strings.Contains(spec.Prompt, col.Describe()) {
					t.Errorf("%s/%s: prompt missing cardinality line for %q", style, section, name)
				}
			}
			if !strings.Contains(spec.Prompt, spec.Format) {
				t.Errorf("%s/%s: prompt missing expected format", style, section)
			}
		}
	}
}

func TestClampPlanCount(t *testing.T) {
	c, _ := ForStyle(StyleFlash)
	cases := []struct{ in, want int }{
		{-2, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 3}, {7, 3},
	}
	for _, tc := range cases {
		if got := c.ClampPlanCount(tc.in); got != tc.want {
			t.Errorf("ClampPlanCount(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCollectionConstraintFits(t *testing.T) {
	ranged := CollectionConstraint{Min: 2, Max: 4}
	for n, want := range map[int]bool{1: false, 2: true, 4: true, 5: false} {
		if got := ranged.Fits(n); got != want {
			t.Errorf("ranged.Fits(%d) = %v, want %v", n, got, want)
		}
	}

	exact := CollectionConstraint{Exact: 3}
	if exact.Fits(2) || !exact.Fits(3) {
		t.Error("exact constraint mismatch")
	}
}

func TestFieldConstraintDescribe(t *testing.T) {
	if got := (FieldConstraint{Limit: 60, Mode: ModeExact}).Describe(); got != "exatamente 60 caracteres" {
		t.Errorf("Describe() = %q", got)
	}
	if got := (FieldConstraint{Limit: 80, Mode: ModeMax}).Describe(); got != "no máximo 80 caracteres" {
		t.Errorf("Describe() = %q", got)
	}
}
