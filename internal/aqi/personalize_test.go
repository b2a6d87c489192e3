package aqi

import (
	"strings"
	"testing"
)

func TestPersonalize_KeywordMatching(t *testing.T) {
	tests := []struct {
		condition string
		want      string // substring that must appear in the personalized part
	}{
		{"I have asthma", "rescue inhaler"},
		{"COPD", "rescue inhaler"},
		{"chronic respiratory problems", "rescue inhaler"},
		{"heart disease", "heart condition"},
		{"Cardiovascular issues", "heart condition"},
		{"seasonal allergies", "Allergy sufferers"},
		{"allergic rhinitis", "Allergy sufferers"},
		{"pregnant", "expectant mothers"},
		{"pregnancy", "expectant mothers"},
	}

	for _, tt := range tests {
		got := Personalize(40, tt.condition)
		if !strings.Contains(got, "Personalized advice: ") {
			t.Errorf("condition %q: expected personalized section, got %q", tt.condition, got)
			continue
		}
		if !strings.Contains(got, tt.want) {
			t.Errorf("condition %q: advice %q does not mention %q", tt.condition, got, tt.want)
		}
	}
}

func TestPersonalize_CaseInsensitive(t *testing.T) {
	lower := Personalize(120, "asthma")
	upper := Personalize(120, "ASTHMA")
	if lower != upper {
		t.Errorf("matching should be case-insensitive:\n%q\n%q", lower, upper)
	}
}

func TestPersonalize_UnknownCondition(t *testing.T) {
	// Below the moderate breakpoint an unknown condition gets base advice only.
	got := Personalize(80, "sore knee")
	if strings.Contains(got, "Personalized advice") {
		t.Errorf("no personalized section expected for unknown condition at aqi 80, got %q", got)
	}

	// Above it, a generic caution is appended.
	got = Personalize(130, "sore knee")
	if !strings.Contains(got, "pay close attention to any unusual symptoms") {
		t.Errorf("generic caution expected for unknown condition at aqi 130, got %q", got)
	}
}

func TestPersonalize_EmptyCondition(t *testing.T) {
	got := Personalize(42, "")
	want := "Air quality is good. It's a great day for outdoor activities."
	if got != want {
		t.Errorf("Personalize(42, \"\") = %q, want %q", got, want)
	}
}

func TestPersonalize_TierEscalation(t *testing.T) {
	severe := Personalize(250, "asthma")
	if !strings.Contains(severe, "stay indoors") {
		t.Errorf("severe respiratory advice should recommend staying indoors, got %q", severe)
	}
}
