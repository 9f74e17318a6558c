package compare

import "testing"

func TestRiskForDelta(t *testing.T) {
	tests := []struct {
		delta float64
		want  RiskLevel
	}{
		{0, RiskLow},
		{2, RiskLow},
		{-2, RiskLow},
		{2.5, RiskMedium},
		{4, RiskMedium},
		{4.5, RiskHigh},
		{7, RiskHigh},
		{-7, RiskHigh},
		{7.5, RiskCritical},
		{14, RiskCritical},
	}
	for _, tt := range tests {
		if got := RiskForDelta(tt.delta); got != tt.want {
			t.Errorf("RiskForDelta(%v) = %q, want %q", tt.delta, got, tt.want)
		}
	}
}

func TestFormatSpread(t *testing.T) {
	tests := []struct {
		team   string
		spread float64
		want   string
	}{
		{"DAL", -3.5, "DAL -3.5"},
		{"PHI", 7, "PHI +7"},
		{"NE", 0, "NE PK"},
		{"KC", -10, "KC -10"},
	}
	for _, tt := range tests {
		if got := FormatSpread(tt.team, tt.spread); got != tt.want {
			t.Errorf("FormatSpread(%q, %v) = %q, want %q", tt.team, tt.spread, got, tt.want)
		}
	}
}
