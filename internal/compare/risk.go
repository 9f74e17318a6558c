package compare

import "fmt"

// RiskLevel buckets an absolute spread delta for display.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskForDelta classifies a spread delta: anything past a touchdown of
// movement is critical.
func RiskForDelta(delta float64) RiskLevel {
	abs := delta
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs <= 2:
		return RiskLow
	case abs <= 4:
		return RiskMedium
	case abs <= 7:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// FormatSpread renders a spread for display, e.g. "DAL -3.5", "PHI +7",
// or "NE PK" for a pick'em.
func FormatSpread(team string, spread float64) string {
	if spread == 0 {
		return fmt.Sprintf("%s PK", team)
	}
	if spread > 0 {
		return fmt.Sprintf("%s +%v", team, spread)
	}
	return fmt.Sprintf("%s %v", team, spread)
}
