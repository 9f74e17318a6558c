package resolve

import (
	"testing"

	"github.com/beaverbray/office-football-pool/internal/models"
	"github.com/beaverbray/office-football-pool/internal/teams"
)

func newTestResolver() *Resolver {
	return NewResolver(teams.NewDirectory(), nil)
}

func TestResolveTeamExact(t *testing.T) {
	r := newTestResolver()

	m := r.ResolveTeam("Philadelphia Eagles", "")
	if m.MatchedName != "Philadelphia Eagles" {
		t.Errorf("MatchedName = %q, want %q", m.MatchedName, "Philadelphia Eagles")
	}
	if m.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", m.Confidence)
	}
	if m.Method != MethodExact {
		t.Errorf("Method = %q, want %q", m.Method, MethodExact)
	}
	if m.League != models.NFL {
		t.Errorf("League = %q, want NFL", m.League)
	}
}

func TestResolveTeamAlias(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name string
		want string
	}{
		{"Philly", "Philadelphia Eagles"},
		{"PHI", "Philadelphia Eagles"},
		{"Cowboys", "Dallas Cowboys"},
		{"KC", "Kansas City Chiefs"},
	}
	for _, tt := range tests {
		m := r.ResolveTeam(tt.name, "")
		if m.MatchedName != tt.want {
			t.Errorf("ResolveTeam(%q).MatchedName = %q, want %q", tt.name, m.MatchedName, tt.want)
		}
		if m.Confidence != 0.95 {
			t.Errorf("ResolveTeam(%q).Confidence = %v, want 0.95", tt.name, m.Confidence)
		}
		if m.Method != MethodAlias {
			t.Errorf("ResolveTeam(%q).Method = %q, want %q", tt.name, m.Method, MethodAlias)
		}
	}
}

func TestResolveTeamCaseAndPunctuation(t *testing.T) {
	r := newTestResolver()

	for _, name := range []string{"philadelphia eagles", "PHILADELPHIA EAGLES", "Philadelphia  Eagles!"} {
		m := r.ResolveTeam(name, "")
		if m.MatchedName != "Philadelphia Eagles" {
			t.Errorf("ResolveTeam(%q).MatchedName = %q, want %q", name, m.MatchedName, "Philadelphia Eagles")
		}
		if m.Confidence != 1.0 {
			t.Errorf("ResolveTeam(%q).Confidence = %v, want 1.0", name, m.Confidence)
		}
	}
}

func TestResolveTeamRankedNCAAF(t *testing.T) {
	r := newTestResolver()

	m := r.ResolveTeam("#11 Alabama", "")
	if m.MatchedName != "Alabama Crimson Tide" {
		t.Errorf("MatchedName = %q, want %q", m.MatchedName, "Alabama Crimson Tide")
	}
	if m.League != models.NCAAF {
		t.Errorf("League = %q, want NCAAF", m.League)
	}
	if m.Confidence != 0.95 {
		t.Errorf("Confidence = %v, want 0.95", m.Confidence)
	}
}

func TestResolveTeamExplicitNCAAFSkipsNFL(t *testing.T) {
	r := newTestResolver()

	// "Miami" is ambiguous: the Dolphins alias would win with an
	// unknown league, but an explicit NCAAF league must stay collegiate.
	m := r.ResolveTeam("Miami", models.NCAAF)
	if m.League != models.NCAAF {
		t.Errorf("League = %q, want NCAAF", m.League)
	}
	if m.MatchedName == "Miami Dolphins" {
		t.Errorf("MatchedName = %q, NFL catalog must be skipped for explicit NCAAF", m.MatchedName)
	}
}

func TestResolveTeamFuzzy(t *testing.T) {
	r := newTestResolver()

	m := r.ResolveTeam("Philadelphia Egles", "")
	if m.MatchedName != "Philadelphia Eagles" {
		t.Errorf("MatchedName = %q, want %q", m.MatchedName, "Philadelphia Eagles")
	}
	if m.Method != MethodFuzzy {
		t.Errorf("Method = %q, want %q", m.Method, MethodFuzzy)
	}
	if m.Confidence > 0.9 {
		t.Errorf("Confidence = %v, fuzzy matches must not exceed 0.9", m.Confidence)
	}
	if m.Confidence <= 0.54 { // 0.6 threshold scaled by 0.9
		t.Errorf("Confidence = %v, want above scaled threshold", m.Confidence)
	}
	if len(m.Candidates) == 0 || len(m.Candidates) > 3 {
		t.Errorf("len(Candidates) = %d, want 1..3", len(m.Candidates))
	}
	if m.Candidates[0].Name != "Philadelphia Eagles" {
		t.Errorf("Candidates[0] = %q, want %q", m.Candidates[0].Name, "Philadelphia Eagles")
	}
}

func TestResolveTeamConfidenceOrdering(t *testing.T) {
	r := newTestResolver()

	exact := r.ResolveTeam("Philadelphia Eagles", "")
	alias := r.ResolveTeam("Philly", "")
	fuzzy := r.ResolveTeam("Philadelphia Egles", "")

	if !(exact.Confidence > alias.Confidence) {
		t.Errorf("exact (%v) must outrank alias (%v)", exact.Confidence, alias.Confidence)
	}
	if !(alias.Confidence > fuzzy.Confidence) {
		t.Errorf("alias (%v) must outrank fuzzy (%v)", alias.Confidence, fuzzy.Confidence)
	}
}

func TestResolveTeamCollegiateFallback(t *testing.T) {
	r := newTestResolver()

	// Collegiate-looking but not in the catalog.
	m := r.ResolveTeam("#4 Chadron State", "")
	if m.Confidence != 0.7 {
		t.Errorf("Confidence = %v, want 0.7", m.Confidence)
	}
	if m.MatchedName != "Chadron State" {
		t.Errorf("MatchedName = %q, want rank stripped", m.MatchedName)
	}
	if m.League != models.NCAAF {
		t.Errorf("League = %q, want NCAAF", m.League)
	}
}

func TestResolveTeamFloorFallback(t *testing.T) {
	r := newTestResolver()

	m := r.ResolveTeam("Zzyzx Quokkas", "")
	if m.Confidence != 0.3 {
		t.Errorf("Confidence = %v, want 0.3", m.Confidence)
	}
	if m.MatchedName != "Zzyzx Quokkas" {
		t.Errorf("MatchedName = %q, want input unchanged", m.MatchedName)
	}
	if m.League != models.NFL {
		t.Errorf("League = %q, want NFL default", m.League)
	}

	m = r.ResolveTeam("Zzyzx Quokkas", models.NCAAF)
	if m.League != models.NCAAF {
		t.Errorf("League = %q, want passed-in league preserved", m.League)
	}
	if m.Confidence != 0.3 {
		t.Errorf("Confidence = %v, want 0.3", m.Confidence)
	}
}

func TestResolveTeamIdempotent(t *testing.T) {
	r := newTestResolver()

	for _, name := range []string{"Philly", "#11 Alabama", "Zzyzx Quokkas", "Philadelphia Egles"} {
		first := r.ResolveTeam(name, "")
		second := r.ResolveTeam(name, "")
		if first.MatchedName != second.MatchedName || first.Confidence != second.Confidence || first.Method != second.Method {
			t.Errorf("ResolveTeam(%q) not deterministic: %+v vs %+v", name, first, second)
		}
	}
}
