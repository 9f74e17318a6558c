package matching

import (
	"math"
	"testing"

	"github.com/beaverbray/office-football-pool/internal/models"
	"github.com/beaverbray/office-football-pool/internal/resolve"
	"github.com/beaverbray/office-football-pool/internal/teams"
)

func newTestMatcher() *GameMatcher {
	return NewGameMatcher(resolve.NewResolver(teams.NewDirectory(), nil), nil)
}

func TestMatchGamesExactPair(t *testing.T) {
	m := newTestMatcher()

	source := []models.RawGame{
		{HomeTeam: "Philadelphia Eagles", AwayTeam: "Dallas Cowboys", Spread: -3.5},
	}
	target := []models.MarketGame{
		{GameID: "g1", HomeTeam: "Philadelphia Eagles", AwayTeam: "Dallas Cowboys", HomeSpread: -3.0},
	}

	matches, err := m.MatchGames(source, target, 0)
	if err != nil {
		t.Fatalf("MatchGames failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	got := matches[0]
	if got.PicksheetIndex != 0 || got.MarketIndex != 0 {
		t.Errorf("match = (%d, %d), want (0, 0)", got.PicksheetIndex, got.MarketIndex)
	}
	if got.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", got.Confidence)
	}
}

func TestMatchGamesAliases(t *testing.T) {
	m := newTestMatcher()

	source := []models.RawGame{
		{HomeTeam: "Philly", AwayTeam: "Cowboys", Spread: -3.5},
	}
	target := []models.MarketGame{
		{GameID: "g1", HomeTeam: "Philadelphia Eagles", AwayTeam: "Dallas Cowboys", HomeSpread: -3.0},
	}

	matches, err := m.MatchGames(source, target, 0)
	if err != nil {
		t.Fatalf("MatchGames failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	// Confidence is the minimum of the four resolutions; the two alias
	// hits cap it at 0.95.
	if matches[0].Confidence != 0.95 {
		t.Errorf("Confidence = %v, want 0.95", matches[0].Confidence)
	}
}

func TestMatchGamesSwappedOrientation(t *testing.T) {
	m := newTestMatcher()

	source := []models.RawGame{
		{HomeTeam: "Dallas Cowboys", AwayTeam: "Philadelphia Eagles", Spread: 3.5},
	}
	target := []models.MarketGame{
		{GameID: "g1", HomeTeam: "Philadelphia Eagles", AwayTeam: "Dallas Cowboys", HomeSpread: -3.0},
	}

	matches, err := m.MatchGames(source, target, 0)
	if err != nil {
		t.Fatalf("MatchGames failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("swapped orientation not matched: len(matches) = %d, want 1", len(matches))
	}
	if matches[0].Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", matches[0].Confidence)
	}
}

func TestMatchGamesSwapSymmetry(t *testing.T) {
	m := newTestMatcher()

	normal := []models.RawGame{
		{HomeTeam: "Philadelphia Eagles", AwayTeam: "Dallas Cowboys", Spread: -3.5},
	}
	swapped := []models.RawGame{
		{HomeTeam: "Dallas Cowboys", AwayTeam: "Philadelphia Eagles", Spread: 3.5},
	}
	target := []models.MarketGame{
		{GameID: "g1", HomeTeam: "Philadelphia Eagles", AwayTeam: "Dallas Cowboys", HomeSpread: -3.0},
	}

	a, err := m.MatchGames(normal, target, 0)
	if err != nil {
		t.Fatalf("MatchGames(normal) failed: %v", err)
	}
	b, err := m.MatchGames(swapped, target, 0)
	if err != nil {
		t.Fatalf("MatchGames(swapped) failed: %v", err)
	}
	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("len = (%d, %d), want (1, 1)", len(a), len(b))
	}
	if a[0].Confidence != b[0].Confidence {
		t.Errorf("confidence differs across orientation: %v vs %v", a[0].Confidence, b[0].Confidence)
	}
	if a[0].MarketIndex != b[0].MarketIndex {
		t.Errorf("market index differs across orientation: %d vs %d", a[0].MarketIndex, b[0].MarketIndex)
	}
}

func TestMatchGamesThreshold(t *testing.T) {
	m := newTestMatcher()

	// Unknown teams resolve at floor confidence 0.3, below any sane
	// threshold.
	source := []models.RawGame{
		{HomeTeam: "Zzyzx Quokkas", AwayTeam: "Yreka Yaks", Spread: -3.0},
	}
	target := []models.MarketGame{
		{GameID: "g1", HomeTeam: "Zzyzx Quokkas", AwayTeam: "Yreka Yaks", HomeSpread: -3.0},
	}

	matches, err := m.MatchGames(source, target, 0.6)
	if err != nil {
		t.Fatalf("MatchGames failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("len(matches) = %d, want 0 (below threshold)", len(matches))
	}

	matches, err = m.MatchGames(source, target, 0.2)
	if err != nil {
		t.Fatalf("MatchGames failed: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("len(matches) = %d, want 1 with permissive threshold", len(matches))
	}
}

func TestMatchGamesOneToOne(t *testing.T) {
	m := newTestMatcher()

	// Two picksheet entries for the same pairing compete for a single
	// market game; only one may claim it.
	source := []models.RawGame{
		{HomeTeam: "Philadelphia Eagles", AwayTeam: "Dallas Cowboys", Spread: -3.5},
		{HomeTeam: "Philly", AwayTeam: "Cowboys", Spread: -3.0},
	}
	target := []models.MarketGame{
		{GameID: "g1", HomeTeam: "Philadelphia Eagles", AwayTeam: "Dallas Cowboys", HomeSpread: -3.0},
	}

	matches, err := m.MatchGames(source, target, 0)
	if err != nil {
		t.Fatalf("MatchGames failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if matches[0].PicksheetIndex != 0 {
		t.Errorf("PicksheetIndex = %d, want 0 (first source wins the claim)", matches[0].PicksheetIndex)
	}
}

func TestMatchGamesTieBreakBySpreadDistance(t *testing.T) {
	m := newTestMatcher()

	// Two market copies of the same pairing at equal confidence; the one
	// whose spread sits closer to the picksheet's must win.
	source := []models.RawGame{
		{HomeTeam: "Philadelphia Eagles", AwayTeam: "Dallas Cowboys", Spread: -7.0},
	}
	target := []models.MarketGame{
		{GameID: "far", HomeTeam: "Philadelphia Eagles", AwayTeam: "Dallas Cowboys", HomeSpread: -2.0},
		{GameID: "near", HomeTeam: "Philadelphia Eagles", AwayTeam: "Dallas Cowboys", HomeSpread: -6.5},
	}

	matches, err := m.MatchGames(source, target, 0)
	if err != nil {
		t.Fatalf("MatchGames failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if matches[0].MarketIndex != 1 {
		t.Errorf("MarketIndex = %d, want 1 (closer spread)", matches[0].MarketIndex)
	}
}

func TestMatchGamesTieBreakFirstSeen(t *testing.T) {
	m := newTestMatcher()

	source := []models.RawGame{
		{HomeTeam: "Philadelphia Eagles", AwayTeam: "Dallas Cowboys", Spread: -3.0},
	}
	target := []models.MarketGame{
		{GameID: "first", HomeTeam: "Philadelphia Eagles", AwayTeam: "Dallas Cowboys", HomeSpread: -3.0},
		{GameID: "second", HomeTeam: "Philadelphia Eagles", AwayTeam: "Dallas Cowboys", HomeSpread: -3.0},
	}

	matches, err := m.MatchGames(source, target, 0)
	if err != nil {
		t.Fatalf("MatchGames failed: %v", err)
	}
	if len(matches) != 1 || matches[0].MarketIndex != 0 {
		t.Errorf("matches = %+v, want single match on market index 0", matches)
	}
}

func TestMatchGamesNoCrossPairing(t *testing.T) {
	m := newTestMatcher()

	source := []models.RawGame{
		{HomeTeam: "Philadelphia Eagles", AwayTeam: "Dallas Cowboys", Spread: -3.5},
	}
	target := []models.MarketGame{
		{GameID: "g1", HomeTeam: "Philadelphia Eagles", AwayTeam: "New York Giants", HomeSpread: -3.0},
	}

	matches, err := m.MatchGames(source, target, 0)
	if err != nil {
		t.Fatalf("MatchGames failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("len(matches) = %d, want 0 (different pairings)", len(matches))
	}
}

func TestMatchGamesPartialBoard(t *testing.T) {
	m := newTestMatcher()

	source := []models.RawGame{
		{HomeTeam: "Philadelphia Eagles", AwayTeam: "Dallas Cowboys", Spread: -3.5},
		{HomeTeam: "Kansas City Chiefs", AwayTeam: "Buffalo Bills", Spread: -2.5},
		{HomeTeam: "Green Bay Packers", AwayTeam: "Chicago Bears", Spread: -6.0},
		{HomeTeam: "Miami Dolphins", AwayTeam: "New York Jets", Spread: -1.0},
		{HomeTeam: "Denver Broncos", AwayTeam: "Las Vegas Raiders", Spread: -4.0},
	}
	target := []models.MarketGame{
		{GameID: "g1", HomeTeam: "Philadelphia Eagles", AwayTeam: "Dallas Cowboys", HomeSpread: -3.0},
		{GameID: "g2", HomeTeam: "Kansas City Chiefs", AwayTeam: "Buffalo Bills", HomeSpread: -2.5},
		{GameID: "g3", HomeTeam: "Green Bay Packers", AwayTeam: "Chicago Bears", HomeSpread: -5.5},
	}

	matches, err := m.MatchGames(source, target, 0.6)
	if err != nil {
		t.Fatalf("MatchGames failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("len(matches) = %d, want 3", len(matches))
	}
	seen := map[int]bool{}
	for _, match := range matches {
		if seen[match.MarketIndex] {
			t.Errorf("market index %d claimed twice", match.MarketIndex)
		}
		seen[match.MarketIndex] = true
	}
}

func TestMatchGamesValidation(t *testing.T) {
	m := newTestMatcher()

	badSource := []models.RawGame{{HomeTeam: "", AwayTeam: "Cowboys", Spread: -3}}
	goodTarget := []models.MarketGame{{GameID: "g1", HomeTeam: "A", AwayTeam: "B", HomeSpread: 0}}
	if _, err := m.MatchGames(badSource, goodTarget, 0); err == nil {
		t.Error("expected error for missing home team")
	}

	nanSource := []models.RawGame{{HomeTeam: "Eagles", AwayTeam: "Cowboys", Spread: math.NaN()}}
	if _, err := m.MatchGames(nanSource, goodTarget, 0); err == nil {
		t.Error("expected error for NaN spread")
	}

	goodSource := []models.RawGame{{HomeTeam: "Eagles", AwayTeam: "Cowboys", Spread: -3}}
	badTarget := []models.MarketGame{{GameID: "", HomeTeam: "A", AwayTeam: "B", HomeSpread: 0}}
	if _, err := m.MatchGames(goodSource, badTarget, 0); err == nil {
		t.Error("expected error for missing market game id")
	}
}

func TestMatchGamesEmptyInputs(t *testing.T) {
	m := newTestMatcher()

	matches, err := m.MatchGames(nil, nil, 0)
	if err != nil {
		t.Fatalf("MatchGames(nil, nil) failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("len(matches) = %d, want 0", len(matches))
	}
}
