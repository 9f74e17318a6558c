// Package compare turns matched game pairs into per-game risk
// annotations and run-level KPIs.
package compare

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/beaverbray/office-football-pool/internal/models"
	"github.com/beaverbray/office-football-pool/internal/teams"
)

// keyNumbers are the margins football games most often land on. Each is
// checked at both its positive and negative value.
var keyNumbers = []int{3, 7, 10, 14}

// Result is one complete comparison run.
type Result struct {
	Comparisons []models.GameComparison `json:"comparisons"`
	KPIs        models.ComparisonKPIs   `json:"kpis"`
	Unmatched   []models.UnmatchedGame  `json:"unmatched"`
}

// Engine computes spread comparisons and aggregate KPIs. It consults
// the team directory only for league inference on market records that
// did not carry a league.
type Engine struct {
	dir    *teams.Directory
	logger *logrus.Logger
	now    func() time.Time
}

func NewEngine(dir *teams.Directory, logger *logrus.Logger) *Engine {
	return &Engine{dir: dir, logger: logger, now: time.Now}
}

// CompareGame annotates one matched picksheet/market pair.
func (e *Engine) CompareGame(source models.RawGame, target models.MarketGame, confidence float64) models.GameComparison {
	delta := source.Spread - target.HomeSpread
	crossed := crossedKeyNumbers(source.Spread, target.HomeSpread)

	league := target.League
	if league == "" {
		league = e.inferLeague(target.HomeTeam, target.AwayTeam)
	}

	return models.GameComparison{
		GameID:            target.GameID,
		HomeTeam:          target.HomeTeam,
		AwayTeam:          target.AwayTeam,
		GameTime:          target.GameTime,
		League:            league,
		PicksheetSpread:   source.Spread,
		MarketSpread:      target.HomeSpread,
		SpreadDelta:       delta,
		CrossesKeyNumber:  len(crossed) > 0,
		KeyNumbersCrossed: crossed,
		FavoriteFlipped:   favoriteFlipped(source.Spread, target.HomeSpread),
		Confidence:        confidence,
		Matched:           true,
	}
}

// CompareGames produces one comparison per match, the unmatched lists
// for both sides, and the KPI block. It tolerates an empty match set.
func (e *Engine) CompareGames(source []models.RawGame, target []models.MarketGame, matches []models.GameMatchCandidate) Result {
	comparisons := make([]models.GameComparison, 0, len(matches))
	matchedSource := make(map[int]bool, len(matches))
	matchedTarget := make(map[int]bool, len(matches))

	for _, match := range matches {
		if match.PicksheetIndex < 0 || match.PicksheetIndex >= len(source) ||
			match.MarketIndex < 0 || match.MarketIndex >= len(target) {
			continue
		}
		comparisons = append(comparisons,
			e.CompareGame(source[match.PicksheetIndex], target[match.MarketIndex], match.Confidence))
		matchedSource[match.PicksheetIndex] = true
		matchedTarget[match.MarketIndex] = true
	}

	unmatched := make([]models.UnmatchedGame, 0)
	for i, g := range source {
		if matchedSource[i] {
			continue
		}
		unmatched = append(unmatched, models.UnmatchedGame{
			Source:   "picksheet",
			GameInfo: fmt.Sprintf("%s @ %s (%v)", g.AwayTeam, g.HomeTeam, g.Spread),
			Reason:   "No matching market game found",
			GameTime: g.GameTime,
		})
	}
	for i, g := range target {
		if matchedTarget[i] {
			continue
		}
		unmatched = append(unmatched, models.UnmatchedGame{
			Source:   "market",
			GameInfo: fmt.Sprintf("%s @ %s (%v)", g.AwayTeam, g.HomeTeam, g.HomeSpread),
			Reason:   "No matching picksheet game found",
			GameTime: g.GameTime,
		})
	}

	unmatchedPicksheet := 0
	for _, u := range unmatched {
		if u.Source == "picksheet" {
			unmatchedPicksheet++
		}
	}
	kpis := e.calculateKPIs(comparisons, len(source), unmatchedPicksheet)

	if e.logger != nil {
		e.logger.WithFields(logrus.Fields{
			"matched":   kpis.MatchedGames,
			"unmatched": len(unmatched),
			"avg_delta": kpis.AvgSpreadDelta,
		}).Debug("comparison run complete")
	}
	return Result{Comparisons: comparisons, KPIs: kpis, Unmatched: unmatched}
}

// calculateKPIs aggregates a run. Distribution statistics operate on
// absolute spread deltas. All rates degrade to zero on an empty match
// set; nothing here divides by zero.
func (e *Engine) calculateKPIs(comparisons []models.GameComparison, totalSourceGames, unmatchedSourceGames int) models.ComparisonKPIs {
	kpis := models.ComparisonKPIs{
		TotalGames:     totalSourceGames,
		MatchedGames:   len(comparisons),
		UnmatchedGames: unmatchedSourceGames,
		Timestamp:      e.now().UTC().Format(time.RFC3339),
	}
	if len(comparisons) == 0 {
		return kpis
	}

	deltas := make([]float64, len(comparisons))
	for i, c := range comparisons {
		deltas[i] = math.Abs(c.SpreadDelta)
	}

	sum := 0.0
	for _, d := range deltas {
		sum += d
	}
	mean := sum / float64(len(deltas))

	sorted := make([]float64, len(deltas))
	copy(sorted, deltas)
	sort.Float64s(sorted)

	// Lower-middle median and floor-indexed p95, matching the reported
	// output contract (no interpolation).
	median := sorted[len(sorted)/2]
	p95Index := int(float64(len(sorted)) * 0.95)
	if p95Index > len(sorted)-1 {
		p95Index = len(sorted) - 1
	}
	p95 := sorted[p95Index]

	variance := 0.0
	for _, d := range deltas {
		variance += (d - mean) * (d - mean)
	}
	variance /= float64(len(deltas)) // population stddev

	crossings := 0
	flips := 0
	largest := comparisons[0]
	for _, c := range comparisons {
		if c.CrossesKeyNumber {
			crossings++
		}
		if c.FavoriteFlipped {
			flips++
		}
		if math.Abs(c.SpreadDelta) > math.Abs(largest.SpreadDelta) {
			largest = c
		}
	}

	matched := float64(len(comparisons))
	kpis.MatchRate = round3(matched / float64(totalSourceGames))
	kpis.AvgSpreadDelta = round2(mean)
	kpis.MedianSpreadDelta = round2(median)
	kpis.P95SpreadDelta = round2(p95)
	kpis.StdDevSpreadDelta = round2(math.Sqrt(variance))
	kpis.KeyNumberCrossings = crossings
	kpis.KeyNumberCrossingRate = round3(float64(crossings) / matched)
	kpis.FavoriteFlips = flips
	kpis.FavoriteFlipRate = round3(float64(flips) / matched)
	kpis.LargestDelta = &models.LargestDelta{
		GameID: largest.GameID,
		Teams:  fmt.Sprintf("%s @ %s", largest.AwayTeam, largest.HomeTeam),
		Delta:  largest.SpreadDelta,
	}
	return kpis
}

// crossedKeyNumbers returns every key number (positive or negative) the
// two spreads fall on opposite sides of, strict on both ends.
func crossedKeyNumbers(picksheetSpread, marketSpread float64) []int {
	var crossed []int
	for _, k := range keyNumbers {
		for _, key := range []float64{float64(k), float64(-k)} {
			if (picksheetSpread > key && marketSpread < key) ||
				(picksheetSpread < key && marketSpread > key) {
				crossed = append(crossed, int(key))
			}
		}
	}
	return crossed
}

// favoriteFlipped reports a strict sign disagreement: one spread
// strictly favors the home team while the other strictly favors the
// away team. A pick'em (zero) on either side is not a flip.
func favoriteFlipped(picksheetSpread, marketSpread float64) bool {
	return (picksheetSpread > 0 && marketSpread < 0) ||
		(picksheetSpread < 0 && marketSpread > 0)
}

// inferLeague classifies a game by looking both team names up in the
// directory. Unknown names default to NCAAF since colleges vastly outnumber
// NFL teams, so an unrecognized team is far more likely collegiate.
func (e *Engine) inferLeague(homeTeam, awayTeam string) models.League {
	if lg, ok := e.dir.League(homeTeam); ok && lg == models.NFL {
		return models.NFL
	}
	if lg, ok := e.dir.League(awayTeam); ok && lg == models.NFL {
		return models.NFL
	}
	return models.NCAAF
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
