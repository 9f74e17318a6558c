// Package matching pairs picksheet games with market games by resolved
// team identity, tolerating swapped home/away orientation and name
// variation between the two feeds.
package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/beaverbray/office-football-pool/internal/models"
	"github.com/beaverbray/office-football-pool/internal/resolve"
)

// DefaultThreshold is the minimum pairing confidence accepted when the
// caller does not supply one.
const DefaultThreshold = 0.6

// GameMatcher matches games between the picksheet and market feeds.
type GameMatcher struct {
	resolver resolve.TeamResolver
	logger   *logrus.Logger
}

func NewGameMatcher(resolver resolve.TeamResolver, logger *logrus.Logger) *GameMatcher {
	return &GameMatcher{resolver: resolver, logger: logger}
}

// resolvedGame caches the two identity resolutions for one game.
type resolvedGame struct {
	home resolve.TeamMatch
	away resolve.TeamMatch
}

// MatchGames finds, for each source (picksheet) game, the best target
// (market) game whose resolved identities agree in either orientation.
//
// Pairing confidence is the minimum of the four team resolutions; a
// match is only as trustworthy as its least-certain name. Per source
// game only the best target survives, and it must reach the threshold.
// Ties break by smaller orientation-adjusted spread distance, then by
// first-seen target index. Each market game is claimed at most once.
//
// Unmatched source games are omitted from the result; the comparison
// engine reports them as unmatched. MatchGames errors only on
// structurally invalid input, never on "no match found".
func (m *GameMatcher) MatchGames(source []models.RawGame, target []models.MarketGame, threshold float64) ([]models.GameMatchCandidate, error) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	for i, g := range source {
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("source game %d: %w", i, err)
		}
	}
	for i, g := range target {
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("target game %d: %w", i, err)
		}
	}

	// One memo per run: the quadratic scan re-resolves the same names
	// target-count times otherwise.
	memo := resolve.NewMemo(m.resolver)

	resolvedTargets := make([]resolvedGame, len(target))
	for j, t := range target {
		resolvedTargets[j] = resolvedGame{
			home: memo.ResolveTeam(t.HomeTeam, ""),
			away: memo.ResolveTeam(t.AwayTeam, ""),
		}
	}

	matches := make([]models.GameMatchCandidate, 0, len(source))
	claimed := make(map[int]bool, len(target))

	for i, s := range source {
		sr := resolvedGame{
			home: memo.ResolveTeam(s.HomeTeam, ""),
			away: memo.ResolveTeam(s.AwayTeam, ""),
		}

		bestIdx := -1
		bestConfidence := 0.0
		bestSpreadDist := math.Inf(1)

		for j, t := range target {
			if claimed[j] {
				continue
			}
			tr := resolvedTargets[j]

			normal := sameIdentity(sr.home, tr.home) && sameIdentity(sr.away, tr.away)
			swapped := sameIdentity(sr.home, tr.away) && sameIdentity(sr.away, tr.home)
			if !normal && !swapped {
				continue
			}

			confidence := min4(sr.home.Confidence, sr.away.Confidence, tr.home.Confidence, tr.away.Confidence)
			if confidence < threshold {
				continue
			}

			// When the orientation is swapped the market's home spread
			// belongs to the source's away team, so compare negated.
			marketSpread := t.HomeSpread
			if swapped && !normal {
				marketSpread = -t.HomeSpread
			}
			spreadDist := math.Abs(s.Spread - marketSpread)

			if confidence > bestConfidence ||
				(confidence == bestConfidence && spreadDist < bestSpreadDist) {
				bestIdx = j
				bestConfidence = confidence
				bestSpreadDist = spreadDist
			}
		}

		if bestIdx == -1 {
			continue
		}
		claimed[bestIdx] = true
		matches = append(matches, models.GameMatchCandidate{
			PicksheetIndex: i,
			MarketIndex:    bestIdx,
			Confidence:     bestConfidence,
		})
	}

	if m.logger != nil {
		m.logger.WithFields(logrus.Fields{
			"source_games":   len(source),
			"target_games":   len(target),
			"matches":        len(matches),
			"resolver_calls": memo.ResolverCalls(),
			"cache_hits":     memo.CacheHits(),
		}).Debug("game matching complete")
	}
	return matches, nil
}

func sameIdentity(a, b resolve.TeamMatch) bool {
	return strings.EqualFold(a.MatchedName, b.MatchedName)
}

func min4(a, b, c, d float64) float64 {
	return min(min(a, b), min(c, d))
}
