package models

import (
	"fmt"
	"math"
	"strings"
)

// League identifies which catalog a team belongs to.
type League string

const (
	NFL   League = "NFL"
	NCAAF League = "NCAAF"
)

// RawGame is one game as extracted from a picksheet. Spread is the
// home-team signed spread (negative means the home team is favored).
type RawGame struct {
	HomeTeam string  `json:"homeTeam"`
	AwayTeam string  `json:"awayTeam"`
	Spread   float64 `json:"spread"`
	GameTime string  `json:"gameTime,omitempty"`
	League   League  `json:"league,omitempty"`
}

// Validate reports structurally invalid picksheet records. Unknown team
// names are not an error; missing names or non-finite spreads are.
func (g RawGame) Validate() error {
	if strings.TrimSpace(g.HomeTeam) == "" {
		return fmt.Errorf("picksheet game missing home team")
	}
	if strings.TrimSpace(g.AwayTeam) == "" {
		return fmt.Errorf("picksheet game missing away team")
	}
	if math.IsNaN(g.Spread) || math.IsInf(g.Spread, 0) {
		return fmt.Errorf("picksheet game %s @ %s has invalid spread", g.AwayTeam, g.HomeTeam)
	}
	return nil
}

// MarketGame is one game as supplied by the odds provider.
type MarketGame struct {
	GameID     string  `json:"gameId"`
	HomeTeam   string  `json:"homeTeam"`
	AwayTeam   string  `json:"awayTeam"`
	HomeSpread float64 `json:"homeSpread"`
	GameTime   string  `json:"gameTime"`
	League     League  `json:"league,omitempty"`
}

// Validate reports structurally invalid market records.
func (g MarketGame) Validate() error {
	if strings.TrimSpace(g.GameID) == "" {
		return fmt.Errorf("market game missing game id")
	}
	if strings.TrimSpace(g.HomeTeam) == "" {
		return fmt.Errorf("market game %s missing home team", g.GameID)
	}
	if strings.TrimSpace(g.AwayTeam) == "" {
		return fmt.Errorf("market game %s missing away team", g.GameID)
	}
	if math.IsNaN(g.HomeSpread) || math.IsInf(g.HomeSpread, 0) {
		return fmt.Errorf("market game %s has invalid spread", g.GameID)
	}
	return nil
}

// GameMatchCandidate pairs a picksheet game with the market game it was
// matched to. At most one candidate exists per picksheet index, and a
// market index is claimed by at most one picksheet game.
type GameMatchCandidate struct {
	PicksheetIndex int     `json:"picksheetIndex"`
	MarketIndex    int     `json:"marketIndex"`
	Confidence     float64 `json:"confidence"`
}
