// Package picksheet extracts structured games from free-form picksheet
// text via a chat model, with a JSON repair pass for truncated or
// malformed replies.
package picksheet

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/beaverbray/office-football-pool/internal/models"
)

// ParsedGame is one game as extracted from the sheet. Optional fields
// stay empty when the sheet does not carry them.
type ParsedGame struct {
	League     models.League `json:"league"`
	AwayTeam   string        `json:"awayTeam"`
	AwayRecord string        `json:"awayRecord,omitempty"`
	AwaySpread float64       `json:"awaySpread"`
	HomeTeam   string        `json:"homeTeam"`
	HomeRecord string        `json:"homeRecord,omitempty"`
	HomeSpread float64       `json:"homeSpread"`
	GameDay    string        `json:"gameDay,omitempty"`
	GameDate   string        `json:"gameDate,omitempty"`
	GameTime   string        `json:"gameTime,omitempty"`
	OverUnder  *float64      `json:"overUnder,omitempty"`
	Points     *float64      `json:"points,omitempty"`
}

// ParsedPicksheet is the full extraction result.
type ParsedPicksheet struct {
	Title      string       `json:"title,omitempty"`
	Week       string       `json:"week,omitempty"`
	Games      []ParsedGame `json:"games"`
	TotalGames int          `json:"totalGames"`
	NFLGames   int          `json:"nflGames"`
	NCAAFGames int          `json:"ncaafGames"`
}

// JSONChatter is the slice of the LLM client the parser needs.
type JSONChatter interface {
	ChatJSON(ctx context.Context, system, user string) (string, error)
}

type Parser struct {
	chat   JSONChatter
	logger *logrus.Logger
}

func NewParser(chat JSONChatter, logger *logrus.Logger) *Parser {
	return &Parser{chat: chat, logger: logger}
}

const systemPrompt = `You are an expert sports betting picksheet parser. Your job is to extract structured data from picksheet text and return it as valid JSON.

IMPORTANT: You must return ONLY valid JSON, no other text or explanation.

You must return a JSON object with this exact structure:
{
  "title": "optional title string",
  "week": "optional week string",
  "games": [
    {
      "league": "NFL" or "NCAAF",
      "awayTeam": "team name",
      "awayRecord": "optional record",
      "awaySpread": number,
      "homeTeam": "team name",
      "homeRecord": "optional record",
      "homeSpread": number,
      "gameDay": "optional day",
      "gameDate": "optional date",
      "gameTime": "optional time",
      "overUnder": optional number,
      "points": optional number
    }
  ],
  "totalGames": number,
  "nflGames": number,
  "ncaafGames": number
}

CRITICAL PARSING RULES:

1. HOME vs AWAY team identification (VERY IMPORTANT):
   - @ symbol: Team BEFORE @ is AWAY, team AFTER @ is HOME (e.g., "Buffalo @ New England" = Buffalo away, New England home)
   - vs keyword: Team BEFORE vs is HOME, team AFTER vs is AWAY (e.g., "Dallas vs Washington" = Dallas home, Washington away)
   - Capital letters: Team in ALL CAPS is usually HOME (when no @ or vs present)
   - Default: First team is AWAY, second team is HOME (if no other indicators)

2. Spread parsing:
   - Each team has opposite spreads (if one is +3.5, the other is -3.5)
   - The spread belongs to the team it's next to
   - PK or PICK means 0 spread for both teams
   - Parse decimal spreads accurately (e.g., -3.5, +7.5)

3. Over/Under (O/U) parsing:
   - Look for "O/U", "o/u", "Over/Under" followed by a number
   - This is the total points, store in overUnder field

4. League identification:
   - NFL teams: Professional teams (Cowboys, Chiefs, Packers, Bills, etc.)
   - NCAAF indicators: State, University, Tech, A&M, rankings (#1, #11), school names

5. Date and time extraction:
   - Extract full dates like "January 5, 2025"
   - Extract days of week (Monday, Tuesday, Sun, Mon, etc.)
   - Extract times (1:00 PM, 5:20 PM, etc.)

6. Records: Extract if shown in parentheses (e.g., "(7-10)", "(10-2)")

7. Point values: Extract if shown (e.g., "1 pt", "2 points")

Remember: Return ONLY valid JSON, no explanations or additional text.`

// Parse extracts every game from raw picksheet text.
func (p *Parser) Parse(ctx context.Context, text string) (*ParsedPicksheet, error) {
	if p.chat == nil {
		return nil, fmt.Errorf("no LLM client configured for picksheet parsing")
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("picksheet text is empty")
	}

	user := "Parse this picksheet and extract all games with their details:\n\n" + text
	reply, err := p.chat.ChatJSON(ctx, systemPrompt, user)
	if err != nil {
		return nil, fmt.Errorf("picksheet extraction: %w", err)
	}

	parsed, err := Decode(reply)
	if err != nil {
		return nil, err
	}
	if p.logger != nil {
		p.logger.WithFields(logrus.Fields{
			"games": len(parsed.Games),
			"nfl":   parsed.NFLGames,
			"ncaaf": parsed.NCAAFGames,
		}).Info("picksheet parsed")
	}
	return parsed, nil
}

// Decode unmarshals an extraction reply, running the repair pass when
// the payload does not decode as-is, then backfills the count fields.
func Decode(reply string) (*ParsedPicksheet, error) {
	var parsed ParsedPicksheet
	if err := json.Unmarshal([]byte(reply), &parsed); err != nil {
		repaired := Repair(reply)
		if second := json.Unmarshal([]byte(repaired), &parsed); second != nil {
			return nil, fmt.Errorf("decoding picksheet reply (%d bytes): %w", len(reply), err)
		}
	}

	nfl, ncaaf := 0, 0
	for _, g := range parsed.Games {
		switch g.League {
		case models.NFL:
			nfl++
		case models.NCAAF:
			ncaaf++
		}
	}
	if parsed.TotalGames == 0 {
		parsed.TotalGames = len(parsed.Games)
	}
	if parsed.NFLGames == 0 {
		parsed.NFLGames = nfl
	}
	if parsed.NCAAFGames == 0 {
		parsed.NCAAFGames = ncaaf
	}
	return &parsed, nil
}

// RawGames converts an extraction to the matcher's input shape. The
// picksheet spread tracked downstream is the home team's.
func (p *ParsedPicksheet) RawGames() []models.RawGame {
	games := make([]models.RawGame, 0, len(p.Games))
	for _, g := range p.Games {
		games = append(games, models.RawGame{
			HomeTeam: g.HomeTeam,
			AwayTeam: g.AwayTeam,
			Spread:   g.HomeSpread,
			GameTime: strings.Join(strings.Fields(g.GameDay+" "+g.GameDate+" "+g.GameTime), " "),
			League:   g.League,
		})
	}
	return games
}
