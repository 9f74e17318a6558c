package picksheet

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	leagueFieldRE   = regexp.MustCompile(`"league"`)
	nflLeagueRE     = regexp.MustCompile(`"league"\s*:\s*"NFL"`)
	ncaafLeagueRE   = regexp.MustCompile(`"league"\s*:\s*"NCAAF"`)
	trailingCommaRE = regexp.MustCompile(`,(\s*[}\]])`)
	structureCharRE = regexp.MustCompile(`[,}\]]`)
)

// Repair patches the malformed JSON shapes a token-limited chat reply
// produces. Truncated payloads are cut back to the last complete game
// and re-closed with recounted summary fields; trailing commas and a
// dangling unterminated string are also fixed. The result is a best
// effort, not guaranteed to decode.
func Repair(raw string) string {
	fixed := raw

	if !strings.HasSuffix(strings.TrimSpace(fixed), "}") {
		if cut := strings.LastIndex(fixed, "},"); cut > 0 {
			fixed = fixed[:cut+1]
			total := len(leagueFieldRE.FindAllString(fixed, -1))
			nfl := len(nflLeagueRE.FindAllString(fixed, -1))
			ncaaf := len(ncaafLeagueRE.FindAllString(fixed, -1))
			fixed += fmt.Sprintf(`],"totalGames":%d,"nflGames":%d,"ncaafGames":%d}`, total, nfl, ncaaf)
		}
	}

	fixed = trailingCommaRE.ReplaceAllString(fixed, "$1")

	if strings.Count(fixed, `"`)%2 != 0 {
		fixed = closeDanglingQuote(fixed)
	}
	return fixed
}

// closeDanglingQuote inserts a closing quote before the first structure
// character that follows the last (unpaired) quote in the payload.
func closeDanglingQuote(s string) string {
	last := strings.LastIndex(s, `"`)
	if last < 0 {
		return s
	}
	tail := s[last+1:]
	loc := structureCharRE.FindStringIndex(tail)
	if loc == nil {
		return s
	}
	insert := last + 1 + loc[0]
	return s[:insert] + `"` + s[insert:]
}
