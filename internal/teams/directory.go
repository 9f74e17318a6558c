// Package teams holds the static reference catalogs of canonical team
// names and their picksheet aliases, and the normalized lookup structures
// built over them at startup. The catalogs are immutable after
// construction; a Directory is safe for concurrent readers.
package teams

import (
	"regexp"
	"strings"

	"github.com/beaverbray/office-football-pool/internal/models"
)

// Team is one catalog entry: a canonical name plus its ordered aliases.
type Team struct {
	Name    string
	Aliases []string
}

// entry caches the normalized forms of a team so lookups do not
// re-normalize catalog strings on every call.
type entry struct {
	Team
	normName    string
	normAliases []string
}

// Directory is the immutable team reference data for both leagues.
type Directory struct {
	nfl   []entry
	ncaaf []entry

	// ncaafAbbrevs maps short all-caps NCAAF aliases (length <= 4) to
	// their canonical team. Used by the collegiate heuristic.
	ncaafAbbrevs map[string]string
}

var (
	nonWordRE    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRE = regexp.MustCompile(`\s+`)
	rankRE       = regexp.MustCompile(`^#\d+\s*`)
)

// Normalize prepares a team name for comparison: trim, strip
// punctuation, collapse whitespace, lowercase.
func Normalize(name string) string {
	s := strings.TrimSpace(name)
	s = nonWordRE.ReplaceAllString(s, "")
	s = whitespaceRE.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

// StripRank removes a leading poll-rank marker such as "#11 ".
func StripRank(name string) string {
	return rankRE.ReplaceAllString(name, "")
}

// HasRank reports whether the name starts with a poll-rank marker.
func HasRank(name string) bool {
	return rankRE.MatchString(strings.TrimSpace(name))
}

// NewDirectory builds the lookup structures over the built-in catalogs.
func NewDirectory() *Directory {
	d := &Directory{
		nfl:          buildEntries(nflTeams),
		ncaaf:        buildEntries(ncaafTeams),
		ncaafAbbrevs: make(map[string]string),
	}
	for _, t := range ncaafTeams {
		for _, alias := range t.Aliases {
			if len(alias) <= 4 && alias == strings.ToUpper(alias) {
				if _, exists := d.ncaafAbbrevs[alias]; !exists {
					d.ncaafAbbrevs[alias] = t.Name
				}
			}
		}
	}
	return d
}

func buildEntries(catalog []Team) []entry {
	entries := make([]entry, len(catalog))
	for i, t := range catalog {
		e := entry{Team: t, normName: Normalize(t.Name)}
		e.normAliases = make([]string, len(t.Aliases))
		for j, a := range t.Aliases {
			e.normAliases[j] = Normalize(a)
		}
		entries[i] = e
	}
	return entries
}

// Teams returns the catalog for a league in insertion order.
func (d *Directory) Teams(league models.League) []Team {
	entries := d.entries(league)
	out := make([]Team, len(entries))
	for i, e := range entries {
		out[i] = e.Team
	}
	return out
}

func (d *Directory) entries(league models.League) []entry {
	if league == models.NFL {
		return d.nfl
	}
	return d.ncaaf
}

// Lookup scans a league catalog in insertion order for an exact
// canonical-name or alias match against any of the given normalized
// forms. First match wins. Returns the canonical name, whether the hit
// was on the canonical name (as opposed to an alias), and ok.
func (d *Directory) Lookup(league models.League, normalized ...string) (name string, canonical bool, ok bool) {
	for _, e := range d.entries(league) {
		for _, norm := range normalized {
			if norm == "" {
				continue
			}
			if e.normName == norm {
				return e.Name, true, true
			}
		}
		for _, alias := range e.normAliases {
			for _, norm := range normalized {
				if norm != "" && alias == norm {
					return e.Name, false, true
				}
			}
		}
	}
	return "", false, false
}

// League classifies a raw team name against the catalogs: NFL first,
// then NCAAF. Used by the comparison engine's league inference so it
// shares one source of truth with the resolver.
func (d *Directory) League(name string) (models.League, bool) {
	norm := Normalize(name)
	clean := Normalize(StripRank(name))
	if _, _, ok := d.Lookup(models.NFL, norm); ok {
		return models.NFL, true
	}
	if _, _, ok := d.Lookup(models.NCAAF, norm, clean); ok {
		return models.NCAAF, true
	}
	return "", false
}

// LooksCollegiate reports whether a name heuristically belongs to the
// NCAAF catalog: it contains a school token, contains a known short
// NCAAF abbreviation, or carries a poll-rank marker.
func (d *Directory) LooksCollegiate(name string) bool {
	lower := strings.ToLower(name)
	for _, token := range []string{"state", "university", "college", "tech", "a&m"} {
		if strings.Contains(lower, token) {
			return true
		}
	}
	for abbr := range d.ncaafAbbrevs {
		if strings.Contains(lower, strings.ToLower(abbr)) {
			return true
		}
	}
	return HasRank(name)
}
