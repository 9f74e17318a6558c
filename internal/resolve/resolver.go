// Package resolve maps free-text team names to canonical identities.
//
// Resolution is a short-circuiting cascade: exact and alias lookups
// against the NFL catalog, then the NCAAF catalog when the league is
// known or the name looks collegiate, then fuzzy similarity, then
// degrading fallbacks. The resolver never fails; an unrecognizable name
// comes back with floor confidence so callers can route it to manual
// review instead of aborting a run.
package resolve

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/beaverbray/office-football-pool/internal/models"
	"github.com/beaverbray/office-football-pool/internal/teams"
)

// Method records which stage of the cascade produced a match.
type Method string

const (
	MethodExact Method = "exact"
	MethodAlias Method = "alias"
	MethodFuzzy Method = "fuzzy"
	MethodLLM   Method = "llm"
)

// Confidence levels by resolution method. Fuzzy results are scaled by
// 0.9 so they always rank below alias hits on the same input.
const (
	exactConfidence = 1.0
	aliasConfidence = 0.95
	fuzzyScale      = 0.9
	fuzzyThreshold  = 0.6
	floorConfidence = 0.3
)

// Candidate is one ranked fuzzy-match alternative.
type Candidate struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// TeamMatch is the result of resolving one raw team name.
type TeamMatch struct {
	OriginalName string        `json:"originalName"`
	MatchedName  string        `json:"matchedName"`
	Confidence   float64       `json:"confidence"`
	League       models.League `json:"league"`
	Method       Method        `json:"method"`
	Candidates   []Candidate   `json:"candidates,omitempty"`
}

// TeamResolver is the contract the game matcher depends on.
type TeamResolver interface {
	ResolveTeam(name string, league models.League) TeamMatch
}

// Resolver resolves names against an immutable team directory. It holds
// no mutable state and is safe for concurrent use.
type Resolver struct {
	dir    *teams.Directory
	logger *logrus.Logger
}

func NewResolver(dir *teams.Directory, logger *logrus.Logger) *Resolver {
	return &Resolver{dir: dir, logger: logger}
}

// ResolveTeam maps one raw team name to its best-guess canonical
// identity. An empty league means "unknown"; passing models.NCAAF skips
// the NFL catalog entirely.
func (r *Resolver) ResolveTeam(name string, league models.League) TeamMatch {
	if league != models.NCAAF {
		if m, ok := r.findExact(models.NFL, name); ok {
			return m
		}
	}

	if league == models.NCAAF || r.dir.LooksCollegiate(name) {
		if m, ok := r.findExact(models.NCAAF, name); ok {
			return m
		}
		if m, ok := r.findFuzzy(models.NCAAF, name); ok {
			return m
		}
	}

	if league != models.NCAAF {
		if m, ok := r.findFuzzy(models.NFL, name); ok {
			return m
		}
	}

	// Collegiate-looking but absent from the catalog: keep the
	// rank-stripped name at medium confidence.
	if r.dir.LooksCollegiate(name) {
		return TeamMatch{
			OriginalName: name,
			MatchedName:  teams.StripRank(name),
			Confidence:   0.7,
			League:       models.NCAAF,
			Method:       MethodFuzzy,
		}
	}

	// Defensive recheck for collegiate names the heuristic missed.
	if m, ok := r.findExact(models.NCAAF, name); ok {
		return m
	}
	if m, ok := r.findFuzzy(models.NCAAF, name); ok {
		return m
	}

	if r.dir.LooksCollegiate(name) {
		return TeamMatch{
			OriginalName: name,
			MatchedName:  teams.StripRank(name),
			Confidence:   0.6,
			League:       models.NCAAF,
			Method:       MethodFuzzy,
		}
	}

	// Could not resolve. Return the input at floor confidence rather
	// than failing; callers treat low confidence as "unresolved".
	fallbackLeague := league
	if fallbackLeague == "" {
		fallbackLeague = models.NFL
	}
	if r.logger != nil {
		r.logger.WithField("name", name).Debug("team name unresolved, returning floor confidence")
	}
	return TeamMatch{
		OriginalName: name,
		MatchedName:  name,
		Confidence:   floorConfidence,
		League:       fallbackLeague,
		Method:       MethodFuzzy,
	}
}

// findExact checks canonical names and aliases after normalization. The
// NCAAF catalog is additionally checked with the poll rank stripped.
func (r *Resolver) findExact(league models.League, name string) (TeamMatch, bool) {
	norms := []string{teams.Normalize(name)}
	if league == models.NCAAF {
		if clean := teams.Normalize(teams.StripRank(name)); clean != norms[0] {
			norms = append(norms, clean)
		}
	}

	matched, canonical, ok := r.dir.Lookup(league, norms...)
	if !ok {
		return TeamMatch{}, false
	}

	m := TeamMatch{
		OriginalName: name,
		MatchedName:  matched,
		Confidence:   aliasConfidence,
		League:       league,
		Method:       MethodAlias,
	}
	if canonical {
		m.Confidence = exactConfidence
		m.Method = MethodExact
	}
	return m, true
}

// findFuzzy scores every catalog team by the best similarity across its
// canonical name and aliases, accepting the top team above the fuzzy
// threshold and reporting up to three ranked candidates.
func (r *Resolver) findFuzzy(league models.League, name string) (TeamMatch, bool) {
	query := name
	if league == models.NCAAF {
		query = teams.StripRank(name)
	}
	normQuery := teams.Normalize(query)
	if normQuery == "" {
		return TeamMatch{}, false
	}

	catalog := r.dir.Teams(league)
	scored := make([]Candidate, 0, len(catalog))
	for _, team := range catalog {
		best := Similarity(normQuery, teams.Normalize(team.Name))
		for _, alias := range team.Aliases {
			if s := Similarity(normQuery, teams.Normalize(alias)); s > best {
				best = s
			}
		}
		scored = append(scored, Candidate{Name: team.Name, Score: best})
	}

	// Stable sort keeps catalog order on score ties.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	top := scored[0]
	if top.Score <= fuzzyThreshold {
		return TeamMatch{}, false
	}

	n := 3
	if len(scored) < n {
		n = len(scored)
	}
	candidates := make([]Candidate, n)
	copy(candidates, scored[:n])

	return TeamMatch{
		OriginalName: name,
		MatchedName:  top.Name,
		Confidence:   top.Score * fuzzyScale,
		League:       league,
		Method:       MethodFuzzy,
		Candidates:   candidates,
	}, true
}
