package resolve

import (
	"github.com/beaverbray/office-football-pool/internal/models"
	"github.com/beaverbray/office-football-pool/internal/teams"
)

type memoKey struct {
	name   string
	league models.League
}

// Memo wraps a TeamResolver with a cache keyed by normalized input.
// A matching run resolves the same handful of names hundreds of times
// across the source×target scan; the memo collapses those to one
// resolution per distinct name.
//
// A Memo is scoped to a single matching run and is not safe for
// concurrent use. Call counters are exposed so tests can assert how
// many resolutions actually ran.
type Memo struct {
	resolver TeamResolver
	cache    map[memoKey]TeamMatch
	calls    int
	hits     int
}

func NewMemo(resolver TeamResolver) *Memo {
	return &Memo{
		resolver: resolver,
		cache:    make(map[memoKey]TeamMatch),
	}
}

// ResolveTeam returns the cached match for a previously seen name, or
// delegates to the underlying resolver and caches the result.
func (m *Memo) ResolveTeam(name string, league models.League) TeamMatch {
	key := memoKey{name: teams.Normalize(name), league: league}
	if match, ok := m.cache[key]; ok {
		m.hits++
		return match
	}
	m.calls++
	match := m.resolver.ResolveTeam(name, league)
	m.cache[key] = match
	return match
}

// ResolverCalls reports how many resolutions reached the underlying
// resolver.
func (m *Memo) ResolverCalls() int { return m.calls }

// CacheHits reports how many resolutions were served from the cache.
func (m *Memo) CacheHits() int { return m.hits }
