package resolve

import (
	"testing"

	"github.com/beaverbray/office-football-pool/internal/models"
)

// countingResolver records every name that reaches it.
type countingResolver struct {
	inner TeamResolver
	seen  []string
}

func (c *countingResolver) ResolveTeam(name string, league models.League) TeamMatch {
	c.seen = append(c.seen, name)
	return c.inner.ResolveTeam(name, league)
}

func TestMemoCachesByNormalizedName(t *testing.T) {
	counting := &countingResolver{inner: newTestResolver()}
	memo := NewMemo(counting)

	first := memo.ResolveTeam("Philadelphia Eagles", "")
	second := memo.ResolveTeam("philadelphia eagles", "")
	third := memo.ResolveTeam("  Philadelphia   Eagles  ", "")

	if len(counting.seen) != 1 {
		t.Errorf("underlying resolver saw %d calls, want 1", len(counting.seen))
	}
	if memo.ResolverCalls() != 1 {
		t.Errorf("ResolverCalls() = %d, want 1", memo.ResolverCalls())
	}
	if memo.CacheHits() != 2 {
		t.Errorf("CacheHits() = %d, want 2", memo.CacheHits())
	}
	if first.MatchedName != second.MatchedName || second.MatchedName != third.MatchedName {
		t.Errorf("cached results differ: %q, %q, %q", first.MatchedName, second.MatchedName, third.MatchedName)
	}
}

func TestMemoKeyIncludesLeague(t *testing.T) {
	counting := &countingResolver{inner: newTestResolver()}
	memo := NewMemo(counting)

	nfl := memo.ResolveTeam("Miami", "")
	ncaaf := memo.ResolveTeam("Miami", models.NCAAF)

	if memo.ResolverCalls() != 2 {
		t.Errorf("ResolverCalls() = %d, want 2 (distinct leagues)", memo.ResolverCalls())
	}
	if nfl.MatchedName == ncaaf.MatchedName {
		t.Errorf("league-qualified lookups collided on %q", nfl.MatchedName)
	}
}

func TestMemoDistinctNames(t *testing.T) {
	memo := NewMemo(newTestResolver())

	names := []string{"Eagles", "Cowboys", "Eagles", "Chiefs", "Cowboys"}
	for _, n := range names {
		memo.ResolveTeam(n, "")
	}

	if memo.ResolverCalls() != 3 {
		t.Errorf("ResolverCalls() = %d, want 3", memo.ResolverCalls())
	}
	if memo.CacheHits() != 2 {
		t.Errorf("CacheHits() = %d, want 2", memo.CacheHits())
	}
}
