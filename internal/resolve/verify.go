package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/beaverbray/office-football-pool/internal/models"
)

// llmConfidence is assigned when the language model picks a candidate:
// above the fuzzy ceiling, below an alias hit.
const llmConfidence = 0.85

// ChatCompleter is the slice of the LLM client the verifier needs.
type ChatCompleter interface {
	Chat(ctx context.Context, system, user string) (string, error)
}

// VerifyCandidates asks a language model to disambiguate a name against
// a candidate list, for matches the cascade left below the caller's
// confidence bar. The model must answer with one candidate verbatim or
// "NONE"; anything else is treated as no match.
func VerifyCandidates(ctx context.Context, chat ChatCompleter, name string, candidates []string, league models.League, otherTeam string) (*TeamMatch, error) {
	if chat == nil {
		return nil, fmt.Errorf("no LLM client configured for verification")
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Match the team name %q to the most likely official team name from these candidates: %s.\n",
		name, strings.Join(candidates, ", "))
	if league != "" {
		fmt.Fprintf(&sb, "League: %s\n", league)
	}
	if otherTeam != "" {
		fmt.Fprintf(&sb, "Playing against: %s\n", otherTeam)
	}
	sb.WriteString("\nRespond with only the exact team name from the list, or \"NONE\" if no good match.")

	reply, err := chat.Chat(ctx,
		"You are a sports team name matcher. Respond only with the team name or NONE.",
		sb.String())
	if err != nil {
		return nil, fmt.Errorf("LLM verification: %w", err)
	}

	reply = strings.TrimSpace(strings.Trim(strings.TrimSpace(reply), `"`))
	if reply == "" || strings.EqualFold(reply, "NONE") {
		return nil, nil
	}
	for _, c := range candidates {
		if strings.EqualFold(c, reply) {
			return &TeamMatch{
				OriginalName: name,
				MatchedName:  c,
				Confidence:   llmConfidence,
				League:       league,
				Method:       MethodLLM,
			}, nil
		}
	}
	return nil, nil
}
