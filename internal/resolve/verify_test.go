package resolve

import (
	"context"
	"fmt"
	"testing"

	"github.com/beaverbray/office-football-pool/internal/models"
)

type fakeChat struct {
	reply string
	err   error
	calls int
}

func (f *fakeChat) Chat(ctx context.Context, system, user string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func TestVerifyCandidatesPicksCandidate(t *testing.T) {
	chat := &fakeChat{reply: "Ohio State Buckeyes"}

	m, err := VerifyCandidates(context.Background(), chat, "OSU Bucks",
		[]string{"Ohio State Buckeyes", "Oklahoma State Cowboys"}, models.NCAAF, "Michigan Wolverines")
	if err != nil {
		t.Fatalf("VerifyCandidates failed: %v", err)
	}
	if m == nil {
		t.Fatal("VerifyCandidates returned nil match")
	}
	if m.MatchedName != "Ohio State Buckeyes" {
		t.Errorf("MatchedName = %q, want %q", m.MatchedName, "Ohio State Buckeyes")
	}
	if m.Confidence != 0.85 {
		t.Errorf("Confidence = %v, want 0.85", m.Confidence)
	}
	if m.Method != MethodLLM {
		t.Errorf("Method = %q, want %q", m.Method, MethodLLM)
	}
}

func TestVerifyCandidatesNone(t *testing.T) {
	for _, reply := range []string{"NONE", "none", `"NONE"`, ""} {
		chat := &fakeChat{reply: reply}
		m, err := VerifyCandidates(context.Background(), chat, "Mystery FC",
			[]string{"Ohio State Buckeyes"}, "", "")
		if err != nil {
			t.Fatalf("VerifyCandidates(%q) failed: %v", reply, err)
		}
		if m != nil {
			t.Errorf("VerifyCandidates(%q) = %+v, want nil", reply, m)
		}
	}
}

func TestVerifyCandidatesRejectsOffListAnswer(t *testing.T) {
	chat := &fakeChat{reply: "Some Other Team"}
	m, err := VerifyCandidates(context.Background(), chat, "X",
		[]string{"Ohio State Buckeyes"}, "", "")
	if err != nil {
		t.Fatalf("VerifyCandidates failed: %v", err)
	}
	if m != nil {
		t.Errorf("off-list answer accepted: %+v", m)
	}
}

func TestVerifyCandidatesErrors(t *testing.T) {
	chat := &fakeChat{err: fmt.Errorf("boom")}
	if _, err := VerifyCandidates(context.Background(), chat, "X", []string{"Y"}, "", ""); err == nil {
		t.Error("expected error from failing chat client")
	}

	if _, err := VerifyCandidates(context.Background(), nil, "X", []string{"Y"}, "", ""); err == nil {
		t.Error("expected error with nil chat client")
	}

	m, err := VerifyCandidates(context.Background(), chat, "X", nil, "", "")
	if err != nil || m != nil {
		t.Errorf("empty candidates: got (%+v, %v), want (nil, nil)", m, err)
	}
	if chat.calls != 1 {
		t.Errorf("chat.calls = %d, empty candidate list must not call the model", chat.calls)
	}
}
