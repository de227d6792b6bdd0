package extraction

import (
	"strings"
	"testing"
)

func TestBuildPromptEmbedsNotesVerbatim(t *testing.T) {
	notes := "  Alice to send the Q3 report by Friday.  "

	req := BuildPrompt(notes)

	if !strings.HasSuffix(req.Message, notes) {
		t.Fatalf("user message does not end with the verbatim notes: %q", req.Message)
	}
	if !strings.HasPrefix(req.Message, userLeadIn) {
		t.Fatalf("user message does not start with the fixed lead-in: %q", req.Message)
	}
}

func TestBuildPromptSystemInstruction(t *testing.T) {
	req := BuildPrompt("some meeting notes here")

	for _, want := range []string{"actionItems", "summary", "task", "assignee", "priority", "deadline", "context", "JSON only"} {
		if !strings.Contains(req.System, want) {
			t.Fatalf("system instruction missing %q", want)
		}
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	notes := "Bob will update the roadmap before the next sync."
	if BuildPrompt(notes) != BuildPrompt(notes) {
		t.Fatalf("BuildPrompt is not deterministic")
	}
}
