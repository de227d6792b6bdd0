package extraction

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateNotesRejections(t *testing.T) {
	cases := []struct {
		name    string
		raw     any
		wantMsg string
	}{
		{"number", 42.0, "notes must be a string"},
		{"nil", nil, "notes must be a string"},
		{"object", map[string]any{"text": "standup notes"}, "notes must be a string"},
		{"array", []any{"standup notes"}, "notes must be a string"},
		{"bool", true, "notes must be a string"},
		{"empty", "", "notes must be at least 10 characters long"},
		{"too short", "short", "notes must be at least 10 characters long"},
		{"whitespace padded short", "   hello    ", "notes must be at least 10 characters long"},
		{"multibyte short", "嗨嗨嗨嗨", "notes must be at least 10 characters long"},
		{"too long", strings.Repeat("a", 50001), "notes must be 50000 characters or fewer"},
		{"multibyte too long", strings.Repeat("語", 50001), "notes must be 50000 characters or fewer"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ValidateNotes(c.raw)
			if err == nil {
				t.Fatalf("ValidateNotes(%v) succeeded; want error %q", c.raw, c.wantMsg)
			}

			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("ValidateNotes error %T is not *Error", err)
			}
			if perr.Kind != KindInvalidInput {
				t.Fatalf("ValidateNotes error kind = %q; want %q", perr.Kind, KindInvalidInput)
			}
			if perr.Message != c.wantMsg {
				t.Fatalf("ValidateNotes error = %q; want %q", perr.Message, c.wantMsg)
			}
		})
	}
}

func TestValidateNotesBoundaries(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"exactly min trimmed length", "abcdefghij"},
		{"exactly max length", strings.Repeat("a", 50000)},
		{"multibyte min length", strings.Repeat("會", 10)},
		{"multibyte max length", strings.Repeat("語", 50000)},
		{"multibyte under max despite byte length", strings.Repeat("語", 20000)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			notes, err := ValidateNotes(c.raw)
			if err != nil {
				t.Fatalf("ValidateNotes error: %v", err)
			}
			if notes != c.raw {
				t.Fatalf("ValidateNotes changed the text")
			}
		})
	}
}

func TestValidateNotesForwardsUntrimmed(t *testing.T) {
	raw := "  discuss the launch plan with marketing  "
	notes, err := ValidateNotes(raw)
	if err != nil {
		t.Fatalf("ValidateNotes error: %v", err)
	}
	// Trimming is for the length check only; downstream gets the original.
	if notes != raw {
		t.Fatalf("ValidateNotes returned %q; want original %q", notes, raw)
	}
}
