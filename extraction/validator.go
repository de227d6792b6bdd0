package extraction

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"notesbot/config"
)

// ValidateNotes gates raw request input before any provider call is made.
// Rules are checked in order; the first failure wins. Lengths count
// characters, not bytes, so multibyte notes are measured the way the
// error messages read. The returned text is the original untrimmed value,
// forwarded as-is to the prompt builder.
func ValidateNotes(raw any) (string, error) {
	notes, ok := raw.(string)
	if !ok {
		return "", newError(KindInvalidInput, "notes must be a string")
	}

	if utf8.RuneCountInString(strings.TrimSpace(notes)) < config.MinNotesChars {
		return "", newError(KindInvalidInput,
			fmt.Sprintf("notes must be at least %d characters long", config.MinNotesChars))
	}

	if utf8.RuneCountInString(notes) > config.MaxNotesChars {
		return "", newError(KindInvalidInput,
			fmt.Sprintf("notes must be %d characters or fewer", config.MaxNotesChars))
	}

	return notes, nil
}
