package journal

import (
	"encoding/json"
	"errors"
	"strings"

	journalmodel "github.com/zhouzirui/mood-mirror/backend/internal/model/journal"
)

const savedEntryKey = `"saved_entry"`

var errUnparseableEntry = errors.New("saved_entry block could not be parsed")

type savedEntryEnvelope struct {
	SavedEntry *journalmodel.SavedEntry `json:"saved_entry"`
}

// extractSavedEntry looks for the last JSON object carrying a "saved_entry"
// key in reply. When one parses, it returns the entry and the reply with the block
// (and any code fence around it) replaced by SavedConfirmation.
//
// found reports whether the key was present at all; err is set when it was
// present but no enclosing object could be decoded.
func extractSavedEntry(reply string) (entry *journalmodel.SavedEntry, text string, found bool, err error) {
	keyIdx := strings.LastIndex(reply, savedEntryKey)
	if keyIdx == -1 {
		return nil, reply, false, nil
	}

	// Later occurrences win; earlier ones may be prose mentioning the key.
	for ; keyIdx >= 0; keyIdx = strings.LastIndex(reply[:keyIdx], savedEntryKey) {
		if saved, start, end, ok := decodeEnclosing(reply, keyIdx); ok {
			return saved, replaceBlock(reply, start, end+1), true, nil
		}
	}

	return nil, reply, true, errUnparseableEntry
}

// decodeEnclosing tries each object opening before keyIdx, innermost first,
// and returns the first one that decodes to a usable entry.
func decodeEnclosing(reply string, keyIdx int) (*journalmodel.SavedEntry, int, int, bool) {
	for start := strings.LastIndex(reply[:keyIdx], "{"); start >= 0; start = strings.LastIndex(reply[:start], "{") {
		end := matchBrace(reply, start)
		if end < keyIdx {
			continue
		}

		var envelope savedEntryEnvelope
		if jsonErr := json.Unmarshal([]byte(reply[start:end+1]), &envelope); jsonErr != nil || envelope.SavedEntry == nil {
			continue
		}
		saved := normalizeEntry(*envelope.SavedEntry)
		if saved.Content == "" || saved.Mood == "" {
			continue
		}
		return &saved, start, end, true
	}
	return nil, 0, 0, false
}

// matchBrace returns the index of the brace closing the one at open, or -1.
// Braces inside JSON strings are ignored.
func matchBrace(s string, open int) int {
	depth := 0
	inString := false
	escaped := false
	for i := open; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func replaceBlock(reply string, start, end int) string {
	before := strings.TrimRight(reply[:start], " \t\r\n")
	after := strings.TrimLeft(reply[end:], " \t\r\n")

	if fenced := strings.TrimSuffix(before, "```json"); fenced != before {
		before = fenced
	} else {
		before = strings.TrimSuffix(before, "```")
	}
	after = strings.TrimPrefix(after, "```")

	before = strings.TrimSpace(before)
	after = strings.TrimSpace(after)

	parts := make([]string, 0, 3)
	if before != "" {
		parts = append(parts, before)
	}
	parts = append(parts, SavedConfirmation)
	if after != "" {
		parts = append(parts, after)
	}
	return strings.Join(parts, "\n\n")
}

func normalizeEntry(e journalmodel.SavedEntry) journalmodel.SavedEntry {
	return journalmodel.SavedEntry{
		Content: strings.TrimSpace(e.Content),
		Mood:    strings.TrimSpace(e.Mood),
		Summary: strings.TrimSpace(e.Summary),
	}
}
