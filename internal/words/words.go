// internal/words/words.go
//
// Word list management for puzzle construction.
//
// Responsibilities:
//   - Normalize raw lists: trim, uppercase, drop blanks and duplicates.
//   - Reject entries that are not plain A–Z words.
//   - Load lists from the embedded assets or from a user-provided file.
//
// Word Lists:
//   - Embedded lists live in assets/lists/<name>.txt ("default" is the
//     stock puzzle).
//   - A file given via WORDS_FILE is loaded the same way and seeded into
//     the catalog as "custom".
//
// Constraints:
//   • Words must be alphabetic A–Z after uppercasing.
//   • Order is preserved: it is the placement order.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordsearch/assets"
)

// DefaultList names the stock embedded list.
const DefaultList = "default"

// ErrEmptyList is returned when a list has no usable words.
var ErrEmptyList = errors.New("words: list is empty")

// Normalize trims and uppercases every entry, skips blanks and duplicates,
// and fails on the first entry that is not A–Z.
func Normalize(list []string) ([]string, error) {
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, raw := range list {
		w := strings.ToUpper(strings.TrimSpace(raw))
		if w == "" {
			continue
		}
		if !isAlpha(w) {
			return nil, fmt.Errorf("words: invalid entry %q", raw)
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out, nil
}

// Embedded loads and normalizes an embedded list by name.
func Embedded(name string) ([]string, error) {
	raw, err := assets.List(name)
	if err != nil {
		return nil, fmt.Errorf("words: embedded list %q: %w", name, err)
	}
	return nonEmpty(Normalize(raw))
}

// ReadFile loads one word per line from path. Blank lines and lines
// starting with '#' are skipped.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read is ReadFile for an arbitrary reader.
func Read(r io.Reader) ([]string, error) {
	var raw []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		raw = append(raw, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return nonEmpty(Normalize(raw))
}

func nonEmpty(list []string, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrEmptyList
	}
	return list, nil
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Longest returns the length of the longest word, 0 for an empty list.
func Longest(list []string) int {
	n := 0
	for _, w := range list {
		n = max(n, len(w))
	}
	return n
}
