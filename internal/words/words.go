// internal/words/words.go
//
// Dictionary management for the scoring engine.
//
// Responsibilities:
//   - Load the word list from an environment-provided file or fall back
//     to the embedded default list.
//   - Keep a lowercase set for exact-match membership tests.
//   - Expose the set as a value satisfying the engine's Dictionary
//     interface, plus a Count for diagnostics.
//
// Initialization behavior (Init):
//   1. If DICTIONARY_FILE is set, load one word per line from it.
//   2. Otherwise use the embedded default list (dictionary.txt).
//
// Constraints:
//   • Words are normalized to lowercase.
//   • Only alphabetic words of length >= 2 are kept (a single letter
//     can never be a formed word on the board).
//   • Initialization runs once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"sync"

	_ "embed"
)

//go:embed dictionary.txt
var embeddedWords string

var (
	initOnce   sync.Once
	defaultSet Set
	initialErr error
)

// Set is an exact-match word list. It satisfies game.Dictionary.
type Set map[string]struct{}

// Contains reports whether w is in the set. Lookups are
// case-normalized.
func (s Set) Contains(w string) bool {
	_, ok := s[strings.ToLower(w)]
	return ok
}

// Init loads the default word list exactly once.
// Returns an error if the resulting list is empty.
func Init() error {
	initOnce.Do(func() {
		if path := os.Getenv("DICTIONARY_FILE"); path != "" {
			s, err := Load(path)
			if err != nil {
				initialErr = err
				return
			}
			defaultSet = s
			return
		}
		defaultSet = parseLines(embeddedWords)
		if len(defaultSet) == 0 {
			initialErr = errors.New("words: embedded dictionary is empty")
		}
	})
	return initialErr
}

// Default returns the set loaded by Init. Nil before Init succeeds.
func Default() Set {
	return defaultSet
}

// Count returns the number of loaded words.
func Count() int {
	return len(defaultSet)
}

// Load reads one word per line from a file into a Set.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := make(Set)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w, ok := normalizeWord(sc.Text()); ok {
			s[w] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return nil, errors.New("words: " + path + " contains no usable words")
	}
	return s, nil
}

// parseLines processes an embedded multiline string into a Set.
func parseLines(text string) Set {
	s := make(Set)
	for _, line := range strings.Split(text, "\n") {
		if w, ok := normalizeWord(line); ok {
			s[w] = struct{}{}
		}
	}
	return s
}

// normalizeWord trims and lowercases a raw line and reports whether it
// is a usable dictionary word (alphabetic, length >= 2, not a comment).
func normalizeWord(raw string) (string, bool) {
	w := strings.TrimSpace(strings.ToLower(raw))
	if len(w) < 2 || strings.HasPrefix(w, "#") || !isAlpha(w) {
		return "", false
	}
	return w, true
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
