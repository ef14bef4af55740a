// Package wordlist provides validated word lists for identifier generation.
//
// A list is an ordered sequence of unique words, constructed once and
// immutable thereafter. Index i always denotes the same word for the life of
// the list, which is what makes word identifiers reproducible.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	_ "embed"
)

// MinWords is the smallest number of words a usable list may contain.
const MinWords = 512

var (
	// ErrTooShort is reported when a source yields fewer than MinWords words.
	ErrTooShort = errors.New("wordlist is too short")

	// ErrDuplicate is reported when a source contains a repeated word.
	ErrDuplicate = errors.New("wordlist contains duplicates")
)

// A List is a validated, immutable ordered collection of unique words.
// A List is safe for concurrent use by multiple goroutines.
type List struct {
	words []string
}

// Len reports the number of words in the list.
func (l *List) Len() int { return len(l.words) }

// Word returns the word at index i. It panics if i is out of range.
func (l *List) Word(i int) string { return l.words[i] }

// New constructs a list from the given words. It reports ErrTooShort if
// fewer than MinWords are provided, or ErrDuplicate if any word repeats.
// The input slice is copied, so the caller may reuse it.
func New(words []string) (*List, error) {
	if len(words) < MinWords {
		return nil, fmt.Errorf("%w: %d words (want at least %d)", ErrTooShort, len(words), MinWords)
	}
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if seen[w] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, w)
		}
		seen[w] = true
	}
	cp := make([]string, len(words))
	copy(cp, words)
	return &List{words: cp}, nil
}

// Parse reads a list from r, one word per line. Blank lines and lines
// beginning with "#" are skipped. Each retained line contributes its last
// whitespace-separated field, so Diceware-style "index<tab>word" files work
// unmodified. The result is validated as for New.
func Parse(r io.Reader) (*List, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		words = append(words, fields[len(fields)-1])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read wordlist: %w", err)
	}
	return New(words)
}

// Open reads and parses the wordlist file at path.
func Open(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()
	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("wordlist %q: %w", path, err)
	}
	return list, nil
}

// The built-in list contains generated two-syllable words, all distinct and
// easily pronounceable. Regenerate with "go generate ./wordlist" and commit
// the file if it changes; reordering or editing it changes every identifier
// derived from the built-in list.

//go:generate ./update-words.sh words.txt

//go:embed words.txt
var defaultWords string

var defaultList = func() *List {
	list, err := Parse(strings.NewReader(defaultWords))
	if err != nil {
		panic(fmt.Sprintf("built-in wordlist: %v", err))
	}
	return list
}()

// Default returns the built-in word list.
func Default() *List { return defaultList }
