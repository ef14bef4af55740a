package wordlist_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/wordid/wordlist"
	gocmp "github.com/google/go-cmp/cmp"
)

// testWords returns n distinct synthetic words.
func testWords(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("word%04d", i)
	}
	return out
}

func TestParse(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("# A comment header is skipped.\n")
	sb.WriteString("\n")
	sb.WriteString("   \n")
	for i, w := range testWords(512) {
		// Alternate between bare words and Diceware-style "index word" lines;
		// only the last field of a line counts.
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d\t%s\n", 11111+i, w)
		} else {
			fmt.Fprintln(&sb, w)
		}
	}

	list, err := wordlist.Parse(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	if list.Len() != 512 {
		t.Errorf("Got %d words, want 512", list.Len())
	}
	var got []string
	for i := range list.Len() {
		got = append(got, list.Word(i))
	}
	if diff := gocmp.Diff(got, testWords(512)); diff != "" {
		t.Errorf("Parsed words (-got, +want):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("TooShort", func(t *testing.T) {
		src := strings.Join(testWords(511), "\n")
		if got, err := wordlist.Parse(strings.NewReader(src)); !errors.Is(err, wordlist.ErrTooShort) {
			t.Errorf("Parse: got %v, %v; want %v", got, err, wordlist.ErrTooShort)
		}
	})
	t.Run("Duplicate", func(t *testing.T) {
		words := testWords(600)
		words[599] = words[0]
		src := strings.Join(words, "\n")
		if got, err := wordlist.Parse(strings.NewReader(src)); !errors.Is(err, wordlist.ErrDuplicate) {
			t.Errorf("Parse: got %v, %v; want %v", got, err, wordlist.ErrDuplicate)
		}
	})
	t.Run("CaseSensitive", func(t *testing.T) {
		// Duplicates are byte-exact; differing case is allowed.
		words := testWords(512)
		words = append(words, strings.ToUpper(words[0]))
		if _, err := wordlist.New(words); err != nil {
			t.Errorf("New: unexpected error: %v", err)
		}
	})
}

func TestNewCopies(t *testing.T) {
	words := testWords(512)
	list, err := wordlist.New(words)
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	words[0] = "mutated"
	if got := list.Word(0); got != "word0000" {
		t.Errorf("Word(0): got %q, want %q (list shares caller storage)", got, "word0000")
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	src := strings.Join(testWords(512), "\n") + "\n"
	if err := os.WriteFile(path, []byte(src), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	list, err := wordlist.Open(path)
	if err != nil {
		t.Fatalf("Open: unexpected error: %v", err)
	}
	if list.Len() != 512 {
		t.Errorf("Got %d words, want 512", list.Len())
	}

	if got, err := wordlist.Open(filepath.Join(t.TempDir(), "nonesuch")); err == nil {
		t.Errorf("Open missing file: got %v, want error", got)
	}
}

func TestDefault(t *testing.T) {
	list := wordlist.Default()
	if list.Len() < wordlist.MinWords {
		t.Fatalf("Built-in list has %d words, want at least %d", list.Len(), wordlist.MinWords)
	}

	// Spot checks pinned to the committed words.txt; update if the list is
	// regenerated with a different alphabet.
	tests := []struct {
		index int
		want  string
	}{
		{0, "baba"},
		{119, "beju"},
		{587, "deni"},
		{2337, "jazi"},
		{8099, "zuzu"},
	}
	for _, test := range tests {
		if got := list.Word(test.index); got != test.want {
			t.Errorf("Word(%d): got %q, want %q", test.index, got, test.want)
		}
	}

	// The same pointer is returned on every call; the list is shared.
	if wordlist.Default() != list {
		t.Error("Default returned distinct lists")
	}
}
