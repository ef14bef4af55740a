package wordlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeWords writes a one-word-per-line file at path.
func writeWords(t *testing.T, path string, words []string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

// namedWords returns n distinct words with the given prefix.
func namedWords(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%04d", prefix, i)
	}
	return out
}

func TestWatcherReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	writeWords(t, path, namedWords("old", 512))

	list, err := Open(path)
	if err != nil {
		t.Fatalf("Open: unexpected error: %v", err)
	}
	w, err := NewWatcher(list, path)
	if err != nil {
		t.Fatalf("NewWatcher: unexpected error: %v", err)
	}
	defer w.fw.Close()

	// With no update pending, the original list is returned unchanged.
	if got := w.List(); got != list {
		t.Errorf("List: got %p, want the original list %p", got, list)
	}

	// An update pointing at an invalid file must not displace the current
	// list, and must stay pending so a later fix is retried.
	writeWords(t, path, namedWords("bad", 10)) // too short to validate
	w.μ.Lock()
	w.hasUpdate = true
	w.μ.Unlock()
	if got := w.List(); got != list {
		t.Fatalf("List after bad update: got %p (%d words), want the original list", got, got.Len())
	}
	if got := w.List().Word(0); got != "old0000" {
		t.Errorf("Word(0) after bad update: got %q, want %q", got, "old0000")
	}

	// Once the file is valid again, the still-pending update lands without a
	// new notification.
	writeWords(t, path, namedWords("new", 512))
	got := w.List()
	if got == list {
		t.Fatal("List after repaired update: still the original list")
	}
	if word := got.Word(0); word != "new0000" {
		t.Errorf("Word(0) after repaired update: got %q, want %q", word, "new0000")
	}

	// The successful reload cleared the flag: further file changes are not
	// picked up until the watcher marks another update.
	writeWords(t, path, namedWords("other", 512))
	if again := w.List(); again != got {
		t.Errorf("List without pending update: got %p, want %p", again, got)
	}
}
