package widlib_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/wordid/widlib"
)

func TestChecksum(t *testing.T) {
	// Golden values pinned against an independent implementation. Longer
	// checksums extend shorter ones on the left, since digits accumulate from
	// least to most significant.
	tests := []struct {
		data   []byte
		length int
		want   string
	}{
		{testSeed, 0, ""},
		{testSeed, 1, "3"},
		{testSeed, 2, "J3"},
		{testSeed, 5, "N72J3"},
		{testSeed, 8, "LCTN72J3"},
		{nil, 4, "KD3P"},
	}
	for _, test := range tests {
		got, err := widlib.Checksum(test.data, test.length)
		if err != nil {
			t.Errorf("Checksum(len=%d): unexpected error: %v", test.length, err)
			continue
		}
		if got != test.want {
			t.Errorf("Checksum(len=%d): got %q, want %q", test.length, got, test.want)
		}
	}
}

func TestChecksumAlphabet(t *testing.T) {
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for length := 1; length <= 10; length++ {
		got, err := widlib.Checksum([]byte("alphabet probe"), length)
		if err != nil {
			t.Fatalf("Checksum(len=%d): unexpected error: %v", length, err)
		}
		if len(got) != length {
			t.Errorf("Checksum(len=%d): got %q (%d chars)", length, got, len(got))
		}
		for _, c := range got {
			if !strings.ContainsRune(alphabet, c) {
				t.Errorf("Checksum(len=%d): %q contains %q outside the alphabet", length, got, c)
			}
		}
	}
}

func TestChecksumErrors(t *testing.T) {
	if got, err := widlib.Checksum(testSeed, -1); !errors.Is(err, widlib.ErrBadParameter) {
		t.Errorf("Length -1: got %q, %v; want %v", got, err, widlib.ErrBadParameter)
	}
}
