// Package config contains shared configuration settings for wid subcommands.
package config

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/atomicfile"
	"github.com/creachadair/command"
	"github.com/creachadair/wordid/widlib"
	"github.com/creachadair/wordid/wordlist"
	"golang.org/x/term"
	yaml "gopkg.in/yaml.v3"
)

// Settings are shared settings used by wid subcommands.
type Settings struct {
	WordsPath  string // wordlist path from --wordlist or WORDID_WORDS
	ConfigPath string // configuration file path from --config or WORDID_CONFIG
	File       File   // values loaded from the configuration file, if any
}

// File is the schema of the optional YAML configuration file. Values given
// as flags override values from the file.
type File struct {
	Words     int    `yaml:"words,omitempty"`     // default word count
	Checksum  *int   `yaml:"checksum,omitempty"`  // default checksum length (0 disables)
	Separator string `yaml:"separator,omitempty"` // default token separator
	Wordlist  string `yaml:"wordlist,omitempty"`  // default wordlist path
}

// Get returns the settings associated with env.
func Get(env *command.Env) *Settings { return env.Config.(*Settings) }

// LoadFile populates s.File from s.ConfigPath. A missing or unreadable file
// is an error; an empty path means no configuration file is in use.
func (s *Settings) LoadFile() error {
	if s.ConfigPath == "" {
		return nil
	}
	data, err := os.ReadFile(s.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(data, &s.File); err != nil {
		return fmt.Errorf("config %q: %w", s.ConfigPath, err)
	}
	return nil
}

// WordlistPath returns the effective wordlist path, or "" if the built-in
// list should be used.
func (s *Settings) WordlistPath() string { return cmp.Or(s.WordsPath, s.File.Wordlist) }

// Options merges flag values with configuration-file defaults. Pass words=0,
// checksum=-1, or sep="" to mean "not set on the command line".
func (s *Settings) Options(words, checksum int, sep string) widlib.Options {
	opts := widlib.DefaultOptions
	if s.File.Words > 0 {
		opts.Words = s.File.Words
	}
	if s.File.Checksum != nil {
		opts.Checksum = *s.File.Checksum
	}
	if s.File.Separator != "" {
		opts.Separator = s.File.Separator
	}
	if words > 0 {
		opts.Words = words
	}
	if checksum >= 0 {
		opts.Checksum = checksum
	}
	if sep != "" {
		opts.Separator = sep
	}
	return opts
}

// LoadList opens the word list selected by the settings in env, or the
// built-in list if no path is configured.
func LoadList(env *command.Env) (*wordlist.List, error) {
	if path := Get(env).WordlistPath(); path != "" {
		return wordlist.Open(path)
	}
	return wordlist.Default(), nil
}

// ResolveSalt returns the secret salt for a command: an explicit salt text
// if provided, otherwise the contents of an encrypted salt file, otherwise a
// prompt at the terminal. When stdin is not a terminal, ResolveSalt fails
// rather than hang waiting for input.
func ResolveSalt(saltText, saltFile string) (widlib.Salt, error) {
	if saltText != "" {
		return widlib.SaltFromString(saltText), nil
	}
	if saltFile != "" {
		pp, err := widlib.GetPassphrase("Passphrase: ")
		if err != nil {
			return nil, err
		}
		return widlib.ReadSaltFile(saltFile, pp)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("no salt provided (use --salt or --salt-file)")
	}
	text, err := widlib.GetPassphrase("Salt: ")
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, errors.New("empty salt")
	}
	return widlib.SaltFromString(text), nil
}

// starterConfig is the contents written by WriteStarter.
const starterConfig = `# Configuration for the wid tool.
# Flags given on the command line override these values.

# Number of words in an identifier (minimum 2).
words: 3

# Number of checksum characters (0 disables the checksum).
checksum: 2

# String joining the output tokens.
separator: "-"

# Path of a wordlist file; omit to use the built-in list.
#wordlist: /usr/share/dict/eff_large_wordlist.txt
`

// WriteStarter writes a commented starter configuration file to path. It
// reports an error rather than clobber an existing file.
func WriteStarter(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %q already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return atomicfile.Tx(path, 0644, func(f *atomicfile.File) error {
		_, err := io.WriteString(f, starterConfig)
		return err
	})
}
