// Program wid is a command-line tool for generating deterministic,
// human-readable word identifiers.
package main

import (
	"os"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/wordid/cmd/wid/config"

	"github.com/creachadair/wordid/cmd/wid/internal/cmdgen"
	"github.com/creachadair/wordid/cmd/wid/internal/cmdsalt"
	"github.com/creachadair/wordid/cmd/wid/internal/cmdserver"
	"github.com/creachadair/wordid/cmd/wid/internal/cmdwords"
)

func main() {
	var flags struct {
		WordsPath  string `flag:"wordlist,default=$WORDID_WORDS,Wordlist path (default: the built-in list)"`
		ConfigPath string `flag:"config,default=$WORDID_CONFIG,Configuration file path"`
	}
	root := &command.C{
		Name: command.ProgramName(),
		Help: `Generate stable, memorable word identifiers from sensitive inputs.

Each input (say, a name or e-mail address) is mapped to a short
identifier made of dictionary words plus a typo-detection checksum.
The mapping is keyed with a secret salt: the same salt, input, and
word list always produce the same identifier, but without the salt
the mapping cannot be reproduced. Store only the identifier; keep
the salt secret.

Use --wordlist to supply a words file (one word per line; blank
lines and "#" comments are skipped, and the last field of each line
is used). Without it, a built-in list is used.`,

		SetFlags: command.Flags(flax.MustBind, &flags),

		Init: func(env *command.Env) error {
			set := &config.Settings{WordsPath: flags.WordsPath, ConfigPath: flags.ConfigPath}
			if err := set.LoadFile(); err != nil {
				return err
			}
			env.Config = set
			return nil
		},

		Commands: []*command.C{
			cmdgen.Command,
			cmdsalt.Command,
			cmdwords.Command,
			cmdserver.Command,
			configCommand,
			command.HelpCommand([]command.HelpTopic{{
				Name: "salts",
				Help: `How secret salts are handled.

The salt is the key of the derivation: anyone holding the salt and
the word list can regenerate or verify identifiers, so treat it like
a password. The tool accepts a salt as literal text (--salt or the
WORDID_SALT environment variable), from an encrypted salt file
(--salt-file, created with "wid salt --out"), or by prompting at the
terminal with echo disabled. Salts are never logged or printed back.

A generated salt is rendered as lowercase hexadecimal; the rendered
text itself is the key, so a salt printed by "wid salt" and one
stored with "wid salt --out" are interchangeable.`,
			}}),
			command.VersionCommand(),
		},
	}
	command.RunOrFail(root.NewEnv(nil).MergeFlags(true), os.Args[1:])
}
