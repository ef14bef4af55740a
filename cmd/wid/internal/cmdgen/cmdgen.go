// Package cmdgen implements the "gen" subcommand.
package cmdgen

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/wordid/cmd/wid/config"
	"github.com/creachadair/wordid/widlib"
)

var Command = &command.C{
	Name:  "gen",
	Usage: "[input...]",
	Help: `Generate identifiers for the specified inputs.

Each input is normalized, keyed with the secret salt, and mapped to
words from the word list plus a short checksum. With no arguments,
inputs are read from stdin, one per line (blank lines are skipped).

The salt is taken from --salt (or WORDID_SALT), from an encrypted
salt file named by --salt-file, or by prompting at the terminal.
Use "wid salt" to create a fresh salt; see "wid help salts".

With --verify, exactly one input is required: its identifier is
recomputed and compared with the given value, and a mismatch is
reported as an error.`,
	SetFlags: command.Flags(flax.MustBind, &genFlags),
	Run:      command.Adapt(runGen),
}

var genFlags struct {
	Words    int    `flag:"n,Number of words in the identifier (default 3)"`
	Checksum int    `flag:"c,default=-1,Number of checksum characters (0 for none; default 2)"`
	Sep      string `flag:"sep,Token separator (default -)"`
	Salt     string `flag:"salt,default=$WORDID_SALT,Secret salt text"`
	SaltFile string `flag:"salt-file,Path of an encrypted salt file"`
	Verify   string `flag:"verify,Verify this identifier instead of printing"`
}

// runGen implements the "gen" subcommand.
func runGen(env *command.Env, inputs ...string) error {
	list, err := config.LoadList(env)
	if err != nil {
		return err
	}
	opts := config.Get(env).Options(genFlags.Words, genFlags.Checksum, genFlags.Sep)
	salt, err := config.ResolveSalt(genFlags.Salt, genFlags.SaltFile)
	if err != nil {
		return err
	}

	if genFlags.Verify != "" {
		if len(inputs) != 1 {
			return env.Usagef("--verify requires exactly one input")
		}
		id, err := widlib.GenerateID(inputs[0], salt, list, opts)
		if err != nil {
			return err
		}
		if id != genFlags.Verify {
			return fmt.Errorf("verify %q: got %s, want %s", inputs[0], id, genFlags.Verify)
		}
		fmt.Fprintln(env, "OK")
		return nil
	}

	if len(inputs) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			if line := sc.Text(); strings.TrimSpace(line) != "" {
				inputs = append(inputs, line)
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read inputs: %w", err)
		}
		if len(inputs) == 0 {
			return env.Usagef("no inputs given")
		}
	}

	if len(inputs) == 1 {
		id, err := widlib.GenerateID(inputs[0], salt, list, opts)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 4, 0, 1, ' ', 0)
	for _, input := range inputs {
		id, err := widlib.GenerateID(input, salt, list, opts)
		if err != nil {
			return fmt.Errorf("input %q: %w", input, err)
		}
		fmt.Fprintf(tw, "%s\t%s\n", input, id)
	}
	return tw.Flush()
}
