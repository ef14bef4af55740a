// Package cmdsalt implements the "salt" subcommand.
package cmdsalt

import (
	"errors"
	"fmt"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/wordid/widlib"
)

var Command = &command.C{
	Name: "salt",
	Help: `Generate a fresh random secret salt.

The salt is printed to stdout as lowercase hexadecimal. Keep it
secret: anyone holding it can regenerate identifiers from inputs.

With --out, the salt is instead written to an encrypted salt file
protected by a passphrase (prompted twice), suitable for later use
with --salt-file. The salt is not printed in that case.`,
	SetFlags: command.Flags(flax.MustBind, &saltFlags),
	Run:      command.Adapt(runSalt),
}

var saltFlags struct {
	Size int    `flag:"size,default=32,Salt size in bytes (minimum 32)"`
	Out  string `flag:"out,Write an encrypted salt file instead of printing"`
}

// runSalt implements the "salt" subcommand.
func runSalt(env *command.Env) error {
	salt, err := widlib.NewSalt(saltFlags.Size)
	if err != nil {
		return err
	}

	// The rendered hex text is the canonical caller-side form of a generated
	// salt, so the file stores the text: a salt printed here and one stored
	// with --out derive the same identifiers.
	text := salt.Hex()
	if saltFlags.Out == "" {
		fmt.Println(text)
		return nil
	}

	pp, err := widlib.ConfirmPassphrase("Passphrase: ")
	if err != nil {
		return err
	} else if pp == "" {
		return errors.New("empty passphrase")
	}
	if err := widlib.WriteSaltFile(saltFlags.Out, widlib.SaltFromString(text), pp); err != nil {
		return err
	}
	fmt.Fprintf(env, "Wrote salt to %s\n", saltFlags.Out)
	return nil
}
