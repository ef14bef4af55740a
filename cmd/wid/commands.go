package main

import (
	"fmt"

	"github.com/creachadair/command"
	"github.com/creachadair/wordid/cmd/wid/config"
)

var configCommand = &command.C{
	Name: "config",
	Help: "Commands to manage the configuration file.",

	Commands: []*command.C{{
		Name:  "init",
		Usage: "<path>",
		Help: `Write a starter configuration file to the given path.

The file records default generation settings (word count, checksum
length, separator, wordlist path). Point the tool at it with
--config or the WORDID_CONFIG environment variable.`,
		Run: command.Adapt(runConfigInit),
	}},
}

// runConfigInit implements the "config init" subcommand.
func runConfigInit(env *command.Env, path string) error {
	if err := config.WriteStarter(path); err != nil {
		return err
	}
	fmt.Fprintf(env, "Wrote %s\n", path)
	return nil
}
