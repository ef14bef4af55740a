// Package cmdwords implements the "words" subcommand.
package cmdwords

import (
	"cmp"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/creachadair/command"
	"github.com/creachadair/wordid/cmd/wid/config"
	"github.com/creachadair/wordid/wordlist"
)

var Command = &command.C{
	Name: "words",
	Help: "Commands to inspect word lists.",

	Commands: []*command.C{
		{
			Name:  "check",
			Usage: "[path]",
			Help: `Validate a word list and report its size.

With a path argument, that file is checked; otherwise the list
selected by --wordlist or the configuration file is used. A list
must contain at least 512 unique words.`,
			Run: command.Adapt(runCheck),
		},
		{
			Name:  "show",
			Usage: "<index...>",
			Help:  "Print the words at the given list indices.",
			Run:   command.Adapt(runShow),
		},
	},
}

// runCheck implements the "words check" subcommand.
func runCheck(env *command.Env, optPath ...string) error {
	if len(optPath) > 1 {
		return env.Usagef("extra arguments after path: %q", optPath[1:])
	}
	var list *wordlist.List
	var source string
	var err error
	if len(optPath) == 1 {
		source = optPath[0]
		list, err = wordlist.Open(source)
	} else {
		set := config.Get(env)
		source = cmp.Or(set.WordlistPath(), "built-in")
		list, err = config.LoadList(env)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(env, "%s: %d words (ok)\n", source, list.Len())
	return nil
}

// runShow implements the "words show" subcommand.
func runShow(env *command.Env, indices ...string) error {
	if len(indices) == 0 {
		return env.Usagef("at least one index is required")
	}
	list, err := config.LoadList(env)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(os.Stdout, 4, 0, 1, ' ', 0)
	for _, arg := range indices {
		i, err := strconv.Atoi(arg)
		if err != nil {
			return env.Usagef("invalid index %q", arg)
		}
		if i < 0 || i >= list.Len() {
			return fmt.Errorf("index %d out of range (0..%d)", i, list.Len()-1)
		}
		fmt.Fprintf(tw, "%d\t%s\n", i, list.Word(i))
	}
	return tw.Flush()
}
