// Package cmdserver implements the local web UI subcommand.
package cmdserver

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/mds/value"
	"github.com/creachadair/wordid/cmd/wid/config"
	"github.com/creachadair/wordid/wordlist"
)

var Command = &command.C{
	Name: "server",
	Help: `Run a local web UI for generating identifiers.

The UI serves a form for the input text and generation settings.
The secret salt is fixed at startup (--salt, --salt-file, or a
terminal prompt) and is never rendered into a page. When a wordlist
file is in use, it is watched and reloaded on change.`,
	SetFlags: command.Flags(flax.MustBind, &serverFlags),
	Run:      command.Adapt(runServer),
}

var serverFlags struct {
	Addr     string `flag:"addr,Service address (host:port)"`
	Salt     string `flag:"salt,default=$WORDID_SALT,Secret salt text"`
	SaltFile string `flag:"salt-file,Path of an encrypted salt file"`
}

func runServer(env *command.Env) error {
	if serverFlags.Addr == "" {
		return env.Usagef("you must provide a service --addr")
	}
	salt, err := config.ResolveSalt(serverFlags.Salt, serverFlags.SaltFile)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(env.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path := config.Get(env).WordlistPath()
	words := wordlist.Default
	if path != "" {
		list, err := wordlist.Open(path)
		if err != nil {
			return err
		}
		w, err := wordlist.NewWatcher(list, path)
		if err != nil {
			return err
		}
		go func() {
			log.Printf("Watching for updates at %q", path)
			w.Run(ctx)
		}()
		words = w.List
	}
	log.Printf("Using %s word list", value.Cond(path == "", "the built-in", path))

	ui := &UI{
		Words:     words,
		Salt:      salt,
		Templates: tmpl,
	}
	srv := &http.Server{
		Addr:    serverFlags.Addr,
		Handler: ui.ServeMux(),
	}
	go func() {
		log.Printf("Serving at %q", serverFlags.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Printf("WARNING: Server error %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Signal received, stopping server")
	return srv.Shutdown(context.Background())
}

//go:embed templates
var tmplFS embed.FS

var tmpl = template.Must(template.New("ui").ParseFS(tmplFS, "templates/*"))
