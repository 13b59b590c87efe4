package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/footprint-tools/fm/internal/app"
	"github.com/footprint-tools/fm/internal/cli"
	"github.com/footprint-tools/fm/internal/config"
	"github.com/footprint-tools/fm/internal/dispatchers"
	"github.com/footprint-tools/fm/internal/domain"
	"github.com/footprint-tools/fm/internal/session"
)

// Process flags.
const (
	flagUserName = "username"
	flagVerbose  = "verbose"
	flagNoColor  = "no-color"
)

func main() {
	flags := dispatchers.ParseArgs(os.Args[1:])

	opts := buildOptions(config.NewProvider(), flags, term.IsTerminal(int(os.Stdout.Fd())))
	application := app.New(opts)

	exit := func(code int) {
		_ = app.Close(application)
		os.Exit(code)
	}

	if err := run(application, flags, os.Stdin, exit); err != nil {
		_ = app.Close(application)
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// buildOptions layers process flags over the options read from cfg.
func buildOptions(cfg domain.ConfigProvider, flags *dispatchers.ParsedFlags, isTerminal bool) app.Options {
	opts := app.DefaultOptions(cfg)

	if flags.Bool(flagVerbose) {
		opts.Verbose = true
	}

	// Enable styling if stdout is a terminal and --no-color is not set
	opts.StyleEnabled = opts.StyleEnabled &&
		!flags.Bool(flagNoColor) &&
		app.ColorEnabled(opts.StyleConfig["color"], isTerminal)

	return opts
}

// userName returns the --username=<name> value or the default name. The
// name ends at the next "=", so --username=a=b yields "a".
func userName(flags *dispatchers.ParsedFlags) string {
	name, _, _ := strings.Cut(flags.String(flagUserName, ""), "=")
	if name == "" {
		return session.DefaultUserName
	}
	return name
}

// startLocation is the home directory, or the working directory when the
// home directory cannot be determined.
func startLocation(osInfo domain.OSInfo) (string, error) {
	if home, err := osInfo.HomeDir(); err == nil && home != "" {
		return home, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determining start directory: %w", err)
	}
	return wd, nil
}

func run(a *domain.Application, flags *dispatchers.ParsedFlags, in io.Reader, exit func(int)) error {
	grammar := cli.BuildGrammar()

	location, err := startLocation(a.OS)
	if err != nil {
		return err
	}

	sc := session.NewContext(userName(flags), location)
	d := session.NewDispatcher(sc, a, grammar, session.WithExitFunc(exit))
	if err := d.CheckGrammar(grammar); err != nil {
		return fmt.Errorf("command table is inconsistent: %w", err)
	}

	a.Logger.Debug("starting in %s as %s", location, sc.UserName())
	return session.New(grammar, d, a.Logger).Run(context.Background(), in)
}
