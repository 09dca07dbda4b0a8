// Package cli is the program entrypoint, kept out of package main so tests
// can call Run without forking processes.
package cli

import (
	"errors"
	"fmt"
	"io"

	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/miralabs/mirasite/internal/config"
	"github.com/miralabs/mirasite/internal/web"
)

// Version is injected by ldflags during release builds.
var Version = "dev"

type options struct {
	Config  string `short:"c" long:"config" description:"path to the site configuration file (YAML or JSON)"`
	Listen  string `short:"l" long:"listen" description:"listen address, overrides the configured one"`
	Version bool   `long:"version" description:"print version and exit"`
}

// Run parses flags, loads configuration, and serves the site. The returned
// code is the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return 0
		}
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	if opts.Version {
		fmt.Fprintln(stdout, "mirasite", Version)
		return 0
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	if opts.Listen != "" {
		cfg.Listen = opts.Listen
	}

	logrus.SetOutput(stderr)
	if !cfg.Production() {
		logrus.SetLevel(logrus.DebugLevel)
	}

	srv, err := web.New(cfg, Version)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	if err := srv.ListenAndServe(); err != nil {
		logrus.Errorf("server stopped: %v", err)
		return 1
	}
	return 0
}
