// Package main is the entry point for the edi editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/svanari/edi/internal/app"
	"github.com/svanari/edi/internal/config"
	"github.com/svanari/edi/internal/renderer"
	"github.com/svanari/edi/internal/script"
	"github.com/svanari/edi/internal/session"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

type flags struct {
	configPath string
	initPath   string
	logFile    string
	path       string
}

func run() int {
	f := parseFlags()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: edi needs a terminal")
		return 1
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}

	res, err := script.Run(f.initPath, cfg)
	if err != nil {
		// A broken init script should not block editing.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = res.Config

	logger, logCloser, err := app.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if logCloser != nil {
		defer logCloser.Close()
	}
	logger.Info().Str("version", version).Str("file", f.path).Msg("starting")

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()

	editor, err := app.New(renderer.New(screen, cfg), app.Options{
		Path:    f.path,
		Config:  cfg,
		Keymaps: res.Keymaps,
		Session: session.NewStore(session.DefaultPath()),
		Logger:  logger,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	editor.Run(screen)
	logger.Info().Msg("exiting")
	return 0
}

func parseFlags() flags {
	var f flags
	var showVersion bool

	flag.StringVar(&f.configPath, "config", config.DefaultPath(), "Path to configuration file")
	flag.StringVar(&f.initPath, "init", script.DefaultPath(), "Path to init.lua")
	flag.StringVar(&f.logFile, "log", "", "Write a debug log to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "edi - a modal terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: edi [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("edi %s\n", version)
		os.Exit(0)
	}

	if args := flag.Args(); len(args) > 0 {
		if abs, err := filepath.Abs(args[0]); err == nil {
			f.path = abs
		} else {
			f.path = args[0]
		}
	}
	return f
}
