// Copyright 2026 The SpellServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the word index server and CLI application.

SpellServe provides exact lookup, prefix checks, autocomplete enumeration
and single-edit spelling suggestions over a word list loaded from a plain
text file. It can operate as a msgpack IPC server for integration with
editors, or as an interactive CLI for testing and everyday use.

# Usage

Start the server with default settings:

	spellserve -dict /usr/share/dict/words

Run in CLI mode with a display limit of ten:

	spellserve -dict words.txt -c -limit 10

The dictionary file holds one word per line; non-alphabetic lines are
skipped. When no file is found a small builtin word set is loaded so the
index stays usable.

# Configuration

Runtime configuration is managed through a TOML file that supports server
parameters, dictionary settings, and CLI defaults:

	[server]
	max_limit = 64
	min_prefix = 1
	max_prefix = 60
	enable_filter = true

	[dict]
	path = ""
	use_fallback = true
	cache_size = 256

The config file is automatically created with defaults if it doesn't
exist.

# IPC Protocol

The server communicates via msgpack over stdin/stdout. Each request
names an action and the word or prefix it applies to:

	{"id": "req1", "a": "complete", "w": "app", "l": 10}
	{"id": "req2", "a": "correct", "w": "appla"}

Correction responses carry a distinct already-correct flag, so clients
branch on the flag instead of scanning the suggestion list.

# Command Line Flags

The following flags control application behavior:

	-dict string
	    Path to a plain text word list (config default when empty)
	-config string
	    Custom config file path
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of completions to display in CLI mode
	-qmin int
	    Minimum query length in CLI mode
	-qmax int
	    Maximum query length in CLI mode
	-no-filter
	    Disable input filtering for debugging
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/spellserve/internal/cli"
	"github.com/bastiangx/spellserve/internal/logger"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/bastiangx/spellserve/pkg/server"
	"github.com/bastiangx/spellserve/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "spellserve"
	gh      = "https://github.com/bastiangx/spellserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary, engine and the chosen front end.
// It does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Path to a plain text word list (one word per line)")
	configPath := flag.String("config", "", "Custom config file path")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of completions to display")
	minQuery := flag.Int("qmin", defaults.CLI.DefaultMinLen, "Minimum query length (1 < n <= qmax)")
	maxQuery := flag.Int("qmax", defaults.CLI.DefaultMaxLen, "Maximum query length")
	noFilter := flag.Bool("no-filter", defaults.CLI.DefaultNoFilter, "Disable input filtering (DBG only) - allows numeric and repetitive queries")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	if activePath != "" {
		log.Debugf("Using config file: (%s)", activePath)
	}

	// flag wins over config for the dictionary location
	wordList := appConfig.Dict.Path
	if *dictPath != "" {
		wordList = *dictPath
	}

	engine := suggest.NewEngine(appConfig.Dict.CacheSize)
	result, err := dictionary.Load(engine, wordList, appConfig.Dict.UseFallback)
	if err != nil {
		log.Warnf("Dictionary load failed: %v. Starting with an empty index", err)
	}
	log.Debugf("Dictionary ready: %d words loaded, %d lines skipped, fallback=%v",
		result.Loaded, result.Skipped, result.UsedFallback)

	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"minQuery", *minQuery,
			"maxQuery", *maxQuery,
			"limit", *limit,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(engine, *minQuery, *maxQuery, *limit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(engine, appConfig)

	showStartupInfo(wordList, engine.Len())

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// showVersionInfo prints the styled version banner.
func showVersionInfo() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ SpellServe ] Dictionary lookups, completions and corrections!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
// It uses its own info-level logger so the banner shows regardless of
// the global level.
func showStartupInfo(wordList string, words int) {
	info := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	println("============")
	println(" SpellServe ")
	println("============")
	info.Infof("Version: %s", Version)
	info.Infof("Process ID: [ %d ]", os.Getpid())
	info.Info("init: OK")
	info.Infof("dictionary: ( %s )", wordList)
	info.Infof("words indexed: [ %d ]", words)
	info.Info("status: ready")
	println("============")
	println("Press Ctrl+C to exit")
}
