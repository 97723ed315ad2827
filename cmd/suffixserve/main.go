// Copyright 2025 The SuffixServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the suffix tree query server and CLI [DBG] application.

SuffixServe indexes a text into a suffix tree built with Ukkonen's algorithm
and answers exact substring and longest-repeating-substring queries over it.
It can operate as a MessagePack IPC server for integration with other
processes, or as a CLI application for testing and debugging.

The tree is built once per indexed text and is read-only afterwards; every
query runs in time proportional to the pattern, not the text. An optional
query cache remembers recent patterns for clients that re-ask.

# Usage

Start the server with default settings and index texts over IPC:

	suffixserve

Index a file up front and serve queries on it:

	suffixserve -file corpus.txt

Run in CLI mode against an inline text:

	suffixserve -c -text "mississippi"

# Configuration

Runtime configuration is managed through a TOML file that supports server
limits, index settings, and CLI defaults:

	[server]
	max_pattern = 256
	max_text = 1048576

	[index]
	cache_size = 512
	enable_cache = true

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Index a text,
then query it:

	{"id": "i1", "op": "index", "text": "banana"}
	{"id": "q1", "op": "find", "p": "ana"}
	{"id": "q1", "off": 1, "found": true, "t": 12}

Repeat queries use "repeat" for the historical offset-zero behavior and
"repeat_exact" for the actual longest repeated substring. See the server
package for the full message reference.

# CLI Mode

CLI mode provides an interactive interface for testing and debugging
queries. It reads patterns from stdin and displays offsets; slash commands
expose the repeat queries and index stats. This mode is primarily intended
for development; any new features should be tested here first.

# Command Line Flags

The following flags control application behavior:

	-version
	    Show current version
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-text string
	    Index the given text at startup
	-file string
	    Index the contents of the given file at startup
	-config string
	    Path to a config.toml overriding the default location
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/suffixserve/internal/cli"
	"github.com/bastiangx/suffixserve/internal/logger"
	"github.com/bastiangx/suffixserve/pkg/config"
	"github.com/bastiangx/suffixserve/pkg/index"
	"github.com/bastiangx/suffixserve/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "suffixserve"
	gh      = "https://github.com/bastiangx/suffixserve"
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

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	inlineText := flag.String("text", "", "Index the given text at startup")
	textFile := flag.String("file", "", "Index the contents of the given file at startup")
	configPath := flag.String("config", "", "Path to config.toml")

	flag.Parse()

	if *showVersion {
		banner := logger.NewWithConfig(os.Stderr, "", log.InfoLevel, false, false, log.TextFormatter)

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		banner.SetStyles(styles)

		banner.Print("")
		banner.Print("[ SuffixServe ] Substring queries over suffix trees")
		banner.Print("", "version", Version)
		banner.Print("")
		banner.Print("use -h or --help to see available options")
		banner.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config at: %s", config.GetActiveConfigPath(activePath))

	text, haveText := startupText(*inlineText, *textFile)

	if *cliMode {
		log.SetReportTimestamp(false)
		if !haveText {
			log.Fatal("CLI mode needs a text: pass -text or -file")
		}
		idx := buildIndex(cfg, text)
		handler := cli.NewInputHandler(idx, cfg.CLI.MaxPattern, cfg.CLI.ShowOffsets)
		if err := handler.Start(); err != nil {
			log.Debugf("CLI loop ended: %v", err)
		}
		return
	}

	srv := server.NewServer(cfg)
	if haveText {
		// Pre-indexing is a convenience; clients can still re-index over IPC.
		log.Debugf("Pre-indexing %d bytes", len(text))
		srv.Preload(buildIndex(cfg, text))
	}
	if err := srv.Start(); err != nil {
		log.Fatalf("Server terminated: %v", err)
	}
}

// startupText resolves the optional startup text from flags.
func startupText(inline, file string) (string, bool) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Fatalf("Failed to read text file: %v", err)
		}
		return string(data), true
	}
	if inline != "" {
		return inline, true
	}
	return "", false
}

func buildIndex(cfg *config.Config, text string) *index.Index {
	var (
		idx *index.Index
		err error
	)
	if cfg.Index.EnableCache {
		idx, err = index.NewWithCache(text, cfg.Index.CacheSize)
	} else {
		idx, err = index.New(text)
	}
	if err != nil {
		log.Fatalf("Failed to build index: %v", err)
	}
	return idx
}
