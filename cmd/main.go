// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"skyredact/internal/config"
	"skyredact/internal/core"
	"skyredact/internal/formatters"
	jsonformatter "skyredact/internal/formatters/json"
	textformatter "skyredact/internal/formatters/text"
	"skyredact/internal/help"
	"skyredact/internal/observability"
	"skyredact/internal/preprocess"
	"skyredact/internal/recognizers/airline"
	"skyredact/internal/recognizers/phone"
	"skyredact/internal/version"
	"skyredact/internal/web"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Local .env files carry model paths during development; absence is fine.
	_ = godotenv.Load()

	textFlag := flag.String("text", "", "Message text to redact")
	fileFlag := flag.String("file", "", "Input file to redact (.txt or .pdf)")
	configFlag := flag.String("config", "", "Path to configuration file (YAML)")
	formatFlag := flag.String("format", "", "Output format: text, json")
	scanFlag := flag.Bool("scan", false, "Report detected entities instead of only redacted text")
	showMatchFlag := flag.Bool("show-match", false, "Display the detected text in findings")
	serveFlag := flag.Bool("serve", false, "Run as an HTTP service")
	addrFlag := flag.String("addr", "", "Listen address for --serve")
	verboseFlag := flag.Bool("verbose", false, "Display detailed information")
	debugFlag := flag.Bool("debug", false, "Enable per-operation debug logging")
	noColorFlag := flag.Bool("no-color", false, "Disable colored output")
	versionFlag := flag.Bool("version", false, "Show version information")

	// The closure defers the noColor read until after parsing.
	flag.Usage = func() { buildHelpSystem(*noColorFlag).ShowGeneralHelp() }
	flag.Parse()
	helpSys := buildHelpSystem(*noColorFlag)

	if *versionFlag {
		fmt.Println(version.Info())
		return 0
	}

	if args := flag.Args(); len(args) > 0 && args[0] == "help" {
		switch {
		case len(args) == 1:
			helpSys.ShowGeneralHelp()
		case args[1] == "detectors":
			helpSys.ShowDetectorsHelp()
		default:
			if !helpSys.ShowDetectorHelp(args[1]) {
				return 1
			}
		}
		return 0
	}

	cfg := config.LoadConfigOrDefault(*configFlag)

	// CLI flags win over the config file
	if *formatFlag != "" {
		cfg.Defaults.Format = *formatFlag
	}
	if *verboseFlag {
		cfg.Defaults.Verbose = true
	}
	if *debugFlag {
		cfg.Defaults.Debug = true
	}
	if *noColorFlag {
		cfg.Defaults.NoColor = true
	}
	if *addrFlag != "" {
		cfg.Server.Addr = *addrFlag
	}

	// Colors only make sense on a terminal
	if cfg.Defaults.NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	level := observability.ObservabilityMetrics
	if cfg.Defaults.Debug {
		level = observability.ObservabilityDebug
	}
	obs := observability.NewStandardObserver(level, os.Stderr)

	engine := core.New(cfg, obs)
	defer engine.Close()

	if *serveFlag {
		return serve(cfg, engine, obs)
	}

	text, err := readInput(*textFlag, *fileFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if *scanFlag || cfg.Defaults.Format == "json" {
		registry := formatters.NewRegistry()
		registry.Register(textformatter.NewFormatter())
		registry.Register(jsonformatter.NewFormatter())

		formatter, ok := registry.Get(cfg.Defaults.Format)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown output format %q (available: %s)\n",
				cfg.Defaults.Format, strings.Join(registry.List(), ", "))
			return 1
		}

		result := engine.Process(text)
		out, err := formatter.Format(result, formatters.FormatterOptions{
			Verbose:   *scanFlag || cfg.Defaults.Verbose,
			NoColor:   cfg.Defaults.NoColor,
			ShowMatch: *showMatchFlag,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Print(out)
		if !strings.HasSuffix(out, "\n") {
			fmt.Println()
		}
		return 0
	}

	fmt.Println(engine.Redact(text))
	return 0
}

// readInput resolves the message text from the flag, a file, or stdin.
func readInput(text, file string) (string, error) {
	switch {
	case text != "" && file != "":
		return "", fmt.Errorf("use either --text or --file, not both")
	case text != "":
		return text, nil
	case file != "":
		return preprocess.ExtractText(file)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		if len(data) == 0 {
			return "", fmt.Errorf("no input: pass --text, --file, or pipe text on stdin")
		}
		return string(data), nil
	}
}

// serve runs the HTTP server until SIGINT/SIGTERM, then drains connections.
func serve(cfg *config.Config, engine *core.Engine, obs *observability.StandardObserver) int {
	server := web.NewServer(cfg.Server.Addr, engine, obs)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Stop(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: shutdown: %v\n", err)
			return 1
		}
		return 0
	}
}

func buildHelpSystem(noColor bool) *help.System {
	helpSys := help.NewSystem(noColor)
	helpSys.RegisterProvider(phone.NewRecognizer())
	helpSys.RegisterProvider(airline.NewRecognizer())
	return helpSys
}
