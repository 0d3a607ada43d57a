// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"docprompt/internal/assembler"
	"docprompt/internal/config"
	"docprompt/internal/observability"
	"docprompt/internal/ollama"
	"docprompt/internal/version"
)

// configFlags holds command line flag values
type configFlags struct {
	model      string
	prompt     string
	url        string
	stream     bool
	timeoutSec int
	verbose    bool
	debug      bool
	noColor    bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	model      string
	prompt     string
	url        string
	stream     bool
	timeoutSec int
	verbose    bool
	debug      bool
	noColor    bool
}

// resolveConfiguration resolves final values from config file, environment
// and command line flags; later sources win
func resolveConfiguration(cfg *config.Config, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{
		model:      cfg.Defaults.Model,
		prompt:     cfg.Defaults.Prompt,
		url:        cfg.Defaults.URL,
		stream:     cfg.Defaults.Stream,
		timeoutSec: cfg.Defaults.TimeoutSeconds,
		verbose:    cfg.Defaults.Verbose,
		debug:      cfg.Defaults.Debug,
		noColor:    cfg.Defaults.NoColor,
	}

	if isFlagSet("model") {
		final.model = flags.model
	}
	if isFlagSet("prompt") {
		final.prompt = flags.prompt
	}
	if isFlagSet("url") {
		final.url = flags.url
	}
	if isFlagSet("stream") {
		final.stream = flags.stream
	}
	if isFlagSet("timeout") {
		final.timeoutSec = flags.timeoutSec
	}
	if flags.verbose {
		final.verbose = true
	}
	if flags.debug {
		final.debug = true
	}
	if flags.noColor {
		final.noColor = true
	}

	return final
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] [file ...]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Combines the given documents (.txt, .md, .json, .docx, .pdf, .pptx, images)\n")
	fmt.Fprintf(os.Stderr, "into one prompt and submits it to a local text-generation endpoint.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

func main() {
	flags := &configFlags{}
	configFile := flag.String("config", "", "Path to configuration file")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.StringVar(&flags.model, "model", "", "Model name to generate with")
	flag.StringVar(&flags.prompt, "prompt", "", "Prompt text prepended to the combined documents")
	flag.StringVar(&flags.url, "url", "", "Base URL of the generation endpoint")
	flag.BoolVar(&flags.stream, "stream", true, "Stream tokens as they arrive")
	flag.IntVar(&flags.timeoutSec, "timeout", 0, "Timeout in seconds for buffered requests")
	flag.BoolVar(&flags.verbose, "verbose", false, "Show per-file extraction progress")
	flag.BoolVar(&flags.debug, "debug", false, "Emit debug observability records to stderr")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colorized output")
	flag.Usage = printUsage
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	cfg := config.LoadConfigOrDefault(*configFile)
	config.ApplyEnvironment(cfg)
	final := resolveConfiguration(cfg, flags)

	if final.noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	files := flag.Args()
	if len(files) == 0 && final.prompt == "" {
		printUsage()
		os.Exit(2)
	}

	level := observability.ObservabilityOff
	if final.debug {
		level = observability.ObservabilityDebug
	}
	observer := observability.NewStandardObserver(level, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, final, files, observer); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, final *finalConfiguration, files []string, observer *observability.StandardObserver) error {
	combined, err := assembler.New(observer).Combine(files)
	if err != nil {
		return err
	}

	if final.verbose && len(files) > 0 {
		color.New(color.FgCyan).Fprintf(os.Stderr, "Combined %d document(s), %d characters\n", len(files), len(combined))
	}

	prompt := combined
	if final.prompt != "" {
		prompt = final.prompt
		if combined != "" {
			prompt += "\n\n" + combined
		}
	}

	client := ollama.NewClient(final.url, time.Duration(final.timeoutSec)*time.Second, observer)

	if final.stream {
		return client.GenerateStream(ctx, final.model, prompt, os.Stdout)
	}

	answer, err := client.Generate(ctx, final.model, prompt)
	if err != nil {
		return err
	}
	fmt.Println(answer)
	return nil
}
