// Command cli is the auditlens entrypoint: it reads an audit report,
// extracts severity-tagged findings, and renders or exports them.
//
// Usage:
//
//	auditlens -i report.txt
//	auditlens -i report.txt -severity critical -expand-all
//	auditlens -i report.txt -interactive
//	auditlens -i - -format sarif -o findings.sarif < report.txt
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/auditlens/auditlens/pkg/config"
	"github.com/auditlens/auditlens/pkg/extract"
	"github.com/auditlens/auditlens/pkg/finding"
	"github.com/auditlens/auditlens/pkg/input"
	"github.com/auditlens/auditlens/pkg/interactive"
	"github.com/auditlens/auditlens/pkg/output"
	"github.com/auditlens/auditlens/pkg/ui"
	"github.com/auditlens/auditlens/pkg/view"
)

func main() {
	fs := flag.NewFlagSet("auditlens", flag.ExitOnError)
	cfg, err := config.Parse(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ui.SetSilent(cfg.Silent || cfg.Format != config.FormatConsole)
	ui.SetNoColor(cfg.NoColor)
	setupLogger(cfg.Verbose)

	text, err := input.ReadSource(cfg.InputPath)
	if err != nil {
		return err
	}

	findings := extract.Extract(text)
	slog.Debug("report extracted",
		"source", input.SourceName(cfg.InputPath),
		"findings", len(findings))

	sel := view.NewSelection()
	sel.SetFilter(cfg.InitialFilter())
	if cfg.ExpandAll {
		sel.ExpandAll(sel.Visible(findings))
	}

	if cfg.Interactive {
		ui.PrintBanner()
		renderer := ui.NewListRenderer(cfg.ShowLocation)
		return interactive.NewHandler(findings, sel, renderer, os.Stdin, os.Stdout, nil).Run()
	}

	if cfg.Format == config.FormatConsole {
		ui.PrintBanner()
		fmt.Print(ui.NewListRenderer(cfg.ShowLocation).Render(findings, sel))
		return nil
	}

	return export(cfg, findings)
}

func export(cfg *config.Config, findings []finding.Finding) error {
	out := os.Stdout
	if cfg.OutputFile != "" {
		f, err := os.Create(cfg.OutputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	w, err := output.ForFormat(cfg.Format, out, output.Options{
		Template: cfg.Template,
	})
	if err != nil {
		return err
	}
	return w.Write(output.NewReport(input.SourceName(cfg.InputPath), findings))
}

func setupLogger(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
