package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/MartinCastroAlvarez/elematch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Opener elematch.DocumentOpener
	Runs   elematch.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Find FindCmd `cmd:"" help:"Learn a target element from a reference document and find it in candidates"`
	Runs RunsCmd `cmd:"" help:"List saved runs"`
	Show ShowCmd `cmd:"" help:"Show the saved matches of one run"`

	Verbose bool `short:"v" help:"Enable verbose logging"`
}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	Reference  string   `arg:"" help:"Reference document path"`
	Candidates []string `arg:"" name:"candidate" help:"Candidate document paths, optionally followed by a target id"`

	Limit       int     `short:"l" default:"1" help:"Maximum matches per candidate"`
	Threshold   float64 `short:"t" default:"0.8" help:"Minimum score, exclusive"`
	Save        bool    `short:"s" help:"Save the run to the history database"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent candidate limit"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Target string `help:"Filter by target id"`
	Limit  int    `default:"20" help:"Maximum runs to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Run ID"`
}
