package config

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// EntryShape distinguishes the two spec §6 command-line shapes.
type EntryShape int

const (
	// OneShot is `problem=<assembly|hotel> --inputFile ... --outputFile ...`.
	OneShot EntryShape = iota
	// ParamFileEntry is the robot-integrated driver's `--paramFile ...` shape.
	ParamFileEntry
)

// Options is the parsed result of either CLI entry shape, with every flag
// spec §6 names represented regardless of which shape supplied it.
type Options struct {
	Shape EntryShape

	// Shared.
	Problem    string
	DomainFile string

	// One-shot form.
	InputFile        string
	OutputFile       string
	Size             int
	Number           int
	Timeout          time.Duration
	MinDoubles       int
	MaxDoubles       int
	Runs             int
	NumSteps         int
	Verbose          int
	TreeKnowledge    string
	RolloutKnowledge string
	FTable           bool

	// Paramfile form.
	ParamFile    string
	ProblemFile  string
	UseMockupGUI bool
}

// ParseArgs parses args (normally os.Args[1:]) into an Options, selecting
// the entry shape by whether a --paramFile flag or a bare "problem=..."
// token is present (spec §6 "Two entry shapes are supported").
func ParseArgs(args []string) (Options, error) {
	var opt Options

	problemToken := ""
	rest := make([]string, 0, len(args))
	for _, a := range args {
		if strings.HasPrefix(a, "problem=") {
			problemToken = strings.TrimPrefix(a, "problem=")
			continue
		}
		rest = append(rest, a)
	}

	fs := flag.NewFlagSet("rageplan", flag.ContinueOnError)

	inputFile := fs.String("inputFile", "", "")
	outputFile := fs.String("outputFile", "", "")
	size := fs.Int("size", 0, "")
	number := fs.Int("number", 0, "")
	timeout := fs.Duration("timeout", 0, "")
	minDoubles := fs.Int("minDoubles", 0, "")
	maxDoubles := fs.Int("maxDoubles", 0, "")
	runs := fs.Int("runs", 1, "")
	numSteps := fs.Int("numSteps", 0, "")
	verbose := fs.Int("verbose", 0, "")
	treeKnowledge := fs.String("treeKnowledge", "preferred", "")
	rolloutKnowledge := fs.String("rolloutKnowledge", "preferred", "")
	fTable := fs.Bool("fTable", false, "")

	paramFile := fs.String("paramFile", "", "")
	problemFile := fs.String("problemFile", "", "")
	domainFile := fs.String("domainFile", "", "")
	useMockupGUI := fs.Bool("use_mockup_gui", false, "")

	if err := fs.Parse(rest); err != nil {
		return Options{}, fmt.Errorf("config: parse flags: %w", err)
	}

	opt.InputFile = *inputFile
	opt.OutputFile = *outputFile
	opt.Size = *size
	opt.Number = *number
	opt.Timeout = *timeout
	opt.MinDoubles = *minDoubles
	opt.MaxDoubles = *maxDoubles
	opt.Runs = *runs
	opt.NumSteps = *numSteps
	opt.Verbose = *verbose
	opt.TreeKnowledge = *treeKnowledge
	opt.RolloutKnowledge = *rolloutKnowledge
	opt.FTable = *fTable
	opt.ParamFile = *paramFile
	opt.ProblemFile = *problemFile
	opt.DomainFile = *domainFile
	opt.UseMockupGUI = *useMockupGUI
	opt.Problem = problemToken

	if opt.ParamFile != "" {
		opt.Shape = ParamFileEntry
	} else {
		opt.Shape = OneShot
	}
	return opt, nil
}

// MergeParamFile overlays a parsed ParamFile onto opt for fields the
// command line left at their zero value, giving explicit flags priority
// over the paramfile (spec §6 "Paramfile form"). TreeKnowledge is also
// overlaid when it holds the flag default "preferred", and only when the
// paramfile sets it.
func (opt Options) MergeParamFile(p ParamFile) Options {
	if opt.Problem == "" {
		opt.Problem = p.Problem
	}
	if opt.ProblemFile == "" {
		opt.ProblemFile = p.ProblemFile
	}
	if opt.OutputFile == "" {
		opt.OutputFile = p.OutputFile
	}
	if opt.DomainFile == "" {
		opt.DomainFile = p.DomainFile
	}
	if opt.Verbose == 0 {
		opt.Verbose = p.Verbose
	}
	if p.TreeKnowledge != "" && (opt.TreeKnowledge == "" || opt.TreeKnowledge == "preferred") {
		opt.TreeKnowledge = p.TreeKnowledge
	}
	if opt.Timeout == 0 {
		opt.Timeout = p.Timeout
	}
	return opt
}
