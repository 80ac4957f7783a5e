package config

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"
)

// ParamFile is the decode target for the spec §6 whitespace-delimited
// key/value parameter file: one search-level block and one problem-level
// block, both flattened into a single struct since neither domain needs
// more than one of each.
type ParamFile struct {
	// search
	Problem       string
	ProblemFile   string
	OutputFile    string
	NSims         int
	Timeout       time.Duration
	Verbose       int
	TreeKnowledge string
	Policy        string
	IRE           bool

	// problem (assembly/hotel)
	Perceive       float64
	BringSuccess   float64
	Activation     float64
	PGSAlpha       float64
	Discount       float64
	FDiscount      float64
	TransitionRate float64
	Expertise      float64
	Entropy        float64
	DomainFile     string
}

// paramSetters maps each recognised paramfile key to a closure that parses
// its value token into the right field. Unrecognised keys are reported and
// skipped rather than aborting the parse (spec §7 "Configuration errors...
// unrecognised keys").
func paramSetters(p *ParamFile) map[string]func(string) error {
	return map[string]func(string) error{
		"problem":        func(v string) error { p.Problem = v; return nil },
		"problemFile":    func(v string) error { p.ProblemFile = v; return nil },
		"outputFile":     func(v string) error { p.OutputFile = v; return nil },
		"treeKnowledge":  func(v string) error { p.TreeKnowledge = v; return nil },
		"policy":         func(v string) error { p.Policy = v; return nil },
		"domainFile":     func(v string) error { p.DomainFile = v; return nil },
		"nSims": func(v string) error {
			n, err := strconv.Atoi(v)
			p.NSims = n
			return err
		},
		"verbose": func(v string) error {
			n, err := strconv.Atoi(v)
			p.Verbose = n
			return err
		},
		"ire": func(v string) error {
			b, err := strconv.ParseBool(v)
			p.IRE = b
			return err
		},
		"timeout": func(v string) error {
			seconds, err := strconv.ParseFloat(v, 64)
			p.Timeout = time.Duration(seconds * float64(time.Second))
			return err
		},
		"perceive":       floatSetter(&p.Perceive),
		"bringSuccess":   floatSetter(&p.BringSuccess),
		"activation":     floatSetter(&p.Activation),
		"PGSAlpha":       floatSetter(&p.PGSAlpha),
		"discount":       floatSetter(&p.Discount),
		"fDiscount":      floatSetter(&p.FDiscount),
		"transitionRate": floatSetter(&p.TransitionRate),
		"expertise":      floatSetter(&p.Expertise),
		"entropy":        floatSetter(&p.Entropy),
	}
}

func floatSetter(dst *float64) func(string) error {
	return func(v string) error {
		f, err := strconv.ParseFloat(v, 64)
		*dst = f
		return err
	}
}

// ParseParamFile reads and parses path as a ParamFile.
func ParseParamFile(path string) (ParamFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParamFile{}, fmt.Errorf("config: open param file: %w", err)
	}
	defer f.Close()
	return parseParamFile(f)
}

// parseParamFile scans r as whitespace-delimited key/value tokens, one
// value per key, in any order.
func parseParamFile(r io.Reader) (ParamFile, error) {
	var p ParamFile
	setters := paramSetters(&p)

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		key := scanner.Text()
		if !scanner.Scan() {
			return p, fmt.Errorf("config: key %q has no value", key)
		}
		value := scanner.Text()

		set, known := setters[key]
		if !known {
			log.Printf("config: ignoring unrecognised paramfile key %q", key)
			continue
		}
		if err := set(value); err != nil {
			return p, fmt.Errorf("config: key %q: %w", key, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return p, fmt.Errorf("config: scan param file: %w", err)
	}
	return p, nil
}
