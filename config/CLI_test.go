package config

import "testing"

func TestParseArgsOneShotShape(t *testing.T) {
	opt, err := ParseArgs([]string{
		"problem=hotel",
		"--inputFile", "in.json",
		"--outputFile", "out.csv",
		"--minDoubles", "10",
		"--maxDoubles", "14",
		"--runs", "5",
		"--treeKnowledge", "pgs",
	})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if opt.Shape != OneShot {
		t.Errorf("Shape = %v, want OneShot", opt.Shape)
	}
	if opt.Problem != "hotel" {
		t.Errorf("Problem = %q, want hotel", opt.Problem)
	}
	if opt.MinDoubles != 10 || opt.MaxDoubles != 14 {
		t.Errorf("MinDoubles/MaxDoubles = %d/%d, want 10/14", opt.MinDoubles, opt.MaxDoubles)
	}
	if opt.Runs != 5 {
		t.Errorf("Runs = %d, want 5", opt.Runs)
	}
	if opt.TreeKnowledge != "pgs" {
		t.Errorf("TreeKnowledge = %q, want pgs", opt.TreeKnowledge)
	}
}

func TestParseArgsParamFileShape(t *testing.T) {
	opt, err := ParseArgs([]string{
		"--paramFile", "run.params",
		"--problemFile", "problem.json",
		"--domainFile", "domain.json",
		"--use_mockup_gui", "true",
	})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if opt.Shape != ParamFileEntry {
		t.Errorf("Shape = %v, want ParamFileEntry", opt.Shape)
	}
	if opt.ParamFile != "run.params" {
		t.Errorf("ParamFile = %q, want run.params", opt.ParamFile)
	}
	if !opt.UseMockupGUI {
		t.Errorf("UseMockupGUI = false, want true")
	}
}

func TestMergeParamFileFillsZeroFields(t *testing.T) {
	opt := Options{Shape: ParamFileEntry, TreeKnowledge: "preferred"}
	merged := opt.MergeParamFile(ParamFile{
		Problem:       "assembly",
		OutputFile:    "out.csv",
		TreeKnowledge: "pgs+shaping",
	})
	if merged.Problem != "assembly" {
		t.Errorf("Problem = %q, want assembly", merged.Problem)
	}
	if merged.OutputFile != "out.csv" {
		t.Errorf("OutputFile = %q, want out.csv", merged.OutputFile)
	}
	if merged.TreeKnowledge != "pgs+shaping" {
		t.Errorf("TreeKnowledge = %q, want pgs+shaping (paramfile overrides the CLI default)", merged.TreeKnowledge)
	}
}
