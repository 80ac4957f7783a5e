package config

import (
	"strings"
	"testing"
	"time"
)

func TestParseParamFileRecognisedKeys(t *testing.T) {
	body := strings.NewReader(`
		problem hotel
		nSims 1024
		timeout 2.5
		verbose 1
		treeKnowledge pgs
		ire true
		perceive 0.9
		activation -5.5
		domainFile hotel.json
	`)

	p, err := parseParamFile(body)
	if err != nil {
		t.Fatalf("parseParamFile: %v", err)
	}

	if p.Problem != "hotel" {
		t.Errorf("Problem = %q, want hotel", p.Problem)
	}
	if p.NSims != 1024 {
		t.Errorf("NSims = %d, want 1024", p.NSims)
	}
	if p.Timeout != 2500*time.Millisecond {
		t.Errorf("Timeout = %v, want 2.5s", p.Timeout)
	}
	if p.Verbose != 1 {
		t.Errorf("Verbose = %d, want 1", p.Verbose)
	}
	if p.TreeKnowledge != "pgs" {
		t.Errorf("TreeKnowledge = %q, want pgs", p.TreeKnowledge)
	}
	if !p.IRE {
		t.Errorf("IRE = false, want true")
	}
	if p.Perceive != 0.9 {
		t.Errorf("Perceive = %v, want 0.9", p.Perceive)
	}
	if p.Activation != -5.5 {
		t.Errorf("Activation = %v, want -5.5", p.Activation)
	}
	if p.DomainFile != "hotel.json" {
		t.Errorf("DomainFile = %q, want hotel.json", p.DomainFile)
	}
}

func TestParseParamFileIgnoresUnrecognisedKeys(t *testing.T) {
	body := strings.NewReader("someFutureKey 42 problem assembly")

	p, err := parseParamFile(body)
	if err != nil {
		t.Fatalf("parseParamFile: %v", err)
	}
	if p.Problem != "assembly" {
		t.Errorf("Problem = %q, want assembly (parse should continue past the unknown key)", p.Problem)
	}
}

func TestParseParamFileRejectsDanglingKey(t *testing.T) {
	body := strings.NewReader("problem")
	if _, err := parseParamFile(body); err == nil {
		t.Fatalf("parseParamFile: want error for a key with no value")
	}
}

func TestParseParamFileRejectsBadNumber(t *testing.T) {
	body := strings.NewReader("nSims notanumber")
	if _, err := parseParamFile(body); err == nil {
		t.Fatalf("parseParamFile: want error for a malformed nSims value")
	}
}
