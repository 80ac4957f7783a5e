// Package assembly implements the assembly worker state machine and
// assistant POMDP of spec §4.4/§4.6: a human worker assembles one of several
// truck types from a shared parts stash and finishes with the matching
// glue, while the assistant interleaves Perceive/InspectTruck/
// InspectContainer perception actions with BringGlue/BringPart manipulation
// actions.
package assembly

// Config bundles the domain description (spec §6 JSON schema) and the
// problem/search parameters (spec §6 paramfile keys) one assembly POMDP
// needs. It is the decode target for config.DomainFile and the assembly
// branch of config.ParamFile.
type Config struct {
	// Domain description.
	Objects      []string
	Parts        []string
	PartPriority []int
	PartCost     []float64
	Storage      []int
	Types        []int
	TypeMap      [][]int // TypeMap[t] lists the part indices required by type t
	NeedsGlue    []bool  // NeedsGlue[t] for each type t
	Expertise    float64

	// Problem/search parameters.
	PerceiveAcc     float64
	Activation      float64
	PGSAlpha        float64
	Discount        float64
	FDiscount       float64
	TransitionRate  float64
	BinEntropyLimit float64
	RefillAmount    int

	RewardAssembleOK  float64
	RewardMissingPart float64
	RewardGlueOK      float64
	RewardWrongGoal   float64
	RewardRestock     float64
	RewardBringGlue   float64
	RewardWait        float64
	RewardPerceive    float64

	PGSBringGoal    float64
	PGSBringNotGoal float64
	PGSUncertain    float64
}

// NParts returns the number of distinct part/container slots.
func (c Config) NParts() int { return len(c.Parts) }

// NTypes returns the number of truck types.
func (c Config) NTypes() int { return len(c.Types) }

// NObjects returns the number of trucks to assemble.
func (c Config) NObjects() int { return len(c.Objects) }

// DefaultConfig fills in the problem/search parameters spec §4.6/§9 names,
// using the reward magnitudes the original incorap_mini.h docstring lists
// (+10 done, +5 right part, -10 wrong/unwanted, -2 missing, -0.5 perceive).
func DefaultConfig() Config {
	return Config{
		Expertise:         0.75,
		PerceiveAcc:       0.85,
		Activation:        -6.0,
		PGSAlpha:          10,
		Discount:          0.95,
		FDiscount:         0.5,
		TransitionRate:    1.0,
		BinEntropyLimit:   0.5,
		RefillAmount:      2,
		RewardAssembleOK:  5,
		RewardMissingPart: -2,
		RewardGlueOK:      10,
		RewardWrongGoal:   -10,
		RewardRestock:     -1,
		RewardBringGlue:   -0.5,
		RewardWait:        -1,
		RewardPerceive:    -0.5,
		PGSBringGoal:      1,
		PGSBringNotGoal:   -1,
		PGSUncertain:      -0.5,
	}
}
