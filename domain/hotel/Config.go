// Package hotel implements the insect-hotel worker state machine and
// assistant POMDP: a human worker assembles one of several insect-hotel
// types from a shared parts stash, occasionally assembling the wrong part
// and having to remove it, while the assistant interleaves Perceive/
// InspectContainer perception actions (each reporting a bit-vector over all
// parts/containers at once) and InspectObject (a three-valued type reading)
// with BringPart manipulation actions.
package hotel

// Config bundles the domain description and problem/search parameters one
// hotel POMDP needs, the decode target for config.DomainFile and the hotel
// branch of config.ParamFile.
type Config struct {
	// Domain description.
	Objects      []string
	Parts        []string
	PartPriority []int
	PartCost     []float64
	Storage      []int // per-part stock, 0/1; not read by CreateStartState, which draws each container's NonEmpty flag with probability 0.5
	Types        []int
	TypeMap      [][]int // TypeMap[t] lists the part indices required by type t
	Expertise    float64

	// Problem/search parameters.
	PerceiveAcc     float64
	BringSuccess    float64
	Activation      float64
	Discount        float64
	FDiscount       float64
	TransitionRate  float64
	BinEntropyLimit float64
	RefillAmount    int
	PGSAlpha        float64

	RewardPerceive      float64
	RewardWrongPerceive float64
	RewardRestock       float64
	RewardGoodRestock   float64
	RewardWrongGoal     float64
	RewardPartMissing   float64
	RewardAssemble      float64
	RewardHotelComplete float64
	RewardWait          float64

	PGSGoal      float64
	PGSNotGoal   float64
	PGSUncertain float64

	WorkerDelay float64 // P_WORKER_DELAY: prob. of the worker idling in "none"
	RemovePart  float64 // P_REMOVE_PART; not read by the worker tick, where Expertise alone gates the switch to removing a wrong part and removal of an assembled part always succeeds
}

// NParts returns the number of distinct part/container slots.
func (c Config) NParts() int { return len(c.Parts) }

// NTypes returns the number of hotel types.
func (c Config) NTypes() int { return len(c.Types) }

// NObjects returns the number of hotels to assemble.
func (c Config) NObjects() int { return len(c.Objects) }

// DefaultConfig fills in the problem/search parameters, using the reward
// magnitudes hotel_robot.cpp's StepNormal hard-codes.
func DefaultConfig() Config {
	return Config{
		Expertise:           0.75,
		PerceiveAcc:         0.85,
		BringSuccess:        0.85,
		Activation:          -6.0,
		Discount:            0.95,
		FDiscount:           0.5,
		TransitionRate:      1.0,
		BinEntropyLimit:     0.5,
		RefillAmount:        1,
		PGSAlpha:            10,
		RewardPerceive:      -0.5,
		RewardWrongPerceive: -1,
		RewardRestock:       -2,
		RewardGoodRestock:   2,
		RewardWrongGoal:     -10,
		RewardPartMissing:   -2,
		RewardAssemble:      2,
		RewardHotelComplete: 5,
		RewardWait:          0,
		PGSGoal:             1,
		PGSNotGoal:          -1,
		PGSUncertain:        -0.5,
		WorkerDelay:         0.25,
		RemovePart:          0.85,
	}
}
