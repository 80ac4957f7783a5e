package hotel

// PresetAIDemo reproduces HOTEL_PARAMS::HOTEL_AIDEMO from hotel_worker.h:
// one insect hotel assembled from five colour-coded parts, in one of two
// part-overlapping type layouts.
func PresetAIDemo() Config {
	cfg := DefaultConfig()
	cfg.Objects = []string{"Insect Hotel"}
	cfg.Types = []int{0, 1}
	cfg.Parts = []string{"Green", "Purple", "Orange", "Black", "Yellow"}
	cfg.PartPriority = []int{1, 1, 1, 1, 1}
	cfg.PartCost = []float64{0, 0, 0, 0, 0}
	cfg.Storage = []int{1, 1, 1, 1, 1}
	cfg.TypeMap = [][]int{
		{0, 1, 2, 3}, // hotel A: green, purple, orange, black
		{0, 2, 3, 4}, // hotel B: green, orange, black, yellow
	}
	return cfg
}
