package assembly

// PresetMWE reproduces ASSEMBLY_PARAMS::ASSEMBLY_MWE from assembly_worker.h:
// two truck colours sharing a chassis/wheel/container and a colour-specific
// cabin, with a glue finishing step.
func PresetMWE() Config {
	cfg := DefaultConfig()
	cfg.Objects = []string{"Blue Truck", "Red Truck"}
	cfg.Types = []int{0, 1}
	cfg.Parts = []string{"Chassis", "Wheels", "Blue cabin", "Yellow cabin", "Red cabin", "Container"}
	cfg.PartPriority = []int{3, 2, 2, 2, 2, 3}
	cfg.PartCost = []float64{0, 0, 0, 0, 0, 0}
	cfg.Storage = []int{1, 2, 2, 0, 2, 1}
	cfg.TypeMap = [][]int{
		{0, 2, 1, 5}, // blue: chassis, blue cabin, wheels, container
		{0, 4, 1, 5}, // red: chassis, red cabin, wheels, container
	}
	cfg.NeedsGlue = []bool{true, true}
	return cfg
}

// PresetINCORAP reproduces ASSEMBLY_PARAMS::ASSEMBLY_INCORAP.
func PresetINCORAP() Config {
	cfg := DefaultConfig()
	cfg.Objects = []string{"Yellow Truck", "Blue Truck"}
	cfg.Types = []int{0, 1}
	cfg.Parts = []string{"Front Chassis", "Rear Chassis", "Cabin", "Blue Trailer", "Blue Lid", "Yellow Trailer", "Yellow Lid"}
	cfg.PartPriority = []int{1, 1, 1, 1, 1, 1, 1}
	cfg.PartCost = []float64{0, 0, 0, 0, 0, 0, 0}
	cfg.Storage = []int{2, 2, 1, 1, 1, 1, 1}
	cfg.TypeMap = [][]int{
		{0, 1, 2, 5, 6}, // yellow
		{0, 1, 2, 3, 4}, // blue
	}
	cfg.NeedsGlue = []bool{true, true}
	return cfg
}
