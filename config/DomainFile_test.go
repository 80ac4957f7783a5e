package config

import (
	"encoding/json"
	"testing"

	"github.com/dfki-ni/rageplan/domain/assembly"
	"github.com/dfki-ni/rageplan/domain/hotel"
)

func TestDomainFileAssemblyTypeMapAndNeedsGlue(t *testing.T) {
	raw := `{
		"objects": [
			{"name": "truckA", "parts": [0, 1], "type": 0, "needsGlue": true},
			{"name": "truckB", "parts": [1, 2], "type": 1, "needsGlue": false}
		],
		"parts": [
			{"name": "wheel", "priority": 1, "cost": 1, "storage": 2},
			{"name": "frame", "priority": 2, "cost": 2, "storage": 1},
			{"name": "bumper", "priority": 1, "cost": 1, "storage": 3}
		]
	}`

	var d DomainFile
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	cfg := d.ApplyToAssembly(assembly.DefaultConfig())

	if len(cfg.TypeMap) != 2 {
		t.Fatalf("len(TypeMap) = %d, want 2", len(cfg.TypeMap))
	}
	if got := cfg.TypeMap[0]; len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("TypeMap[0] = %v, want [0 1]", got)
	}
	if got := cfg.TypeMap[1]; len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("TypeMap[1] = %v, want [1 2]", got)
	}
	if !cfg.NeedsGlue[0] || cfg.NeedsGlue[1] {
		t.Errorf("NeedsGlue = %v, want [true false]", cfg.NeedsGlue)
	}
	if len(cfg.Storage) != 3 || cfg.Storage[0] != 2 || cfg.Storage[2] != 3 {
		t.Errorf("Storage = %v, want [2 1 3]", cfg.Storage)
	}
	if len(cfg.Objects) != 2 || cfg.Objects[0] != "truckA" {
		t.Errorf("Objects = %v", cfg.Objects)
	}
}

func TestDomainFileHotelTypeMap(t *testing.T) {
	raw := `{
		"objects": [
			{"name": "hotel1", "parts": [0, 1, 2], "type": 0},
			{"name": "hotel2", "parts": [0, 2, 3], "type": 1}
		],
		"parts": [
			{"name": "green", "priority": 1, "cost": 0},
			{"name": "purple", "priority": 1, "cost": 0},
			{"name": "orange", "priority": 1, "cost": 0},
			{"name": "black", "priority": 1, "cost": 0}
		]
	}`

	var d DomainFile
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	cfg := d.ApplyToHotel(hotel.DefaultConfig())
	if len(cfg.TypeMap) != 2 {
		t.Fatalf("len(TypeMap) = %d, want 2", len(cfg.TypeMap))
	}
	if got := cfg.TypeMap[0]; len(got) != 3 {
		t.Errorf("TypeMap[0] = %v, want 3 parts", got)
	}
	if len(cfg.Parts) != 4 {
		t.Errorf("len(Parts) = %d, want 4", len(cfg.Parts))
	}
}
