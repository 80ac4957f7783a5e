// Package config decodes the two on-disk configuration shapes spec §6
// names: the domain JSON schema (objects/parts/types) and the
// whitespace-delimited parameter file (search/problem keys), plus the CLI
// flag set each entry shape reads from. Grounded on the teacher's own
// encoding/json usage in agent/TypedConfigs.go.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dfki-ni/rageplan/domain/assembly"
	"github.com/dfki-ni/rageplan/domain/hotel"
)

// jsonPart is one entry of the domain file's "parts" array.
type jsonPart struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	Cost     int    `json:"cost"`
	Storage  int    `json:"storage"` // assembly only
}

// jsonObject is one entry of the domain file's "objects" array.
type jsonObject struct {
	Name      string `json:"name"`
	Parts     []int  `json:"parts"`
	Type      int    `json:"type"`      // assembly only
	NeedsGlue bool   `json:"needsGlue"` // assembly only
}

// DomainFile is the decode target for the spec §6 JSON schema shared by
// both domains; assembly additionally populates Type and NeedsGlue per
// object and Storage per part.
type DomainFile struct {
	Objects []jsonObject `json:"objects"`
	Parts   []jsonPart   `json:"parts"`
}

// ReadDomainFile reads and parses path as a DomainFile.
func ReadDomainFile(path string) (DomainFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DomainFile{}, fmt.Errorf("config: read domain file: %w", err)
	}
	var d DomainFile
	if err := json.Unmarshal(data, &d); err != nil {
		return DomainFile{}, fmt.Errorf("config: parse domain file: %w", err)
	}
	return d, nil
}

// typeMap builds one TypeMap entry per distinct object type, listing every
// part index any object of that type lists (spec §6 "Assembly additionally
// requires per-object type").
func (d DomainFile) typeMap() [][]int {
	maxType := -1
	for _, o := range d.Objects {
		if o.Type > maxType {
			maxType = o.Type
		}
	}
	tm := make([][]int, maxType+1)
	seen := make([]map[int]bool, maxType+1)
	for t := range tm {
		seen[t] = make(map[int]bool)
	}
	for _, o := range d.Objects {
		for _, p := range o.Parts {
			if !seen[o.Type][p] {
				seen[o.Type][p] = true
				tm[o.Type] = append(tm[o.Type], p)
			}
		}
	}
	return tm
}

func (d DomainFile) needsGlue() []bool {
	maxType := -1
	for _, o := range d.Objects {
		if o.Type > maxType {
			maxType = o.Type
		}
	}
	ng := make([]bool, maxType+1)
	for _, o := range d.Objects {
		if o.NeedsGlue {
			ng[o.Type] = true
		}
	}
	return ng
}

func (d DomainFile) partNames() []string {
	names := make([]string, len(d.Parts))
	for i, p := range d.Parts {
		names[i] = p.Name
	}
	return names
}

func (d DomainFile) partPriority() []int {
	v := make([]int, len(d.Parts))
	for i, p := range d.Parts {
		v[i] = p.Priority
	}
	return v
}

func (d DomainFile) partCost() []float64 {
	v := make([]float64, len(d.Parts))
	for i, p := range d.Parts {
		v[i] = float64(p.Cost)
	}
	return v
}

func (d DomainFile) partStorage() []int {
	v := make([]int, len(d.Parts))
	for i, p := range d.Parts {
		v[i] = p.Storage
	}
	return v
}

func (d DomainFile) objectNames() []string {
	names := make([]string, len(d.Objects))
	for i, o := range d.Objects {
		names[i] = o.Name
	}
	return names
}

func (d DomainFile) types() []int {
	tm := d.typeMap()
	types := make([]int, len(tm))
	for t := range tm {
		types[t] = t
	}
	return types
}

// ApplyToAssembly overlays d's domain description onto cfg, leaving the
// problem/search parameters cfg already carries untouched.
func (d DomainFile) ApplyToAssembly(cfg assembly.Config) assembly.Config {
	cfg.Objects = d.objectNames()
	cfg.Parts = d.partNames()
	cfg.PartPriority = d.partPriority()
	cfg.PartCost = d.partCost()
	cfg.Storage = d.partStorage()
	cfg.Types = d.types()
	cfg.TypeMap = d.typeMap()
	cfg.NeedsGlue = d.needsGlue()
	return cfg
}

// ApplyToHotel overlays d's domain description onto cfg, leaving the
// problem/search parameters cfg already carries untouched.
func (d DomainFile) ApplyToHotel(cfg hotel.Config) hotel.Config {
	cfg.Objects = d.objectNames()
	cfg.Parts = d.partNames()
	cfg.PartPriority = d.partPriority()
	cfg.PartCost = d.partCost()
	cfg.Storage = d.partStorage()
	cfg.Types = d.types()
	cfg.TypeMap = d.typeMap()
	return cfg
}
