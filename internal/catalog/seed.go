package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed seed.json
var seedJSON []byte

type seedFile struct {
	Personas []Persona `json:"personas"`
	Modules  []Module  `json:"modules"`
}

// Seed returns the built-in reference data used to populate an empty database.
func Seed() ([]Persona, []Module, error) {
	var f seedFile
	if err := json.Unmarshal(seedJSON, &f); err != nil {
		return nil, nil, fmt.Errorf("decode catalog seed: %w", err)
	}
	return f.Personas, f.Modules, nil
}
