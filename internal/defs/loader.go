// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// BalanceFile is the on-disk override format. Any entry present replaces
// (or adds to) the corresponding built-in definition table; absent tables
// are left untouched.
type BalanceFile struct {
	Missiles []MissileDefinition `yaml:"missiles"`
	Defenses []DefenseDefinition `yaml:"defenses"`
	Targets  []TargetDefinition  `yaml:"targets"`
}

// LoadBalance reads a YAML balance file and merges it over the built-in
// definition tables. The built-in tables always provide a complete game,
// so a missing file is not an error for callers that treat the path as
// optional.
func LoadBalance(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read balance file: %w", err)
	}

	var balance BalanceFile
	if err := yaml.Unmarshal(data, &balance); err != nil {
		return fmt.Errorf("failed to parse balance file: %w", err)
	}

	for _, def := range balance.Missiles {
		if def.ID == "" {
			return fmt.Errorf("balance file: missile entry without id")
		}
		MissileDefs[def.ID] = def
	}
	for _, def := range balance.Defenses {
		if def.ID == "" {
			return fmt.Errorf("balance file: defense entry without id")
		}
		DefenseDefs[def.ID] = def
	}
	for _, def := range balance.Targets {
		if def.ID == "" {
			return fmt.Errorf("balance file: target entry without id")
		}
		TargetDefs[def.ID] = def
	}

	log.Printf("Loaded balance overrides: %d missiles, %d defenses, %d targets",
		len(balance.Missiles), len(balance.Defenses), len(balance.Targets))
	return nil
}
