// internal/defs/defs_test.go
package defs

import "testing"

func TestUnknownKeysResolveToDefaults(t *testing.T) {
	if got := MissileDef("MISSILE_NOPE"); got.ID != DefaultMissileID {
		t.Fatalf("unknown missile resolved to %q", got.ID)
	}
	if got := DefenseDef("DEFENSE_NOPE"); got.ID != DefaultDefenseID {
		t.Fatalf("unknown defense resolved to %q", got.ID)
	}
	if got := TargetDef("TARGET_NOPE"); got.ID != DefaultTargetID {
		t.Fatalf("unknown target resolved to %q", got.ID)
	}
}

func TestKnownKeysResolveToThemselves(t *testing.T) {
	for id := range MissileDefs {
		if MissileDef(id).ID != id {
			t.Fatalf("missile %q did not resolve to itself", id)
		}
	}
	for id := range DefenseDefs {
		if DefenseDef(id).ID != id {
			t.Fatalf("defense %q did not resolve to itself", id)
		}
	}
	for id := range TargetDefs {
		if TargetDef(id).ID != id {
			t.Fatalf("target %q did not resolve to itself", id)
		}
	}
}

func TestDefinitionTablesAreSane(t *testing.T) {
	for id, def := range MissileDefs {
		if def.Speed <= 0 || def.Damage <= 0 || def.ScoreValue <= 0 {
			t.Fatalf("missile %q has non-positive combat stats: %+v", id, def)
		}
		if def.ThreatWeight <= 0 {
			t.Fatalf("missile %q needs a positive threat weight", id)
		}
	}
	for id, def := range DefenseDefs {
		if def.Range <= 0 || def.Damage <= 0 || def.CooldownTime <= 0 {
			t.Fatalf("defense %q has non-positive combat stats: %+v", id, def)
		}
		if def.Energy != nil && def.Energy.CostPerShot > def.Energy.Max {
			t.Fatalf("defense %q can never afford its own shot", id)
		}
	}
	for id, def := range TargetDefs {
		if def.MaxHealth <= 0 || def.Width <= 0 || def.Height <= 0 {
			t.Fatalf("target %q has non-positive stats: %+v", id, def)
		}
	}
}
