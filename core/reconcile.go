package core

// Toggler flips a single mod's enabled state, keeping the in-memory flag and
// the on-disk marker in agreement. fileio provides the real implementation;
// tests substitute a counting fake.
type Toggler interface {
	Toggle(mod *Mod) error
}

// Apply reconciles the live mod set's enabled state to exactly match the
// pack's membership. Mods already in the desired state are not touched, so
// re-applying a pack performs zero filesystem writes. Failed mods are skipped.
//
// An empty pack is an explicit no-op: applying it must not disable
// everything.
//
// Returns the number of mods toggled. On a toggle error the reconciliation
// stops; mods already toggled keep their new state (each toggle is
// independent and keyed by its own folder).
func Apply(pack *Pack, mods []*Mod, toggler Toggler) (int, error) {
	if len(pack.Mods) == 0 {
		return 0, nil
	}
	toggled := 0
	for _, m := range mods {
		if !m.Loaded {
			continue
		}
		if m.Enabled == pack.HasMod(m.Directory) {
			continue
		}
		if err := toggler.Toggle(m); err != nil {
			return toggled, err
		}
		toggled++
	}
	return toggled, nil
}
