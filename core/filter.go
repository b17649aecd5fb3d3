package core

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// ModFilter combines two independent predicates with AND semantics: a
// case-insensitive substring match against name or directory, and an optional
// membership test against exactly one pack. Failed mods are hidden whenever
// either predicate is active and shown when both are empty.
type ModFilter struct {
	Text string
	Pack *Pack
}

func (f ModFilter) Active() bool {
	return f.Text != "" || f.Pack != nil
}

func (f ModFilter) Matches(m *Mod) bool {
	if !f.Active() {
		return true
	}
	if !m.Loaded {
		return false
	}
	if f.Text != "" {
		needle := strings.ToLower(f.Text)
		if !strings.Contains(strings.ToLower(m.Name), needle) &&
			!strings.Contains(strings.ToLower(m.Directory), needle) {
			return false
		}
	}
	if f.Pack != nil && !f.Pack.HasMod(m.Directory) {
		return false
	}
	return true
}

// FilterMods returns the mods passing the filter, preserving input order.
func FilterMods(mods []*Mod, f ModFilter) []*Mod {
	var out []*Mod
	for _, m := range mods {
		if f.Matches(m) {
			out = append(out, m)
		}
	}
	return out
}

// modSource adapts a mod list to fuzzy matching over "name directory" pairs.
type modSource []*Mod

func (s modSource) String(i int) string {
	return s[i].Name + " " + s[i].Directory
}

func (s modSource) Len() int {
	return len(s)
}

// FuzzySearchMods ranks loaded mods against a free-text pattern. Failed mods
// are excluded, matching the hide-on-filter rule.
func FuzzySearchMods(mods []*Mod, pattern string) []*Mod {
	var loaded modSource
	for _, m := range mods {
		if m.Loaded {
			loaded = append(loaded, m)
		}
	}
	results := fuzzy.FindFrom(pattern, loaded)
	ranked := make([]*Mod, len(results))
	for i, r := range results {
		ranked[i] = loaded[r.Index]
	}
	return ranked
}
