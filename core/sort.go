package core

import (
	"slices"
	"strings"

	"github.com/unascribed/FlexVer/go/flexver"
)

// ModOrder selects one of the total orderings over a mod list. Failed mods
// sort last in every mode.
type ModOrder string

const (
	OrderNameAsc       ModOrder = "name"
	OrderNameDesc      ModOrder = "name-desc"
	OrderEnabledFirst  ModOrder = "enabled"
	OrderDisabledFirst ModOrder = "disabled"
	OrderVersion       ModOrder = "version"
)

var modOrders = []ModOrder{
	OrderNameAsc,
	OrderNameDesc,
	OrderEnabledFirst,
	OrderDisabledFirst,
	OrderVersion,
}

func ParseModOrder(s string) (ModOrder, bool) {
	for _, o := range modOrders {
		if string(o) == s {
			return o, true
		}
	}
	return "", false
}

func ModOrderNames() []string {
	names := make([]string, len(modOrders))
	for i, o := range modOrders {
		names[i] = string(o)
	}
	return names
}

// SortMods sorts in place according to the given order. The sort is stable so
// equal elements keep their scan order.
func SortMods(mods []*Mod, order ModOrder) {
	slices.SortStableFunc(mods, func(a, b *Mod) int {
		if c := compareLoaded(a, b); c != 0 {
			return c
		}
		switch order {
		case OrderNameDesc:
			return -compareName(a, b)
		case OrderEnabledFirst:
			if c := compareBool(b.Enabled, a.Enabled); c != 0 {
				return c
			}
			return compareName(a, b)
		case OrderDisabledFirst:
			if c := compareBool(a.Enabled, b.Enabled); c != 0 {
				return c
			}
			return compareName(a, b)
		case OrderVersion:
			if c := flexver.Compare(a.Version, b.Version); c != 0 {
				return int(c)
			}
			return compareName(a, b)
		default:
			return compareName(a, b)
		}
	})
}

// compareLoaded pushes failed mods to the end regardless of mode.
func compareLoaded(a, b *Mod) int {
	return compareBool(b.Loaded, a.Loaded)
}

func compareName(a, b *Mod) int {
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}
