package cmd

import (
	"fmt"

	"isaac-mod-manager/config"
	"isaac-mod-manager/core"
	"isaac-mod-manager/fileio"
	"isaac-mod-manager/internal/shared"
)

// session is the state a command operates on: the resolved configuration,
// the scanned mod list and the pack store. It replaces the globals the
// original app scattered across UI callbacks.
type session struct {
	cfg   config.Config
	mods  []*core.Mod
	store *fileio.PackStore
}

func mustConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		shared.Exitln(err)
	}
	return cfg
}

// openSession loads config, scans the mods folder and loads every pack.
func openSession() *session {
	cfg := mustConfig()

	mods, err := fileio.ScanMods(cfg.ModsFolder)
	if err != nil {
		shared.Exitln(err)
	}

	store := fileio.NewPackStore(cfg.PacksFolder)
	if err := store.LoadAll(); err != nil {
		shared.Exitln(err)
	}

	return &session{cfg: cfg, mods: mods, store: store}
}

func (s *session) findMod(directory string) *core.Mod {
	mod := core.FindModByDirectory(s.mods, directory)
	if mod == nil {
		shared.Exitf("No loaded mod with directory %q\n", directory)
	}
	return mod
}

func (s *session) findPack(name string) *core.Pack {
	pack := s.store.Set.FindByName(name)
	if pack == nil {
		shared.Exitf("No loaded pack named %q\n", name)
	}
	return pack
}

func enabledMark(enabled bool) string {
	if enabled {
		return "[x]"
	}
	return "[ ]"
}

func printMod(m *core.Mod) {
	if !m.Loaded {
		fmt.Printf(" !  %s (failed to load)\n", m.FolderPath)
		return
	}
	fmt.Printf("%s %s (%s) %s\n", enabledMark(m.Enabled), m.Name, m.Version, m.Directory)
}
