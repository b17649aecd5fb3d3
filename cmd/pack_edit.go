package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/dixonwille/wmenu.v4"

	"isaac-mod-manager/core"
	"isaac-mod-manager/internal/cmdshared"
	"isaac-mod-manager/internal/shared"
)

// packEditCmd runs an interactive membership-editing session. Changes
// accumulate in memory; quitting with unsaved changes asks whether to save,
// discard or cancel, and cancelling returns to the session.
var packEditCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit a pack's membership interactively",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession()
		runEditSession(s, s.findPack(args[0]))
	},
}

const (
	editToggle       = "toggle"
	editAddActive    = "add-active"
	editRemoveActive = "remove-active"
	editRename       = "rename"
	editSave         = "save"
	editQuit         = "quit"
)

func runEditSession(s *session, p *core.Pack) {
	for {
		switch editMenuChoice(p) {
		case editToggle:
			toggleMembership(s, p)
		case editAddActive:
			fmt.Printf("Added %d mods.\n", p.AddActiveMods(s.mods))
		case editRemoveActive:
			fmt.Printf("Removed %d mods.\n", p.RemoveActiveMods(s.mods))
		case editRename:
			newName := cmdshared.ReadLine("New name: ")
			if err := s.store.Set.Rename(p, newName); err != nil {
				fmt.Println(err)
			}
		case editSave:
			if err := s.store.Save(p); err != nil {
				shared.Exitln(err)
			}
			fmt.Println("Saved.")
		case editQuit:
			if !p.HasUnsavedChanges() {
				return
			}
			switch exitChoice() {
			case "save":
				if err := s.store.Save(p); err != nil {
					shared.Exitln(err)
				}
				return
			case "discard":
				return
			}
			// Cancelled: back to the session.
		}
	}
}

func editMenuChoice(p *core.Pack) string {
	dirty := ""
	if p.HasUnsavedChanges() {
		dirty = " (unsaved changes)"
	}

	var choice string
	menu := wmenu.NewMenu(fmt.Sprintf("Editing pack %q, %d mods%s:", p.Name, len(p.Mods), dirty))
	menu.Option("Toggle a mod's membership", editToggle, true, nil)
	menu.Option("Add all active mods", editAddActive, false, nil)
	menu.Option("Remove all active mods", editRemoveActive, false, nil)
	menu.Option("Rename pack", editRename, false, nil)
	menu.Option("Save", editSave, false, nil)
	menu.Option("Quit", editQuit, false, nil)
	menu.Action(func(opts []wmenu.Opt) error {
		if len(opts) != 1 {
			return errors.New("expected exactly one selection")
		}
		var ok bool
		choice, ok = opts[0].Value.(string)
		if !ok {
			return errors.New("error converting interface from wmenu")
		}
		return nil
	})
	menu.LoopOnInvalid()
	if err := menu.Run(); err != nil {
		shared.Exitln(err)
	}
	return choice
}

func toggleMembership(s *session, p *core.Pack) {
	menu := wmenu.NewMenu("Choose a mod:")
	menu.Option("Back", nil, true, nil)
	for _, m := range s.mods {
		if !m.Loaded {
			continue
		}
		member := " "
		if p.HasMod(m.Directory) {
			member = "x"
		}
		menu.Option(fmt.Sprintf("[%s] %s (%s)", member, m.Name, m.Directory), m, false, nil)
	}
	menu.Action(func(opts []wmenu.Opt) error {
		if len(opts) != 1 || opts[0].Value == nil {
			return nil
		}
		mod, ok := opts[0].Value.(*core.Mod)
		if !ok {
			return errors.New("error converting interface from wmenu")
		}
		if p.RemoveMod(mod.Directory) {
			fmt.Printf("Removed %s.\n", mod.Directory)
		} else {
			p.AddMod(mod.Directory)
			fmt.Printf("Added %s.\n", mod.Directory)
		}
		return nil
	})
	menu.LoopOnInvalid()
	if err := menu.Run(); err != nil {
		shared.Exitln(err)
	}
}

func exitChoice() string {
	var choice string
	menu := wmenu.NewMenu("You have unsaved changes:")
	menu.Option("Save and quit", "save", true, nil)
	menu.Option("Discard changes", "discard", false, nil)
	menu.Option("Cancel", "cancel", false, nil)
	menu.Action(func(opts []wmenu.Opt) error {
		if len(opts) != 1 {
			return errors.New("expected exactly one selection")
		}
		var ok bool
		choice, ok = opts[0].Value.(string)
		if !ok {
			return errors.New("error converting interface from wmenu")
		}
		return nil
	})
	menu.LoopOnInvalid()
	if err := menu.Run(); err != nil {
		shared.Exitln(err)
	}
	return choice
}

func init() {
	packCmd.AddCommand(packEditCmd)
}
