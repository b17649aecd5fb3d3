package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"isaac-mod-manager/core"
	"isaac-mod-manager/fileio"
	"isaac-mod-manager/internal/shared"
)

var packApplyCmd = &cobra.Command{
	Use:   "apply <name>",
	Short: "Enable exactly the pack's members, disable everything else",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession()
		p := s.findPack(args[0])

		if len(p.Mods) == 0 {
			fmt.Printf("Pack %q is empty; nothing applied.\n", p.Name)
			return
		}

		toggled, err := core.Apply(p, s.mods, fileio.NewMarkerToggler())
		if err != nil {
			shared.Exitln(err)
		}
		fmt.Printf("Applied %q: %d mods toggled.\n", p.Name, toggled)
	},
}

var packAddActiveCmd = &cobra.Command{
	Use:   "add-active <name>",
	Short: "Add every currently enabled mod to the pack",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession()
		p := s.findPack(args[0])
		added := p.AddActiveMods(s.mods)
		if err := s.store.Save(p); err != nil {
			shared.Exitln(err)
		}
		fmt.Printf("Added %d mods to %q.\n", added, p.Name)
	},
}

var packRemoveActiveCmd = &cobra.Command{
	Use:   "remove-active <name>",
	Short: "Remove every currently enabled mod from the pack",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession()
		p := s.findPack(args[0])
		removed := p.RemoveActiveMods(s.mods)
		if err := s.store.Save(p); err != nil {
			shared.Exitln(err)
		}
		fmt.Printf("Removed %d mods from %q.\n", removed, p.Name)
	},
}

func init() {
	packCmd.AddCommand(packApplyCmd)
	packCmd.AddCommand(packAddActiveCmd)
	packCmd.AddCommand(packRemoveActiveCmd)
}
