package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"isaac-mod-manager/fileio"
	"isaac-mod-manager/internal/shared"
)

var enableCmd = &cobra.Command{
	Use:   "enable <directory>...",
	Short: "Enable mods by removing their disable markers",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setEnabled(args, true)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable <directory>...",
	Short: "Disable mods by writing their disable markers",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setEnabled(args, false)
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <directory>...",
	Short: "Flip mods between enabled and disabled",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession()
		toggler := fileio.NewMarkerToggler()
		for _, directory := range args {
			mod := s.findMod(directory)
			if err := toggler.Toggle(mod); err != nil {
				shared.Exitln(err)
			}
			printMod(mod)
		}
	},
}

func setEnabled(directories []string, enabled bool) {
	s := openSession()
	for _, directory := range directories {
		mod := s.findMod(directory)
		if mod.Enabled == enabled {
			fmt.Printf("%s already %s\n", mod.Name, stateWord(enabled))
			continue
		}
		if err := fileio.SetEnabled(mod, enabled); err != nil {
			shared.Exitln(err)
		}
		printMod(mod)
	}
}

func stateWord(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(toggleCmd)
}
