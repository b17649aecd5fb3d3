package cmd

import (
	"fmt"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"

	"isaac-mod-manager/internal/shared"
)

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:   "open <directory>",
	Short: "Open a mod's workshop page in the browser",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession()
		mod := s.findMod(args[0])
		if !mod.HasWorkshopID() {
			shared.Exitf("%s is not a workshop mod\n", mod.Name)
		}

		fmt.Println("Opening browser...")
		url := "https://steamcommunity.com/sharedfiles/filedetails/?id=" + mod.WorkshopID
		if err := open.Start(url); err != nil {
			fmt.Println("Opening page failed, direct link:")
			fmt.Println(url)
		}
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
