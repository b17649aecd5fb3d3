package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"isaac-mod-manager/core"
)

// packCmd is the parent of all pack subcommands.
var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Manage mod packs",
	Long: `Manage named packs of mods.

A pack is a list of mod directory identifiers representing a desired
enabled-set. Applying a pack enables exactly its members and disables
everything else.`,
}

var packListCmd = &cobra.Command{
	Use:   "list",
	Short: "List loaded packs in creation order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession()
		showMods := viper.GetBool("pack.list.mods")
		for _, p := range s.store.Set.Packs() {
			printPack(p)
			if showMods {
				printPackMembers(s, p)
			}
		}
	},
}

var packShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one pack and the enabled state of its members",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession()
		p := s.findPack(args[0])
		printPack(p)
		printPackMembers(s, p)
	},
}

func printPack(p *core.Pack) {
	dirty := ""
	if p.HasUnsavedChanges() {
		dirty = " *"
	}
	fmt.Printf("%s (%d mods, created %s)%s\n",
		p.Name, len(p.Mods), p.DateCreated.Format("2006-01-02"), dirty)
}

func printPackMembers(s *session, p *core.Pack) {
	for _, directory := range p.Mods {
		mod := core.FindModByDirectory(s.mods, directory)
		if mod == nil {
			fmt.Printf("   ?  %s (not installed)\n", directory)
			continue
		}
		fmt.Printf("  %s %s (%s)\n", enabledMark(mod.Enabled), mod.Name, mod.Directory)
	}
}

func init() {
	rootCmd.AddCommand(packCmd)
	packCmd.AddCommand(packListCmd)
	packCmd.AddCommand(packShowCmd)

	packListCmd.Flags().Bool("mods", false, "Also list each pack's members")
	_ = viper.BindPFlag("pack.list.mods", packListCmd.Flags().Lookup("mods"))
}
