package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"isaac-mod-manager/core"
	"isaac-mod-manager/internal/shared"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed mods",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession()

		mods := s.mods

		if pattern := viper.GetString("list.search"); pattern != "" {
			// Ranked fuzzy search replaces ordering and plain filtering.
			for _, m := range core.FuzzySearchMods(mods, pattern) {
				printMod(m)
			}
			return
		}

		filter := core.ModFilter{Text: viper.GetString("list.filter")}
		if packName := viper.GetString("list.pack"); packName != "" {
			filter.Pack = s.findPack(packName)
		}
		mods = core.FilterMods(mods, filter)

		order, ok := core.ParseModOrder(viper.GetString("list.order"))
		if !ok {
			shared.Exitf("Invalid order %q, must be one of: %s\n",
				viper.GetString("list.order"), strings.Join(core.ModOrderNames(), ", "))
		}
		core.SortMods(mods, order)

		for _, m := range mods {
			printMod(m)
		}
	},
}

func bindListFlags(flags *pflag.FlagSet) {
	flags.StringP("order", "o", string(core.OrderNameAsc),
		"Sort order: "+strings.Join(core.ModOrderNames(), ", "))
	_ = viper.BindPFlag("list.order", flags.Lookup("order"))

	flags.StringP("filter", "f", "", "Show only mods whose name or directory contains this text")
	_ = viper.BindPFlag("list.filter", flags.Lookup("filter"))

	flags.StringP("pack", "p", "", "Show only members of this pack")
	_ = viper.BindPFlag("list.pack", flags.Lookup("pack"))

	flags.StringP("search", "s", "", "Fuzzy search mods by name and directory")
	_ = viper.BindPFlag("list.search", flags.Lookup("search"))
}

func init() {
	rootCmd.AddCommand(listCmd)
	bindListFlags(listCmd.Flags())
}
