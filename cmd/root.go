package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"isaac-mod-manager/logger"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "isaac-mod-manager",
	Short: "Manage Binding of Isaac mod folders and mod packs",
	Long: `Manage the mods folder of The Binding of Isaac: Repentance.

Mods are enabled and disabled through the game's disable.it marker files.
Named packs group subsets of installed mods so they can be applied, exported
and re-imported as a batch.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.InitLogger(viper.GetBool("verbose"))
	},
	SilenceUsage: true,
}

func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("mods-folder", "", "Path to the game's mods folder")
	_ = viper.BindPFlag("mods-folder", rootCmd.PersistentFlags().Lookup("mods-folder"))

	rootCmd.PersistentFlags().String("packs-folder", "", "Directory holding pack files (defaults to the user config dir)")
	_ = viper.BindPFlag("packs-folder", rootCmd.PersistentFlags().Lookup("packs-folder"))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.PersistentFlags().BoolP("non-interactive", "y", false, "Do not prompt for confirmation")
	_ = viper.BindPFlag("non-interactive", rootCmd.PersistentFlags().Lookup("non-interactive"))
}
