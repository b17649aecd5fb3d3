package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"isaac-mod-manager/core"
	"isaac-mod-manager/internal/shared"
)

var packExportCmd = &cobra.Command{
	Use:   "export <name> <target-file>",
	Short: "Export a pack to a file that can be re-imported anywhere",
	Long: `Export a pack to an arbitrary path.

The exported copy carries a freshly generated UUID, so it can be imported
back into the same pack set without colliding with the original.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession()
		p := s.findPack(args[0])
		if err := s.store.Export(p, args[1]); err != nil {
			shared.Exitln(err)
		}
		fmt.Printf("Exported %q to %s\n", p.Name, args[1])
	},
}

var packImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a pack file into the pack set",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession()
		p, err := s.store.Import(args[0])
		if err != nil {
			shared.Exitln(err)
		}
		if p.Name == "" {
			stem := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			p.Name = core.SuggestPackName(stem)
		}
		if err := s.store.Save(p); err != nil {
			shared.Exitln(err)
		}
		fmt.Printf("Imported %q\n", p.Name)
	},
}

func init() {
	packCmd.AddCommand(packExportCmd)
	packCmd.AddCommand(packImportCmd)
}
