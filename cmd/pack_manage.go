package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"isaac-mod-manager/core"
	"isaac-mod-manager/internal/cmdshared"
	"isaac-mod-manager/internal/shared"
)

var packNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create an empty pack",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession()
		p := core.NewPack(args[0])
		if err := s.store.Set.Add(p); err != nil {
			shared.Exitln(err)
		}
		if err := s.store.Save(p); err != nil {
			shared.Exitln(err)
		}
		fmt.Printf("Created pack %q\n", p.Name)
	},
}

var packDuplicateCmd = &cobra.Command{
	Use:   "duplicate <name>",
	Short: "Duplicate a pack under a \" (Copy)\" suffixed name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession()
		p := s.findPack(args[0])
		dup := s.store.Set.Duplicate(p)
		if err := s.store.Save(dup); err != nil {
			shared.Exitln(err)
		}
		fmt.Printf("Created pack %q\n", dup.Name)
	},
}

var packRenameCmd = &cobra.Command{
	Use:   "rename <name> <new-name>",
	Short: "Rename a pack (its file on disk keeps its original name)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession()
		p := s.findPack(args[0])
		if err := s.store.Set.Rename(p, args[1]); err != nil {
			shared.Exitln(err)
		}
		if err := s.store.Save(p); err != nil {
			shared.Exitln(err)
		}
		fmt.Printf("Renamed %q to %q\n", args[0], p.Name)
	},
}

var packDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a pack and its backing file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession()
		p := s.findPack(args[0])
		if !cmdshared.PromptYesNo(fmt.Sprintf("Delete pack %q and its file? [Y/n]: ", p.Name)) {
			fmt.Println("Cancelled.")
			return
		}
		if err := s.store.Delete(p); err != nil {
			shared.Exitln(err)
		}
		fmt.Printf("Deleted pack %q\n", p.Name)
	},
}

func init() {
	packCmd.AddCommand(packNewCmd)
	packCmd.AddCommand(packDuplicateCmd)
	packCmd.AddCommand(packRenameCmd)
	packCmd.AddCommand(packDeleteCmd)
}
