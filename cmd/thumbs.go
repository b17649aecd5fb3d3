package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vbauerster/mpb/v4"
	"github.com/vbauerster/mpb/v4/decor"

	"isaac-mod-manager/core"
	"isaac-mod-manager/internal/shared"
	"isaac-mod-manager/workshop"
)

var thumbsCmd = &cobra.Command{
	Use:   "thumbs",
	Short: "Manage cached workshop thumbnails",
}

var thumbsSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch thumbnails for workshop mods that have none cached",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession()

		if !s.cfg.AutoDownload && !viper.GetBool("thumbs.force") {
			fmt.Println("Automatic thumbnail downloads are disabled; pass --force to fetch anyway.")
			return
		}

		cache := workshop.NewCache(s.cfg.CacheFolder)
		var wanted []*core.Mod
		for _, m := range s.mods {
			if m.Loaded && m.HasWorkshopID() && !cache.Has(m.WorkshopID) {
				wanted = append(wanted, m)
			}
		}
		if len(wanted) == 0 {
			fmt.Println("All workshop thumbnails are cached.")
			return
		}

		fetchThumbnails(cache, wanted)
	},
}

var thumbsFetchCmd = &cobra.Command{
	Use:   "fetch <directory>...",
	Short: "Re-fetch thumbnails for specific mods",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession()
		cache := workshop.NewCache(s.cfg.CacheFolder)

		var wanted []*core.Mod
		for _, directory := range args {
			mod := s.findMod(directory)
			if !mod.HasWorkshopID() {
				shared.Exitf("%s is not a workshop mod\n", mod.Name)
			}
			// Drop any stale entry so the fetch is not short-circuited.
			if err := cache.Remove(mod.WorkshopID); err != nil {
				shared.Exitln(err)
			}
			wanted = append(wanted, mod)
		}

		fetchThumbnails(cache, wanted)
	},
}

var thumbsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which workshop mods have cached thumbnails",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession()
		cache := workshop.NewCache(s.cfg.CacheFolder)
		for _, m := range s.mods {
			if !m.Loaded || !m.HasWorkshopID() {
				continue
			}
			state := "missing"
			if cache.Has(m.WorkshopID) {
				state = "cached"
			}
			fmt.Printf("%-8s %s (%s)\n", state, m.Name, m.WorkshopID)
		}
	},
}

// fetchThumbnails drives the fetch queue for the given mods and renders a
// progress bar over its completion events.
func fetchThumbnails(cache workshop.Cache, mods []*core.Mod) {
	interval := viper.GetDuration("thumbs.interval")

	queue := workshop.NewQueue(workshop.NewClient(), cache, interval)
	queue.Start()
	defer queue.Shutdown()

	byID := make(map[string]*core.Mod, len(mods))
	for _, m := range mods {
		queue.Enqueue(m.WorkshopID)
		byID[m.WorkshopID] = m
	}

	progress := mpb.New(mpb.WithWidth(64))
	bar := progress.AddBar(int64(len(mods)),
		mpb.PrependDecorators(
			decor.Name("thumbnails "),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(decor.Percentage()),
	)

	var failed []*core.Mod
	for range mods {
		res := <-queue.Results()
		if !res.OK {
			failed = append(failed, byID[res.ID])
		}
		bar.Increment()
	}
	progress.Wait()

	fmt.Printf("Fetched %d thumbnails.\n", len(mods)-len(failed))
	for _, m := range failed {
		fmt.Printf("Failed: %s (%s), retry with: thumbs fetch %s\n", m.Name, m.WorkshopID, m.Directory)
	}
}

func init() {
	rootCmd.AddCommand(thumbsCmd)
	thumbsCmd.AddCommand(thumbsSyncCmd)
	thumbsCmd.AddCommand(thumbsFetchCmd)
	thumbsCmd.AddCommand(thumbsStatusCmd)

	thumbsSyncCmd.Flags().Bool("force", false, "Fetch even when auto-download is disabled")
	_ = viper.BindPFlag("thumbs.force", thumbsSyncCmd.Flags().Lookup("force"))

	thumbsCmd.PersistentFlags().Duration("interval", workshop.DefaultPollInterval,
		"Minimum delay between workshop requests")
	_ = viper.BindPFlag("thumbs.interval", thumbsCmd.PersistentFlags().Lookup("interval"))
}
