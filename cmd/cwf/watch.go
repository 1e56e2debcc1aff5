package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/untoldecay/CrosswalkForge/internal/config"
	"github.com/untoldecay/CrosswalkForge/internal/debug"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	GroupID: "tools",
	Short:   "Regenerate the Rev5-to-Rev4 crosswalk when the workbook changes",
	Long: `Watch the comparison workbook and re-run crosswalk generation
whenever it changes on disk. Spreadsheet editors save through rename-replace,
so the watch is on the containing directory. Stops on Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := nistOptionsFromFlags(cmd)
		if err != nil {
			return err
		}
		debounce, err := time.ParseDuration(config.GetString("watch.debounce"))
		if err != nil || debounce <= 0 {
			debounce = 500 * time.Millisecond
		}

		// Generate once up front so a stale output never lingers.
		if err := runNistCrosswalk(cmd.Context(), opts); err != nil {
			return err
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		defer watcher.Close()

		dir := filepath.Dir(opts.input)
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		infof("Watching %s (Ctrl-C to stop)", opts.input)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sig)

		var timer *time.Timer
		fire := make(chan struct{}, 1)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != filepath.Clean(opts.input) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				debug.Logf("workbook event: %s", event)
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			case <-fire:
				infof("Workbook changed; regenerating")
				if err := runNistCrosswalk(cmd.Context(), opts); err != nil {
					// Keep watching; a half-saved file often fails once.
					warnf("warning: regeneration failed: %v", err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				warnf("warning: watch error: %v", err)
			case <-sig:
				infof("Stopping watch")
				return nil
			case <-cmd.Context().Done():
				return nil
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringP("input", "i", "", "Path to the comparison workbook (.xlsx)")
	watchCmd.Flags().StringP("output", "o", "", "Crosswalk CSV output path")
	watchCmd.Flags().String("summary", "", "Summary markdown output path")
	watchCmd.Flags().String("source-resource", "catalogs/NIST_SP-800-53_rev5/catalog.json", "Source catalog resource reference")
	watchCmd.Flags().String("target-resource", "catalogs/NIST_SP-800-53_rev4/catalog.json", "Target catalog resource reference")

	rootCmd.AddCommand(watchCmd)
}
