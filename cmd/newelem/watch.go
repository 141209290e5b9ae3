package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newelem/cmd/newelem/cli"
	"newelem/internal/log"
	"newelem/internal/watch"

	"github.com/spf13/cobra"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the configuration document and log reloads",
		Long:  `Watch the configuration document for changes and re-resolve it on every write. Runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, _, err := loadResolver()
			if err != nil {
				fmt.Println(cli.RenderError(err))
				return err
			}

			debounce := time.Duration(cfg.WatchMode.Debounce) * time.Millisecond
			watcher, err := watch.New(documentPath(), resolver, cfg.Locales.Requested, cfg.Locales.Default, debounce)
			if err != nil {
				return err
			}
			if err := watcher.Start(); err != nil {
				return err
			}
			defer watcher.Stop()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			fmt.Println(cli.Title.Render("Watching " + documentPath()))
			for {
				select {
				case reload := <-watcher.ReloadChannel():
					fmt.Printf("%s %s\n",
						cli.Dim.Render(reload.Timestamp.Format("15:04:05")),
						cli.Value.Render(fmt.Sprintf("configuration reloaded, %d types", reload.Configuration.Len())))
				case <-sigChan:
					log.Info("shutting down watcher")
					return nil
				}
			}
		},
	}
}
