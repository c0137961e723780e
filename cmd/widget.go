package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sipli/internal/widget"

	"github.com/spf13/cobra"
)

var (
	flagWidgetInterval time.Duration
	flagWidgetOnce     bool
)

var widgetCmd = &cobra.Command{
	Use:   "widget",
	Short: "Render a compact hydration card on a refresh loop",
	Long:  "A read-only companion view for status bars and terminal widgets. Refreshes on its interval and at local midnight.",
	RunE:  runWidget,
}

func init() {
	widgetCmd.Flags().DurationVar(&flagWidgetInterval, "interval", 0, "Refresh interval (default from config)")
	widgetCmd.Flags().BoolVar(&flagWidgetOnce, "once", false, "Render once and exit")
	rootCmd.AddCommand(widgetCmd)
}

func runWidget(_ *cobra.Command, _ []string) error {
	interval := flagWidgetInterval
	if interval <= 0 {
		interval = time.Duration(loadConfig().Widget.RefreshMinutes) * time.Minute
	}

	svc := widget.New(newAssembler(), widget.Config{
		Interval: interval,
		Loc:      time.Local,
		Out:      os.Stdout,
		Once:     flagWidgetOnce,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return svc.Run(ctx)
}
