package main

import (
	"os"

	gioapp "gioui.org/app"
	"gioui.org/unit"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/glaze-ui/glaze/internal/app"
	"github.com/glaze-ui/glaze/internal/config"
	"github.com/glaze-ui/glaze/internal/ui"
)

func newGalleryCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "gallery",
		Short: "Open the widget gallery window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(c)
		},
	}
}

func runGallery(c *cli) error {
	glazeApp, err := app.NewApp(c.v, c.logger)
	if err != nil {
		return err
	}

	go func() {
		w := new(gioapp.Window)
		w.Option(
			gioapp.Title("glaze"),
			gioapp.Size(unit.Dp(c.v.GetInt(config.KeyWindowWidth)), unit.Dp(c.v.GetInt(config.KeyWindowHeight))),
		)
		if err := ui.Run(w, glazeApp); err != nil {
			c.logger.Fatal("UI failed", zap.Error(err))
		}
		_ = c.logger.Sync()
		os.Exit(0)
	}()

	gioapp.Main()
	return nil
}
