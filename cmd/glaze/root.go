package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/glaze-ui/glaze/internal/config"
	"github.com/glaze-ui/glaze/internal/theme"
)

// cli carries what PersistentPreRunE loads into the subcommands.
type cli struct {
	cfgFile string
	v       *viper.Viper
	logger  *zap.Logger
}

// NewRootCmd creates the root command. Without a subcommand it opens the
// gallery.
func NewRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "glaze",
		Short: "Theme tokens, style documents and themed widgets",
		Long: `glaze resolves a colour theme from defaults, a seed colour or a
wallpaper image, prints the style documents generated from it, and shows
the themed widgets in a gallery window.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(c)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "config file (default is ./glaze.yaml or $HOME/.config/glaze/glaze.yaml)")
	pf.String("seed", "", "seed colour for a generated palette, e.g. #3f51b5")
	pf.String("mode", "", "palette mode: dark or light")
	pf.String("wallpaper", "", "derive the palette from this image")
	pf.String("backend", "", "palette generator: auto, matugen or builtin")
	pf.String("scheme", "", "matugen scheme variant, e.g. vibrant")
	pf.String("log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newGalleryCmd(c))
	rootCmd.AddCommand(newStylesheetCmd(c))
	rootCmd.AddCommand(newPaletteCmd(c))
	rootCmd.AddCommand(newSchemesCmd())

	return rootCmd
}

var flagKeys = map[string]string{
	"seed":      config.KeySeed,
	"mode":      config.KeyMode,
	"wallpaper": config.KeyWallpaper,
	"backend":   config.KeyBackend,
	"scheme":    config.KeyScheme,
	"log-level": config.KeyLogLevel,
}

func (c *cli) load(cmd *cobra.Command) error {
	v, err := config.Load(c.cfgFile)
	if err != nil {
		return err
	}
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding --%s: %w", name, err)
			}
		}
	}

	logger, err := config.NewLogger(v)
	if err != nil {
		return err
	}
	c.v, c.logger = v, logger
	return nil
}

func (c *cli) theme() (theme.Theme, error) {
	return config.ResolveTheme(c.v, c.logger)
}
