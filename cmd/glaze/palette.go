package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/glaze-ui/glaze/internal/palette"
	"github.com/glaze-ui/glaze/internal/theme"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	nameStyle    = lipgloss.NewStyle().Width(22)
	valueStyle   = lipgloss.NewStyle().Width(24).Foreground(lipgloss.Color("245"))
)

func newPaletteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Print the resolved theme as colour swatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := c.theme()
			if err != nil {
				return err
			}
			return printPalette(cmd.OutOrStdout(), th)
		},
	}
}

func printPalette(w io.Writer, th theme.Theme) error {
	var colors, sizes strings.Builder
	for _, tk := range th.Tokens() {
		if !tk.IsColor {
			fmt.Fprintf(&sizes, "%s%s\n", nameStyle.Render(tk.Name), tk.Value())
			continue
		}
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(theme.Hex(tk.Color))).
			Foreground(lipgloss.Color(palette.ContrastingText(theme.Hex(tk.Color)))).
			Padding(0, 1).
			Render("Aa")
		fmt.Fprintf(&colors, "%s%s%s\n", nameStyle.Render(tk.Name), valueStyle.Render(tk.Value()), swatch)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n%s",
		headingStyle.Render("Colours"), colors.String(),
		headingStyle.Render("Sizes"), sizes.String())
	return err
}
