package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glaze-ui/glaze/internal/stylesheet"
)

func newStylesheetCmd(c *cli) *cobra.Command {
	valid := make([]string, len(stylesheet.Kinds))
	for i, k := range stylesheet.Kinds {
		valid[i] = string(k)
	}

	return &cobra.Command{
		Use:       "stylesheet [base|dialog|table]",
		Short:     "Print a style document for the resolved theme",
		Long:      `Print the base, dialog or table-container style document generated from the resolved theme. Defaults to base.`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: valid,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := stylesheet.KindBase
			if len(args) == 1 {
				kind = stylesheet.Kind(args[0])
			}
			th, err := c.theme()
			if err != nil {
				return err
			}
			doc, err := stylesheet.For(kind, th)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), doc)
			return err
		},
	}
}
