package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/glaze-ui/glaze/internal/matugen"
)

func newSchemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List the matugen scheme variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSchemes(cmd.OutOrStdout(), matugen.New().Available())
		},
	}
}

func printSchemes(w io.Writer, available bool) error {
	for _, s := range matugen.Schemes {
		mark := " "
		if s == matugen.DefaultScheme {
			mark = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", mark, s); err != nil {
			return err
		}
	}
	if !available {
		_, err := fmt.Fprintln(w, "matugen is not installed; the builtin backend ignores schemes")
		return err
	}
	return nil
}
