package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/datefilter/intl"
)

func newLocalesCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List supported locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, l := range intl.Locales() {
				if _, err := fmt.Fprintln(out, l); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
