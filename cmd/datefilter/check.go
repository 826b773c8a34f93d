package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/datefilter/health"
	"github.com/jonwraymond/datefilter/intl"
)

func newCheckCmd(out io.Writer) *cobra.Command {
	var (
		locale  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify timezone data, locale tables, and a format round trip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if locale == "" {
				locale = intl.DefaultLocale()
			}

			r := health.NewRunner(timeout)
			if err := r.Register(health.DefaultCheckers(intl.DefaultFactory, locale)...); err != nil {
				return err
			}

			report := r.Run(cmd.Context())
			for _, res := range report.Results {
				line := fmt.Sprintf("%-10s %-9s %s", res.Name, res.Status, res.Message)
				if res.Err != nil {
					line += ": " + res.Err.Error()
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return report.Err()
		},
	}
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "locale to check (default from LC_ALL/LANG)")
	cmd.Flags().DurationVar(&timeout, "timeout", health.DefaultTimeout, "overall check timeout")
	return cmd
}
