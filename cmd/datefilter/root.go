package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/datefilter/config"
	"github.com/jonwraymond/datefilter/filter"
	"github.com/jonwraymond/datefilter/observe"
)

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datefilter [values...]",
		Short: "Reformat date strings between locale-aware formats",
		Long: `Parse each value with the date and time styles of a locale and print it
again in the same styles or in a custom pattern. Without arguments, values
are read from standard input, one per line.

Configuration is read from datefilter.yaml in the working directory or in
$HOME/.config/datefilter, from DATEFILTER_* environment variables, and from
flags, in increasing order of precedence.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, args, in, out, errOut)
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	config.RegisterFlags(cmd.Flags())

	cmd.AddCommand(newLocalesCmd(out), newCheckCmd(out))
	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, args []string, in io.Reader, out, errOut io.Writer) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	opts, options, err := cfg.Filter.FilterOptions()
	if err != nil {
		return err
	}

	cfg.Observe.Output = errOut
	obs, err := observe.NewObserver(ctx, cfg.Observe)
	if err != nil {
		return err
	}
	defer func() {
		if serr := obs.Shutdown(context.Background()); serr != nil && err == nil {
			err = serr
		}
	}()

	mw, err := observe.MiddlewareFromObserver(obs)
	if err != nil {
		return err
	}
	f := filter.New(opts, append(options, filter.WithName("cli"), filter.WithMiddleware(mw))...)

	emit := func(value string) error {
		res, err := f.Filter(ctx, value)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, res)
		return err
	}

	if len(args) > 0 {
		for _, arg := range args {
			if err := emit(arg); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := emit(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
