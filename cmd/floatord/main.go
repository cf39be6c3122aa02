// Command floatord inspects the total order of IEEE-754 floats.
//
//	floatord key -- 1 -0 nan
//	floatord --width 32 sort -- 3 -nan 0 -0 inf
//	floatord --hash sha256 hash -- 0 -0
//	floatord --format yaml uniq -- nan nan 0 -0
//
// Values starting with "-" must follow "--" so they aren't parsed as flags.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amp-labs/floatord/envutil"
	"github.com/amp-labs/floatord/errors"
	"github.com/amp-labs/floatord/hashing"
	"github.com/amp-labs/floatord/logger"
	"github.com/spf13/cobra"
)

const appName = "floatord"

// config is resolved once per invocation: flags first, then FLOATORD_* variables, then defaults.
type config struct {
	Width   int
	Format  string
	Hash    string
	Ordered bool
}

type flags struct {
	width   int
	format  string
	hash    string
	ordered bool
}

func main() {
	ctx := context.Background()

	if err := envutil.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := logger.ConfigureLogging(ctx, appName); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		logger.Get(ctx).Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Total ordering, equality and hashing for IEEE-754 floats",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(out)

	root.PersistentFlags().IntVarP(&f.width, "width", "w", 64, "Float width in bits, 32 or 64 (env FLOATORD_WIDTH)")
	root.PersistentFlags().StringVarP(&f.format, "format", "f", formatText,
		"Output format, text or yaml (env FLOATORD_FORMAT)")
	root.PersistentFlags().StringVar(&f.hash, "hash", "xxh3",
		"Hash function: "+strings.Join(hashing.Names(), ", ")+" (env FLOATORD_HASH)")

	root.AddCommand(
		subcommand(f, keyCmd, "key [--] VALUE...", "Print each value with its raw bits and ordering key"),
		subcommand(f, sortCmd, "sort [--] VALUE...", "Print the values in total order"),
		subcommand(f, hashCmd, "hash [--] VALUE...", "Print the hash of each value"),
	)

	uniq := subcommand(f, uniqCmd, "uniq [--] VALUE...", "Print the distinct values in total order")
	uniq.Flags().BoolVar(&f.ordered, "ordered", false, "Deduplicate with an ordered set instead of a hash set")
	root.AddCommand(uniq)

	return root
}

func subcommand(f *flags, run runner, use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd, f)
		if err != nil {
			return err
		}

		ctx := logger.WithSubsystem(cmd.Context(), appName+"/"+cmd.Name())
		logger.Get(ctx).Debug("running", "width", cfg.Width, "format", cfg.Format, "hash", cfg.Hash)

		return run(ctx, cfg, cmd.OutOrStdout(), args)
	}

	return cmd
}

func resolveConfig(cmd *cobra.Command, f *flags) (config, error) {
	cfg := config{Ordered: f.ordered}

	var err error

	cfg.Width, err = fromFlagOrEnv(cmd, "width", f.width,
		envutil.Int("FLOATORD_WIDTH", envutil.Default(f.width), envutil.OneOf(32, 64)))
	if err != nil {
		return config{}, fmt.Errorf("%w: %w", errors.ErrUnsupportedWidth, err)
	}

	cfg.Format, err = fromFlagOrEnv(cmd, "format", f.format,
		envutil.String("FLOATORD_FORMAT", envutil.Default(f.format), envutil.OneOf(formatText, formatYAML)))
	if err != nil {
		return config{}, fmt.Errorf("%w: %w", errors.ErrInvalidFormat, err)
	}

	cfg.Hash, err = fromFlagOrEnv(cmd, "hash", f.hash, envutil.String("FLOATORD_HASH", envutil.Default(f.hash)))
	if err != nil {
		return config{}, err
	}

	if _, err := hashing.ByName(cfg.Hash); err != nil {
		return config{}, err
	}

	if cfg.Width != 32 && cfg.Width != 64 {
		return config{}, fmt.Errorf("%w: %d", errors.ErrUnsupportedWidth, cfg.Width)
	}

	if cfg.Format != formatText && cfg.Format != formatYAML {
		return config{}, fmt.Errorf("%w: %q", errors.ErrInvalidFormat, cfg.Format)
	}

	return cfg, nil
}

// fromFlagOrEnv prefers an explicitly set flag over the environment reader.
func fromFlagOrEnv[T any](cmd *cobra.Command, name string, flagValue T, env envutil.Reader[T]) (T, error) {
	if cmd.Flags().Changed(name) {
		return flagValue, nil
	}

	return env.Value()
}
