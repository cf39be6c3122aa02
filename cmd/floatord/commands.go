package main

import (
	"context"
	"fmt"
	"io"

	"github.com/amp-labs/floatord/errors"
	"github.com/amp-labs/floatord/floatkey"
	"github.com/amp-labs/floatord/floatsort"
	"github.com/amp-labs/floatord/hashing"
	"github.com/amp-labs/floatord/logger"
	"github.com/amp-labs/floatord/set"
	"github.com/amp-labs/floatord/sortable"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

type keyRow struct {
	Value string `yaml:"value"`
	Bits  string `yaml:"bits"`
	Key   string `yaml:"key"`
}

type hashRow struct {
	Value string `yaml:"value"`
	Hash  string `yaml:"hash"`
}

// runner executes one subcommand for a single float width.
type runner func(ctx context.Context, cfg config, out io.Writer, args []string) error

// dispatch picks the sortable wrapper matching the configured width.
func dispatch(
	run32 func(context.Context, config, io.Writer, []string) error,
	run64 func(context.Context, config, io.Writer, []string) error,
) runner {
	return func(ctx context.Context, cfg config, out io.Writer, args []string) error {
		switch cfg.Width {
		case 32:
			return run32(ctx, cfg, out, args)
		case 64:
			return run64(ctx, cfg, out, args)
		default:
			return fmt.Errorf("%w: %d", errors.ErrUnsupportedWidth, cfg.Width)
		}
	}
}

func runKey[T element[T]](ctx context.Context, cfg config, out io.Writer, args []string) error {
	values, err := parseValues[T](args)
	if err != nil {
		return err
	}

	digits := bitSize[T]() / 4
	rows := make([]keyRow, 0, len(values))

	for _, v := range values {
		rows = append(rows, keyRow{
			Value: v.String(),
			Bits:  fmt.Sprintf("%0*x", digits, rawBits(v)),
			Key:   fmt.Sprintf("%0*x", digits, floatkey.Of(v)),
		})
	}

	logger.Get(ctx).Debug("computed keys", "count", len(rows))

	return render(out, cfg.Format, rows, func(w io.Writer) error {
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", row.Value, row.Bits, row.Key); err != nil {
				return err
			}
		}

		return nil
	})
}

func runSort[T element[T]](ctx context.Context, cfg config, out io.Writer, args []string) error {
	values, err := parseValues[T](args)
	if err != nil {
		return err
	}

	if floatsort.IsSorted(values) {
		logger.Get(ctx).Debug("input already in order", "count", len(values))
	} else {
		floatsort.Sort(values)
	}

	return renderValues(out, cfg.Format, values)
}

func runHash[T element[T]](ctx context.Context, cfg config, out io.Writer, args []string) error {
	values, err := parseValues[T](args)
	if err != nil {
		return err
	}

	hashFunc, err := hashing.ByName(cfg.Hash)
	if err != nil {
		return err
	}

	rows := make([]hashRow, 0, len(values))

	for _, v := range values {
		h, err := hashFunc(v)
		if err != nil {
			return logger.AnnotateError(err, "input", v.String())
		}

		rows = append(rows, hashRow{Value: v.String(), Hash: h})
	}

	logger.Get(ctx).Debug("hashed values", "count", len(rows), "hash", cfg.Hash)

	return render(out, cfg.Format, rows, func(w io.Writer) error {
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", row.Value, row.Hash); err != nil {
				return err
			}
		}

		return nil
	})
}

func runUniq[T element[T]](ctx context.Context, cfg config, out io.Writer, args []string) error {
	values, err := parseValues[T](args)
	if err != nil {
		return err
	}

	var distinct []T

	if cfg.Ordered {
		ordered := set.NewRedBlackTreeSet[T]()
		if err := ordered.AddAll(values...); err != nil {
			return err
		}

		distinct = ordered.Entries()
	} else {
		hashFunc, err := hashing.ByName(cfg.Hash)
		if err != nil {
			return err
		}

		hashed := set.NewSet[T](hashFunc)
		if err := hashed.AddAll(values...); err != nil {
			return err
		}

		distinct = set.SortedEntries(hashed)
	}

	logger.Get(ctx).Debug("deduplicated values", "in", len(values), "out", len(distinct), "ordered", cfg.Ordered)

	return renderValues(out, cfg.Format, distinct)
}

func renderValues[T element[T]](out io.Writer, format string, values []T) error {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = v.String()
	}

	return render(out, format, strs, func(w io.Writer) error {
		for _, s := range strs {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}

		return nil
	})
}

// render writes rows as YAML, or through text for the plain format.
func render(out io.Writer, format string, rows any, text func(io.Writer) error) error {
	switch format {
	case formatText:
		return text(out)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)

		if err := enc.Encode(rows); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", errors.ErrInvalidFormat, format)
	}
}

var (
	keyCmd  = dispatch(runKey[sortable.Float32], runKey[sortable.Float64])   //nolint:gochecknoglobals
	sortCmd = dispatch(runSort[sortable.Float32], runSort[sortable.Float64]) //nolint:gochecknoglobals
	hashCmd = dispatch(runHash[sortable.Float32], runHash[sortable.Float64]) //nolint:gochecknoglobals
	uniqCmd = dispatch(runUniq[sortable.Float32], runUniq[sortable.Float64]) //nolint:gochecknoglobals
)
