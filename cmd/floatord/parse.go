package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unsafe"

	"github.com/amp-labs/floatord/collectable"
	"github.com/amp-labs/floatord/errors"
	"github.com/amp-labs/floatord/floatkey"
	"github.com/amp-labs/floatord/logger"
	"github.com/amp-labs/floatord/sortable"
)

// element is satisfied by sortable.Float32 and sortable.Float64.
type element[T any] interface {
	floatkey.Float
	collectable.Collectable[T]
	sortable.Sortable[T]
	fmt.Stringer
}

func bitSize[T element[T]]() int {
	var zero T

	return int(unsafe.Sizeof(zero)) * 8 //nolint:gosec
}

// quietNaN returns the default quiet NaN of T's width with the requested sign.
func quietNaN[T element[T]](negative bool) T {
	if bitSize[T]() == 32 {
		bits := uint32(0x7fc00000)
		if negative {
			bits |= floatkey.SignBit32
		}

		return T(math.Float32frombits(bits))
	}

	bits := uint64(0x7ff8000000000000)
	if negative {
		bits |= floatkey.SignBit64
	}

	return T(math.Float64frombits(bits))
}

// parseValue parses s as a float of T's width. On top of strconv.ParseFloat
// it accepts "-nan" for a NaN with the sign bit set. Literals beyond the
// width's range become ±Inf, as ParseFloat rounds them.
func parseValue[T element[T]](s string) (T, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nan", "+nan":
		return quietNaN[T](false), nil
	case "-nan":
		return quietNaN[T](true), nil
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), bitSize[T]())
	if err != nil {
		numErr, ok := err.(*strconv.NumError) //nolint:errorlint
		if !ok || numErr.Err != strconv.ErrRange {
			return 0, fmt.Errorf("%w: %q", errors.ErrInvalidFloat, s)
		}
	}

	return T(f), nil
}

// parseValues parses every argument and reports all invalid ones together.
func parseValues[T element[T]](args []string) ([]T, error) {
	var errs errors.Collection

	values := make([]T, 0, len(args))

	for _, arg := range args {
		v, err := parseValue[T](arg)
		if err != nil {
			errs.Add(logger.AnnotateError(err, "input", arg))

			continue
		}

		values = append(values, v)
	}

	if errs.HasError() {
		return nil, errs.GetError()
	}

	return values, nil
}

// rawBits returns the IEEE-754 bit pattern of v, zero-extended.
func rawBits[T element[T]](v T) uint64 {
	if bitSize[T]() == 32 {
		return uint64(math.Float32bits(float32(v)))
	}

	return math.Float64bits(float64(v))
}
