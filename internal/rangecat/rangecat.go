// Package rangecat implements the rangecat command line tool,
// which prints ranges, sequence tails and range products.
package rangecat

import (
	"context"
	"fmt"
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/convkit"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/sugar"
	"go.llib.dev/sugar/pkg/rangekit"
	"go.llib.dev/sugar/pkg/seqkit"
)

const ErrUnboundedRange errorkit.Error = "ErrUnboundedRange"

const defaultSeparator = "\n"

// NewMux returns the rangecat command tree.
// When l is nil, the package level logger is used.
func NewMux(l *logging.Logger) *cli.Mux {
	var m cli.Mux
	m.Handle("range", RangeCommand{Logger: l})
	m.Handle("seq", SeqCommand{Logger: l})
	m.Handle("product", ProductCommand{Logger: l})
	return &m
}

type RangeCommand struct {
	Step      string `flag:"step" desc:"distance between two values, inferred from the direction when omitted"`
	Limit     int    `flag:"limit" desc:"print at most this many values, required for unbounded ranges"`
	Separator string `flag:"sep" env:"RANGECAT_SEPARATOR" desc:"printed after each value, newline by default"`
	Join      bool   `flag:"join" desc:"print a character range as a single word"`
	Chars     bool   `flag:"chars" desc:"read single digits as characters instead of integers"`

	Start string `arg:"0" required:"true" desc:"first value of the range"`
	End   string `arg:"1" required:"true" desc:"last value of the range, inf and -inf are accepted for integers"`

	Logger *logging.Logger
}

func (cmd RangeCommand) Summary() string { return "print the values of a range" }

func (cmd RangeCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()
	log := logHandle{Logger: cmd.Logger}

	rng, err := newRange(cmd.Start, cmd.End, cmd.Step, cmd.Chars)
	if err != nil {
		log.Fail(ctx, w, r, err)
		return
	}
	if _, ok := rng.Len(); !ok && cmd.Limit <= 0 {
		log.Fail(ctx, w, r, ErrUnboundedRange.F("%s to %s needs a -limit", cmd.Start, cmd.End))
		return
	}
	log.Debug(ctx, "rangecat range",
		logging.Field("domain", rng.Domain().String()),
		logging.Field("step", rng.Step()))

	if cr, ok := rng.(*rangekit.CharRange); ok && cmd.Join {
		if cmd.Limit <= 0 {
			fmt.Fprintln(w, cr.String())
			return
		}
		fmt.Fprintln(w, strings.Join(iterkit.Collect(limit(render(cr), cmd.Limit)), ""))
		return
	}
	writeValues(w, limit(render(rng), cmd.Limit), separator(cmd.Separator))
}

type SeqCommand struct {
	Separator string `flag:"sep" env:"RANGECAT_SEPARATOR" desc:"printed after each value, newline by default"`

	Offset int `arg:"0" required:"true" desc:"index of the first value to print, followed by the values"`

	Logger *logging.Logger
}

func (cmd SeqCommand) Summary() string { return "print the values from an offset" }

func (cmd SeqCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()
	log := logHandle{Logger: cmd.Logger}

	i, err := seqkit.FromSlice(r.Args, cmd.Offset)
	if err != nil {
		log.Fail(ctx, w, r, err)
		return
	}
	log.Debug(ctx, "rangecat seq",
		logging.Field("offset", cmd.Offset),
		logging.Field("length", len(r.Args)))
	writeValues(w, i.Seq(), separator(cmd.Separator))
}

type ProductCommand struct {
	Separator string `flag:"sep" env:"RANGECAT_SEPARATOR" desc:"printed after each pair, newline by default"`
	Chars     bool   `flag:"chars" desc:"read single digits as characters instead of integers"`

	LeftStart  string `arg:"0" required:"true"`
	LeftEnd    string `arg:"1" required:"true"`
	RightStart string `arg:"2" required:"true"`
	RightEnd   string `arg:"3" required:"true"`

	Logger *logging.Logger
}

func (cmd ProductCommand) Summary() string { return "print the cartesian product of two ranges" }

func (cmd ProductCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()
	log := logHandle{Logger: cmd.Logger}

	lhs, err := newRange(cmd.LeftStart, cmd.LeftEnd, "", cmd.Chars)
	if err != nil {
		log.Fail(ctx, w, r, err)
		return
	}
	rhs, err := newRange(cmd.RightStart, cmd.RightEnd, "", cmd.Chars)
	if err != nil {
		log.Fail(ctx, w, r, err)
		return
	}
	for _, rng := range []rangekit.Range{lhs, rhs} {
		if _, ok := rng.Len(); !ok {
			log.Fail(ctx, w, r, ErrUnboundedRange.F("product of unbounded ranges is not printable"))
			return
		}
	}
	log.Debug(ctx, "rangecat product",
		logging.Field("left", lhs.Domain().String()),
		logging.Field("right", rhs.Domain().String()))

	pairs := func(yield func(string) bool) {
		for lv, rv := range rangekit.Product(render(lhs), render(rhs)) {
			if !yield(lv + "," + rv) {
				return
			}
		}
	}
	writeValues(w, pairs, separator(cmd.Separator))
}

func newRange(start, end, step string, chars bool) (rangekit.Range, error) {
	var stepValue any
	if step != "" {
		n, err := convkit.Parse[int](step)
		if err != nil {
			return nil, errorkit.Merge(sugar.ErrTypeMismatch.F("step must be an integer: %q", step), err)
		}
		stepValue = n
	}
	return rangekit.New(endpoint(start, chars), endpoint(end, chars), stepValue)
}

// endpoint turns a raw argument into a range endpoint value.
// Anything that is neither a number, an infinity nor a single character is passed on as is,
// and rangekit.New reports it as a type mismatch.
func endpoint(raw string, chars bool) any {
	switch strings.ToLower(raw) {
	case "inf", "+inf":
		return rangekit.PosInf
	case "-inf":
		return rangekit.NegInf
	}
	if chars && utf8.RuneCountInString(raw) == 1 {
		return raw
	}
	if n, err := convkit.Parse[int](raw); err == nil {
		return n
	}
	return raw
}

func render(rng rangekit.Range) iter.Seq[string] {
	switch rng := rng.(type) {
	case *rangekit.IntRange:
		return iterkit.Map(rng.Seq(), strconv.Itoa)
	case *rangekit.CharRange:
		return iterkit.Map(rng.Seq(), func(c rune) string { return string(c) })
	default:
		return iterkit.Empty[string]()
	}
}

func limit(i iter.Seq[string], n int) iter.Seq[string] {
	if n <= 0 {
		return i
	}
	return iterkit.Head(i, n)
}

func separator(sep string) string {
	if sep == "" {
		return defaultSeparator
	}
	return sep
}

func writeValues(w cli.Response, vs iter.Seq[string], sep string) {
	for v := range vs {
		fmt.Fprint(w, v, sep)
	}
}

type logHandle struct{ Logger *logging.Logger }

func (h logHandle) Debug(ctx context.Context, msg string, ds ...logging.Detail) {
	if h.Logger != nil {
		h.Logger.Debug(ctx, msg, ds...)
		return
	}
	logger.Debug(ctx, msg, ds...)
}

func (h logHandle) Error(ctx context.Context, msg string, ds ...logging.Detail) {
	if h.Logger != nil {
		h.Logger.Error(ctx, msg, ds...)
		return
	}
	logger.Error(ctx, msg, ds...)
}

// Fail logs err and reports it to the caller of the command.
func (h logHandle) Fail(ctx context.Context, w cli.Response, r *cli.Request, err error) {
	h.Error(ctx, "rangecat failed", logging.ErrField(err))
	cli.HandleError(w, r, err)
}
