package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/FThompson/DominionRandomizer/internal/randomizer"
)

// stringList is a repeatable flag value; each occurrence may also hold
// several comma-separated entries.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, f := range *l {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part == "" {
			continue
		} else if f, err := strconv.ParseFloat(part, 64); err != nil {
			return fmt.Errorf("invalid weight %q", part)
		} else {
			*l = append(*l, f)
		}
	}
	return nil
}

type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, n := range *l {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part == "" {
			continue
		} else if n, err := strconv.Atoi(part); err != nil {
			return fmt.Errorf("invalid count %q", part)
		} else {
			*l = append(*l, n)
		}
	}
	return nil
}

// parseRequest builds a randomization request from command arguments. Set
// identifiers are positional and may appear anywhere among the flags, as in
// "base2e -n 12 seaside".
func parseRequest(args []string) (randomizer.Request, error) {
	var req randomizer.Request
	var weights floatList
	var counts intList
	var include, exclude, filters stringList

	fs := flag.NewFlagSet("dominion", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&req.Number, "n", 10, "")
	fs.IntVar(&req.Number, "number", 10, "")
	fs.Var(&weights, "w", "")
	fs.Var(&weights, "weights", "")
	fs.Var(&counts, "c", "")
	fs.Var(&counts, "counts", "")
	fs.Var(&include, "i", "")
	fs.Var(&include, "include", "")
	fs.Var(&exclude, "x", "")
	fs.Var(&exclude, "exclude", "")
	fs.Var(&filters, "f", "")
	fs.Var(&filters, "filter-types", "")
	fs.IntVar(&req.Events, "e", 0, "")
	fs.IntVar(&req.Events, "events", 0, "")
	fs.IntVar(&req.Landmarks, "l", 0, "")
	fs.IntVar(&req.Landmarks, "landmarks", 0, "")

	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return req, fmt.Errorf("%w: %v", randomizer.ErrInvalidRequest, err)
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}

	sets, err := randomizer.ParseSets(positional)
	if err != nil {
		return req, err
	}
	filterTypes, err := randomizer.ParseFilterTypes(filters)
	if err != nil {
		return req, err
	}
	req.Sets = sets
	req.Weights = weights
	req.Counts = counts
	req.Include = include
	req.Exclude = exclude
	req.FilterTypes = filterTypes
	return req, nil
}
