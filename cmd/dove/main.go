/*
Package main is the dove cli tool (Dotted Or decimal Version Encoding):
parses, compares, sorts, and re-renders version literals in either the
decimal or the dotted encoding.
*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/quievo/dove"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	// Parsing behavior
	OptionsParsing OptionsParsing `group:"Parsing"`
	// Range clipping
	OptionsRange OptionsRange `group:"Range"`
	// Output format
	OptionsOutput OptionsOutput `group:"Output"`
}

type OptionsRange struct {
	Min          string `short:"m" long:"min"           description:"Lower bound literal (either encoding)"`
	Max          string `short:"x" long:"max"           description:"Upper bound literal (either encoding)"`
	MinExclusive bool   `short:"M" long:"min-exclusive" description:"Exclude lower bound itself"`
	MaxExclusive bool   `short:"X" long:"max-exclusive" description:"Exclude upper bound itself"`
}

type OptionsParsing struct {
	Declare   bool `short:"q" long:"declare"    description:"Force the dotted-decimal identity on every input (qv)"`
	AlphaOnly bool `short:"a" long:"alpha-only" description:"Keep only versions carrying an alpha marker"`
}

type OptionsOutput struct {
	Mode    string `short:"o" long:"output"  description:"Rendering mode" choice:"string" choice:"normal" choice:"numify" default:"string"`
	Sort    string `short:"S" long:"sort"    description:"Sort output versions" choice:"none" choice:"asc" choice:"desc" default:"none"`
	Limit   int    `short:"n" long:"limit"   description:"Max number of output versions (<=0 = unlimited)" default:"0"`
	Compare bool   `short:"c" long:"compare" description:"Compare exactly two literals and print <, =, or >"`
}

func main() {
	var opt Options
	parser := flags.NewParser(&opt, flags.Default|flags.AllowBoolValues)
	parser.Usage = "[OPTIONS] [LITERAL...]"
	parser.LongDescription = `DOVE — Dotted Or decimal Version Encoding.
A CLI tool for version literals in either encoding:
parses plain decimals ("1.0023") and dotted identifiers ("v1.2.300") into one
canonical form, compares and sorts them, and prints the normal, numify, or
round-trip rendering. Literals are taken from arguments, or from stdin one
per line.`

	args, err := parser.Parse()
	if err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	in := args
	if len(in) == 0 {
		in = readLines(os.Stdin)
	}

	if opt.OptionsOutput.Compare {
		os.Exit(runCompare(in, opt.OptionsParsing.Declare))
	}

	os.Exit(runRender(in, opt))
}

// readLines collects non-blank stdin lines.
func readLines(f *os.File) []string {
	in := make([]string, 0, 1024)
	sc := bufio.NewScanner(f)
	const maxLine = 10 * 1024 * 1024
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, maxLine)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			in = append(in, s)
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
		os.Exit(2)
	}

	return in
}

func parseOne(s string, declare bool) (dove.Version, error) {
	if declare {
		return dove.Declare(s)
	}

	return dove.Parse(s)
}

func runCompare(in []string, declare bool) int {
	if len(in) != 2 {
		fmt.Fprintf(os.Stderr, "--compare needs exactly two literals, got %d\n", len(in))
		return 2
	}

	a, err := parseOne(in[0], declare)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	b, err := parseOne(in[1], declare)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	switch a.Compare(b) {
	case -1:
		fmt.Println("<")
	case 0:
		fmt.Println("=")
	default:
		fmt.Println(">")
	}

	return 0
}

func runRender(in []string, opt Options) int {
	rng := dove.Range{
		Min:          opt.OptionsRange.Min,
		Max:          opt.OptionsRange.Max,
		MinExclusive: opt.OptionsRange.MinExclusive,
		MaxExclusive: opt.OptionsRange.MaxExclusive,
	}

	vs := make([]dove.Version, 0, len(in))
	for _, s := range in {
		v, err := parseOne(s, opt.OptionsParsing.Declare)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		if opt.OptionsParsing.AlphaOnly && !v.IsAlpha() {
			continue
		}
		if rng.Enabled() {
			ok, err := rng.Contains(v)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				return 2
			}
			if !ok {
				continue
			}
		}
		vs = append(vs, v)
	}

	switch opt.OptionsOutput.Sort {
	case "asc", "desc":
		asc := opt.OptionsOutput.Sort == "asc"
		sort.Slice(vs, func(i, j int) bool {
			cmp := vs[i].Compare(vs[j])
			if cmp == 0 {
				cmp = strings.Compare(vs[i].String(), vs[j].String())
			}
			if asc {
				return cmp < 0
			}
			return cmp > 0
		})
	}

	if n := opt.OptionsOutput.Limit; n > 0 && n < len(vs) {
		vs = vs[:n]
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, v := range vs {
		switch opt.OptionsOutput.Mode {
		case "normal":
			fmt.Fprintln(w, v.Normal())
		case "numify":
			fmt.Fprintln(w, v.Numify())
		default:
			fmt.Fprintln(w, v.String())
		}
	}

	return 0
}
