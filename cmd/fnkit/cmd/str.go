package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/fnkit/foundation/core/errors"
	"github.com/msto63/fnkit/foundation/utils/fnx"
	"github.com/msto63/fnkit/foundation/utils/stringx"
	"github.com/msto63/fnkit/pkg/core/logging"
)

type registryResult struct {
	reg *fnx.Registry
	err error
}

// stringRegistry is built on first use and shared by all str subcommands
var stringRegistry = fnx.Memoize(func() registryResult {
	reg, err := stringFuncs()
	return registryResult{reg: reg, err: err}
})

// stringFuncs is the table the str subcommands dispatch through
func stringFuncs() (*fnx.Registry, error) {
	reg := fnx.NewRegistry()
	funcs := map[string]any{
		"camelize":             stringx.Camelize,
		"dehyphenate":          stringx.Dehyphenate,
		"decamelize":           stringx.Decamelize,
		"lcwords":              stringx.LcWords,
		"ucwords":              stringx.UcWords,
		"segments-first":       stringx.SegmentsFirst,
		"segments-last":        stringx.SegmentsLast,
		"segments-strip-first": stringx.SegmentsStripFirst,
		"segments-strip-last":  stringx.SegmentsStripLast,
		"truncate":             stringx.Truncate,
		"cut":                  stringx.Cut,
		"trim":                 stringx.TrimText,
		"trim-html":            stringx.TrimHTMLText,
		"strip-tags":           stringx.StripTags,
		"indent":               stringx.Indent,
		"pad":                  stringx.PadString,
		"pluralize":            stringx.SimplePluralize,
		"js":                   stringx.EncodeJavaScriptString,
		"match":                matchAll,
		"extract-segment":      extractSegment,
	}
	for name, fn := range funcs {
		if err := reg.RegisterFunc(name, fn); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// matchAll returns the first match and its capture groups, one per line
func matchAll(text, pattern string, groups int, empty string) (string, error) {
	re, err := stringx.Compile(pattern)
	if err != nil {
		return "", err
	}
	result, ok := stringx.Match(text, re, groups, empty)
	if !ok {
		return "", mdwerrors.NotFound(mdwerrors.ModuleStringx, "match", pattern)
	}
	return strings.Join(result, "\n"), nil
}

// extractSegment returns the head and tail around the first delimiter match
func extractSegment(text, pattern string) (string, error) {
	re, err := stringx.Compile(pattern)
	if err != nil {
		return "", err
	}
	seg := stringx.ExtractSegment(text, re)
	return seg[0] + "\n" + seg[1], nil
}

// strOptions holds the flags of the str subcommands
type strOptions struct {
	ucfirst bool
	delim   string
	mode    string
	count   int
	limit   int
	marker  string
	level   int
	indent  string
	pad     string
	align   string
	num     int
	pattern string
	groups  int
	empty   string
}

func newStrCmd(a *app) *cobra.Command {
	strCmd := &cobra.Command{
		Use:   "str",
		Short: "Convert, split, shorten and pad plain strings",
	}

	// each builder maps the text and the options to the registry arguments
	specs := []struct {
		use   string
		short string
		fn    func(cmd *cobra.Command, opts *strOptions, text string) (string, []any, error)
		flags func(c *cobra.Command, opts *strOptions)
	}{
		{
			use:   "camelize",
			short: "Convert space separated words to camelCase",
			fn: func(_ *cobra.Command, opts *strOptions, text string) (string, []any, error) {
				return "camelize", []any{text, opts.ucfirst}, nil
			},
			flags: ucfirstFlag,
		},
		{
			use:   "dehyphenate",
			short: "Convert delimited names to camelCase",
			fn: func(_ *cobra.Command, opts *strOptions, text string) (string, []any, error) {
				return "dehyphenate", []any{text, opts.ucfirst, opts.delim}, nil
			},
			flags: func(c *cobra.Command, opts *strOptions) {
				ucfirstFlag(c, opts)
				c.Flags().StringVarP(&opts.delim, "delim", "d", "-", "word delimiter")
			},
		},
		{
			use:   "decamelize",
			short: "Convert camelCase names to delimited words",
			fn: func(_ *cobra.Command, opts *strOptions, text string) (string, []any, error) {
				return "decamelize", []any{text, opts.ucfirst, opts.delim}, nil
			},
			flags: func(c *cobra.Command, opts *strOptions) {
				c.Flags().BoolVar(&opts.ucfirst, "ucwords", false, "upper-case every word")
				c.Flags().StringVarP(&opts.delim, "delim", "d", "_", "word delimiter")
			},
		},
		{
			use:   "lcwords",
			short: "Lower-case the first letter of every word",
			fn: func(_ *cobra.Command, opts *strOptions, text string) (string, []any, error) {
				return "lcwords", []any{text, opts.delim}, nil
			},
			flags: delimFlag(" "),
		},
		{
			use:   "ucwords",
			short: "Upper-case the first letter of every word",
			fn: func(_ *cobra.Command, opts *strOptions, text string) (string, []any, error) {
				return "ucwords", []any{text, opts.delim}, nil
			},
			flags: delimFlag(" "),
		},
		{
			use:   "segments",
			short: "Keep or strip delimited segments from either end",
			fn: func(_ *cobra.Command, opts *strOptions, text string) (string, []any, error) {
				switch opts.mode {
				case "first", "last", "strip-first", "strip-last":
				default:
					return "", nil, mdwerrors.InvalidInput(mdwerrors.ModuleStringx, "segments", opts.mode,
						"first, last, strip-first or strip-last")
				}
				return "segments-" + opts.mode, []any{text, opts.delim, opts.count}, nil
			},
			flags: func(c *cobra.Command, opts *strOptions) {
				c.Flags().StringVar(&opts.mode, "mode", "first", "first, last, strip-first or strip-last")
				c.Flags().StringVarP(&opts.delim, "delim", "d", ".", "segment delimiter")
				c.Flags().IntVarP(&opts.count, "count", "n", 1, "number of segments")
			},
		},
		{
			use:   "truncate",
			short: "Shorten text at a word boundary",
			fn: func(cmd *cobra.Command, opts *strOptions, text string) (string, []any, error) {
				opts.textDefaults(cmd, a, false)
				return "truncate", []any{text, opts.limit, opts.marker}, nil
			},
			flags: limitFlags,
		},
		{
			use:   "cut",
			short: "Shorten text by replacing its middle",
			fn: func(cmd *cobra.Command, opts *strOptions, text string) (string, []any, error) {
				opts.textDefaults(cmd, a, false)
				return "cut", []any{text, opts.limit, opts.marker}, nil
			},
			flags: limitFlags,
		},
		{
			use:   "trim",
			short: "Shorten text dropping the last partial word",
			fn: func(cmd *cobra.Command, opts *strOptions, text string) (string, []any, error) {
				opts.textDefaults(cmd, a, false)
				return "trim", []any{text, opts.limit, opts.marker}, nil
			},
			flags: limitFlags,
		},
		{
			use:   "trim-html",
			short: "Shorten an HTML fragment keeping its tags closed",
			fn: func(cmd *cobra.Command, opts *strOptions, text string) (string, []any, error) {
				opts.textDefaults(cmd, a, true)
				return "trim-html", []any{text, opts.limit, opts.marker}, nil
			},
			flags: limitFlags,
		},
		{
			use:   "strip-tags",
			short: "Remove HTML and XML tags",
			fn: func(_ *cobra.Command, opts *strOptions, text string) (string, []any, error) {
				return "strip-tags", []any{text}, nil
			},
		},
		{
			use:   "indent",
			short: "Indent every line",
			fn: func(_ *cobra.Command, opts *strOptions, text string) (string, []any, error) {
				return "indent", []any{text, opts.level, opts.indent}, nil
			},
			flags: func(c *cobra.Command, opts *strOptions) {
				c.Flags().IntVarP(&opts.level, "level", "l", 1, "indentation level")
				c.Flags().StringVar(&opts.indent, "indent", "    ", "indentation unit")
			},
		},
		{
			use:   "pad",
			short: "Pad text to a rune length",
			fn: func(cmd *cobra.Command, opts *strOptions, text string) (string, []any, error) {
				opts.textDefaults(cmd, a, false)
				align, err := stringx.ParseAlign(opts.align)
				if err != nil {
					return "", nil, err
				}
				return "pad", []any{text, opts.limit, opts.pad, align}, nil
			},
			flags: func(c *cobra.Command, opts *strOptions) {
				c.Flags().IntVarP(&opts.limit, "width", "w", 0, "target length (default from config)")
				c.Flags().StringVar(&opts.pad, "pad", "", "padding string")
				c.Flags().StringVarP(&opts.align, "align", "a", "", "side that receives padding: end, start or both")
			},
		},
		{
			use:   "pluralize",
			short: "Pluralize the noun unless the count is one",
			fn: func(_ *cobra.Command, opts *strOptions, text string) (string, []any, error) {
				return "pluralize", []any{opts.num, text}, nil
			},
			flags: func(c *cobra.Command, opts *strOptions) {
				c.Flags().IntVarP(&opts.num, "num", "n", 0, "the count")
			},
		},
		{
			use:   "js",
			short: "Encode text as a JavaScript string literal",
			fn: func(_ *cobra.Command, opts *strOptions, text string) (string, []any, error) {
				return "js", []any{text, opts.delim}, nil
			},
			flags: delimFlag("'"),
		},
		{
			use:   "match",
			short: "Print the first match and its capture groups",
			fn: func(_ *cobra.Command, opts *strOptions, text string) (string, []any, error) {
				return "match", []any{text, opts.pattern, opts.groups, opts.empty}, nil
			},
			flags: func(c *cobra.Command, opts *strOptions) {
				patternFlag(c, opts)
				c.Flags().IntVarP(&opts.groups, "groups", "g", 0, "number of groups to report")
				c.Flags().StringVar(&opts.empty, "empty", "", "value for groups that did not participate")
			},
		},
		{
			use:   "extract-segment",
			short: "Split text around the first delimiter match",
			fn: func(_ *cobra.Command, opts *strOptions, text string) (string, []any, error) {
				return "extract-segment", []any{text, opts.pattern}, nil
			},
			flags: patternFlag,
		},
	}

	for _, s := range specs {
		s := s
		opts := &strOptions{}
		c := &cobra.Command{
			Use:   s.use + " [text...]",
			Short: s.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				text, err := inputText(cmd, args)
				if err != nil {
					return a.fail(err)
				}
				name, callArgs, err := s.fn(cmd, opts, text)
				if err != nil {
					return a.fail(err)
				}
				out, err := callString(name, callArgs)
				if err != nil {
					return a.fail(err)
				}
				a.log.Debug("string function applied", logging.KV("function", name, "in", len(text), "out", len(out)))
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			},
		}
		if s.flags != nil {
			s.flags(c, opts)
		}
		strCmd.AddCommand(c)
	}

	return strCmd
}

// callString invokes a registered function and formats its result
func callString(name string, args []any) (string, error) {
	r := stringRegistry()
	if r.err != nil {
		return "", r.err
	}
	result, err := r.reg.Call(name, args...)
	if err != nil {
		return "", err
	}
	if results, ok := result.([]any); ok {
		result = results[0]
	}
	return fmt.Sprint(result), nil
}

// textDefaults fills the shortening and padding flags from the configuration
func (o *strOptions) textDefaults(cmd *cobra.Command, a *app, html bool) {
	text := a.cfg().Text
	flags := cmd.Flags()
	if !flags.Changed("limit") && !flags.Changed("width") {
		o.limit = text.Width
	}
	if !flags.Changed("marker") {
		o.marker = text.Marker
		if html {
			o.marker = text.HTMLMarker
		}
	}
	if !flags.Changed("pad") {
		o.pad = text.Pad
	}
	if !flags.Changed("align") {
		o.align = text.Align
	}
}

func ucfirstFlag(c *cobra.Command, opts *strOptions) {
	c.Flags().BoolVarP(&opts.ucfirst, "ucfirst", "u", false, "upper-case the first letter")
}

func delimFlag(def string) func(c *cobra.Command, opts *strOptions) {
	return func(c *cobra.Command, opts *strOptions) {
		c.Flags().StringVarP(&opts.delim, "delim", "d", def, "delimiter")
	}
}

func limitFlags(c *cobra.Command, opts *strOptions) {
	c.Flags().IntVarP(&opts.limit, "limit", "l", 0, "maximum length (default from config width)")
	c.Flags().StringVarP(&opts.marker, "marker", "m", "", "marker appended when text is cut")
}

func patternFlag(c *cobra.Command, opts *strOptions) {
	c.Flags().StringVarP(&opts.pattern, "pattern", "p", "", "regular expression")
	_ = c.MarkFlagRequired("pattern")
}
