package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/fnkit/foundation/core/log"
	"github.com/msto63/fnkit/foundation/utils/stringx"
	"github.com/msto63/fnkit/foundation/utils/tagx"
	"github.com/msto63/fnkit/pkg/core/logging"
)

// tagOptions holds the flags shared by the tag subcommands
type tagOptions struct {
	width  int
	align  string
	pad    string
	marker string
}

func newTagCmd(a *app) *cobra.Command {
	opts := &tagOptions{}

	tagCmd := &cobra.Command{
		Use:   "tag",
		Short: "Measure, pad, crop and render text with inline tags",
		Long: `Tagged text carries markup such as <red>…</red> or <b>…</b>. The tag
commands treat the markup as zero width.`,
	}

	lenCmd := &cobra.Command{
		Use:   "len [text...]",
		Short: "Print the rune count of the text without its tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tagx.Len(text))
			return nil
		},
	}

	widthCmd := &cobra.Command{
		Use:   "width [text...]",
		Short: "Print the display width of the text without its tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tagx.Width(text))
			return nil
		},
	}

	stripCmd := &cobra.Command{
		Use:   "strip [text...]",
		Short: "Remove all tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tagx.Strip(text))
			return nil
		},
	}

	padCmd := &cobra.Command{
		Use:   "pad [text...]",
		Short: "Pad the text to a visible width",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return a.fail(err)
			}
			opts.defaults(cmd, a)
			align, err := stringx.ParseAlign(opts.align)
			if err != nil {
				return a.fail(err)
			}
			a.log.Debug("padding tagged text", tagFields(opts))
			fmt.Fprintln(cmd.OutOrStdout(), tagx.Pad(text, opts.width, align, opts.pad))
			return nil
		},
	}

	cropCmd := &cobra.Command{
		Use:   "crop [text...]",
		Short: "Crop the text to a visible width, keeping tags balanced",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return a.fail(err)
			}
			opts.defaults(cmd, a)
			a.log.Debug("cropping tagged text", tagFields(opts))
			fmt.Fprintln(cmd.OutOrStdout(), tagx.Crop(text, opts.width, opts.marker))
			return nil
		},
	}

	renderCmd := &cobra.Command{
		Use:   "render [text...]",
		Short: "Replace tags with terminal styling",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tagx.Render(text, configStyles(a.cfg().StyleColors())))
			return nil
		},
	}

	for _, c := range []*cobra.Command{padCmd, cropCmd} {
		c.Flags().IntVarP(&opts.width, "width", "w", 0, "visible width (default from config)")
	}
	padCmd.Flags().StringVarP(&opts.align, "align", "a", "", "side that receives padding: end, start or both")
	padCmd.Flags().StringVar(&opts.pad, "pad", "", "padding string")
	cropCmd.Flags().StringVarP(&opts.marker, "marker", "m", "", "marker appended when text is cut")

	tagCmd.AddCommand(lenCmd, widthCmd, stripCmd, padCmd, cropCmd, renderCmd)
	return tagCmd
}

// defaults fills every flag the user did not set from the configuration
func (o *tagOptions) defaults(cmd *cobra.Command, a *app) {
	text := a.cfg().Text
	flags := cmd.Flags()
	if !flags.Changed("width") {
		o.width = text.Width
	}
	if !flags.Changed("align") {
		o.align = text.Align
	}
	if !flags.Changed("pad") {
		o.pad = text.Pad
	}
	if !flags.Changed("marker") {
		o.marker = text.Marker
	}
}

func tagFields(o *tagOptions) mdwlog.Fields {
	return logging.KV("width", o.width, "align", o.align, "marker", o.marker)
}

// configStyles turns configured colors into foreground styles
func configStyles(colors map[string]string) tagx.Styles {
	styles := make(tagx.Styles, len(colors))
	for name, color := range colors {
		styles[name] = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return styles
}
