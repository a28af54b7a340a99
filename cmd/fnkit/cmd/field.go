package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/fnkit/foundation/core/errors"
	"github.com/msto63/fnkit/foundation/utils/fieldx"
	"github.com/msto63/fnkit/pkg/core/logging"
)

// fieldOptions holds the flags of the field subcommands
type fieldOptions struct {
	file    string
	format  string
	output  string
	inPlace bool
	assoc   bool

	path     string
	value    string
	asString bool
	def      string
	keys     []string
}

// document is a decoded input together with where it came from
type document struct {
	root   any
	format fieldx.Format
}

func newFieldCmd(a *app) *cobra.Command {
	opts := &fieldOptions{}

	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "Read and edit fields of JSON, YAML and TOML documents",
		Long: `Paths are dot separated keys, for example server.tls.cert. The
document is read from --file, or from stdin in the --format given.`,
	}

	pf := fieldCmd.PersistentFlags()
	pf.StringVarP(&opts.file, "file", "f", "", "input file, format taken from its extension")
	pf.StringVar(&opts.format, "format", "json", "format of stdin: json, yaml or toml")
	pf.StringVarP(&opts.output, "output", "o", "", "output format (default from config, else the input format)")
	pf.BoolVarP(&opts.inPlace, "in-place", "i", false, "write the result back to --file")
	pf.BoolVar(&opts.assoc, "assoc", false, "create plain maps instead of ordered maps for new containers")

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Print the value at --path",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.load(cmd, a)
			if err != nil {
				return a.fail(err)
			}
			v := doc.root
			if opts.path != "" {
				v = fieldx.GetAt(doc.root, opts.path)
			}
			if v == nil {
				if !cmd.Flags().Changed("default") {
					return a.fail(mdwerrors.NotFound(mdwerrors.ModuleCLI, "field_get", opts.path))
				}
				v = opts.def
			}
			return a.fail(opts.print(cmd, v, doc.format))
		},
	}
	getCmd.Flags().StringVarP(&opts.path, "path", "p", "", "dotted path, empty for the whole document")
	getCmd.Flags().StringVar(&opts.def, "default", "", "value printed when the path is absent")

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Store --value at --path, creating missing containers",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.load(cmd, a)
			if err != nil {
				return a.fail(err)
			}
			value, err := opts.parseValue()
			if err != nil {
				return a.fail(err)
			}
			if err := fieldx.SetAt(doc.root, opts.path, value, opts.assoc); err != nil {
				return a.fail(err)
			}
			a.log.Debug("field set", logging.KV("path", opts.path, "assoc", opts.assoc))
			return a.fail(opts.write(cmd, a, doc))
		},
	}
	setCmd.Flags().StringVarP(&opts.path, "path", "p", "", "dotted path")
	setCmd.Flags().StringVar(&opts.value, "value", "", "value, parsed as YAML unless --string")
	setCmd.Flags().BoolVar(&opts.asString, "string", false, "store --value as a plain string")
	_ = setCmd.MarkFlagRequired("path")
	_ = setCmd.MarkFlagRequired("value")

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove the field at --path",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.load(cmd, a)
			if err != nil {
				return a.fail(err)
			}
			if err := fieldx.DeleteAt(doc.root, opts.path); err != nil {
				return a.fail(err)
			}
			a.log.Debug("field deleted", logging.KV("path", opts.path))
			return a.fail(opts.write(cmd, a, doc))
		},
	}
	deleteCmd.Flags().StringVarP(&opts.path, "path", "p", "", "dotted path")
	_ = deleteCmd.MarkFlagRequired("path")

	extractCmd := &cobra.Command{
		Use:   "extract",
		Short: "Print the --keys present in the record at --path",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.load(cmd, a)
			if err != nil {
				return a.fail(err)
			}
			target := doc.root
			if opts.path != "" {
				target = fieldx.GetAt(doc.root, opts.path)
			}
			picked, err := fieldx.ExtractFields(target, opts.keys)
			if err != nil {
				return a.fail(err)
			}
			return a.fail(opts.print(cmd, picked, doc.format))
		},
	}
	extractCmd.Flags().StringVarP(&opts.path, "path", "p", "", "dotted path of the record, empty for the root")
	extractCmd.Flags().StringSliceVarP(&opts.keys, "keys", "k", nil, "comma separated field names")
	_ = extractCmd.MarkFlagRequired("keys")

	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "List the field names of the record at --path",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.load(cmd, a)
			if err != nil {
				return a.fail(err)
			}
			target := doc.root
			if opts.path != "" {
				target = fieldx.GetAt(doc.root, opts.path)
			}
			names, err := fieldx.Fields(target)
			if err != nil {
				return a.fail(err)
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	keysCmd.Flags().StringVarP(&opts.path, "path", "p", "", "dotted path of the record, empty for the root")

	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Re-encode the document in the --output format",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.load(cmd, a)
			if err != nil {
				return a.fail(err)
			}
			return a.fail(opts.write(cmd, a, doc))
		},
	}

	fieldCmd.AddCommand(getCmd, setCmd, deleteCmd, extractCmd, keysCmd, convertCmd)
	return fieldCmd
}

// load applies the configured defaults and decodes the input document
func (o *fieldOptions) load(cmd *cobra.Command, a *app) (*document, error) {
	fields := a.cfg().Fields
	if !cmd.Flags().Changed("assoc") {
		o.assoc = fields.Assoc
	}
	if !cmd.Flags().Changed("output") {
		o.output = fields.Output
	}
	if o.inPlace && o.file == "" {
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "field", "--in-place", "--file to write back to")
	}

	if o.file != "" {
		root, format, err := fieldx.DecodeFile(o.file)
		if err != nil {
			return nil, err
		}
		a.log.Debug("document loaded", logging.KV("file", o.file, "format", string(format)))
		return &document{root: root, format: format}, nil
	}

	format, err := fieldx.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, mdwerrors.OperationFailed(mdwerrors.ModuleCLI, "read_stdin", err)
	}
	root, err := fieldx.Decode(data, format)
	if err != nil {
		return nil, err
	}
	if root == nil {
		root = fieldx.NewMap()
	}
	return &document{root: root, format: format}, nil
}

// outputFormat is --output when given, else the input format
func (o *fieldOptions) outputFormat(input fieldx.Format) (fieldx.Format, error) {
	if o.output == "" {
		return input, nil
	}
	return fieldx.ParseFormat(o.output)
}

// parseValue reads --value as a YAML scalar, list or mapping
func (o *fieldOptions) parseValue() (any, error) {
	if o.asString {
		return o.value, nil
	}
	return fieldx.DecodeYAML([]byte(o.value))
}

// print writes records and lists encoded, and scalars as plain text
func (o *fieldOptions) print(cmd *cobra.Command, v any, input fieldx.Format) error {
	out := cmd.OutOrStdout()
	_, isList := v.([]any)
	if !fieldx.IsRecord(v) && !isList {
		_, err := fmt.Fprintln(out, v)
		return err
	}

	format, err := o.outputFormat(input)
	if err != nil {
		return err
	}
	// TOML cannot encode a list on its own
	if format == fieldx.FormatTOML && isList {
		format = fieldx.FormatYAML
	}
	data, err := fieldx.Encode(v, format)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// write prints the document, or stores it in --file with --in-place
func (o *fieldOptions) write(cmd *cobra.Command, a *app, doc *document) error {
	format, err := o.outputFormat(doc.format)
	if err != nil {
		return err
	}
	data, err := fieldx.Encode(doc.root, format)
	if err != nil {
		return err
	}

	if !o.inPlace {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(o.file, data, 0644); err != nil {
		return mdwerrors.OperationFailed(mdwerrors.ModuleCLI, "write_file", err).WithDetail("file", o.file)
	}
	a.log.Info("document written", logging.KV("file", o.file, "format", string(format)))
	return nil
}
