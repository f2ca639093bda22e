package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tychoish/lazy"
)

// printView materializes the view and writes it in the configured
// format.
func printView[T any, P lazy.Forward[P, T]](out io.Writer, v lazy.View[T, P], opts *rootOpts) error {
	if opts.format == formatText {
		text, err := v.ToString(opts.delimiter, opts.materializeOptions()...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, text)
		return err
	}

	values, err := v.ToSlice(opts.materializeOptions()...)
	if err != nil {
		return err
	}
	return printStructured(out, values, opts.format)
}

func printStructured(out io.Writer, value any, format string) error {
	switch format {
	case formatJSON:
		return json.NewEncoder(out).Encode(value)
	case formatYAML:
		data, err := yaml.Marshal(value)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	default:
		_, err := fmt.Fprintln(out, value)
		return err
	}
}
