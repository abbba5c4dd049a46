package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/classbound"
	"github.com/pthm/classbound/lib/catalog"
	"github.com/pthm/classbound/lib/preview"
)

type renderOptions struct {
	set   []string
	class string
	text  string
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render NAME",
		Short: "Render one component to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, log, err := rootFlags.load(cmd)
			if err != nil {
				return err
			}

			comp, err := cat.Component(args[0])
			if err != nil {
				if catalog.IsNotFound(err) {
					return newCommandError("render", args[0], err, "Run 'classbound list' to see available components.")
				}
				return err
			}

			values, err := opts.values()
			if err != nil {
				return err
			}
			props := preview.PropsFromQuery(values, classbound.OptionsOf(comp).Variants)
			log.Debug().Str("component", args[0]).Interface("props", props).Msg("rendering")

			if err := comp.Render(props).Render(cmd.Context(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("render %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Set a prop: name=value, or name alone for true (repeatable)")
	cmd.Flags().StringVar(&opts.class, "class", "", "Extra class names appended after the component's classes")
	cmd.Flags().StringVar(&opts.text, "text", "", "Text children")

	return cmd
}

// values maps flags onto the same parameters the preview server reads.
func (o *renderOptions) values() (url.Values, error) {
	values := url.Values{}
	for _, pair := range o.set {
		name, value, _ := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid --set %q: missing prop name", pair)
		}
		values.Set(name, value)
	}
	if o.class != "" {
		values.Set("class", o.class)
	}
	if o.text != "" {
		values.Set("text", o.text)
	}
	return values, nil
}
