package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pthm/classbound"
	"github.com/pthm/classbound/lib/catalog"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Validate the catalog and list its components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, _, err := rootFlags.load(cmd)
			if err != nil {
				return err
			}
			rows := listRows(cat)
			if opts.jsonOutput {
				return renderListJSON(cmd.OutOrStdout(), rows)
			}
			return renderListTable(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type listRow struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Element     string   `json:"element"`
	Parent      string   `json:"parent,omitempty"`
	Variants    []string `json:"variants"`
}

func listRows(cat *catalog.Catalog) []listRow {
	rows := make([]listRow, 0, cat.Len())
	for _, name := range cat.Names() {
		comp, _ := cat.Component(name)
		e, _ := cat.Entry(name)
		rows = append(rows, listRow{
			Name:        name,
			DisplayName: comp.DisplayName(),
			Element:     catalog.ElementLabel(comp.ElementType()),
			Parent:      e.Parent(),
			Variants:    classbound.OptionsOf(comp).Variants.Names(),
		})
	}
	return rows
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))

func renderListTable(w io.Writer, rows []listRow) error {
	var buf bytes.Buffer
	writer := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tELEMENT\tPARENT\tVARIANTS")

	for _, r := range rows {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			r.Name,
			r.Element,
			valueOrFallback(r.Parent, "-"),
			valueOrFallback(strings.Join(r.Variants, ","), "-"),
		)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	// Style after alignment so escape codes do not skew column widths.
	header, body, _ := strings.Cut(buf.String(), "\n")
	if isTerminal(w) {
		header = headerStyle.Render(header)
	}
	_, err := fmt.Fprintf(w, "%s\n%s", header, body)
	return err
}

func renderListJSON(w io.Writer, rows []listRow) error {
	payload := struct {
		Count      int       `json:"count"`
		Components []listRow `json:"components"`
	}{
		Count:      len(rows),
		Components: rows,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func valueOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
