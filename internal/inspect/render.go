package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Render writes reports to w in the given format.
func Render(w io.Writer, format Format, reports []*Report) error {
	switch format {
	case FormatTable:
		return renderTable(w, reports)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderTable(w io.Writer, reports []*Report) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Source", "Kind", "Path", "Family", "Tag", "Known"})
	table.SetAutoWrapText(false)

	for _, r := range reports {
		switch {
		case r.Failed():
			table.Append([]string{r.Source, string(r.Kind), r.ErrorField, "", "error: " + r.Error, ""})
			continue
		case len(r.Items) == 0:
			table.Append([]string{r.Source, string(r.Kind), "", "", "", ""})
		}
		for _, item := range r.Items {
			tag := item.Tag
			if item.Raw != "" {
				tag += " " + item.Raw
			}
			table.Append([]string{r.Source, string(r.Kind), item.Path, item.Family, tag, strconv.FormatBool(item.Known)})
		}
		if r.Invalid != "" {
			table.Append([]string{r.Source, string(r.Kind), "", "", "invalid: " + r.Invalid, ""})
		}
	}

	table.Render()
	return nil
}
