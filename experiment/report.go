package experiment

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// ParseFormat maps "json", "yaml" or "yml" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", name, ErrUnknownFormat)
	}
}

// WriteReport encodes v (a Report, an Outcome or a slice of Outcomes) to w.
func WriteReport(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("WriteReport: json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("WriteReport: yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("WriteReport: yaml: %w", err)
		}
	default:
		return fmt.Errorf("WriteReport: %q: %w", format, ErrUnknownFormat)
	}

	return nil
}

// WriteSummary prints one aligned row per outcome.
func WriteSummary(w io.Writer, outs []Outcome) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tCASE\tN\tK\tSTRATEGY\tMETHOD\tINITIAL\tFINAL\tIMPROVEMENT %\tVALID\tCONFLICTS\tSECONDS")
	for _, o := range outs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\t%.2f\t%.2f\t%.2f\t%t\t%d\t%.3f\n",
			dash(o.Group), dash(o.Label), o.Nodes, o.Frequencies, o.Strategy, o.Method,
			o.Initial.Cost, o.Final.Cost, o.Improvement, o.Final.Valid, o.Final.Conflicts, o.Seconds)
	}

	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
