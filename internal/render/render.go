// Package render writes plans and admin data as JSON, YAML or styled text.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"chronopro-api/internal/chrono"
	"chronopro-api/internal/storage"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

var Formats = []Format{FormatJSON, FormatYAML, FormatText}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatText:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want json, yaml or text)", s)
}

// Write encodes v to w. The text format supports *chrono.Plan,
// *storage.Stats and []storage.Response.
func Write(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		var out string
		switch v := v.(type) {
		case *chrono.Plan:
			out = Plan(v)
		case *storage.Stats:
			out = Stats(v)
		case []storage.Response:
			out = Responses(v)
		default:
			return fmt.Errorf("no text rendering for %T", v)
		}
		_, err := io.WriteString(w, out+"\n")
		return err
	}
	return fmt.Errorf("unknown format %q", f)
}
