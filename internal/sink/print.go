package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Lumos-Labs-HQ/airgen/internal/entity"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use yaml or json)", s)
	}
}

// PrintSink is the dry-run sink: batches are written out instead of sent.
type PrintSink struct {
	w      io.Writer
	format Format
}

func NewPrintSink(w io.Writer, format Format) *PrintSink {
	if format == "" {
		format = FormatYAML
	}
	return &PrintSink{w: w, format: format}
}

func (p *PrintSink) Submit(ctx context.Context, kind entity.Kind, batch []entity.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	endpoint, err := Endpoint(kind)
	if err != nil {
		endpoint = "(unrouted)"
	}

	if batch == nil {
		batch = []entity.Record{}
	}

	switch p.format {
	case FormatJSON:
		doc := struct {
			Kind     string          `json:"kind"`
			Endpoint string          `json:"endpoint"`
			Count    int             `json:"count"`
			Records  []entity.Record `json:"records"`
		}{kind.String(), endpoint, len(batch), batch}
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to write %s batch: %w", kind, err)
		}
	default:
		doc := struct {
			Kind     string          `yaml:"kind"`
			Endpoint string          `yaml:"endpoint"`
			Count    int             `yaml:"count"`
			Records  []entity.Record `yaml:"records"`
		}{kind.String(), endpoint, len(batch), batch}
		if _, err := io.WriteString(p.w, "---\n"); err != nil {
			return err
		}
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to write %s batch: %w", kind, err)
		}
		if err := enc.Close(); err != nil {
			return err
		}
	}
	return nil
}
