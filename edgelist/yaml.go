package edgelist

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/minpath/core"
)

// document is the top-level YAML shape; items stay as nodes so each one can
// be validated, and reported, on its own line.
type document struct {
	Edges []yaml.Node `yaml:"edges"`
}

// record uses pointers to tell a missing key from a zero value.
type record struct {
	From *int   `yaml:"from"`
	To   *int   `yaml:"to"`
	Cost *int64 `yaml:"cost"`
}

// ParseYAML decodes an "edges:" document. Items missing a key or holding a
// non-integer value are skipped and reported like malformed text lines.
// Terminator does not apply.
func ParseYAML(r io.Reader, opts ...Option) ([]core.Edge, Report, error) {
	cfg := buildOptions(opts)

	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, Report{}, fmt.Errorf("edgelist: decode %s: %w", cfg.Source, err)
	}

	var (
		edges []core.Edge
		rep   Report
	)
	for i := range doc.Edges {
		item := &doc.Edges[i]
		rep.Lines++

		var rec record
		if err := item.Decode(&rec); err != nil {
			cfg.skip(&rep, item.Line, describe(item), fmt.Errorf("%w: %v", ErrNotInteger, err))
			continue
		}
		if rec.From == nil || rec.To == nil || rec.Cost == nil {
			cfg.skip(&rep, item.Line, describe(item), fmt.Errorf("%w: need from, to and cost", ErrFieldCount))
			continue
		}
		if cfg.StrictCosts && *rec.Cost < 0 {
			cfg.skip(&rep, item.Line, describe(item), fmt.Errorf("%w: %d", ErrNegativeCost, *rec.Cost))
			continue
		}
		edges = append(edges, core.Edge{From: *rec.From, To: *rec.To, Cost: *rec.Cost})
		rep.Accepted++
	}

	return edges, rep, nil
}

// describe renders a YAML node back to a compact single-line form for reports.
func describe(n *yaml.Node) string {
	out, err := yaml.Marshal(n)
	if err != nil {
		return n.Tag
	}

	return string(bytes.TrimRight(out, "\r\n"))
}
