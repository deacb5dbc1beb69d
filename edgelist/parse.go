package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/minpath/core"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Parse reads "<from> <to> <cost>" triples, one per line.
//
// Blank lines and lines starting with '#' are ignored. Any other line that is
// not exactly three integers is skipped and reported. The returned error is
// non-nil only when reading from r fails.
func Parse(r io.Reader, opts ...Option) ([]core.Edge, Report, error) {
	cfg := buildOptions(opts)

	var (
		edges []core.Edge
		rep   Report
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		rep.Lines++
		text := strings.TrimSpace(sc.Text())
		if cfg.Terminator != "" && text == cfg.Terminator {
			rep.Terminated = true
			break
		}
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		e, err := parseLine(text)
		if err == nil && cfg.StrictCosts && e.Cost < 0 {
			err = fmt.Errorf("%w: %d", ErrNegativeCost, e.Cost)
		}
		if err != nil {
			cfg.skip(&rep, rep.Lines, text, err)
			continue
		}
		edges = append(edges, e)
		rep.Accepted++
	}
	if err := sc.Err(); err != nil {
		return edges, rep, fmt.Errorf("edgelist: read %s: %w", cfg.Source, err)
	}

	return edges, rep, nil
}

// parseLine converts one non-empty line into an Edge.
func parseLine(text string) (core.Edge, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return core.Edge{}, fmt.Errorf("%w: got %d", ErrFieldCount, len(fields))
	}

	from, err := strconv.Atoi(fields[0])
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: from %q", ErrNotInteger, fields[0])
	}
	to, err := strconv.Atoi(fields[1])
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: to %q", ErrNotInteger, fields[1])
	}
	cost, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: cost %q", ErrNotInteger, fields[2])
	}

	return core.Edge{From: from, To: to, Cost: cost}, nil
}

// IsYAML reports whether path names a YAML edge document.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}

	return false
}

// ParseFile opens path and parses it as YAML or text depending on its extension.
// The file name is used as the log source unless WithSource overrides it.
func ParseFile(path string, opts ...Option) ([]core.Edge, Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("edgelist: open %s: %w", path, err)
	}
	defer f.Close()

	all := append([]Option{WithSource(path)}, opts...)
	if IsYAML(path) {
		return ParseYAML(f, all...)
	}

	return Parse(f, all...)
}
