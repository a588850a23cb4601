package instance

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/evenflow/minrange"
)

// Format selects how answers are rendered.
type Format string

// Supported formats.
const (
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

var (
	// ErrUnknownFormat indicates an unsupported output format name.
	ErrUnknownFormat = errors.New("instance: unknown output format")
	// ErrLengthMismatch indicates instances and results of different lengths.
	ErrLengthMismatch = errors.New("instance: instances and results differ in length")
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPlain, FormatJSON, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Answer is the JSON shape of one solved data set.
type Answer struct {
	DataSet   int             `json:"dataset"`
	Junctions int             `json:"junctions"`
	Pipes     int             `json:"pipes"`
	Range     int             `json:"range"`
	Min       int             `json:"min,omitempty"`
	Max       int             `json:"max,omitempty"`
	Tree      []minrange.Edge `json:"tree,omitempty"`
	Passes    int             `json:"passes"`
}

// Write renders results for insts in the given format.
// results[i] must belong to insts[i].
func Write(w io.Writer, f Format, insts []minrange.Instance, results []minrange.Result) error {
	if len(insts) != len(results) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(insts), len(results))
	}

	switch f {
	case FormatPlain:
		return writePlain(w, results)
	case FormatJSON:
		return writeJSON(w, insts, results)
	case FormatTable:
		return writeTable(w, insts, results)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

func writePlain(w io.Writer, results []minrange.Result) error {
	for _, res := range results {
		if _, err := fmt.Fprintln(w, res.Range); err != nil {
			return err
		}
	}

	return nil
}

func writeJSON(w io.Writer, insts []minrange.Instance, results []minrange.Result) error {
	answers := make([]Answer, len(results))
	for i, res := range results {
		answers[i] = Answer{
			DataSet:   i + 1,
			Junctions: insts[i].Junctions,
			Pipes:     len(insts[i].Edges),
			Range:     res.Range,
			Min:       res.Min,
			Max:       res.Max,
			Tree:      res.Tree,
			Passes:    res.Passes,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(answers)
}

func writeTable(w io.Writer, insts []minrange.Instance, results []minrange.Result) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"#", "Junctions", "Pipes", "Range", "Min", "Max", "Passes"})

	spanning := 0
	for i, res := range results {
		row := table.Row{i + 1, insts[i].Junctions, len(insts[i].Edges), res.Range, "-", "-", res.Passes}
		if res.Spanning() {
			row[4], row[5] = res.Min, res.Max
			spanning++
		}
		tbl.AppendRow(row)
	}
	tbl.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d/%d connected", spanning, len(results))})

	_, err := fmt.Fprintln(w, tbl.Render())

	return err
}

// Encode writes insts in the input format followed by the "0 0" sentinel.
func Encode(w io.Writer, insts []minrange.Instance) error {
	var b strings.Builder
	for _, inst := range insts {
		fmt.Fprintf(&b, "%d %d\n", inst.Junctions, len(inst.Edges))
		for _, e := range inst.Edges {
			fmt.Fprintf(&b, "%d %d %d\n", e.From, e.To, e.Weight)
		}
	}
	b.WriteString("0 0\n")

	_, err := io.WriteString(w, b.String())

	return err
}
