package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// result is one rendered scenario.
type result struct {
	name   string
	header []string
	rows   [][]string
	audio  []float64
}

func (r *result) addRow(cells ...string) {
	r.rows = append(r.rows, cells)
}

func f4(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func frameCell(frame int, ok bool) string {
	if !ok {
		return ""
	}

	return strconv.Itoa(frame)
}

func writeTable(w io.Writer, r result) error {
	if _, err := fmt.Fprintf(w, "# %s\n", r.name); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(r.header, "\t")); err != nil {
		return err
	}

	rule := make([]string, len(r.header))
	for i, h := range r.header {
		rule[i] = strings.Repeat("-", len(h))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(rule, "\t")); err != nil {
		return err
	}

	for _, row := range r.rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// writeCSV writes every result as one CSV stream. The scenario name leads
// each record and each scenario repeats its own header.
func writeCSV(w io.Writer, results []result) error {
	cw := csv.NewWriter(w)
	for _, r := range results {
		if err := cw.Write(append([]string{"scenario"}, r.header...)); err != nil {
			return err
		}
		for _, row := range r.rows {
			if err := cw.Write(append([]string{r.name}, row...)); err != nil {
				return err
			}
		}
	}
	cw.Flush()

	return cw.Error()
}
