// Package dimacsio reads and writes weighted partial MaxSAT instances
// in the WCNF family of DIMACS-derived text formats: the legacy format
// with a "p wcnf vars clauses [top]" header and per-clause weight
// prefix, and the newer header-less format that marks hard clauses
// with a leading "h" instead of comparing their weight against a top
// weight.
package dimacsio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crillab/wcnfpp/pkg/wcnf"
	"github.com/go-air/gini/z"
)

// ParseResult is the raw content of a parsed WCNF file, before any
// preprocessing: every clause exactly as read, plus the header's
// declared variable/clause counts (0 if the file used the header-less
// format).
type ParseResult struct {
	Hard          [][]wcnf.Lit
	Soft          [][]wcnf.Lit
	Weights       []wcnf.Weight
	DeclaredVars  int
	DeclaredCls   int
	Top           wcnf.Weight
	HasTop        bool
}

// Parse reads a WCNF instance from r, auto-detecting the legacy
// "p wcnf" header format against the header-less format used by newer
// MaxSAT evaluations.
func Parse(r io.Reader) (*ParseResult, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	res := &ParseResult{}
	sawHeader := false
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}
		if line[0] == 'p' {
			if err := parseHeader(line, res); err != nil {
				return nil, fmt.Errorf("dimacsio: line %d: %w", lineNo, err)
			}
			sawHeader = true
			continue
		}
		if err := parseClauseLine(line, sawHeader, res); err != nil {
			return nil, fmt.Errorf("dimacsio: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacsio: %w", err)
	}
	return res, nil
}

func parseHeader(line string, res *ParseResult) error {
	fields := strings.Fields(line)
	if len(fields) < 4 || fields[1] != "wcnf" {
		return fmt.Errorf("invalid wcnf header %q", line)
	}
	nbVars, err := strconv.Atoi(fields[2])
	if err != nil {
		return fmt.Errorf("bad variable count %q: %w", fields[2], err)
	}
	nbCls, err := strconv.Atoi(fields[3])
	if err != nil {
		return fmt.Errorf("bad clause count %q: %w", fields[3], err)
	}
	res.DeclaredVars = nbVars
	res.DeclaredCls = nbCls
	if len(fields) >= 5 {
		top, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return fmt.Errorf("bad top weight %q: %w", fields[4], err)
		}
		res.Top = wcnf.Weight(top)
		res.HasTop = true
	}
	return nil
}

// parseClauseLine handles both formats' clause syntax. Legacy clauses
// start with a numeric weight; header-less hard clauses start with the
// literal "h" instead.
func parseClauseLine(line string, sawHeader bool, res *ParseResult) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return fmt.Errorf("clause line too short: %q", line)
	}
	isHard := false
	var weight wcnf.Weight
	litFields := fields[1:]
	if fields[0] == "h" {
		isHard = true
	} else {
		w, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return fmt.Errorf("bad clause weight %q: %w", fields[0], err)
		}
		weight = wcnf.Weight(w)
		if sawHeader && res.HasTop && weight >= res.Top {
			isHard = true
		}
	}
	lits, err := parseLits(litFields)
	if err != nil {
		return err
	}
	if isHard {
		res.Hard = append(res.Hard, lits)
		return nil
	}
	res.Soft = append(res.Soft, lits)
	res.Weights = append(res.Weights, weight)
	return nil
}

func parseLits(fields []string) ([]wcnf.Lit, error) {
	lits := make([]wcnf.Lit, 0, len(fields))
	for _, field := range fields {
		m, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("bad literal %q: %w", field, err)
		}
		if m == 0 {
			break // clause terminator
		}
		lits = append(lits, z.Dimacs2Lit(m))
	}
	return lits, nil
}
