package wlsat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// dimacsParser accumulates clauses from a DIMACS CNF token stream. Line
// breaks carry no meaning beyond separating tokens, so a clause may
// span several lines and a line may hold several clauses; only
// comments, the problem line, and the trailer marker are line-level
// constructs.
type dimacsParser struct {
	clauses  [][]int
	open     []int // literals of the clause not yet closed by a 0
	declared bool
	declVars int
	declCls  int
}

// errDimacsTrailer signals a lone "%" line, after which some benchmark
// archives append non-CNF data that must be ignored.
var errDimacsTrailer = errors.New("dimacs trailer")

func (p *dimacsParser) line(s string) error {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || s[0] == 'c':
		return nil
	case s == "%":
		return errDimacsTrailer
	case s[0] == 'p':
		return p.problemLine(s)
	}
	for _, tok := range strings.Fields(s) {
		lit, err := strconv.Atoi(tok)
		if err != nil {
			return fmt.Errorf("bad literal %q", tok)
		}
		if lit == 0 {
			p.clauses = append(p.clauses, p.open)
			p.open = nil
		} else {
			p.open = append(p.open, lit)
		}
	}
	return nil
}

func (p *dimacsParser) problemLine(s string) error {
	if len(p.clauses) > 0 || len(p.open) > 0 {
		return errors.New("problem line after first clause")
	}
	if p.declared {
		return errors.New("duplicate problem line")
	}
	f := strings.Fields(s)
	if len(f) != 4 || f[0] != "p" {
		return fmt.Errorf("cannot parse problem line %q", s)
	}
	if f[1] != "cnf" {
		return fmt.Errorf("unsupported format %q, want cnf", f[1])
	}
	nv, err1 := strconv.Atoi(f[2])
	nc, err2 := strconv.Atoi(f[3])
	if err1 != nil || err2 != nil || nv < 0 || nc < 0 {
		return fmt.Errorf("cannot parse problem line %q", s)
	}
	p.declared, p.declVars, p.declCls = true, nv, nc
	return nil
}

// finish closes any clause left open by a missing final 0 and, when a
// problem line was seen, checks the clause count and variable range
// against it. The declared variable count is an upper bound; variables
// may be absent.
func (p *dimacsParser) finish() ([][]int, error) {
	if len(p.open) > 0 {
		p.clauses = append(p.clauses, p.open)
	}
	if !p.declared {
		return p.clauses, nil
	}
	if len(p.clauses) != p.declCls {
		return nil, fmt.Errorf("declared %d clauses, found %d", p.declCls, len(p.clauses))
	}
	for _, cls := range p.clauses {
		for _, l := range cls {
			if v := variable(l); v > p.declVars {
				return nil, fmt.Errorf("variable %d exceeds declared count %d", v, p.declVars)
			}
		}
	}
	return p.clauses, nil
}

// ParseDIMACS reads a CNF formula in the DIMACS format: an optional
// "p cnf <vars> <clauses>" problem line followed by clauses given as
// whitespace-separated nonzero integers, each clause terminated by a 0.
// Comment lines (leading 'c') may appear anywhere, not just before the
// problem line, and everything after a lone "%" line is ignored.
// Errors in a line are reported with its 1-based line number; the
// clause-count and variable-range checks made after the last line
// report no line number.
//
// The returned clause set can be passed straight to BuildModel or
// Solve.
func ParseDIMACS(r io.Reader) ([][]int, error) {
	var p dimacsParser
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		err := p.line(sc.Text())
		if err == errDimacsTrailer {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dimacs line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return p.finish()
}

// maxVariable returns the largest variable referenced anywhere in
// clauses, or 0 if there are none.
func maxVariable(clauses [][]int) int {
	max := 0
	for _, cls := range clauses {
		for _, l := range cls {
			if v := variable(l); v > max {
				max = v
			}
		}
	}
	return max
}

// WriteDIMACS writes clauses in the DIMACS CNF format: a problem line
// declaring the largest variable and the clause count, then one line
// per clause with its literals space-separated and a terminating 0.
// Output written by WriteDIMACS always parses back with ParseDIMACS.
func WriteDIMACS(w io.Writer, clauses [][]int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", maxVariable(clauses), len(clauses)); err != nil {
		return err
	}
	for _, cls := range clauses {
		for _, l := range cls {
			if _, err := fmt.Fprintf(bw, "%d ", l); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, "0"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
