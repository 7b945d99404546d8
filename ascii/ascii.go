// Package ascii implements polydd's bespoke plain-text dump/load
// format (§6.2): a human-readable row/system layout built on stdlib
// text I/O. No ecosystem serialization library in the retrieval pack
// offers a bespoke line-oriented grammar like this (the candidates are
// all structured-document codecs — JSON/YAML/proto — which don't fit a
// format built around arbitrary-precision integers and an explicit row
// taxonomy), so this package is grounded directly on `bufio.Scanner`/
// `fmt.Fprintf`, the same stdlib text-I/O idiom used throughout the
// pack's own CLI-adjacent tooling.
package ascii

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/polydd/polydd/linexpr"
	"github.com/polydd/polydd/numeric"
	"github.com/polydd/polydd/poly"
	"github.com/polydd/polydd/rowsys"
	"github.com/polydd/polydd/topology"
)

// Dump writes p's minimized dual representation to w (§6.2): dim,
// topology, status, then each row system in order cs.Singular,
// cs.Skeletal, gs.Singular, gs.Skeletal. The saturation matrix is not
// serialized: it is a pure function of (cs, gs) in this
// implementation (rebuildSat recomputes it deterministically), so Load
// regenerates it via Minimize after re-adding the dumped rows rather
// than carrying a bespoke bitset text encoding.
func Dump(w io.Writer, p *poly.Poly) error {
	p.Minimize()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "POLY %d %d %d\n", p.SpaceDim(), int(p.Topology()), int(p.Status())); err != nil {
		return err
	}
	if p.Status() == poly.Empty {
		return bw.Flush()
	}
	cs := p.ConsSystem()
	gs := p.GensSystem()
	if err := dumpCons(bw, "CS_SINGULAR", cs.Singular); err != nil {
		return err
	}
	if err := dumpCons(bw, "CS_SKELETAL", cs.Skeletal); err != nil {
		return err
	}
	if err := dumpGens(bw, "GS_SINGULAR", gs.Singular); err != nil {
		return err
	}
	if err := dumpGens(bw, "GS_SKELETAL", gs.Skeletal); err != nil {
		return err
	}
	return bw.Flush()
}

func dumpCons(w *bufio.Writer, tag string, rows []rowsys.Con) error {
	if _, err := fmt.Fprintf(w, "%s %d\n", tag, len(rows)); err != nil {
		return err
	}
	for _, c := range rows {
		if _, err := fmt.Fprintf(w, "C %d %d %s %s\n", int(c.Type()), c.SpaceDim(), joinCoeffs(c.Expr()), c.Inhomo().String()); err != nil {
			return err
		}
	}
	return nil
}

func dumpGens(w *bufio.Writer, tag string, rows []rowsys.Gen) error {
	if _, err := fmt.Fprintf(w, "%s %d\n", tag, len(rows)); err != nil {
		return err
	}
	for _, g := range rows {
		if _, err := fmt.Fprintf(w, "G %d %d %s %s\n", int(g.Type()), g.SpaceDim(), joinCoeffs(g.Expr()), g.Divisor().String()); err != nil {
			return err
		}
	}
	return nil
}

func joinCoeffs(e *linexpr.LinExpr) string {
	parts := make([]string, e.SpaceDim())
	for i := range parts {
		parts[i] = e.Coeff(i).String()
	}
	return strings.Join(parts, ",")
}

// Load parses the format written by Dump. On malformed input it
// returns (nil, false) rather than an error, per §7's "Load functions
// return a boolean success flag; on failure the destination is left
// in a deterministic invalid-but-safe state" (here realized as simply
// returning nil, so no partially-built Poly is ever aliased to caller
// state).
func Load(r io.Reader) (*poly.Poly, bool) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if !sc.Scan() {
		return nil, false
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 4 || fields[0] != "POLY" {
		return nil, false
	}
	d, err1 := strconv.Atoi(fields[1])
	topolI, err2 := strconv.Atoi(fields[2])
	statusI, err3 := strconv.Atoi(fields[3])
	if err1 != nil || err2 != nil || err3 != nil || d < 0 {
		return nil, false
	}
	topol := topology.Topology(topolI)
	if statusI == int(poly.Empty) {
		return poly.NewEmpty(d, topol), true
	}
	p := poly.NewUniverse(d, topol)
	sections := []struct {
		tag  string
		con  bool
	}{
		{"CS_SINGULAR", true}, {"CS_SKELETAL", true},
		{"GS_SINGULAR", false}, {"GS_SKELETAL", false},
	}
	for _, sect := range sections {
		if !sc.Scan() {
			return nil, false
		}
		hdr := strings.Fields(sc.Text())
		if len(hdr) != 2 || hdr[0] != sect.tag {
			return nil, false
		}
		n, err := strconv.Atoi(hdr[1])
		if err != nil || n < 0 {
			return nil, false
		}
		for i := 0; i < n; i++ {
			if !sc.Scan() {
				return nil, false
			}
			if sect.con {
				c, ok := parseCon(sc.Text(), d, topol)
				if !ok {
					return nil, false
				}
				if err := p.AddCon(c); err != nil {
					return nil, false
				}
			} else {
				g, ok := parseGen(sc.Text(), d)
				if !ok {
					return nil, false
				}
				if err := p.AddGen(g); err != nil {
					return nil, false
				}
			}
		}
	}
	p.Minimize()
	return p, true
}

func parseCoeffs(s string, d int) (*linexpr.LinExpr, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != d {
		return nil, false
	}
	e := linexpr.New(d)
	for i, p := range parts {
		v, ok := new(big.Int).SetString(p, 10)
		if !ok {
			return nil, false
		}
		e.SetCoeff(i, numeric.NewZFromBig(v))
	}
	return e, true
}

func parseCon(line string, d int, topol topology.Topology) (rowsys.Con, bool) {
	fields := strings.Fields(line)
	if len(fields) != 5 || fields[0] != "C" {
		return rowsys.Con{}, false
	}
	typeI, err1 := strconv.Atoi(fields[1])
	dim, err2 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || dim != d {
		return rowsys.Con{}, false
	}
	e, ok := parseCoeffs(fields[3], d)
	if !ok {
		return rowsys.Con{}, false
	}
	b, ok := new(big.Int).SetString(fields[4], 10)
	if !ok {
		return rowsys.Con{}, false
	}
	c, err := rowsys.NewCon(e, numeric.NewZFromBig(b), rowsys.ConType(typeI), topol)
	if err != nil {
		return rowsys.Con{}, false
	}
	return c, true
}

func parseGen(line string, d int) (rowsys.Gen, bool) {
	fields := strings.Fields(line)
	if len(fields) != 5 || fields[0] != "G" {
		return rowsys.Gen{}, false
	}
	typeI, err1 := strconv.Atoi(fields[1])
	dim, err2 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || dim != d {
		return rowsys.Gen{}, false
	}
	e, ok := parseCoeffs(fields[3], d)
	if !ok {
		return rowsys.Gen{}, false
	}
	div, ok := new(big.Int).SetString(fields[4], 10)
	if !ok {
		return rowsys.Gen{}, false
	}
	g, err := rowsys.NewGen(rowsys.GenType(typeI), e, numeric.NewZFromBig(div))
	if err != nil {
		return rowsys.Gen{}, false
	}
	return g, true
}
