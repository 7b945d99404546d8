// Command polydd demonstrates building a couple of canned polyhedra,
// round-tripping one through the ascii format, and printing their
// axis bounds.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/polydd/polydd/ascii"
	"github.com/polydd/polydd/linexpr"
	"github.com/polydd/polydd/numeric"
	"github.com/polydd/polydd/poly"
	"github.com/polydd/polydd/shapes"
	"github.com/polydd/polydd/topology"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	simplex, err := shapes.Simplex(3, topology.Closed)
	if err != nil {
		return fmt.Errorf("build simplex: %w", err)
	}
	orthant, err := shapes.Orthant(3, topology.Closed)
	if err != nil {
		return fmt.Errorf("build orthant: %w", err)
	}
	if err := orthant.IntersectionAssign(simplex); err != nil {
		return fmt.Errorf("intersect: %w", err)
	}

	var buf bytes.Buffer
	if err := ascii.Dump(&buf, orthant); err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	reloaded, ok := ascii.Load(bytes.NewReader(buf.Bytes()))
	if !ok {
		return fmt.Errorf("reload: malformed dump")
	}

	fmt.Fprintln(os.Stdout, "dumped polyhedron:")
	fmt.Fprint(os.Stdout, buf.String())

	for i := 0; i < reloaded.SpaceDim(); i++ {
		e := linexpr.New(reloaded.SpaceDim())
		e.SetCoeff(i, numeric.OneZ())
		lo := reloaded.MinBound(e, numeric.ZeroZ())
		hi := reloaded.MaxBound(e, numeric.ZeroZ())
		fmt.Fprintf(os.Stdout, "dim %d: [%s, %s]\n", i, boundString(lo), boundString(hi))
	}
	return nil
}

func boundString(b poly.Bound) string {
	if b.Unbounded {
		return "unbounded"
	}
	return b.Value.String()
}
