package poly

import (
	"github.com/polydd/polydd/bitset"
	"github.com/polydd/polydd/linexpr"
	"github.com/polydd/polydd/numeric"
	"github.com/polydd/polydd/rowsys"
	"github.com/polydd/polydd/satmatrix"
	"github.com/polydd/polydd/topology"
)

// AddCon appends c to the pending constraint batch (§4.3 add_con).
// Precondition: c.SpaceDim() == p.SpaceDim().
func (p *Poly) AddCon(c rowsys.Con) error {
	if c.SpaceDim() != p.d {
		return ErrSpaceDimMismatch
	}
	p.pendingCons = append(p.pendingCons, c)
	if p.status == Min {
		p.status = Pending
	}
	return nil
}

// AddCons appends every row of cs to the pending constraint batch.
func (p *Poly) AddCons(cs []rowsys.Con) error {
	for _, c := range cs {
		if err := p.AddCon(c); err != nil {
			return err
		}
	}
	return nil
}

// AddGen appends g to the pending generator batch (§4.3 add_gen).
// Precondition: g.SpaceDim() == p.SpaceDim().
func (p *Poly) AddGen(g rowsys.Gen) error {
	if g.SpaceDim() != p.d {
		return ErrSpaceDimMismatch
	}
	p.pendingGens = append(p.pendingGens, g)
	if p.status == Min {
		p.status = Pending
	}
	return nil
}

// AddGens appends every row of gens to the pending generator batch.
func (p *Poly) AddGens(gens []rowsys.Gen) error {
	for _, g := range gens {
		if err := p.AddGen(g); err != nil {
			return err
		}
	}
	return nil
}

// Minimize incorporates every pending row via the conversion algorithm
// of §4.2, bringing p to Min or Empty (§4.8).
func (p *Poly) Minimize() {
	if p.status == Min || p.status == Empty && len(p.pendingGens) == 0 {
		return
	}
	if p.status == Empty {
		p.bootstrapFromPendingGens()
	}
	if p.status != Empty {
		for len(p.pendingCons) > 0 {
			c := p.pendingCons[0]
			p.pendingCons = p.pendingCons[1:]
			p.incorporateCon(c)
			if p.status == Empty {
				p.pendingCons = nil
				break
			}
		}
	}
	if p.status != Empty {
		for len(p.pendingGens) > 0 {
			g := p.pendingGens[0]
			p.pendingGens = p.pendingGens[1:]
			p.incorporateGen(g)
		}
	}
	if p.status != Empty {
		p.status = Min
		p.checkNNCEmptiness()
	}
}

// bootstrapFromPendingGens handles the Empty -> non-Empty transition:
// an empty polyhedron gains content only once its pending generators
// include at least one Point (§4.3: "generators must contain at least
// one point for a previously-empty polyhedron").
func (p *Poly) bootstrapFromPendingGens() {
	hasPoint := false
	for _, g := range p.pendingGens {
		if g.Type() == rowsys.Point {
			hasPoint = true
			break
		}
	}
	if !hasPoint {
		p.pendingGens = nil
		return
	}
	// seed with the first point as the sole generator, pinned by one
	// equality per dimension, and remove it from the pending batch; the
	// normal incremental path then absorbs the rest.
	var first rowsys.Gen
	idx := -1
	for i, g := range p.pendingGens {
		if g.Type() == rowsys.Point {
			first = g
			idx = i
			break
		}
	}
	p.gs = rowsys.GenSystem{Skeletal: []rowsys.Gen{first}}
	p.cs = rowsys.ConSystem{Singular: pinningEqs(first, p.d, p.topol)}
	p.sat = satmatrix.New(1, 0)
	p.pendingGens = append(p.pendingGens[:idx], p.pendingGens[idx+1:]...)
	p.status = Pending
}

// pinningEqs builds the dual equalities of a single point: x_i ==
// point[i] for every coordinate, i.e. div*x_i - expr_i == 0, so the
// seeded constraint system actually denotes {point} rather than the
// universe.
func pinningEqs(point rowsys.Gen, d int, topol topology.Topology) []rowsys.Con {
	div := point.Divisor()
	eqs := make([]rowsys.Con, d)
	for i := 0; i < d; i++ {
		e := linexpr.New(d)
		e.SetCoeff(i, div)
		eq, _ := rowsys.NewCon(e, point.Expr().Coeff(i).Neg(), rowsys.Eq, topol)
		eqs[i] = eq
	}
	return eqs
}

func (p *Poly) incorporateCon(c rowsys.Con) {
	switch c.Type() {
	case rowsys.Eq:
		pos := c
		neg, _ := rowsys.NewCon(c.Expr().Neg(), c.Inhomo().Neg(), rowsys.Nonstrict, p.topol)
		posIneq, _ := rowsys.NewCon(pos.Expr(), pos.Inhomo(), rowsys.Nonstrict, p.topol)
		if empty := p.addIneqSkeleton(posIneq); empty {
			p.setEmptyInPlace()
			return
		}
		if empty := p.addIneqSkeleton(neg); empty {
			p.setEmptyInPlace()
			return
		}
		p.cs.Singular = append(p.cs.Singular, c)
	default:
		if empty := p.addIneqSkeleton(c); empty {
			p.setEmptyInPlace()
			return
		}
		p.cs.Skeletal = append(p.cs.Skeletal, c)
	}
	p.rebuildSat()
}

func (p *Poly) incorporateGen(g rowsys.Gen) {
	switch g.Type() {
	case rowsys.Line:
		rayPlus, _ := rowsys.NewGen(rowsys.Ray, g.Expr(), numericZero())
		rayMinus, _ := rowsys.NewGen(rowsys.Ray, g.Expr().Neg(), numericZero())
		p.addSkelGenIncremental(rayPlus)
		p.addSkelGenIncremental(rayMinus)
		p.gs.Singular = append(p.gs.Singular, g)
	default:
		p.addSkelGenIncremental(g)
	}
	p.rebuildSat()
}

// checkNNCEmptiness implements the simplified NNC feasibility check
// documented in DESIGN.md: an NNC polyhedron with ambient dim > 0 and
// at least one constraint or skeletal row must retain at least one
// Point-typed generator (ε strictly positive) to be non-empty; lacking
// one (only closure-points/rays survive) means every candidate
// interior has been pinched away by a strict constraint, so the
// polyhedron is treated as empty. This sidesteps the exact-LP-feasibility
// test real NNC engines run, consistent with spec.md's explicit
// "not a linear-programming solver" non-goal.
func (p *Poly) checkNNCEmptiness() {
	if p.topol != topology.NNC {
		return
	}
	if p.gs.IsEmpty() {
		return
	}
	if len(p.gs.Skeletal) == 0 {
		return
	}
	for _, g := range p.gs.Skeletal {
		if g.Type() == rowsys.Point {
			return
		}
	}
	p.setEmptyInPlace()
}

// --- generator-side update driven by a new pending constraint -------

// addIneqSkeleton incorporates a single non-equality constraint c into
// p.gs (lines then skeleton rays/points/closure-points, §4.2 steps
// 3-6). It never touches p.cs. Returns true if the generator system
// becomes entirely empty (the polyhedron has no content left).
func (p *Poly) addIneqSkeleton(c rowsys.Con) bool {
	oldSat := p.sat
	lines := make([]rowsys.Gen, len(p.gs.Singular))
	copy(lines, p.gs.Singular)
	spLines := make([]numeric.Z, len(lines))
	for i, l := range lines {
		spLines[i] = c.ScalarProduct(l.Expr(), numericZero())
	}

	var bad []int
	for i, sp := range spLines {
		if !sp.IsZero() {
			bad = append(bad, i)
		}
	}
	removedLines := make(map[int]bool)
	for len(bad) > 1 {
		i, j := bad[0], bad[1]
		li, lj := lines[i], lines[j]
		spi, spj := spLines[i], spLines[j]
		newExpr := li.Expr().Clone()
		newExpr.ScaleInPlace(spj)
		sub := lj.Expr().Clone()
		sub.ScaleInPlace(spi)
		newExpr = newExpr.Add(sub.Neg())
		nl, _ := rowsys.NewGen(rowsys.Line, newExpr, numericZero())
		lines[i] = nl
		spLines[i] = numeric.ZeroZ()
		removedLines[j] = true
		bad = bad[1:]
	}

	skel := make([]rowsys.Gen, len(p.gs.Skeletal))
	copy(skel, p.gs.Skeletal)
	spSkel := make([]numeric.Z, len(skel))
	for i, g := range skel {
		spSkel[i] = c.ScalarProduct(g.Expr(), g.Divisor())
	}

	if len(bad) == 1 {
		lstar := lines[bad[0]]
		spStar := spLines[bad[0]]
		for i, g := range skel {
			if spSkel[i].IsZero() {
				continue
			}
			skel[i] = combineGenAlongLine(g, spSkel[i], lstar, spStar)
			spSkel[i] = numeric.ZeroZ()
		}
		// Eliminating the line would otherwise drop its content on the
		// floor: replant it as the ray that still points into c's
		// half-space.
		dir := lstar.Expr().Clone()
		if spStar.Sign() < 0 {
			dir = dir.Neg()
		}
		newRay, _ := rowsys.NewGen(rowsys.Ray, dir, numericZero())
		skel = append(skel, newRay)
		spSkel = append(spSkel, spStar.Abs())
		removedLines[bad[0]] = true
	}

	var keptLines []rowsys.Gen
	for i, l := range lines {
		if !removedLines[i] {
			keptLines = append(keptLines, l)
		}
	}

	var plusIdx, zeroIdx, minusIdx []int
	for i, sp := range spSkel {
		switch {
		case sp.Sign() > 0:
			plusIdx = append(plusIdx, i)
		case sp.Sign() < 0:
			minusIdx = append(minusIdx, i)
		default:
			zeroIdx = append(zeroIdx, i)
		}
	}

	if len(minusIdx) == 0 {
		demoteBoundaryPoints(skel, zeroIdx, c, p.topol)
		p.gs.Singular = keptLines
		p.gs.Skeletal = skel
		return len(keptLines) == 0 && len(skel) == 0
	}

	if len(plusIdx) == 0 && len(zeroIdx) == 0 && len(keptLines) == 0 {
		return true
	}

	numOldCons := 0
	if oldSat != nil {
		numOldCons = oldSat.NumCols()
	}
	zsat := func(i int) *bitset.Set {
		s := bitset.New(numOldCons)
		if oldSat == nil || i >= oldSat.NumRows() {
			return s
		}
		for col := 0; col < numOldCons; col++ {
			if !oldSat.Get(i, col) {
				s.Set(col)
			}
		}
		return s
	}
	allIdx := append(append(append([]int{}, plusIdx...), zeroIdx...), minusIdx...)
	zsats := make(map[int]*bitset.Set, len(allIdx))
	for _, i := range allIdx {
		zsats[i] = zsat(i)
	}
	isAdjacent := func(a, b int) bool {
		inter := bitset.Intersection(zsats[a], zsats[b])
		for _, k := range allIdx {
			if k == a || k == b {
				continue
			}
			if inter.SubsetOf(zsats[k]) {
				return false
			}
		}
		return true
	}

	demoteBoundaryPoints(skel, zeroIdx, c, p.topol)

	var result []rowsys.Gen
	for _, i := range plusIdx {
		result = append(result, skel[i])
	}
	for _, i := range zeroIdx {
		result = append(result, skel[i])
	}
	for _, im := range minusIdx {
		for _, ip := range plusIdx {
			if !isAdjacent(im, ip) {
				continue
			}
			ng := combineGens(skel[im], spSkel[im], skel[ip], spSkel[ip])
			if c.Type() == rowsys.Strict && ng.Type() == rowsys.Point {
				// The combination saturates c, so it lies on the
				// excluded boundary of the strict half-space.
				ng, _ = rowsys.NewGen(rowsys.ClosurePoint, ng.Expr(), ng.Divisor())
			}
			result = append(result, ng)
		}
	}

	p.gs.Singular = keptLines
	p.gs.Skeletal = result
	return len(keptLines) == 0 && len(result) == 0
}

// demoteBoundaryPoints converts any rowsys.Point among skel[zeroIdx]
// into a rowsys.ClosurePoint when c is a strict constraint (§3.1,
// §4.2 NNC handling): a point on the boundary of a strict half-space
// is no longer strictly interior.
func demoteBoundaryPoints(skel []rowsys.Gen, zeroIdx []int, c rowsys.Con, _ topology.Topology) {
	if c.Type() != rowsys.Strict {
		return
	}
	for _, i := range zeroIdx {
		if skel[i].Type() == rowsys.Point {
			ng, _ := rowsys.NewGen(rowsys.ClosurePoint, skel[i].Expr(), skel[i].Divisor())
			skel[i] = ng
		}
	}
}

// combineGenAlongLine returns a generator with the same type as g,
// translated along line l so that it saturates the constraint that
// produced spG/spL (§4.2 step 3, Gauss-like rotation specialized to a
// single surviving line).
func combineGenAlongLine(g rowsys.Gen, spG numeric.Z, l rowsys.Gen, spL numeric.Z) rowsys.Gen {
	newExpr := g.Expr().Clone()
	newExpr.ScaleInPlace(spL)
	sub := l.Expr().Clone()
	sub.ScaleInPlace(spG)
	newExpr = newExpr.Add(sub.Neg())
	newDiv := g.Divisor().Mul(spL)
	if newDiv.Sign() < 0 {
		newExpr = newExpr.Neg()
		newDiv = newDiv.Neg()
	}
	ng, _ := rowsys.NewGen(g.Type(), newExpr, newDiv)
	return ng
}

// combineGens builds the new skeletal generator from an adjacent
// (minus, plus) pair, |sp[minus]|*plus + |sp[plus]|*minus (§4.2 step 4),
// deriving the result's type from its divisor and its implicit ε
// weight (DESIGN.md's eps-as-virtual-coefficient resolution).
func combineGens(gm rowsys.Gen, spMinus numeric.Z, gp rowsys.Gen, spPlus numeric.Z) rowsys.Gen {
	a := spMinus.Abs()
	b := spPlus.Abs()

	newExpr := gp.Expr().Clone()
	newExpr.ScaleInPlace(a)
	other := gm.Expr().Clone()
	other.ScaleInPlace(b)
	newExpr = newExpr.Add(other)

	newDiv := gp.Divisor().Mul(a).Add(gm.Divisor().Mul(b))
	epsNew := genEps(gp).Mul(a).Add(genEps(gm).Mul(b))

	var t rowsys.GenType
	switch {
	case newDiv.IsZero():
		t = rowsys.Ray
	case epsNew.Sign() > 0:
		t = rowsys.Point
	default:
		t = rowsys.ClosurePoint
	}
	ng, _ := rowsys.NewGen(t, newExpr, newDiv)
	return ng
}

func genEps(g rowsys.Gen) numeric.Z {
	if g.Type() == rowsys.Point {
		return numeric.OneZ()
	}
	return numeric.ZeroZ()
}

// --- constraint-side update driven by a new pending generator -------

// addSkelGenIncremental incorporates a single Ray/Point/ClosurePoint
// generator g into p.cs (the literal dual of addIneqSkeleton, §4.2
// "Dual direction"). It never touches p.gs.
func (p *Poly) addSkelGenIncremental(g rowsys.Gen) {
	oldSat := p.sat
	eqs := make([]rowsys.Con, len(p.cs.Singular))
	copy(eqs, p.cs.Singular)
	spEqs := make([]numeric.Z, len(eqs))
	for i, eq := range eqs {
		spEqs[i] = g.ScalarProduct(eq.Expr(), eq.Inhomo())
	}

	var bad []int
	for i, sp := range spEqs {
		if !sp.IsZero() {
			bad = append(bad, i)
		}
	}
	removedEqs := make(map[int]bool)
	for len(bad) > 1 {
		i, j := bad[0], bad[1]
		ei, ej := eqs[i], eqs[j]
		spi, spj := spEqs[i], spEqs[j]
		newExpr := ei.Expr().Clone()
		newExpr.ScaleInPlace(spj)
		sub := ej.Expr().Clone()
		sub.ScaleInPlace(spi)
		newExpr = newExpr.Add(sub.Neg())
		newB := ei.Inhomo().Mul(spj).Sub(ej.Inhomo().Mul(spi))
		ne, _ := rowsys.NewCon(newExpr, newB, rowsys.Eq, p.topol)
		eqs[i] = ne
		spEqs[i] = numeric.ZeroZ()
		removedEqs[j] = true
		bad = bad[1:]
	}

	skel := make([]rowsys.Con, len(p.cs.Skeletal))
	copy(skel, p.cs.Skeletal)
	spSkel := make([]numeric.Z, len(skel))
	for i, c := range skel {
		spSkel[i] = c.ScalarProduct(g.Expr(), g.Divisor())
	}

	if len(bad) == 1 {
		eqStar := eqs[bad[0]]
		spStar := spEqs[bad[0]]
		for i, c := range skel {
			if spSkel[i].IsZero() {
				continue
			}
			skel[i] = combineConAlongEquality(c, spSkel[i], eqStar, spStar, p.topol)
			spSkel[i] = numeric.ZeroZ()
		}
		removedEqs[bad[0]] = true
	}

	var keptEqs []rowsys.Con
	for i, eq := range eqs {
		if !removedEqs[i] {
			keptEqs = append(keptEqs, eq)
		}
	}

	var plusIdx, zeroIdx, minusIdx []int
	for i, sp := range spSkel {
		switch {
		case sp.Sign() > 0:
			plusIdx = append(plusIdx, i)
		case sp.Sign() < 0:
			minusIdx = append(minusIdx, i)
		default:
			zeroIdx = append(zeroIdx, i)
		}
	}

	if len(minusIdx) == 0 {
		p.cs.Singular = keptEqs
		p.cs.Skeletal = skel
		return
	}

	numOldGens := 0
	if oldSat != nil {
		numOldGens = oldSat.NumRows()
	}
	zsat := func(j int) *bitset.Set {
		s := bitset.New(numOldGens)
		if oldSat == nil || j >= oldSat.NumCols() {
			return s
		}
		for row := 0; row < numOldGens; row++ {
			if !oldSat.Get(row, j) {
				s.Set(row)
			}
		}
		return s
	}
	allIdx := append(append(append([]int{}, plusIdx...), zeroIdx...), minusIdx...)
	zsats := make(map[int]*bitset.Set, len(allIdx))
	for _, j := range allIdx {
		zsats[j] = zsat(j)
	}
	isAdjacent := func(a, b int) bool {
		inter := bitset.Intersection(zsats[a], zsats[b])
		for _, k := range allIdx {
			if k == a || k == b {
				continue
			}
			if inter.SubsetOf(zsats[k]) {
				return false
			}
		}
		return true
	}

	var result []rowsys.Con
	for _, i := range plusIdx {
		result = append(result, skel[i])
	}
	for _, i := range zeroIdx {
		result = append(result, skel[i])
	}
	for _, im := range minusIdx {
		for _, ip := range plusIdx {
			if !isAdjacent(im, ip) {
				continue
			}
			result = append(result, combineCons(skel[im], spSkel[im], skel[ip], spSkel[ip], p.topol))
		}
	}

	p.cs.Singular = keptEqs
	p.cs.Skeletal = result
}

// combineConAlongEquality is the dual of combineGenAlongLine: it
// shifts constraint c by a multiple of equality eq so the result
// saturates the generator that produced spC/spEq, preserving c's type.
func combineConAlongEquality(c rowsys.Con, spC numeric.Z, eq rowsys.Con, spEq numeric.Z, topol topology.Topology) rowsys.Con {
	newExpr := c.Expr().Clone()
	newExpr.ScaleInPlace(spEq)
	sub := eq.Expr().Clone()
	sub.ScaleInPlace(spC)
	newExpr = newExpr.Add(sub.Neg())
	newB := c.Inhomo().Mul(spEq).Sub(eq.Inhomo().Mul(spC))
	nc, err := rowsys.NewCon(newExpr, newB, c.Type(), topol)
	if err != nil {
		nc, _ = rowsys.NewCon(newExpr, newB, rowsys.Nonstrict, topol)
	}
	return nc
}

// combineCons is the dual of combineGens: the tightest combination of
// a removed (minus) and kept (plus) constraint that the new generator
// saturates exactly, |sp[minus]|*plus + |sp[plus]|*minus. The result
// is Strict if either input is Strict (a strict bound dominates a
// non-strict one in any positively-weighted sum).
func combineCons(cm rowsys.Con, spMinus numeric.Z, cp rowsys.Con, spPlus numeric.Z, topol topology.Topology) rowsys.Con {
	a := spMinus.Abs()
	b := spPlus.Abs()

	newExpr := cp.Expr().Clone()
	newExpr.ScaleInPlace(a)
	other := cm.Expr().Clone()
	other.ScaleInPlace(b)
	newExpr = newExpr.Add(other)

	newB := cp.Inhomo().Mul(a).Add(cm.Inhomo().Mul(b))

	t := rowsys.Nonstrict
	if cm.Type() == rowsys.Strict || cp.Type() == rowsys.Strict {
		t = rowsys.Strict
	}
	nc, err := rowsys.NewCon(newExpr, newB, t, topol)
	if err != nil {
		nc, _ = rowsys.NewCon(newExpr, newB, rowsys.Nonstrict, topol)
	}
	return nc
}

// rebuildSat recomputes the saturation matrix from scratch against
// the current minimized row systems. polydd favors this full rebuild
// over incremental bit-surgery for implementation clarity; see
// DESIGN.md for the rationale (this trades the incremental-update
// performance spec.md's §4.2 step 6 describes for a much smaller,
// easier-to-verify implementation with identical observable results).
func (p *Poly) rebuildSat() {
	nRows := len(p.gs.Skeletal)
	nCols := len(p.cs.Skeletal)
	sat := satmatrix.New(nRows, nCols)
	for gi, g := range p.gs.Skeletal {
		for ci, c := range p.cs.Skeletal {
			sp := c.ScalarProduct(g.Expr(), g.Divisor())
			if sp.Sign() > 0 {
				sat.Set(gi, ci)
			}
		}
	}
	p.sat = sat
}
