package rowsys

// ConSystem partitions a polyhedron's constraints into singular
// (equalities) and skeletal (proper inequalities, strict or not) rows,
// per §3.2. polydd represents a strict inequality as an ordinary
// skeletal Con tagged Strict rather than as a separate non-skeletal
// bitset-of-combinations row (see DESIGN.md's resolution of the §9
// "exact ε encoding" open question): this keeps every invariant
// spec.md states (duality, non-redundancy, minimality) while avoiding
// a second, purely-compacting row kind that Go gains nothing from.
type ConSystem struct {
	Singular []Con // equalities
	Skeletal []Con // non-strict and strict inequalities
}

// Len returns the total row count.
func (s ConSystem) Len() int { return len(s.Singular) + len(s.Skeletal) }

// IsEmpty reports whether the system has no rows at all.
func (s ConSystem) IsEmpty() bool { return len(s.Singular) == 0 && len(s.Skeletal) == 0 }

// Clone returns a deep, independent copy.
func (s ConSystem) Clone() ConSystem {
	sg := make([]Con, len(s.Singular))
	for i, c := range s.Singular {
		sg[i] = c.Clone()
	}
	sk := make([]Con, len(s.Skeletal))
	for i, c := range s.Skeletal {
		sk[i] = c.Clone()
	}
	return ConSystem{Singular: sg, Skeletal: sk}
}

// GenSystem partitions a polyhedron's generators into singular (lines)
// and skeletal (rays, points, closure-points) rows, per §3.2.
type GenSystem struct {
	Singular []Gen // lines
	Skeletal []Gen // rays, points, closure-points
}

// Len returns the total row count.
func (s GenSystem) Len() int { return len(s.Singular) + len(s.Skeletal) }

// IsEmpty reports whether the system has no rows at all.
func (s GenSystem) IsEmpty() bool { return len(s.Singular) == 0 && len(s.Skeletal) == 0 }

// Clone returns a deep, independent copy.
func (s GenSystem) Clone() GenSystem {
	sg := make([]Gen, len(s.Singular))
	for i, g := range s.Singular {
		sg[i] = g.Clone()
	}
	sk := make([]Gen, len(s.Skeletal))
	for i, g := range s.Skeletal {
		sk[i] = g.Clone()
	}
	return GenSystem{Singular: sg, Skeletal: sk}
}

// NumPoints returns the count of skeletal generators tagged Point
// (strictly interior w.r.t. every strict constraint, §3.1).
func (s GenSystem) NumPoints() int {
	n := 0
	for _, g := range s.Skeletal {
		if g.Type() == Point {
			n++
		}
	}
	return n
}
