package fpoly

import "github.com/polydd/polydd/numeric"

// Itv is a proper (i.e. not yet promoted into a block) interval over Q
// (§4.5.2): bounds are Q or +/-infinity, flagged by *Inf.
type Itv struct {
	LoInf bool
	Lo    numeric.Q
	HiInf bool
	Hi    numeric.Q
}

// Unbounded returns (-inf, +inf).
func Unbounded() Itv {
	return Itv{LoInf: true, HiInf: true}
}

// IsEmpty reports whether the interval is empty (lo > hi, both finite).
func (a Itv) IsEmpty() bool {
	if a.LoInf || a.HiInf {
		return false
	}
	return a.Lo.Cmp(a.Hi) > 0
}

// Lub returns the least upper bound (interval hull) of a and b.
func (a Itv) Lub(b Itv) Itv {
	out := Itv{}
	if a.LoInf || b.LoInf {
		out.LoInf = true
	} else if a.Lo.Cmp(b.Lo) <= 0 {
		out.Lo = a.Lo
	} else {
		out.Lo = b.Lo
	}
	if a.HiInf || b.HiInf {
		out.HiInf = true
	} else if a.Hi.Cmp(b.Hi) >= 0 {
		out.Hi = a.Hi
	} else {
		out.Hi = b.Hi
	}
	return out
}

// Glb returns the intersection of a and b.
func (a Itv) Glb(b Itv) Itv {
	out := Itv{}
	if a.LoInf {
		out.LoInf, out.Lo = b.LoInf, b.Lo
	} else if b.LoInf {
		out.LoInf, out.Lo = false, a.Lo
	} else if a.Lo.Cmp(b.Lo) >= 0 {
		out.Lo = a.Lo
	} else {
		out.Lo = b.Lo
	}
	if a.HiInf {
		out.HiInf, out.Hi = b.HiInf, b.Hi
	} else if b.HiInf {
		out.HiInf, out.Hi = false, a.Hi
	} else if a.Hi.Cmp(b.Hi) <= 0 {
		out.Hi = a.Hi
	} else {
		out.Hi = b.Hi
	}
	return out
}

// Translate shifts a by delta.
func (a Itv) Translate(delta numeric.Q) Itv {
	out := a
	if !out.LoInf {
		out.Lo = out.Lo.Add(delta)
	}
	if !out.HiInf {
		out.Hi = out.Hi.Add(delta)
	}
	return out
}

// Widen applies H79-style widening pointwise: a bound that b no longer
// confirms is dropped to infinity.
func (a Itv) Widen(b Itv) Itv {
	out := a
	if !a.LoInf && (b.LoInf || b.Lo.Cmp(a.Lo) < 0) {
		out.LoInf = true
	}
	if !a.HiInf && (b.HiInf || b.Hi.Cmp(a.Hi) > 0) {
		out.HiInf = true
	}
	return out
}
