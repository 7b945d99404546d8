package poly

import (
	"github.com/polydd/polydd/linexpr"
	"github.com/polydd/polydd/numeric"
)

func zeroExpr(d int) *linexpr.LinExpr { return linexpr.New(d) }

func unitExpr(d, i int) *linexpr.LinExpr {
	e := linexpr.New(d)
	e.SetCoeff(i, numeric.OneZ())
	return e
}

func numericZero() numeric.Z { return numeric.ZeroZ() }

func numericOne() numeric.Z { return numeric.OneZ() }
