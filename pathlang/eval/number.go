package eval

import (
	"github.com/svgdsl/svgdsl/pathlang/format"
)

func renderNumberWith(v float64, opt format.Options) string {
	return format.Number(v, opt)
}
