package eval

import (
	"strings"

	"github.com/svgdsl/svgdsl/pathlang/ast"
	"github.com/svgdsl/svgdsl/pathlang/pathctx"
	"github.com/svgdsl/svgdsl/pathlang/values"
)

// argCount is the number of numeric arguments each path command letter
// takes, keyed by its lowercase form.
var argCount = map[string]int{
	"m": 2, "l": 2, "h": 1, "v": 1, "c": 6, "s": 4, "q": 4, "t": 2, "a": 7, "z": 0,
}

// arcFlagIndices names the zero-based argument positions that are SVG arc
// flags, for the A/a command.
var arcFlagIndices = map[int]bool{3: true, 4: true}

func (e *Evaluator) execPathCommand(n *ast.PathCommand, env *values.Env) error {
	lower := strings.ToLower(n.Letter)
	isAbs := pathctx.IsAbsolute(n.Letter)

	ctx, err := e.activeContext(n.Pos())
	if err != nil {
		return err
	}

	if ctx.InPathBlock {
		if isAbs {
			return newError(KindPathBlockRestriction, n.Pos(), "absolute path command %q is not allowed inside a path block", n.Letter)
		}
	} else if e.inTextApply {
		return newError(KindLayerError, n.Pos(), "path commands are not allowed inside a text layer's apply block")
	} else if e.activeCtx == nil && e.defaultLayer != nil && e.defaultLayer.IsText {
		return newError(KindLayerError, n.Pos(), "bare path commands cannot route into the default text layer")
	}

	want, ok := argCount[lower]
	if !ok {
		return newError(KindTypeError, n.Pos(), "unknown path command %q", n.Letter)
	}
	if len(n.Args) != want {
		return newError(KindTypeError, n.Pos(), "path command %q expects %d argument(s), got %d", n.Letter, want, len(n.Args))
	}

	nums := make([]float64, len(n.Args))
	for i, argExpr := range n.Args {
		v, err := e.eval(argExpr, env)
		if err != nil {
			return err
		}
		if v.IsNull() {
			return newError(KindNullUsage, argExpr.Pos(), "null cannot be used as a path argument")
		}
		if !v.IsNumber() {
			return newError(KindTypeError, argExpr.Pos(), "path arguments must be numbers, got %s", v.KindName())
		}
		nums[i] = v.Num()
	}

	var flags map[int]bool
	if lower == "a" {
		flags = arcFlagIndices
	}
	ctx.Emit(n.Letter, nums, e.fmtOpt, flags)
	if e.Hooks.AfterEmit != nil {
		e.Hooks.AfterEmit(ctx.Tokens()[len(ctx.Tokens())-1])
	}
	return nil
}
