package eval

import (
	"fmt"
	"math"

	"github.com/svgdsl/svgdsl/pathlang/geom"
	"github.com/svgdsl/svgdsl/pathlang/srcmap"
	"github.com/svgdsl/svgdsl/pathlang/stdlib"
	"github.com/svgdsl/svgdsl/pathlang/values"
)

// registerStdlib populates e.Global with the math/trig constants and
// functions, the path-shape generators, and the Point constructor, per
// spec.md section 4.8. Function results are always unit-None, matching the
// "no unit tracking through calls" rule.
func registerStdlib(e *Evaluator) {
	reg := func(name string, minArgs, maxArgs int, fn func(args []values.Value) (values.Value, error)) {
		e.Global.Declare(name, values.BuiltinValue(&values.Builtin{Name: name, MinArgs: minArgs, MaxArgs: maxArgs, Call: fn}))
	}

	unary := func(name string, f func(float64) float64) {
		reg(name, 1, 1, func(args []values.Value) (values.Value, error) {
			v, err := argNum(name, args, 0)
			if err != nil {
				return values.Value{}, err
			}
			return values.Plain(f(v)), nil
		})
	}
	binary := func(name string, f func(a, b float64) float64) {
		reg(name, 2, 2, func(args []values.Value) (values.Value, error) {
			a, err := argNum(name, args, 0)
			if err != nil {
				return values.Value{}, err
			}
			b, err := argNum(name, args, 1)
			if err != nil {
				return values.Value{}, err
			}
			return values.Plain(f(a, b)), nil
		})
	}

	unary("sin", math.Sin)
	unary("cos", math.Cos)
	unary("tan", math.Tan)
	unary("asin", math.Asin)
	unary("acos", math.Acos)
	unary("atan", math.Atan)
	binary("atan2", math.Atan2)
	unary("sinh", math.Sinh)
	unary("cosh", math.Cosh)
	unary("tanh", math.Tanh)
	unary("exp", math.Exp)
	// Natural "log" is omitted: the reserved word `log` always resolves to
	// the diagnostic log(values...) call (see evalLog), so the math
	// function of the same name from spec.md's list is unreachable by
	// construction; log10/log2 remain available.
	unary("log10", math.Log10)
	unary("log2", math.Log2)
	binary("pow", math.Pow)
	unary("sqrt", math.Sqrt)
	unary("cbrt", math.Cbrt)
	unary("floor", math.Floor)
	unary("ceil", math.Ceil)
	unary("round", math.Round)
	unary("trunc", math.Trunc)
	unary("abs", math.Abs)
	unary("sign", stdlib.Sign)

	reg("deg", 1, 1, func(args []values.Value) (values.Value, error) {
		v, err := argNum("deg", args, 0)
		if err != nil {
			return values.Value{}, err
		}
		return values.Plain(stdlib.Deg(v)), nil
	})
	reg("rad", 1, 1, func(args []values.Value) (values.Value, error) {
		v, err := argNum("rad", args, 0)
		if err != nil {
			return values.Value{}, err
		}
		return values.Plain(stdlib.Rad(v)), nil
	})

	reg("min", 1, -1, func(args []values.Value) (values.Value, error) {
		nums, err := argNums("min", args)
		if err != nil {
			return values.Value{}, err
		}
		return values.Plain(stdlib.Min(nums...)), nil
	})
	reg("max", 1, -1, func(args []values.Value) (values.Value, error) {
		nums, err := argNums("max", args)
		if err != nil {
			return values.Value{}, err
		}
		return values.Plain(stdlib.Max(nums...)), nil
	})

	reg("lerp", 3, 3, func(args []values.Value) (values.Value, error) {
		nums, err := argNums("lerp", args)
		if err != nil {
			return values.Value{}, err
		}
		return values.Plain(stdlib.Lerp(nums[0], nums[1], nums[2])), nil
	})
	reg("clamp", 3, 3, func(args []values.Value) (values.Value, error) {
		nums, err := argNums("clamp", args)
		if err != nil {
			return values.Value{}, err
		}
		return values.Plain(stdlib.Clamp(nums[0], nums[1], nums[2])), nil
	})
	reg("map", 5, 5, func(args []values.Value) (values.Value, error) {
		nums, err := argNums("map", args)
		if err != nil {
			return values.Value{}, err
		}
		return values.Plain(stdlib.Map(nums[0], nums[1], nums[2], nums[3], nums[4])), nil
	})

	e.Global.Declare("PI", values.Plain(stdlib.Pi))
	e.Global.Declare("E", values.Plain(stdlib.E))
	e.Global.Declare("TAU", values.Plain(stdlib.Tau))
	e.Global.Declare("mpi", values.Plain(stdlib.Pi))

	reg("random", 0, 0, func(args []values.Value) (values.Value, error) {
		return values.Plain(e.rng.Float64()), nil
	})
	reg("randomRange", 2, 2, func(args []values.Value) (values.Value, error) {
		nums, err := argNums("randomRange", args)
		if err != nil {
			return values.Value{}, err
		}
		return values.Plain(e.rng.Range(nums[0], nums[1])), nil
	})

	reg("Point", 2, 2, func(args []values.Value) (values.Value, error) {
		nums, err := argNums("Point", args)
		if err != nil {
			return values.Value{}, err
		}
		return values.PointValue(geom.Point{X: nums[0], Y: nums[1]}), nil
	})

	registerShape(e, reg, "circle", 3, func(n []float64) []stdlib.Cmd { return stdlib.Circle(n[0], n[1], n[2]) })
	registerShape(e, reg, "arc", 7, func(n []float64) []stdlib.Cmd {
		return stdlib.Arc(n[0], n[1], n[2], n[3], n[4], n[5], n[6])
	})
	registerShape(e, reg, "rect", 4, func(n []float64) []stdlib.Cmd { return stdlib.Rect(n[0], n[1], n[2], n[3]) })
	registerShape(e, reg, "roundRect", 5, func(n []float64) []stdlib.Cmd {
		return stdlib.RoundRect(n[0], n[1], n[2], n[3], n[4])
	})
	registerShapeN(e, reg, "polygon", 3, func(n []float64, count int) []stdlib.Cmd {
		return stdlib.Polygon(n[0], n[1], n[2], count)
	})
	registerShapeN(e, reg, "star", 4, func(n []float64, count int) []stdlib.Cmd {
		return stdlib.Star(n[0], n[1], n[2], n[3], count)
	})
	registerShape(e, reg, "line", 4, func(n []float64) []stdlib.Cmd { return stdlib.Line(n[0], n[1], n[2], n[3]) })
	registerShape(e, reg, "quadratic", 6, func(n []float64) []stdlib.Cmd {
		return stdlib.Quadratic(n[0], n[1], n[2], n[3], n[4], n[5])
	})
	registerShape(e, reg, "cubic", 8, func(n []float64) []stdlib.Cmd {
		return stdlib.Cubic(n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7])
	})
	registerShape(e, reg, "moveTo", 2, func(n []float64) []stdlib.Cmd { return stdlib.MoveTo(n[0], n[1]) })
	registerShape(e, reg, "lineTo", 2, func(n []float64) []stdlib.Cmd { return stdlib.LineTo(n[0], n[1]) })
	registerShape(e, reg, "closePath", 0, func(n []float64) []stdlib.Cmd { return stdlib.ClosePath() })
	registerShape(e, reg, "arcFromPolarOffset", 7, func(n []float64) []stdlib.Cmd {
		return stdlib.ArcFromPolarOffset(n[0], n[1], n[2], n[3], n[4], n[5], n[6])
	})
}

func argNum(name string, args []values.Value, i int) (float64, error) {
	if args[i].IsNull() {
		return 0, errArgf("%s: argument %d must not be null", name, i+1)
	}
	if !args[i].IsNumber() {
		return 0, errArgf("%s: argument %d must be a number, got %s", name, i+1, args[i].KindName())
	}
	return args[i].Num(), nil
}

func argNums(name string, args []values.Value) ([]float64, error) {
	out := make([]float64, len(args))
	for i := range args {
		v, err := argNum(name, args, i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

type argError struct{ msg string }

func (a *argError) Error() string { return a.msg }

func errArgf(format string, a ...any) error {
	return &argError{msg: fmt.Sprintf(format, a...)}
}

// registerShape wires a fixed-arity shape generator: evaluate its numeric
// arguments, drive the returned commands into the active context, and
// return the cursor's post-emission position as a Point.
func registerShape(e *Evaluator, reg func(string, int, int, func([]values.Value) (values.Value, error)), name string, arity int, gen func([]float64) []stdlib.Cmd) {
	e.shapeGenerators[name] = true
	reg(name, arity, arity, func(args []values.Value) (values.Value, error) {
		nums, err := argNums(name, args)
		if err != nil {
			return values.Value{}, err
		}
		ctx, ctxErr := e.activeContext(srcmap.Position{})
		if ctxErr != nil {
			return values.Value{}, ctxErr
		}
		for _, c := range gen(nums) {
			ctx.Emit(c.Letter, c.Args, e.fmtOpt, c.Flags)
			if e.Hooks.AfterEmit != nil {
				e.Hooks.AfterEmit(ctx.Tokens()[len(ctx.Tokens())-1])
			}
		}
		return values.PointValue(ctx.Position), nil
	})
}

// registerShapeN is registerShape for generators whose last argument (a
// side count) must be a positive integer.
func registerShapeN(e *Evaluator, reg func(string, int, int, func([]values.Value) (values.Value, error)), name string, fixedArity int, gen func([]float64, int) []stdlib.Cmd) {
	e.shapeGenerators[name] = true
	reg(name, fixedArity+1, fixedArity+1, func(args []values.Value) (values.Value, error) {
		nums, err := argNums(name, args[:fixedArity])
		if err != nil {
			return values.Value{}, err
		}
		countV, err := argNum(name, args, fixedArity)
		if err != nil {
			return values.Value{}, err
		}
		count := int(countV)
		if float64(count) != countV {
			return values.Value{}, errArgf("%s: side count must be an integer, got %v", name, countV)
		}
		ctx, ctxErr := e.activeContext(srcmap.Position{})
		if ctxErr != nil {
			return values.Value{}, ctxErr
		}
		for _, c := range gen(nums, count) {
			ctx.Emit(c.Letter, c.Args, e.fmtOpt, c.Flags)
			if e.Hooks.AfterEmit != nil {
				e.Hooks.AfterEmit(ctx.Tokens()[len(ctx.Tokens())-1])
			}
		}
		return values.PointValue(ctx.Position), nil
	})
}
