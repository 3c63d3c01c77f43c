package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/svgdsl/svgdsl/pathlang/ast"
)

// forRangeLabel renders `for (i in start..end)` for the annotator trace,
// per spec.md section 4.11.
func forRangeLabel(n *ast.ForRange) string {
	return fmt.Sprintf("for (%s in %s..%s)", n.Var, exprSource(n.Start), exprSource(n.End))
}

func forEachLabel(n *ast.ForEach) string {
	binding := n.ItemVar
	if n.IndexVar != "" {
		binding = fmt.Sprintf("[%s, %s]", n.ItemVar, n.IndexVar)
	}
	return fmt.Sprintf("for (%s in %s)", binding, exprSource(n.Iterable))
}

// exprSource renders a best-effort source-like form of e, used only for
// trace labels; it does not need to be a faithful unparser.
func exprSource(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.NumberLiteral:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	case *ast.StringLiteral:
		return "'" + n.Value + "'"
	case *ast.Identifier:
		return n.Name
	case *ast.BinaryExpression:
		return exprSource(n.Left) + " " + n.Op.String() + " " + exprSource(n.Right)
	case *ast.UnaryExpression:
		return n.Op.String() + exprSource(n.Operand)
	case *ast.CalcExpression:
		return "calc(" + exprSource(n.Inner) + ")"
	case *ast.Index:
		return exprSource(n.Receiver) + "[" + exprSource(n.IndexExp) + "]"
	case *ast.Property:
		return exprSource(n.Receiver) + "." + n.Name
	case *ast.FunctionCall:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = exprSource(a)
		}
		return exprSource(n.Callee) + "(" + strings.Join(args, ", ") + ")"
	case *ast.NullLiteral:
		return "null"
	default:
		return "<expr>"
	}
}

// callLabel renders `name(arg1, arg2, ...)` for the annotator's call
// trace.
func callLabel(name string, args []ast.Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = exprSource(a)
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(parts, ", "))
}
