package ast

// These String methods are written by hand: they return each operator's
// source symbol (and a short lower-case name for each angle unit), not
// the Go constant's name.

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpLt:
		return "<"
	case OpLte:
		return "<="
	case OpGt:
		return ">"
	case OpGte:
		return ">="
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpMerge:
		return "<<"
	default:
		return "BinaryOp(?)"
	}
}

func (op UnaryOp) String() string {
	switch op {
	case OpNeg:
		return "-"
	case OpNot:
		return "!"
	default:
		return "UnaryOp(?)"
	}
}

func (u AngleUnit) String() string {
	switch u {
	case UnitNone:
		return "none"
	case UnitRad:
		return "rad"
	default:
		return "AngleUnit(?)"
	}
}
