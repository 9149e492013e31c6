package check

import "github.com/gongahkia/yuho-sub002/types"

func kindOf(t types.Type) (types.BasicKind, bool) {
	b, ok := t.(*types.Basic)
	if !ok {
		return types.Invalid, false
	}
	return b.Kind, true
}

// binaryResult returns the type of applying op to the operands, or nil
// when the operator does not accept them. Operands are never the
// invalid type here, the caller filters those out first.
func binaryResult(op string, lhs, rhs types.Type) types.Type {
	l, lok := kindOf(lhs)
	r, rok := kindOf(rhs)

	switch op {
	case "&&", "||":
		if lok && rok && l == types.Bool && r == types.Bool {
			return types.Typ[types.Bool]
		}
	case "==", "!=":
		if lhs.Equal(rhs) || numericPair(l, r, lok && rok) {
			return types.Typ[types.Bool]
		}
	case "<", ">", "<=", ">=":
		if types.IsOrdered(lhs) && (lhs.Equal(rhs) || numericPair(l, r, lok && rok)) {
			return types.Typ[types.Bool]
		}
	case "+":
		switch {
		case lok && rok && l == types.String && r == types.String:
			return types.Typ[types.String]
		case lok && rok && l == types.Date && r == types.Duration:
			return types.Typ[types.Date]
		case lok && rok && l == types.Duration && r == types.Date:
			return types.Typ[types.Date]
		default:
			return arithResult(l, r, lok && rok)
		}
	case "-":
		switch {
		case lok && rok && l == types.Date && r == types.Duration:
			return types.Typ[types.Date]
		case lok && rok && l == types.Date && r == types.Date:
			return types.Typ[types.Duration]
		default:
			return arithResult(l, r, lok && rok)
		}
	case "*":
		switch {
		case numericPair(l, r, lok && rok):
			return arithResult(l, r, true)
		case lok && rok && scales(l, r, types.Money):
			return types.Typ[types.Money]
		case lok && rok && (l == types.Money && r == types.Percent || l == types.Percent && r == types.Money):
			return types.Typ[types.Money]
		case lok && rok && scales(l, r, types.Duration):
			return types.Typ[types.Duration]
		}
	case "/":
		switch {
		case numericPair(l, r, lok && rok):
			return arithResult(l, r, true)
		case lok && rok && l == types.Money && (r == types.Int || r == types.Float):
			return types.Typ[types.Money]
		case lok && rok && l == types.Money && r == types.Money:
			return types.Typ[types.Float]
		case lok && rok && l == types.Duration && r == types.Int:
			return types.Typ[types.Duration]
		}
	case "%":
		if lok && rok && l == types.Int && r == types.Int {
			return types.Typ[types.Int]
		}
	}

	return nil
}

// numericPair reports whether both kinds are int or float.
func numericPair(l, r types.BasicKind, ok bool) bool {
	if !ok {
		return false
	}
	return (l == types.Int || l == types.Float) && (r == types.Int || r == types.Float)
}

// scales reports whether one side is the given kind and the other an
// int or float scaling it.
func scales(l, r, kind types.BasicKind) bool {
	if l == kind {
		return r == types.Int || r == types.Float
	}
	if r == kind {
		return l == types.Int || l == types.Float
	}
	return false
}

// arithResult is the type of adding, subtracting, multiplying or
// dividing two values of the same numeric family. Mixing int and float
// widens to float.
func arithResult(l, r types.BasicKind, ok bool) types.Type {
	if !ok {
		return nil
	}

	if numericPair(l, r, true) {
		if l == types.Float || r == types.Float {
			return types.Typ[types.Float]
		}
		return types.Typ[types.Int]
	}

	if l == r {
		switch l {
		case types.Money, types.Percent, types.Duration:
			return types.Typ[l]
		}
	}

	return nil
}
