package types

// IsInvalid reports whether the type is the invalid type.
func IsInvalid(t Type) bool {
	b, ok := t.(*Basic)
	return ok && b.Kind == Invalid
}

// IsBasic reports whether t is the basic type of the given kind.
func IsBasic(t Type, kind BasicKind) bool {
	b, ok := t.(*Basic)
	return ok && b.Kind == kind
}

// IsNumeric reports whether the type supports arithmetic.
func IsNumeric(t Type) bool {
	b, ok := t.(*Basic)
	if !ok {
		return false
	}

	switch b.Kind {
	case Int, Float, Money, Percent, Duration:
		return true
	}
	return false
}

// IsOrdered reports whether values of the type can be compared with
// "<" and friends.
func IsOrdered(t Type) bool {
	b, ok := t.(*Basic)
	if !ok {
		return false
	}

	switch b.Kind {
	case Int, Float, Money, Percent, Date, Duration, String:
		return true
	}
	return false
}

// AssignableTo reports whether a value of type t can be given to
// something declared as typ. Beyond type equality, an int fits where a
// float is expected, and anything admitted by a union fits the union.
// The invalid type fits everywhere so one error does not cascade.
func AssignableTo(t, typ Type) bool {
	if t == nil || typ == nil {
		return false
	}

	if IsInvalid(t) || IsInvalid(typ) {
		return true
	}

	if t.Equal(typ) {
		return true
	}

	if u, ok := typ.(*Union); ok {
		for _, alt := range u.Alts {
			if AssignableTo(t, alt) {
				return true
			}
		}
		return false
	}

	return IsBasic(t, Int) && IsBasic(typ, Float)
}
