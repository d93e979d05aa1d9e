package convertutils

import "golang.org/x/exp/constraints"

// Integer is any signed or unsigned integer type.
type Integer interface {
	constraints.Integer
}

// Float is any floating-point type.
type Float interface {
	constraints.Float
}

// Number is any type the converter can parse and format.
type Number interface {
	Integer | Float
}
