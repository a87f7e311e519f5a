//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package types

// Value is a centipawn score, always from White's perspective when it
// comes out of an Evaluator and from the side-to-move's perspective
// inside the negamax search.
type Value int32

const (
	// ValueZero is a neutral/draw score.
	ValueZero Value = 0
	// ValueInf is larger in magnitude than any real evaluation or mate
	// score; used to seed alpha/beta at the search root.
	ValueInf Value = 32000
	// ValueMate is the magnitude of a mate score at ply 0: the side that
	// is mated scores -ValueMate plus the ply of the mate, the side that
	// mates ValueMate minus it, so shallower mates have larger magnitude.
	ValueMate Value = 31000
	// ValueMateThreshold is the magnitude above which a score is
	// considered mate-valued rather than a material/positional eval.
	ValueMateThreshold = ValueMate - 1000
	// ValueNone marks "no value computed", distinct from any legal score.
	ValueNone Value = -32001
)

// IsValid reports whether v falls within the representable score range.
func (v Value) IsValid() bool {
	return v >= -ValueInf && v <= ValueInf
}

// IsMate reports whether v's magnitude indicates a forced mate.
func (v Value) IsMate() bool {
	return v > ValueMateThreshold || v < -ValueMateThreshold
}

// ValueType is the bound kind a transposition table entry stores.
type ValueType int8

const (
	NoBound ValueType = iota
	Exact
	LowerBound
	UpperBound
	ValueTypeLength = 4
)

// IsValid reports whether vt is a recognized bound kind.
func (vt ValueType) IsValid() bool {
	return vt >= NoBound && vt < ValueTypeLength
}

var valueTypeToString = [ValueTypeLength]string{"NoBound", "Exact", "LowerBound", "UpperBound"}

// String returns a human readable name for the bound kind.
func (vt ValueType) String() string {
	return valueTypeToString[vt]
}
