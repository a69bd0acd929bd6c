package lanes

// MinMaxRule selects how float Min and Max treat NaN and signed zero.
type MinMaxRule uint8

const (
	// MinMaxNumber returns the non-NaN operand when exactly one is NaN (IEEE minNum).
	MinMaxNumber MinMaxRule = iota

	// MinMaxX86 is minps/maxps: the first operand only if it is strictly
	// smaller (larger), otherwise the second. A NaN in either operand yields
	// the second operand.
	MinMaxX86

	// MinMaxPropagate returns NaN if either operand is NaN and orders -0 below +0.
	MinMaxPropagate
)

// ConvertRule selects the result of a float to int conversion that does not fit.
type ConvertRule uint8

const (
	// ConvertSaturate clamps to the integer range and converts NaN to 0.
	ConvertSaturate ConvertRule = iota

	// ConvertIndefinite yields the minimum integer (the x86 "integer
	// indefinite" value) for NaN and for anything out of range.
	ConvertIndefinite
)

// ShiftRule selects how shift counts at or beyond the lane width behave.
type ShiftRule uint8

const (
	// ShiftSaturate shifts every bit out: left and logical right shifts give 0,
	// arithmetic right shifts fill with the sign bit.
	ShiftSaturate ShiftRule = iota

	// ShiftModulo uses the count modulo the lane width.
	ShiftModulo
)

// ReduceOrder is the association order of a float horizontal reduction.
type ReduceOrder uint8

const (
	// ReduceHalving folds the upper half of the register onto the lower half
	// until one lane is left (movehl/extract style).
	ReduceHalving ReduceOrder = iota

	// ReduceAdjacent combines neighbouring lanes pairwise until one lane is
	// left (faddp style).
	ReduceAdjacent
)

// Rules is one engine's answer to every question the instruction sets disagree on.
type Rules struct {
	MinMax      MinMaxRule
	FusedMulAdd bool
	Convert     ConvertRule
	Shift       ShiftRule
	Reduce      ReduceOrder

	// AlignedFaults makes LoadAligned and StoreAligned panic on addresses
	// that are not RegisterBytes aligned.
	AlignedFaults bool

	// RegisterBytes is the native register size; 0 for the scalar engine.
	RegisterBytes int
}
