package style

// ArithmeticError is the error type of length arithmetic.
type ArithmeticError uint8

// The two failure modes of length arithmetic.
const (
	// NonIdenticalVariants: the operands of same-kind arithmetic differ in kind.
	NonIdenticalVariants ArithmeticError = iota + 1
	// NonEvaluateable: an undefined or auto length cannot be resolved to pixels.
	NonEvaluateable
)

func (e ArithmeticError) Error() string {
	switch e {
	case NonIdenticalVariants:
		return "the variants of the lengths don't match"
	case NonEvaluateable:
		return "the given kind of length is not evaluateable (non-numeric)"
	}
	return "unknown length arithmetic error"
}

// --- Same-kind arithmetic --------------------------------------------------

// Add adds two lengths of the same kind. Pixels and percentages add up their
// amounts. Two undefined (or two auto) lengths yield the same undefined (auto)
// length again. Operands of different kinds result in NonIdenticalVariants.
func (l Length) Add(r Length) (Length, error) {
	if l.kind != r.kind {
		tracer().Debugf("cannot add %v and %v", l, r)
		return l, NonIdenticalVariants
	}
	switch l.kind {
	case KindUndefined, KindAuto:
		return l, nil
	case KindPx, KindPercent:
		return Length{amount: l.amount + r.amount, kind: l.kind}, nil
	}
	return l, NonIdenticalVariants
}

// Sub subtracts r from l. Rules are the same as for Add.
func (l Length) Sub(r Length) (Length, error) {
	if l.kind != r.kind {
		tracer().Debugf("cannot subtract %v from %v", r, l)
		return l, NonIdenticalVariants
	}
	switch l.kind {
	case KindUndefined, KindAuto:
		return l, nil
	case KindPx, KindPercent:
		return Length{amount: l.amount - r.amount, kind: l.kind}, nil
	}
	return l, NonIdenticalVariants
}

// AddAssign adds r to l in place. On error l is left unchanged.
func (l *Length) AddAssign(r Length) error {
	x, err := l.Add(r)
	if err != nil {
		return err
	}
	*l = x
	return nil
}

// SubAssign subtracts r from l in place. On error l is left unchanged.
func (l *Length) SubAssign(r Length) error {
	x, err := l.Sub(r)
	if err != nil {
		return err
	}
	*l = x
	return nil
}

// --- Scaling ---------------------------------------------------------------

// Scale multiplies the amount of a numeric length by f. Undefined and auto
// lengths are returned unchanged.
func (l Length) Scale(f float32) Length {
	switch l.kind {
	case KindPx, KindPercent:
		return Length{amount: l.amount * f, kind: l.kind}
	}
	return l
}

// Div divides the amount of a numeric length by f. Undefined and auto
// lengths are returned unchanged.
func (l Length) Div(f float32) Length {
	switch l.kind {
	case KindPx, KindPercent:
		return Length{amount: l.amount / f, kind: l.kind}
	}
	return l
}

// ScaleAssign scales l in place.
func (l *Length) ScaleAssign(f float32) {
	*l = l.Scale(f)
}

// DivAssign divides l in place.
func (l *Length) DivAssign(f float32) {
	*l = l.Div(f)
}

// --- Evaluated arithmetic --------------------------------------------------

// Evaluate resolves l to logical pixels. Pixel lengths resolve to their amount,
// independent of size. Percentages resolve to size * amount / 100.
// Undefined and auto lengths result in NonEvaluateable.
func (l Length) Evaluate(size float32) (float32, error) {
	switch l.kind {
	case KindPx:
		return l.amount, nil
	case KindPercent:
		return size * l.amount / 100, nil
	case KindUndefined, KindAuto:
		return 0, NonEvaluateable
	}
	return 0, NonEvaluateable
}

// AddWithSize evaluates l and r against the same reference size and adds the
// results. Mixed numeric kinds are fine; an undefined or auto operand results in
// NonEvaluateable.
func (l Length) AddWithSize(r Length, size float32) (float32, error) {
	a, err := l.Evaluate(size)
	if err != nil {
		return 0, err
	}
	b, err := r.Evaluate(size)
	if err != nil {
		return 0, err
	}
	return a + b, nil
}

// SubWithSize evaluates l and r against the same reference size and subtracts
// the results.
func (l Length) SubWithSize(r Length, size float32) (float32, error) {
	a, err := l.Evaluate(size)
	if err != nil {
		return 0, err
	}
	b, err := r.Evaluate(size)
	if err != nil {
		return 0, err
	}
	return a - b, nil
}

// AddAssignWithSize sets l to the pixel length l+r, evaluated against size.
// On error l is left unchanged.
func (l *Length) AddAssignWithSize(r Length, size float32) error {
	x, err := l.AddWithSize(r, size)
	if err != nil {
		return err
	}
	*l = Px(x)
	return nil
}

// SubAssignWithSize sets l to the pixel length l-r, evaluated against size.
// On error l is left unchanged.
func (l *Length) SubAssignWithSize(r Length, size float32) error {
	x, err := l.SubWithSize(r, size)
	if err != nil {
		return err
	}
	*l = Px(x)
	return nil
}

// EvaluateOr resolves l against size, returning d for undefined and auto
// lengths.
func (l Length) EvaluateOr(size, d float32) float32 {
	if x, err := l.Evaluate(size); err == nil {
		return x
	}
	return d
}
