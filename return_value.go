package libemitter

// ReturnValue is the result of a single listener invocation. Defined is false
// when the listener returned nothing, which is distinct from returning a zero value.
type ReturnValue[R any] struct {
	Value   R
	Defined bool
}

// Defined wraps v as a defined return value.
func Defined[R any](v R) ReturnValue[R] {
	return ReturnValue[R]{Value: v, Defined: true}
}

// Get returns the value and whether it is defined.
func (r ReturnValue[R]) Get() (R, bool) {
	return r.Value, r.Defined
}

// FirstDefined scans values in order and returns the first defined one.
func FirstDefined[R any](values []ReturnValue[R]) (R, bool) {
	for _, v := range values {
		if v.Defined {
			return v.Value, true
		}
	}
	var zero R
	return zero, false
}
