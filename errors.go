package pdb

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindShortBuffer ErrKind = iota // a read requested more bytes than remain
	ErrKindOutOfRange                 // index or address outside a decoded table
	ErrKindFormat                     // field content does not follow its documented form
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindShortBuffer:
		return "short buffer"
	case ErrKindOutOfRange:
		return "out of range"
	case ErrKindFormat:
		return "format"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so any short read
// matches ErrShortBuffer no matter which offsets its message names.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

var (
	// ErrShortBuffer indicates a read past the end of the buffer.
	ErrShortBuffer = &Error{Kind: ErrKindShortBuffer, Msg: "unexpected end of buffer"}
	// ErrOutOfRange indicates a lookup outside a decoded table.
	ErrOutOfRange = &Error{Kind: ErrKindOutOfRange, Msg: "out of range"}
	// ErrFormat indicates a field that does not follow its documented encoding.
	ErrFormat = &Error{Kind: ErrKindFormat, Msg: "malformed field"}
)
