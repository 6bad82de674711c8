package errs

// Error kinds shared by every layer. Concrete sentinels carry one of these so
// handlers only need to know the kind.
var (
	ErrNotFound       = New("not found")
	ErrValidation     = New("validation failed")
	ErrConflict       = New("conflict")
	ErrStateViolation = New("state violation")
	ErrPersistence    = New("persistence failure")

	ErrUnauthorized = New("unauthorized")
	ErrForbidden    = New("forbidden")
)

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string        { return e.msg }
func (e *kindError) Is(target error) bool { return target == e.kind }

// Kind creates a sentinel that matches itself and the given kind.
func Kind(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}

// KindOf returns the first kind err matches, or nil.
func KindOf(err error) error {
	for _, k := range []error{ErrNotFound, ErrValidation, ErrConflict, ErrStateViolation, ErrPersistence, ErrUnauthorized, ErrForbidden} {
		if Is(err, k) {
			return k
		}
	}
	return nil
}
