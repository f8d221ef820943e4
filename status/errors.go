package status

type Error struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return Error{
		Code:    code,
		Message: message,
	}
}

func (e Error) Error() string {
	return e.Message
}

// Is reports whether the target is the class of the error. Matching against a concrete
// Error falls back to the plain comparison done by errors.Is itself.
func (e Error) Is(target error) bool {
	code, ok := target.(Code)
	return ok && code == e.Code
}

var (
	ErrNoBoundary   = NewError(MalformedInput, "no boundary found")
	ErrBadBoundary  = NewError(MalformedInput, "boundary must be non-empty and must not contain CR or LF")
	ErrNotMultipart = NewError(MalformedInput, "media type is not multipart/form-data")
	ErrNoDelimiter  = NewError(MalformedInput, "no delimiter found")
	ErrBadDelimiter = NewError(MalformedInput, "delimiter is followed by neither CRLF nor the terminal marker")
	ErrNoTerminator = NewError(MalformedInput, "terminal delimiter is missing")
	ErrNoSeparator  = NewError(MalformedInput, "part is missing the header/body separator")
	ErrBadHeader    = NewError(MalformedInput, "malformed part header")
	ErrNoName       = NewError(MalformedInput, "content-disposition lacks the name attribute")
	ErrBadChunk     = NewError(MalformedInput, "malformed chunk-encoded data")
	ErrNoSuchField  = NewError(NotFound, "no such field")
	ErrNoSuchFile   = NewError(NotFound, "no such file")
	ErrTooManyParts = NewError(TooLarge, "too many parts")
	ErrBodyTooLarge = NewError(TooLarge, "request body is too large")
)
