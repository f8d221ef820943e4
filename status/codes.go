package status

// Code classifies an error. Every Error carries exactly one Code, so callers may
// match a whole class via errors.Is(err, status.MalformedInput).
type Code uint8

const (
	// MalformedInput means the buffer doesn't conform to the expected
	// delimiter/header/body structure.
	MalformedInput Code = iota + 1
	// NotFound means a lookup by name found no matching part. The data is valid, just absent.
	NotFound
	// TooLarge means a configured limit was exceeded.
	TooLarge
)

var KnownCodes = []Code{MalformedInput, NotFound, TooLarge}

func (c Code) Error() string {
	return c.String()
}

func (c Code) String() string {
	switch c {
	case MalformedInput:
		return "malformed input"
	case NotFound:
		return "not found"
	case TooLarge:
		return "too large"
	default:
		return "unknown"
	}
}
