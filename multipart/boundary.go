package multipart

import (
	"bytes"
	"strings"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/formdata/status"
)

const (
	// MaxBoundaryLength is the longest boundary RFC 2046 permits. It applies to detected
	// and generated boundaries only, explicitly passed ones aren't limited.
	MaxBoundaryLength = 70
	// DetectWindow bounds the prefix of a buffer Detect looks through.
	DetectWindow = 4096
)

var (
	crlf   = []byte("\r\n")
	dashes = []byte("--")
)

// Boundary is the token separating parts of a form. Each delimiter line is the boundary
// prefixed by two dashes.
type Boundary string

// NewBoundary generates a random boundary in the manner browsers do.
func NewBoundary() Boundary {
	return Boundary("----FormBoundary" + uniuri.NewLen(16))
}

// Validate reports whether the boundary is usable for framing.
func (b Boundary) Validate() error {
	if len(b) == 0 || strings.ContainsAny(string(b), "\r\n") {
		return status.ErrBadBoundary
	}

	return nil
}

// Detect recovers the boundary from the first delimiter line of the data. The line must
// start with the two-dash marker, everything after the marker is the boundary, even if
// it starts with more dashes. Lines preceding it (preamble) are skipped, as long as the
// delimiter line lies within DetectWindow bytes.
func Detect(data []byte) (Boundary, error) {
	window := data[:min(len(data), DetectWindow)]
	window = bytes.TrimPrefix(window, crlf)

	for {
		eol := bytes.Index(window, crlf)
		if eol == -1 {
			return "", status.ErrNoBoundary
		}

		if boundary, ok := delimiterLine(window[:eol]); ok {
			return boundary, nil
		}

		window = window[eol+len(crlf):]
	}
}

func delimiterLine(line []byte) (Boundary, bool) {
	if !bytes.HasPrefix(line, dashes) {
		return "", false
	}

	token := line[len(dashes):]
	if len(token) == 0 || len(token) > MaxBoundaryLength || bytes.ContainsAny(token, " \t") {
		return "", false
	}

	return Boundary(token), true
}
