package multipart

import (
	"github.com/indigo-web/formdata/internal/strutil"
	"github.com/indigo-web/formdata/mime"
	"github.com/indigo-web/formdata/status"
	"github.com/indigo-web/utils/strcomp"
)

// BoundaryFromContentType extracts the boundary parameter out of the Content-Type header
// value. The media type must be multipart/form-data.
func BoundaryFromContentType(header string) (Boundary, error) {
	mediaType, params := strutil.CutHeader(header)
	mediaType = strutil.RStripWS(strutil.LStripWS(mediaType))
	if len(mediaType) == 0 || !mime.Complies(mime.Multipart, mediaType) {
		return "", status.ErrNotMultipart
	}

	for key, value := range strutil.WalkParams(params) {
		switch {
		case len(key) == 0:
			return "", status.ErrBadHeader
		case strcomp.EqualFold(key, "boundary"):
			boundary := Boundary(value)
			if err := boundary.Validate(); err != nil {
				return "", err
			}

			return boundary, nil
		}
	}

	return "", status.ErrNoBoundary
}

// ContentType returns the Content-Type header value the serialized form must be sent with.
func (f *Form) ContentType() string {
	return mime.Multipart + "; boundary=" + strutil.Quote(string(f.Boundary))
}
