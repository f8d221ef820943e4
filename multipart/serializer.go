package multipart

import "io"

// Serialize renders the form into the wire format. Parts and their headers are emitted
// exactly in the order they're stored.
func Serialize(form *Form) []byte {
	return form.AppendTo(make([]byte, 0, form.Size()))
}

// AppendTo appends the serialized form to the dst.
func (f *Form) AppendTo(dst []byte) []byte {
	for _, part := range f.parts {
		dst = f.appendDelimiter(dst)
		dst = append(dst, crlf...)

		for key, value := range part.Headers() {
			dst = append(dst, key...)
			dst = append(dst, ": "...)
			dst = append(dst, value...)
			dst = append(dst, crlf...)
		}

		dst = append(dst, crlf...)
		dst = append(dst, part.Body()...)
		dst = append(dst, crlf...)
	}

	dst = f.appendDelimiter(dst)
	dst = append(dst, dashes...)

	return append(dst, crlf...)
}

// WriteTo writes the serialized form into the writer.
func (f *Form) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(Serialize(f))
	return int64(n), err
}

// Size returns the exact length of the serialized form, suitable for Content-Length.
func (f *Form) Size() int {
	delimiterLine := len(dashes) + len(f.Boundary) + len(crlf)
	size := delimiterLine + len(dashes)

	for _, part := range f.parts {
		size += delimiterLine

		for key, value := range part.Headers() {
			size += len(key) + len(": ") + len(value) + len(crlf)
		}

		size += len(crlf) + len(part.Body()) + len(crlf)
	}

	return size
}

func (f *Form) appendDelimiter(dst []byte) []byte {
	dst = append(dst, dashes...)
	return append(dst, f.Boundary...)
}
