// Package multipart decodes and encodes multipart/form-data bodies.
//
// Parsing operates on a fully received body and doesn't copy it: bodies, header values
// and names of the resulting parts point into the passed buffer, therefore it must stay
// untouched as long as the form is in use. Serializing a parsed form reproduces the
// original buffer byte for byte, unless it contained a preamble or an epilogue.
package multipart

import (
	"iter"
	"slices"

	"github.com/indigo-web/formdata/mime"
	"github.com/indigo-web/formdata/status"
)

// Form is an ordered sequence of parts framed by a boundary. The order is significant, as
// repeated names (e.g. array-like "files[]") are distinguished only by their position.
type Form struct {
	Boundary Boundary
	parts    []Part
}

// NewForm returns an empty form. Use NewBoundary if there's no boundary at hand.
func NewForm(boundary Boundary) *Form {
	return &Form{Boundary: boundary}
}

// Append adds the parts to the end of the form.
func (f *Form) Append(parts ...Part) *Form {
	f.parts = append(f.parts, parts...)
	return f
}

// AddField appends a new field.
func (f *Form) AddField(name, value string) *Form {
	return f.Append(NewField(name, value))
}

// AddFile appends a new file.
func (f *Form) AddFile(name, filename string, contentType mime.MIME, data []byte) *Form {
	return f.Append(NewFile(name, filename, contentType, data))
}

// Parts exposes the underlying parts slice.
func (f *Form) Parts() []Part {
	return f.parts
}

// Len returns the number of parts.
func (f *Form) Len() int {
	return len(f.parts)
}

// All returns an iterator over the parts along with their positions.
func (f *Form) All() iter.Seq2[int, Part] {
	return slices.All(f.parts)
}

// Named returns an iterator over all the parts, both fields and files, matching the name.
func (f *Form) Named(name string) iter.Seq[Part] {
	return func(yield func(Part) bool) {
		for _, part := range f.parts {
			if part.Name() == name {
				if !yield(part) {
					break
				}
			}
		}
	}
}

// Value returns the value of the first field matching the name. Files are never matched.
func (f *Form) Value(name string) (string, error) {
	for field := range f.fields(name) {
		return field.Value(), nil
	}

	return "", status.ErrNoSuchField
}

// Values returns values of all the fields matching the name.
func (f *Form) Values(name string) (values []string) {
	for field := range f.fields(name) {
		values = append(values, field.Value())
	}

	return values
}

// File returns the first file matching the name.
func (f *Form) File(name string) (*File, error) {
	for file := range f.files(name) {
		return file, nil
	}

	return nil, status.ErrNoSuchFile
}

// Files returns all the files matching the name, in the order they were met.
func (f *Form) Files(name string) ([]*File, error) {
	files := slices.Collect(f.files(name))
	if len(files) == 0 {
		return nil, status.ErrNoSuchFile
	}

	return files, nil
}

func (f *Form) fields(name string) iter.Seq[*Field] {
	return func(yield func(*Field) bool) {
		for part := range f.Named(name) {
			if field, ok := part.(*Field); ok && !yield(field) {
				break
			}
		}
	}
}

func (f *Form) files(name string) iter.Seq[*File] {
	return func(yield func(*File) bool) {
		for part := range f.Named(name) {
			if file, ok := part.(*File); ok && !yield(file) {
				break
			}
		}
	}
}
