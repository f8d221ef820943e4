package multipart

import (
	"iter"
	"strings"

	"github.com/indigo-web/formdata/internal/strutil"
	"github.com/indigo-web/formdata/kv"
	"github.com/indigo-web/formdata/mime"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

const (
	headerContentDisposition = "Content-Disposition"
	headerContentType        = "Content-Type"
)

// Part is a single section of a form. It is either a *Field or a *File, which one is
// decided by the presence of the filename attribute in the Content-Disposition header.
//
// Parts are immutable once built: headers are exposed for reading only.
type Part interface {
	// Name returns the name attribute of the Content-Disposition header.
	Name() string
	// Header returns the first value of the header, matching the key case-insensitively.
	Header(key string) string
	// Headers returns an iterator over all the headers of the part, in the order they
	// were met. Duplicates and the original spelling of keys are preserved.
	Headers() iter.Seq2[string, string]
	// Body returns the raw content of the part.
	Body() []byte
	// ContentType returns the Content-Type header value without parameters.
	ContentType() mime.MIME
	// Charset returns the charset parameter of the Content-Type header.
	Charset() mime.Charset
	part()
}

type section struct {
	name           string
	header         *kv.Storage
	body           []byte
	defaultType    mime.MIME
	defaultCharset mime.Charset
}

func (s *section) Name() string {
	return s.name
}

func (s *section) Header(key string) string {
	return s.header.Value(key)
}

func (s *section) Headers() iter.Seq2[string, string] {
	return s.header.Pairs()
}

func (s *section) Body() []byte {
	return s.body
}

func (s *section) ContentType() mime.MIME {
	value, _ := strutil.CutHeader(s.header.Value(headerContentType))
	if value = strutil.RStripWS(value); len(value) == 0 {
		return s.defaultType
	}

	return value
}

func (s *section) Charset() mime.Charset {
	_, params := strutil.CutHeader(s.header.Value(headerContentType))
	for key, value := range strutil.WalkParams(params) {
		if strcomp.EqualFold(key, "charset") && len(value) > 0 {
			return value
		}
	}

	return s.defaultCharset
}

func (*section) part() {}

// Field is a plain form value.
type Field struct {
	section
}

// NewField builds a field with the canonical Content-Disposition header.
func NewField(name, value string) *Field {
	header := kv.NewPrealloc(1).
		Add(headerContentDisposition, `form-data; name="`+escape(name)+`"`)

	return &Field{newSection(name, header, []byte(value), mime.Plain)}
}

// Value returns the body as a string. It shares the memory with the parsed buffer.
func (f *Field) Value() string {
	return uf.B2S(f.body)
}

// File is an uploaded file. A file input left empty in the browser still produces a File,
// with empty filename and data.
type File struct {
	section
	filename string
}

// NewFile builds a file with the canonical Content-Disposition and Content-Type headers.
// Empty contentType defaults to application/octet-stream.
func NewFile(name, filename string, contentType mime.MIME, data []byte) *File {
	if len(contentType) == 0 {
		contentType = mime.OctetStream
	}

	header := kv.NewPrealloc(2).
		Add(headerContentDisposition, `form-data; name="`+escape(name)+`"; filename="`+escape(filename)+`"`).
		Add(headerContentType, contentType)

	return &File{
		section:  newSection(name, header, data, mime.OctetStream),
		filename: filename,
	}
}

// Filename returns the filename attribute. It may be empty.
func (f *File) Filename() string {
	return f.filename
}

// Data returns the file content. It shares the memory with the parsed buffer.
func (f *File) Data() []byte {
	return f.body
}

func newSection(name string, header *kv.Storage, body []byte, defaultType mime.MIME) section {
	return section{
		name:           name,
		header:         header,
		body:           body,
		defaultType:    defaultType,
		defaultCharset: mime.UTF8,
	}
}

// names and filenames are escaped as browsers do when submitting forms
var escaper = strings.NewReplacer(`"`, "%22", "\r", "%0D", "\n", "%0A")

func escape(str string) string {
	return escaper.Replace(str)
}
