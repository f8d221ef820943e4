package multipart

import (
	"bytes"

	"github.com/indigo-web/formdata/config"
	"github.com/indigo-web/formdata/internal/strutil"
	"github.com/indigo-web/formdata/kv"
	"github.com/indigo-web/formdata/mime"
	"github.com/indigo-web/formdata/status"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

// a field carrying the charset the rest of the form is encoded with (HTML Living Standard)
const charsetField = "_charset_"

var separator = []byte("\r\n\r\n")

// Parse parses the data using default limits. See ParseConfig.
func Parse(data []byte, boundary Boundary) (*Form, error) {
	return ParseConfig(config.Default(), data, boundary)
}

// ParseAuto detects the boundary and parses the data using default limits.
func ParseAuto(data []byte) (*Form, error) {
	boundary, err := Detect(data)
	if err != nil {
		return nil, err
	}

	return Parse(data, boundary)
}

// ParseConfig splits the data into parts. Everything preceding the first delimiter is
// discarded, as well as everything following the terminal one. Either a complete form
// is returned or an error, there are no partial results.
func ParseConfig(cfg *config.Config, data []byte, boundary Boundary) (*Form, error) {
	if err := boundary.Validate(); err != nil {
		return nil, err
	}

	p := parser{
		delimiter:   []byte("--" + boundary),
		next:        []byte("\r\n--" + boundary),
		charset:     cfg.Body.Form.DefaultCharset,
		defaultType: cfg.Body.Form.DefaultContentType,
	}

	begin := p.first(data)
	if begin == -1 {
		return nil, status.ErrNoDelimiter
	}

	form := &Form{
		Boundary: boundary,
		parts:    make([]Part, 0, cfg.Body.Form.PartsPrealloc),
	}

	for pos := begin + len(p.delimiter); ; {
		rest := data[pos:]

		switch {
		case bytes.HasPrefix(rest, dashes):
			return form, nil
		case bytes.HasPrefix(rest, crlf):
			pos += len(crlf)
		case len(rest) < len(crlf):
			return nil, status.ErrNoTerminator
		default:
			return nil, status.ErrBadDelimiter
		}

		end := bytes.Index(data[pos:], p.next)
		if end == -1 {
			return nil, status.ErrNoTerminator
		}

		if limit := cfg.Body.Form.MaxParts; limit > 0 && len(form.parts) >= limit {
			return nil, status.ErrTooManyParts
		}

		part, err := p.parsePart(data[pos : pos+end])
		if err != nil {
			return nil, err
		}

		form.parts = append(form.parts, part)
		pos += end + len(p.next)
	}
}

type parser struct {
	delimiter, next []byte
	charset         mime.Charset
	defaultType     mime.MIME
}

// first returns the position of the first delimiter. It must start a line and be followed
// by either CRLF or the terminal marker, or by a truncated piece of them, so mentions of
// the boundary in the preamble are skipped.
func (p *parser) first(data []byte) int {
	for offset := 0; ; {
		i := bytes.Index(data[offset:], p.delimiter)
		if i == -1 {
			return -1
		}

		i += offset
		if (i == 0 || bytes.HasSuffix(data[:i], crlf)) && delimiterEnds(data[i+len(p.delimiter):]) {
			return i
		}

		offset = i + 1
	}
}

func delimiterEnds(rest []byte) bool {
	rest = rest[:min(len(rest), len(crlf))]
	return bytes.HasPrefix(crlf, rest) || bytes.HasPrefix(dashes, rest)
}

// parsePart parses a block between two delimiters, with the CRLF preceding the
// latter already excluded.
func (p *parser) parsePart(block []byte) (Part, error) {
	var headers, body []byte

	if bytes.HasPrefix(block, crlf) {
		body = block[len(crlf):]
	} else {
		sep := bytes.Index(block, separator)
		if sep == -1 {
			return nil, status.ErrNoSeparator
		}

		headers, body = block[:sep], block[sep+len(separator):]
	}

	header, err := parseHeaders(headers)
	if err != nil {
		return nil, err
	}

	disposition, found := header.Get(headerContentDisposition)
	if !found {
		return nil, status.ErrNoName
	}

	name, filename, isFile, err := parseDisposition(disposition)
	if err != nil {
		return nil, err
	}

	s := section{
		name:           name,
		header:         header,
		body:           body,
		defaultType:    p.defaultType,
		defaultCharset: p.charset,
	}

	if isFile {
		s.defaultType = mime.OctetStream
		return &File{section: s, filename: filename}, nil
	}

	field := &Field{section: s}
	if name == charsetField && len(body) > 0 {
		p.charset = field.Value()
	}

	return field, nil
}

func parseHeaders(headers []byte) (*kv.Storage, error) {
	header := kv.NewPrealloc(bytes.Count(headers, crlf) + 1)

	for len(headers) > 0 {
		var line []byte
		if eol := bytes.Index(headers, crlf); eol == -1 {
			line, headers = headers, nil
		} else {
			line, headers = headers[:eol], headers[eol+len(crlf):]
		}

		colon := bytes.IndexByte(line, ':')
		if colon < 1 {
			return nil, status.ErrBadHeader
		}

		header.Add(uf.B2S(line[:colon]), strutil.LStripWS(uf.B2S(line[colon+1:])))
	}

	return header, nil
}

func parseDisposition(disposition string) (name, filename string, isFile bool, err error) {
	_, params := strutil.CutHeader(disposition)
	var hasName bool

	for key, value := range strutil.WalkParams(params) {
		switch {
		case len(key) == 0:
			return "", "", false, status.ErrBadHeader
		case strcomp.EqualFold(key, "name") && !hasName:
			name, hasName = value, true
		case strcomp.EqualFold(key, "filename") && !isFile:
			filename, isFile = value, true
		}
	}

	if len(name) == 0 {
		return "", "", false, status.ErrNoName
	}

	return name, filename, isFile, nil
}
