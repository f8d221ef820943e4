// Package body materializes a complete request body out of a transport.Client, so it
// can be handed over to the multipart parser as a single buffer.
package body

import (
	"errors"
	"io"
	"math"

	"github.com/indigo-web/chunkedbody"
	"github.com/indigo-web/formdata/config"
	"github.com/indigo-web/formdata/internal/buffer"
	"github.com/indigo-web/formdata/status"
	"github.com/indigo-web/formdata/transport"
)

// Reader reads bodies one after another. Data following a body is pushed back into the
// client, so it can be read by whatever comes next. A returned body is valid only until
// the next call.
type Reader struct {
	client  transport.Client
	buff    buffer.Buffer
	parser  *chunkedbody.Parser
	maxSize int
}

func New(client transport.Client, cfg config.Body) *Reader {
	maxSize := math.MaxInt
	if cfg.MaxSize < math.MaxInt {
		maxSize = int(cfg.MaxSize)
	}

	return &Reader{
		client:  client,
		buff:    buffer.New(cfg.BufferPrealloc, maxSize),
		parser:  chunkedbody.NewParser(chunkedbody.DefaultSettings()),
		maxSize: maxSize,
	}
}

// Plain reads a body of exactly length bytes, as declared by Content-Length.
func (r *Reader) Plain(length int) ([]byte, error) {
	r.buff.Clear()
	if length > r.maxSize {
		return nil, status.ErrBodyTooLarge
	}

	r.buff.Grow(length)

	for left := length; left > 0; {
		data, err := r.client.Read()
		if len(data) > left {
			r.client.Pushback(data[left:])
			data = data[:left]
		}

		r.buff.Append(data)
		left -= len(data)

		switch {
		case err == nil:
		case left == 0 && errors.Is(err, io.EOF):
		case errors.Is(err, io.EOF):
			return nil, io.ErrUnexpectedEOF
		default:
			return nil, err
		}
	}

	return r.buff.Finish(), nil
}

// Chunked reads a body encoded with the chunked transfer coding. Trailer must be set if
// the request declared trailer fields.
func (r *Reader) Chunked(trailer bool) ([]byte, error) {
	r.buff.Clear()

	for {
		data, err := r.client.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.ErrUnexpectedEOF
			}

			return nil, err
		}

		chunk, extra, err := r.parser.Parse(data, trailer)
		switch err {
		case nil, io.EOF:
		default:
			return nil, status.ErrBadChunk
		}

		if !r.buff.Append(chunk) {
			return nil, status.ErrBodyTooLarge
		}

		r.client.Pushback(extra)

		if err == io.EOF {
			return r.buff.Finish(), nil
		}
	}
}

// All reads until the peer closes the connection.
func (r *Reader) All() ([]byte, error) {
	r.buff.Clear()

	for {
		data, err := r.client.Read()
		if !r.buff.Append(data) {
			return nil, status.ErrBodyTooLarge
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return r.buff.Finish(), nil
			}

			return nil, err
		}
	}
}
