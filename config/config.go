package config

import (
	"time"

	"github.com/indigo-web/formdata/mime"
)

type (
	BodyForm struct {
		// PartsPrealloc is the number of preallocated seats for parts in a parsed form.
		PartsPrealloc int
		// MaxParts limits how many parts a single form may consist of. Exceeding it fails
		// the whole parse, as no partial forms are ever returned. 0 means no limit.
		MaxParts int `test:"nullable"`
		// DefaultCharset is reported by parts that don't carry an explicit charset
		// parameter in their Content-Type header.
		DefaultCharset mime.Charset
		// DefaultContentType is the MIME assumed for fields without a Content-Type header.
		// Files fall back to application/octet-stream regardless.
		DefaultContentType mime.MIME
	}

	Body struct {
		// MaxSize describes the maximal size of a body that can be materialized. 0 will
		// reject any non-empty body.
		MaxSize uint64
		// BufferPrealloc is the initial capacity of a buffer storing a whole body whose
		// length isn't known in advance (e.g. chunked transfer encoding.)
		BufferPrealloc int
		// Form configures the multipart/form-data parser.
		Form BodyForm
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket
		ReadBufferSize int
		// ReadTimeout controls the maximal lifetime of IDLE connections. If no data was
		// received in this period of time, it'll be closed.
		ReadTimeout time.Duration
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop. Defaults to 5 seconds.
		AcceptLoopInterruptPeriod time.Duration
	}
)

// Config holds limitations and pre-allocations used by the parser and by the body
// collaborators.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Body Body
	NET  NET
}

// Default returns default config. Those are initially well-balanced, however maximal defaults
// are pretty permitting.
func Default() *Config {
	return &Config{
		Body: Body{
			MaxSize:        512 * 1024 * 1024, // 512 megabytes
			BufferPrealloc: 4 * 1024,
			Form: BodyForm{
				PartsPrealloc:      8,
				DefaultCharset:     mime.UTF8,
				DefaultContentType: mime.Plain,
			},
		},
		NET: NET{
			ReadBufferSize:            4 * 1024,
			ReadTimeout:               90 * time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
	}
}
