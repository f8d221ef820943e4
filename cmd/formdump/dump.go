package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/indigo-web/formdata/multipart"
	json "github.com/json-iterator/go"
)

type options struct {
	Boundary    string
	ContentType string
	JSON        bool
	RoundTrip   bool
	// Length and Chunked describe how the body is framed in the listen mode. With
	// neither set, the body lasts until the peer half-closes the connection.
	Length  int
	Chunked bool
}

func dumpFile(w io.Writer, path string, opts options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err = dump(w, data, opts); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

func dumpReader(w io.Writer, r io.Reader, opts options) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	return dump(w, data, opts)
}

func dump(w io.Writer, data []byte, opts options) error {
	form, err := parse(data, opts)
	if err != nil {
		return err
	}

	if opts.JSON {
		err = json.NewEncoder(w).Encode(form)
	} else {
		err = printForm(w, form)
	}

	if err != nil || !opts.RoundTrip {
		return err
	}

	if !bytes.Equal(multipart.Serialize(form), data) {
		return fmt.Errorf("round trip: serialized form differs from the input")
	}

	_, err = fmt.Fprintln(w, "round trip: ok")
	return err
}

func parse(data []byte, opts options) (*multipart.Form, error) {
	boundary := multipart.Boundary(opts.Boundary)

	switch {
	case len(boundary) > 0:
	case len(opts.ContentType) > 0:
		var err error
		if boundary, err = multipart.BoundaryFromContentType(opts.ContentType); err != nil {
			return nil, fmt.Errorf("content type: %w", err)
		}
	default:
		return multipart.ParseAuto(data)
	}

	return multipart.Parse(data, boundary)
}

func printForm(w io.Writer, form *multipart.Form) error {
	if _, err := fmt.Fprintf(w, "boundary: %s\nparts: %d\n", form.Boundary, form.Len()); err != nil {
		return err
	}

	for i, part := range form.All() {
		var err error

		switch p := part.(type) {
		case *multipart.Field:
			_, err = fmt.Fprintf(w, "%d. field %s = %s\n", i, strconv.Quote(p.Name()), strconv.Quote(p.Value()))
		case *multipart.File:
			_, err = fmt.Fprintf(
				w, "%d. file %s (filename %s, %s, %d bytes)\n",
				i, strconv.Quote(p.Name()), strconv.Quote(p.Filename()), p.ContentType(), len(p.Data()),
			)
		}

		if err != nil {
			return err
		}
	}

	return nil
}
