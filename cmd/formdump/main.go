// Command formdump parses multipart/form-data bodies and prints what's inside.
//
//	formdump [-boundary b | -content-type ct] [-json] [-roundtrip] [file ...]
//	formdump -listen :9090 [-json] [-length n | -chunked]
//
// Without files the body is read from stdin. In the listen mode every connection sends
// a single body, either of the given length, chunked, or raw until it half-closes. The
// summary is written back.
package main

import (
	"flag"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("formdump: ")

	var opts options
	flag.StringVar(&opts.Boundary, "boundary", "", "boundary token; detected from the body if omitted")
	flag.StringVar(&opts.ContentType, "content-type", "", "Content-Type header value to take the boundary from")
	flag.BoolVar(&opts.JSON, "json", false, "print the summary as JSON")
	flag.BoolVar(&opts.RoundTrip, "roundtrip", false, "serialize the parsed form back and compare with the input")
	flag.IntVar(&opts.Length, "length", 0, "with -listen, read exactly this many bytes of body")
	flag.BoolVar(&opts.Chunked, "chunked", false, "with -listen, decode the body from the chunked transfer coding")
	listen := flag.String("listen", "", "serve raw bodies over TCP on the address instead")
	flag.Parse()

	if opts.Length < 0 || (opts.Length > 0 && opts.Chunked) {
		log.Fatal("-length must be positive and can't be combined with -chunked")
	}

	if len(*listen) > 0 {
		log.Fatal(serve(*listen, opts))
	}

	if flag.NArg() == 0 {
		if err := dumpReader(os.Stdout, os.Stdin, opts); err != nil {
			log.Fatal(err)
		}

		return
	}

	for _, path := range flag.Args() {
		if err := dumpFile(os.Stdout, path, opts); err != nil {
			log.Fatal(err)
		}
	}
}
