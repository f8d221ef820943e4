package main

import (
	"bytes"
	"fmt"
	"log"
	"net"

	"github.com/indigo-web/formdata/body"
	"github.com/indigo-web/formdata/config"
	"github.com/indigo-web/formdata/transport"
)

func serve(addr string, opts options) error {
	cfg := config.Default()
	tcp := transport.NewTCP()
	if err := tcp.Bind(addr); err != nil {
		return err
	}

	defer tcp.Close()
	log.Printf("listening on %s\n", tcp.Addr())

	return tcp.Listen(cfg.NET, func(conn net.Conn) {
		client := transport.NewClient(conn, cfg.NET.ReadTimeout, make([]byte, cfg.NET.ReadBufferSize))
		if err := handle(client, cfg, opts); err != nil {
			log.Printf("%s: %v\n", client.Remote(), err)
			_, _ = fmt.Fprintf(client, "error: %v\n", err)
		}
	})
}

// handle reads the whole body the client sends and writes back its summary.
func handle(client transport.Client, cfg *config.Config, opts options) error {
	data, err := readBody(body.New(client, cfg.Body), opts)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err = dump(&out, data, opts); err != nil {
		return err
	}

	_, err = client.Write(out.Bytes())
	return err
}

func readBody(reader *body.Reader, opts options) ([]byte, error) {
	switch {
	case opts.Chunked:
		return reader.Chunked(false)
	case opts.Length > 0:
		return reader.Plain(opts.Length)
	default:
		return reader.All()
	}
}
