package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/formdata/transport"
)

var _ transport.Client = new(Client)

// Client returns the chunks it was initialised with one by one, and io.EOF afterwards.
// Everything written is journaled.
type Client struct {
	closed  bool
	pointer int
	tmp     []byte
	written []byte
	data    [][]byte
}

func NewClient(data ...[]byte) *Client {
	return &Client{data: data}
}

func (c *Client) Read() (data []byte, err error) {
	if c.closed {
		return nil, io.EOF
	}

	if len(c.tmp) > 0 {
		data, c.tmp = c.tmp, nil

		return data, nil
	}

	if c.pointer >= len(c.data) {
		c.closed = true
		return nil, io.EOF
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *Client) Pushback(takeback []byte) {
	c.tmp = takeback
}

func (c *Client) Write(p []byte) (int, error) {
	c.written = append(c.written, p...)
	return len(p), nil
}

// Written returns everything written so far.
func (c *Client) Written() []byte {
	return c.written
}

func (*Client) Conn() net.Conn {
	return nil
}

func (*Client) Remote() net.Addr {
	return nil
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}
