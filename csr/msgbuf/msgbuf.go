// SPDX-License-Identifier: MIT
// Package: csrgraph/csr/msgbuf
//
// msgbuf.go - msgpack Encoder, Decoder and in-memory Buffer.
//
// Every value is one msgpack integer in its most compact form. Encoder and
// Decoder borrow from the msgpack pools and must be released.

// Package msgbuf provides msgpack-backed message buffers implementing the
// csr.MessageWriter and csr.MessageReader transport capabilities.
//
// Encoder and Decoder stream over an io.Writer / io.Reader (a socket, a
// pipe, an RPC payload). Buffer is an in-memory FIFO combining both ends,
// convenient for exchanging partial graphs inside one process.
package msgbuf

import (
	"bytes"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Encoder writes integers as msgpack values.
type Encoder struct {
	enc *msgpack.Encoder
}

// NewEncoder returns an Encoder writing to w. Call Release when done.
func NewEncoder(w io.Writer) *Encoder {
	enc := msgpack.GetEncoder()
	enc.Reset(w)

	return &Encoder{enc: enc}
}

// WriteInt encodes v using the most compact msgpack integer form.
func (e *Encoder) WriteInt(v int64) error {
	return e.enc.EncodeInt(v)
}

// Release returns the underlying encoder to the msgpack pool. The Encoder
// must not be used afterwards.
func (e *Encoder) Release() {
	msgpack.PutEncoder(e.enc)
	e.enc = nil
}

// Decoder reads integers written by Encoder.
type Decoder struct {
	dec *msgpack.Decoder
}

// NewDecoder returns a Decoder reading from r. Call Release when done.
func NewDecoder(r io.Reader) *Decoder {
	dec := msgpack.GetDecoder()
	dec.Reset(r)

	return &Decoder{dec: dec}
}

// ReadInt decodes the next value as an int64. io.EOF is returned unchanged
// when the stream is exhausted.
func (d *Decoder) ReadInt() (int64, error) {
	return d.dec.DecodeInt64()
}

// Release returns the underlying decoder to the msgpack pool.
func (d *Decoder) Release() {
	msgpack.PutDecoder(d.dec)
	d.dec = nil
}

// Buffer is an in-memory message buffer. Values are read back in the order
// they were written.
type Buffer struct {
	buf bytes.Buffer
	enc *msgpack.Encoder
	dec *msgpack.Decoder
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return NewBufferFrom(nil)
}

// NewBufferFrom returns a Buffer whose unread content is a copy of p,
// typically bytes received from another process.
func NewBufferFrom(p []byte) *Buffer {
	b := &Buffer{}
	b.buf.Write(p)
	// bytes.Buffer is an io.ByteScanner, so the decoder reads it directly
	// without an intermediate bufio layer and interleaving stays safe.
	b.enc = msgpack.NewEncoder(&b.buf)
	b.dec = msgpack.NewDecoder(&b.buf)

	return b
}

// WriteInt appends v.
func (b *Buffer) WriteInt(v int64) error {
	return b.enc.EncodeInt(v)
}

// ReadInt consumes the oldest unread value.
func (b *Buffer) ReadInt() (int64, error) {
	return b.dec.DecodeInt64()
}

// Bytes returns the unread portion of the buffer.
func (b *Buffer) Bytes() []byte {
	return b.buf.Bytes()
}

// Len returns the number of unread bytes.
func (b *Buffer) Len() int {
	return b.buf.Len()
}
