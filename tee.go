package run

import "io"

// teeWriter duplicates every write into a capture buffer and a live sink,
// like the UNIX tee command. A short write to either side is an error so
// neither the buffer nor the sink can silently miss bytes.
//
// Each stream gets its own teeWriter and its own buffer; the buffer is only
// read after the copy goroutines have been joined, so no locking is needed.
type teeWriter struct {
	buffer io.Writer
	sink   io.Writer
}

func newTee(buffer, sink io.Writer) *teeWriter {
	return &teeWriter{buffer: buffer, sink: sink}
}

func (t *teeWriter) Write(p []byte) (int, error) {
	n, err := t.buffer.Write(p)
	if err != nil {
		return n, err
	}
	if n != len(p) {
		return n, io.ErrShortWrite
	}

	n, err = t.sink.Write(p)
	if err != nil {
		return n, err
	}
	if n != len(p) {
		return n, io.ErrShortWrite
	}
	return len(p), nil
}
