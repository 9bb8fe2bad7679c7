package reader

import "io"

type callbackReader struct {
	cb        func(n int)
	srcReader io.Reader
}

func (cr *callbackReader) Read(p []byte) (int, error) {
	n, err := cr.srcReader.Read(p)
	cr.cb(n)
	return n, err
}
