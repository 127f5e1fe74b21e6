package shell

import "io"

// initialBufferSize seeds the line buffer; append grows it as needed.
const initialBufferSize = 1024

// LineReader acquires newline-delimited lines from a byte stream. It
// reads one byte at a time so no input beyond the current line is
// consumed, leaving the rest of the stream for child processes.
type LineReader struct {
	r io.Reader
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: r}
}

// ReadLine returns the next line without its trailing newline. io.EOF
// means the stream is exhausted and the shell should quit successfully;
// bytes on a line the stream closed mid-way are dropped with it.
func (lr *LineReader) ReadLine() (string, error) {
	buf := make([]byte, 0, initialBufferSize)
	var b [1]byte

	for {
		n, err := lr.r.Read(b[:])
		if n > 0 {
			if b[0] == '\n' {
				return string(buf), nil
			}
			buf = append(buf, b[0])
		}
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return "", io.EOF
			}
			return "", err
		}
	}
}
