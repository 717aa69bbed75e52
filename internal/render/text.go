package render

import "io"

const (
	glyphOn  = '*'
	glyphOff = ' '
)

// AppendLine renders binary cell data (0/1) as one text line appended to dst:
// '*' for live cells, a space for dead ones, then a newline.
func AppendLine(dst []byte, cells []uint8) []byte {
	for _, c := range cells {
		if c != 0 {
			dst = append(dst, glyphOn)
			continue
		}
		dst = append(dst, glyphOff)
	}
	return append(dst, '\n')
}

// LineWriter writes one generation per Write call so output streams as the
// run progresses.
type LineWriter struct {
	w   io.Writer
	buf []byte
}

// NewLineWriter returns a LineWriter sized for rows of width cells.
func NewLineWriter(w io.Writer, width int) *LineWriter {
	return &LineWriter{w: w, buf: make([]byte, 0, width+1)}
}

// WriteCells renders cells and writes the resulting line.
func (lw *LineWriter) WriteCells(cells []uint8) error {
	lw.buf = AppendLine(lw.buf[:0], cells)
	_, err := lw.w.Write(lw.buf)
	return err
}
