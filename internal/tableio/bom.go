package tableio

// bom.go provides a streaming reader that strips the UTF-8 byte order
// mark. Spreadsheet exports on Windows routinely prepend one, which would
// otherwise corrupt the first header cell ("\ufeffmass_g").

import "io"

// BOMSkippingReader wraps an io.Reader and skips the UTF-8 BOM
// (0xEF 0xBB 0xBF) if present at the start of the stream.
type BOMSkippingReader struct {
	reader     io.Reader
	bomChecked bool
	buf        [3]byte // bytes read during BOM detection
	bufData    []byte  // remaining non-BOM bytes to hand out first
	bufOffset  int
}

// NewBOMSkippingReader creates a new BOM-skipping reader.
func NewBOMSkippingReader(r io.Reader) *BOMSkippingReader {
	return &BOMSkippingReader{reader: r}
}

// Read implements io.Reader. On the first call it inspects the first
// three bytes and drops them when they form a BOM; otherwise they are
// preserved and returned ahead of the rest of the stream.
func (r *BOMSkippingReader) Read(p []byte) (int, error) {
	if !r.bomChecked {
		r.bomChecked = true

		n, err := io.ReadFull(r.reader, r.buf[:])
		if n == 0 {
			return 0, err
		}

		if n >= 3 && r.buf[0] == 0xEF && r.buf[1] == 0xBB && r.buf[2] == 0xBF {
			r.bufData = nil
		} else {
			r.bufData = r.buf[:n]
			r.bufOffset = 0
		}

		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		if err != nil && err != io.EOF {
			return 0, err
		}
	}

	if len(r.bufData) > r.bufOffset {
		copied := copy(p, r.bufData[r.bufOffset:])
		r.bufOffset += copied
		if r.bufOffset >= len(r.bufData) {
			r.bufData = nil
		}
		return copied, nil
	}

	return r.reader.Read(p)
}
