package csv

//Buffer represents row buffer
type Buffer struct {
	buffer []byte
	offset int
}

//NewBuffer creates a buffer instance with given initial size
func NewBuffer(size int) *Buffer {
	return &Buffer{
		buffer: make([]byte, size),
	}
}

//WriteString add string to the buffer
func (b *Buffer) WriteString(value string) {
	if len(value)+b.offset > len(b.buffer) {
		b.buffer = append(b.buffer[:b.offset], value...)
		b.offset = len(b.buffer)
		return
	}

	b.offset += copy(b.buffer[b.offset:], value)
}

//WriteByte add a single byte to the buffer
func (b *Buffer) WriteByte(value byte) error {
	if b.offset >= len(b.buffer) {
		b.buffer = append(b.buffer[:b.offset], value)
		b.offset = len(b.buffer)
		return nil
	}

	b.buffer[b.offset] = value
	b.offset++
	return nil
}

//Bytes returns buffered data, valid until the next Reset
func (b *Buffer) Bytes() []byte {
	return b.buffer[:b.offset]
}

//Len returns actual buffer len
func (b *Buffer) Len() int {
	return b.offset
}

//Reset sets actual buffer len to 0
func (b *Buffer) Reset() {
	b.offset = 0
}
