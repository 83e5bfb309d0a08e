package protocol

// scratchMax bounds a ScratchOutput. Several frames fit; a single frame
// never exceeds FrameMax.
const scratchMax = 256

// OutputBuffer is the write side used by the encoders.
type OutputBuffer interface {
	// Output appends data to the buffer.
	Output(data []byte)

	// CurPosition returns the current write position.
	CurPosition() int

	// Update rewrites a byte at an earlier position (length patching).
	Update(pos int, val byte)

	// DataSince returns data from a position to the current one.
	DataSince(pos int) []byte
}

// ScratchOutput is a fixed-size OutputBuffer suitable for interrupt
// context: no allocation after construction.
type ScratchOutput struct {
	buf [scratchMax]byte
	pos int
}

func NewScratchOutput() *ScratchOutput {
	return &ScratchOutput{}
}

func (s *ScratchOutput) Output(data []byte) {
	n := copy(s.buf[s.pos:], data)
	s.pos += n
}

func (s *ScratchOutput) CurPosition() int {
	return s.pos
}

func (s *ScratchOutput) Update(pos int, val byte) {
	if pos < len(s.buf) {
		s.buf[pos] = val
	}
}

func (s *ScratchOutput) DataSince(pos int) []byte {
	if pos > s.pos {
		return nil
	}
	return s.buf[pos:s.pos]
}

// Result returns the accumulated output.
func (s *ScratchOutput) Result() []byte {
	return s.buf[:s.pos]
}

func (s *ScratchOutput) Reset() {
	s.pos = 0
}

// FifoBuffer is a circular byte buffer for serial I/O between the read
// goroutine and the frame decoder.
type FifoBuffer struct {
	buf   []byte
	read  int
	write int
	size  int
}

func NewFifoBuffer(capacity int) *FifoBuffer {
	return &FifoBuffer{
		buf:  make([]byte, capacity),
		size: capacity,
	}
}

// Write appends data, returning the number of bytes stored. Excess bytes
// are dropped when the buffer is full.
func (f *FifoBuffer) Write(data []byte) int {
	written := 0
	for _, b := range data {
		nextWrite := (f.write + 1) % f.size
		if nextWrite == f.read {
			break
		}
		f.buf[f.write] = b
		f.write = nextWrite
		written++
	}
	return written
}

// Available returns the number of readable bytes.
func (f *FifoBuffer) Available() int {
	if f.write >= f.read {
		return f.write - f.read
	}
	return f.size - f.read + f.write
}

// Data returns the readable bytes as one contiguous slice, copying only
// when the buffer has wrapped.
func (f *FifoBuffer) Data() []byte {
	if f.read <= f.write {
		return f.buf[f.read:f.write]
	}
	avail := f.Available()
	result := make([]byte, avail)
	firstLen := f.size - f.read
	copy(result, f.buf[f.read:])
	copy(result[firstLen:], f.buf[:f.write])
	return result
}

// Pop removes n bytes from the front.
func (f *FifoBuffer) Pop(n int) {
	for i := 0; i < n && f.read != f.write; i++ {
		f.read = (f.read + 1) % f.size
	}
}

func (f *FifoBuffer) IsEmpty() bool {
	return f.read == f.write
}

func (f *FifoBuffer) Reset() {
	f.read = 0
	f.write = 0
}
