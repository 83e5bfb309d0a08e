package protocol

import "errors"

// Serial frame layout, one Message per frame:
//
//	[len] [id VLQ] [payload ...] [crc16 hi] [crc16 lo] [sync]
//
// len counts the whole frame including itself and the sync byte. The CRC
// covers everything before the trailer.
const (
	FrameSync    = 0x7E
	FrameMin     = 5   // len + 1-byte id + crc16 + sync, empty payload
	FrameMax     = 64  // generous bound; real frames are far smaller
	frameTrailer = 3   // crc16 + sync
)

var (
	ErrShortFrame = errors.New("incomplete frame")
	ErrBadSync    = errors.New("missing frame sync byte")
	ErrBadCRC     = errors.New("frame CRC mismatch")
	ErrFrameSize  = errors.New("frame length out of range")
)

// EncodeFrame appends one framed message to the output buffer.
func EncodeFrame(out OutputBuffer, m Message) {
	start := out.CurPosition()
	out.Output([]byte{0}) // length placeholder
	EncodeVLQUint(out, uint32(m.ID))
	out.Output(m.Data[:m.Length])

	body := out.DataSince(start)
	total := len(body) + frameTrailer
	out.Update(start, byte(total))

	// Recompute over the patched length byte.
	crc := CRC16(out.DataSince(start))
	out.Output([]byte{byte(crc >> 8), byte(crc), FrameSync})
}

// DecodeFrame consumes one frame from the front of data and returns the
// message it carries. ErrShortFrame means more bytes are needed and
// nothing was consumed; any other error consumes the bad frame.
func DecodeFrame(data *[]byte) (Message, error) {
	buf := *data
	if len(buf) < 1 {
		return Message{}, ErrShortFrame
	}

	total := int(buf[0])
	if total < FrameMin || total > FrameMax {
		// Unrecoverable garbage; drop the byte so the stream can resync.
		*data = buf[1:]
		return Message{}, ErrFrameSize
	}
	if len(buf) < total {
		return Message{}, ErrShortFrame
	}

	frame := buf[:total]
	*data = buf[total:]

	if frame[total-1] != FrameSync {
		return Message{}, ErrBadSync
	}

	body := frame[:total-frameTrailer]
	want := uint16(frame[total-3])<<8 | uint16(frame[total-2])
	if CRC16(body) != want {
		return Message{}, ErrBadCRC
	}

	rest := body[1:] // skip length byte
	id, err := DecodeVLQUint(&rest)
	if err != nil {
		return Message{}, err
	}

	return NewMessage(uint16(id), rest)
}
