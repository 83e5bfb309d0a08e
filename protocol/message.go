// Package protocol defines the bus messages exchanged between game-station
// nodes and the frame codec used on the host serial link.
package protocol

import "errors"

// Bus message identifiers. The input/select/difficulty messages originate
// at the operator node; the rest are emitted by the control node.
const (
	MsgUserInput        uint16 = 0x10 // 6-byte raw input frame
	MsgControllerSelect uint16 = 0x11 // 1 byte: control scheme selector
	MsgDifficulty       uint16 = 0x12 // 1 byte: difficulty tier
	MsgLivesLeft        uint16 = 0x20 // 1 byte: lives remaining after a fail
	MsgScoreRequest     uint16 = 0x21 // empty: ask the node for its score
	MsgScore            uint16 = 0x22 // 4 bytes: score, little-endian
	MsgDegraded         uint16 = 0x23 // 1 byte: actuator error count (saturated)
)

// PayloadMax is the largest message payload, CAN-style.
const PayloadMax = 8

var ErrPayloadTooLong = errors.New("message payload exceeds 8 bytes")

// Message is one fixed-shape bus notification: an identifier, a payload
// length and up to 8 data bytes.
type Message struct {
	ID     uint16
	Length uint8
	Data   [PayloadMax]byte
}

// NewMessage builds a Message from id and payload. Payloads longer than
// PayloadMax are an error; the zero Message is returned.
func NewMessage(id uint16, payload []byte) (Message, error) {
	if len(payload) > PayloadMax {
		return Message{}, ErrPayloadTooLong
	}
	m := Message{ID: id, Length: uint8(len(payload))}
	copy(m.Data[:], payload)
	return m, nil
}

// Payload returns the valid portion of the data array.
func (m *Message) Payload() []byte {
	return m.Data[:m.Length]
}

// ScorePayload packs a score counter into the MsgScore wire layout.
func ScorePayload(score uint32) []byte {
	return []byte{
		byte(score),
		byte(score >> 8),
		byte(score >> 16),
		byte(score >> 24),
	}
}

// DecodeScore unpacks a MsgScore payload.
func DecodeScore(payload []byte) (uint32, error) {
	if len(payload) != 4 {
		return 0, ErrShortFrame
	}
	return uint32(payload[0]) |
		uint32(payload[1])<<8 |
		uint32(payload[2])<<16 |
		uint32(payload[3])<<24, nil
}
