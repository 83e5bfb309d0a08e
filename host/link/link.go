// Package link speaks the framed message protocol to a game node over
// a serial port: it decodes the node's event stream and sends
// configuration messages back.
package link

import (
	"fmt"
	"sync"

	"gamenode/host/serial"
	"gamenode/protocol"
)

// Link is a host-side connection to one game node.
type Link struct {
	port serial.Port

	writeMu sync.Mutex

	rx *protocol.FifoBuffer

	// Event callbacks, set before Run. Nil callbacks drop the event.
	OnLivesLeft func(lives int8)
	OnScore     func(score uint32)
	OnDegraded  func(errCount uint8)

	closeMu sync.Mutex
	closed  bool
}

// New wraps an open port.
func New(port serial.Port) *Link {
	return &Link{
		port: port,
		rx:   protocol.NewFifoBuffer(512),
	}
}

// Connect opens the device with the default serial configuration.
func Connect(device string) (*Link, error) {
	port, err := serial.Open(serial.DefaultConfig(device))
	if err != nil {
		return nil, fmt.Errorf("connect to node: %w", err)
	}
	return New(port), nil
}

// Close shuts the link down; a blocked Run returns after the port read
// fails.
func (l *Link) Close() error {
	l.closeMu.Lock()
	l.closed = true
	l.closeMu.Unlock()
	return l.port.Close()
}

func (l *Link) isClosed() bool {
	l.closeMu.Lock()
	defer l.closeMu.Unlock()
	return l.closed
}

// Run reads the event stream until the link closes or the port errors.
// Frame-level errors (bad CRC, resync garbage) are skipped: the stream
// recovers on the next frame boundary.
func (l *Link) Run() error {
	buf := make([]byte, 256)
	for {
		n, err := l.port.Read(buf)
		if err != nil {
			if l.isClosed() {
				return nil
			}
			return fmt.Errorf("read from node: %w", err)
		}
		if n == 0 {
			// Read timeout; poll again unless closing.
			if l.isClosed() {
				return nil
			}
			continue
		}

		l.rx.Write(buf[:n])
		l.drainFrames()
	}
}

// drainFrames decodes every complete frame buffered so far.
func (l *Link) drainFrames() {
	for {
		data := l.rx.Data()
		before := len(data)
		m, err := protocol.DecodeFrame(&data)
		consumed := before - len(data)
		l.rx.Pop(consumed)

		if err == protocol.ErrShortFrame {
			return
		}
		if err != nil {
			continue
		}
		l.dispatch(m)
	}
}

func (l *Link) dispatch(m protocol.Message) {
	switch m.ID {
	case protocol.MsgLivesLeft:
		if l.OnLivesLeft != nil && m.Length == 1 {
			l.OnLivesLeft(int8(m.Data[0]))
		}
	case protocol.MsgScore:
		if l.OnScore != nil {
			if score, err := protocol.DecodeScore(m.Payload()); err == nil {
				l.OnScore(score)
			}
		}
	case protocol.MsgDegraded:
		if l.OnDegraded != nil && m.Length == 1 {
			l.OnDegraded(m.Data[0])
		}
	}
}

// send frames and writes one message.
func (l *Link) send(m protocol.Message) error {
	out := protocol.NewScratchOutput()
	protocol.EncodeFrame(out, m)

	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	if _, err := l.port.Write(out.Result()); err != nil {
		return fmt.Errorf("write to node: %w", err)
	}
	return nil
}

// SetControlScheme selects the node's input mapping.
func (l *Link) SetControlScheme(selector uint8) error {
	m, err := protocol.NewMessage(protocol.MsgControllerSelect, []byte{selector})
	if err != nil {
		return err
	}
	return l.send(m)
}

// SetDifficulty selects the node's difficulty tier.
func (l *Link) SetDifficulty(tier uint8) error {
	m, err := protocol.NewMessage(protocol.MsgDifficulty, []byte{tier})
	if err != nil {
		return err
	}
	return l.send(m)
}

// SendInputFrame forwards a raw 6-byte operator input frame.
func (l *Link) SendInputFrame(frame []byte) error {
	m, err := protocol.NewMessage(protocol.MsgUserInput, frame)
	if err != nil {
		return err
	}
	return l.send(m)
}

// RequestScore asks the node to report its score; the answer arrives
// through OnScore.
func (l *Link) RequestScore() error {
	m, err := protocol.NewMessage(protocol.MsgScoreRequest, nil)
	if err != nil {
		return err
	}
	return l.send(m)
}
