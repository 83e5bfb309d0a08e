//go:build rp2040

package main

import (
	"machine"

	"gamenode/protocol"
)

// serialBus carries bus messages over the USB CDC link as CRC-framed
// packets. Send runs in interrupt context: it encodes into a
// preallocated scratch buffer and never blocks on the reader side.
type serialBus struct {
	out *protocol.ScratchOutput
}

func newSerialBus() *serialBus {
	return &serialBus{out: protocol.NewScratchOutput()}
}

// Send is best-effort: a full USB buffer drops bytes rather than
// stalling the control cycle. Priority is carried for bus transports
// that honor it; the serial link has a single lane.
func (b *serialBus) Send(m protocol.Message, priority uint8) error {
	b.out.Reset()
	protocol.EncodeFrame(b.out, m)
	_, err := machine.Serial.Write(b.out.Result())
	return err
}
