package core

import (
	"errors"

	"gamenode/protocol"
)

var ErrBadPayload = errors.New("unexpected message payload length")

// HandleMessage routes one received bus message into the core. Called
// from the foreground receive path, never from the tick handler.
// Message IDs this node does not consume are ignored: the bus is shared
// and other nodes talk past us.
func (g *Game) HandleMessage(m protocol.Message) error {
	switch m.ID {
	case protocol.MsgUserInput:
		return g.ApplyRawFrame(m.Payload())

	case protocol.MsgControllerSelect:
		if m.Length != 1 {
			return ErrBadPayload
		}
		g.SetControlScheme(ControlScheme(m.Data[0]))
		return nil

	case protocol.MsgDifficulty:
		if m.Length != 1 {
			return ErrBadPayload
		}
		return g.SetDifficulty(Difficulty(m.Data[0]))

	case protocol.MsgScoreRequest:
		reply, err := protocol.NewMessage(protocol.MsgScore, protocol.ScorePayload(g.Score()))
		if err != nil {
			return err
		}
		return MustBus().Send(reply, 0)
	}

	return nil
}
