package link

import (
	"bytes"
	"io"
	"sync"
	"testing"
	"time"

	"gamenode/protocol"
)

// fakePort feeds scripted bytes to Read and captures Write.
type fakePort struct {
	rx     chan []byte
	closed chan struct{}

	mu     sync.Mutex
	writes bytes.Buffer
}

func newFakePort() *fakePort {
	return &fakePort{
		rx:     make(chan []byte, 16),
		closed: make(chan struct{}),
	}
}

func (p *fakePort) Read(b []byte) (int, error) {
	select {
	case data := <-p.rx:
		return copy(b, data), nil
	case <-p.closed:
		return 0, io.EOF
	}
}

func (p *fakePort) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writes.Write(b)
}

func (p *fakePort) Close() error {
	close(p.closed)
	return nil
}

func (p *fakePort) written() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]byte(nil), p.writes.Bytes()...)
}

func encodeFrame(t *testing.T, id uint16, payload []byte) []byte {
	t.Helper()
	m, err := protocol.NewMessage(id, payload)
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}
	out := protocol.NewScratchOutput()
	protocol.EncodeFrame(out, m)
	return append([]byte(nil), out.Result()...)
}

func TestLinkDispatchesEvents(t *testing.T) {
	port := newFakePort()
	l := New(port)

	lives := make(chan int8, 4)
	scores := make(chan uint32, 4)
	l.OnLivesLeft = func(v int8) { lives <- v }
	l.OnScore = func(v uint32) { scores <- v }

	done := make(chan error, 1)
	go func() { done <- l.Run() }()

	port.rx <- encodeFrame(t, protocol.MsgLivesLeft, []byte{2})
	port.rx <- encodeFrame(t, protocol.MsgScore, protocol.ScorePayload(321))
	// 0xFF is the wire form of -1 lives.
	port.rx <- encodeFrame(t, protocol.MsgLivesLeft, []byte{0xFF})

	expectLives := func(want int8) {
		select {
		case got := <-lives:
			if got != want {
				t.Errorf("lives = %d, want %d", got, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for lives event %d", want)
		}
	}

	expectLives(2)
	select {
	case got := <-scores:
		if got != 321 {
			t.Errorf("score = %d, want 321", got)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for score event")
	}
	expectLives(-1)

	if err := l.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := <-done; err != nil {
		t.Errorf("Run returned %v after close, want nil", err)
	}
}

func TestLinkRecoversFromCorruptFrame(t *testing.T) {
	port := newFakePort()
	l := New(port)

	lives := make(chan int8, 1)
	l.OnLivesLeft = func(v int8) { lives <- v }

	go l.Run()
	defer l.Close()

	bad := encodeFrame(t, protocol.MsgLivesLeft, []byte{3})
	bad[2] ^= 0xAA
	port.rx <- bad
	port.rx <- encodeFrame(t, protocol.MsgLivesLeft, []byte{1})

	select {
	case got := <-lives:
		if got != 1 {
			t.Errorf("lives = %d, want 1 (from the good frame)", got)
		}
	case <-time.After(time.Second):
		t.Fatal("link did not recover from the corrupt frame")
	}
}

func TestLinkSplitFrameAcrossReads(t *testing.T) {
	port := newFakePort()
	l := New(port)

	lives := make(chan int8, 1)
	l.OnLivesLeft = func(v int8) { lives <- v }

	go l.Run()
	defer l.Close()

	full := encodeFrame(t, protocol.MsgLivesLeft, []byte{2})
	port.rx <- full[:2]
	port.rx <- full[2:]

	select {
	case got := <-lives:
		if got != 2 {
			t.Errorf("lives = %d, want 2", got)
		}
	case <-time.After(time.Second):
		t.Fatal("split frame never decoded")
	}
}

func TestLinkCommandsAreWellFormed(t *testing.T) {
	port := newFakePort()
	l := New(port)

	if err := l.SetDifficulty(1); err != nil {
		t.Fatalf("SetDifficulty: %v", err)
	}
	if err := l.SetControlScheme(2); err != nil {
		t.Fatalf("SetControlScheme: %v", err)
	}
	if err := l.SendInputFrame([]byte{1, 2, 3, 4, 5, 6}); err != nil {
		t.Fatalf("SendInputFrame: %v", err)
	}
	if err := l.RequestScore(); err != nil {
		t.Fatalf("RequestScore: %v", err)
	}

	data := port.written()
	wantIDs := []uint16{
		protocol.MsgDifficulty,
		protocol.MsgControllerSelect,
		protocol.MsgUserInput,
		protocol.MsgScoreRequest,
	}
	for _, want := range wantIDs {
		m, err := protocol.DecodeFrame(&data)
		if err != nil {
			t.Fatalf("DecodeFrame for %#x: %v", want, err)
		}
		if m.ID != want {
			t.Errorf("message id = %#x, want %#x", m.ID, want)
		}
	}
	if len(data) != 0 {
		t.Errorf("%d stray bytes after commands", len(data))
	}
}
