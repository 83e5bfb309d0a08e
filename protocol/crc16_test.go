package protocol

import "testing"

func TestCRC16Deterministic(t *testing.T) {
	data := []byte{0x06, 0x20, 0x02}
	if CRC16(data) != CRC16(data) {
		t.Error("CRC16 not deterministic")
	}
}

func TestCRC16Empty(t *testing.T) {
	if got := CRC16(nil); got != 0xFFFF {
		t.Errorf("empty input: got %#x, want 0xFFFF", got)
	}
}

func TestCRC16DetectsCorruption(t *testing.T) {
	data := []byte{0x06, 0x20, 0x02}
	want := CRC16(data)

	for i := range data {
		for bit := 0; bit < 8; bit++ {
			mutated := append([]byte(nil), data...)
			mutated[i] ^= 1 << bit
			if CRC16(mutated) == want {
				t.Errorf("single-bit flip at byte %d bit %d not detected", i, bit)
			}
		}
	}
}

func TestCRC16OrderSensitive(t *testing.T) {
	if CRC16([]byte{1, 2, 3}) == CRC16([]byte{3, 2, 1}) {
		t.Error("CRC16 insensitive to byte order")
	}
}
