package ppu

import "testing"

func TestSpriteFromBytesDecodesAttributes(t *testing.T) {
	cases := []struct {
		attrib         uint8
		wantPalette    uint8
		wantPriority   spritePriority
		wantFH, wantFV bool
	}{
		{0b11111111, 0x03, priorityBehind, true, true},
		{0b01111111, 0x03, priorityBehind, true, false},
		{0b00111111, 0x03, priorityBehind, false, false},
		{0b00111101, 0x01, priorityBehind, false, false},
		{0b00011101, 0x01, priorityFront, false, false},
		{0b10011101, 0x01, priorityFront, false, true},
		{0b10011110, 0x02, priorityFront, false, true},
	}

	for i, tc := range cases {
		s := spriteFromBytes([]uint8{0, 0, tc.attrib, 0}, 0)
		if s.palette != tc.wantPalette || s.priority != tc.wantPriority || s.flipH != tc.wantFH || s.flipV != tc.wantFV {
			t.Errorf("%d: %02x, %d, %t, %t; wanted %02x, %d, %t, %t",
				i, s.palette, s.priority, s.flipH, s.flipV, tc.wantPalette, tc.wantPriority, tc.wantFH, tc.wantFV)
		}
	}
}

func TestSpriteFromBytesPosition(t *testing.T) {
	s := spriteFromBytes([]uint8{0x40, 0x07, 0x00, 0x20}, 5)
	if s.y != 0x40 || s.tile != 0x07 || s.x != 0x20 || s.index != 5 {
		t.Fatalf("unexpected sprite decode: %+v", s)
	}
}
