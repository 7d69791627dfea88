package ppu

// spritePriority selects whether a sprite draws in front of or behind
// opaque background pixels.
type spritePriority uint8

const (
	priorityFront spritePriority = iota
	priorityBehind
)

// sprite is the decoded form of a 4-byte OAM entry.
// https://www.nesdev.org/wiki/PPU_OAM
type sprite struct {
	y, x         uint8
	tile         uint8
	palette      uint8
	priority     spritePriority
	flipH, flipV bool
	index        int // original OAM index, needed for the sprite-0 hit test
}

func spriteFromBytes(in []uint8, index int) sprite {
	return sprite{
		y:        in[0],
		tile:     in[1],
		palette:  in[2] & 0x03,
		priority: spritePriority((in[2] & 0x20) >> 5),
		flipH:    in[2]&0x40 != 0,
		flipV:    in[2]&0x80 != 0,
		x:        in[3],
		index:    index,
	}
}
