package apu

// lengthTable converts the 5-bit length-counter load value (bits 3-7 of a
// $4003/$4007/$400B/$400F write) into the actual tick count.
// https://www.nesdev.org/wiki/APU_Length_Counter
var lengthTable = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

// dutySequences are the four pulse-channel waveform duty cycles, read
// high-bit-first.
var dutySequences = [4][8]uint8{
	{0, 1, 0, 0, 0, 0, 0, 0}, // 12.5%
	{0, 1, 1, 0, 0, 0, 0, 0}, // 25%
	{0, 1, 1, 1, 1, 0, 0, 0}, // 50%
	{1, 0, 0, 1, 1, 1, 1, 1}, // 25% negated
}

// triangleSequence is the 32-step triangle waveform.
var triangleSequence = [32]uint8{
	15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

// noisePeriodsNTSC is the timer-reload table selected by a noise channel's
// 4-bit period index.
var noisePeriodsNTSC = [16]uint16{
	4, 8, 16, 32, 64, 96, 128, 160, 202, 254, 380, 508, 762, 1016, 2034, 4068,
}

// dmcRatesNTSC is the timer-reload table selected by a DMC channel's 4-bit
// rate index.
var dmcRatesNTSC = [16]uint16{
	428, 380, 340, 320, 286, 254, 226, 214, 190, 160, 142, 128, 106, 84, 72, 54,
}
