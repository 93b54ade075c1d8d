package notation

import "strings"

type DurationClass int

const (
	Whole DurationClass = iota
	Half
	Quarter
	Eighth
	Sixteenth
	ThirtySecond
	SixtyFourth
)

const numClasses = 7

// UnitsPerBeat is how many of the smallest quantization units fit in a beat.
const UnitsPerBeat = 16

var classCodes = [numClasses]string{"w", "h", "q", "8", "16", "32", "64"}

func (c DurationClass) String() string {
	if c < Whole || c > SixtyFourth {
		return "?"
	}
	return classCodes[c]
}

// bit is the position of the class in a quantized unit count: Whole is 64
// units, SixtyFourth is 1.
func (c DurationClass) bit() uint {
	return uint(SixtyFourth - c)
}

type Duration struct {
	Class DurationClass
	Dots  int
}

func (d Duration) String() string {
	return d.Class.String() + strings.Repeat(".", d.Dots)
}

// Ticks is the total length: base * (2 - 2^-dots).
func (d Duration) Ticks(ticksPerBeat int) int {
	base := unitTicks(ticksPerBeat) << d.Class.bit()
	total := base
	for i := 1; i <= d.Dots; i++ {
		total += base >> uint(i)
	}
	return total
}

func unitTicks(ticksPerBeat int) int {
	unit := ticksPerBeat / UnitsPerBeat
	if unit < 1 {
		unit = 1
	}
	return unit
}

// ConvertTicksToDuration quantizes a tick length. The unit count is masked
// to 7 bits; its highest set bit gives the class and the run of set bits
// right below it, up to two, gives the dots. A zero count becomes a dotted
// sixty-fourth.
func ConvertTicksToDuration(ticksPerBeat int, delta int) Duration {
	if delta < 0 {
		delta = 0
	}
	n := (delta / unitTicks(ticksPerBeat)) & 0x7f

	for c := Whole; c <= SixtyFourth; c++ {
		b := c.bit()
		if n&(1<<b) == 0 {
			continue
		}
		dots := 0
		for dots < 2 && b > uint(dots) && n&(1<<(b-uint(dots)-1)) != 0 {
			dots++
		}
		return Duration{Class: c, Dots: dots}
	}
	return Duration{Class: SixtyFourth, Dots: 1}
}
