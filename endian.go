package pcmi

// EndianStrategy reads multi-byte integers from a byte slice at a given
// offset. Two implementations exist: Swap (big-endian) and NonSwap
// (little-endian), selected once per record from its record_format byte
// and then threaded through every subsequent field read (spec.md §4.2).
type EndianStrategy interface {
	Uint16(b []byte, offset int) uint16
	Int16(b []byte, offset int) int16
	Uint32(b []byte, offset int) uint32
	Int32(b []byte, offset int) int32
	Name() string
}

type swapStrategy struct{}

func (swapStrategy) Name() string { return "Swap" }

func (swapStrategy) Uint16(b []byte, o int) uint16 {
	return uint16(b[o])<<8 | uint16(b[o+1])
}

func (swapStrategy) Int16(b []byte, o int) int16 {
	return int16(swapStrategy{}.Uint16(b, o))
}

func (swapStrategy) Uint32(b []byte, o int) uint32 {
	return uint32(b[o])<<24 | uint32(b[o+1])<<16 | uint32(b[o+2])<<8 | uint32(b[o+3])
}

func (swapStrategy) Int32(b []byte, o int) int32 {
	return int32(swapStrategy{}.Uint32(b, o))
}

type nonSwapStrategy struct{}

func (nonSwapStrategy) Name() string { return "NonSwap" }

func (nonSwapStrategy) Uint16(b []byte, o int) uint16 {
	return uint16(b[o]) | uint16(b[o+1])<<8
}

func (nonSwapStrategy) Int16(b []byte, o int) int16 {
	return int16(nonSwapStrategy{}.Uint16(b, o))
}

func (nonSwapStrategy) Uint32(b []byte, o int) uint32 {
	return uint32(b[o]) | uint32(b[o+1])<<8 | uint32(b[o+2])<<16 | uint32(b[o+3])<<24
}

func (nonSwapStrategy) Int32(b []byte, o int) int32 {
	return int32(nonSwapStrategy{}.Uint32(b, o))
}

// Swap and NonSwap are the two shared EndianStrategy instances. Both are
// stateless, so a single instance of each is resolved once per record and
// reused for every field read.
var (
	Swap    EndianStrategy = swapStrategy{}
	NonSwap EndianStrategy = nonSwapStrategy{}
)

// endianStrategyForFormat selects the endian strategy for a record,
// keyed off its record_format byte: format < 20 => Swap (big-endian),
// format >= 20 => NonSwap (little-endian). (spec.md §3, §4.2)
func endianStrategyForFormat(recordFormat byte) EndianStrategy {
	if recordFormat < 20 {
		return Swap
	}
	return NonSwap
}
