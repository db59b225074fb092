package control

// Type is a control block type. The first byte of every field carries its
// Prefix in the bits outside of Mask.
type Type struct {
	Prefix byte
	Mask   byte
	Abbr   string

	// Inline is the data size of a type that keeps its first data byte in
	// the masked bits. It is 0 for sized types.
	Inline int
}

// Match returns true if this control type matches the given byte.
func (t Type) Match(b byte) bool {
	return b&^t.Mask == t.Prefix
}

// Fits reports whether data can be written as an inline field of this type.
func (t Type) Fits(data []byte) bool {
	return t.Inline > 0 && len(data) == t.Inline && data[0]&t.Mask == data[0]
}

type types []Type

func (ts types) Match(b byte) (t Type, ok bool) {
	for _, t := range ts {
		if t.Match(b) {
			return t, true
		}
	}

	return t, false
}

var (
	Unknown      = Type{}
	Data         = Type{Prefix: 0b_1000_0000, Mask: 0b_0111_1111, Abbr: "d", Inline: 1}
	DataSize     = Type{Prefix: 0b_0100_0000, Mask: 0b_0011_1111, Abbr: "dz"}
	Data1        = Type{Prefix: 0b_0010_0000, Mask: 0b_0001_1111, Abbr: "d1", Inline: 2}
	Data2        = Type{Prefix: 0b_0001_0000, Mask: 0b_0000_1111, Abbr: "d2", Inline: 3}
	DataSizeSize = Type{Prefix: 0b_0000_1000, Mask: 0b_0000_0111, Abbr: "dzz"}

	// Types lists every type in match order.
	Types = types{
		Data,
		DataSize,
		Data1,
		Data2,
		DataSizeSize,
	}

	inline = types{Data, Data1, Data2}
)
