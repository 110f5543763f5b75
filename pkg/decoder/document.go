package decoder

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Color is a single RGBA value. Components are carried verbatim from the
// stream, not clamped to [0, 1].
type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

// ColorSet is one palette choice: an insertion-ordered mapping from slot
// name to Color, plus one unnamed trailing reference color.
type ColorSet struct {
	slots  []string
	colors map[string]Color

	// Last is the distinguished trailing color; it is not part of the slot
	// mapping and serializes under the reserved "last" key.
	Last Color
}

// Set assigns a color to a slot. A duplicate slot name overwrites the
// earlier value but keeps its original position.
func (cs *ColorSet) Set(slot string, color Color) {
	if cs.colors == nil {
		cs.colors = make(map[string]Color)
	}
	if _, ok := cs.colors[slot]; !ok {
		cs.slots = append(cs.slots, slot)
	}
	cs.colors[slot] = color
}

// Get returns the color assigned to a slot.
func (cs *ColorSet) Get(slot string) (Color, bool) {
	color, ok := cs.colors[slot]
	return color, ok
}

// Slots returns the slot names in the order they were first assigned.
func (cs *ColorSet) Slots() []string {
	return cs.slots
}

// Len returns the number of named slots, excluding the trailing color.
func (cs *ColorSet) Len() int {
	return len(cs.slots)
}

// MarshalJSON writes the slots as object keys in their read order, then the
// reserved "last" key holding the trailing color as a 4-element array.
func (cs ColorSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, slot := range cs.slots {
		key, err := json.Marshal(slot)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(cs.colors[slot])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
		buf.WriteByte(',')
	}
	last, err := json.Marshal([4]float32{cs.Last.R, cs.Last.G, cs.Last.B, cs.Last.A})
	if err != nil {
		return nil, err
	}
	buf.WriteString(`"last":`)
	buf.Write(last)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Skin is one cosmetic variant of a character: its zone and availability
// flags, the skin names it references, and the palettes it supports. The
// flags are u32 on the wire and are kept that way.
type Skin struct {
	Name      string     `json:"name"`
	Zone      uint32     `json:"zone"`
	IsBlocked uint32     `json:"is_blocked"`
	IsToww    uint32     `json:"is_toww"`
	IsBoss    uint32     `json:"is_boss"`
	Skins     []string   `json:"skins"`
	Sets      []ColorSet `json:"sets"`
	Last      uint32     `json:"last"`
}

// Document is a fully decoded worshipper-data tree. It is built in one pass
// over a single buffer and never mutated afterwards.
type Document struct {
	// Header holds the 11 leading words. Their meaning is unknown; they are
	// preserved verbatim and omitted from the JSON view.
	Header [11]uint32 `json:"-"`
	Global []ColorSet `json:"global"`
	Last   uint32     `json:"-"`
	Skins  []Skin     `json:"skins"`
}
