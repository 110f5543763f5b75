package encoder

import (
	"encoding/binary"
	"math"

	"github.com/lambworks/worshipper-data/pkg/decoder"
)

// Writer accumulates the little-endian wire form of a document.
type Writer struct {
	Buf []byte
}

func NewWriter() *Writer {
	return &Writer{
		Buf: []byte{},
	}
}

func (w *Writer) WriteU32(value uint32) {
	w.Buf = binary.LittleEndian.AppendUint32(w.Buf, value)
}

func (w *Writer) WriteF32(value float32) {
	w.WriteU32(math.Float32bits(value))
}

// WriteString writes the u32 byte length, the raw bytes, and zero padding
// up to the next 4-byte boundary.
func (w *Writer) WriteString(s string) {
	w.WriteU32(uint32(len(s)))
	w.Buf = append(w.Buf, s...)
	for len(w.Buf)%4 != 0 {
		w.Buf = append(w.Buf, 0)
	}
}

func (w *Writer) writeColor(color decoder.Color) {
	w.WriteF32(color.R)
	w.WriteF32(color.G)
	w.WriteF32(color.B)
	w.WriteF32(color.A)
}

// EncodeColorSet writes the slot pairs in their insertion order, then the
// trailing reference color.
func (w *Writer) EncodeColorSet(set decoder.ColorSet) {
	w.WriteU32(uint32(set.Len()))
	for _, slot := range set.Slots() {
		w.WriteString(slot)
		color, _ := set.Get(slot)
		w.writeColor(color)
	}
	w.writeColor(set.Last)
}

func (w *Writer) EncodeSkin(skin decoder.Skin) {
	w.WriteString(skin.Name)
	w.WriteU32(skin.Zone)
	w.WriteU32(skin.IsBlocked)
	w.WriteU32(skin.IsToww)
	w.WriteU32(skin.IsBoss)
	w.WriteU32(uint32(len(skin.Skins)))
	for _, name := range skin.Skins {
		w.WriteString(name)
	}
	w.WriteU32(uint32(len(skin.Sets)))
	for _, set := range skin.Sets {
		w.EncodeColorSet(set)
	}
	w.WriteU32(skin.Last)
}

// EncodeDocument produces the exact wire form of doc; decoding the result
// reproduces doc, and encoding a decoded buffer reproduces the buffer.
func EncodeDocument(doc *decoder.Document) []byte {
	w := NewWriter()
	for _, word := range doc.Header {
		w.WriteU32(word)
	}
	w.WriteU32(uint32(len(doc.Global)))
	for _, set := range doc.Global {
		w.EncodeColorSet(set)
	}
	w.WriteU32(doc.Last)
	for _, skin := range doc.Skins {
		w.EncodeSkin(skin)
	}
	return w.Buf
}
