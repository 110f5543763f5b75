package decoder

// Decode reads one complete document from buf. The first malformed field
// aborts the whole decode; there is no partial document.
func Decode(buf []byte) (*Document, error) {
	return DecodeDocument(From(buf))
}

func readColor(c *Cursor) (Color, error) {
	r, err := c.ReadF32()
	if err != nil {
		return Color{}, err
	}
	g, err := c.ReadF32()
	if err != nil {
		return Color{}, err
	}
	b, err := c.ReadF32()
	if err != nil {
		return Color{}, err
	}
	a, err := c.ReadF32()
	if err != nil {
		return Color{}, err
	}
	return Color{R: r, G: g, B: b, A: a}, nil
}

// DecodeColorSet reads a count-prefixed list of (slot name, color) pairs
// followed by the trailing reference color.
func DecodeColorSet(c *Cursor) (ColorSet, error) {
	var set ColorSet
	slotCount, err := c.ReadU32()
	if err != nil {
		return set, err
	}
	for i := uint32(0); i < slotCount; i++ {
		slot, err := c.ReadString()
		if err != nil {
			return set, err
		}
		color, err := readColor(c)
		if err != nil {
			return set, err
		}
		set.Set(slot, color)
	}
	set.Last, err = readColor(c)
	return set, err
}

// DecodeSkin reads one skin record. Every field is positional; nothing in
// the stream tags or delimits them.
func DecodeSkin(c *Cursor) (Skin, error) {
	skin := Skin{
		Skins: []string{},
		Sets:  []ColorSet{},
	}
	var err error
	if skin.Name, err = c.ReadString(); err != nil {
		return skin, err
	}
	if skin.Zone, err = c.ReadU32(); err != nil {
		return skin, err
	}
	if skin.IsBlocked, err = c.ReadU32(); err != nil {
		return skin, err
	}
	if skin.IsToww, err = c.ReadU32(); err != nil {
		return skin, err
	}
	if skin.IsBoss, err = c.ReadU32(); err != nil {
		return skin, err
	}

	skinCount, err := c.ReadU32()
	if err != nil {
		return skin, err
	}
	for i := uint32(0); i < skinCount; i++ {
		name, err := c.ReadString()
		if err != nil {
			return skin, err
		}
		skin.Skins = append(skin.Skins, name)
	}

	setCount, err := c.ReadU32()
	if err != nil {
		return skin, err
	}
	for i := uint32(0); i < setCount; i++ {
		set, err := DecodeColorSet(c)
		if err != nil {
			return skin, err
		}
		skin.Sets = append(skin.Sets, set)
	}

	skin.Last, err = c.ReadU32()
	return skin, err
}

// DecodeDocument reads the header words, the global color sets, and then
// skin records until the buffer is exactly exhausted. The skin loop has no
// upper bound; only AtEOF terminates it.
func DecodeDocument(c *Cursor) (*Document, error) {
	doc := &Document{
		Global: []ColorSet{},
		Skins:  []Skin{},
	}
	var err error
	for i := range doc.Header {
		if doc.Header[i], err = c.ReadU32(); err != nil {
			return nil, err
		}
	}

	setCount, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < setCount; i++ {
		set, err := DecodeColorSet(c)
		if err != nil {
			return nil, err
		}
		doc.Global = append(doc.Global, set)
	}

	if doc.Last, err = c.ReadU32(); err != nil {
		return nil, err
	}

	for !c.AtEOF() {
		skin, err := DecodeSkin(c)
		if err != nil {
			return nil, err
		}
		doc.Skins = append(doc.Skins, skin)
	}
	return doc, nil
}
