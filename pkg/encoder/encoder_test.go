package encoder_test

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambworks/worshipper-data/pkg/decoder"
	"github.com/lambworks/worshipper-data/pkg/encoder"
)

func TestWriteU32(t *testing.T) {
	w := encoder.NewWriter()
	w.WriteU32(0xdeadbeef)

	assert.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde}, w.Buf)
}

func TestWriteString(t *testing.T) {
	w := encoder.NewWriter()
	w.WriteString("hello")

	want := binary.LittleEndian.AppendUint32(nil, 5)
	want = append(want, "hello"...)
	want = append(want, 0, 0, 0)
	assert.Equal(t, want, w.Buf)
}

func TestWriteStringAligned(t *testing.T) {
	w := encoder.NewWriter()
	w.WriteString("four")

	assert.Len(t, w.Buf, 8)
}

func TestWriteStringEmpty(t *testing.T) {
	w := encoder.NewWriter()
	w.WriteString("")

	assert.Equal(t, []byte{0, 0, 0, 0}, w.Buf)
}

func randomColor(r *rand.Rand) decoder.Color {
	return decoder.Color{
		R: r.Float32(),
		G: r.Float32(),
		B: r.Float32(),
		A: r.Float32(),
	}
}

func randomColorSet(r *rand.Rand) decoder.ColorSet {
	var set decoder.ColorSet
	for i, n := 0, r.Intn(5); i < n; i++ {
		set.Set(gofakeit.Word(), randomColor(r))
	}
	set.Last = randomColor(r)
	return set
}

func randomSkin(r *rand.Rand) decoder.Skin {
	skin := decoder.Skin{
		Name:      gofakeit.Name(),
		Zone:      r.Uint32(),
		IsBlocked: uint32(r.Intn(2)),
		IsToww:    uint32(r.Intn(2)),
		IsBoss:    uint32(r.Intn(2)),
		Skins:     []string{},
		Sets:      []decoder.ColorSet{},
		Last:      r.Uint32(),
	}
	for i, n := 0, r.Intn(4); i < n; i++ {
		skin.Skins = append(skin.Skins, gofakeit.Word())
	}
	for i, n := 0, r.Intn(3); i < n; i++ {
		skin.Sets = append(skin.Sets, randomColorSet(r))
	}
	return skin
}

func randomDocument(r *rand.Rand) *decoder.Document {
	doc := &decoder.Document{
		Global: []decoder.ColorSet{},
		Last:   r.Uint32(),
		Skins:  []decoder.Skin{},
	}
	for i := range doc.Header {
		doc.Header[i] = r.Uint32()
	}
	for i, n := 0, r.Intn(3); i < n; i++ {
		doc.Global = append(doc.Global, randomColorSet(r))
	}
	for i, n := 0, r.Intn(6); i < n; i++ {
		doc.Skins = append(doc.Skins, randomSkin(r))
	}
	return doc
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	gofakeit.Seed(11)
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 20; i++ {
		doc := randomDocument(rng)

		buf := encoder.EncodeDocument(doc)
		decoded, err := decoder.Decode(buf)
		require.NoError(t, err)
		assert.Equal(t, doc, decoded)
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	gofakeit.Seed(23)
	rng := rand.New(rand.NewSource(23))

	for i := 0; i < 20; i++ {
		buf := encoder.EncodeDocument(randomDocument(rng))

		decoded, err := decoder.Decode(buf)
		require.NoError(t, err)
		assert.Equal(t, buf, encoder.EncodeDocument(decoded))
	}
}

func TestEncodedStreamEndsExactly(t *testing.T) {
	gofakeit.Seed(31)
	rng := rand.New(rand.NewSource(31))

	buf := encoder.EncodeDocument(randomDocument(rng))

	_, err := decoder.Decode(append(buf, 0))
	require.ErrorIs(t, err, decoder.ErrBufferUnderrun)
}
