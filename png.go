package minipng

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/k1LoW/errors"
)

// DefaultFilename is the file the generator writes when no output is configured.
const DefaultFilename = "67bytepng.png"

// Signature is the 8-byte PNG file signature.
var Signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// ColorTypeRGBA is truecolor with alpha.
const ColorTypeRGBA uint8 = 6

// pixelData is a zlib stream holding one scanline: filter byte 0 and a transparent black RGBA sample.
const pixelData = "789c6300010000050001"

// Header is the IHDR chunk data.
type Header struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         uint8
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

const headerSize = 13

// Bytes encodes the header as 13 big-endian bytes.
func (h Header) Bytes() []byte {
	b := make([]byte, 0, headerSize)
	b = binary.BigEndian.AppendUint32(b, h.Width)
	b = binary.BigEndian.AppendUint32(b, h.Height)
	return append(b, h.BitDepth, h.ColorType, h.CompressionMethod, h.FilterMethod, h.InterlaceMethod)
}

func parseHeader(b []byte) (Header, error) {
	if len(b) != headerSize {
		return Header{}, fmt.Errorf("IHDR must be %d bytes, got %d: %w", headerSize, len(b), ErrMalformed)
	}
	return Header{
		Width:             binary.BigEndian.Uint32(b[0:4]),
		Height:            binary.BigEndian.Uint32(b[4:8]),
		BitDepth:          b[8],
		ColorType:         b[9],
		CompressionMethod: b[10],
		FilterMethod:      b[11],
		InterlaceMethod:   b[12],
	}, nil
}

// Build assembles the single pixel PNG.
func Build() (_ []byte, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	idat, err := hex.DecodeString(pixelData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode pixel data: %w", err)
	}
	h := Header{
		Width:     1,
		Height:    1,
		BitDepth:  8,
		ColorType: ColorTypeRGBA,
	}
	chunks := []struct {
		typ  string
		data []byte
	}{
		{ChunkTypeIHDR, h.Bytes()},
		{ChunkTypeIDAT, idat},
		{ChunkTypeIEND, nil},
	}
	buf := bytes.NewBuffer(nil)
	buf.Write(Signature)
	for _, c := range chunks {
		b, err := SerializeChunk([]byte(c.typ), c.data)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize %s chunk: %w", c.typ, err)
		}
		buf.Write(b)
	}
	return buf.Bytes(), nil
}
