package minipng

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"

	"github.com/corona10/goimagehash"
	"github.com/k1LoW/errors"
)

const mimeTypeImagePNG = "image/png"

// Image is a parsed and verified PNG byte stream.
type Image struct {
	b        []byte
	header   Header
	chunks   []*Chunk
	i        image.Image
	checksum uint32
	aHash    *goimagehash.ImageHash
}

// ParseChunks verifies the signature of b and returns its chunks up to and including IEND.
// Every chunk CRC is checked.
func ParseChunks(b []byte) (_ []*Chunk, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if !bytes.HasPrefix(b, Signature) {
		return nil, fmt.Errorf("missing png signature: %w", ErrMalformed)
	}
	var chunks []*Chunk
	offset := len(Signature)
	for {
		if len(b)-offset < chunkOverhead {
			return nil, fmt.Errorf("truncated chunk at offset %d: %w", offset, ErrMalformed)
		}
		length := binary.BigEndian.Uint32(b[offset : offset+4])
		if uint64(len(b)-offset-chunkOverhead) < uint64(length) {
			return nil, fmt.Errorf("chunk at offset %d declares %d bytes beyond end of data: %w", offset, length, ErrMalformed)
		}
		c := &Chunk{}
		copy(c.Type[:], b[offset+4:offset+8])
		dataEnd := offset + 8 + int(length)
		c.Data = b[offset+8 : dataEnd]
		want := binary.BigEndian.Uint32(b[dataEnd : dataEnd+4])
		if got := c.CRC(); got != want {
			return nil, fmt.Errorf("crc mismatch in %s chunk at offset %d: got %08X, want %08X: %w", c.Type[:], offset, got, want, ErrMalformed)
		}
		chunks = append(chunks, c)
		offset = dataEnd + 4
		if string(c.Type[:]) == ChunkTypeIEND {
			break
		}
	}
	if offset != len(b) {
		return nil, fmt.Errorf("%d trailing bytes after IEND: %w", len(b)-offset, ErrMalformed)
	}
	if string(chunks[0].Type[:]) != ChunkTypeIHDR {
		return nil, fmt.Errorf("first chunk is %s, not IHDR: %w", chunks[0].Type[:], ErrMalformed)
	}
	return chunks, nil
}

// Inspect parses b and decodes it as a PNG image.
func Inspect(b []byte) (_ *Image, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	chunks, err := ParseChunks(b)
	if err != nil {
		return nil, err
	}
	h, err := parseHeader(chunks[0].Data)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w: %w", ErrMalformed, err)
	}
	return &Image{
		b:        b,
		header:   h,
		chunks:   chunks,
		i:        img,
		checksum: crc32.ChecksumIEEE(b),
	}, nil
}

func (i *Image) Header() Header {
	return i.header
}

func (i *Image) Chunks() []*Chunk {
	return i.chunks
}

func (i *Image) Image() image.Image {
	return i.i
}

func (i *Image) Len() int {
	return len(i.b)
}

// Checksum returns the CRC-32 of the whole file.
func (i *Image) Checksum() uint32 {
	return i.checksum
}

// AHash returns the average hash of the decoded image.
func (i *Image) AHash() (_ *goimagehash.ImageHash, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if i.aHash == nil {
		h, err := goimagehash.AverageHash(i.i)
		if err != nil {
			return nil, fmt.Errorf("failed to compute average hash: %w", err)
		}
		i.aHash = h
	}
	return i.aHash, nil
}

// String returns the image as a data URI.
func (i *Image) String() string {
	if i == nil {
		return ""
	}
	encoded := base64.StdEncoding.EncodeToString(i.b)
	return fmt.Sprintf("data:%s;base64,%s", mimeTypeImagePNG, encoded)
}
