package minipng

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"

	"github.com/k1LoW/errors"
)

const (
	chunkTypeSize = 4
	// chunkOverhead is the length field, type and CRC around the chunk data.
	chunkOverhead = 12
)

const (
	ChunkTypeIHDR = "IHDR"
	ChunkTypeIDAT = "IDAT"
	ChunkTypeIEND = "IEND"
)

// Chunk is a PNG chunk: a 4-byte type and its data.
type Chunk struct {
	Type [4]byte
	Data []byte
}

// NewChunk returns a chunk of type typ holding data.
func NewChunk(typ string, data []byte) (_ *Chunk, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if len(typ) != chunkTypeSize {
		return nil, fmt.Errorf("chunk type must be %d bytes, got %q: %w", chunkTypeSize, typ, ErrInvalidArgument)
	}
	c := &Chunk{Data: data}
	copy(c.Type[:], typ)
	return c, nil
}

func (c *Chunk) String() string {
	return fmt.Sprintf("%s(%d)", c.Type[:], len(c.Data))
}

// Len returns the length of the serialized record.
func (c *Chunk) Len() int {
	return chunkOverhead + len(c.Data)
}

// CRC returns the CRC-32 of the chunk type followed by the chunk data.
func (c *Chunk) CRC() uint32 {
	crc := crc32.NewIEEE()
	_, _ = crc.Write(c.Type[:])
	_, _ = crc.Write(c.Data)
	return crc.Sum32()
}

// Bytes serializes the chunk as length, type, data and CRC.
func (c *Chunk) Bytes() ([]byte, error) {
	return SerializeChunk(c.Type[:], c.Data)
}

// SerializeChunk encodes a chunk record. The CRC is computed from typ and data on every call.
func SerializeChunk(typ, data []byte) (_ []byte, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if len(typ) != chunkTypeSize {
		return nil, fmt.Errorf("chunk type must be %d bytes, got %d: %w", chunkTypeSize, len(typ), ErrInvalidArgument)
	}
	if err := checkDataLen(uint64(len(data))); err != nil {
		return nil, err
	}
	b := make([]byte, 0, chunkOverhead+len(data))
	b = binary.BigEndian.AppendUint32(b, uint32(len(data)))
	b = append(b, typ...)
	b = append(b, data...)
	crc := crc32.NewIEEE()
	_, _ = crc.Write(typ)
	_, _ = crc.Write(data)
	b = binary.BigEndian.AppendUint32(b, crc.Sum32())
	return b, nil
}

// checkDataLen rejects data that does not fit the 32-bit length field.
func checkDataLen(n uint64) error {
	if n > math.MaxUint32 {
		return fmt.Errorf("chunk data too large: %d bytes: %w", n, ErrInvalidArgument)
	}
	return nil
}
