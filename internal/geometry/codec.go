package geometry

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Binary mesh layout, all little-endian:
// vertex count (uint32), vertex triples (3 x float32 each),
// index count (uint32), indices (uint32 each).

// Encode serializes a mesh into the binary layout.
func Encode(g *Geometry) ([]byte, error) {
	var buf bytes.Buffer

	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(g.Vertices))); err != nil {
		return nil, fmt.Errorf("encoding vertex count: %w", err)
	}

	if err := binary.Write(&buf, binary.LittleEndian, g.Vertices); err != nil {
		return nil, fmt.Errorf("encoding vertices: %w", err)
	}

	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(g.Indices))); err != nil {
		return nil, fmt.Errorf("encoding index count: %w", err)
	}

	if err := binary.Write(&buf, binary.LittleEndian, g.Indices); err != nil {
		return nil, fmt.Errorf("encoding indices: %w", err)
	}

	return buf.Bytes(), nil
}

// Decode reads a mesh back from the binary layout.
func Decode(r io.Reader) (*Geometry, error) {
	var vertexCount uint32
	if err := binary.Read(r, binary.LittleEndian, &vertexCount); err != nil {
		return nil, fmt.Errorf("decoding vertex count: %w", err)
	}

	g := &Geometry{Vertices: make([]Vec3, vertexCount)}
	if err := binary.Read(r, binary.LittleEndian, g.Vertices); err != nil {
		return nil, fmt.Errorf("decoding vertices: %w", err)
	}

	var indexCount uint32
	if err := binary.Read(r, binary.LittleEndian, &indexCount); err != nil {
		return nil, fmt.Errorf("decoding index count: %w", err)
	}

	g.Indices = make([]uint32, indexCount)
	if err := binary.Read(r, binary.LittleEndian, g.Indices); err != nil {
		return nil, fmt.Errorf("decoding indices: %w", err)
	}

	return g, nil
}
