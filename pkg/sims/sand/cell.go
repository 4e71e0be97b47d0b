package sand

import (
	"image/color"

	"mad-sand/pkg/core"
)

// Kind tags the variant held by a Cell.
type Kind uint8

const (
	Empty Kind = iota
	Sand
	Block
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Sand:
		return "sand"
	case Block:
		return "block"
	default:
		return "invalid"
	}
}

// ParticleData is the payload of Sand and Block cells. Blocks only use Color.
type ParticleData struct {
	Speed core.Vector2[float32]
	Color color.RGBA
}

// Cell is one grid slot. The zero value is Empty.
type Cell struct {
	Kind     Kind
	Particle ParticleData
}

// EmptyCell returns an empty cell.
func EmptyCell() Cell { return Cell{} }

// SandCell returns a movable particle.
func SandCell(p ParticleData) Cell { return Cell{Kind: Sand, Particle: p} }

// BlockCell returns an immovable block of the given color.
func BlockCell(c color.RGBA) Cell {
	return Cell{Kind: Block, Particle: ParticleData{Color: c}}
}

// IsEmpty reports whether the cell holds nothing.
func (c Cell) IsEmpty() bool { return c.Kind == Empty }
