// Package schematic loads and saves Grids using the MCEdit-era .schematic
// file format: a gzip-compressed NBT compound named "Schematic" carrying
// Width/Height/Length shorts and parallel Blocks/Data byte arrays in
// y-outer, z-middle, x-inner order.
//
// Only the block ids this simulator models have dynamics after loading;
// every other recognised Minecraft block id collapses to an inert
// SolidBlock, and anything unrecognised decodes to empty space. Saving is
// therefore lossy for ids this package doesn't model — this package gives
// every implemented Kind a stable id, not a faithful Minecraft palette.
package schematic

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/sandertv/gophertunnel/minecraft/nbt"

	"github.com/df-mc/redstonesim/redstone"
)

// document is the on-disk NBT shape of a .schematic file's root compound.
type document struct {
	Width        int16            `nbt:"Width"`
	Height       int16            `nbt:"Height"`
	Length       int16            `nbt:"Length"`
	Materials    string           `nbt:"Materials"`
	Blocks       []byte           `nbt:"Blocks"`
	Data         []byte           `nbt:"Data"`
	Entities     []map[string]any `nbt:"Entities"`
	TileEntities []map[string]any `nbt:"TileEntities"`
}

// Load reads a gzip-compressed .schematic stream from r and returns the
// Grid it describes.
func Load(r io.Reader) (*redstone.Grid, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("schematic: open gzip stream: %w", err)
	}
	defer gr.Close()

	var doc document
	if err := nbt.NewDecoderWithEncoding(gr, nbt.BigEndian).Decode(&doc); err != nil {
		return nil, fmt.Errorf("schematic: decode nbt: %w", err)
	}

	size := redstone.Size{X: int(doc.Width), Y: int(doc.Height), Z: int(doc.Length)}
	n := size.Volume()
	if len(doc.Blocks) < n {
		return nil, fmt.Errorf("schematic: blocks array has %d entries, want %d", len(doc.Blocks), n)
	}

	g := redstone.NewGrid(size)
	i := 0
	g.Each(func(pos redstone.Pos) {
		var b byte
		if i < len(doc.Data) {
			b = doc.Data[i]
		}
		g.Set(pos, decodeBlock(doc.Blocks[i], b))
		i++
	})
	return g, nil
}

// Save writes g to w as a gzip-compressed .schematic stream.
func Save(w io.Writer, g *redstone.Grid) error {
	size := g.Size()
	n := size.Volume()
	blocks := make([]byte, 0, n)
	data := make([]byte, 0, n)
	g.Each(func(pos redstone.Pos) {
		cell := g.At(pos)
		blocks = append(blocks, blockID(cell))
		data = append(data, dataByte(cell))
	})

	doc := document{
		Width:        int16(size.X),
		Height:       int16(size.Y),
		Length:       int16(size.Z),
		Materials:    "Alpha",
		Blocks:       blocks,
		Data:         data,
		Entities:     []map[string]any{},
		TileEntities: []map[string]any{},
	}

	gw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
	if err != nil {
		return fmt.Errorf("schematic: open gzip stream: %w", err)
	}
	if err := nbt.NewEncoderWithEncoding(gw, nbt.BigEndian).Encode(&doc); err != nil {
		_ = gw.Close()
		return fmt.Errorf("schematic: encode nbt: %w", err)
	}
	return gw.Close()
}

// decodeBlock turns a (block id, data byte) pair into the Cell it
// represents: Air for id 0, or nil for ids this package has no model for.
func decodeBlock(id, data byte) redstone.Cell {
	switch id {
	case 0:
		return redstone.Air{}
	case blockGlassBlock:
		return redstone.GlassBlock{}
	case blockRedstoneBlock:
		return redstone.RedstoneBlock{}
	case blockRedstoneDust:
		return &redstone.RedstoneDust{Level: data}
	case blockRedstoneTorchOff:
		return redstone.NewRedstoneTorch(false, decodeTorchDirection(data))
	case blockRedstoneTorchOn:
		return redstone.NewRedstoneTorch(true, decodeTorchDirection(data))
	case blockSwitch:
		return &redstone.Switch{IsOn: data&0x8 != 0, Direction: decodeSwitchDirection(data)}
	}
	for _, solid := range solidBlockIDs {
		if id == solid {
			return &redstone.SolidBlock{}
		}
	}
	return nil
}

// blockID is the id this package writes for a cell's Kind. Recognised
// input ids for a solid block collapse, on write, to blockCanonicalSolid;
// exact Minecraft block variety is not preserved.
func blockID(cell redstone.Cell) byte {
	switch c := cell.(type) {
	case redstone.Air:
		return 0
	case redstone.GlassBlock:
		return blockGlassBlock
	case redstone.RedstoneBlock:
		return blockRedstoneBlock
	case *redstone.RedstoneDust:
		return blockRedstoneDust
	case *redstone.RedstoneTorch:
		if c.IsOn {
			return blockRedstoneTorchOn
		}
		return blockRedstoneTorchOff
	case *redstone.SolidBlock:
		return blockCanonicalSolid
	case *redstone.Switch:
		return blockSwitch
	}
	return 0
}

// dataByte is the data value this package writes alongside a cell's block
// id.
func dataByte(cell redstone.Cell) byte {
	switch c := cell.(type) {
	case *redstone.RedstoneDust:
		return c.Level
	case *redstone.RedstoneTorch:
		return encodeTorchDirection(c.Direction)
	case *redstone.SolidBlock:
		return solidBlockDataByte
	case *redstone.Switch:
		v := encodeSwitchDirection(c.Direction)
		if c.IsOn {
			v |= 0x8
		}
		return v
	}
	return 0
}
