package schematic

import "github.com/df-mc/redstonesim/redstone"

// Block ids recognised on read and, where noted, written on save.
const (
	blockGlassBlock       byte = 20
	blockRedstoneDust     byte = 55
	blockRedstoneTorchOff byte = 75
	blockRedstoneTorchOn  byte = 76
	blockSwitch           byte = 69
	blockRedstoneBlock    byte = 152

	// blockCanonicalSolid is the id written for every SolidBlock cell on
	// save, regardless of which of solidBlockIDs it was loaded from.
	blockCanonicalSolid byte = 35

	// solidBlockDataByte is the data byte written for every SolidBlock
	// cell; it carries no simulated state.
	solidBlockDataByte byte = 11
)

// solidBlockIDs lists every block id that loads as an inert SolidBlock:
// the common opaque building blocks of the game, stripped of their visual
// distinctions.
var solidBlockIDs = []byte{
	1, 2, 3, 4, 5, 14, 15, 16, 17, 21, 22, 24, 35, 41, 42, 43, 45, 47, 48,
	56, 57, 58, 80, 82, 86, 87, 91, 97, 98, 99, 100, 103, 110, 112, 125,
	129, 133, 153, 155, 159, 162, 168, 169, 170, 172, 173, 174, 179, 181,
	201, 204, 206,
}

// decodeTorchDirection maps a loaded data byte to the direction a
// RedstoneTorch is mounted in. Both 0 and 3 decode to North. Unrecognised
// values decode to Down, the common case of a torch standing on the floor.
func decodeTorchDirection(b byte) redstone.Direction {
	switch b {
	case 5:
		return redstone.Down
	case 0, 3:
		return redstone.North
	case 4:
		return redstone.South
	case 1:
		return redstone.West
	case 2:
		return redstone.East
	default:
		return redstone.Down
	}
}

// encodeTorchDirection is the data byte written for a torch mounted in the
// given direction.
func encodeTorchDirection(d redstone.Direction) byte {
	switch d {
	case redstone.Down:
		return 5
	case redstone.North:
		return 3
	case redstone.South:
		return 4
	case redstone.West:
		return 1
	case redstone.East:
		return 2
	default:
		return 5
	}
}

// decodeSwitchDirection maps the low 3 bits of a loaded data byte to the
// direction a Switch is mounted in.
func decodeSwitchDirection(b byte) redstone.Direction {
	switch b & 0x7 {
	case 5, 6:
		return redstone.Up
	case 0, 7:
		return redstone.Down
	case 4:
		return redstone.South
	case 3:
		return redstone.North
	case 2:
		return redstone.West
	case 1:
		return redstone.East
	}
	return redstone.Down
}

// encodeSwitchDirection is the low-3-bit component written for a switch
// mounted in the given direction; the on/off flag is ORed in separately.
func encodeSwitchDirection(d redstone.Direction) byte {
	switch d {
	case redstone.Up:
		return 5
	case redstone.Down:
		return 0
	case redstone.South:
		return 4
	case redstone.North:
		return 3
	case redstone.West:
		return 2
	case redstone.East:
		return 1
	}
	return 0
}
