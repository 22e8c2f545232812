// Package mappers implements the cartridge boards. Each board satisfies
// hw.Mapper; the registry maps iNES mapper ids to board constructors.
package mappers

import (
	"fmt"

	"famicore/emu/log"
	"famicore/hw"
	"famicore/ines"
)

type Desc struct {
	Name string
	New  func(rom *ines.Rom) (hw.Mapper, error)
}

var All = map[uint16]Desc{
	0: {Name: "NROM", New: newNROM},
}

// New instantiates the board matching the rom mapper id.
func New(rom *ines.Rom) (hw.Mapper, error) {
	desc, ok := All[rom.Mapper()]
	if !ok {
		return nil, fmt.Errorf("mapper %03d: %w", rom.Mapper(), ines.ErrUnknownMapper)
	}

	m, err := desc.New(rom)
	if err != nil {
		return nil, fmt.Errorf("mapper %s: %w", desc.Name, err)
	}

	log.ModMapper.InfoZ("mapper loaded").
		String("name", desc.Name).
		Int("prgrom", len(rom.PRGROM)).
		Int("chrrom", len(rom.CHRROM)).
		String("mirroring", rom.Mirroring().String()).
		End()
	return m, nil
}
