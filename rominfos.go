package main

import (
	"fmt"
	"os"

	"github.com/go-faster/jx"

	"famicore/ines"
)

func romInfosMain(args RomInfos) {
	rom, err := ines.ReadRom(args.RomPath)
	checkf(err, "failed to read rom")

	if !args.JSON {
		rom.PrintInfos(os.Stdout)
		return
	}

	var e jx.Encoder
	rom.EncodeJSON(&e)
	fmt.Printf("%s\n", e.Bytes())
}
