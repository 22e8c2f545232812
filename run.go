package main

import (
	"famicore/emu"
	"famicore/emu/log"
	"famicore/hw"
)

// runMain emulates a rom headless for a fixed number of frames. It is the
// reference driver for the core: hosts embedding the emulator use the same
// entry points (PowerUp, RunFrame, frame sink).
func runMain(args Run) {
	cfg := emu.LoadConfigOrDefault()

	nes, err := emu.Load(args.RomPath)
	checkf(err, "failed to load rom")

	if cfg.Video.PaletteFile != "" {
		pal, err := hw.LoadPalette(cfg.Video.PaletteFile)
		if err != nil {
			log.ModEmu.Warnf("%v, keeping default palette", err)
		} else {
			nes.PPU.SetPalette(pal)
		}
	}

	if args.Trace != nil {
		defer args.Trace.Close()

		format := hw.TraceText
		tf := args.TraceFormat
		if tf == "" {
			tf = cfg.Emulation.TraceFormat
		}
		if tf == "json" {
			format = hw.TraceJSON
		}
		nes.CPU.SetTracer(hw.NewTracer(nes.CPU, nes.PPU, args.Trace, format))
	}

	frames := args.Frames
	if frames <= 0 {
		frames = cfg.Emulation.Frames
	}

	for range frames {
		nes.RunFrame()
	}

	log.ModEmu.InfoZ("emulation done").
		Int("frames", frames).
		Uint64("cycles", nes.CPU.Cycles).
		End()
}
