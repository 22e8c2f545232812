package emu

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"

	"famicore/emu/log"
)

type Config struct {
	Video     VideoConfig     `toml:"video"`
	Emulation EmulationConfig `toml:"emulation"`
}

type VideoConfig struct {
	// PaletteFile optionally names a 192-byte .pal file replacing the
	// built-in 2C02 palette.
	PaletteFile string `toml:"palette_file"`
}

type EmulationConfig struct {
	// Frames is the number of frames emulated by a headless run when the
	// command line doesn't say otherwise.
	Frames int `toml:"frames"`

	// TraceFormat selects the execution trace encoding: "text" or "json".
	TraceFormat string `toml:"trace_format"`
}

var ConfigDir string = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("famicore")
	if err := configdir.MakePath(dir); err != nil {
		log.ModEmu.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})()

const cfgFilename = "config.toml"

func defaultConfig() Config {
	return Config{
		Emulation: EmulationConfig{
			Frames:      60,
			TraceFormat: "text",
		},
	}
}

// LoadConfigOrDefault loads the configuration from the famicore config
// directory, or provides the default one.
func LoadConfigOrDefault() Config {
	cfg := defaultConfig()
	path := filepath.Join(ConfigDir, cfgFilename)
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !os.IsNotExist(err) {
			log.ModEmu.Warnf("failed to load %s: %v", path, err)
		}
		return cfg
	}
	return cfg
}

// SaveConfig into the famicore config directory.
func SaveConfig(cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(ConfigDir, cfgFilename), buf, 0644)
}
