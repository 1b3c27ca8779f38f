package gconf

import (
	"encoding/json"
	"fmt"
	"os"
)

const DefaultFile = "boardeditor.json"

type Config struct {
	Theme      string `json:"theme"`       // light/dark
	TileSize   int    `json:"tile_size"`   // pixels per tile
	WindowH    int    `json:"window_h"`    //
	WindowW    int    `json:"window_w"`    //
	ShowLabels bool   `json:"show_labels"` // tile index labels at start
	Debug      bool   `json:"debug"`       // true/false
}

func DefaultConfig() Config {
	return Config{
		Theme:      "light",
		TileSize:   75,
		WindowH:    740,
		WindowW:    1080,
		ShowLabels: false,
		Debug:      false,
	}
}

// LoadConfig reads the JSON config at path, falling back to defaults when
// the file does not exist.
func LoadConfig(path string) (*Config, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		def := DefaultConfig()
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	dec := json.NewDecoder(conf)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)

	return &c, nil
}

func (c *Config) Save(path string) error {
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, jsonData, 0644)
}

// MinWindow is the smallest window that fits the board, the palette and the
// button column for the configured tile size.
func (c *Config) MinWindow() (w, h int) {
	board := c.TileSize*8 + 6
	return board + c.TileSize*2 + 300, board + 120
}

// Correct clamps values edited by hand or overridden from flags.
func (c *Config) Correct() {
	correctableConfig(c)
}

func correctableConfig(c *Config) {
	def := DefaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.TileSize < 40 || c.TileSize > 120 {
		c.TileSize = def.TileSize
	}
	minW, minH := c.MinWindow()
	if c.WindowW < minW {
		c.WindowW = minW
	}
	if c.WindowH < minH {
		c.WindowH = minH
	}
}
