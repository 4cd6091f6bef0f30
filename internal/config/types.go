// SPDX-License-Identifier: MPL-2.0

package config

// Config is the resolved tool configuration. Values come from defaults,
// then from the config file when one exists.
type Config struct {
	// Inventory controls how descriptor inventories are exported.
	Inventory InventoryConfig `mapstructure:"inventory"`
	// Attrib controls attribution document generation.
	Attrib AttribConfig `mapstructure:"attrib"`
	// UI controls terminal output behavior.
	UI UIConfig `mapstructure:"ui"`
	// Strict makes commands exit nonzero when any descriptor is invalid
	// or any listed location fails to load.
	Strict bool `mapstructure:"strict"`
}

// InventoryConfig holds inventory export settings.
type InventoryConfig struct {
	// Format is the default export format: csv, json, yaml, or toml.
	Format string `mapstructure:"format"`
}

// AttribConfig holds attribution generation settings.
type AttribConfig struct {
	// Format is the default document format: html, markdown, or text.
	Format string `mapstructure:"format"`
}

// UIConfig holds terminal output settings.
type UIConfig struct {
	// Verbose enables debug logging and full diagnostic listings.
	Verbose bool `mapstructure:"verbose"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Inventory: InventoryConfig{Format: "csv"},
		Attrib:    AttribConfig{Format: "html"},
		UI:        UIConfig{Verbose: false},
		Strict:    false,
	}
}
