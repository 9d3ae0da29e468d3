// go-kodi
// Copyright (c) 2026 The go-kodi Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of go-kodi.
//
// go-kodi is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-kodi is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-kodi.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	AppName       = "kodictl"
	AppVersion    = "0.1.0"
	SchemaVersion = 1
	CfgEnv        = "KODI_CFG"
	CfgFile       = "config.toml"
	AuthFile      = "auth.toml"
	LogFile       = "kodictl.log"
)

// DefaultKodiURL is the endpoint used when no config is available.
const DefaultKodiURL = "http://localhost:8080/jsonrpc"

// Values holds all user-facing configuration.
type Values struct {
	Kodi         Kodi `toml:"kodi"`
	ConfigSchema int  `toml:"config_schema"`
	DebugLogging bool `toml:"debug_logging"`
}

// Kodi holds connection details for the Kodi instance under control.
type Kodi struct {
	Host       string `toml:"host"       validate:"required"`
	Port       int    `toml:"port"       validate:"min=1,max=65535"`
	WSPort     int    `toml:"ws_port"    validate:"min=1,max=65535"`
	VolumeStep int    `toml:"volume_step" validate:"min=1,max=100"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Kodi: Kodi{
		Host:       "localhost",
		Port:       8080,
		WSPort:     9090,
		VolumeStep: 10,
	},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Instance is a loaded config file with thread-safe accessors.
type Instance struct {
	cfgPath  string
	authPath string
	vals     Values
	defaults Values
	mu       sync.RWMutex
}

//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	cfg.authPath = filepath.Join(filepath.Dir(cfgPath), AuthFile)

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	if _, err := os.Stat(c.cfgPath); err != nil {
		return fmt.Errorf("failed to stat config file: %w", err)
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	// This ensures fields not present in the file retain their default values.
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	if err := validate.Struct(newVals); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	c.vals = newVals

	// load auth file
	if _, err := os.Stat(c.authPath); err == nil {
		log.Info().Msg("loading auth file")
		authData, err := os.ReadFile(c.authPath)
		if err != nil {
			return fmt.Errorf("failed to read auth file: %w", err)
		}

		creds := LoadAuthFromData(authData)
		log.Info().Msgf("loaded %d auth entries", len(creds))

		authCfg.Store(Auth{Creds: creds})
	}

	return nil
}

func (c *Instance) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := toml.Marshal(c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(c.cfgPath, data, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// KodiURL returns the HTTP JSON-RPC endpoint for the configured instance.
func (c *Instance) KodiURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return fmt.Sprintf("http://%s:%d/jsonrpc", c.vals.Kodi.Host, c.vals.Kodi.Port)
}

// KodiWSURL returns the WebSocket JSON-RPC endpoint for the configured
// instance, used for notifications.
func (c *Instance) KodiWSURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return fmt.Sprintf("ws://%s:%d/jsonrpc", c.vals.Kodi.Host, c.vals.Kodi.WSPort)
}

// VolumeStep returns the configured step for volume raise/lower.
func (c *Instance) VolumeStep() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Kodi.VolumeStep
}

// DebugLogging reports whether debug level logging is enabled.
func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

// SetDebugLogging toggles debug level logging. The change is not
// persisted until Save is called.
func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

// SetKodiHost overrides the configured Kodi host. The change is not
// persisted until Save is called.
func (c *Instance) SetKodiHost(host string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Kodi.Host = host
}
