package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateDecode(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must be set")
	}
	return nil
}

func (c *Config) validateDecode() error {
	switch c.Decode.Encoding {
	case EncodingUTF8, EncodingLatin1, EncodingWindows1252:
	default:
		return fmt.Errorf("decode.encoding %q is not supported (use %s, %s or %s)",
			c.Decode.Encoding, EncodingUTF8, EncodingLatin1, EncodingWindows1252)
	}
	if c.Decode.MaxLineBytes < minMaxLineBytes {
		return fmt.Errorf("decode.max_line_bytes must be at least %d", minMaxLineBytes)
	}
	return nil
}

func (c *Config) validateStore() error {
	if c.Store.Enabled && strings.TrimSpace(c.Store.Path) == "" {
		return errors.New("store.path must be set when store.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}
