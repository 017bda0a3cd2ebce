package config

import "fmt"

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be positive, got %d", c.HTTP.TimeoutSeconds)
	}
	if c.Map.Rows < 0 || c.Map.Cols < 0 {
		return fmt.Errorf("map.rows and map.cols must not be negative")
	}
	return nil
}
