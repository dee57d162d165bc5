package config

import (
	"fmt"
	"os"
	"strings"
)

// ResolvePassword decides the shared secret for this run. An explicit
// password wins; otherwise the password file is read once, trimmed of
// trailing whitespace. A missing file is not an error and yields the default
// secret. The value is returned to the caller and intentionally never
// logged.
func (c *Config) ResolvePassword() (string, error) {
	if c.Password != "" {
		return c.Password, nil
	}
	if c.PasswordFile != "" {
		data, err := os.ReadFile(c.PasswordFile)
		if err == nil {
			if pw := strings.TrimSpace(string(data)); pw != "" {
				return pw, nil
			}
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to read password file %s: %w", c.PasswordFile, err)
		}
	}
	return DefaultPassword, nil
}
