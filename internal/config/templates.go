package config

import (
	"fmt"
	"os"
)

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o644)
}

const template = `# Puzzle input: one line of hex digits.
input = "inputs/day_16.in"

# trace | debug | info | warn | error | off
log_level = "info"

# Deepest packet nesting accepted before decoding fails.
max_depth = 256
`
