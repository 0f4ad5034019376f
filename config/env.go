package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Load reads variables from .env files into the process environment.
// Variables already present in the environment are never overridden, and a
// missing file is not an error. It reports whether any file was loaded.
func Load(filenames ...string) (bool, error) {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	if err := godotenv.Load(filenames...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
