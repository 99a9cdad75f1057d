package system

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// find in root
func findFileInProjectRoot(filename string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, filename)); err == nil {
			return dir, nil // Found the project root
		}
		parentDir := filepath.Dir(dir)
		if parentDir == dir { // Reached the root of the filesystem
			break
		}
		dir = parentDir
	}
	return "", os.ErrNotExist // file not found in project root
}

// LoadEnv loads environment variables from a .env file. If the file is not found in the current directory,
// it searches for it in the parent directories. Variables already set in the environment win.
func LoadEnv(filename string) error {
	path := filename
	if _, err := os.Stat(path); err != nil {
		rootDir, rootErr := findFileInProjectRoot(filename)
		if rootErr != nil {
			return rootErr
		}
		path = filepath.Join(rootDir, filename)
	}
	return godotenv.Load(path)
}

// LoadOptionalEnv is LoadEnv without the error for a missing file.
func LoadOptionalEnv(filename string) error {
	err := LoadEnv(filename)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
