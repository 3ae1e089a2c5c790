// Package source resolves text inputs that may be given inline or as a file.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source describes how to load a text value.
type Source struct {
	// Name is used in error messages to give more context about the value.
	Name string
	// Value is inline text provided via configuration or flags.
	Value string
	// File points to a file containing the text. When set it takes
	// precedence over Value.
	File string
}

// ErrEmpty is wrapped by Load when neither File nor Value carry any text.
var ErrEmpty = errors.New("value is empty")

// Load returns the text from the provided source. When File is set it takes
// precedence over Value. Text read from a file goes through reader, which
// converts formatted documents to plain text; a nil reader returns the file
// content as is. Unlike a secret, the text is not trimmed, only checked for
// being blank.
func Load(src Source, reader func(path string) (string, error)) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "text"
	}

	file := strings.TrimSpace(src.File)
	if file != "" {
		if reader == nil {
			reader = readFile
		}
		text, err := reader(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, filepath.Clean(file), err)
		}
		src.Value = text
		src.File = file
	}

	if strings.TrimSpace(src.Value) == "" {
		if src.File != "" {
			return "", fmt.Errorf("%s file %q: %w", name, src.File, ErrEmpty)
		}
		return "", fmt.Errorf("%s is not provided: %w", name, ErrEmpty)
	}

	return src.Value, nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
