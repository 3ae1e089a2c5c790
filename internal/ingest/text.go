package ingest

import (
	"errors"
	"os"
	"unicode/utf8"
)

var errNotUTF8 = errors.New("file is not valid UTF-8 text")

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errNotUTF8
	}
	return string(data), nil
}
