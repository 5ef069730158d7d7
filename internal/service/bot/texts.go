package bot

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/sandevgo/blaster/pkg/frozen"
)

const textsKey = "texts"

//go:embed texts.yml
var defaultTexts []byte

// LoadTexts reads reply texts from path and falls back to the built-in
// ones when the file does not exist.
func LoadTexts(path string) (frozen.Value, error) {
	if path != "" {
		v, err := frozen.Open(path, textsKey)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return frozen.Value{}, fmt.Errorf("failed to load texts: %w", err)
		}
	}
	return DefaultTexts(), nil
}

func DefaultTexts() frozen.Value {
	v, err := frozen.Parse(defaultTexts, textsKey)
	if err != nil {
		panic(fmt.Sprintf("bad embedded texts: %v", err))
	}
	return v
}

// WriteDefaultTexts saves the built-in texts to path for editing.
func WriteDefaultTexts(path string) error {
	if err := os.WriteFile(path, defaultTexts, 0644); err != nil {
		return fmt.Errorf("failed to write texts: %w", err)
	}
	return nil
}
