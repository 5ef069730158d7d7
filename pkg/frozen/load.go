package frozen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"gopkg.in/yaml.v3"
)

const cacheSize = 32

// Loader reads documents from disk and caches them by path and top key.
type Loader struct {
	cache *lru.Cache[string, Value]
}

func NewLoader() *Loader {
	// Only fails for a non-positive size
	cache, _ := lru.New[string, Value](cacheSize)
	return &Loader{cache: cache}
}

var defaultLoader = NewLoader()

func OpenYAML(path, topKey string) (Value, error) {
	return defaultLoader.OpenYAML(path, topKey)
}

func OpenJSON(path, topKey string) (Value, error) {
	return defaultLoader.OpenJSON(path, topKey)
}

// Open picks the decoder from the file extension.
func Open(path, topKey string) (Value, error) {
	return defaultLoader.Open(path, topKey)
}

func (l *Loader) Open(path, topKey string) (Value, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return l.OpenYAML(path, topKey)
	case ".json":
		return l.OpenJSON(path, topKey)
	default:
		return Value{}, fmt.Errorf("unsupported document type %q", filepath.Ext(path))
	}
}

// OpenYAML loads path, optionally narrowed to the value under topKey.
func (l *Loader) OpenYAML(path, topKey string) (Value, error) {
	return l.open(path, topKey, yaml.Unmarshal)
}

func (l *Loader) OpenJSON(path, topKey string) (Value, error) {
	return l.open(path, topKey, json.Unmarshal)
}

// Parse decodes YAML data that is not backed by a file.
func Parse(data []byte, topKey string) (Value, error) {
	return decode(data, topKey, yaml.Unmarshal)
}

func (l *Loader) open(path, topKey string, unmarshal func([]byte, any) error) (Value, error) {
	key := path + "\x00" + topKey
	if v, ok := l.cache.Get(key); ok {
		return v, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	v, err := decode(data, topKey, unmarshal)
	if err != nil {
		return Value{}, fmt.Errorf("%s: %w", path, err)
	}

	l.cache.Add(key, v)
	return v, nil
}

func decode(data []byte, topKey string, unmarshal func([]byte, any) error) (Value, error) {
	var raw any
	if err := unmarshal(data, &raw); err != nil {
		return Value{}, fmt.Errorf("failed to decode document: %w", err)
	}

	v := New(raw)
	if topKey == "" {
		return v, nil
	}
	return v.Get(topKey)
}
