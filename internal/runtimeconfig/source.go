package runtimeconfig

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Source resolves configuration values by key.
type Source interface {
	Lookup(key string) (string, bool)
}

// EnvSource reads from the process environment.
type EnvSource struct{}

func (EnvSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapSource serves values from an in-memory map.
type MapSource map[string]string

func (m MapSource) Lookup(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}

type layeredSource struct {
	primary  Source
	fallback Source
}

func (l layeredSource) Lookup(key string) (string, bool) {
	if value, ok := l.primary.Lookup(key); ok {
		return value, true
	}
	return l.fallback.Lookup(key)
}

// DotenvSource layers the values of a .env file under primary, so keys set
// on primary always win. A missing file yields primary unchanged.
func DotenvSource(path string, primary Source) (Source, error) {
	if primary == nil {
		primary = MapSource{}
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return primary, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return primary, nil
		}
		return nil, err
	}
	return layeredSource{primary: primary, fallback: MapSource(values)}, nil
}

// first returns the first non-empty value among keys.
func first(src Source, keys ...string) string {
	for _, key := range keys {
		if value, ok := src.Lookup(key); ok && value != "" {
			return value
		}
	}
	return ""
}
