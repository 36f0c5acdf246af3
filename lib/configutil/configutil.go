// Package configutil reads json5 configuration files with an optional
// machine-local override layered on top.
package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

func splitExt(name string) (string, string) {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[idx+1:]
}

// ReadConfig reads <name> and merges <base>.local.<ext> over it when one
// exists next to it; local values win. Returns os.ErrNotExist when neither
// file exists.
func ReadConfig[T any](name string) (T, error) {
	var out T
	allNotFound := true

	dirname := filepath.Dir(name)
	prefix, ext := splitExt(filepath.Base(name))

	contents, err := os.ReadFile(name)
	if err != nil && !os.IsNotExist(err) {
		return out, err
	}
	if len(contents) > 0 {
		err = json5.Unmarshal(contents, &out)
		if err != nil {
			return out, err
		}
		allNotFound = false
	}

	localPath := filepath.Join(dirname, fmt.Sprintf("%s.local.%s", prefix, ext))
	localContents, err := os.ReadFile(localPath)
	if err != nil && !os.IsNotExist(err) {
		return out, err
	}
	if len(localContents) > 0 {
		var override T
		err = json5.Unmarshal(localContents, &override)
		if err != nil {
			return out, err
		}
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return out, err
		}
		slog.Info("merging config with local overrides", "local", localPath)
		allNotFound = false
	}

	if allNotFound {
		return out, os.ErrNotExist
	}
	return out, nil
}

// ReadRecursively walks from the working directory up to the filesystem
// root looking for a config file matching name.
func ReadRecursively[T any](name string) (T, error) {
	var zero T

	root, err := filepath.Abs("/")
	if err != nil {
		return zero, err
	}
	current, err := os.Getwd()
	if err != nil {
		return zero, err
	}

	for current != root {
		config, err := ReadConfig[T](filepath.Join(current, name))
		if os.IsNotExist(err) {
			current = filepath.Join(current, "..")
			continue
		}
		if err != nil {
			return zero, err
		}
		return config, nil
	}

	return zero, os.ErrNotExist
}
