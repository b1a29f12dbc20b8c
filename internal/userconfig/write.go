package userconfig

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml"

	"schedexpr.dev/pkg/xos"
)

// SetForDir sets key to value in dir/.schedexpr/config.
func SetForDir(dir, key, value string) error {
	if _, err := os.Stat(dir); err != nil {
		return errors.Wrap(err, "directory does not exist")
	}
	return updateConfig(dirFilePath(dir), key, value)
}

// SetGlobal sets key to value in the user's global config file.
func SetGlobal(key, value string) error {
	if len(userPaths) == 0 {
		return errors.New("no global config file location found")
	}

	// Find the last path in the list that exists.
	for i := len(userPaths) - 1; i >= 0; i-- {
		if _, err := os.Stat(userPaths[i]); err == nil {
			return updateConfig(userPaths[i], key, value)
		}
	}

	// Otherwise fall back to the lowest-priority entry.
	return updateConfig(userPaths[0], key, value)
}

func updateConfig(dstPath, key, value string) error {
	desc, ok := descs[key]
	if !ok {
		return errors.Errorf("unknown key: %q", key)
	}
	val, err := desc.Type.ParseAndValidate(value)
	if err != nil {
		return err
	}

	// A missing file is treated as an empty config.
	var conf *toml.Tree
	{
		data, err := os.ReadFile(dstPath)
		if err != nil && !os.IsNotExist(err) {
			return errors.Wrap(err, "failed to read existing config")
		}
		if data != nil {
			conf, err = toml.LoadBytes(data)
		} else {
			conf, err = toml.TreeFromMap(map[string]any{})
		}
		if err != nil {
			return errors.Wrap(err, "failed to parse existing config")
		}
	}

	if n, ok := val.(int); ok {
		// go-toml only encodes 64-bit integers.
		val = int64(n)
	}
	conf.SetPath(strings.Split(key, "."), val)

	data, err := conf.Marshal()
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := validateConfig(data); err != nil {
		return errors.Wrap(err, "resulting config is invalid")
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return errors.Wrap(err, "failed to create config file")
	}
	if err := xos.WriteFile(dstPath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	// Drop cached configs so the new value is seen right away.
	configs.Purge()
	return nil
}
