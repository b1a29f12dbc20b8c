package userconfig

import (
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"slices"
	"time"

	"github.com/bluele/gcache"
	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const globalCacheKey = "#global#"

// configs holds recently loaded configs, keyed by directory
// (or globalCacheKey). Entries are reloaded from disk after a second.
var configs = gcache.New(32).
	LRU().
	Expiration(1 * time.Second).
	LoaderFunc(func(key any) (any, error) {
		return newInstance(pathsFor(key.(string))...)
	}).
	Build()

// Cached gives access to the config of a scope, reloading it when it
// has not been read recently.
type Cached struct {
	key string
}

// Get returns the config of the scope.
func (c *Cached) Get() (*Config, error) {
	v, err := configs.Get(c.key)
	if err != nil {
		return nil, err
	}
	return v.(*Config), nil
}

// ForDir returns the config that applies to dir: the user's global config
// overridden by dir/.schedexpr/config.
func ForDir(dir string) *Cached {
	return &Cached{key: filepath.Clean(dir)}
}

// Global returns the user's global config.
func Global() *Cached {
	return &Cached{key: globalCacheKey}
}

func pathsFor(key string) []string {
	if key == globalCacheKey {
		return userPaths
	}
	paths := slices.Clone(userPaths)
	return append(paths, dirFilePath(key))
}

func dirFilePath(dir string) string {
	return filepath.Join(dir, ".schedexpr", "config")
}

var userPaths []string = func() []string {
	var paths []string

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome != "" {
		paths = append(paths, filepath.Join(configHome, "schedexpr", "config"))
	}

	if u, err := user.Current(); err == nil {
		if configHome == "" {
			paths = append(paths, filepath.Join(u.HomeDir, ".config", "schedexpr", "config"))
		}
		paths = append(paths, filepath.Join(u.HomeDir, ".schedexprconfig"))
	}

	return paths
}()

var tomlParser = toml.Parser()

// newInstance loads the config files in order, later files overriding
// earlier ones. Missing files are skipped and unset keys get their default.
func newInstance(paths ...string) (*Config, error) {
	k := koanf.New(".")
	for key, desc := range descs {
		if desc.Type.Default != nil {
			if err := k.Set(key, *desc.Type.Default); err != nil {
				return nil, errors.Wrapf(err, "unable to set default for %s", key)
			}
		}
	}

	for _, path := range paths {
		f := file.Provider(path)
		err := k.Load(f, tomlParser)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "unable to parse config file %s", path)
		}
	}

	cfg := &Config{}
	err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag:       "koanf",
		FlatPaths: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to unmarshal config")
	}
	return cfg, nil
}

func validateConfig(data []byte) error {
	k := koanf.New(".")
	return k.Load(rawbytes.Provider(data), tomlParser)
}
