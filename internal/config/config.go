package config

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/nebula-linux/nebula-keybind-menu/internal/keybind"
	"github.com/nebula-linux/nebula-keybind-menu/internal/logging"
)

// AppName names the configuration directory under each search root.
const AppName = "nebula-keybind-menu"

// BuiltinSource is the Result.Source reported when no file supplied keybinds.
const BuiltinSource = "builtin"

const (
	systemConfigDir = "/usr/share/" + AppName
	homeConfigDir   = "~/.config"
)

// fileNames are tried in order inside every search directory.
var fileNames = []string{"config.toml", "config.yaml", "config.yml"}

//go:embed defaults.toml
var defaultsTOML []byte

// ErrNoKeybinds reports a configuration file that parsed but listed no keybinds.
var ErrNoKeybinds = errors.New("no keybinds defined")

// Config is the parsed content of a keybind menu configuration file.
type Config struct {
	Theme    string          `toml:"theme" yaml:"theme"`
	Keybinds []keybind.Entry `toml:"keybinds" yaml:"keybinds"`
}

// Attempt records one candidate file that was tried and why it was rejected.
type Attempt struct {
	Path string
	Err  error
}

// Result is the outcome of Load. Source is the file the keybinds came from,
// or BuiltinSource.
type Result struct {
	Config
	Source   string
	Attempts []Attempt
}

// Load walks the candidate files and returns the first one holding at least
// one keybind, falling back to the built-in defaults. It never fails: every
// rejected candidate is recorded in Result.Attempts.
func Load(ctx context.Context, explicitPath string) Result {
	log := logging.FromContext(ctx)

	var res Result
	for _, path := range Candidates(explicitPath) {
		cfg, err := LoadFile(path)
		if err != nil {
			res.Attempts = append(res.Attempts, Attempt{Path: path, Err: err})
			if !errors.Is(err, os.ErrNotExist) {
				log.V(1).Info("skipping config candidate", "path", path, "error", err.Error())
			}
			continue
		}
		res.Config = cfg
		res.Source = path
		log.Info("loaded keybinds", "path", path, "count", len(cfg.Keybinds))
		return res
	}

	res.Config = Builtin()
	res.Source = BuiltinSource
	log.Info("using built-in keybinds", "count", len(res.Keybinds), "tried", len(res.Attempts))
	return res
}

// Candidates lists the files Load tries, in order: the explicit path, then
// the XDG config home, ~/.config and the system directory.
func Candidates(explicitPath string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(path string) {
		if path == "" || seen[path] {
			return
		}
		seen[path] = true
		out = append(out, path)
	}

	if strings.TrimSpace(explicitPath) != "" {
		add(mustExpand(explicitPath))
	}
	for _, dir := range searchDirs() {
		for _, name := range fileNames {
			add(filepath.Join(dir, AppName, name))
		}
	}
	for _, name := range fileNames {
		add(filepath.Join(systemConfigDir, name))
	}
	return out
}

func searchDirs() []string {
	var dirs []string
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		if expanded, err := expandPath(xdg); err == nil {
			dirs = append(dirs, expanded)
		}
	}
	if home, err := expandPath(homeConfigDir); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}

// LoadFile reads and decodes a single configuration file. YAML is selected by
// a .yaml or .yml extension, anything else is decoded as TOML.
func LoadFile(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := decode(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Keybinds) == 0 {
		return Config{}, fmt.Errorf("%s: %w", path, ErrNoKeybinds)
	}
	cfg.Theme = strings.TrimSpace(cfg.Theme)
	return cfg, nil
}

// Builtin returns the keybinds compiled into the binary.
func Builtin() Config {
	cfg, err := decode(defaultsTOML, ".toml")
	if err != nil {
		return Config{}
	}
	return cfg
}

func decode(data []byte, ext string) (Config, error) {
	var cfg Config
	switch ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, err
		}
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
