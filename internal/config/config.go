package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tm-labs/templatesmanager/internal/branding"
	"github.com/tm-labs/templatesmanager/internal/userdata"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyDataRoot      = "data_root"
	KeyNotifyCommand = "notify_command"
	KeyTargetCommand = "target_command"
	KeyTrashCommand  = "trash_command"
	KeyOpenCommand   = "open_command"
	KeyEditCommand   = "edit_command"
	KeyHTTPTimeout   = "http_timeout"
	KeyIcon          = "icon"
)

// defaults for every key except data_root, which is derived at Resolve time.
var defaults = map[string]string{
	KeyNotifyCommand: "auto",
	KeyTargetCommand: "auto",
	KeyTrashCommand:  "auto",
	KeyOpenCommand:   "auto",
	KeyEditCommand:   "auto",
	KeyHTTPTimeout:   "0s",
	KeyIcon:          branding.Icon(),
}

// Settings is the resolved configuration for one invocation.
type Settings struct {
	DataRoot      string
	NotifyCommand string
	TargetCommand string
	TrashCommand  string
	OpenCommand   string
	EditCommand   string
	HTTPTimeout   time.Duration
	Icon          string
}

// Keys returns every known configuration key in sorted order.
func Keys() []string {
	keys := []string{KeyDataRoot}
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKey reports whether key is a known configuration key.
func IsKey(key string) bool {
	_, ok := defaults[key]
	return ok || key == KeyDataRoot
}

// Dir returns the path to the config directory (~/.templatesmanager/).
// TM_HOME overrides it.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKey(key) {
		return fmt.Errorf("unknown key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if key == KeyHTTPTimeout {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Resolve reads the loaded configuration into Settings.
func Resolve() (*Settings, error) {
	timeout, err := time.ParseDuration(viper.GetString(KeyHTTPTimeout))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyHTTPTimeout, err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("invalid %s: must not be negative", KeyHTTPTimeout)
	}

	root := viper.GetString(KeyDataRoot)
	if root == "" {
		root, err = userdata.DefaultDataRoot()
		if err != nil {
			return nil, err
		}
	}
	root, err = expandHome(root)
	if err != nil {
		return nil, err
	}

	return &Settings{
		DataRoot:      root,
		NotifyCommand: viper.GetString(KeyNotifyCommand),
		TargetCommand: viper.GetString(KeyTargetCommand),
		TrashCommand:  viper.GetString(KeyTrashCommand),
		OpenCommand:   viper.GetString(KeyOpenCommand),
		EditCommand:   viper.GetString(KeyEditCommand),
		HTTPTimeout:   timeout,
		Icon:          viper.GetString(KeyIcon),
	}, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
