// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GitHubRepo  string `yaml:"github_repo"`
	Icon        string `yaml:"icon"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "tm",
			DisplayName: "TemplatesManager",
			Description: "Manage local and remote file templates for your launcher",
			HomeDir:     ".templatesmanager",
			EnvPrefix:   "TM",
			GitHubRepo:  "tm-labs/templatesmanager",
			Icon:        "icon.png",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "tm").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name. It is also used as
// the title of desktop notifications.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".templatesmanager").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "TM").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" string used for release checks.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// Icon returns the default icon reference emitted in launcher listings.
func Icon() string { load(); return defaults.Icon }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("data_root") → "TM_DATA_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
