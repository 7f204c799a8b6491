package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/zeropress-app/create-zeropress-theme/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyTemplateRoot = "template_root"
	KeyDebug        = "debug"
)

// Dir returns the path to the config directory (~/.zeropress/).
// ZEROPRESS_HOME overrides the location.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.zeropress/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyTemplateRoot, "")
	viper.SetDefault(KeyDebug, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// TemplateRoot returns the on-disk template root, or "" to use the
// templates built into the binary. A relative path is resolved against
// the config directory.
func TemplateRoot() string {
	root := viper.GetString(KeyTemplateRoot)
	if root == "" || filepath.IsAbs(root) {
		return root
	}
	return filepath.Join(Dir(), root)
}

// Debug reports whether per-file progress should be printed.
func Debug() bool {
	return viper.GetBool(KeyDebug)
}
