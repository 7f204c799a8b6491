// Package config manages user-level settings stored at ~/.zeropress/config.yaml.
// Every key can also be supplied through a ZEROPRESS_-prefixed environment
// variable, which takes precedence over the file.
package config
