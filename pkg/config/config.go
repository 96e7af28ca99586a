// Package config loads cinecheck configuration from ini files with a merge
// chain: embedded defaults, then the global config in the user config dir,
// then a local .cinecheck file in the working directory. Local wins.
package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PBL6-cnpm/cinecheck/pkg/notify"
)

//go:embed defaults
var defaultsFS embed.FS

// localConfigName is the per-repo override file, looked up in the working directory.
const localConfigName = ".cinecheck"

// Config holds all resolved configuration values.
type Config struct {
	Values
	configDir string
}

// Load resolves configuration from the given config directory. Empty configDir
// uses the default location. The directory and a default config file are
// created on first run.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	installer := newDefaultsInstaller(defaultsFS)
	if err := installer.Install(configDir); err != nil {
		return nil, fmt.Errorf("install defaults: %w", err)
	}

	loader := newValuesLoader(defaultsFS)
	values, err := loader.Load(localConfigName, filepath.Join(configDir, "config"))
	if err != nil {
		return nil, fmt.Errorf("load values: %w", err)
	}

	return &Config{Values: values, configDir: configDir}, nil
}

// ConfigDir returns the resolved config directory.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// NotifyParams maps notification settings to notify.Params.
func (c *Config) NotifyParams() notify.Params {
	return notify.Params{
		Channels:      c.NotifyChannels,
		OnError:       c.NotifyOnError,
		OnComplete:    c.NotifyOnComplete,
		TimeoutMs:     c.NotifyTimeoutMs,
		TelegramToken: c.NotifyTelegramToken,
		TelegramChat:  c.NotifyTelegramChat,
		SlackToken:    c.NotifySlackToken,
		SlackChannel:  c.NotifySlackChannel,
		SMTPHost:      c.NotifySMTPHost,
		SMTPPort:      c.NotifySMTPPort,
		SMTPUsername:  c.NotifySMTPUsername,
		SMTPPassword:  c.NotifySMTPPassword,
		SMTPStartTLS:  c.NotifySMTPStartTLS,
		EmailFrom:     c.NotifyEmailFrom,
		EmailTo:       c.NotifyEmailTo,
		WebhookURLs:   c.NotifyWebhookURLs,
		CustomScript:  c.NotifyCustomScript,
	}
}

// DefaultConfigDir returns the default config directory location.
func DefaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "cinecheck")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cinecheck.d" // last resort, relative to cwd
	}
	return filepath.Join(home, ".config", "cinecheck")
}

// stripComments removes lines starting with # from content. Used to detect
// config files that are pure commented templates, which fall back to embedded
// defaults.
func stripComments(content string) string {
	var result []string
	for line := range strings.SplitSeq(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}
