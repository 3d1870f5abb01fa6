package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load layers configuration, later layers winning:
//
//  0. built-in defaults
//  1. {configDir}/base.yaml
//  2. {configDir}/{profile}.yaml
//  3. APP_ environment variables
//
// Environment keys are matched against the keys already loaded, so a field
// name containing underscores is not mistaken for nesting:
//
//	APP_SERVER_READ_TIMEOUT       -> server.read_timeout
//	APP_CLIENT_RETRY_MAX_ATTEMPTS -> client.retry.max_attempts
//	APP_LOG_REDACT_FIELDS=ssn,dob -> log.redact_fields
//	APP_SYNC_SCHEDULE             -> sync.schedule
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	layers := []func(*koanf.Koanf) error{
		loadDefaults,
		loadYAML(filepath.Join(o.configDir, "base.yaml")),
		loadYAML(filepath.Join(o.configDir, profile+".yaml")),
		loadEnv,
	}
	for _, layer := range layers {
		if err := layer(k); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// LoadResources reads only the resources list from a YAML file in the same
// shape as base.yaml. Offline tools use it to register the service's
// resources without a full server configuration.
func LoadResources(path string) ([]ResourceConfig, error) {
	k := koanf.New(".")
	if err := loadYAML(path)(k); err != nil {
		return nil, err
	}

	var resources []ResourceConfig
	if err := k.Unmarshal("resources", &resources); err != nil {
		return nil, fmt.Errorf("unmarshalling resources from %s: %w", path, err)
	}
	if err := validateResources(resources); err != nil {
		return nil, fmt.Errorf("validating resources in %s: %w", path, err)
	}
	return resources, nil
}

func loadDefaults(k *koanf.Koanf) error {
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	return nil
}

func loadYAML(path string) func(*koanf.Koanf) error {
	return func(k *koanf.Koanf) error {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config %s: %w", path, err)
		}
		return nil
	}
}

// loadEnv applies APP_ variables. Keys with no loaded counterpart fall back
// to replacing every underscore with a dot. Values for list keys are split on
// commas.
func loadEnv(k *koanf.Koanf) error {
	known := make(map[string]string)
	lists := make(map[string]bool)
	for _, key := range k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
		switch k.Get(key).(type) {
		case []string, []any:
			lists[key] = true
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			dotted, ok := known[key]
			if !ok {
				return strings.ReplaceAll(key, "_", "."), value
			}
			if lists[dotted] {
				return dotted, strings.Split(value, ",")
			}
			return dotted, value
		},
	}), nil)
	if err != nil {
		return fmt.Errorf("loading env vars: %w", err)
	}
	return nil
}

// validateProfile rejects empty names and anything that could escape the
// config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
