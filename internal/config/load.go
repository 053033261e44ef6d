package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoCloudsFile is returned when no clouds.yaml exists on the search path.
	ErrNoCloudsFile = errors.New("no clouds.yaml found")
	// ErrCloudNotFound is returned when the requested profile is missing from clouds.yaml.
	ErrCloudNotFound = errors.New("cloud profile not found")
)

// cloudsFile is the top-level layout shared by clouds.yaml and secure.yaml.
type cloudsFile struct {
	Clouds map[string]map[string]any `yaml:"clouds"`
}

// SearchPaths returns the directories searched for clouds.yaml and secure.yaml,
// in order of precedence.
func SearchPaths() []string {
	paths := []string{"."}
	if dir := userConfigDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "openstack"))
	}
	return append(paths, systemConfigDir)
}

func userConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

// LoadCloud resolves the named profile from the standard search path.
func LoadCloud(name string) (*Cloud, error) {
	return LoadCloudFrom(SearchPaths(), name)
}

// LoadCloudFrom resolves the named profile, searching only the given directories.
// Environment overrides for the file locations still apply.
func LoadCloudFrom(dirs []string, name string) (*Cloud, error) {
	cloudsPath := os.Getenv(EnvConfigFile)
	if cloudsPath == "" {
		cloudsPath = findFile(dirs, cloudsFileNames)
	}
	if cloudsPath == "" {
		return nil, fmt.Errorf("%w (searched %v)", ErrNoCloudsFile, dirs)
	}

	cloud, err := loadProfile(cloudsPath, name)
	if err != nil {
		return nil, err
	}
	if cloud == nil {
		return nil, fmt.Errorf("%w: %q in %s", ErrCloudNotFound, name, cloudsPath)
	}

	securePath := os.Getenv(EnvSecureFile)
	if securePath == "" {
		securePath = findFile(dirs, secureFileNames)
	}
	if securePath != "" {
		secure, err := loadProfile(securePath, name)
		if err != nil {
			return nil, err
		}
		if secure != nil {
			if err := mergo.Merge(cloud, *secure, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge %s: %w", securePath, err)
			}
		}
	}

	cloud.Name = name
	applyDefaults(cloud)

	if err := cloud.Validate(); err != nil {
		return nil, fmt.Errorf("cloud %q is invalid: %w", name, err)
	}
	return cloud, nil
}

// loadProfile reads a clouds-style file and decodes one profile from it.
// It returns nil without error when the file has no such profile.
func loadProfile(path, name string) (*Cloud, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var file cloudsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml %s: %w", path, err)
	}

	raw, ok := file.Clouds[name]
	if !ok {
		return nil, nil
	}

	var cloud Cloud
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cloud,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode cloud %q in %s: %w", name, path, err)
	}
	return &cloud, nil
}

func findFile(dirs, names []string) string {
	for _, dir := range dirs {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}
	return ""
}

func applyDefaults(cloud *Cloud) {
	if cloud.IdentityAPIVersion == "" {
		cloud.IdentityAPIVersion = DefaultIdentityAPIVersion
	}
}
