package entities

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings is the optional configuration file of databricks-sync.
// Every value can be overridden by a flag or a task host input.
type Settings struct {
	Account     string `yaml:"account"      toml:"account"`
	AccessToken string `yaml:"access_token" toml:"access_token"` // Inline, ${ENV_VAR}, or file path
	BranchTag   string `yaml:"branch_tag"   toml:"branch_tag"`
	RepoPath    string `yaml:"repo_path"    toml:"repo_path"`
	RepoID      string `yaml:"repo_id"      toml:"repo_id"`
	Timeout     string `yaml:"timeout"      toml:"timeout"`
}

// NewSettings reads and parses a configuration file. The format follows the extension.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, decodeErr := toml.Decode(string(data), &settings); decodeErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", decodeErr)
		}
	default:
		if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
		}
	}

	if tokenErr := settings.resolveAccessToken(); tokenErr != nil {
		return nil, tokenErr
	}

	if validateErr := validate(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// TimeoutDuration returns the configured timeout, or zero when unset.
func (s *Settings) TimeoutDuration() time.Duration {
	if s == nil || s.Timeout == "" {
		return 0
	}
	d, _ := time.ParseDuration(s.Timeout) // validated on load
	return d
}

const configBaseName = "databricks-sync"

var configExtensions = []string{".yaml", ".yml", ".toml"}

// configDirs lists the directories searched for a config file, most specific first.
func configDirs() []string {
	dirs := []string{".", ".config", "configs"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home, filepath.Join(home, ".config"))
	}
	return dirs
}

// FindConfigFile returns the first databricks-sync config file found, hidden
// (.databricks-sync.*) names taking precedence over visible ones in each directory.
func FindConfigFile() (string, error) {
	for _, dir := range configDirs() {
		for _, prefix := range []string{".", ""} {
			for _, ext := range configExtensions {
				candidate := filepath.Join(dir, prefix+configBaseName+ext)
				if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
					return candidate, nil
				}
			}
		}
	}
	return "", fmt.Errorf("no %s config file found", configBaseName)
}

// resolveAccessToken expands ${VAR} references in the access token and, when the
// result names a file, replaces it with the trimmed file content.
func (s *Settings) resolveAccessToken() error {
	if s.AccessToken == "" {
		return nil
	}

	var unset []string
	token := os.Expand(s.AccessToken, func(name string) string {
		value, ok := os.LookupEnv(name)
		if !ok {
			unset = append(unset, name)
		}
		return value
	})
	if len(unset) > 0 {
		return fmt.Errorf("access_token references unset variables: %s", strings.Join(unset, ", "))
	}

	if info, err := os.Stat(token); err == nil && info.Mode().IsRegular() {
		data, readErr := os.ReadFile(token)
		if readErr != nil {
			return fmt.Errorf("failed to read access token file %q: %w", token, readErr)
		}
		logger.Debugf("Read access token from %q", token)
		token = strings.TrimSpace(string(data))
	}

	s.AccessToken = token
	return nil
}

// validate checks the values that can be checked without the other input sources.
func validate(settings *Settings) error {
	if settings.RepoID != "" {
		if _, err := strconv.ParseInt(settings.RepoID, 10, 64); err != nil {
			return fmt.Errorf("repo_id must be numeric, got %q", settings.RepoID)
		}
	}
	if settings.Timeout != "" {
		d, err := time.ParseDuration(settings.Timeout)
		if err != nil {
			return fmt.Errorf("timeout is not a valid duration: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("timeout must not be negative, got %s", settings.Timeout)
		}
	}
	return nil
}
