package usecase

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"

	"github.com/m-mizutani/slackpost/pkg/domain"
	"github.com/m-mizutani/slackpost/pkg/domain/interfaces"
	"github.com/m-mizutani/slackpost/pkg/domain/model"
)

type configService struct{}

// NewConfigService creates a new ConfigService instance
func NewConfigService() interfaces.ConfigService {
	return &configService{}
}

// Load reads and parses the config file at path
func (c *configService) Load(path string) (*model.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.ErrConfiguration.Wrap(err)
	}

	var config model.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, domain.ErrConfiguration.Wrap(err)
	}

	return &config, nil
}

// LoadDefault loads the config from the default path. A missing file
// is not an error and yields an empty config.
func (c *configService) LoadDefault() (*model.Config, error) {
	path := c.GetDefaultPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &model.Config{}, nil
	}
	return c.Load(path)
}

// LoadFromDirectory looks for a project config file in dir. When none
// exists it returns an empty config and an empty path. On a parse
// failure the found path is still returned alongside the error.
func (c *configService) LoadFromDirectory(dir string) (*model.Config, string, error) {
	path := c.findConfigInDirectory(dir)
	if path == "" {
		return &model.Config{}, "", nil
	}

	config, err := c.Load(path)
	if err != nil {
		return nil, path, err
	}
	return config, path, nil
}

// findConfigInDirectory prefers .slackpost.yml over .slackpost.yaml
func (c *configService) findConfigInDirectory(dir string) string {
	for _, name := range []string{".slackpost.yml", ".slackpost.yaml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// GetDefaultPath returns the default config file location
func (c *configService) GetDefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "slackpost", "config.yml")
}

// GenerateTemplate returns a commented starter configuration
func (c *configService) GenerateTemplate() string {
	return `# slackpost configuration
# Values here fill in flags left off the command line. A profile
# selected with --profile overrides the defaults section.

defaults:
  channel: "#general"
  username: webhookbot
  icon_emoji: ":grey_exclamation:"

profiles:
  releases:
    channel: "#releases"
    username: releasebot
    icon_emoji: ":rocket:"
  alerts:
    channel: "#alerts"
    color: danger
`
}

// SaveTemplate writes the starter configuration to path. An existing
// file is kept unless force is set.
func (c *configService) SaveTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return domain.ErrConfiguration.Wrap(goerr.New("config file already exists: " + path))
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return domain.ErrConfiguration.Wrap(err)
		}
	}

	if err := os.WriteFile(path, []byte(c.GenerateTemplate()), 0644); err != nil {
		return domain.ErrConfiguration.Wrap(err)
	}

	return nil
}
