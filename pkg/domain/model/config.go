package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackpost/pkg/domain"
)

// Config represents the application configuration
type Config struct {
	Defaults Profile            `yaml:"defaults,omitempty"`
	Profiles map[string]Profile `yaml:"profiles,omitempty"`
}

// Profile is a named set of message defaults. Profiles never carry a
// webhook key; the key always comes from the caller.
type Profile struct {
	Channel   string `yaml:"channel,omitempty"`
	Username  string `yaml:"username,omitempty"`
	IconEmoji string `yaml:"icon_emoji,omitempty"`
	Color     Color  `yaml:"color,omitempty"`
}

// Resolve merges the named profile over the file-level defaults. An empty
// name selects the defaults alone.
func (c *Config) Resolve(name string) (Profile, error) {
	if c == nil {
		if name != "" {
			return Profile{}, domain.ErrConfiguration.Wrap(goerr.New("unknown profile: " + name))
		}
		return Profile{}, nil
	}

	merged := c.Defaults
	if name == "" {
		return merged, nil
	}

	profile, ok := c.Profiles[name]
	if !ok {
		return Profile{}, domain.ErrConfiguration.Wrap(goerr.New("unknown profile: " + name))
	}

	if profile.Channel != "" {
		merged.Channel = profile.Channel
	}
	if profile.Username != "" {
		merged.Username = profile.Username
	}
	if profile.IconEmoji != "" {
		merged.IconEmoji = profile.IconEmoji
	}
	if profile.Color != "" {
		merged.Color = profile.Color
	}
	return merged, nil
}
