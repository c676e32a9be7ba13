package config

import (
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// ListenAddr is the gRPC listen address of the graph server.
	ListenAddr string `yaml:"listenAddr"`
	// HTTPAddr serves /metrics and /feed when set.
	HTTPAddr string `yaml:"httpAddr"`

	Loglevel string `yaml:"loglevel"`

	// ImplementationID is the identifier node handles must carry to be
	// accepted by count queries.
	ImplementationID string `yaml:"implementationId"`

	// Prefixes overrides the namespace prefixes used for topic name
	// expansion. Empty means the built-in defaults.
	Prefixes []string `yaml:"prefixes"`

	// ExpandCacheSize bounds the memoized name expansions.
	ExpandCacheSize int `yaml:"expandCacheSize"`

	Sinks []Sink `yaml:"sinks"`
}

// Sink is a monitoring sink attached to the discovery event stream. Each
// sink kind interprets its own spec.
type Sink struct {
	Name string                 `yaml:"name"`
	Spec map[string]interface{} `yaml:"spec"`
}

// LoadSinkConfig decodes the sink-specific spec into target.
func (s *Sink) LoadSinkConfig(target interface{}) error {
	return mapstructure.Decode(s.Spec, target)
}

// FindSink returns the sink with the given name, if configured.
func (c *Config) FindSink(name string) (*Sink, bool) {
	for i := range c.Sinks {
		if c.Sinks[i].Name == name {
			return &c.Sinks[i], true
		}
	}
	return nil, false
}

func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
