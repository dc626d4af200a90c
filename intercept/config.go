package intercept

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Config selects which wrapped functions the interposition pass redirects.
//
//	libraries: [libc, libxml2]
//	exclude: [strcpy]
//	dictionary: cmp.dict
type Config struct {
	// Libraries lists the enabled families. Empty enables all of them.
	Libraries []Library `yaml:"libraries"`
	// Exclude lists C symbols that are left alone.
	Exclude []string `yaml:"exclude"`
	// Dictionary is where literals compared by redirected calls are written.
	Dictionary string `yaml:"dictionary"`

	libs    map[Library]bool
	exclude map[string]bool
}

// DefaultConfig enables every wrapped function.
func DefaultConfig() *Config {
	cfg := &Config{}
	if err := cfg.validate(); err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return cfg, nil
}

func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	known := make(map[Library]bool)
	for _, lib := range Libraries() {
		known[lib] = true
	}
	cfg.libs = make(map[Library]bool)
	for _, lib := range cfg.Libraries {
		if !known[lib] {
			return fmt.Errorf("unknown library %q", lib)
		}
		cfg.libs[lib] = true
	}
	cfg.exclude = make(map[string]bool)
	for _, name := range cfg.Exclude {
		if _, ok := Lookup(name); !ok {
			return fmt.Errorf("unknown symbol %q", name)
		}
		cfg.exclude[name] = true
	}
	return nil
}

// Enabled reports whether calls to s are redirected.
func (cfg *Config) Enabled(s Symbol) bool {
	if cfg.exclude[s.Name] {
		return false
	}
	return len(cfg.libs) == 0 || cfg.libs[s.Library]
}
