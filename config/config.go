package config

// Config is the on-disk configuration shared by sources and logging.
type Config struct {
	Source Source `yaml:"source"`
	Log    Log    `yaml:"log"`
}

// Source selects the bit generator backing the samplers. A nil Seed means a
// fresh seed is read from the operating system on every construction.
type Source struct {
	Algorithm string  `yaml:"algorithm"`
	Seed      *uint64 `yaml:"seed,omitempty"`
}

type Log struct {
	Level string `yaml:"level,omitempty"`
	File  bool   `yaml:"file,omitempty"`
}

const DefaultAlgorithm = "xoshiro256**"

func Default() *Config {
	return &Config{
		Source: Source{Algorithm: DefaultAlgorithm},
		Log:    Log{Level: "info"},
	}
}

func (c *Config) applyDefaults() {
	if c.Source.Algorithm == "" {
		c.Source.Algorithm = DefaultAlgorithm
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
