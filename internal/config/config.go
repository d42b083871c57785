package config

type Config struct {
	Data       DataConfig    `mapstructure:"data"`
	Journal    JournalConfig `mapstructure:"journal"`
	ConfigPath string        `mapstructure:"-"`
}

type DataConfig struct {
	Path string `mapstructure:"path"`
}

type JournalConfig struct {
	Path    string `mapstructure:"path"`
	Enabled bool   `mapstructure:"enabled"`
}

func NewDefault() *Config {
	return &Config{
		Data:    DataConfig{Path: ""},
		Journal: JournalConfig{Path: "", Enabled: true},
	}
}
