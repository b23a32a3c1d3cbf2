package config

import (
	"encoding/json"
	"fmt"
)

// ParseConfig parses the raw JSON configuration.
func ParseConfig(raw []byte) (config Config, err error) {
	config = Default()
	err = json.Unmarshal(raw, &config)
	if err != nil {
		return config, fmt.Errorf("unmarshal config: %v", err)
	}
	return config, nil
}

// Default returns the configuration used when nothing is supplied.
func Default() Config {
	return Config{
		Log: LogLevelError,
	}
}

type Config struct {
	Log LogLevel `json:"log"`
}
