package config

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var embeddedDefaultConfig []byte

var (
	embeddedConfigOnce sync.Once
	embeddedConfig     File
	embeddedConfigErr  error
)

// DefaultConfigYAML returns a copy of the embedded default config YAML bytes.
func DefaultConfigYAML() []byte {
	return append([]byte(nil), embeddedDefaultConfig...)
}

// Default parses the embedded default configuration. The result is shared, so
// callers get a deep copy.
func Default() (File, error) {
	embeddedConfigOnce.Do(func() {
		if len(embeddedDefaultConfig) == 0 {
			embeddedConfigErr = fmt.Errorf("embedded default config is empty")
			return
		}
		if err := yaml.Unmarshal(embeddedDefaultConfig, &embeddedConfig); err != nil {
			embeddedConfigErr = fmt.Errorf("decode embedded default config: %w", err)
			return
		}
		if embeddedConfig.Table.Padding == nil || embeddedConfig.Table.Charset == "" || embeddedConfig.Table.Theme == "" {
			embeddedConfigErr = fmt.Errorf("embedded default config is missing table defaults")
		}
	})
	if embeddedConfigErr != nil {
		return File{}, embeddedConfigErr
	}
	return Merge(File{}, embeddedConfig), nil
}
