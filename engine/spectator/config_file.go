package spectator

import (
	"fmt"
	"os"
	"strings"

	"github.com/Carmen-Shannon/oxy-spectator/common"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk form of the controller settings. Absent fields keep their defaults.
type FileConfig struct {
	LookSpeed        *float32          `yaml:"look_speed"`
	MoveSpeed        *float32          `yaml:"move_speed"`
	Friction         *float32          `yaml:"friction"`
	SprintMultiplier *float32          `yaml:"sprint_multiplier"`
	RawKeyMapping    map[string]string `yaml:"key_mapping"`

	// KeyMapping is RawKeyMapping resolved to key codes and actions.
	KeyMapping KeyMapping `yaml:"-"`
}

// LoadConfigFile reads and parses a YAML controller config.
//
// Parameters:
//   - path: path to the YAML file
//
// Returns:
//   - *FileConfig: the parsed config
//   - error: error if the file cannot be read or contains unknown keys or actions
func LoadConfigFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spectator config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse spectator config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses YAML controller config data. Key names are resolved with
// common.KeyCodeFromName and action names with ParseAction; the action "NONE" (any case) unbinds a key.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *FileConfig: the parsed config
//   - error: error if the document is malformed or names an unknown key or action
func ParseConfig(data []byte) (*FileConfig, error) {
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.KeyMapping = make(KeyMapping, len(cfg.RawKeyMapping))
	for keyName, actionName := range cfg.RawKeyMapping {
		code, ok := common.KeyCodeFromName(keyName)
		if !ok {
			return nil, fmt.Errorf("unknown key %q in key_mapping", keyName)
		}
		var action Action
		if !strings.EqualFold(strings.TrimSpace(actionName), "NONE") {
			if action, ok = ParseAction(actionName); !ok {
				return nil, fmt.Errorf("unknown action %q for key %q", actionName, keyName)
			}
		}
		cfg.KeyMapping[code] = action
	}
	return &cfg, nil
}

// Options converts the config into controller options. Only fields present in the file produce options.
//
// Returns:
//   - []ControllerOption: options to pass to NewSpectatorController
func (cfg *FileConfig) Options() []ControllerOption {
	var opts []ControllerOption
	if cfg.LookSpeed != nil {
		opts = append(opts, WithLookSpeed(*cfg.LookSpeed))
	}
	if cfg.MoveSpeed != nil {
		opts = append(opts, WithMoveSpeed(*cfg.MoveSpeed))
	}
	if cfg.Friction != nil {
		opts = append(opts, WithFriction(*cfg.Friction))
	}
	if cfg.SprintMultiplier != nil {
		opts = append(opts, WithSprintMultiplier(*cfg.SprintMultiplier))
	}
	if len(cfg.KeyMapping) > 0 {
		opts = append(opts, WithKeyMapping(cfg.KeyMapping))
	}
	return opts
}
