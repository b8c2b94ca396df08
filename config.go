package wordgraph

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var DefaultConfigBin []byte

// DefaultConfig contains the embedded default messages
var DefaultConfig Config

func init() {
	if err := yaml.Unmarshal(DefaultConfigBin, &DefaultConfig); err != nil {
		panic(err)
	}
}

type Config struct {
	Messages Messages `yaml:"messages"`
}

// Messages are fasttemplate templates used to report query results
type Messages struct {
	MissingWords string `yaml:"missing-words"`
	MissingWord  string `yaml:"missing-word"`
	NoBridge     string `yaml:"no-bridge"`
	Bridges      string `yaml:"bridges"`
	NewText      string `yaml:"new-text"`
	NoPath       string `yaml:"no-path"`
	Path         string `yaml:"path"`
	NoTarget     string `yaml:"no-target"`
	Walk         string `yaml:"walk"`
	WalkSaved    string `yaml:"walk-saved"`
	Suggestion   string `yaml:"suggestion"`
}

// NewConfig reads config from file.
// Messages missing from file keep their default value.
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml file with default values
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(DefaultConfig)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
