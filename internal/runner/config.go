package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
	"github.com/projectdiscovery/wordgraph"
)

// defaultMessagesConfig returns path of user level messages config
func defaultMessagesConfig() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, fmt.Sprintf(".config/wordgraph/messages_%v.yaml", version))
}

func init() {
	defaultMessagesCfg := defaultMessagesConfig()
	if defaultMessagesCfg == "" {
		return
	}
	// create default messages.yaml config if does not exist
	if fileutil.FileExists(defaultMessagesCfg) {
		// if it exists use that data as default
		if cfg, err := wordgraph.NewConfig(defaultMessagesCfg); err == nil {
			wordgraph.DefaultConfig = *cfg
			return
		}
	}
	if err := os.MkdirAll(filepath.Dir(defaultMessagesCfg), 0700); err != nil {
		gologger.Verbose().Msgf("failed to create config dir for %v got: %v", defaultMessagesCfg, err)
		return
	}
	if err := os.WriteFile(defaultMessagesCfg, wordgraph.DefaultConfigBin, 0600); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", defaultMessagesCfg, err)
	}
}

// generateConfig writes current default messages to filePath
func generateConfig(filePath string) error {
	if dir := filepath.Dir(filePath); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}
	return wordgraph.GenerateSample(filePath)
}
