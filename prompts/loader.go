package prompts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Key identifies a built-in prompt.
type Key string

const (
	KeyDesign       Key = "design"
	KeyArchitecture Key = "architecture"
	KeyMarketing    Key = "marketing"
	KeyDevelopment  Key = "development"
	KeyConsulting   Key = "consulting"
	KeyPhotography  Key = "photography"
	KeyAggregator   Key = "aggregator"
)

// promptConfig pairs a default prompt with its override filename.
type promptConfig struct {
	defaultContent string
	filename       string
}

var promptRegistry = map[Key]promptConfig{
	KeyDesign:       {DesignSystemPrompt, "design_system_prompt.txt"},
	KeyArchitecture: {ArchitectureSystemPrompt, "architecture_system_prompt.txt"},
	KeyMarketing:    {MarketingSystemPrompt, "marketing_system_prompt.txt"},
	KeyDevelopment:  {DevelopmentSystemPrompt, "development_system_prompt.txt"},
	KeyConsulting:   {ConsultingSystemPrompt, "consulting_system_prompt.txt"},
	KeyPhotography:  {PhotographySystemPrompt, "photography_system_prompt.txt"},
	KeyAggregator:   {AggregatorSystemPrompt, "aggregator_system_prompt.txt"},
}

// Get returns the prompt for key, preferring a file override in templatesDir
// when one exists. An empty templatesDir always yields the built-in default.
func Get(key Key, templatesDir string) (string, error) {
	config, ok := promptRegistry[key]
	if !ok {
		return "", fmt.Errorf("unrecognized prompt key: %s", key)
	}

	if strings.TrimSpace(templatesDir) == "" {
		return config.defaultContent, nil
	}

	customPath := filepath.Join(templatesDir, config.filename)
	content, err := os.ReadFile(customPath)
	if err == nil {
		return string(content), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("read custom prompt %s: %w", customPath, err)
	}
	return config.defaultContent, nil
}

// ForSector returns the built-in system prompt for a sector label, falling
// back to the consulting persona for labels without a dedicated prompt.
func ForSector(sector string) string {
	if cfg, ok := promptRegistry[Key(sector)]; ok {
		return cfg.defaultContent
	}
	return ConsultingSystemPrompt
}
