package agent

import (
	"fmt"

	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v3"

	"github.com/proposta-ai/propgen/internal/template"
)

// storeFile is the YAML document shape of a persisted agent store.
type storeFile struct {
	Agents []*Config `yaml:"agents"`
}

// FileRegistry is a Registry loaded from a YAML file. The loaded table is
// immutable; reloading produces a new FileRegistry value (see Watcher).
type FileRegistry struct {
	static *StaticRegistry
	path   string
}

// LoadFileRegistry reads and validates an agent store file from fs.
func LoadFileRegistry(fs afero.Fs, path string) (*FileRegistry, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read agent store %s: %w", path, err)
	}

	var doc storeFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse agent store %s: %w", path, err)
	}
	if len(doc.Agents) == 0 {
		return nil, fmt.Errorf("agent store %s: no agents declared", path)
	}

	for i, c := range doc.Agents {
		if _, err := ParseSector(string(c.Sector)); err != nil {
			return nil, fmt.Errorf("agent store %s: entry %d: %w", path, i, err)
		}
		if c.Style == "" {
			return nil, fmt.Errorf("agent store %s: entry %d (%s): missing style", path, i, c.Sector)
		}
		if c.SystemPrompt == "" {
			return nil, fmt.Errorf("agent store %s: entry %d (%s/%s): missing systemPrompt", path, i, c.Sector, c.Style)
		}
	}

	return &FileRegistry{
		static: NewStaticRegistry(doc.Agents),
		path:   path,
	}, nil
}

// Lookup implements Registry.
func (r *FileRegistry) Lookup(sector Sector, style template.Style) (*Config, error) {
	return r.static.Lookup(sector, style)
}

// List implements Registry.
func (r *FileRegistry) List() []*Config {
	return r.static.List()
}

// Path returns the file the registry was loaded from.
func (r *FileRegistry) Path() string {
	return r.path
}
