package resolve

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestName is the file that marks the root of a project.
const ManifestName = "yuho.json"

// Manifest is the project manifest. It lives at the project root and
// names the directories that are searched for referenced modules.
type Manifest struct {
	root string

	// SourceDirectories are searched in order, relative to the
	// directory the manifest lives in.
	SourceDirectories []string `json:"source-directories"`
}

// LoadManifest looks for a manifest starting at the directory of path
// and walking up towards the filesystem root. When there is none it
// returns nil with no error, leaving only the file's own directory as
// search path.
func LoadManifest(path string) (*Manifest, error) {
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}

	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return readManifest(candidate)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

func readManifest(path string) (*Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}

	m.root = filepath.Dir(path)
	return &m, nil
}

// Root is the directory the manifest was found in.
func (m *Manifest) Root() string {
	return m.root
}

// SearchDirs returns the source directories as absolute paths.
func (m *Manifest) SearchDirs() []string {
	dirs := make([]string, len(m.SourceDirectories))
	for i, dir := range m.SourceDirectories {
		dirs[i] = filepath.Join(m.root, dir)
	}
	return dirs
}
