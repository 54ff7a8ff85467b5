package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

// DefaultPattern matches catalogue files at any depth
const DefaultPattern = "**/*.{yaml,yml,toml}"

// catalogueFile is the on-disk layout. A file either lists several apps
// under "apps" or describes a single app at the top level.
type catalogueFile struct {
	Apps []types.AppDefinition `yaml:"apps" toml:"apps"`
	types.AppDefinition `yaml:",inline" toml:"-"`
}

// SeedResult summarises a seeding pass
type SeedResult struct {
	Files  int
	Loaded int
	Failed int
}

// Seeder loads extra app definitions from YAML and TOML files
type Seeder struct {
	manager *Manager
	appsDir string
	pattern string
	logger  *zap.Logger
}

// NewSeeder creates a new app seeder
func NewSeeder(manager *Manager, appsDir, pattern string, logger *zap.Logger) *Seeder {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{
		manager: manager,
		appsDir: appsDir,
		pattern: pattern,
		logger:  logger,
	}
}

// SeedApps registers every definition found under the apps directory. A
// missing directory is not an error; unreadable or invalid files are logged
// and skipped.
func (s *Seeder) SeedApps() (SeedResult, error) {
	var result SeedResult
	if s.appsDir == "" {
		return result, nil
	}

	if _, err := os.Stat(s.appsDir); os.IsNotExist(err) {
		s.logger.Warn("catalogue directory not found", zap.String("dir", s.appsDir))
		return result, nil
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(s.appsDir, s.pattern))
	if err != nil {
		return result, fmt.Errorf("glob catalogue files: %w", err)
	}
	sort.Strings(matches)

	for _, path := range matches {
		result.Files++
		apps, err := LoadFile(path)
		if err != nil {
			s.logger.Warn("failed to load catalogue file", zap.String("file", path), zap.Error(err))
			result.Failed++
			continue
		}
		for _, app := range apps {
			if err := s.manager.Register(app); err != nil {
				s.logger.Warn("invalid app definition", zap.String("file", path), zap.Error(err))
				result.Failed++
				continue
			}
			result.Loaded++
		}
	}

	s.logger.Info("catalogue seeded",
		zap.String("dir", s.appsDir),
		zap.Int("files", result.Files),
		zap.Int("loaded", result.Loaded),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// LoadFile parses one catalogue file, choosing the decoder by extension
func LoadFile(path string) ([]types.AppDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file catalogueFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse yaml %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse toml %s: %w", path, err)
		}
		if len(file.Apps) == 0 {
			if err := toml.Unmarshal(data, &file.AppDefinition); err != nil {
				return nil, fmt.Errorf("parse toml %s: %w", path, err)
			}
		}
	default:
		return nil, fmt.Errorf("unsupported catalogue format %q", ext)
	}

	if len(file.Apps) > 0 {
		return file.Apps, nil
	}
	if file.ID == "" {
		return nil, fmt.Errorf("%s defines no apps", path)
	}
	return []types.AppDefinition{file.AppDefinition}, nil
}
