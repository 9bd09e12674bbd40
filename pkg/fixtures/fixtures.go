// Package fixtures loads source record bundles from YAML.
package fixtures

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/noah-isme/tinta-academy-api/internal/models"
)

//go:embed data
var embedded embed.FS

// Bundle is a complete set of source records.
type Bundle struct {
	Catalog   models.Catalog             `yaml:"catalog"`
	Educators []models.EducatorWorkspace `yaml:"educators"`
	Students  []models.LearnerAccount    `yaml:"students"`
}

// Default returns the bundle compiled into the binary.
func Default() (*Bundle, error) {
	return LoadFS(embedded, "data")
}

// Load reads a bundle from a YAML file or a directory of YAML files.
// An empty path yields the embedded bundle.
func Load(path string) (*Bundle, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat fixtures %s: %w", path, err)
	}
	if info.IsDir() {
		return LoadFS(os.DirFS(path), ".")
	}
	return LoadFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// LoadFS walks root in fsys and merges every YAML document found, in lexical order.
func LoadFS(fsys fs.FS, root string) (*Bundle, error) {
	bundle := &Bundle{}
	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		var part Bundle
		if err := yaml.Unmarshal(raw, &part); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		bundle.merge(part)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load fixtures: %w", err)
	}
	return bundle, nil
}

func (b *Bundle) merge(part Bundle) {
	if part.Catalog.Landing.Hero.Headline != "" {
		b.Catalog.Landing = part.Catalog.Landing
	}
	b.Catalog.Educators = append(b.Catalog.Educators, part.Catalog.Educators...)
	b.Catalog.Tags = append(b.Catalog.Tags, part.Catalog.Tags...)
	b.Catalog.Upcoming = append(b.Catalog.Upcoming, part.Catalog.Upcoming...)
	b.Catalog.Past = append(b.Catalog.Past, part.Catalog.Past...)
	b.Educators = append(b.Educators, part.Educators...)
	b.Students = append(b.Students, part.Students...)
}

// Educator returns the workspace for id.
func (b *Bundle) Educator(id string) (*models.EducatorWorkspace, bool) {
	for i := range b.Educators {
		if b.Educators[i].Profile.ID == id {
			return &b.Educators[i], true
		}
	}
	return nil, false
}

// Student returns the learner account for id.
func (b *Bundle) Student(id string) (*models.LearnerAccount, bool) {
	for i := range b.Students {
		if b.Students[i].Profile.ID == id {
			return &b.Students[i], true
		}
	}
	return nil, false
}
