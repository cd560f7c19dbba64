// Package content holds the portfolio text shown on the page.
package content

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmpty indicates a content file without any project.
	ErrEmpty = errors.New("content: no projects")

	// ErrMissingTitle indicates a project without a title.
	ErrMissingTitle = errors.New("content: project title is required")
)

type Project struct {
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description"`
	LongDescription string   `yaml:"long_description,omitempty"`
	Tags            []string `yaml:"tags"`
	Date            string   `yaml:"date"`
}

// Report is the text shown in the detail overlay.
func (p Project) Report() string {
	if p.LongDescription != "" {
		return p.LongDescription
	}
	return p.Description
}

type Skill struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type SkillCategory struct {
	Category string  `yaml:"category"`
	Skills   []Skill `yaml:"skills"`
}

type Experience struct {
	Role        string   `yaml:"role"`
	Company     string   `yaml:"company"`
	Period      string   `yaml:"period"`
	Description []string `yaml:"description"`
}

type Contact struct {
	Email    string `yaml:"email"`
	LinkedIn string `yaml:"linkedin"`
}

type Hero struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Summary string `yaml:"summary"`
}

type Portfolio struct {
	Hero        Hero            `yaml:"hero"`
	Projects    []Project       `yaml:"projects"`
	Skills      []SkillCategory `yaml:"skills"`
	Experiences []Experience    `yaml:"experiences"`
	Contact     Contact         `yaml:"contact"`
}

// Validate checks the fields the page cannot render without.
func (p *Portfolio) Validate() error {
	if len(p.Projects) == 0 {
		return ErrEmpty
	}
	for i, proj := range p.Projects {
		if proj.Title == "" {
			return fmt.Errorf("project %d: %w", i, ErrMissingTitle)
		}
	}
	return nil
}

// Load reads a YAML portfolio. Sections missing from the file keep the
// built-in content.
func Load(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("content: parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
