// ABOUTME: Extraction profile: which sections and list environment to read
// ABOUTME: Ships resume-template defaults, loadable from YAML

package extract

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile selects the section names and list environment the extractors read
type Profile struct {
	SkillSections      []string `yaml:"skill_sections"`
	ExperienceSections []string `yaml:"experience_sections"`
	SkillListEnv       string   `yaml:"skill_list_env"`
}

// DefaultProfile returns the section synonyms most resume templates use
func DefaultProfile() Profile {
	return Profile{
		SkillSections:      []string{"Skills", "Technical Skills", "Core Competencies"},
		ExperienceSections: []string{"Experience", "Work Experience", "Professional Experience"},
		SkillListEnv:       "itemize",
	}
}

// LoadProfile reads a Profile from a YAML file. Fields absent from the file
// keep their default values.
func LoadProfile(path string) (Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("extract: read profile %s: %w", path, err)
	}

	p := DefaultProfile()
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("extract: parse profile %s: %w", path, err)
	}
	return p, nil
}
