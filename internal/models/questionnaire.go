package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Field describes one input on a questionnaire step.
type Field struct {
	Key         string   `yaml:"key" json:"key"`
	Label       string   `yaml:"label" json:"label"`
	Type        string   `yaml:"type" json:"type"` // number, select, checkbox, textarea
	Required    bool     `yaml:"required" json:"required"`
	Options     []Option `yaml:"options" json:"options,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
}

// Option struct for select choices
type Option struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Step is one page of the multi-step intake form.
type Step struct {
	ID     string  `yaml:"id" json:"id"`
	Title  string  `yaml:"title" json:"title"`
	Fields []Field `yaml:"fields" json:"fields"`
}

// Questionnaire holds the ordered intake steps.
type Questionnaire struct {
	Steps []Step `yaml:"steps" json:"steps"`
}

// LoadQuestionnaire reads and parses the questionnaire definition file.
func LoadQuestionnaire(path string) (*Questionnaire, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read questionnaire file: %w", err)
	}

	var q Questionnaire
	if err := yaml.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questionnaire YAML: %w", err)
	}
	if len(q.Steps) == 0 {
		return nil, fmt.Errorf("questionnaire %q defines no steps", path)
	}

	return &q, nil
}
