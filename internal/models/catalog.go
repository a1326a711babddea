package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Doctor is a bookable clinician in the appointment scheduler.
type Doctor struct {
	ID            string  `yaml:"id" json:"id"`
	Name          string  `yaml:"name" json:"name"`
	Specialty     string  `yaml:"specialty" json:"specialty"`
	Rating        float64 `yaml:"rating" json:"rating"`
	NextAvailable string  `yaml:"next_available" json:"nextAvailable"`
}

// Article is a readable educational resource.
type Article struct {
	ID       string `yaml:"id" json:"id"`
	Title    string `yaml:"title" json:"title"`
	Category string `yaml:"category" json:"category"`
	ReadTime string `yaml:"read_time" json:"readTime"`
	Summary  string `yaml:"summary" json:"summary"`
}

// Video is a watchable educational resource.
type Video struct {
	ID       string `yaml:"id" json:"id"`
	Title    string `yaml:"title" json:"title"`
	Category string `yaml:"category" json:"category"`
	Duration string `yaml:"duration" json:"duration"`
}

// Tool is an interactive educational resource.
type Tool struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Category    string `yaml:"category" json:"category"`
	Description string `yaml:"description" json:"description"`
}

// Catalog bundles the static sample data the auxiliary features serve:
// the doctor roster, appointment slots and the educational library.
type Catalog struct {
	TimeSlots []string  `yaml:"time_slots"`
	DoctorSet []Doctor  `yaml:"doctors"`
	Articles  []Article `yaml:"articles"`
	Videos    []Video   `yaml:"videos"`
	Tools     []Tool    `yaml:"tools"`
}

// DoctorByID returns the doctor with the given id, if present.
func (c *Catalog) DoctorByID(id string) (Doctor, bool) {
	for _, d := range c.DoctorSet {
		if d.ID == id {
			return d, true
		}
	}
	return Doctor{}, false
}

// HasTimeSlot reports whether the slot is one of the offered times.
func (c *Catalog) HasTimeSlot(slot string) bool {
	for _, s := range c.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// LoadCatalog reads and parses the static catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog YAML: %w", err)
	}

	return &c, nil
}
