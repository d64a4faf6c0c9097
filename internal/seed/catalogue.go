// Package seed moves the authored catalogue (curriculum plus static
// questions) in and out of a store. Catalogues are YAML on disk and JSON
// over HTTP; both use the same field names.
package seed

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const Version = "1.0"

type Catalogue struct {
	Version    string     `yaml:"version" json:"version"`
	ExportedAt string     `yaml:"exported_at,omitempty" json:"exported_at,omitempty"`
	Subjects   []Subject  `yaml:"subjects" json:"subjects"`
	Progress   []Progress `yaml:"progress,omitempty" json:"progress,omitempty"`
}

type Subject struct {
	Name  string `yaml:"name" json:"name"`
	Units []Unit `yaml:"units" json:"units"`
}

type Unit struct {
	Title   string   `yaml:"title" json:"title"`
	Lessons []Lesson `yaml:"lessons" json:"lessons"`
}

// Lesson.Key names the lesson inside the catalogue so progress entries
// can point at it. It defaults to the title.
type Lesson struct {
	Key       string     `yaml:"key,omitempty" json:"key,omitempty"`
	Title     string     `yaml:"title" json:"title"`
	Summary   string     `yaml:"summary,omitempty" json:"summary,omitempty"`
	Questions []Question `yaml:"questions,omitempty" json:"questions,omitempty"`
}

type Question struct {
	Type          string   `yaml:"type" json:"type"`
	Question      string   `yaml:"question" json:"question"`
	Options       []string `yaml:"options,omitempty" json:"options,omitempty"`
	CorrectAnswer string   `yaml:"correct_answer" json:"correct_answer"`
	Explanation   string   `yaml:"explanation,omitempty" json:"explanation,omitempty"`
	Difficulty    string   `yaml:"difficulty,omitempty" json:"difficulty,omitempty"`
	Points        int      `yaml:"points,omitempty" json:"points,omitempty"`
	Inactive      bool     `yaml:"inactive,omitempty" json:"inactive,omitempty"`
}

// Progress marks a catalogue lesson as completed by a user.
type Progress struct {
	UserID      string    `yaml:"user_id" json:"user_id"`
	Lesson      string    `yaml:"lesson" json:"lesson"` // lesson key
	CompletedAt time.Time `yaml:"completed_at,omitempty" json:"completed_at,omitempty"`
}

func (l Lesson) key() string {
	if l.Key != "" {
		return l.Key
	}
	return l.Title
}

// Load decodes a YAML catalogue. Unknown fields are rejected.
func Load(r io.Reader) (*Catalogue, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalogue
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}
	if c.Version == "" {
		c.Version = Version
	}
	return &c, nil
}

func LoadFile(path string) (*Catalogue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// WriteYAML encodes c as YAML.
func WriteYAML(w io.Writer, c *Catalogue) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
