// Package manifest handles protolink.toml configuration.
package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the configuration file.
const FileName = "protolink.toml"

// Manifest represents a protolink.toml configuration.
type Manifest struct {
	Project     Project     `toml:"project"`
	Log         Log         `toml:"log"`
	Binding     Binding     `toml:"binding"`
	Inheritance Inheritance `toml:"inheritance"`

	// Dir is the directory containing the protolink.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name string `toml:"name"`
}

// Log configures logging.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Binding configures the function binding demo.
type Binding struct {
	Message      string  `toml:"message"`
	WrongMessage string  `toml:"wrong-message"`
	Buttons      Buttons `toml:"buttons"`
}

// Buttons names the element IDs the binding demo registers listeners on.
type Buttons struct {
	UserDefined string `toml:"user-defined"`
	Native      string `toml:"native"`
	Unbound     string `toml:"unbound"`
}

// Inheritance configures the composition demo.
type Inheritance struct {
	Name   string   `toml:"name"`
	Age    int      `toml:"age"`
	Colors []string `toml:"colors"`
}

// Default returns the configuration used when no protolink.toml exists.
func Default() *Manifest {
	return &Manifest{
		Project: Project{Name: "protolink"},
		Binding: Binding{
			Message:      "Event handled",
			WrongMessage: "This isn't the right context!",
			Buttons: Buttons{
				UserDefined: "user-defined-bind-btn",
				Native:      "native-bind-btn",
				Unbound:     "no-bind-btn",
			},
		},
		Inheritance: Inheritance{
			Name:   "Charlie",
			Age:    22,
			Colors: []string{"red", "blue", "green"},
		},
	}
}

// Load parses a protolink.toml file from the given directory. Keys the
// file leaves out keep their defaults.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	m := Default()
	if err := toml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return m, nil
}

// FindAndLoad walks up from startDir to find a protolink.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// LoadOrDefault is FindAndLoad falling back to Default.
func LoadOrDefault(startDir string) (*Manifest, error) {
	m, err := FindAndLoad(startDir)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return Default(), nil
	}
	return m, nil
}

// Validate checks the values a demo cannot run without.
func (m *Manifest) Validate() error {
	b := m.Binding.Buttons
	switch {
	case b.UserDefined == "" || b.Native == "" || b.Unbound == "":
		return fmt.Errorf("binding.buttons: every button needs an id")
	case b.UserDefined == b.Native || b.UserDefined == b.Unbound || b.Native == b.Unbound:
		return fmt.Errorf("binding.buttons: ids must be distinct")
	case m.Inheritance.Age < 0:
		return fmt.Errorf("inheritance.age: %d is negative", m.Inheritance.Age)
	}
	return nil
}

// LogPath returns the log file path resolved against Dir, or nil to log
// to stderr.
func (m *Manifest) LogPath() *string {
	if m.Log.File == "" {
		return nil
	}
	path := m.Log.File
	if !filepath.IsAbs(path) && m.Dir != "" {
		path = filepath.Join(m.Dir, path)
	}
	return &path
}

// Write encodes m as protolink.toml in dir.
func Write(dir string, m *Manifest) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
