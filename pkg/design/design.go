package design

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/arena/pkg/court"
	"github.com/matzehuels/arena/pkg/edit"
	"github.com/matzehuels/arena/pkg/errors"
)

// Format is a design file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Design is a declarative court: the generator inputs plus an ordered list
// of edits applied on top of the generated layout.
type Design struct {
	Name       string    `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Width      int       `yaml:"width,omitempty" toml:"width,omitempty" json:"width,omitempty"`
	Length     int       `yaml:"length,omitempty" toml:"length,omitempty" json:"length,omitempty"`
	EndHeight  int       `yaml:"end_height,omitempty" toml:"end_height,omitempty" json:"end_height,omitempty"`
	SideHeight int       `yaml:"side_height,omitempty" toml:"side_height,omitempty" json:"side_height,omitempty"`
	Standalone bool      `yaml:"standalone,omitempty" toml:"standalone,omitempty" json:"standalone,omitempty"`
	Ops        []edit.Op `yaml:"ops,omitempty" toml:"ops,omitempty" json:"ops,omitempty"`
}

// Rejection records an op that did not take effect.
type Rejection struct {
	Index  int
	Op     edit.Op
	Reason string
}

// Result is a built design.
type Result struct {
	Court    *court.Court
	Applied  []bool
	Rejected []Rejection
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unsupported design file %q (want .yaml, .yml or .toml)", filepath.Base(path))
}

// Load reads a design from a YAML or TOML file.
func Load(path string) (*Design, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read design %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read design %s: %w", path, err)
	}
	return Parse(data, format)
}

// Parse decodes a design and checks its ops.
func Parse(data []byte, format Format) (*Design, error) {
	var d Design
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse design YAML")
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &d); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse design TOML")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown design format %q", format)
	}
	for i, op := range d.Ops {
		if _, err := edit.ParseOpKind(string(op.Kind)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "ops[%d]", i)
		}
	}
	return &d, nil
}

// Encode writes d in the given format.
func (d *Design) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(d)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(d); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unknown design format %q", format)
}

// Save writes d to path, choosing the format from the extension.
func (d *Design) Save(path string) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := d.Encode(format)
	if err != nil {
		return fmt.Errorf("encode design: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write design %s: %w", path, err)
	}
	return nil
}

// Base generates the court described by the design's dimensions, before any
// ops are applied.
func (d *Design) Base() (*court.Court, error) {
	if d.Standalone {
		return court.GenerateStandalone(), nil
	}
	return court.Generate(d.Width, d.Length, d.EndHeight, d.SideHeight)
}

// Build generates the base court and applies the ops in order. Rejected ops
// leave the court unchanged and are listed in Result.Rejected with the reason.
func (d *Design) Build() (*Result, error) {
	c, err := d.Base()
	if err != nil {
		return nil, err
	}
	res := &Result{Applied: make([]bool, len(d.Ops))}
	for i, op := range d.Ops {
		reason := op.Check(c)
		next, ok := op.Apply(c)
		res.Applied[i] = ok
		if !ok {
			r := Rejection{Index: i, Op: op, Reason: "rejected"}
			if reason != nil {
				r.Reason = errors.UserMessage(reason)
			}
			res.Rejected = append(res.Rejected, r)
			continue
		}
		c = next
	}
	res.Court = c
	return res, nil
}
