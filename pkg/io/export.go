package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/arena/pkg/court"
)

// CourtDoc is the JSON form of a court.
type CourtDoc struct {
	Width      float64                        `json:"width"`
	Length     float64                        `json:"length"`
	CornerType court.CornerType               `json:"corner_type"`
	EndHeight  int                            `json:"end_height"`
	SideHeight int                            `json:"side_height"`
	Standalone bool                           `json:"standalone,omitempty"`
	Walls      map[court.WallID][]SectionDoc  `json:"walls"`
}

// SectionDoc is the JSON form of one section. Width and height are always
// written so that consumers need no knowledge of fixed section sizes.
type SectionDoc struct {
	Type       court.Kind      `json:"type"`
	Width      float64         `json:"width"`
	Height     int             `json:"height"`
	Arch       *court.ArchInfo `json:"arch,omitempty"`
	PrevHeight int             `json:"prev_height,omitempty"`
}

// Encode converts a court to its JSON document form.
func Encode(c *court.Court) CourtDoc {
	doc := CourtDoc{
		Width:      c.Width,
		Length:     c.Length,
		CornerType: c.Corner,
		EndHeight:  c.EndHeight,
		SideHeight: c.SideHeight,
		Standalone: c.Standalone,
		Walls:      make(map[court.WallID][]SectionDoc, len(c.Walls)),
	}
	for _, id := range c.WallIDs() {
		w := c.Sections(id)
		secs := make([]SectionDoc, len(w))
		for i, s := range w {
			secs[i] = encodeSection(s)
		}
		doc.Walls[id] = secs
	}
	return doc
}

func encodeSection(s court.Section) SectionDoc {
	d := SectionDoc{Type: s.Kind(), Width: s.Width(), Height: s.Height()}
	switch v := s.(type) {
	case court.Panel:
		if v.Arch != nil {
			a := *v.Arch
			d.Arch = &a
		}
	case court.MiniGoal:
		d.PrevHeight = v.Prev
	}
	return d
}

// Marshal encodes c as compact JSON.
func Marshal(c *court.Court) ([]byte, error) {
	return json.Marshal(Encode(c))
}

// WriteJSON encodes c as indented JSON and writes it to w.
// The output can be read back with [ReadJSON].
func WriteJSON(c *court.Court, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Encode(c)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes c to a JSON file at path.
func ExportJSON(c *court.Court, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(c, f)
}
