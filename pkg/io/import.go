package io

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/matzehuels/arena/pkg/court"
	"github.com/matzehuels/arena/pkg/errors"
)

// Decode converts a JSON document back into a court and validates it.
func (d CourtDoc) Decode() (*court.Court, error) {
	c := &court.Court{
		Width:      d.Width,
		Length:     d.Length,
		Corner:     d.CornerType,
		EndHeight:  d.EndHeight,
		SideHeight: d.SideHeight,
		Standalone: d.Standalone,
		Walls:      make(map[court.WallID]court.Wall, len(d.Walls)),
	}
	if c.Corner == "" {
		c.Corner = court.CornerNone
	}
	for id, secs := range d.Walls {
		if _, err := court.ParseWallID(string(id)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "walls")
		}
		w := make(court.Wall, len(secs))
		for i, sd := range secs {
			s, err := sd.decode()
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "%s[%d]", id, i)
			}
			w[i] = s
		}
		c.Walls[id] = w
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (d SectionDoc) decode() (court.Section, error) {
	var s court.Section
	switch d.Type {
	case court.KindPanel:
		w := int(d.Width)
		if float64(w) != d.Width {
			return nil, fmt.Errorf("panel width %g is not whole", d.Width)
		}
		p := court.Panel{W: w, H: d.Height}
		if d.Arch != nil {
			a := *d.Arch
			p.Arch = &a
		}
		return p, nil
	case court.KindGoal:
		s = court.Goal{}
	case court.KindCurvedCorner:
		s = court.CurvedCorner{H: d.Height}
	case court.KindMiniGoal:
		s = court.MiniGoal{Prev: d.PrevHeight}
	case court.KindGate:
		s = court.Gate{H: d.Height}
	case court.KindChicane:
		s = court.Chicane{H: d.Height}
	default:
		return nil, fmt.Errorf("unknown section type %q", d.Type)
	}
	if d.Arch != nil {
		return nil, fmt.Errorf("%s cannot carry an arch", d.Type)
	}
	// Fixed-size sections may omit their width; a wrong one is an error.
	if d.Width != 0 && math.Abs(d.Width-s.Width()) > 1e-9 {
		return nil, fmt.Errorf("%s width %g, want %g", d.Type, d.Width, s.Width())
	}
	return s, nil
}

// Unmarshal decodes a court from JSON produced by [Marshal] or [WriteJSON].
func Unmarshal(data []byte) (*court.Court, error) {
	var doc CourtDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode court")
	}
	return doc.Decode()
}

// ReadJSON decodes a court from r and validates its structure.
//
// ReadJSON returns an INVALID_FORMAT error for malformed JSON or unknown
// section types, and an INVALID_COURT error when the decoded court breaks a
// structural rule (see court.Court.Validate). ReadJSON does not close r.
func ReadJSON(r io.Reader) (*court.Court, error) {
	var doc CourtDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode court")
	}
	return doc.Decode()
}

// ImportJSON reads and validates a court from the JSON file at path.
func ImportJSON(path string) (*court.Court, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
