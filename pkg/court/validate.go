package court

import (
	"math"

	"github.com/matzehuels/arena/pkg/errors"
)

const widthEpsilon = 1e-9

// Validate checks the structural invariants of c. It is used when a court
// arrives from outside the generator (a file, an HTTP request). Courts built
// by Generate and transformed by package edit always pass.
//
// Height caps next to a goal are not checked: a width-1 panel touching the
// goal keeps the tiled wall height by construction.
func (c *Court) Validate() error {
	if c == nil {
		return errors.New(errors.ErrCodeInvalidCourt, "court is nil")
	}
	if c.Standalone {
		return c.validateStandalone()
	}
	return c.validateFull()
}

func (c *Court) validateStandalone() error {
	if len(c.Walls) != 1 {
		return errors.New(errors.ErrCodeInvalidCourt, "standalone end wall must have exactly one wall, got %d", len(c.Walls))
	}
	w, ok := c.Walls[End1]
	if !ok {
		return errors.New(errors.ErrCodeInvalidCourt, "standalone end wall must be %s", End1)
	}
	if err := validateSections(End1, w, true); err != nil {
		return err
	}
	if err := validateEnds(End1, w); err != nil {
		return err
	}
	if math.Abs(w.Span()-c.Width) > widthEpsilon {
		return errors.New(errors.ErrCodeInvalidCourt, "width %g does not match section sum %g", c.Width, w.Span())
	}
	return nil
}

func (c *Court) validateFull() error {
	switch c.Corner {
	case CornerCurved, CornerRightAngle:
	default:
		return errors.New(errors.ErrCodeInvalidCourt, "corner type %q invalid for a full court", c.Corner)
	}
	for _, id := range allWalls {
		w, ok := c.Walls[id]
		if !ok {
			return errors.New(errors.ErrCodeInvalidCourt, "missing wall %s", id)
		}
		if err := validateSections(id, w, c.Corner == CornerCurved); err != nil {
			return err
		}
		if id.IsEnd() {
			if err := validateEnds(id, w); err != nil {
				return err
			}
			if c.Corner == CornerCurved {
				if err := validateCorners(id, w); err != nil {
					return err
				}
			}
			if math.Abs(w.Span()-c.Width) > widthEpsilon {
				return errors.New(errors.ErrCodeInvalidCourt, "%s spans %gm, court width is %gm", id, w.Span(), c.Width)
			}
			continue
		}
		// Tiling rounds the side run down to whole meters.
		avail := c.Length - c.Corner.Allowance()
		if span := w.Span(); span > avail+widthEpsilon || avail-span >= 1 {
			return errors.New(errors.ErrCodeInvalidCourt, "%s spans %gm, expected %gm", id, span, avail)
		}
	}
	if len(c.Walls) != len(allWalls) {
		return errors.New(errors.ErrCodeInvalidCourt, "unexpected walls in court")
	}
	return nil
}

// validateSections checks per-section ranges and placement.
func validateSections(id WallID, w Wall, cornersAllowed bool) error {
	for i, s := range w {
		switch v := s.(type) {
		case Panel:
			if v.W != 1 && v.W != 2 {
				return errors.New(errors.ErrCodeInvalidCourt, "%s[%d]: panel width %d not 1 or 2", id, i, v.W)
			}
			if err := checkHeight(id, i, v.H); err != nil {
				return err
			}
			if v.Arch != nil {
				if err := validateArch(id, w, i, v); err != nil {
					return err
				}
			}
		case Goal:
			if !id.IsEnd() {
				return errors.New(errors.ErrCodeInvalidCourt, "%s[%d]: goal on a side wall", id, i)
			}
		case CurvedCorner:
			if !cornersAllowed {
				return errors.New(errors.ErrCodeInvalidCourt, "%s[%d]: curved corner on a court without curved corners", id, i)
			}
			if !id.IsEnd() {
				return errors.New(errors.ErrCodeInvalidCourt, "%s[%d]: curved corner on a side wall", id, i)
			}
			if i != 0 && i != len(w)-1 {
				return errors.New(errors.ErrCodeInvalidCourt, "%s[%d]: curved corner not at a wall end", id, i)
			}
			if err := checkHeight(id, i, v.H); err != nil {
				return err
			}
		case MiniGoal:
		case Gate:
			if err := checkHeight(id, i, v.H); err != nil {
				return err
			}
		case Chicane:
			if err := checkHeight(id, i, v.H); err != nil {
				return err
			}
		default:
			return errors.New(errors.ErrCodeInvalidCourt, "%s[%d]: unknown section", id, i)
		}
	}
	return nil
}

// validateCorners checks that a curved court's end wall starts and ends
// with a curved corner.
func validateCorners(id WallID, w Wall) error {
	if len(w) < 2 {
		return errors.New(errors.ErrCodeInvalidCourt, "%s needs a curved corner at each end", id)
	}
	for _, i := range []int{0, len(w) - 1} {
		if _, ok := w[i].(CurvedCorner); !ok {
			return errors.New(errors.ErrCodeInvalidCourt, "%s[%d]: curved court wall must end with a curved corner", id, i)
		}
	}
	return nil
}

// validateEnds checks that an end wall holds exactly one goal.
func validateEnds(id WallID, w Wall) error {
	goals := 0
	for _, s := range w {
		if IsGoal(s) {
			goals++
		}
	}
	if goals != 1 {
		return errors.New(errors.ErrCodeInvalidCourt, "%s has %d goals, want 1", id, goals)
	}
	return nil
}

func validateArch(id WallID, w Wall, i int, p Panel) error {
	if p.W != 2 {
		return errors.New(errors.ErrCodeInvalidCourt, "%s[%d]: arch on a width-%d panel", id, i, p.W)
	}
	var goalAt int
	switch p.Arch.GoalSide {
	case SideRight:
		goalAt = i + 1
	case SideLeft:
		goalAt = i - 1
	default:
		return errors.New(errors.ErrCodeInvalidCourt, "%s[%d]: arch goal side %q invalid", id, i, p.Arch.GoalSide)
	}
	if goalAt < 0 || goalAt >= len(w) || !IsGoal(w[goalAt]) {
		return errors.New(errors.ErrCodeInvalidCourt, "%s[%d]: arch does not face a goal", id, i)
	}
	return nil
}

func checkHeight(id WallID, i, h int) error {
	if h < MinHeight || h > MaxHeight {
		return errors.New(errors.ErrCodeInvalidCourt, "%s[%d]: height %d outside %d-%d", id, i, h, MinHeight, MaxHeight)
	}
	return nil
}
