package errors

import (
	"strings"
	"unicode"
)

// Dimensional bounds shared by the generator, the CLI and the HTTP API.
// They live here rather than in package court so that input validation can
// happen before any court code runs.
const (
	MinHeight = 1
	MaxHeight = 4

	MinWidthEven = 6
	MinWidthOdd  = 5
	MinLength    = 5

	MaxWidth  = 100
	MaxLength = 100

	// Courts beyond these sizes are unusual and worth a second look, but
	// still generated.
	LargeWidth  = 30
	LargeLength = 50
)

// ValidateWidth checks a court width in whole meters.
// Even widths get curved corners and need room for two 0.5m corners,
// so their minimum is one meter larger than for odd widths.
func ValidateWidth(width int) error {
	minWidth := MinWidthOdd
	parity := "odd"
	if width%2 == 0 {
		minWidth = MinWidthEven
		parity = "even"
	}
	if width < minWidth {
		return New(ErrCodeInvalidDimension, "width %dm below minimum %dm for %s width", width, minWidth, parity)
	}
	if width > MaxWidth {
		return New(ErrCodeInvalidDimension, "width %dm above maximum %dm", width, MaxWidth)
	}
	return nil
}

// ValidateLength checks a court length in whole meters.
func ValidateLength(length int) error {
	if length < MinLength {
		return New(ErrCodeInvalidDimension, "length %dm below minimum %dm", length, MinLength)
	}
	if length > MaxLength {
		return New(ErrCodeInvalidDimension, "length %dm above maximum %dm", length, MaxLength)
	}
	return nil
}

// ValidateHeight checks a wall or section height against the 1–4m range.
// The name is used in the message (e.g. "end wall height").
func ValidateHeight(name string, h int) error {
	if h < MinHeight || h > MaxHeight {
		return New(ErrCodeInvalidHeight, "%s %dm outside %d-%dm", name, h, MinHeight, MaxHeight)
	}
	return nil
}

// ValidatePath validates an output or input file path given on the command
// line or in a design file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidPath, "path has leading or trailing whitespace")
	}

	return nil
}
