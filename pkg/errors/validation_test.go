package errors

import "testing"

func TestValidateWidth(t *testing.T) {
	tests := []struct {
		width   int
		wantErr bool
	}{
		{3, true},
		{4, true},
		{5, false},
		{6, false},
		{7, false},
		{10, false},
		{0, true},
		{-6, true},
		{99, false},
		{100, false},
		{101, true},
		{2000000001, true},
	}

	for _, tt := range tests {
		err := ValidateWidth(tt.width)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateWidth(%d) error = %v, wantErr %v", tt.width, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidDimension) {
			t.Errorf("ValidateWidth(%d) returned wrong error code: %v", tt.width, err)
		}
	}
}

func TestValidateWidthMessage(t *testing.T) {
	err := ValidateWidth(4)
	want := "width 4m below minimum 6m for even width"
	if got := UserMessage(err); got != want {
		t.Errorf("UserMessage() = %q, want %q", got, want)
	}
}

func TestValidateWidthMaximumMessage(t *testing.T) {
	err := ValidateWidth(101)
	want := "width 101m above maximum 100m"
	if got := UserMessage(err); got != want {
		t.Errorf("UserMessage() = %q, want %q", got, want)
	}
}

func TestValidateLength(t *testing.T) {
	for _, l := range []int{5, 6, 80, MaxLength} {
		if err := ValidateLength(l); err != nil {
			t.Errorf("ValidateLength(%d) = %v, want nil", l, err)
		}
	}
	for _, l := range []int{4, 0, -1, MaxLength + 1, 2000000001} {
		if err := ValidateLength(l); !Is(err, ErrCodeInvalidDimension) {
			t.Errorf("ValidateLength(%d) = %v, want %s", l, err, ErrCodeInvalidDimension)
		}
	}
}

func TestValidateHeight(t *testing.T) {
	for h := MinHeight; h <= MaxHeight; h++ {
		if err := ValidateHeight("height", h); err != nil {
			t.Errorf("ValidateHeight(%d) = %v, want nil", h, err)
		}
	}
	for _, h := range []int{0, 5, -1} {
		if err := ValidateHeight("height", h); !Is(err, ErrCodeInvalidHeight) {
			t.Errorf("ValidateHeight(%d) = %v, want %s", h, err, ErrCodeInvalidHeight)
		}
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "court.json", false},
		{"valid nested", "out/plans/court.svg", false},
		{"valid absolute", "/tmp/bom.xlsx", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"leading space", " court.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidDimension,
		ErrCodeInvalidHeight,
		ErrCodeInvalidMutation,
		ErrCodeInvalidCourt,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPath,
		ErrCodeNotFound,
		ErrCodeFileNotFound,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
