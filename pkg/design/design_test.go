package design

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/arena/pkg/court"
	"github.com/matzehuels/arena/pkg/edit"
	"github.com/matzehuels/arena/pkg/errors"
)

const clubYAML = `
name: club court
width: 10
length: 15
end_height: 3
side_height: 3
ops:
  - op: toggle_gate
    wall: side1
    index: 2
  - op: set_section_height
    wall: end1
    index: 2
    height: 4
  - op: set_section_height
    wall: end1
    index: 1
    height: 4
`

const clubTOML = `
name = "club court"
width = 10
length = 15
end_height = 3
side_height = 3

[[ops]]
op = "toggle_gate"
wall = "side1"
index = 2

[[ops]]
op = "set_section_height"
wall = "end1"
index = 2
height = 4

[[ops]]
op = "set_section_height"
wall = "end1"
index = 1
height = 4
`

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"yaml", clubYAML, FormatYAML},
		{"toml", clubTOML, FormatTOML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.Equal(t, "club court", d.Name)
			assert.Equal(t, 10, d.Width)
			assert.Equal(t, 15, d.Length)
			require.Len(t, d.Ops, 3)
			assert.Equal(t, edit.Op{Kind: edit.OpToggleGate, Wall: court.Side1, Index: 2}, d.Ops[0])
			assert.Equal(t, 4, d.Ops[2].Height)
		})
	}
}

func TestBuild(t *testing.T) {
	d, err := Parse([]byte(clubYAML), FormatYAML)
	require.NoError(t, err)

	res, err := d.Build()
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, res.Applied)

	require.Len(t, res.Rejected, 1)
	assert.Equal(t, 1, res.Rejected[0].Index)
	assert.Contains(t, res.Rejected[0].Reason, "next to a goal")

	s, ok := res.Court.Section(court.Side1, 2)
	require.True(t, ok)
	assert.Equal(t, court.KindGate, s.Kind())

	s, _ = res.Court.Section(court.End1, 1)
	assert.Equal(t, 4, s.Height())
	s, _ = res.Court.Section(court.End1, 2)
	assert.Equal(t, 3, s.Height())
	assert.NoError(t, res.Court.Validate())
}

func TestBuildMatchesApplyAll(t *testing.T) {
	d, err := Parse([]byte(clubTOML), FormatTOML)
	require.NoError(t, err)
	res, err := d.Build()
	require.NoError(t, err)

	base, err := d.Base()
	require.NoError(t, err)
	want, applied := edit.ApplyAll(base, d.Ops)
	assert.Equal(t, applied, res.Applied)
	assert.Equal(t, want.Walls, res.Court.Walls)
}

func TestBuildStandalone(t *testing.T) {
	d := &Design{
		Standalone: true,
		Ops: []edit.Op{
			{Kind: edit.OpAppendSection, Side: court.SideLeft, Width: 2, Height: 3},
			{Kind: edit.OpAppendCurvedCorner, Side: court.SideLeft, Height: 3},
		},
	}
	res, err := d.Build()
	require.NoError(t, err)
	assert.Empty(t, res.Rejected)
	assert.True(t, res.Court.Standalone)
	assert.Equal(t, 5.5, res.Court.Width)
}

func TestBuildInvalidDimensions(t *testing.T) {
	d := &Design{Width: 4, Length: 10, EndHeight: 3, SideHeight: 3}
	_, err := d.Build()
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		code   errors.Code
	}{
		{"bad yaml", "width: [", FormatYAML, errors.ErrCodeInvalidFormat},
		{"bad toml", "width = ", FormatTOML, errors.ErrCodeInvalidFormat},
		{"unknown op", "ops:\n  - op: paint\n", FormatYAML, errors.ErrCodeInvalidFormat},
		{"unknown format", "", Format("ini"), errors.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"court.yaml", FormatYAML, true},
		{"court.YML", FormatYAML, true},
		{"dir/court.toml", FormatTOML, true},
		{"court.json", "", false},
		{"court", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	orig, err := Parse([]byte(clubYAML), FormatYAML)
	require.NoError(t, err)

	for _, name := range []string{"club.yaml", "club.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, orig.Save(path))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, orig, got)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeFileNotFound, errors.GetCode(err))
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "court.ini")
	require.NoError(t, os.WriteFile(path, []byte("width=10"), 0o644))
	_, err := Load(path)
	assert.Equal(t, errors.ErrCodeUnsupported, errors.GetCode(err))
}
