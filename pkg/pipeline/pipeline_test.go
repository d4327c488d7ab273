package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/arena/pkg/bom"
	"github.com/matzehuels/arena/pkg/cache"
	"github.com/matzehuels/arena/pkg/court"
	"github.com/matzehuels/arena/pkg/edit"
	"github.com/matzehuels/arena/pkg/errors"
	"github.com/matzehuels/arena/pkg/io"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateView(t *testing.T) {
	tests := []struct {
		view    string
		wantErr bool
	}{
		{"plan", false},
		{"elevation", false},
		{"side", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateView(tt.view)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateView(%q) error = %v, wantErr %v", tt.view, err, tt.wantErr)
		}
	}
}

func TestOptionsValidateForCourt(t *testing.T) {
	// Missing dimensions
	opts := Options{Width: 10}
	if err := opts.ValidateForCourt(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Missing length should fail with INVALID_INPUT: %v", err)
	}

	// Standalone needs no dimensions
	opts = Options{Standalone: true}
	if err := opts.ValidateForCourt(); err != nil {
		t.Errorf("Standalone should pass: %v", err)
	}

	// Heights default
	opts = Options{Width: 10, Length: 15}
	if err := opts.ValidateForCourt(); err != nil {
		t.Fatalf("Valid options should pass: %v", err)
	}
	if opts.EndHeight != DefaultEndHeight || opts.SideHeight != DefaultSideHeight {
		t.Errorf("heights = %d/%d, want defaults", opts.EndHeight, opts.SideHeight)
	}

	// Unknown op
	opts = Options{Width: 10, Length: 15, Ops: []edit.Op{{Kind: "paint"}}}
	if err := opts.ValidateForCourt(); err == nil {
		t.Error("Unknown op should fail")
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Width: 10, Length: 15}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First call failed: %v", err)
	}
	first := opts

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second call failed: %v", err)
	}
	if opts.View != first.View || opts.Scale != first.Scale || len(opts.Formats) != len(first.Formats) {
		t.Error("ValidateAndSetDefaults should be idempotent")
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should default to [svg], got %v", opts.Formats)
	}
	if opts.View != DefaultView {
		t.Errorf("View should be %s, got %s", DefaultView, opts.View)
	}
	if opts.Scale != DefaultPNGScale {
		t.Errorf("Scale should be %v, got %v", DefaultPNGScale, opts.Scale)
	}
	if opts.Logger == nil {
		t.Error("Logger should be set")
	}
}

func TestCourtKeyOpts(t *testing.T) {
	a := Options{Width: 10, Length: 15, EndHeight: 3, SideHeight: 3}
	b := a
	b.Ops = []edit.Op{{Kind: edit.OpToggleGate, Wall: court.Side1, Index: 2}}

	if a.CourtKeyOpts().OpsHash != "" {
		t.Error("no ops should leave OpsHash empty")
	}
	if b.CourtKeyOpts().OpsHash == "" {
		t.Error("ops should set OpsHash")
	}

	// Dimensions are ignored for a standalone wall
	s1 := Options{Standalone: true, Width: 10}
	s2 := Options{Standalone: true}
	if s1.CourtKeyOpts() != s2.CourtKeyOpts() {
		t.Error("standalone key should ignore dimensions")
	}
}

func TestArtifactKeyOptsScaleOnlyForPNG(t *testing.T) {
	opts := Options{View: "plan", Scale: 3}
	if got := opts.ArtifactKeyOpts(FormatSVG).Scale; got != 0 {
		t.Errorf("svg key scale = %v, want 0", got)
	}
	if got := opts.ArtifactKeyOpts(FormatPNG).Scale; got != 3 {
		t.Errorf("png key scale = %v, want 3", got)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		opts Options
		want string
	}{
		{Options{Width: 10, Length: 15, EndHeight: 3, SideHeight: 2}, "10x15 end=3 side=2"},
		{Options{Standalone: true}, "standalone"},
		{Options{Court: court.GenerateStandalone()}, court.GenerateStandalone().String()},
	}
	for _, tt := range tests {
		if got := tt.opts.Describe(); got != tt.want {
			t.Errorf("Describe() = %q, want %q", got, tt.want)
		}
	}
}

func newFileRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewRunner(c, nil, nil)
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	r := newFileRunner(t)
	defer r.Close()

	opts := Options{
		Width: 10, Length: 15, EndHeight: 3, SideHeight: 3,
		Ops: []edit.Op{
			{Kind: edit.OpToggleGate, Wall: court.Side1, Index: 2},
			{Kind: edit.OpSetSectionHeight, Wall: court.End1, Index: 2, Height: 4},
		},
		Formats: []string{FormatSVG, FormatJSON},
	}

	res, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if want := []bool{true, false}; res.Applied[0] != want[0] || res.Applied[1] != want[1] {
		t.Errorf("Applied = %v, want %v", res.Applied, want)
	}
	if s, _ := res.Court.Section(court.Side1, 2); s.Kind() != court.KindGate {
		t.Errorf("side1[2] = %s, want gate", s)
	}
	if got := bom.Qty(res.BOM, bom.Gate(3)); got != 1 {
		t.Errorf("gate count = %d, want 1", got)
	}
	if !strings.Contains(string(res.Artifacts[FormatSVG]), "<svg") {
		t.Error("svg artifact missing")
	}
	decoded, err := io.Unmarshal(res.Artifacts[FormatJSON])
	if err != nil {
		t.Fatalf("json artifact: %v", err)
	}
	if CourtHash(decoded) != res.CourtHash {
		t.Error("json artifact does not match result court")
	}
	if res.CacheInfo.CourtHit || res.CacheInfo.BOMHit || res.CacheInfo.RenderHit {
		t.Errorf("first run should miss every stage: %+v", res.CacheInfo)
	}

	// Second run is served from cache
	again, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute (cached): %v", err)
	}
	if !again.CacheInfo.CourtHit || !again.CacheInfo.BOMHit || !again.CacheInfo.RenderHit {
		t.Errorf("second run should hit every stage: %+v", again.CacheInfo)
	}
	if again.CourtHash != res.CourtHash {
		t.Error("cached court differs")
	}
	if len(again.Applied) != 2 || again.Applied[1] {
		t.Errorf("cached Applied = %v", again.Applied)
	}

	// Refresh bypasses the court cache
	opts.Refresh = true
	fresh, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.CacheInfo.CourtHit {
		t.Error("refresh should regenerate the court")
	}
}

func TestExecuteScenarioA(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), Options{Width: 10, Length: 15, Formats: []string{FormatJSON}})
	if err != nil {
		t.Fatal(err)
	}
	if got := bom.Qty(res.BOM, bom.Post(3)); got != 24 {
		t.Errorf("Post 3m = %d, want 24", got)
	}
	if res.Stats.Sections != 28 {
		t.Errorf("Sections = %d, want 28", res.Stats.Sections)
	}
	if res.Stats.BOMTotal != bom.Total(res.BOM) {
		t.Error("BOMTotal mismatch")
	}
}

func TestExecuteValidationError(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), Options{Width: 4, Length: 15})
	if !errors.IsValidation(err) {
		t.Errorf("want validation error, got %v", err)
	}
}

func TestBuildCourtFromSuppliedCourt(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	c, applied, err := r.BuildCourt(context.Background(), Options{
		Court: court.GenerateStandalone(),
		Ops: []edit.Op{
			{Kind: edit.OpAppendSection, Side: court.SideRight, Width: 2, Height: 3},
			{Kind: edit.OpToggleGate, Wall: court.Side1, Index: 0},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !applied[0] || applied[1] {
		t.Errorf("applied = %v, want [true false]", applied)
	}
	if c.Width != 5 {
		t.Errorf("width = %v, want 5", c.Width)
	}
}

func TestBuildCourtRejectsInvalidSuppliedCourt(t *testing.T) {
	bad := court.GenerateStandalone()
	bad.Walls[court.End1] = court.Wall{court.Panel{W: 2, H: 2}}
	r := NewRunner(nil, nil, nil)
	_, _, err := r.BuildCourt(context.Background(), Options{Court: bad})
	if !errors.Is(err, errors.ErrCodeInvalidCourt) {
		t.Errorf("want INVALID_COURT, got %v", err)
	}
}

func TestRenderUnsupportedFormat(t *testing.T) {
	_, err := Render(context.Background(), court.GenerateStandalone(), Options{Formats: []string{"gif"}})
	if err == nil {
		t.Error("gif should be rejected")
	}
}
