package pipeline

import (
	"testing"

	"github.com/provenlabs/origintrace/pkg/routing"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"dot", false},
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

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"smooth", false},
		{"tight", false},
		{"invalid", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateStyle(tt.style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
	}
}

func TestOptionsValidateForLoad(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateForLoad(); err == nil {
		t.Error("Missing input should fail")
	}

	opts = Options{Input: "diagram.json"}
	if err := opts.ValidateForLoad(); err != nil {
		t.Errorf("Valid options should pass: %v", err)
	}
	if opts.Logger == nil {
		t.Error("Logger default should be set")
	}
}

func TestSetRouteDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRouteDefaults()

	if opts.Clearance != routing.DefaultClearance {
		t.Errorf("Clearance should be %f, got %f", routing.DefaultClearance, opts.Clearance)
	}
	if opts.OffsetStep != routing.DefaultOffsetStep {
		t.Errorf("OffsetStep should be %f, got %f", routing.DefaultOffsetStep, opts.OffsetStep)
	}
	if opts.ParallelThreshold != routing.DefaultParallelThreshold {
		t.Errorf("ParallelThreshold should be %f, got %f", routing.DefaultParallelThreshold, opts.ParallelThreshold)
	}
	if opts.Style != DefaultStyle {
		t.Errorf("Style should be %s, got %s", DefaultStyle, opts.Style)
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Input: "diagram.json"}

	// First call
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}

	originalClearance := opts.Clearance
	originalStyle := opts.Style
	originalFormats := len(opts.Formats)

	// Second call should be idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}

	if opts.Clearance != originalClearance {
		t.Error("Clearance changed on second call")
	}
	if opts.Style != originalStyle {
		t.Error("Style changed on second call")
	}
	if len(opts.Formats) != originalFormats {
		t.Error("Formats changed on second call")
	}
}

func TestOptionsValidateAndSetDefaultsRejectsBadStyle(t *testing.T) {
	opts := Options{Input: "diagram.json", Style: "wavy"}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("Invalid style should fail")
	}
}

func TestOptionsValidateAndSetDefaultsRejectsBadFormat(t *testing.T) {
	opts := Options{Input: "diagram.json", Formats: []string{"pdf"}}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("Unsupported format should fail")
	}
}

func TestOptionsRouteConfig(t *testing.T) {
	opts := Options{Clearance: 60, Style: routing.StyleTight}
	cfg := opts.RouteConfig()

	if cfg.Clearance != 60 {
		t.Errorf("Clearance = %f, want 60", cfg.Clearance)
	}
	if cfg.OffsetStep != routing.DefaultOffsetStep {
		t.Errorf("OffsetStep should default to %f, got %f", routing.DefaultOffsetStep, cfg.OffsetStep)
	}
	if cfg.Style != routing.StyleTight {
		t.Errorf("Style = %q, want %q", cfg.Style, routing.StyleTight)
	}
}

func TestOptionsRouteKeyOpts(t *testing.T) {
	opts := Options{Input: "d.json"}
	opts.SetRouteDefaults()

	a := opts.RouteKeyOpts()
	b := opts.RouteKeyOpts()
	if a != b {
		t.Error("RouteKeyOpts should be stable for identical options")
	}

	opts.Style = routing.StyleTight
	if a == opts.RouteKeyOpts() {
		t.Error("RouteKeyOpts should change when style changes")
	}
}

func TestOptionsArtifactKeyOpts(t *testing.T) {
	opts := Options{ShowNodes: true, Style: routing.StyleSmooth}

	svg := opts.ArtifactKeyOpts("svg")
	png := opts.ArtifactKeyOpts("png")
	if svg == png {
		t.Error("ArtifactKeyOpts should differ per format")
	}
	if !svg.ShowNodes {
		t.Error("ArtifactKeyOpts should carry ShowNodes")
	}
}
