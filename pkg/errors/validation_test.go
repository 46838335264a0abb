package errors

import "testing"

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"", true},
		{"SVG", true},
		{"jpeg", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("ValidateFormat(%q) code = %v", tt.input, GetCode(err))
			}
		})
	}
}

func TestValidateQuality(t *testing.T) {
	for _, q := range []int{0, 1, 75, 100} {
		if err := ValidateQuality(q); err != nil {
			t.Errorf("ValidateQuality(%d) = %v, want nil", q, err)
		}
	}
	for _, q := range []int{-1, 101, 1000} {
		if err := ValidateQuality(q); !Is(err, ErrCodeInvalidQuality) {
			t.Errorf("ValidateQuality(%d) = %v, want %s", q, err, ErrCodeInvalidQuality)
		}
	}
}

func TestValidateDPI(t *testing.T) {
	tests := []struct {
		name    string
		dpi     float64
		wantErr bool
	}{
		{"screen", 96, false},
		{"print", 300, false},
		{"max", 1200, false},
		{"fractional", 0.5, false},
		{"zero", 0, true},
		{"negative", -72, true},
		{"huge", 4800, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDPI(tt.dpi)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDPI(%v) error = %v, wantErr %v", tt.dpi, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"transparent", "transparent", false},
		{"transparent upper", "Transparent", false},
		{"rgb", "#ffffff", false},
		{"rgba", "#1e1e1e80", false},
		{"no hash", "a0b1c2", false},
		{"short form", "#fff", true},
		{"bad digit", "#gg0000", true},
		{"name", "red", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidColor) {
				t.Errorf("ValidateColor(%q) code = %v", tt.input, GetCode(err))
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"png", "out/diagram.png", false},
		{"svg upper ext", "diagram.SVG", false},
		{"no extension", "diagram", false},
		{"empty", "", true},
		{"directory", "out/", true},
		{"control char", "dia\x00gram.png", true},
		{"unknown extension", "diagram.jpg", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
