package document

import "testing"

func TestLookupCoercion(t *testing.T) {
	bindings := FieldBindings{
		"name":    "Acme Corp",
		"empty":   "",
		"rate":    float64(150), // JSON numbers arrive as float64
		"hours":   12.5,
		"count":   3,
		"enabled": true,
		"nothing": nil,
	}

	tests := []struct {
		key   string
		want  string
		bound bool
	}{
		{"name", "Acme Corp", true},
		{"empty", "", true}, // explicitly bound empty string counts as bound
		{"rate", "150", true},
		{"hours", "12.5", true},
		{"count", "3", true},
		{"enabled", "true", true},
		{"nothing", "", false},
		{"missing", "", false},
	}
	for _, tt := range tests {
		got, bound := bindings.Lookup(tt.key)
		if got != tt.want || bound != tt.bound {
			t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.key, got, bound, tt.want, tt.bound)
		}
	}

	if _, bound := FieldBindings(nil).Lookup("anything"); bound {
		t.Error("nil bindings should resolve nothing")
	}
}

func TestBrandingEnabled(t *testing.T) {
	tests := []struct {
		name     string
		bindings FieldBindings
		want     bool
	}{
		{"absent key", FieldBindings{}, true},
		{"nil map", nil, true},
		{"bool true", FieldBindings{KeyIncludeBranding: true}, true},
		{"bool false", FieldBindings{KeyIncludeBranding: false}, false},
		{"string false", FieldBindings{KeyIncludeBranding: "false"}, false},
		{"string true", FieldBindings{KeyIncludeBranding: "true"}, true},
		{"other string", FieldBindings{KeyIncludeBranding: "yes"}, true},
		{"unexpected type", FieldBindings{KeyIncludeBranding: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bindings.BrandingEnabled(); got != tt.want {
				t.Errorf("BrandingEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogoChrome(t *testing.T) {
	if got := (FieldBindings{KeyLogoAlignment: "center"}).LogoAlignment(); got != "center" {
		t.Errorf("alignment = %q", got)
	}
	if got := (FieldBindings{KeyLogoAlignment: "diagonal"}).LogoAlignment(); got != "left" {
		t.Errorf("unknown alignment should default to left, got %q", got)
	}
	if got := (FieldBindings{}).LogoHeight(); got != 48 {
		t.Errorf("default logo height = %d", got)
	}
	if got := (FieldBindings{KeyLogoSize: float64(64)}).LogoHeight(); got != 64 {
		t.Errorf("numeric logo size = %d", got)
	}
	if got := (FieldBindings{KeyLogoSize: "-3"}).LogoHeight(); got != 48 {
		t.Errorf("invalid logo size should fall back, got %d", got)
	}
}
