package document

import (
	"fmt"
	"strconv"
)

// FieldBindings is the open string-keyed map behind {{name}} tokens in
// template strings. Values are scalars (string/number/bool); unknown keys
// resolve to nothing. A handful of reserved keys control document chrome
// rather than body text.
type FieldBindings map[string]interface{}

// Reserved chrome keys.
const (
	KeyIncludeBranding = "includeBranding"
	KeyLogoAlignment   = "logoAlignment"
	KeyLogoSize        = "logoSize"
	KeyLogoURL         = "logoUrl"

	KeyPartyAName = "disclosingPartyName"
	KeyPartyBName = "receivingPartyName"

	KeyClientName     = "clientName"
	KeyConsultantName = "consultantName"
)

// Lookup returns the string form of a bound value and whether the key is
// bound at all. Numbers and booleans are formatted; an explicitly bound
// empty string still counts as bound.
func (b FieldBindings) Lookup(name string) (string, bool) {
	if b == nil {
		return "", false
	}
	value, ok := b[name]
	if !ok || value == nil {
		return "", false
	}
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		// JSON numbers decode as float64; print integers without the dot
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10), true
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

// GetString returns the bound value or "" when missing.
func (b FieldBindings) GetString(name string) string {
	value, _ := b.Lookup(name)
	return value
}

// BrandingEnabled reports whether the logo header should render. Legacy
// payloads serialized the flag as the string "false", so both boolean false
// and "false" suppress branding; any other value, including an absent key,
// allows it.
func (b FieldBindings) BrandingEnabled() bool {
	if b == nil {
		return true
	}
	switch v := b[KeyIncludeBranding].(type) {
	case bool:
		return v
	case string:
		return v != "false"
	default:
		return true
	}
}

// LogoAlignment returns left/center/right, defaulting to left.
func (b FieldBindings) LogoAlignment() string {
	switch b.GetString(KeyLogoAlignment) {
	case "center":
		return "center"
	case "right":
		return "right"
	default:
		return "left"
	}
}

// LogoHeight returns the configured logo height in pixels, defaulting to 48.
func (b FieldBindings) LogoHeight() int {
	raw := b.GetString(KeyLogoSize)
	if raw == "" {
		return 48
	}
	height, err := strconv.Atoi(raw)
	if err != nil || height <= 0 {
		return 48
	}
	return height
}
