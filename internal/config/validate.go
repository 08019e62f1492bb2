package config

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Valid enum values for configuration fields.
var (
	ValidFrontends  = []string{FrontendTerminal, FrontendTUI}
	ValidThemeNames = []string{"none", "default", "dracula", "nord"}
	ValidThemeModes = []string{"auto", "light", "dark"}
)

// ValidateFrontend validates a frontend name against ValidFrontends.
// Exported for use in CLI flag validation.
func ValidateFrontend(name string) error {
	return validateEnum(name, "frontend", ValidFrontends)
}

// Validate checks field values of an effective config.
func (c *Config) Validate() error {
	if err := ValidateFrontend(c.Frontend); err != nil {
		return err
	}
	if err := ValidateMarker(c.Marker); err != nil {
		return err
	}
	if err := ValidateBorder(c.Border); err != nil {
		return err
	}
	if strings.ContainsAny(c.Banner, "\r\n") {
		return fmt.Errorf("invalid banner %q: must be a single line", c.Banner)
	}
	if err := validateEnum(c.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		return err
	}
	return validateEnum(c.Theme.Mode, "theme.mode", ValidThemeModes)
}

// ValidateMarker checks that the highlight marker is visible and contains no
// whitespace.
func ValidateMarker(marker string) error {
	if marker == "" {
		return nil
	}
	if strings.IndexFunc(marker, unicode.IsSpace) >= 0 {
		return fmt.Errorf("invalid marker %q: must not contain whitespace", marker)
	}
	if strings.IndexFunc(marker, unicode.IsControl) >= 0 {
		return fmt.Errorf("invalid marker %q: must not contain control characters", marker)
	}
	return nil
}

// ValidateBorder checks that the border is a single printable character.
func ValidateBorder(border string) error {
	if border == "" {
		return nil
	}
	r, size := utf8.DecodeRuneInString(border)
	if size != len(border) || !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return fmt.Errorf("invalid border %q: must be a single visible character", border)
	}
	return nil
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
