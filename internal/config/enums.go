package config

import "fmt"

// Theme selects the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// ParseTheme parses a theme name. The legacy values "purple" and "blue"
// are remapped to light for backward compatibility.
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "light", "dark", "auto":
		return Theme(s), nil
	case "purple", "PURPLE", "blue", "BLUE":
		return ThemeLight, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Decode implements envconfig.Decoder.
func (t *Theme) Decode(value string) error {
	parsed, err := ParseTheme(value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MonitorOption controls what Radarr monitors when a movie is added.
type MonitorOption string

const (
	MonitorMovieOnly          MonitorOption = "movieOnly"
	MonitorMovieAndCollection MonitorOption = "movieAndCollection"
	MonitorNone               MonitorOption = "none"
)

// ParseMonitorOption parses a Radarr monitor option.
func ParseMonitorOption(s string) (MonitorOption, error) {
	switch s {
	case "movieOnly", "movieAndCollection", "none":
		return MonitorOption(s), nil
	}
	return "", fmt.Errorf("unknown monitor option %q", s)
}

// Decode implements envconfig.Decoder.
func (m *MonitorOption) Decode(value string) error {
	parsed, err := ParseMonitorOption(value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MinimumAvailability is the release-stage gate controlling when a movie
// becomes eligible for automated acquisition.
type MinimumAvailability string

const (
	AvailabilityAnnounced MinimumAvailability = "announced"
	AvailabilityInCinemas MinimumAvailability = "inCinemas"
	AvailabilityReleased  MinimumAvailability = "released"
)

// ParseMinimumAvailability parses a minimum availability value. The
// deprecated "preDb" value is remapped to announced.
func ParseMinimumAvailability(s string) (MinimumAvailability, error) {
	switch s {
	case "announced", "inCinemas", "released":
		return MinimumAvailability(s), nil
	case "preDb":
		return AvailabilityAnnounced, nil
	}
	return "", fmt.Errorf("unknown minimum availability %q", s)
}

// Decode implements envconfig.Decoder.
func (a *MinimumAvailability) Decode(value string) error {
	parsed, err := ParseMinimumAvailability(value)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
