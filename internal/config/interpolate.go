package config

import (
	"os"
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`\$\{([^{}]+)\}`)

// ExpandTokens replaces every ${NAME} or ${NAME:DEFAULT} placeholder in s
// with the environment value bound to NAME, falling back to DEFAULT when
// NAME is unset or empty, or to "" when neither exists. Placeholders are
// resolved independently against live environment state.
//
// Only the text between the first and second colon is treated as the
// default; any further colon-separated segments are discarded, so
// "${A:b:c}" falls back to "b".
func ExpandTokens(s string) string {
	return tokenPattern.ReplaceAllStringFunc(s, func(match string) string {
		body := match[2 : len(match)-1]
		name, rest, _ := strings.Cut(body, ":")
		def, _, _ := strings.Cut(rest, ":")
		if v := os.Getenv(name); v != "" {
			return v
		}
		return def
	})
}
