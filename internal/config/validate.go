package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(settingsStructLevel, Settings{})
	return v
}

// settingsStructLevel enforces cross-field invariants that tag-based
// rules cannot express.
func settingsStructLevel(sl validator.StructLevel) {
	s := sl.Current().Interface().(Settings)

	if s.BoxarrAPIPort == s.BoxarrPort {
		sl.ReportError(s.BoxarrAPIPort, "BoxarrAPIPort", "BoxarrAPIPort", "nefield", "BoxarrPort")
	}
	if strings.IndexFunc(s.BoxarrFeaturesAutoTagText, unicode.IsSpace) >= 0 {
		sl.ReportError(s.BoxarrFeaturesAutoTagText, "BoxarrFeaturesAutoTagText", "BoxarrFeaturesAutoTagText", "excludesspace", "")
	}
}

// normalize applies the value rewrites that precede validation: the URL
// base loses leading and trailing slashes, and an empty auto-tag falls
// back to its default.
func (s *Settings) normalize() {
	s.BoxarrURLBase = strings.Trim(s.BoxarrURLBase, "/")
	s.BoxarrFeaturesAutoTagText = strings.TrimSpace(s.BoxarrFeaturesAutoTagText)
	if s.BoxarrFeaturesAutoTagText == "" {
		s.BoxarrFeaturesAutoTagText = "boxarr"
	}
}

// Validate checks every field invariant. It performs no filesystem side
// effects; directory creation is a separate, explicit operation.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			return fmt.Errorf("%s: %w", describeFieldError(errs[0]), err)
		}
		return err
	}
	return nil
}

// describeFieldError turns the first validator error into an operator
// readable message.
func describeFieldError(fe validator.FieldError) string {
	switch {
	case fe.Field() == "BoxarrAPIPort" && fe.Tag() == "nefield":
		return "API port must be different from web port"
	case fe.Field() == "BoxarrFeaturesAutoTagText" && fe.Tag() == "excludesspace":
		return "auto tag must be a single word without spaces"
	case fe.Field() == "BoxarrFeaturesAutoTagText" && fe.Tag() == "max":
		return "auto tag must be at most 20 characters"
	default:
		return fmt.Sprintf("field %s failed %q validation", fe.Field(), fe.Tag())
	}
}
