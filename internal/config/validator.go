package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	swatcherrors "github.com/swatchkit/swatch/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	colorNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	hexPattern       = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)
)

// validatorInstance configures and returns the shared validator instance
// used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("color_name", func(fl validator.FieldLevel) bool {
			return colorNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("hex6", func(fl validator.FieldLevel) bool {
			return hexPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use outside
// the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidatePalette performs schema and cross-field validation on a palette.
func ValidatePalette(pal *Palette) error {
	if pal == nil {
		return swatcherrors.NewValidationError("palette", "palette is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(pal); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(pal.Colors))
	background := -1

	for i, entry := range pal.Colors {
		key := strings.ToLower(entry.Name)
		if _, exists := seen[key]; exists {
			return swatcherrors.NewValidationError(fieldForColor(i, "name"), fmt.Sprintf("duplicate color name %q", entry.Name), nil)
		}
		seen[key] = i

		if entry.Role == "background" {
			if background >= 0 {
				return swatcherrors.NewValidationError(fieldForColor(i, "role"), fmt.Sprintf("background role already assigned to %q", pal.Colors[background].Name), nil)
			}
			background = i
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return swatcherrors.NewValidationError(field, msg, err)
	}

	return swatcherrors.NewValidationError("palette", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForColor(index int, field string) string {
	return fmt.Sprintf("colors[%d].%s", index, field)
}
