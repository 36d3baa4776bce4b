package workflow

import (
	"strconv"
	"time"

	"handoff-tracker.com/handoff-tracker/internal/constants"
	model "handoff-tracker.com/handoff-tracker/pkg/models"
)

// FieldReason classifies why a single field value failed validation.
type FieldReason string

const (
	FieldMissing      FieldReason = "MISSING"
	FieldWrongType    FieldReason = "WRONG_TYPE"
	FieldNotInOptions FieldReason = "NOT_IN_OPTIONS"
)

type FieldResult struct {
	OK     bool
	Reason FieldReason
}

var fieldOK = FieldResult{OK: true}

func fieldFail(reason FieldReason) FieldResult {
	return FieldResult{Reason: reason}
}

// ValidateFieldValue checks one custom-field value against its template
// declaration. A nil value means the field was absent or explicitly null.
// Failures come back as structured results, never errors, so callers can
// aggregate several field failures into one response.
func ValidateFieldValue(field model.TemplateField, value any) FieldResult {
	if value == nil {
		if field.Required {
			return fieldFail(FieldMissing)
		}
		return fieldOK
	}

	switch field.Type {
	case constants.FieldText, constants.FieldTextarea:
		s, ok := value.(string)
		if !ok {
			return fieldFail(FieldWrongType)
		}
		if field.Required && s == "" {
			return fieldFail(FieldMissing)
		}
		return fieldOK

	case constants.FieldNumber:
		return validateNumber(value)

	case constants.FieldDate:
		s, ok := value.(string)
		if !ok {
			return fieldFail(FieldWrongType)
		}
		return validateDate(s)

	case constants.FieldSelect:
		s, ok := value.(string)
		if !ok {
			return fieldFail(FieldWrongType)
		}
		for _, option := range field.Options {
			if s == option {
				return fieldOK
			}
		}
		return fieldFail(FieldNotInOptions)
	}

	// Unknown field kinds are rejected at template creation; anything that
	// slips through is treated as unconstrained.
	return fieldOK
}

// validateNumber accepts JSON numbers and numeric strings. Zero is a present
// value, not a missing one.
func validateNumber(value any) FieldResult {
	switch v := value.(type) {
	case float64, float32, int, int32, int64, uint, uint32, uint64:
		return fieldOK
	case string:
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return fieldFail(FieldWrongType)
		}
		return fieldOK
	default:
		return fieldFail(FieldWrongType)
	}
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func validateDate(s string) FieldResult {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return fieldOK
		}
	}
	return fieldFail(FieldWrongType)
}
