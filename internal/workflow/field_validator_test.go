package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"handoff-tracker.com/handoff-tracker/internal/constants"
	model "handoff-tracker.com/handoff-tracker/pkg/models"
)

func TestValidateFieldValue_Text(t *testing.T) {
	required := model.TemplateField{Name: "summary", Type: constants.FieldText, Required: true}
	optional := model.TemplateField{Name: "notes", Type: constants.FieldTextarea}

	tests := []struct {
		name   string
		field  model.TemplateField
		value  any
		ok     bool
		reason FieldReason
	}{
		{"required present", required, "shipped", true, ""},
		{"required absent", required, nil, false, FieldMissing},
		{"required empty string", required, "", false, FieldMissing},
		{"required non-string", required, 42.0, false, FieldWrongType},
		{"optional absent", optional, nil, true, ""},
		{"optional empty string", optional, "", true, ""},
		{"optional non-string", optional, true, false, FieldWrongType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateFieldValue(tt.field, tt.value)
			assert.Equal(t, tt.ok, result.OK)
			if !tt.ok {
				assert.Equal(t, tt.reason, result.Reason)
			}
		})
	}
}

func TestValidateFieldValue_Number(t *testing.T) {
	field := model.TemplateField{Name: "estimate", Type: constants.FieldNumber, Required: true}

	// zero is a present value, not a missing one
	assert.True(t, ValidateFieldValue(field, 0.0).OK)
	assert.True(t, ValidateFieldValue(field, float64(12)).OK)
	assert.True(t, ValidateFieldValue(field, "3.5").OK)

	assert.Equal(t, FieldWrongType, ValidateFieldValue(field, "abc").Reason)
	assert.Equal(t, FieldWrongType, ValidateFieldValue(field, true).Reason)
	assert.Equal(t, FieldMissing, ValidateFieldValue(field, nil).Reason)
}

func TestValidateFieldValue_Date(t *testing.T) {
	field := model.TemplateField{Name: "due", Type: constants.FieldDate, Required: true}

	assert.True(t, ValidateFieldValue(field, "2026-03-14").OK)
	assert.True(t, ValidateFieldValue(field, "2026-03-14T09:30:00Z").OK)

	assert.Equal(t, FieldWrongType, ValidateFieldValue(field, "next tuesday").Reason)
	assert.Equal(t, FieldWrongType, ValidateFieldValue(field, 20260314.0).Reason)
	assert.Equal(t, FieldMissing, ValidateFieldValue(field, nil).Reason)
}

func TestValidateFieldValue_Select(t *testing.T) {
	field := model.TemplateField{
		Name:     "environment",
		Type:     constants.FieldSelect,
		Required: true,
		Options:  []string{"staging", "production"},
	}

	assert.True(t, ValidateFieldValue(field, "staging").OK)

	// a non-empty value outside the options is still rejected
	assert.Equal(t, FieldNotInOptions, ValidateFieldValue(field, "qa").Reason)
	assert.Equal(t, FieldWrongType, ValidateFieldValue(field, 1.0).Reason)
	assert.Equal(t, FieldMissing, ValidateFieldValue(field, nil).Reason)
}
