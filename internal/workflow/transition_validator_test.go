package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"handoff-tracker.com/handoff-tracker/internal/constants"
	model "handoff-tracker.com/handoff-tracker/pkg/models"
)

func TestValidateTransition_NoTemplateAlwaysAllowed(t *testing.T) {
	for _, from := range constants.Statuses {
		for _, to := range constants.Statuses {
			outcome := ValidateTransition(nil, from, to, nil)
			assert.True(t, outcome.Allowed, "%s -> %s should be allowed without a template", from, to)
		}
	}
}

func TestValidateTransition_Whitelist(t *testing.T) {
	template := &model.WorkflowTemplate{
		Steps: []model.TemplateStep{
			{
				Status:             constants.StatusOpen,
				AllowedTransitions: []constants.Status{constants.StatusInProgress},
			},
		},
	}

	outcome := ValidateTransition(template, constants.StatusOpen, constants.StatusInProgress, nil)
	assert.True(t, outcome.Allowed)

	outcome = ValidateTransition(template, constants.StatusOpen, constants.StatusReadyForReview, nil)
	assert.False(t, outcome.Allowed)
	assert.Equal(t, ReasonTransitionNotAllowed, outcome.Reason)
	assert.Equal(t, []constants.Status{constants.StatusInProgress}, outcome.AllowedTransitions)
}

func TestValidateTransition_UndescribedCurrentStatusIsUnconstrained(t *testing.T) {
	template := &model.WorkflowTemplate{
		Steps: []model.TemplateStep{
			{
				Status:             constants.StatusInProgress,
				AllowedTransitions: []constants.Status{constants.StatusDone},
			},
		},
	}

	// the template says nothing about OPEN, so any move from OPEN is fine
	outcome := ValidateTransition(template, constants.StatusOpen, constants.StatusDone, nil)
	assert.True(t, outcome.Allowed)
}

func TestValidateTransition_TerminalStepRejectsEverything(t *testing.T) {
	template := &model.WorkflowTemplate{
		Steps: []model.TemplateStep{
			{Status: constants.StatusDone, AllowedTransitions: []constants.Status{}},
		},
	}

	for _, to := range []constants.Status{constants.StatusOpen, constants.StatusInProgress, constants.StatusReadyForReview} {
		outcome := ValidateTransition(template, constants.StatusDone, to, nil)
		assert.False(t, outcome.Allowed)
		assert.Equal(t, ReasonTransitionNotAllowed, outcome.Reason)
		assert.Empty(t, outcome.AllowedTransitions)
	}
}

func TestValidateTransition_RequiredFieldsAggregated(t *testing.T) {
	template := &model.WorkflowTemplate{
		Steps: []model.TemplateStep{
			{
				Status: constants.StatusInProgress,
				AllowedTransitions: []constants.Status{
					constants.StatusReadyForReview,
				},
			},
			{
				Status: constants.StatusReadyForReview,
				RequiredFields: []model.TemplateField{
					{Name: "summary", Type: constants.FieldText, Required: true},
					{Name: "reviewer", Type: constants.FieldText, Required: true},
				},
			},
		},
	}

	// neither field supplied: both reported, not just the first
	outcome := ValidateTransition(template, constants.StatusInProgress, constants.StatusReadyForReview, map[string]any{})
	assert.False(t, outcome.Allowed)
	assert.Equal(t, ReasonMissingRequiredFields, outcome.Reason)
	assert.Equal(t, []string{"summary", "reviewer"}, outcome.MissingFields)

	// one supplied: only the other is missing
	outcome = ValidateTransition(template, constants.StatusInProgress, constants.StatusReadyForReview, map[string]any{
		"summary": "shipped",
	})
	assert.False(t, outcome.Allowed)
	assert.Equal(t, []string{"reviewer"}, outcome.MissingFields)

	// both supplied: allowed
	outcome = ValidateTransition(template, constants.StatusInProgress, constants.StatusReadyForReview, map[string]any{
		"summary":  "shipped",
		"reviewer": "sam",
	})
	assert.True(t, outcome.Allowed)
}

func TestValidateTransition_MixedMissingAndInvalid(t *testing.T) {
	template := &model.WorkflowTemplate{
		Steps: []model.TemplateStep{
			{
				Status: constants.StatusDone,
				RequiredFields: []model.TemplateField{
					{Name: "summary", Type: constants.FieldText, Required: true},
					{Name: "environment", Type: constants.FieldSelect, Required: true, Options: []string{"staging", "production"}},
				},
			},
		},
	}

	outcome := ValidateTransition(template, constants.StatusInProgress, constants.StatusDone, map[string]any{
		"environment": "qa",
	})
	assert.False(t, outcome.Allowed)
	assert.Equal(t, ReasonMissingRequiredFields, outcome.Reason)
	assert.Equal(t, []string{"summary"}, outcome.MissingFields)
	assert.Equal(t, []FieldError{{Name: "environment", Reason: FieldNotInOptions}}, outcome.InvalidFields)
}

func TestValidateTransition_InvalidFieldValueOnly(t *testing.T) {
	template := &model.WorkflowTemplate{
		Steps: []model.TemplateStep{
			{
				Status: constants.StatusDone,
				RequiredFields: []model.TemplateField{
					{Name: "estimate", Type: constants.FieldNumber, Required: true},
				},
			},
		},
	}

	outcome := ValidateTransition(template, constants.StatusInProgress, constants.StatusDone, map[string]any{
		"estimate": "not a number",
	})
	assert.False(t, outcome.Allowed)
	assert.Equal(t, ReasonInvalidFieldValue, outcome.Reason)
	assert.Equal(t, []FieldError{{Name: "estimate", Reason: FieldWrongType}}, outcome.InvalidFields)

	outcome = ValidateTransition(template, constants.StatusInProgress, constants.StatusDone, map[string]any{
		"estimate": 0.0,
	})
	assert.True(t, outcome.Allowed, "zero is a present value")
}

func TestValidateTransition_TargetStepWithoutFieldsAllowed(t *testing.T) {
	template := &model.WorkflowTemplate{
		Steps: []model.TemplateStep{
			{
				Status:             constants.StatusOpen,
				AllowedTransitions: []constants.Status{constants.StatusInProgress},
			},
			{
				Status:             constants.StatusInProgress,
				AllowedTransitions: []constants.Status{constants.StatusDone},
			},
		},
	}

	outcome := ValidateTransition(template, constants.StatusOpen, constants.StatusInProgress, nil)
	assert.True(t, outcome.Allowed)
}

func TestValidateTransition_DuplicateStatusFirstStepWins(t *testing.T) {
	template := &model.WorkflowTemplate{
		Steps: []model.TemplateStep{
			{
				Status:             constants.StatusOpen,
				AllowedTransitions: []constants.Status{constants.StatusInProgress},
			},
			{
				Status:             constants.StatusOpen,
				AllowedTransitions: []constants.Status{constants.StatusDone},
			},
		},
	}

	outcome := ValidateTransition(template, constants.StatusOpen, constants.StatusDone, nil)
	assert.False(t, outcome.Allowed)
	assert.Equal(t, []constants.Status{constants.StatusInProgress}, outcome.AllowedTransitions)
}
