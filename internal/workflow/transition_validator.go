package workflow

import (
	"handoff-tracker.com/handoff-tracker/internal/constants"
	model "handoff-tracker.com/handoff-tracker/pkg/models"
)

// Reason classifies why a transition was rejected.
type Reason string

const (
	ReasonTransitionNotAllowed  Reason = "TRANSITION_NOT_ALLOWED"
	ReasonMissingRequiredFields Reason = "MISSING_REQUIRED_FIELDS"
	ReasonInvalidFieldValue     Reason = "INVALID_FIELD_VALUE"
)

// FieldError pairs a field name with the reason its value was rejected.
type FieldError struct {
	Name   string      `json:"name"`
	Reason FieldReason `json:"reason"`
}

// Outcome is the result of a transition check. Rejections carry enough
// context for the caller to fix the request in one round trip: the legal
// transition set, or the complete list of missing and invalid fields.
type Outcome struct {
	Allowed            bool               `json:"allowed"`
	Reason             Reason             `json:"reason,omitempty"`
	AllowedTransitions []constants.Status `json:"allowed_transitions,omitempty"`
	MissingFields      []string           `json:"missing_fields,omitempty"`
	InvalidFields      []FieldError       `json:"invalid_fields,omitempty"`
}

func allowed() Outcome {
	return Outcome{Allowed: true}
}

// ValidateTransition decides whether a task may move from currentStatus to
// requestedStatus under the given template. A nil template, or a current
// status the template does not describe, means no constraints apply: a
// template is an opt-in checklist, and a task must never become
// unmodifiable because its template is missing or incomplete.
//
// candidateFields is the full replacement set of custom-field values the
// caller intends to commit, not a delta; no merge with stored values happens
// here or at commit time.
func ValidateTransition(
	template *model.WorkflowTemplate,
	currentStatus constants.Status,
	requestedStatus constants.Status,
	candidateFields map[string]any,
) Outcome {
	if template == nil {
		return allowed()
	}

	currentStep := template.StepFor(currentStatus)
	if currentStep != nil && !transitionListed(currentStep.AllowedTransitions, requestedStatus) {
		return Outcome{
			Reason:             ReasonTransitionNotAllowed,
			AllowedTransitions: currentStep.AllowedTransitions,
		}
	}

	targetStep := template.StepFor(requestedStatus)
	if targetStep == nil || len(targetStep.RequiredFields) == 0 {
		return allowed()
	}

	// Check every declared field before reporting so the caller can correct
	// the whole form at once.
	var missing []string
	var invalid []FieldError

	for _, field := range targetStep.RequiredFields {
		result := ValidateFieldValue(field, candidateFields[field.Name])
		if result.OK {
			continue
		}
		if result.Reason == FieldMissing {
			missing = append(missing, field.Name)
		} else {
			invalid = append(invalid, FieldError{Name: field.Name, Reason: result.Reason})
		}
	}

	if len(missing) == 0 && len(invalid) == 0 {
		return allowed()
	}

	reason := ReasonInvalidFieldValue
	if len(missing) > 0 {
		reason = ReasonMissingRequiredFields
	}

	return Outcome{
		Reason:        reason,
		MissingFields: missing,
		InvalidFields: invalid,
	}
}

func transitionListed(transitions []constants.Status, status constants.Status) bool {
	for _, t := range transitions {
		if t == status {
			return true
		}
	}
	return false
}
