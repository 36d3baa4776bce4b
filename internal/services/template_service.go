package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"handoff-tracker.com/handoff-tracker/internal/constants"
	apperrors "handoff-tracker.com/handoff-tracker/internal/errors"
	repository "handoff-tracker.com/handoff-tracker/internal/repositories"
	model "handoff-tracker.com/handoff-tracker/pkg/models"
)

// TemplateService owns the workflow-template lifecycle. Templates are edited
// and deleted by their owner only; deleting one never touches tasks that
// reference it, their transition checks just fall back to unconstrained.
type TemplateService struct {
	repo *repository.TemplateRepository
}

func NewTemplateService(repo *repository.TemplateRepository) *TemplateService {
	return &TemplateService{repo: repo}
}

type TemplateInput struct {
	Name        string
	Description string
	Steps       []model.TemplateStep
}

func (s *TemplateService) CreateTemplate(ctx context.Context, input TemplateInput, ownerID string) (*model.WorkflowTemplate, error) {
	if err := validateSteps(input.Steps); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	template := &model.WorkflowTemplate{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     ownerID,
		Steps:       input.Steps,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, template); err != nil {
		return nil, err
	}

	return template, nil
}

func (s *TemplateService) GetTemplate(ctx context.Context, id string) (*model.WorkflowTemplate, error) {
	template, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, apperrors.ErrTemplateNotFound
	}
	return template, nil
}

func (s *TemplateService) ListTemplates(ctx context.Context) ([]model.WorkflowTemplate, error) {
	return s.repo.List(ctx)
}

func (s *TemplateService) UpdateTemplate(
	ctx context.Context,
	id string,
	input TemplateInput,
	actorID string,
) (*model.WorkflowTemplate, error) {
	template, err := s.ownedTemplate(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	if err := validateSteps(input.Steps); err != nil {
		return nil, err
	}

	template.Name = input.Name
	template.Description = input.Description
	template.Steps = input.Steps
	template.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, template); err != nil {
		return nil, err
	}

	return template, nil
}

func (s *TemplateService) DeleteTemplate(ctx context.Context, id string, actorID string) error {
	if _, err := s.ownedTemplate(ctx, id, actorID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *TemplateService) ownedTemplate(ctx context.Context, id, actorID string) (*model.WorkflowTemplate, error) {
	template, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, apperrors.ErrTemplateNotFound
	}
	if template.OwnerID != actorID {
		return nil, apperrors.ErrTemplateForbidden
	}
	return template, nil
}

// validateSteps rejects templates the engine could not interpret
// unambiguously: unknown statuses, two steps for one status, unknown field
// kinds, select fields without options.
func validateSteps(steps []model.TemplateStep) error {
	seen := make(map[constants.Status]bool, len(steps))

	for _, step := range steps {
		if !step.Status.Valid() {
			return apperrors.ErrInvalidStatus
		}
		if seen[step.Status] {
			return apperrors.ErrDuplicateStep
		}
		seen[step.Status] = true

		for _, transition := range step.AllowedTransitions {
			if !transition.Valid() {
				return apperrors.ErrInvalidStatus
			}
		}

		for _, field := range step.RequiredFields {
			if !field.Type.Valid() {
				return apperrors.ErrInvalidTemplateField
			}
			if field.Type == constants.FieldSelect && len(field.Options) == 0 {
				return apperrors.ErrInvalidTemplateField
			}
		}
	}

	return nil
}
