package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	model "handoff-tracker.com/handoff-tracker/pkg/models"
)

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(ctx context.Context, template *model.WorkflowTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

// FindByID returns (nil, nil) for an unknown id. A missing template is a
// valid outcome: callers treat it as "no workflow constraints apply", so a
// task referencing a deleted template behaves like an un-templated task.
func (r *TemplateRepository) FindByID(ctx context.Context, id string) (*model.WorkflowTemplate, error) {
	var template model.WorkflowTemplate
	err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

func (r *TemplateRepository) List(ctx context.Context) ([]model.WorkflowTemplate, error) {
	var templates []model.WorkflowTemplate
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&templates).Error
	return templates, err
}

func (r *TemplateRepository) Update(ctx context.Context, template *model.WorkflowTemplate) error {
	return r.db.WithContext(ctx).Save(template).Error
}

func (r *TemplateRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.WorkflowTemplate{}, "id = ?", id).Error
}
