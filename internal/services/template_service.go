package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/NITHINPOLI04/VMEW/internal/cache"
	"github.com/NITHINPOLI04/VMEW/internal/models"
	"github.com/NITHINPOLI04/VMEW/internal/repositories"
)

type TemplateService struct {
	templates *repositories.TemplateRepository
}

func NewTemplateService(templates *repositories.TemplateRepository) *TemplateService {
	return &TemplateService{templates: templates}
}

// GetLetterhead returns the stored letterhead, or a zero value when none has
// been saved yet so the client always gets a well-formed shape to edit.
func (s *TemplateService) GetLetterhead(ctx context.Context) (*models.Letterhead, error) {
	var lh models.Letterhead
	if err := s.getCached(ctx, models.TemplateLetterhead, &lh); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &models.Letterhead{}, nil
		}
		return nil, err
	}
	return &lh, nil
}

// GetDefaultInfo returns the stored bank details and terms, or a zero value
// when none has been saved yet.
func (s *TemplateService) GetDefaultInfo(ctx context.Context) (*models.DefaultInfo, error) {
	var di models.DefaultInfo
	if err := s.getCached(ctx, models.TemplateDefaultInfo, &di); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &models.DefaultInfo{Terms: []string{}}, nil
		}
		return nil, err
	}
	return &di, nil
}

func (s *TemplateService) getCached(ctx context.Context, templateType string, dest interface{}) error {
	key := fmt.Sprintf(cache.TemplateKeyFmt, templateType)
	if data, ok := cache.GetCached(ctx, key); ok {
		if err := json.Unmarshal(data, dest); err == nil {
			return nil
		}
	}

	if err := s.templates.Get(ctx, templateType, dest); err != nil {
		return err
	}
	if data, err := json.Marshal(dest); err == nil {
		cache.SetCached(ctx, key, data, 30*time.Minute)
	}
	return nil
}

func (s *TemplateService) UpdateLetterhead(ctx context.Context, lh *models.Letterhead) error {
	if err := s.templates.Upsert(ctx, models.TemplateLetterhead, lh); err != nil {
		return err
	}
	cache.InvalidateTemplateCaches(ctx)
	return nil
}

func (s *TemplateService) UpdateDefaultInfo(ctx context.Context, di *models.DefaultInfo) error {
	if di.Terms == nil {
		di.Terms = []string{}
	}
	if err := s.templates.Upsert(ctx, models.TemplateDefaultInfo, di); err != nil {
		return err
	}
	cache.InvalidateTemplateCaches(ctx)
	return nil
}
