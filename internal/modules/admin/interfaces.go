package admin

import (
	"context"

	"bamborapay/internal/domain"
)

type settingsStore interface {
	Load(ctx context.Context) (*domain.BamboraSettings, error)
	Save(ctx context.Context, s *domain.BamboraSettings) error
}
