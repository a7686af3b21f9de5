package services

import (
	"context"

	"github.com/funopi/funopi-backend/internal/platform/logger"
	"github.com/funopi/funopi-backend/internal/repos"
	"github.com/funopi/funopi-backend/internal/types"
)

// CatalogService fronts the catalog for both surfaces. Public reads degrade
// to the fallback list; admin operations surface every failure and always
// re-fetch the authoritative list after a mutation instead of patching local
// state.
type CatalogService interface {
	Public(ctx context.Context) types.CatalogPayload
	AdminList(ctx context.Context) ([]types.Experience, error)
	Create(ctx context.Context, title, url, description string) ([]types.Experience, error)
	Update(ctx context.Context, position int, title, url, description string) ([]types.Experience, error)
	Delete(ctx context.Context, position int) ([]types.Experience, error)
}

type catalogService struct {
	log         *logger.Logger
	catalogRepo repos.CatalogRepo
}

func NewCatalogService(baseLog *logger.Logger, catalogRepo repos.CatalogRepo) CatalogService {
	return &catalogService{
		log:         baseLog.With("service", "CatalogService"),
		catalogRepo: catalogRepo,
	}
}

func (cs *catalogService) Public(ctx context.Context) types.CatalogPayload {
	return cs.catalogRepo.LoadWithFallback(ctx)
}

func (cs *catalogService) AdminList(ctx context.Context) ([]types.Experience, error) {
	return cs.catalogRepo.List(ctx)
}

func (cs *catalogService) Create(ctx context.Context, title, url, description string) ([]types.Experience, error) {
	if err := cs.catalogRepo.Append(ctx, title, url, description); err != nil {
		return nil, err
	}
	return cs.catalogRepo.List(ctx)
}

func (cs *catalogService) Update(ctx context.Context, position int, title, url, description string) ([]types.Experience, error) {
	if err := cs.catalogRepo.UpdateAt(ctx, position, title, url, description); err != nil {
		return nil, err
	}
	return cs.catalogRepo.List(ctx)
}

func (cs *catalogService) Delete(ctx context.Context, position int) ([]types.Experience, error) {
	if err := cs.catalogRepo.DeleteAt(ctx, position); err != nil {
		return nil, err
	}
	return cs.catalogRepo.List(ctx)
}
