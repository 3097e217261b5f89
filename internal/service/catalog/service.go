package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/hkaraoglu/ir-scheduler/internal/model"
	"github.com/hkaraoglu/ir-scheduler/internal/repository"
	apperrors "github.com/hkaraoglu/ir-scheduler/pkg/errors"
)

const (
	cacheTTL           = 5 * time.Minute
	listActiveCacheKey = "catalog:active"
)

// Service supplies the selectable procedure list and per-procedure defaults.
// The catalog is read-only after seeding, so lookups sit behind a short TTL
// cache.
type Service struct {
	repo  repository.ProcedureRepository
	cache *cache.Cache
}

func NewService(repo repository.ProcedureRepository) *Service {
	return &Service{
		repo:  repo,
		cache: cache.New(cacheTTL, 2*cacheTTL),
	}
}

// ListActive returns the active catalog entries sorted by name.
func (s *Service) ListActive(ctx context.Context) ([]model.ProcedureType, error) {
	if cached, ok := s.cache.Get(listActiveCacheKey); ok {
		return cached.([]model.ProcedureType), nil
	}

	procs, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, apperrors.Storage("list procedures", err)
	}

	s.cache.Set(listActiveCacheKey, procs, cache.DefaultExpiration)
	return procs, nil
}

// ListActiveGrouped returns the active catalog keyed by category, for the
// grouped selection controls of the scheduling form.
func (s *Service) ListActiveGrouped(ctx context.Context) (map[model.ProcedureCategory][]model.ProcedureType, error) {
	procs, err := s.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[model.ProcedureCategory][]model.ProcedureType)
	for _, p := range procs {
		grouped[p.Category] = append(grouped[p.Category], p)
	}
	return grouped, nil
}

// Get looks a procedure up by exact name. A nil result is a normal outcome:
// free-text procedures are first class and callers fall back to defaults.
func (s *Service) Get(ctx context.Context, name string) (*model.ProcedureType, error) {
	key := "catalog:name:" + name
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*model.ProcedureType), nil
	}

	proc, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, apperrors.Storage("get procedure", err)
	}
	if proc == nil {
		return nil, nil
	}

	s.cache.Set(key, proc, cache.DefaultExpiration)
	return proc, nil
}

// GetByID looks a procedure up by catalog id. Nil when absent.
func (s *Service) GetByID(ctx context.Context, id int64) (*model.ProcedureType, error) {
	key := fmt.Sprintf("catalog:id:%d", id)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*model.ProcedureType), nil
	}

	proc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Storage("get procedure", err)
	}
	if proc == nil {
		return nil, nil
	}

	s.cache.Set(key, proc, cache.DefaultExpiration)
	return proc, nil
}

// Seed applies the catalog entries insert-if-absent. Restarting the process
// any number of times leaves exactly the same set of rows.
func (s *Service) Seed(ctx context.Context, entries []model.SeedProcedure) error {
	inserted := 0
	for _, e := range entries {
		proc := &model.ProcedureType{
			Name:               e.Name,
			Category:           e.Category,
			DefaultDurationMin: e.DefaultDurationMin,
			Checklist:          e.Checklist,
			Active:             true,
		}
		ok, err := s.repo.InsertIfAbsent(ctx, proc)
		if err != nil {
			return apperrors.Storage("seed procedures", err)
		}
		if ok {
			inserted++
		}
	}

	s.cache.Flush()
	log.Info().Int("inserted", inserted).Int("total", len(entries)).Msg("procedure catalog seeded")
	return nil
}
