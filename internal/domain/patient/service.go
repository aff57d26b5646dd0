package patient

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	if id <= 0 {
		return nil, fmt.Errorf("patient id must be positive, got %d", id)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

// Save inserts or overwrites the record at its id. There is deliberately no
// existence check: add is an upsert by id.
func (s *Service) Save(ctx context.Context, p *Patient) error {
	if p.ID <= 0 {
		return fmt.Errorf("patient id must be positive, got %d", p.ID)
	}
	return s.repo.Put(ctx, p)
}

// Replace overwrites all mutable fields for the id. An absent id is a
// store-level no-op.
func (s *Service) Replace(ctx context.Context, p *Patient) error {
	if p.ID <= 0 {
		return fmt.Errorf("patient id must be positive, got %d", p.ID)
	}
	return s.repo.Update(ctx, p)
}
