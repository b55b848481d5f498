package reports

import (
	"context"
	"fmt"

	pkgerrors "github.com/modastore/modastore-backend/pkg/errors"
)

// Service exposes the vendor-facing reporting reads.
type Service interface {
	InventoryValuation(ctx context.Context) (*InventoryValuation, error)
	SalesSummary(ctx context.Context) (*SalesSummary, error)
}

type service struct {
	repo *Repository
}

// NewService builds a reporting service backed by the provided repository.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reports repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) InventoryValuation(ctx context.Context) (*InventoryValuation, error) {
	valuation, err := s.repo.InventoryValuation(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "inventory valuation")
	}
	return valuation, nil
}

func (s *service) SalesSummary(ctx context.Context) (*SalesSummary, error) {
	summary, err := s.repo.SalesSummary(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "sales summary")
	}
	return summary, nil
}
