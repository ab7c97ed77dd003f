package service

import (
	"context"

	"github.com/AbdoTarek2211/Cost-Management/internal/api/dto"
	"github.com/AbdoTarek2211/Cost-Management/internal/validator"
)

type CostService interface {
	CreateCost(ctx context.Context, req *dto.CreateCostRequest) (*dto.CostResponse, error)
	GetCost(ctx context.Context, id int) (*dto.CostResponse, error)
	ListCosts(ctx context.Context) (*dto.ListCostsResponse, error)
}

type costService struct {
	ServiceParams
}

func NewCostService(params ServiceParams) CostService {
	return &costService{ServiceParams: params}
}

func (s *costService) CreateCost(ctx context.Context, req *dto.CreateCostRequest) (*dto.CostResponse, error) {
	if err := validator.ValidateRequest(req); err != nil {
		return nil, err
	}

	c := req.ToCost()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.CostRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.Logger.Infow("recorded cost", "cost_id", c.ID, "amount", c.Amount, "category", c.Category)
	return dto.NewCostResponse(c), nil
}

func (s *costService) GetCost(ctx context.Context, id int) (*dto.CostResponse, error) {
	c, err := s.CostRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewCostResponse(c), nil
}

func (s *costService) ListCosts(ctx context.Context) (*dto.ListCostsResponse, error) {
	costs, err := s.CostRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CostResponse, len(costs))
	for i, c := range costs {
		items[i] = dto.NewCostResponse(c)
	}
	return &dto.ListCostsResponse{Items: items, Total: len(items)}, nil
}
