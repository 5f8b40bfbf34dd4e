package service

import (
	"context"
	"errors"
	"time"

	"returnhub-be/internal/dto"
	"returnhub-be/internal/entity"
	"returnhub-be/internal/pkg/apperror"
	"returnhub-be/internal/repository/specification"
	"returnhub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IConsumerService interface {
	Create(ctx context.Context, req *dto.CreateConsumerRequest) (*dto.ConsumerResponse, error)
	GetAll(ctx context.Context) ([]*dto.ConsumerResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ConsumerResponse, error)
}

type consumerService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(uowFactory unitofwork.RepositoryFactory) IConsumerService {
	return &consumerService{
		uowFactory: uowFactory,
	}
}

func (s *consumerService) Create(ctx context.Context, req *dto.CreateConsumerRequest) (*dto.ConsumerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ConsumerRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewFieldValidationError("Invalid request body", map[string]string{
			"email": "consumer with this email already exists",
		})
	}

	consumer := entity.Consumer{
		Id:        uuid.New(),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CreatedAt: time.Now().UTC(),
	}

	if err := uow.ConsumerRepository().Create(ctx, &consumer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewFieldValidationError("Invalid request body", map[string]string{
				"email": "consumer with this email already exists",
			})
		}
		return nil, err
	}

	return toConsumerResponse(&consumer), nil
}

func (s *consumerService) GetAll(ctx context.Context) ([]*dto.ConsumerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	consumers, err := uow.ConsumerRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ConsumerResponse, 0, len(consumers))
	for _, c := range consumers {
		result = append(result, toConsumerResponse(c))
	}
	return result, nil
}

func (s *consumerService) Show(ctx context.Context, id uuid.UUID) (*dto.ConsumerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	consumer, err := uow.ConsumerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if consumer == nil {
		return nil, apperror.NewNotFoundError("Consumer")
	}

	return toConsumerResponse(consumer), nil
}

func toConsumerResponse(c *entity.Consumer) *dto.ConsumerResponse {
	return &dto.ConsumerResponse{
		Id:        c.Id,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		CreatedAt: c.CreatedAt,
	}
}
