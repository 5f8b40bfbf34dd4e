package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
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

type IMerchantService interface {
	Create(ctx context.Context, req *dto.CreateMerchantRequest) (*dto.MerchantResponse, error)
	GetAll(ctx context.Context) ([]*dto.MerchantResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.MerchantResponse, error)
	Update(ctx context.Context, req *dto.UpdateMerchantRequest) (*dto.MerchantResponse, error)
}

type merchantService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMerchantService(uowFactory unitofwork.RepositoryFactory) IMerchantService {
	return &merchantService{
		uowFactory: uowFactory,
	}
}

// generateApiKey returns a 64-char hex key with a stable prefix so keys
// are recognizable in logs and support tickets.
func generateApiKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "rhk_" + hex.EncodeToString(buf), nil
}

func (s *merchantService) Create(ctx context.Context, req *dto.CreateMerchantRequest) (*dto.MerchantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.MerchantRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewFieldValidationError("Invalid request body", map[string]string{
			"email": "merchant with this email already exists",
		})
	}

	apiKey, err := generateApiKey()
	if err != nil {
		return nil, err
	}

	merchant := entity.Merchant{
		Id:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		ApiKey:    apiKey,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	if err := uow.MerchantRepository().Create(ctx, &merchant); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewFieldValidationError("Invalid request body", map[string]string{
				"email": "merchant with this email already exists",
			})
		}
		return nil, err
	}

	return toMerchantResponse(&merchant), nil
}

func (s *merchantService) GetAll(ctx context.Context) ([]*dto.MerchantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	merchants, err := uow.MerchantRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.MerchantResponse, 0, len(merchants))
	for _, m := range merchants {
		result = append(result, toMerchantResponse(m))
	}
	return result, nil
}

func (s *merchantService) Show(ctx context.Context, id uuid.UUID) (*dto.MerchantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	merchant, err := uow.MerchantRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, apperror.NewNotFoundError("Merchant")
	}

	return toMerchantResponse(merchant), nil
}

func (s *merchantService) Update(ctx context.Context, req *dto.UpdateMerchantRequest) (*dto.MerchantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	merchant, err := uow.MerchantRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, apperror.NewNotFoundError("Merchant")
	}

	now := time.Now().UTC()
	merchant.IsActive = *req.IsActive
	merchant.UpdatedAt = &now

	if err := uow.MerchantRepository().Update(ctx, merchant); err != nil {
		return nil, err
	}

	return toMerchantResponse(merchant), nil
}

func toMerchantResponse(m *entity.Merchant) *dto.MerchantResponse {
	return &dto.MerchantResponse{
		Id:        m.Id,
		Name:      m.Name,
		Email:     m.Email,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
