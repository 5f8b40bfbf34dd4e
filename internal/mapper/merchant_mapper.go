package mapper

import (
	"time"

	"returnhub-be/internal/entity"
	"returnhub-be/internal/model"
)

type MerchantMapper struct{}

func NewMerchantMapper() *MerchantMapper {
	return &MerchantMapper{}
}

func (m *MerchantMapper) ToEntity(mc *model.Merchant) *entity.Merchant {
	if mc == nil {
		return nil
	}

	var updatedAt *time.Time
	if !mc.UpdatedAt.IsZero() {
		t := mc.UpdatedAt
		updatedAt = &t
	}

	return &entity.Merchant{
		Id:        mc.Id,
		Name:      mc.Name,
		Email:     mc.Email,
		ApiKey:    mc.ApiKey,
		IsActive:  mc.IsActive,
		CreatedAt: mc.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *MerchantMapper) ToModel(mc *entity.Merchant) *model.Merchant {
	if mc == nil {
		return nil
	}

	var updatedAt time.Time
	if mc.UpdatedAt != nil {
		updatedAt = *mc.UpdatedAt
	}

	return &model.Merchant{
		Id:        mc.Id,
		Name:      mc.Name,
		Email:     mc.Email,
		ApiKey:    mc.ApiKey,
		IsActive:  mc.IsActive,
		CreatedAt: mc.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *MerchantMapper) ToEntities(merchants []*model.Merchant) []*entity.Merchant {
	entities := make([]*entity.Merchant, len(merchants))
	for i, mc := range merchants {
		entities[i] = m.ToEntity(mc)
	}
	return entities
}
