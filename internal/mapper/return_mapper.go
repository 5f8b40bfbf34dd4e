package mapper

import (
	"time"

	"returnhub-be/internal/entity"
	"returnhub-be/internal/model"
)

type ReturnMapper struct{}

func NewReturnMapper() *ReturnMapper {
	return &ReturnMapper{}
}

func (m *ReturnMapper) ToEntity(r *model.Return) *entity.Return {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	items := make([]*entity.ReturnItem, len(r.Items))
	for i := range r.Items {
		items[i] = m.ItemToEntity(&r.Items[i])
	}

	return &entity.Return{
		Id:                r.Id,
		MerchantId:        r.MerchantId,
		ConsumerId:        r.ConsumerId,
		OrderNumber:       r.OrderNumber,
		AuthorizationCode: r.AuthorizationCode,
		RefundAmount:      r.RefundAmount,
		Status:            entity.ReturnStatus(r.Status),
		InitiatedAt:       r.InitiatedAt,
		CompletedAt:       r.CompletedAt,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         updatedAt,
		Items:             items,
	}
}

func (m *ReturnMapper) ToModel(r *entity.Return) *model.Return {
	if r == nil {
		return nil
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	items := make([]model.ReturnItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = *m.ItemToModel(item)
	}

	return &model.Return{
		Id:                r.Id,
		MerchantId:        r.MerchantId,
		ConsumerId:        r.ConsumerId,
		OrderNumber:       r.OrderNumber,
		AuthorizationCode: r.AuthorizationCode,
		RefundAmount:      r.RefundAmount,
		Status:            string(r.Status),
		InitiatedAt:       r.InitiatedAt,
		CompletedAt:       r.CompletedAt,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         updatedAt,
		Items:             items,
	}
}

func (m *ReturnMapper) ItemToEntity(item *model.ReturnItem) *entity.ReturnItem {
	if item == nil {
		return nil
	}

	var condition *entity.ItemCondition
	if item.Condition != nil {
		c := entity.ItemCondition(*item.Condition)
		condition = &c
	}

	return &entity.ReturnItem{
		Id:           item.Id,
		ReturnId:     item.ReturnId,
		ProductName:  item.ProductName,
		ProductSku:   item.ProductSku,
		Quantity:     item.Quantity,
		UnitPrice:    item.UnitPrice,
		ReturnReason: entity.ReturnReason(item.ReturnReason),
		Condition:    condition,
		CreatedAt:    item.CreatedAt,
	}
}

func (m *ReturnMapper) ItemToModel(item *entity.ReturnItem) *model.ReturnItem {
	if item == nil {
		return nil
	}

	var condition *string
	if item.Condition != nil {
		c := string(*item.Condition)
		condition = &c
	}

	return &model.ReturnItem{
		Id:           item.Id,
		ReturnId:     item.ReturnId,
		ProductName:  item.ProductName,
		ProductSku:   item.ProductSku,
		Quantity:     item.Quantity,
		UnitPrice:    item.UnitPrice,
		ReturnReason: string(item.ReturnReason),
		Condition:    condition,
		CreatedAt:    item.CreatedAt,
	}
}

func (m *ReturnMapper) ToEntities(returns []*model.Return) []*entity.Return {
	entities := make([]*entity.Return, len(returns))
	for i, r := range returns {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

func (m *ReturnMapper) ItemsToEntities(items []*model.ReturnItem) []*entity.ReturnItem {
	entities := make([]*entity.ReturnItem, len(items))
	for i, item := range items {
		entities[i] = m.ItemToEntity(item)
	}
	return entities
}
