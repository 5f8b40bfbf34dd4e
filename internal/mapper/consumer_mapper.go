package mapper

import (
	"returnhub-be/internal/entity"
	"returnhub-be/internal/model"
)

type ConsumerMapper struct{}

func NewConsumerMapper() *ConsumerMapper {
	return &ConsumerMapper{}
}

func (m *ConsumerMapper) ToEntity(c *model.Consumer) *entity.Consumer {
	if c == nil {
		return nil
	}

	return &entity.Consumer{
		Id:        c.Id,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ConsumerMapper) ToModel(c *entity.Consumer) *model.Consumer {
	if c == nil {
		return nil
	}

	return &model.Consumer{
		Id:        c.Id,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ConsumerMapper) ToEntities(consumers []*model.Consumer) []*entity.Consumer {
	entities := make([]*entity.Consumer, len(consumers))
	for i, c := range consumers {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
