package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByStatus filters returns by lifecycle status.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByMerchantID filters returns belonging to a merchant. Together with
// ByStatus this hits the composite (merchant_id, status) index.
type ByMerchantID struct {
	MerchantID uuid.UUID
}

func (s ByMerchantID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("merchant_id = ?", s.MerchantID)
}

// ByReturnID scopes return items to their parent return.
type ByReturnID struct {
	ReturnID uuid.UUID
}

func (s ByReturnID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("return_id = ?", s.ReturnID)
}

// ByAuthorizationCode looks up a return by its unique authorization code.
type ByAuthorizationCode struct {
	Code string
}

func (s ByAuthorizationCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("authorization_code = ?", s.Code)
}
