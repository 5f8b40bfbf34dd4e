package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"returnhub-be/internal/dto"
	"returnhub-be/internal/entity"
	"returnhub-be/internal/lifecycle"
	"returnhub-be/internal/pkg/apperror"
	"returnhub-be/internal/repository/specification"
	"returnhub-be/internal/repository/unitofwork"
	"returnhub-be/pkg/events"
	pktNats "returnhub-be/pkg/nats"
	"returnhub-be/pkg/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type IReturnService interface {
	Create(ctx context.Context, req *dto.CreateReturnRequest) (*dto.ReturnResponse, error)
	GetAll(ctx context.Context, filter *dto.ListReturnsFilter) ([]*dto.ReturnResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ReturnResponse, error)
	Approve(ctx context.Context, id uuid.UUID) (*dto.ReturnResponse, error)
	Cancel(ctx context.Context, id uuid.UUID) (*dto.ReturnResponse, error)
	Complete(ctx context.Context, id uuid.UUID) (*dto.ReturnResponse, error)
}

type returnService struct {
	uowFactory       unitofwork.RepositoryFactory
	engine           *lifecycle.Engine
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	cache            *store.ReturnCache
}

func NewReturnService(
	uowFactory unitofwork.RepositoryFactory,
	engine *lifecycle.Engine,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	cache *store.ReturnCache,
) IReturnService {
	return &returnService{
		uowFactory:       uowFactory,
		engine:           engine,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		cache:            cache,
	}
}

func (s *returnService) Create(ctx context.Context, req *dto.CreateReturnRequest) (*dto.ReturnResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	merchant, err := uow.MerchantRepository().FindOne(ctx, specification.ByID{ID: req.Merchant})
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, apperror.NewFieldValidationError("Invalid request body", map[string]string{
			"merchant": "merchant does not exist",
		})
	}

	consumer, err := uow.ConsumerRepository().FindOne(ctx, specification.ByID{ID: req.Consumer})
	if err != nil {
		return nil, err
	}
	if consumer == nil {
		return nil, apperror.NewFieldValidationError("Invalid request body", map[string]string{
			"consumer": "consumer does not exist",
		})
	}

	duplicate, err := uow.ReturnRepository().FindOne(ctx,
		specification.ByAuthorizationCode{Code: req.AuthorizationCode},
	)
	if err != nil {
		return nil, err
	}
	if duplicate != nil {
		return nil, apperror.NewFieldValidationError("Invalid request body", map[string]string{
			"authorization_code": "return with this authorization code already exists",
		})
	}

	now := time.Now().UTC()
	ret := entity.Return{
		Id:                uuid.New(),
		MerchantId:        merchant.Id,
		ConsumerId:        consumer.Id,
		OrderNumber:       req.OrderNumber,
		AuthorizationCode: req.AuthorizationCode,
		RefundAmount:      req.RefundAmount,
		Status:            entity.StatusInitiated,
		InitiatedAt:       now,
		CreatedAt:         now,
	}
	for _, item := range req.Items {
		var condition *entity.ItemCondition
		if item.Condition != nil {
			c := entity.ItemCondition(*item.Condition)
			condition = &c
		}
		ret.Items = append(ret.Items, &entity.ReturnItem{
			Id:           uuid.New(),
			ReturnId:     ret.Id,
			ProductName:  item.ProductName,
			ProductSku:   item.ProductSku,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			ReturnReason: entity.ReturnReason(item.ReturnReason),
			Condition:    condition,
			CreatedAt:    now,
		})
	}

	// The return and its items land in one transaction so a failed item
	// insert leaves no orphaned return behind.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ReturnRepository().Create(ctx, &ret); err != nil {
		// A concurrent create can slip past the pre-check; the unique
		// index is the authority.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewFieldValidationError("Invalid request body", map[string]string{
				"authorization_code": "return with this authorization code already exists",
			})
		}
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.afterTransition(ctx, &ret, consumer, events.NewReturnCreated(ret.Id, ret.AuthorizationCode, string(ret.Status)))

	return toReturnResponse(&ret), nil
}

// amountValid reports whether d is a well-formed money value: non-negative
// with at most two decimal places. More precise inputs are rejected rather
// than silently rounded by the numeric(10,2) columns.
func amountValid(d decimal.Decimal) (string, bool) {
	if d.IsNegative() {
		return "must not be negative", false
	}
	if d.Exponent() < -2 {
		return "must have at most 2 decimal places", false
	}
	return "", true
}

func validateCreateRequest(req *dto.CreateReturnRequest) error {
	fields := make(map[string]string)
	if msg, ok := amountValid(req.RefundAmount); !ok {
		fields["refund_amount"] = "refund_amount " + msg
	}
	for i, item := range req.Items {
		if !entity.ReturnReason(item.ReturnReason).Valid() {
			fields[fmt.Sprintf("items[%d].return_reason", i)] = "return_reason must be one of: DEFECTIVE, WRONG_ITEM, NOT_AS_DESCRIBED, UNWANTED, OTHER"
		}
		if item.Condition != nil && !entity.ItemCondition(*item.Condition).Valid() {
			fields[fmt.Sprintf("items[%d].condition", i)] = "condition must be one of: NEW, LIKE_NEW, GOOD, DAMAGED"
		}
		if msg, ok := amountValid(item.UnitPrice); !ok {
			fields[fmt.Sprintf("items[%d].unit_price", i)] = "unit_price " + msg
		}
	}
	if len(fields) > 0 {
		return apperror.NewFieldValidationError("Invalid request body", fields)
	}
	return nil
}

func (s *returnService) GetAll(ctx context.Context, filter *dto.ListReturnsFilter) ([]*dto.ReturnResponse, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	cacheStatus, cacheMerchant := "", ""
	if filter != nil {
		if filter.Status != "" {
			if !entity.ReturnStatus(filter.Status).Valid() {
				return nil, apperror.NewFieldValidationError("Invalid request body", map[string]string{
					"status": "status must be one of: INITIATED, AUTHORIZED, DROPPED_OFF, PROCESSING, COMPLETED, CANCELLED",
				})
			}
			specs = append(specs, specification.ByStatus{Status: filter.Status})
			cacheStatus = filter.Status
		}
		if filter.Merchant != nil {
			specs = append(specs, specification.ByMerchantID{MerchantID: *filter.Merchant})
			cacheMerchant = filter.Merchant.String()
		}
	}

	cacheKey := store.ListKey(cacheStatus, cacheMerchant)
	var cached []*dto.ReturnResponse
	if s.cache != nil && s.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	returns, err := uow.ReturnRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ReturnResponse, 0, len(returns))
	for _, r := range returns {
		result = append(result, toReturnResponse(r))
	}

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, result)
	}
	return result, nil
}

func (s *returnService) Show(ctx context.Context, id uuid.UUID) (*dto.ReturnResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ret, err := uow.ReturnRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, apperror.NewNotFoundError("Return")
	}

	return toReturnResponse(ret), nil
}

func (s *returnService) Approve(ctx context.Context, id uuid.UUID) (*dto.ReturnResponse, error) {
	return s.transition(ctx, id, lifecycle.ActionApprove)
}

func (s *returnService) Cancel(ctx context.Context, id uuid.UUID) (*dto.ReturnResponse, error) {
	return s.transition(ctx, id, lifecycle.ActionCancel)
}

func (s *returnService) Complete(ctx context.Context, id uuid.UUID) (*dto.ReturnResponse, error) {
	return s.transition(ctx, id, lifecycle.ActionComplete)
}

// transition loads the return under a row lock, applies the lifecycle
// action and persists the result, all inside one transaction. Two racing
// requests therefore serialize on the row: the second re-reads the
// committed status and fails the precondition instead of double-applying.
func (s *returnService) transition(ctx context.Context, id uuid.UUID, action lifecycle.Action) (*dto.ReturnResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	ret, err := uow.ReturnRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ForUpdate{},
	)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, apperror.NewNotFoundError("Return")
	}

	if err := s.engine.Apply(ret, action); err != nil {
		return nil, err
	}

	if err := uow.ReturnRepository().Update(ctx, ret); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	consumer, err := uow.ConsumerRepository().FindOne(ctx, specification.ByID{ID: ret.ConsumerId})
	if err != nil {
		consumer = nil
	}

	var evt events.BaseEvent
	switch action {
	case lifecycle.ActionApprove:
		evt = events.NewReturnApproved(ret.Id, ret.AuthorizationCode, string(ret.Status))
	case lifecycle.ActionCancel:
		evt = events.NewReturnCancelled(ret.Id, ret.AuthorizationCode, string(ret.Status))
	case lifecycle.ActionComplete:
		evt = events.NewReturnCompleted(ret.Id, ret.AuthorizationCode, string(ret.Status))
	}
	s.afterTransition(ctx, ret, consumer, evt)

	return toReturnResponse(ret), nil
}

// afterTransition runs the post-commit side effects: bus event, consumer
// notification and cache invalidation. All are auxiliary, so failures are
// logged by the respective component and never fail the request.
func (s *returnService) afterTransition(ctx context.Context, ret *entity.Return, consumer *entity.Consumer, evt events.BaseEvent) {
	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish %s event for return %s: %v", evt.EventType(), ret.Id, err)
		}
	}

	if s.publisherService != nil && consumer != nil {
		msg := dto.ReturnStatusChangedMessage{
			ReturnId:          ret.Id,
			AuthorizationCode: ret.AuthorizationCode,
			Status:            string(ret.Status),
			ConsumerEmail:     consumer.Email,
			ConsumerName:      consumer.FirstName + " " + consumer.LastName,
		}
		payload, err := json.Marshal(msg)
		if err == nil {
			if err := s.publisherService.Publish(ctx, payload); err != nil {
				log.Printf("[WARN] Failed to publish notification for return %s: %v", ret.Id, err)
			}
		}
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func toReturnResponse(r *entity.Return) *dto.ReturnResponse {
	items := make([]dto.ReturnItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		var condition *string
		if item.Condition != nil {
			c := string(*item.Condition)
			condition = &c
		}
		items = append(items, dto.ReturnItemResponse{
			Id:           item.Id,
			ProductName:  item.ProductName,
			ProductSku:   item.ProductSku,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			ReturnReason: string(item.ReturnReason),
			Condition:    condition,
			CreatedAt:    item.CreatedAt,
		})
	}

	return &dto.ReturnResponse{
		Id:                r.Id,
		Merchant:          r.MerchantId,
		Consumer:          r.ConsumerId,
		OrderNumber:       r.OrderNumber,
		Status:            string(r.Status),
		AuthorizationCode: r.AuthorizationCode,
		RefundAmount:      r.RefundAmount,
		Items:             items,
		InitiatedAt:       r.InitiatedAt,
		CompletedAt:       r.CompletedAt,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}
