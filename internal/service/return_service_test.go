package service

import (
	"context"
	"testing"
	"time"

	"returnhub-be/internal/dto"
	"returnhub-be/internal/entity"
	"returnhub-be/internal/lifecycle"
	"returnhub-be/internal/pkg/apperror"
	"returnhub-be/internal/repository/contract"
	"returnhub-be/internal/repository/specification"
	"returnhub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes. FindOne/FindAll interpret the same specification types
// the GORM repositories receive, so the service under test is wired
// exactly as in production.

type fakeState struct {
	merchants map[uuid.UUID]*entity.Merchant
	consumers map[uuid.UUID]*entity.Consumer
	returns   map[uuid.UUID]*entity.Return

	begun      int
	committed  int
	rolledBack int
	inTx       bool

	// staged return writes, applied on Commit
	pending []entity.Return
}

func newFakeState() *fakeState {
	return &fakeState{
		merchants: make(map[uuid.UUID]*entity.Merchant),
		consumers: make(map[uuid.UUID]*entity.Consumer),
		returns:   make(map[uuid.UUID]*entity.Return),
	}
}

func (s *fakeState) addMerchant(name, email string) *entity.Merchant {
	m := &entity.Merchant{
		Id:        uuid.New(),
		Name:      name,
		Email:     email,
		ApiKey:    "rhk_test",
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	s.merchants[m.Id] = m
	return m
}

func (s *fakeState) addConsumer(email, first, last string) *entity.Consumer {
	c := &entity.Consumer{
		Id:        uuid.New(),
		Email:     email,
		FirstName: first,
		LastName:  last,
		CreatedAt: time.Now().UTC(),
	}
	s.consumers[c.Id] = c
	return c
}

type fakeUow struct {
	state *fakeState
}

func (u *fakeUow) Begin(ctx context.Context) error {
	u.state.begun++
	u.state.inTx = true
	return nil
}

func (u *fakeUow) Commit() error {
	u.state.committed++
	u.state.inTx = false
	for i := range u.state.pending {
		r := u.state.pending[i]
		u.state.returns[r.Id] = &r
	}
	u.state.pending = nil
	return nil
}

func (u *fakeUow) Rollback() error {
	if !u.state.inTx {
		return nil
	}
	u.state.rolledBack++
	u.state.inTx = false
	u.state.pending = nil
	return nil
}

func (u *fakeUow) MerchantRepository() contract.MerchantRepository {
	return &fakeMerchantRepo{state: u.state}
}

func (u *fakeUow) ConsumerRepository() contract.ConsumerRepository {
	return &fakeConsumerRepo{state: u.state}
}

func (u *fakeUow) ReturnRepository() contract.ReturnRepository {
	return &fakeReturnRepo{state: u.state}
}

func (u *fakeUow) ReturnItemRepository() contract.ReturnItemRepository {
	return &fakeReturnItemRepo{state: u.state}
}

type fakeFactory struct {
	state *fakeState
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{state: f.state}
}

type fakeMerchantRepo struct{ state *fakeState }

func (r *fakeMerchantRepo) Create(ctx context.Context, merchant *entity.Merchant) error {
	r.state.merchants[merchant.Id] = merchant
	return nil
}

func (r *fakeMerchantRepo) Update(ctx context.Context, merchant *entity.Merchant) error {
	r.state.merchants[merchant.Id] = merchant
	return nil
}

func (r *fakeMerchantRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Merchant, error) {
	for _, m := range r.state.merchants {
		if matchMerchant(m, specs) {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeMerchantRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Merchant, error) {
	var result []*entity.Merchant
	for _, m := range r.state.merchants {
		if matchMerchant(m, specs) {
			copied := *m
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeMerchantRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchMerchant(m *entity.Merchant, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if m.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if m.Email != s.Email {
				return false
			}
		}
	}
	return true
}

type fakeConsumerRepo struct{ state *fakeState }

func (r *fakeConsumerRepo) Create(ctx context.Context, consumer *entity.Consumer) error {
	r.state.consumers[consumer.Id] = consumer
	return nil
}

func (r *fakeConsumerRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Consumer, error) {
	for _, c := range r.state.consumers {
		if matchConsumer(c, specs) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeConsumerRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Consumer, error) {
	var result []*entity.Consumer
	for _, c := range r.state.consumers {
		if matchConsumer(c, specs) {
			copied := *c
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeConsumerRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchConsumer(c *entity.Consumer, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if c.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if c.Email != s.Email {
				return false
			}
		}
	}
	return true
}

type fakeReturnRepo struct{ state *fakeState }

func (r *fakeReturnRepo) Create(ctx context.Context, ret *entity.Return) error {
	if r.state.inTx {
		r.state.pending = append(r.state.pending, *ret)
		return nil
	}
	copied := *ret
	r.state.returns[ret.Id] = &copied
	return nil
}

func (r *fakeReturnRepo) Update(ctx context.Context, ret *entity.Return) error {
	if r.state.inTx {
		r.state.pending = append(r.state.pending, *ret)
		return nil
	}
	copied := *ret
	r.state.returns[ret.Id] = &copied
	return nil
}

func (r *fakeReturnRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Return, error) {
	for _, ret := range r.state.returns {
		if matchReturn(ret, specs) {
			copied := *ret
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeReturnRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Return, error) {
	var result []*entity.Return
	for _, ret := range r.state.returns {
		if matchReturn(ret, specs) {
			copied := *ret
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeReturnRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchReturn(ret *entity.Return, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if ret.Id != s.ID {
				return false
			}
		case specification.ByAuthorizationCode:
			if ret.AuthorizationCode != s.Code {
				return false
			}
		case specification.ByStatus:
			if string(ret.Status) != s.Status {
				return false
			}
		case specification.ByMerchantID:
			if ret.MerchantId != s.MerchantID {
				return false
			}
		}
	}
	return true
}

type fakeReturnItemRepo struct{ state *fakeState }

func (r *fakeReturnItemRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReturnItem, error) {
	return nil, nil
}

func (r *fakeReturnItemRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

// Helpers

func newTestService(state *fakeState) IReturnService {
	return NewReturnService(&fakeFactory{state: state}, lifecycle.NewEngine(), nil, nil, nil)
}

func validCreateRequest(merchantId, consumerId uuid.UUID) *dto.CreateReturnRequest {
	return &dto.CreateReturnRequest{
		Merchant:          merchantId,
		Consumer:          consumerId,
		OrderNumber:       "ORD-12345",
		AuthorizationCode: "RET-ABC123",
		RefundAmount:      decimal.RequireFromString("99.99"),
		Items: []dto.CreateReturnItemRequest{
			{
				ProductName:  "Blue Widget",
				ProductSku:   "BW-1",
				Quantity:     2,
				UnitPrice:    decimal.RequireFromString("49.99"),
				ReturnReason: "UNWANTED",
			},
		},
	}
}

// Tests

func TestReturnServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates return with items in one transaction", func(t *testing.T) {
		state := newFakeState()
		merchant := state.addMerchant("Test Store", "test@store.example")
		consumer := state.addConsumer("john@example.com", "John", "Doe")
		svc := newTestService(state)

		res, err := svc.Create(ctx, validCreateRequest(merchant.Id, consumer.Id))
		require.NoError(t, err)

		assert.Equal(t, "INITIATED", res.Status)
		assert.Equal(t, "ORD-12345", res.OrderNumber)
		assert.Equal(t, "RET-ABC123", res.AuthorizationCode)
		assert.True(t, decimal.RequireFromString("99.99").Equal(res.RefundAmount))
		require.Len(t, res.Items, 1)
		assert.Equal(t, 2, res.Items[0].Quantity)
		assert.Equal(t, "UNWANTED", res.Items[0].ReturnReason)
		assert.False(t, res.InitiatedAt.IsZero())
		assert.Nil(t, res.CompletedAt)

		assert.Equal(t, 1, state.begun)
		assert.Equal(t, 1, state.committed)
		assert.Equal(t, 0, state.rolledBack)

		stored := state.returns[res.Id]
		require.NotNil(t, stored)
		assert.Equal(t, entity.StatusInitiated, stored.Status)
	})

	t.Run("accepts multiple items", func(t *testing.T) {
		state := newFakeState()
		merchant := state.addMerchant("Test Store", "test@store.example")
		consumer := state.addConsumer("john@example.com", "John", "Doe")
		svc := newTestService(state)

		req := validCreateRequest(merchant.Id, consumer.Id)
		condition := "DAMAGED"
		req.Items = append(req.Items, dto.CreateReturnItemRequest{
			ProductName:  "Red Widget",
			ProductSku:   "RW-1",
			Quantity:     1,
			UnitPrice:    decimal.RequireFromString("10.00"),
			ReturnReason: "DEFECTIVE",
			Condition:    &condition,
		})

		res, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.Len(t, res.Items, 2)
	})

	t.Run("rejects unknown merchant", func(t *testing.T) {
		state := newFakeState()
		consumer := state.addConsumer("john@example.com", "John", "Doe")
		svc := newTestService(state)

		_, err := svc.Create(ctx, validCreateRequest(uuid.New(), consumer.Id))
		require.Error(t, err)
		var validation *apperror.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Contains(t, validation.Fields, "merchant")
		assert.Equal(t, 0, state.committed, "nothing must be written")
	})

	t.Run("rejects unknown consumer", func(t *testing.T) {
		state := newFakeState()
		merchant := state.addMerchant("Test Store", "test@store.example")
		svc := newTestService(state)

		_, err := svc.Create(ctx, validCreateRequest(merchant.Id, uuid.New()))
		require.Error(t, err)
		var validation *apperror.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Contains(t, validation.Fields, "consumer")
	})

	t.Run("rejects duplicate authorization code", func(t *testing.T) {
		state := newFakeState()
		merchant := state.addMerchant("Test Store", "test@store.example")
		consumer := state.addConsumer("john@example.com", "John", "Doe")
		svc := newTestService(state)

		_, err := svc.Create(ctx, validCreateRequest(merchant.Id, consumer.Id))
		require.NoError(t, err)

		req := validCreateRequest(merchant.Id, consumer.Id)
		req.OrderNumber = "ORD-67890"
		_, err = svc.Create(ctx, req)
		require.Error(t, err)
		var validation *apperror.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Contains(t, validation.Fields, "authorization_code")
	})

	t.Run("rejects negative refund amount", func(t *testing.T) {
		state := newFakeState()
		merchant := state.addMerchant("Test Store", "test@store.example")
		consumer := state.addConsumer("john@example.com", "John", "Doe")
		svc := newTestService(state)

		req := validCreateRequest(merchant.Id, consumer.Id)
		req.RefundAmount = decimal.RequireFromString("-50.00")
		_, err := svc.Create(ctx, req)
		require.Error(t, err)
		var validation *apperror.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Contains(t, validation.Fields, "refund_amount")
		assert.Equal(t, 0, state.committed, "nothing must be written")
		assert.Empty(t, state.returns)
	})

	t.Run("rejects refund amount with more than 2 decimal places", func(t *testing.T) {
		state := newFakeState()
		merchant := state.addMerchant("Test Store", "test@store.example")
		consumer := state.addConsumer("john@example.com", "John", "Doe")
		svc := newTestService(state)

		req := validCreateRequest(merchant.Id, consumer.Id)
		req.RefundAmount = decimal.RequireFromString("99.999")
		_, err := svc.Create(ctx, req)
		require.Error(t, err)
		var validation *apperror.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Contains(t, validation.Fields, "refund_amount")
	})

	t.Run("rejects negative or over-precise unit price", func(t *testing.T) {
		state := newFakeState()
		merchant := state.addMerchant("Test Store", "test@store.example")
		consumer := state.addConsumer("john@example.com", "John", "Doe")
		svc := newTestService(state)

		req := validCreateRequest(merchant.Id, consumer.Id)
		req.Items[0].UnitPrice = decimal.RequireFromString("-1.00")
		_, err := svc.Create(ctx, req)
		require.Error(t, err)
		var validation *apperror.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Contains(t, validation.Fields, "items[0].unit_price")

		req = validCreateRequest(merchant.Id, consumer.Id)
		req.Items[0].UnitPrice = decimal.RequireFromString("49.999")
		_, err = svc.Create(ctx, req)
		require.Error(t, err)
		require.ErrorAs(t, err, &validation)
		assert.Contains(t, validation.Fields, "items[0].unit_price")
	})

	t.Run("accepts whole-number amounts", func(t *testing.T) {
		state := newFakeState()
		merchant := state.addMerchant("Test Store", "test@store.example")
		consumer := state.addConsumer("john@example.com", "John", "Doe")
		svc := newTestService(state)

		req := validCreateRequest(merchant.Id, consumer.Id)
		req.RefundAmount = decimal.RequireFromString("100")
		req.Items[0].UnitPrice = decimal.RequireFromString("50")
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	})

	t.Run("rejects invalid return reason", func(t *testing.T) {
		state := newFakeState()
		merchant := state.addMerchant("Test Store", "test@store.example")
		consumer := state.addConsumer("john@example.com", "John", "Doe")
		svc := newTestService(state)

		req := validCreateRequest(merchant.Id, consumer.Id)
		req.Items[0].ReturnReason = "CHANGED_MY_MIND"
		_, err := svc.Create(ctx, req)
		require.Error(t, err)
		var validation *apperror.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Contains(t, validation.Fields, "items[0].return_reason")
	})
}

func TestReturnServiceLifecycle(t *testing.T) {
	ctx := context.Background()

	create := func(t *testing.T, state *fakeState, svc IReturnService) uuid.UUID {
		merchant := state.addMerchant("Test Store", "test@store.example")
		consumer := state.addConsumer("john@example.com", "John", "Doe")
		res, err := svc.Create(ctx, validCreateRequest(merchant.Id, consumer.Id))
		require.NoError(t, err)
		return res.Id
	}

	t.Run("approve then cancel", func(t *testing.T) {
		state := newFakeState()
		svc := newTestService(state)
		id := create(t, state, svc)

		res, err := svc.Approve(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "AUTHORIZED", res.Status)

		res, err = svc.Cancel(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", res.Status)
		assert.Nil(t, res.CompletedAt)

		_, err = svc.Complete(ctx, id)
		require.Error(t, err)
		var invalid *apperror.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "Can only complete returns in PROCESSING status", invalid.Message)
	})

	t.Run("approve twice fails with exact message", func(t *testing.T) {
		state := newFakeState()
		svc := newTestService(state)
		id := create(t, state, svc)

		_, err := svc.Approve(ctx, id)
		require.NoError(t, err)

		_, err = svc.Approve(ctx, id)
		require.Error(t, err)
		var invalid *apperror.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "Can only approve returns in INITIATED status", invalid.Message)

		assert.Equal(t, entity.StatusAuthorized, state.returns[id].Status)
	})

	t.Run("complete from PROCESSING stamps completed_at", func(t *testing.T) {
		state := newFakeState()
		svc := newTestService(state)
		id := create(t, state, svc)

		// Warehouse steps happen outside the API; simulate them.
		state.returns[id].Status = entity.StatusProcessing

		res, err := svc.Complete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "COMPLETED", res.Status)
		require.NotNil(t, res.CompletedAt)

		_, err = svc.Cancel(ctx, id)
		require.Error(t, err)
		var invalid *apperror.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "Cannot cancel completed or already cancelled returns", invalid.Message)
	})

	t.Run("cancel cancelled fails", func(t *testing.T) {
		state := newFakeState()
		svc := newTestService(state)
		id := create(t, state, svc)

		_, err := svc.Cancel(ctx, id)
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, id)
		require.Error(t, err)
		var invalid *apperror.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "Cannot cancel completed or already cancelled returns", invalid.Message)
	})

	t.Run("action on missing return is not found", func(t *testing.T) {
		state := newFakeState()
		svc := newTestService(state)

		_, err := svc.Approve(ctx, uuid.New())
		require.Error(t, err)
		var notFound *apperror.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}

func TestReturnServiceGetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by status and merchant", func(t *testing.T) {
		state := newFakeState()
		svc := newTestService(state)
		merchantA := state.addMerchant("Store A", "a@store.example")
		merchantB := state.addMerchant("Store B", "b@store.example")
		consumer := state.addConsumer("john@example.com", "John", "Doe")

		reqA := validCreateRequest(merchantA.Id, consumer.Id)
		resA, err := svc.Create(ctx, reqA)
		require.NoError(t, err)

		reqB := validCreateRequest(merchantB.Id, consumer.Id)
		reqB.AuthorizationCode = "RET-DEF456"
		reqB.OrderNumber = "ORD-67890"
		_, err = svc.Create(ctx, reqB)
		require.NoError(t, err)

		_, err = svc.Approve(ctx, resA.Id)
		require.NoError(t, err)

		all, err := svc.GetAll(ctx, &dto.ListReturnsFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)

		authorized, err := svc.GetAll(ctx, &dto.ListReturnsFilter{Status: "AUTHORIZED"})
		require.NoError(t, err)
		require.Len(t, authorized, 1)
		assert.Equal(t, resA.Id, authorized[0].Id)

		byMerchant, err := svc.GetAll(ctx, &dto.ListReturnsFilter{Merchant: &merchantB.Id})
		require.NoError(t, err)
		require.Len(t, byMerchant, 1)
		assert.Equal(t, "RET-DEF456", byMerchant[0].AuthorizationCode)
	})

	t.Run("rejects invalid status filter", func(t *testing.T) {
		state := newFakeState()
		svc := newTestService(state)

		_, err := svc.GetAll(ctx, &dto.ListReturnsFilter{Status: "SHIPPED"})
		require.Error(t, err)
		var validation *apperror.ValidationError
		require.ErrorAs(t, err, &validation)
	})
}
