package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"returnhub-be/internal/dto"
	"returnhub-be/internal/lifecycle"
	"returnhub-be/internal/pkg/apperror"
	"returnhub-be/internal/repository/unitofwork"
	"returnhub-be/internal/service"
	"returnhub-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServices(t *testing.T) (service.IMerchantService, service.IConsumerService, service.IReturnService) {
	t.Helper()

	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	merchantService := service.NewMerchantService(uowFactory)
	consumerService := service.NewConsumerService(uowFactory)
	returnService := service.NewReturnService(uowFactory, lifecycle.NewEngine(), nil, nil, nil)

	return merchantService, consumerService, returnService
}

// Full pass through the happy-path lifecycle plus the two canonical
// rejection cases, against a real Postgres.
func TestReturnsFlow(t *testing.T) {
	merchantService, consumerService, returnService := setupServices(t)
	ctx := context.Background()

	suffix := uuid.New().String()[:8]

	merchant, err := merchantService.Create(ctx, &dto.CreateMerchantRequest{
		Name:  "Test Store",
		Email: "store-" + suffix + "@example.com",
	})
	require.NoError(t, err)

	consumer, err := consumerService.Create(ctx, &dto.CreateConsumerRequest{
		Email:     "john-" + suffix + "@example.com",
		FirstName: "John",
		LastName:  "Doe",
	})
	require.NoError(t, err)

	ret, err := returnService.Create(ctx, &dto.CreateReturnRequest{
		Merchant:          merchant.Id,
		Consumer:          consumer.Id,
		OrderNumber:       "ORD-12345",
		AuthorizationCode: "RET-" + suffix,
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
	})
	require.NoError(t, err)
	assert.Equal(t, "INITIATED", ret.Status)
	require.Len(t, ret.Items, 1)
	assert.Equal(t, 2, ret.Items[0].Quantity)

	t.Run("approve then cancel", func(t *testing.T) {
		res, err := returnService.Approve(ctx, ret.Id)
		require.NoError(t, err)
		assert.Equal(t, "AUTHORIZED", res.Status)

		res, err = returnService.Cancel(ctx, ret.Id)
		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", res.Status)

		_, err = returnService.Complete(ctx, ret.Id)
		require.Error(t, err)
		var invalid *apperror.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "Can only complete returns in PROCESSING status", invalid.Message)
	})

	t.Run("fetch reflects final state", func(t *testing.T) {
		res, err := returnService.Show(ctx, ret.Id)
		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", res.Status)
		assert.Nil(t, res.CompletedAt)
	})

	t.Run("list filtered by merchant", func(t *testing.T) {
		list, err := returnService.GetAll(ctx, &dto.ListReturnsFilter{Merchant: &merchant.Id})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, ret.Id, list[0].Id)
	})
}
