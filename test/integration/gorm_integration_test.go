package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"returnhub-be/internal/repository/unitofwork"
	"returnhub-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
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

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.MerchantRepository())
	assert.NotNil(t, uow.ConsumerRepository())
	assert.NotNil(t, uow.ReturnRepository())
	assert.NotNil(t, uow.ReturnItemRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Merchant Repository", func(t *testing.T) {
		count, err := uow.MerchantRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Merchant count: %d", count)
	})

	t.Run("Check Return Repository", func(t *testing.T) {
		count, err := uow.ReturnRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Return count: %d", count)
	})
}
