package main

import (
	"context"
	"log"
	"os"

	"returnhub-be/internal/dto"
	"returnhub-be/internal/lifecycle"
	"returnhub-be/internal/repository/unitofwork"
	"returnhub-be/internal/service"
	"returnhub-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Seeds a demo merchant, consumer and one return so the API has data to
// play with right after a fresh migration.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(db)

	merchantService := service.NewMerchantService(uowFactory)
	consumerService := service.NewConsumerService(uowFactory)
	returnService := service.NewReturnService(uowFactory, lifecycle.NewEngine(), nil, nil, nil)

	merchant, err := merchantService.Create(ctx, &dto.CreateMerchantRequest{
		Name:  "Demo Store",
		Email: "demo@store.example",
	})
	if err != nil {
		log.Fatalf("Error: Failed to seed merchant: %v", err)
	}
	log.Printf("Seeded merchant %s", merchant.Id)

	consumer, err := consumerService.Create(ctx, &dto.CreateConsumerRequest{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Smith",
	})
	if err != nil {
		log.Fatalf("Error: Failed to seed consumer: %v", err)
	}
	log.Printf("Seeded consumer %s", consumer.Id)

	condition := "LIKE_NEW"
	ret, err := returnService.Create(ctx, &dto.CreateReturnRequest{
		Merchant:          merchant.Id,
		Consumer:          consumer.Id,
		OrderNumber:       "ORD-0001",
		AuthorizationCode: "RET-SEED01",
		RefundAmount:      decimal.NewFromFloat(49.99),
		Items: []dto.CreateReturnItemRequest{
			{
				ProductName:  "Wireless Headphones",
				ProductSku:   "WH-100",
				Quantity:     1,
				UnitPrice:    decimal.NewFromFloat(49.99),
				ReturnReason: "UNWANTED",
				Condition:    &condition,
			},
		},
	})
	if err != nil {
		log.Fatalf("Error: Failed to seed return: %v", err)
	}
	log.Printf("Seeded return %s (%s)", ret.Id, ret.Status)

	log.Println("Seeding completed successfully.")
}
