package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/Pesokrava/product_catalog/internal/config"
	"github.com/Pesokrava/product_catalog/internal/domain"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
	"github.com/Pesokrava/product_catalog/internal/repository/memory"
	cartUsecase "github.com/Pesokrava/product_catalog/internal/usecase/cart"
	"github.com/Pesokrava/product_catalog/internal/usecase/catalog"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	appLogger.Info("Starting catalog demo...")

	bus := domain.NewEventBus()
	bus.Subscribe(func(event domain.Event) {
		appLogger.WithFields(map[string]interface{}{
			"event": event.EventName(),
			"at":    event.OccurredAt(),
		}).Debug("Domain event")
	})

	repo := memory.NewProductRepository()
	factory := domain.NewFactory(bus, cfg.Catalog.DefaultCurrency)
	catalogSvc := catalog.NewService(repo, factory, appLogger)
	cartSvc := cartUsecase.NewService(repo, cfg.Catalog.MaxCartLines, appLogger)

	pricer, err := domain.NewPricer(cfg.Pricing.GeneralTaxRate, cfg.Pricing.DigitalTaxRate)
	if err != nil {
		appLogger.Fatal("Failed to build pricer", err)
	}

	ctx := context.Background()

	mug, err := catalogSvc.Create(ctx, catalog.CreateProductInput{
		Kind:        domain.VariantStandard,
		Name:        "Ceramic Mug",
		Description: "Hand-glazed ceramic mug, 350ml",
		Price:       10.00,
		Stock:       25,
		CategoryID:  "kitchen",
		Tags:        []string{"Ceramic", "ceramic", " Gift "},
		Featured:    true,
	})
	if err != nil {
		appLogger.Fatal("Failed to create standard product", err)
	}

	course, err := catalogSvc.Create(ctx, catalog.CreateProductInput{
		Kind:        domain.VariantDigital,
		Name:        "Sourdough Baking Course",
		Description: "Six hours of video lessons",
		Price:       19.99,
		Stock:       domain.UnlimitedStock,
		CategoryID:  "courses",
		Format:      domain.FormatVideo,
		SizeMB:      2048,
		DownloadURL: "https://cdn.example.com/courses/sourdough",
	})
	if err != nil {
		appLogger.Fatal("Failed to create digital product", err)
	}

	tea, err := catalogSvc.Create(ctx, catalog.CreateProductInput{
		Kind:        domain.VariantNatural,
		Name:        "Chamomile Tea",
		Description: "Loose-leaf chamomile blossoms",
		Price:       5.00,
		Stock:       40,
		CategoryID:  "wellness",
		Discount:    50,
		Nature:      domain.NatureHerbal,
		Ingredients: []string{"chamomile"},
		Benefits:    []string{"relaxation"},
	})
	if err != nil {
		appLogger.Fatal("Failed to create natural product", err)
	}

	const session = "demo-session"
	if err := cartSvc.AddProduct(ctx, session, mug.ID(), 2); err != nil {
		appLogger.Fatal("Failed to add to cart", err)
	}
	if err := cartSvc.AddProduct(ctx, session, tea.ID(), 1); err != nil {
		appLogger.Fatal("Failed to add to cart", err)
	}

	total, err := cartSvc.Total(session)
	if err != nil {
		appLogger.Fatal("Failed to total cart", err)
	}
	appLogger.WithFields(map[string]interface{}{
		"total": total.StringFixed(),
		"lines": cartSvc.Get(session).TotalQuantity(),
	}).Info("Cart totalled")

	quote, err := pricer.Quote(course)
	if err != nil {
		appLogger.Fatal("Failed to quote product", err)
	}
	appLogger.WithFields(map[string]interface{}{
		"product_id": course.ID().String(),
		"quote":      quote.String(),
	}).Info("Tax-inclusive quote")

	if err := catalogSvc.ReduceStock(ctx, mug.ID(), 2); err != nil {
		appLogger.Fatal("Failed to reduce stock", err)
	}

	appLogger.Info("Catalog demo finished")
}
