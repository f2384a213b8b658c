// Command seed loads a small demo catalog into the configured Spanner
// database. Intended for the emulator and local development.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/marketfront/catalog-service/internal/models/m_product"
	"github.com/marketfront/catalog-service/internal/models/m_review"
	"github.com/marketfront/catalog-service/internal/models/m_variant"
	"github.com/marketfront/catalog-service/internal/pkg/clock"
	"github.com/marketfront/catalog-service/internal/pkg/committer"
)

var databasePath = flag.String("database",
	getEnvOrDefault("SPANNER_DATABASE",
		"projects/test-project/instances/dev-instance/databases/marketplace-catalog-db"),
	"Full Spanner database path")

func main() {
	flag.Parse()

	ctx := context.Background()

	if emulatorHost := os.Getenv("SPANNER_EMULATOR_HOST"); emulatorHost != "" {
		log.Printf("Using Spanner emulator at %s", emulatorHost)
	}

	client, err := spanner.NewClient(ctx, *databasePath)
	if err != nil {
		log.Fatalf("Failed to create Spanner client: %v", err)
	}
	defer client.Close()

	if err := seed(ctx, client); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding completed successfully")
}

type seedVariant struct {
	title string
	// alias selects which legacy price column receives the amount:
	// "cents", "units" or "price_cents".
	alias     string
	amount    float64
	inventory int64
}

type seedReview struct {
	rating  int64
	comment string
}

type seedProduct struct {
	title       string
	slug        string
	description string
	vendorID    string
	categoryID  string
	basePrice   float64
	category    string
	variants    []seedVariant
	reviews     []seedReview
}

func seed(ctx context.Context, client *spanner.Client) error {
	now := clock.NewRealClock().Now().UTC()

	products := []seedProduct{
		{
			title:       "Aurora Desk Lamp",
			slug:        "aurora-desk-lamp",
			description: "Dimmable LED desk lamp with a walnut base.",
			vendorID:    "vendor-north",
			categoryID:  "1",
			basePrice:   4999, // cents
			category:    "lighting",
			variants: []seedVariant{
				{title: "Warm White", alias: "cents", amount: 4999, inventory: 12},
				{title: "Cool White", alias: "cents", amount: 5299, inventory: 7},
			},
			reviews: []seedReview{
				{rating: 5, comment: "Great light, sturdy base."},
				{rating: 4, comment: "A bit heavy but looks fantastic."},
			},
		},
		{
			title:       "Granite Pour-Over Kettle",
			slug:        "granite-pour-over-kettle",
			description: "Gooseneck kettle with thermometer lid, 1L.",
			vendorID:    "vendor-north",
			categoryID:  "2",
			basePrice:   39.5, // currency units, older writer
			category:    "kitchen",
			variants: []seedVariant{
				{title: "Matte Black", alias: "units", amount: 39.5, inventory: 30},
				{title: "Brushed Steel", alias: "price_cents", amount: 4250, inventory: 18},
			},
			reviews: []seedReview{
				{rating: 5, comment: "Perfect pour control."},
			},
		},
		{
			title:       "Tidewater Canvas Tote",
			slug:        "tidewater-canvas-tote",
			description: "Waxed canvas tote with leather straps.",
			vendorID:    "vendor-coast",
			categoryID:  "3",
			basePrice:   6800,
			category:    "bags",
			variants: []seedVariant{
				{title: "Olive", alias: "cents", amount: 6800, inventory: 9},
				{title: "Navy", alias: "cents", amount: 6800, inventory: 4},
			},
		},
		{
			title:       "Drift Notebook Set",
			slug:        "drift-notebook-set",
			description: "Three dot-grid notebooks, recycled paper.",
			vendorID:    "vendor-coast",
			categoryID:  "4",
			basePrice:   12.0,
			category:    "stationery",
			reviews: []seedReview{
				{rating: 3, comment: "Paper is thinner than expected."},
				{rating: 4, comment: "Nice binding."},
			},
		},
	}

	productModel := m_product.NewModel()
	variantModel := m_variant.NewModel()
	reviewModel := m_review.NewModel()

	plan := committer.NewPlan()

	for i, p := range products {
		productID := uuid.New().String()
		// Stagger creation times so newest/oldest sorting is observable.
		createdAt := now.Add(-time.Duration(len(products)-i) * time.Hour)

		plan.Add(productModel.InsertMut(&m_product.Data{
			ProductID:   productID,
			Title:       p.title,
			Slug:        p.slug,
			Description: p.description,
			VendorID:    p.vendorID,
			CategoryID:  p.categoryID,
			BasePrice:   p.basePrice,
			Currency:    "USD",
			Metadata: spanner.NullJSON{
				Valid: true,
				Value: map[string]interface{}{"category": p.category},
			},
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}))

		for _, v := range p.variants {
			data := &m_variant.Data{
				VariantID:         uuid.New().String(),
				ProductID:         productID,
				Title:             v.title,
				InventoryQuantity: v.inventory,
				CreatedAt:         createdAt,
			}
			switch v.alias {
			case "units":
				data.Price = spanner.NullFloat64{Valid: true, Float64: v.amount}
			case "price_cents":
				data.PriceCents = spanner.NullFloat64{Valid: true, Float64: v.amount}
			default:
				data.PriceInCents = spanner.NullFloat64{Valid: true, Float64: v.amount}
			}
			plan.Add(variantModel.InsertMut(data))
		}

		for j, r := range p.reviews {
			plan.Add(reviewModel.InsertMut(&m_review.Data{
				ReviewID:  uuid.New().String(),
				ProductID: productID,
				Rating:    r.rating,
				Comment:   r.comment,
				CreatedAt: createdAt.Add(time.Duration(j+1) * time.Minute),
			}))
		}
	}

	if err := committer.NewCommitter(client).Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to apply seed plan: %w", err)
	}

	log.Printf("Inserted %d mutations across %d products", plan.Count(), len(products))
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
