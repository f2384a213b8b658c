package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	"github.com/marketfront/catalog-service/config"
	"github.com/marketfront/catalog-service/internal/app/catalog/queries/get_product"
	"github.com/marketfront/catalog-service/internal/app/catalog/queries/get_products"
	"github.com/marketfront/catalog-service/internal/app/catalog/repo"
	httphandler "github.com/marketfront/catalog-service/internal/transport/http"
)

// Options holds all dependencies for the application.
type Options struct {
	SpannerClient  *spanner.Client
	CatalogHandler *httphandler.Handler
}

// NewOptions creates and wires up all application dependencies.
func NewOptions(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Options, error) {
	spannerClient, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	readModel := repo.NewReadModel(spannerClient)

	listQuery := get_products.NewQuery(readModel, logger)
	detailQuery := get_product.NewQuery(readModel)

	handler := httphandler.NewHandler(listQuery, detailQuery, cfg.Catalog.MaxPerPage)

	return &Options{
		SpannerClient:  spannerClient,
		CatalogHandler: handler,
	}, nil
}

// Close closes all resources.
func (o *Options) Close() {
	if o.SpannerClient != nil {
		o.SpannerClient.Close()
	}
}
