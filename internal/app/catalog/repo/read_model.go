package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/marketfront/catalog-service/internal/app/catalog/contracts"
	"github.com/marketfront/catalog-service/internal/app/catalog/domain"
	"github.com/marketfront/catalog-service/internal/models/m_product"
	"github.com/marketfront/catalog-service/internal/models/m_review"
	"github.com/marketfront/catalog-service/internal/models/m_variant"
	"github.com/marketfront/catalog-service/internal/pkg/query"
)

// ReadModelImpl implements the catalog ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

var productColumns = []string{
	m_product.ProductID,
	m_product.Title,
	m_product.Slug,
	m_product.Description,
	m_product.VendorID,
	m_product.CategoryID,
	m_product.BasePrice,
	m_product.Currency,
	m_product.Metadata,
	m_product.CreatedAt,
	m_product.UpdatedAt,
}

var variantColumns = []string{
	m_variant.VariantID,
	m_variant.ProductID,
	m_variant.Title,
	m_variant.PriceInCents,
	m_variant.Price,
	m_variant.PriceCents,
	m_variant.InventoryQuantity,
	m_variant.CreatedAt,
}

// GetProductByID retrieves a single product with its variants.
func (rm *ReadModelImpl) GetProductByID(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	stmt := query.From(m_product.TableName).
		Select(productColumns...).
		Where(query.Eq(m_product.ProductID, productID)).
		Limit(1).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	dto := productToDTO(&data)
	if err := rm.attachVariants(ctx, []*contracts.ProductDTO{dto}); err != nil {
		return nil, err
	}
	return dto, nil
}

// QueryProducts runs a builder-driven query over the products table,
// attaches variants, and optionally counts the full filtered set.
func (rm *ReadModelImpl) QueryProducts(ctx context.Context, q *contracts.ProductQuery) (*contracts.ProductPage, error) {
	builder := query.From(m_product.TableName).
		Select(productColumns...).
		WhereAll(q.Conditions)

	if q.OrderBy != "" {
		dir := query.Asc
		if q.Desc {
			dir = query.Desc
		}
		builder = builder.OrderBy(q.OrderBy, dir)
	}
	if q.Limit > 0 {
		builder = builder.Limit(q.Limit).Offset(q.Offset)
	}

	iter := rm.client.Single().Query(ctx, builder.Build())
	defer iter.Stop()

	products := make([]*contracts.ProductDTO, 0, q.Limit)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}
		products = append(products, productToDTO(&data))
	}

	if err := rm.attachVariants(ctx, products); err != nil {
		return nil, err
	}

	total := int64(len(products))
	if q.WithCount {
		count, err := rm.countRows(ctx, builder.Count().Build())
		if err != nil {
			return nil, err
		}
		total = count
	}

	return &contracts.ProductPage{
		Products: products,
		Total:    total,
	}, nil
}

// VariantProductIDs returns the distinct parent product ids of variants
// matching the condition.
func (rm *ReadModelImpl) VariantProductIDs(ctx context.Context, cond query.Condition) ([]string, error) {
	stmt := query.From(m_variant.TableName).
		Select("DISTINCT " + m_variant.ProductID).
		Where(cond).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var ids []string
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate variant ids: %w", err)
		}

		var id string
		if err := row.Column(0, &id); err != nil {
			return nil, fmt.Errorf("failed to parse variant product id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// AverageRatings returns the mean review rating per product id. Products
// without reviews are absent from the map.
func (rm *ReadModelImpl) AverageRatings(ctx context.Context, productIDs []string) (map[string]float64, error) {
	averages := make(map[string]float64, len(productIDs))
	if len(productIDs) == 0 {
		return averages, nil
	}

	stmt := spanner.Statement{
		SQL: "SELECT product_id, AVG(rating) FROM " + m_review.TableName +
			" WHERE product_id IN UNNEST(@ids) GROUP BY product_id",
		Params: map[string]interface{}{"ids": productIDs},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate ratings: %w", err)
		}

		var productID string
		var avg float64
		if err := row.Columns(&productID, &avg); err != nil {
			return nil, fmt.Errorf("failed to parse rating row: %w", err)
		}
		averages[productID] = avg
	}
	return averages, nil
}

// attachVariants loads the variants for a set of products in one query
// and groups them onto their parents.
func (rm *ReadModelImpl) attachVariants(ctx context.Context, products []*contracts.ProductDTO) error {
	if len(products) == 0 {
		return nil
	}

	byID := make(map[string]*contracts.ProductDTO, len(products))
	ids := make([]string, 0, len(products))
	for _, p := range products {
		if p.Variants == nil {
			p.Variants = []contracts.VariantDTO{}
		}
		byID[p.ProductID] = p
		ids = append(ids, p.ProductID)
	}

	stmt := query.From(m_variant.TableName).
		Select(variantColumns...).
		Where(query.In(m_variant.ProductID, ids)).
		OrderBy(m_variant.CreatedAt, query.Asc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to iterate variants: %w", err)
		}

		var data m_variant.Data
		if err := row.ToStruct(&data); err != nil {
			return fmt.Errorf("failed to parse variant: %w", err)
		}

		parent, ok := byID[data.ProductID]
		if !ok {
			continue
		}
		parent.Variants = append(parent.Variants, contracts.VariantDTO{
			VariantID:         data.VariantID,
			Title:             data.Title,
			Price:             data.PriceValue(),
			InventoryQuantity: data.InventoryQuantity,
		})
	}
	return nil
}

func (rm *ReadModelImpl) countRows(ctx context.Context, stmt spanner.Statement) (int64, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	var count int64
	if err := row.Column(0, &count); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}
	return count, nil
}

func productToDTO(data *m_product.Data) *contracts.ProductDTO {
	dto := &contracts.ProductDTO{
		ProductID:   data.ProductID,
		Title:       data.Title,
		Slug:        data.Slug,
		Description: data.Description,
		VendorID:    data.VendorID,
		CategoryID:  data.CategoryID,
		BasePrice:   data.BasePrice,
		Currency:    data.Currency,
		Variants:    []contracts.VariantDTO{},
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Metadata.Valid {
		if m, ok := data.Metadata.Value.(map[string]interface{}); ok {
			dto.Metadata = m
		}
	}
	return dto
}
