package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var productSortFields = []string{"createdAt", "updatedAt", "price", "name", "stock"}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cache        service.ProductCache
	exporter     service.ProductExporter
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Cache        service.ProductCache
	Exporter     service.ProductExporter
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		cache:        params.Cache,
		exporter:     params.Exporter,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetPublicProducts lists active products only, oldest first by default.
func (srv *productService) GetPublicProducts(ctx context.Context, query *usecase.ProductQuery) (*usecase.ProductList, error) {
	q := *query
	q.IsActive = ptr(true)

	return srv.list(ctx, &q, repository.Sort{Field: "createdAt"})
}

// GetAdminProducts lists every product, newest first by default.
func (srv *productService) GetAdminProducts(ctx context.Context, query *usecase.ProductQuery) (*usecase.ProductList, error) {
	return srv.list(ctx, query, repository.Sort{Field: "createdAt", Desc: true})
}

func (srv *productService) list(ctx context.Context, query *usecase.ProductQuery, fallback repository.Sort) (*usecase.ProductList, error) {
	page := normalizePage(query.PageQuery, defaultPageLimit)

	filter, err := productFilter(query, fallback)
	if err != nil {
		return nil, err
	}
	filter.Page = toPagination(page)

	products, total, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductList{Products: products, Page: usecase.NewPageInfo(page, total)}, nil
}

func productFilter(query *usecase.ProductQuery, fallback repository.Sort) (repository.ProductFilter, error) {
	sort, err := resolveSort(query.SortBy, query.SortOrder, productSortFields, fallback)
	if err != nil {
		return repository.ProductFilter{}, err
	}
	if query.MinPrice != nil && query.MaxPrice != nil && *query.MinPrice > *query.MaxPrice {
		return repository.ProductFilter{}, domainerrors.NewFieldError("minPrice", "must not exceed maxPrice")
	}

	return repository.ProductFilter{
		Search:     strings.TrimSpace(query.Search),
		CategoryID: query.CategoryID,
		MinPrice:   query.MinPrice,
		MaxPrice:   query.MaxPrice,
		IsActive:   query.IsActive,
		Sort:       sort,
	}, nil
}

// GetProductDetailsByID serves active products through the cache.
func (srv *productService) GetProductDetailsByID(ctx context.Context, id string) (*entity.Product, error) {
	if cached, ok, err := srv.cache.Get(ctx, id); err != nil {
		srv.log(ctx).Warn("Product cache read failed", slog.String("productID", id), slog.Any("error", err))
	} else if ok && cached.IsActive {
		return cached, nil
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductNotFound
	}

	if err := srv.cache.Set(ctx, product); err != nil {
		srv.log(ctx).Warn("Product cache write failed", slog.String("productID", id), slog.Any("error", err))
	}

	return product, nil
}

func (srv *productService) CreateNewProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		Stock:       input.Stock,
		Images:      input.Images,
		Brand:       strings.TrimSpace(input.Brand),
		Weight:      input.Weight,
		Dimensions:  input.Dimensions,
		IsActive:    true,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	exists, err := srv.productRepo.ExistsByName(ctx, product.Name, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to check product name")
	}
	if exists {
		return nil, domainerrors.ErrProductAlreadyExists
	}

	if _, err := srv.categoryRepo.FindByID(ctx, product.CategoryID); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("productID", product.ID))

	return product, nil
}

// UpdateExistingProduct applies a partial update. The name is re-checked only when it changes.
func (srv *productService) UpdateExistingProduct(ctx context.Context, id string, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name != product.Name {
			exists, err := srv.productRepo.ExistsByName(ctx, name, id)
			if err != nil {
				return nil, errors.Wrap(err, "failed to check product name")
			}
			if exists {
				return nil, domainerrors.ErrProductAlreadyExists
			}
			product.Name = name
		}
	}
	if input.CategoryID != nil && *input.CategoryID != product.CategoryID {
		if _, err := srv.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *input.CategoryID
	}
	if input.Description != nil {
		product.Description = strings.TrimSpace(*input.Description)
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	if input.Brand != nil {
		product.Brand = strings.TrimSpace(*input.Brand)
	}
	if input.Weight != nil {
		product.Weight = *input.Weight
	}
	if input.Dimensions != nil {
		product.Dimensions = *input.Dimensions
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}
	srv.invalidate(ctx, id)

	return product, nil
}

// RemoveProduct soft-deletes the product.
func (srv *productService) RemoveProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.IsActive = false
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to deactivate product")
	}
	srv.invalidate(ctx, id)

	srv.log(ctx).Info("Product deactivated", slog.String("productID", id))

	return product, nil
}

func (srv *productService) ExportProducts(ctx context.Context, query *usecase.ProductQuery) (*usecase.ExportFile, error) {
	filter, err := productFilter(query, repository.Sort{Field: "createdAt", Desc: true})
	if err != nil {
		return nil, err
	}

	products, _, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products for export")
	}

	content, err := srv.exporter.Export(ctx, products)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export products")
	}

	return &usecase.ExportFile{
		Name:        srv.exporter.FileName(),
		ContentType: srv.exporter.ContentType(),
		Content:     content,
	}, nil
}

func (srv *productService) invalidate(ctx context.Context, id string) {
	if err := srv.cache.Invalidate(ctx, id); err != nil {
		srv.log(ctx).Warn("Product cache invalidation failed", slog.String("productID", id), slog.Any("error", err))
	}
}

func validateProduct(p *entity.Product) error {
	var fields []domainerrors.FieldError
	add := func(field, message string) {
		fields = append(fields, domainerrors.FieldError{Field: field, Code: domainerrors.ErrValidationFailed.ErrorCode(), Message: message})
	}

	if p.Name == "" {
		add("name", "is required")
	}
	if p.Price < 0 {
		add("price", "must not be negative")
	}
	if p.Stock < 0 {
		add("stock", "must not be negative")
	}
	if p.Weight < 0 {
		add("weight", "must not be negative")
	}
	if p.Dimensions.Length < 0 || p.Dimensions.Width < 0 || p.Dimensions.Height < 0 {
		add("dimensions", "must not be negative")
	}
	if len(p.Images) > entity.MaxProductImages {
		add("images", "must not contain more than 10 entries")
	}
	if !entity.IsValidID(p.CategoryID) {
		add("category", "must be a valid id")
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}
