package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var productSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"price":     "price",
	"name":      "name",
	"stock":     "stock",
}

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db, q: query.Use(db)}
}

// FindByID reads from the primary so stock checks never see replica lag.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	p := repo.q.ProductModel
	productM, err := p.WithContext(ctx).WriteDB().Where(p.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(productM), nil
}

func (repo *productRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	p := repo.q.ProductModel
	productModels, err := p.WithContext(ctx).Where(p.ID.In(ids...)).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	return toProductDomainList(productModels), nil
}

func (repo *productRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	p := repo.q.ProductModel
	do := p.WithContext(ctx).WriteDB().Where(p.Name.Eq(name))
	if excludeID != "" {
		do = do.Where(p.ID.Neq(excludeID))
	}

	count, err := do.Count()
	if err != nil {
		return false, errors.Wrap(err, "failed to check product name")
	}

	return count > 0, nil
}

func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	stmt := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if filter.IsActive != nil {
		stmt = stmt.Where("is_active = ?", *filter.IsActive)
	}
	if filter.CategoryID != "" {
		stmt = stmt.Where("category_id = ?", filter.CategoryID)
	}
	if filter.MinPrice != nil {
		stmt = stmt.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		stmt = stmt.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		stmt = stmt.Where("name ILIKE ? OR description ILIKE ? OR brand ILIKE ?", pattern, pattern, pattern)
	}
	stmt = stmt.Session(&gorm.Session{})

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := paginate(orderBy(stmt, productSortColumns, filter.Sort, "created_at"), filter.Page).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	return toProductDomainList(productModels), total, nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = entity.NewID()
	}
	productM := fromProductDomain(product)

	if err := repo.q.ProductModel.WithContext(ctx).Create(productM); err != nil {
		return productWriteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).Model(productM).Select("*").Omit("id", "created_at").Updates(productM)
	if result.Error != nil {
		return productWriteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func productWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrProductAlreadyExists
	case isCheckConstraintViolation(err):
		return domainerrors.NewFieldError("", "numeric fields must not be negative")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	images := data.Images
	if images == nil {
		images = []string{}
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		CategoryID:  data.CategoryID,
		Stock:       data.Stock,
		Images:      images,
		Brand:       data.Brand,
		Weight:      data.Weight,
		Dimensions: entity.Dimensions{
			Length: data.Dimensions.Length,
			Width:  data.Dimensions.Width,
			Height: data.Dimensions.Height,
		},
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toProductDomainList(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		CategoryID:  data.CategoryID,
		Stock:       data.Stock,
		Images:      data.Images,
		Brand:       data.Brand,
		Weight:      data.Weight,
		Dimensions: model.DimensionsModel{
			Length: data.Dimensions.Length,
			Width:  data.Dimensions.Width,
			Height: data.Dimensions.Height,
		},
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
