package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db, q: query.Use(db)}
}

func (repo *cartRepository) FindByID(ctx context.Context, id string) (*entity.CartItem, error) {
	c := repo.q.CartItemModel

	return repo.findOne(ctx, c.ID.Eq(id))
}

func (repo *cartRepository) FindByUserAndProduct(ctx context.Context, userID, productID string) (*entity.CartItem, error) {
	c := repo.q.CartItemModel

	return repo.findOne(ctx, c.UserID.Eq(userID), c.ProductID.Eq(productID))
}

func (repo *cartRepository) findOne(ctx context.Context, conds ...gen.Condition) (*entity.CartItem, error) {
	itemM, err := repo.q.CartItemModel.WithContext(ctx).Where(conds...).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return toCartItemDomain(itemM), nil
}

func (repo *cartRepository) ListByUser(ctx context.Context, userID string, page repository.Pagination) ([]*entity.CartItem, int64, error) {
	return repo.list(repo.db.WithContext(ctx).Model(&model.CartItemModel{}).Where("user_id = ?", userID), page)
}

func (repo *cartRepository) ListAllByUser(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	return toCartItemDomainList(itemModels), nil
}

func (repo *cartRepository) ListAll(ctx context.Context, page repository.Pagination) ([]*entity.CartItem, int64, error) {
	return repo.list(repo.db.WithContext(ctx).Model(&model.CartItemModel{}), page)
}

func (repo *cartRepository) list(stmt *gorm.DB, page repository.Pagination) ([]*entity.CartItem, int64, error) {
	stmt = stmt.Session(&gorm.Session{})

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count cart items")
	}

	var itemModels []*model.CartItemModel
	if err := paginate(stmt.Order("created_at DESC").Order("id DESC"), page).Find(&itemModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list cart items")
	}

	return toCartItemDomainList(itemModels), total, nil
}

type cartAggregateRow struct {
	TotalCartItems       int64
	TotalActiveUsers     int64
	TotalCartValue       float64
	TotalItemsInAllCarts int64
}

func (repo *cartRepository) Aggregate(ctx context.Context) (*repository.CartAggregate, error) {
	var row cartAggregateRow
	if err := repo.db.WithContext(ctx).Model(&model.CartItemModel{}).
		Select(`COUNT(*) AS total_cart_items,
			COUNT(DISTINCT user_id) AS total_active_users,
			COALESCE(SUM(price * quantity), 0) AS total_cart_value,
			COALESCE(SUM(quantity), 0) AS total_items_in_all_carts`).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate carts")
	}

	return &repository.CartAggregate{
		TotalCartItems:       row.TotalCartItems,
		TotalActiveUsers:     row.TotalActiveUsers,
		TotalCartValue:       row.TotalCartValue,
		TotalItemsInAllCarts: row.TotalItemsInAllCarts,
	}, nil
}

// PurgeUnavailable removes the user's rows whose product is inactive or gone.
func (repo *cartRepository) PurgeUnavailable(ctx context.Context, userID string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("NOT EXISTS (SELECT 1 FROM products p WHERE p.id = cart_items.product_id AND p.is_active)").
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to purge unavailable cart items")
	}

	return result.RowsAffected, nil
}

func (repo *cartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	if item.ID == "" {
		item.ID = entity.NewID()
	}
	itemM := fromCartItemDomain(item)

	if err := repo.q.CartItemModel.WithContext(ctx).Create(itemM); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("cart already contains this product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart item")
	}

	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *cartRepository) Update(ctx context.Context, item *entity.CartItem) error {
	itemM := fromCartItemDomain(item)

	result := repo.db.WithContext(ctx).Model(itemM).
		Select("quantity", "price", "updated_at").
		Updates(itemM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart item")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCartItemNotFound
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *cartRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCartItemNotFound
	}

	return nil
}

func (repo *cartRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	result := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CartItemModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to clear cart")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	return &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Price:     data.Price,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toCartItemDomainList(data []*model.CartItemModel) []*entity.CartItem {
	items := make([]*entity.CartItem, 0, len(data))
	for _, itemM := range data {
		items = append(items, toCartItemDomain(itemM))
	}

	return items
}

func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	return &model.CartItemModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Price:     data.Price,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
