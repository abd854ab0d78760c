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

var categorySortColumns = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db, q: query.Use(db)}
}

func (repo *categoryRepository) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	return repo.findOne(ctx, repo.q.CategoryModel.ID.Eq(id))
}

func (repo *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return repo.findOne(ctx, repo.q.CategoryModel.Slug.Eq(slug))
}

func (repo *categoryRepository) findOne(ctx context.Context, cond gen.Condition) (*entity.Category, error) {
	categoryM, err := repo.q.CategoryModel.WithContext(ctx).Where(cond).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryDomain(categoryM), nil
}

func (repo *categoryRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	return repo.exists(ctx, repo.q.CategoryModel.Name.Eq(name), excludeID)
}

func (repo *categoryRepository) ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error) {
	return repo.exists(ctx, repo.q.CategoryModel.Slug.Eq(slug), excludeID)
}

func (repo *categoryRepository) exists(ctx context.Context, cond gen.Condition, excludeID string) (bool, error) {
	c := repo.q.CategoryModel
	do := c.WithContext(ctx).WriteDB().Where(cond)
	if excludeID != "" {
		do = do.Where(c.ID.Neq(excludeID))
	}

	count, err := do.Count()
	if err != nil {
		return false, errors.Wrap(err, "failed to check category uniqueness")
	}

	return count > 0, nil
}

func (repo *categoryRepository) FindActiveChildren(ctx context.Context, parentID string) ([]*entity.Category, error) {
	c := repo.q.CategoryModel
	categoryModels, err := c.WithContext(ctx).WriteDB().
		Where(c.ParentID.Eq(parentID), c.IsActive.Is(true)).
		Order(c.Name).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find child categories")
	}

	return toCategoryDomainList(categoryModels), nil
}

func (repo *categoryRepository) List(ctx context.Context, filter repository.CategoryFilter) ([]*entity.Category, int64, error) {
	stmt := repo.db.WithContext(ctx).Model(&model.CategoryModel{})
	if filter.IsActive != nil {
		stmt = stmt.Where("is_active = ?", *filter.IsActive)
	}
	switch {
	case filter.RootOnly:
		stmt = stmt.Where("parent_id IS NULL")
	case filter.ParentID != "":
		stmt = stmt.Where("parent_id = ?", filter.ParentID)
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		stmt = stmt.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	stmt = stmt.Session(&gorm.Session{})

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count categories")
	}

	var categoryModels []*model.CategoryModel
	if err := paginate(orderBy(stmt, categorySortColumns, filter.Sort, "created_at"), filter.Page).
		Find(&categoryModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list categories")
	}

	return toCategoryDomainList(categoryModels), total, nil
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == "" {
		category.ID = entity.NewID()
	}
	categoryM := fromCategoryDomain(category)

	if err := repo.q.CategoryModel.WithContext(ctx).Create(categoryM); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCategoryAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	result := repo.db.WithContext(ctx).Model(categoryM).Select("*").Omit("id", "created_at").Updates(categoryM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCategoryNotFound
	}

	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		ParentID:    data.ParentID,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toCategoryDomainList(data []*model.CategoryModel) []*entity.Category {
	categories := make([]*entity.Category, 0, len(data))
	for _, categoryM := range data {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	var parentID *string
	if data.HasParent() {
		parentID = data.ParentID
	}

	return &model.CategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		ParentID:    parentID,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
