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

var reviewSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"rating":    "rating",
}

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db, q: query.Use(db)}
}

func (repo *reviewRepository) FindByID(ctx context.Context, id string) (*entity.Review, error) {
	r := repo.q.ReviewModel
	reviewM, err := r.WithContext(ctx).Where(r.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(reviewM), nil
}

func (repo *reviewRepository) ExistsByUserAndProduct(ctx context.Context, userID, productID string) (bool, error) {
	r := repo.q.ReviewModel
	count, err := r.WithContext(ctx).WriteDB().
		Where(r.UserID.Eq(userID), r.ProductID.Eq(productID)).
		Count()
	if err != nil {
		return false, errors.Wrap(err, "failed to check existing review")
	}

	return count > 0, nil
}

func (repo *reviewRepository) List(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, int64, error) {
	stmt := repo.db.WithContext(ctx).Model(&model.ReviewModel{})
	if filter.ProductID != "" {
		stmt = stmt.Where("product_id = ?", filter.ProductID)
	}
	if filter.UserID != "" {
		stmt = stmt.Where("user_id = ?", filter.UserID)
	}
	if filter.Rating != nil {
		stmt = stmt.Where("rating = ?", *filter.Rating)
	}
	stmt = stmt.Session(&gorm.Session{})

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count reviews")
	}

	var reviewModels []*model.ReviewModel
	if err := paginate(orderBy(stmt, reviewSortColumns, filter.Sort, "created_at"), filter.Page).
		Find(&reviewModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, total, nil
}

type ratingBucket struct {
	Rating int
	Count  int64
}

func (repo *reviewRepository) RatingAggregate(ctx context.Context, productID string) (*repository.RatingAggregate, error) {
	var buckets []ratingBucket
	if err := repo.db.WithContext(ctx).Model(&model.ReviewModel{}).
		Select("rating, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Group("rating").
		Scan(&buckets).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate ratings")
	}

	agg := &repository.RatingAggregate{Distribution: make(map[int]int64, len(buckets))}
	for _, b := range buckets {
		agg.Total += b.Count
		agg.Sum += int64(b.Rating) * b.Count
		agg.Distribution[b.Rating] = b.Count
	}

	return agg, nil
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = entity.NewID()
	}
	reviewM := fromReviewDomain(review)

	if err := repo.q.ReviewModel.WithContext(ctx).Create(reviewM); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrReviewAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	result := repo.db.WithContext(ctx).Model(reviewM).
		Select("rating", "comment", "is_verified_purchase", "updated_at").
		Updates(reviewM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrReviewNotFound
	}

	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

func (repo *reviewRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ReviewModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrReviewNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:                 data.ID,
		UserID:             data.UserID,
		ProductID:          data.ProductID,
		Rating:             data.Rating,
		Comment:            data.Comment,
		IsVerifiedPurchase: data.IsVerifiedPurchase,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		ProductID:          data.ProductID,
		Rating:             data.Rating,
		Comment:            data.Comment,
		IsVerifiedPurchase: data.IsVerifiedPurchase,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
