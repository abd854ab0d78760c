package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var reviewSortFields = []string{"createdAt", "rating", "updatedAt"}

var defaultReviewSort = repository.Sort{Field: "createdAt", Desc: true}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  params.ReviewRepo,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		orderRepo:   params.OrderRepo,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reviewService) CreateReview(ctx context.Context, userID string, input *usecase.CreateReviewInput) (*entity.ReviewView, error) {
	comment := strings.TrimSpace(input.Comment)
	if err := validateReview(input.Rating, comment); err != nil {
		return nil, err
	}

	exists, err := srv.reviewRepo.ExistsByUserAndProduct(ctx, userID, input.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing review")
	}
	if exists {
		return nil, domainerrors.ErrReviewAlreadyExists
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	verified, err := srv.orderRepo.HasDeliveredProduct(ctx, userID, product.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check purchase history")
	}

	review := &entity.Review{
		UserID:             userID,
		ProductID:          product.ID,
		Rating:             input.Rating,
		Comment:            comment,
		IsVerifiedPurchase: verified,
	}
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Review created",
		slog.String("reviewID", review.ID),
		slog.String("productID", product.ID),
		slog.Bool("verified", verified),
	)

	return &entity.ReviewView{Review: review, User: user.Summary(), Product: product.Summary()}, nil
}

func (srv *reviewService) GetReviewByID(ctx context.Context, id string) (*entity.ReviewView, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	views, err := srv.join(ctx, []*entity.Review{review})
	if err != nil {
		return nil, err
	}

	return views[0], nil
}

func (srv *reviewService) UpdateReview(ctx context.Context, reviewID, userID string, input *usecase.UpdateReviewInput) (*entity.ReviewView, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, domainerrors.ErrReviewOwnershipViolation
	}

	rating := review.Rating
	if input.Rating != nil {
		rating = *input.Rating
	}
	comment := review.Comment
	if input.Comment != nil {
		comment = strings.TrimSpace(*input.Comment)
	}
	if err := validateReview(rating, comment); err != nil {
		return nil, err
	}

	review.Rating = rating
	review.Comment = comment
	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	views, err := srv.join(ctx, []*entity.Review{review})
	if err != nil {
		return nil, err
	}

	return views[0], nil
}

func (srv *reviewService) DeleteReview(ctx context.Context, reviewID, userID string, role entity.Role) error {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID && role != entity.RoleAdmin {
		return domainerrors.ErrReviewOwnershipViolation
	}

	if err := srv.reviewRepo.Delete(ctx, reviewID); err != nil {
		return err
	}

	srv.log(ctx).Info("Review deleted", slog.String("reviewID", reviewID), slog.String("by", userID))

	return nil
}

func (srv *reviewService) GetProductReviews(ctx context.Context, productID string, query *usecase.ReviewQuery) (*usecase.ReviewPage, error) {
	return srv.list(ctx, repository.ReviewFilter{ProductID: productID}, query)
}

func (srv *reviewService) GetUserReviews(ctx context.Context, userID string, query *usecase.ReviewQuery) (*usecase.ReviewPage, error) {
	return srv.list(ctx, repository.ReviewFilter{UserID: userID}, query)
}

func (srv *reviewService) GetAllReviews(ctx context.Context, query *usecase.ReviewQuery) (*usecase.ReviewPage, error) {
	filter := repository.ReviewFilter{}
	if query.Rating != nil {
		if *query.Rating < entity.MinRating || *query.Rating > entity.MaxRating {
			return nil, domainerrors.NewFieldError("rating", "must be between 1 and 5")
		}
		filter.Rating = query.Rating
	}

	return srv.list(ctx, filter, query)
}

func (srv *reviewService) GetProductRatingStats(ctx context.Context, productID string) (*entity.RatingStats, error) {
	agg, err := srv.reviewRepo.RatingAggregate(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate ratings")
	}

	stats := entity.EmptyRatingStats()
	if agg == nil || agg.Total == 0 {
		return stats, nil
	}

	stats.TotalReviews = agg.Total
	stats.AverageRating = decimal.NewFromInt(agg.Sum).
		Div(decimal.NewFromInt(agg.Total)).
		Round(2).
		InexactFloat64()
	for rating, count := range agg.Distribution {
		if rating >= entity.MinRating && rating <= entity.MaxRating {
			stats.RatingDistribution[rating] = count
		}
	}

	return stats, nil
}

func (srv *reviewService) list(ctx context.Context, filter repository.ReviewFilter, query *usecase.ReviewQuery) (*usecase.ReviewPage, error) {
	sort, err := parseReviewSort(query.Sort)
	if err != nil {
		return nil, err
	}

	page := normalizePage(query.PageQuery, defaultPageLimit)
	filter.Sort = sort
	filter.Page = toPagination(page)

	reviews, total, err := srv.reviewRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	views, err := srv.join(ctx, reviews)
	if err != nil {
		return nil, err
	}

	info := usecase.NewPageInfo(page, total)

	return &usecase.ReviewPage{
		Reviews: views,
		Pagination: usecase.ReviewPagination{
			CurrentPage:  page.Page,
			TotalPages:   info.TotalPage,
			TotalReviews: total,
			HasNextPage:  page.Page < info.TotalPage,
			HasPrevPage:  page.Page > 1,
		},
	}, nil
}

// join attaches author and product summaries. Missing references are left nil.
func (srv *reviewService) join(ctx context.Context, reviews []*entity.Review) ([]*entity.ReviewView, error) {
	userIDs := make([]string, 0, len(reviews))
	productIDs := make([]string, 0, len(reviews))
	for _, r := range reviews {
		userIDs = append(userIDs, r.UserID)
		productIDs = append(productIDs, r.ProductID)
	}

	users, err := srv.userRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load review authors")
	}
	products, err := srv.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reviewed products")
	}

	userByID := make(map[string]*entity.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}
	productByID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	views := make([]*entity.ReviewView, 0, len(reviews))
	for _, r := range reviews {
		view := &entity.ReviewView{Review: r}
		if u, ok := userByID[r.UserID]; ok {
			view.User = u.Summary()
		}
		if p, ok := productByID[r.ProductID]; ok {
			view.Product = p.Summary()
		}
		views = append(views, view)
	}

	return views, nil
}

// parseReviewSort reads "field" or "-field".
func parseReviewSort(raw string) (repository.Sort, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultReviewSort, nil
	}

	sort := repository.Sort{Field: strings.TrimPrefix(raw, "-"), Desc: strings.HasPrefix(raw, "-")}
	if !slices.Contains(reviewSortFields, sort.Field) {
		return sort, domainerrors.NewFieldError("sort", "must be one of createdAt, rating, updatedAt with an optional - prefix")
	}

	return sort, nil
}

func validateReview(rating int, comment string) error {
	var fields []domainerrors.FieldError
	if rating < entity.MinRating || rating > entity.MaxRating {
		fields = append(fields, domainerrors.FieldError{
			Field: "rating", Code: domainerrors.ErrValidationFailed.ErrorCode(), Message: "must be between 1 and 5",
		})
	}
	if utf8.RuneCountInString(comment) > entity.MaxCommentLength {
		fields = append(fields, domainerrors.FieldError{
			Field: "comment", Code: domainerrors.ErrValidationFailed.ErrorCode(), Message: "must be at most 1000 characters",
		})
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}
