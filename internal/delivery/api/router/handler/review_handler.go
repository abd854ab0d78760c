package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves product reviews and ratings.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

type createReviewRequest struct {
	ProductID string `json:"product" validate:"required,objectid"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"max=1000"`
}

type updateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=1000"`
}

type reviewListRequest struct {
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Sort   string `query:"sort" validate:"omitempty,oneof=createdAt -createdAt rating -rating updatedAt -updatedAt"`
	Rating *int   `query:"rating" validate:"omitempty,min=1,max=5"`
}

func (r *reviewListRequest) bind(b *echo.ValueBinder) {
	b.Int("page", &r.Page).
		Int("limit", &r.Limit).
		String("sort", &r.Sort)
	optionalInt(b, "rating", &r.Rating)
}

func (r *reviewListRequest) toQuery() *usecase.ReviewQuery {
	return &usecase.ReviewQuery{
		PageQuery: usecase.PageQuery{Page: r.Page, Limit: r.Limit},
		Sort:      r.Sort,
		Rating:    r.Rating,
	}
}

// ProductReviews lists the reviews of a product.
func (h *ReviewHandler) ProductReviews(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req reviewListRequest
	if err := bindQuery(c, &req); err != nil {
		return err
	}

	page, err := h.reviewUC.GetProductReviews(c.Request().Context(), productID, req.toQuery())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Product reviews retrieved successfully", page)
}

// RatingStats aggregates the ratings of a product.
func (h *ReviewHandler) RatingStats(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	stats, err := h.reviewUC.GetProductRatingStats(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Product rating statistics retrieved successfully", stats)
}

// GetByID returns one review.
func (h *ReviewHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	review, err := h.reviewUC.GetReviewByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Review retrieved successfully", review)
}

// Create posts a review by the caller.
func (h *ReviewHandler) Create(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), caller.ID, &usecase.CreateReviewInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Review created successfully", review)
}

// MyReviews lists the caller's reviews.
func (h *ReviewHandler) MyReviews(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req reviewListRequest
	if err := bindQuery(c, &req); err != nil {
		return err
	}

	page, err := h.reviewUC.GetUserReviews(c.Request().Context(), caller.ID, req.toQuery())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "User reviews retrieved successfully", page)
}

// Update edits the caller's own review.
func (h *ReviewHandler) Update(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateReviewRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.UpdateReview(c.Request().Context(), id, caller.ID, &usecase.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Review updated successfully", review)
}

// Delete removes a review of the caller, or any review for an admin.
func (h *ReviewHandler) Delete(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), id, caller.ID, caller.Role); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Review deleted successfully", nil)
}

// AdminShowAll lists every review, optionally for one star value.
func (h *ReviewHandler) AdminShowAll(c echo.Context) error {
	var req reviewListRequest
	if err := bindQuery(c, &req); err != nil {
		return err
	}

	page, err := h.reviewUC.GetAllReviews(c.Request().Context(), req.toQuery())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "All reviews retrieved successfully", page)
}
