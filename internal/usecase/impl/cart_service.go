package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// cartService keeps one row per (user, product). Stock is checked but never reserved,
// so concurrent adds can both pass the check.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) purge(ctx context.Context, userID string) error {
	purged, err := srv.cartRepo.PurgeUnavailable(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to purge unavailable cart items")
	}
	if purged > 0 {
		srv.log(ctx).Info("Purged unavailable cart items", slog.String("userID", userID), slog.Int64("count", purged))
	}

	return nil
}

func (srv *cartService) GetUserCartItems(ctx context.Context, userID string, page usecase.PageQuery) (*usecase.CartPage, error) {
	page = normalizePage(page, defaultCartPageLimit)

	if err := srv.purge(ctx, userID); err != nil {
		return nil, err
	}

	items, total, err := srv.cartRepo.ListByUser(ctx, userID, toPagination(page))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	lines, err := srv.join(ctx, items, false)
	if err != nil {
		return nil, err
	}

	return &usecase.CartPage{Items: lines, Page: usecase.NewPageInfo(page, total)}, nil
}

// AddToCart merges into the existing row for the product and refreshes its price.
func (srv *cartService) AddToCart(ctx context.Context, userID string, input *usecase.AddToCartInput) (*entity.CartLine, error) {
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, domainerrors.NewFieldError("quantity", "must be at least 1")
	}

	product, err := srv.activeProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	item, err := srv.cartRepo.FindByUserAndProduct(ctx, userID, product.ID)
	switch {
	case err == nil:
		if item.Quantity+quantity > product.Stock {
			return nil, domainerrors.ErrInsufficientStock.WithDetails(
				fmt.Sprintf("cannot add %d more, only %d available", quantity, max(product.Stock-item.Quantity, 0)))
		}
		item.Quantity += quantity
		item.Price = product.Price
		if err := srv.cartRepo.Update(ctx, item); err != nil {
			return nil, errors.Wrap(err, "failed to update cart item")
		}
	case errors.Is(err, domainerrors.ErrCartItemNotFound):
		if quantity > product.Stock {
			return nil, domainerrors.ErrInsufficientStock.WithDetails(fmt.Sprintf("only %d available", product.Stock))
		}
		item = &entity.CartItem{
			UserID:    userID,
			ProductID: product.ID,
			Quantity:  quantity,
			Price:     product.Price,
		}
		if err := srv.cartRepo.Create(ctx, item); err != nil {
			return nil, errors.Wrap(err, "failed to create cart item")
		}
	default:
		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return &entity.CartLine{CartItem: item, Product: product.Summary()}, nil
}

// UpdateQuantity sets the quantity of an owned row. Rows of unavailable products are dropped.
func (srv *cartService) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*entity.CartLine, error) {
	if quantity < 1 {
		return nil, domainerrors.NewFieldError("quantity", "must be at least 1")
	}

	item, err := srv.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, item.ProductID)
	if err != nil && !errors.Is(err, domainerrors.ErrProductNotFound) {
		return nil, errors.Wrap(err, "failed to find product")
	}
	if err != nil || !product.IsActive {
		if delErr := srv.cartRepo.Delete(ctx, item.ID); delErr != nil {
			return nil, errors.Wrap(delErr, "failed to remove unavailable cart item")
		}

		return nil, domainerrors.ErrProductUnavailable
	}

	if quantity > product.Stock {
		return nil, domainerrors.ErrInsufficientStock.WithDetails(fmt.Sprintf("only %d available", product.Stock))
	}

	item.Quantity = quantity
	item.Price = product.Price
	if err := srv.cartRepo.Update(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to update cart item")
	}

	return &entity.CartLine{CartItem: item, Product: product.Summary()}, nil
}

func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID string) (*entity.CartItem, error) {
	item, err := srv.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := srv.cartRepo.Delete(ctx, item.ID); err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return item, nil
}

func (srv *cartService) ClearCart(ctx context.Context, userID string) (int64, error) {
	removed, err := srv.cartRepo.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear cart")
	}

	return removed, nil
}

func (srv *cartService) GetCartSummary(ctx context.Context, userID string) (*usecase.CartSummary, error) {
	if err := srv.purge(ctx, userID); err != nil {
		return nil, err
	}

	items, err := srv.cartRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	summary := &usecase.CartSummary{UniqueProducts: len(items)}
	total := decimal.Zero
	for _, item := range items {
		summary.TotalItems += item.Quantity
		total = total.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	summary.TotalAmount = roundMoney(total)

	return summary, nil
}

// GetAdminAnalytics pages through every cart; the summary covers all rows.
func (srv *cartService) GetAdminAnalytics(ctx context.Context, page usecase.PageQuery) (*usecase.CartAnalytics, error) {
	page = normalizePage(page, defaultAnalyticsLimit)

	items, total, err := srv.cartRepo.ListAll(ctx, toPagination(page))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list carts")
	}

	agg, err := srv.cartRepo.Aggregate(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate carts")
	}

	lines, err := srv.join(ctx, items, true)
	if err != nil {
		return nil, err
	}

	value := decimal.NewFromFloat(agg.TotalCartValue)
	summary := usecase.CartAnalyticsSummary{
		TotalCartItems:       agg.TotalCartItems,
		TotalActiveUsers:     agg.TotalActiveUsers,
		TotalCartValue:       roundMoney(value),
		TotalItemsInAllCarts: agg.TotalItemsInAllCarts,
	}
	if agg.TotalActiveUsers > 0 {
		summary.AverageCartValue = roundMoney(value.Div(decimal.NewFromInt(agg.TotalActiveUsers)))
	}

	return &usecase.CartAnalytics{
		Items:   lines,
		Page:    usecase.NewPageInfo(page, total),
		Summary: summary,
	}, nil
}

func (srv *cartService) activeProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductNotFound.WithDetails("product is not available")
	}

	return product, nil
}

func (srv *cartService) ownedItem(ctx context.Context, userID, itemID string) (*entity.CartItem, error) {
	item, err := srv.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.UserID != userID {
		return nil, domainerrors.ErrCartItemNotFound
	}

	return item, nil
}

// join attaches product snapshots, and owners when withUsers is set.
func (srv *cartService) join(ctx context.Context, items []*entity.CartItem, withUsers bool) ([]*entity.CartLine, error) {
	productIDs := make([]string, 0, len(items))
	userIDs := make([]string, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
		userIDs = append(userIDs, item.UserID)
	}

	products, err := srv.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart products")
	}
	productByID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	userByID := make(map[string]*entity.User)
	if withUsers {
		users, err := srv.userRepo.FindByIDs(ctx, userIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load cart owners")
		}
		for _, u := range users {
			userByID[u.ID] = u
		}
	}

	lines := make([]*entity.CartLine, 0, len(items))
	for _, item := range items {
		line := &entity.CartLine{CartItem: item}
		if p, ok := productByID[item.ProductID]; ok {
			line.Product = p.Summary()
		}
		if u, ok := userByID[item.UserID]; ok {
			line.User = u.Summary()
		}
		lines = append(lines, line)
	}

	return lines, nil
}
