package cart

import (
	"context"
	"errors"
	"fmt"

	pkgerrors "github.com/hollowcoast/hollowcoast-web/pkg/errors"
	"github.com/hollowcoast/hollowcoast-web/pkg/logger"
)

// Service is the cart store: merge-by-line-key mutations over a persisted
// item list. Every mutation persists the full list and the caller reads the
// derived total off the returned cart. No network calls originate here.
type Service interface {
	Get(ctx context.Context, cartID string) (*Cart, error)
	Add(ctx context.Context, cartID string, product ProductRef, quantity int, variant *int) (*Cart, error)
	Remove(ctx context.Context, cartID, productID string, variant *int) (*Cart, error)
	UpdateQuantity(ctx context.Context, cartID, productID string, quantity int, variant *int) (*Cart, error)
	Clear(ctx context.Context, cartID string) error
}

// ProductRef is the slice of a product the cart needs to display a line.
type ProductRef struct {
	ID             string
	Title          string
	UnitPriceCents int64
	Currency       string
	ImageURL       string
}

type service struct {
	repo Repository
	logg *logger.Logger
}

// NewService builds the cart store over the provided repository.
func NewService(repo Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	return &service{repo: repo, logg: logg}, nil
}

func (s *service) Get(ctx context.Context, cartID string) (*Cart, error) {
	return s.hydrate(ctx, cartID)
}

func (s *service) Add(ctx context.Context, cartID string, product ProductRef, quantity int, variant *int) (*Cart, error) {
	if quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}
	if product.ID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	current, err := s.hydrate(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if !current.IsEmpty() && product.Currency != current.Currency() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "mixed-currency carts are not supported")
	}

	key := lineKey(product.ID, variant)
	merged := false
	for i := range current.Items {
		if current.Items[i].Key() == key {
			current.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		current.Items = append(current.Items, Item{
			ProductID:      product.ID,
			Title:          product.Title,
			UnitPriceCents: product.UnitPriceCents,
			Currency:       product.Currency,
			ImageURL:       product.ImageURL,
			Quantity:       quantity,
			Variant:        variant,
		})
	}

	return s.persist(ctx, cartID, current)
}

func (s *service) Remove(ctx context.Context, cartID, productID string, variant *int) (*Cart, error) {
	current, err := s.hydrate(ctx, cartID)
	if err != nil {
		return nil, err
	}

	key := lineKey(productID, variant)
	kept := current.Items[:0]
	for _, item := range current.Items {
		if item.Key() != key {
			kept = append(kept, item)
		}
	}
	current.Items = kept

	return s.persist(ctx, cartID, current)
}

func (s *service) UpdateQuantity(ctx context.Context, cartID, productID string, quantity int, variant *int) (*Cart, error) {
	// Setting a non-positive quantity is equivalent to removal; a line never
	// survives at quantity zero.
	if quantity <= 0 {
		return s.Remove(ctx, cartID, productID, variant)
	}

	current, err := s.hydrate(ctx, cartID)
	if err != nil {
		return nil, err
	}

	key := lineKey(productID, variant)
	for i := range current.Items {
		if current.Items[i].Key() == key {
			current.Items[i].Quantity = quantity
			return s.persist(ctx, cartID, current)
		}
	}
	return current, nil
}

func (s *service) Clear(ctx context.Context, cartID string) error {
	if err := s.repo.Delete(ctx, cartID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

// hydrate loads the persisted cart. Absent or unreadable data yields an empty
// cart with no user-visible error; the next save replaces the stored blob.
func (s *service) hydrate(ctx context.Context, cartID string) (*Cart, error) {
	items, err := s.repo.Load(ctx, cartID)
	if err != nil {
		if errors.Is(err, ErrCorrupt) {
			if s.logg != nil {
				s.logg.Warn(s.logg.WithField(ctx, "cart_id", cartID), "discarding unreadable stored cart")
			}
			return &Cart{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return &Cart{Items: items}, nil
}

func (s *service) persist(ctx context.Context, cartID string, cart *Cart) (*Cart, error) {
	if err := s.repo.Save(ctx, cartID, cart.Items); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return cart, nil
}
