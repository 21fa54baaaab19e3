package admin

import (
	"context"
	"fmt"
	"net/http"

	pkgerrors "github.com/hollowcoast/hollowcoast-web/pkg/errors"
	"github.com/hollowcoast/hollowcoast-web/pkg/logger"
	"github.com/hollowcoast/hollowcoast-web/pkg/upstream"

	"github.com/hollowcoast/hollowcoast-web/internal/toast"
)

// adminAPI is the slice of the upstream client the admin area consumes.
type adminAPI interface {
	ListOrders(ctx context.Context, token string) ([]upstream.Order, error)
	GetOrder(ctx context.Context, token, id string) (*upstream.Order, error)
	FulfillOrder(ctx context.Context, token, id string, req upstream.FulfillOrderRequest) (*upstream.Order, error)
	ExportOrdersCSV(ctx context.Context, token string) ([]byte, string, error)
	MarkOrdersExported(ctx context.Context, token string, orderIDs []string) error

	ListAllProducts(ctx context.Context, token string) ([]upstream.Product, error)
	CreateProduct(ctx context.Context, token string, product upstream.Product) (*upstream.Product, error)
	UpdateProduct(ctx context.Context, token, id string, product upstream.Product) (*upstream.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error

	ListPromotions(ctx context.Context, token string) ([]upstream.Promotion, error)
	CreatePromotion(ctx context.Context, token string, promo upstream.Promotion) (*upstream.Promotion, error)
	UpdatePromotion(ctx context.Context, token, id string, promo upstream.Promotion) (*upstream.Promotion, error)
	DeletePromotion(ctx context.Context, token, id string) error

	ListGiftCards(ctx context.Context, token string) ([]upstream.GiftCard, error)
	CreateGiftCard(ctx context.Context, token string, req upstream.CreateGiftCardRequest) (*upstream.GiftCard, error)
	DisableGiftCard(ctx context.Context, token, id string) (*upstream.GiftCard, error)
	CheckGiftCard(ctx context.Context, token, code string) (*upstream.GiftCard, error)

	GetShippingOptions(ctx context.Context, token string) ([]upstream.ShippingOption, error)
	UpdateShippingOptions(ctx context.Context, token string, options []upstream.ShippingOption) ([]upstream.ShippingOption, error)

	ListGalleryImages(ctx context.Context, token string) ([]upstream.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, token string, image upstream.GalleryImage) (*upstream.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, token, id string) error

	ListTracks(ctx context.Context, token string) ([]upstream.Track, error)
	CreateTrack(ctx context.Context, token string, track upstream.Track) (*upstream.Track, error)
	UpdateTrack(ctx context.Context, token, id string, track upstream.Track) (*upstream.Track, error)
	DeleteTrack(ctx context.Context, token, id string) error
}

// Service is the admin area behind the band API. Every call carries the bearer
// token from the caller's auth session; the API stays the single authority, so
// reads return whatever it returns and mutation failures leave prior state
// untouched. Successful mutations publish a toast.
type Service interface {
	ListOrders(ctx context.Context, token string) ([]upstream.Order, error)
	GetOrder(ctx context.Context, token, id string) (*upstream.Order, error)
	FulfillOrder(ctx context.Context, token, id string, req upstream.FulfillOrderRequest) (*upstream.Order, error)
	ExportOrdersCSV(ctx context.Context, token string) (Export, error)
	MarkOrdersExported(ctx context.Context, token string, orderIDs []string) error

	ListProducts(ctx context.Context, token string) ([]upstream.Product, error)
	CreateProduct(ctx context.Context, token string, product upstream.Product) (*upstream.Product, error)
	UpdateProduct(ctx context.Context, token, id string, product upstream.Product) (*upstream.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error

	ListPromotions(ctx context.Context, token string) ([]upstream.Promotion, error)
	CreatePromotion(ctx context.Context, token string, promo upstream.Promotion) (*upstream.Promotion, error)
	UpdatePromotion(ctx context.Context, token, id string, promo upstream.Promotion) (*upstream.Promotion, error)
	DeletePromotion(ctx context.Context, token, id string) error

	ListGiftCards(ctx context.Context, token string) ([]upstream.GiftCard, error)
	CreateGiftCard(ctx context.Context, token string, req upstream.CreateGiftCardRequest) (*upstream.GiftCard, error)
	DisableGiftCard(ctx context.Context, token, id string) (*upstream.GiftCard, error)
	CheckGiftCard(ctx context.Context, token, code string) (*upstream.GiftCard, error)

	GetShippingOptions(ctx context.Context, token string) ([]upstream.ShippingOption, error)
	UpdateShippingOptions(ctx context.Context, token string, options []upstream.ShippingOption) ([]upstream.ShippingOption, error)

	ListGalleryImages(ctx context.Context, token string) ([]upstream.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, token string, image upstream.GalleryImage) (*upstream.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, token, id string) error

	ListTracks(ctx context.Context, token string) ([]upstream.Track, error)
	CreateTrack(ctx context.Context, token string, track upstream.Track) (*upstream.Track, error)
	UpdateTrack(ctx context.Context, token, id string, track upstream.Track) (*upstream.Track, error)
	DeleteTrack(ctx context.Context, token, id string) error
}

// Export is the raw accounting download.
type Export struct {
	Data        []byte
	ContentType string
}

type service struct {
	api    adminAPI
	toasts *toast.Hub
	logg   *logger.Logger
}

func NewService(api adminAPI, toasts *toast.Hub, logg *logger.Logger) (Service, error) {
	if api == nil {
		return nil, fmt.Errorf("upstream client is required")
	}
	return &service{api: api, toasts: toasts, logg: logg}, nil
}

// mapErr translates upstream HTTP failures into coded errors. 401/403 means
// the bearer token no longer passes muster, which the browser handles by
// re-entering the login flow.
func mapErr(err error, action string) error {
	switch {
	case upstream.IsStatus(err, http.StatusUnauthorized), upstream.IsStatus(err, http.StatusForbidden):
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "admin session is no longer valid")
	case upstream.IsStatus(err, http.StatusNotFound):
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, action)
	case upstream.IsStatus(err, http.StatusBadRequest), upstream.IsStatus(err, http.StatusUnprocessableEntity):
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, action)
	default:
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, action)
	}
}

func (s *service) announce(message string) {
	if s.toasts != nil {
		s.toasts.Success(message)
	}
}

func (s *service) ListOrders(ctx context.Context, token string) ([]upstream.Order, error) {
	orders, err := s.api.ListOrders(ctx, token)
	if err != nil {
		return nil, mapErr(err, "list orders")
	}
	return orders, nil
}

func (s *service) GetOrder(ctx context.Context, token, id string) (*upstream.Order, error) {
	order, err := s.api.GetOrder(ctx, token, id)
	if err != nil {
		return nil, mapErr(err, "get order")
	}
	return order, nil
}

func (s *service) FulfillOrder(ctx context.Context, token, id string, req upstream.FulfillOrderRequest) (*upstream.Order, error) {
	order, err := s.api.FulfillOrder(ctx, token, id, req)
	if err != nil {
		return nil, mapErr(err, "fulfill order")
	}
	s.announce("order marked as fulfilled")
	return order, nil
}

func (s *service) ExportOrdersCSV(ctx context.Context, token string) (Export, error) {
	data, contentType, err := s.api.ExportOrdersCSV(ctx, token)
	if err != nil {
		return Export{}, mapErr(err, "export orders")
	}
	return Export{Data: data, ContentType: contentType}, nil
}

func (s *service) MarkOrdersExported(ctx context.Context, token string, orderIDs []string) error {
	if len(orderIDs) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "no order ids to mark")
	}
	if err := s.api.MarkOrdersExported(ctx, token, orderIDs); err != nil {
		return mapErr(err, "mark orders exported")
	}
	s.announce("orders marked as exported")
	return nil
}

// ListProducts is the admin view of the catalog, inactive products included.
func (s *service) ListProducts(ctx context.Context, token string) ([]upstream.Product, error) {
	products, err := s.api.ListAllProducts(ctx, token)
	if err != nil {
		return nil, mapErr(err, "list products")
	}
	return products, nil
}

func (s *service) CreateProduct(ctx context.Context, token string, product upstream.Product) (*upstream.Product, error) {
	created, err := s.api.CreateProduct(ctx, token, product)
	if err != nil {
		return nil, mapErr(err, "create product")
	}
	s.announce("product created")
	return created, nil
}

func (s *service) UpdateProduct(ctx context.Context, token, id string, product upstream.Product) (*upstream.Product, error) {
	updated, err := s.api.UpdateProduct(ctx, token, id, product)
	if err != nil {
		return nil, mapErr(err, "update product")
	}
	s.announce("product updated")
	return updated, nil
}

func (s *service) DeleteProduct(ctx context.Context, token, id string) error {
	if err := s.api.DeleteProduct(ctx, token, id); err != nil {
		return mapErr(err, "delete product")
	}
	s.announce("product deleted")
	return nil
}

func (s *service) ListPromotions(ctx context.Context, token string) ([]upstream.Promotion, error) {
	promotions, err := s.api.ListPromotions(ctx, token)
	if err != nil {
		return nil, mapErr(err, "list promotions")
	}
	return promotions, nil
}

func (s *service) CreatePromotion(ctx context.Context, token string, promo upstream.Promotion) (*upstream.Promotion, error) {
	created, err := s.api.CreatePromotion(ctx, token, promo)
	if err != nil {
		return nil, mapErr(err, "create promotion")
	}
	s.announce("promotion created")
	return created, nil
}

func (s *service) UpdatePromotion(ctx context.Context, token, id string, promo upstream.Promotion) (*upstream.Promotion, error) {
	updated, err := s.api.UpdatePromotion(ctx, token, id, promo)
	if err != nil {
		return nil, mapErr(err, "update promotion")
	}
	s.announce("promotion updated")
	return updated, nil
}

func (s *service) DeletePromotion(ctx context.Context, token, id string) error {
	if err := s.api.DeletePromotion(ctx, token, id); err != nil {
		return mapErr(err, "delete promotion")
	}
	s.announce("promotion deleted")
	return nil
}

func (s *service) ListGiftCards(ctx context.Context, token string) ([]upstream.GiftCard, error) {
	cards, err := s.api.ListGiftCards(ctx, token)
	if err != nil {
		return nil, mapErr(err, "list gift cards")
	}
	return cards, nil
}

func (s *service) CreateGiftCard(ctx context.Context, token string, req upstream.CreateGiftCardRequest) (*upstream.GiftCard, error) {
	card, err := s.api.CreateGiftCard(ctx, token, req)
	if err != nil {
		return nil, mapErr(err, "create gift card")
	}
	s.announce("gift card created")
	return card, nil
}

func (s *service) DisableGiftCard(ctx context.Context, token, id string) (*upstream.GiftCard, error) {
	card, err := s.api.DisableGiftCard(ctx, token, id)
	if err != nil {
		return nil, mapErr(err, "disable gift card")
	}
	s.announce("gift card disabled")
	return card, nil
}

func (s *service) CheckGiftCard(ctx context.Context, token, code string) (*upstream.GiftCard, error) {
	if code == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "gift card code is required")
	}
	card, err := s.api.CheckGiftCard(ctx, token, code)
	if err != nil {
		return nil, mapErr(err, "check gift card")
	}
	return card, nil
}

func (s *service) GetShippingOptions(ctx context.Context, token string) ([]upstream.ShippingOption, error) {
	options, err := s.api.GetShippingOptions(ctx, token)
	if err != nil {
		return nil, mapErr(err, "get shipping options")
	}
	return options, nil
}

func (s *service) UpdateShippingOptions(ctx context.Context, token string, options []upstream.ShippingOption) ([]upstream.ShippingOption, error) {
	updated, err := s.api.UpdateShippingOptions(ctx, token, options)
	if err != nil {
		return nil, mapErr(err, "update shipping options")
	}
	s.announce("shipping options saved")
	return updated, nil
}

func (s *service) ListGalleryImages(ctx context.Context, token string) ([]upstream.GalleryImage, error) {
	images, err := s.api.ListGalleryImages(ctx, token)
	if err != nil {
		return nil, mapErr(err, "list gallery images")
	}
	return images, nil
}

func (s *service) CreateGalleryImage(ctx context.Context, token string, image upstream.GalleryImage) (*upstream.GalleryImage, error) {
	created, err := s.api.CreateGalleryImage(ctx, token, image)
	if err != nil {
		return nil, mapErr(err, "create gallery image")
	}
	s.announce("gallery image added")
	return created, nil
}

func (s *service) DeleteGalleryImage(ctx context.Context, token, id string) error {
	if err := s.api.DeleteGalleryImage(ctx, token, id); err != nil {
		return mapErr(err, "delete gallery image")
	}
	s.announce("gallery image removed")
	return nil
}

func (s *service) ListTracks(ctx context.Context, token string) ([]upstream.Track, error) {
	tracks, err := s.api.ListTracks(ctx, token)
	if err != nil {
		return nil, mapErr(err, "list tracks")
	}
	return tracks, nil
}

func (s *service) CreateTrack(ctx context.Context, token string, track upstream.Track) (*upstream.Track, error) {
	created, err := s.api.CreateTrack(ctx, token, track)
	if err != nil {
		return nil, mapErr(err, "create track")
	}
	s.announce("track created")
	return created, nil
}

func (s *service) UpdateTrack(ctx context.Context, token, id string, track upstream.Track) (*upstream.Track, error) {
	updated, err := s.api.UpdateTrack(ctx, token, id, track)
	if err != nil {
		return nil, mapErr(err, "update track")
	}
	s.announce("track updated")
	return updated, nil
}

func (s *service) DeleteTrack(ctx context.Context, token, id string) error {
	if err := s.api.DeleteTrack(ctx, token, id); err != nil {
		return mapErr(err, "delete track")
	}
	s.announce("track deleted")
	return nil
}
