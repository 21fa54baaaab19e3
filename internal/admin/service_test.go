package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	pkgerrors "github.com/hollowcoast/hollowcoast-web/pkg/errors"
	"github.com/hollowcoast/hollowcoast-web/pkg/upstream"

	"github.com/hollowcoast/hollowcoast-web/internal/toast"
)

// stubAPI returns the same error (or canned values) for every call.
type stubAPI struct {
	err      error
	order    upstream.Order
	product  upstream.Product
	csv      []byte
	csvType  string
	lastCall string
}

func (s *stubAPI) ListOrders(context.Context, string) ([]upstream.Order, error) {
	s.lastCall = "ListOrders"
	return []upstream.Order{s.order}, s.err
}

func (s *stubAPI) GetOrder(context.Context, string, string) (*upstream.Order, error) {
	s.lastCall = "GetOrder"
	if s.err != nil {
		return nil, s.err
	}
	return &s.order, nil
}

func (s *stubAPI) FulfillOrder(context.Context, string, string, upstream.FulfillOrderRequest) (*upstream.Order, error) {
	s.lastCall = "FulfillOrder"
	if s.err != nil {
		return nil, s.err
	}
	return &s.order, nil
}

func (s *stubAPI) ExportOrdersCSV(context.Context, string) ([]byte, string, error) {
	s.lastCall = "ExportOrdersCSV"
	return s.csv, s.csvType, s.err
}

func (s *stubAPI) MarkOrdersExported(context.Context, string, []string) error {
	s.lastCall = "MarkOrdersExported"
	return s.err
}

func (s *stubAPI) ListAllProducts(context.Context, string) ([]upstream.Product, error) {
	s.lastCall = "ListAllProducts"
	if s.err != nil {
		return nil, s.err
	}
	return []upstream.Product{s.product}, nil
}

func (s *stubAPI) CreateProduct(context.Context, string, upstream.Product) (*upstream.Product, error) {
	s.lastCall = "CreateProduct"
	if s.err != nil {
		return nil, s.err
	}
	return &s.product, nil
}

func (s *stubAPI) UpdateProduct(context.Context, string, string, upstream.Product) (*upstream.Product, error) {
	s.lastCall = "UpdateProduct"
	if s.err != nil {
		return nil, s.err
	}
	return &s.product, nil
}

func (s *stubAPI) DeleteProduct(context.Context, string, string) error {
	s.lastCall = "DeleteProduct"
	return s.err
}

func (s *stubAPI) ListPromotions(context.Context, string) ([]upstream.Promotion, error) {
	s.lastCall = "ListPromotions"
	return nil, s.err
}

func (s *stubAPI) CreatePromotion(context.Context, string, upstream.Promotion) (*upstream.Promotion, error) {
	s.lastCall = "CreatePromotion"
	if s.err != nil {
		return nil, s.err
	}
	return &upstream.Promotion{}, nil
}

func (s *stubAPI) UpdatePromotion(context.Context, string, string, upstream.Promotion) (*upstream.Promotion, error) {
	s.lastCall = "UpdatePromotion"
	if s.err != nil {
		return nil, s.err
	}
	return &upstream.Promotion{}, nil
}

func (s *stubAPI) DeletePromotion(context.Context, string, string) error {
	s.lastCall = "DeletePromotion"
	return s.err
}

func (s *stubAPI) ListGiftCards(context.Context, string) ([]upstream.GiftCard, error) {
	s.lastCall = "ListGiftCards"
	return nil, s.err
}

func (s *stubAPI) CreateGiftCard(context.Context, string, upstream.CreateGiftCardRequest) (*upstream.GiftCard, error) {
	s.lastCall = "CreateGiftCard"
	if s.err != nil {
		return nil, s.err
	}
	return &upstream.GiftCard{}, nil
}

func (s *stubAPI) DisableGiftCard(context.Context, string, string) (*upstream.GiftCard, error) {
	s.lastCall = "DisableGiftCard"
	if s.err != nil {
		return nil, s.err
	}
	return &upstream.GiftCard{}, nil
}

func (s *stubAPI) CheckGiftCard(context.Context, string, string) (*upstream.GiftCard, error) {
	s.lastCall = "CheckGiftCard"
	if s.err != nil {
		return nil, s.err
	}
	return &upstream.GiftCard{}, nil
}

func (s *stubAPI) GetShippingOptions(context.Context, string) ([]upstream.ShippingOption, error) {
	s.lastCall = "GetShippingOptions"
	return nil, s.err
}

func (s *stubAPI) UpdateShippingOptions(_ context.Context, _ string, options []upstream.ShippingOption) ([]upstream.ShippingOption, error) {
	s.lastCall = "UpdateShippingOptions"
	if s.err != nil {
		return nil, s.err
	}
	return options, nil
}

func (s *stubAPI) ListGalleryImages(context.Context, string) ([]upstream.GalleryImage, error) {
	s.lastCall = "ListGalleryImages"
	return nil, s.err
}

func (s *stubAPI) CreateGalleryImage(context.Context, string, upstream.GalleryImage) (*upstream.GalleryImage, error) {
	s.lastCall = "CreateGalleryImage"
	if s.err != nil {
		return nil, s.err
	}
	return &upstream.GalleryImage{}, nil
}

func (s *stubAPI) DeleteGalleryImage(context.Context, string, string) error {
	s.lastCall = "DeleteGalleryImage"
	return s.err
}

func (s *stubAPI) ListTracks(context.Context, string) ([]upstream.Track, error) {
	s.lastCall = "ListTracks"
	return nil, s.err
}

func (s *stubAPI) CreateTrack(context.Context, string, upstream.Track) (*upstream.Track, error) {
	s.lastCall = "CreateTrack"
	if s.err != nil {
		return nil, s.err
	}
	return &upstream.Track{}, nil
}

func (s *stubAPI) UpdateTrack(context.Context, string, string, upstream.Track) (*upstream.Track, error) {
	s.lastCall = "UpdateTrack"
	if s.err != nil {
		return nil, s.err
	}
	return &upstream.Track{}, nil
}

func (s *stubAPI) DeleteTrack(context.Context, string, string) error {
	s.lastCall = "DeleteTrack"
	return s.err
}

func newTestService(t *testing.T, api adminAPI, hub *toast.Hub) Service {
	t.Helper()
	svc, err := NewService(api, hub, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestExpiredTokenMapsToUnauthorized(t *testing.T) {
	api := &stubAPI{err: &upstream.APIError{Status: 401, Body: "expired"}}
	svc := newTestService(t, api, nil)

	_, err := svc.ListOrders(context.Background(), "stale")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestMissingOrderMapsToNotFound(t *testing.T) {
	api := &stubAPI{err: &upstream.APIError{Status: 404, Body: "no such order"}}
	svc := newTestService(t, api, nil)

	_, err := svc.GetOrder(context.Background(), "tok", "missing")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpstreamOutageMapsToDependency(t *testing.T) {
	api := &stubAPI{err: errors.New("connection refused")}
	svc := newTestService(t, api, nil)

	_, err := svc.ListGiftCards(context.Background(), "tok")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestFulfillOrderPublishesToast(t *testing.T) {
	hub := toast.NewHub(time.Hour)
	svc := newTestService(t, &stubAPI{}, hub)

	if _, err := svc.FulfillOrder(context.Background(), "tok", "o1", upstream.FulfillOrderRequest{TrackingID: "TRK1"}); err != nil {
		t.Fatalf("FulfillOrder: %v", err)
	}
	active := hub.Active()
	if len(active) != 1 || active[0].Severity != toast.SeveritySuccess {
		t.Fatalf("expected one success toast, got %+v", active)
	}
}

func TestListProductsIncludesInactive(t *testing.T) {
	api := &stubAPI{product: upstream.Product{ID: "p1", Title: "Archive Tee", Active: false}}
	svc := newTestService(t, api, nil)

	products, err := svc.ListProducts(context.Background(), "tok")
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if api.lastCall != "ListAllProducts" {
		t.Fatalf("expected the unfiltered listing, called %q", api.lastCall)
	}
	if len(products) != 1 || products[0].Active {
		t.Fatalf("expected the inactive product back, got %+v", products)
	}
}

func TestFailedMutationPublishesNoToast(t *testing.T) {
	hub := toast.NewHub(time.Hour)
	api := &stubAPI{err: &upstream.APIError{Status: 422, Body: "bad payload"}}
	svc := newTestService(t, api, hub)

	_, err := svc.CreateProduct(context.Background(), "tok", upstream.Product{Title: "Tee"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := hub.Active(); len(got) != 0 {
		t.Fatalf("failed mutation must not announce success, got %+v", got)
	}
}

func TestExportReturnsRawPayload(t *testing.T) {
	api := &stubAPI{csv: []byte("id,total\no1,4200\n"), csvType: "text/csv"}
	svc := newTestService(t, api, nil)

	export, err := svc.ExportOrdersCSV(context.Background(), "tok")
	if err != nil {
		t.Fatalf("ExportOrdersCSV: %v", err)
	}
	if export.ContentType != "text/csv" || string(export.Data) != "id,total\no1,4200\n" {
		t.Fatalf("unexpected export %+v", export)
	}
}

func TestMarkExportedRejectsEmptyList(t *testing.T) {
	api := &stubAPI{}
	svc := newTestService(t, api, nil)

	err := svc.MarkOrdersExported(context.Background(), "tok", nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if api.lastCall == "MarkOrdersExported" {
		t.Fatal("empty list must not reach the API")
	}
}

func TestCheckGiftCardRequiresCode(t *testing.T) {
	svc := newTestService(t, &stubAPI{}, nil)

	_, err := svc.CheckGiftCard(context.Background(), "tok", "")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
