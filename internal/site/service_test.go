package site

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/hollowcoast/hollowcoast-web/pkg/errors"
	"github.com/hollowcoast/hollowcoast-web/pkg/upstream"
)

type stubSiteAPI struct {
	events      []upstream.Event
	products    []upstream.Product
	product     *upstream.Product
	order       *upstream.Order
	err         error
	contactSent *upstream.ContactMessage
	trackCalled bool
	trackNumber string
	trackEmail  string
}

func (s *stubSiteAPI) ListEvents(context.Context) ([]upstream.Event, error) {
	return s.events, s.err
}

func (s *stubSiteAPI) SubmitContact(_ context.Context, msg upstream.ContactMessage) error {
	s.contactSent = &msg
	return s.err
}

func (s *stubSiteAPI) ListProducts(context.Context) ([]upstream.Product, error) {
	return s.products, s.err
}

func (s *stubSiteAPI) GetProduct(context.Context, string) (*upstream.Product, error) {
	return s.product, s.err
}

func (s *stubSiteAPI) TrackOrder(_ context.Context, number, email string) (*upstream.Order, error) {
	s.trackCalled = true
	s.trackNumber = number
	s.trackEmail = email
	return s.order, s.err
}

func newTestService(t *testing.T, api siteAPI) Service {
	t.Helper()
	svc, err := NewService(api, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func validContact() ContactRequest {
	return ContactRequest{
		Name:    "Ríona",
		Email:   "riona@example.com",
		Subject: "booking",
		Message: "Any plans to play Cork this year?",
	}
}

func TestSubmitContactForwardsMessage(t *testing.T) {
	api := &stubSiteAPI{}
	svc := newTestService(t, api)

	if err := svc.SubmitContact(context.Background(), validContact()); err != nil {
		t.Fatalf("SubmitContact: %v", err)
	}
	if api.contactSent == nil || api.contactSent.Email != "riona@example.com" {
		t.Fatalf("expected message forwarded, got %+v", api.contactSent)
	}
}

func TestSubmitContactValidatesBeforeUpstream(t *testing.T) {
	api := &stubSiteAPI{}
	svc := newTestService(t, api)

	bad := validContact()
	bad.Email = "not-an-email"
	err := svc.SubmitContact(context.Background(), bad)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if api.contactSent != nil {
		t.Fatal("invalid form must never reach the upstream API")
	}
}

func TestSubmitContactRequiresMessage(t *testing.T) {
	svc := newTestService(t, &stubSiteAPI{})

	bad := validContact()
	bad.Message = ""
	err := svc.SubmitContact(context.Background(), bad)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTrackOrderPassesNumberAndEmail(t *testing.T) {
	api := &stubSiteAPI{order: &upstream.Order{ID: "o1", Number: "HC-1001", Status: "shipped"}}
	svc := newTestService(t, api)

	order, err := svc.TrackOrder(context.Background(), TrackingRequest{Number: "HC-1001", Email: "buyer@example.com"})
	if err != nil {
		t.Fatalf("TrackOrder: %v", err)
	}
	if order.Status != "shipped" {
		t.Fatalf("unexpected order %+v", order)
	}
	if api.trackNumber != "HC-1001" || api.trackEmail != "buyer@example.com" {
		t.Fatalf("lookup pair not forwarded, got %q %q", api.trackNumber, api.trackEmail)
	}
}

func TestTrackOrderValidatesBeforeUpstream(t *testing.T) {
	api := &stubSiteAPI{}
	svc := newTestService(t, api)

	_, err := svc.TrackOrder(context.Background(), TrackingRequest{Number: "", Email: "buyer@example.com"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if api.trackCalled {
		t.Fatal("invalid lookup must never reach the upstream API")
	}
}

func TestTrackOrderMissReadsAsNotFound(t *testing.T) {
	api := &stubSiteAPI{err: &upstream.APIError{Status: 404, Body: "no match"}}
	svc := newTestService(t, api)

	_, err := svc.TrackOrder(context.Background(), TrackingRequest{Number: "HC-9999", Email: "buyer@example.com"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetProductMissingID(t *testing.T) {
	svc := newTestService(t, &stubSiteAPI{})

	_, err := svc.GetProduct(context.Background(), "")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListEventsOutage(t *testing.T) {
	svc := newTestService(t, &stubSiteAPI{err: errors.New("connection refused")})

	_, err := svc.ListEvents(context.Background())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
