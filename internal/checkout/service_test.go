package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/hollowcoast/hollowcoast-web/internal/cart"
	"github.com/hollowcoast/hollowcoast-web/pkg/config"
	pkgerrors "github.com/hollowcoast/hollowcoast-web/pkg/errors"
	"github.com/hollowcoast/hollowcoast-web/pkg/upstream"
)

type stubUpstream struct {
	stripeReq *upstream.CheckoutSessionRequest
	paypalReq *upstream.CheckoutSessionRequest
	session   *upstream.CheckoutSession
	err       error
}

func (s *stubUpstream) CreateStripeSession(_ context.Context, req upstream.CheckoutSessionRequest) (*upstream.CheckoutSession, error) {
	s.stripeReq = &req
	return s.session, s.err
}

func (s *stubUpstream) CreatePayPalOrder(_ context.Context, req upstream.CheckoutSessionRequest) (*upstream.CheckoutSession, error) {
	s.paypalReq = &req
	return s.session, s.err
}

type stubCarts struct {
	cart    *cart.Cart
	err     error
	cleared []string
}

func (s *stubCarts) Get(_ context.Context, cartID string) (*cart.Cart, error) {
	return s.cart, s.err
}

func (s *stubCarts) Clear(_ context.Context, cartID string) error {
	s.cleared = append(s.cleared, cartID)
	return nil
}

func appCfg() config.AppConfig {
	return config.AppConfig{SiteBaseURL: "https://hollowcoast.example"}
}

func checkoutCfg() config.CheckoutConfig {
	return config.CheckoutConfig{
		SuccessPath:     "/checkout/success",
		CancelPath:      "/checkout/cancel",
		CollectShipping: true,
	}
}

func twoLineCart() *cart.Cart {
	return &cart.Cart{Items: []cart.Item{
		{ProductID: "p-shirt", Title: "Shirt", UnitPriceCents: 2500, Currency: "USD", Quantity: 2},
		{ProductID: "p-vinyl", Title: "LP", UnitPriceCents: 3200, Currency: "USD", Quantity: 1},
	}}
}

func TestInitiateStripeBuildsRequestFromCart(t *testing.T) {
	up := &stubUpstream{session: &upstream.CheckoutSession{SessionID: "cs_1", URL: "https://pay.example/cs_1"}}
	carts := &stubCarts{cart: twoLineCart()}
	svc, err := NewService(up, carts, appCfg(), checkoutCfg())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	session, err := svc.Initiate(context.Background(), "visitor-1", ProviderStripe)
	if err != nil {
		t.Fatalf("Initiate: %v", err)
	}
	if session.URL != "https://pay.example/cs_1" {
		t.Fatalf("unexpected session url %q", session.URL)
	}

	req := up.stripeReq
	if req == nil {
		t.Fatal("expected stripe session request to be issued")
	}
	if len(req.Items) != 2 {
		t.Fatalf("expected exactly the two cart lines, got %d", len(req.Items))
	}
	if req.Items[0].ProductID != "p-shirt" || req.Items[0].Quantity != 2 {
		t.Fatalf("unexpected first line %+v", req.Items[0])
	}
	if req.Items[1].ProductID != "p-vinyl" || req.Items[1].Quantity != 1 {
		t.Fatalf("unexpected second line %+v", req.Items[1])
	}
	if req.Currency != "USD" {
		t.Fatalf("expected currency from first line, got %q", req.Currency)
	}
	if req.SuccessURL != "https://hollowcoast.example/checkout/success" {
		t.Fatalf("unexpected success url %q", req.SuccessURL)
	}
	if req.CancelURL != "https://hollowcoast.example/checkout/cancel" {
		t.Fatalf("unexpected cancel url %q", req.CancelURL)
	}
	if !req.CollectShipping {
		t.Fatal("expected shipping collection flag")
	}

	if len(carts.cleared) != 0 {
		t.Fatal("initiation must not clear the cart")
	}
}

func TestInitiatePayPalUsesPayPalEndpoint(t *testing.T) {
	up := &stubUpstream{session: &upstream.CheckoutSession{URL: "https://paypal.example/approve"}}
	svc, _ := NewService(up, &stubCarts{cart: twoLineCart()}, appCfg(), checkoutCfg())

	if _, err := svc.Initiate(context.Background(), "visitor-1", ProviderPayPal); err != nil {
		t.Fatalf("Initiate: %v", err)
	}
	if up.paypalReq == nil {
		t.Fatal("expected paypal order request")
	}
	if up.stripeReq != nil {
		t.Fatal("stripe endpoint must not be called for paypal")
	}
}

func TestInitiateEmptyCartIsValidationError(t *testing.T) {
	svc, _ := NewService(&stubUpstream{}, &stubCarts{cart: &cart.Cart{}}, appCfg(), checkoutCfg())

	_, err := svc.Initiate(context.Background(), "visitor-1", ProviderStripe)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestInitiatePropagatesUpstreamFailureWithoutRetry(t *testing.T) {
	up := &stubUpstream{err: errors.New("backend down")}
	carts := &stubCarts{cart: twoLineCart()}
	svc, _ := NewService(up, carts, appCfg(), checkoutCfg())

	_, err := svc.Initiate(context.Background(), "visitor-1", ProviderStripe)
	if err == nil {
		t.Fatal("expected upstream failure to propagate")
	}
	if len(carts.cleared) != 0 {
		t.Fatal("failed initiation must leave the cart intact")
	}
	if up.paypalReq != nil {
		t.Fatal("no fallback provider call expected")
	}
}

func TestCompleteSuccessClearsCart(t *testing.T) {
	carts := &stubCarts{cart: twoLineCart()}
	svc, _ := NewService(&stubUpstream{}, carts, appCfg(), checkoutCfg())

	if err := svc.CompleteSuccess(context.Background(), "visitor-1"); err != nil {
		t.Fatalf("CompleteSuccess: %v", err)
	}
	if len(carts.cleared) != 1 || carts.cleared[0] != "visitor-1" {
		t.Fatalf("expected cart cleared once, got %v", carts.cleared)
	}
}

func TestParseProvider(t *testing.T) {
	if p, err := ParseProvider(" Stripe "); err != nil || p != ProviderStripe {
		t.Fatalf("expected stripe, got %v %v", p, err)
	}
	if p, err := ParseProvider("paypal"); err != nil || p != ProviderPayPal {
		t.Fatalf("expected paypal, got %v %v", p, err)
	}
	if _, err := ParseProvider("venmo"); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
