package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/hollowcoast/hollowcoast-web/internal/cart"
	"github.com/hollowcoast/hollowcoast-web/pkg/config"
	pkgerrors "github.com/hollowcoast/hollowcoast-web/pkg/errors"
	"github.com/hollowcoast/hollowcoast-web/pkg/upstream"
)

// Provider selects which payment backend hosts the session.
type Provider string

const (
	ProviderStripe Provider = "stripe"
	ProviderPayPal Provider = "paypal"
)

// ParseProvider validates a raw provider value.
func ParseProvider(value string) (Provider, error) {
	switch Provider(strings.ToLower(strings.TrimSpace(value))) {
	case ProviderStripe:
		return ProviderStripe, nil
	case ProviderPayPal:
		return ProviderPayPal, nil
	}
	return "", pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown payment provider %q", value))
}

type sessionCreator interface {
	CreateStripeSession(ctx context.Context, req upstream.CheckoutSessionRequest) (*upstream.CheckoutSession, error)
	CreatePayPalOrder(ctx context.Context, req upstream.CheckoutSessionRequest) (*upstream.CheckoutSession, error)
}

type cartReader interface {
	Get(ctx context.Context, cartID string) (*cart.Cart, error)
	Clear(ctx context.Context, cartID string) error
}

// Service converts the current cart into a payment-session request and hands
// back the provider-hosted URL the browser redirects to.
type Service interface {
	Initiate(ctx context.Context, cartID string, provider Provider) (*upstream.CheckoutSession, error)
	CompleteSuccess(ctx context.Context, cartID string) error
}

type service struct {
	upstream        sessionCreator
	carts           cartReader
	successURL      string
	cancelURL       string
	collectShipping bool
}

// NewService wires the checkout initiator. Return URLs are same-origin, fixed
// paths on the public site.
func NewService(up sessionCreator, carts cartReader, appCfg config.AppConfig, checkoutCfg config.CheckoutConfig) (Service, error) {
	if up == nil {
		return nil, fmt.Errorf("upstream client is required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart service is required")
	}
	base := strings.TrimRight(appCfg.SiteBaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("site base url is required")
	}
	return &service{
		upstream:        up,
		carts:           carts,
		successURL:      base + checkoutCfg.SuccessPath,
		cancelURL:       base + checkoutCfg.CancelPath,
		collectShipping: checkoutCfg.CollectShipping,
	}, nil
}

// Initiate builds the session-creation request from the current cart. Line
// items carry product id and quantity only; the backend re-derives prices.
// The cart is left intact: clearing happens on the success return, so an
// abandoned payment keeps the cart. Errors propagate with no retry.
func (s *service) Initiate(ctx context.Context, cartID string, provider Provider) (*upstream.CheckoutSession, error) {
	current, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if current.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	req := upstream.CheckoutSessionRequest{
		Items:           make([]upstream.CheckoutLineItem, 0, len(current.Items)),
		Currency:        current.Currency(),
		SuccessURL:      s.successURL,
		CancelURL:       s.cancelURL,
		CollectShipping: s.collectShipping,
	}
	for _, item := range current.Items {
		req.Items = append(req.Items, upstream.CheckoutLineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Variant:   item.Variant,
		})
	}

	var session *upstream.CheckoutSession
	switch provider {
	case ProviderStripe:
		session, err = s.upstream.CreateStripeSession(ctx, req)
	case ProviderPayPal:
		session, err = s.upstream.CreatePayPalOrder(ctx, req)
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown payment provider %q", provider))
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create checkout session")
	}
	if session.URL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "payment backend returned no session url")
	}
	return session, nil
}

// CompleteSuccess clears the cart once the success return page loads. Cancel
// returns and failed sessions deliberately leave the cart alone.
func (s *service) CompleteSuccess(ctx context.Context, cartID string) error {
	return s.carts.Clear(ctx, cartID)
}
