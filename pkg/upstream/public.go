package upstream

import (
	"context"
	"net/http"
	"net/url"
)

// Login exchanges credentials for a bearer token and user record.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Me validates a bearer token and returns the current user.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user, withToken(token)); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListEvents returns the tour dates.
func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.do(ctx, http.MethodGet, "/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// SubmitContact forwards a contact-form message.
func (c *Client) SubmitContact(ctx context.Context, msg ContactMessage) error {
	return c.do(ctx, http.MethodPost, "/contact", msg, nil)
}

// ListProducts returns the shop catalog.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns a single product.
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateStripeSession asks the backend for a Stripe-hosted checkout session.
func (c *Client) CreateStripeSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSession, error) {
	var session CheckoutSession
	if err := c.do(ctx, http.MethodPost, "/checkout/stripe/session", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// CreatePayPalOrder asks the backend for a PayPal-hosted approval URL.
func (c *Client) CreatePayPalOrder(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSession, error) {
	var session CheckoutSession
	if err := c.do(ctx, http.MethodPost, "/checkout/paypal/order", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// TrackOrder looks up an order by its public number and the buyer's email.
func (c *Client) TrackOrder(ctx context.Context, number, email string) (*Order, error) {
	query := url.Values{}
	query.Set("number", number)
	query.Set("email", email)
	var order Order
	if err := c.do(ctx, http.MethodGet, "/orders/track?"+query.Encode(), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CatalogToken brokers a short-lived music-catalog access token.
func (c *Client) CatalogToken(ctx context.Context) (*CatalogToken, error) {
	var token CatalogToken
	if err := c.do(ctx, http.MethodGet, "/catalog/token", nil, &token); err != nil {
		return nil, err
	}
	return &token, nil
}
