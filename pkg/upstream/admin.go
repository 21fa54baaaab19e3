package upstream

import (
	"context"
	"net/http"
	"net/url"
)

// Admin endpoints. Every call carries the bearer token obtained at login; the
// API is the sole authority on what the token may do.

func (c *Client) ListOrders(ctx context.Context, token string) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders, withToken(token)); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, token, id string) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, &order, withToken(token)); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) FulfillOrder(ctx context.Context, token, id string, req FulfillOrderRequest) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/orders/"+url.PathEscape(id)+"/fulfill", req, &order, withToken(token)); err != nil {
		return nil, err
	}
	return &order, nil
}

// ExportOrdersCSV downloads the accounting export. The payload is returned
// verbatim together with its content type.
func (c *Client) ExportOrdersCSV(ctx context.Context, token string) ([]byte, string, error) {
	return c.doRaw(ctx, http.MethodGet, "/orders/export/csv", token)
}

// MarkOrdersExported flags the exported orders so the next export skips them.
func (c *Client) MarkOrdersExported(ctx context.Context, token string, orderIDs []string) error {
	body := map[string][]string{"order_ids": orderIDs}
	return c.do(ctx, http.MethodPost, "/orders/export/mark", body, nil, withToken(token))
}

// ListAllProducts returns the full catalog for the admin screens, inactive
// products included. The public listing only shows active ones.
func (c *Client) ListAllProducts(ctx context.Context, token string) ([]Product, error) {
	query := url.Values{}
	query.Set("include_inactive", "true")
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products?"+query.Encode(), nil, &products, withToken(token)); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, product Product) (*Product, error) {
	var created Product
	if err := c.do(ctx, http.MethodPost, "/products", product, &created, withToken(token)); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, product Product) (*Product, error) {
	var updated Product
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), product, &updated, withToken(token)); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil, withToken(token))
}

func (c *Client) ListPromotions(ctx context.Context, token string) ([]Promotion, error) {
	var promotions []Promotion
	if err := c.do(ctx, http.MethodGet, "/promotions", nil, &promotions, withToken(token)); err != nil {
		return nil, err
	}
	return promotions, nil
}

func (c *Client) CreatePromotion(ctx context.Context, token string, promo Promotion) (*Promotion, error) {
	var created Promotion
	if err := c.do(ctx, http.MethodPost, "/promotions", promo, &created, withToken(token)); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePromotion(ctx context.Context, token, id string, promo Promotion) (*Promotion, error) {
	var updated Promotion
	if err := c.do(ctx, http.MethodPut, "/promotions/"+url.PathEscape(id), promo, &updated, withToken(token)); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeletePromotion(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/promotions/"+url.PathEscape(id), nil, nil, withToken(token))
}

func (c *Client) ListGiftCards(ctx context.Context, token string) ([]GiftCard, error) {
	var cards []GiftCard
	if err := c.do(ctx, http.MethodGet, "/gift-cards", nil, &cards, withToken(token)); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *Client) CreateGiftCard(ctx context.Context, token string, req CreateGiftCardRequest) (*GiftCard, error) {
	var card GiftCard
	if err := c.do(ctx, http.MethodPost, "/gift-cards", req, &card, withToken(token)); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) DisableGiftCard(ctx context.Context, token, id string) (*GiftCard, error) {
	var card GiftCard
	if err := c.do(ctx, http.MethodPost, "/gift-cards/"+url.PathEscape(id)+"/disable", nil, &card, withToken(token)); err != nil {
		return nil, err
	}
	return &card, nil
}

// CheckGiftCard returns the authoritative balance for a code.
func (c *Client) CheckGiftCard(ctx context.Context, token, code string) (*GiftCard, error) {
	query := url.Values{}
	query.Set("code", code)
	var card GiftCard
	if err := c.do(ctx, http.MethodGet, "/gift-cards/check?"+query.Encode(), nil, &card, withToken(token)); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) GetShippingOptions(ctx context.Context, token string) ([]ShippingOption, error) {
	var options []ShippingOption
	if err := c.do(ctx, http.MethodGet, "/shipping", nil, &options, withToken(token)); err != nil {
		return nil, err
	}
	return options, nil
}

func (c *Client) UpdateShippingOptions(ctx context.Context, token string, options []ShippingOption) ([]ShippingOption, error) {
	var updated []ShippingOption
	if err := c.do(ctx, http.MethodPut, "/shipping", options, &updated, withToken(token)); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) ListGalleryImages(ctx context.Context, token string) ([]GalleryImage, error) {
	var images []GalleryImage
	if err := c.do(ctx, http.MethodGet, "/gallery", nil, &images, withToken(token)); err != nil {
		return nil, err
	}
	return images, nil
}

func (c *Client) CreateGalleryImage(ctx context.Context, token string, image GalleryImage) (*GalleryImage, error) {
	var created GalleryImage
	if err := c.do(ctx, http.MethodPost, "/gallery", image, &created, withToken(token)); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteGalleryImage(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/gallery/"+url.PathEscape(id), nil, nil, withToken(token))
}

func (c *Client) ListTracks(ctx context.Context, token string) ([]Track, error) {
	var tracks []Track
	if err := c.do(ctx, http.MethodGet, "/tracks", nil, &tracks, withToken(token)); err != nil {
		return nil, err
	}
	return tracks, nil
}

func (c *Client) CreateTrack(ctx context.Context, token string, track Track) (*Track, error) {
	var created Track
	if err := c.do(ctx, http.MethodPost, "/tracks", track, &created, withToken(token)); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTrack(ctx context.Context, token, id string, track Track) (*Track, error) {
	var updated Track
	if err := c.do(ctx, http.MethodPut, "/tracks/"+url.PathEscape(id), track, &updated, withToken(token)); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteTrack(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/tracks/"+url.PathEscape(id), nil, nil, withToken(token))
}
