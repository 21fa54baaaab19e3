package upstream

import "time"

// The front end never validates these beyond what the API enforces; they are
// transient copies fetched per screen view.

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Venue     string    `json:"venue"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Date      time.Time `json:"date"`
	TicketURL string    `json:"ticket_url,omitempty"`
	SoldOut   bool      `json:"sold_out"`
}

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	PriceCents  int64    `json:"price_cents"`
	Currency    string   `json:"currency"`
	ImageURL    string   `json:"image_url,omitempty"`
	Variants    []string `json:"variants,omitempty"`
	Stock       int      `json:"stock"`
	Active      bool     `json:"active"`
}

// CheckoutLineItem carries product id and quantity only. Prices are re-derived
// server-side and must never be trusted from this client.
type CheckoutLineItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Variant   *int   `json:"variant,omitempty"`
}

type CheckoutSessionRequest struct {
	Items           []CheckoutLineItem `json:"items"`
	Currency        string             `json:"currency"`
	SuccessURL      string             `json:"success_url"`
	CancelURL       string             `json:"cancel_url"`
	CollectShipping bool               `json:"collect_shipping"`
}

type CheckoutSession struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

type OrderItem struct {
	ProductID      string `json:"product_id"`
	Title          string `json:"title"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Variant        *int   `json:"variant,omitempty"`
}

type Order struct {
	ID          string      `json:"id"`
	Number      string      `json:"number"`
	Email       string      `json:"email"`
	Status      string      `json:"status"`
	TotalCents  int64       `json:"total_cents"`
	Currency    string      `json:"currency"`
	Items       []OrderItem `json:"items"`
	TrackingID  string      `json:"tracking_id,omitempty"`
	Exported    bool        `json:"exported"`
	CreatedAt   time.Time   `json:"created_at"`
	FulfilledAt *time.Time  `json:"fulfilled_at,omitempty"`
}

type FulfillOrderRequest struct {
	TrackingID string `json:"tracking_id,omitempty"`
	Carrier    string `json:"carrier,omitempty"`
}

type Promotion struct {
	ID         string     `json:"id"`
	Code       string     `json:"code"`
	PercentOff int        `json:"percent_off"`
	StartsAt   *time.Time `json:"starts_at,omitempty"`
	EndsAt     *time.Time `json:"ends_at,omitempty"`
	Active     bool       `json:"active"`
}

type GiftCard struct {
	ID                  string `json:"id"`
	Code                string `json:"code"`
	OriginalAmountCents int64  `json:"original_amount_cents"`
	BalanceCents        int64  `json:"balance_cents"`
	Currency            string `json:"currency"`
	Active              bool   `json:"active"`
}

type CreateGiftCardRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}

type ShippingOption struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	PriceCents int64    `json:"price_cents"`
	Countries  []string `json:"countries,omitempty"`
}

type GalleryImage struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Caption   string `json:"caption,omitempty"`
	SortOrder int    `json:"sort_order"`
}

type Track struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Album           string `json:"album,omitempty"`
	DurationSeconds int    `json:"duration_seconds"`
	PreviewURL      string `json:"preview_url,omitempty"`
	SortOrder       int    `json:"sort_order"`
}

// CatalogToken is a short-lived credential for the public music-catalog API,
// brokered by the band backend.
type CatalogToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}
