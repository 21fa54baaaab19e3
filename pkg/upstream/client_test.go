package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hollowcoast/hollowcoast-web/pkg/config"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.UpstreamConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, server
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient(config.UpstreamConfig{}); err == nil {
		t.Fatal("expected error for empty base url")
	}
}

func TestLoginSendsCredentialsAndDecodesResult(t *testing.T) {
	var gotBody map[string]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(LoginResult{
			Token: "tok-123",
			User:  User{ID: "u1", Email: "mgr@hollowcoast.example", Role: "admin"},
		})
	}))

	result, err := client.Login(context.Background(), "mgr@hollowcoast.example", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if gotBody["email"] != "mgr@hollowcoast.example" || gotBody["password"] != "hunter2" {
		t.Fatalf("unexpected credentials payload: %v", gotBody)
	}
	if result.Token != "tok-123" || result.User.ID != "u1" {
		t.Fatalf("unexpected login result: %+v", result)
	}
}

func TestMeAttachesBearerToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Fatalf("unexpected authorization header %q", got)
		}
		json.NewEncoder(w).Encode(User{ID: "u1"})
	}))

	user, err := client.Me(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if user.ID != "u1" {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"nope"}`, http.StatusUnauthorized)
	}))

	_, err := client.Me(context.Background(), "stale")
	if err == nil {
		t.Fatal("expected error for 401")
	}
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401 APIError, got %v", err)
	}
}

func TestCreateStripeSessionOmitsPrices(t *testing.T) {
	var raw map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/checkout/stripe/session" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(CheckoutSession{SessionID: "cs_1", URL: "https://pay.example/cs_1"})
	}))

	session, err := client.CreateStripeSession(context.Background(), CheckoutSessionRequest{
		Items:      []CheckoutLineItem{{ProductID: "p1", Quantity: 2}},
		Currency:   "USD",
		SuccessURL: "https://hollowcoast.example/checkout/success",
		CancelURL:  "https://hollowcoast.example/checkout/cancel",
	})
	if err != nil {
		t.Fatalf("CreateStripeSession: %v", err)
	}
	if session.URL != "https://pay.example/cs_1" {
		t.Fatalf("unexpected session url %q", session.URL)
	}

	items, ok := raw["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one line item, got %v", raw["items"])
	}
	line := items[0].(map[string]any)
	if _, hasPrice := line["price_cents"]; hasPrice {
		t.Fatal("line items must not carry a price field")
	}
	if line["product_id"] != "p1" || line["quantity"] != float64(2) {
		t.Fatalf("unexpected line item %v", line)
	}
}

func TestExportOrdersCSVReturnsRawBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders/export/csv" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("number,total\nHC-1,25.99\n"))
	}))

	body, contentType, err := client.ExportOrdersCSV(context.Background(), "tok")
	if err != nil {
		t.Fatalf("ExportOrdersCSV: %v", err)
	}
	if contentType != "text/csv" {
		t.Fatalf("unexpected content type %q", contentType)
	}
	if string(body) != "number,total\nHC-1,25.99\n" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestTrackOrderEncodesQuery(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders/track" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("number") != "HC-42" || r.URL.Query().Get("email") != "fan@example.com" {
			t.Fatalf("unexpected query %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(Order{ID: "o1", Number: "HC-42", Status: "shipped"})
	}))

	order, err := client.TrackOrder(context.Background(), "HC-42", "fan@example.com")
	if err != nil {
		t.Fatalf("TrackOrder: %v", err)
	}
	if order.Status != "shipped" {
		t.Fatalf("unexpected order %+v", order)
	}
}
