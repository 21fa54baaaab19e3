package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/hollowcoast/hollowcoast-web/pkg/errors"
)

type samplePayload struct {
	Email    string `json:"email" validate:"required,email"`
	Quantity int    `json:"quantity" validate:"min=1"`
	Provider string `json:"provider" validate:"omitempty,oneof=stripe paypal"`
}

func decodeRequest(body string) (*samplePayload, error) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	var payload samplePayload
	err := DecodeJSONBody(req, &payload)
	return &payload, err
}

func TestDecodeJSONBodyAcceptsValidPayload(t *testing.T) {
	payload, err := decodeRequest(`{"email":"fan@example.com","quantity":2,"provider":"stripe"}`)
	require.NoError(t, err)
	assert.Equal(t, "fan@example.com", payload.Email)
	assert.Equal(t, 2, payload.Quantity)
}

func TestDecodeJSONBodyRejectsMalformedJSON(t *testing.T) {
	_, err := decodeRequest(`{`)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	_, err := decodeRequest(`{"email":"fan@example.com","quantity":1,"extra":true}`)
	require.Error(t, err)
}

func TestDecodeJSONBodyReportsFieldsByJSONName(t *testing.T) {
	_, err := decodeRequest(`{"email":"not-an-email","quantity":0}`)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	details, ok := typed.Details().(map[string]string)
	require.True(t, ok, "expected field details map")
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "quantity")
}

func TestDecodeJSONBodyOneofMessage(t *testing.T) {
	_, err := decodeRequest(`{"email":"fan@example.com","quantity":1,"provider":"venmo"}`)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	details, ok := typed.Details().(map[string]string)
	require.True(t, ok, "expected field details map")
	assert.Equal(t, "must be one of stripe paypal", details["provider"])
}

func TestRequireQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?code=GC-123", nil)
	value, err := RequireQuery(req, "code")
	require.NoError(t, err)
	assert.Equal(t, "GC-123", value)

	_, err = RequireQuery(req, "missing")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}
