package site

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/hollowcoast/hollowcoast-web/pkg/errors"
	"github.com/hollowcoast/hollowcoast-web/pkg/logger"
	"github.com/hollowcoast/hollowcoast-web/pkg/upstream"
)

// siteAPI is the public slice of the band API the site pages consume.
type siteAPI interface {
	ListEvents(ctx context.Context) ([]upstream.Event, error)
	SubmitContact(ctx context.Context, msg upstream.ContactMessage) error
	ListProducts(ctx context.Context) ([]upstream.Product, error)
	GetProduct(ctx context.Context, id string) (*upstream.Product, error)
	TrackOrder(ctx context.Context, number, email string) (*upstream.Order, error)
}

// ContactRequest is the contact-form payload, validated locally before any
// upstream call is made.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// TrackingRequest identifies an order by its public number and buyer email.
type TrackingRequest struct {
	Number string `json:"number" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
}

// Service serves the public pages: tour dates, contact form, shop listing and
// order tracking.
type Service interface {
	ListEvents(ctx context.Context) ([]upstream.Event, error)
	SubmitContact(ctx context.Context, req ContactRequest) error
	ListProducts(ctx context.Context) ([]upstream.Product, error)
	GetProduct(ctx context.Context, id string) (*upstream.Product, error)
	TrackOrder(ctx context.Context, req TrackingRequest) (*upstream.Order, error)
}

type service struct {
	api      siteAPI
	validate *validator.Validate
	logg     *logger.Logger
}

func NewService(api siteAPI, logg *logger.Logger) (Service, error) {
	if api == nil {
		return nil, fmt.Errorf("upstream client is required")
	}
	return &service{
		api:      api,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logg:     logg,
	}, nil
}

func (s *service) ListEvents(ctx context.Context) ([]upstream.Event, error) {
	events, err := s.api.ListEvents(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list events")
	}
	return events, nil
}

func (s *service) SubmitContact(ctx context.Context, req ContactRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "contact form")
	}
	msg := upstream.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.api.SubmitContact(ctx, msg); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "submit contact form")
	}
	return nil
}

func (s *service) ListProducts(ctx context.Context) ([]upstream.Product, error) {
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return products, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*upstream.Product, error) {
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	product, err := s.api.GetProduct(ctx, id)
	if err != nil {
		if upstream.IsStatus(err, http.StatusNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "get product")
	}
	return product, nil
}

func (s *service) TrackOrder(ctx context.Context, req TrackingRequest) (*upstream.Order, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "tracking form")
	}
	order, err := s.api.TrackOrder(ctx, req.Number, req.Email)
	if err != nil {
		if upstream.IsStatus(err, http.StatusNotFound) {
			// Deliberately vague: never confirm whether the number or the
			// email was the wrong half of the pair.
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no order matches that number and email")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "track order")
	}
	return order, nil
}
