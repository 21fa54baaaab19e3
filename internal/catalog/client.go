package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hollowcoast/hollowcoast-web/pkg/config"
	pkgerrors "github.com/hollowcoast/hollowcoast-web/pkg/errors"
)

// Artist is the public music-catalog record for the band.
type Artist struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Bio      string `json:"bio,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type Album struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	CoverURL    string `json:"cover_url,omitempty"`
	TrackCount  int    `json:"track_count"`
}

type Track struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	AlbumID    string `json:"album_id"`
	DurationMs int    `json:"duration_ms"`
	PreviewURL string `json:"preview_url,omitempty"`
}

type tokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Service reads the band's public music-catalog data with a brokered token.
type Service interface {
	Artist(ctx context.Context) (*Artist, error)
	Albums(ctx context.Context) ([]Album, error)
	AlbumTracks(ctx context.Context, albumID string) ([]Track, error)
}

type client struct {
	baseURL  string
	artistID string
	http     *http.Client
	tokens   tokenProvider
}

// NewClient builds the catalog API client. The artist id is fixed per deploy;
// every lookup is scoped to it.
func NewClient(cfg config.CatalogConfig, tokens tokenProvider) (Service, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("catalog base url is required")
	}
	if cfg.ArtistID == "" {
		return nil, fmt.Errorf("catalog artist id is required")
	}
	if tokens == nil {
		return nil, fmt.Errorf("token provider is required")
	}
	return &client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		artistID: cfg.ArtistID,
		http:     &http.Client{Timeout: cfg.Timeout},
		tokens:   tokens,
	}, nil
}

func (c *client) Artist(ctx context.Context) (*Artist, error) {
	var artist Artist
	if err := c.get(ctx, "/artists/"+url.PathEscape(c.artistID), &artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

func (c *client) Albums(ctx context.Context) ([]Album, error) {
	var albums []Album
	if err := c.get(ctx, "/artists/"+url.PathEscape(c.artistID)+"/albums", &albums); err != nil {
		return nil, err
	}
	return albums, nil
}

func (c *client) AlbumTracks(ctx context.Context, albumID string) ([]Track, error) {
	if albumID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "album id is required")
	}
	var tracks []Track
	if err := c.get(ctx, "/albums/"+url.PathEscape(albumID)+"/tracks", &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

func (c *client) get(ctx context.Context, path string, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build catalog request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "catalog request")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return pkgerrors.New(pkgerrors.CodeNotFound, "catalog record not found")
	case resp.StatusCode >= 400:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return pkgerrors.New(pkgerrors.CodeDependency,
			fmt.Sprintf("catalog api returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode catalog response")
	}
	return nil
}
