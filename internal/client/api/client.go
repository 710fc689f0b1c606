// Package api is an HTTP client for the melodia server.
//
// Transport failures are reported as ErrUnavailable and 401/403 responses
// as ErrUnauthorized, so callers can match them with errors.Is. Other
// non-2xx responses come back as *netx.StatusError.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/melodia/internal/netx"
	"github.com/dmitrijs2005/melodia/internal/server/models"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type RegisterResponse struct {
	Message string         `json:"message"`
	Data    []*models.User `json:"data"`
}

type LoginResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*RegisterResponse, error) {
	in := map[string]string{"nome": name, "email": email, "senha": password}
	var out RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	in := map[string]string{"email": email, "senha": password}
	var out LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*models.PublicUser, error) {
	var out models.PublicUser
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListFavorites(ctx context.Context, userID string) ([]*models.Favorite, error) {
	var out []*models.Favorite
	if err := c.do(ctx, http.MethodGet, favoritesPath(userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddFavorite(ctx context.Context, userID string, musicID int64) ([]*models.Favorite, error) {
	in := map[string]int64{"musica_id": musicID}
	var out []*models.Favorite
	if err := c.do(ctx, http.MethodPost, favoritesPath(userID), in, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RemoveFavorite(ctx context.Context, userID string, musicID int64) ([]*models.Favorite, error) {
	var out []*models.Favorite
	p := favoritesPath(userID) + "/" + strconv.FormatInt(musicID, 10)
	if err := c.do(ctx, http.MethodDelete, p, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Health reports whether the server answers its liveness probe.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func favoritesPath(userID string) string {
	return "/users/" + url.PathEscape(userID) + "/favorites"
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	err := netx.DoJSON(ctx, c.httpClient, method, c.baseURL+path, c.token, in, out)
	return mapError(err)
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	var se *netx.StatusError
	if errors.As(err, &se) {
		switch se.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", ErrUnauthorized, se.Message)
		default:
			return err
		}
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
