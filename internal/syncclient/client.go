package syncclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// APIClient talks to one collection's REST endpoints.
type APIClient[T Record] struct {
	http *resty.Client
	path string
}

// NewAPIClient creates a client for one collection, e.g.
// NewAPIClient[models.Project]("http://localhost:5000", "/api/projects").
func NewAPIClient[T Record](baseURL, path string) *APIClient[T] {
	return &APIClient[T]{
		http: resty.New().SetBaseURL(baseURL),
		path: path,
	}
}

func (c *APIClient[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get(c.path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("GET %s: %s", c.path, resp.Status())
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (c *APIClient[T]) Create(ctx context.Context, item T) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(item).Post(c.path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("POST %s: %s", c.path, resp.Status())
	}
	return nil
}

func (c *APIClient[T]) Update(ctx context.Context, id string, item T) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(item).Put(c.path + "/" + id)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("PUT %s/%s: %s", c.path, id, resp.Status())
	}
	return nil
}

func (c *APIClient[T]) Delete(ctx context.Context, id string) error {
	resp, err := c.http.R().SetContext(ctx).Delete(c.path + "/" + id)
	if err != nil {
		return err
	}
	// Already gone on the server is success for a delete.
	if resp.IsError() && resp.StatusCode() != http.StatusNotFound {
		return fmt.Errorf("DELETE %s/%s: %s", c.path, id, resp.Status())
	}
	return nil
}
