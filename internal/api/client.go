// Package api is the terminal client of the recipefinder proxy and the
// wire types shared with its server.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"recipefinder/internal/domain"
	"recipefinder/internal/logging"
)

const (
	SuggestionsPath = "/api/search-suggestions"
	RecipesPath     = "/api/recipes"
)

var (
	// ErrStatus wraps any non-200 response
	ErrStatus = errors.New("api: unexpected status")
	// ErrRemote is returned when the proxy answers with its error field set
	ErrRemote = errors.New("api: remote error")
)

// Client calls the proxy endpoints
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a client for the proxy at baseURL
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logging.New("api"),
	}
}

// Suggestions fetches completions for phrase. A null or empty data field
// means no suggestions.
func (c *Client) Suggestions(ctx context.Context, phrase string) ([]domain.Suggestion, error) {
	var env Envelope[[]SuggestionJSON]
	if err := c.get(ctx, SuggestionsPath, url.Values{"query": {phrase}}, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		if env.Error != nil {
			return nil, fmt.Errorf("%w: %s", ErrRemote, *env.Error)
		}
		return []domain.Suggestion{}, nil
	}

	list := suggestionsFromJSON(*env.Data)
	c.logger.Debug("fetched suggestions", "phrase", phrase, "count", len(list))
	return list, nil
}

// Recipes fetches one page of search results starting at offset
func (c *Client) Recipes(ctx context.Context, query, sort string, offset int) (domain.RecipePage, error) {
	params := url.Values{"query": {query}, "offset": {strconv.Itoa(offset)}}
	if sort != "" {
		params.Set("sort", sort)
	}

	var env Envelope[RecipesJSON]
	if err := c.get(ctx, RecipesPath, params, &env); err != nil {
		return domain.RecipePage{}, err
	}
	if env.Data == nil {
		return domain.RecipePage{}, remoteErr(env.Error)
	}
	return pageFromJSON(*env.Data), nil
}

// Recipe fetches the full recipe for id
func (c *Client) Recipe(ctx context.Context, id int) (domain.Recipe, error) {
	var env Envelope[RecipeJSON]
	if err := c.get(ctx, fmt.Sprintf("%s/%d", RecipesPath, id), nil, &env); err != nil {
		return domain.Recipe{}, err
	}
	if env.Data == nil {
		return domain.Recipe{}, remoteErr(env.Error)
	}
	return recipeFromJSON(*env.Data), nil
}

func remoteErr(msg *string) error {
	if msg == nil {
		return fmt.Errorf("%w: empty response", ErrRemote)
	}
	return fmt.Errorf("%w: %s", ErrRemote, *msg)
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d from %s", ErrStatus, resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
