// Package provider talks to the upstream recipe API (Spoonacular) and
// reshapes its responses into domain types.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"recipefinder/internal/domain"
	"recipefinder/internal/logging"
)

const (
	DefaultBaseURL = "https://api.spoonacular.com"
	imageBaseURL   = "https://spoonacular.com/recipeImages"
	defaultTimeout = 10 * time.Second
)

var (
	// ErrMissingAPIKey is returned when no provider key is configured
	ErrMissingAPIKey = errors.New("provider: API key required")
	// ErrUnexpectedStatus wraps any non-200 upstream response
	ErrUnexpectedStatus = errors.New("provider: unexpected status")
)

var htmlTag = regexp.MustCompile(`<[^>]*>`)

// Config configures a Client
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// SearchParams selects one page of full-text search results
type SearchParams struct {
	Query  string
	Sort   string
	Offset int
	Number int
}

// Client is a Spoonacular API client. Identical concurrent calls share one
// upstream request.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	group      singleflight.Group
	logger     *log.Logger
}

// NewClient creates a client. The API key is mandatory.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logging.New("provider"),
	}, nil
}

// Autocomplete returns up to number recipe-name completions for query
func (c *Client) Autocomplete(ctx context.Context, query string, number int) ([]domain.Suggestion, error) {
	params := url.Values{"query": {query}, "number": {strconv.Itoa(number)}}
	key := "autocomplete?" + params.Encode()

	v, err := c.shared(ctx, key, func(ctx context.Context) (interface{}, error) {
		var items []autocompleteItem
		if err := c.get(ctx, "/recipes/autocomplete", params, &items); err != nil {
			return nil, err
		}
		return items, nil
	})
	if err != nil {
		return nil, fmt.Errorf("autocomplete %q: %w", query, err)
	}

	items := v.([]autocompleteItem)
	out := make([]domain.Suggestion, 0, len(items))
	for _, it := range items {
		out = append(out, domain.Suggestion{ID: it.ID, Name: it.Title})
	}
	return out, nil
}

// SearchRecipes runs a full-text search and fetches card details for one page
func (c *Client) SearchRecipes(ctx context.Context, p SearchParams) (domain.RecipePage, error) {
	params := url.Values{
		"query":  {p.Query},
		"sort":   {p.Sort},
		"offset": {strconv.Itoa(p.Offset)},
		"number": {strconv.Itoa(p.Number)},
	}
	key := "search?" + params.Encode()

	v, err := c.shared(ctx, key, func(ctx context.Context) (interface{}, error) {
		var search complexSearchResponse
		if err := c.get(ctx, "/recipes/complexSearch", params, &search); err != nil {
			return nil, err
		}

		page := domain.RecipePage{TotalCount: search.TotalResults, Cards: []domain.RecipeCard{}}
		if len(search.Results) == 0 {
			return page, nil
		}

		ids := make([]string, 0, len(search.Results))
		for _, r := range search.Results {
			ids = append(ids, strconv.Itoa(r.ID))
		}

		var infos []recipeInformation
		if err := c.get(ctx, "/recipes/informationBulk", url.Values{"ids": {strings.Join(ids, ",")}}, &infos); err != nil {
			return nil, err
		}
		for _, info := range infos {
			page.Cards = append(page.Cards, toCard(info))
		}
		return page, nil
	})
	if err != nil {
		return domain.RecipePage{}, fmt.Errorf("search %q: %w", p.Query, err)
	}
	return v.(domain.RecipePage), nil
}

// RecipeInformation returns the full recipe for id
func (c *Client) RecipeInformation(ctx context.Context, id int) (domain.Recipe, error) {
	key := "recipe/" + strconv.Itoa(id)

	v, err := c.shared(ctx, key, func(ctx context.Context) (interface{}, error) {
		var info recipeInformation
		path := fmt.Sprintf("/recipes/%d/information", id)
		if err := c.get(ctx, path, nil, &info); err != nil {
			return nil, err
		}
		return toRecipe(info), nil
	})
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("recipe %d: %w", id, err)
	}
	return v.(domain.Recipe), nil
}

// shared runs fn once for all concurrent callers of key. The upstream call
// is detached from the caller's cancellation and bounded by the client
// timeout, so one caller giving up never fails the others.
func (c *Client) shared(ctx context.Context, key string, fn func(context.Context) (interface{}, error)) (interface{}, error) {
	ch := c.group.DoChan(key, func() (interface{}, error) {
		return fn(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Cache-Control", "max-age=3600")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("provider quota",
		"path", path,
		"used", resp.Header.Get("X-API-Quota-Used"),
		"left", resp.Header.Get("X-API-Quota-Left"))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d from %s", ErrUnexpectedStatus, resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// RecipeHref is the client-side route of a recipe
func RecipeHref(id int) string {
	return fmt.Sprintf("/recipes/%d", id)
}

// ImageURL is the 556x370 rendition of a recipe image
func ImageURL(id int, imageType string) string {
	if imageType == "" {
		return ""
	}
	return fmt.Sprintf("%s/%d-556x370.%s", imageBaseURL, id, imageType)
}

// score maps the provider's 0-100 score onto the 0-10 rating scale
func score(s *float64) float64 {
	if s == nil {
		return 0
	}
	return *s / 10
}

func toCard(info recipeInformation) domain.RecipeCard {
	return domain.RecipeCard{
		ID:            info.ID,
		Href:          RecipeHref(info.ID),
		ImageURL:      ImageURL(info.ID, info.ImageType),
		Title:         info.Title,
		Rating:        score(info.SpoonacularScore),
		TimeInMinutes: info.ReadyInMinutes,
	}
}

func toRecipe(info recipeInformation) domain.Recipe {
	r := domain.Recipe{
		ID:            info.ID,
		Title:         info.Title,
		Description:   strings.TrimSpace(htmlTag.ReplaceAllString(info.Summary, "")),
		ImageURL:      info.Image,
		Credits:       domain.Credits{Name: info.SourceName, URL: info.SourceURL},
		Portions:      info.Servings,
		Rating:        score(info.SpoonacularScore),
		TimeInMinutes: info.ReadyInMinutes,
		Ingredients:   make([]domain.Ingredient, 0, len(info.ExtendedIngredients)),
		Instructions:  make([]domain.InstructionPart, 0, len(info.AnalyzedInstructions)),
	}
	if r.ImageURL == "" {
		r.ImageURL = ImageURL(info.ID, info.ImageType)
	}

	for _, ing := range info.ExtendedIngredients {
		r.Ingredients = append(r.Ingredients, domain.Ingredient{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}

	for _, part := range info.AnalyzedInstructions {
		steps := make([]string, 0, len(part.Steps))
		for _, s := range part.Steps {
			steps = append(steps, s.Step)
		}
		r.Instructions = append(r.Instructions, domain.InstructionPart{Title: part.Name, Steps: steps})
	}
	return r
}
