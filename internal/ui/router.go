package ui

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"recipefinder/internal/domain"
)

// ErrUnknownRoute is returned for targets no page answers to
var ErrUnknownRoute = errors.New("unknown route")

// Route is a parsed navigation target
type Route struct {
	Kind     domain.NavigationKind
	RecipeID int
	Query    string
	Sort     string
}

// ParseTarget resolves "/recipes/<id>" and "/recipes?query=..." targets
func ParseTarget(target string) (Route, error) {
	u, err := url.Parse(target)
	if err != nil {
		return Route{}, fmt.Errorf("parse target %q: %w", target, err)
	}

	path := strings.TrimSuffix(u.Path, "/")
	switch {
	case path == "/recipes":
		q := u.Query()
		query := q.Get("query")
		if query == "" {
			return Route{}, fmt.Errorf("%w: %q has no query", ErrUnknownRoute, target)
		}
		return Route{Kind: domain.NavigateSearch, Query: query, Sort: q.Get("sort")}, nil

	case strings.HasPrefix(path, "/recipes/"):
		id, err := strconv.Atoi(strings.TrimPrefix(path, "/recipes/"))
		if err != nil || id <= 0 {
			return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, target)
		}
		return Route{Kind: domain.NavigateRecipe, RecipeID: id}, nil
	}

	return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, target)
}
