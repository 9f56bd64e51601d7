package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"

	"recipefinder/internal/api"
	"recipefinder/internal/domain"
	"recipefinder/internal/provider"
)

// Provider is the upstream recipe API the handlers proxy to
type Provider interface {
	Autocomplete(ctx context.Context, query string, number int) ([]domain.Suggestion, error)
	SearchRecipes(ctx context.Context, p provider.SearchParams) (domain.RecipePage, error)
	RecipeInformation(ctx context.Context, id int) (domain.Recipe, error)
}

type Handlers struct {
	provider        Provider
	pageSize        int
	suggestionCount int
	logger          *log.Logger
}

func NewHandlers(p Provider, pageSize, suggestionCount int, logger *log.Logger) *Handlers {
	return &Handlers{
		provider:        p,
		pageSize:        pageSize,
		suggestionCount: suggestionCount,
		logger:          logger,
	}
}

func (h *Handlers) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeJSON(w, http.StatusOK, ok([]api.SuggestionJSON{}))
		return
	}

	list, err := h.provider.Autocomplete(r.Context(), query, h.suggestionCount)
	if err != nil {
		h.logger.Error("autocomplete failed", "query", query, "err", err, "request_id", RequestID(r.Context()))
		writeJSON(w, http.StatusOK, fail[[]api.SuggestionJSON](err))
		return
	}
	writeJSON(w, http.StatusOK, ok(api.SuggestionsToJSON(list)))
}

func (h *Handlers) HandleRecipes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	offset := 0
	if s := q.Get("offset"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, failMsg[api.RecipesJSON]("invalid offset"))
			return
		}
		offset = n
	}

	page, err := h.provider.SearchRecipes(r.Context(), provider.SearchParams{
		Query:  q.Get("query"),
		Sort:   q.Get("sort"),
		Offset: offset,
		Number: h.pageSize,
	})
	if err != nil {
		h.logger.Error("search failed", "query", q.Get("query"), "err", err, "request_id", RequestID(r.Context()))
		writeJSON(w, http.StatusOK, fail[api.RecipesJSON](err))
		return
	}
	writeJSON(w, http.StatusOK, ok(api.PageToJSON(page)))
}

func (h *Handlers) HandleRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, failMsg[api.RecipeJSON]("invalid id"))
		return
	}

	recipe, err := h.provider.RecipeInformation(r.Context(), id)
	if err != nil {
		h.logger.Error("recipe failed", "id", id, "err", err, "request_id", RequestID(r.Context()))
		writeJSON(w, http.StatusOK, fail[api.RecipeJSON](err))
		return
	}
	writeJSON(w, http.StatusOK, ok(api.RecipeToJSON(recipe)))
}

func ok[T any](v T) api.Envelope[T] {
	return api.Envelope[T]{Data: &v}
}

func fail[T any](err error) api.Envelope[T] {
	return failMsg[T](err.Error())
}

func failMsg[T any](msg string) api.Envelope[T] {
	return api.Envelope[T]{Error: &msg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
