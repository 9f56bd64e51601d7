package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipefinder/internal/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 0)
}

func TestSuggestions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, SuggestionsPath, r.URL.Path)
		assert.Equal(t, "pa", r.URL.Query().Get("query"))
		w.Write([]byte(`{"data":[{"suggestionId":1,"suggestionName":"pasta"},{"suggestionId":2,"suggestionName":"paella"}],"error":null}`))
	})

	got, err := c.Suggestions(context.Background(), "pa")
	require.NoError(t, err)
	assert.Equal(t, []domain.Suggestion{{ID: 1, Name: "pasta"}, {ID: 2, Name: "paella"}}, got)
}

func TestSuggestionsEmptyPayloads(t *testing.T) {
	for _, body := range []string{`{"data":null}`, `{"data":[]}`, `{}`} {
		t.Run(body, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})

			got, err := c.Suggestions(context.Background(), "pa")
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestSuggestionsFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		target error
	}{
		{"server error", http.StatusInternalServerError, ``, ErrStatus},
		{"remote error", http.StatusOK, `{"data":null,"error":"quota exceeded"}`, ErrRemote},
		{"malformed body", http.StatusOK, `[1,2`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := c.Suggestions(context.Background(), "pa")
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestRecipes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, RecipesPath, r.URL.Path)
		assert.Equal(t, "pasta", r.URL.Query().Get("query"))
		assert.Equal(t, "24", r.URL.Query().Get("offset"))
		assert.Equal(t, "popularity", r.URL.Query().Get("sort"))
		w.Write([]byte(`{"data":{"cardsInfo":[{"id":7,"href":"/recipes/7","imageURL":"x","title":"Pasta","isFavorite":false,"rating":80,"timeInMinutes":20}],"totalRecipesFoundCount":30},"error":null}`))
	})

	page, err := c.Recipes(context.Background(), "pasta", "popularity", 24)
	require.NoError(t, err)
	assert.Equal(t, 30, page.TotalCount)
	require.Len(t, page.Cards, 1)
	assert.Equal(t, "Pasta", page.Cards[0].Title)
	assert.Equal(t, 20, page.Cards[0].TimeInMinutes)
}

func TestRecipe(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recipes/7", r.URL.Path)
		w.Write([]byte(`{"data":{"id":7,"title":"Pasta","portions":2,"credits":{"name":"Kitchen","url":""},
			"ingredients":[{"name":"salt","amount":null,"unit":""}],
			"instructions":[{"title":"","steps":["Boil."]}]},"error":null}`))
	})

	r, err := c.Recipe(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Pasta", r.Title)
	assert.Equal(t, 2, r.Portions)
	assert.Equal(t, "Kitchen", r.Credits.Name)
	require.Len(t, r.Ingredients, 1)
	assert.Nil(t, r.Ingredients[0].Amount)
	assert.Equal(t, []string{"Boil."}, r.Instructions[0].Steps)
}

func TestRecipeRemoteError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":null,"error":"not found"}`))
	})

	_, err := c.Recipe(context.Background(), 7)
	assert.ErrorIs(t, err, ErrRemote)
}
