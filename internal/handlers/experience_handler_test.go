package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceListSortedByOrder(t *testing.T) {
	env := newTestEnv(t)

	first := env.doJSON(t, http.MethodPost, "/api/experience", env.token, map[string]interface{}{
		"company":  "Later Corp",
		"role":     "Engineer",
		"duration": "2020 - 2022",
		"order":    2,
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := env.doJSON(t, http.MethodPost, "/api/experience", env.token, map[string]interface{}{
		"company":  "Current Inc",
		"role":     "Senior Engineer",
		"duration": "2022 - Present",
		"order":    1,
	})
	require.Equal(t, http.StatusCreated, second.Code)

	list := env.doJSON(t, http.MethodGet, "/api/experience", "", nil)
	require.Equal(t, http.StatusOK, list.Code)

	var entries []struct {
		Company string `json:"company"`
		Order   int    `json:"order"`
	}
	decodeJSON(t, list, &entries)
	require.Len(t, entries, 2)
	assert.Equal(t, "Current Inc", entries[0].Company)
	assert.Equal(t, "Later Corp", entries[1].Company)
}

func TestExperienceMutationsRequireToken(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]interface{}{
		"company":  "Acme",
		"role":     "Engineer",
		"duration": "2020",
	}

	assert.Equal(t, http.StatusUnauthorized, env.doJSON(t, http.MethodPost, "/api/experience", "", body).Code)
	assert.Equal(t, http.StatusUnauthorized, env.doJSON(t, http.MethodPut, "/api/experience/some-id", "", body).Code)
	assert.Equal(t, http.StatusUnauthorized, env.doJSON(t, http.MethodDelete, "/api/experience/some-id", "", nil).Code)
}

func TestReviewCreateDefaultsRating(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/reviews", env.token, map[string]interface{}{
		"clientName": "John Doe",
		"review":     "Great work",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Rating int `json:"rating"`
	}
	decodeJSON(t, w, &resp)
	assert.Equal(t, 5, resp.Rating)
}

func TestReviewCreateRejectsOutOfRangeRating(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/reviews", env.token, map[string]interface{}{
		"clientName": "John Doe",
		"review":     "Great work",
		"rating":     9,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
