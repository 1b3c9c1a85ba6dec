package books

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/platform/apierror"
)

func newTestRouter(fs *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	RegisterRoutes(api, &Service{store: fs})
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddBookOverHTTP(t *testing.T) {
	fs := &fakeStore{}
	r := newTestRouter(fs)

	w := postJSON(r, "/api/books", `{"title":"Dune","author":"Herbert","copies_total":3}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res CreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, 3, fs.inserted[0].CopiesAvailable)
}

func TestAddBookValidation(t *testing.T) {
	fs := &fakeStore{}
	r := newTestRouter(fs)

	cases := []struct {
		name string
		body string
	}{
		{"missing title", `{"author":"Herbert"}`},
		{"missing author", `{"title":"Dune"}`},
		{"year out of range", `{"title":"Dune","author":"Herbert","published_year":2200}`},
		{"negative copies", `{"title":"Dune","author":"Herbert","copies_total":-1}`},
		{"broken json", `{"title":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(r, "/api/books", tc.body)
			require.Equal(t, http.StatusUnprocessableEntity, w.Code)

			var body apierror.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, apierror.CodeUnprocessable, body.Error.Code)
		})
	}
	assert.Empty(t, fs.inserted)
}

func TestListBooksOverHTTP(t *testing.T) {
	fs := &fakeStore{listed: []Book{{Title: "Dune", Author: "Herbert", CopiesTotal: 1, CopiesAvailable: 1}}}
	r := newTestRouter(fs)

	req := httptest.NewRequest(http.MethodGet, "/api/books?q=dune", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dune", fs.lastQ)

	var res []BookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res, 1)
	assert.Equal(t, "Dune", res[0].Title)
}
