package render

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mytheresa/product-entry/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listPage struct {
	Title    string
	Category string
	Products []models.Product
}

func TestRender(t *testing.T) {
	renderer, err := New()
	require.NoError(t, err)

	testCases := []struct {
		name           string
		template       string
		status         int
		data           any
		expectedStatus int
		contains       []string
		notContains    []string
	}{
		{
			name:           "Home page",
			template:       Home,
			status:         http.StatusOK,
			data:           struct{ Title string }{Title: "Home"},
			expectedStatus: http.StatusOK,
			contains:       []string{"<title>Home</title>", `href="/dataentry"`, `href="/dataretrieval"`},
		},
		{
			name:           "Error page keeps the given status",
			template:       Error,
			status:         http.StatusConflict,
			data:           struct{ Title string }{Title: "Error"},
			expectedStatus: http.StatusConflict,
			contains:       []string{"<title>Error</title>", "could not be added"},
		},
		{
			name:     "Listing escapes user input",
			template: List,
			status:   http.StatusOK,
			data: listPage{
				Title: "Retrieval from Database",
				Products: []models.Product{
					{Code: "T001", Category: "tools", Description: "<script>alert(1)</script>", Price: decimal.RequireFromString("9.9")},
				},
			},
			expectedStatus: http.StatusOK,
			contains:       []string{"<td>T001</td>", "9.90", "&lt;script&gt;"},
			notContains:    []string{"<script>alert(1)</script>", "No products found."},
		},
		{
			name:           "Unknown template",
			template:       "missing.html",
			status:         http.StatusOK,
			data:           nil,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "Template execution failure",
			template:       List,
			status:         http.StatusOK,
			data:           struct{ Title string }{Title: "Wrong data"},
			expectedStatus: http.StatusInternalServerError,
			notContains:    []string{"<title>"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			renderer.Render(rec, req, tc.status, tc.template, tc.data)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			body := rec.Body.String()
			for _, s := range tc.contains {
				assert.Contains(t, body, s)
			}
			for _, s := range tc.notContains {
				assert.NotContains(t, body, s)
			}
		})
	}
}
