package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/mood-mirror/backend/internal/model/catalog"
	"github.com/zhouzirui/mood-mirror/backend/internal/random"
)

func TestListCatalogs(t *testing.T) {
	r := chi.NewRouter()
	New(catalog.NewSeededRecommender(random.New(1))).RegisterRoutes(r)

	cases := map[string]int{
		"/catalog/games":     12,
		"/catalog/outfits":   8,
		"/catalog/playlists": 8,
	}
	for path, want := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.Code)
		}
		var items []map[string]any
		if err := json.Unmarshal(resp.Body.Bytes(), &items); err != nil {
			t.Fatalf("%s: decode: %v", path, err)
		}
		if len(items) != want {
			t.Fatalf("%s: expected %d items, got %d", path, want, len(items))
		}
	}
}
