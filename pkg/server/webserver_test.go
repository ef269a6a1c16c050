package server

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/petsisters/sitter-finder/pkg/index"
	"github.com/petsisters/sitter-finder/pkg/session"
	"github.com/petsisters/sitter-finder/pkg/types"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	idx := index.NewIndex(types.MockSitters())
	ws := &WebServer{
		Index:    idx,
		Sessions: session.NewStore(idx),
	}
	srv := httptest.NewServer(ws.ClientHandler())
	t.Cleanup(srv.Close)
	return srv
}

func decodeBody[V any](t *testing.T, resp *http.Response) V {
	t.Helper()
	defer resp.Body.Close()
	var v V
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return v
}

func TestSearchEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/search?verified=true&sort=price-asc")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	body := decodeBody[SearchResponse](t, resp)
	if body.TotalHits != 4 {
		t.Fatalf("expected 4 verified sitters, got %d", body.TotalHits)
	}
	for i := 1; i < len(body.Items); i++ {
		if body.Items[i-1].Price > body.Items[i].Price {
			t.Errorf("result not sorted by price ascending")
		}
	}
	if body.Facets.Verified != 4 {
		t.Errorf("facet counts disagree with result, verified = %d", body.Facets.Verified)
	}
	if body.ActiveFilterCount != 1 {
		t.Errorf("active filter count = %d", body.ActiveFilterCount)
	}
}

func TestSearchEmptyResultIsStillOk(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/search?rating=5&verified=true")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body := decodeBody[SearchResponse](t, resp)
	if body.TotalHits != 0 || len(body.Items) != 0 {
		t.Errorf("expected empty result, got %d hits", body.TotalHits)
	}
	if body.Facets.Locations == nil {
		t.Error("count maps should be initialized for empty results")
	}
}

func TestSearchPostBody(t *testing.T) {
	srv := newTestServer(t)

	body := `{"locations":["Madrid"],"verifiedOnly":true}`
	resp, err := http.Post(srv.URL+"/api/search", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	result := decodeBody[SearchResponse](t, resp)
	if result.TotalHits != 1 {
		t.Errorf("expected 1 verified Madrid sitter, got %d", result.TotalHits)
	}
}

func TestGetSitterByPath(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/sitters/s3")
	if err != nil {
		t.Fatal(err)
	}
	sitter := decodeBody[types.Sitter](t, resp)
	if sitter.Id != "s3" {
		t.Errorf("got sitter %q", sitter.Id)
	}

	resp, err = http.Get(srv.URL + "/api/sitters/nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown sitter, got %d", resp.StatusCode)
	}
}

func TestSessionUpdateFlow(t *testing.T) {
	srv := newTestServer(t)
	jar := newCookieClient()

	resp, err := jar.Get(srv.URL + "/api/session")
	if err != nil {
		t.Fatal(err)
	}
	view := decodeBody[session.View](t, resp)
	if len(view.Sitters) != 6 || view.ActiveFilterCount != 0 {
		t.Fatalf("unexpected initial view: %d sitters, %d active", len(view.Sitters), view.ActiveFilterCount)
	}

	resp, err = jar.Post(srv.URL+"/api/session/update", "application/json",
		strings.NewReader(`{"type":"setVerifiedOnly","bool":true}`))
	if err != nil {
		t.Fatal(err)
	}
	view = decodeBody[session.View](t, resp)
	if len(view.Sitters) != 4 {
		t.Fatalf("expected 4 sitters after verified filter, got %d", len(view.Sitters))
	}

	resp, err = jar.Post(srv.URL+"/api/session/update", "application/json",
		strings.NewReader(`{"type":"toggleLocation","value":"Madrid"}`))
	if err != nil {
		t.Fatal(err)
	}
	view = decodeBody[session.View](t, resp)
	if len(view.Sitters) != 1 || view.ActiveFilterCount != 2 {
		t.Fatalf("expected 1 sitter and 2 active categories, got %d and %d", len(view.Sitters), view.ActiveFilterCount)
	}

	resp, err = jar.Post(srv.URL+"/api/session/update", "application/json",
		strings.NewReader(`{"type":"clearAll"}`))
	if err != nil {
		t.Fatal(err)
	}
	view = decodeBody[session.View](t, resp)
	if len(view.Sitters) != 6 || view.ActiveFilterCount != 0 {
		t.Fatalf("clear all did not reset the view")
	}
}

func TestSessionUpdateRejectsUnknownType(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/session/update", "application/json",
		strings.NewReader(`{"type":"teleport"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown update type, got %d", resp.StatusCode)
	}
}

func TestUpdateRequestToUpdate(t *testing.T) {
	tests := []struct {
		name string
		req  UpdateRequest
		want types.Update
	}{
		{"query", UpdateRequest{Type: "setQuery", Value: "madrid"}, types.SetQuery{Query: "madrid"}},
		{"toggle", UpdateRequest{Type: "toggleSpecialty", Value: "Aves"}, types.ToggleSpecialty{Value: "Aves"}},
		{"price", UpdateRequest{Type: "setPriceRange", Min: 12, Max: 16}, types.SetPriceRange{Min: 12, Max: 16}},
		{"rating", UpdateRequest{Type: "setMinRating", Number: 4.5}, types.SetMinRating{Value: 4.5}},
		{"experience", UpdateRequest{Type: "setMinExperience", Number: 3}, types.SetMinExperience{Value: 3}},
		{"sort", UpdateRequest{Type: "setSortBy", Value: "reviews"}, types.SetSortBy{Value: types.SortReviews}},
		{"remove", UpdateRequest{Type: "removeFilter", Key: "locations", Value: "Madrid"}, types.RemoveFilter{Key: types.KeyLocations, Value: "Madrid"}},
		{"clear", UpdateRequest{Type: "clearAll"}, types.ClearAll{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.ToUpdate()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

// newCookieClient keeps the session cookie across requests so session
// endpoints see the same visitor.
func newCookieClient() *http.Client {
	jar, _ := cookiejar.New(nil)
	return &http.Client{Jar: jar}
}
