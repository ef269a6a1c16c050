package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/petsisters/sitter-finder/pkg/chat"
	"github.com/petsisters/sitter-finder/pkg/common"
	"github.com/petsisters/sitter-finder/pkg/facet"
	"github.com/petsisters/sitter-finder/pkg/index"
	"github.com/petsisters/sitter-finder/pkg/session"
	"github.com/petsisters/sitter-finder/pkg/tracking"
)

type WebServer struct {
	Index    *index.Index
	Sessions *session.Store
	Cache    *Cache
	Tracking tracking.Tracking
	Chat     *chat.Client
}

// Search answers one stateless query over the full catalog. GET results
// are served from the response cache when one is configured.
func (ws *WebServer) Search(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	requestCount.WithLabelValues("search").Inc()

	sr, err := GetSearchRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return enc.Encode(map[string]string{"error": err.Error()})
	}

	cacheKey := ""
	if r.Method == http.MethodGet {
		cacheKey = "search:" + r.URL.RawQuery
		var cached SearchResponse
		if ws.Cache.Get(r.Context(), cacheKey, &cached) {
			common.SetResultHeaders(w)
			return enc.Encode(cached)
		}
	}

	options, err := ws.Index.Options()
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return enc.Encode(map[string]string{"error": err.Error()})
	}
	bounds := options.Bounds()
	state := sr.ToFilterState(bounds)

	start := time.Now()
	result := ws.Index.Search(state)
	searchDuration.Observe(time.Since(start).Seconds())
	searchHits.Observe(float64(len(result)))

	response := SearchResponse{
		Items:             result,
		Facets:            facet.CountResult(result),
		Options:           options,
		ActiveFilters:     state.ActiveChips(bounds),
		ActiveFilterCount: state.ActiveFilterCount(bounds),
		TotalHits:         len(result),
	}
	if cacheKey != "" {
		ws.Cache.Set(r.Context(), cacheKey, response)
	}

	if ws.Tracking != nil {
		go func() {
			if err := ws.Tracking.TrackSearch(sessionId, state, len(result)); err != nil {
				log.Printf("Failed to track search: %v", err)
			}
		}()
	}

	common.SetResultHeaders(w)
	return enc.Encode(response)
}

func (ws *WebServer) Sitters(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	requestCount.WithLabelValues("sitters").Inc()
	options, err := ws.Index.Options()
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return enc.Encode(map[string]string{"error": err.Error()})
	}
	common.SetResultHeaders(w)
	return enc.Encode(SitterListResponse{
		Items:   ws.Index.Items,
		Options: options,
		Total:   ws.Index.Len(),
	})
}

func (ws *WebServer) GetSitter(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	requestCount.WithLabelValues("sitter").Inc()
	id := r.PathValue("id")
	sitter, ok := ws.Index.Get(id)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return enc.Encode(map[string]string{"error": "sitter not found"})
	}
	if ws.Tracking != nil {
		go func() {
			if err := ws.Tracking.TrackProfileView(sessionId, id); err != nil {
				log.Printf("Failed to track profile view: %v", err)
			}
		}()
	}
	common.SetResultHeaders(w)
	return enc.Encode(sitter)
}

// SessionView returns the current view for the caller's session,
// creating one on first contact.
func (ws *WebServer) SessionView(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	requestCount.WithLabelValues("session").Inc()
	s, err := ws.Sessions.GetOrCreate(sessionId)
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return enc.Encode(map[string]string{"error": err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	return enc.Encode(s.View())
}

// SessionUpdate applies one command to the caller's session and returns
// the recomputed view.
func (ws *WebServer) SessionUpdate(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	requestCount.WithLabelValues("session_update").Inc()
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return enc.Encode(map[string]string{"error": err.Error()})
	}
	update, err := req.ToUpdate()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return enc.Encode(map[string]string{"error": err.Error()})
	}
	s, err := ws.Sessions.GetOrCreate(sessionId)
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return enc.Encode(map[string]string{"error": err.Error()})
	}
	view := s.Apply(update)

	if ws.Tracking != nil {
		go func() {
			if err := ws.Tracking.TrackSearch(sessionId, view.Filters, len(view.Sitters)); err != nil {
				log.Printf("Failed to track search: %v", err)
			}
		}()
	}

	w.Header().Set("Content-Type", "application/json")
	return enc.Encode(view)
}

func (ws *WebServer) ChatCompletion(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	requestCount.WithLabelValues("chat").Inc()
	if ws.Chat == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return enc.Encode(map[string]string{"error": "chat is not configured"})
	}
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		w.WriteHeader(http.StatusBadRequest)
		return enc.Encode(map[string]string{"error": "message is required"})
	}
	reply, err := ws.Chat.Complete(r.Context(), req.Message)
	if err != nil {
		w.WriteHeader(http.StatusBadGateway)
		return enc.Encode(map[string]string{"error": err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	return enc.Encode(ChatResponse{Reply: reply})
}

func (ws *WebServer) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "ok, %d sitters\n", ws.Index.Len())
}

func (ws *WebServer) ClientHandler() *http.ServeMux {
	mux := http.NewServeMux()
	trk := ws.Tracking

	mux.HandleFunc("/api/search", common.JsonHandler(trk, ws.Search))
	mux.HandleFunc("/api/sitters", common.JsonHandler(trk, ws.Sitters))
	mux.HandleFunc("/api/sitters/{id}", common.JsonHandler(trk, ws.GetSitter))
	mux.HandleFunc("GET /api/session", common.JsonHandler(trk, ws.SessionView))
	mux.HandleFunc("POST /api/session/update", common.JsonHandler(trk, ws.SessionUpdate))
	mux.HandleFunc("POST /api/chat", common.JsonHandler(trk, ws.ChatCompletion))
	mux.HandleFunc("/health", ws.Health)

	return mux
}

func (ws *WebServer) StartApi(addr string) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: ws.ClientHandler(),
	}
}
