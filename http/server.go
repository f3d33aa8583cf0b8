package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/topicreader"
	"github.com/google/uuid"
)

// ShutdownTimeout is the time given for outstanding requests to finish before shutdown.
const ShutdownTimeout = 5 * time.Second

// Request headers that override the extraction service per request.
const (
	HeaderBaseOverride = "X-Base"
	HeaderKeyOverride  = "X-Key"
	HeaderRequestID    = "X-Request-Id"
)

// Server is the JSON API consumed by the web UI.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *http.ServeMux

	// Bind address for the server's listener.
	Addr string

	// Services used by the handlers.
	Reader     topicreader.Reader
	Feeds      topicreader.FeedService
	Categories []topicreader.Category

	// Optional display helpers for feed items.
	Summarizer topicreader.Summarizer
	Dates      topicreader.DateFormatter

	// Metrics, if set, is served at /metrics.
	Metrics http.Handler

	Logger *slog.Logger
}

// NewServer returns a new Server with routes registered.
func NewServer() *Server {
	s := &Server{
		router:     http.NewServeMux(),
		Categories: topicreader.DefaultCategories(),
		Logger:     slog.Default(),
	}
	s.server = &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.router.HandleFunc("GET /api/read", s.handleRead)
	s.router.HandleFunc("GET /api/categories", s.handleCategories)
	s.router.HandleFunc("GET /api/feeds/{slug}", s.handleFeed)
	s.router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	s.router.HandleFunc("GET /metrics", func(w http.ResponseWriter, r *http.Request) {
		if s.Metrics == nil {
			http.NotFound(w, r)
			return
		}
		s.Metrics.ServeHTTP(w, r)
	})

	return s
}

// Open begins listening on the bind address and serves in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go s.server.Serve(s.ln)
	return nil
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// ServeHTTP tags the request with an ID, logs it and dispatches to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	begin := time.Now()

	id := r.Header.Get(HeaderRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(HeaderRequestID, id)

	rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
	s.router.ServeHTTP(rw, r)

	s.Logger.Info("http request",
		"id", id,
		"method", r.Method,
		"path", r.URL.Path,
		"status", rw.status,
		"duration", time.Since(begin),
	)
}

func (s *Server) handleRead(w http.ResponseWriter, r *http.Request) {
	opts := topicreader.ReadOptions{
		BaseURL: r.Header.Get(HeaderBaseOverride),
		APIKey:  r.Header.Get(HeaderKeyOverride),
	}

	doc, err := s.Reader.Read(r.Context(), r.URL.Query().Get("url"), opts)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.writeJSON(w, r, doc)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, s.Categories)
}

// FeedItemView is a feed item with display-only fields added.
type FeedItemView struct {
	*topicreader.FeedItem
	PubDateDisplay string `json:"pubDateDisplay"`
	Excerpt        string `json:"excerpt"`
	Image          string `json:"image"`
}

type feedResponse struct {
	Category topicreader.Category `json:"category"`
	Items    []FeedItemView       `json:"items"`
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	category, err := topicreader.FindCategory(s.Categories, r.PathValue("slug"))
	if err != nil {
		s.Error(w, r, err)
		return
	}

	items, err := s.Feeds.FindFeedItems(r.Context(), category.Slug)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	resp := feedResponse{Category: category, Items: make([]FeedItemView, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, s.view(item))
	}
	s.writeJSON(w, r, resp)
}

func (s *Server) view(item *topicreader.FeedItem) FeedItemView {
	v := FeedItemView{FeedItem: item, PubDateDisplay: item.PubDate}
	if s.Dates != nil {
		v.PubDateDisplay = s.Dates.Format(item.PubDate)
	}
	if s.Summarizer != nil {
		summary := s.Summarizer.Summarize(item.DescriptionHTML)
		v.Excerpt, v.Image = summary.Excerpt, summary.Image
	}
	return v
}

// Error writes err as a JSON error payload with a matching status code.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := topicreader.ErrorCode(err), topicreader.ErrorMessage(err)

	if code == topicreader.EINTERNAL {
		s.Logger.Error("http error", "method", r.Method, "path", r.URL.Path, "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ErrorStatusCode(code))
	_ = json.NewEncoder(w).Encode(&ErrorResponse{Error: message})
}

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

var codes = map[string]int{
	topicreader.EINVALID:     http.StatusBadRequest,
	topicreader.ENOTFOUND:    http.StatusNotFound,
	topicreader.EUNAVAILABLE: http.StatusBadGateway,
	topicreader.EINTERNAL:    http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// writeJSON writes v with an ETag derived from the encoded body. A request
// whose If-None-Match carries the same tag gets 304 and no body.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// statusWriter records the status code written by a handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
