package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mithrel/profilemd/internal/catalog"
	"github.com/mithrel/profilemd/internal/present/format"
	"github.com/mithrel/profilemd/internal/store"
	"github.com/mithrel/profilemd/pkg/models"
)

const maxBody = 1 << 20

// Server renders profiles over HTTP. It keeps no state between requests.
type Server struct {
	cfg *viper.Viper
	log *zap.Logger
}

func New(cfg *viper.Viper, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{cfg: cfg, log: log}
}

// Router returns an http.Handler with registered routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.GetStringSlice("server.cors_origins"),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "If-None-Match"},
		ExposedHeaders:   []string{"ETag"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Route("/v1", func(v chi.Router) {
		v.Get("/profile/default", s.handleDefault)
		v.Post("/render", s.handleRender)
		v.Get("/skills", s.handleSkills)
	})
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Default())
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	p, err := store.DecodeBytes("profile.json", b)
	if err != nil {
		s.log.Debug("bad render request", zap.Error(err))
		http.Error(w, "bad profile json", http.StatusBadRequest)
		return
	}
	snap := store.New(p).Snapshot()
	doc := format.NewDocument(snap)

	etag := `"` + doc.Hash + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Vary", "Accept")
	if match := r.Header.Get("If-None-Match"); match != "" && etagMatches(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, doc)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = io.WriteString(w, doc.Markdown)
}

func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := 0
	if ls := strings.TrimSpace(q.Get("limit")); ls != "" {
		n, err := strconv.Atoi(ls)
		if err != nil || n < 0 {
			http.Error(w, "bad limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	query := strings.TrimSpace(q.Get("q"))

	var out []catalog.Match
	if cs := strings.TrimSpace(q.Get("category")); cs != "" {
		c, err := models.ParseSkillCategory(cs)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for _, sk := range catalog.SearchCategory(c, query, limit) {
			out = append(out, catalog.Match{Category: c, Skill: sk})
		}
	} else {
		out = catalog.Search(query, limit)
	}

	type item struct {
		Category string `json:"category"`
		Skill    string `json:"skill"`
	}
	items := make([]item, 0, len(out))
	for _, m := range out {
		items = append(items, item{Category: m.Category.String(), Skill: m.Skill})
	}
	writeJSON(w, http.StatusOK, map[string]any{"skills": items})
}

func wantsJSON(r *http.Request) bool {
	if strings.EqualFold(r.URL.Query().Get("format"), "json") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func etagMatches(header, etag string) bool {
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "*" || strings.TrimPrefix(part, "W/") == etag {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
