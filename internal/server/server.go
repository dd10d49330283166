// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes profile management and content generation over
// HTTP. Generation failures map to statuses but never stop the server.
package server

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brandkit/brandkit/internal/generate"
	"github.com/brandkit/brandkit/internal/history"
	"github.com/brandkit/brandkit/internal/model"
	"github.com/brandkit/brandkit/pkg/types"
)

// Idea and plan bounds mirror the interactive limits of the CLI.
const (
	minIdeaCount     = 3
	maxIdeaCount     = 10
	defaultIdeaCount = 5

	minPlanCount          = 3
	maxPlanCount          = 30
	defaultWeekPlanCount  = 7
	defaultMonthPlanCount = 15
)

// Generator is the content generation surface the API exposes.
type Generator interface {
	Ideas(ctx context.Context, profile types.BrandProfile, count int) ([]string, error)
	Post(ctx context.Context, profile types.BrandProfile, topic, platform, length string) (string, error)
	Plan(ctx context.Context, profile types.BrandProfile, period string, count int) (string, error)
}

// ProfileStore reads and writes the persisted brand profile.
type ProfileStore interface {
	Load() types.BrandProfile
	Save(types.BrandProfile) error
}

// Recorder persists generation results and serves history queries.
type Recorder interface {
	Add(ctx context.Context, rec *types.GenerationRecord) error
	Retrieve(ctx context.Context, opts history.QueryOptions) ([]types.GenerationRecord, error)
}

// Options wires the server's collaborators. Recorder may be nil to
// disable history; Catalog and Session may be nil when no credential is
// configured.
type Options struct {
	Profiles  ProfileStore
	Generator Generator
	Catalog   model.Catalog
	Session   generate.HandleSource
	Recorder  Recorder
}

// Server is the HTTP API host.
type Server struct {
	profiles ProfileStore
	gen      Generator
	catalog  model.Catalog
	session  generate.HandleSource
	recorder Recorder
	engine   *gin.Engine
}

// New builds the server and registers its routes.
func New(opts Options) *Server {
	s := &Server{
		profiles: opts.Profiles,
		gen:      opts.Generator,
		catalog:  opts.Catalog,
		session:  opts.Session,
		recorder: opts.Recorder,
		engine:   gin.Default(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/health", s.handleHealth)

	api := s.engine.Group("/api")
	api.GET("/profile", s.handleProfileGet)
	api.PUT("/profile", s.handleProfilePut)
	api.POST("/ideas", s.handleIdeas)
	api.POST("/post", s.handlePost)
	api.POST("/plan", s.handlePlan)
	api.GET("/models", s.handleModels)
	api.GET("/history", s.handleHistory)
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Handler exposes the route tree for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// statusFor maps taxonomy errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrCredentialMissing):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrModelUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, generate.ErrRemoteCallFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(err error) gin.H {
	return gin.H{"error": generate.UserMessage(err)}
}

// resolvedModel names the model the current session settled on, or ""
// when resolution is impossible.
func (s *Server) resolvedModel(ctx context.Context) string {
	if s.session == nil {
		return ""
	}
	h, err := s.session.Handle(ctx)
	if err != nil {
		return ""
	}
	return h.ModelID()
}

// record stores a generation result. History is best effort: a write
// failure is logged and the response proceeds.
func (s *Server) record(ctx context.Context, rec *types.GenerationRecord) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Add(ctx, rec); err != nil {
		log.Printf("recording %s generation failed: %v", rec.Kind, err)
	}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// --- handlers ---

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (s *Server) handleProfileGet(c *gin.Context) {
	c.JSON(http.StatusOK, s.profiles.Load())
}

func (s *Server) handleProfilePut(c *gin.Context) {
	var profile types.BrandProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile body"})
		return
	}
	if err := s.profiles.Save(profile); err != nil {
		c.JSON(statusFor(err), errorBody(err))
		return
	}
	c.JSON(http.StatusOK, profile)
}

type ideasRequest struct {
	Count int `json:"count"`
}

type ideasResponse struct {
	Ideas    []string `json:"ideas"`
	Model    string   `json:"model,omitempty"`
	RecordID string   `json:"record_id,omitempty"`
}

func (s *Server) handleIdeas(c *gin.Context) {
	var req ideasRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	count := defaultIdeaCount
	if req.Count != 0 {
		count = clamp(req.Count, minIdeaCount, maxIdeaCount)
	}

	ideas, err := s.gen.Ideas(c.Request.Context(), s.profiles.Load(), count)
	if err != nil {
		c.JSON(statusFor(err), errorBody(err))
		return
	}

	rec := types.GenerationRecord{
		Kind:    types.KindIdeas,
		Count:   count,
		Model:   s.resolvedModel(c.Request.Context()),
		Content: strings.Join(ideas, "\n"),
	}
	s.record(c.Request.Context(), &rec)

	c.JSON(http.StatusOK, ideasResponse{Ideas: ideas, Model: rec.Model, RecordID: rec.ID})
}

type postRequest struct {
	Topic    string `json:"topic"`
	Platform string `json:"platform"`
	Length   string `json:"length"`
}

type contentResponse struct {
	Content  string `json:"content"`
	Model    string `json:"model,omitempty"`
	RecordID string `json:"record_id,omitempty"`
}

func (s *Server) handlePost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}
	if req.Platform == "" {
		req.Platform = "instagram"
	}
	if req.Length == "" {
		req.Length = "short"
	}

	content, err := s.gen.Post(c.Request.Context(), s.profiles.Load(), req.Topic, req.Platform, req.Length)
	if err != nil {
		c.JSON(statusFor(err), errorBody(err))
		return
	}

	rec := types.GenerationRecord{
		Kind:     types.KindPost,
		Topic:    req.Topic,
		Platform: req.Platform,
		Length:   req.Length,
		Model:    s.resolvedModel(c.Request.Context()),
		Content:  content,
	}
	s.record(c.Request.Context(), &rec)

	c.JSON(http.StatusOK, contentResponse{Content: content, Model: rec.Model, RecordID: rec.ID})
}

type planRequest struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}

func (s *Server) handlePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Period == "" {
		req.Period = "week"
	}
	count := req.Count
	if count <= 0 {
		if req.Period == "week" {
			count = defaultWeekPlanCount
		} else {
			count = defaultMonthPlanCount
		}
	} else {
		count = clamp(count, minPlanCount, maxPlanCount)
	}

	content, err := s.gen.Plan(c.Request.Context(), s.profiles.Load(), req.Period, count)
	if err != nil {
		c.JSON(statusFor(err), errorBody(err))
		return
	}

	rec := types.GenerationRecord{
		Kind:    types.KindPlan,
		Period:  req.Period,
		Count:   count,
		Model:   s.resolvedModel(c.Request.Context()),
		Content: content,
	}
	s.record(c.Request.Context(), &rec)

	c.JSON(http.StatusOK, contentResponse{Content: content, Model: rec.Model, RecordID: rec.ID})
}

type modelEntry struct {
	Name               string `json:"name"`
	SupportsGeneration bool   `json:"supports_generation"`
}

type modelsResponse struct {
	Models   []modelEntry `json:"models"`
	Resolved string       `json:"resolved,omitempty"`
}

func (s *Server) handleModels(c *gin.Context) {
	if s.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model catalog is not configured"})
		return
	}

	candidates, err := s.catalog.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "listing models failed: " + err.Error()})
		return
	}

	resp := modelsResponse{
		Models:   make([]modelEntry, 0, len(candidates)),
		Resolved: s.resolvedModel(c.Request.Context()),
	}
	for _, cand := range candidates {
		resp.Models = append(resp.Models, modelEntry{
			Name:               cand.Name,
			SupportsGeneration: cand.SupportsGeneration,
		})
	}
	c.JSON(http.StatusOK, resp)
}

type historyResponse struct {
	Records []types.GenerationRecord `json:"records"`
	Count   int                      `json:"count"`
}

func (s *Server) handleHistory(c *gin.Context) {
	if s.recorder == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "history is not configured"})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	records, err := s.recorder.Retrieve(c.Request.Context(), history.QueryOptions{
		Query:      c.Query("q"),
		Kind:       types.GenerationKind(c.Query("kind")),
		MaxResults: limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if records == nil {
		records = []types.GenerationRecord{}
	}

	c.JSON(http.StatusOK, historyResponse{Records: records, Count: len(records)})
}
