package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"ai_site_builder/internal/ai/prompts"
	"ai_site_builder/internal/editor"
	"ai_site_builder/internal/export"
	"ai_site_builder/internal/extract"
	"ai_site_builder/internal/normalize"
	"ai_site_builder/internal/types"
	"ai_site_builder/internal/wizard"
)

// SiteGenerator is the generation client the handlers depend on.
type SiteGenerator interface {
	// GenerateSite wraps a free-form prompt in the output contract and completes it.
	GenerateSite(ctx context.Context, userPrompt string) (string, error)
	// Complete sends an already built prompt as is.
	Complete(ctx context.Context, prompt string) (string, error)
}

// Options configures the editor sessions served by the API.
type Options struct {
	SettleDelay  time.Duration
	HistoryLimit int
	Sessions     SessionOptions
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	aiGenerator  SiteGenerator
	sessions     *SessionStore
	settleDelay  time.Duration
	historyLimit int
	factory      editor.Factory // nil uses the headless runtime
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(aiGen SiteGenerator, opts Options) *APIHandler {
	return &APIHandler{
		aiGenerator:  aiGen,
		sessions:     NewSessionStore(opts.Sessions),
		settleDelay:  opts.SettleDelay,
		historyLimit: opts.HistoryLimit,
	}
}

// SweepSessions closes idle sessions periodically until ctx is done.
func (h *APIHandler) SweepSessions(ctx context.Context, interval time.Duration) {
	h.sessions.Run(ctx, interval)
}

// sessionMounts are the panel targets of server-side editor sessions.
var sessionMounts = editor.Mounts{Canvas: "#gjs", Blocks: "#blocks", Layers: "#layers", Styles: "#styles"}

// --- Structs for API Requests/Responses ---

type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type CreateSiteResponse struct {
	SessionID string `json:"sessionId"`
	HTML      string `json:"html"`
	CSS       string `json:"css"`
	JS        string `json:"js"`
}

type SessionResponse struct {
	SessionID string `json:"sessionId"`
	editor.State
}

type UpdateComponentsRequest struct {
	HTML string `json:"html" binding:"required"`
}

type DeviceRequest struct {
	Device string `json:"device" binding:"required"`
}

// --- API Handlers ---

// POST /generate-site
func (h *APIHandler) GenerateSite(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid prompt"})
		return
	}

	log.Printf("Received generation request (%d characters)", len(req.Prompt))

	text, err := h.aiGenerator.GenerateSite(c.Request.Context(), req.Prompt)
	if err != nil {
		log.Printf("Error generating website: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate website"})
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// POST /sites
func (h *APIHandler) CreateSite(c *gin.Context) {
	var spec types.WebsiteSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	spec = wizard.Clean(spec)
	if err := wizard.ValidateSpec(spec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if h.sessions.Full() {
		h.sessionError(c, ErrTooManySessions)
		return
	}

	text, err := h.aiGenerator.Complete(c.Request.Context(), prompts.BuildPrompt(spec))
	if err != nil {
		log.Printf("Error generating website for %q: %v", spec.Purpose, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate website"})
		return
	}

	artifact := extract.Artifact(text)
	id, err := h.openSession(c.Request.Context(), artifact)
	if err != nil {
		h.sessionError(c, err)
		return
	}

	log.Printf("Website generated for %q. Session ID: %s", spec.Purpose, id)
	c.JSON(http.StatusCreated, CreateSiteResponse{SessionID: id, HTML: artifact.HTML, CSS: artifact.CSS, JS: artifact.JS})
}

// POST /sessions
func (h *APIHandler) CreateSession(c *gin.Context) {
	var artifact types.GeneratedArtifact
	if err := c.ShouldBindJSON(&artifact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	id, err := h.openSession(c.Request.Context(), artifact)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"sessionId": id})
}

func (h *APIHandler) openSession(ctx context.Context, artifact types.GeneratedArtifact) (string, error) {
	if h.sessions.Full() {
		return "", ErrTooManySessions
	}
	handle := &editor.Handle{}
	err := editor.Bootstrap(ctx, handle, editor.Options{
		Factory:      h.factory,
		Mounts:       sessionMounts,
		Artifact:     artifact,
		SettleDelay:  h.settleDelay,
		HistoryLimit: h.historyLimit,
	})
	if err != nil {
		return "", err
	}
	id, err := h.sessions.Add(handle)
	if err != nil {
		_ = editor.Dispose(handle)
		return "", err
	}
	return id, nil
}

func (h *APIHandler) sessionError(c *gin.Context, err error) {
	if errors.Is(err, ErrTooManySessions) {
		log.Printf("WARN: rejecting new editor session: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Too many open editor sessions, try again later"})
		return
	}
	log.Printf("Error starting editor session: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start editor"})
}

// GET /options
// Lists the choices offered by the website form.
func (h *APIHandler) FormOptions(c *gin.Context) {
	devices := make([]string, 0, len(editor.Devices))
	for _, d := range editor.Devices {
		devices = append(devices, d.Name)
	}
	c.JSON(http.StatusOK, gin.H{
		"sections":     wizard.PredefinedSections,
		"colorSchemes": wizard.ColorSchemes,
		"fontStyles":   wizard.FontStyles,
		"languages":    wizard.Languages,
		"minSections":  wizard.MinSections,
		"devices":      devices,
	})
}

// GET /sessions/:id
func (h *APIHandler) GetSession(c *gin.Context) {
	h.withSession(c, func(id string, handle *editor.Handle) {
		h.respondState(c, id, handle)
	})
}

// PUT /sessions/:id/components
func (h *APIHandler) UpdateComponents(c *gin.Context) {
	h.withSession(c, func(id string, handle *editor.Handle) {
		var req UpdateComponentsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
			return
		}
		if err := handle.UpdateComponents(normalize.Sanitize(req.HTML)); err != nil {
			h.editorError(c, id, err)
			return
		}
		h.respondState(c, id, handle)
	})
}

// POST /sessions/:id/undo
func (h *APIHandler) Undo(c *gin.Context) {
	h.withSession(c, func(id string, handle *editor.Handle) {
		if err := handle.Undo(); err != nil {
			h.editorError(c, id, err)
			return
		}
		h.respondState(c, id, handle)
	})
}

// POST /sessions/:id/redo
func (h *APIHandler) Redo(c *gin.Context) {
	h.withSession(c, func(id string, handle *editor.Handle) {
		if err := handle.Redo(); err != nil {
			h.editorError(c, id, err)
			return
		}
		h.respondState(c, id, handle)
	})
}

// POST /sessions/:id/preview
func (h *APIHandler) TogglePreview(c *gin.Context) {
	h.withSession(c, func(id string, handle *editor.Handle) {
		if _, err := handle.TogglePreview(); err != nil {
			h.editorError(c, id, err)
			return
		}
		h.respondState(c, id, handle)
	})
}

// POST /sessions/:id/device
func (h *APIHandler) SetDevice(c *gin.Context) {
	h.withSession(c, func(id string, handle *editor.Handle) {
		var req DeviceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
			return
		}
		if err := handle.SetDevice(req.Device); err != nil {
			h.editorError(c, id, err)
			return
		}
		h.respondState(c, id, handle)
	})
}

// GET /sessions/:id/export
func (h *APIHandler) Export(c *gin.Context) {
	h.withSession(c, func(id string, handle *editor.Handle) {
		page, err := handle.Export()
		if err != nil {
			h.editorError(c, id, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
	})
}

// DELETE /sessions/:id
func (h *APIHandler) DeleteSession(c *gin.Context) {
	id := c.Param("id")
	handle, ok := h.sessions.Remove(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	if err := editor.Dispose(handle); err != nil {
		log.Printf("WARN: session %s disposed with error: %v", id, err)
	}
	log.Printf("Session %s closed", id)
	c.Status(http.StatusNoContent)
}

func (h *APIHandler) withSession(c *gin.Context, fn func(id string, handle *editor.Handle)) {
	id := c.Param("id")
	handle, ok := h.sessions.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	fn(id, handle)
}

func (h *APIHandler) respondState(c *gin.Context, id string, handle *editor.Handle) {
	state, err := handle.State()
	if err != nil {
		h.editorError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{SessionID: id, State: state})
}

func (h *APIHandler) editorError(c *gin.Context, id string, err error) {
	switch {
	case errors.Is(err, editor.ErrUnknownDevice):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, editor.ErrNotBootstrapped):
		// The session was closed between lookup and use.
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	default:
		log.Printf("Error in editor session %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Editor operation failed"})
	}
}
