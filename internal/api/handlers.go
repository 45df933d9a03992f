package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/youruser/flashcards/internal/cards"
	"github.com/youruser/flashcards/internal/layout"
	"github.com/youruser/flashcards/internal/render"
	"github.com/youruser/flashcards/internal/session"
	"github.com/youruser/flashcards/internal/sheet"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Options tune the handlers.
type Options struct {
	// BaseURL is the public origin used in QR codes; empty derives it from
	// the request.
	BaseURL        string
	MaxUploadBytes int64
	DecodeTimeout  time.Duration
	AutoPrint      bool
	PreviewScale   int
	MarginMM       float64
	QRSize         int
}

// Handler serves the flashcard API.
type Handler struct {
	sessions *session.Manager
	opts     Options
	logger   *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(sessions *session.Manager, opts Options, logger *slog.Logger) *Handler {
	if logger == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("logger cannot be nil for api.Handler")
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}
	if opts.DecodeTimeout <= 0 {
		opts.DecodeTimeout = 30 * time.Second
	}
	if opts.QRSize <= 0 {
		opts.QRSize = 320
	}
	return &Handler{
		sessions: sessions,
		opts:     opts,
		logger:   logger.With(slog.String("component", "api")),
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) template(c *gin.Context) {
	var buf bytes.Buffer
	if err := sheet.WriteTemplate(&buf); err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+sheet.TemplateFilename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *Handler) listFonts(c *gin.Context) {
	catalog := h.sessions.Fonts()
	c.JSON(http.StatusOK, gin.H{
		"default": catalog.Default(),
		"fonts":   catalog.All(),
	})
}

func (h *Handler) createSession(c *gin.Context) {
	st, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionToResponse(st))
}

func (h *Handler) getSession(c *gin.Context) {
	st, ok := h.state(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sessionToResponse(st))
}

func (h *Handler) deleteSession(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	if err := h.sessions.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// upload replaces the session's cards with the contents of the multipart
// "file" field.
func (h *Handler) upload(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	// Leave room for the multipart envelope around the file itself.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.opts.MaxUploadBytes+64<<10)
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			h.fail(c, errTooLarge)
			return
		}
		h.fail(c, errMissingFile)
		return
	}
	if fh.Size > h.opts.MaxUploadBytes {
		h.fail(c, errTooLarge)
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		h.fail(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.opts.DecodeTimeout)
	defer cancel()
	st, err := h.sessions.Load(ctx, id, func(ctx context.Context) (cards.Set, error) {
		return cards.Load(ctx, fh.Filename, data)
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionToResponse(st))
}

func (h *Handler) selectFont(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req FontRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "Request body must be {\"font\": name}", Code: "invalid_request"})
		return
	}
	st, err := h.sessions.SelectFont(c.Request.Context(), id, req.Font)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionToResponse(st))
}

func (h *Handler) reset(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	st, err := h.sessions.Reset(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionToResponse(st))
}

func (h *Handler) pageLayout(c *gin.Context) {
	st, ok := h.state(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, layoutToResponse(st.Pages()))
}

func (h *Handler) printDocument(c *gin.Context) {
	st, ok := h.state(c)
	if !ok {
		return
	}
	autoPrint := h.opts.AutoPrint
	if v, err := strconv.ParseBool(c.DefaultQuery("autoprint", "")); err == nil {
		autoPrint = v
	}

	var buf bytes.Buffer
	err := render.PrintDocument(&buf, st.Pages(), render.PrintOptions{
		Font:      st.Font,
		AutoPrint: autoPrint,
		MarginMM:  h.opts.MarginMM,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// pagePreview renders physical page n (1-based, print order) as PNG.
func (h *Handler) pagePreview(c *gin.Context) {
	st, ok := h.state(c)
	if !ok {
		return
	}
	pages := layout.Stream(st.Pages())
	n, err := strconv.Atoi(c.Param("page"))
	if err != nil || n < 1 || n > len(pages) {
		h.fail(c, errPageNotFound)
		return
	}

	img := render.RenderPage(pages[n-1], render.PreviewOptions{
		Scale:    h.opts.PreviewScale,
		MarginMM: h.opts.MarginMM,
	})
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// qr returns a QR code pointing at the session's print document.
func (h *Handler) qr(c *gin.Context) {
	st, ok := h.state(c)
	if !ok {
		return
	}
	size := h.opts.QRSize
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 && v <= 2048 {
		size = v
	}
	b, err := render.QRCodePNG(h.baseURL(c)+"/api/sessions/"+st.ID.String()+"/print", size)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func (h *Handler) baseURL(c *gin.Context) string {
	if h.opts.BaseURL != "" {
		return strings.TrimRight(h.opts.BaseURL, "/")
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if fwd := c.GetHeader("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return scheme + "://" + c.Request.Host
}

func (h *Handler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.fail(c, errInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) state(c *gin.Context) (session.State, bool) {
	id, ok := h.sessionID(c)
	if !ok {
		return session.State{}, false
	}
	st, err := h.sessions.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return session.State{}, false
	}
	return st, true
}

// fail logs err and replies with a sanitised error body. Server errors are
// logged at error level, client errors at debug.
func (h *Handler) fail(c *gin.Context, err error) {
	status := MapErrorToStatusCode(err)
	attrs := []any{
		slog.Int("status", status),
		slog.String("path", c.Request.URL.Path),
		slog.String("error", err.Error()),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", attrs...)
	} else {
		h.logger.Debug("request rejected", attrs...)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: SafeMessage(err), Code: ErrorCode(err)})
}
