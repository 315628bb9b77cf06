package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/ripple/pkg/buildinfo"
	"github.com/matzehuels/ripple/pkg/cache"
	"github.com/matzehuels/ripple/pkg/engine"
	apperrors "github.com/matzehuels/ripple/pkg/errors"
	"github.com/matzehuels/ripple/pkg/preview"
	"github.com/matzehuels/ripple/pkg/session"
	"github.com/matzehuels/ripple/pkg/topic"
)

type errorBody struct {
	Code    apperrors.Code `json:"code"`
	Message string         `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"version":  buildinfo.Version,
		"sessions": s.store.Len(),
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Create(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Debug("created session", "session", sess.ID)
	writeJSON(w, http.StatusCreated, sess.Info())
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.Info())
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePutTopics(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	vp, err := viewportFromQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if last, _ := sess.Snapshot(); last == nil && vp == (engine.Viewport{}) {
		vp = s.opts.Viewport
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read body"))
		return
	}
	topics, err := topic.ParseJSON(data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	snap, err := sess.Update(r.Context(), topics, vp)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	snap, _ := sess.Snapshot()
	if snap == nil {
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeNotFound, "session has no layout yet"))
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	snap, topics := sess.Snapshot()
	if snap == nil {
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeNotFound, "session has no layout yet"))
		return
	}

	view := queryOr(r, "view", preview.ViewScatter)
	format := queryOr(r, "format", preview.FormatSVG)
	contentType := "image/svg+xml"
	if format == preview.FormatPNG {
		contentType = "image/png"
	}

	data, err := s.renderPreview(r.Context(), snap, topics, view, format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// renderPreview renders into memory, so a failure can still produce a JSON
// error, and memoizes the result by snapshot content.
func (s *Server) renderPreview(ctx context.Context, snap *engine.Snapshot, topics []topic.Topic, view, format string) ([]byte, error) {
	if err := preview.ValidateView(view); err != nil {
		return nil, err
	}
	if err := preview.ValidateFormat(format); err != nil {
		return nil, err
	}

	key := cache.Key("preview", view, format, snap.Digest, snap.Canvas, snap.Colors, snap.Scatter, snap.Map)
	if data, ok, err := s.opts.PreviewCache.Get(ctx, key); err == nil && ok {
		return data, nil
	}

	var buf bytes.Buffer
	if err := preview.Render(&buf, snap, topics, view, format); err != nil {
		return nil, err
	}
	if err := s.opts.PreviewCache.Set(ctx, key, buf.Bytes(), s.opts.PreviewTTL); err != nil {
		s.logger.Warn("cache preview", "err", err)
	}
	return buf.Bytes(), nil
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Reset()
	writeJSON(w, http.StatusOK, sess.Info())
}

// session resolves the {id} parameter, writing the error response itself.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return sess, true
}

func viewportFromQuery(r *http.Request) (engine.Viewport, error) {
	q := r.URL.Query()
	if q.Get("width") == "" && q.Get("height") == "" {
		return engine.Viewport{}, nil
	}
	w, errW := strconv.ParseFloat(q.Get("width"), 64)
	h, errH := strconv.ParseFloat(q.Get("height"), 64)
	if errW != nil || errH != nil {
		return engine.Viewport{}, apperrors.New(apperrors.ErrCodeInvalidViewport, "width and height must both be numbers")
	}
	if err := apperrors.ValidateViewport(w, h); err != nil {
		return engine.Viewport{}, err
	}
	return engine.Viewport{Width: w, Height: h}, nil
}

func queryOr(r *http.Request, key, fallback string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return fallback
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := apperrors.ErrCodeInternal
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrExpired):
		status, code = http.StatusNotFound, apperrors.ErrCodeSessionNotFound
	case errors.Is(err, session.ErrLimit):
		status, code = http.StatusServiceUnavailable, apperrors.ErrCodeSessionLimit
	default:
		if c := apperrors.GetCode(err); c != "" {
			status, code = apperrors.HTTPStatus(err), c
		}
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, errorBody{Code: code, Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
