package server

import (
	"net/http"
	"strconv"

	"github.com/matzehuels/arena/pkg/bom"
	"github.com/matzehuels/arena/pkg/buildinfo"
	"github.com/matzehuels/arena/pkg/court"
	"github.com/matzehuels/arena/pkg/edit"
	"github.com/matzehuels/arena/pkg/errors"
	"github.com/matzehuels/arena/pkg/httputil"
	"github.com/matzehuels/arena/pkg/io"
	"github.com/matzehuels/arena/pkg/observability"
	"github.com/matzehuels/arena/pkg/pipeline"
	"github.com/matzehuels/arena/pkg/render"
)

// =============================================================================
// Request / Response Types
// =============================================================================

// GenerateRequest asks for a generated court. Ops, when present, are applied
// to the generated court in order.
type GenerateRequest struct {
	Width      int       `json:"width"`
	Length     int       `json:"length"`
	EndHeight  int       `json:"end_height"`
	SideHeight int       `json:"side_height"`
	Standalone bool      `json:"standalone"`
	Ops        []edit.Op `json:"ops,omitempty"`
}

// EditRequest applies ops to a supplied court.
type EditRequest struct {
	Court *io.CourtDoc `json:"court"`
	Ops   []edit.Op    `json:"ops"`
}

// EditResponse is the edited court and the per-op outcome.
type EditResponse struct {
	Court    io.CourtDoc `json:"court"`
	Applied  []bool      `json:"applied"`
	Rejected []Rejection `json:"rejected,omitempty"`
}

// Rejection explains why an op did not take effect.
type Rejection struct {
	Index  int    `json:"index"`
	Op     string `json:"op"`
	Reason string `json:"reason"`
}

// CourtRequest wraps a court for the BOM endpoint.
type CourtRequest struct {
	Court *io.CourtDoc `json:"court"`
}

// BOMResponse is the aggregated bill of materials.
type BOMResponse struct {
	Items []bom.Item `json:"items"`
	Total int        `json:"total"`
}

// RenderRequest draws a court. Format defaults to svg and View to plan.
type RenderRequest struct {
	Court    *io.CourtDoc `json:"court"`
	Format   string       `json:"format,omitempty"`
	View     string       `json:"view,omitempty"`
	Scale    float64      `json:"scale,omitempty"`
	Detailed bool         `json:"detailed,omitempty"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = httputil.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if !s.decode(w, r, &req) {
		return
	}
	opts := pipeline.Options{
		Width:      req.Width,
		Length:     req.Length,
		EndHeight:  req.EndHeight,
		SideHeight: req.SideHeight,
		Standalone: req.Standalone,
		Ops:        req.Ops,
		Logger:     s.logger,
	}
	c, _, err := s.runner.BuildCourt(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, io.Encode(c))
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	var req EditRequest
	if !s.decode(w, r, &req) {
		return
	}
	c, ok := s.court(w, r, req.Court)
	if !ok {
		return
	}

	resp := EditResponse{Applied: make([]bool, len(req.Ops))}
	for i, op := range req.Ops {
		if _, err := edit.ParseOpKind(string(op.Kind)); err != nil {
			s.fail(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "ops[%d]", i))
			return
		}
		reason := op.Check(c)
		next, applied := op.Apply(c)
		resp.Applied[i] = applied
		observability.Pipeline().OnEdit(r.Context(), op.String(), applied)
		if !applied {
			rej := Rejection{Index: i, Op: op.String(), Reason: "rejected"}
			if reason != nil {
				rej.Reason = errors.UserMessage(reason)
			}
			resp.Rejected = append(resp.Rejected, rej)
			continue
		}
		c = next
	}
	resp.Court = io.Encode(c)
	_ = httputil.WriteJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBOM(w http.ResponseWriter, r *http.Request) {
	var req CourtRequest
	if !s.decode(w, r, &req) {
		return
	}
	c, ok := s.court(w, r, req.Court)
	if !ok {
		return
	}
	items, err := s.runner.BOM(r.Context(), c)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if items == nil {
		items = []bom.Item{}
	}
	_ = httputil.WriteJSON(w, http.StatusOK, BOMResponse{Items: items, Total: bom.Total(items)})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if !s.decode(w, r, &req) {
		return
	}
	format := render.FormatSVG
	if req.Format != "" {
		f, err := render.ParseFormat(req.Format)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		format = f
	}
	c, ok := s.court(w, r, req.Court)
	if !ok {
		return
	}

	opts := pipeline.Options{
		Formats:  []string{string(format)},
		View:     req.View,
		Scale:    req.Scale,
		Detailed: req.Detailed,
		Logger:   s.logger,
	}
	artifacts, err := s.runner.Render(r.Context(), c, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	data := artifacts[string(format)]
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// =============================================================================
// Helpers
// =============================================================================

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httputil.DecodeJSON(w, r, s.opts.MaxBodyBytes, v); err != nil {
		s.fail(w, r, err)
		return false
	}
	return true
}

// court decodes and validates a supplied court document.
func (s *Server) court(w http.ResponseWriter, r *http.Request, doc *io.CourtDoc) (*court.Court, bool) {
	if doc == nil {
		s.fail(w, r, errors.New(errors.ErrCodeInvalidInput, "court is required"))
		return nil, false
	}
	c, err := doc.Decode()
	if err != nil {
		s.fail(w, r, err)
		return nil, false
	}
	return c, true
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	id := RequestID(r.Context())
	status := httputil.WriteError(w, id, err)
	observability.HTTP().OnError(r.Context(), id, r.Method, r.URL.Path, err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", id, "error", err)
	} else {
		s.logger.Debug("request rejected", "id", id, "status", status, "error", err)
	}
}

func errNotFound(path string) error {
	return errors.New(errors.ErrCodeNotFound, "no route for %s", path)
}
