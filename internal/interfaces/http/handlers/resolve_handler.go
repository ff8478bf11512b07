package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appresolve "github.com/openamr/amr/internal/application/resolve"
	domresolve "github.com/openamr/amr/internal/domain/resolve"
	"github.com/openamr/amr/pkg/errors"
)

// ResolveHandler exposes the resolution endpoints.
type ResolveHandler struct {
	service appresolve.Service
}

// NewResolveHandler creates a handler over the resolution service.
func NewResolveHandler(service appresolve.Service) *ResolveHandler {
	return &ResolveHandler{service: service}
}

// ResolveRequest is the body of POST /api/v1/resolve.
type ResolveRequest struct {
	Names      []string `json:"names"`
	Coagulase  string   `json:"coagulase,omitempty"` // "" | "negative" | "all"
	Lancefield bool     `json:"lancefield,omitempty"`
}

// PairedResolveRequest is the body of POST /api/v1/resolve/paired.
type PairedResolveRequest struct {
	Genus      []string `json:"genus"`
	Species    []string `json:"species"`
	Coagulase  string   `json:"coagulase,omitempty"`
	Lancefield bool     `json:"lancefield,omitempty"`
}

func parseOptions(coagulase string, lancefield bool) (domresolve.Options, error) {
	opts := domresolve.Options{Lancefield: lancefield}
	switch coagulase {
	case "":
		opts.Coagulase = domresolve.CoagulaseOff
	case "negative":
		opts.Coagulase = domresolve.CoagulaseGroupNegative
	case "all":
		opts.Coagulase = domresolve.CoagulaseGroupAll
	default:
		return opts, errors.Newf(errors.CodeInvalidParam,
			"coagulase must be empty, %q or %q, got %q", "negative", "all", coagulase)
	}
	return opts, nil
}

// Resolve handles POST /api/v1/resolve.
func (h *ResolveHandler) Resolve(c *gin.Context) {
	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Wrap(err, errors.CodeInvalidParam, "invalid request body"))
		return
	}
	opts, err := parseOptions(req.Coagulase, req.Lancefield)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.service.Resolve(c.Request.Context(), &appresolve.ResolveInput{
		Names:   req.Names,
		Options: opts,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ResolvePaired handles POST /api/v1/resolve/paired.
func (h *ResolveHandler) ResolvePaired(c *gin.Context) {
	var req PairedResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Wrap(err, errors.CodeInvalidParam, "invalid request body"))
		return
	}
	opts, err := parseOptions(req.Coagulase, req.Lancefield)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.service.ResolvePaired(c.Request.Context(), &appresolve.PairedInput{
		Genus:   req.Genus,
		Species: req.Species,
		Options: opts,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Lookup handles GET /api/v1/organisms/:code.
func (h *ResolveHandler) Lookup(c *gin.Context) {
	org, err := h.service.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}
