package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openamr/amr/internal/domain/sir"
	"github.com/openamr/amr/internal/infrastructure/monitoring/prometheus"
	"github.com/openamr/amr/pkg/errors"
)

// InterpretHandler exposes susceptibility interpretation endpoints.
type InterpretHandler struct {
	interpreter *sir.Interpreter
	metrics     *prometheus.Metrics
}

// NewInterpretHandler creates a handler over the interpreter. Metrics may be
// nil.
func NewInterpretHandler(interpreter *sir.Interpreter, metrics *prometheus.Metrics) *InterpretHandler {
	return &InterpretHandler{interpreter: interpreter, metrics: metrics}
}

// InterpretRequest is the body of POST /api/v1/interpret.
type InterpretRequest struct {
	Values []string `json:"values"`
}

// InterpretResponse mirrors the interpretation outcome.
type InterpretResponse struct {
	Values          []sir.Value `json:"values"`
	Uninterpretable []string    `json:"uninterpretable,omitempty"`
}

// Interpret handles POST /api/v1/interpret.
func (h *InterpretHandler) Interpret(c *gin.Context) {
	var req InterpretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Wrap(err, errors.CodeInvalidParam, "invalid request body"))
		return
	}

	outcome, err := h.interpreter.Interpret(req.Values)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.metrics != nil {
		for _, v := range outcome.Values {
			label := v.String()
			if v.IsUnknown() {
				label = "unknown"
			}
			h.metrics.InterpretationsTotal.WithLabelValues(label).Inc()
		}
	}

	c.JSON(http.StatusOK, InterpretResponse{
		Values:          outcome.Values,
		Uninterpretable: outcome.Uninterpretable,
	})
}

// MICRequest is the body of POST /api/v1/mic/parse.
type MICRequest struct {
	Values []string `json:"values"`
}

// MICResult is the parse result for one MIC input.
type MICResult struct {
	Input            string  `json:"input"`
	Valid            bool    `json:"valid"`
	Normalized       string  `json:"normalized,omitempty"`
	Operator         string  `json:"operator,omitempty"`
	Value            float64 `json:"value,omitempty"`
	OnDilutionSeries bool    `json:"on_dilution_series,omitempty"`
}

// ParseMIC handles POST /api/v1/mic/parse.
func (h *InterpretHandler) ParseMIC(c *gin.Context) {
	var req MICRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Wrap(err, errors.CodeInvalidParam, "invalid request body"))
		return
	}

	results := make([]MICResult, len(req.Values))
	for i, raw := range req.Values {
		results[i] = MICResult{Input: raw}
		mic, ok := sir.ParseMIC(raw)
		if !ok {
			continue
		}
		results[i].Valid = true
		results[i].Normalized = mic.String()
		results[i].Operator = string(mic.Op)
		results[i].Value = mic.Value
		results[i].OnDilutionSeries = mic.OnDilutionSeries()
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
