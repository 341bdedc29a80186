package http

import (
	"net/http"

	"loan-guidance-api/internal/domain/loan"
	"loan-guidance-api/internal/usecase/analysis"

	"github.com/labstack/echo/v4"
)

type AnalysisHandler struct{ uc *analysis.Usecase }

func NewAnalysisHandler(uc *analysis.Usecase) *AnalysisHandler { return &AnalysisHandler{uc: uc} }

type VisualizationResponse struct {
	ImageData string `json:"image_data"`
}

// Every POST endpoint shares the same body shape. ok=false means the
// error response has already been written.
func bindLoanRequest(c echo.Context) (loan.Request, bool) {
	var req loan.Request
	if err := c.Bind(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
		return req, false
	}
	if err := c.Validate(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
		return req, false
	}
	return req, true
}

func (h *AnalysisHandler) Analyze(c echo.Context) error {
	req, ok := bindLoanRequest(c)
	if !ok {
		return nil
	}
	report, err := h.uc.Analyze(req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Error analyzing loan: " + err.Error()})
	}
	return c.JSON(http.StatusOK, report)
}

func (h *AnalysisHandler) Visualization(c echo.Context) error {
	req, ok := bindLoanRequest(c)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, VisualizationResponse{ImageData: h.uc.Visualization(req)})
}

func (h *AnalysisHandler) EnhancedVisualization(c echo.Context) error {
	req, ok := bindLoanRequest(c)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, VisualizationResponse{ImageData: h.uc.EnhancedVisualization(req)})
}

func (h *AnalysisHandler) PaymentSchedule(c echo.Context) error {
	req, ok := bindLoanRequest(c)
	if !ok {
		return nil
	}
	schedule, err := h.uc.PaymentSchedule(req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Error generating payment schedule: " + err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"schedule": schedule})
}

func (h *AnalysisHandler) Recommendations(c echo.Context) error {
	req, ok := bindLoanRequest(c)
	if !ok {
		return nil
	}
	recs, err := h.uc.Recommendations(req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Error generating recommendations: " + err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"recommendations": recs})
}
