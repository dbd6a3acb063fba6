package handlers

import (
	"errors"
	"net/http"

	request "nishad_gateway/internal/adapter/http/dto/request"
	response "nishad_gateway/internal/adapter/http/dto/response"
	"nishad_gateway/internal/usecase"
	"nishad_gateway/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler serves the public KSA expansion cost calculator.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// Calculate godoc
// @Summary      Estimate KSA expansion cost
// @Description  Prices the calculator form and records the visitor as a lead.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        body  body      request.EstimateRequest  true  "Calculator form"
// @Success      200   {object}  response.Envelope{data=entities.EstimateResult}
// @Failure      400   {object}  pkg.HTTPError
// @Failure      429   {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimateHandler) Calculate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Calculate(c.Request.Context(), payload.ToSubmission())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(res))
}

// DownloadReport godoc
// @Summary      Download the estimate as PDF
// @Tags         estimates
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  request.EstimateReportRequest  true  "Calculator form and optional report id"
// @Success      200
// @Failure      400   {object}  pkg.HTTPError
// @Router       /estimates/report [post]
func (h *EstimateHandler) DownloadReport(c *gin.Context) {
	var payload request.EstimateReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	rep, err := h.usecase.RenderReport(c.Request.Context(), payload.ToSubmission(), payload.ReportID)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+rep.FileName+`"`)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", rep.Content)
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContact), errors.Is(err, usecase.ErrInvalidEstimateInput):
		return errInvalidEstimatePayload
	case errors.Is(err, usecase.ErrReportUnavailable):
		return pkg.NewDomainErrorSimple("REPORT_UNAVAILABLE", "Report generation is unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
