package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	request "nishad_gateway/internal/adapter/http/dto/request"
	response "nishad_gateway/internal/adapter/http/dto/response"
	"nishad_gateway/internal/usecase"
	"nishad_gateway/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// LeadHandler serves the admin leads dashboard.
type LeadHandler struct {
	usecase usecase.ILeadUseCase
	now     func() time.Time
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc, now: time.Now}
}

// List godoc
// @Summary   List calculator leads, newest first
// @Tags      leads
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.LeadsResponse
// @Failure   401  {object}  pkg.HTTPError
// @Router    /leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLeads(leads))
}

// Stats godoc
// @Summary   Lead counters for the dashboard
// @Tags      leads
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.Envelope{data=entities.LeadStats}
// @Router    /leads/stats [get]
func (h *LeadHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context(), h.now())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(stats))
}

// Export godoc
// @Summary   Download all leads as an Excel sheet
// @Tags      leads
// @Produce   application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security  Bearer
// @Success   200
// @Router    /leads/export [get]
func (h *LeadHandler) Export(c *gin.Context) {
	data, err := h.usecase.Export(c.Request.Context())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	name := fmt.Sprintf("leads_%s.xlsx", h.now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// Get godoc
// @Summary   Get one lead
// @Tags      leads
// @Produce   json
// @Security  Bearer
// @Param     id   path      string  true  "Lead id"
// @Success   200  {object}  response.Envelope{data=entities.Lead}
// @Failure   404  {object}  pkg.HTTPError
// @Router    /leads/{id} [get]
func (h *LeadHandler) Get(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(lead))
}

// UpdateStatus godoc
// @Summary   Move a lead through the sales pipeline
// @Tags      leads
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     id    path      string                           true  "Lead id"
// @Param     body  body      request.UpdateLeadStatusRequest  true  "new | contacted | converted"
// @Success   200   {object}  response.Envelope{data=entities.Lead}
// @Failure   400   {object}  pkg.HTTPError
// @Failure   404   {object}  pkg.HTTPError
// @Router    /leads/{id}/status [patch]
func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.LeadStatus())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OKMessage("Lead status updated", lead))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID):
		return errInvalidPayload
	case errors.Is(err, usecase.ErrInvalidLeadStatus):
		return pkg.NewDomainErrorSimple("INVALID_LEAD_STATUS", "Status must be new, contacted or converted", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExportFailed):
		return pkg.NewDomainError("EXPORT_FAILED", "Could not export leads", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
