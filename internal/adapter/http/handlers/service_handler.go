package handlers

import (
	"net/http"

	request "nishad_gateway/internal/adapter/http/dto/request"
	response "nishad_gateway/internal/adapter/http/dto/response"
	"nishad_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceHandler serves the top-level CMS services and the public menu.
type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// Menu godoc
// @Summary  Navbar menu of active services and subservices
// @Tags     services
// @Produce  json
// @Success  200  {object}  response.Envelope{data=[]entities.MenuItem}
// @Router   /services/menu [get]
func (h *ServiceHandler) Menu(c *gin.Context) {
	menu, err := h.usecase.Menu(c.Request.Context())
	if err != nil {
		appErr := mapCMSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(menu))
}

// GetBySlug godoc
// @Summary  Public service page with its active subservices
// @Tags     services
// @Produce  json
// @Param    slug  path      string  true  "Service slug"
// @Success  200   {object}  response.Envelope{data=usecase.ServiceDetail}
// @Failure  404   {object}  pkg.HTTPError
// @Router   /services/slug/{slug} [get]
func (h *ServiceHandler) GetBySlug(c *gin.Context) {
	detail, err := h.usecase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		appErr := mapCMSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(detail))
}

// List godoc
// @Summary   All services, active or not
// @Tags      services
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.Envelope{data=[]entities.Service}
// @Router    /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCMSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(services))
}

// Create godoc
// @Summary   Create a service
// @Tags      services
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body  body      request.ServiceRequest  true  "Service"
// @Success   201   {object}  response.Envelope{data=entities.Service}
// @Failure   400   {object}  pkg.HTTPError
// @Failure   409   {object}  pkg.HTTPError
// @Router    /services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	svc, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapCMSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.OKMessage("Service created", svc))
}

// Update godoc
// @Summary   Partially update a service
// @Tags      services
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     id    path      string                  true  "Service id"
// @Param     body  body      request.ServiceRequest  true  "Fields to change"
// @Success   200   {object}  response.Envelope{data=entities.Service}
// @Failure   404   {object}  pkg.HTTPError
// @Router    /services/{id} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	svc, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapCMSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OKMessage("Service updated", svc))
}

// Delete godoc
// @Summary   Delete a service with its subservices and their content
// @Tags      services
// @Produce   json
// @Security  Bearer
// @Param     id   path      string  true  "Service id"
// @Success   200  {object}  response.Envelope
// @Failure   404  {object}  pkg.HTTPError
// @Router    /services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCMSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OKMessage("Service deleted", nil))
}
