package handlers

import (
	"net/http"

	response "nishad_gateway/internal/adapter/http/dto/response"
	"nishad_gateway/internal/adapter/http/middleware"
	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves the page document of a subservice.
type ContentHandler struct {
	usecase usecase.IContentUseCase
}

func NewContentHandler(uc usecase.IContentUseCase) *ContentHandler {
	return &ContentHandler{usecase: uc}
}

// Get godoc
// @Summary  Page content of a subservice
// @Description  Returns an empty document with the default section order when nothing was saved yet. Inactive subservices are only visible to admins.
// @Tags     content
// @Produce  json
// @Param    id   path      string  true  "Subservice id"
// @Success  200  {object}  response.Envelope{data=entities.SubServiceContent}
// @Failure  404  {object}  pkg.HTTPError
// @Router   /subservices/{id}/content [get]
func (h *ContentHandler) Get(c *gin.Context) {
	_, isAdmin := middleware.AdminFromContext(c)

	content, err := h.usecase.Get(c.Request.Context(), c.Param("id"), isAdmin)
	if err != nil {
		appErr := mapCMSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(content))
}

// Save godoc
// @Summary   Replace the page content of a subservice
// @Tags      content
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     id    path      string                      true  "Subservice id"
// @Param     body  body      entities.SubServiceContent  true  "Page document"
// @Success   200   {object}  response.Envelope{data=entities.SubServiceContent}
// @Failure   400   {object}  pkg.HTTPError
// @Failure   404   {object}  pkg.HTTPError
// @Router    /subservices/{id}/content [put]
func (h *ContentHandler) Save(c *gin.Context) {
	var payload entities.SubServiceContent
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		appErr := mapCMSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OKMessage("Content saved", saved))
}
