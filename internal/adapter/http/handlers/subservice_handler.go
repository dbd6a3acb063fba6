package handlers

import (
	"errors"
	"log"
	"net/http"

	response "nishad_gateway/internal/adapter/http/dto/response"
	"nishad_gateway/internal/adapter/http/middleware"
	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

const subServiceImageField = "image"

// SubServiceHandler serves the pages under a service. Create and update take
// multipart forms so the admin panel can send the card image in one request.
type SubServiceHandler struct {
	usecase usecase.ISubServiceUseCase
}

func NewSubServiceHandler(uc usecase.ISubServiceUseCase) *SubServiceHandler {
	return &SubServiceHandler{usecase: uc}
}

// ListByService godoc
// @Summary  Subservices of a service
// @Description  Anonymous callers only see active subservices; admins see all.
// @Tags     subservices
// @Produce  json
// @Param    id         path      string  true  "Service id"
// @Success  200        {object}  response.Envelope{data=[]entities.SubService}
// @Failure  404        {object}  pkg.HTTPError
// @Router   /services/{id}/subservices [get]
func (h *SubServiceHandler) ListByService(c *gin.Context) {
	_, isAdmin := middleware.AdminFromContext(c)

	subs, err := h.usecase.ListByService(c.Request.Context(), c.Param("id"), isAdmin)
	if err != nil {
		appErr := mapCMSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(subs))
}

// Get godoc
// @Summary   One subservice
// @Tags      subservices
// @Produce   json
// @Security  Bearer
// @Param     id   path      string  true  "Subservice id"
// @Success   200  {object}  response.Envelope{data=entities.SubService}
// @Failure   404  {object}  pkg.HTTPError
// @Router    /subservices/{id} [get]
func (h *SubServiceHandler) Get(c *gin.Context) {
	sub, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCMSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(sub))
}

// Create godoc
// @Summary   Create a subservice
// @Tags      subservices
// @Accept    multipart/form-data
// @Produce   json
// @Security  Bearer
// @Param     id           path      string  true   "Service id"
// @Param     title        formData  string  true   "Title"
// @Param     slug         formData  string  false  "Slug"
// @Param     description  formData  string  false  "Description"
// @Param     isActive     formData  bool    false  "Visible on the site"
// @Param     image        formData  file    false  "Card image"
// @Success   201          {object}  response.Envelope{data=entities.SubService}
// @Failure   400          {object}  pkg.HTTPError
// @Router    /services/{id}/subservices [post]
func (h *SubServiceHandler) Create(c *gin.Context) {
	in, closeImage, err := subServiceInputFromForm(c)
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	defer closeImage()

	sub, err := h.usecase.Create(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		appErr := mapCMSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.OKMessage("Subservice created", sub))
}

// Update godoc
// @Summary   Partially update a subservice
// @Tags      subservices
// @Accept    multipart/form-data
// @Produce   json
// @Security  Bearer
// @Param     id           path      string  true   "Subservice id"
// @Param     title        formData  string  false  "Title"
// @Param     slug         formData  string  false  "Slug"
// @Param     description  formData  string  false  "Description"
// @Param     isActive     formData  bool    false  "Visible on the site"
// @Param     image        formData  file    false  "Card image"
// @Success   200          {object}  response.Envelope{data=entities.SubService}
// @Failure   404          {object}  pkg.HTTPError
// @Router    /subservices/{id} [put]
func (h *SubServiceHandler) Update(c *gin.Context) {
	in, closeImage, err := subServiceInputFromForm(c)
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	defer closeImage()

	sub, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		appErr := mapCMSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OKMessage("Subservice updated", sub))
}

// Delete godoc
// @Summary   Delete a subservice and its page content
// @Tags      subservices
// @Produce   json
// @Security  Bearer
// @Param     id   path      string  true  "Subservice id"
// @Success   200  {object}  response.Envelope
// @Failure   404  {object}  pkg.HTTPError
// @Router    /subservices/{id} [delete]
func (h *SubServiceHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCMSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OKMessage("Subservice deleted", nil))
}

var errBadBool = errors.New("isActive must be true or false")

// subServiceInputFromForm reads a multipart or urlencoded form. Fields that
// are absent stay nil so updates only touch what was sent.
func subServiceInputFromForm(c *gin.Context) (usecase.SubServiceInput, func(), error) {
	var in usecase.SubServiceInput
	noop := func() {}

	if v, ok := c.GetPostForm("title"); ok {
		in.Title = &v
	}
	if v, ok := c.GetPostForm("slug"); ok {
		in.Slug = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		in.Description = &v
	}
	if v, ok := c.GetPostForm("isActive"); ok {
		active, err := parseFormBool(v)
		if err != nil {
			return in, noop, err
		}
		in.IsActive = &active
	}

	fh, err := c.FormFile(subServiceImageField)
	if err != nil {
		// no image part
		return in, noop, nil
	}
	f, err := fh.Open()
	if err != nil {
		return in, noop, err
	}
	in.Image = &entities.FileUpload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}
	return in, func() {
		if err := f.Close(); err != nil {
			log.Printf("[subservice][handler] close upload failed err=%v", err)
		}
	}, nil
}

func parseFormBool(v string) (bool, error) {
	switch v {
	case "true", "1", "on":
		return true, nil
	case "false", "0", "off", "":
		return false, nil
	default:
		return false, errBadBool
	}
}
