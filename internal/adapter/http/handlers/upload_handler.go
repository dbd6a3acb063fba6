package handlers

import (
	"log"
	"net/http"

	request "nishad_gateway/internal/adapter/http/dto/request"
	response "nishad_gateway/internal/adapter/http/dto/response"
	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

const uploadFileField = "file"

// UploadHandler lets the admin panel put images into the bucket.
type UploadHandler struct {
	usecase usecase.IUploadUseCase
}

func NewUploadHandler(uc usecase.IUploadUseCase) *UploadHandler {
	return &UploadHandler{usecase: uc}
}

// UploadImage godoc
// @Summary   Upload an image
// @Tags      uploads
// @Accept    multipart/form-data
// @Produce   json
// @Security  Bearer
// @Param     file  formData  file  true  "Image"
// @Success   201   {object}  response.Envelope{data=entities.StoredObject}
// @Failure   400   {object}  pkg.HTTPError
// @Failure   413   {object}  pkg.HTTPError
// @Failure   415   {object}  pkg.HTTPError
// @Router    /upload/image [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile(uploadFileField)
	if err != nil {
		appErr := mapCMSError(usecase.ErrEmptyFile)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("[upload][handler] close upload failed err=%v", err)
		}
	}()

	obj, err := h.usecase.UploadImage(c.Request.Context(), entities.FileUpload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		appErr := mapCMSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.OKMessage("Image uploaded", obj))
}

// SignedUpload godoc
// @Summary   Presigned PUT URL for a direct browser upload
// @Tags      uploads
// @Produce   json
// @Security  Bearer
// @Param     folder       query     string  false  "Folder inside the bucket"
// @Param     fileName     query     string  true   "Original file name"
// @Param     contentType  query     string  true   "MIME type"
// @Success   200          {object}  response.Envelope{data=entities.PresignedUpload}
// @Failure   400          {object}  pkg.HTTPError
// @Router    /upload/signed [get]
func (h *UploadHandler) SignedUpload(c *gin.Context) {
	var q request.SignedUploadRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	signed, err := h.usecase.SignedUpload(c.Request.Context(), q.Folder, q.FileName, q.ContentType)
	if err != nil {
		appErr := mapCMSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(signed))
}
