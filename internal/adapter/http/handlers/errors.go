package handlers

import (
	"errors"
	"net/http"

	"nishad_gateway/internal/usecase"
	"nishad_gateway/pkg"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// mapCMSError covers the sentinel errors shared by the service, subservice,
// content and upload handlers.
func mapCMSError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidSubServiceID),
		errors.Is(err, usecase.ErrInvalidServiceInput), errors.Is(err, usecase.ErrInvalidSubServiceInput):
		return errInvalidPayload
	case errors.Is(err, usecase.ErrInvalidSectionOrder):
		return pkg.NewDomainErrorSimple("INVALID_SECTION_ORDER", "Section order contains unknown or duplicate sections", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubServiceNotFound):
		return pkg.NewDomainErrorSimple("SUBSERVICE_NOT_FOUND", "Subservice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceSlugTaken):
		return pkg.NewDomainErrorSimple("SLUG_TAKEN", "Slug already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyFile):
		return pkg.NewDomainErrorSimple("EMPTY_FILE", "No file uploaded", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFileTooLarge):
		return pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "File exceeds the maximum upload size", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrUnsupportedFileType):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FILE_TYPE", "Only JPEG, PNG, GIF, WEBP and SVG images are allowed", http.StatusUnsupportedMediaType)
	case errors.Is(err, usecase.ErrStorageNotConfigured):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "File storage is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
