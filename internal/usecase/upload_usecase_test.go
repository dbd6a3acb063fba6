package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"nishad_gateway/internal/domain/entities"
	mock_interfaces "nishad_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUploadUseCase_UploadImage(t *testing.T) {
	cases := []struct {
		name string
		file entities.FileUpload
		err  error
	}{
		{name: "empty", file: entities.FileUpload{FileName: "a.png", ContentType: "image/png"}, err: ErrEmptyFile},
		{name: "too large", file: entities.FileUpload{FileName: "a.png", ContentType: "image/png", Size: 101, Body: strings.NewReader("x")}, err: ErrFileTooLarge},
		{name: "not an image", file: entities.FileUpload{FileName: "a.pdf", ContentType: "application/pdf", Size: 10, Body: strings.NewReader("x")}, err: ErrUnsupportedFileType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			storage := mock_interfaces.NewMockIObjectStorage(ctrl)
			uc := NewUploadUseCase(storage, 100, time.Minute)

			_, err := uc.UploadImage(context.Background(), tc.file)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
		})
	}

	t.Run("storage not configured", func(t *testing.T) {
		uc := NewUploadUseCase(nil, 100, time.Minute)
		_, err := uc.UploadImage(context.Background(), entities.FileUpload{})
		if !errors.Is(err, ErrStorageNotConfigured) {
			t.Fatalf("expected ErrStorageNotConfigured, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewUploadUseCase(storage, 100, time.Minute)

		storage.EXPECT().Upload(gomock.Any(), entities.UploadFolderImages, gomock.Any()).
			Return(entities.StoredObject{Key: "images/a.webp", URL: "https://cdn/images/a.webp"}, nil)

		obj, err := uc.UploadImage(context.Background(), entities.FileUpload{
			FileName: "a.webp", ContentType: "image/webp; charset=binary", Size: 10, Body: strings.NewReader("x"),
		})
		if err != nil || obj.URL != "https://cdn/images/a.webp" {
			t.Fatalf("unexpected result: %+v %v", obj, err)
		}
	})
}

func TestUploadUseCase_SignedUpload(t *testing.T) {
	t.Run("rejects non images", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewUploadUseCase(mock_interfaces.NewMockIObjectStorage(ctrl), 100, time.Minute)

		_, err := uc.SignedUpload(context.Background(), "images", "a.exe", "application/octet-stream")
		if !errors.Is(err, ErrUnsupportedFileType) {
			t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
		}
	})

	t.Run("defaults folder and ttl", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewUploadUseCase(storage, 100, 0)

		storage.EXPECT().PresignUpload(gomock.Any(), "images", "logo.svg", 15*time.Minute).
			Return(entities.PresignedUpload{FileKey: "images/logo.svg"}, nil)

		p, err := uc.SignedUpload(context.Background(), " ", "logo.svg", "image/svg+xml")
		if err != nil || p.FileKey != "images/logo.svg" {
			t.Fatalf("unexpected result: %+v %v", p, err)
		}
	})
}
