package storage

import (
	"regexp"
	"testing"
)

func TestObjectKey(t *testing.T) {
	cases := []struct {
		name     string
		folder   string
		fileName string
		pattern  string
	}{
		{name: "simple", folder: "images", fileName: "logo.PNG", pattern: `^images/logo_[0-9a-f]{8}\.png$`},
		{name: "nested folder", folder: "subservices/svc-1", fileName: "hero shot.jpg", pattern: `^subservices/svc-1/hero-shot_[0-9a-f]{8}\.jpg$`},
		{name: "traversal stripped", folder: "../images/..", fileName: "../../etc/passwd", pattern: `^images/passwd_[0-9a-f]{8}$`},
		{name: "no base name", folder: "images", fileName: "???.webp", pattern: `^images/file_[0-9a-f]{8}\.webp$`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ObjectKey(tc.folder, tc.fileName)
			if !regexp.MustCompile(tc.pattern).MatchString(got) {
				t.Fatalf("key %q does not match %s", got, tc.pattern)
			}
		})
	}

	if ObjectKey("images", "a.png") == ObjectKey("images", "a.png") {
		t.Fatalf("expected unique keys")
	}
}

func TestNewMinIOStorage(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		if _, err := NewMinIOStorage(Config{}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("public url derived from endpoint", func(t *testing.T) {
		s, err := NewMinIOStorage(Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Bucket: "media"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := s.PublicURL("images/a.png"); got != "http://localhost:9000/media/images/a.png" {
			t.Fatalf("unexpected url %q", got)
		}
	})

	t.Run("public url override", func(t *testing.T) {
		s, err := NewMinIOStorage(Config{Endpoint: "minio:9000", AccessKey: "k", SecretKey: "s", Bucket: "media", UseSSL: true, PublicURL: "https://cdn.example.com/media/"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := s.PublicURL("images/a.png"); got != "https://cdn.example.com/media/images/a.png" {
			t.Fatalf("unexpected url %q", got)
		}
	})
}
