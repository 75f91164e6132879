package httpapi

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// maxUploadBytes caps photo uploads at 5 MiB.
const maxUploadBytes = 5 << 20

var allowedUploadExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// handleUpload stores a multipart image upload on local disk and returns the
// public URL it will be served under.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		writeError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, &validationError{Fields: map[string][]string{
			"image": {"The image may not be greater than 5 megabytes."},
		}})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, &validationError{Fields: map[string][]string{
			"image": {"The image field is required."},
		}})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExtensions[ext] {
		writeError(w, &validationError{Fields: map[string][]string{
			"image": {"The image must be a png, jpeg or webp file."},
		}})
		return
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		writeError(w, err)
		return
	}

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		writeError(w, err)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"url": "/storage/" + name,
	})
}
