package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadImageEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.doMultipart(t, "/api/upload", env.token, "image", "photo.png", "image/png", []byte("png bytes"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message  string `json:"message"`
		FilePath string `json:"filePath"`
	}
	decodeJSON(t, w, &resp)
	assert.Equal(t, "File uploaded successfully", resp.Message)
	assert.Contains(t, resp.FilePath, "/uploads/")
}

func TestUploadImageRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.doMultipart(t, "/api/upload", "", "image", "photo.png", "image/png", []byte("png bytes"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	env := newTestEnv(t)

	w := env.doMultipart(t, "/api/upload", env.token, "image", "notes.txt", "text/plain", []byte("plain text"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Only image files are allowed")
}

func TestUploadImageMissingFileIs400(t *testing.T) {
	env := newTestEnv(t)

	// Wrong form field: the handler expects "image".
	w := env.doMultipart(t, "/api/upload", env.token, "file", "photo.png", "image/png", []byte("png bytes"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file uploaded")
}

func TestUploadResumeEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.doMultipart(t, "/api/upload-resume", env.token, "resume", "My CV.pdf", "application/pdf", []byte("pdf bytes"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Filename string `json:"filename"`
		FilePath string `json:"filePath"`
	}
	decodeJSON(t, w, &resp)
	assert.Equal(t, "resume.pdf", resp.Filename)

	info := env.doJSON(t, http.MethodGet, "/api/resume", "", nil)
	require.Equal(t, http.StatusOK, info.Code)

	var infoResp struct {
		Exists   bool   `json:"exists"`
		Filename string `json:"filename"`
		Size     int64  `json:"size"`
	}
	decodeJSON(t, info, &infoResp)
	assert.True(t, infoResp.Exists)
	assert.Equal(t, "resume.pdf", infoResp.Filename)
	assert.Equal(t, int64(len("pdf bytes")), infoResp.Size)
}

func TestUploadResumeRejectsUnsupportedType(t *testing.T) {
	env := newTestEnv(t)

	w := env.doMultipart(t, "/api/upload-resume", env.token, "resume", "cv.txt", "text/plain", []byte("text"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Only PDF and DOC files are allowed")
}

func TestResumeInfoIsPublicAndEmptyByDefault(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/api/resume", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Exists bool `json:"exists"`
	}
	decodeJSON(t, w, &resp)
	assert.False(t, resp.Exists)
}
