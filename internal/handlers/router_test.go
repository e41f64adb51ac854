package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/routes"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/storage"
	"portfolio_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "password123"
)

// testEnv is a fully wired router over in-memory repositories.
type testEnv struct {
	router *gin.Engine
	token  string
	mailer *recordingMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	base := handlers.NewBaseHandler(validator.New())

	userRepo := newMemUserRepo()
	authService := services.NewAuthService(userRepo, tokens)
	_, err := authService.CreateAdmin(context.Background(), testAdminUser, testAdminPassword)
	require.NoError(t, err)

	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	uploadService := services.NewUploadService(store, services.UploadConfig{
		MaxImageSize:  5 * 1024 * 1024,
		MaxResumeSize: 10 * 1024 * 1024,
	})

	mailer := &recordingMailer{}
	contactService := services.NewContactService(mailer, services.ContactConfig{
		FromEmail:    "noreply@example.com",
		ContactEmail: "owner@example.com",
	})

	appHandlers := &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(base, authService),
		ProjectHandler:     handlers.NewProjectHandler(base, services.NewProjectService(newMemProjectRepo())),
		ExperienceHandler:  handlers.NewExperienceHandler(base, services.NewExperienceService(newMemExperienceRepo())),
		EducationHandler:   handlers.NewEducationHandler(base, services.NewEducationService(newMemEducationRepo())),
		AchievementHandler: handlers.NewAchievementHandler(base, services.NewAchievementService(newMemAchievementRepo())),
		ReviewHandler:      handlers.NewReviewHandler(base, services.NewReviewService(newMemReviewRepo())),
		UploadHandler:      handlers.NewUploadHandler(base, uploadService),
		ContactHandler:     handlers.NewContactHandler(base, contactService),
		HealthHandler:      handlers.NewHealthHandler(),
	}

	router := gin.New()
	routes.RegisterRoutes(router, appHandlers, middleware.AuthMiddleware(tokens))

	token, err := tokens.Generate("user-1", testAdminUser)
	require.NoError(t, err)

	return &testEnv{
		router: router,
		token:  token,
		mailer: mailer,
	}
}

// doJSON performs a request with an optional JSON body and bearer token.
func (e *testEnv) doJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// doMultipart performs an authenticated file upload.
func (e *testEnv) doMultipart(t *testing.T, path, token, field, filename, contentType string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
