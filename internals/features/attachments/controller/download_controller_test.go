package controller

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contaspagar_backend/internals/configs"
)

func newTestApp(userID *uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Post("/download", func(c *fiber.Ctx) error {
		if userID != nil {
			c.Locals("user_id", userID.String())
		}
		return NewDownloadController(nil).Download(c)
	})
	return app
}

func postDownload(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/download", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestDownloadSemAutenticacao(t *testing.T) {
	app := newTestApp(nil)
	resp := postDownload(t, app, `{"path":"abc/arquivo.pdf"}`)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestDownloadSemPath(t *testing.T) {
	userID := uuid.New()
	app := newTestApp(&userID)

	resp := postDownload(t, app, `{"path":""}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = postDownload(t, app, `{}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDownloadArquivoDeOutroUsuario(t *testing.T) {
	userID := uuid.New()
	app := newTestApp(&userID)

	otherID := uuid.New()
	resp := postDownload(t, app, `{"path":"`+otherID.String()+`/comprovante.pdf"}`)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func withFakeStorage(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	oldURL, oldKey := configs.SupabaseProjectURL, configs.SupabaseServiceKey
	configs.SupabaseProjectURL = srv.URL
	configs.SupabaseServiceKey = "test-key"
	t.Cleanup(func() {
		configs.SupabaseProjectURL = oldURL
		configs.SupabaseServiceKey = oldKey
	})
}

func TestDownloadBlobInexistente(t *testing.T) {
	withFakeStorage(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	userID := uuid.New()
	app := newTestApp(&userID)

	resp := postDownload(t, app, `{"path":"`+userID.String()+`/sumiu.pdf"}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDownloadSucesso(t *testing.T) {
	content := "%PDF-1.4 conteudo de teste"
	withFakeStorage(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/storage/v1/object/bill-attachments/")
		_, _ = w.Write([]byte(content))
	})

	userID := uuid.New()
	app := newTestApp(&userID)

	resp := postDownload(t, app, `{"path":"`+userID.String()+`/boleto.pdf"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), `filename="boleto.pdf"`)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, content, string(body))
}
