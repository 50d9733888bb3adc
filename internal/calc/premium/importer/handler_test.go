package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Airlift/internal/calc/airlift"
)

func multipartWorkbook(t *testing.T, field string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, "airlift.xlsx")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestHandler_Import(t *testing.T) {
	var wb bytes.Buffer
	require.NoError(t, WriteWorkbook(&wb, airlift.DefaultInput()))
	body, contentType := multipartWorkbook(t, "file", wb.Bytes())

	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/airlift/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	(&Handler{}).Import(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out ImportResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, airlift.DefaultInput(), out.Input)
	assert.Equal(t, 825.0, out.Result.TotalCapacityTons)
}

func TestHandler_ImportRequiresFile(t *testing.T) {
	body, contentType := multipartWorkbook(t, "other", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/airlift/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	(&Handler{}).Import(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "File required")
}

func TestHandler_ImportRejectsDuplicateNames(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]any{
		"Requirements": {{"Category", "Tons"}, {"Food", 1}, {"Food", 2}},
		"Fleet":        {{"Aircraft", "Payload", "Available"}},
	})
	body, contentType := multipartWorkbook(t, "file", buf.Bytes())
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/airlift/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	(&Handler{}).Import(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "duplicate")
}

func TestHandler_Export(t *testing.T) {
	payload, err := json.Marshal(airlift.DefaultInput())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/airlift/export", strings.NewReader(string(payload)))
	(&Handler{}).Export(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "airlift.xlsx")

	in, err := ParseWorkbook(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, airlift.DefaultInput(), in)
}
