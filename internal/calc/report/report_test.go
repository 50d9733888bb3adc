package report

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Airlift/internal/calc/airlift"
)

var reportDate = time.Date(1942, time.November, 25, 0, 0, 0, 0, time.UTC)

func TestRender_Defaults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Input{Project: "6th Army"}, reportDate))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestRender_ShortageAndZeroSeries(t *testing.T) {
	in := Input{
		Title: "All grounded",
		Scenario: airlift.Input{
			Requirements: []airlift.SupplyRequirement{{Name: "Food", Tons: 300}},
			Fleet:        []airlift.AircraftType{{Name: "Ju 52", PayloadTons: 2, Available: 0}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, in, reportDate))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestBuild_ChartsMoveToNewPage(t *testing.T) {
	pdf, err := build(Input{}, reportDate)
	require.NoError(t, err)
	assert.Equal(t, 1, pdf.PageNo())

	fleet := make([]airlift.AircraftType, 30)
	for i := range fleet {
		fleet[i] = airlift.AircraftType{Name: fmt.Sprintf("Ju 52 #%d", i+1), PayloadTons: 2, Available: 10}
	}
	in := Input{Scenario: airlift.Input{
		Requirements: airlift.DefaultRequirements(),
		Fleet:        fleet,
	}}
	pdf, err = build(in, reportDate)
	require.NoError(t, err)
	assert.Equal(t, 2, pdf.PageNo())
	_, y := pdf.GetXY()
	assert.LessOrEqual(t, y, pageHeight-bottomMargin)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, in, reportDate))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestHandler_Generate(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/airlift/report/pdf",
		strings.NewReader(`{"title":"Winter 1942","notes":"Weather not modelled."}`))
	(&Handler{}).Generate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "airlift-report.pdf")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
}

func TestHandler_GenerateRejectsInvalidScenario(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/airlift/report/pdf",
		strings.NewReader(`{"scenario":{"fleet":[{"name":"Ju 52","payload_tons":-1}]}}`))
	(&Handler{}).Generate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "fleet[0].payload_tons")
}
