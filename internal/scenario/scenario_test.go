package scenario

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Airlift/internal/calc/airlift"
	"Airlift/internal/calc/premium/importer"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoad_EmptyPathIsDefaults(t *testing.T) {
	in, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, airlift.DefaultInput(), in)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "promised.yaml", []byte(`
requirements:
  - name: All supplies
    tons: 300
fleet:
  - name: Ju 52
    payload_tons: 2
    available: 100
  - name: He 111
    payload_tons: 1.5
    available: 40
`))

	in, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []airlift.SupplyRequirement{{Name: "All supplies", Tons: 300}}, in.Requirements)
	require.Len(t, in.Fleet, 2)
	assert.Equal(t, 260.0, airlift.Calculate(in).TotalCapacityTons)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "s.json", []byte(`{"requirements":[{"name":"Fuel","tons":180}],"fleet":[]}`))

	in, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 180.0, airlift.Total(in.Requirements))
}

func TestLoad_Workbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, importer.WriteWorkbook(&buf, airlift.DefaultInput()))
	path := writeFile(t, "defaults.XLSX", buf.Bytes())

	in, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, airlift.DefaultInput(), in)
}

func TestLoad_Errors(t *testing.T) {
	unknown := writeFile(t, "typo.yaml", []byte("requirements:\n  - name: Food\n    tonnes: 300\n"))
	invalid := writeFile(t, "neg.yaml", []byte("fleet:\n  - name: Ju 52\n    payload_tons: 2\n    available: -1\n"))

	_, err := Load(unknown)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tonnes")

	_, err = Load(invalid)
	assert.True(t, errors.Is(err, airlift.ErrInvalidInput))

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestEncode_DecodesBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, airlift.DefaultInput()))
	assert.True(t, strings.Contains(buf.String(), "payload_tons: 2"))

	in, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, airlift.DefaultInput(), in)
}

func TestDecode_Empty(t *testing.T) {
	in, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, airlift.Input{}, in)
}
