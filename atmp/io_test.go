package atmp

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udawtr/mwrt-go/rte"
)

const testCSV = `z,p,t,rh,denliq
# surface
0,1000,290,80,0
1,900,284,90,0.2
2,800,278,95,0.1
`

func Test_LoadCSV(t *testing.T) {
	pr, err := LoadCSV(strings.NewReader(testCSV), false)
	require.NoError(t, err)
	assert.Equal(t, 3, pr.Len())
	assert.Equal(t, []float64{0.0, 0.2, 0.1}, pr.Denliq)
	assert.Equal(t, []float64{0, 0, 0}, pr.Denice)
	assert.InDelta(t, 0.8*rte.SaturationPressure(290, false), pr.E[0], 1e-9)
	assert.InDelta(t, 0.95*rte.SaturationPressure(278, false), pr.E[2], 1e-9)
	assert.InDelta(t, 80.0, RelativeHumidity(pr.E[0], pr.Tk[0]), 0.5)
}

const coldCSV = `z,p,t,rh
0,700,270,80
1,600,260,80
2,500,230,80
`

func Test_LoadCSV_Ice(t *testing.T) {
	water, err := LoadCSV(strings.NewReader(coldCSV), false)
	require.NoError(t, err)
	ice, err := LoadCSV(strings.NewReader(coldCSV), true)
	require.NoError(t, err)

	// above 263.16 K ice makes no difference
	assert.Equal(t, water.E[0], ice.E[0])
	assert.InDelta(t, 0.8*rte.SaturationPressure(260, false), water.E[1], 1e-12)
	assert.InDelta(t, 0.8*rte.SaturationPressure(260, true), ice.E[1], 1e-12)
	assert.InDelta(t, 0.8*rte.SaturationPressure(230, true), ice.E[2], 1e-12)
	assert.Less(t, ice.E[1], water.E[1])
	assert.Less(t, ice.E[2], water.E[2])

	// the YAML key does the same per file
	pr, err := ParseYAML([]byte("{z: [0, 1], p: [600, 500], t: [260, 230], rh: [80, 80], ice: true}"))
	require.NoError(t, err)
	assert.Equal(t, ice.E[1:], pr.E)
}

func Test_LoadCSV_Errors(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("z,p,t\n0,1000,290\n1,900,284\n"), false)
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = LoadCSV(strings.NewReader("z,p,t,e\n0,1000,abc,10\n"), false)
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = LoadCSV(strings.NewReader("z,p,t,rh\n0,1000,290,80\n1,900,284,\n"), false)
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = LoadCSV(strings.NewReader(""), false)
	assert.Error(t, err)
}

func Test_ParseYAML(t *testing.T) {
	pr, err := ParseYAML([]byte(`
name: sonde
z: [0.1, 1.1]
p: [1000, 900]
t: [290, 284]
mixing_ratio: [10, 6]
denice: [0, 0.01]
`))
	require.NoError(t, err)
	assert.Equal(t, "sonde", pr.Name)
	assert.InDelta(t, 10.0, MixingRatio(pr.E[0], pr.P[0]), 1e-9)
	assert.Equal(t, []float64{0, 0}, pr.Denliq)

	_, err = ParseYAML([]byte(`{z: [0, 1], p: [1000, 900], t: [290, 284], e: [10]}`))
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func Test_LoadFiles(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "cloudy.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(testCSV), 0o644))

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write(tropicalYAML)
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	gzPath := filepath.Join(dir, "tropical.yaml.gz")
	require.NoError(t, os.WriteFile(gzPath, buf.Bytes(), 0o644))

	ymlPath := filepath.Join(dir, "plain.yml")
	require.NoError(t, os.WriteFile(ymlPath, []byte("z: [0, 1]\np: [1000, 900]\nt: [290, 284]\ne: [10, 8]\n"), 0o644))

	profiles, err := LoadFiles([]string{csvPath, gzPath, ymlPath}, false)
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	assert.Equal(t, "cloudy", profiles[0].Name)
	assert.Equal(t, "tropical", profiles[1].Name)
	assert.Equal(t, 28, profiles[1].Len())
	assert.Equal(t, "plain", profiles[2].Name)

	_, err = LoadFiles([]string{csvPath, filepath.Join(dir, "missing.csv")}, false)
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(dir, "profile.txt"), false)
	assert.Error(t, err)
}
