package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cropadvisor/entities"
)

var header = []string{
	"Crop", "Season", "Planting Months", "Harvest Months", "Cycle Days",
	"Temp Min", "Temp Max", "Rainfall Min", "Rainfall Max", "Humidity Min", "Humidity Max",
	"Soil Types", "pH Min", "pH Max", "Drainage", "Organic Matter", "Water Requirement",
	"Yield", "Profitability", "Practices", "Pest Management", "Fertilizer Schedule",
}

var rows = [][]string{
	{"Okra", "Kharif", "6;7", "9", "90", "22", "35", "600", "1000", "50", "80",
		"Sandy Loam;Loam", "6.0", "6.8", "yes", "high", "medium",
		"100 q/ha", "High", "Sow 60x30 cm|Pick every 2 days", "Spray neem oil", "Basal:FYM:20 t/ha|Flowering:Urea:50 kg/ha"},
	{"Coconut", "Year-round", "6", "", "perennial", "27", "", "", "", "", "",
		"", "", "", "", "", "very high", "", "", "", "", ""},
	{"", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", ""},
}

func assertLoaded(t *testing.T, c *Catalog) {
	t.Helper()
	require.Equal(t, 2, c.Len())

	okra, ok := c.Lookup("okra")
	require.True(t, ok)
	assert.Equal(t, []int{6, 7}, okra.PlantingMonths)
	assert.Equal(t, 90, okra.CycleDays)
	require.NotNil(t, okra.Climate)
	assert.Equal(t, 22.0, okra.Climate.TempMin)
	assert.Equal(t, 80.0, okra.Climate.HumidityMax)
	require.NotNil(t, okra.Soil)
	assert.Equal(t, []string{"Sandy Loam", "Loam"}, okra.Soil.Types)
	assert.True(t, okra.Soil.Drainage)
	assert.Equal(t, entities.TierHigh, okra.Soil.OrganicMatter)
	assert.Equal(t, entities.TierMedium, okra.WaterRequirement)
	assert.Len(t, okra.Practices, 2)
	assert.Equal(t, entities.FertilizerStep{Stage: "Flowering", Product: "Urea", Quantity: "50 kg/ha"}, okra.Fertilizer[1])

	coconut, ok := c.Lookup("Coconut")
	require.True(t, ok)
	assert.True(t, coconut.IsPerennial())
	assert.Nil(t, coconut.Climate, "partial climate range is dropped")
	assert.Nil(t, coconut.Soil)
	assert.Equal(t, entities.TierVeryHigh, coconut.WaterRequirement)
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crops.csv")
	var body string
	for _, r := range append([][]string{header}, rows...) {
		for i, cell := range r {
			if i > 0 {
				body += ","
			}
			body += `"` + cell + `"`
		}
		body += "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte("\uFEFF"+body), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assertLoaded(t, c)
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crops.xlsx")
	x := excelize.NewFile()
	sheet := x.GetSheetName(0)
	for i, r := range append([][]string{header}, rows...) {
		cells := make([]any, len(r))
		for j := range r {
			cells[j] = r[j]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, x.SetSheetRow(sheet, cell, &cells))
	}
	require.NoError(t, x.SaveAs(path))
	require.NoError(t, x.Close())

	c, err := Load(path)
	require.NoError(t, err)
	assertLoaded(t, c)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("crops.json")
	assert.ErrorContains(t, err, "unsupported")

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "noname.csv")
	require.NoError(t, os.WriteFile(path, []byte("season,water\nKharif,low\n"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "missing name column")

	path = filepath.Join(t.TempDir(), "badcycle.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,cycle_days\nRice,long\n"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "cycle days")
}

func TestLoadCSVWithoutBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.csv")
	require.NoError(t, os.WriteFile(path, []byte(`"Name","Season"`+"\nKale,Rabi\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	kale, ok := c.Lookup("kale")
	require.True(t, ok)
	assert.Equal(t, "Rabi", kale.Season)
}

func TestLoadSoilTypesWithOpenPH(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soil.csv")
	body := "\uFEFFname,soil_types,ph_min,ph_max\n" +
		"Yam,Sandy Loam;Loam,,\n" +
		"Taro,Clay,5.5,\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	yam, ok := c.Lookup("Yam")
	require.True(t, ok)
	require.NotNil(t, yam.Soil)
	assert.Equal(t, []string{"Sandy Loam", "Loam"}, yam.Soil.Types)
	assert.Equal(t, 0.0, yam.Soil.PHMin)
	assert.Equal(t, 14.0, yam.Soil.PHMax)

	taro, ok := c.Lookup("Taro")
	require.True(t, ok)
	require.NotNil(t, taro.Soil)
	assert.Equal(t, 5.5, taro.Soil.PHMin)
	assert.Equal(t, 14.0, taro.Soil.PHMax)

	bad := filepath.Join(t.TempDir(), "badph.csv")
	require.NoError(t, os.WriteFile(bad, []byte("name,soil_types,ph_min\nYam,Loam,acid\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "ph")
}
