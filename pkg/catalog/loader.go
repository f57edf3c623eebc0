package catalog

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"cropadvisor/entities"
)

// Load reads a crop table from a .csv or .xlsx file. The first row is a header;
// column names are matched loosely (case, spaces, dashes and underscores ignored).
func Load(path string) (*Catalog, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("catalog: unsupported file type %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	crops, err := parseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return New(crops)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	br := bufio.NewReader(f)
	// spreadsheet exports often start with a UTF-8 byte order mark
	if r, _, err := br.ReadRune(); err == nil && r != '\uFEFF' {
		if err := br.UnreadRune(); err != nil {
			return nil, err
		}
	}
	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

func readXLSX(path string) ([][]string, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()
	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return x.GetRows(sheets[0])
}

func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

type columns map[string]int

func (c columns) find(keys ...string) int {
	for _, k := range keys {
		if idx, ok := c[normHeader(k)]; ok {
			return idx
		}
	}
	return -1
}

func parseRows(rows [][]string) ([]entities.CropProfile, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty table")
	}
	cols := columns{}
	for i, h := range rows[0] {
		cols[normHeader(h)] = i
	}

	cName := cols.find("name", "crop", "crop_name")
	if cName == -1 {
		return nil, fmt.Errorf("missing name column; found headers: %v", rows[0])
	}
	cSeason := cols.find("season")
	cPlant := cols.find("planting_months", "planting", "sowing_months")
	cHarvest := cols.find("harvest_months", "harvest")
	cCycle := cols.find("cycle_days", "duration", "days")
	cTMin, cTMax := cols.find("temp_min", "temperature_min"), cols.find("temp_max", "temperature_max")
	cRMin, cRMax := cols.find("rainfall_min", "rain_min"), cols.find("rainfall_max", "rain_max")
	cHMin, cHMax := cols.find("humidity_min", "hum_min"), cols.find("humidity_max", "hum_max")
	cSoil := cols.find("soil_types", "soil_type", "soil")
	cPHMin, cPHMax := cols.find("ph_min"), cols.find("ph_max")
	cDrain := cols.find("drainage_required", "drainage")
	cOM := cols.find("organic_matter", "om")
	cWater := cols.find("water_requirement", "water_need", "water")
	cYield := cols.find("yield")
	cProfit := cols.find("profitability", "profit")
	cPractices := cols.find("practices", "cultivation_practices")
	cPests := cols.find("pest_management", "pests")
	cFert := cols.find("fertilizer_schedule", "fertilizer")

	var out []entities.CropProfile
	for n, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		name := get(cName)
		if name == "" {
			continue // blank spreadsheet rows
		}
		p := entities.CropProfile{
			Name:             name,
			Season:           get(cSeason),
			PlantingMonths:   splitMonths(get(cPlant)),
			HarvestMonths:    splitMonths(get(cHarvest)),
			WaterRequirement: entities.ParseTier(get(cWater)),
			Yield:            get(cYield),
			Profitability:    get(cProfit),
			Practices:        splitList(get(cPractices), "|"),
			PestManagement:   splitList(get(cPests), "|"),
			Fertilizer:       splitFertilizer(get(cFert)),
		}
		cycle, err := parseCycle(get(cCycle))
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", n+2, name, err)
		}
		p.CycleDays = cycle

		// Partial ranges are dropped rather than read as zero bounds.
		if v, ok := floats(get(cTMin), get(cTMax), get(cRMin), get(cRMax), get(cHMin), get(cHMax)); ok {
			p.Climate = &entities.ClimateRange{TempMin: v[0], TempMax: v[1], RainfallMin: v[2], RainfallMax: v[3], HumidityMin: v[4], HumidityMax: v[5]}
		}
		// A blank pH bound is open: 0 for the minimum, 14 for the maximum.
		if types := splitList(get(cSoil), ";"); len(types) > 0 {
			phMin, err := phBound(get(cPHMin), 0)
			if err != nil {
				return nil, fmt.Errorf("row %d (%s): %w", n+2, name, err)
			}
			phMax, err := phBound(get(cPHMax), 14)
			if err != nil {
				return nil, fmt.Errorf("row %d (%s): %w", n+2, name, err)
			}
			p.Soil = &entities.SoilRequirement{
				Types:         types,
				PHMin:         phMin,
				PHMax:         phMax,
				Drainage:      parseDrainage(get(cDrain)),
				OrganicMatter: entities.ParseTier(get(cOM)),
			}
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, errors.New("no crop rows")
	}
	return out, nil
}

func floats(ss ...string) ([]float64, bool) {
	out := make([]float64, len(ss))
	for i, s := range ss {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func phBound(s string, open float64) (float64, error) {
	if s == "" {
		return open, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("ph %q: %w", s, err)
	}
	return v, nil
}

func parseCycle(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	if strings.EqualFold(s, "perennial") {
		return entities.Perennial, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("cycle days %q: %w", s, err)
	}
	return v, nil
}

func parseDrainage(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "1", "good", "required":
		return true
	}
	return false
}

func splitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func splitMonths(s string) []int {
	var out []int
	for _, part := range splitList(s, ";") {
		if m, err := strconv.Atoi(part); err == nil && m >= 1 && m <= 12 {
			out = append(out, m)
		}
	}
	return out
}

// splitFertilizer reads "stage:product:quantity" entries separated by "|".
func splitFertilizer(s string) []entities.FertilizerStep {
	var out []entities.FertilizerStep
	for _, entry := range splitList(s, "|") {
		parts := strings.SplitN(entry, ":", 3)
		for len(parts) < 3 {
			parts = append(parts, "")
		}
		out = append(out, entities.FertilizerStep{
			Stage:    strings.TrimSpace(parts[0]),
			Product:  strings.TrimSpace(parts[1]),
			Quantity: strings.TrimSpace(parts[2]),
		})
	}
	return out
}
