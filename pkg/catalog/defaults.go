package catalog

import "cropadvisor/entities"

// Default returns the built-in crop table.
func Default() *Catalog {
	c, err := New(builtin())
	if err != nil {
		panic(err) // static data
	}
	return c
}

func builtin() []entities.CropProfile {
	return []entities.CropProfile{
		{
			Name: "Rice", Season: "Kharif", PlantingMonths: []int{6, 7}, HarvestMonths: []int{10, 11}, CycleDays: 120,
			Climate:          &entities.ClimateRange{TempMin: 20, TempMax: 35, RainfallMin: 1000, RainfallMax: 2500, HumidityMin: 60, HumidityMax: 90},
			Soil:             &entities.SoilRequirement{Types: []string{"Clay", "Clay Loam", "Silty Clay"}, PHMin: 5.5, PHMax: 7.0, OrganicMatter: entities.TierMedium},
			WaterRequirement: entities.TierVeryHigh,
			Yield:            "40-60 quintals/ha", Profitability: "Medium",
			Practices:      []string{"Raise nursery 25-30 days before transplanting", "Transplant 2-3 seedlings per hill at 20x15 cm", "Keep 5 cm standing water until grain filling"},
			PestManagement: []string{"Install light traps for stem borer", "Spray tricyclazole at first sign of blast"},
			Fertilizer: []entities.FertilizerStep{
				{Stage: "Basal", Product: "DAP", Quantity: "100 kg/ha"},
				{Stage: "Tillering", Product: "Urea", Quantity: "65 kg/ha"},
				{Stage: "Panicle initiation", Product: "Urea", Quantity: "65 kg/ha"},
			},
		},
		{
			Name: "Wheat", Season: "Rabi", PlantingMonths: []int{10, 11, 12}, HarvestMonths: []int{3, 4}, CycleDays: 120,
			Climate:          &entities.ClimateRange{TempMin: 10, TempMax: 25, RainfallMin: 400, RainfallMax: 1100, HumidityMin: 40, HumidityMax: 70},
			Soil:             &entities.SoilRequirement{Types: []string{"Loam", "Clay Loam", "Alluvial"}, PHMin: 6.0, PHMax: 7.5, Drainage: true, OrganicMatter: entities.TierMedium},
			WaterRequirement: entities.TierMedium,
			Yield:            "35-50 quintals/ha", Profitability: "Medium",
			Practices:      []string{"Sow in rows 20 cm apart at 100 kg seed/ha", "Give first irrigation at crown root initiation (21 days)"},
			PestManagement: []string{"Use rust-resistant varieties", "Spray propiconazole for yellow rust"},
			Fertilizer: []entities.FertilizerStep{
				{Stage: "Basal", Product: "NPK 12-32-16", Quantity: "150 kg/ha"},
				{Stage: "Crown root initiation", Product: "Urea", Quantity: "90 kg/ha"},
			},
		},
		{
			Name: "Maize", Season: "Kharif", PlantingMonths: []int{6, 7}, HarvestMonths: []int{9, 10}, CycleDays: 100,
			Climate:          &entities.ClimateRange{TempMin: 18, TempMax: 32, RainfallMin: 500, RainfallMax: 1200, HumidityMin: 50, HumidityMax: 80},
			Soil:             &entities.SoilRequirement{Types: []string{"Loam", "Sandy Loam", "Silt Loam"}, PHMin: 5.5, PHMax: 7.5, Drainage: true, OrganicMatter: entities.TierMedium},
			WaterRequirement: entities.TierMedium,
			Yield:            "50-70 quintals/ha", Profitability: "Medium",
			Practices:      []string{"Sow on ridges at 60x20 cm", "Earth up at knee-high stage"},
			PestManagement: []string{"Scout for fall armyworm twice a week", "Apply emamectin benzoate to whorls when damage exceeds 10%"},
			Fertilizer: []entities.FertilizerStep{
				{Stage: "Basal", Product: "DAP", Quantity: "125 kg/ha"},
				{Stage: "Knee-high", Product: "Urea", Quantity: "100 kg/ha"},
			},
		},
		{
			Name: "Cotton", Season: "Kharif", PlantingMonths: []int{4, 5, 6}, HarvestMonths: []int{10, 11, 12}, CycleDays: 170,
			Climate:          &entities.ClimateRange{TempMin: 21, TempMax: 35, RainfallMin: 500, RainfallMax: 1000, HumidityMin: 40, HumidityMax: 70},
			Soil:             &entities.SoilRequirement{Types: []string{"Black", "Clay Loam", "Loam"}, PHMin: 5.8, PHMax: 8.0, Drainage: true, OrganicMatter: entities.TierMedium},
			WaterRequirement: entities.TierHigh,
			Yield:            "15-25 quintals/ha", Profitability: "High",
			Practices:      []string{"Use Bt hybrids with refuge rows", "Keep the field weed-free for the first 60 days"},
			PestManagement: []string{"Set pheromone traps for pink bollworm", "Release Trichogramma at squaring"},
			Fertilizer: []entities.FertilizerStep{
				{Stage: "Basal", Product: "SSP", Quantity: "250 kg/ha"},
				{Stage: "Squaring", Product: "Urea", Quantity: "80 kg/ha"},
				{Stage: "Flowering", Product: "Potash", Quantity: "50 kg/ha"},
			},
		},
		{
			Name: "Sugarcane", Season: "Year-round", PlantingMonths: []int{2, 3, 10}, HarvestMonths: []int{12, 1, 2, 3}, CycleDays: 365,
			Climate:          &entities.ClimateRange{TempMin: 20, TempMax: 38, RainfallMin: 1500, RainfallMax: 2500, HumidityMin: 60, HumidityMax: 85},
			Soil:             &entities.SoilRequirement{Types: []string{"Loam", "Clay Loam", "Alluvial"}, PHMin: 6.0, PHMax: 7.5, Drainage: true, OrganicMatter: entities.TierHigh},
			WaterRequirement: entities.TierVeryHigh,
			Yield:            "700-1000 quintals/ha", Profitability: "High",
			Practices:      []string{"Plant three-bud setts in furrows 90 cm apart", "Trash mulch between rows after earthing up"},
			PestManagement: []string{"Remove dead hearts for early shoot borer", "Treat setts against red rot before planting"},
			Fertilizer: []entities.FertilizerStep{
				{Stage: "Planting", Product: "FYM", Quantity: "25 t/ha"},
				{Stage: "Tillering", Product: "Urea", Quantity: "130 kg/ha"},
				{Stage: "Grand growth", Product: "Urea", Quantity: "130 kg/ha"},
			},
		},
		{
			Name: "Tomato", Season: "Rabi", PlantingMonths: []int{7, 8, 11}, HarvestMonths: []int{10, 11, 2, 3}, CycleDays: 110,
			Climate:          &entities.ClimateRange{TempMin: 20, TempMax: 30, RainfallMin: 600, RainfallMax: 1000, HumidityMin: 50, HumidityMax: 80},
			Soil:             &entities.SoilRequirement{Types: []string{"Sandy Loam", "Loam", "Clay Loam"}, PHMin: 6.0, PHMax: 7.0, Drainage: true, OrganicMatter: entities.TierHigh},
			WaterRequirement: entities.TierMedium,
			Yield:            "250-400 quintals/ha", Profitability: "High",
			Practices:      []string{"Transplant 4-week seedlings at 60x45 cm", "Stake plants at 30 days", "Drip irrigate every 3-4 days"},
			PestManagement: []string{"Use yellow sticky traps for whitefly", "Spray mancozeb against early blight"},
			Fertilizer: []entities.FertilizerStep{
				{Stage: "Basal", Product: "NPK 19-19-19", Quantity: "120 kg/ha"},
				{Stage: "Flowering", Product: "Calcium nitrate", Quantity: "25 kg/ha"},
			},
		},
		{
			Name: "Potato", Season: "Rabi", PlantingMonths: []int{10, 11}, HarvestMonths: []int{1, 2, 3}, CycleDays: 100,
			Climate:          &entities.ClimateRange{TempMin: 15, TempMax: 25, RainfallMin: 500, RainfallMax: 800, HumidityMin: 60, HumidityMax: 80},
			Soil:             &entities.SoilRequirement{Types: []string{"Sandy Loam", "Loam", "Silt Loam"}, PHMin: 5.0, PHMax: 6.5, Drainage: true, OrganicMatter: entities.TierHigh},
			WaterRequirement: entities.TierMedium,
			Yield:            "200-300 quintals/ha", Profitability: "High",
			Practices:      []string{"Plant sprouted seed tubers 20 cm apart on ridges", "Earth up 30 days after planting"},
			PestManagement: []string{"Spray metalaxyl against late blight in humid weather", "Rogue virus-infected plants"},
			Fertilizer: []entities.FertilizerStep{
				{Stage: "Planting", Product: "NPK 10-26-26", Quantity: "250 kg/ha"},
				{Stage: "Earthing up", Product: "Urea", Quantity: "100 kg/ha"},
			},
		},
		{
			Name: "Onion", Season: "Rabi", PlantingMonths: []int{10, 11, 12}, HarvestMonths: []int{3, 4, 5}, CycleDays: 130,
			Climate:          &entities.ClimateRange{TempMin: 13, TempMax: 28, RainfallMin: 350, RainfallMax: 750, HumidityMin: 50, HumidityMax: 70},
			Soil:             &entities.SoilRequirement{Types: []string{"Sandy Loam", "Loam", "Silt Loam"}, PHMin: 6.0, PHMax: 7.5, Drainage: true, OrganicMatter: entities.TierMedium},
			WaterRequirement: entities.TierMedium,
			Yield:            "250-300 quintals/ha", Profitability: "High",
			Practices:      []string{"Transplant 6-week seedlings at 15x10 cm", "Stop irrigation two weeks before harvest"},
			PestManagement: []string{"Spray fipronil for thrips", "Cure bulbs for 10 days before storage"},
			Fertilizer: []entities.FertilizerStep{
				{Stage: "Basal", Product: "NPK 15-15-15", Quantity: "200 kg/ha"},
				{Stage: "Bulb initiation", Product: "Sulphur", Quantity: "20 kg/ha"},
			},
		},
		{
			Name: "Soybean", Season: "Kharif", PlantingMonths: []int{6, 7}, HarvestMonths: []int{9, 10}, CycleDays: 100,
			Climate:          &entities.ClimateRange{TempMin: 20, TempMax: 32, RainfallMin: 600, RainfallMax: 1000, HumidityMin: 50, HumidityMax: 80},
			Soil:             &entities.SoilRequirement{Types: []string{"Loam", "Clay Loam", "Black"}, PHMin: 6.0, PHMax: 7.5, Drainage: true, OrganicMatter: entities.TierMedium},
			WaterRequirement: entities.TierMedium,
			Yield:            "20-30 quintals/ha", Profitability: "Medium",
			Practices:      []string{"Treat seed with Rhizobium culture", "Sow at 45 cm row spacing"},
			PestManagement: []string{"Monitor for girdle beetle", "Spray chlorantraniliprole for defoliators"},
			Fertilizer: []entities.FertilizerStep{
				{Stage: "Basal", Product: "SSP", Quantity: "375 kg/ha"},
			},
		},
		{
			Name: "Groundnut", Season: "Kharif", PlantingMonths: []int{6, 7}, HarvestMonths: []int{10, 11}, CycleDays: 120,
			Climate:          &entities.ClimateRange{TempMin: 22, TempMax: 33, RainfallMin: 500, RainfallMax: 1250, HumidityMin: 50, HumidityMax: 75},
			Soil:             &entities.SoilRequirement{Types: []string{"Sandy Loam", "Sandy", "Loam"}, PHMin: 6.0, PHMax: 7.0, Drainage: true, OrganicMatter: entities.TierLow},
			WaterRequirement: entities.TierLow,
			Yield:            "15-25 quintals/ha", Profitability: "Medium",
			Practices:      []string{"Apply gypsum at pegging", "Avoid disturbing soil after pegging"},
			PestManagement: []string{"Treat seed with Trichoderma against collar rot", "Hand-pick red hairy caterpillar egg masses"},
			Fertilizer: []entities.FertilizerStep{
				{Stage: "Basal", Product: "NPK 10-26-26", Quantity: "100 kg/ha"},
				{Stage: "Pegging", Product: "Gypsum", Quantity: "500 kg/ha"},
			},
		},
		{
			Name: "Chickpea", Season: "Rabi", PlantingMonths: []int{10, 11}, HarvestMonths: []int{2, 3}, CycleDays: 110,
			Climate:          &entities.ClimateRange{TempMin: 15, TempMax: 30, RainfallMin: 400, RainfallMax: 650, HumidityMin: 30, HumidityMax: 60},
			Soil:             &entities.SoilRequirement{Types: []string{"Loam", "Clay Loam", "Sandy Loam"}, PHMin: 6.0, PHMax: 8.0, Drainage: true, OrganicMatter: entities.TierLow},
			WaterRequirement: entities.TierLow,
			Yield:            "15-20 quintals/ha", Profitability: "Medium",
			Practices:      []string{"Sow on conserved moisture after monsoon", "Nip growing tips at 30 days"},
			PestManagement: []string{"Install bird perches against pod borer", "Spray NPV for Helicoverpa"},
			Fertilizer: []entities.FertilizerStep{
				{Stage: "Basal", Product: "DAP", Quantity: "100 kg/ha"},
			},
		},
		{
			Name: "Millet", Season: "Kharif", PlantingMonths: []int{6, 7}, HarvestMonths: []int{9, 10}, CycleDays: 85,
			Climate:          &entities.ClimateRange{TempMin: 25, TempMax: 35, RainfallMin: 250, RainfallMax: 700, HumidityMin: 30, HumidityMax: 60},
			Soil:             &entities.SoilRequirement{Types: []string{"Sandy", "Sandy Loam", "Loam"}, PHMin: 5.5, PHMax: 8.0, Drainage: true, OrganicMatter: entities.TierLow},
			WaterRequirement: entities.TierLow,
			Yield:            "20-30 quintals/ha", Profitability: "Low",
			Practices:      []string{"Sow 4 kg seed/ha in rows 45 cm apart", "Thin to 12 cm plant spacing"},
			PestManagement: []string{"Treat seed with metalaxyl against downy mildew"},
			Fertilizer: []entities.FertilizerStep{
				{Stage: "Basal", Product: "Urea", Quantity: "45 kg/ha"},
				{Stage: "Tillering", Product: "Urea", Quantity: "45 kg/ha"},
			},
		},
		{
			Name: "Sorghum", Season: "Kharif", PlantingMonths: []int{6, 7}, HarvestMonths: []int{10, 11}, CycleDays: 110,
			Climate:          &entities.ClimateRange{TempMin: 25, TempMax: 35, RainfallMin: 400, RainfallMax: 1000, HumidityMin: 40, HumidityMax: 70},
			Soil:             &entities.SoilRequirement{Types: []string{"Loam", "Clay Loam", "Black", "Sandy Loam"}, PHMin: 5.5, PHMax: 8.5, Drainage: true, OrganicMatter: entities.TierLow},
			WaterRequirement: entities.TierLow,
			Yield:            "25-40 quintals/ha", Profitability: "Low",
			Practices:      []string{"Sow at 45x15 cm", "Harvest when grains are hard"},
			PestManagement: []string{"Sow early to escape shoot fly", "Apply carbofuran granules in whorls for stem borer"},
			Fertilizer: []entities.FertilizerStep{
				{Stage: "Basal", Product: "NPK 20-20-0", Quantity: "200 kg/ha"},
			},
		},
		{
			Name: "Banana", Season: "Year-round", PlantingMonths: []int{2, 3, 6, 7}, HarvestMonths: []int{1, 2, 5, 6}, CycleDays: 330,
			Climate:          &entities.ClimateRange{TempMin: 20, TempMax: 35, RainfallMin: 1200, RainfallMax: 2200, HumidityMin: 70, HumidityMax: 90},
			Soil:             &entities.SoilRequirement{Types: []string{"Loam", "Clay Loam", "Alluvial"}, PHMin: 6.0, PHMax: 7.5, Drainage: true, OrganicMatter: entities.TierHigh},
			WaterRequirement: entities.TierHigh,
			Yield:            "500-700 quintals/ha", Profitability: "High",
			Practices:      []string{"Plant tissue-culture suckers at 1.8x1.8 m", "Desucker monthly leaving one follower", "Prop bunches with bamboo"},
			PestManagement: []string{"Remove and burn Sigatoka-infected leaves", "Use pseudostem traps for weevil"},
			Fertilizer: []entities.FertilizerStep{
				{Stage: "Planting", Product: "FYM", Quantity: "10 kg/plant"},
				{Stage: "Vegetative", Product: "Urea", Quantity: "200 g/plant"},
				{Stage: "Shooting", Product: "Potash", Quantity: "300 g/plant"},
			},
		},
		{
			Name: "Mango", Season: "Year-round", PlantingMonths: []int{7, 8}, HarvestMonths: []int{4, 5, 6}, CycleDays: entities.Perennial,
			Climate:          &entities.ClimateRange{TempMin: 24, TempMax: 30, RainfallMin: 750, RainfallMax: 2500, HumidityMin: 50, HumidityMax: 80},
			Soil:             &entities.SoilRequirement{Types: []string{"Loam", "Alluvial", "Sandy Loam", "Laterite"}, PHMin: 5.5, PHMax: 7.5, Drainage: true, OrganicMatter: entities.TierMedium},
			WaterRequirement: entities.TierMedium,
			Yield:            "80-100 quintals/ha from year 6", Profitability: "High",
			Practices:      []string{"Plant grafts at 10x10 m", "Withhold irrigation two months before flowering"},
			PestManagement: []string{"Spray against hoppers at panicle emergence", "Bag fruits against fruit fly"},
			Fertilizer: []entities.FertilizerStep{
				{Stage: "Post-harvest", Product: "NPK 10-10-10", Quantity: "1 kg/tree per year of age"},
			},
		},
	}
}
