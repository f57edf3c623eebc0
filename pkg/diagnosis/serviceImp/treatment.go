package serviceImp

import (
	"strings"

	"cropadvisor/pkg/diagnosis/client"
)

var treatments = map[string][]string{
	"healthy": {
		"No disease detected; keep monitoring leaves weekly",
	},
	"leaf blight": {
		"Remove and destroy infected leaves",
		"Spray mancozeb or copper oxychloride at label rates",
		"Avoid overhead irrigation late in the day",
	},
	"powdery mildew": {
		"Apply wettable sulphur or a potassium bicarbonate spray",
		"Improve air flow by thinning dense foliage",
	},
	"leaf rust": {
		"Spray propiconazole or tebuconazole at first sign of pustules",
		"Grow rust-resistant varieties next season",
	},
	"bacterial spot": {
		"Use certified disease-free seed",
		"Spray copper-based bactericide every 7-10 days in wet weather",
		"Rotate away from solanaceous crops for two seasons",
	},
	"early blight": {
		"Remove lower infected leaves and mulch the soil surface",
		"Spray chlorothalonil or mancozeb",
	},
	"late blight": {
		"Destroy infected plants immediately",
		"Apply metalaxyl with mancozeb as a protective spray",
		"Do not store tubers from infected fields",
	},
	"mosaic virus": {
		"Uproot and burn infected plants",
		"Control aphid and whitefly vectors",
		"Disinfect tools between plants",
	},
}

var defaultTreatment = []string{
	"Isolate affected plants",
	"Consult the local agricultural extension office with a sample",
}

func treatmentFor(label string) []string {
	key := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(label, "_", " ")))
	if t, ok := treatments[key]; ok {
		return append([]string(nil), t...)
	}
	// labels such as "Tomato___Late_blight"
	for _, l := range client.MockLabels {
		k := strings.ToLower(l)
		if strings.Contains(key, k) {
			return append([]string(nil), treatments[k]...)
		}
	}
	return append([]string(nil), defaultTreatment...)
}
