package predictor

import (
	"strings"
	"time"

	"mkulima/entities"
	"mkulima/pkg/imaging"
)

// mockClient selects predictions from fixed ranked lists keyed by plant
// type. It performs no inference; confidences are reported as listed.
type mockClient struct{}

func NewMock() Client { return &mockClient{} }

var mockPredictions = map[string][]Candidate{
	"maize": {
		{Disease: "Maize Lethal Necrosis", Confidence: 0.85},
		{Disease: "Northern Leaf Blight", Confidence: 0.10},
		{Disease: "Healthy", Confidence: 0.05},
	},
	"coffee": {
		{Disease: "Coffee Leaf Rust", Confidence: 0.78},
		{Disease: "Coffee Berry Disease", Confidence: 0.15},
		{Disease: "Healthy", Confidence: 0.07},
	},
	"tomato": {
		{Disease: "Tomato Late Blight", Confidence: 0.82},
		{Disease: "Tomato Early Blight", Confidence: 0.12},
		{Disease: "Healthy", Confidence: 0.06},
	},
	"banana": {
		{Disease: "Banana Sigatoka", Confidence: 0.75},
		{Disease: "Banana Bunchy Top", Confidence: 0.18},
		{Disease: "Healthy", Confidence: 0.07},
	},
}

type adviceEntry struct {
	Treatments  []string
	Preventions []string
	Severity    string
}

// knowledgeBase maps a disease name to its treatment/prevention text.
// Diseases absent from the table fall back to the "Healthy" entry.
var knowledgeBase = map[string]adviceEntry{
	"Maize Lethal Necrosis": {
		Treatments: []string{
			"Use certified disease-free seeds",
			"Remove and destroy infected plants immediately",
			"Practice crop rotation with non-cereal crops",
			"Control insect vectors using recommended pesticides",
		},
		Preventions: []string{
			"Plant resistant varieties when available",
			"Monitor fields regularly for early symptoms",
			"Avoid planting during high disease pressure seasons",
			"Maintain proper field hygiene and sanitation",
		},
		Severity: entities.SeverityHigh,
	},
	"Coffee Leaf Rust": {
		Treatments: []string{
			"Apply copper-based fungicides every 2-3 weeks",
			"Prune and remove heavily infected branches",
			"Ensure proper shade management",
			"Use systemic fungicides for severe cases",
		},
		Preventions: []string{
			"Plant resistant coffee varieties",
			"Maintain proper spacing between plants",
			"Apply preventive fungicides before rainy season",
			"Monitor weather conditions for disease forecasting",
		},
		Severity: entities.SeverityMedium,
	},
	"Tomato Late Blight": {
		Treatments: []string{
			"Apply fungicides containing chlorothalonil or mancozeb",
			"Remove and destroy infected plant parts",
			"Improve air circulation around plants",
			"Avoid overhead watering to reduce leaf wetness",
		},
		Preventions: []string{
			"Use resistant tomato varieties",
			"Practice crop rotation",
			"Ensure proper drainage in fields",
			"Remove plant debris after harvest",
		},
		Severity: entities.SeverityHigh,
	},
	"Healthy": {
		Treatments: []string{
			"Maintain current care practices",
			"Continue regular monitoring",
			"Ensure balanced nutrition",
			"Practice good agricultural practices",
		},
		Preventions: []string{
			"Continue preventive measures",
			"Maintain field hygiene",
			"Monitor for early signs of disease",
			"Follow recommended planting schedules",
		},
		Severity: entities.SeverityLow,
	},
}

func (m *mockClient) Predict(_ *imaging.Input, plantType string) (*Result, error) {
	key := strings.ToLower(strings.TrimSpace(plantType))
	candidates, ok := mockPredictions[key]
	if !ok {
		// deliberate fallback for unknown plant types, not an error
		candidates = mockPredictions["maize"]
	}
	top := candidates[0]

	advice, ok := knowledgeBase[top.Disease]
	if !ok {
		advice = knowledgeBase["Healthy"]
	}

	return &Result{
		DiseaseName:    top.Disease,
		Confidence:     top.Confidence,
		Severity:       advice.Severity,
		Treatments:     advice.Treatments,
		Preventions:    advice.Preventions,
		Timestamp:      time.Now().UTC(),
		AllPredictions: candidates,
	}, nil
}
