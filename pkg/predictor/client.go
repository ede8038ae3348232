package predictor

import (
	"time"

	"mkulima/pkg/imaging"
)

// Candidate is one (disease, confidence) pair from the ranked output.
type Candidate struct {
	Disease    string  `json:"disease"`
	Confidence float64 `json:"confidence"`
}

// Result bundles the top prediction with its knowledge-base advice and
// the full ranked candidate list.
type Result struct {
	DiseaseName    string      `json:"disease_name"`
	Confidence     float64     `json:"confidence"`
	Severity       string      `json:"severity"`
	Treatments     []string    `json:"treatments"`
	Preventions    []string    `json:"preventions"`
	Timestamp      time.Time   `json:"timestamp"`
	AllPredictions []Candidate `json:"all_predictions"`
}

// Client is the prediction capability. Callers must not assume any
// particular backing: NewMock() is a deterministic lookup-table stub
// standing in until a real model runtime is integrated.
type Client interface {
	Predict(img *imaging.Input, plantType string) (*Result, error)
}
