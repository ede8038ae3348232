package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mkulima/entities"
)

func TestPredictMaizeTopCandidate(t *testing.T) {
	res, err := NewMock().Predict(nil, "maize")
	require.NoError(t, err)

	assert.Equal(t, "Maize Lethal Necrosis", res.DiseaseName)
	assert.Equal(t, 0.85, res.Confidence)
	assert.Equal(t, entities.SeverityHigh, res.Severity)
	assert.Len(t, res.AllPredictions, 3)
	assert.NotEmpty(t, res.Treatments)
	assert.NotEmpty(t, res.Preventions)
	assert.False(t, res.Timestamp.IsZero())
}

func TestPredictUnknownTypeFallsBackToMaize(t *testing.T) {
	res, err := NewMock().Predict(nil, "unknown-type")
	require.NoError(t, err)
	assert.Equal(t, "Maize Lethal Necrosis", res.DiseaseName)
	assert.Equal(t, 0.85, res.Confidence)
}

func TestPredictCaseFoldsPlantType(t *testing.T) {
	res, err := NewMock().Predict(nil, "  ToMaTo ")
	require.NoError(t, err)
	assert.Equal(t, "Tomato Late Blight", res.DiseaseName)
	assert.Equal(t, entities.SeverityHigh, res.Severity)
}

func TestPredictCoffee(t *testing.T) {
	res, err := NewMock().Predict(nil, "coffee")
	require.NoError(t, err)
	assert.Equal(t, "Coffee Leaf Rust", res.DiseaseName)
	assert.Equal(t, 0.78, res.Confidence)
	assert.Equal(t, entities.SeverityMedium, res.Severity)
}

func TestPredictUnknownDiseaseUsesHealthyAdvice(t *testing.T) {
	// banana's top disease has no knowledge-base entry yet
	res, err := NewMock().Predict(nil, "banana")
	require.NoError(t, err)
	assert.Equal(t, "Banana Sigatoka", res.DiseaseName)
	assert.Equal(t, 0.75, res.Confidence)
	assert.Equal(t, entities.SeverityLow, res.Severity)
	assert.Contains(t, res.Treatments, "Maintain current care practices")
}
