package controllerImp

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mkulima/database"
	"mkulima/entities"
	detectionRepoImp "mkulima/pkg/detection/repositoryImp"
	plantRepoImp "mkulima/pkg/plant/repositoryImp"
	"mkulima/pkg/predictor"
	userRepoImp "mkulima/pkg/user/repositoryImp"
)

type fixture struct {
	e    *echo.Echo
	db   *gorm.DB
	ctrl *PredictionCtrl
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedPlants(db))

	ctrl := New(
		predictor.NewMock(),
		detectionRepoImp.New(db),
		userRepoImp.New(db),
		plantRepoImp.New(db),
	)
	return &fixture{e: echo.New(), db: db, ctrl: ctrl}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 224, 224))))
	return buf.Bytes()
}

func multipartUpload(t *testing.T, filename string, data []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if filename != "" {
		part, err := w.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func (f *fixture) predict(t *testing.T, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	require.NoError(t, f.ctrl.Predict(f.e.NewContext(req, rec)))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestPredictMissingImage(t *testing.T) {
	f := newFixture(t)
	body, ct := multipartUpload(t, "", nil, map[string]string{"plant_type": "maize"})
	rec := f.predict(t, body, ct)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No image file provided", decode(t, rec)["error"])
}

func TestPredictRejectsBadExtension(t *testing.T) {
	f := newFixture(t)
	body, ct := multipartUpload(t, "leaf.bmp", []byte("data"), nil)
	rec := f.predict(t, body, ct)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "Invalid file type")
}

func TestPredictRejectsEmptyUpload(t *testing.T) {
	f := newFixture(t)
	body, ct := multipartUpload(t, "leaf.png", []byte{}, nil)
	rec := f.predict(t, body, ct)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "File is empty.", decode(t, rec)["error"])
}

func TestPredictDefaultsToMaize(t *testing.T) {
	f := newFixture(t)
	body, ct := multipartUpload(t, "leaf.png", pngBytes(t), nil)
	rec := f.predict(t, body, ct)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "Maize Lethal Necrosis", out["disease"])
	assert.Equal(t, 0.85, out["confidence"])
	assert.Equal(t, "High", out["severity"])
	assert.Equal(t, "maize", out["plant_type"])
	assert.NotEmpty(t, out["detection_id"])
	// location omitted when not supplied
	_, hasLocation := out["location"]
	assert.False(t, hasLocation)
}

func TestPredictEchoesLocation(t *testing.T) {
	f := newFixture(t)
	body, ct := multipartUpload(t, "leaf.png", pngBytes(t), map[string]string{
		"plant_type": "Coffee",
		"location":   "Nyeri",
	})
	rec := f.predict(t, body, ct)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, "Coffee Leaf Rust", out["disease"])
	assert.Equal(t, "coffee", out["plant_type"])
	assert.Equal(t, "Nyeri", out["location"])
}

func TestPredictPersistsForKnownUser(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.db.Create(&entities.User{
		ID: "u1", Name: "Amina", Email: "amina@example.com", Region: "Central",
	}).Error)

	body, ct := multipartUpload(t, "leaf.png", pngBytes(t), map[string]string{"user_id": "u1"})
	rec := f.predict(t, body, ct)
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)

	var d entities.DiseaseDetection
	require.NoError(t, f.db.Where("user_id = ?", "u1").First(&d).Error)
	assert.Equal(t, out["detection_id"], d.ID)
	assert.Equal(t, "Maize Lethal Necrosis", d.DiseaseName)
	assert.True(t, d.IsSynced)

	var u entities.User
	require.NoError(t, f.db.Where("id = ?", "u1").First(&u).Error)
	assert.Equal(t, 1, u.TotalScans)
	assert.Equal(t, 1, u.SuccessfulDetections)
}

func TestPredictIgnoresUnknownUser(t *testing.T) {
	f := newFixture(t)
	body, ct := multipartUpload(t, "leaf.png", pngBytes(t), map[string]string{"user_id": "ghost"})
	rec := f.predict(t, body, ct)
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, f.db.Model(&entities.DiseaseDetection{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlantsCatalog(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/plants", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, f.ctrl.Plants(f.e.NewContext(req, rec)))

	require.Equal(t, http.StatusOK, rec.Code)
	plants := decode(t, rec)["plants"].(map[string]any)
	require.Contains(t, plants, "maize")
	maize := plants["maize"].(map[string]any)
	assert.Equal(t, "Maize", maize["name"])
	assert.Equal(t, "Mahindi", maize["local_name"])
	diseases := maize["diseases"].([]any)
	assert.Equal(t, "Healthy", diseases[len(diseases)-1])
}

func TestGetDetection(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.db.Create(&entities.User{
		ID: "u1", Name: "Amina", Email: "amina@example.com", Region: "Central",
	}).Error)
	repo := detectionRepoImp.New(f.db)
	d := &entities.DiseaseDetection{
		UserID: "u1", PlantType: "maize", DiseaseName: "Common Rust",
		Confidence: 0.6, Severity: entities.SeverityMedium,
	}
	require.NoError(t, repo.Add(d))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/detections/"+d.ID, nil)
	rec := httptest.NewRecorder()
	c := f.e.NewContext(req, rec)
	c.SetParamNames("detection_id")
	c.SetParamValues(d.ID)
	require.NoError(t, f.ctrl.GetDetection(c))
	require.Equal(t, http.StatusOK, rec.Code)
	detection := decode(t, rec)["detection"].(map[string]any)
	assert.Equal(t, "Common Rust", detection["disease_name"])
}

func TestGetDetectionNotFound(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/detections/nope", nil)
	rec := httptest.NewRecorder()
	c := f.e.NewContext(req, rec)
	c.SetParamNames("detection_id")
	c.SetParamValues("nope")
	require.NoError(t, f.ctrl.GetDetection(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
