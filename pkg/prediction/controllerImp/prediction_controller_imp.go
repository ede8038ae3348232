package controllerImp

import (
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"mkulima/entities"
	detectionRepo "mkulima/pkg/detection/repository"
	"mkulima/pkg/imaging"
	plantRepo "mkulima/pkg/plant/repository"
	"mkulima/pkg/predictor"
	userRepo "mkulima/pkg/user/repository"
)

type PredictionCtrl struct {
	predictor  predictor.Client
	detections detectionRepo.DetectionRepository
	users      userRepo.UserRepository
	plants     plantRepo.PlantRepository
}

func New(
	p predictor.Client,
	detections detectionRepo.DetectionRepository,
	users userRepo.UserRepository,
	plants plantRepo.PlantRepository,
) *PredictionCtrl {
	return &PredictionCtrl{predictor: p, detections: detections, users: users, plants: plants}
}

// Predict runs intake validation, preprocessing and the prediction
// lookup for a multipart image upload. When a known user_id is supplied
// the detection is stored and the user's scan counters bump once.
func (h *PredictionCtrl) Predict(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "No image file provided",
		})
	}
	if fh.Filename == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "No file selected",
		})
	}
	if !imaging.AllowedFile(fh.Filename) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Invalid file type. Only PNG, JPG, JPEG, GIF allowed.",
		})
	}

	plantType := strings.ToLower(c.FormValue("plant_type"))
	if plantType == "" {
		plantType = "maize"
	}
	location := c.FormValue("location")
	userID := c.FormValue("user_id")

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Prediction failed: " + err.Error(),
		})
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Prediction failed: " + err.Error(),
		})
	}

	if msg := imaging.Validate(fh.Filename, data); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   msg,
		})
	}

	input, err := imaging.Preprocess(data)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Prediction failed: " + err.Error(),
		})
	}
	result, err := h.predictor.Predict(input, plantType)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Prediction failed: " + err.Error(),
		})
	}

	detectionID := uuid.NewString()
	if userID != "" {
		if _, err := h.users.FindByID(userID); err == nil {
			d := &entities.DiseaseDetection{
				ID:          detectionID,
				UserID:      userID,
				PlantType:   plantType,
				DiseaseName: result.DiseaseName,
				Confidence:  result.Confidence,
				Severity:    result.Severity,
				Location:    location,
				Treatments:  result.Treatments,
				Preventions: result.Preventions,
				DetectedAt:  result.Timestamp,
				IsSynced:    true,
			}
			if err := h.detections.Add(d); err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{
					"success": false,
					"error":   "Prediction failed: " + err.Error(),
				})
			}
			if err := h.users.RecordScan(userID, true); err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{
					"success": false,
					"error":   "Prediction failed: " + err.Error(),
				})
			}
		}
	}

	resp := echo.Map{
		"success":      true,
		"detection_id": detectionID,
		"disease":      result.DiseaseName,
		"confidence":   result.Confidence,
		"severity":     result.Severity,
		"treatment":    result.Treatments,
		"prevention":   result.Preventions,
		"plant_type":   plantType,
		"timestamp":    result.Timestamp,
	}
	if location != "" {
		resp["location"] = location
	}
	return c.JSON(http.StatusOK, resp)
}

// Plants returns the supported-plant catalog keyed by plant type.
func (h *PredictionCtrl) Plants(c echo.Context) error {
	list, err := h.plants.ListAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Failed to load plant catalog: " + err.Error(),
		})
	}

	plants := echo.Map{}
	for i := range list {
		p := &list[i]
		plants[p.Name] = echo.Map{
			"name":            titleCase(p.Name),
			"scientific_name": p.ScientificName,
			"local_name":      p.LocalName,
			"category":        p.Category,
			"diseases":        p.CommonDiseases,
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "plants": plants})
}

func (h *PredictionCtrl) GetDetection(c echo.Context) error {
	d, err := h.detections.FindByID(c.Param("detection_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"success": false,
			"error":   "Detection not found",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "detection": d})
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
