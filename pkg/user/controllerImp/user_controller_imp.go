package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mkulima/entities"
	detectionRepo "mkulima/pkg/detection/repository"
	"mkulima/pkg/user/repository"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 100
)

type UserCtrl struct {
	users      repository.UserRepository
	detections detectionRepo.DetectionRepository
}

func New(users repository.UserRepository, detections detectionRepo.DetectionRepository) *UserCtrl {
	return &UserCtrl{users: users, detections: detections}
}

type createReq struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Region            string   `json:"region"`
	PreferredLanguage string   `json:"preferred_language"`
	FarmSize          float64  `json:"farm_size"`
	MainCrops         []string `json:"main_crops"`
}

// userPayload adds the derived success rate to the stored record.
type userPayload struct {
	*entities.User
	SuccessRate float64 `json:"success_rate"`
}

func payload(u *entities.User) userPayload {
	return userPayload{User: u, SuccessRate: u.SuccessRate()}
}

func (h *UserCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "No data provided",
		})
	}

	// report the first missing required field, in a fixed order
	required := []struct{ name, value string }{
		{"name", req.Name},
		{"email", req.Email},
		{"region", req.Region},
	}
	for _, f := range required {
		if f.value == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false,
				"error":   "Missing required field: " + f.name,
			})
		}
	}

	u := &entities.User{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Region:            req.Region,
		PreferredLanguage: req.PreferredLanguage,
		FarmSize:          req.FarmSize,
		MainCrops:         req.MainCrops,
	}
	if err := h.users.Create(u); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Failed to create user: " + err.Error(),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "user": payload(u)})
}

func (h *UserCtrl) Get(c echo.Context) error {
	u, err := h.users.FindByID(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"success": false,
			"error":   "User not found",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": payload(u)})
}

func (h *UserCtrl) ListDetections(c echo.Context) error {
	userID := c.Param("user_id")
	if _, err := h.users.FindByID(userID); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"success": false,
			"error":   "User not found",
		})
	}

	limit := defaultPageLimit
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if limit < 0 {
		limit = 0
	}
	offset := 0
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	items, total, err := h.detections.ListByUser(userID, limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Failed to fetch detections: " + err.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"detections": items,
		"pagination": echo.Map{
			"total":    total,
			"limit":    limit,
			"offset":   offset,
			"has_more": int64(offset+limit) < total,
		},
	})
}

func (h *UserCtrl) Stats(c echo.Context) error {
	userID := c.Param("user_id")
	u, err := h.users.FindByID(userID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"success": false,
			"error":   "User not found",
		})
	}

	items, err := h.detections.ListAllByUser(userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Failed to fetch detections: " + err.Error(),
		})
	}

	var high, medium, low int
	counts := map[string]int{}
	var order []string // first-encountered order breaks ties
	for _, d := range items {
		switch d.Severity {
		case entities.SeverityHigh:
			high++
		case entities.SeverityMedium:
			medium++
		case entities.SeverityLow:
			low++
		}
		if _, seen := counts[d.DiseaseName]; !seen {
			order = append(order, d.DiseaseName)
		}
		counts[d.DiseaseName]++
	}

	mostCommon := "None"
	best := 0
	for _, name := range order {
		if counts[name] > best {
			best = counts[name]
			mostCommon = name
		}
	}

	var lastDetection any
	if len(items) > 0 {
		lastDetection = items[0].DetectedAt
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"stats": echo.Map{
			"total_detections":      len(items),
			"high_severity_count":   high,
			"medium_severity_count": medium,
			"low_severity_count":    low,
			"most_common_disease":   mostCommon,
			"success_rate":          u.SuccessRate(),
			"last_detection":        lastDetection,
		},
	})
}

// Delete removes a user and all owned detections. Admin only; the route
// table wires the admin middleware in front.
func (h *UserCtrl) Delete(c echo.Context) error {
	userID := c.Param("user_id")
	u, err := h.users.FindByID(userID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"success": false,
			"error":   "User not found",
		})
	}
	if err := h.users.Delete(userID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Failed to delete user: " + err.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"deleted_user": echo.Map{"id": u.ID, "name": u.Name, "email": u.Email},
	})
}
