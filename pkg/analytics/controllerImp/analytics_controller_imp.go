package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"mkulima/pkg/analytics/service"
)

type AnalyticsCtrl struct{ s service.AnalyticsService }

func New(s service.AnalyticsService) *AnalyticsCtrl { return &AnalyticsCtrl{s: s} }

func (h *AnalyticsCtrl) Overview(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"overview": h.s.Overview(),
	})
}

func (h *AnalyticsCtrl) DiseaseTrends(c echo.Context) error {
	days := 30
	if v := c.QueryParam("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false,
				"error":   "days must be an integer",
			})
		}
		days = n
	}
	trends, period := h.s.DiseaseTrends(days)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"trends":  trends,
		"period":  period,
	})
}

func (h *AnalyticsCtrl) RegionalInsights(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success":           true,
		"regional_insights": h.s.RegionalInsights(),
	})
}

// Platform serves live aggregates from the detection store, unlike the
// illustrative Overview figures.
func (h *AnalyticsCtrl) Platform(c echo.Context) error {
	p, err := h.s.Platform()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Failed to compute analytics: " + err.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "platform": p})
}

// Export writes the live platform aggregates as an xlsx workbook.
func (h *AnalyticsCtrl) Export(c echo.Context) error {
	p, err := h.s.Platform()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Failed to compute analytics: " + err.Error(),
		})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Overview"
	f.SetSheetName("Sheet1", sheet)
	f.SetCellValue(sheet, "A1", "Metric")
	f.SetCellValue(sheet, "B1", "Value")
	f.SetCellValue(sheet, "A2", "Total users")
	f.SetCellValue(sheet, "B2", p.TotalUsers)
	f.SetCellValue(sheet, "A3", "Total detections")
	f.SetCellValue(sheet, "B3", p.TotalDetections)
	f.SetCellValue(sheet, "A4", "Active today")
	f.SetCellValue(sheet, "B4", p.ActiveToday)

	diseases := "Common Diseases"
	if _, err := f.NewSheet(diseases); err == nil {
		f.SetCellValue(diseases, "A1", "Disease")
		f.SetCellValue(diseases, "B1", "Detections")
		for i, d := range p.CommonDiseases {
			f.SetCellValue(diseases, fmt.Sprintf("A%d", i+2), d.Disease)
			f.SetCellValue(diseases, fmt.Sprintf("B%d", i+2), d.Count)
		}
	}

	regions := "Regions"
	if _, err := f.NewSheet(regions); err == nil {
		f.SetCellValue(regions, "A1", "Region")
		f.SetCellValue(regions, "B1", "Detections")
		row := 2
		for region, count := range p.RegionalDistribution {
			f.SetCellValue(regions, fmt.Sprintf("A%d", row), region)
			f.SetCellValue(regions, fmt.Sprintf("B%d", row), count)
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Failed to build workbook: " + err.Error(),
		})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="mkulima_analytics.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
