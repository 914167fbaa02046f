package report

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medcoop/clinic-api/internal/handler"
	"github.com/medcoop/clinic-api/internal/model"
	"github.com/medcoop/clinic-api/internal/service/report"
)

type Handler struct {
	service report.Service
}

func NewHandler(service report.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/visits/count-by-date", h.CountVisitsByDate)
	r.POST("/patients/count-by-diagnosis", h.CountVisitsByDiagnosis)
	r.GET("/medicines/:id/side-effects", h.MedicineSideEffects)
	r.GET("/statistics", h.Statistics)
	r.GET("/popular-diagnoses", h.PopularDiagnoses)
	r.GET("/popular-medicines", h.PopularMedicines)
	r.GET("/search-patients", h.SearchPatients)
	r.GET("/patient/:id/history", h.PatientHistory)
	r.GET("/doctor/:id/schedule", h.DoctorSchedule)
	r.GET("/visits/export", h.ExportVisits)
}

type countByDateRequest struct {
	Date string `json:"date" binding:"required"`
}

func (h *Handler) CountVisitsByDate(c *gin.Context) {
	var req countByDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindingErrorMessage(err)))
		return
	}

	date, err := model.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("date must be a valid YYYY-MM-DD date"))
		return
	}

	result, err := h.service.CountVisitsByDate(c.Request.Context(), date)
	if err != nil {
		handler.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

type countByDiagnosisRequest struct {
	Diagnosis string `json:"diagnosis" binding:"required"`
}

func (h *Handler) CountVisitsByDiagnosis(c *gin.Context) {
	var req countByDiagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindingErrorMessage(err)))
		return
	}

	count, err := h.service.CountVisitsByDiagnosis(c.Request.Context(), req.Diagnosis)
	if err != nil {
		handler.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"diagnosis": req.Diagnosis,
		"count":     count,
	}))
}

func (h *Handler) MedicineSideEffects(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid medicine id"))
		return
	}

	effects, err := h.service.MedicineSideEffects(c.Request.Context(), id)
	if err != nil {
		handler.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(effects))
}

func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.service.OverallStatistics(c.Request.Context())
	if err != nil {
		handler.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(stats))
}

func (h *Handler) PopularDiagnoses(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	ranking, err := h.service.PopularDiagnoses(c.Request.Context(), limit)
	if err != nil {
		handler.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(ranking))
}

func (h *Handler) PopularMedicines(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	ranking, err := h.service.PopularMedicines(c.Request.Context(), limit)
	if err != nil {
		handler.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(ranking))
}

func (h *Handler) SearchPatients(c *gin.Context) {
	patients, err := h.service.SearchPatients(c.Request.Context(), c.Query("q"))
	if err != nil {
		handler.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(patients))
}

func (h *Handler) PatientHistory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient id"))
		return
	}

	history, err := h.service.PatientHistory(c.Request.Context(), id)
	if err != nil {
		handler.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(history))
}

// dateRange parses the inclusive start_date / end_date query params.
func dateRange(c *gin.Context) (model.Date, model.Date, bool) {
	start, err := model.ParseDate(c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("start_date must be a valid YYYY-MM-DD date"))
		return model.Date{}, model.Date{}, false
	}
	end, err := model.ParseDate(c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("end_date must be a valid YYYY-MM-DD date"))
		return model.Date{}, model.Date{}, false
	}
	return start, end, true
}

func (h *Handler) DoctorSchedule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor id"))
		return
	}

	start, end, ok := dateRange(c)
	if !ok {
		return
	}

	schedule, err := h.service.DoctorSchedule(c.Request.Context(), id, start, end)
	if err != nil {
		handler.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(schedule))
}

func (h *Handler) ExportVisits(c *gin.Context) {
	start, end, ok := dateRange(c)
	if !ok {
		return
	}

	csvData, err := h.service.ExportVisitsToCSV(c.Request.Context(), start, end)
	if err != nil {
		handler.RespondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="visits.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvData))
}
