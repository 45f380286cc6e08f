package api

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"

	apperrors "github.com/vladimiradmaev/bp-monitor/internal/errors"
	"github.com/vladimiradmaev/bp-monitor/internal/logger"
	"github.com/vladimiradmaev/bp-monitor/internal/services"
)

type ListPatientsQuery struct {
	Skip  int `zog:"skip"`
	Limit int `zog:"limit"`
}

var listPatientsQuerySchema = z.Struct(z.Shape{
	"skip":  z.Int().Default(0).GTE(0),
	"limit": z.Int().Default(50).GTE(1).LTE(services.MaxSummaryLimit),
})

type PatientStatsQuery struct {
	Limit int `zog:"limit"`
}

var patientStatsQuerySchema = z.Struct(z.Shape{
	"limit": z.Int().Default(100).GTE(1).LTE(services.MaxStatsLimit),
})

func (rs *RestfulServer) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Doctor API працює!"})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) ListPatients(c *gin.Context) {
	var query ListPatientsQuery
	if errs := listPatientsQuerySchema.Parse(zhttp.Request(c.Request), &query); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": invalidParams(errs)})
		return
	}

	summaries, err := rs.Patients.ListSummaries(c.Request.Context(), query.Skip, query.Limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

func (rs *RestfulServer) GetPatientStats(c *gin.Context) {
	telegramID, err := strconv.ParseInt(c.Param("telegram_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "telegram_id має бути цілим числом"})
		return
	}

	var query PatientStatsQuery
	if errs := patientStatsQuerySchema.Parse(zhttp.Request(c.Request), &query); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": invalidParams(errs)})
		return
	}

	stats, err := rs.Patients.GetPatientStats(c.Request.Context(), telegramID, query.Limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func invalidParams[T any](errs map[string]T) string {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		if strings.HasPrefix(field, "$") {
			continue
		}
		fields = append(fields, field)
	}
	sort.Strings(fields)
	if len(fields) == 0 {
		return "Некоректні параметри запиту"
	}
	return "Некоректні параметри запиту: " + strings.Join(fields, ", ")
}

func writeError(c *gin.Context, err error) {
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"detail": "Пацієнта не знайдено"})
	case apperrors.ErrorTypeValidation:
		c.JSON(http.StatusBadRequest, gin.H{"detail": errorMessage(err)})
	default:
		apperrors.NewHandler(logger.GetLogger()).Handle(c.Request.Context(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Внутрішня помилка сервера"})
	}
}

func errorMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
