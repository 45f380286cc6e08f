package api

import (
	"github.com/gin-gonic/gin"

	"github.com/vladimiradmaev/bp-monitor/internal/interfaces"
	"github.com/vladimiradmaev/bp-monitor/internal/ratelimit"
)

type RestfulServer struct {
	Server           *gin.Engine
	Patients         interfaces.PatientServiceInterface
	RateLimiterStore *ratelimit.Store
}

// NewEngine returns a gin engine with recovery and request logging
func NewEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger())
	return engine
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/", rs.Root)
	rs.Server.GET("/healthz", rs.HealthCheck)

	doctor := rs.Server.Group("/doctor", RateLimit(rs.RateLimiterStore))
	{
		doctor.GET("/patients", rs.ListPatients)
		doctor.GET("/patients/:telegram_id/stats", rs.GetPatientStats)
	}
}
