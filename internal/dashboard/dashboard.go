package dashboard

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vladimiradmaev/bp-monitor/internal/domain"
	apperrors "github.com/vladimiradmaev/bp-monitor/internal/errors"
	"github.com/vladimiradmaev/bp-monitor/internal/interfaces"
	"github.com/vladimiradmaev/bp-monitor/internal/logger"
	"github.com/vladimiradmaev/bp-monitor/internal/ratelimit"
	"github.com/vladimiradmaev/bp-monitor/internal/session"
	"github.com/vladimiradmaev/bp-monitor/internal/utils"
)

//go:embed templates/*.html
var templateFiles embed.FS

const (
	CookieName   = "bp_session"
	pageTemplate = "dashboard.html"

	patientsPageSize = 50
	historySize      = 100
)

// Dashboard is the doctor's web view over patients and their readings
type Dashboard struct {
	Patients     interfaces.PatientServiceInterface
	Sessions     session.Store
	Credentials  CredentialChecker
	LoginLimiter *ratelimit.Store
	Location     *time.Location
	SecureCookie bool
}

type patientRow struct {
	TelegramID int64
	FullName   string
	LastSys    string
	LastDia    string
	Critical   bool
	Selected   bool
}

type historyRow struct {
	TakenAt  string
	Sys      int
	Dia      int
	Pulse    int
	Critical bool
}

type pageData struct {
	LoggedIn bool
	Error    string
	Info     string
	Patients []patientRow
	Selected *domain.PatientStats
	History  []historyRow
}

// Register installs the page template and the dashboard routes on engine
func (d *Dashboard) Register(engine *gin.Engine) {
	tmpl := template.Must(template.New("").ParseFS(templateFiles, "templates/*.html"))
	engine.SetHTMLTemplate(tmpl)

	group := engine.Group("/dashboard")
	{
		group.GET("", d.Show)
		group.POST("/login", d.Login)
		group.POST("/logout", d.Logout)
	}
}

func (d *Dashboard) currentSession(c *gin.Context) *session.Session {
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return nil
	}

	s, err := d.Sessions.Get(c.Request.Context(), token)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			logger.Warn("Failed to load dashboard session", "error", err)
		}
		return nil
	}
	return s
}

// Show renders the login form or, for a logged in session, the patient tables
func (d *Dashboard) Show(c *gin.Context) {
	s := d.currentSession(c)
	if s == nil || !s.LoggedIn {
		c.HTML(http.StatusOK, pageTemplate, pageData{})
		return
	}

	status, data := d.load(c.Request.Context(), c.Query("patient"))
	c.HTML(status, pageTemplate, data)
}

func (d *Dashboard) load(ctx context.Context, patientParam string) (int, pageData) {
	data := pageData{LoggedIn: true}

	summaries, err := d.Patients.ListSummaries(ctx, 0, patientsPageSize)
	if err != nil {
		apperrors.NewHandler(logger.GetLogger()).Handle(ctx, err)
		data.Error = "Не вдалося завантажити список пацієнтів."
		return http.StatusInternalServerError, data
	}
	if len(summaries) == 0 {
		data.Info = "У вашій базі поки немає пацієнтів. Зареєструйтесь через Telegram-бота!"
		return http.StatusOK, data
	}

	selected := summaries[0].TelegramID
	if id, err := strconv.ParseInt(patientParam, 10, 64); err == nil {
		selected = id
	}

	for _, s := range summaries {
		data.Patients = append(data.Patients, patientRow{
			TelegramID: s.TelegramID,
			FullName:   s.FullName,
			LastSys:    optional(s.LastSys),
			LastDia:    optional(s.LastDia),
			Critical:   s.IsCritical,
			Selected:   s.TelegramID == selected,
		})
	}

	stats, err := d.Patients.GetPatientStats(ctx, selected, historySize)
	if err != nil {
		if apperrors.TypeOf(err) == apperrors.ErrorTypeNotFound {
			data.Info = "Пацієнта не знайдено."
			return http.StatusOK, data
		}
		apperrors.NewHandler(logger.GetLogger()).Handle(ctx, err)
		data.Error = "Не вдалося завантажити історію замірів."
		return http.StatusInternalServerError, data
	}

	data.Selected = stats
	for _, m := range stats.Measurements {
		data.History = append(data.History, historyRow{
			TakenAt:  utils.FormatReadingTime(m.CreatedAt, d.location()),
			Sys:      m.Sys,
			Dia:      m.Dia,
			Pulse:    m.Pulse,
			Critical: m.IsCritical,
		})
	}
	if len(data.History) == 0 {
		data.Info = "У цього пацієнта ще немає збережених замірів."
	}

	return http.StatusOK, data
}

// Login checks the submitted password and starts a new session on success
func (d *Dashboard) Login(c *gin.Context) {
	if !d.LoginLimiter.Allow(c.ClientIP()) {
		apperrors.NewHandler(logger.GetLogger()).
			Handle(c.Request.Context(), apperrors.NewRateLimitError(c.ClientIP(), c.Request.URL.Path))
		c.HTML(http.StatusTooManyRequests, pageTemplate, pageData{Error: "Забагато спроб входу. Спробуйте пізніше."})
		return
	}

	if !d.Credentials.Check(c.PostForm("password")) {
		logger.Info("Dashboard login failed", "client_ip", c.ClientIP())
		c.HTML(http.StatusUnauthorized, pageTemplate, pageData{Error: "❌ Невірний пароль! Доступ заборонено."})
		return
	}

	if old := d.currentSession(c); old != nil {
		_ = d.Sessions.Delete(c.Request.Context(), old.Token)
	}

	s := session.New()
	s.LoggedIn = true
	if err := d.Sessions.Save(c.Request.Context(), s); err != nil {
		logger.Error("Failed to save dashboard session", "error", err)
		c.HTML(http.StatusInternalServerError, pageTemplate, pageData{Error: "Не вдалося створити сесію. Спробуйте ще раз."})
		return
	}

	d.setCookie(c, s.Token, int(session.DefaultTTL.Seconds()))
	logger.Info("Dashboard login succeeded", "client_ip", c.ClientIP())
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout ends the current session
func (d *Dashboard) Logout(c *gin.Context) {
	if s := d.currentSession(c); s != nil {
		if err := d.Sessions.Delete(c.Request.Context(), s.Token); err != nil {
			logger.Warn("Failed to delete dashboard session", "error", err)
		}
	}

	d.setCookie(c, "", -1)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (d *Dashboard) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, maxAge, "/dashboard", "", d.SecureCookie, true)
}

func (d *Dashboard) location() *time.Location {
	if d.Location == nil {
		return time.UTC
	}
	return d.Location
}

func optional(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
