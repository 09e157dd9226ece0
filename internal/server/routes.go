package server

import (
	"net/http"
	"time"

	"HealthCompanion/internal/auth"
	"HealthCompanion/internal/companion"
	"HealthCompanion/internal/emergency"
	"HealthCompanion/internal/healthscore"
	"HealthCompanion/internal/healthtips"
	"HealthCompanion/internal/insights"
	"HealthCompanion/internal/tracking"
	"HealthCompanion/internal/user"
	"HealthCompanion/internal/utility"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// bodyLimit leaves room for a 10MB lab file plus multipart framing.
const bodyLimit = "12M"

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.Validator = utility.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(LoggerMiddleware)
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:     true,
		LogURI:        true,
		LogStatus:     true,
		LogLatency:    true,
		LogRemoteIP:   true,
		LogError:      true,
		HandleError:   true,
		LogValuesFunc: logRequest,
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     s.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	e.Use(middleware.BodyLimit(bodyLimit))

	e.Static("/uploads", s.cfg.UploadDir)
	e.GET("/health", s.healthHandler)

	// Public emergency card, reached by scanning the QR code
	e.GET("/emergency/:token", emergency.CardPageHandler)

	// Google OAuth (browser redirects)
	if s.cfg.OAuth.GoogleEnabled() {
		e.GET("/auth/:provider", auth.ProviderHandler)
		e.GET("/auth/:provider/callback", auth.CallbackHandler)
	}

	api := e.Group("/api")

	// Traditional Auth Routes
	api.POST("/signup", auth.SignupHandler)
	api.POST("/login", auth.LoginHandler)
	api.POST("/logout", auth.LogoutHandler)
	api.POST("/auth/refresh", auth.RefreshHandler)
	api.POST("/password/forgot", auth.ForgotPasswordHandler)
	api.POST("/password/reset", auth.ResetPasswordHandler)

	// Protected routes
	protected := api.Group("")
	protected.Use(auth.JwtAuthMiddleware)

	// Account & Profile
	protected.GET("/profile", user.GetUserProfileHandler)
	protected.PUT("/profile", user.UpdateUserProfileHandler)
	protected.PUT("/profile/password", user.UpdatePasswordHandler)
	protected.GET("/user/data", user.GetUserDataAllHandler)

	// Live dashboard updates
	protected.GET("/ws", dashboardSocketHandler)

	// Clinical records
	protected.GET("/vitals", tracking.GetVitalsHandler)
	protected.POST("/vitals", tracking.CreateVitalHandler)
	protected.DELETE("/vitals/:id", tracking.DeleteVitalHandler)
	protected.GET("/symptoms", tracking.GetSymptomsHandler)
	protected.POST("/symptoms", tracking.CreateSymptomHandler)
	protected.PATCH("/symptoms/:id", tracking.UpdateSymptomHandler)
	protected.DELETE("/symptoms/:id", tracking.DeleteSymptomHandler)
	protected.GET("/medications", tracking.GetMedicationsHandler)
	protected.POST("/medications", tracking.CreateMedicationHandler)
	protected.PATCH("/medications/:id", tracking.UpdateMedicationHandler)
	protected.DELETE("/medications/:id", tracking.DeleteMedicationHandler)
	protected.GET("/appointments", tracking.GetAppointmentsHandler)
	protected.POST("/appointments", tracking.CreateAppointmentHandler)
	protected.PATCH("/appointments/:id", tracking.UpdateAppointmentHandler)
	protected.DELETE("/appointments/:id", tracking.DeleteAppointmentHandler)

	// Wellness logs
	protected.GET("/mood", tracking.GetMoodEntriesHandler)
	protected.POST("/mood", tracking.CreateMoodEntryHandler)
	protected.DELETE("/mood/:id", tracking.DeleteMoodEntryHandler)
	protected.GET("/sleep", tracking.GetSleepLogsHandler)
	protected.POST("/sleep", tracking.CreateSleepLogHandler)
	protected.DELETE("/sleep/:id", tracking.DeleteSleepLogHandler)
	protected.GET("/nutrition", tracking.GetFoodLogsHandler)
	protected.POST("/nutrition", tracking.CreateFoodLogHandler)
	protected.DELETE("/nutrition/:id", tracking.DeleteFoodLogHandler)
	protected.GET("/exercise", tracking.GetExerciseLogsHandler)
	protected.POST("/exercise", tracking.CreateExerciseLogHandler)
	protected.DELETE("/exercise/:id", tracking.DeleteExerciseLogHandler)
	protected.GET("/pain", tracking.GetPainLogsHandler)
	protected.POST("/pain", tracking.CreatePainLogHandler)
	protected.DELETE("/pain/:id", tracking.DeletePainLogHandler)

	// Lab results
	protected.GET("/labs", tracking.GetLabResultsHandler)
	protected.POST("/labs", tracking.CreateLabResultHandler)
	protected.POST("/labs/upload", tracking.UploadLabFileHandler)
	protected.POST("/labs/extract", tracking.ExtractLabDataHandler)
	protected.DELETE("/labs/:id", tracking.DeleteLabResultHandler)

	// Health score & insights
	protected.GET("/health-score", healthscore.GetLatestScoreHandler)
	protected.POST("/health-score/calculate", healthscore.CalculateScoreHandler)
	protected.GET("/health-score/history", healthscore.GetScoreHistoryHandler)
	protected.GET("/health-score/metrics", healthscore.GetMetricsHandler)
	protected.GET("/insights", insights.GetInsightsHandler)
	protected.POST("/insights/generate", insights.GenerateInsightsHandler)

	// Chat companion
	protected.POST("/chat", companion.ChatHandler)
	protected.GET("/conversations", companion.ListConversationsHandler)
	protected.GET("/conversations/:id", companion.GetConversationHandler)
	protected.DELETE("/conversations/:id", companion.DeleteConversationHandler)

	// Emergency ID
	protected.GET("/emergency/profile", emergency.GetProfileHandler)
	protected.GET("/emergency/contacts", emergency.GetContactsHandler)
	protected.POST("/emergency/contacts", emergency.CreateContactHandler)
	protected.DELETE("/emergency/contacts/:id", emergency.DeleteContactHandler)
	protected.POST("/emergency/token", emergency.RotateTokenHandler)
	protected.GET("/emergency/qr", emergency.GetQRCodeHandler)

	// Health tips
	protected.GET("/health-tips", healthtips.GetHealthTipsHandler)
	protected.GET("/health-tips/daily", healthtips.GetDailyTipHandler)

	return e
}

// healthHandler reports database pool state alongside host statistics.
func (s *Server) healthHandler(c echo.Context) error {
	ctx := c.Request().Context()
	db := s.db.Health()

	status, code := "online", http.StatusOK
	if db["status"] != "up" {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	body := map[string]interface{}{
		"status":   status,
		"database": db,
		"runtime": map[string]interface{}{
			"uptime":     time.Since(s.startedAt).Round(time.Second).String(),
			"start_time": s.startedAt.Format(time.RFC3339),
		},
	}

	if v, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		body["memory"] = map[string]interface{}{
			"total_mb":     v.Total / 1024 / 1024,
			"used_mb":      v.Used / 1024 / 1024,
			"used_percent": v.UsedPercent,
		}
	}
	if pct, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pct) > 0 {
		body["cpu"] = map[string]interface{}{"usage_percent": pct[0]}
	}
	if info, err := host.InfoWithContext(ctx); err == nil {
		body["host"] = map[string]interface{}{
			"os":       info.OS,
			"platform": info.Platform,
			"arch":     info.KernelArch,
			"uptime_s": info.Uptime,
		}
	}

	return c.JSON(code, body)
}

// dashboardSocketHandler keeps a socket open so data-change events can be
// pushed to the user's open tabs.
func dashboardSocketHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	ws, err := utility.Upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		utility.Logger(c).Warn().Err(err).Msg("WebSocket upgrade failed")
		return nil
	}
	defer ws.Close()

	utility.Dashboards.Register(userID, ws)
	defer utility.Dashboards.Unregister(userID, ws)

	// Clients never send anything; reading detects the disconnect.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return nil
		}
	}
}

// LoggerMiddleware attaches a request-scoped zerolog logger to both the echo
// context and the request context.
func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Response().Header().Get(echo.HeaderXRequestID)

		logger := log.With().
			Str("request_id", requestID).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Logger()

		c.Set("logger", &logger)
		c.SetRequest(c.Request().WithContext(logger.WithContext(c.Request().Context())))

		return next(c)
	}
}

func logRequest(c echo.Context, v middleware.RequestLoggerValues) error {
	logger := utility.Logger(c)

	evt := logger.Info()
	switch {
	case v.Status >= http.StatusInternalServerError:
		evt = logger.Error().Err(v.Error)
	case v.Error != nil:
		evt = logger.Warn().Err(v.Error)
	}

	evt.Str("uri", v.URI).
		Int("status", v.Status).
		Str("ip", v.RemoteIP).
		Dur("latency", v.Latency).
		Msg("request")
	return nil
}
