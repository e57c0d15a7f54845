package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"classtrack/internal/attendance"
	"classtrack/internal/auth"
	"classtrack/internal/config"
	"classtrack/internal/httpmiddleware"
	"classtrack/internal/queue"
	"classtrack/internal/store"
	"classtrack/internal/timetable"
	"classtrack/migrations"
)

var submissionsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
	Name: "classtrack_submissions_enqueued_total",
	Help: "Attendance submission batches accepted by the API.",
})

func main() {
	cfg := config.Load()

	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := runHTTP(cfg); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}

func runHTTP(cfg config.App) error {
	db, err := store.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Printf("warning: db not reachable: %v", err)
	}
	defer func() {
		if db != nil {
			_ = db.Close()
		}
	}()

	if cfg.MigrateOnStart && db != nil {
		if err := migrations.Up(db.Client); err != nil {
			log.Printf("warning: migrations failed: %v", err)
		}
	}

	redisClient := store.NewRedis(cfg.RedisAddr)

	var q queue.Queue
	if cfg.QueueBackend == "memory" {
		q = queue.NewInMemory(64)
	} else {
		q = queue.NewRedisQueue(redisClient.Client, cfg.QueueKey)
	}

	lectures := timetable.NewRepository(db.Client)
	resolver := timetable.NewResolver(timetable.DefaultGrid())
	att := attendance.NewService(attendance.NewRepository(db.Client), q)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:          24 * time.Hour,
	}))
	r.Use(securityHeaders())
	r.Use(httpmiddleware.NewSimpleTokenBucket(cfg.RateLimitPerMin, cfg.RateLimitPerMin).GinMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/healthz", func(c *gin.Context) {
		redisHealthy := redisClient.Healthy(c.Request.Context())
		dbHealthy := db != nil
		status := http.StatusOK
		if !redisHealthy || !dbHealthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": "ok", "redis": redisHealthy, "db": dbHealthy})
	})

	r.POST("/v1/auth/token", func(c *gin.Context) {
		var req struct {
			FacultyID string `json:"faculty_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		tokens, err := auth.Issue(req.FacultyID, auth.RoleFaculty, cfg.JWTIssuer, cfg.JWTSigningKey, cfg.AccessTTL, cfg.RefreshTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token issue failed"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"access_token":  tokens.AccessToken,
			"refresh_token": tokens.RefreshToken,
			"expires_at":    tokens.AccessExp.Unix(),
		})
	})

	authGroup := r.Group("/v1", auth.FacultyAuth(cfg.JWTSigningKey, cfg.JWTIssuer))

	authGroup.GET("/timetable/week", func(c *gin.Context) {
		facultyID := c.Query("faculty_id")
		if facultyID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "faculty_id required"})
			return
		}
		list, err := lectures.ListByFaculty(c.Request.Context(), facultyID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"week": resolver.Week(list)})
	})

	authGroup.GET("/timetable/day", func(c *gin.Context) {
		day := c.Query("day")
		if day == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "day required"})
			return
		}
		list, err := lectures.ListByDay(c.Request.Context(), day)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"lectures": list})
	})

	authGroup.GET("/attendance/summary", func(c *gin.Context) {
		studentID := c.Query("student_id")
		if studentID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "student_id required"})
			return
		}
		bySubject := c.Query("by_subject") == "1" || c.Query("by_subject") == "true"
		overall, subjects, err := att.StudentSummary(c.Request.Context(), studentID, bySubject)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		resp := gin.H{"student_id": studentID, "summary": overall}
		if bySubject {
			resp["subjects"] = subjects
		}
		c.JSON(http.StatusOK, resp)
	})

	authGroup.GET("/attendance/status", func(c *gin.Context) {
		studentID := c.Query("student_id")
		if studentID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "student_id required"})
			return
		}
		overall, _, err := att.StudentSummary(c.Request.Context(), studentID, false)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"student_id": studentID,
			"summary":    overall,
			"band":       attendance.BandFor(overall.Percentage),
		})
	})

	authGroup.GET("/attendance/taken", func(c *gin.Context) {
		lectureID := c.Query("lecture_id")
		dateStr := c.Query("date")
		if lectureID == "" || dateStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lecture_id and date required"})
			return
		}
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		taken, err := att.TakenOn(c.Request.Context(), lectureID, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"lecture_id": lectureID, "date": dateStr, "taken": taken})
	})

	authGroup.POST("/attendance", func(c *gin.Context) {
		var req struct {
			Marks []attendance.Submission `json:"marks" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		claimsAny, _ := c.Get("claims")
		claims, _ := claimsAny.(auth.Claims)
		for i := range req.Marks {
			if req.Marks[i].FacultyID == "" {
				req.Marks[i].FacultyID = claims.Subject
			}
		}

		if err := att.Submit(c.Request.Context(), req.Marks); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, attendance.ErrEmptyBatch) || errors.Is(err, attendance.ErrIncompleteMark) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		submissionsEnqueued.Inc()
		c.JSON(http.StatusAccepted, gin.H{"accepted": len(req.Marks)})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced shutdown: %v", err)
	}

	log.Println("Server exited")
	return nil
}

// Security headers middleware
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		if gin.Mode() == gin.ReleaseMode {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
