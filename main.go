// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dandrevielma/visoria-anesthesic-backend/config"
	"github.com/dandrevielma/visoria-anesthesic-backend/endpoint"
	"github.com/dandrevielma/visoria-anesthesic-backend/middleware"
	"github.com/dandrevielma/visoria-anesthesic-backend/model"
	"github.com/dandrevielma/visoria-anesthesic-backend/util"
)

func main() {
	// Load the configuration
	cfg := config.LoadConfig()
	util.SetJWTSecret(os.Getenv("JWTSECRET"))

	db, err := config.ConnectMySQL()
	if err != nil {
		log.Fatalf("Error connecting to MySQL: %v", err)
	}
	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}
	util.SetActivityLoggerDB(db)

	if _, err := config.ConnectRedis(); err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
	}
	if _, _, err := config.ConnectMinIO(); err != nil {
		log.Printf("MinIO unavailable, file uploads keep metadata only: %v", err)
	}
	util.InitEmailSenderFromConfig(cfg)

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DatabaseMiddleware(db))
	router.Use(middleware.RequestLogger())

	// Basic HTTP handler for root path
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})

	registerRoutes(router)

	// Start server on specified port
	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func registerRoutes(router *gin.Engine) {
	// Public routes: reachable without a session, behind the rate limiter.
	// The form link token is the patient's only credential on these paths;
	// a logged-in doctor is still recognized through the optional session.
	public := router.Group("/api")
	public.Use(middleware.RateLimiter(middleware.RateLimitConfig{Limit: 60, Window: 15 * time.Minute}))
	public.Use(middleware.OptionalSession())
	{
		public.POST("/auth/login", endpoint.Login)
		public.DELETE("/auth/logout", endpoint.Logout)

		public.GET("/forms/token/:token", endpoint.ResolveFormToken)
		public.GET("/records", endpoint.ListRecords)

		public.GET("/records/:id/consent", endpoint.GetConsent)
		public.POST("/records/:id/consent", endpoint.AcceptConsent)

		public.GET("/records/:id/patient-form/questions", endpoint.GetPatientFormQuestions)
		public.GET("/records/:id/patient-form", endpoint.GetPatientForm)
		public.POST("/records/:id/patient-form", endpoint.SubmitPatientForm)
		public.PUT("/records/:id/patient-form", endpoint.UpdatePatientForm)

		public.GET("/records/:id/doctor-evaluation/questions", endpoint.GetDoctorEvaluationQuestions)
		public.GET("/records/:id/doctor-evaluation", endpoint.GetDoctorEvaluation)
		public.POST("/records/:id/doctor-evaluation", endpoint.SubmitDoctorEvaluation)

		public.GET("/records/:id/medical-report", endpoint.GetMedicalReport)
		public.GET("/records/:id/recipe", endpoint.GetRecipe)
		public.POST("/records/:id/recipe", endpoint.SaveRecipe)

		public.GET("/records/:id/files", endpoint.ListRecordFiles)
	}

	// Authenticated routes: a valid staff session is required.
	private := router.Group("/api")
	private.Use(middleware.ValidateSessionToken())
	{
		private.POST("/records", endpoint.CreateRecord)
		private.GET("/records/:id", endpoint.GetRecord)
		private.PUT("/records/:id", endpoint.UpdateRecord)
		private.DELETE("/records/:id", endpoint.DeleteRecord)
		private.GET("/records/:id/activity", endpoint.GetRecordActivity)
		private.POST("/records/:id/medical-report", endpoint.SaveMedicalReport)

		private.POST("/records/:id/files", endpoint.UploadRecordFile)
		private.DELETE("/files/:id", endpoint.DeleteFile)

		private.POST("/patients", endpoint.CreatePatient)
		private.GET("/patients", endpoint.ListPatients)
		private.GET("/patients/:id", endpoint.GetPatient)
		private.GET("/patients/identification/:idNumber", endpoint.GetPatientByIdentification)
		private.PUT("/patients/:id", endpoint.UpdatePatient)
		private.DELETE("/patients/:id", endpoint.DeletePatient)

		private.POST("/roles", endpoint.AssignRole)
		private.GET("/roles/user/:userId/check", endpoint.CheckUserRole)
		private.GET("/roles/:userId", endpoint.GetUserRoles)
		private.DELETE("/roles/:id", endpoint.RemoveRole)

		admin := private.Group("/admin")
		admin.Use(middleware.RequireRole(model.RoleAdmin))
		{
			admin.GET("/users", endpoint.ListUsers)
			admin.POST("/users", endpoint.CreateUser)
		}
	}
}
