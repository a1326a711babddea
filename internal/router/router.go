package router

import (
	"net/http"
	"time"

	"healthscope/internal/config"
	"healthscope/internal/handlers"
	"healthscope/internal/models"
	"healthscope/internal/repository"
	"healthscope/internal/services"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// Deps bundles everything the routes need.
type Deps struct {
	Log           *zap.Logger
	Questionnaire *models.Questionnaire
	Catalog       *models.Catalog
	Users         *repository.UserStore
	Assessments   *repository.AssessmentStore
	Appointments  *repository.AppointmentStore
	Readings      *repository.TrackerStore
	Assessment    *services.AssessmentService
}

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.String(http.StatusTooManyRequests, "Too many requests. Try again later.")
}

func Setup(d Deps) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(d.Log))

	store := cookie.NewStore([]byte(config.Conf.Server.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	})
	router.Use(sessions.Sessions("healthscope_session", store))

	// --- Now that sessions are initialized, other middleware can use them ---
	router.Use(CSRFProtection())
	router.Use(UserLoaderMiddleware(d.Log, d.Users))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			c.Abort()
			return
		}
	})

	// Handlers and routes
	authHandler := handlers.NewAuthHandler(d.Log, d.Users, d.Assessments, d.Appointments, d.Readings)
	assessmentHandler := handlers.NewAssessmentHandler(d.Log, d.Questionnaire, d.Users, d.Assessments, d.Assessment)
	resultsHandler := handlers.NewResultsHandler(d.Log)
	userHandler := handlers.NewUserHandler(d.Log, d.Users)
	appointmentHandler := handlers.NewAppointmentHandler(d.Log, d.Catalog, d.Appointments)
	resourcesHandler := handlers.NewResourcesHandler(d.Log, d.Catalog)
	trackerHandler := handlers.NewTrackerHandler(d.Log, d.Readings)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: rateErrorHandler,
		KeyFunc:      keyFunc,
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/register", limiter, authHandler.Register)
	router.POST("/login", limiter, authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	authorized := router.Group("/")
	authorized.Use(AuthRequired())
	{
		assessmentRoutes := authorized.Group("/assessment")
		{
			assessmentRoutes.GET("", assessmentHandler.Start)
			assessmentRoutes.POST("/next", assessmentHandler.Next)
			assessmentRoutes.POST("/prev", assessmentHandler.Previous)
			assessmentRoutes.GET("/results", resultsHandler.Show)
		}

		profileRoutes := authorized.Group("/profile")
		{
			profileRoutes.GET("", userHandler.Show)
			profileRoutes.POST("/update-info", userHandler.UpdateInfo)
			profileRoutes.POST("/update-password", userHandler.UpdatePassword)
			profileRoutes.POST("/notifications", userHandler.UpdateNotificationSettings)
			profileRoutes.POST("/delete", userHandler.DeleteAccount)
		}

		appointmentRoutes := authorized.Group("/appointments")
		{
			appointmentRoutes.GET("/doctors", appointmentHandler.Doctors)
			appointmentRoutes.GET("", appointmentHandler.List)
			appointmentRoutes.POST("", appointmentHandler.Book)
		}

		authorized.GET("/resources", resourcesHandler.List)

		trackerRoutes := authorized.Group("/tracker")
		{
			trackerRoutes.POST("", trackerHandler.Save)
			trackerRoutes.GET("", trackerHandler.History)
			trackerRoutes.GET("/summary", trackerHandler.Summary)
		}
	}

	return router
}
