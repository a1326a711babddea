package main

import (
	"healthscope/internal/config"
	logger "healthscope/internal/logging"
	"healthscope/internal/models"
	"healthscope/internal/repository"
	"healthscope/internal/router"
	"healthscope/internal/services"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Local overrides for external endpoints etc.; absence is fine.
	godotenv.Load()

	// Configuration first: the logger's directory and rotation settings
	// come from it.
	if err := config.Init("."); err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.Init(".", config.Conf.Logging)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Hot reload hooks in once the logger exists.
	config.Watch(log)
	log.Info("Configuration loaded successfully")

	// Load the questionnaire and the static catalogs at startup
	questionnaire, err := models.LoadQuestionnaire("config/questionnaire.yaml")
	if err != nil {
		log.Fatal("Failed to load questionnaire", zap.Error(err))
	}
	catalog, err := models.LoadCatalog("config/catalog.yaml")
	if err != nil {
		log.Fatal("Failed to load catalog", zap.Error(err))
	}

	// In-memory stores; nothing survives a restart.
	users := repository.NewUserStore()
	assessments := repository.NewAssessmentStore()
	appointments := repository.NewAppointmentStore()
	readings := repository.NewTrackerStore()

	// Outbound collaborators and the assessment orchestrator.
	predict := services.NewPredictClient(config.Conf.External, log)
	email := services.NewEmailClient(config.Conf.External, log)
	assessmentService := services.NewAssessmentService(predict, email, config.Conf.External.Timeout, log)

	r := router.Setup(router.Deps{
		Log:           log,
		Questionnaire: questionnaire,
		Catalog:       catalog,
		Users:         users,
		Assessments:   assessments,
		Appointments:  appointments,
		Readings:      readings,
		Assessment:    assessmentService,
	})

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
