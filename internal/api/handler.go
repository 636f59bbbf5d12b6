package api

import (
	"github.com/terraincognita07/pmsify/internal/db"
	"github.com/terraincognita07/pmsify/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	tracker *services.Tracker
	logger  *zap.Logger
}

func NewHandler(database *gorm.DB, clock services.Clock, localizer services.Localizer, logger *zap.Logger) *Handler {
	repositories := db.NewRepositories(database)
	return NewHandlerWithTracker(services.NewTracker(repositories.TrackerRepositories(), clock, localizer), logger)
}

func NewHandlerWithTracker(tracker *services.Tracker, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		tracker: tracker,
		logger:  logger.Named("api"),
	}
}
