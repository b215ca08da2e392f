package usecase

import (
	"github.com/tyrehub/tyrehub/internal/pkg/logger"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
	"github.com/tyrehub/tyrehub/services/emergency"
)

// EmergencyUC implements the emergency help request usecase interface
type EmergencyUC struct {
	requestRepo emergency.RequestRepo
	shops       emergency.ShopDirectory
	notifier    emergency.NotifierGW
	cfg         *models.Config
	log         *logger.AppLogger
}

// NewEmergencyUC creates a new emergency usecase instance
func NewEmergencyUC(
	requestRepo emergency.RequestRepo,
	shops emergency.ShopDirectory,
	notifier emergency.NotifierGW,
	cfg *models.Config,
	log *logger.AppLogger,
) *EmergencyUC {
	return &EmergencyUC{
		requestRepo: requestRepo,
		shops:       shops,
		notifier:    notifier,
		cfg:         cfg,
		log:         log,
	}
}
