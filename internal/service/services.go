package service

import (
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/config"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/logger"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/store"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	PatientService PatientService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		SessionService: NewSessionService(storages.SessionStore, cfg.App, logger),
		PatientService: NewPatientService(storages.PatientRepository, logger),
	}
}
