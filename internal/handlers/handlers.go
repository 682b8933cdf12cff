package handlers

import (
	"github.com/sjperalta/mortgagekit-api/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health   *HealthHandler
	Mortgage *MortgageHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services, version string, maxBodyBytes int64) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(version),
		Mortgage: NewMortgageHandler(svcs.Mortgage, svcs.Export, maxBodyBytes),
	}
}
