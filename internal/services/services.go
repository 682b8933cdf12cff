package services

import "github.com/sjperalta/mortgagekit-api/internal/calculator"

// Services holds all service instances
type Services struct {
	Mortgage *MortgageService
	Export   *ExportService
}

// NewServices creates all service instances
func NewServices() *Services {
	return &Services{
		Mortgage: NewMortgageService(calculator.For),
		Export:   NewExportService(),
	}
}
