package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/mortgagekit-api/internal/models"
	"github.com/sjperalta/mortgagekit-api/internal/services"
)

type MortgageHandler struct {
	mortgageService *services.MortgageService
	exportService   *services.ExportService
	maxBodyBytes    int64
}

func NewMortgageHandler(mortgageService *services.MortgageService, exportService *services.ExportService, maxBodyBytes int64) *MortgageHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &MortgageHandler{
		mortgageService: mortgageService,
		exportService:   exportService,
		maxBodyBytes:    maxBodyBytes,
	}
}

// CompareResponse wraps the summaries of every repayment type
type CompareResponse struct {
	Summaries []*models.MortgageSummary `json:"summaries"`
}

// @Summary Calculate Schedule
// @Description Calculate the full amortization schedule of a loan
// @Tags Mortgage
// @Accept json
// @Produce json
// @Param request body models.LoanInput true "Loan"
// @Success 200 {object} models.MortgageSchedule
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} MessageErrorResponse
// @Failure 500 {object} MessageErrorResponse
// @Router /calculate [post]
func (h *MortgageHandler) Calculate(c *gin.Context) {
	in, err := BindLoanInput(c, h.maxBodyBytes)
	if err != nil {
		respondError(c, err)
		return
	}

	schedule, err := h.mortgageService.Calculate(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// @Summary Calculate Summary
// @Description Calculate the headline figures of a loan
// @Tags Mortgage
// @Accept json
// @Produce json
// @Param request body models.LoanInput true "Loan"
// @Success 200 {object} models.MortgageSummary
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} MessageErrorResponse
// @Failure 500 {object} MessageErrorResponse
// @Router /calculate/summary [post]
func (h *MortgageHandler) Summary(c *gin.Context) {
	in, err := BindLoanInput(c, h.maxBodyBytes)
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.mortgageService.Summarize(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// @Summary Compare Repayment Types
// @Description Summarize the same loan under every repayment type
// @Tags Mortgage
// @Accept json
// @Produce json
// @Param request body models.LoanInput true "Loan"
// @Success 200 {object} CompareResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} MessageErrorResponse
// @Router /calculate/compare [post]
func (h *MortgageHandler) Compare(c *gin.Context) {
	in, err := BindLoanInput(c, h.maxBodyBytes)
	if err != nil {
		respondError(c, err)
		return
	}

	summaries, err := h.mortgageService.Compare(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CompareResponse{Summaries: summaries})
}

// @Summary Export Schedule
// @Description Download the amortization schedule as CSV, XLSX or PDF
// @Tags Mortgage
// @Accept json
// @Produce octet-stream
// @Param format query string false "csv, xlsx or pdf" default(csv)
// @Param request body models.LoanInput true "Loan"
// @Success 200 {file} file
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} MessageErrorResponse
// @Router /calculate/export [post]
func (h *MortgageHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", services.FormatCSV)

	in, err := BindLoanInput(c, h.maxBodyBytes)
	if err != nil {
		respondError(c, err)
		return
	}

	schedule, err := h.mortgageService.Calculate(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	file, err := h.exportService.Export(c.Request.Context(), format, in, schedule)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

// @Summary List Repayment Types
// @Description Get the supported repayment types
// @Tags Mortgage
// @Produce json
// @Success 200 {array} models.RepaymentTypeInfo
// @Router /repayment-types [get]
func (h *MortgageHandler) RepaymentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.mortgageService.RepaymentTypes())
}
