package handlers

import (
	"net/http"

	"mentcare/application/queries"
	querybus "mentcare/application/queries/bus"
	"mentcare/application/services"
	"mentcare/pkg/common"
	pkgerrors "mentcare/pkg/errors"
	"go.uber.org/zap"
)

// ReportHandler serves the risk census endpoints
type ReportHandler struct {
	queryBus      *querybus.QueryBus
	reportService *services.ReportService
	errorHandler  *pkgerrors.ErrorHandler
	logger        *zap.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(queryBus *querybus.QueryBus, reportService *services.ReportService, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		queryBus:      queryBus,
		reportService: reportService,
		errorHandler:  errorHandler,
		logger:        logger,
	}
}

// GetRiskReport handles GET /api/v1/reports/risk
func (h *ReportHandler) GetRiskReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.RiskReportQuery{})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// ProduceRiskReport handles POST /api/v1/reports/risk, computing the census
// and emitting it through the configured report writer
func (h *ReportHandler) ProduceRiskReport(w http.ResponseWriter, r *http.Request) {
	census, err := h.reportService.ProduceReport(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, census)
}
