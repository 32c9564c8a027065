package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/poultrymitra/mitra_backend/internal/core/ports/services"
	"github.com/poultrymitra/mitra_backend/internal/dto"
	"github.com/poultrymitra/mitra_backend/internal/middleware"
)

// batchHandler handles HTTP requests related to poultry batches.
type batchHandler struct {
	batchService portssvc.BatchSvcFacade
	now          func() time.Time
}

func newBatchHandler(bs portssvc.BatchSvcFacade) *batchHandler {
	return &batchHandler{
		batchService: bs,
		now:          time.Now,
	}
}

// RegisterBatchRoutes registers batch routes on rg.
func RegisterBatchRoutes(rg *gin.RouterGroup, batchService portssvc.BatchSvcFacade) {
	h := newBatchHandler(batchService)

	batches := rg.Group("/batches")
	{
		batches.POST("", h.createBatch)
		batches.GET("/:batch_id", h.getBatch)
		batches.POST("/:batch_id/updates", h.recordBatchUpdate)
	}
	rg.GET("/farmers/:farmer_id/batches", h.listFarmerBatches)
}

// createBatch godoc
// @Summary Start a new batch
// @Description Creates a poultry batch for a farmer, optionally placed by a dealer
// @Tags batches
// @Accept json
// @Produce json
// @Param batch body dto.CreateBatchRequest true "Batch details"
// @Success 201 {object} dto.BatchResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to create batch"
// @Security BearerAuth
// @Router /batches [post]
func (h *batchHandler) createBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create batch", slog.String("batch_name", req.Name), slog.Int("initial_count", req.InitialCount))

	batch, err := h.batchService.CreateBatch(c.Request.Context(), req, principal)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create batch")
		return
	}

	logger.Info("Batch created successfully", slog.String("batch_id", batch.BatchID))
	c.JSON(http.StatusCreated, dto.ToBatchResponse(batch, h.now()))
}

// getBatch godoc
// @Summary Get a batch
// @Description Retrieves a batch with its current performance metrics
// @Tags batches
// @Produce json
// @Param batch_id path string true "Batch ID"
// @Success 200 {object} dto.BatchResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Batch not found"
// @Failure 500 {object} map[string]string "Failed to retrieve batch"
// @Security BearerAuth
// @Router /batches/{batch_id} [get]
func (h *batchHandler) getBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	batchID := c.Param("batch_id")

	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("batch_id", batchID))

	batch, err := h.batchService.GetBatch(c.Request.Context(), batchID, principal)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve batch")
		return
	}

	c.JSON(http.StatusOK, dto.ToBatchResponse(batch, h.now()))
}

// listFarmerBatches godoc
// @Summary List a farmer's batches
// @Description Lists batches newest first. Dealers see only batches they placed.
// @Tags batches
// @Produce json
// @Param farmer_id path string true "Farmer ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.BatchResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list batches"
// @Security BearerAuth
// @Router /farmers/{farmer_id}/batches [get]
func (h *batchHandler) listFarmerBatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	farmerID := c.Param("farmer_id")

	var params dto.ListBatchesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListFarmerBatches", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("farmer_id", farmerID))

	batches, err := h.batchService.ListFarmerBatches(c.Request.Context(), farmerID, params, principal)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list batches")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBatchResponse(batches, h.now()))
}

// recordBatchUpdate godoc
// @Summary Record a batch update
// @Description Adds deaths and feed to the batch totals and replaces the average weight when given
// @Tags batches
// @Accept json
// @Produce json
// @Param batch_id path string true "Batch ID"
// @Param update body dto.BatchUpdateRequest true "Field report"
// @Success 200 {object} dto.BatchResponse
// @Failure 400 {object} map[string]string "Invalid input or update rejected"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Batch not found"
// @Failure 500 {object} map[string]string "Failed to update batch"
// @Security BearerAuth
// @Router /batches/{batch_id}/updates [post]
func (h *batchHandler) recordBatchUpdate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	batchID := c.Param("batch_id")

	var req dto.BatchUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordBatchUpdate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("batch_id", batchID))
	logger.Info("Received batch update", slog.Int("deaths", req.Deaths), slog.String("feed_kg", req.FeedKg.String()))

	batch, err := h.batchService.RecordBatchUpdate(c.Request.Context(), batchID, req, principal)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update batch")
		return
	}

	logger.Info("Batch updated", slog.Int("mortality", batch.Mortality), slog.String("status", string(batch.Status)))
	c.JSON(http.StatusOK, dto.ToBatchResponse(batch, h.now()))
}
