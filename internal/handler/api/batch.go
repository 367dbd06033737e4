package api

import (
	"net/http"

	resdto "voucher-hub/internal/handler/dto/response"
	"voucher-hub/internal/handler/httperr"
	"voucher-hub/internal/infra/printer"
	"voucher-hub/internal/pkg/config"
	"voucher-hub/internal/pkg/errs"
	"voucher-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BatchHandler struct {
	q   queries.VoucherQueries
	cfg config.Config
}

func NewBatchHandler(q queries.VoucherQueries, cfg config.Config) *BatchHandler {
	return &BatchHandler{q: q, cfg: cfg}
}

// @Summary List batches
// @Description The batch index derived from the cached voucher list
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BatchResponse
// @Router /api/batches [get]
func (h *BatchHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"batches": resdto.FromBatches(h.q.Batches()),
		"updated": h.q.Updated().UnixMilli(),
	})
}

// @Summary Print batch
// @Description Render the vouchers of one batch (or all) as a list PDF, with optional status/quota filters
// @Tags batches
// @Produce application/pdf
// @Security BearerAuth
// @Param batch path string true "Batch id or all"
// @Param status query string false "expired | available | in-use"
// @Param quota query string false "multi-use | single-use"
// @Success 200 {file} binary
// @Failure 501 {object} map[string]string
// @Router /api/batches/{batch}/pdf [get]
func (h *BatchHandler) Print(c *gin.Context) {
	if !h.cfg.Printer.Enabled() {
		httperr.AbortWithUsecaseError(c, errs.ErrPrinterDisabled, "Printer not configured")
		return
	}

	batch := c.Param("batch")
	list := h.q.List(queries.VoucherFilters{
		Status: c.Query("status"),
		Quota:  c.Query("quota"),
		Batch:  batch,
	})

	data, err := printer.VoucherListPDF(list.Vouchers, h.cfg.Unifi.SiteName)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Render failed", nil)
		return
	}
	c.Header("Content-Disposition", "attachment;filename=voucher_"+batch+".pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}
