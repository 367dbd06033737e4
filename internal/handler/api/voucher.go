package api

import (
	"net/http"

	"voucher-hub/internal/domain/voucher"
	reqdto "voucher-hub/internal/handler/dto/request"
	resdto "voucher-hub/internal/handler/dto/response"
	"voucher-hub/internal/handler/httperr"
	"voucher-hub/internal/infra/mailer"
	"voucher-hub/internal/infra/printer"
	"voucher-hub/internal/pkg/config"
	"voucher-hub/internal/pkg/errs"
	"voucher-hub/internal/usecase/commands"
	"voucher-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	cmds    commands.VoucherCommands
	q       queries.VoucherQueries
	mailer  mailer.Mailer
	catalog *voucher.Catalog
	cfg     config.Config
}

func NewVoucherHandler(cmds commands.VoucherCommands, q queries.VoucherQueries, m mailer.Mailer, catalog *voucher.Catalog, cfg config.Config) *VoucherHandler {
	return &VoucherHandler{cmds: cmds, q: q, mailer: m, catalog: catalog, cfg: cfg}
}

// @Summary List vouchers
// @Description List cached vouchers with optional status/quota/batch filters and sort
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param status query string false "expired | available | in-use"
// @Param quota query string false "multi-use | single-use"
// @Param batch query string false "Batch id or all"
// @Param sort query string false "code | duration | used"
// @Success 200 {object} resdto.VoucherListResponse
// @Router /api/vouchers [get]
func (h *VoucherHandler) List(c *gin.Context) {
	list := h.q.List(queries.VoucherFilters{
		Status: c.Query("status"),
		Quota:  c.Query("quota"),
		Batch:  c.Query("batch"),
		Sort:   c.Query("sort"),
	})
	c.JSON(http.StatusOK, resdto.FromVoucherList(list))
}

// @Summary Create vouchers
// @Description Create one or more vouchers of a preset or custom type
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVoucherRequest true "Create voucher request"
// @Success 201 {object} resdto.CreateVoucherResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/vouchers [post]
func (h *VoucherHandler) Create(c *gin.Context) {
	var req reqdto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Create voucher failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateVoucherResponse{Code: result.Code, Amount: result.Amount})
}

// @Summary Get voucher
// @Description Get one cached voucher and its connected guests
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Success 200 {object} resdto.VoucherDetailResponse
// @Failure 404 {object} map[string]string
// @Router /api/vouchers/{id} [get]
func (h *VoucherHandler) Get(c *gin.Context) {
	detail, err := h.q.Get(c.Param("id"))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Voucher lookup failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromVoucherDetail(detail))
}

// @Summary Revoke voucher
// @Tags vouchers
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Success 204 "No Content"
// @Failure 502 {object} map[string]string
// @Router /api/vouchers/{id} [delete]
func (h *VoucherHandler) Revoke(c *gin.Context) {
	if err := h.cmds.Revoke(c.Request.Context(), c.Param("id")); err != nil {
		httperr.AbortWithUsecaseError(c, err, "Revoke voucher failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Print voucher
// @Description Render one cached voucher as a printable document
// @Tags vouchers
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Failure 501 {object} map[string]string
// @Router /api/vouchers/{id}/pdf [get]
func (h *VoucherHandler) Print(c *gin.Context) {
	if !h.cfg.Printer.Enabled() {
		httperr.AbortWithUsecaseError(c, errs.ErrPrinterDisabled, "Printer not configured")
		return
	}

	detail, err := h.q.Get(c.Param("id"))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Voucher lookup failed")
		return
	}

	if h.cfg.Printer.Type == "escpos" {
		data := printer.VoucherEscpos(detail.Voucher, h.cfg.Unifi.SiteName)
		c.Header("Content-Disposition", "attachment;filename=voucher_"+detail.Voucher.ID+".bin")
		c.Data(http.StatusOK, "application/octet-stream", data)
		return
	}

	data, err := printer.VoucherPDF(detail.Voucher, h.cfg.Unifi.SiteName)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Render failed", nil)
		return
	}
	c.Header("Content-Disposition", "attachment;filename=voucher_"+detail.Voucher.ID+".pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}

// @Summary Email voucher
// @Description Send one cached voucher code to an email address
// @Tags vouchers
// @Accept json
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Param request body reqdto.EmailVoucherRequest true "Email request"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 501 {object} map[string]string
// @Router /api/vouchers/{id}/email [post]
func (h *VoucherHandler) Email(c *gin.Context) {
	if !h.cfg.SMTP.Enabled() {
		httperr.AbortWithUsecaseError(c, errs.ErrMailerDisabled, "Mail transport not configured")
		return
	}

	var req reqdto.EmailVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	detail, err := h.q.Get(c.Param("id"))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Voucher lookup failed")
		return
	}

	if err := h.mailer.SendVoucher(c.Request.Context(), req.Email, detail.Voucher, req.Language); err != nil {
		httperr.AbortWithUsecaseError(c, err, "Send voucher mail failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Voucher types
// @Description The configured voucher preset catalog
// @Tags vouchers
// @Produce json
// @Success 200 {array} voucher.Type
// @Router /api/types [get]
func (h *VoucherHandler) Types(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"types":  h.catalog.Types(),
		"custom": h.cfg.Voucher.CustomTypes,
	})
}
