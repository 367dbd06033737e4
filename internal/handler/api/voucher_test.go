//go:build unit

package api_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"voucher-hub/internal/domain/voucher"
	"voucher-hub/internal/handler/api"
	resdto "voucher-hub/internal/handler/dto/response"
	"voucher-hub/internal/infra"
	"voucher-hub/internal/pkg/config"
	"voucher-hub/internal/pkg/errs"
	"voucher-hub/internal/usecase/commands"
	"voucher-hub/internal/usecase/queries"
	"voucher-hub/tests/common/httptest"
	commandsmock "voucher-hub/tests/mock/commands"
	mailermock "voucher-hub/tests/mock/mailer"
	queriesmock "voucher-hub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VoucherHandlerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockVoucherCommands
	mockQueries  *queriesmock.MockVoucherQueries
	mockMailer   *mailermock.MockMailer
	catalog      *voucher.Catalog
}

func (s *VoucherHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVoucherCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockVoucherQueries(s.mockCtrl)
	s.mockMailer = mailermock.NewMockMailer(s.mockCtrl)

	catalog, err := voucher.ParseTypes("480,1;1440,0")
	s.Require().NoError(err)
	s.catalog = catalog
}

func (s *VoucherHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVoucherHandlerSuite(t *testing.T) {
	suite.Run(t, new(VoucherHandlerTestSuite))
}

func (s *VoucherHandlerTestSuite) newRouter(cfg config.Config) *gin.Engine {
	h := api.NewVoucherHandler(s.mockCommands, s.mockQueries, s.mockMailer, s.catalog, cfg)
	r := gin.New()
	r.GET("/api/vouchers", h.List)
	r.POST("/api/vouchers", h.Create)
	r.GET("/api/vouchers/:id", h.Get)
	r.DELETE("/api/vouchers/:id", h.Revoke)
	r.GET("/api/vouchers/:id/pdf", h.Print)
	r.POST("/api/vouchers/:id/email", h.Email)
	r.GET("/api/types", h.Types)
	return r
}

func (s *VoucherHandlerTestSuite) TestList() {
	router := s.newRouter(config.NewTestConfig())

	s.Run("success: query params map onto filters", func() {
		s.mockQueries.EXPECT().
			List(queries.VoucherFilters{Status: "available", Quota: "single-use", Batch: "note_staff", Sort: "code"}).
			Return(queries.VoucherList{
				Vouchers: []voucher.Voucher{{ID: "v1", Code: "0123456789", Duration: 480, Note: "staff"}},
				Batches:  []voucher.Batch{{ID: "note_staff", Name: "staff"}},
				Updated:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet,
			"/api/vouchers?status=available&quota=single-use&batch=note_staff&sort=code", nil, "")

		var response resdto.VoucherListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Vouchers, 1)
		s.Equal("01234-56789", response.Vouchers[0].Code)
		s.Equal("note_staff", response.Vouchers[0].Batch)
		s.Require().Len(response.Batches, 1)
		s.NotZero(response.Updated)
	})
}

func (s *VoucherHandlerTestSuite) TestCreate() {
	router := s.newRouter(config.NewTestConfig())
	url := "/api/vouchers"

	s.Run("success: 201 with formatted code for a single voucher", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), commands.CreateVoucherRequest{Type: "480,1", Amount: 1, Note: "staff"}).
			Return(&commands.CreateVoucherResult{Code: "01234-56789", Amount: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodPost, url,
			map[string]any{"type": "480,1", "note": "staff"}, "")

		var response resdto.CreateVoucherResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("01234-56789", response.Code)
		s.Equal(1, response.Amount)
	})

	s.Run("error: 400 on missing type", func() {
		rec := httptest.PerformRequest(s.T(), router, http.MethodPost, url,
			map[string]any{"amount": 5}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on out-of-range amount", func() {
		rec := httptest.PerformRequest(s.T(), router, http.MethodPost, url,
			map[string]any{"type": "480,1", "amount": 501}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on unknown type", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrUnknownType).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodPost, url,
			map[string]any{"type": "60,0"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown voucher type")
	})

	s.Run("error: 502 when the controller is unreachable", func() {
		log := slog.New(slog.NewTextHandler(io.Discard, nil))
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapControllerErr(log, infra.KindRemoteUnavailable, "controller request failed", nil)).
			Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodPost, url,
			map[string]any{"type": "480,1"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Create voucher failed")
	})
}

func (s *VoucherHandlerTestSuite) TestGet() {
	router := s.newRouter(config.NewTestConfig())

	s.Run("success: voucher with guests", func() {
		s.mockQueries.EXPECT().Get("v1").Return(&queries.VoucherDetail{
			Voucher: voucher.Voucher{ID: "v1", Code: "0123456789"},
			Guests:  []voucher.Guest{{ID: "g1", VoucherID: "v1", RxBytes: 1024}},
			Updated: time.Now(),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/api/vouchers/v1", nil, "")

		var response resdto.VoucherDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("01234-56789", response.Voucher.Code)
		s.Require().Len(response.Guests, 1)
	})

	s.Run("error: 404 for unknown voucher", func() {
		s.mockQueries.EXPECT().Get("missing").Return(nil, errs.ErrVoucherNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/api/vouchers/missing", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Voucher not found")
	})
}

func (s *VoucherHandlerTestSuite) TestRevoke() {
	router := s.newRouter(config.NewTestConfig())

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Revoke(gomock.Any(), "v1").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodDelete, "/api/vouchers/v1", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 502 when the controller rejects", func() {
		log := slog.New(slog.NewTextHandler(io.Discard, nil))
		s.mockCommands.EXPECT().Revoke(gomock.Any(), "v1").
			Return(infra.WrapControllerErr(log, infra.KindRemoteUnavailable, "controller request failed", nil)).
			Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodDelete, "/api/vouchers/v1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Revoke voucher failed")
	})
}

func (s *VoucherHandlerTestSuite) TestPrint() {
	s.Run("error: 501 when no printer is configured", func() {
		router := s.newRouter(config.NewTestConfig())

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/api/vouchers/v1/pdf", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotImplemented, "Printer not configured")
	})

	s.Run("success: renders a PDF when the printer type is pdf", func() {
		cfg := config.NewTestConfig()
		cfg.Printer.Type = "pdf"
		router := s.newRouter(cfg)

		s.mockQueries.EXPECT().Get("v1").Return(&queries.VoucherDetail{
			Voucher: voucher.Voucher{ID: "v1", Code: "0123456789", Duration: 480},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/api/vouchers/v1/pdf", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("application/pdf", rec.Header().Get("Content-Type"))
		s.Contains(rec.Header().Get("Content-Disposition"), "voucher_v1.pdf")
		s.NotEmpty(rec.Body.Bytes())
	})

	s.Run("success: emits raw bytes for an escpos printer", func() {
		cfg := config.NewTestConfig()
		cfg.Printer.Type = "escpos"
		router := s.newRouter(cfg)

		s.mockQueries.EXPECT().Get("v1").Return(&queries.VoucherDetail{
			Voucher: voucher.Voucher{ID: "v1", Code: "0123456789", Duration: 480},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/api/vouchers/v1/pdf", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("application/octet-stream", rec.Header().Get("Content-Type"))
		s.NotEmpty(rec.Body.Bytes())
	})
}

func (s *VoucherHandlerTestSuite) TestEmail() {
	url := "/api/vouchers/v1/email"

	s.Run("error: 501 when SMTP is not configured", func() {
		router := s.newRouter(config.NewTestConfig())

		rec := httptest.PerformRequest(s.T(), router, http.MethodPost, url,
			map[string]any{"email": "guest@example.com"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotImplemented, "Mail transport not configured")
	})

	s.Run("success: 204 after sending", func() {
		cfg := config.NewTestConfig()
		cfg.SMTP = config.SMTPConfig{Host: "mail.local", Port: 587, From: "noreply@example.com"}
		router := s.newRouter(cfg)

		v := voucher.Voucher{ID: "v1", Code: "0123456789"}
		s.mockQueries.EXPECT().Get("v1").Return(&queries.VoucherDetail{Voucher: v}, nil).Times(1)
		s.mockMailer.EXPECT().SendVoucher(gomock.Any(), "guest@example.com", v, "en").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodPost, url,
			map[string]any{"email": "guest@example.com", "language": "en"}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on malformed address", func() {
		cfg := config.NewTestConfig()
		cfg.SMTP = config.SMTPConfig{Host: "mail.local", Port: 587, From: "noreply@example.com"}
		router := s.newRouter(cfg)

		rec := httptest.PerformRequest(s.T(), router, http.MethodPost, url,
			map[string]any{"email": "not-an-address"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *VoucherHandlerTestSuite) TestTypes() {
	router := s.newRouter(config.NewTestConfig())

	rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/api/types", nil, "")

	var response struct {
		Types  []voucher.Type `json:"types"`
		Custom bool           `json:"custom"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response.Types, 2)
	s.True(response.Custom)
}
