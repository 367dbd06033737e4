//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"voucher-hub/internal/domain/voucher"
	"voucher-hub/internal/infra/cache"
	"voucher-hub/internal/pkg/clock"
	"voucher-hub/internal/pkg/errs"
	"voucher-hub/internal/usecase"
	usecasemock "voucher-hub/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RefresherTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockClient *usecasemock.MockControllerClient
	store      *cache.Store
	clock      *clock.FakeClock
	refresher  usecase.Refresher
}

func (s *RefresherTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClient = usecasemock.NewMockControllerClient(s.mockCtrl)
	s.store = cache.NewStore()
	s.clock = clock.NewFakeClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.refresher = usecase.NewRefresher(
		s.mockClient, s.store, s.clock,
		slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
}

func (s *RefresherTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRefresherSuite(t *testing.T) {
	suite.Run(t, new(RefresherTestSuite))
}

func (s *RefresherTestSuite) TestRefresh_StoresBothHalves() {
	vs := []voucher.Voucher{{ID: "v1", Note: "staff"}, {ID: "v2"}}
	gs := []voucher.Guest{{ID: "g1", VoucherID: "v1"}}
	s.mockClient.EXPECT().List(gomock.Any()).Return(vs, nil)
	s.mockClient.EXPECT().Guests(gomock.Any()).Return(gs, nil)

	s.refresher.Refresh(context.Background())

	snap := s.store.Snapshot()
	s.Len(snap.Vouchers, 2)
	s.Len(snap.Guests, 1)
	s.Len(snap.Batches, 2)
	s.Equal(s.clock.Now(), snap.Updated)
}

func (s *RefresherTestSuite) TestRefresh_VoucherFailureKeepsStaleVouchers() {
	seed := []voucher.Voucher{{ID: "old"}}
	s.store.SetVouchers(seed, voucher.Batches(seed), s.clock.Now())

	s.clock.Advance(15 * time.Minute)
	s.mockClient.EXPECT().List(gomock.Any()).Return(nil, errs.New("controller down"))
	s.mockClient.EXPECT().Guests(gomock.Any()).Return([]voucher.Guest{{ID: "g1"}}, nil)

	s.refresher.Refresh(context.Background())

	snap := s.store.Snapshot()
	s.Len(snap.Vouchers, 1, "stale vouchers survive a failed voucher fetch")
	s.Equal("old", snap.Vouchers[0].ID)
	s.Len(snap.Guests, 1, "the guest half still refreshes")
}

func (s *RefresherTestSuite) TestRefresh_GuestFailureKeepsStaleGuests() {
	s.store.SetGuests([]voucher.Guest{{ID: "old"}}, s.clock.Now())

	s.mockClient.EXPECT().List(gomock.Any()).Return([]voucher.Voucher{{ID: "v1"}}, nil)
	s.mockClient.EXPECT().Guests(gomock.Any()).Return(nil, errs.New("controller down"))

	s.refresher.Refresh(context.Background())

	snap := s.store.Snapshot()
	s.Len(snap.Vouchers, 1)
	s.Len(snap.Guests, 1, "stale guests survive a failed guest fetch")
	s.Equal("old", snap.Guests[0].ID)
}

func (s *RefresherTestSuite) TestRefresh_NeverPanicsWithBothFailures() {
	s.mockClient.EXPECT().List(gomock.Any()).Return(nil, errs.New("down"))
	s.mockClient.EXPECT().Guests(gomock.Any()).Return(nil, errs.New("down"))

	s.refresher.Refresh(context.Background())

	snap := s.store.Snapshot()
	s.Empty(snap.Vouchers)
	s.Empty(snap.Guests)
}

func TestRefresh_NotifiesSubscribers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := usecasemock.NewMockControllerClient(ctrl)
	store := cache.NewStore()
	clk := clock.NewFakeClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	var got usecase.RefreshEvent
	notifier := usecasemock.NewMockRefreshNotifier(ctrl)
	notifier.EXPECT().NotifyRefresh(gomock.Any()).Do(func(ev usecase.RefreshEvent) {
		got = ev
	})

	client.EXPECT().List(gomock.Any()).Return([]voucher.Voucher{{ID: "v1"}, {ID: "v2"}}, nil)
	client.EXPECT().Guests(gomock.Any()).Return([]voucher.Guest{{ID: "g1"}}, nil)

	r := usecase.NewRefresher(client, store, clk,
		slog.New(slog.NewTextHandler(io.Discard, nil)), notifier)
	r.Refresh(context.Background())

	require.Equal(t, 2, got.Vouchers)
	assert.Equal(t, 1, got.Guests)
	assert.Equal(t, clk.Now().UnixMilli(), got.Updated)
}
