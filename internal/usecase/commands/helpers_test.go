//go:build unit

package commands_test

import (
	"context"
	"time"

	"meeting-room-approval/internal/pkg/clock"
	"meeting-room-approval/internal/usecase/shared"
	sharedmock "meeting-room-approval/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 5, 25, 10, 0, 0, 0, time.UTC)

// uowHarness wires a mocked unit of work whose Within runs the callback
// against a mocked transaction exposing every repository.
type uowHarness struct {
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	meetings    *sharedmock.MockMeetingRequestRepository
	history     *sharedmock.MockHistoryRepository
	registry    *sharedmock.MockRegistryRepository
	users       *sharedmock.MockUserRepository
	clock       *clock.MockClock
	withinCalls int
}

func newUowHarness(ctrl *gomock.Controller) *uowHarness {
	h := &uowHarness{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		meetings: sharedmock.NewMockMeetingRequestRepository(ctrl),
		history:  sharedmock.NewMockHistoryRepository(ctrl),
		registry: sharedmock.NewMockRegistryRepository(ctrl),
		users:    sharedmock.NewMockUserRepository(ctrl),
		clock:    clock.NewMockClock(fixedNow),
	}

	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			h.withinCalls++
			return fn(ctx, h.tx)
		}).AnyTimes()
	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()

	h.tx.EXPECT().MeetingRequests().Return(h.meetings).AnyTimes()
	h.tx.EXPECT().History().Return(h.history).AnyTimes()
	h.tx.EXPECT().Registry().Return(h.registry).AnyTimes()
	h.tx.EXPECT().Users().Return(h.users).AnyTimes()
	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().DB().Return(nil).AnyTimes()
	return h
}
