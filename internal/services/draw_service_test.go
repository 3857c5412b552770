package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rafflewise/draw-engine/internal/events"
	"github.com/rafflewise/draw-engine/internal/metrics"
	"github.com/rafflewise/draw-engine/internal/models"
	"github.com/rafflewise/draw-engine/pkg/beacon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type drawServiceMocks struct {
	drawRepo      *mockDrawRepo
	entryRepo     *mockEntryRepo
	winnerRepo    *mockWinnerRepo
	exclusionRepo *mockExclusionRepo
	pulse         *mockPulseSource
	notifier      *mockNotifier
	audit         *mockAuditService
	publisher     *capturingPublisher
}

func newTestDrawService(defaultMode models.EntropyMode) (*DrawServiceImpl, *drawServiceMocks) {
	m := &drawServiceMocks{
		drawRepo:      &mockDrawRepo{},
		entryRepo:     &mockEntryRepo{},
		winnerRepo:    &mockWinnerRepo{},
		exclusionRepo: &mockExclusionRepo{},
		pulse:         &mockPulseSource{},
		notifier:      &mockNotifier{},
		audit:         &mockAuditService{},
		publisher:     &capturingPublisher{},
	}
	m.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	svc := NewDrawService(
		m.drawRepo,
		m.entryRepo,
		m.winnerRepo,
		m.exclusionRepo,
		m.pulse,
		m.notifier,
		m.audit,
		m.publisher,
		metrics.New(),
		defaultMode,
	)
	return svc, m
}

func poolEntry(code string, tickets int) *models.Entry {
	return &models.Entry{
		ID:      primitive.NewObjectID(),
		Code:    code,
		Tickets: tickets,
	}
}

func singlePrize(numWinners int) []models.Prize {
	return []models.Prize{{Tier: "Grand", Amount: 5000, NumWinners: numWinners}}
}

func TestScheduleDrawValidation(t *testing.T) {
	drawDate := time.Date(2026, 9, 4, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *models.ScheduleDrawRequest
	}{
		{
			name: "no prizes",
			req:  &models.ScheduleDrawRequest{Name: "Friday Night", DrawDate: drawDate},
		},
		{
			name: "empty tier name",
			req: &models.ScheduleDrawRequest{
				Name:     "Friday Night",
				DrawDate: drawDate,
				Prizes:   []models.Prize{{Tier: "", Amount: 100, NumWinners: 1}},
			},
		},
		{
			name: "duplicate tier",
			req: &models.ScheduleDrawRequest{
				Name:     "Friday Night",
				DrawDate: drawDate,
				Prizes: []models.Prize{
					{Tier: "Grand", Amount: 5000, NumWinners: 1},
					{Tier: "Grand", Amount: 100, NumWinners: 3},
				},
			},
		},
		{
			name: "zero winners",
			req: &models.ScheduleDrawRequest{
				Name:     "Friday Night",
				DrawDate: drawDate,
				Prizes:   []models.Prize{{Tier: "Grand", Amount: 5000, NumWinners: 0}},
			},
		},
		{
			name: "negative amount",
			req: &models.ScheduleDrawRequest{
				Name:     "Friday Night",
				DrawDate: drawDate,
				Prizes:   []models.Prize{{Tier: "Grand", Amount: -1, NumWinners: 1}},
			},
		},
		{
			name: "unknown entropy mode",
			req: &models.ScheduleDrawRequest{
				Name:        "Friday Night",
				DrawDate:    drawDate,
				Prizes:      singlePrize(1),
				EntropyMode: "QUANTUM",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newTestDrawService(models.EntropyCrypto)

			_, err := svc.ScheduleDraw(context.Background(), tc.req)

			require.ErrorIs(t, err, ErrInvalidDrawRequest)
			m.drawRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestScheduleDrawDefaultsEntropyMode(t *testing.T) {
	svc, m := newTestDrawService(models.EntropyCrypto)
	m.drawRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Draw")).Return(nil)

	draw, err := svc.ScheduleDraw(context.Background(), &models.ScheduleDrawRequest{
		Name:     "Weekly Raffle",
		DrawDate: time.Date(2026, 9, 4, 20, 0, 0, 0, time.UTC),
		Prizes:   singlePrize(1),
	})

	require.NoError(t, err)
	assert.Equal(t, models.DrawStatusScheduled, draw.Status)
	assert.Equal(t, models.EntropyCrypto, draw.EntropyMode)
	assert.Zero(t, draw.Seed)
	m.drawRepo.AssertExpectations(t)
	m.audit.AssertCalled(t, "Record", mock.Anything, models.AuditDrawScheduled, "system", mock.Anything, mock.Anything)
}

func TestScheduleDrawSeeded(t *testing.T) {
	t.Run("missing seed is generated", func(t *testing.T) {
		svc, m := newTestDrawService(models.EntropyCrypto)
		m.drawRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		draw, err := svc.ScheduleDraw(context.Background(), &models.ScheduleDrawRequest{
			Name:        "Weekly Raffle",
			DrawDate:    time.Now().Add(24 * time.Hour),
			Prizes:      singlePrize(1),
			EntropyMode: models.EntropySeeded,
		})

		require.NoError(t, err)
		assert.Equal(t, models.EntropySeeded, draw.EntropyMode)
		assert.NotZero(t, draw.Seed)
	})

	t.Run("explicit seed is kept", func(t *testing.T) {
		svc, m := newTestDrawService(models.EntropyCrypto)
		m.drawRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		draw, err := svc.ScheduleDraw(context.Background(), &models.ScheduleDrawRequest{
			Name:        "Weekly Raffle",
			DrawDate:    time.Now().Add(24 * time.Hour),
			Prizes:      singlePrize(1),
			EntropyMode: models.EntropySeeded,
			Seed:        123456789,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(123456789), draw.Seed)
	})
}

func TestExecuteDrawNotScheduled(t *testing.T) {
	svc, m := newTestDrawService(models.EntropyCrypto)
	drawID := primitive.NewObjectID()
	m.drawRepo.On("FindByID", mock.Anything, drawID).Return(&models.Draw{
		ID:     drawID,
		Status: models.DrawStatusCompleted,
	}, nil)

	returned, err := svc.ExecuteDraw(context.Background(), drawID)

	require.ErrorIs(t, err, ErrDrawNotScheduled)
	require.NotNil(t, returned)
	m.drawRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestExecuteDrawSeededHappyPath(t *testing.T) {
	svc, m := newTestDrawService(models.EntropyCrypto)

	drawDate := time.Date(2026, 9, 4, 20, 0, 0, 0, time.UTC)
	draw := &models.Draw{
		ID:          primitive.NewObjectID(),
		Name:        "Weekly Raffle",
		DrawDate:    drawDate,
		Status:      models.DrawStatusScheduled,
		EntropyMode: models.EntropySeeded,
		Seed:        42,
		Prizes: []models.Prize{
			{Tier: "Grand", Amount: 5000, NumWinners: 1},
			{Tier: "Consolation", Amount: 500, NumWinners: 2},
		},
	}
	entries := []*models.Entry{
		poolEntry("CODE0001", 1),
		poolEntry("CODE0002", 2),
		poolEntry("CODE0003", 3),
		poolEntry("CODE0004", 1),
		poolEntry("CODE0005", 1),
	}

	var savedWinners []*models.Winner
	m.drawRepo.On("FindByID", mock.Anything, draw.ID).Return(draw, nil)
	m.drawRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	m.entryRepo.On("FindEligible", mock.Anything).Return(entries, nil)
	m.exclusionRepo.On("CodeSet", mock.Anything).Return(map[string]bool{}, nil)
	m.winnerRepo.On("CreateMany", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		savedWinners = args.Get(1).([]*models.Winner)
	}).Return(nil)
	m.winnerRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	m.notifier.On("NotifyWinner", mock.Anything, mock.Anything).Return("DELIVERY-1", nil)

	executed, err := svc.ExecuteDraw(context.Background(), draw.ID)

	require.NoError(t, err)
	assert.Equal(t, models.DrawStatusCompleted, executed.Status)
	assert.Equal(t, 3, executed.NumWinners)
	assert.Equal(t, 5, executed.TotalEntries)
	assert.Equal(t, 8, executed.TotalTickets)
	assert.False(t, executed.ExecutionEndTime.IsZero())

	require.Len(t, savedWinners, 3)
	seenCodes := make(map[string]bool)
	tiers := make(map[string][]int)
	for _, w := range savedWinners {
		assert.Equal(t, draw.ID, w.DrawID)
		assert.Equal(t, models.ClaimStatusPending, w.ClaimStatus)
		assert.Equal(t, drawDate, w.WinDate)
		assert.False(t, seenCodes[w.Code], "code %s won twice", w.Code)
		seenCodes[w.Code] = true
		tiers[w.PrizeTier] = append(tiers[w.PrizeTier], w.Position)
	}
	assert.Equal(t, []int{1}, tiers["Grand"])
	assert.Equal(t, []int{1, 2}, tiers["Consolation"])

	published := m.publisher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.TypeDrawCompleted, published[0].Type)
	m.notifier.AssertNumberOfCalls(t, "NotifyWinner", 3)
}

func TestExecuteDrawDeterministicWithSeed(t *testing.T) {
	run := func(seed int64) []string {
		svc, m := newTestDrawService(models.EntropyCrypto)
		draw := &models.Draw{
			ID:          primitive.NewObjectID(),
			Name:        "Replay Check",
			DrawDate:    time.Date(2026, 9, 4, 20, 0, 0, 0, time.UTC),
			Status:      models.DrawStatusScheduled,
			EntropyMode: models.EntropySeeded,
			Seed:        seed,
			Prizes: []models.Prize{
				{Tier: "Grand", Amount: 5000, NumWinners: 1},
				{Tier: "Minor", Amount: 100, NumWinners: 2},
			},
		}
		entries := []*models.Entry{
			poolEntry("ALPHA001", 3),
			poolEntry("BRAVO002", 1),
			poolEntry("CHARL003", 2),
			poolEntry("DELTA004", 1),
			poolEntry("ECHOX005", 4),
			poolEntry("FOXTR006", 1),
		}

		var codes []string
		m.drawRepo.On("FindByID", mock.Anything, draw.ID).Return(draw, nil)
		m.drawRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		m.entryRepo.On("FindEligible", mock.Anything).Return(entries, nil)
		m.exclusionRepo.On("CodeSet", mock.Anything).Return(map[string]bool{}, nil)
		m.winnerRepo.On("CreateMany", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			for _, w := range args.Get(1).([]*models.Winner) {
				codes = append(codes, w.Code)
			}
		}).Return(nil)
		m.winnerRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		m.notifier.On("NotifyWinner", mock.Anything, mock.Anything).Return("DELIVERY-1", nil)

		_, err := svc.ExecuteDraw(context.Background(), draw.ID)
		require.NoError(t, err)
		return codes
	}

	first := run(7)
	second := run(7)

	require.Len(t, first, 3)
	assert.Equal(t, first, second)
}

func TestExecuteDrawEmptyPool(t *testing.T) {
	svc, m := newTestDrawService(models.EntropyCrypto)
	draw := &models.Draw{
		ID:          primitive.NewObjectID(),
		Name:        "Ghost Town",
		DrawDate:    time.Now(),
		Status:      models.DrawStatusScheduled,
		EntropyMode: models.EntropySeeded,
		Seed:        1,
		Prizes:      singlePrize(3),
	}
	m.drawRepo.On("FindByID", mock.Anything, draw.ID).Return(draw, nil)
	m.drawRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	m.entryRepo.On("FindEligible", mock.Anything).Return([]*models.Entry{}, nil)
	m.exclusionRepo.On("CodeSet", mock.Anything).Return(map[string]bool{}, nil)

	executed, err := svc.ExecuteDraw(context.Background(), draw.ID)

	require.NoError(t, err)
	assert.Equal(t, models.DrawStatusCompleted, executed.Status)
	assert.Zero(t, executed.NumWinners)
	m.winnerRepo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
	m.notifier.AssertNotCalled(t, "NotifyWinner", mock.Anything, mock.Anything)
}

func TestExecuteDrawSkipsExcludedEntries(t *testing.T) {
	svc, m := newTestDrawService(models.EntropyCrypto)
	draw := &models.Draw{
		ID:          primitive.NewObjectID(),
		Name:        "Exclusion Check",
		DrawDate:    time.Now(),
		Status:      models.DrawStatusScheduled,
		EntropyMode: models.EntropySeeded,
		Seed:        99,
		Prizes:      singlePrize(1),
	}
	entries := []*models.Entry{
		poolEntry("ALPHA001", 5),
		poolEntry("BRAVO002", 1),
	}

	var savedWinners []*models.Winner
	m.drawRepo.On("FindByID", mock.Anything, draw.ID).Return(draw, nil)
	m.drawRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	m.entryRepo.On("FindEligible", mock.Anything).Return(entries, nil)
	m.exclusionRepo.On("CodeSet", mock.Anything).Return(map[string]bool{"ALPHA001": true}, nil)
	m.winnerRepo.On("CreateMany", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		savedWinners = args.Get(1).([]*models.Winner)
	}).Return(nil)
	m.winnerRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	m.notifier.On("NotifyWinner", mock.Anything, mock.Anything).Return("DELIVERY-1", nil)

	executed, err := svc.ExecuteDraw(context.Background(), draw.ID)

	require.NoError(t, err)
	assert.Equal(t, models.DrawStatusCompleted, executed.Status)
	require.Len(t, savedWinners, 1)
	assert.Equal(t, "BRAVO002", savedWinners[0].Code)
}

func TestExecuteDrawDedupesRepeatedCodes(t *testing.T) {
	svc, m := newTestDrawService(models.EntropyCrypto)
	draw := &models.Draw{
		ID:          primitive.NewObjectID(),
		Name:        "Dedupe Check",
		DrawDate:    time.Now(),
		Status:      models.DrawStatusScheduled,
		EntropyMode: models.EntropySeeded,
		Seed:        5,
		Prizes:      singlePrize(2),
	}
	// Two distinct entries sharing a code; the code may still win only once
	entries := []*models.Entry{
		poolEntry("DOUBLE99", 1),
		poolEntry("DOUBLE99", 1),
	}

	var savedWinners []*models.Winner
	m.drawRepo.On("FindByID", mock.Anything, draw.ID).Return(draw, nil)
	m.drawRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	m.entryRepo.On("FindEligible", mock.Anything).Return(entries, nil)
	m.exclusionRepo.On("CodeSet", mock.Anything).Return(map[string]bool{}, nil)
	m.winnerRepo.On("CreateMany", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		savedWinners = args.Get(1).([]*models.Winner)
	}).Return(nil)
	m.winnerRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	m.notifier.On("NotifyWinner", mock.Anything, mock.Anything).Return("DELIVERY-1", nil)

	executed, err := svc.ExecuteDraw(context.Background(), draw.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, executed.NumWinners)
	require.Len(t, savedWinners, 1)
	assert.Equal(t, "DOUBLE99", savedWinners[0].Code)
}

func TestExecuteDrawBeaconRecordsPulse(t *testing.T) {
	svc, m := newTestDrawService(models.EntropyCrypto)
	draw := &models.Draw{
		ID:          primitive.NewObjectID(),
		Name:        "Beacon Draw",
		DrawDate:    time.Now(),
		Status:      models.DrawStatusScheduled,
		EntropyMode: models.EntropyBeacon,
		Prizes:      singlePrize(1),
	}
	m.pulse.On("LatestPulse", mock.Anything).Return(beacon.Pulse{Round: 4242, Seed: 777}, nil)
	m.drawRepo.On("FindByID", mock.Anything, draw.ID).Return(draw, nil)
	m.drawRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	m.entryRepo.On("FindEligible", mock.Anything).Return([]*models.Entry{poolEntry("ALPHA001", 1)}, nil)
	m.exclusionRepo.On("CodeSet", mock.Anything).Return(map[string]bool{}, nil)
	m.winnerRepo.On("CreateMany", mock.Anything, mock.Anything).Return(nil)
	m.winnerRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	m.notifier.On("NotifyWinner", mock.Anything, mock.Anything).Return("DELIVERY-1", nil)

	executed, err := svc.ExecuteDraw(context.Background(), draw.ID)

	require.NoError(t, err)
	assert.Equal(t, models.DrawStatusCompleted, executed.Status)
	assert.Equal(t, uint64(4242), executed.BeaconRound)
	assert.Equal(t, int64(777), executed.Seed)
	m.pulse.AssertExpectations(t)
}

func TestExecuteDrawFailsWhenPoolUnavailable(t *testing.T) {
	svc, m := newTestDrawService(models.EntropyCrypto)
	draw := &models.Draw{
		ID:          primitive.NewObjectID(),
		Name:        "Doomed Draw",
		DrawDate:    time.Now(),
		Status:      models.DrawStatusScheduled,
		EntropyMode: models.EntropySeeded,
		Seed:        3,
		Prizes:      singlePrize(1),
	}
	m.drawRepo.On("FindByID", mock.Anything, draw.ID).Return(draw, nil)
	m.drawRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	m.entryRepo.On("FindEligible", mock.Anything).Return(nil, errors.New("connection reset"))

	executed, err := svc.ExecuteDraw(context.Background(), draw.ID)

	require.Error(t, err)
	assert.Equal(t, models.DrawStatusFailed, executed.Status)
	assert.Contains(t, executed.ErrorMessage, "entry pool")
	m.winnerRepo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)

	published := m.publisher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.TypeDrawFailed, published[0].Type)
	m.audit.AssertCalled(t, "Record", mock.Anything, models.AuditDrawFailed, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelDraw(t *testing.T) {
	t.Run("scheduled draw is cancelled", func(t *testing.T) {
		svc, m := newTestDrawService(models.EntropyCrypto)
		draw := &models.Draw{
			ID:     primitive.NewObjectID(),
			Name:   "Cold Feet",
			Status: models.DrawStatusScheduled,
		}
		m.drawRepo.On("FindByID", mock.Anything, draw.ID).Return(draw, nil)
		m.drawRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		cancelled, err := svc.CancelDraw(context.Background(), draw.ID, "ops@example.com")

		require.NoError(t, err)
		assert.Equal(t, models.DrawStatusCancelled, cancelled.Status)
		m.audit.AssertCalled(t, "Record", mock.Anything, models.AuditDrawCancelled, "ops@example.com", draw.ID, mock.Anything)
	})

	t.Run("executing draw cannot be cancelled", func(t *testing.T) {
		svc, m := newTestDrawService(models.EntropyCrypto)
		draw := &models.Draw{
			ID:     primitive.NewObjectID(),
			Status: models.DrawStatusExecuting,
		}
		m.drawRepo.On("FindByID", mock.Anything, draw.ID).Return(draw, nil)

		_, err := svc.CancelDraw(context.Background(), draw.ID, "ops@example.com")

		require.ErrorIs(t, err, ErrDrawNotScheduled)
		m.drawRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestUpdateClaimStatus(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		svc, m := newTestDrawService(models.EntropyCrypto)

		_, err := svc.UpdateClaimStatus(context.Background(), primitive.NewObjectID(), "LOST", "ops@example.com")

		require.ErrorIs(t, err, ErrInvalidClaimStatus)
		m.winnerRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("claiming sets the claim date", func(t *testing.T) {
		svc, m := newTestDrawService(models.EntropyCrypto)
		winner := &models.Winner{
			ID:          primitive.NewObjectID(),
			DrawID:      primitive.NewObjectID(),
			Code:        "ALPHA001",
			ClaimStatus: models.ClaimStatusPending,
		}
		m.winnerRepo.On("FindByID", mock.Anything, winner.ID).Return(winner, nil)
		m.winnerRepo.On("Update", mock.Anything, winner).Return(nil)

		updated, err := svc.UpdateClaimStatus(context.Background(), winner.ID, models.ClaimStatusClaimed, "ops@example.com")

		require.NoError(t, err)
		assert.Equal(t, models.ClaimStatusClaimed, updated.ClaimStatus)
		assert.False(t, updated.ClaimDate.IsZero())
		m.audit.AssertCalled(t, "Record", mock.Anything, models.AuditClaimUpdated, "ops@example.com", winner.DrawID, mock.Anything)
	})

	t.Run("forfeiting leaves the claim date unset", func(t *testing.T) {
		svc, m := newTestDrawService(models.EntropyCrypto)
		winner := &models.Winner{
			ID:          primitive.NewObjectID(),
			DrawID:      primitive.NewObjectID(),
			Code:        "BRAVO002",
			ClaimStatus: models.ClaimStatusPending,
		}
		m.winnerRepo.On("FindByID", mock.Anything, winner.ID).Return(winner, nil)
		m.winnerRepo.On("Update", mock.Anything, winner).Return(nil)

		updated, err := svc.UpdateClaimStatus(context.Background(), winner.ID, models.ClaimStatusForfeited, "ops@example.com")

		require.NoError(t, err)
		assert.Equal(t, models.ClaimStatusForfeited, updated.ClaimStatus)
		assert.True(t, updated.ClaimDate.IsZero())
	})
}

func TestGetDraws(t *testing.T) {
	t.Run("status filter routes to the status query", func(t *testing.T) {
		svc, m := newTestDrawService(models.EntropyCrypto)
		scheduled := []*models.Draw{{ID: primitive.NewObjectID(), Status: models.DrawStatusScheduled}}
		m.drawRepo.On("FindByStatus", mock.Anything, models.DrawStatusScheduled).Return(scheduled, nil)

		draws, err := svc.GetDraws(context.Background(), models.DrawStatusScheduled, time.Time{}, time.Time{}, 1, 50)

		require.NoError(t, err)
		assert.Equal(t, scheduled, draws)
		m.drawRepo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		svc, m := newTestDrawService(models.EntropyCrypto)

		_, err := svc.GetDraws(context.Background(), models.DrawStatus("PAUSED"), time.Time{}, time.Time{}, 1, 50)

		require.ErrorIs(t, err, ErrInvalidDrawRequest)
		m.drawRepo.AssertNotCalled(t, "FindByStatus", mock.Anything, mock.Anything)
	})

	t.Run("date range routes to the range query", func(t *testing.T) {
		svc, m := newTestDrawService(models.EntropyCrypto)
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)
		m.drawRepo.On("FindByDateRange", mock.Anything, start, end).Return([]*models.Draw{}, nil)

		_, err := svc.GetDraws(context.Background(), "", start, end, 1, 50)

		require.NoError(t, err)
		m.drawRepo.AssertCalled(t, "FindByDateRange", mock.Anything, start, end)
	})

	t.Run("no filters page over everything with clamped bounds", func(t *testing.T) {
		svc, m := newTestDrawService(models.EntropyCrypto)
		m.drawRepo.On("FindAll", mock.Anything, 1, 50).Return([]*models.Draw{}, nil)

		_, err := svc.GetDraws(context.Background(), "", time.Time{}, time.Time{}, 0, 9999)

		require.NoError(t, err)
		m.drawRepo.AssertCalled(t, "FindAll", mock.Anything, 1, 50)
	})
}

func TestGetNextDraw(t *testing.T) {
	svc, m := newTestDrawService(models.EntropyCrypto)
	after := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	next := &models.Draw{
		ID:       primitive.NewObjectID(),
		Name:     "Saturday Special",
		Status:   models.DrawStatusScheduled,
		DrawDate: after.Add(48 * time.Hour),
	}
	m.drawRepo.On("FindNextScheduledDraw", mock.Anything, after).Return(next, nil)

	draw, err := svc.GetNextDraw(context.Background(), after)

	require.NoError(t, err)
	assert.Equal(t, "Saturday Special", draw.Name)
}

func TestGetWinnersByDrawID(t *testing.T) {
	svc, m := newTestDrawService(models.EntropyCrypto)
	drawID := primitive.NewObjectID()
	grand := []*models.Winner{{DrawID: drawID, Code: "ALPHA001", PrizeTier: "Grand"}}
	m.winnerRepo.On("FindByDrawIDAndTier", mock.Anything, drawID, "Grand").Return(grand, nil)

	winners, err := svc.GetWinnersByDrawID(context.Background(), drawID, "Grand")

	require.NoError(t, err)
	assert.Equal(t, grand, winners)
	m.winnerRepo.AssertNotCalled(t, "FindByDrawID", mock.Anything, mock.Anything)
}

func TestGetWinsByCodeNormalizes(t *testing.T) {
	svc, m := newTestDrawService(models.EntropyCrypto)
	m.winnerRepo.On("FindByCode", mock.Anything, "ALPHA001").Return([]*models.Winner{}, nil)

	_, err := svc.GetWinsByCode(context.Background(), "  alpha001 ")

	require.NoError(t, err)
	m.winnerRepo.AssertCalled(t, "FindByCode", mock.Anything, "ALPHA001")
}

func TestGetStats(t *testing.T) {
	svc, m := newTestDrawService(models.EntropyCrypto)
	m.drawRepo.On("Count", mock.Anything).Return(int64(4), nil)
	m.entryRepo.On("Count", mock.Anything).Return(int64(120), nil)
	m.winnerRepo.On("Count", mock.Anything).Return(int64(9), nil)

	stats, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Draws)
	assert.Equal(t, int64(120), stats.Entries)
	assert.Equal(t, int64(9), stats.Winners)
}
