package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rafflewise/draw-engine/internal/events"
	"github.com/rafflewise/draw-engine/internal/metrics"
	"github.com/rafflewise/draw-engine/internal/models"
	"github.com/rafflewise/draw-engine/internal/repositories"
	"github.com/rafflewise/draw-engine/internal/utils"
	"github.com/rafflewise/draw-engine/pkg/beacon"
	"github.com/rafflewise/draw-engine/pkg/notify"
	"github.com/rafflewise/draw-engine/pkg/randpick"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure DrawServiceImpl implements DrawService
var _ DrawService = (*DrawServiceImpl)(nil)

var (
	// ErrDrawNotScheduled is returned when execution or cancellation is
	// requested for a draw that already left the SCHEDULED state.
	ErrDrawNotScheduled = errors.New("draw is not in SCHEDULED state")

	// ErrInvalidClaimStatus is returned for claim transitions outside
	// PENDING, CLAIMED and FORFEITED.
	ErrInvalidClaimStatus = errors.New("invalid claim status")

	// ErrInvalidDrawRequest wraps schedule-time validation failures so
	// callers can tell bad input apart from infrastructure errors.
	ErrInvalidDrawRequest = errors.New("invalid draw request")
)

// DrawServiceImpl handles the draw lifecycle: scheduling, execution,
// cancellation and winner claims
type DrawServiceImpl struct {
	drawRepo           repositories.DrawRepository
	entryRepo          repositories.EntryRepository
	winnerRepo         repositories.WinnerRepository
	exclusionRepo      repositories.ExclusionRepository
	pulseSource        beacon.PulseSource
	notifier           notify.Notifier
	auditService       AuditService
	publisher          events.Publisher
	metrics            *metrics.Metrics
	defaultEntropyMode models.EntropyMode
}

// NewDrawService creates a new DrawServiceImpl
func NewDrawService(
	drawRepo repositories.DrawRepository,
	entryRepo repositories.EntryRepository,
	winnerRepo repositories.WinnerRepository,
	exclusionRepo repositories.ExclusionRepository,
	pulseSource beacon.PulseSource,
	notifier notify.Notifier,
	auditService AuditService,
	publisher events.Publisher,
	m *metrics.Metrics,
	defaultEntropyMode models.EntropyMode,
) *DrawServiceImpl {
	return &DrawServiceImpl{
		drawRepo:           drawRepo,
		entryRepo:          entryRepo,
		winnerRepo:         winnerRepo,
		exclusionRepo:      exclusionRepo,
		pulseSource:        pulseSource,
		notifier:           notifier,
		auditService:       auditService,
		publisher:          publisher,
		metrics:            m,
		defaultEntropyMode: defaultEntropyMode,
	}
}

// --- Core Draw Lifecycle Methods ---

// ScheduleDraw schedules a new draw after validating its prize structure
// and entropy mode
func (s *DrawServiceImpl) ScheduleDraw(ctx context.Context, req *models.ScheduleDrawRequest) (*models.Draw, error) {
	// 1. Validate the prize structure
	if err := validatePrizes(req.Prizes); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDrawRequest, err)
	}

	// 2. Resolve the entropy mode
	mode := req.EntropyMode
	if mode == "" {
		mode = s.defaultEntropyMode
	}
	switch mode {
	case models.EntropyCrypto, models.EntropySeeded, models.EntropyBeacon:
	default:
		return nil, fmt.Errorf("%w: unknown entropy mode %q", ErrInvalidDrawRequest, mode)
	}

	// 3. SEEDED draws need a seed on record before execution. A missing
	// seed is filled from the system entropy pool so the draw stays
	// replayable either way.
	seed := int64(0)
	if mode == models.EntropySeeded {
		seed = req.Seed
		if seed == 0 {
			generated, err := randpick.CryptoSeed()
			if err != nil {
				slog.Error("Failed to generate seed for draw", "error", err)
				return nil, fmt.Errorf("failed to generate seed: %w", err)
			}
			seed = generated
		}
	}

	// 4. Create the Draw object
	draw := &models.Draw{
		Name:        req.Name,
		DrawDate:    req.DrawDate,
		Status:      models.DrawStatusScheduled,
		EntropyMode: mode,
		Seed:        seed,
		Prizes:      req.Prizes,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	// 5. Save the Draw
	if err := s.drawRepo.Create(ctx, draw); err != nil {
		slog.Error("Failed to create draw in repository", "error", err)
		return nil, fmt.Errorf("failed to save scheduled draw: %w", err)
	}

	s.auditService.Record(ctx, models.AuditDrawScheduled, "system", draw.ID,
		fmt.Sprintf("Draw %q scheduled for %s (%s)", draw.Name, draw.DrawDate.Format("2006-01-02"), mode))
	slog.Info("Draw scheduled successfully", "drawId", draw.ID, "name", draw.Name, "date", draw.DrawDate, "entropyMode", mode)
	return draw, nil
}

// ExecuteDraw executes a scheduled draw: it resolves the entropy source,
// builds the ticket-weighted pool and selects winners for every prize tier
func (s *DrawServiceImpl) ExecuteDraw(ctx context.Context, drawID primitive.ObjectID) (*models.Draw, error) {
	// 1. Get the Draw & Basic Validation
	draw, err := s.drawRepo.FindByID(ctx, drawID)
	if err != nil {
		slog.Error("ExecuteDraw: Failed to find draw", "error", err, "drawId", drawID)
		return nil, fmt.Errorf("draw not found: %w", err)
	}

	if draw.Status != models.DrawStatusScheduled {
		slog.Warn("ExecuteDraw: Attempted to execute draw not in SCHEDULED state", "drawId", drawID, "status", draw.Status)
		return draw, fmt.Errorf("%w (current: %s)", ErrDrawNotScheduled, draw.Status)
	}

	// 2. Update Draw Status to EXECUTING
	draw.Status = models.DrawStatusExecuting
	draw.ExecutionStartTime = time.Now()
	draw.ExecutionLog = append(draw.ExecutionLog, fmt.Sprintf("%s: Starting execution", time.Now().Format(time.RFC3339)))
	err = s.drawRepo.Update(ctx, draw)
	if err != nil {
		slog.Error("ExecuteDraw: Failed to update draw status to EXECUTING", "error", err, "drawId", drawID)
		return draw, fmt.Errorf("failed to mark draw as executing: %w", err)
	}

	// Defer terminal status update, metrics and event publication
	defer func() {
		if r := recover(); r != nil {
			draw.Status = models.DrawStatusFailed
			draw.ErrorMessage = fmt.Sprintf("Panic during execution: %v", r)
			draw.ExecutionLog = append(draw.ExecutionLog, fmt.Sprintf("%s: PANIC: %v", time.Now().Format(time.RFC3339), r))
		} else if err != nil {
			draw.Status = models.DrawStatusFailed
			draw.ErrorMessage = err.Error()
			draw.ExecutionLog = append(draw.ExecutionLog, fmt.Sprintf("%s: ERROR: %s", time.Now().Format(time.RFC3339), err.Error()))
		} else {
			draw.Status = models.DrawStatusCompleted
			draw.ExecutionLog = append(draw.ExecutionLog, fmt.Sprintf("%s: Execution completed successfully", time.Now().Format(time.RFC3339)))
		}
		draw.ExecutionEndTime = time.Now()
		if updateErr := s.drawRepo.Update(ctx, draw); updateErr != nil {
			slog.Error("ExecuteDraw: CRITICAL: Failed to update final draw status", "error", updateErr, "drawId", drawID, "finalStatusAttempt", draw.Status)
		}
		s.metrics.DrawExecutions.UpdateSince(draw.ExecutionStartTime)
		s.publishOutcome(ctx, draw)
	}()

	// 3. Resolve the entropy source for this draw
	picker, err := s.pickerForDraw(ctx, draw)
	if err != nil {
		return draw, err
	}

	// 4. Fetch the Entry Pool
	entries, err := s.entryRepo.FindEligible(ctx)
	if err != nil {
		draw.ExecutionLog = append(draw.ExecutionLog, "Failed to fetch entry pool")
		return draw, fmt.Errorf("failed to fetch entry pool: %w", err)
	}
	draw.TotalEntries = len(entries)
	totalTickets := 0
	for _, entry := range entries {
		if entry.Tickets > 0 {
			totalTickets += entry.Tickets
		} else {
			totalTickets++
		}
	}
	draw.TotalTickets = totalTickets
	draw.ExecutionLog = append(draw.ExecutionLog, fmt.Sprintf("Fetched entry pool: %d entries, %d tickets", len(entries), totalTickets))

	// 5. Load the exclusion list
	excluded, err := s.exclusionRepo.CodeSet(ctx)
	if err != nil {
		draw.ExecutionLog = append(draw.ExecutionLog, "Failed to fetch exclusion list")
		return draw, fmt.Errorf("failed to fetch exclusion list: %w", err)
	}
	draw.ExecutionLog = append(draw.ExecutionLog, fmt.Sprintf("Loaded exclusion list: %d codes", len(excluded)))

	// 6. Select Winners (Ticket Weighted)
	var winners []*models.Winner
	if len(entries) > 0 {
		weightedPool := createWeightedPool(entries)
		draw.ExecutionLog = append(draw.ExecutionLog, fmt.Sprintf("Created weighted pool (total weight: %d)", len(weightedPool)))

		selectedCodes := make(map[string]bool)
		for _, prize := range draw.Prizes {
			for position := 1; position <= prize.NumWinners; position++ {
				if len(weightedPool) == 0 {
					draw.ExecutionLog = append(draw.ExecutionLog, fmt.Sprintf("Weighted pool exhausted while selecting for %s tier", prize.Tier))
					break
				}

				winnerEntry, remainingPool, selectionErr := selectWeightedWinner(picker, weightedPool)
				weightedPool = remainingPool

				if selectionErr != nil {
					slog.Error("Error selecting weighted winner", "error", selectionErr)
					draw.ExecutionLog = append(draw.ExecutionLog, fmt.Sprintf("ERROR selecting weighted winner: %s", selectionErr.Error()))
					continue
				}

				// Excluded entries are drawn over: their weight leaves the
				// pool and the slot is retried.
				if excluded[winnerEntry.Code] {
					draw.ExecutionLog = append(draw.ExecutionLog, fmt.Sprintf("Skipping excluded entry: %s", utils.MaskCode(winnerEntry.Code)))
					position--
					continue
				}

				// A code wins at most once per draw
				if selectedCodes[winnerEntry.Code] {
					draw.ExecutionLog = append(draw.ExecutionLog, fmt.Sprintf("Skipping duplicate winner selection: %s", utils.MaskCode(winnerEntry.Code)))
					position--
					continue
				}

				selectedCodes[winnerEntry.Code] = true
				winner := &models.Winner{
					DrawID:      draw.ID,
					EntryID:     winnerEntry.ID,
					Code:        winnerEntry.Code,
					PrizeTier:   prize.Tier,
					PrizeAmount: prize.Amount,
					Position:    position,
					WinDate:     draw.DrawDate,
					ClaimStatus: models.ClaimStatusPending,
				}
				winners = append(winners, winner)
				draw.ExecutionLog = append(draw.ExecutionLog, fmt.Sprintf("Selected %s winner #%d: %s (tickets: %d)", prize.Tier, position, utils.MaskCode(winnerEntry.Code), winnerEntry.Tickets))
			}
		}
	} else {
		draw.ExecutionLog = append(draw.ExecutionLog, "Entry pool is empty, no winners can be selected.")
	}

	// 7. Create Winner Records
	if len(winners) > 0 {
		err = s.winnerRepo.CreateMany(ctx, winners)
		if err != nil {
			slog.Error("Failed to create winner records", "error", err, "drawId", drawID)
			return draw, fmt.Errorf("failed to create winner records: %w", err)
		}
		draw.NumWinners = len(winners)
		draw.ExecutionLog = append(draw.ExecutionLog, fmt.Sprintf("Successfully created %d winner records", len(winners)))
		s.metrics.WinnersSelected.Inc(int64(len(winners)))
	} else {
		draw.NumWinners = 0
		draw.ExecutionLog = append(draw.ExecutionLog, "No winners selected for this draw.")
	}

	// 8. Notify winners, best effort
	s.notifyWinners(ctx, draw, winners)

	// 9. Final status update is handled by the deferred function
	return draw, nil
}

// CancelDraw cancels a draw that is still scheduled
func (s *DrawServiceImpl) CancelDraw(ctx context.Context, drawID primitive.ObjectID, actor string) (*models.Draw, error) {
	draw, err := s.drawRepo.FindByID(ctx, drawID)
	if err != nil {
		return nil, fmt.Errorf("draw not found: %w", err)
	}

	if draw.Status != models.DrawStatusScheduled {
		return draw, fmt.Errorf("%w (current: %s)", ErrDrawNotScheduled, draw.Status)
	}

	draw.Status = models.DrawStatusCancelled
	draw.ExecutionLog = append(draw.ExecutionLog, fmt.Sprintf("%s: Cancelled by %s", time.Now().Format(time.RFC3339), actor))
	if err := s.drawRepo.Update(ctx, draw); err != nil {
		slog.Error("Failed to cancel draw", "error", err, "drawId", drawID)
		return nil, fmt.Errorf("failed to cancel draw: %w", err)
	}

	s.auditService.Record(ctx, models.AuditDrawCancelled, actor, draw.ID, fmt.Sprintf("Draw %q cancelled", draw.Name))
	slog.Info("Draw cancelled", "drawId", drawID, "actor", actor)
	return draw, nil
}

// GetDrawByID retrieves a draw by its ID
func (s *DrawServiceImpl) GetDrawByID(ctx context.Context, drawID primitive.ObjectID) (*models.Draw, error) {
	draw, err := s.drawRepo.FindByID(ctx, drawID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve draw: %w", err)
	}
	return draw, nil
}

// GetDraws retrieves draws. A status filter takes precedence over a date
// range; with neither set the listing is paged over all draws.
func (s *DrawServiceImpl) GetDraws(ctx context.Context, status models.DrawStatus, startDate, endDate time.Time, page, limit int) ([]*models.Draw, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	if status != "" {
		switch status {
		case models.DrawStatusScheduled, models.DrawStatusExecuting, models.DrawStatusCompleted, models.DrawStatusFailed, models.DrawStatusCancelled:
		default:
			return nil, fmt.Errorf("%w: unknown draw status %q", ErrInvalidDrawRequest, status)
		}
		draws, err := s.drawRepo.FindByStatus(ctx, status)
		if err != nil {
			slog.Error("Failed to get draws by status", "error", err, "status", status)
			return nil, fmt.Errorf("failed to retrieve draws: %w", err)
		}
		return draws, nil
	}

	if !startDate.IsZero() || !endDate.IsZero() {
		draws, err := s.drawRepo.FindByDateRange(ctx, startDate, endDate)
		if err != nil {
			slog.Error("Failed to get draws by date range", "error", err)
			return nil, fmt.Errorf("failed to retrieve draws: %w", err)
		}
		return draws, nil
	}

	draws, err := s.drawRepo.FindAll(ctx, page, limit)
	if err != nil {
		slog.Error("Failed to get draws", "error", err)
		return nil, fmt.Errorf("failed to retrieve draws: %w", err)
	}
	return draws, nil
}

// GetNextDraw retrieves the earliest draw still scheduled after the given time
func (s *DrawServiceImpl) GetNextDraw(ctx context.Context, after time.Time) (*models.Draw, error) {
	draw, err := s.drawRepo.FindNextScheduledDraw(ctx, after)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve next draw: %w", err)
	}
	return draw, nil
}

// GetWinnersByDrawID retrieves the winners for a specific draw, optionally
// narrowed to one prize tier
func (s *DrawServiceImpl) GetWinnersByDrawID(ctx context.Context, drawID primitive.ObjectID, tier string) ([]*models.Winner, error) {
	var winners []*models.Winner
	var err error
	if tier != "" {
		winners, err = s.winnerRepo.FindByDrawIDAndTier(ctx, drawID, tier)
	} else {
		winners, err = s.winnerRepo.FindByDrawID(ctx, drawID)
	}
	if err != nil {
		slog.Error("Failed to get winners by draw ID", "error", err, "drawId", drawID, "tier", tier)
		return nil, fmt.Errorf("failed to retrieve winners: %w", err)
	}
	return winners, nil
}

// GetWinsByCode retrieves every win recorded for a participant code
func (s *DrawServiceImpl) GetWinsByCode(ctx context.Context, code string) ([]*models.Winner, error) {
	winners, err := s.winnerRepo.FindByCode(ctx, utils.NormalizeCode(code))
	if err != nil {
		slog.Error("Failed to get wins by code", "error", err, "code", utils.MaskCode(code))
		return nil, fmt.Errorf("failed to retrieve wins: %w", err)
	}
	return winners, nil
}

// GetStats reports engine-wide record counts
func (s *DrawServiceImpl) GetStats(ctx context.Context) (*models.EngineStats, error) {
	draws, err := s.drawRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count draws: %w", err)
	}
	entries, err := s.entryRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count entries: %w", err)
	}
	winners, err := s.winnerRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count winners: %w", err)
	}
	return &models.EngineStats{Draws: draws, Entries: entries, Winners: winners}, nil
}

// UpdateClaimStatus moves a winner between claim states
func (s *DrawServiceImpl) UpdateClaimStatus(ctx context.Context, winnerID primitive.ObjectID, status string, actor string) (*models.Winner, error) {
	switch status {
	case models.ClaimStatusPending, models.ClaimStatusClaimed, models.ClaimStatusForfeited:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidClaimStatus, status)
	}

	winner, err := s.winnerRepo.FindByID(ctx, winnerID)
	if err != nil {
		return nil, fmt.Errorf("winner not found: %w", err)
	}

	winner.ClaimStatus = status
	if status == models.ClaimStatusClaimed {
		winner.ClaimDate = time.Now()
	}
	if err := s.winnerRepo.Update(ctx, winner); err != nil {
		slog.Error("Failed to update claim status", "error", err, "winnerId", winnerID)
		return nil, fmt.Errorf("failed to update claim status: %w", err)
	}

	s.auditService.Record(ctx, models.AuditClaimUpdated, actor, winner.DrawID,
		fmt.Sprintf("Claim for %s set to %s", utils.MaskCode(winner.Code), status))
	slog.Info("Claim status updated", "winnerId", winnerID, "status", status, "actor", actor)
	return winner, nil
}

// --- Helper Functions for Draw Execution ---

// pickerForDraw builds the entropy source for a draw from its entropy mode.
// BEACON draws resolve the pulse here, at execution time, and record the
// round and derived seed on the draw for later replay.
func (s *DrawServiceImpl) pickerForDraw(ctx context.Context, draw *models.Draw) (*randpick.Picker, error) {
	switch draw.EntropyMode {
	case models.EntropyCrypto:
		draw.ExecutionLog = append(draw.ExecutionLog, "Entropy: system entropy pool")
		return randpick.NewCrypto(), nil
	case models.EntropySeeded:
		draw.ExecutionLog = append(draw.ExecutionLog, fmt.Sprintf("Entropy: seeded (seed %d)", draw.Seed))
		return randpick.NewSeeded(draw.Seed), nil
	case models.EntropyBeacon:
		pulse, err := s.pulseSource.LatestPulse(ctx)
		if err != nil {
			draw.ExecutionLog = append(draw.ExecutionLog, "Failed to fetch beacon pulse")
			return nil, fmt.Errorf("failed to fetch beacon pulse: %w", err)
		}
		draw.BeaconRound = pulse.Round
		draw.Seed = pulse.Seed
		draw.ExecutionLog = append(draw.ExecutionLog, fmt.Sprintf("Entropy: beacon round %d", pulse.Round))
		return randpick.NewSeeded(pulse.Seed), nil
	default:
		return nil, fmt.Errorf("unknown entropy mode %q", draw.EntropyMode)
	}
}

// createWeightedPool creates a slice where each entry appears once per
// ticket it holds. Entries without tickets still get one slot.
func createWeightedPool(entries []*models.Entry) []*models.Entry {
	var weightedPool []*models.Entry
	for _, entry := range entries {
		weight := entry.Tickets
		if weight <= 0 {
			weight = 1
		}
		for i := 0; i < weight; i++ {
			weightedPool = append(weightedPool, entry)
		}
	}
	return weightedPool
}

// selectWeightedWinner draws one entry from the weighted pool and returns it
// together with the pool stripped of all that entry's tickets
func selectWeightedWinner(picker *randpick.Picker, weightedPool []*models.Entry) (*models.Entry, []*models.Entry, error) {
	if len(weightedPool) == 0 {
		return nil, weightedPool, errors.New("weighted pool is empty")
	}

	// Pick returns a 1-based position in the pool
	position, err := picker.Pick(len(weightedPool))
	if err != nil {
		return nil, weightedPool, err
	}
	winner := weightedPool[position-1]

	var remainingPool []*models.Entry
	for _, entry := range weightedPool {
		if entry.ID != winner.ID {
			remainingPool = append(remainingPool, entry)
		}
	}

	return winner, remainingPool, nil
}

// notifyWinners delivers win notifications one by one. Delivery failures are
// logged on the draw and never fail the execution.
func (s *DrawServiceImpl) notifyWinners(ctx context.Context, draw *models.Draw, winners []*models.Winner) {
	for _, winner := range winners {
		deliveryID, err := s.notifier.NotifyWinner(ctx, notify.Notification{
			Code:        winner.Code,
			DrawName:    draw.Name,
			PrizeTier:   winner.PrizeTier,
			PrizeAmount: winner.PrizeAmount,
			WinDate:     winner.WinDate,
		})
		if err != nil {
			slog.Error("Failed to notify winner", "error", err, "drawId", draw.ID, "code", utils.MaskCode(winner.Code))
			draw.ExecutionLog = append(draw.ExecutionLog, fmt.Sprintf("ERROR notifying %s: %s", utils.MaskCode(winner.Code), err.Error()))
			continue
		}

		winner.NotifiedAt = time.Now()
		if err := s.winnerRepo.Update(ctx, winner); err != nil {
			slog.Error("Failed to record notification time", "error", err, "winnerId", winner.ID)
		}
		draw.ExecutionLog = append(draw.ExecutionLog, fmt.Sprintf("Notified %s (delivery %s)", utils.MaskCode(winner.Code), deliveryID))
	}
}

// publishOutcome emits the terminal event for a draw execution
func (s *DrawServiceImpl) publishOutcome(ctx context.Context, draw *models.Draw) {
	event := events.Event{
		At: time.Now(),
		Payload: map[string]interface{}{
			"drawId":     draw.ID.Hex(),
			"name":       draw.Name,
			"numWinners": draw.NumWinners,
		},
	}
	switch draw.Status {
	case models.DrawStatusCompleted:
		event.Type = events.TypeDrawCompleted
		s.auditService.Record(ctx, models.AuditDrawExecuted, "system", draw.ID,
			fmt.Sprintf("Draw %q completed with %d winners", draw.Name, draw.NumWinners))
	case models.DrawStatusFailed:
		event.Type = events.TypeDrawFailed
		event.Payload["error"] = draw.ErrorMessage
		s.auditService.Record(ctx, models.AuditDrawFailed, "system", draw.ID,
			fmt.Sprintf("Draw %q failed: %s", draw.Name, draw.ErrorMessage))
	default:
		return
	}
	s.publisher.Publish(event)
}

// validatePrizes checks a prize structure for empty tiers, duplicate tier
// names and non-positive winner counts
func validatePrizes(prizes []models.Prize) error {
	if len(prizes) == 0 {
		return errors.New("at least one prize tier is required")
	}
	seen := make(map[string]bool, len(prizes))
	for _, prize := range prizes {
		if prize.Tier == "" {
			return errors.New("prize tier name must not be empty")
		}
		if seen[prize.Tier] {
			return fmt.Errorf("duplicate prize tier %q", prize.Tier)
		}
		seen[prize.Tier] = true
		if prize.NumWinners < 1 {
			return fmt.Errorf("prize tier %q must have at least one winner", prize.Tier)
		}
		if prize.Amount < 0 {
			return fmt.Errorf("prize tier %q must not have a negative amount", prize.Tier)
		}
	}
	return nil
}
