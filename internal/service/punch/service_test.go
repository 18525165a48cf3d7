package punch

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/chronotrack/timeclock-backend-go/internal/config"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/ledger"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/pausereason"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedgerRepo is an in-memory ledger.Repository.
type fakeLedgerRepo struct {
	mu      sync.Mutex
	entries []ledger.Entry
}

func (f *fakeLedgerRepo) Insert(ctx context.Context, entry ledger.Entry) (ledger.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry.CreatedAt = time.Now()
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeLedgerRepo) FindLastLive(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (*ledger.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.entries) - 1; i >= 0; i-- {
		e := f.entries[i]
		if e.EmployeeID != employeeID || e.IsCorrection {
			continue
		}
		if e.Timestamp.Before(dayStart) || e.Timestamp.After(dayEnd) {
			continue
		}
		entry := e
		return &entry, nil
	}
	return nil, nil
}

func (f *fakeLedgerRepo) RangeQuery(ctx context.Context, employeeID string, start, end time.Time) ([]ledger.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []ledger.Entry
	for _, e := range f.entries {
		if e.EmployeeID == employeeID && !e.Timestamp.Before(start) && !e.Timestamp.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakePauseReasonRepo knows a fixed set of reasons.
type fakePauseReasonRepo struct {
	reasons map[string]pausereason.PauseReason
}

func (f *fakePauseReasonRepo) Create(ctx context.Context, r pausereason.PauseReason) (pausereason.PauseReason, error) {
	return r, nil
}

func (f *fakePauseReasonRepo) GetByID(ctx context.Context, id string) (pausereason.PauseReason, error) {
	r, ok := f.reasons[id]
	if !ok {
		return pausereason.PauseReason{}, pausereason.ErrPauseReasonNotFound
	}
	return r, nil
}

func (f *fakePauseReasonRepo) List(ctx context.Context) ([]pausereason.PauseReason, error) {
	return nil, nil
}

func (f *fakePauseReasonRepo) Update(ctx context.Context, r pausereason.PauseReason) (pausereason.PauseReason, error) {
	return r, nil
}

func (f *fakePauseReasonRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func testAttendanceConfig() config.AttendanceConfig {
	return config.AttendanceConfig{
		Timezone:             "UTC",
		Location:             time.UTC,
		DailyBaselineMinutes: 480,
		OvertimeMultiplier:   decimal.RequireFromString("1.5"),
		CurrencyMinorUnits:   2,
	}
}

func newTestPunchService() (ledger.PunchService, *fakeLedgerRepo) {
	repo := &fakeLedgerRepo{}
	reasons := &fakePauseReasonRepo{
		reasons: map[string]pausereason.PauseReason{
			"reason-lunch": {ID: "reason-lunch", Name: "Lunch"},
		},
	}
	return NewPunchService(testAttendanceConfig(), repo, reasons), repo
}

func strPtr(s string) *string { return &s }

func submit(t *testing.T, svc ledger.PunchService, employeeID, kind string) (ledger.EntryResponse, error) {
	t.Helper()
	return svc.SubmitPunch(context.Background(), ledger.SubmitPunchRequest{
		EmployeeID: employeeID,
		Kind:       kind,
	})
}

func TestPunchService_Submit_EntryOnFreshDay(t *testing.T) {
	t.Parallel()
	svc, repo := newTestPunchService()

	resp, err := submit(t, svc, "emp-1", "entry")
	require.NoError(t, err)
	assert.Equal(t, "entry", resp.Kind)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.False(t, resp.IsCorrection)
	assert.Len(t, repo.entries, 1)
}

func TestPunchService_Submit_PauseBeforeEntry(t *testing.T) {
	t.Parallel()
	svc, _ := newTestPunchService()

	_, err := svc.SubmitPunch(context.Background(), ledger.SubmitPunchRequest{
		EmployeeID:   "emp-1",
		Kind:         "pause",
		CustomReason: strPtr("coffee"),
	})
	assert.ErrorIs(t, err, ledger.ErrInvalidTransition)
}

func TestPunchService_Submit_ExitBeforeEntry(t *testing.T) {
	t.Parallel()
	svc, _ := newTestPunchService()

	_, err := submit(t, svc, "emp-1", "exit")
	assert.ErrorIs(t, err, ledger.ErrInvalidTransition)
}

func TestPunchService_Submit_DoubleEntry(t *testing.T) {
	t.Parallel()
	svc, _ := newTestPunchService()

	_, err := submit(t, svc, "emp-1", "entry")
	require.NoError(t, err)

	_, err = submit(t, svc, "emp-1", "entry")
	assert.ErrorIs(t, err, ledger.ErrInvalidTransition)
}

func TestPunchService_Submit_PauseWithPredefinedReason(t *testing.T) {
	t.Parallel()
	svc, _ := newTestPunchService()

	_, err := submit(t, svc, "emp-1", "entry")
	require.NoError(t, err)

	resp, err := svc.SubmitPunch(context.Background(), ledger.SubmitPunchRequest{
		EmployeeID:    "emp-1",
		Kind:          "pause",
		PauseReasonID: strPtr("reason-lunch"),
	})
	require.NoError(t, err)
	assert.Equal(t, "pause", resp.Kind)
	require.NotNil(t, resp.PauseReasonID)
	assert.Equal(t, "reason-lunch", *resp.PauseReasonID)
}

func TestPunchService_Submit_PauseWithCustomReason(t *testing.T) {
	t.Parallel()
	svc, _ := newTestPunchService()

	_, err := submit(t, svc, "emp-1", "entry")
	require.NoError(t, err)

	resp, err := svc.SubmitPunch(context.Background(), ledger.SubmitPunchRequest{
		EmployeeID:   "emp-1",
		Kind:         "pause",
		CustomReason: strPtr("doctor appointment"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.CustomReason)
	assert.Equal(t, "doctor appointment", *resp.CustomReason)
}

func TestPunchService_Submit_PauseWithoutJustification(t *testing.T) {
	t.Parallel()
	svc, _ := newTestPunchService()

	_, err := submit(t, svc, "emp-1", "entry")
	require.NoError(t, err)

	_, err = submit(t, svc, "emp-1", "pause")
	assert.ErrorIs(t, err, ledger.ErrMissingJustification)
}

func TestPunchService_Submit_PauseWithBothJustifications(t *testing.T) {
	t.Parallel()
	svc, _ := newTestPunchService()

	_, err := submit(t, svc, "emp-1", "entry")
	require.NoError(t, err)

	_, err = svc.SubmitPunch(context.Background(), ledger.SubmitPunchRequest{
		EmployeeID:    "emp-1",
		Kind:          "pause",
		PauseReasonID: strPtr("reason-lunch"),
		CustomReason:  strPtr("also this"),
	})
	assert.ErrorIs(t, err, ledger.ErrMissingJustification)
}

func TestPunchService_Submit_PauseWithUnknownReason(t *testing.T) {
	t.Parallel()
	svc, repo := newTestPunchService()

	_, err := submit(t, svc, "emp-1", "entry")
	require.NoError(t, err)

	_, err = svc.SubmitPunch(context.Background(), ledger.SubmitPunchRequest{
		EmployeeID:    "emp-1",
		Kind:          "pause",
		PauseReasonID: strPtr("no-such-reason"),
	})
	assert.ErrorIs(t, err, ledger.ErrUnknownPauseReason)
	assert.Len(t, repo.entries, 1)
}

func TestPunchService_Submit_DoublePause(t *testing.T) {
	t.Parallel()
	svc, _ := newTestPunchService()

	_, err := submit(t, svc, "emp-1", "entry")
	require.NoError(t, err)

	_, err = svc.SubmitPunch(context.Background(), ledger.SubmitPunchRequest{
		EmployeeID:   "emp-1",
		Kind:         "pause",
		CustomReason: strPtr("break"),
	})
	require.NoError(t, err)

	_, err = svc.SubmitPunch(context.Background(), ledger.SubmitPunchRequest{
		EmployeeID:   "emp-1",
		Kind:         "pause",
		CustomReason: strPtr("another break"),
	})
	assert.ErrorIs(t, err, ledger.ErrInvalidTransition)
}

func TestPunchService_Submit_ResumeFromPauseThenExit(t *testing.T) {
	t.Parallel()
	svc, _ := newTestPunchService()

	_, err := submit(t, svc, "emp-1", "entry")
	require.NoError(t, err)

	_, err = svc.SubmitPunch(context.Background(), ledger.SubmitPunchRequest{
		EmployeeID:   "emp-1",
		Kind:         "pause",
		CustomReason: strPtr("lunch"),
	})
	require.NoError(t, err)

	_, err = submit(t, svc, "emp-1", "entry")
	require.NoError(t, err)

	_, err = submit(t, svc, "emp-1", "exit")
	require.NoError(t, err)
}

func TestPunchService_Submit_EntryAfterExitSameDay(t *testing.T) {
	t.Parallel()
	svc, _ := newTestPunchService()

	_, err := submit(t, svc, "emp-1", "entry")
	require.NoError(t, err)
	_, err = submit(t, svc, "emp-1", "exit")
	require.NoError(t, err)

	_, err = submit(t, svc, "emp-1", "entry")
	assert.ErrorIs(t, err, ledger.ErrDayClosed)
}

func TestPunchService_Submit_PauseAfterExitSameDay(t *testing.T) {
	t.Parallel()
	svc, _ := newTestPunchService()

	_, err := submit(t, svc, "emp-1", "entry")
	require.NoError(t, err)
	_, err = submit(t, svc, "emp-1", "exit")
	require.NoError(t, err)

	_, err = svc.SubmitPunch(context.Background(), ledger.SubmitPunchRequest{
		EmployeeID:   "emp-1",
		Kind:         "pause",
		CustomReason: strPtr("forgot something"),
	})
	assert.ErrorIs(t, err, ledger.ErrInvalidTransition)
}

func TestPunchService_Submit_EmployeesAreIndependent(t *testing.T) {
	t.Parallel()
	svc, _ := newTestPunchService()

	_, err := submit(t, svc, "emp-1", "entry")
	require.NoError(t, err)
	_, err = submit(t, svc, "emp-1", "exit")
	require.NoError(t, err)

	// emp-2 starts fresh regardless of emp-1's closed day
	_, err = submit(t, svc, "emp-2", "entry")
	assert.NoError(t, err)
}

// referenceAccepts runs the grammar Entry (Pause Entry)* Exit? one step at a
// time: given the last accepted kind it says whether the next one is legal.
func referenceAccepts(last string, next string) bool {
	switch last {
	case "": // no entry yet
		return next == "entry"
	case "entry": // working
		return next == "pause" || next == "exit"
	case "pause": // paused
		return next == "entry" || next == "exit"
	case "exit": // day closed
		return false
	}
	return false
}

func TestPunchService_Submit_AcceptedSequencesMatchGrammar(t *testing.T) {
	t.Parallel()
	kinds := []string{"entry", "pause", "exit"}
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		svc, _ := newTestPunchService()
		last := ""

		for step := 0; step < 12; step++ {
			kind := kinds[rng.Intn(len(kinds))]

			req := ledger.SubmitPunchRequest{EmployeeID: "emp-1", Kind: kind}
			if kind == "pause" {
				req.CustomReason = strPtr("break")
			}

			_, err := svc.SubmitPunch(context.Background(), req)
			if referenceAccepts(last, kind) {
				require.NoError(t, err, "trial %d step %d: %s after %q should be accepted", trial, step, kind, last)
				last = kind
			} else {
				require.Error(t, err, "trial %d step %d: %s after %q should be rejected", trial, step, kind, last)
			}
		}
	}
}

func TestPunchService_Submit_ConcurrentPausesOneWins(t *testing.T) {
	t.Parallel()
	svc, repo := newTestPunchService()

	_, err := submit(t, svc, "emp-1", "entry")
	require.NoError(t, err)

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.SubmitPunch(context.Background(), ledger.SubmitPunchRequest{
				EmployeeID:   "emp-1",
				Kind:         "pause",
				CustomReason: strPtr("race"),
			})
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ledger.ErrInvalidTransition)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Len(t, repo.entries, 2) // entry + the single winning pause
}

func TestPunchService_ListEntries_FiltersByDate(t *testing.T) {
	t.Parallel()
	svc, repo := newTestPunchService()

	today := time.Now().UTC().Format("2006-01-02")
	repo.entries = append(repo.entries,
		ledger.Entry{ID: "a", EmployeeID: "emp-1", Kind: ledger.EntryKindEntry, Timestamp: time.Now().UTC()},
		ledger.Entry{ID: "b", EmployeeID: "emp-1", Kind: ledger.EntryKindExit, Timestamp: time.Now().UTC().AddDate(0, 0, -7)},
	)

	entries, err := svc.ListEntries(context.Background(), ledger.EntriesFilter{
		EmployeeID: "emp-1",
		StartDate:  &today,
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].ID)
}
