package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/briarwood/studio-scheduler/internal/loader"
	"github.com/briarwood/studio-scheduler/internal/models"
	"github.com/briarwood/studio-scheduler/internal/scheduling"
	appErrors "github.com/briarwood/studio-scheduler/pkg/errors"
)

var appErrCacheMiss = appErrors.ErrCacheMiss

type roomTimeClassSourceStub struct {
	records []loader.ClassRecord
	calls   *int
}

func (s roomTimeClassSourceStub) ListClasses(ctx context.Context, termID string) ([]loader.ClassRecord, error) {
	if s.calls != nil {
		*s.calls++
	}
	return s.records, nil
}

// inMemoryCacheRepoStub is a tiny in-process stand-in for
// repository.CacheRepository, round-tripping values through JSON the same
// way the Redis-backed implementation does.
type inMemoryCacheRepoStub struct {
	values map[string][]byte
}

func newInMemoryCacheRepoStub() *inMemoryCacheRepoStub {
	return &inMemoryCacheRepoStub{values: make(map[string][]byte)}
}

func (c *inMemoryCacheRepoStub) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := c.values[key]
	if !ok {
		return appErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *inMemoryCacheRepoStub) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = raw
	return nil
}

func (c *inMemoryCacheRepoStub) DeleteByPattern(ctx context.Context, pattern string) error {
	delete(c.values, pattern)
	return nil
}

type roomTimeRoomSourceStub struct {
	rooms        []loader.RoomRecord
	availability []loader.AvailabilityWindow
}

func (s roomTimeRoomSourceStub) ListRooms(ctx context.Context) ([]loader.RoomRecord, error) {
	return s.rooms, nil
}

func (s roomTimeRoomSourceStub) ListRoomAvailability(ctx context.Context) ([]loader.AvailabilityWindow, error) {
	return s.availability, nil
}

type roomTimePreferenceSourceStub struct {
	records []loader.PreferenceRecord
}

func (s roomTimePreferenceSourceStub) ListClassPreferences(ctx context.Context, termID string) ([]loader.PreferenceRecord, error) {
	return s.records, nil
}

type roomTimeTeacherSourceStub struct {
	specs        []loader.SpecializationRecord
	availability []loader.AvailabilityWindow
}

func (s roomTimeTeacherSourceStub) ListTeacherSpecializations(ctx context.Context) ([]loader.SpecializationRecord, error) {
	return s.specs, nil
}

func (s roomTimeTeacherSourceStub) ListTeacherAvailability(ctx context.Context) ([]loader.AvailabilityWindow, error) {
	return s.availability, nil
}

type roomTimeSemesterRepoStub struct {
	created []*models.SemesterSchedule
}

func (s *roomTimeSemesterRepoStub) CreateVersioned(ctx context.Context, exec sqlx.ExtContext, schedule *models.SemesterSchedule) error {
	s.created = append(s.created, schedule)
	return nil
}

func (s *roomTimeSemesterRepoStub) FindByID(ctx context.Context, id string) (*models.SemesterSchedule, error) {
	for _, sched := range s.created {
		if sched.ID == id {
			return sched, nil
		}
	}
	return nil, nil
}

type roomTimeSlotRepoStub struct {
	saved []models.RoomTimeSlot
}

func (s *roomTimeSlotRepoStub) UpsertBatch(ctx context.Context, exec sqlx.ExtContext, slots []models.RoomTimeSlot) error {
	s.saved = append(s.saved, slots...)
	return nil
}

func (s *roomTimeSlotRepoStub) ListBySchedule(ctx context.Context, scheduleID string) ([]models.RoomTimeSlot, error) {
	var out []models.RoomTimeSlot
	for _, sl := range s.saved {
		if sl.SemesterScheduleID == scheduleID {
			out = append(out, sl)
		}
	}
	return out, nil
}

func newRoomTimeServiceFixture() (*RoomTimeService, *roomTimeSemesterRepoStub, *roomTimeSlotRepoStub) {
	classes := roomTimeClassSourceStub{records: []loader.ClassRecord{
		{ID: "class-1", Name: "Ballet I", Style: "ballet", Level: 1, AgeStart: 6, AgeEnd: 10, DurationMinutes: 60},
	}}
	rooms := roomTimeRoomSourceStub{
		rooms: []loader.RoomRecord{{ID: "room-1", Name: "Studio A"}},
		availability: []loader.AvailabilityWindow{
			{OwnerID: "room-1", DayOfWeek: "monday", TimeRange: "09:00-17:00"},
		},
	}
	prefs := roomTimePreferenceSourceStub{}
	teachers := roomTimeTeacherSourceStub{}
	semesters := &roomTimeSemesterRepoStub{}
	placements := &roomTimeSlotRepoStub{}

	svc := NewRoomTimeService(classes, rooms, prefs, teachers, semesters, placements, nil, validator.New(), zap.NewNop(), RoomTimeGeneratorConfig{}, nil, nil)
	return svc, semesters, placements
}

func TestRoomTimeServiceGeneratePlacesClass(t *testing.T) {
	svc, _, _ := newRoomTimeServiceFixture()

	proposal, err := svc.Generate(context.Background(), "term-1", false)
	require.NoError(t, err)
	require.Equal(t, "term-1", proposal.TermID)
	require.Equal(t, 1, proposal.Output.Stats.Total)
	require.Len(t, proposal.Output.Scheduled, 0, "teacher assignment not requested, so nothing reaches Output.Scheduled yet")
}

func TestRoomTimeServiceSavePersistsSchedule(t *testing.T) {
	svc, semesters, placements := newRoomTimeServiceFixture()

	proposal, err := svc.Generate(context.Background(), "term-1", false)
	require.NoError(t, err)

	schedule, err := svc.Save(context.Background(), proposal.ProposalID)
	require.NoError(t, err)
	require.Len(t, semesters.created, 1)
	require.Equal(t, "term-1", schedule.TermID)
	_ = placements

	_, stillCached := svc.store.Get(proposal.ProposalID)
	require.False(t, stillCached, "Save should evict the proposal from the cache")
}

func TestRoomTimeServiceSaveUnknownProposal(t *testing.T) {
	svc, _, _ := newRoomTimeServiceFixture()

	_, err := svc.Save(context.Background(), "does-not-exist")
	require.Error(t, err)
}

func TestRoomTimeServiceCachesPhase1Run(t *testing.T) {
	calls := 0
	classes := roomTimeClassSourceStub{
		calls: &calls,
		records: []loader.ClassRecord{
			{ID: "class-1", Name: "Ballet I", Style: "ballet", Level: 1, AgeStart: 6, AgeEnd: 10, DurationMinutes: 60},
		},
	}
	rooms := roomTimeRoomSourceStub{
		rooms: []loader.RoomRecord{{ID: "room-1", Name: "Studio A"}},
		availability: []loader.AvailabilityWindow{
			{OwnerID: "room-1", DayOfWeek: "monday", TimeRange: "09:00-17:00"},
		},
	}
	cacheRepo := newInMemoryCacheRepoStub()
	cacheSvc := NewCacheService(cacheRepo, nil, time.Minute, zap.NewNop(), true)

	svc := NewRoomTimeService(classes, rooms, roomTimePreferenceSourceStub{}, roomTimeTeacherSourceStub{}, &roomTimeSemesterRepoStub{}, &roomTimeSlotRepoStub{}, nil, validator.New(), zap.NewNop(), RoomTimeGeneratorConfig{}, cacheSvc, nil)

	_, err := svc.Generate(context.Background(), "term-1", false)
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	_, err = svc.Generate(context.Background(), "term-1", false)
	require.NoError(t, err)
	require.Equal(t, 1, calls, "second Generate for the same term should be served from cache")
}

func TestRoomTimeServiceRunGuardedPassesThroughResult(t *testing.T) {
	svc := &RoomTimeService{guard: time.Hour}
	out, err := svc.runGuarded(func() (scheduling.Output, error) {
		return scheduling.Output{Stats: scheduling.Stats{Total: 3}}, nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, out.Stats.Total)
}

func TestRoomTimeServiceRunGuardedTimesOut(t *testing.T) {
	svc := &RoomTimeService{guard: 5 * time.Millisecond}
	_, err := svc.runGuarded(func() (scheduling.Output, error) {
		time.Sleep(50 * time.Millisecond)
		return scheduling.Output{}, nil
	})
	require.Error(t, err)
}

func TestRoomTimeServiceRunGuardedDisabledRunsDirectly(t *testing.T) {
	svc := &RoomTimeService{}
	out, err := svc.runGuarded(func() (scheduling.Output, error) {
		return scheduling.Output{Stats: scheduling.Stats{Total: 1}}, nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, out.Stats.Total)
}
