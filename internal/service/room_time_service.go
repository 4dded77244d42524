package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/briarwood/studio-scheduler/internal/loader"
	"github.com/briarwood/studio-scheduler/internal/models"
	"github.com/briarwood/studio-scheduler/internal/scheduling"
	appErrors "github.com/briarwood/studio-scheduler/pkg/errors"
	"github.com/briarwood/studio-scheduler/pkg/export"
)

// roomTimeSemesterRepository is the subset of SemesterScheduleRepository the
// room-time service needs.
type roomTimeSemesterRepository interface {
	CreateVersioned(ctx context.Context, exec sqlx.ExtContext, schedule *models.SemesterSchedule) error
	FindByID(ctx context.Context, id string) (*models.SemesterSchedule, error)
}

// roomTimeSlotRepository is the subset of PlacementRepository the service
// needs, named separately so it can be mocked without pulling in sqlx.
type roomTimeSlotRepository interface {
	UpsertBatch(ctx context.Context, exec sqlx.ExtContext, slots []models.RoomTimeSlot) error
	ListBySchedule(ctx context.Context, scheduleID string) ([]models.RoomTimeSlot, error)
}

type roomTimeTxProvider interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// RoomTimeGeneratorConfig governs proposal caching and the run guard.
type RoomTimeGeneratorConfig struct {
	ProposalTTL time.Duration
	// RunGuard bounds the wall-clock duration of a single scheduling.Run or
	// scheduling.AssignTeachers call. Zero disables the guard.
	RunGuard time.Duration
}

// RoomTimeService runs the two-phase room-time/teacher scheduler over a
// term's studio classes and caches the resulting proposal in an
// addressable, TTL-bound store, before an explicit Save persists it as a
// versioned SemesterSchedule.
type RoomTimeService struct {
	classes     loader.ClassSource
	rooms       loader.RoomSource
	prefs       loader.PreferenceSource
	teachers    loader.TeacherSource
	semesters   roomTimeSemesterRepository
	placements  roomTimeSlotRepository
	tx          roomTimeTxProvider
	validator   *validator.Validate
	logger      *zap.Logger
	store       *roomTimeProposalStore
	pdf         pdfRenderer
	cache       *CacheService
	metrics     *MetricsService
	guard       time.Duration
}

// NewRoomTimeService wires the room-time scheduler's dependencies with the
// same nil-fallback constructor shape used across this package's services.
// cache is optional (nil or disabled: every call falls through to the
// repositories).
func NewRoomTimeService(
	classes loader.ClassSource,
	rooms loader.RoomSource,
	prefs loader.PreferenceSource,
	teachers loader.TeacherSource,
	semesters roomTimeSemesterRepository,
	placements roomTimeSlotRepository,
	tx roomTimeTxProvider,
	validate *validator.Validate,
	logger *zap.Logger,
	cfg RoomTimeGeneratorConfig,
	cache *CacheService,
	metrics *MetricsService,
) *RoomTimeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ProposalTTL <= 0 {
		cfg.ProposalTTL = 30 * time.Minute
	}
	return &RoomTimeService{
		classes:    classes,
		rooms:      rooms,
		prefs:      prefs,
		teachers:   teachers,
		semesters:  semesters,
		placements: placements,
		tx:         tx,
		validator:  validate,
		logger:     logger,
		store:      newRoomTimeProposalStore(cfg.ProposalTTL),
		pdf:        export.NewPDFExporter(),
		cache:      cache,
		metrics:    metrics,
		guard:      cfg.RunGuard,
	}
}

// roomTimeScheduleClassID is the sentinel class_id a whole-term room-time
// run is stored under: CreateVersioned's row is still keyed per class-term
// pair, but one room-time run covers every class in the term at once, so
// there is no single class to key it by.
const roomTimeScheduleClassID = "__room_time__"

// RoomTimeProposal is the cached result of one Run, addressable by
// ProposalID until it is saved or its TTL expires.
type RoomTimeProposal struct {
	ProposalID   string
	TermID       string
	Output       scheduling.Output
	ClassTable   *IDTable
	RoomTable    *IDTable
	TeacherTable *IDTable
	RequestedAt  time.Time
}

// Generate loads a term's input contract and runs the scheduler, caching
// the result for a subsequent AssignTeachers/Save call.
func (s *RoomTimeService) Generate(ctx context.Context, termID string, assignTeachers bool) (RoomTimeProposal, error) {
	out, classTable, roomTable, err := s.runPhase1(ctx, termID)
	if err != nil {
		return RoomTimeProposal{}, err
	}

	proposal := RoomTimeProposal{
		ProposalID:  uuid.NewString(),
		TermID:      termID,
		Output:      out,
		ClassTable:  classTable,
		RoomTable:   roomTable,
		RequestedAt: time.Now().UTC(),
	}

	if assignTeachers {
		assigned, teacherTable, err := s.assignTeachers(ctx, proposal)
		if err != nil {
			return RoomTimeProposal{}, err
		}
		proposal.Output = assigned
		proposal.TeacherTable = teacherTable
	}

	s.store.Save(proposal)
	return proposal, nil
}

// AssignTeachers runs phase 2 over a cached phase-1 proposal.
func (s *RoomTimeService) AssignTeachers(ctx context.Context, proposalID string) (RoomTimeProposal, error) {
	proposal, ok := s.store.Get(proposalID)
	if !ok {
		return RoomTimeProposal{}, appErrors.New(appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "proposal not found or expired")
	}

	assigned, teacherTable, err := s.assignTeachers(ctx, proposal)
	if err != nil {
		return RoomTimeProposal{}, err
	}
	proposal.Output = assigned
	proposal.TeacherTable = teacherTable
	s.store.Save(proposal)
	return proposal, nil
}

// Save persists a cached proposal as a new versioned SemesterSchedule plus
// its RoomTimeSlot rows, the same two-table write
// SemesterScheduleSlotRepository performs for the existing scheduler.
func (s *RoomTimeService) Save(ctx context.Context, proposalID string) (*models.SemesterSchedule, error) {
	proposal, ok := s.store.Get(proposalID)
	if !ok {
		return nil, appErrors.New(appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "proposal not found or expired")
	}

	schedule := &models.SemesterSchedule{
		ID:      uuid.NewString(),
		TermID:  proposal.TermID,
		ClassID: roomTimeScheduleClassID,
		Status:  models.SemesterScheduleStatusDraft,
	}

	var tx *sqlx.Tx
	var err error
	if s.tx != nil {
		tx, err = s.tx.BeginTxx(ctx, nil)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "begin save transaction")
		}
		defer func() { _ = tx.Rollback() }()
	}

	if err := s.semesters.CreateVersioned(ctx, tx, schedule); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "persist semester schedule")
	}

	slots := make([]models.RoomTimeSlot, 0, len(proposal.Output.Scheduled))
	for _, p := range proposal.Output.Scheduled {
		classID, _ := proposal.ClassTable.ExtOf(p.ClassID)
		roomID, _ := proposal.RoomTable.ExtOf(p.RoomID)
		slot := models.RoomTimeSlot{
			SemesterScheduleID: schedule.ID,
			StudioClassID:      classID,
			RoomID:             roomID,
			DayOfWeek:          int(p.Day),
			StartSlot:          int(p.StartSlot),
			EndSlot:            int(p.EndSlot),
		}
		if p.TeacherID != nil && proposal.TeacherTable != nil {
			if teacherExtID, ok := proposal.TeacherTable.ExtOf(*p.TeacherID); ok {
				slot.TeacherID = &teacherExtID
			}
		}
		slots = append(slots, slot)
	}
	if err := s.placements.UpsertBatch(ctx, tx, slots); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "persist room time slots")
	}

	if tx != nil {
		if err := tx.Commit(); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "commit save transaction")
		}
	}

	s.store.Delete(proposalID)
	return schedule, nil
}

// GetSlots returns the persisted placements for a saved schedule.
func (s *RoomTimeService) GetSlots(ctx context.Context, scheduleID string) ([]models.RoomTimeSlot, error) {
	slots, err := s.placements.ListBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "list room time slots")
	}
	return slots, nil
}

// AuditFinding is the display-ready form of a scheduling.Conflict, with
// ids resolved back to the studio_class_id/room_id values the caller
// already recognises.
type AuditFinding struct {
	ClassAID  string `json:"class_a_id"`
	ClassBID  string `json:"class_b_id"`
	RoomAID   string `json:"room_a_id"`
	RoomBID   string `json:"room_b_id"`
	DayOfWeek int    `json:"day_of_week"`
	StartA    int    `json:"start_a"`
	EndA      int    `json:"end_a"`
	StartB    int    `json:"start_b"`
	EndB      int    `json:"end_b"`
}

// Audit re-derives conflicts from a saved schedule's persisted slots,
// the same "trust nothing, recompute" check scheduling.AuditConflicts
// performs over a fresh run's placements.
func (s *RoomTimeService) Audit(ctx context.Context, scheduleID string) ([]AuditFinding, error) {
	slots, err := s.placements.ListBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "list room time slots")
	}
	if len(slots) == 0 {
		return nil, nil
	}

	roomRecords, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load rooms")
	}
	roomIDs := make([]string, len(roomRecords))
	for i, r := range roomRecords {
		roomIDs[i] = r.ID
	}
	roomTable := newIDTable(roomIDs)

	schedRooms := make([]scheduling.Room, 0, len(roomRecords))
	for _, r := range roomRecords {
		id, _ := roomTable.IntOf(r.ID)
		schedRooms = append(schedRooms, scheduling.Room{
			RoomID:             id,
			Name:               r.Name,
			IsCombined:         r.IsCombined,
			ComponentRoomNames: r.ComponentRoomNames,
		})
	}
	graph, err := scheduling.NewAccordionGraph(schedRooms)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "rebuild room graph")
	}

	classIDs := make([]string, 0, len(slots))
	seenClass := make(map[string]bool, len(slots))
	for _, sl := range slots {
		if !seenClass[sl.StudioClassID] {
			seenClass[sl.StudioClassID] = true
			classIDs = append(classIDs, sl.StudioClassID)
		}
	}
	classTable := newIDTable(classIDs)

	placements := make([]scheduling.Placement, 0, len(slots))
	for _, sl := range slots {
		roomID, ok := roomTable.IntOf(sl.RoomID)
		if !ok {
			continue
		}
		classID, _ := classTable.IntOf(sl.StudioClassID)
		placements = append(placements, scheduling.Placement{
			ClassID:   classID,
			RoomID:    roomID,
			Day:       scheduling.DayIndex(sl.DayOfWeek),
			StartSlot: scheduling.SlotIndex(sl.StartSlot),
			EndSlot:   scheduling.SlotIndex(sl.EndSlot),
		})
	}

	conflicts := scheduling.AuditConflicts(placements, graph)
	findings := make([]AuditFinding, 0, len(conflicts))
	for _, c := range conflicts {
		classA, _ := classTable.ExtOf(c.A.ClassID)
		classB, _ := classTable.ExtOf(c.B.ClassID)
		roomA, _ := roomTable.ExtOf(c.A.RoomID)
		roomB, _ := roomTable.ExtOf(c.B.RoomID)
		findings = append(findings, AuditFinding{
			ClassAID:  classA,
			ClassBID:  classB,
			RoomAID:   roomA,
			RoomBID:   roomB,
			DayOfWeek: int(c.A.Day),
			StartA:    int(c.A.StartSlot),
			EndA:      int(c.A.EndSlot),
			StartB:    int(c.B.StartSlot),
			EndB:      int(c.B.EndSlot),
		})
	}
	return findings, nil
}

// ExportPDF renders a saved schedule's slots as the printable grid studios
// post in the hallway, reusing PDFExporter.
func (s *RoomTimeService) ExportPDF(ctx context.Context, scheduleID string) ([]byte, error) {
	schedule, err := s.semesters.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load semester schedule")
	}
	slots, err := s.placements.ListBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "list room time slots")
	}

	classRecords, err := s.classes.ListClasses(ctx, schedule.TermID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load studio classes")
	}
	roomRecords, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load rooms")
	}

	labels := export.RoomTimeLabels{
		ClassNames: make(map[string]string, len(classRecords)),
		RoomNames:  make(map[string]string, len(roomRecords)),
	}
	for _, c := range classRecords {
		labels.ClassNames[c.ID] = c.Name
	}
	for _, r := range roomRecords {
		labels.RoomNames[r.ID] = r.Name
	}

	dataset := export.BuildRoomTimeDataset(slots, labels)
	payload, err := s.pdf.Render(dataset, fmt.Sprintf("Room-Time Schedule %s", schedule.TermID))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render schedule pdf")
	}
	return payload, nil
}

// roomTimePhase1Cache is the cached shape of a phase-1 run: the scheduling
// output plus the two id tables' sorted external-id lists, which is enough
// to reconstruct equivalent IDTables (newIDTable is a deterministic sort)
// without re-querying or re-placing on a cache hit.
type roomTimePhase1Cache struct {
	Output   scheduling.Output
	ClassIDs []string
	RoomIDs  []string
}

func roomTimePhase1CacheKey(termID string) string {
	return "room_time:phase1:" + termID
}

func (s *RoomTimeService) runPhase1(ctx context.Context, termID string) (scheduling.Output, *IDTable, *IDTable, error) {
	if s.cache.Enabled() {
		var cached roomTimePhase1Cache
		if hit, err := s.cache.Get(ctx, roomTimePhase1CacheKey(termID), &cached); err == nil && hit {
			return cached.Output, newIDTable(cached.ClassIDs), newIDTable(cached.RoomIDs), nil
		}
	}

	classRecords, err := s.classes.ListClasses(ctx, termID)
	if err != nil {
		return scheduling.Output{}, nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load studio classes")
	}
	roomRecords, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return scheduling.Output{}, nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load rooms")
	}
	roomAvail, err := s.rooms.ListRoomAvailability(ctx)
	if err != nil {
		return scheduling.Output{}, nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load room availability")
	}
	prefRecords, err := s.prefs.ListClassPreferences(ctx, termID)
	if err != nil {
		return scheduling.Output{}, nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load class preferences")
	}

	in, classTable, roomTable, err := assembleInput(classRecords, roomRecords, roomAvail, nil, prefRecords, nil, nil)
	if err != nil {
		return scheduling.Output{}, nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "malformed scheduling input")
	}

	runStart := time.Now()
	out, err := s.runGuarded(func() (scheduling.Output, error) { return scheduling.Run(in) })
	s.metrics.ObserveRunDuration("room_time", time.Since(runStart))
	if err != nil {
		switch err.(type) {
		case *scheduling.InputError:
			return scheduling.Output{}, nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid scheduling input")
		default:
			s.logger.Error("room-time scheduler invariant violation", zap.Error(err), zap.String("term_id", termID))
			return scheduling.Output{}, nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "scheduler invariant violation")
		}
	}

	for i := 0; i < len(out.Scheduled); i++ {
		s.metrics.RecordPlacementAttempt(true)
	}
	for i := 0; i < len(out.Unscheduled); i++ {
		s.metrics.RecordPlacementAttempt(false)
	}
	if out.Stats.Total > 0 {
		s.metrics.SetScheduledRate(float64(len(out.Scheduled)) / float64(out.Stats.Total))
	}

	if s.cache.Enabled() {
		cached := roomTimePhase1Cache{Output: out, ClassIDs: classTable.toExt, RoomIDs: roomTable.toExt}
		if err := s.cache.Set(ctx, roomTimePhase1CacheKey(termID), cached, 0); err != nil {
			s.logger.Warn("room-time phase-1 cache write failed", zap.Error(err), zap.String("term_id", termID))
		}
	}

	return out, classTable, roomTable, nil
}

// runGuarded bounds fn by the configured wall-clock guard. scheduling.Run
// has no context parameter, so the guard races fn against a timer instead
// of cancelling it; a timed-out run's goroutine is abandoned to finish on
// its own and its result discarded.
func (s *RoomTimeService) runGuarded(fn func() (scheduling.Output, error)) (scheduling.Output, error) {
	if s.guard <= 0 {
		return fn()
	}

	type result struct {
		out scheduling.Output
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := fn()
		done <- result{out, err}
	}()

	select {
	case r := <-done:
		return r.out, r.err
	case <-time.After(s.guard):
		return scheduling.Output{}, fmt.Errorf("room-time run exceeded wall-clock guard of %s", s.guard)
	}
}

func (s *RoomTimeService) assignTeachers(ctx context.Context, proposal RoomTimeProposal) (scheduling.Output, *IDTable, error) {
	specRecords, err := s.teachers.ListTeacherSpecializations(ctx)
	if err != nil {
		return scheduling.Output{}, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load teacher specializations")
	}
	availRecords, err := s.teachers.ListTeacherAvailability(ctx)
	if err != nil {
		return scheduling.Output{}, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load teacher availability")
	}
	prefRecords, err := s.prefs.ListClassPreferences(ctx, proposal.TermID)
	if err != nil {
		return scheduling.Output{}, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load class preferences")
	}

	teacherIDs := distinctTeacherIDs(specRecords, availRecords, prefRecords)
	teacherTable := newIDTable(teacherIDs)

	classByID := make(map[int]scheduling.Class, len(proposal.ClassTable.toExt))

	teacherAvailability, err := expandTeacherWindows(availRecords, teacherTable)
	if err != nil {
		return scheduling.Output{}, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "malformed teacher availability")
	}
	classPreferences, err := assemblePreferences(prefRecords, proposal.ClassTable, proposal.RoomTable, teacherTable)
	if err != nil {
		return scheduling.Output{}, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "malformed class preferences")
	}
	teacherSpecializations := assembleSpecializations(specRecords, teacherTable)

	classes, err := s.classes.ListClasses(ctx, proposal.TermID)
	if err != nil {
		return scheduling.Output{}, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load studio classes")
	}
	for _, c := range classes {
		id, ok := proposal.ClassTable.IntOf(c.ID)
		if !ok {
			continue
		}
		classByID[id] = scheduling.Class{
			ClassID:       id,
			Name:          c.Name,
			Style:         c.Style,
			Level:         c.Level,
			AgeStart:      c.AgeStart,
			AgeEnd:        c.AgeEnd,
			DurationSlots: scheduling.DurationSlots(float64(c.DurationMinutes) / 60),
		}
	}

	runStart := time.Now()
	guarded, err := s.runGuarded(func() (scheduling.Output, error) {
		a, u := scheduling.AssignTeachers(proposal.Output.Scheduled, classByID, teacherIDsAsInts(teacherTable), teacherAvailability, classPreferences, teacherSpecializations)
		return scheduling.Output{Scheduled: a, Unscheduled: u}, nil
	})
	s.metrics.ObserveRunDuration("teacher_assignment", time.Since(runStart))
	if err != nil {
		return scheduling.Output{}, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "teacher assignment exceeded wall-clock guard")
	}
	assigned, unscheduled := guarded.Scheduled, guarded.Unscheduled

	for i := 0; i < len(unscheduled); i++ {
		s.metrics.RecordTeacherAssignmentMiss()
	}

	allUnscheduled := append(append([]scheduling.Unscheduled{}, proposal.Output.Unscheduled...), unscheduled...)
	stats := scheduling.ReportStats(proposal.Output.Stats.Total, assigned, allUnscheduled)

	return scheduling.Output{
		Scheduled:   assigned,
		Unscheduled: allUnscheduled,
		Stats:       stats,
	}, teacherTable, nil
}

func distinctTeacherIDs(specs []loader.SpecializationRecord, avail []loader.AvailabilityWindow, prefs []loader.PreferenceRecord) []string {
	seen := make(map[string]bool)
	var ids []string
	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	}
	for _, s := range specs {
		add(s.TeacherID)
	}
	for _, w := range avail {
		add(w.OwnerID)
	}
	for _, p := range prefs {
		if p.Kind == "teacher" {
			add(p.Value)
		}
	}
	return ids
}

func teacherIDsAsInts(table *IDTable) []int {
	ids := make([]int, len(table.toExt))
	for i := range table.toExt {
		ids[i] = i + 1
	}
	return ids
}

// --- Proposal cache ---

type roomTimeProposalStore struct {
	ttl   time.Duration
	mu    sync.RWMutex
	items map[string]RoomTimeProposal
}

func newRoomTimeProposalStore(ttl time.Duration) *roomTimeProposalStore {
	return &roomTimeProposalStore{ttl: ttl, items: make(map[string]RoomTimeProposal)}
}

func (s *roomTimeProposalStore) Save(p RoomTimeProposal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[p.ProposalID] = p
}

func (s *roomTimeProposalStore) Get(id string) (RoomTimeProposal, bool) {
	s.mu.RLock()
	p, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return RoomTimeProposal{}, false
	}
	if time.Since(p.RequestedAt) > s.ttl {
		s.Delete(id)
		return RoomTimeProposal{}, false
	}
	return p, true
}

func (s *roomTimeProposalStore) Delete(id string) {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
}
