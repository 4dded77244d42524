package service

import (
	"fmt"
	"sort"

	"github.com/briarwood/studio-scheduler/internal/loader"
	"github.com/briarwood/studio-scheduler/internal/scheduling"
)

// IDTable assigns stable, sorted integer ids to external (string) ids, the
// same way the scheduling core expects: the wire/storage layer deals in
// UUIDs, the core deals in small dense ints.
type IDTable struct {
	toInt map[string]int
	toExt []string
}

func newIDTable(externalIDs []string) *IDTable {
	sorted := append([]string(nil), externalIDs...)
	sort.Strings(sorted)

	t := &IDTable{toInt: make(map[string]int, len(sorted)), toExt: make([]string, len(sorted))}
	for i, id := range sorted {
		t.toInt[id] = i + 1
		t.toExt[i] = id
	}
	return t
}

func (t *IDTable) IntOf(externalID string) (int, bool) {
	id, ok := t.toInt[externalID]
	return id, ok
}

func (t *IDTable) ExtOf(internalID int) (string, bool) {
	idx := internalID - 1
	if idx < 0 || idx >= len(t.toExt) {
		return "", false
	}
	return t.toExt[idx], true
}

// assembleInput converts loader records into the scheduling core's Input
// contract, resolving external ids and day/time strings along the way.
// Rows that fail to parse are reported as an InputError — the same
// "malformed time string / unknown day name" category spec.md §7 assigns
// to the loader boundary.
func assembleInput(classes []loader.ClassRecord, rooms []loader.RoomRecord, roomAvail, teacherAvail []loader.AvailabilityWindow, prefs []loader.PreferenceRecord, specs []loader.SpecializationRecord, teacherExternalIDs []string) (scheduling.Input, *IDTable, *IDTable, error) {
	classIDs := make([]string, len(classes))
	for i, c := range classes {
		classIDs[i] = c.ID
	}
	classTable := newIDTable(classIDs)

	roomIDs := make([]string, len(rooms))
	for i, r := range rooms {
		roomIDs[i] = r.ID
	}
	roomTable := newIDTable(roomIDs)

	teacherTable := newIDTable(teacherExternalIDs)

	schedClasses := make([]scheduling.Class, 0, len(classes))
	for _, c := range classes {
		id, _ := classTable.IntOf(c.ID)
		schedClasses = append(schedClasses, scheduling.Class{
			ClassID:       id,
			Name:          c.Name,
			Style:         c.Style,
			Level:         c.Level,
			AgeStart:      c.AgeStart,
			AgeEnd:        c.AgeEnd,
			DurationSlots: scheduling.DurationSlots(float64(c.DurationMinutes) / 60),
		})
	}

	schedRooms := make([]scheduling.Room, 0, len(rooms))
	for _, r := range rooms {
		id, _ := roomTable.IntOf(r.ID)
		schedRooms = append(schedRooms, scheduling.Room{
			RoomID:             id,
			Name:               r.Name,
			IsCombined:         r.IsCombined,
			ComponentRoomNames: r.ComponentRoomNames,
		})
	}

	roomAvailability, err := expandRoomWindows(roomAvail, roomTable)
	if err != nil {
		return scheduling.Input{}, nil, nil, err
	}
	teacherAvailability, err := expandTeacherWindows(teacherAvail, teacherTable)
	if err != nil {
		return scheduling.Input{}, nil, nil, err
	}

	classPreferences, err := assemblePreferences(prefs, classTable, roomTable, teacherTable)
	if err != nil {
		return scheduling.Input{}, nil, nil, err
	}

	teacherSpecializations := assembleSpecializations(specs, teacherTable)

	return scheduling.Input{
		Classes:                schedClasses,
		Rooms:                  schedRooms,
		RoomAvailability:       roomAvailability,
		TeacherAvailability:    teacherAvailability,
		ClassPreferences:       classPreferences,
		TeacherSpecializations: teacherSpecializations,
	}, classTable, roomTable, nil
}

func expandRoomWindows(windows []loader.AvailabilityWindow, roomTable *IDTable) (map[scheduling.RoomSlotKey]bool, error) {
	cells := make(map[scheduling.RoomSlotKey]bool)
	for _, w := range windows {
		roomID, ok := roomTable.IntOf(w.OwnerID)
		if !ok {
			continue
		}
		day, slots, err := parseWindow(w)
		if err != nil {
			return nil, err
		}
		for _, s := range slots {
			cells[scheduling.RoomSlotKey{RoomID: roomID, Day: day, Slot: s}] = true
		}
	}
	return cells, nil
}

func expandTeacherWindows(windows []loader.AvailabilityWindow, teacherTable *IDTable) (map[scheduling.TeacherSlotKey]bool, error) {
	cells := make(map[scheduling.TeacherSlotKey]bool)
	for _, w := range windows {
		teacherID, ok := teacherTable.IntOf(w.OwnerID)
		if !ok {
			continue
		}
		day, slots, err := parseWindow(w)
		if err != nil {
			return nil, err
		}
		for _, s := range slots {
			cells[scheduling.TeacherSlotKey{TeacherID: teacherID, Day: day, Slot: s}] = true
		}
	}
	return cells, nil
}

func parseWindow(w loader.AvailabilityWindow) (scheduling.DayIndex, []scheduling.SlotIndex, error) {
	day, ok := scheduling.ParseDay(w.DayOfWeek)
	if !ok {
		return 0, nil, fmt.Errorf("availability window for %q: unknown day %q", w.OwnerID, w.DayOfWeek)
	}
	slots, ok := scheduling.ParseTimeRange(w.TimeRange)
	if !ok {
		return 0, nil, fmt.Errorf("availability window for %q: malformed time range %q", w.OwnerID, w.TimeRange)
	}
	return day, slots, nil
}

func assemblePreferences(prefs []loader.PreferenceRecord, classTable, roomTable, teacherTable *IDTable) (map[int][]scheduling.Preference, error) {
	out := make(map[int][]scheduling.Preference)
	for _, p := range prefs {
		classID, ok := classTable.IntOf(p.ClassID)
		if !ok {
			continue
		}

		switch p.Kind {
		case "room":
			roomID, ok := roomTable.IntOf(p.Value)
			if !ok {
				continue
			}
			out[classID] = append(out[classID], scheduling.Preference{ClassID: classID, Kind: scheduling.PrefRoom, Value: roomID, Weight: p.Weight})
		case "day":
			day, ok := scheduling.ParseDay(p.Value)
			if !ok {
				return nil, fmt.Errorf("class %q day preference: unknown day %q", p.ClassID, p.Value)
			}
			out[classID] = append(out[classID], scheduling.Preference{ClassID: classID, Kind: scheduling.PrefDay, Value: int(day), Weight: p.Weight})
		case "time":
			slots, ok := scheduling.ParseTimeRange(p.Value)
			if !ok {
				return nil, fmt.Errorf("class %q time preference: malformed time range %q", p.ClassID, p.Value)
			}
			for _, s := range slots {
				out[classID] = append(out[classID], scheduling.Preference{ClassID: classID, Kind: scheduling.PrefTime, Value: int(s), Weight: p.Weight})
			}
		case "teacher":
			teacherID, ok := teacherTable.IntOf(p.Value)
			if !ok {
				continue
			}
			out[classID] = append(out[classID], scheduling.Preference{ClassID: classID, Kind: scheduling.PrefTeacher, Value: teacherID, Weight: p.Weight})
		}
	}
	return out, nil
}

func assembleSpecializations(specs []loader.SpecializationRecord, teacherTable *IDTable) map[int][]scheduling.TeacherSpecialization {
	specKindByName := map[string]scheduling.SpecKind{
		"style":     scheduling.SpecStyle,
		"age_group": scheduling.SpecAgeGroup,
		"level":     scheduling.SpecLevel,
		"name":      scheduling.SpecName,
	}

	out := make(map[int][]scheduling.TeacherSpecialization)
	for _, s := range specs {
		teacherID, ok := teacherTable.IntOf(s.TeacherID)
		if !ok {
			continue
		}
		kind, ok := specKindByName[s.Kind]
		if !ok {
			continue
		}
		out[teacherID] = append(out[teacherID], scheduling.TeacherSpecialization{TeacherID: teacherID, Kind: kind, Value: s.Value})
	}
	return out
}
