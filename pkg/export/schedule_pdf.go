package export

import (
	"fmt"
	"sort"

	"github.com/briarwood/studio-scheduler/internal/models"
	"github.com/briarwood/studio-scheduler/internal/scheduling"
)

// RoomTimeLabels resolves the ids a RoomTimeSlot carries into the display
// names the grid export prints, since the slot rows themselves only carry
// foreign keys.
type RoomTimeLabels struct {
	ClassNames   map[string]string
	RoomNames    map[string]string
	TeacherNames map[string]string
}

func (l RoomTimeLabels) classLabel(id string) string {
	if name, ok := l.ClassNames[id]; ok {
		return name
	}
	return id
}

func (l RoomTimeLabels) roomLabel(id string) string {
	if name, ok := l.RoomNames[id]; ok {
		return name
	}
	return id
}

func (l RoomTimeLabels) teacherLabel(id *string) string {
	if id == nil {
		return "unassigned"
	}
	if name, ok := l.TeacherNames[*id]; ok {
		return name
	}
	return *id
}

// BuildRoomTimeDataset flattens a schedule's slots into the day/time/room
// grid PDFExporter already knows how to render.
func BuildRoomTimeDataset(slots []models.RoomTimeSlot, labels RoomTimeLabels) Dataset {
	sorted := append([]models.RoomTimeSlot(nil), slots...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].DayOfWeek != sorted[j].DayOfWeek {
			return sorted[i].DayOfWeek < sorted[j].DayOfWeek
		}
		return sorted[i].StartSlot < sorted[j].StartSlot
	})

	data := Dataset{Headers: []string{"Day", "Time", "Class", "Room", "Teacher"}}
	for _, s := range sorted {
		row := map[string]string{
			"Day":     scheduling.DayName(scheduling.DayIndex(s.DayOfWeek)),
			"Time":    fmt.Sprintf("%s-%s", scheduling.FormatClockTime(scheduling.SlotIndex(s.StartSlot)), scheduling.FormatClockTime(scheduling.SlotIndex(s.EndSlot))),
			"Class":   labels.classLabel(s.StudioClassID),
			"Room":    labels.roomLabel(s.RoomID),
			"Teacher": labels.teacherLabel(s.TeacherID),
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}
