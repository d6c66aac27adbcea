package model

import (
	"log"

	"github.com/samber/lo"
)

type greedyScheduler struct {
}

// NewGreedyScheduler returns the deterministic three-pass scheduler: sections are
// spread over periods round-robin by room-type priority, then rooms and teachers are
// handed out per period. A blocked teacher assignment is repaired by at most one
// single-level swap; sections that still cannot be placed are left partially
// assigned and logged as a warning, never failed.
func NewGreedyScheduler() Scheduler {
	return &greedyScheduler{}
}

func (scheduler *greedyScheduler) Schedule(input ScheduleInput) ([]*Section, error) {
	sections := GenerateSections(input.Units)

	context, err := newSchedulingContext(sections, input.Teachers, input.Rooms)
	if err != nil {
		return nil, err
	}

	assignPeriods(sections, input.Periods, input.RoomTypePriority)
	assignRooms(input.Periods, input.Rooms, input.RoomTypePriority, context)
	assignTeachers(input.Periods, input.UnitPriority, context)

	return sections, nil
}

// assignPeriods spreads sections over periods round-robin, one room-type label at a
// time. The index is shared across labels, so label order biases the spread;
// scarce types are expected first in the priority list. Sections whose type is
// absent from the list are not placed.
func assignPeriods(sections []*Section, periods []*Period, roomTypePriority []string) {
	periodIndex := 0
	for _, roomType := range roomTypePriority {
		for _, section := range sections {
			if section.RoomType != roomType {
				continue
			}
			period := periods[periodIndex%len(periods)]
			period.Sections = append(period.Sections, section)
			section.Period = period
			periodIndex++
		}
	}
}

// assignRooms hands out rooms within each period: for every room-type label, each
// still-free room takes the first roomless section of that type. A room serves at
// most one section per period, and rooms freed later are not revisited.
func assignRooms(periods []*Period, rooms []*Classroom, roomTypePriority []string, context *schedulingContext) {
	for _, period := range periods {
		for _, roomType := range roomTypePriority {
			for _, room := range rooms {
				if !context.roomFree(room, period) {
					continue
				}
				for _, section := range period.Sections {
					if !room.SuitableFor(roomType) || section.RoomType != roomType {
						continue
					}
					if section.Room != nil {
						continue
					}
					context.placeRoom(section, period, room)
					break
				}
			}
		}
	}
}

// assignTeachers fills in teachers period by period: a direct pass in unit-priority
// order first, then a single-level swap repair for any section the direct pass could
// not serve. Sections left without a teacher stay partially assigned.
func assignTeachers(periods []*Period, unitPriority []string, context *schedulingContext) {
	for _, period := range periods {
		for _, section := range prioritizedSections(period.Sections, unitPriority) {
			if section.Teacher != nil {
				continue
			}
			if assignTeacherDirect(section, period, context) {
				continue
			}
			if swapTeacher(section, period, context) {
				continue
			}
			log.Printf("warning: no teacher available for section %v in %v", section.Id, period.Id)
		}
	}
}

// prioritizedSections orders a period's sections by the unit-priority labels;
// sections of unlisted units follow in their original order
func prioritizedSections(sections []*Section, unitPriority []string) []*Section {
	ordered := make([]*Section, 0, len(sections))
	for _, unit := range unitPriority {
		for _, section := range sections {
			if section.Unit == unit {
				ordered = append(ordered, section)
			}
		}
	}
	for _, section := range sections {
		if !lo.Contains(unitPriority, section.Unit) {
			ordered = append(ordered, section)
		}
	}
	return ordered
}

func assignTeacherDirect(section *Section, period *Period, context *schedulingContext) bool {
	for _, teacher := range context.validTeachers[section.Id] {
		if !context.teacherFree(teacher, period) || !context.underLoad(teacher) {
			continue
		}
		context.placeTeacher(section, period, teacher)
		return true
	}
	return false
}

// swapTeacher attempts a single-level repair: a qualified-but-busy teacher is freed
// by moving their conflicting section to an alternate teacher, then takes the
// blocked section. The displaced teacher's net load is unchanged. Only one level of
// displacement is attempted; chains are never followed.
func swapTeacher(section *Section, period *Period, context *schedulingContext) bool {
	for _, busy := range context.validTeachers[section.Id] {
		conflicting := context.teacherBusy[occupancyKey{busy.Name, period.Id}]
		if conflicting == nil {
			continue
		}

		for _, alternate := range context.validTeachers[conflicting.Id] {
			if alternate == busy || !context.teacherFree(alternate, period) || !context.underLoad(alternate) {
				continue
			}

			context.unplaceTeacher(conflicting, period)
			context.placeTeacher(conflicting, period, alternate)
			context.placeTeacher(section, period, busy)
			return true
		}
	}
	return false
}
