package model

import "github.com/samber/lo"

// Check validates the no-double-booking invariant over a finished schedule: within
// every period, section ids, assigned teachers and assigned rooms must all be
// pairwise distinct. Sections missing a teacher or a room are skipped for that
// dimension; a partial schedule is legal. Check never mutates the schedule, so
// repeated runs agree.
func Check(periods []*Period) error {
	for _, period := range periods {
		usedSections := make(map[string]bool)
		usedTeachers := make(map[string]bool)
		usedRooms := make(map[string]bool)

		for _, section := range period.Sections {
			if usedSections[section.Id] {
				return ConflictError{
					Kind:     DuplicateSection,
					PeriodId: period.Id,
					Resource: section.Id,
					Sections: collidingSections(period, func(other *Section) bool {
						return other.Id == section.Id
					}),
				}
			}
			usedSections[section.Id] = true

			if teacher := section.Teacher; teacher != nil {
				if usedTeachers[teacher.Name] {
					return ConflictError{
						Kind:     TeacherDoubleBooked,
						PeriodId: period.Id,
						Resource: teacher.Name,
						Sections: collidingSections(period, func(other *Section) bool {
							return other.Teacher == teacher
						}),
					}
				}
				usedTeachers[teacher.Name] = true
			}

			if room := section.Room; room != nil {
				if usedRooms[room.Name] {
					return ConflictError{
						Kind:     RoomDoubleBooked,
						PeriodId: period.Id,
						Resource: room.Name,
						Sections: collidingSections(period, func(other *Section) bool {
							return other.Room == room
						}),
					}
				}
				usedRooms[room.Name] = true
			}
		}
	}
	return nil
}

func collidingSections(period *Period, collides func(section *Section) bool) []string {
	return lo.FilterMap(period.Sections, func(section *Section, _ int) (string, bool) {
		return section.Id, collides(section)
	})
}
