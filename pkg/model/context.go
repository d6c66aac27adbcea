package model

import "github.com/samber/lo"

// occupancyKey addresses one (resource, period) cell of the scoreboard
type occupancyKey struct {
	resource string
	period   string
}

// schedulingContext is the mutable scoreboard shared by every assignment step of a
// single run: the precomputed per-section candidate domains, the per-period
// occupancy of teachers and rooms, and the running load of each teacher. It is
// created fresh per run and owned exclusively by that run.
type schedulingContext struct {
	validTeachers map[string][]*Teacher   // sectionId -> qualified teachers, in input order
	validRooms    map[string][]*Classroom // sectionId -> compatible rooms, in input order

	teacherBusy map[occupancyKey]*Section
	roomBusy    map[occupancyKey]*Section
	teacherLoad map[string]uint64
}

// newSchedulingContext precomputes every section's candidate teachers and rooms and
// fails fast with UnsatisfiableError, before any occupancy is recorded, if a section
// has an empty domain.
func newSchedulingContext(sections []*Section, teachers []*Teacher, rooms []*Classroom) (*schedulingContext, error) {
	context := &schedulingContext{
		validTeachers: make(map[string][]*Teacher),
		validRooms:    make(map[string][]*Classroom),
		teacherBusy:   make(map[occupancyKey]*Section),
		roomBusy:      make(map[occupancyKey]*Section),
		teacherLoad:   make(map[string]uint64),
	}

	for _, section := range sections {
		qualified := lo.Filter(teachers, func(teacher *Teacher, _ int) bool {
			return teacher.QualifiedFor(section.Unit)
		})
		if len(qualified) == 0 {
			return nil, UnsatisfiableError{SectionId: section.Id, Resource: "teacher"}
		}

		compatible := lo.Filter(rooms, func(room *Classroom, _ int) bool {
			return room.SuitableFor(section.RoomType)
		})
		if len(compatible) == 0 {
			return nil, UnsatisfiableError{SectionId: section.Id, Resource: "room"}
		}

		context.validTeachers[section.Id] = qualified
		context.validRooms[section.Id] = compatible
	}

	for _, teacher := range teachers {
		context.teacherLoad[teacher.Name] = 0
	}
	return context, nil
}

func (context *schedulingContext) teacherFree(teacher *Teacher, period *Period) bool {
	return context.teacherBusy[occupancyKey{teacher.Name, period.Id}] == nil
}

func (context *schedulingContext) roomFree(room *Classroom, period *Period) bool {
	return context.roomBusy[occupancyKey{room.Name, period.Id}] == nil
}

func (context *schedulingContext) underLoad(teacher *Teacher) bool {
	return context.teacherLoad[teacher.Name] < teacher.MaxLoad
}

// commit applies a full (period, room, teacher) assignment to the section, the
// period and the scoreboard
func (context *schedulingContext) commit(section *Section, period *Period, room *Classroom, teacher *Teacher) {
	section.Period = period
	section.Room = room
	section.Teacher = teacher
	period.Sections = append(period.Sections, section)

	context.roomBusy[occupancyKey{room.Name, period.Id}] = section
	context.teacherBusy[occupancyKey{teacher.Name, period.Id}] = section
	context.teacherLoad[teacher.Name]++
}

// rollback undoes exactly the mutations made by the matching commit. Commits and
// rollbacks within the search are strictly LIFO, so the section is always the last
// one appended to its period.
func (context *schedulingContext) rollback(section *Section) {
	period, room, teacher := section.Period, section.Room, section.Teacher

	delete(context.roomBusy, occupancyKey{room.Name, period.Id})
	delete(context.teacherBusy, occupancyKey{teacher.Name, period.Id})
	context.teacherLoad[teacher.Name]--
	period.Sections = period.Sections[:len(period.Sections)-1]

	section.Period = nil
	section.Room = nil
	section.Teacher = nil
}

// placeTeacher records a teacher-only assignment, used by the greedy passes where
// period, room and teacher are filled in separately
func (context *schedulingContext) placeTeacher(section *Section, period *Period, teacher *Teacher) {
	section.Teacher = teacher
	context.teacherBusy[occupancyKey{teacher.Name, period.Id}] = section
	context.teacherLoad[teacher.Name]++
}

func (context *schedulingContext) unplaceTeacher(section *Section, period *Period) {
	teacher := section.Teacher
	section.Teacher = nil
	delete(context.teacherBusy, occupancyKey{teacher.Name, period.Id})
	context.teacherLoad[teacher.Name]--
}

func (context *schedulingContext) placeRoom(section *Section, period *Period, room *Classroom) {
	section.Room = room
	context.roomBusy[occupancyKey{room.Name, period.Id}] = section
}
