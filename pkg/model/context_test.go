package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainBuilder(t *testing.T) {
	rooms := []*Classroom{
		{Name: "Lab-101", Capacity: 30, Purposes: []string{"Biology", "General"}},
		{Name: "Room-201", Capacity: 25, Purposes: []string{"General"}},
	}
	teachers := []*Teacher{
		{Name: "Ms. Smith", Subjects: []string{"Biology"}, MaxLoad: 2},
		{Name: "Mr. Jones", Subjects: []string{"Math", "Biology"}, MaxLoad: 2},
	}

	t.Run("Domains preserve input order", func(t *testing.T) {
		sections := GenerateSections([]TeachingUnit{{Name: "Biology", Sections: 1, RoomType: "Biology"}})

		context, err := newSchedulingContext(sections, teachers, rooms)

		require.Nil(t, err)
		assert.Equal(t, []*Teacher{teachers[0], teachers[1]}, context.validTeachers["Biology-1"])
		assert.Equal(t, []*Classroom{rooms[0]}, context.validRooms["Biology-1"])
		assert.Equal(t, uint64(0), context.teacherLoad["Ms. Smith"])
		assert.Equal(t, uint64(0), context.teacherLoad["Mr. Jones"])
	})

	t.Run("Section without compatible room", func(t *testing.T) {
		sections := GenerateSections([]TeachingUnit{{Name: "PE", Sections: 1, RoomType: "PE"}})
		// PE is a teachable subject for nobody here either, so qualify a teacher to
		// isolate the room failure
		withPE := append(teachers, &Teacher{Name: "Mr. Perez", Subjects: []string{"PE"}, MaxLoad: 1})

		context, err := newSchedulingContext(sections, withPE, rooms)

		assert.Nil(t, context)
		var unsatisfiable UnsatisfiableError
		require.ErrorAs(t, err, &unsatisfiable)
		assert.Equal(t, "PE-1", unsatisfiable.SectionId)
		assert.Equal(t, "room", unsatisfiable.Resource)
	})

	t.Run("Section without qualified teacher", func(t *testing.T) {
		sections := GenerateSections([]TeachingUnit{{Name: "Chemistry", Sections: 2, RoomType: "General"}})

		context, err := newSchedulingContext(sections, teachers, rooms)

		assert.Nil(t, context)
		var unsatisfiable UnsatisfiableError
		require.ErrorAs(t, err, &unsatisfiable)
		assert.Equal(t, "Chemistry-1", unsatisfiable.SectionId)
		assert.Equal(t, "teacher", unsatisfiable.Resource)
	})
}

func TestCommitRollback(t *testing.T) {
	rooms := []*Classroom{{Name: "Room-201", Purposes: []string{"General"}}}
	teachers := []*Teacher{{Name: "Mr. Jones", Subjects: []string{"Math"}, MaxLoad: 2}}
	period := &Period{Id: "Period 1"}
	sections := GenerateSections([]TeachingUnit{{Name: "Math", Sections: 1, RoomType: "General"}})

	context, err := newSchedulingContext(sections, teachers, rooms)
	require.Nil(t, err)

	context.commit(sections[0], period, rooms[0], teachers[0])

	assert.True(t, sections[0].FullyAssigned())
	assert.Equal(t, []*Section{sections[0]}, period.Sections)
	assert.False(t, context.teacherFree(teachers[0], period))
	assert.False(t, context.roomFree(rooms[0], period))
	assert.Equal(t, uint64(1), context.teacherLoad["Mr. Jones"])

	context.rollback(sections[0])

	assert.False(t, sections[0].FullyAssigned())
	assert.Nil(t, sections[0].Teacher)
	assert.Nil(t, sections[0].Room)
	assert.Nil(t, sections[0].Period)
	assert.Empty(t, period.Sections)
	assert.True(t, context.teacherFree(teachers[0], period))
	assert.True(t, context.roomFree(rooms[0], period))
	assert.Equal(t, uint64(0), context.teacherLoad["Mr. Jones"])
}

func TestPrioritizeSections(t *testing.T) {
	rooms := []*Classroom{
		{Name: "Lab-101", Purposes: []string{"Biology", "General"}},
		{Name: "Room-201", Purposes: []string{"General"}},
	}
	teachers := []*Teacher{
		{Name: "Ms. Smith", Subjects: []string{"Biology", "Math"}, MaxLoad: 4},
		{Name: "Mr. Jones", Subjects: []string{"Math", "English"}, MaxLoad: 4},
	}
	// Math: 2 teachers/2 rooms, English: 1 teacher/2 rooms, Biology: 1 teacher/1 room
	sections := GenerateSections([]TeachingUnit{
		{Name: "Math", Sections: 2, RoomType: "General"},
		{Name: "English", Sections: 1, RoomType: "General"},
		{Name: "Biology", Sections: 1, RoomType: "Biology"},
	})

	context, err := newSchedulingContext(sections, teachers, rooms)
	require.Nil(t, err)

	prioritizeSections(sections, context)

	ids := make([]string, 0, len(sections))
	for _, section := range sections {
		ids = append(ids, section.Id)
	}
	// Scarcest first; Math-1 stays before Math-2 since the sort is stable
	assert.Equal(t, []string{"Biology-1", "English-1", "Math-1", "Math-2"}, ids)
}
