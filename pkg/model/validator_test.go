package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	teacher1 := &Teacher{Name: "Ms. Smith", Subjects: []string{"Biology"}, MaxLoad: 2}
	teacher2 := &Teacher{Name: "Mr. Jones", Subjects: []string{"Math"}, MaxLoad: 2}
	room1 := &Classroom{Name: "Room-201", Purposes: []string{"General"}}
	room2 := &Classroom{Name: "Room-202", Purposes: []string{"General"}}

	section := func(id string, teacher *Teacher, room *Classroom) *Section {
		return &Section{Id: id, Unit: "Biology", RoomType: "General", Teacher: teacher, Room: room}
	}

	t.Run("Clean schedule passes", func(t *testing.T) {
		periods := []*Period{
			{Id: "Period 1", Sections: []*Section{
				section("Biology-1", teacher1, room1),
				section("Math-1", teacher2, room2),
			}},
			{Id: "Period 2", Sections: []*Section{
				section("Biology-2", teacher1, room1),
			}},
		}

		assert.Nil(t, Check(periods))
	})

	t.Run("Partial schedule passes", func(t *testing.T) {
		periods := []*Period{
			{Id: "Period 1", Sections: []*Section{
				section("Biology-1", nil, nil),
				section("Biology-2", nil, nil),
			}},
		}

		assert.Nil(t, Check(periods))
	})

	t.Run("Duplicate section", func(t *testing.T) {
		duplicated := section("Biology-1", teacher1, room1)
		periods := []*Period{
			{Id: "Period 1", Sections: []*Section{duplicated, duplicated}},
		}

		err := Check(periods)

		var conflict ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, DuplicateSection, conflict.Kind)
		assert.Equal(t, "Period 1", conflict.PeriodId)
		assert.Equal(t, "Biology-1", conflict.Resource)
		assert.Equal(t, []string{"Biology-1", "Biology-1"}, conflict.Sections)
	})

	t.Run("Teacher double-booked", func(t *testing.T) {
		periods := []*Period{
			{Id: "Period 2", Sections: []*Section{
				section("Biology-1", teacher1, room1),
				section("Biology-2", teacher1, room2),
			}},
		}

		err := Check(periods)

		var conflict ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, TeacherDoubleBooked, conflict.Kind)
		assert.Equal(t, "Period 2", conflict.PeriodId)
		assert.Equal(t, "Ms. Smith", conflict.Resource)
		assert.Equal(t, []string{"Biology-1", "Biology-2"}, conflict.Sections)
	})

	t.Run("Room double-booked", func(t *testing.T) {
		periods := []*Period{
			{Id: "Period 3", Sections: []*Section{
				section("Biology-1", teacher1, room1),
				section("Math-1", teacher2, room1),
			}},
		}

		err := Check(periods)

		var conflict ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, RoomDoubleBooked, conflict.Kind)
		assert.Equal(t, "Room-201", conflict.Resource)
		assert.Equal(t, []string{"Biology-1", "Math-1"}, conflict.Sections)
	})

	t.Run("Validation is idempotent", func(t *testing.T) {
		conflicting := []*Period{
			{Id: "Period 1", Sections: []*Section{
				section("Biology-1", teacher1, room1),
				section("Biology-2", teacher1, room2),
			}},
		}
		clean := []*Period{
			{Id: "Period 1", Sections: []*Section{
				section("Biology-1", teacher1, room1),
			}},
		}

		assert.Equal(t, Check(conflicting), Check(conflicting))
		assert.Nil(t, Check(clean))
		assert.Nil(t, Check(clean))
	})
}
