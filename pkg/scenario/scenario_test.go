package scenario

import (
	"fmt"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classforge/sectionplan/pkg/model"
)

func run(input model.ScheduleInput) ([]*model.Section, error) {
	return model.RunScheduler(
		input.RoomTypePriority,
		input.Rooms,
		input.UnitPriority,
		input.Units,
		input.Teachers,
		input.Periods,
	)
}

func TestScenariosSchedule(t *testing.T) {
	for name, builder := range Builders {
		if name == "understaffed" {
			continue
		}

		t.Run(name, func(t *testing.T) {
			input := builder()

			sections, err := run(input)

			require.Nil(t, err)
			assert.NotEmpty(t, sections)
			assert.Nil(t, model.Check(input.Periods))
		})
	}
}

func TestUnderstaffedIsUnsatisfiable(t *testing.T) {
	// The scenario has Chemistry sections but no chemistry teacher at all
	input := Understaffed()

	sections, err := run(input)

	assert.Nil(t, sections)
	var unsatisfiable model.UnsatisfiableError
	require.ErrorAs(t, err, &unsatisfiable)
	assert.Equal(t, "Chemistry-1", unsatisfiable.SectionId)
	assert.Equal(t, "teacher", unsatisfiable.Resource)
}

func TestScheduleProperties(t *testing.T) {
	input := BalancedMedium()

	sections, err := run(input)
	require.Nil(t, err)

	t.Run("Domain soundness", func(t *testing.T) {
		for _, section := range sections {
			if section.Teacher != nil {
				assert.True(t, section.Teacher.QualifiedFor(section.Unit),
					"teacher %v is not qualified for %v", section.Teacher.Name, section.Id)
			}
			if section.Room != nil {
				assert.True(t, section.Room.SuitableFor(section.RoomType),
					"room %v does not support %v", section.Room.Name, section.Id)
			}
		}
	})

	t.Run("Load bound", func(t *testing.T) {
		loads := make(map[string]uint64)
		for _, section := range sections {
			if section.Teacher != nil {
				loads[section.Teacher.Name]++
			}
		}
		for _, teacher := range input.Teachers {
			assert.LessOrEqual(t, loads[teacher.Name], teacher.MaxLoad, "teacher %v is overloaded", teacher.Name)
		}
	})

	t.Run("No double-booking", func(t *testing.T) {
		assert.Nil(t, model.Check(input.Periods))
	})
}

func TestGreedyDeterminism(t *testing.T) {
	fingerprint := func() []string {
		input := ScienceHeavy()
		sections, err := model.NewGreedyScheduler().Schedule(input)
		require.Nil(t, err)

		return lo.Map(sections, func(section *model.Section, _ int) string {
			teacherName, roomName, periodId := "-", "-", "-"
			if section.Teacher != nil {
				teacherName = section.Teacher.Name
			}
			if section.Room != nil {
				roomName = section.Room.Name
			}
			if section.Period != nil {
				periodId = section.Period.Id
			}
			return fmt.Sprintf("%v|%v|%v|%v", section.Id, periodId, roomName, teacherName)
		})
	}

	assert.Equal(t, fingerprint(), fingerprint())
}
