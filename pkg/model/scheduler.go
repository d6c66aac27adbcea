package model

import "errors"

type Scheduler interface {
	// Schedule expands the input's teaching units into sections and assigns each one
	// a (period, room, teacher) triple. The returned slice contains every generated
	// section, including any left partially assigned.
	Schedule(input ScheduleInput) ([]*Section, error)
}

// RunScheduler is the primary entry point. It attempts the backtracking scheduler
// first and, if the search exhausts without a complete assignment, falls back to the
// greedy scheduler on a fresh scoreboard. Whichever schedule results is validated
// before being returned. Only UnsatisfiableError aborts without producing a
// schedule.
func RunScheduler(roomTypePriority []string, rooms []*Classroom, unitPriority []string, units []TeachingUnit, teachers []*Teacher, periods []*Period) ([]*Section, error) {
	input := ScheduleInput{
		RoomTypePriority: roomTypePriority,
		Rooms:            rooms,
		UnitPriority:     unitPriority,
		Units:            units,
		Teachers:         teachers,
		Periods:          periods,
	}

	sections, err := NewBacktrackingScheduler(DefaultNodeBudget).Schedule(input)
	if errors.Is(err, ErrExhausted) {
		sections, err = NewGreedyScheduler().Schedule(input)
	}
	if err != nil {
		return nil, err
	}

	if err := Check(input.Periods); err != nil {
		return nil, err
	}
	return sections, nil
}
