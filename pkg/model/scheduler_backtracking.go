package model

import (
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// DefaultNodeBudget bounds how many search nodes the backtracking scheduler expands
// before treating the search as exhausted. Zero means unbounded.
const DefaultNodeBudget uint64 = 5_000_000

type backtrackingScheduler struct {
	nodeBudget uint64
}

// NewBacktrackingScheduler returns the exhaustive depth-first scheduler. It finds a
// complete conflict-free assignment whenever one exists within the node budget and
// reports ErrExhausted otherwise, leaving sections and periods fully unwound.
func NewBacktrackingScheduler(nodeBudget uint64) Scheduler {
	return &backtrackingScheduler{nodeBudget: nodeBudget}
}

func (scheduler *backtrackingScheduler) Schedule(input ScheduleInput) ([]*Section, error) {
	sections := GenerateSections(input.Units)

	context, err := newSchedulingContext(sections, input.Teachers, input.Rooms)
	if err != nil {
		return nil, err
	}

	// Every section needs a compatible room all to itself for one period: if no
	// complete matching of sections onto (room, period) slots exists, no ordering of
	// choices can succeed and the search is skipped entirely
	matchable, err := slotsMatchable(sections, input.Rooms, input.Periods, context)
	if err != nil {
		return nil, err
	} else if !matchable {
		return nil, ErrExhausted
	}

	prioritizeSections(sections, context)

	search := &backtrackingSearch{
		context:  context,
		sections: sections,
		periods:  input.Periods,
		budget:   scheduler.nodeBudget,
	}
	if !search.solve(0) {
		return nil, ErrExhausted
	}
	return sections, nil
}

type backtrackingSearch struct {
	context  *schedulingContext
	sections []*Section
	periods  []*Period
	budget   uint64
	nodes    uint64
}

// solve assigns sections[index:] depth-first. Candidate triples are tried with
// periods in caller order on the outside, the section's valid rooms in the middle
// and its valid teachers innermost; the first complete assignment wins. The
// try-order is part of the contract since it determines which feasible schedule is
// found when several exist.
func (search *backtrackingSearch) solve(index int) bool {
	if index == len(search.sections) {
		return true
	}
	if search.budget > 0 {
		if search.nodes++; search.nodes > search.budget {
			return false
		}
	}

	section := search.sections[index]
	for _, period := range search.periods {
		for _, room := range search.context.validRooms[section.Id] {
			if !search.context.roomFree(room, period) {
				continue
			}
			for _, teacher := range search.context.validTeachers[section.Id] {
				if !search.context.teacherFree(teacher, period) || !search.context.underLoad(teacher) {
					continue
				}

				search.context.commit(section, period, room, teacher)
				if search.solve(index + 1) {
					return true
				}
				search.context.rollback(section)
			}
		}
	}
	return false
}

// slotsMatchable checks for a complete matching between sections and the (room,
// period) slots their room domains allow. Room occupancy admits at most one section
// per slot, so a deficient matching proves the search must exhaust.
func slotsMatchable(sections []*Section, rooms []*Classroom, periods []*Period, context *schedulingContext) (bool, error) {
	type roomSlot struct {
		room   *Classroom
		period *Period
	}

	slots := make([]any, 0, len(rooms)*len(periods))
	for _, period := range periods {
		for _, room := range rooms {
			slots = append(slots, roomSlot{room: room, period: period})
		}
	}

	neighbors := func(sectionAny any, slotAny any) (bool, error) {
		section := sectionAny.(*Section)
		slot := slotAny.(roomSlot)
		return lo.Contains(context.validRooms[section.Id], slot.room), nil
	}

	sectionsAny := lo.Map(sections, func(section *Section, _ int) any { return section })

	graph, err := bipartitegraph.NewBipartiteGraph(sectionsAny, slots, neighbors)
	if err != nil {
		return false, err
	}

	matching := graph.LargestMatching()
	return len(matching) >= len(sections), nil
}
