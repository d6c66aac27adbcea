package model

import "slices"

// prioritizeSections orders sections most-constrained-first: ascending candidate
// teacher count, then ascending candidate room count. The sort is stable, so ties
// keep their input order. Placing scarce-resource sections early sharply reduces
// backtracking, since later sections are likelier to find any remaining slot.
func prioritizeSections(sections []*Section, context *schedulingContext) {
	slices.SortStableFunc(sections, func(a, b *Section) int {
		if comparison := len(context.validTeachers[a.Id]) - len(context.validTeachers[b.Id]); comparison != 0 {
			return comparison
		}
		return len(context.validRooms[a.Id]) - len(context.validRooms[b.Id])
	})
}
