package main

import (
	"fmt"
	"log"
	"os"

	"github.com/classforge/sectionplan/pkg/model"
	"github.com/classforge/sectionplan/pkg/report"
	"github.com/classforge/sectionplan/pkg/scenario"
)

func main() {
	input := scenario.BalancedMedium()

	totalSections := uint64(0)
	for _, unit := range input.Units {
		totalSections += unit.Sections
	}
	fmt.Printf("Sections: %v, Classrooms: %v, Teachers: %v, Periods: %v\n",
		totalSections, len(input.Rooms), len(input.Teachers), len(input.Periods))

	sections, err := model.RunScheduler(
		input.RoomTypePriority,
		input.Rooms,
		input.UnitPriority,
		input.Units,
		input.Teachers,
		input.Periods,
	)
	if err != nil {
		log.Fatal(err)
	}

	report.WriteSchedule(os.Stdout, input.Periods, sections, input.Teachers)

	fmt.Println("\nCheck passed - no scheduling conflicts detected")
}
