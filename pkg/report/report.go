// Package report renders a finished schedule for the terminal: assignments per
// period, teacher utilization and a completeness summary.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/classforge/sectionplan/pkg/model"
)

const lineWidth = 100

// WriteSchedule writes the full report: the per-period table, teacher utilization
// and the summary of fully versus partially assigned sections.
func WriteSchedule(writer io.Writer, periods []*model.Period, sections []*model.Section, teachers []*model.Teacher) {
	WriteByPeriod(writer, periods, teachers)
	WriteTeacherUtilization(writer, sections, teachers)
	WriteSummary(writer, sections)
}

// WriteByPeriod lists each period's sections with their room and teacher. Sections
// missing a teacher also list the qualified candidates and their current load, which
// is usually enough to see why the fallback could not place them.
func WriteByPeriod(writer io.Writer, periods []*model.Period, teachers []*model.Teacher) {
	rule := strings.Repeat("=", lineWidth)
	fmt.Fprintf(writer, "\n%v\n%v\n%v\n", rule, center("SCHEDULE BY PERIOD"), rule)

	loads := teacherLoads(periods)
	for _, period := range periods {
		fmt.Fprintf(writer, "\n%v\n%v\n", period.Id, strings.Repeat("-", lineWidth))

		for _, section := range period.Sections {
			roomName := "NO ROOM"
			if section.Room != nil {
				roomName = section.Room.Name
			}

			if section.Teacher != nil {
				fmt.Fprintf(writer, "  %-15v | %-20v | %v\n", roomName, section.Id, section.Teacher.Name)
				continue
			}

			fmt.Fprintf(writer, "  %-15v | %-20v | NO TEACHER\n", roomName, section.Id)
			qualified := lo.Filter(teachers, func(teacher *model.Teacher, _ int) bool {
				return teacher.QualifiedFor(section.Unit)
			})
			if len(qualified) == 0 {
				fmt.Fprintf(writer, "      -> no qualified teachers exist for %v\n", section.Unit)
				continue
			}
			fmt.Fprintf(writer, "      -> %v qualified teacher(s):\n", len(qualified))
			for _, teacher := range qualified {
				fmt.Fprintf(writer, "         - %v: teaching %v/%v sections\n", teacher.Name, loads[teacher.Name], teacher.MaxLoad)
			}
		}
	}
}

// WriteTeacherUtilization prints one load bar per teacher with an assignment
func WriteTeacherUtilization(writer io.Writer, sections []*model.Section, teachers []*model.Teacher) {
	fmt.Fprintf(writer, "\n%v\nTEACHER UTILIZATION\n%v\n", strings.Repeat("=", lineWidth), strings.Repeat("-", lineWidth))

	loads := make(map[string]uint64)
	for _, section := range sections {
		if section.Teacher != nil {
			loads[section.Teacher.Name]++
		}
	}

	names := lo.Keys(loads)
	sort.Strings(names)
	for _, name := range names {
		teacher, _ := lo.Find(teachers, func(teacher *model.Teacher) bool {
			return teacher.Name == name
		})

		percent := 0
		if teacher.MaxLoad > 0 {
			percent = int(loads[name] * 100 / teacher.MaxLoad)
		}
		filled := percent / 10
		bar := strings.Repeat("#", filled) + strings.Repeat(".", 10-filled)
		fmt.Fprintf(writer, "  %-20v %v %v/%v (%v%%) | %v\n",
			name, bar, loads[name], teacher.MaxLoad, percent, strings.Join(teacher.Subjects, ", "))
	}
}

// WriteSummary prints the fully-assigned count and lists what each partially
// assigned section is still missing
func WriteSummary(writer io.Writer, sections []*model.Section) {
	fmt.Fprintf(writer, "\n%v\nSUMMARY\n%v\n", strings.Repeat("=", lineWidth), strings.Repeat("-", lineWidth))

	assigned := lo.CountBy(sections, func(section *model.Section) bool {
		return section.FullyAssigned()
	})
	fmt.Fprintf(writer, "  Fully assigned: %v/%v\n", assigned, len(sections))
	fmt.Fprintf(writer, "  Unassigned: %v/%v\n", len(sections)-assigned, len(sections))

	unassigned := lo.Filter(sections, func(section *model.Section, _ int) bool {
		return !section.FullyAssigned()
	})
	if len(unassigned) == 0 {
		return
	}

	fmt.Fprintf(writer, "\nUNASSIGNED SECTIONS:\n%v\n", strings.Repeat("-", lineWidth))
	for _, section := range unassigned {
		missing := make([]string, 0, 3)
		if section.Teacher == nil {
			missing = append(missing, "teacher")
		}
		if section.Room == nil {
			missing = append(missing, "classroom")
		}
		if section.Period == nil {
			missing = append(missing, "period")
		}
		fmt.Fprintf(writer, "  - %-20v needs: %v\n", section.Id, strings.Join(missing, ", "))
	}
}

func teacherLoads(periods []*model.Period) map[string]uint64 {
	loads := make(map[string]uint64)
	for _, period := range periods {
		for _, section := range period.Sections {
			if section.Teacher != nil {
				loads[section.Teacher.Name]++
			}
		}
	}
	return loads
}

func center(text string) string {
	padding := (lineWidth - len(text)) / 2
	if padding < 0 {
		return text
	}
	return strings.Repeat(" ", padding) + text
}
