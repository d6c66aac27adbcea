// Package scenario provides ready-made school inputs for the scheduler: a handful
// of synthetic schools of different sizes and stress profiles, behind a name
// registry for the command-line tools.
package scenario

import "github.com/classforge/sectionplan/pkg/model"

// Builders maps scenario names to their constructors
var Builders = map[string]func() model.ScheduleInput{
	"balanced":        Balanced,
	"science-heavy":   ScienceHeavy,
	"understaffed":    Understaffed,
	"balanced-medium": BalancedMedium,
	"swap-repair":     SwapRepair,
}

func room(name string, capacity uint64, purposes ...string) *model.Classroom {
	return &model.Classroom{Name: name, Capacity: capacity, Purposes: purposes}
}

func teacher(name string, maxLoad uint64, subjects ...string) *model.Teacher {
	return &model.Teacher{Name: name, Subjects: subjects, MaxLoad: maxLoad}
}

func unit(name string, sections uint64, roomType string) model.TeachingUnit {
	return model.TeachingUnit{Name: name, Sections: sections, RoomType: roomType}
}

func periods(ids ...string) []*model.Period {
	result := make([]*model.Period, 0, len(ids))
	for _, id := range ids {
		result = append(result, &model.Period{Id: id})
	}
	return result
}

// Balanced is a small school where everything schedules perfectly.
func Balanced() model.ScheduleInput {
	return model.ScheduleInput{
		RoomTypePriority: []string{"Biology", "Chemistry", "Physics", "PE", "General"},
		Rooms: []*model.Classroom{
			room("Lab-101", 30, "Biology", "Chemistry", "Physics", "General"),
			room("Lab-102", 30, "Biology", "Chemistry", "Physics", "General"),
			room("Gym-A", 50, "PE"),
			room("Room-201", 25, "General"),
			room("Room-202", 25, "General"),
			room("Room-203", 25, "General"),
		},
		UnitPriority: []string{"Biology", "Math", "PE", "English"},
		Units: []model.TeachingUnit{
			unit("Biology", 2, "Biology"),
			unit("Math", 2, "General"),
			unit("PE", 1, "PE"),
			unit("English", 2, "General"),
		},
		Teachers: []*model.Teacher{
			teacher("Ms. Smith", 2, "Biology"),
			teacher("Mr. Jones", 2, "Math"),
			teacher("Mr. Perez", 1, "PE"),
			teacher("Ms. Lee", 2, "English"),
		},
		Periods: periods("Period 1", "Period 2", "Period 3"),
	}
}

// ScienceHeavy has many science sections competing for limited lab space.
func ScienceHeavy() model.ScheduleInput {
	return model.ScheduleInput{
		RoomTypePriority: []string{"Biology", "Chemistry", "Physics", "PE", "General"},
		Rooms: []*model.Classroom{
			room("Lab-101", 30, "Biology", "Chemistry", "Physics", "General"),
			room("Lab-102", 30, "Biology", "Chemistry", "Physics", "General"),
			room("Gym-A", 50, "PE"),
			room("Room-201", 25, "General"),
		},
		UnitPriority: []string{"Biology", "Chemistry", "Physics", "Math"},
		Units: []model.TeachingUnit{
			unit("Biology", 3, "Biology"),
			unit("Chemistry", 3, "Chemistry"),
			unit("Physics", 2, "Physics"),
			unit("Math", 2, "General"),
		},
		Teachers: []*model.Teacher{
			teacher("Ms. Smith", 6, "Biology", "Chemistry"),
			teacher("Mr. Jones", 6, "Physics", "Math"),
			teacher("Dr. Brown", 4, "Chemistry", "Physics"),
		},
		Periods: periods("Period 1", "Period 2", "Period 3", "Period 4"),
	}
}

// Understaffed has no teacher at all for its Chemistry sections, so the domain
// builder rejects it outright.
func Understaffed() model.ScheduleInput {
	return model.ScheduleInput{
		RoomTypePriority: []string{"Biology", "Chemistry", "Physics", "PE", "General"},
		Rooms: []*model.Classroom{
			room("Lab-101", 30, "Biology", "Chemistry", "Physics", "General"),
			room("Gym-A", 50, "PE"),
			room("Room-201", 25, "General"),
			room("Room-202", 25, "General"),
		},
		UnitPriority: []string{"Biology", "Math", "PE", "English", "Chemistry"},
		Units: []model.TeachingUnit{
			unit("Biology", 3, "Biology"),
			unit("Math", 2, "General"),
			unit("PE", 2, "PE"),
			unit("English", 2, "General"),
			unit("Chemistry", 2, "Chemistry"),
		},
		Teachers: []*model.Teacher{
			teacher("Ms. Smith", 2, "Biology"),
			teacher("Mr. Jones", 3, "Math", "English"),
			teacher("Mr. Perez", 2, "PE"),
		},
		Periods: periods("Period 1", "Period 2", "Period 3", "Period 4"),
	}
}

// BalancedMedium is a 20-room, 17-teacher school over 5 periods.
func BalancedMedium() model.ScheduleInput {
	return model.ScheduleInput{
		RoomTypePriority: []string{"Biology", "Chemistry", "Physics", "PE", "Art", "Music", "CompSci", "General"},
		Rooms: []*model.Classroom{
			room("Lab-101", 30, "Biology", "Chemistry", "Physics", "General"),
			room("Lab-102", 30, "Biology", "Chemistry", "Physics", "General"),
			room("Lab-201", 28, "Biology", "Chemistry", "Physics", "General"),
			room("Lab-202", 32, "Biology", "Chemistry", "Physics", "General"),
			room("Gym-A", 50, "PE"),
			room("Gym-B", 45, "PE"),
			room("Art-101", 25, "Art"),
			room("Art-102", 25, "Art"),
			room("Music-101", 30, "Music"),
			room("CompLab-101", 30, "CompSci", "General"),
			room("Room-101", 25, "General"),
			room("Room-102", 25, "General"),
			room("Room-103", 30, "General"),
			room("Room-201", 25, "General"),
			room("Room-202", 25, "General"),
			room("Room-203", 30, "General"),
			room("Room-301", 25, "General"),
			room("Room-302", 25, "General"),
			room("Room-303", 30, "General"),
			room("Room-401", 25, "General"),
		},
		UnitPriority: []string{
			"Biology", "Chemistry", "Physics",
			"Algebra I", "Algebra II", "Geometry", "Pre-Calculus", "Calculus",
			"English 9", "English 10", "English 11", "English 12",
			"World History", "US History", "Government", "Economics",
			"Spanish I", "Spanish II", "French I",
			"Art I", "Art II",
			"Band", "Choir",
			"PE 9", "PE 10", "Health",
			"Intro to CS", "AP CompSci A",
			"Drama", "Business",
		},
		Units: []model.TeachingUnit{
			unit("Biology", 2, "Biology"),
			unit("Chemistry", 2, "Chemistry"),
			unit("Physics", 2, "Physics"),
			unit("Algebra I", 2, "General"),
			unit("Algebra II", 2, "General"),
			unit("Geometry", 2, "General"),
			unit("Pre-Calculus", 1, "General"),
			unit("Calculus", 1, "General"),
			unit("English 9", 2, "General"),
			unit("English 10", 2, "General"),
			unit("English 11", 2, "General"),
			unit("English 12", 2, "General"),
			unit("World History", 2, "General"),
			unit("US History", 2, "General"),
			unit("Government", 2, "General"),
			unit("Economics", 1, "General"),
			unit("Spanish I", 2, "General"),
			unit("Spanish II", 1, "General"),
			unit("French I", 1, "General"),
			unit("Art I", 2, "Art"),
			unit("Art II", 1, "Art"),
			unit("Band", 1, "Music"),
			unit("Choir", 1, "Music"),
			unit("PE 9", 2, "PE"),
			unit("PE 10", 2, "PE"),
			unit("Health", 1, "General"),
			unit("Intro to CS", 1, "CompSci"),
			unit("AP CompSci A", 1, "CompSci"),
			unit("Drama", 1, "General"),
			unit("Business", 1, "General"),
		},
		Teachers: []*model.Teacher{
			teacher("Dr. Wilson", 3, "Biology"),
			teacher("Dr. Martinez", 3, "Chemistry"),
			teacher("Dr. Anderson", 3, "Physics"),
			teacher("Ms. Green", 2, "Biology", "Chemistry"),
			teacher("Ms. Davis", 4, "Algebra I", "Algebra II", "Geometry"),
			teacher("Mr. Lee", 3, "Algebra I", "Geometry"),
			teacher("Ms. Rodriguez", 3, "Pre-Calculus", "Calculus", "Algebra II"),
			teacher("Ms. Johnson", 3, "English 9", "English 10"),
			teacher("Mr. Smith", 4, "English 11", "English 12"),
			teacher("Ms. Taylor", 3, "English 9", "English 10", "Drama"),
			teacher("Mr. Adams", 4, "World History", "US History"),
			teacher("Ms. Clark", 4, "Government", "Economics", "Business"),
			teacher("Sra. Hernandez", 4, "Spanish I", "Spanish II", "French I"),
			teacher("Ms. Rivera", 3, "Art I", "Art II"),
			teacher("Mr. Hall", 2, "Band", "Choir"),
			teacher("Coach Davis", 5, "PE 9", "PE 10", "Health"),
			teacher("Mr. Singh", 2, "Intro to CS", "AP CompSci A"),
		},
		Periods: periods("Period 1", "Period 2", "Period 3", "Period 4", "Period 5"),
	}
}

// SwapRepair forces the single-level swap: one period, one room, three one-section
// units A/B/C, and three teachers with maxLoad 1 arranged so a direct pass strands
// section C until T1 is displaced from A onto T3.
func SwapRepair() model.ScheduleInput {
	return model.ScheduleInput{
		RoomTypePriority: []string{"r"},
		Rooms: []*model.Classroom{
			room("R1", 30, "r"),
		},
		Units: []model.TeachingUnit{
			unit("A", 1, "r"),
			unit("B", 1, "r"),
			unit("C", 1, "r"),
		},
		Teachers: []*model.Teacher{
			teacher("T1", 1, "A", "C"),
			teacher("T2", 1, "B", "C"),
			teacher("T3", 1, "A"),
		},
		Periods: periods("P1"),
	}
}
