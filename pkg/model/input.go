package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type RawClassroom struct {
	Name     string
	Capacity uint64
	Purposes []string
}

type RawTeachingUnit struct {
	Name     string
	Sections uint64
	RoomType string
}

type RawTeacher struct {
	Name     string
	Subjects []string
	MaxLoad  uint64
}

type RawScheduleInput struct {
	RoomTypePriority []string
	Rooms            []RawClassroom
	UnitPriority     []string
	Units            []RawTeachingUnit
	Teachers         []RawTeacher
	Periods          []string
}

type Classroom struct {
	Name     string
	Capacity uint64
	Purposes []string
}

func (room *Classroom) SuitableFor(roomType string) bool {
	return lo.Contains(room.Purposes, roomType)
}

type TeachingUnit struct {
	Name     string
	Sections uint64
	RoomType string
}

// SectionIds returns the 1-indexed identifiers of the sections the unit expands into
func (unit TeachingUnit) SectionIds() []string {
	ids := make([]string, 0, unit.Sections)
	for i := uint64(1); i <= unit.Sections; i++ {
		ids = append(ids, fmt.Sprintf("%v-%v", unit.Name, i))
	}
	return ids
}

type Teacher struct {
	Name     string
	Subjects []string
	MaxLoad  uint64
}

func (teacher *Teacher) QualifiedFor(unitName string) bool {
	return lo.Contains(teacher.Subjects, unitName)
}

// Section is one schedulable instance of a teaching unit. Teacher, Room and Period
// stay nil until an assignment step fills them in
type Section struct {
	Id       string
	Unit     string
	RoomType string

	Teacher *Teacher
	Room    *Classroom
	Period  *Period
}

func (section *Section) FullyAssigned() bool {
	return section.Teacher != nil && section.Room != nil && section.Period != nil
}

type Period struct {
	Id       string
	Sections []*Section
}

type ScheduleInput struct {
	RoomTypePriority []string
	Rooms            []*Classroom
	UnitPriority     []string
	Units            []TeachingUnit
	Teachers         []*Teacher
	Periods          []*Period
}

func InputFromJson(file string) (ScheduleInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ScheduleInput{}, err
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ScheduleInput{}, err
	}

	var rawInput RawScheduleInput
	mapstructure.Decode(inputJson, &rawInput)
	return ProcessRawInput(rawInput)
}

func ProcessRawInput(rawInput RawScheduleInput) (ScheduleInput, error) {
	input := ScheduleInput{
		RoomTypePriority: rawInput.RoomTypePriority,
		UnitPriority:     rawInput.UnitPriority,
	}

	//** Manage rooms
	seenRooms := make(map[string]bool)
	for _, raw := range rawInput.Rooms {
		if raw.Name == "" {
			return ScheduleInput{}, fmt.Errorf("classroom name must not be empty")
		} else if seenRooms[raw.Name] {
			return ScheduleInput{}, fmt.Errorf("duplicate classroom \"%v\"", raw.Name)
		}
		seenRooms[raw.Name] = true
		input.Rooms = append(input.Rooms, &Classroom{
			Name:     raw.Name,
			Capacity: raw.Capacity,
			Purposes: raw.Purposes,
		})
	}

	//** Manage units
	seenUnits := make(map[string]bool)
	for _, raw := range rawInput.Units {
		if raw.Name == "" {
			return ScheduleInput{}, fmt.Errorf("teaching-unit name must not be empty")
		} else if seenUnits[raw.Name] {
			return ScheduleInput{}, fmt.Errorf("duplicate teaching unit \"%v\"", raw.Name)
		} else if raw.RoomType == "" {
			return ScheduleInput{}, fmt.Errorf("teaching unit \"%v\" must declare a required room type", raw.Name)
		}
		seenUnits[raw.Name] = true
		input.Units = append(input.Units, TeachingUnit{
			Name:     raw.Name,
			Sections: raw.Sections,
			RoomType: raw.RoomType,
		})
	}

	//** Manage teachers
	seenTeachers := make(map[string]bool)
	for _, raw := range rawInput.Teachers {
		if raw.Name == "" {
			return ScheduleInput{}, fmt.Errorf("teacher name must not be empty")
		} else if seenTeachers[raw.Name] {
			return ScheduleInput{}, fmt.Errorf("duplicate teacher \"%v\"", raw.Name)
		}
		seenTeachers[raw.Name] = true
		input.Teachers = append(input.Teachers, &Teacher{
			Name:     raw.Name,
			Subjects: raw.Subjects,
			MaxLoad:  raw.MaxLoad,
		})
	}

	//** Manage periods
	seenPeriods := make(map[string]bool)
	for _, id := range rawInput.Periods {
		if id == "" {
			return ScheduleInput{}, fmt.Errorf("period id must not be empty")
		} else if seenPeriods[id] {
			return ScheduleInput{}, fmt.Errorf("duplicate period \"%v\"", id)
		}
		seenPeriods[id] = true
		input.Periods = append(input.Periods, &Period{Id: id})
	}

	return input, nil
}

// GenerateSections expands every teaching unit into its section instances, in unit
// order and 1-indexed within each unit
func GenerateSections(units []TeachingUnit) []*Section {
	sections := make([]*Section, 0)
	for _, unit := range units {
		for _, id := range unit.SectionIds() {
			sections = append(sections, &Section{
				Id:       id,
				Unit:     unit.Name,
				RoomType: unit.RoomType,
			})
		}
	}
	return sections
}
