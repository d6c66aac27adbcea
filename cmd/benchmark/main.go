package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/classforge/sectionplan/pkg/model"
	"github.com/classforge/sectionplan/pkg/scenario"
)

type ResultType int

const (
	solved ResultType = iota
	partial
	exhausted
	unsatisfiable
)

var resultTypes = map[ResultType]string{
	solved:        "solved",
	partial:       "partial",
	exhausted:     "exhausted",
	unsatisfiable: "unsatisfiable",
}

var strategies = map[string]func() model.Scheduler{
	"complete": func() model.Scheduler { return model.NewBacktrackingScheduler(model.DefaultNodeBudget) },
	"greedy":   func() model.Scheduler { return model.NewGreedyScheduler() },
}

func main() {
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	if err := writer.Write([]string{"scenario", "strategy", "sections", "fully_assigned", "duration_ms", "result"}); err != nil {
		log.Fatalf("cannot write csv header: %v", err)
	}

	scenarioNames := lo.Keys(scenario.Builders)
	slices.Sort(scenarioNames)
	strategyNames := lo.Keys(strategies)
	slices.Sort(strategyNames)

	for _, scenarioName := range scenarioNames {
		for _, strategyName := range strategyNames {
			// Every run gets a fresh input: schedulers mutate sections and periods
			input := scenario.Builders[scenarioName]()

			start := time.Now()
			sections, err := strategies[strategyName]().Schedule(input)
			elapsed := time.Since(start)

			result := solved
			switch {
			case errors.Is(err, model.ErrExhausted):
				result = exhausted
			case err != nil:
				result = unsatisfiable
			default:
				if checkErr := model.Check(input.Periods); checkErr != nil {
					log.Fatalf("scenario %v produced a conflicting schedule: %v", scenarioName, checkErr)
				}
				if lo.SomeBy(sections, func(section *model.Section) bool { return !section.FullyAssigned() }) {
					result = partial
				}
			}

			assigned := lo.CountBy(sections, func(section *model.Section) bool {
				return section.FullyAssigned()
			})

			record := []string{
				scenarioName,
				strategyName,
				strconv.Itoa(len(sections)),
				strconv.Itoa(assigned),
				fmt.Sprintf("%.3f", float64(elapsed.Microseconds())/1000),
				resultTypes[result],
			}
			if err := writer.Write(record); err != nil {
				log.Fatalf("cannot write csv record: %v", err)
			}
		}
	}
}
