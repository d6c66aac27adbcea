package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/classforge/sectionplan/pkg/model"
	"github.com/classforge/sectionplan/pkg/report"
	"github.com/classforge/sectionplan/pkg/scenario"
)

var (
	nodeBudget      uint64
	validStrategies = []string{"complete", "greedy", "auto"}
	schedulers      = map[string]func() model.Scheduler{
		"complete": func() model.Scheduler { return model.NewBacktrackingScheduler(nodeBudget) },
		"greedy":   func() model.Scheduler { return model.NewGreedyScheduler() },
	}
)

func main() {
	strategyPtr := flag.String("strategy", "auto", `Strategy to build the schedule. Allowed values are:
- "complete" (exhaustive backtracking search; finds a full assignment if one exists within the node budget),
- "greedy" (deterministic three-pass assignment with single-level swap repair; best effort) and
- "auto" (backtracking first, greedy fallback on exhaustion), where "auto" is the default`)
	scenarioPtr := flag.String("scenario", "", fmt.Sprintf("Built-in scenario to schedule. Allowed values are: %v", strings.Join(scenarioNames(), ", ")))
	filePathPtr := flag.String("file", "", "Path to a JSON input file (alternative to -scenario)")
	budgetPtr := flag.Uint64("budget", model.DefaultNodeBudget, "Node budget for the backtracking search; 0 means unbounded")
	outFilePathPtr := flag.String("out", "", "Path to the file where the report will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()
	strategy := strings.ToLower(*strategyPtr)
	scenarioName := strings.ToLower(*scenarioPtr)
	filePath := *filePathPtr
	nodeBudget = *budgetPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if !slices.Contains(validStrategies, strategy) {
		log.Fatalf("%v is not a valid strategy", strategy)
	} else if scenarioName == "" && filePath == "" {
		log.Fatal("a scenario or an input file must be specified")
	} else if scenarioName != "" && filePath != "" {
		log.Fatal("specify either a scenario or an input file, not both")
	}

	var input model.ScheduleInput
	if scenarioName != "" {
		builder, ok := scenario.Builders[scenarioName]
		if !ok {
			log.Fatalf("%v is not a valid scenario", scenarioName)
		}
		input = builder()
	} else {
		var err error
		if input, err = model.InputFromJson(filePath); err != nil {
			log.Fatalf("cannot parse input file: %v", err)
		}
	}

	sections, err := schedule(strategy, input)
	if err != nil {
		log.Fatal(err)
	}

	writer := os.Stdout
	if outFile != "" {
		if writer, err = os.Create(outFile); err != nil {
			log.Fatalf("cannot create output file: %v", err)
		}
		defer writer.Close()
	}
	report.WriteSchedule(writer, input.Periods, sections, input.Teachers)
}

func schedule(strategy string, input model.ScheduleInput) ([]*model.Section, error) {
	if strategy == "auto" {
		return model.RunScheduler(
			input.RoomTypePriority,
			input.Rooms,
			input.UnitPriority,
			input.Units,
			input.Teachers,
			input.Periods,
		)
	}

	sections, err := schedulers[strategy]().Schedule(input)
	if errors.Is(err, model.ErrExhausted) {
		return nil, fmt.Errorf("no complete assignment exists within the node budget; retry with -strategy greedy or auto")
	} else if err != nil {
		return nil, err
	}

	if err := model.Check(input.Periods); err != nil {
		return nil, err
	}
	return sections, nil
}

func scenarioNames() []string {
	names := lo.Keys(scenario.Builders)
	slices.Sort(names)
	return names
}
