// Package main implements the workday CLI: a one-shot working-date calculation.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/codeGROOVE-dev/workday/pkg/api"
	"github.com/codeGROOVE-dev/workday/pkg/holidays"
	"github.com/codeGROOVE-dev/workday/pkg/schedule"
	"github.com/codeGROOVE-dev/workday/pkg/tzconvert"
	"github.com/codeGROOVE-dev/workday/pkg/workday"
	"github.com/fatih/color"
)

// Exit codes.
const (
	exitInternal = 1
	exitInvalid  = 2
	exitUpstream = 3
)

var (
	days         = flag.Int("days", 0, "Business days to add")
	hours        = flag.Int("hours", 0, "Business hours to add")
	date         = flag.String("date", "", "UTC base instant, e.g. 2023-01-06T22:00:00Z (default: now)")
	holidaysURL  = flag.String("holidays-url", "", "Holiday feed URL (or set HOLIDAYS_URL)")
	showHolidays = flag.Bool("show-holidays", false, "List the holidays in effect")
	showSchedule = flag.Bool("schedule", false, "Draw the working windows between base and result")
	jsonOut      = flag.Bool("json", false, "Print the result as JSON")
	verbose      = flag.Bool("verbose", false, "Enable verbose logging")
	version      = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println("workday CLI v1.0.0")
		return
	}

	if *days < 0 || *hours < 0 || (*days == 0 && *hours == 0) {
		fmt.Fprintf(os.Stderr, "Usage: %s [-days N] [-hours M] [-date 2023-01-06T22:00:00Z]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(exitInvalid)
	}

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	if *holidaysURL == "" {
		*holidaysURL = os.Getenv("HOLIDAYS_URL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	remote := holidays.NewRemote(holidays.WithURL(*holidaysURL), holidays.WithLogger(logger))
	start := tzconvert.Now()
	engine := workday.New(remote,
		workday.WithLogger(logger),
		workday.WithClock(func() time.Time { return start }))

	result, err := engine.Calculate(ctx, workday.Request{Days: *days, Hours: *hours, Date: *date})
	if err != nil {
		cancel()
		os.Exit(fail(err))
	}

	if *jsonOut {
		if err := json.NewEncoder(os.Stdout).Encode(api.DateResponse{Date: result}); err != nil {
			logger.Error("Failed to encode result", "error", err)
			os.Exit(exitInternal)
		}
		return
	}

	// Cached by the calculation above; no second fetch.
	set, err := remote.Holidays(ctx)
	if err != nil {
		logger.Debug("holidays unavailable for display", "error", err)
	}
	printResult(result, start, set)
}

func printResult(result string, start time.Time, set holidays.Set) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	grey := color.New(color.FgHiBlack)

	green.Println(result)

	local, err := tzconvert.ToLocal(result)
	if err == nil {
		bold.Print("  local:    ")
		fmt.Printf("%s (%s)\n", local.Format("Mon 2006-01-02 15:04"), tzconvert.Zone)
	}
	base := start
	if *date == "" {
		grey.Printf("  base:     now (%s)\n", tzconvert.ToUTC(start))
	} else {
		grey.Printf("  base:     %s\n", *date)
		base, _ = tzconvert.ToLocal(*date) //nolint:errcheck // validated by the engine
	}
	grey.Printf("  added:    %d day(s), %d hour(s)\n", *days, *hours)
	grey.Printf("  holidays: %d known\n", set.Len())

	if *showHolidays {
		yellow := color.New(color.FgYellow)
		for _, d := range set.Dates() {
			yellow.Printf("    %s\n", d)
		}
	}

	if *showSchedule && err == nil {
		fmt.Println()
		fmt.Print(schedule.Render(base, local, set))
	}
}

// fail prints err and returns the process exit code for it.
func fail(err error) int {
	red := color.New(color.FgRed, color.Bold)
	kind := workday.KindOf(err)

	var code int
	var msg string
	switch kind {
	case workday.KindInvalidInput:
		code, msg = exitInvalid, "invalid -date"
	case workday.KindUpstreamUnavailable:
		code, msg = exitUpstream, "holidays source unavailable"
	case workday.KindInternal:
		code, msg = exitInternal, "unexpected error"
	default:
		code, msg = exitInternal, "unexpected error"
	}

	if *jsonOut {
		body := api.ErrorResponse{Error: errorCode(kind), Message: msg}
		if encErr := json.NewEncoder(os.Stdout).Encode(body); encErr != nil {
			fmt.Fprintln(os.Stderr, encErr)
		}
		return code
	}

	red.Fprintf(os.Stderr, "error: %s\n", msg)
	var werr *workday.Error
	if errors.As(err, &werr) && werr.Err != nil {
		fmt.Fprintf(os.Stderr, "  %v\n", werr.Err)
	}
	return code
}

func errorCode(k workday.Kind) string {
	switch k {
	case workday.KindInvalidInput:
		return api.CodeInvalidParameters
	case workday.KindUpstreamUnavailable:
		return api.CodeUpstreamUnavailable
	default:
		return api.CodeInternalError
	}
}
