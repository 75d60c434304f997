package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"tour-booking/config"
	"tour-booking/internal/module/booking/apiclient"
	"tour-booking/internal/module/booking/controller"
	"tour-booking/internal/module/manifest/generator"
	"tour-booking/internal/pkg/helpers"
	"tour-booking/internal/pkg/httpclient"
	"tour-booking/internal/pkg/i18n"
	log_internal "tour-booking/internal/pkg/log"
	"tour-booking/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"go.elastic.co/apm"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		printUsage()
		return nil
	}

	switch args[0] {
	case "book":
		return runBook(args[1:])
	case "calendar":
		return runCalendar(args[1:])
	case "manifest":
		return runManifest(args[1:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `tourctl: terminal client for tour bookings.

Usage:
  tourctl book [--api URL] [--date YYYY-MM-DD] [--lang en|pt|es] [--log-output FILE]
  tourctl calendar [--date YYYY-MM-DD]
  tourctl manifest --date YYYY-MM-DD

Commands:
  book       browse availability and book a tour against the booking API
  calendar   operator heat map of the generated manifests
  manifest   print the generated passenger manifest of one day
`)
}

func parse(flagSet *pflag.FlagSet, args []string) (bool, error) {
	flagSet.BoolP("help", "h", false, "show help")
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return true, nil
		}
		return false, err
	}
	if help, _ := flagSet.GetBool("help"); help {
		fmt.Fprintln(os.Stderr, flagSet.FlagUsages())
		return true, nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return false, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	return false, nil
}

func runBook(args []string) error {
	cfg := config.InitConfig()

	var apiURL, date, lang, logOutput string
	flagSet := pflag.NewFlagSet("book", pflag.ContinueOnError)
	flagSet.StringVar(&apiURL, "api", cfg.HttpClient.BaseURL, "booking API base URL")
	flagSet.StringVar(&date, "date", time.Now().Format(generator.DateLayout), "tour date")
	flagSet.StringVar(&lang, "lang", i18n.DefaultLanguage, "interface language")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON logs to this file")
	if done, err := parse(flagSet, args); done || err != nil {
		return err
	}
	if _, err := time.Parse(generator.DateLayout, date); err != nil {
		return fmt.Errorf("--date must be formatted as YYYY-MM-DD")
	}
	if !i18n.Supported(lang) {
		lang = i18n.DefaultLanguage
	}

	logger, err := setupLogger(logOutput)
	if err != nil {
		return err
	}

	var tracer *apm.Tracer
	if cfg.Apm.Enabled {
		tracer, err = apm.NewTracerOptions(apm.TracerOptions{ServiceName: cfg.Apm.ServiceName})
		if err != nil {
			return fmt.Errorf("create apm tracer: %w", err)
		}
		defer tracer.Close()
	}

	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	client := apiclient.New(apiURL,
		apiclient.WithHTTPClient(httpclient.InitHttpClient(&cfg.HttpClient, cb)),
		apiclient.WithRateLimiter(rate.NewLimiter(rate.Limit(cfg.HttpClient.RateLimit), cfg.HttpClient.Burst)),
		apiclient.WithLogger(logger),
	)

	notifier := tui.NewNotifier()
	ctl := controller.New(client,
		controller.WithLogger(logger),
		controller.WithLanguage(lang),
		controller.WithValidator(helpers.NewValidator()),
		controller.WithTracer(tracer),
		notifier.Option(),
	)
	defer ctl.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := tui.NewBookingModel(ctx, ctl, notifier, date, lang)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func runCalendar(args []string) error {
	var date string
	flagSet := pflag.NewFlagSet("calendar", pflag.ContinueOnError)
	flagSet.StringVar(&date, "date", time.Now().Format(generator.DateLayout), "day to open the calendar on")
	if done, err := parse(flagSet, args); done || err != nil {
		return err
	}
	start, err := time.Parse(generator.DateLayout, date)
	if err != nil {
		return fmt.Errorf("--date must be formatted as YYYY-MM-DD")
	}

	_, err = tea.NewProgram(tui.NewDashboard(start), tea.WithAltScreen()).Run()
	return err
}

func runManifest(args []string) error {
	var date string
	flagSet := pflag.NewFlagSet("manifest", pflag.ContinueOnError)
	flagSet.StringVar(&date, "date", "", "day to print")
	if done, err := parse(flagSet, args); done || err != nil {
		return err
	}
	if _, err := time.Parse(generator.DateLayout, date); err != nil {
		return fmt.Errorf("--date must be formatted as YYYY-MM-DD")
	}

	day := generator.NewDay(date)
	fmt.Println(tui.RenderDaySummary(tui.DefaultTheme, generator.Summarize(date, day.Tours)))
	fmt.Println()
	for _, tour := range day.Tours {
		fmt.Println(tui.RenderPassengers(tui.DefaultTheme, tour))
	}
	return nil
}

// setupLogger keeps logs off the terminal the UI draws on.
func setupLogger(path string) (log_internal.Logger, error) {
	if path == "" {
		return log_internal.Setup(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	z, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	log_internal.Init(z)
	return log_internal.GetLogger(), nil
}
