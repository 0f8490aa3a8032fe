package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fronzo556/Carrefour-Analysis/config"
	"github.com/fronzo556/Carrefour-Analysis/directory"
	"github.com/fronzo556/Carrefour-Analysis/formatter"
	"github.com/fronzo556/Carrefour-Analysis/metrics"
	"github.com/fronzo556/Carrefour-Analysis/parser"
	"github.com/fronzo556/Carrefour-Analysis/transformer"

	"github.com/op/go-logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
)

var log = logging.MustGetLogger("log")

// InitLogger receives the log level to be set in go-logging as a string.
// This method parses the string and sets the level on the logger. If the
// level string is not valid an error is returned.
func InitLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	logging.SetBackend(backendLeveled)
	return nil
}

func main() {
	// Define flags
	configPath := flag.String("config", "", "Path to JSON config file (optional)")
	input := flag.String("input", "", "Input transactions CSV file (required unless set in config)")
	employees := flag.String("employees", "", "Employee roster CSV file (employee_id,display_name)")
	format := flag.String("format", "", "Output format: text|json|csv")
	output := flag.String("output", "", "Output file path (stdout if empty)")
	reportDate := flag.String("report-date", "", "Report date, RFC3339 or YYYY-MM-DD (default: now)")
	periodDays := flag.Int("period-days", 0, "Days of history for the performance window")
	metricsAddr := flag.String("metrics-addr", "", "Address to expose Prometheus metrics (e.g., :9090)")
	pushGateway := flag.String("push-url", "", "Pushgateway URL to push metrics to (e.g., http://localhost:9091)")
	wait := flag.Bool("wait", false, "Keep process running after completion to allow for metric scraping")
	logLevel := flag.String("log-level", "", "Log level: DEBUG|INFO|WARNING|ERROR")

	// Parse command-line flags
	flag.Parse()

	cfg, err := config.InitConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override config file and environment values
	if *input != "" {
		cfg.InputPath = *input
	}
	if *employees != "" {
		cfg.EmployeesPath = *employees
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *output != "" {
		cfg.OutputPath = *output
	}
	if *periodDays > 0 {
		cfg.PeriodDays = *periodDays
	}
	if cfg.PeriodDays <= 0 {
		cfg.PeriodDays = transformer.DefaultPeriodDays
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}
	if *pushGateway != "" {
		cfg.PushURL = *pushGateway
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	if err := InitLogger(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	// Validate required input
	if cfg.InputPath == "" {
		fmt.Println("Error: -input flag is required")
		fmt.Println("\nUsage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Validate format enum
	validFormats := map[string]bool{"text": true, "json": true, "csv": true}
	if !validFormats[cfg.Format] {
		fmt.Printf("Error: format must be one of: text, json, csv (got: %s)\n", cfg.Format)
		os.Exit(1)
	}

	date := time.Now()
	if *reportDate != "" {
		date, err = parseReportDate(*reportDate)
		if err != nil {
			fmt.Printf("Error: invalid report date %q: %v\n", *reportDate, err)
			os.Exit(1)
		}
	}

	// Start metrics server if address provided
	if cfg.MetricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
			log.Infof("Metrics server listening on %s/metrics", cfg.MetricsAddr)
			if err := http.ListenAndServe(cfg.MetricsAddr, nil); err != nil {
				log.Errorf("Metrics server error: %v", err)
			}
		}()
	}

	dir := directory.New()
	if cfg.EmployeesPath != "" {
		rosterFile, err := os.Open(cfg.EmployeesPath)
		if err != nil {
			log.Fatalf("Error opening employee roster: %v", err)
		}
		registered, err := parser.ParseEmployees(rosterFile, dir)
		rosterFile.Close()
		if err != nil {
			log.Fatalf("Error parsing employee roster: %v", err)
		}
		log.Infof("Registered %d employees from %s", registered, cfg.EmployeesPath)
	}

	inputFile, err := os.Open(cfg.InputPath)
	if err != nil {
		log.Fatalf("Error opening input file: %v", err)
	}
	parseStart := time.Now()
	transactions, err := parser.Parse(inputFile)
	inputFile.Close()
	if err != nil {
		log.Fatalf("Error parsing transactions: %v", err)
	}
	metrics.ParserDurationSeconds.Observe(time.Since(parseStart).Seconds())
	log.Infof("Loaded %d transactions from %s", len(transactions), cfg.InputPath)

	metrics.ResetReportGauges()
	reportStart := time.Now()
	report := transformer.GenerateReport(transactions, date, cfg.PeriodDays, dir)
	metrics.ReportDurationSeconds.Observe(time.Since(reportStart).Seconds())
	metrics.TransactionsProcessed.Observe(float64(len(transactions)))
	metrics.EmployeesAnalyzed.Set(float64(report.Summary.TotalEmployees))
	metrics.StaffingEntries.Set(float64(len(report.StaffingRequirements)))
	metrics.TotalRevenue.Set(report.Summary.TotalRevenue)
	metrics.AvgEfficiencyScore.Set(report.Summary.AvgEfficiencyScore)
	if len(report.EmployeePerformances) > 0 {
		metrics.TopEfficiencyScore.Set(report.EmployeePerformances[0].EfficiencyScore)
	}

	// Render based on format
	var rendered string
	switch cfg.Format {
	case "json":
		rendered = formatter.FormatJSON(report)
	case "csv":
		rendered = formatter.FormatCSV(report)
	default: // "text"
		rendered = formatter.FormatText(report)
	}

	if cfg.OutputPath != "" {
		if err := os.WriteFile(cfg.OutputPath, []byte(rendered), 0o644); err != nil {
			log.Fatalf("Error writing report: %v", err)
		}
		log.Infof("Report saved to %s", cfg.OutputPath)
	} else {
		fmt.Print(rendered)
	}

	// Handle metrics pushing or waiting
	if cfg.PushURL != "" {
		jobName := "personnel_report"
		if err := push.New(cfg.PushURL, jobName).Gatherer(metrics.Registry).Push(); err != nil {
			fmt.Fprintf(os.Stderr, "Error pushing to Pushgateway: %v\n", err)
		} else {
			log.Infof("Metrics successfully pushed to Pushgateway")
		}
	}

	if *wait && cfg.MetricsAddr != "" {
		fmt.Println("\nProcess kept alive for metric scraping. Press Ctrl+C to exit.")
		// Wait for interrupt signal
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		fmt.Println("\nExiting...")
	} else if cfg.MetricsAddr != "" && cfg.PushURL == "" {
		// Small delay to allow final scrape if not waiting explicitly
		// but typically batch jobs should use pushgateway or wait
		time.Sleep(100 * time.Millisecond)
	}
}

func parseReportDate(value string) (time.Time, error) {
	layouts := []string{time.RFC3339, "2006-01-02"}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
