// Package main provides cinecheck - browser-driven e2e checks for the CinesTech web app.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/PBL6-cnpm/cinecheck/pkg/browser"
	"github.com/PBL6-cnpm/cinecheck/pkg/cases"
	"github.com/PBL6-cnpm/cinecheck/pkg/checks"
	"github.com/PBL6-cnpm/cinecheck/pkg/config"
	"github.com/PBL6-cnpm/cinecheck/pkg/notify"
	"github.com/PBL6-cnpm/cinecheck/pkg/progress"
	"github.com/PBL6-cnpm/cinecheck/pkg/report"
	"github.com/PBL6-cnpm/cinecheck/pkg/runner"
	"github.com/PBL6-cnpm/cinecheck/pkg/session"
)

// opts holds all command-line options.
type opts struct {
	BaseURL   string `short:"u" long:"base-url" env:"E2E_BASE_URL" description:"deployment under test, overrides config"`
	Suite     string `short:"s" long:"suite" default:"all" choice:"auth" choice:"movie" choice:"review" choice:"all" description:"suite to run"`
	CasesDir  string `long:"cases-dir" description:"directory with case workbooks, overrides config"`
	ReportDir string `long:"report-dir" description:"directory for result workbooks, overrides config"`
	FlowFile  string `long:"flow-file" description:"custom review flow plan, overrides config"`
	Headed    bool   `long:"headed" description:"run the browser with a visible window"`
	SlowMo    int    `long:"slow-mo" description:"delay in ms between browser actions"`
	Generate  bool   `short:"g" long:"generate" description:"write the built-in case workbooks and exit"`
	List      bool   `short:"l" long:"list" description:"render the built-in case catalog and exit"`
	Watch     bool   `short:"w" long:"watch" description:"rerun suites when a case workbook changes"`
	Debug     bool   `short:"d" long:"debug" description:"log every loaded case before execution"`
	NoColor   bool   `long:"no-color" description:"disable color output"`
	Version   bool   `short:"v" long:"version" description:"print version and exit"`
}

var revision = "unknown"

// suitePhases maps suite names to progress phases for color coding.
var suitePhases = map[string]progress.Phase{
	"auth":   progress.PhaseAuth,
	"movie":  progress.PhaseMovie,
	"review": progress.PhaseReview,
}

func main() {
	fmt.Printf("cinecheck %s\n", revision)

	// load .env before flag parsing so env-bound flags pick it up
	_ = godotenv.Load()

	var o opts
	parser := flags.NewParser(&o, flags.Default)
	parser.Usage = "[OPTIONS]"

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if o.Version {
		os.Exit(0)
	}

	// setup context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, o); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, o opts) error {
	cfg, err := config.Load("") // empty string uses default location
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyOverrides(cfg, o)

	suites := selectSuites(o.Suite)

	if o.List {
		return listCatalog(suites)
	}
	if o.Generate {
		return generateWorkbooks(cfg.CasesDir, suites)
	}

	log, err := progress.NewLogger(progress.Config{
		ReportDir: cfg.ReportDir,
		Suite:     o.Suite,
		BaseURL:   cfg.BaseURL,
		NoColor:   o.NoColor,
	})
	if err != nil {
		return fmt.Errorf("create progress logger: %w", err)
	}
	defer log.Close()

	notifier, err := notify.New(cfg.NotifyParams(), log)
	if err != nil {
		return fmt.Errorf("notifications: %w", err)
	}

	started := time.Now()
	res, runErr := runSuites(ctx, cfg, o, suites, log)
	notifier.Send(ctx, buildNotifyResult(cfg, o.Suite, res, runErr, time.Since(started)))

	if o.Watch {
		// in watch mode a failing run is not fatal, the next save gets a rerun
		if runErr != nil {
			log.Error("run: %v", runErr)
		}
		paths := make([]string, 0, len(suites))
		for _, name := range suites {
			paths = append(paths, workbookPath(cfg.CasesDir, name))
		}
		watchErr := runner.Watch(ctx, paths, log, func() {
			rerunStart := time.Now()
			rerunRes, rerunErr := runSuites(ctx, cfg, o, suites, log)
			notifier.Send(ctx, buildNotifyResult(cfg, o.Suite, rerunRes, rerunErr, time.Since(rerunStart)))
			if rerunErr != nil {
				log.Error("rerun: %v", rerunErr)
			}
		})
		if errors.Is(watchErr, context.Canceled) {
			return nil
		}
		return watchErr
	}

	if runErr != nil {
		return runErr
	}
	log.Print("all suites completed in %s", log.Elapsed())
	return nil
}

// applyOverrides lets CLI flags win over file configuration.
func applyOverrides(cfg *config.Config, o opts) {
	if o.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(o.BaseURL, "/")
	}
	if o.CasesDir != "" {
		cfg.CasesDir = o.CasesDir
	}
	if o.ReportDir != "" {
		cfg.ReportDir = o.ReportDir
	}
	if o.FlowFile != "" {
		cfg.FlowFile = o.FlowFile
	}
	if o.Headed {
		cfg.Headless = false
	}
	if o.SlowMo > 0 {
		cfg.SlowMoMs = o.SlowMo
	}
}

// selectSuites expands the --suite flag into the execution list.
func selectSuites(suite string) []string {
	if suite == "" || suite == "all" {
		return cases.BuiltinNames()
	}
	return []string{suite}
}

// runSuites launches one browser and runs every selected suite against it.
func runSuites(ctx context.Context, cfg *config.Config, o opts, suites []string, log *progress.Logger) (runner.Result, error) {
	if err := browser.Install(); err != nil {
		return runner.Result{}, err
	}

	b, err := browser.Launch(browser.Options{
		Headless: cfg.Headless,
		Width:    cfg.WindowWidth,
		Height:   cfg.WindowHeight,
		SlowMo:   time.Duration(cfg.SlowMoMs) * time.Millisecond,
		Args:     cfg.BrowserArgs,
		PageLoad: cfg.PageLoad,
	})
	if err != nil {
		return runner.Result{}, fmt.Errorf("launch browser: %w", err)
	}
	defer b.Close()

	var total runner.Result
	var failed []string
	for _, name := range suites {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return total, fmt.Errorf("run interrupted: %w", ctxErr)
		}
		log.SetPhase(suitePhases[name])
		log.Print("suite %s against %s", name, cfg.BaseURL)

		res, suiteErr := runSuite(ctx, b, cfg, o, name, log)
		mergeResult(&total, res)
		if suiteErr != nil {
			log.Error("suite %s: %v", name, suiteErr)
			failed = append(failed, name)
			continue
		}
		log.Print("suite %s done: %d passed, %d failed, %d skipped", name, res.Passed, res.Failed, res.Skipped)
	}

	if len(total.Failures) > 0 {
		log.PrintAligned("failing cases:\n" + strings.Join(total.Failures, "\n"))
	}
	if len(failed) > 0 {
		return total, fmt.Errorf("%d of %d suites failed: %s", len(failed), len(suites), strings.Join(failed, ", "))
	}
	return total, nil
}

// runSuite loads one suite's workbook and executes it. A workbook with no
// cases is not an error, the suite is reported as empty and skipped.
func runSuite(ctx context.Context, b *browser.Browser, cfg *config.Config, o opts, name string, log *progress.Logger) (runner.Result, error) {
	cc, err := cases.Load(workbookPath(cfg.CasesDir, name))
	if errors.Is(err, cases.ErrNoCases) {
		log.Warn("suite %s: %v", name, err)
		return runner.Result{}, nil
	}
	if err != nil {
		return runner.Result{}, fmt.Errorf("load cases: %w", err)
	}
	if o.Debug {
		for _, c := range cc {
			log.Print("loaded %s [%s/%s] %s", c.ID, c.FeatureName(), c.AssertType(), c.Scenario)
		}
	}

	rep := report.NewWriter(filepath.Join(cfg.ReportDir, name+"_results.xlsx"))
	if err := rep.Reset(); err != nil {
		if errors.Is(err, report.ErrReportLocked) {
			return runner.Result{}, fmt.Errorf("%w: close %s and rerun", err, rep.Path())
		}
		return runner.Result{}, fmt.Errorf("reset report: %w", err)
	}

	tm := timeoutsFromConfig(cfg)
	r := &runner.Runner{
		Dispatcher: &checks.Dispatcher{Browser: b, BaseURL: cfg.BaseURL, Timeouts: tm, Log: log},
		Reporter:   rep,
		Log:        log,
	}

	if name == "review" {
		flow, flowErr := cases.LoadFlow(cfg.FlowFile)
		if flowErr != nil {
			return runner.Result{}, fmt.Errorf("load flow plan: %w", flowErr)
		}
		r.Session = session.New(b, cfg.BaseURL, tm, log)
		return r.RunFlow(ctx, flow, cc)
	}
	return r.RunParametrized(ctx, cc)
}

// timeoutsFromConfig maps configured milliseconds onto wait horizons, filling
// unset values with the defaults.
func timeoutsFromConfig(cfg *config.Config) browser.Timeouts {
	tm := browser.DefaultTimeouts()
	if cfg.ShortTimeoutMs > 0 {
		tm.Short = time.Duration(cfg.ShortTimeoutMs) * time.Millisecond
	}
	if cfg.StandardTimeoutMs > 0 {
		tm.Standard = time.Duration(cfg.StandardTimeoutMs) * time.Millisecond
	}
	if cfg.LongTimeoutMs > 0 {
		tm.Long = time.Duration(cfg.LongTimeoutMs) * time.Millisecond
	}
	return tm
}

func mergeResult(total *runner.Result, res runner.Result) {
	total.Total += res.Total
	total.Passed += res.Passed
	total.Failed += res.Failed
	total.Skipped += res.Skipped
	total.Errored += res.Errored
	total.Failures = append(total.Failures, res.Failures...)
}

func buildNotifyResult(cfg *config.Config, suite string, res runner.Result, runErr error, elapsed time.Duration) notify.Result {
	r := notify.Result{
		Status:   "success",
		Suite:    suite,
		BaseURL:  cfg.BaseURL,
		Duration: elapsed.Round(time.Second).String(),
		Total:    res.Total,
		Passed:   res.Passed,
		Failed:   res.Failed,
		Skipped:  res.Skipped,
		Report:   cfg.ReportDir,
	}
	if runErr != nil {
		r.Status = "failure"
		r.Error = runErr.Error()
	}
	return r
}

// workbookPath is where a suite's case workbook lives.
func workbookPath(casesDir, suite string) string {
	return filepath.Join(casesDir, suite+"_cases.xlsx")
}

// generateWorkbooks seeds the cases directory with the built-in workbooks.
// Existing files are never overwritten, they may carry hand-edited data.
func generateWorkbooks(casesDir string, suites []string) error {
	if err := os.MkdirAll(casesDir, 0o750); err != nil {
		return fmt.Errorf("create cases dir: %w", err)
	}
	for _, name := range suites {
		s, ok := cases.Builtin(name)
		if !ok {
			return fmt.Errorf("no built-in suite %q", name)
		}
		path := workbookPath(casesDir, name)
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("%s already exists, remove it to regenerate\n", path)
			continue
		}
		if err := cases.Generate(path, s); err != nil {
			return fmt.Errorf("generate %s: %w", path, err)
		}
		fmt.Printf("wrote %s (%d cases)\n", path, len(s.Rows))
	}
	return nil
}

// listCatalog renders the built-in case catalog as markdown in the terminal.
func listCatalog(suites []string) error {
	var b strings.Builder
	b.WriteString("# cinecheck case catalog\n")
	for _, name := range suites {
		s, ok := cases.Builtin(name)
		if !ok {
			return fmt.Errorf("no built-in suite %q", name)
		}
		fmt.Fprintf(&b, "\n## %s (%d cases)\n\n", s.Name, len(s.Rows))
		b.WriteString("| ID | Feature | Check | Scenario |\n|---|---|---|---|\n")
		for _, c := range s.Cases() {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ID, c.FeatureName(), c.AssertType(), c.Scenario)
		}
	}

	out, err := glamour.Render(b.String(), "auto")
	if err != nil {
		return fmt.Errorf("render catalog: %w", err)
	}
	fmt.Print(out)
	return nil
}
