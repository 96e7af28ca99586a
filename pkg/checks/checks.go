// Package checks implements the verification procedure behind each case kind.
// A Dispatcher routes a loaded case to its procedure and converts whatever
// happens in the browser into a Verdict.
package checks

import (
	"fmt"
	"time"

	"github.com/PBL6-cnpm/cinecheck/pkg/browser"
	"github.com/PBL6-cnpm/cinecheck/pkg/cases"
)

// Browser is the page-driving surface procedures need. *browser.Browser
// implements it, tests substitute a scripted fake.
type Browser interface {
	Navigate(url string) error
	URL() string
	Click(sel string) error
	ClickNth(sel string, n int) error
	Fill(sel, value string) error
	Text(sel string) (string, error)
	Attribute(sel, name string) (string, error)
	Count(sel string) (int, error)
	Hover(sel string) error
	HoverNth(sel string, n int) error
	Eval(expr string) (any, error)
	EvalOn(sel, expr string) (any, error)
	IsEnabled(sel string) (bool, error)
	IsChecked(sel string) (bool, error)
	SetChecked(sel string, checked bool) error
	SelectIndex(sel string, index int) error
	ScrollIntoView(sel string) error
	BoundingX(sel string) (float64, error)
	BoundingXNth(sel string, n int) (float64, error)
	WaitVisible(sel string, timeout time.Duration) error
	WaitDetached(sel string, timeout time.Duration) error
	WaitURLContains(sub string, timeout time.Duration) error
	WaitURLNotContains(sub string, timeout time.Duration) error
	Pause(d time.Duration)
}

// Printer is the logging surface, satisfied by progress.Logger.
type Printer interface {
	Print(format string, args ...any)
}

// Dispatcher executes cases against one browser and one deployment.
type Dispatcher struct {
	Browser  Browser
	BaseURL  string
	Timeouts browser.Timeouts
	Log      Printer
}

// Execute runs a single case and never returns an error: every outcome,
// including infrastructure trouble, is expressed as a Verdict so the suite
// keeps moving.
func (d *Dispatcher) Execute(c cases.Case) Verdict {
	if d.Browser == nil {
		return errv("no browser attached")
	}
	switch c.Feature {
	case cases.FeatureLogin:
		return d.checkLogin(c)
	case cases.FeatureForgotPassword:
		return d.checkForgotPassword(c)
	case cases.FeatureMovieDetail:
		return d.checkMovieDetail(c)
	case cases.FeatureMovieReview:
		return d.checkMovieReview(c)
	case cases.FeatureMyReviews:
		return d.checkMyReviews(c)
	default:
		return skip(fmt.Sprintf("unhandled feature: %s", c.FeatureName()))
	}
}

func (d *Dispatcher) logf(format string, args ...any) {
	if d.Log != nil {
		d.Log.Print(format, args...)
	}
}

// movieURL builds the detail page address for a case, falling back to an
// invalid id so a missing cell still produces a deterministic page.
func (d *Dispatcher) movieURL(c cases.Case) string {
	id := c.Get(cases.ColMovieID)
	if id == "" {
		id = "invalid-uuid-123"
	}
	return d.BaseURL + "/movie/" + id
}
