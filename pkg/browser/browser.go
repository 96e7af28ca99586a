// Package browser wraps playwright behind a small synchronous facade: navigate,
// act on selectors, wait with bounded timeouts. Check procedures depend on the
// facade's interface, not on playwright types, so they stay unit-testable.
package browser

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ErrTimeout reports that a bounded wait expired before its condition held.
// Playwright does not export its timeout error in a form callers can match,
// so every bounded-wait failure maps to this sentinel.
var ErrTimeout = errors.New("wait timed out")

// ErrNotFound reports that an immediate element lookup matched nothing.
var ErrNotFound = errors.New("element not found")

// Timeouts groups the three wait horizons used by check procedures: Short for
// probes that are expected to miss, Standard for regular page interaction,
// Long for server round trips like review submission.
type Timeouts struct {
	Short    time.Duration
	Standard time.Duration
	Long     time.Duration
}

// DefaultTimeouts returns the wait horizons tuned against the production site.
func DefaultTimeouts() Timeouts {
	return Timeouts{Short: 2 * time.Second, Standard: 10 * time.Second, Long: 15 * time.Second}
}

// Options controls browser startup.
type Options struct {
	Headless bool
	Width    int // viewport width, 0 for the 1920 default
	Height   int // viewport height, 0 for the 1080 default
	SlowMo   time.Duration
	Args     []string // extra chromium flags, appended to the built-in set
	PageLoad string   // "load" waits for the full load event, anything else means DOM content loaded
}

// Browser drives a single chromium page. Not safe for concurrent use, the
// runner executes cases sequentially.
type Browser struct {
	pw        *playwright.Playwright
	browser   playwright.Browser
	ctx       playwright.BrowserContext
	page      playwright.Page
	waitUntil *playwright.WaitUntilState
}

// Install downloads the chromium runtime if it is not present yet. Safe to
// call on every start, a cached runtime makes it a no-op.
func Install() error {
	if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
		return fmt.Errorf("install chromium runtime: %w", err)
	}
	return nil
}

// Launch starts chromium with a fresh browser context and one page.
func Launch(opts Options) (*Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args:     append([]string{"--disable-gpu", "--no-sandbox", "--disable-dev-shm-usage"}, opts.Args...),
	}
	if opts.SlowMo > 0 {
		launchOpts.SlowMo = playwright.Float(float64(opts.SlowMo.Milliseconds()))
	}
	b, err := pw.Chromium.Launch(launchOpts)
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	width, height := opts.Width, opts.Height
	if width == 0 {
		width = 1920
	}
	if height == 0 {
		height = 1080
	}
	ctx, err := b.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: width, Height: height},
	})
	if err != nil {
		_ = b.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("create browser context: %w", err)
	}

	page, err := ctx.NewPage()
	if err != nil {
		_ = ctx.Close()
		_ = b.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("open page: %w", err)
	}

	waitUntil := playwright.WaitUntilStateDomcontentloaded
	if opts.PageLoad == "load" {
		waitUntil = playwright.WaitUntilStateLoad
	}
	return &Browser{pw: pw, browser: b, ctx: ctx, page: page, waitUntil: waitUntil}, nil
}

// Close tears the whole stack down. Errors on the way out are ignored, there
// is nothing a caller can do about them.
func (b *Browser) Close() {
	if b == nil {
		return
	}
	if b.ctx != nil {
		_ = b.ctx.Close()
	}
	if b.browser != nil {
		_ = b.browser.Close()
	}
	if b.pw != nil {
		_ = b.pw.Stop()
	}
}

// Selector normalizes a raw selector into playwright's engine syntax. The case
// workbooks use XPath for almost everything, CSS occasionally. XPath is
// recognized by its leading axis, everything else is treated as CSS.
func Selector(sel string) string {
	if strings.HasPrefix(sel, "//") || strings.HasPrefix(sel, "(//") || strings.HasPrefix(sel, ".//") {
		return "xpath=" + sel
	}
	return sel
}

func (b *Browser) locator(sel string) playwright.Locator {
	return b.page.Locator(Selector(sel)).First()
}

// Navigate opens url and waits for the configured load state, DOM content
// loaded by default. Rendering waits are the caller's job, every check starts
// with an explicit element wait.
func (b *Browser) Navigate(url string) error {
	_, err := b.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: b.waitUntil,
	})
	if err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}

// URL returns the page's current address.
func (b *Browser) URL() string { return b.page.URL() }

// Click clicks the first match of sel.
func (b *Browser) Click(sel string) error {
	if err := b.locator(sel).Click(); err != nil {
		return fmt.Errorf("click %s: %w", sel, ErrNotFound)
	}
	return nil
}

// ClickNth clicks the n-th match of sel, zero-based.
func (b *Browser) ClickNth(sel string, n int) error {
	if err := b.page.Locator(Selector(sel)).Nth(n).Click(); err != nil {
		return fmt.Errorf("click %s [%d]: %w", sel, n, ErrNotFound)
	}
	return nil
}

// Fill replaces the value of the first match of sel.
func (b *Browser) Fill(sel, value string) error {
	if err := b.locator(sel).Fill(value); err != nil {
		return fmt.Errorf("fill %s: %w", sel, ErrNotFound)
	}
	return nil
}

// Text returns the text content of the first match of sel.
func (b *Browser) Text(sel string) (string, error) {
	txt, err := b.locator(sel).TextContent()
	if err != nil {
		return "", fmt.Errorf("text of %s: %w", sel, ErrNotFound)
	}
	return txt, nil
}

// Attribute returns the named attribute of the first match, "" when the
// attribute is absent.
func (b *Browser) Attribute(sel, name string) (string, error) {
	v, err := b.locator(sel).GetAttribute(name)
	if err != nil {
		return "", fmt.Errorf("attribute %s of %s: %w", name, sel, ErrNotFound)
	}
	return v, nil
}

// Count returns how many elements match sel right now.
func (b *Browser) Count(sel string) (int, error) {
	n, err := b.page.Locator(Selector(sel)).Count()
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", sel, err)
	}
	return n, nil
}

// Hover moves the pointer over the first match of sel.
func (b *Browser) Hover(sel string) error {
	if err := b.locator(sel).Hover(); err != nil {
		return fmt.Errorf("hover %s: %w", sel, ErrNotFound)
	}
	return nil
}

// HoverNth hovers the n-th match of sel, zero-based.
func (b *Browser) HoverNth(sel string, n int) error {
	if err := b.page.Locator(Selector(sel)).Nth(n).Hover(); err != nil {
		return fmt.Errorf("hover %s [%d]: %w", sel, n, ErrNotFound)
	}
	return nil
}

// Eval runs a javascript expression in the page and returns its result.
func (b *Browser) Eval(expr string) (any, error) {
	v, err := b.page.Evaluate(expr)
	if err != nil {
		return nil, fmt.Errorf("evaluate script: %w", err)
	}
	return v, nil
}

// EvalOn runs a javascript expression with the first match of sel bound as the
// single argument.
func (b *Browser) EvalOn(sel, expr string) (any, error) {
	v, err := b.locator(sel).Evaluate(expr, nil)
	if err != nil {
		return nil, fmt.Errorf("evaluate on %s: %w", sel, ErrNotFound)
	}
	return v, nil
}

// IsEnabled reports whether the first match of sel is enabled.
func (b *Browser) IsEnabled(sel string) (bool, error) {
	ok, err := b.locator(sel).IsEnabled()
	if err != nil {
		return false, fmt.Errorf("enabled state of %s: %w", sel, ErrNotFound)
	}
	return ok, nil
}

// IsChecked reports whether the first match of sel is checked.
func (b *Browser) IsChecked(sel string) (bool, error) {
	ok, err := b.locator(sel).IsChecked()
	if err != nil {
		return false, fmt.Errorf("checked state of %s: %w", sel, ErrNotFound)
	}
	return ok, nil
}

// SetChecked checks or unchecks the first match of sel.
func (b *Browser) SetChecked(sel string, checked bool) error {
	if err := b.locator(sel).SetChecked(checked); err != nil {
		return fmt.Errorf("set checked on %s: %w", sel, ErrNotFound)
	}
	return nil
}

// SelectIndex picks the option at the given index in a select element.
func (b *Browser) SelectIndex(sel string, index int) error {
	_, err := b.locator(sel).SelectOption(playwright.SelectOptionValues{Indexes: &[]int{index}})
	if err != nil {
		return fmt.Errorf("select option %d in %s: %w", index, sel, ErrNotFound)
	}
	return nil
}

// ScrollIntoView scrolls the first match of sel into the viewport.
func (b *Browser) ScrollIntoView(sel string) error {
	if err := b.locator(sel).ScrollIntoViewIfNeeded(); err != nil {
		return fmt.Errorf("scroll to %s: %w", sel, ErrNotFound)
	}
	return nil
}

// BoundingX returns the viewport x coordinate of the first match of sel.
func (b *Browser) BoundingX(sel string) (float64, error) {
	box, err := b.locator(sel).BoundingBox()
	if err != nil || box == nil {
		return 0, fmt.Errorf("bounding box of %s: %w", sel, ErrNotFound)
	}
	return box.X, nil
}

// BoundingXNth returns the viewport x coordinate of the n-th match of sel.
func (b *Browser) BoundingXNth(sel string, n int) (float64, error) {
	box, err := b.page.Locator(Selector(sel)).Nth(n).BoundingBox()
	if err != nil || box == nil {
		return 0, fmt.Errorf("bounding box of %s [%d]: %w", sel, n, ErrNotFound)
	}
	return box.X, nil
}

// WaitVisible blocks until the first match of sel is visible, ErrTimeout when
// the wait expires first.
func (b *Browser) WaitVisible(sel string, timeout time.Duration) error {
	err := b.locator(sel).WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("wait visible %s after %s: %w", sel, timeout, ErrTimeout)
	}
	return nil
}

// WaitDetached blocks until no element matches sel, ErrTimeout when the wait
// expires first.
func (b *Browser) WaitDetached(sel string, timeout time.Duration) error {
	err := b.locator(sel).WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateDetached,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("wait detached %s after %s: %w", sel, timeout, ErrTimeout)
	}
	return nil
}

// WaitURLContains blocks until the page url contains sub.
func (b *Browser) WaitURLContains(sub string, timeout time.Duration) error {
	return b.waitURL(timeout, func(url string) bool { return strings.Contains(url, sub) },
		fmt.Sprintf("url to contain %q", sub))
}

// WaitURLNotContains blocks until the page url no longer contains sub.
func (b *Browser) WaitURLNotContains(sub string, timeout time.Duration) error {
	return b.waitURL(timeout, func(url string) bool { return !strings.Contains(url, sub) },
		fmt.Sprintf("url to leave %q", sub))
}

// waitURL polls the page url. Playwright's WaitForURL matches globs but has no
// negated form, polling covers both directions uniformly.
func (b *Browser) waitURL(timeout time.Duration, ok func(string) bool, what string) error {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		if ok(b.page.URL()) {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("wait for %s after %s: %w", what, timeout, ErrTimeout)
		}
		<-ticker.C
	}
}

// Pause sleeps for d. A few checks need a fixed settle after scrolling or
// submitting, where no DOM condition exists to wait on.
func (b *Browser) Pause(d time.Duration) { time.Sleep(d) }
