package checks

import (
	"fmt"
	"strings"
	"time"

	"github.com/PBL6-cnpm/cinecheck/pkg/cases"
)

// redirectWait bounds the post-click url check in the booking redirect case.
// Shorter than the standard horizon, a redirect either happens promptly or not.
const redirectWait = 3 * time.Second

func (d *Dispatcher) checkMovieDetail(c cases.Case) Verdict {
	b, tm := d.Browser, d.Timeouts

	if err := b.Navigate(d.movieURL(c)); err != nil {
		return errv(fmt.Sprintf("movie page unreachable: %v", err))
	}

	sel := c.Get(cases.ColAssertSelector)
	clickSel := c.Get(cases.ColClickSelector)
	expected := c.Get(cases.ColExpectedText)

	switch c.Kind {
	case cases.KindScrollLock:
		if err := b.Click(clickSel); err != nil {
			return fail(fmt.Sprintf("trailer button not clickable: %v", err))
		}
		if err := b.WaitVisible(SelTrailerIframe, tm.Short); err != nil {
			return fail("Trailer modal did not open within 2s.")
		}
		v, err := b.Eval("document.body.style.overflow")
		if err != nil {
			return errv(fmt.Sprintf("read body overflow: %v", err))
		}
		overflow, _ := v.(string)
		if overflow == "hidden" {
			return pass("Scroll lock implemented correctly.")
		}
		return fail(fmt.Sprintf("Scroll lock missing. Body overflow=%q (expected 'hidden').", overflow))

	case cases.KindBackdrop:
		target := sel
		if target == "" {
			target = SelBackdropImage
		}
		if err := b.WaitVisible(target, tm.Short); err != nil {
			return fail("Backdrop image not found (timeout).")
		}
		src, err := b.Attribute(target, "src")
		if err != nil {
			return fail("Backdrop image present but src unreadable.")
		}
		if strings.HasPrefix(src, "http") || strings.HasPrefix(src, "/") {
			return pass(fmt.Sprintf("Backdrop image loaded: %s", truncate(src, 50)))
		}
		return fail("Backdrop src invalid or null.")

	case cases.KindShowtimesAvailable:
		if v, ok := d.selectCinemaAndDate(); !ok {
			return v
		}
		b.Pause(time.Second) // showtimes load through a separate request
		n, err := b.Count(SelShowtimeButton)
		if err != nil {
			return errv(fmt.Sprintf("count showtimes: %v", err))
		}
		if n > 0 {
			return pass(fmt.Sprintf("Found %d showtime(s).", n))
		}
		if missing, _ := b.Count(SelNoShowtimes); missing > 0 {
			return fail("No showtimes available (test data issue).")
		}
		return fail("No showtimes and no 'unavailable' message displayed.")

	case cases.KindLoginRedirect:
		if v, ok := d.selectCinemaAndDate(); !ok {
			return v
		}
		b.Pause(settleAfterSubmit)
		n, err := b.Count(SelShowtimeButton)
		if err != nil {
			return errv(fmt.Sprintf("count showtimes: %v", err))
		}
		if n == 0 {
			return skip("No showtimes to test redirect.")
		}
		if err := b.ClickNth(SelShowtimeButton, 0); err != nil {
			return fail(fmt.Sprintf("showtime not clickable: %v", err))
		}
		if err := b.WaitURLContains(expected, redirectWait); err != nil {
			if strings.Contains(b.URL(), "/booking") {
				return fail("User already logged in (test config issue).")
			}
			return fail(fmt.Sprintf("Unexpected navigation to: %s", b.URL()))
		}
		return pass("Correctly redirected to login page.")

	case cases.KindUpcomingLogic:
		if err := b.WaitVisible(SelUpcomingRelease, tm.Short); err == nil {
			return fail("[BUG] 'Upcoming Release' shown for currently showing movie.")
		}
		if err := b.WaitVisible(SelCinemaLabel, tm.Short); err != nil {
			return fail("Neither 'Upcoming Release' nor 'Select Cinema' dropdown found.")
		}
		return pass("Cinema selection displayed correctly.")

	case cases.KindElementVisible:
		// the spinner only exists during load, probe briefly and accept a miss
		if strings.Contains(sel, "animate-spin") {
			if err := b.WaitVisible(sel, time.Second); err != nil {
				return pass("Page loaded fast. Spinner not visible (acceptable).")
			}
			return pass("Loading spinner displayed.")
		}
		if err := b.WaitVisible(sel, tm.Standard); err != nil {
			return fail(fmt.Sprintf("Element not found: %s", sel))
		}
		return pass(fmt.Sprintf("Element visible: %s", sel))

	case cases.KindElementVisibleAfterClick:
		if clickSel != "" {
			if err := b.Click(clickSel); err != nil {
				return fail(fmt.Sprintf("Element not found: %s", clickSel))
			}
		}
		b.Pause(settleAfterSubmit)
		if err := b.WaitVisible(sel, tm.Standard); err != nil {
			return fail(fmt.Sprintf("Element not found: %s", sel))
		}
		return pass(fmt.Sprintf("Element %q visible after click.", sel))

	case cases.KindURLContainsAfterClick:
		if err := b.Click(sel); err != nil {
			return fail(fmt.Sprintf("Element not found: %s", sel))
		}
		if err := b.WaitURLContains(expected, tm.Standard); err != nil {
			return fail(fmt.Sprintf("URL did not change to contain %q, at: %s", expected, b.URL()))
		}
		return pass(fmt.Sprintf("Navigation successful. URL contains: %q", expected))

	case cases.KindElementDisabled:
		if err := b.WaitVisible(sel, tm.Standard); err != nil {
			return fail(fmt.Sprintf("Element not found: %s", sel))
		}
		enabled, err := b.IsEnabled(sel)
		if err != nil {
			return errv(fmt.Sprintf("enabled state: %v", err))
		}
		if enabled {
			return fail(fmt.Sprintf("[BUG] Element %q enabled (expected disabled).", sel))
		}
		return pass(fmt.Sprintf("Element %q correctly disabled.", sel))

	case cases.KindElementVisibleAfterHover:
		if v, ok := d.openActorPage(); !ok {
			return v
		}
		if err := b.WaitVisible(SelActorMovieCards, tm.Standard); err != nil {
			return fail("No movie cards on actor page.")
		}
		if err := b.HoverNth(SelActorMovieCards, 0); err != nil {
			return fail(fmt.Sprintf("hover movie card: %v", err))
		}
		b.Pause(200 * time.Millisecond)
		if err := b.WaitVisible(SelPreviewModal, tm.Standard); err != nil {
			return fail("Preview modal not displayed on hover.")
		}
		return pass("Preview modal displayed on hover.")

	case cases.KindModalFlip:
		if v, ok := d.openActorPage(); !ok {
			return v
		}
		total, err := b.Count(SelActorMovieCards)
		if err != nil {
			return errv(fmt.Sprintf("count movie cards: %v", err))
		}
		if total < 2 {
			return fail(fmt.Sprintf("Insufficient test data: only %d movie(s).", total))
		}
		// pick a card near the right edge of the grid
		idx := 4
		if idx > total-1 {
			idx = total - 1
		}
		if err := b.HoverNth(SelActorMovieCards, idx); err != nil {
			return fail(fmt.Sprintf("hover movie card: %v", err))
		}
		b.Pause(settleAfterSubmit)
		if err := b.WaitVisible(SelPreviewModal, tm.Short); err != nil {
			return fail("Modal not displayed on hover.")
		}
		modalX, err := b.BoundingX(SelPreviewModal)
		if err != nil {
			return errv(fmt.Sprintf("modal position: %v", err))
		}
		cardX, err := b.BoundingXNth(SelActorMovieCards, idx)
		if err != nil {
			return errv(fmt.Sprintf("card position: %v", err))
		}
		if modalX < cardX {
			return pass("Modal flip working correctly.")
		}
		return fail(fmt.Sprintf("Modal flip not implemented (modal x=%.0f, card x=%.0f).", modalX, cardX))
	}

	return skip(fmt.Sprintf("unknown assert type: %q", c.AssertType()))
}

// selectCinemaAndDate picks the first real option in both booking dropdowns.
// Returns ok=false with the verdict to report when the dropdowns are missing.
func (d *Dispatcher) selectCinemaAndDate() (Verdict, bool) {
	b, tm := d.Browser, d.Timeouts
	if err := b.WaitVisible(SelCinemaSelect, tm.Standard); err != nil {
		return fail("Cinema dropdown not found."), false
	}
	if err := b.SelectIndex(SelCinemaSelect, 1); err != nil {
		return fail(fmt.Sprintf("select cinema: %v", err)), false
	}
	if err := b.WaitVisible(SelDateSelect, tm.Standard); err != nil {
		return fail("Date dropdown not found."), false
	}
	if err := b.SelectIndex(SelDateSelect, 1); err != nil {
		return fail(fmt.Sprintf("select date: %v", err)), false
	}
	return Verdict{}, true
}

// openActorPage navigates from the cast list to the first actor's page.
func (d *Dispatcher) openActorPage() (Verdict, bool) {
	b, tm := d.Browser, d.Timeouts
	if err := b.Click(SelCastActorLink); err != nil {
		return fail(fmt.Sprintf("Element not found: %s", SelCastActorLink)), false
	}
	if err := b.WaitVisible(SelActorMoviesHead, tm.Standard); err != nil {
		return fail("Actor page did not load its movie list."), false
	}
	return Verdict{}, true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
