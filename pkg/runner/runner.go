// Package runner provides the main orchestration loop for suite execution:
// either each case independently, or as an ordered flow where groups share
// login and page state.
package runner

import (
	"context"
	"fmt"

	"github.com/PBL6-cnpm/cinecheck/pkg/cases"
	"github.com/PBL6-cnpm/cinecheck/pkg/checks"
)

// Dispatcher executes one case and classifies the outcome.
type Dispatcher interface {
	Execute(c cases.Case) checks.Verdict
}

// Reporter persists verdicts.
type Reporter interface {
	Append(c cases.Case, v checks.Verdict) error
	Path() string
}

// Session restores identity and page state between flow cases.
type Session interface {
	EnsureIdentity(id cases.Identity, email, password string) error
	EnsurePrecondition(p cases.Precondition, movieID string) error
	Invalidate()
}

// Runner orchestrates the execution loop for one suite.
type Runner struct {
	Dispatcher Dispatcher
	Reporter   Reporter
	Session    Session
	Log        checks.Printer
}

// Result aggregates a run's outcome counts.
type Result struct {
	Total    int
	Passed   int
	Failed   int
	Skipped  int
	Errored  int
	Failures []string // "ID (STATUS): notes" per counted failure
}

func (r *Result) count(c cases.Case, v checks.Verdict, skipFails bool) {
	r.Total++
	switch v.Status {
	case checks.StatusPass:
		r.Passed++
		return
	case checks.StatusFail:
		r.Failed++
	case checks.StatusSkip:
		r.Skipped++
		if !skipFails {
			return
		}
	case checks.StatusError:
		r.Errored++
	}
	r.Failures = append(r.Failures, fmt.Sprintf("%s (%s): %s", c.ID, v.Status, v.Notes))
}

// RunParametrized executes every case independently, in workbook order. Skips
// do not count against the suite here: a parametrized skip means the case had
// nothing to verify, not that shared state broke.
func (r *Runner) RunParametrized(ctx context.Context, cc []cases.Case) (Result, error) {
	var res Result
	for _, c := range cc {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("run interrupted: %w", err)
		}
		v := r.execute(c)
		r.logf("%s %s: %s", c.ID, v.Status, v.Notes)
		if err := r.Reporter.Append(c, v); err != nil {
			return res, fmt.Errorf("record %s: %w", c.ID, err)
		}
		res.count(c, v, false)
	}
	if len(res.Failures) > 0 {
		return res, fmt.Errorf("%d of %d cases failed, see details in %s", len(res.Failures), res.Total, r.Reporter.Path())
	}
	return res, nil
}

// RunFlow executes cases through the flow plan: group by group, each group
// under its declared identity, each stateful case behind its precondition.
// Here a skip does count as a failure, in a flow it means the chain broke.
func (r *Runner) RunFlow(ctx context.Context, flow cases.Flow, all []cases.Case) (Result, error) {
	var res Result
	groups, extra := flow.Select(all)

	for i, gc := range groups {
		g := flow.Groups[i]
		if len(gc) == 0 {
			continue
		}
		r.logf("flow group %s: %d case(s)", g.Name, len(gc))

		email, password := groupCredentials(g, gc)
		if err := r.Session.EnsureIdentity(g.Identity, email, password); err != nil {
			// without the right identity every remaining case would fail with
			// misleading notes, abort and record what did not run
			r.abortRemaining(&res, groups[i:], fmt.Sprintf("flow aborted: %v", err))
			return res, fmt.Errorf("flow group %s: %w", g.Name, err)
		}

		for _, c := range gc {
			if err := ctx.Err(); err != nil {
				return res, fmt.Errorf("run interrupted: %w", err)
			}
			v := r.executeFlowCase(g, c)
			r.logf("%s %s: %s", c.ID, v.Status, v.Notes)
			if err := r.Reporter.Append(c, v); err != nil {
				return res, fmt.Errorf("record %s: %w", c.ID, err)
			}
			res.count(c, v, true)
		}
	}

	for _, c := range extra {
		v := checks.Verdict{Status: checks.StatusSkip, Notes: "not part of the execution plan"}
		r.logf("%s %s: %s", c.ID, v.Status, v.Notes)
		if err := r.Reporter.Append(c, v); err != nil {
			return res, fmt.Errorf("record %s: %w", c.ID, err)
		}
		res.count(c, v, true)
	}

	// leave the browser signed out for whatever runs next
	if err := r.Session.EnsureIdentity(cases.IdentityAnonymous, "", ""); err != nil {
		r.logf("final logout skipped: %v", err)
	}

	if len(res.Failures) > 0 {
		return res, fmt.Errorf("total %d/%d cases failed, see details in %s", len(res.Failures), res.Total, r.Reporter.Path())
	}
	return res, nil
}

// executeFlowCase re-establishes the group's precondition before each
// stateful case. Cases in a flow mutate shared state, so the repair runs per
// case, not per group: a successful submission hides the form the next
// submission case needs.
func (r *Runner) executeFlowCase(g cases.Group, c cases.Case) checks.Verdict {
	if g.Precondition != cases.PrecondNone && c.Feature == cases.FeatureMovieReview {
		if err := r.Session.EnsurePrecondition(g.Precondition, c.Get(cases.ColMovieID)); err != nil {
			return checks.Verdict{
				Status: checks.StatusFail,
				Notes:  fmt.Sprintf("precondition %s not met: %v", g.Precondition, err),
			}
		}
	}
	v := r.execute(c)
	// auth procedures sign in and out on their own, the tracked identity is
	// stale after they run
	if c.Feature == cases.FeatureLogin || c.Feature == cases.FeatureForgotPassword {
		r.Session.Invalidate()
	}
	return v
}

// execute runs the dispatcher behind a panic boundary. A panicking procedure
// fails its case, it must never take down the suite.
func (r *Runner) execute(c cases.Case) (v checks.Verdict) {
	defer func() {
		if p := recover(); p != nil {
			v = checks.Verdict{Status: checks.StatusFail, Notes: fmt.Sprintf("Critical error: %v", p)}
		}
	}()
	return r.Dispatcher.Execute(c)
}

// abortRemaining records every not-yet-run case of the aborted groups.
func (r *Runner) abortRemaining(res *Result, remaining [][]cases.Case, notes string) {
	for _, gc := range remaining {
		for _, c := range gc {
			v := checks.Verdict{Status: checks.StatusSkip, Notes: notes}
			if err := r.Reporter.Append(c, v); err != nil {
				r.logf("record %s: %v", c.ID, err)
			}
			res.count(c, v, true)
		}
	}
}

// groupCredentials picks login data from the group's first case that carries
// any. Anonymous groups need none.
func groupCredentials(g cases.Group, gc []cases.Case) (email, password string) {
	if g.Identity != cases.IdentityMember {
		return "", ""
	}
	for _, c := range gc {
		if e := c.Get(cases.ColEmail); e != "" {
			return cases.Resolve(e), cases.Resolve(c.Get(cases.ColPassword))
		}
	}
	return "", ""
}

func (r *Runner) logf(format string, args ...any) {
	if r.Log != nil {
		r.Log.Print(format, args...)
	}
}
