package checks

// Status is the outcome class of a single case.
type Status string

// Status values written to the report. ERROR marks cases the dispatcher could
// not even start, for example an unknown feature combined with a missing
// selector. SKIP marks cases that deliberately did not run.
const (
	StatusPass  Status = "PASS"
	StatusFail  Status = "FAIL"
	StatusSkip  Status = "SKIP"
	StatusError Status = "ERROR"
)

// Verdict is what executing one case produced: an outcome class plus a
// human-readable explanation for the report.
type Verdict struct {
	Status Status
	Notes  string
}

func pass(notes string) Verdict { return Verdict{Status: StatusPass, Notes: notes} }
func fail(notes string) Verdict { return Verdict{Status: StatusFail, Notes: notes} }
func skip(notes string) Verdict { return Verdict{Status: StatusSkip, Notes: notes} }
func errv(notes string) Verdict { return Verdict{Status: StatusError, Notes: notes} }

// Failed reports whether the verdict counts against the suite.
func (v Verdict) Failed() bool { return v.Status == StatusFail || v.Status == StatusError }
