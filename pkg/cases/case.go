// Package cases provides loading and decoding of spreadsheet-backed test case
// definitions: one workbook row per case, columns keyed by the header row.
package cases

import (
	"strconv"
	"strings"
)

// Feature identifies which dispatcher handles a case. Decoded once at load
// time from the raw Feature column so misspelled features surface as
// FeatureUnknown instead of a silent branch miss deep inside a dispatcher.
type Feature int

// Feature variants.
const (
	FeatureUnknown Feature = iota
	FeatureLogin
	FeatureForgotPassword
	FeatureMovieDetail // loading, layout, hero, cast, actor detail, booking
	FeatureMovieReview
	FeatureMyReviews
)

// String returns the canonical feature name.
func (f Feature) String() string {
	switch f {
	case FeatureLogin:
		return "login"
	case FeatureForgotPassword:
		return "forgot password"
	case FeatureMovieDetail:
		return "movie detail"
	case FeatureMovieReview:
		return "movie review"
	case FeatureMyReviews:
		return "my reviews page"
	default:
		return "unknown"
	}
}

// movieDetailFeatures are the per-section feature labels the movie case
// workbook uses. They all route to the movie detail dispatcher.
var movieDetailFeatures = map[string]bool{
	"loading":        true,
	"layout":         true,
	"moviehero":      true,
	"castsection":    true,
	"actordetail":    true,
	"bookingsection": true,
	"movie detail":   true,
}

// ParseFeature maps a raw Feature cell to its variant, case-insensitively.
func ParseFeature(s string) Feature {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "login":
		return FeatureLogin
	case "forgot password":
		return FeatureForgotPassword
	case "movie review":
		return FeatureMovieReview
	case "my reviews page":
		return FeatureMyReviews
	}
	if movieDetailFeatures[v] {
		return FeatureMovieDetail
	}
	return FeatureUnknown
}

// Kind identifies the verification procedure for a case within its feature.
type Kind int

// Assertion kinds. KindUnknown always dispatches to SKIP so new case types can
// be staged in a workbook before their procedure exists.
const (
	KindUnknown Kind = iota

	// auth
	KindHTML5Required
	KindHTML5TypeMismatch
	KindErrorBanner
	KindLoginSuccess
	KindRememberMe
	KindForgotSuccess

	// movie detail
	KindElementVisible
	KindElementVisibleAfterClick
	KindURLContainsAfterClick
	KindElementDisabled
	KindElementVisibleAfterHover
	KindModalFlip
	KindScrollLock
	KindBackdrop
	KindUpcomingLogic
	KindShowtimesAvailable
	KindLoginRedirect

	// review
	KindReviewHeroCheck
	KindReviewFormHidden
	KindRedirectToLogin
	KindReviewListVisible
	KindReviewSubmitSuccess
	KindUIErrorMessage
	KindReviewSelfOnTop
	KindReviewRemoveVisible
	KindReviewRemoveSuccess
	KindReviewFormVisible
	KindReviewPagination
	KindReviewListUpdated
	KindReviewRemoveProfile
)

// kindNames maps the raw AssertType strings (trimmed, lower-cased) to kinds.
var kindNames = map[string]Kind{
	"html5_required":                      KindHTML5Required,
	"html5_type_mismatch":                 KindHTML5TypeMismatch,
	"error_banner":                        KindErrorBanner,
	"login_success":                       KindLoginSuccess,
	"remember_me":                         KindRememberMe,
	"forgot_success":                      KindForgotSuccess,
	"element_visible":                     KindElementVisible,
	"element_visible_after_click":         KindElementVisibleAfterClick,
	"url_contains_after_click":            KindURLContainsAfterClick,
	"element_is_disabled":                 KindElementDisabled,
	"element_visible_after_hover":         KindElementVisibleAfterHover,
	"check_modal_flip_fail":               KindModalFlip,
	"check_scroll_lock_fail":              KindScrollLock,
	"check_backdrop_fail":                 KindBackdrop,
	"check_upcoming_logic_fail":           KindUpcomingLogic,
	"element_visible_after_selection_fail": KindShowtimesAvailable,
	"url_redirect_fail":                   KindLoginRedirect,
	"review_hero_check":                   KindReviewHeroCheck,
	"review_form_hidden":                  KindReviewFormHidden,
	"redirect_to_login":                   KindRedirectToLogin,
	"review_list_visible":                 KindReviewListVisible,
	"review_submit_success":               KindReviewSubmitSuccess,
	"ui_error_message":                    KindUIErrorMessage,
	"review_self_on_top":                  KindReviewSelfOnTop,
	"review_remove_visible":               KindReviewRemoveVisible,
	"review_remove_success":               KindReviewRemoveSuccess,
	"review_form_visible":                 KindReviewFormVisible,
	"review_pagination_success":           KindReviewPagination,
	"review_list_updated":                 KindReviewListUpdated,
	"review_remove_success_profile":       KindReviewRemoveProfile,
}

// ParseKind maps a raw AssertType cell to its variant, case-insensitively.
func ParseKind(s string) Kind {
	if k, ok := kindNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k
	}
	return KindUnknown
}

// Well-known column names.
const (
	ColCaseID            = "CaseID"
	ColFeature           = "Feature"
	ColScenario          = "Scenario"
	ColPreconditions     = "Preconditions"
	ColSteps             = "Steps"
	ColExpectedResult    = "ExpectedResult"
	ColAssertType        = "AssertType"
	ColExpectedUIMessage = "ExpectedUIMessage"

	ColEmail          = "Data_Email"
	ColPassword       = "Data_Password"
	ColRememberMe     = "Data_RememberMe"
	ColResetEmail     = "Data_ResetEmail"
	ColMovieID        = "Data_MovieID"
	ColAssertSelector = "Data_AssertSelector"
	ColExpectedText   = "Data_ExpectedText"
	ColClickSelector  = "Data_ClickSelector"
	ColRating         = "Data_Rating"
	ColComment        = "Data_Comment"
	ColUserFullName   = "Data_User_FullName"
)

// Case is one normalized test case row. The decoded Feature and Kind are fixed
// at construction; the raw column values stay available through Get.
type Case struct {
	ID       string
	Feature  Feature
	Kind     Kind
	Scenario string

	fields map[string]string
}

// New builds a Case from a header row and a matching data row. Every cell is
// normalized: trimmed, nil/missing mapped to the empty string. Extra cells
// beyond the header are dropped.
func New(headers, cells []string) Case {
	fields := make(map[string]string, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		v := ""
		if i < len(cells) {
			v = strings.TrimSpace(cells[i])
		}
		fields[h] = v
	}
	return Case{
		ID:       fields[ColCaseID],
		Feature:  ParseFeature(fields[ColFeature]),
		Kind:     ParseKind(fields[ColAssertType]),
		Scenario: fields[ColScenario],
		fields:   fields,
	}
}

// Get returns the normalized value of a column, "" when absent.
func (c Case) Get(col string) string { return c.fields[col] }

// FeatureName returns the raw Feature cell as authored in the workbook.
func (c Case) FeatureName() string { return c.fields[ColFeature] }

// AssertType returns the raw AssertType cell as authored in the workbook.
func (c Case) AssertType() string { return c.fields[ColAssertType] }

// Rating returns Data_Rating as an int, 0 when absent or not numeric.
// Workbook cells may carry a float representation ("8.0"), so parse leniently.
func (c Case) Rating() int {
	v := c.fields[ColRating]
	if v == "" {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f)
	}
	return 0
}

// Empty reports whether every cell of the case is empty. All-empty rows are
// authoring artifacts and are dropped at load time.
func (c Case) Empty() bool {
	for _, v := range c.fields {
		if v != "" {
			return false
		}
	}
	return true
}
