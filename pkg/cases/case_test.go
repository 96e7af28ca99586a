package cases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeature(t *testing.T) {
	tbl := []struct {
		raw  string
		want Feature
	}{
		{"Login", FeatureLogin},
		{"login", FeatureLogin},
		{"  Forgot Password  ", FeatureForgotPassword},
		{"Movie Review", FeatureMovieReview},
		{"My Reviews Page", FeatureMyReviews},
		{"Loading", FeatureMovieDetail},
		{"Layout", FeatureMovieDetail},
		{"MovieHero", FeatureMovieDetail},
		{"CastSection", FeatureMovieDetail},
		{"ActorDetail", FeatureMovieDetail},
		{"BookingSection", FeatureMovieDetail},
		{"", FeatureUnknown},
		{"Checkout", FeatureUnknown},
	}
	for _, tt := range tbl {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFeature(tt.raw))
		})
	}
}

func TestParseKind(t *testing.T) {
	assert.Equal(t, KindHTML5Required, ParseKind("html5_required"))
	assert.Equal(t, KindHTML5Required, ParseKind("  HTML5_Required "))
	assert.Equal(t, KindModalFlip, ParseKind("check_modal_flip_fail"))
	assert.Equal(t, KindReviewRemoveProfile, ParseKind("review_remove_success_profile"))
	assert.Equal(t, KindUnknown, ParseKind("not_a_kind"))
	assert.Equal(t, KindUnknown, ParseKind(""))
}

func TestNewNormalizesCells(t *testing.T) {
	headers := []string{ColCaseID, ColFeature, ColScenario, ColAssertType, ColEmail, ""}
	cells := []string{" TC01 ", " Login ", "scenario", "login_success", "", "dropped", "beyond header"}

	c := New(headers, cells)
	assert.Equal(t, "TC01", c.ID)
	assert.Equal(t, FeatureLogin, c.Feature)
	assert.Equal(t, KindLoginSuccess, c.Kind)
	assert.Equal(t, "scenario", c.Scenario)
	assert.Equal(t, "", c.Get(ColEmail))
	assert.Equal(t, "", c.Get("NoSuchColumn"))
	assert.Equal(t, "Login", c.FeatureName(), "raw cell preserved after trimming")
	assert.False(t, c.Empty())
}

func TestNewShortRow(t *testing.T) {
	headers := []string{ColCaseID, ColFeature, ColAssertType}
	c := New(headers, []string{"TC02"})
	assert.Equal(t, "TC02", c.ID)
	assert.Equal(t, FeatureUnknown, c.Feature)
	assert.Equal(t, KindUnknown, c.Kind)
}

func TestCaseEmpty(t *testing.T) {
	headers := []string{ColCaseID, ColFeature, ColScenario}
	assert.True(t, New(headers, []string{"", "  ", ""}).Empty())
	assert.True(t, New(headers, nil).Empty())
	assert.False(t, New(headers, []string{"", "", "x"}).Empty())
}

func TestCaseRating(t *testing.T) {
	headers := []string{ColCaseID, ColRating}
	tbl := []struct {
		raw  string
		want int
	}{
		{"8", 8},
		{"8.0", 8},
		{"0", 0},
		{"", 0},
		{"many", 0},
	}
	for _, tt := range tbl {
		t.Run(tt.raw, func(t *testing.T) {
			c := New(headers, []string{"REV-004", tt.raw})
			assert.Equal(t, tt.want, c.Rating())
		})
	}
}

func TestBuiltinSuites(t *testing.T) {
	for _, name := range BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			s, ok := Builtin(name)
			require.True(t, ok)
			cc := s.Cases()
			require.NotEmpty(t, cc)
			for _, c := range cc {
				assert.NotEmpty(t, c.ID, "case without id in %s", name)
				assert.NotEqual(t, FeatureUnknown, c.Feature, "case %s has unknown feature", c.ID)
				assert.NotEqual(t, KindUnknown, c.Kind, "case %s has unknown assert type", c.ID)
			}
		})
	}

	_, ok := Builtin("checkout")
	assert.False(t, ok)
}

func TestBuiltinReviewMatchesDefaultFlow(t *testing.T) {
	s, ok := Builtin("review")
	require.True(t, ok)
	groups, extra := DefaultFlow().Select(s.Cases())
	assert.Empty(t, extra, "every built-in review case should belong to a flow group")
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	assert.Equal(t, len(s.Cases()), total)
}
