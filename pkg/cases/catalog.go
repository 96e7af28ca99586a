package cases

// Built-in case definitions for the three CinesTech suites. These seed fresh
// workbooks via Generate so a checkout can run without hand-authored xlsx
// files; test authors normally evolve the generated workbooks afterwards.

// Movie identifiers used by the built-in corpus. The invalid one is a real
// input: it exercises the not-found path.
const (
	movieNowShowing = "05705299-3003-464c-8dc3-d6d8ff7d9905"
	movieInvalid    = "invalid-uuid-123"

	validEmail    = "charosnguyen666@gmail.com"
	validPassword = "WV_bF94S"
	validFullName = "Nguyen Charos"
)

// Suite is a named, ordered set of case definitions sharing a header layout.
type Suite struct {
	Name    string
	Sheet   string
	Headers []string
	Rows    []map[string]string
}

// Builtin returns the built-in suite with the given name (auth, movie, review).
func Builtin(name string) (Suite, bool) {
	switch name {
	case "auth":
		return authSuite(), true
	case "movie":
		return movieSuite(), true
	case "review":
		return reviewSuite(), true
	}
	return Suite{}, false
}

// BuiltinNames lists the built-in suites in execution order.
func BuiltinNames() []string { return []string{"auth", "movie", "review"} }

// Cases decodes the suite rows into executable cases.
func (s Suite) Cases() []Case {
	out := make([]Case, 0, len(s.Rows))
	for _, row := range s.Rows {
		cells := make([]string, len(s.Headers))
		for i, h := range s.Headers {
			cells[i] = row[h]
		}
		c := New(s.Headers, cells)
		if !c.Empty() {
			out = append(out, c)
		}
	}
	return out
}

func authSuite() Suite {
	headers := []string{
		ColCaseID, ColFeature, ColScenario, ColPreconditions, ColSteps, ColExpectedResult,
		ColEmail, ColPassword, ColRememberMe, ColResetEmail, ColAssertType, ColExpectedUIMessage,
	}
	rows := []map[string]string{
		{
			ColCaseID: "AUTH-001", ColFeature: "Login", ColScenario: "Submit login with both fields empty",
			ColPreconditions: "User not logged in", ColSteps: "Open /login; Leave email and password empty; Submit",
			ColExpectedResult: "Native required-field validation blocks submission",
			ColAssertType:     "html5_required",
		},
		{
			ColCaseID: "AUTH-002", ColFeature: "Login", ColScenario: "Submit login with email only",
			ColPreconditions: "User not logged in", ColSteps: "Open /login; Fill email; Leave password empty; Submit",
			ColExpectedResult: "Native required-field validation triggers on password",
			ColEmail:          validEmail, ColAssertType: "html5_required",
		},
		{
			ColCaseID: "AUTH-003", ColFeature: "Login", ColScenario: "Submit login with malformed email",
			ColPreconditions: "User not logged in", ColSteps: "Open /login; Fill 'not-an-email'; Fill password; Submit",
			ColExpectedResult: "Native email-format validation triggers",
			ColEmail:          "not-an-email", ColPassword: "whatever1", ColAssertType: "html5_type_mismatch",
		},
		{
			ColCaseID: "AUTH-004", ColFeature: "Login", ColScenario: "Login with wrong password shows error banner",
			ColPreconditions: "Account exists", ColSteps: "Open /login; Fill valid email; Fill wrong password; Submit",
			ColExpectedResult: "Error banner with invalid-credentials message",
			ColEmail:          validEmail, ColPassword: "wrong-password-123",
			ColAssertType: "error_banner", ColExpectedUIMessage: "invalid email or password",
		},
		{
			ColCaseID: "AUTH-005", ColFeature: "Login", ColScenario: "Login with unknown account shows error banner",
			ColPreconditions: "Account does not exist", ColSteps: "Open /login; Fill unknown email; Fill password; Submit",
			ColExpectedResult: "Error banner appears",
			ColEmail:          "nobody{{ts}}@example.com", ColPassword: "whatever1",
			ColAssertType: "error_banner",
		},
		{
			ColCaseID: "AUTH-006", ColFeature: "Login", ColScenario: "Successful login shows user avatar",
			ColPreconditions: "Valid account", ColSteps: "Open /login; Fill valid credentials; Submit",
			ColExpectedResult: "Navigates away from /login; avatar visible",
			ColEmail:          validEmail, ColPassword: validPassword, ColAssertType: "login_success",
		},
		{
			ColCaseID: "AUTH-007", ColFeature: "Login", ColScenario: "Login with remember me enabled",
			ColPreconditions: "Valid account", ColSteps: "Open /login; Fill valid credentials; Tick 'Remember me'; Submit",
			ColExpectedResult: "Login succeeds with remember me toggled",
			ColEmail:          validEmail, ColPassword: validPassword, ColRememberMe: "TRUE",
			ColAssertType: "remember_me",
		},
		{
			ColCaseID: "AUTH-010", ColFeature: "Forgot Password", ColScenario: "Submit reset with empty email",
			ColPreconditions: "User not logged in", ColSteps: "Open /forgot-password; Leave email empty; Submit",
			ColExpectedResult: "Native required-field validation triggers",
			ColAssertType:     "html5_required",
		},
		{
			ColCaseID: "AUTH-011", ColFeature: "Forgot Password", ColScenario: "Submit reset with malformed email",
			ColPreconditions: "User not logged in", ColSteps: "Open /forgot-password; Fill 'still-not-an-email'; Submit",
			ColExpectedResult: "Native email-format validation triggers",
			ColResetEmail:     "still-not-an-email", ColAssertType: "html5_type_mismatch",
		},
		{
			ColCaseID: "AUTH-012", ColFeature: "Forgot Password", ColScenario: "Submit reset for valid account",
			ColPreconditions: "Account exists", ColSteps: "Open /forgot-password; Fill valid email; Submit",
			ColExpectedResult: "'Check Your Email' card displayed",
			ColResetEmail:     validEmail, ColAssertType: "forgot_success",
		},
		{
			ColCaseID: "AUTH-013", ColFeature: "Forgot Password", ColScenario: "Submit reset for unknown account",
			ColPreconditions: "Account does not exist", ColSteps: "Open /forgot-password; Fill unknown email; Submit",
			ColExpectedResult: "Error banner appears",
			ColResetEmail:     "nobody{{ts}}@example.com", ColAssertType: "error_banner",
		},
	}
	return Suite{Name: "auth", Sheet: "AuthCases", Headers: headers, Rows: rows}
}

//nolint:funlen // static case corpus, one literal per workbook row
func movieSuite() Suite {
	headers := []string{
		ColCaseID, ColFeature, ColScenario, ColPreconditions, ColSteps, ColExpectedResult,
		ColMovieID, ColAssertSelector, ColExpectedText, ColClickSelector, ColAssertType,
	}
	rows := []map[string]string{
		{
			ColCaseID: "TC01", ColFeature: "Loading", ColScenario: "Loading spinner shows while the page loads",
			ColPreconditions: "Slow network", ColSteps: "Navigate to /movie/" + movieNowShowing,
			ColExpectedResult: "Full-page spinner displayed (fast loads may legitimately skip it)",
			ColMovieID:        movieNowShowing,
			ColAssertSelector: "//div[contains(@class, 'animate-spin')]", ColAssertType: "element_visible",
		},
		{
			ColCaseID: "TC02", ColFeature: "Loading", ColScenario: "Not-found message for unknown movie id",
			ColPreconditions: "Movie id absent from DB", ColSteps: "Navigate to /movie/" + movieInvalid,
			ColExpectedResult: "'Oops! Movie not found' displayed",
			ColMovieID:        movieInvalid,
			ColAssertSelector: "//h2[contains(., 'Oops! Movie not found')]", ColAssertType: "element_visible",
		},
		{
			ColCaseID: "TC03", ColFeature: "Layout", ColScenario: "Breadcrumb renders",
			ColPreconditions: "Valid movie", ColSteps: "Navigate to /movie/" + movieNowShowing,
			ColExpectedResult: "Breadcrumb 'Home / <movie>' displayed", ColMovieID: movieNowShowing,
			ColAssertSelector: "//nav[@aria-label='Breadcrumb']", ColAssertType: "element_visible",
		},
		{
			ColCaseID: "TC04", ColFeature: "Layout", ColScenario: "'You Might Also Like' sidebar renders",
			ColPreconditions: "Valid movie", ColSteps: "Navigate to /movie/" + movieNowShowing,
			ColExpectedResult: "Similar-movies section displayed", ColMovieID: movieNowShowing,
			ColAssertSelector: "//h3[contains(., 'You Might Also Like')]", ColAssertType: "element_visible",
		},
		{
			ColCaseID: "TC05", ColFeature: "Layout", ColScenario: "Sticky header renders",
			ColPreconditions: "Valid movie", ColSteps: "Navigate to /movie/" + movieNowShowing,
			ColExpectedResult: "Header displayed", ColMovieID: movieNowShowing,
			ColAssertSelector: "//header[contains(@class, 'sticky')]", ColAssertType: "element_visible",
		},
		{
			ColCaseID: "TC06", ColFeature: "Layout", ColScenario: "Footer renders",
			ColPreconditions: "Valid movie", ColSteps: "Navigate to /movie/" + movieNowShowing,
			ColExpectedResult: "Footer displayed", ColMovieID: movieNowShowing,
			ColAssertSelector: "//footer", ColAssertType: "element_visible",
		},
		{
			ColCaseID: "TC07", ColFeature: "MovieHero", ColScenario: "Title, poster and description render",
			ColPreconditions: "Valid movie", ColSteps: "Navigate to /movie/" + movieNowShowing,
			ColExpectedResult: "Movie title heading displayed", ColMovieID: movieNowShowing,
			ColAssertSelector: "//h1[contains(@class, 'text-4xl')]", ColAssertType: "element_visible",
		},
		{
			ColCaseID: "TC08", ColFeature: "MovieHero", ColScenario: "'Watch Trailer' opens the trailer modal",
			ColPreconditions: "Movie has a trailer", ColSteps: "Click 'Watch Trailer'",
			ColExpectedResult: "Modal with the trailer iframe displayed", ColMovieID: movieNowShowing,
			ColAssertSelector: "//iframe[contains(@src, 'youtube')]",
			ColClickSelector:  "//button[contains(., 'Watch Trailer')]", ColAssertType: "element_visible_after_click",
		},
		{
			ColCaseID: "TC09", ColFeature: "MovieHero", ColScenario: "[FAIL] Scroll lock missing when trailer modal opens",
			ColPreconditions: "Movie has a trailer",
			ColSteps:         "Click 'Watch Trailer'; verify modal opens; check document.body.style.overflow",
			ColExpectedResult: "[DESIGNED TO FAIL] body overflow should be 'hidden' but the feature is not implemented",
			ColMovieID:        movieNowShowing,
			ColClickSelector:  "//button[contains(., 'Watch Trailer')]", ColAssertType: "check_scroll_lock_fail",
		},
		{
			ColCaseID: "TC10", ColFeature: "MovieHero", ColScenario: "[FAIL] Backdrop image validation",
			ColPreconditions: "Movie has a backdrop image",
			ColSteps:         "Navigate to detail page; locate backdrop img; verify src is a valid URL",
			ColExpectedResult: "[DESIGNED TO FAIL] backdrop may fail to load due to CDN or image processing issues",
			ColMovieID:        movieNowShowing,
			ColAssertSelector: "//div[contains(@class, 'absolute')]//img", ColAssertType: "check_backdrop_fail",
		},
		{
			ColCaseID: "TC11", ColFeature: "MovieHero", ColScenario: "Age-rating badge renders",
			ColPreconditions: "Valid movie", ColSteps: "Check age badge on the poster",
			ColExpectedResult: "Age badge displayed with its accent color", ColMovieID: movieNowShowing,
			ColAssertSelector: "//div[contains(@class, 'bg-red-600')]", ColAssertType: "element_visible",
		},
		{
			ColCaseID: "TC12", ColFeature: "CastSection", ColScenario: "Cast list renders",
			ColPreconditions: "Valid movie", ColSteps: "Scroll to 'Cast & Crew'",
			ColExpectedResult: "Cast names and photos displayed", ColMovieID: movieNowShowing,
			ColAssertSelector: "//h3[contains(., 'Cast & Crew')]", ColAssertType: "element_visible",
		},
		{
			ColCaseID: "TC13", ColFeature: "CastSection", ColScenario: "Clicking an actor navigates to actor detail",
			ColPreconditions: "Movie has cast", ColSteps: "Click the first actor in the list",
			ColExpectedResult: "URL changes to /actor/<id>", ColMovieID: movieNowShowing,
			ColAssertSelector: "(//div[contains(@class, 'grid')]//a[contains(@href, '/actor/')])[1]",
			ColExpectedText:   "/actor/", ColAssertType: "url_contains_after_click",
		},
		{
			ColCaseID: "TC14", ColFeature: "ActorDetail", ColScenario: "Actor detail page shows the actor name",
			ColPreconditions: "Navigated from the cast list", ColSteps: "Wait for the actor page to load",
			ColExpectedResult: "Actor name heading displayed", ColMovieID: movieNowShowing,
			ColAssertSelector: "//h1[contains(@class, 'text-2xl')]",
			ColClickSelector:  "(//div[contains(@class, 'grid')]//a[contains(@href, '/actor/')])[1]",
			ColAssertType:     "element_visible_after_click",
		},
		{
			ColCaseID: "TC15", ColFeature: "ActorDetail", ColScenario: "Actor detail page lists their movies",
			ColPreconditions: "Navigated from the cast list", ColSteps: "Scroll to 'Movies'",
			ColExpectedResult: "Movie list displayed", ColMovieID: movieNowShowing,
			ColAssertSelector: "//h2[contains(., 'Movies')]",
			ColClickSelector:  "(//div[contains(@class, 'grid')]//a[contains(@href, '/actor/')])[1]",
			ColAssertType:     "element_visible_after_click",
		},
		{
			ColCaseID: "TC16", ColFeature: "ActorDetail", ColScenario: "Preview modal shows on hover",
			ColPreconditions: "On actor detail page", ColSteps: "Hover the first movie card",
			ColExpectedResult: "Preview modal displayed", ColMovieID: movieNowShowing,
			ColAssertSelector: "//div[contains(@class, 'fixed') and contains(@class, 'z-[9998]')]",
			ColAssertType:     "element_visible_after_hover",
		},
		{
			ColCaseID: "TC17", ColFeature: "ActorDetail", ColScenario: "[FAIL] Preview modal flips near the right edge",
			ColPreconditions: "On actor detail page", ColSteps: "Hover a movie card in the last column",
			ColExpectedResult: "Modal renders left of the cursor instead of right",
			ColMovieID:        movieNowShowing, ColAssertType: "check_modal_flip_fail",
		},
		{
			ColCaseID: "TC18", ColFeature: "BookingSection", ColScenario: "(Upcoming movie) 'Upcoming Release' renders",
			ColPreconditions: "Movie is upcoming", ColSteps: "Navigate to /movie/" + movieNowShowing,
			ColExpectedResult: "'Upcoming Release' displayed", ColMovieID: movieNowShowing,
			ColAssertSelector: "//h3[contains(., 'Upcoming Release')]", ColAssertType: "element_visible",
		},
		{
			ColCaseID: "TC19", ColFeature: "BookingSection", ColScenario: "(Now showing) cinema dropdown renders",
			ColPreconditions: "Movie is now showing", ColSteps: "Navigate to /movie/" + movieNowShowing,
			ColExpectedResult: "'Select Cinema' dropdown displayed", ColMovieID: movieNowShowing,
			ColAssertSelector: "//label[text()='Cinema']/following-sibling::div/select", ColAssertType: "element_visible",
		},
		{
			ColCaseID: "TC20", ColFeature: "BookingSection", ColScenario: "[FAIL] Cinema dropdown still shown when showtimes hook is empty",
			ColPreconditions: "Now showing but the showtimes hook returns nothing",
			ColSteps:         "Navigate to the movie",
			ColExpectedResult: "Cinema dropdown displayed, not 'Upcoming Release'", ColMovieID: movieNowShowing,
			ColAssertSelector: "//label[text()='Cinema']/following-sibling::div/select",
			ColAssertType:     "check_upcoming_logic_fail",
		},
		{
			ColCaseID: "TC21", ColFeature: "BookingSection", ColScenario: "Date dropdown disabled before selecting a cinema",
			ColPreconditions: "No cinema selected", ColSteps: "Check the 'Date' dropdown",
			ColExpectedResult: "'Date' dropdown has the disabled attribute", ColMovieID: movieNowShowing,
			ColAssertSelector: "//label[text()='Date']/following-sibling::div/select", ColAssertType: "element_is_disabled",
		},
		{
			ColCaseID: "TC22", ColFeature: "BookingSection", ColScenario: "[FAIL] No showtimes for some dates",
			ColPreconditions: "Now showing but without showtimes", ColSteps: "Select Cinema and Date",
			ColExpectedResult: "[DESIGNED TO FAIL] showtimes may be missing ('No showtimes available')",
			ColMovieID:        movieNowShowing,
			ColAssertSelector: "//button[contains(@class, 'px-5')]",
			ColAssertType:     "element_visible_after_selection_fail",
		},
		{
			ColCaseID: "TC23", ColFeature: "BookingSection", ColScenario: "[FAIL] Redirect to login when booking anonymously",
			ColPreconditions: "User not logged in", ColSteps: "Select Cinema, Date; click a showtime",
			ColExpectedResult: "[DESIGNED TO FAIL] expected redirect to /login, possibly not implemented",
			ColMovieID:        movieNowShowing, ColExpectedText: "/login", ColAssertType: "url_redirect_fail",
		},
		{
			ColCaseID: "TC25", ColFeature: "MovieHero", ColScenario: "Director credit renders",
			ColPreconditions: "Movie has a director", ColSteps: "Check the Director label",
			ColExpectedResult: "Director name displayed", ColMovieID: movieNowShowing,
			ColAssertSelector: "//span[contains(text(), 'Director')]", ColAssertType: "element_visible",
		},
		{
			ColCaseID: "TC26", ColFeature: "MovieHero", ColScenario: "Genre pills render",
			ColPreconditions: "Movie has at least one genre", ColSteps: "Check the genre list",
			ColExpectedResult: "Genre pills displayed", ColMovieID: movieNowShowing,
			ColAssertSelector: "//div[contains(@class, 'flex')]//span[contains(@class, 'rounded-full')]",
			ColAssertType:     "element_visible",
		},
		{
			ColCaseID: "TC27", ColFeature: "MovieHero", ColScenario: "Rating score renders",
			ColPreconditions: "Movie has ratings", ColSteps: "Check the score",
			ColExpectedResult: "'X / 10' displayed with stars", ColMovieID: movieNowShowing,
			ColAssertSelector: "//span[contains(text(), '/ 10')]", ColAssertType: "element_visible",
		},
		{
			ColCaseID: "TC28", ColFeature: "Layout", ColScenario: "Similar-movie navigation works",
			ColPreconditions: "Similar movies listed", ColSteps: "Click the first 'You Might Also Like' entry",
			ColExpectedResult: "URL changes to the new movie", ColMovieID: movieNowShowing,
			ColAssertSelector: "(//h3[contains(., 'You Might Also Like')]/following-sibling::div//a)[1]",
			ColExpectedText:   "/movie/", ColAssertType: "url_contains_after_click",
		},
		{
			ColCaseID: "TC29", ColFeature: "Layout", ColScenario: "Breadcrumb navigates home",
			ColPreconditions: "On a movie detail page", ColSteps: "Click the first breadcrumb link",
			ColExpectedResult: "Back on the movie listing", ColMovieID: movieNowShowing,
			ColAssertSelector: "//nav[@aria-label='Breadcrumb']//a[contains(@href, '/')]",
			ColExpectedText:   "cinestech.me", ColAssertType: "url_contains_after_click",
		},
		{
			ColCaseID: "TC30", ColFeature: "Layout", ColScenario: "Global search input renders",
			ColPreconditions: "Header displayed", ColSteps: "Check the header search box",
			ColExpectedResult: "Search input visible and enabled", ColMovieID: movieNowShowing,
			ColAssertSelector: "//input[@type='text' and @placeholder='Search movies...']",
			ColAssertType:     "element_visible",
		},
		{
			ColCaseID: "TC31", ColFeature: "MovieHero", ColScenario: "Release date renders",
			ColPreconditions: "Movie has a release date", ColSteps: "Check the calendar info row",
			ColExpectedResult: "Release date displayed", ColMovieID: movieNowShowing,
			ColAssertSelector: "//div[contains(@class, 'flex')]//span[contains(text(), '20')]",
			ColAssertType:     "element_visible",
		},
		{
			ColCaseID: "TC32", ColFeature: "MovieHero", ColScenario: "Duration renders",
			ColPreconditions: "Movie has a duration", ColSteps: "Check the clock info row",
			ColExpectedResult: "Duration like '2h 15m' displayed", ColMovieID: movieNowShowing,
			ColAssertSelector: "//span[contains(text(), 'm') and (contains(text(), 'h') or contains(text(), 'min'))]",
			ColAssertType:     "element_visible",
		},
	}
	return Suite{Name: "movie", Sheet: "MovieCases", Headers: headers, Rows: rows}
}

//nolint:funlen // static case corpus, one literal per workbook row
func reviewSuite() Suite {
	headers := []string{
		ColCaseID, ColFeature, ColScenario, ColPreconditions, ColSteps, ColExpectedResult,
		ColMovieID, ColEmail, ColPassword, ColUserFullName,
		ColRating, ColComment, ColAssertType, ColExpectedUIMessage,
	}
	auth := map[string]string{
		ColMovieID: movieNowShowing, ColEmail: validEmail,
		ColPassword: validPassword, ColUserFullName: validFullName,
	}
	with := func(row map[string]string) map[string]string {
		out := make(map[string]string, len(auth)+len(row))
		for k, v := range auth {
			out[k] = v
		}
		for k, v := range row {
			out[k] = v
		}
		return out
	}
	rows := []map[string]string{
		{
			ColCaseID: "REV-001", ColFeature: "Movie Review", ColScenario: "Guest views review form",
			ColPreconditions: "User not logged in",
			ColSteps:         "Open /movie/" + movieNowShowing + "; Scroll to 'Audience Reviews'",
			ColExpectedResult: "Review form hidden; 'Sign in to review' shown",
			ColMovieID:        movieNowShowing, ColAssertType: "review_form_hidden",
			ColExpectedUIMessage: "Sign in to review",
		},
		{
			ColCaseID: "REV-002", ColFeature: "Movie Review", ColScenario: "Guest clicks 'Sign in to review'",
			ColPreconditions: "User not logged in",
			ColSteps:         "Open /movie/" + movieNowShowing + "; Click 'Sign in to review'",
			ColExpectedResult: "Redirected to /login",
			ColMovieID:        movieNowShowing, ColAssertType: "redirect_to_login", ColExpectedUIMessage: "/login",
		},
		{
			ColCaseID: "REV-003", ColFeature: "Movie Review", ColScenario: "Guest can see existing reviews",
			ColPreconditions: "User not logged in; movie has reviews",
			ColSteps:         "Open /movie/" + movieNowShowing + "; Scroll to 'Audience Reviews'",
			ColExpectedResult: "Other users' reviews listed without a remove control",
			ColMovieID:        movieNowShowing, ColAssertType: "review_list_visible",
		},
		{
			ColCaseID: "REV-019", ColFeature: "Movie Review", ColScenario: "Guest loads more reviews (pagination)",
			ColPreconditions: "Movie has > 5 reviews",
			ColSteps:         "Open /movie/" + movieNowShowing + "; Click 'Load more reviews'",
			ColExpectedResult: "Additional reviews load",
			ColMovieID:        movieNowShowing, ColAssertType: "review_pagination_success",
		},
		{
			ColCaseID: "REV-020", ColFeature: "Movie Review", ColScenario: "Guest verifies review count and average",
			ColPreconditions: "Movie has 12 reviews; avg 8.3",
			ColSteps:         "Open /movie/" + movieNowShowing + "; Observe hero",
			ColExpectedResult: "Hero shows '8.3 / 10'",
			ColMovieID:        movieNowShowing, ColAssertType: "review_hero_check", ColExpectedUIMessage: "8.3 / 10",
		},
		with(map[string]string{
			ColCaseID: "REV-007", ColFeature: "Movie Review", ColScenario: "Submit review with no rating",
			ColPreconditions: "Logged in; no prior review",
			ColSteps:         "Select 0 stars; comment; Post Review",
			ColExpectedResult: "Error shown; review not submitted",
			ColRating:         "0", ColComment: "Phim cũng được",
			ColAssertType: "ui_error_message", ColExpectedUIMessage: "Please select a rating before submitting.",
		}),
		with(map[string]string{
			ColCaseID: "REV-008", ColFeature: "Movie Review", ColScenario: "Submit review with a 2-char comment",
			ColPreconditions: "Logged in; no prior review",
			ColSteps:         "Select 7 stars; enter 'Ok'; Post Review",
			ColExpectedResult: "Validation error: comment too short",
			ColRating:         "7", ColComment: "Ok",
			ColAssertType:        "ui_error_message",
			ColExpectedUIMessage: "Please share a few words about the movie (min 3 characters).",
		}),
		with(map[string]string{
			ColCaseID: "REV-009", ColFeature: "Movie Review", ColScenario: "Submit review with whitespace comment",
			ColPreconditions: "Logged in; no prior review",
			ColSteps:         "Select 5 stars; enter spaces; Post Review",
			ColExpectedResult: "Validation error: whitespace-only comment",
			ColRating:         "5", ColComment: "     ",
			ColAssertType:        "ui_error_message",
			ColExpectedUIMessage: "Please share a few words about the movie (min 3 characters).",
		}),
		with(map[string]string{
			ColCaseID: "REV-010", ColFeature: "Movie Review", ColScenario: "Submit review with empty comment",
			ColPreconditions: "Logged in; no prior review",
			ColSteps:         "Select 6 stars; leave comment blank; Post Review",
			ColExpectedResult: "Validation error: empty comment",
			ColRating:         "6", ColComment: "",
			ColAssertType:        "ui_error_message",
			ColExpectedUIMessage: "Please share a few words about the movie (min 3 characters).",
		}),
		with(map[string]string{
			ColCaseID: "REV-004", ColFeature: "Movie Review", ColScenario: "Submit valid review (8 stars, long comment)",
			ColPreconditions: "Logged in; no prior review",
			ColSteps:         "Select 8 stars; enter comment; Post Review",
			ColExpectedResult: "Form hidden; review appears on top of the list",
			ColRating:         "8", ColComment: "Phim này có kỹ xảo thật tuyệt vời, rất đáng xem!",
			ColAssertType: "review_submit_success", ColExpectedUIMessage: "You already reviewed this movie.",
		}),
		with(map[string]string{
			ColCaseID: "REV-005", ColFeature: "Movie Review", ColScenario: "Submit valid review (min comment length)",
			ColPreconditions: "Logged in; no prior review",
			ColSteps:         "Select 5 stars; enter 'Hay'; Post Review",
			ColExpectedResult: "Review submitted",
			ColRating:         "5", ColComment: "Hay",
			ColAssertType: "review_submit_success", ColExpectedUIMessage: "You already reviewed this movie.",
		}),
		with(map[string]string{
			ColCaseID: "REV-006", ColFeature: "Movie Review", ColScenario: "Submit valid review (special chars)",
			ColPreconditions: "Logged in; no prior review",
			ColSteps:         "Select 10 stars; enter comment; Post Review",
			ColExpectedResult: "Review submitted",
			ColRating:         "10", ColComment: "Tuyệt vời 10/10 !!!",
			ColAssertType: "review_submit_success", ColExpectedUIMessage: "You already reviewed this movie.",
		}),
		with(map[string]string{
			ColCaseID: "REV-015", ColFeature: "Movie Review", ColScenario: "Submit new review after deleting the old one",
			ColPreconditions: "Just removed the previous review",
			ColSteps:         "Select 3 stars; enter comment; Post Review",
			ColExpectedResult: "New 3-star review submitted",
			ColRating:         "3", ColComment: "Xem lại thấy cũng bình thường.",
			ColAssertType: "review_submit_success", ColExpectedUIMessage: "You already reviewed this movie.",
		}),
		with(map[string]string{
			ColCaseID: "REV-011", ColFeature: "Movie Review", ColScenario: "Own review displays first",
			ColPreconditions: "Logged in; has an existing review",
			ColSteps:         "Open the movie; scroll to reviews",
			ColExpectedResult: "Own review at the top of the list",
			ColAssertType:     "review_self_on_top",
		}),
		with(map[string]string{
			ColCaseID: "REV-012", ColFeature: "Movie Review", ColScenario: "Form hidden after reviewing",
			ColPreconditions: "Logged in; has an existing review",
			ColSteps:         "Open the movie; scroll to reviews",
			ColExpectedResult: "Form hidden; 'You already reviewed...' shown",
			ColAssertType:     "review_form_hidden", ColExpectedUIMessage: "You already reviewed this movie.",
		}),
		with(map[string]string{
			ColCaseID: "REV-013", ColFeature: "Movie Review", ColScenario: "'Remove review' visible on own review",
			ColPreconditions: "Logged in; has an existing review",
			ColSteps:         "Open the movie; scroll to own review",
			ColExpectedResult: "'Remove review' button displayed",
			ColAssertType:     "review_remove_visible",
		}),
		with(map[string]string{
			ColCaseID: "REV-014", ColFeature: "Movie Review", ColScenario: "Remove review from the detail page",
			ColPreconditions: "Logged in; has an existing review",
			ColSteps:         "Click 'Remove review'",
			ColExpectedResult: "Review gone; input form reappears",
			ColAssertType:     "review_remove_success",
		}),
		with(map[string]string{
			ColCaseID: "REV-016", ColFeature: "My Reviews Page", ColScenario: "Review appears on /profile/reviews",
			ColPreconditions: "Logged in; has an existing review",
			ColSteps:         "Navigate to /profile/reviews",
			ColExpectedResult: "The review is listed",
			ColComment:        "Xem lại thấy cũng bình thường.", ColAssertType: "review_list_updated",
		}),
		with(map[string]string{
			ColCaseID: "REV-017", ColFeature: "My Reviews Page", ColScenario: "Remove review from /profile/reviews",
			ColPreconditions: "Logged in; has an existing review",
			ColSteps:         "Navigate to /profile/reviews; find the review; click 'Remove rating'",
			ColExpectedResult: "Review disappears from the list",
			ColComment:        "Xem lại thấy cũng bình thường.", ColAssertType: "review_remove_success_profile",
			ColExpectedUIMessage: "Your review has been removed.",
		}),
		with(map[string]string{
			ColCaseID: "REV-018", ColFeature: "Movie Review", ColScenario: "Detail page in sync after profile delete",
			ColPreconditions: "Just removed the review on /profile/reviews",
			ColSteps:         "Navigate back to the movie",
			ColExpectedResult: "Star and comment inputs shown again",
			ColAssertType:     "review_form_visible",
		}),
	}
	return Suite{Name: "review", Sheet: "ReviewCases", Headers: headers, Rows: rows}
}
