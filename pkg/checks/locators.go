package checks

// Selectors shared between check procedures and session state management.
// They mirror the markup of the production frontend, mostly tailwind class
// anchors because the app exposes few stable ids.
const (
	// auth pages
	SelEmailInput     = "#email"
	SelPasswordInput  = "#password"
	SelRememberMe     = "#remember-me"
	SelSubmitButton   = "button[type='submit']"
	SelUserAvatar     = "img[alt='User']"
	SelLogoutButton   = "//button[contains(., 'Logout')]"
	SelErrorBanner    = "//div[contains(@class,'text-red') or contains(@class,'bg-red')]"
	SelCheckYourEmail = "//h2[contains(., 'Check Your Email')]"
	SelBackToLogin    = "//button[contains(., 'Back to Login')]"

	// movie detail page
	SelCinemaSelect     = "//label[text()='Cinema']/following-sibling::div/select"
	SelCinemaLabel      = "//label[text()='Cinema']"
	SelDateSelect       = "//label[text()='Date']/following-sibling::div/select"
	SelShowtimeButton   = "//button[contains(@class, 'px-5')]"
	SelNoShowtimes      = "//p[contains(., 'No showtimes available')]"
	SelUpcomingRelease  = "//h3[contains(., 'Upcoming Release')]"
	SelTrailerIframe    = "iframe[src*='youtube']"
	SelBackdropImage    = "//div[contains(@class, 'absolute')]//img"
	SelCastActorLink    = "(//div[contains(@class, 'grid')]//a[contains(@href, '/actor/')])[1]"
	SelActorMoviesHead  = "//h2[contains(., 'Movies')]"
	SelActorMovieCards  = "//div[contains(@class, 'grid')]//a[contains(@href, '/movie/')]"
	SelPreviewModal     = "//div[contains(@class, 'fixed') and contains(@class, 'z-[9998]')]"
	SelLoadingSpinner   = "//div[contains(@class, 'animate-spin')]"

	// review section
	SelSignInToReview  = "//button[contains(., 'Sign in to review')]"
	SelCommentTextarea = "//textarea[contains(@placeholder, 'What did you think')]"
	SelPostReview      = "//button[contains(., 'Post Review')]"
	SelStarsContainer  = "//div[contains(@class, 'flex items-center gap-1.5 flex-wrap')]"
	SelStarButtons     = SelStarsContainer + "//button"
	SelAlreadyReviewed = "//p[contains(., 'You already reviewed this movie.')]"
	SelRemoveReview    = "//button[contains(., 'Remove review')]"
	SelLoadMoreReviews = "//button[contains(., 'Load more reviews')]"
	SelReviewList      = "//div[contains(@class, 'space-y-6')]/div[contains(@class, 'space-y-4')]"
	SelFirstReviewName = SelReviewList + "/div[1]//p[contains(@class, 'font-semibold')]"
	SelNoReviewsYet    = SelReviewList + "//p[contains(text(), 'No reviews yet')]"
	SelFirstReviewText = SelReviewList + "//p[contains(@class, 'whitespace-pre-line')]"
	SelHeroRating      = "//div[contains(@class, 'flex items-start gap-x-4')]//span[contains(text(), '/ 10')]"
	SelFormErrorSpan   = "//form//span[contains(@class, 'text-red-400')]"
	SelAudienceReviews = "//h3[contains(text(), 'Audience Reviews')]"

	// my reviews page; the remove-rating selector is a suffix appended to a
	// card selector
	SelProfileReviewCards  = "//div[@data-review-id]"
	SelProfileRemoveRating = "//button[contains(., 'Remove rating')]"
)
