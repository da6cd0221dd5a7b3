package models

// Closed tag vocabularies shared by images, message templates and bundles.
// Matching and filtering operate on exact equality over these values.

type Subject string

const (
	SubjectInteriorWalls   Subject = "interior-walls"
	SubjectExteriorHome    Subject = "exterior-home"
	SubjectCabinetWork     Subject = "cabinet-work"
	SubjectDeckStaining    Subject = "deck-staining"
	SubjectTrimDetail      Subject = "trim-detail"
	SubjectDoorPainting    Subject = "door-painting"
	SubjectCommercialSpace Subject = "commercial-space"
	SubjectBeforeAfter     Subject = "before-after"
	SubjectTeamAction      Subject = "team-action"
	SubjectGeneral         Subject = "general"
)

type Style string

const (
	StyleFinishedResult Style = "finished-result"
	StyleBeforeAfter    Style = "before-after"
	StyleActionShot     Style = "action-shot"
	StyleDetailCloseup  Style = "detail-closeup"
	StyleWideAngle      Style = "wide-angle"
	StyleTestimonial    Style = "testimonial"
)

type Season string

const (
	SeasonSpring  Season = "spring"
	SeasonSummer  Season = "summer"
	SeasonFall    Season = "fall"
	SeasonWinter  Season = "winter"
	SeasonAllYear Season = "all-year"
)

type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	TonePromotional  Tone = "promotional"
	ToneEducational  Tone = "educational"
	ToneUrgent       Tone = "urgent"
)

type CallToAction string

const (
	CTANone      CallToAction = "none"
	CTABookNow   CallToAction = "book-now"
	CTAGetQuote  CallToAction = "get-quote"
	CTALearnMore CallToAction = "learn-more"
	CTACallUs    CallToAction = "call-us"
	CTAVisitSite CallToAction = "visit-site"
)

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformNextdoor  Platform = "nextdoor"

	// PlatformAll is a template-side sentinel meaning "usable everywhere";
	// its caption limit resolves to the strictest per-platform limit.
	PlatformAll Platform = "all"
)

// CaptionLimits holds the maximum caption length per platform.
var CaptionLimits = map[Platform]int{
	PlatformInstagram: 2200,
	PlatformFacebook:  63206,
	PlatformNextdoor:  1200,
}

// CaptionLimit returns the maximum caption length for a platform. The "all"
// sentinel resolves to the minimum limit across known platforms, so adding a
// platform to the table automatically adjusts the "all" bound.
func CaptionLimit(p Platform) (int, bool) {
	if p == PlatformAll {
		min := 0
		for _, limit := range CaptionLimits {
			if min == 0 || limit < min {
				min = limit
			}
		}
		return min, min > 0
	}
	limit, ok := CaptionLimits[p]
	return limit, ok
}

var Subjects = []Subject{
	SubjectInteriorWalls, SubjectExteriorHome, SubjectCabinetWork,
	SubjectDeckStaining, SubjectTrimDetail, SubjectDoorPainting,
	SubjectCommercialSpace, SubjectBeforeAfter, SubjectTeamAction,
	SubjectGeneral,
}

var Styles = []Style{
	StyleFinishedResult, StyleBeforeAfter, StyleActionShot,
	StyleDetailCloseup, StyleWideAngle, StyleTestimonial,
}

var Seasons = []Season{
	SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter, SeasonAllYear,
}

var Tones = []Tone{
	ToneProfessional, ToneFriendly, TonePromotional, ToneEducational,
	ToneUrgent,
}

var CallToActions = []CallToAction{
	CTANone, CTABookNow, CTAGetQuote, CTALearnMore, CTACallUs, CTAVisitSite,
}

var Platforms = []Platform{
	PlatformInstagram, PlatformFacebook, PlatformNextdoor,
}

// Labels for the closed vocabularies, keyed by the enum value itself. Clients
// render selects from these instead of hardcoding the sets.
var SubjectLabels = map[Subject]string{
	SubjectInteriorWalls:   "Interior Walls",
	SubjectExteriorHome:    "Exterior Home",
	SubjectCabinetWork:     "Cabinet Work",
	SubjectDeckStaining:    "Deck Staining",
	SubjectTrimDetail:      "Trim & Detail",
	SubjectDoorPainting:    "Door Painting",
	SubjectCommercialSpace: "Commercial Space",
	SubjectBeforeAfter:     "Before/After",
	SubjectTeamAction:      "Team Action",
	SubjectGeneral:         "General/Brand",
}

func (s Subject) Valid() bool {
	return contains(Subjects, s)
}

func (s Style) Valid() bool {
	return contains(Styles, s)
}

func (s Season) Valid() bool {
	return contains(Seasons, s)
}

func (t Tone) Valid() bool {
	return contains(Tones, t)
}

func (c CallToAction) Valid() bool {
	return contains(CallToActions, c)
}

// Valid reports whether p is a postable platform; the "all" sentinel is valid
// on templates but is not itself a postable platform.
func (p Platform) Valid() bool {
	return p == PlatformAll || contains(Platforms, p)
}

func contains[T comparable](values []T, v T) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
