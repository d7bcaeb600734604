package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteSuffixNew is the suffix for "new" routes.
	RouteSuffixNew = "/new"
	// RouteSuffixEdit is the suffix for edit routes.
	RouteSuffixEdit = "/edit"
	// RouteSuffixToggle is the suffix for open/active toggle routes.
	RouteSuffixToggle = "/toggle"
	// RouteSuffixDelete is the suffix for delete routes.
	RouteSuffixDelete = "/delete"

	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"

	// RouteLogin is the admin login route.
	RouteLogin = "/login"
	// RouteLogout is the admin logout route.
	RouteLogout = "/logout"

	// RouteParks is the parks route.
	RouteParks = "/parks"
	// RouteTrails is the trails route.
	RouteTrails = "/trails"
	// RouteEvents is the events route.
	RouteEvents = "/events"
	// RouteAvailability is the availability periods admin route.
	RouteAvailability = "/availability"
	// RouteBiodiversity is the biodiversity admin route.
	RouteBiodiversity = "/biodiversity"
	// RouteAbout is the about page route.
	RouteAbout = "/about"

	// RouteParksID is the parks ID route pattern.
	RouteParksID = RouteParks + RouteParamID
	// RouteTrailsID is the trails ID route pattern.
	RouteTrailsID = RouteTrails + RouteParamID
	// RouteEventsID is the events ID route pattern.
	RouteEventsID = RouteEvents + RouteParamID
	// RouteAvailabilityID is the availability ID route pattern.
	RouteAvailabilityID = RouteAvailability + RouteParamID
	// RouteBiodiversityID is the biodiversity ID route pattern.
	RouteBiodiversityID = RouteBiodiversity + RouteParamID
)

const (
	redirectAdmin                = "/admin"
	redirectLogin                = redirectAdmin + RouteLogin
	redirectAdminParks           = redirectAdmin + RouteParks
	redirectAdminParksNew        = redirectAdminParks + RouteSuffixNew
	redirectAdminTrails          = redirectAdmin + RouteTrails
	redirectAdminTrailsNew       = redirectAdminTrails + RouteSuffixNew
	redirectAdminEvents          = redirectAdmin + RouteEvents
	redirectAdminEventsNew       = redirectAdminEvents + RouteSuffixNew
	redirectAdminAvailability    = redirectAdmin + RouteAvailability
	redirectAdminAvailabilityNew = redirectAdminAvailability + RouteSuffixNew
	redirectAdminBiodiversity    = redirectAdmin + RouteBiodiversity
	redirectAdminBiodiversityNew = redirectAdminBiodiversity + RouteSuffixNew
)

// HomeRecentLimit caps the lists shown on the home page.
const HomeRecentLimit = 5

// ParkDetailBiodiversityLimit caps the biodiversity list on the park page.
const ParkDetailBiodiversityLimit = 10
