package google

import calendar "google.golang.org/api/calendar/v3"

// DefaultOAuthScopes are the Google OAuth scopes meetmint requests.
//
// Calendar events scope is enough to create events with conferencing data and
// to delete the throwaway events behind instant meetings. The OpenID Connect
// scopes identify the signed-in user.
var DefaultOAuthScopes = []string{
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",

	calendar.CalendarEventsScope,
}
