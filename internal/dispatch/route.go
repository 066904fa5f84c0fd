package dispatch

// Route is the outcome of the route policy: a human-readable label and a
// fixed ETA in minutes.
type Route struct {
	Label      string
	ETAMinutes int
}

// RouteFor maps severity to a route. It is a pure total function: High and
// Medium get their dedicated routes, everything else gets the normal
// shortest route.
func RouteFor(severity Severity) Route {
	switch severity {
	case SeverityHigh:
		return Route{Label: "🛣 Emergency Green Corridor", ETAMinutes: 12}
	case SeverityMedium:
		return Route{Label: "🛣 Traffic-Aware City Route", ETAMinutes: 18}
	default:
		return Route{Label: "🛣 Normal Shortest Route", ETAMinutes: 25}
	}
}
