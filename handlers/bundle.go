package handlers

// HandlerBundle groups the handlers that the route registration wires
// onto the router.
type HandlerBundle struct {
	Market      *MarketHandler
	Preferences *PreferenceHandler
	Stream      *StreamHandler
	Dashboard   *DashboardHandler
}
