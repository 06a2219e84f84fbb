package models

// DashboardSummary is the snapshot behind the dashboard landing page:
// collection counts plus vehicles whose registration expires within the
// renewal window, ascending by expiry.
type DashboardSummary struct {
	Drivers       int64      `json:"drivers"`
	Vehicles      int64      `json:"vehicles"`
	ExpiringSoon  []*Vehicle `json:"expiringSoon"`
	ExpiringCount int        `json:"expiringCount"`
}
