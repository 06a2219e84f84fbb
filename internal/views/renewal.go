package views

import (
	"sort"
	"time"

	"vrms/internal/models"
)

// ExpiringWithin returns the vehicles whose registration expires in the
// inclusive window [now, now + horizonDays]. Vehicles without an expiry are
// skipped, and so are already-expired ones: this view feeds upcoming-renewal
// alerts, not an overdue report. The result is ordered ascending by expiry.
func ExpiringWithin(vehicles []*models.Vehicle, now time.Time, horizonDays int) []*models.Vehicle {
	horizon := now.AddDate(0, 0, horizonDays)

	expiring := make([]*models.Vehicle, 0)
	for _, vehicle := range vehicles {
		if vehicle.RegistrationExpiry == nil {
			continue
		}
		expiry := *vehicle.RegistrationExpiry
		if expiry.Before(now) || expiry.After(horizon) {
			continue
		}
		expiring = append(expiring, vehicle)
	}

	sort.SliceStable(expiring, func(i, j int) bool {
		return expiring[i].RegistrationExpiry.Before(*expiring[j].RegistrationExpiry)
	})

	return expiring
}
