package risk

import "time"

// reportTurnaround is the claimed processing window for a report:
// 24 hours plus an hour of processing slack.
const reportTurnaround = 25 * time.Hour

const deliveryFormat = "Monday, January 2, 2006 at 3:04 PM"

// DeliveryEstimate returns the human-readable time the report is promised
// for, a fixed offset from the given instant.
func DeliveryEstimate(now time.Time) string {
	return now.Add(reportTurnaround).Format(deliveryFormat)
}
