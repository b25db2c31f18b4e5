package utils

import (
	"log"
	"time"
)

// TimeNowIST returns the current time in the Indian Standard Time zone.
func TimeNowIST() time.Time {
	return time.Now().In(LocationIST())
}

// LocationIST returns the Asia/Kolkata location.
func LocationIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		log.Fatal("Failed to load location", err)
	}
	return loc
}

// NextThursday returns the next weekly options expiry date (Thursday) after t.
// If t is a Thursday the following week's expiry is returned.
func NextThursday(t time.Time) time.Time {
	daysAhead := int(time.Thursday - t.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	return t.AddDate(0, 0, daysAhead)
}

// PrettyDate formats a time for human-readable notification messages.
func PrettyDate(t time.Time) string {
	return t.Format("Mon, 02 Jan 2006 15:04:05")
}
