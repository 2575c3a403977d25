// Package timezone keeps every server-side timestamp (created_at, email_sent_at,
// export file names) in one application timezone.
//
// The zone comes from APP_TIMEZONE and is loaded once, on first use; an empty
// or unknown value falls back to UTC. Use IANA names such as
// "UTC" or "Europe/Warsaw".
//
// Booking dates (check-in, check-out) are calendar days and do not go through
// this package; see shared/daterange.
package timezone
