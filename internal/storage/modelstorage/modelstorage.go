// Package modelstorage provides locally used types and their structure for storage objects.
package modelstorage

// LinkEntry describes one row of the links table.
type LinkEntry struct {
	ID         int64  `db:"id"`
	UserID     string `db:"user_id"`
	URL        string `db:"url"`
	VisitCount int64  `db:"visit_count"`
}

// UserEntry describes one row of the users table.
type UserEntry struct {
	ID          string `db:"id"`
	ExternalID  string `db:"external_id"`
	DisplayName string `db:"display_name"`
}
