// Package modeluser provides locally used types and their structure for user handling between modules.
package modeluser

// Profile describes user data as exposed to callers.
type Profile struct {
	UserID      string
	DisplayName string
}
