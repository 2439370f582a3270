// Package modeldto provides locally used types and their structure for data transfer objects.
package modeldto

type (
	// RequestLogin carries the federated identity asserted by the external
	// identity provider after a successful third-party login.
	RequestLogin struct {
		ExternalID  string `json:"external_id"`
		DisplayName string `json:"display_name"`
	}

	ResponseUser struct {
		UserID      string `json:"user_id"`
		DisplayName string `json:"display_name"`
	}

	RequestURL struct {
		URL string `json:"url"`
	}

	ResponseURL struct {
		ShortURL string `json:"result"`
	}

	ResponseUserLink struct {
		ShortURL   string `json:"short_url"`
		URL        string `json:"original_url"`
		VisitCount int64  `json:"visit_count"`
	}
)
