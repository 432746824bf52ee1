package tool

// Typed argument records, one per tool. Each record is the single source of
// the tool's MCP input schema (see BuildSchema) and the target of argument
// coercion during validation. Fields without omitempty are required.

// ListAppsArgs are the arguments of list_apps.
type ListAppsArgs struct {
	Limit int `json:"limit,omitempty"`
}

// GetAppInfoArgs are the arguments of get_app_info.
type GetAppInfoArgs struct {
	AppID   string   `json:"appId"`
	Include []string `json:"include,omitempty"`
}

// ListUsersArgs are the arguments of list_users.
type ListUsersArgs struct {
	Limit             int      `json:"limit,omitempty"`
	Sort              string   `json:"sort,omitempty"`
	FilterUsername    string   `json:"filterUsername,omitempty"`
	FilterRoles       []string `json:"filterRoles,omitempty"`
	FilterVisibleApps []string `json:"filterVisibleApps,omitempty"`
	Include           []string `json:"include,omitempty"`
}

// ListCustomerReviewsArgs are the arguments of list_customer_reviews.
type ListCustomerReviewsArgs struct {
	AppID                         string   `json:"appId"`
	FilterTerritory               string   `json:"filterTerritory,omitempty"`
	FilterRating                  string   `json:"filterRating,omitempty"`
	ExistsPublishedResponse       *bool    `json:"existsPublishedResponse,omitempty"`
	Sort                          []string `json:"sort,omitempty"`
	FieldsCustomerReviews         []string `json:"fieldsCustomerReviews,omitempty"`
	FieldsCustomerReviewResponses []string `json:"fieldsCustomerReviewResponses,omitempty"`
	Limit                         int      `json:"limit,omitempty"`
	Include                       []string `json:"include,omitempty"`
}

// ListVersionReviewsArgs are the arguments of list_customer_reviews_for_version.
// The optional set is identical to ListCustomerReviewsArgs; only the path
// parameter differs.
type ListVersionReviewsArgs struct {
	VersionID                     string   `json:"versionId"`
	FilterTerritory               string   `json:"filterTerritory,omitempty"`
	FilterRating                  string   `json:"filterRating,omitempty"`
	ExistsPublishedResponse       *bool    `json:"existsPublishedResponse,omitempty"`
	Sort                          []string `json:"sort,omitempty"`
	FieldsCustomerReviews         []string `json:"fieldsCustomerReviews,omitempty"`
	FieldsCustomerReviewResponses []string `json:"fieldsCustomerReviewResponses,omitempty"`
	Limit                         int      `json:"limit,omitempty"`
	Include                       []string `json:"include,omitempty"`
}

// CreateReviewResponseArgs are the arguments of create_customer_review_response.
type CreateReviewResponseArgs struct {
	ReviewID     string `json:"reviewId"`
	ResponseBody string `json:"responseBody"`
}

// DeleteReviewResponseArgs are the arguments of delete_customer_review_response.
type DeleteReviewResponseArgs struct {
	ResponseID string `json:"responseId"`
}

// GetReviewResponseArgs are the arguments of get_customer_review_response.
type GetReviewResponseArgs struct {
	ReviewID string `json:"reviewId"`
}

// ListBetaGroupsArgs are the arguments of list_beta_groups.
type ListBetaGroupsArgs struct {
	Limit int `json:"limit,omitempty"`
}
