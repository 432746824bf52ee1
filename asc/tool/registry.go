package tool

import (
	"reflect"

	"github.com/viant/asc-mcp/internal/syncmap"
)

// Limits documented by the App Store Connect API for list endpoints.
const (
	DefaultLimit = 100
	MaxLimit     = 200
)

// ConfirmDeleteResponse is the success text of delete_customer_review_response;
// the upstream 204 body is empty so the tool returns this instead.
const ConfirmDeleteResponse = "Successfully deleted review response %v"

var ratingEnum = []string{"1", "2", "3", "4", "5"}

var reviewSortEnum = []string{"createdDate", "-createdDate", "rating", "-rating"}

// reviewQueryRules is the optional-argument set shared by both customer
// review listing tools.
func reviewQueryRules() []QueryRule {
	return []QueryRule{
		{Arg: "filterTerritory", Param: "filter[territory]"},
		{Arg: "filterRating", Param: "filter[rating]", Enum: ratingEnum},
		{Arg: "existsPublishedResponse", Param: "exists[publishedResponse]", Bool: true},
		{Arg: "sort", Param: "sort", Join: true, Enum: reviewSortEnum},
		{Arg: "fieldsCustomerReviews", Param: "fields[customerReviews]", Join: true},
		{Arg: "fieldsCustomerReviewResponses", Param: "fields[customerReviewResponses]", Join: true},
		{Arg: "limit", Param: "limit", Def: DefaultLimit, Max: MaxLimit},
		{Arg: "include", Param: "include", Join: true},
	}
}

// descriptors returns the full tool catalogue. The order defines the order
// tools are listed in.
func descriptors() []*Descriptor {
	return []*Descriptor{
		{
			Name:        "list_apps",
			Description: "List all apps in App Store Connect",
			Method:      "GET",
			Path:        "/apps",
			Query: []QueryRule{
				{Arg: "limit", Param: "limit", Def: DefaultLimit, Max: MaxLimit},
			},
			Args: reflect.TypeOf(ListAppsArgs{}),
		},
		{
			Name:        "get_app_info",
			Description: "Get detailed information about a specific app",
			Method:      "GET",
			Path:        "/apps/{appId}",
			PathArg:     "appId",
			Required:    []string{"appId"},
			Query: []QueryRule{
				{Arg: "include", Param: "include", Join: true},
			},
			Args: reflect.TypeOf(GetAppInfoArgs{}),
		},
		{
			Name:        "list_users",
			Description: "List all users registered on the App Store Connect team",
			Method:      "GET",
			Path:        "/users",
			Query: []QueryRule{
				{Arg: "limit", Param: "limit", Def: DefaultLimit, Max: MaxLimit},
				{Arg: "sort", Param: "sort"},
				{Arg: "filterUsername", Param: "filter[username]"},
				{Arg: "filterRoles", Param: "filter[roles]", Join: true},
				{Arg: "filterVisibleApps", Param: "filter[visibleApps]", Join: true},
				{Arg: "include", Param: "include", Join: true},
			},
			Args: reflect.TypeOf(ListUsersArgs{}),
		},
		{
			Name:        "list_customer_reviews",
			Description: "List customer reviews for an app",
			Method:      "GET",
			Path:        "/apps/{appId}/customerReviews",
			PathArg:     "appId",
			Required:    []string{"appId"},
			Query:       reviewQueryRules(),
			Args:        reflect.TypeOf(ListCustomerReviewsArgs{}),
		},
		{
			Name:        "list_customer_reviews_for_version",
			Description: "List customer reviews for a specific app store version",
			Method:      "GET",
			Path:        "/appStoreVersions/{versionId}/customerReviews",
			PathArg:     "versionId",
			Required:    []string{"versionId"},
			Query:       reviewQueryRules(),
			Args:        reflect.TypeOf(ListVersionReviewsArgs{}),
		},
		{
			Name:        "create_customer_review_response",
			Description: "Create or replace a response to a customer review",
			Method:      "POST",
			Path:        "/customerReviewResponses",
			Required:    []string{"reviewId", "responseBody"},
			Body: &Envelope{
				Type:         "customerReviewResponses",
				Attribute:    "responseBody",
				AttributeArg: "responseBody",
				Relationship: "review",
				RelatedType:  "customerReviews",
				RelatedArg:   "reviewId",
			},
			Args: reflect.TypeOf(CreateReviewResponseArgs{}),
		},
		{
			Name:        "delete_customer_review_response",
			Description: "Delete a response to a customer review",
			Method:      "DELETE",
			Path:        "/customerReviewResponses/{responseId}",
			PathArg:     "responseId",
			Required:    []string{"responseId"},
			Confirm:     ConfirmDeleteResponse,
			Args:        reflect.TypeOf(DeleteReviewResponseArgs{}),
		},
		{
			Name:        "get_customer_review_response",
			Description: "Get the published response to a customer review",
			Method:      "GET",
			Path:        "/customerReviews/{reviewId}/response",
			PathArg:     "reviewId",
			Required:    []string{"reviewId"},
			Args:        reflect.TypeOf(GetReviewResponseArgs{}),
		},
		{
			Name:        "list_beta_groups",
			Description: "List beta groups with their app and testers",
			Method:      "GET",
			Path:        "/betaGroups",
			Query: []QueryRule{
				{Arg: "limit", Param: "limit", Def: DefaultLimit, Max: MaxLimit},
			},
			Fixed: []Fixed{
				{Param: "include", Value: "app,betaTesters"},
			},
			Args: reflect.TypeOf(ListBetaGroupsArgs{}),
		},
	}
}

// Registry is the static tool catalogue. It is immutable after construction
// and safe for concurrent lookups.
type Registry struct {
	entries *syncmap.Map[*Descriptor]
}

// NewRegistry builds the registry with the full tool catalogue.
func NewRegistry() *Registry {
	registry := &Registry{entries: syncmap.NewMap[*Descriptor]()}
	for _, d := range descriptors() {
		registry.entries.Set(d.Name, d)
	}
	return registry
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	d := r.entries.Get(name)
	return d, d != nil
}

// Names returns tool names in catalogue order.
func (r *Registry) Names() []string {
	return r.entries.Keys()
}

// All returns every descriptor in catalogue order.
func (r *Registry) All() []*Descriptor {
	return r.entries.List()
}
