package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network settings.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultUserAgent is sent when the configuration does not override it.
	DefaultUserAgent = "geocore-go/" + Version

	// AccessTokenHeader carries the session token on every authenticated request.
	AccessTokenHeader = "Geocore-Access-Token"

	// ContentTypeJSON is used for request bodies and the Accept header.
	ContentTypeJSON = "application/json"
)

// Version is the client library version.
const Version = "0.3.0"

// Envelope status values.
const (
	EnvelopeStatusSuccess = "success"
	EnvelopeStatusError   = "error"
)

// DateFormat is the layout the service expects for date range filters
// (YYYY/MM/DD hh:mm:ss).
const DateFormat = "2006/01/02 15:04:05"

// UploadFieldName is the multipart field used for binary uploads.
const UploadFieldName = "data"

// API paths.
const (
	APIPathAuth        = "/auth"
	APIPathObjects     = "/objs"
	APIPathUsers       = "/users"
	APIPathGroups      = "/groups"
	APIPathAuthorities = "/auths"
	APIPathPlaces      = "/places"
	APIPathItems       = "/items"
	APIPathTags        = "/tags"
	APIPathEvents      = "/events"
	APIPathGADM        = "/public/ref/gadm"

	APIPathPlacesNearest        = "/places/search/nearest"
	APIPathPlacesWithinRect     = "/places/search/within/rect"
	APIPathPlacesWithinCircle   = "/places/search/within/circle"
	APIPathPlacesSmallestBounds = "/places/search/smallestbounds"
	APIPathPlacesByName         = "/places/search/name"
	APIPathObjectRelationship   = "/objs/relationship"
)

// Query parameter names.
const (
	ParamID              = "id"
	ParamPassword        = "password"
	ParamProjectID       = "project_id"
	ParamName            = "name"
	ParamNum             = "num"
	ParamPage            = "page"
	ParamRecentCreated   = "recent_created"
	ParamRecentUpdated   = "recent_updated"
	ParamUpdateAfter     = "update_after"
	ParamUpdateBefore    = "update_before"
	ParamCreateAfter     = "create_after"
	ParamCreateBefore    = "create_before"
	ParamParentID        = "parent_id"
	ParamCustomDataKey   = "custom_data_key"
	ParamCustomDataValue = "custom_data_value"
	ParamTagSystemIDs    = "tag_sids"
	ParamTagIDs          = "tag_ids"
	ParamTagNames        = "tag_names"
	ParamExclTagIDs      = "excl_tag_ids"
	ParamExclTagNames    = "excl_tag_names"
	ParamTagDetail       = "tag_detail"
	ParamDelTagNames     = "del_tag_names"
	ParamGroupIDs        = "group_ids"
	ParamUserIDs         = "user_ids"
	ParamLatitude        = "lat"
	ParamLongitude       = "lon"
	ParamRadius          = "radius"
	ParamMinLatitude     = "min_lat"
	ParamMinLongitude    = "min_lon"
	ParamMaxLatitude     = "max_lat"
	ParamMaxLongitude    = "max_lon"
	ParamCheckinable     = "checkinable"
)

// Output formats understood by the CLI.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// UI and display constants.
const (
	// NotAvailable is shown for missing values in tables.
	NotAvailable = "N/A"

	// MaskedSecret replaces secrets in displayed configuration.
	MaskedSecret = "***"
)
