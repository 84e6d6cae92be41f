package geocore

import (
	"github.com/mapmotion/geocore-go/internal/constants"
)

// TaggableQuery adds tag inclusion and exclusion filters to Query.
type TaggableQuery[Q Builder] struct {
	Query[Q]

	tagIDs           []string
	tagNames         []string
	excludedTagIDs   []string
	excludedTagNames []string
	tagDetail        bool
}

// WithTagIDs keeps entities tagged with any of the tag ids.
func (t *TaggableQuery[Q]) WithTagIDs(ids []string) Q {
	t.tagIDs = ids

	return t.self
}

// WithTagNames keeps entities tagged with any of the tag names.
func (t *TaggableQuery[Q]) WithTagNames(names []string) Q {
	t.tagNames = names

	return t.self
}

// ExcludeTagIDs drops entities tagged with any of the tag ids.
func (t *TaggableQuery[Q]) ExcludeTagIDs(ids []string) Q {
	t.excludedTagIDs = ids

	return t.self
}

// ExcludeTagNames drops entities tagged with any of the tag names.
func (t *TaggableQuery[Q]) ExcludeTagNames(names []string) Q {
	t.excludedTagNames = names

	return t.self
}

// WithTagDetails asks the service to embed tag details in the results.
func (t *TaggableQuery[Q]) WithTagDetails() Q {
	t.tagDetail = true

	return t.self
}

// BuildQueryParameters extends the Query parameters with the tag filters.
func (t *TaggableQuery[Q]) BuildQueryParameters() *QueryOptions {
	params := t.Query.BuildQueryParameters()

	if len(t.tagIDs) > 0 {
		params.Set(constants.ParamTagIDs, t.tagIDs)
	}

	if len(t.tagNames) > 0 {
		params.Set(constants.ParamTagNames, t.tagNames)
	}

	if len(t.excludedTagIDs) > 0 {
		params.Set(constants.ParamExclTagIDs, t.excludedTagIDs)
	}

	if len(t.excludedTagNames) > 0 {
		params.Set(constants.ParamExclTagNames, t.excludedTagNames)
	}

	if t.tagDetail {
		params.Set(constants.ParamTagDetail, true)
	}

	return params
}
