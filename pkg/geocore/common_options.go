package geocore

import (
	"github.com/mapmotion/geocore-go/internal/constants"
)

// CommonOptions holds the paging and tag filters accepted by the list and
// search calls of the resource clients.
type CommonOptions struct {
	Num          int
	Page         int
	TagSystemIDs []string
	TagIDs       []string
	TagNames     []string
}

// NewCommonOptions creates empty common options.
func NewCommonOptions() *CommonOptions {
	return &CommonOptions{}
}

// SetNum sets the page size.
func (o *CommonOptions) SetNum(num int) *CommonOptions {
	o.Num = num

	return o
}

// SetPage sets the page to fetch.
func (o *CommonOptions) SetPage(page int) *CommonOptions {
	o.Page = page

	return o
}

// SetTagSystemIDs filters by tag system ids.
func (o *CommonOptions) SetTagSystemIDs(ids []string) *CommonOptions {
	o.TagSystemIDs = ids

	return o
}

// SetTagIDs filters by tag ids.
func (o *CommonOptions) SetTagIDs(ids []string) *CommonOptions {
	o.TagIDs = ids

	return o
}

// SetTagNames filters by tag names.
func (o *CommonOptions) SetTagNames(names []string) *CommonOptions {
	o.TagNames = names

	return o
}

// Data returns the options that were set, in a fixed order.
func (o *CommonOptions) Data() *QueryOptions {
	params := NewQueryOptions()

	if o == nil {
		return params
	}

	if o.Num > 0 {
		params.Set(constants.ParamNum, o.Num)
	}

	if o.Page > 0 {
		params.Set(constants.ParamPage, o.Page)
	}

	if len(o.TagSystemIDs) > 0 {
		params.Set(constants.ParamTagSystemIDs, o.TagSystemIDs)
	}

	if len(o.TagIDs) > 0 {
		params.Set(constants.ParamTagIDs, o.TagIDs)
	}

	if len(o.TagNames) > 0 {
		params.Set(constants.ParamTagNames, o.TagNames)
	}

	return params
}
