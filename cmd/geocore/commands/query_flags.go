package commands

import (
	"github.com/spf13/cobra"
)

// queryFlags are the paging and tag filters shared by list commands.
type queryFlags struct {
	name         string
	num          int
	page         int
	tagNames     []string
	exclTagNames []string
	tagDetail    bool
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "filter by name")
	cmd.Flags().IntVar(&f.num, "num", 0, "results per page")
	cmd.Flags().IntVar(&f.page, "page", 0, "page number")
	cmd.Flags().StringSliceVar(&f.tagNames, "tags", nil, "only entities with these tag names")
	cmd.Flags().StringSliceVar(&f.exclTagNames, "exclude-tags", nil, "skip entities with these tag names")
	cmd.Flags().BoolVar(&f.tagDetail, "tag-detail", false, "include tag details")
}

type taggableBuilder[Q any] interface {
	WithName(name string) Q
	WithNumberPerPage(num int) Q
	WithPage(page int) Q
	WithTagNames(names []string) Q
	ExcludeTagNames(names []string) Q
	WithTagDetails() Q
}

// apply copies the set flags onto a query builder.
func apply[Q taggableBuilder[Q]](query Q, f *queryFlags) Q {
	if f.name != "" {
		query = query.WithName(f.name)
	}

	if f.num > 0 {
		query = query.WithNumberPerPage(f.num)
	}

	if f.page > 0 {
		query = query.WithPage(f.page)
	}

	if len(f.tagNames) > 0 {
		query = query.WithTagNames(f.tagNames)
	}

	if len(f.exclTagNames) > 0 {
		query = query.ExcludeTagNames(f.exclTagNames)
	}

	if f.tagDetail {
		query = query.WithTagDetails()
	}

	return query
}
