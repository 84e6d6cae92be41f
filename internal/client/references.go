package client

import (
	"context"
	"strconv"
	"strings"

	"github.com/mapmotion/geocore-go/internal/constants"
	internalhttp "github.com/mapmotion/geocore-go/internal/http"
	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// ReferencesClient implements the geocore.ReferencesClient interface.
type ReferencesClient struct {
	requester *requester
}

// NewReferencesClient creates a new ReferencesClient.
func NewReferencesClient(httpClient *internalhttp.Client) *ReferencesClient {
	return &ReferencesClient{requester: newRequester(httpClient)}
}

// GADMLevel0 lists the GADM countries.
func (c *ReferencesClient) GADMLevel0(ctx context.Context) ([]geocore.Entity, error) {
	return c.gadm(ctx)
}

// GADMLevel1 lists the first-level areas of a country.
func (c *ReferencesClient) GADMLevel1(ctx context.Context, level0 string) ([]geocore.Entity, error) {
	return c.gadm(ctx, level0)
}

// GADMLevel2 lists the second-level areas.
func (c *ReferencesClient) GADMLevel2(ctx context.Context, level0, level1 string) ([]geocore.Entity, error) {
	return c.gadm(ctx, level0, level1)
}

// GADMLevel3 lists the third-level areas.
func (c *ReferencesClient) GADMLevel3(ctx context.Context, level0, level1, level2 string) ([]geocore.Entity, error) {
	return c.gadm(ctx, level0, level1, level2)
}

func (c *ReferencesClient) gadm(ctx context.Context, levels ...string) ([]geocore.Entity, error) {
	for i, level := range levels {
		err := requireID("level"+strconv.Itoa(i), level)
		if err != nil {
			return nil, err
		}
	}

	path := constants.APIPathGADM
	if len(levels) > 0 {
		path += "/" + strings.Join(levels, "/")
	}

	return c.requester.entities(ctx, path, "listing GADM areas")
}
