package stalker

import (
	"context"
	"fmt"
)

// SectorReport is the sector page as data.
type SectorReport struct {
	*SectorOverview
}

// NewSectorReport fetches the overview of one sector.
func NewSectorReport(ctx context.Context, p SectorProvider, key SectorKey) (*SectorReport, error) {
	overview, err := p.Sector(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("fetching sector %s: %w", key, err)
	}
	return &SectorReport{SectorOverview: overview}, nil
}

// IndustryReport is the industry page as data.
type IndustryReport struct {
	*IndustryOverview
}

// NewIndustryReport fetches the overview of one industry within a
// sector. The industry may be given as a key or a display name.
func NewIndustryReport(ctx context.Context, p SectorProvider, sector SectorKey, industry string) (*IndustryReport, error) {
	overview, err := p.Industry(ctx, sector, KeyOf(industry))
	if err != nil {
		return nil, fmt.Errorf("fetching industry %s/%s: %w", sector, KeyOf(industry), err)
	}
	return &IndustryReport{IndustryOverview: overview}, nil
}

// MoversReport lists the day's biggest gainers.
type MoversReport struct {
	Count  int     `json:"count"`
	Movers []Mover `json:"movers"`
}

// NewMoversReport fetches at most count day gainers.
func NewMoversReport(ctx context.Context, p MoversProvider, count int) (*MoversReport, error) {
	movers, err := p.DayGainers(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("fetching day gainers: %w", err)
	}
	if len(movers) > count {
		movers = movers[:count]
	}
	return &MoversReport{Count: len(movers), Movers: movers}, nil
}
