package stalker

import (
	"context"
	"errors"

	"github.com/stalking-stocks/stalker/timeseries"
)

// ErrNotFound reports that the upstream source does not know the symbol,
// sector or industry.
var ErrNotFound = errors.New("not found")

// BarProvider fetches the bar history of a symbol over a horizon.
type BarProvider interface {
	Bars(ctx context.Context, symbol Symbol, horizon Horizon, interval Interval) (*Series, error)
}

// BarRangeProvider fetches daily bars between two dates, inclusive.
// The store refresh uses it to fill only the gap since the last stored bar.
type BarRangeProvider interface {
	BarsBetween(ctx context.Context, symbol Symbol, from, to timeseries.Date) (*Series, error)
}

// QuoteProvider fetches real-time quotes for a batch of symbols.
// Unknown symbols are silently absent from the result.
type QuoteProvider interface {
	Quote(ctx context.Context, symbols ...Symbol) ([]Quote, error)
}

// ProfileProvider fetches the company profile of a symbol.
type ProfileProvider interface {
	Profile(ctx context.Context, symbol Symbol) (*TickerInfo, error)
}

// SectorProvider fetches the sector and industry taxonomy pages.
type SectorProvider interface {
	Sector(ctx context.Context, key SectorKey) (*SectorOverview, error)
	Industry(ctx context.Context, sector SectorKey, industry string) (*IndustryOverview, error)
}

// MoversProvider fetches the day's biggest gainers.
type MoversProvider interface {
	DayGainers(ctx context.Context, count int) ([]Mover, error)
}

// MarketProvider is the full surface the reports draw on.
type MarketProvider interface {
	BarProvider
	BarRangeProvider
	QuoteProvider
	ProfileProvider
	SectorProvider
	MoversProvider
}
