package stalker

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/stalking-stocks/stalker/timeseries"
)

// defaultBackfillYears is how far back the first fetch of a brand new
// symbol reaches.
const defaultBackfillYears = 5

// Refresh brings the stored daily history of each symbol up to through,
// fetching only the missing tail from the provider. A failing symbol
// does not stop the others; all errors are joined in the result.
func Refresh(ctx context.Context, store *Store, provider BarRangeProvider, symbols []Symbol, through timeseries.Date) error {
	var errs error
	for _, symbol := range symbols {
		if err := refresh(ctx, store, provider, symbol, through); err != nil {
			errs = errors.Join(errs, fmt.Errorf("refreshing %s: %w", symbol, err))
		}
	}
	return errs
}

func refresh(ctx context.Context, store *Store, provider BarRangeProvider, symbol Symbol, through timeseries.Date) error {
	series, err := store.History(symbol)
	if err != nil {
		return err
	}

	from := through.AddDate(-defaultBackfillYears, 0, 0)
	if latest := series.LatestDate(); !latest.IsZero() {
		if !latest.Before(through) {
			log.Printf("%s: up to date (%s)", symbol, latest)
			return nil
		}
		from = latest.Add(1)
	}

	fetched, err := provider.BarsBetween(ctx, symbol, from, through)
	if err != nil {
		return err
	}
	if fetched.Len() == 0 {
		log.Printf("%s: no new bars since %s", symbol, from)
		return nil
	}

	series.Merge(fetched)
	if series.Currency == "" {
		series.Currency = fetched.Currency
	}
	if err := store.Save(series); err != nil {
		return err
	}
	log.Printf("%s: stored %d new bars, history ends %s", symbol, fetched.Len(), series.LatestDate())
	return nil
}
