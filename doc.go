// Package stalker provides the functions and types for stalking stock
// markets: browsing the sector and industry taxonomy, fetching price
// histories, and measuring how series behaved. It is designed to be
// local-first and auditable, so an owner's market notes and data live in
// plain files under their control.
//
// The core functionalities include:
//   - Market Taxonomy: Browsing the eleven sectors, their industries and
//     the companies inside them, resolved from display names or keys.
//   - Price Histories: Fetching OHLCV bars per symbol over standard
//     horizons at daily or intraday intervals, from pluggable providers.
//   - Series Analytics: Moving averages, returns, volatility, drawdowns,
//     streaks and the best achievable profit, computed over cleaned series.
//   - Screening: Measuring a whole universe of symbols and keeping those
//     that clear price, liquidity and momentum thresholds.
//   - Data Persistence: A bar store of human-readable, version-controllable
//     JSONL files, refreshed incrementally and exchanged as CSV.
//
// This package serves as the foundational logic for the `stks`
// command-line tool, ensuring that all operations are consistent and
// based on a single source of truth.
package stalker
