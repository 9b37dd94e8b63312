package stalker

import (
	"fmt"
	"strings"
)

// SectorKey identifies one of the eleven GICS-style sectors, spelled the
// way the upstream pages key them (kebab-case path segments).
type SectorKey string

const (
	BasicMaterials        SectorKey = "basic-materials"
	CommunicationServices SectorKey = "communication-services"
	ConsumerCyclical      SectorKey = "consumer-cyclical"
	ConsumerDefensive     SectorKey = "consumer-defensive"
	Energy                SectorKey = "energy"
	FinancialServices     SectorKey = "financial-services"
	Healthcare            SectorKey = "healthcare"
	Industrials           SectorKey = "industrials"
	RealEstate            SectorKey = "real-estate"
	Technology            SectorKey = "technology"
	Utilities             SectorKey = "utilities"
)

// AllSectors lists the sector universe in its conventional order.
func AllSectors() []SectorKey {
	return []SectorKey{
		BasicMaterials,
		CommunicationServices,
		ConsumerCyclical,
		ConsumerDefensive,
		Energy,
		FinancialServices,
		Healthcare,
		Industrials,
		RealEstate,
		Technology,
		Utilities,
	}
}

// ParseSectorKey normalizes a sector name ("Basic Materials",
// "basic-materials") into its key, or errors on an unknown sector.
func ParseSectorKey(s string) (SectorKey, error) {
	key := SectorKey(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-"))
	for _, k := range AllSectors() {
		if k == key {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sector %q", s)
}

func (k SectorKey) String() string { return string(k) }

// Name returns the display name of the sector ("basic-materials" ->
// "Basic Materials").
func (k SectorKey) Name() string { return FormatName(string(k)) }

// FormatName turns a kebab-case key into a Title Case display name.
func FormatName(key string) string {
	parts := strings.Split(key, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// KeyOf turns a display name back into its kebab-case key
// ("Consumer Cyclical" -> "consumer-cyclical").
func KeyOf(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// SectorOverview is everything the sector page shows about one sector.
type SectorOverview struct {
	Key          SectorKey        `json:"key"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	Companies    int              `json:"companies"`
	Industries   []IndustryWeight `json:"industries,omitempty"`
	Employees    int64            `json:"employees,omitempty"`
	MarketCap    Money            `json:"market_cap"`
	MarketWeight Percent          `json:"market_weight"`
	TopCompanies []CompanyRef     `json:"top_companies,omitempty"`
}

// IndustriesCount returns the number of industries in the sector.
func (o *SectorOverview) IndustriesCount() int { return len(o.Industries) }

// IndustryWeight is one row of a sector's industry table.
type IndustryWeight struct {
	Key          string  `json:"key"`
	Name         string  `json:"name"`
	MarketWeight Percent `json:"market_weight"`
}

// CompanyRef names a company inside a sector or industry table.
type CompanyRef struct {
	Symbol    Symbol  `json:"symbol"`
	Name      string  `json:"name"`
	Weight    Percent `json:"weight,omitempty"` // share of the sector/industry market cap, when known
	LastPrice float64 `json:"last_price,omitempty"`
	DayChange Percent `json:"day_change,omitempty"`
}

// IndustryOverview is everything the industry page shows about one industry.
type IndustryOverview struct {
	Key           string       `json:"key"`
	Name          string       `json:"name"`
	Sector        SectorKey    `json:"sector"`
	MarketWeight  Percent      `json:"market_weight"`
	DayChange     Percent      `json:"day_change"`
	Employees     int64        `json:"employees,omitempty"`
	MarketCap     Money        `json:"market_cap"`
	Companies     int          `json:"companies"`
	TopPerformers []CompanyRef `json:"top_performers,omitempty"` // at most 5
}
