package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/stalking-stocks/stalker"
	"github.com/stalking-stocks/stalker/docs"
	"github.com/stalking-stocks/stalker/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the experts' skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to stalk the stock market: live quotes, sector moves,
			and how the tickers they keep an eye on are doing.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.

			The user will assume that you know their watchlist, check it first to understand what they follow.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates the expert that searches the web for market news.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert market researcher,
		very well aware of publicly traded companies, funds and financial institutions,
		and of the latest news moving their prices.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in equity research, you can search and find about anything related to
			companies, markets, sectors, funds etc. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst creates the expert that reads live market data and the
// user's watchlist through local tools.
func NewAnalyst(p stalker.MarketProvider, store *stalker.Store) *Expert {

	lib := []Function{getQuote(p), getTickerReport(p), getSectorReport(p), listWatchlist(store)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst, with direct access to live market data and to the user's watchlist.
		The Analyst can quote any ticker, report its profile and analytics over a horizon (growth, volatility,
		max drawdown, best possible trade, streaks, moving averages), and describe whole sectors.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a market analyst in charge of the user's watchlist.
				You know how to use the Tools to get live quotes, ticker analytics and sector overviews.
				You are part of a team of experts, yours is everything measurable about the market. They might ask
				you questions about tickers or sectors, pardon their approximative language and figure out what they meant.

				Use the available tools to get information about the market
				  - the watched symbols and their notes
				  - live quotes
				  - ticker reports with analytics over a horizon
				  - sector overviews
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func markdownResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func getQuote(p stalker.QuoteProvider) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "get_quote",
			Description: `get_quote returns the live quote of one ticker symbol:
			last price, day change, open, day range and volume.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"symbol": {
						Type:        genai.TypeString,
						Description: "The ticker symbol to quote, e.g. AAPL.",
					},
				},
				Required: []string{"symbol"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A one-line summary of the live quote.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			symbol, err := parseSymbol(args)
			if err != nil {
				return errorResponse(id, "get_quote", err)
			}
			quotes, err := p.Quote(ctx, symbol)
			if err != nil {
				return errorResponse(id, "get_quote", err)
			}
			if len(quotes) == 0 {
				return errorResponse(id, "get_quote", fmt.Errorf("no quote for %s", symbol))
			}
			q := quotes[0]
			out := fmt.Sprintf("%s (%s): %.2f %s, %s today, open %.2f, day range %.2f - %.2f, volume %s",
				q.Symbol, q.ShortName, q.Price, q.Currency, q.ChangePercent.SignedString(),
				q.Open, q.DayLow, q.DayHigh, stalker.FormatLargeNumber(float64(q.Volume)))
			return markdownResponse(id, "get_quote", out)
		},
	}
}

func getTickerReport(p stalker.MarketProvider) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "get_ticker_report",
			Description: `get_ticker_report returns the full dashboard of one ticker: company profile,
			live price, and analytics over the given horizon (growth, volatility, max drawdown,
			best possible trade, streaks, moving averages).`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"symbol": {
						Type:        genai.TypeString,
						Description: "The ticker symbol to report on, e.g. NVDA.",
					},
					"horizon": {
						Type: genai.TypeString,
						Description: `How far back the analytics look. 1y is the default.
						Below is the doc about horizons.

						` + must(docs.GetTopic("horizons")),
					},
				},
				Required: []string{"symbol"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the ticker's profile, price and analytics.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			symbol, err := parseSymbol(args)
			if err != nil {
				return errorResponse(id, "get_ticker_report", err)
			}
			horizon, err := parseHorizon(args)
			if err != nil {
				return errorResponse(id, "get_ticker_report", err)
			}
			r, err := stalker.NewTickerReport(ctx, p, symbol, horizon, "")
			if err != nil {
				return errorResponse(id, "get_ticker_report", err)
			}
			return markdownResponse(id, "get_ticker_report", renderer.Ticker(r))
		},
	}
}

func getSectorReport(p stalker.SectorProvider) *Func {
	keys := make([]string, 0, len(stalker.AllSectors()))
	for _, k := range stalker.AllSectors() {
		keys = append(keys, k.String())
	}

	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "get_sector_report",
			Description: `get_sector_report returns the overview of one market sector: size, industry
			breakdown and largest companies.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"sector": {
						Type:        genai.TypeString,
						Description: "The sector to describe, one of: " + strings.Join(keys, ", ") + ".",
					},
				},
				Required: []string{"sector"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the sector's industries and top companies.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			key, err := parseSector(args)
			if err != nil {
				return errorResponse(id, "get_sector_report", err)
			}
			r, err := stalker.NewSectorReport(ctx, p, key)
			if err != nil {
				return errorResponse(id, "get_sector_report", err)
			}
			return markdownResponse(id, "get_sector_report", renderer.Sector(r))
		},
	}
}

func listWatchlist(store *stalker.Store) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "list_watchlist",
			Description: `list_watchlist returns the ticker symbols the user keeps an eye on, with their notes.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the watched symbols and notes.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			list, err := store.Watchlist()
			if err != nil {
				return errorResponse(id, "list_watchlist", err)
			}
			return markdownResponse(id, "list_watchlist", renderer.Watchlist(list))
		},
	}
}

func parseSymbol(args map[string]any) (stalker.Symbol, error) {
	raw, has := args["symbol"]
	if !has {
		return "", fmt.Errorf("missing argument 'symbol'")
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("argument 'symbol' is not a string as expected but %T", raw)
	}
	return stalker.ParseSymbol(s)
}

func parseHorizon(args map[string]any) (stalker.Horizon, error) {
	raw, has := args["horizon"]
	if !has {
		return stalker.Horizon1Y, nil
	}
	s, ok := raw.(string)
	if !ok {
		return stalker.Horizon1Y, fmt.Errorf("argument 'horizon' is not a string as expected but %T", raw)
	}
	h, err := stalker.ParseHorizon(s)
	if err != nil {
		return stalker.Horizon1Y, fmt.Errorf("argument 'horizon' must be a valid horizon, got %q. Below is the doc about horizons\n\n%s", s, must(docs.GetTopic("horizons")))
	}
	return h, nil
}

func parseSector(args map[string]any) (stalker.SectorKey, error) {
	raw, has := args["sector"]
	if !has {
		return "", fmt.Errorf("missing argument 'sector'")
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("argument 'sector' is not a string as expected but %T", raw)
	}
	return stalker.ParseSectorKey(s)
}
