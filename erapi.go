package budget

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"os"

	"github.com/PaesslerAG/jsonpath"
)

// This file contains functions to access the open.er-api.com service.
// It only publishes the latest day, but unlike the historical service it
// quotes exotic currencies too (RUB among them), which is exactly why the
// default chain keeps it as a backstop.

/*
	{
	    "result": "success",
	    "base_code": "USD",
	    "time_last_update_utc": "Thu, 05 Feb 2026 00:02:31 +0000",
	    "rates": {
	        "USD": 1,
	        "TRY": 38.5021,
	        "RUB": 96.1033
	    }
	}
*/

const erAPIURLEnv = "BP_ERAPI_URL"

const defaultERAPIURL = "https://open.er-api.com/v6/latest"

// ERAPIProvider serves today's FX rates against a base currency. Requests
// for any other day are refused so the chain can fall through cleanly.
type ERAPIProvider struct {
	Base string

	addr   string
	client *http.Client
}

// NewERAPIProvider returns a latest-day provider quoting against the given
// base currency. The service address can be overridden with the
// BP_ERAPI_URL environment variable.
func NewERAPIProvider(base string) *ERAPIProvider {
	addr := os.Getenv(erAPIURLEnv)
	if addr == "" {
		addr = defaultERAPIURL
	}
	return &ERAPIProvider{Base: base, addr: addr, client: daily()}
}

// DailyRates implements RateProvider for today only.
func (p *ERAPIProvider) DailyRates(ctx context.Context, day Date, currencies []string) (map[string]float64, error) {
	if day != Today() {
		return nil, fmt.Errorf("er-api only serves the latest day, not %s", day)
	}

	addr := p.addr + "/" + p.Base
	var jobj any
	if err := jwget(ctx, p.client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", addr, err)
	}

	rates := make(map[string]float64, len(currencies))
	for _, cur := range currencies {
		path := "$.rates." + cur
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: %q %w", cur, path, err)
		}
		// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
		// by this call I keep the first one if any
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
		val, ok := jval.(float64)
		if !ok || math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, fmt.Errorf("error parsing %q: %q %s %v", cur, path, "not a float", jval)
		}
		rates[cur] = val
	}
	return rates, nil
}

// RangeRates implements RateProvider; er-api has no historical endpoint.
func (p *ERAPIProvider) RangeRates(ctx context.Context, from, to Date, currencies []string) (map[Date]map[string]float64, error) {
	return nil, fmt.Errorf("er-api has no historical rates (%s..%s)", from, to)
}

var _ RateProvider = (*ERAPIProvider)(nil)

// DefaultProviders returns the standard provider chain for a base currency:
// the historical service first, the latest-only service as a backstop.
func DefaultProviders(base string) RateProvider {
	return ChainProvider{NewFrankfurterProvider(base), NewERAPIProvider(base)}
}
