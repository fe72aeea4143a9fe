package countries

import (
	"strings"

	"github.com/dgraph-io/gqlparser/v2/gqlerror"
)

// Country mirrors a country node returned by the countries query.
type Country struct {
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	Currency  string     `json:"currency"`
	Languages []Language `json:"languages"`
}

// Language describes a language spoken in a country.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// LanguageNames returns the language names in response order.
func (c Country) LanguageNames() []string {
	if len(c.Languages) == 0 {
		return nil
	}
	names := make([]string, 0, len(c.Languages))
	for _, lang := range c.Languages {
		if name := strings.TrimSpace(lang.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Currencies splits the comma-separated currency field ("USD,USN,USS").
func (c Country) Currencies() []string {
	if strings.TrimSpace(c.Currency) == "" {
		return nil
	}
	parts := strings.Split(c.Currency, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// request is the JSON body posted to the GraphQL endpoint.
type request struct {
	Query         string `json:"query"`
	OperationName string `json:"operationName,omitempty"`
}

// response mirrors the GraphQL envelope for the countries query.
type response struct {
	Data struct {
		Countries []Country `json:"countries"`
	} `json:"data"`
	Errors gqlerror.List `json:"errors,omitempty"`
}
