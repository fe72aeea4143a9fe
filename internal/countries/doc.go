// Package countries provides a GraphQL client for the public countries API.
//
// # Overview
//
// passport issues exactly one query against a countries GraphQL endpoint
// (https://countries.trevorblades.com/graphql by default):
//
//	query GetCountries {
//	  countries {
//	    code
//	    name
//	    currency
//	    languages { code name }
//	  }
//	}
//
// There are no variables, mutations or subscriptions. The response is decoded
// into []Country in the order the server returns it.
//
// # Client Usage
//
//	client, err := countries.NewClient("", countries.WithTimeout(5*time.Second))
//	if err != nil {
//		return err
//	}
//	list, err := client.FetchCountries(ctx)
//
// Callers that only need the data depend on the Fetcher interface so the
// picker logic can be tested without a network.
//
// # Query Document
//
// The document is parsed with gqlparser when the client is constructed. A
// document that fails to parse, names a different operation, or stops
// selecting a field Country relies on is rejected by NewClient instead of
// producing half-empty countries at runtime.
//
// # Request Handling
//
// All requests:
//   - POST {"query", "operationName"} as JSON
//   - Set Content-Type and Accept to application/json
//   - Include User-Agent: passport/0.1
//   - Use context for cancellation; a 10 second timeout applies when the
//     context has no deadline
//
// # Error Handling
//
//   - Initialization errors: unparsable endpoint, invalid query document
//   - Network errors: "execute request: ..."
//   - HTTP errors: "graphql endpoint returned status 502: <body prefix>"
//   - Deserialization errors: "decode response: ..."
//   - GraphQL errors: the "errors" array is decoded into a gqlerror.List and
//     its messages are joined with "; "
//
// The client never retries; the caller decides what a failure means.
//
// # Type System
//
// Country carries code, name, currency and languages. The API reports
// currency as a comma-separated string ("USD,USN,USS") and may return null,
// which decodes to "". Currencies and LanguageNames split these for display.
package countries
