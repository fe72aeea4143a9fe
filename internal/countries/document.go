package countries

import (
	"strings"

	"github.com/dgraph-io/gqlparser/v2/ast"
	"github.com/dgraph-io/gqlparser/v2/gqlerror"
	"github.com/dgraph-io/gqlparser/v2/parser"
	"github.com/pkg/errors"
)

// requiredFields lists the country fields the UI depends on.
var requiredFields = []string{"code", "name", "currency", "languages"}

// parseDocument checks that src is a single GetCountries query selecting
// every field Country needs.
func parseDocument(src string) (*ast.QueryDocument, error) {
	doc, gqlErr := parser.ParseQuery(&ast.Source{Name: OperationName, Input: src})
	if gqlErr != nil {
		return nil, errors.Wrap(gqlErr, "parse query document")
	}
	if len(doc.Operations) != 1 {
		return nil, errors.Errorf("query document has %d operations, want 1", len(doc.Operations))
	}
	op := doc.Operations.ForName(OperationName)
	if op == nil {
		return nil, errors.Errorf("query document has no %s operation", OperationName)
	}
	if op.Operation != ast.Query {
		return nil, errors.Errorf("%s is a %s, want query", OperationName, op.Operation)
	}

	root := findField(op.SelectionSet, "countries")
	if root == nil {
		return nil, errors.New("query does not select countries")
	}
	for _, name := range requiredFields {
		if findField(root.SelectionSet, name) == nil {
			return nil, errors.Errorf("query does not select countries.%s", name)
		}
	}
	return doc, nil
}

func findField(set ast.SelectionSet, name string) *ast.Field {
	for _, sel := range set {
		if f, ok := sel.(*ast.Field); ok && f.Name == name {
			return f
		}
	}
	return nil
}

// queryError flattens GraphQL errors into one error carrying every message.
func queryError(list gqlerror.List) error {
	msgs := make([]string, 0, len(list))
	for _, e := range list {
		if e == nil {
			continue
		}
		if msg := strings.TrimSpace(e.Message); msg != "" {
			msgs = append(msgs, msg)
		}
	}
	if len(msgs) == 0 {
		return errors.New("graphql request failed")
	}
	return errors.New(strings.Join(msgs, "; "))
}
