package repository

import (
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// setBuilder accumulates "#attr = :attr" clauses of an UpdateExpression.
type setBuilder struct {
	clauses []string
	values  map[string]types.AttributeValue
	names   map[string]string
	err     error
}

func (s *setBuilder) add(attr string, v any) {
	if s.err != nil {
		return
	}
	av, err := attributevalue.Marshal(v)
	if err != nil {
		s.err = fmt.Errorf("marshal %s: %w", attr, err)
		return
	}
	if s.values == nil {
		s.values = map[string]types.AttributeValue{}
		s.names = map[string]string{}
	}
	s.clauses = append(s.clauses, fmt.Sprintf("#%s = :%s", attr, attr))
	s.values[":"+attr] = av
	s.names["#"+attr] = attr
}

func (s *setBuilder) build() (string, map[string]types.AttributeValue, map[string]string, error) {
	if s.err != nil {
		return "", nil, nil, s.err
	}
	return "SET " + strings.Join(s.clauses, ", "), s.values, s.names, nil
}
