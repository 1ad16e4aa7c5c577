package graph

import (
	"time"

	"github.com/cardbin/cardbin-api/models"
	"github.com/graphql-go/graphql"
)

// Argument maps come out of graphql-go as map[string]interface{}; these
// helpers pull typed values back out, keeping absent and present-but-zero
// distinguishable where the resolvers care.

func inputMap(p graphql.ResolveParams) map[string]interface{} {
	m, _ := p.Args["input"].(map[string]interface{})
	return m
}

func argString(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return v
}

func argInt(m map[string]interface{}, key string) int {
	v, _ := m[key].(int)
	return v
}

func argBool(m map[string]interface{}, key string) bool {
	v, _ := m[key].(bool)
	return v
}

func optString(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

func optBool(m map[string]interface{}, key string) *bool {
	if v, ok := m[key].(bool); ok {
		return &v
	}
	return nil
}

func optFloat(m map[string]interface{}, key string) *float64 {
	switch v := m[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

func optDifficulty(m map[string]interface{}, key string) *models.Difficulty {
	if v, ok := m[key].(models.Difficulty); ok {
		return &v
	}
	return nil
}

// stringList returns nil when the argument was absent and a non-nil slice,
// possibly empty, when it was given. Update semantics depend on the
// difference.
func stringList(m map[string]interface{}, key string) []string {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func uintList(m map[string]interface{}, key string) []uint {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]uint, 0, len(raw))
	for _, item := range raw {
		if n, ok := item.(int); ok && n >= 0 {
			out = append(out, uint(n))
		}
	}
	return out
}

// timeCursor converts an epoch-millisecond cursor back into a time.Time.
func timeCursor(m map[string]interface{}, key string) *time.Time {
	ms := optFloat(m, key)
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(int64(*ms))
	return &t
}
