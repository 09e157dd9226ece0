package database

import (
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	queryName  = regexp.MustCompile(`(?m)^-- name: (\w+) :\w+`)
	positional = regexp.MustCompile(`\$\d+`)
	named      = regexp.MustCompile(`@\w+|sqlc\.n?arg\(`)
)

// loadQueries returns every annotated query body keyed by name.
func loadQueries(t *testing.T) map[string]string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join("queries", "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	out := make(map[string]string)
	for _, f := range files {
		body, err := os.ReadFile(f)
		require.NoError(t, err)

		src := string(body)
		locs := queryName.FindAllStringSubmatchIndex(src, -1)
		for i, loc := range locs {
			end := len(src)
			if i+1 < len(locs) {
				end = locs[i+1][0]
			}
			name := src[loc[2]:loc[3]]
			require.NotContains(t, out, name, "duplicate query %s", name)
			out[name] = src[loc[1]:end]
		}
	}
	return out
}

func TestQuerySourcesMatchQuerier(t *testing.T) {
	queries := loadQueries(t)
	querier := reflect.TypeOf((*Querier)(nil)).Elem()

	assert.Len(t, queries, querier.NumMethod())
	for name := range queries {
		_, ok := querier.MethodByName(name)
		assert.True(t, ok, "query %s has no Querier method", name)
	}
}

func TestQueryParamsAreNotMixed(t *testing.T) {
	for name, body := range loadQueries(t) {
		assert.False(t, positional.MatchString(body) && named.MatchString(body),
			"%s mixes $N and named parameters", name)
	}
}

func TestWindowQueriesNameTheirBound(t *testing.T) {
	for name, body := range loadQueries(t) {
		if strings.HasSuffix(name, "Since") {
			assert.Contains(t, body, "@since", name)
		}
		if strings.Contains(body, "COALESCE($") {
			t.Errorf("%s passes a positional parameter through COALESCE", name)
		}
	}

	metrics := loadQueries(t)["GetHealthMetrics"]
	assert.Contains(t, metrics, "@week_ago")
	assert.Contains(t, metrics, "@now")
}
