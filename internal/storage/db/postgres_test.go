package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecer struct {
	stmts  []string
	failAt int
}

func (r *recordingExecer) ExecContext(_ context.Context, query string, _ ...any) (sql.Result, error) {
	r.stmts = append(r.stmts, query)
	if len(r.stmts) == r.failAt {
		return nil, errors.New("permission denied")
	}
	return nil, nil
}

func TestEnsureSchema(t *testing.T) {
	t.Parallel()

	ex := &recordingExecer{}
	require.NoError(t, EnsureSchema(context.Background(), ex))
	require.Len(t, ex.stmts, len(schema))
	assert.True(t, strings.Contains(ex.stmts[0], "review_sessions"))
	assert.True(t, strings.Contains(ex.stmts[1], "review_results"))
}

func TestEnsureSchema_StopsOnError(t *testing.T) {
	t.Parallel()

	ex := &recordingExecer{failAt: 1}
	err := EnsureSchema(context.Background(), ex)
	require.Error(t, err)
	assert.Len(t, ex.stmts, 1)
}
