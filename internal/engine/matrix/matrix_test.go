package matrix_test

import (
	"encoding/json"
	"testing"

	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/engine/matrix"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func units() []domain.Subflake {
	root := domain.DefaultSubflake("root")

	docs := domain.DefaultSubflake("docs")
	docs.Systems = domain.OnlySystems("x86_64-linux")

	mac := domain.DefaultSubflake("mac")
	mac.Systems = domain.OnlySystems("aarch64-darwin", "x86_64-darwin")

	off := domain.DefaultSubflake("off")
	off.Skip = true

	return []domain.Subflake{root, off, mac, docs}
}

func config(rest ...string) *domain.ResolvedConfig {
	return domain.NewResolvedConfig(domain.SourceSidecar, "default", units(), rest)
}

func TestGenerate_Golden(t *testing.T) {
	m, err := matrix.Generate(
		[]domain.System{"x86_64-linux", "aarch64-darwin"},
		config(),
		domain.SelectionStrict,
	)
	require.NoError(t, err)

	out, err := json.MarshalIndent(m, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "matrix", out)
}

func TestGenerate_SystemOrderDoesNotChangeRows(t *testing.T) {
	a, err := matrix.Generate([]domain.System{"x86_64-linux", "aarch64-darwin", "x86_64-darwin"}, config(), domain.SelectionStrict)
	require.NoError(t, err)
	b, err := matrix.Generate([]domain.System{"x86_64-darwin", "x86_64-linux", "aarch64-darwin"}, config(), domain.SelectionStrict)
	require.NoError(t, err)

	assert.ElementsMatch(t, a.Include, b.Include)
	assert.NotEqual(t, a.Include, b.Include)
}

func TestGenerate_Selection(t *testing.T) {
	systems := []domain.System{"x86_64-linux", "aarch64-darwin"}

	tests := []struct {
		name    string
		rest    []string
		policy  domain.SelectionPolicy
		want    []domain.MatrixRow
		wantErr error
	}{
		{
			name: "selected unit",
			rest: []string{"mac"},
			want: []domain.MatrixRow{{System: "aarch64-darwin", Subflake: "mac"}},
		},
		{
			name: "selected skip unit yields nothing",
			rest: []string{"off"},
			want: []domain.MatrixRow{},
		},
		{
			name:    "unknown unit",
			rest:    []string{"nope"},
			wantErr: domain.ErrUnitNotFound,
		},
		{
			name:   "unknown unit allowed empty",
			rest:   []string{"nope"},
			policy: domain.SelectionAllowEmpty,
			want:   []domain.MatrixRow{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := matrix.Generate(systems, config(tt.rest...), tt.policy)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Include)
		})
	}
}

func TestGenerate_EmptyMatrixEncodesIncludeArray(t *testing.T) {
	m, err := matrix.Generate(nil, config(), domain.SelectionStrict)
	require.NoError(t, err)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"include":[]}`, string(out))
}
