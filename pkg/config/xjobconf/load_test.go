package xjobconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const sampleYAML = `
jobs:
  - name: heartbeat
    every: 30s
  - name: cleanup
    spec: "@every 1h"
    with_cancel: true
  - name: report
    every: 5m
    truncate: false
    disabled: true
`

func TestParseYAML(t *testing.T) {
	file, err := Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)
	require.Len(t, file.Jobs, 3)

	hb := file.Job("heartbeat")
	require.NotNil(t, hb)
	assert.Equal(t, "30s", hb.Every)
	assert.Nil(t, hb.Truncate)
	assert.False(t, hb.WithCancel)

	cl := file.Job("cleanup")
	require.NotNil(t, cl)
	assert.Equal(t, "@every 1h", cl.Spec)
	assert.True(t, cl.WithCancel)

	rp := file.Job("report")
	require.NotNil(t, rp)
	require.NotNil(t, rp.Truncate)
	assert.False(t, *rp.Truncate)
	assert.True(t, rp.Disabled)

	assert.Nil(t, file.Job("missing"))
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{"jobs": [{"name": "ping", "every": "1s"}]}`)
	file, err := Parse(data, FormatJSON)
	require.NoError(t, err)
	require.Len(t, file.Jobs, 1)
	assert.Equal(t, "ping", file.Jobs[0].Name)
}

func TestParseEmptyData(t *testing.T) {
	file, err := Parse(nil, FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, file.Jobs)
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "missing name",
			yaml:    "jobs:\n  - every: 1s\n",
			wantErr: ErrMissingName,
		},
		{
			name:    "duplicate name",
			yaml:    "jobs:\n  - name: a\n  - name: a\n",
			wantErr: ErrDuplicateJob,
		},
		{
			name:    "bad every",
			yaml:    "jobs:\n  - name: a\n    every: soon\n",
			wantErr: ErrInvalidEvery,
		},
		{
			name:    "negative every",
			yaml:    "jobs:\n  - name: a\n    every: -5s\n",
			wantErr: ErrInvalidEvery,
		},
		{
			name: "disabled entries are still validated",
			yaml: "jobs:\n  - name: a\n    every: nope\n    disabled: true\n",
			wantErr: ErrInvalidEvery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), FormatYAML)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseBadSpec(t *testing.T) {
	_, err := Parse([]byte("jobs:\n  - name: a\n    spec: nonsense\n"), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"a"`)
}

func TestParseUnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte("{}"), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	file, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, file.Jobs, 3)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("")
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = Load("/no/such/dir/jobs.toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load("/no/such/dir/jobs.yaml")
	assert.ErrorIs(t, err, ErrLoadFailed)
}
