package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/accountbook/internal/id"
	"github.com/cleared-dev/accountbook/internal/model"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	seed := int64(42)
	cfg.Numbering.Seed = &seed

	path := filepath.Join(t.TempDir(), "accountbook.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, got.Numbering.Seed)
	assert.Equal(t, int64(42), got.Numbering.Start())
	assert.Equal(t, cfg.Accounts, got.Accounts)
	assert.Equal(t, cfg.Operations, got.Operations)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, id.DefaultSeed, cfg.Numbering.Start())
	require.Len(t, cfg.Accounts, 3)

	kinds := make(map[model.AccountKind]bool)
	labels := make(map[string]bool)
	for _, a := range cfg.Accounts {
		kinds[a.Kind] = true
		labels[a.Label] = true
	}
	assert.True(t, kinds[model.AccountKindStandard])
	assert.True(t, kinds[model.AccountKindGiftCard])
	assert.True(t, kinds[model.AccountKindLineOfCredit])

	for _, op := range cfg.Operations {
		assert.True(t, labels[op.Account], "operation on unknown account %q", op.Account)
	}
}

func TestLoadDefaultsSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accountbook.yaml")
	content := "accounts:\n  - label: a\n    kind: standard\n    owner: Al\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Numbering.Seed)
	assert.Equal(t, id.DefaultSeed, cfg.Numbering.Start())
	require.Len(t, cfg.Accounts, 1)
	assert.Equal(t, model.AccountKindStandard, cfg.Accounts[0].Kind)
	assert.Empty(t, cfg.Operations)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accountbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("accounts: [\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accountbook.yaml")
	err := Save(path, Default())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "seed: 1234567890")
	assert.Contains(t, contents, "kind: line-of-credit")
	assert.Contains(t, contents, "credit_limit: \"2000\"")
	assert.Contains(t, contents, "type: month_end")
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("27.50")
	require.NoError(t, err)
	assert.Equal(t, "27.5", d.String())

	d, err = ParseAmount("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = ParseAmount("ten")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-05")
	require.NoError(t, err)
	assert.True(t, d.Equal(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)))

	d, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = ParseDate("01/05/2025")
	assert.Error(t, err)
}

func TestLoadSeedZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accountbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("numbering:\n  seed: 0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Numbering.Seed)
	assert.Equal(t, int64(0), cfg.Numbering.Start())
}

func TestLoadNegativeSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accountbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("numbering:\n  seed: -3\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestNumberingValidate(t *testing.T) {
	tests := []struct {
		seed    *int64
		wantErr bool
	}{
		{nil, false},
		{ptr(0), false},
		{ptr(id.DefaultSeed), false},
		{ptr(-1), true},
	}
	for _, tt := range tests {
		err := NumberingConfig{Seed: tt.seed}.Validate()
		if tt.wantErr {
			assert.Error(t, err)
		} else {
			assert.NoError(t, err)
		}
	}
}

func ptr(n int64) *int64 { return &n }
