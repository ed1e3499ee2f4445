package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stravex/internal/core/domain"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "Valid", input: "2025.03"},
		{name: "Valid December", input: "1999.12"},
		{name: "Dash Separator", input: "2025-03", wantErr: true},
		{name: "Short Year", input: "25.03", wantErr: true},
		{name: "Single Digit Month", input: "2025.3", wantErr: true},
		{name: "Trailing Text", input: "2025.03 ", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := domain.ParsePeriod(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorContains(t, err, domain.ErrInvalidPeriod.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, p.String())
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := domain.DefaultCatalog()

	require.NoError(t, c.Validate())
	assert.Len(t, c.All, 15)
	assert.Len(t, c.Defaults, 11)
	assert.Equal(t, c.All[:11], c.Defaults)
	assert.True(t, c.Contains("WM41_HSO_MID LAB INC"))
	assert.False(t, c.Contains("wm41_hso_mid lab inc"))
}

func TestCatalog_Validate(t *testing.T) {
	tests := []struct {
		name        string
		catalog     domain.Catalog
		errContains string
	}{
		{
			name:        "Empty",
			catalog:     domain.Catalog{},
			errContains: domain.ErrInvalidConfig.Error(),
		},
		{
			name:        "Duplicate",
			catalog:     domain.Catalog{All: []domain.EntityCode{"A", "B", "A"}},
			errContains: domain.ErrDuplicateEntity.Error(),
		},
		{
			name: "Unknown Default",
			catalog: domain.Catalog{
				All:      []domain.EntityCode{"A"},
				Defaults: []domain.EntityCode{"B"},
			},
			errContains: domain.ErrUnknownEntity.Error(),
		},
		{
			name: "Valid",
			catalog: domain.Catalog{
				All:      []domain.EntityCode{"A", "B"},
				Defaults: []domain.EntityCode{"B"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if tt.errContains == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestNewPlan(t *testing.T) {
	c := domain.DefaultCatalog()

	t.Run("Defaults", func(t *testing.T) {
		p, err := domain.NewPlan(c, "2025.03", nil, 20)
		require.NoError(t, err)

		assert.Equal(t, domain.Period("2025.03"), p.Period)
		assert.Equal(t, 11, p.Iterations())
		assert.Equal(t, []string{
			"CY41_HSO_INNOVIA",
			"WM41_HSO_MID LAB INC",
			"GG41_HSO_FRITZ RUCK",
			"GH41_HSO_EOS",
		}, p.ExcludeStrings())
	})

	t.Run("Explicit Selection Keeps Catalog Order For Exclusions", func(t *testing.T) {
		p, err := domain.NewPlan(c, "2025.03", []string{"GH41_HSO_EOS", "D341_HSO_HGM", "GH41_HSO_EOS"}, 5)
		require.NoError(t, err)

		assert.Equal(t, 2, p.Iterations())
		assert.Len(t, p.Exclude, 13)
		assert.Equal(t, domain.EntityCode("D342_HSO_HGMD"), p.Exclude[0])
		assert.Equal(t, domain.EntityCode("GG41_HSO_FRITZ RUCK"), p.Exclude[12])
		assert.Equal(t, 5, p.SelectBatch)
	})

	t.Run("Whole Catalog", func(t *testing.T) {
		include := make([]string, len(c.All))
		for i, code := range c.All {
			include[i] = string(code)
		}
		p, err := domain.NewPlan(c, "2025.03", include, 20)
		require.NoError(t, err)
		assert.Empty(t, p.Exclude)
		assert.Equal(t, 15, p.Iterations())
	})

	t.Run("Unknown Entity", func(t *testing.T) {
		_, err := domain.NewPlan(c, "2025.03", []string{"NOPE"}, 20)
		require.ErrorContains(t, err, domain.ErrUnknownEntity.Error())
	})

	t.Run("Empty Selection", func(t *testing.T) {
		_, err := domain.NewPlan(domain.Catalog{All: []domain.EntityCode{"A"}}, "2025.03", nil, 20)
		require.ErrorIs(t, err, domain.ErrEmptySelection)
	})

	t.Run("Invalid Period", func(t *testing.T) {
		_, err := domain.NewPlan(c, "2025/03", nil, 20)
		require.ErrorContains(t, err, domain.ErrInvalidPeriod.Error())
	})

	t.Run("Negative Batch", func(t *testing.T) {
		_, err := domain.NewPlan(c, "2025.03", nil, -1)
		require.ErrorContains(t, err, domain.ErrInvalidBatchSize.Error())
	})
}

func TestQuery(t *testing.T) {
	q := domain.Query{Role: domain.RoleButton, Name: "Display", AutomationID: "btnDisp"}

	assert.Equal(t, domain.DefaultSearchDepth, domain.Query{}.MaxDepth())
	assert.Equal(t, 3, domain.Query{Depth: 3}.MaxDepth())
	assert.Equal(t, `Button "Display" #btnDisp`, q.String())
	assert.Equal(t, "*", domain.Query{}.String())
}

func TestSnapshot(t *testing.T) {
	a := domain.Snapshot{
		{ID: "1", Role: domain.RolePane, Name: "Grid"},
		{ID: "2", Role: domain.RoleButton, Name: ""},
	}
	b := domain.Snapshot{
		{ID: "1", Role: domain.RolePane, Name: "Grid"},
		{ID: "2", Role: domain.RoleButton, Name: ""},
	}
	c := domain.Snapshot{
		{ID: "1", Role: domain.RolePane, Name: "Grid"},
		{ID: "3", Role: domain.RoleButton, Name: ""},
	}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(a[:1]))
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.True(t, domain.Snapshot{}.Equal(nil))
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, domain.DefaultSelectBatch, cfg.SelectBatch)
	assert.Equal(t, domain.DefaultRowAdvance, cfg.RowAdvance)
	assert.Equal(t, "STRAVIS", cfg.Layout.MainWindow)
	assert.Equal(t, `^AY.*\(YTD\)$`, cfg.Layout.PeriodPattern)
	assert.Positive(t, cfg.Timing.RowDwell)
	require.NoError(t, cfg.Catalog.Validate())
}
