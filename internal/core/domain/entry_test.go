package domain_test

import (
	"testing"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBudgetEntry_ComputedAmount(t *testing.T) {
	tests := []struct {
		name  string
		entry domain.BudgetEntry
		want  decimal.Decimal
	}{
		{
			name:  "no detail lines",
			entry: domain.BudgetEntry{},
			want:  decimal.Zero,
		},
		{
			name: "single line price x quantity x frequency",
			entry: domain.BudgetEntry{
				Details: []domain.DetailLine{
					{
						Price:     decimal.NewFromInt(1000),
						Quantity:  decimal.NewFromInt(2),
						Frequency: decimal.NewFromInt(3),
					},
				},
			},
			want: decimal.NewFromInt(6000),
		},
		{
			name: "multiple lines summed",
			entry: domain.BudgetEntry{
				Details: []domain.DetailLine{
					{
						Price:     decimal.NewFromInt(500),
						Quantity:  decimal.NewFromInt(4),
						Frequency: decimal.NewFromInt(1),
					},
					{
						Price:     decimal.NewFromFloat(12.5),
						Quantity:  decimal.NewFromInt(2),
						Frequency: decimal.NewFromInt(12),
					},
				},
			},
			want: decimal.NewFromInt(2300),
		},
		{
			name: "zero frequency line contributes nothing",
			entry: domain.BudgetEntry{
				Details: []domain.DetailLine{
					{
						Price:     decimal.NewFromInt(999),
						Quantity:  decimal.NewFromInt(9),
						Frequency: decimal.Zero,
					},
				},
			},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.entry.ComputedAmount()
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestBudgetEntry_Validate(t *testing.T) {
	valid := domain.BudgetEntry{
		EntryID:    "entry_1",
		SubjectID:  "subj_1",
		OrgID:      "org_1",
		FiscalYear: 2026,
		Details: []domain.DetailLine{
			{Price: decimal.NewFromInt(100), Quantity: decimal.NewFromInt(1), Frequency: decimal.NewFromInt(1)},
		},
	}
	assert.NoError(t, valid.Validate())

	missingSubject := valid
	missingSubject.SubjectID = ""
	assert.Error(t, missingSubject.Validate())

	missingOrg := valid
	missingOrg.OrgID = ""
	assert.Error(t, missingOrg.Validate())

	badYear := valid
	badYear.FiscalYear = 0
	assert.Error(t, badYear.Validate())

	negative := valid
	negative.Details = []domain.DetailLine{
		{Price: decimal.NewFromInt(-1), Quantity: decimal.NewFromInt(1), Frequency: decimal.NewFromInt(1)},
	}
	assert.Error(t, negative.Validate())
}

func TestNodeFamily_MaxDepth(t *testing.T) {
	assert.Equal(t, 4, domain.FamilySubject.MaxDepth())
	assert.Equal(t, 2, domain.FamilyOrganization.MaxDepth())
}
