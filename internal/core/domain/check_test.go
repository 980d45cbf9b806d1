package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/splitit-app/splitit_backend/internal/core/domain"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestLineItem_Amount(t *testing.T) {
	tests := []struct {
		name     string
		lineItem domain.LineItem
		want     int64
	}{
		{
			name:     "nil amount counts as zero",
			lineItem: domain.LineItem{Name: "comped round"},
			want:     0,
		},
		{
			name:     "explicit zero",
			lineItem: domain.LineItem{Name: "water", AmountInCents: int64Ptr(0)},
			want:     0,
		},
		{
			name:     "positive amount",
			lineItem: domain.LineItem{Name: "nachos", AmountInCents: int64Ptr(1250)},
			want:     1250,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lineItem.Amount())
		})
	}
}

func TestCheck_Lookups(t *testing.T) {
	check := domain.Check{
		CheckID: "check-1",
		Locations: []domain.Location{
			{LocationID: "loc-1", Name: domain.DefaultLocationName},
			{LocationID: "loc-2", Name: "bar"},
		},
		LineItems: []domain.LineItem{
			{LineItemID: "li-1", LocationID: "loc-1", Name: "wings"},
		},
	}

	assert.Equal(t, "bar", check.LocationByID("loc-2").Name)
	assert.Nil(t, check.LocationByID("loc-404"))

	assert.Equal(t, "loc-1", check.LocationByName(domain.DefaultLocationName).LocationID)
	assert.Nil(t, check.LocationByName("patio"))

	assert.Equal(t, "wings", check.LineItemByID("li-1").Name)
	assert.Nil(t, check.LineItemByID("li-404"))
}

func TestCheck_LookupsReturnMutablePointers(t *testing.T) {
	check := domain.Check{
		Locations: []domain.Location{
			{LocationID: "loc-1", Name: domain.DefaultLocationName},
		},
	}

	check.LocationByID("loc-1").LineItemCount++

	assert.Equal(t, 1, check.Locations[0].LineItemCount)
}

func TestCheck_Summary(t *testing.T) {
	check := domain.Check{
		CheckID:     "check-1",
		Date:        "2024-05-01",
		Description: "team dinner",
		Locations: []domain.Location{
			{LocationID: "loc-1", Name: domain.DefaultLocationName},
		},
	}

	summary := check.Summary()

	assert.Equal(t, domain.CheckSummary{
		CheckID:     "check-1",
		Description: "team dinner",
		Date:        "2024-05-01",
	}, summary)
}
