package domain

import "time"

// DefaultLocationName is the reserved name of the location every check is
// seeded with. Callers cannot create a second location with this name.
const DefaultLocationName = "default"

// Check is the top-level aggregate representing one shared bill. It
// exclusively owns its locations and line items; line items reference
// locations by ID only.
type Check struct {
	CheckID         string     `json:"checkId"`
	Date            string     `json:"date"` // YYYY-MM-DD
	Description     string     `json:"description"`
	CreateTimestamp time.Time  `json:"createTimestamp"`
	Locations       []Location `json:"locations"`
	LineItems       []LineItem `json:"lineItems,omitempty"`
}

// Location is a sub-tab within a check carrying flat tax and tip pools.
// TaxInCents/TipInCents are whole-location amounts, not per-item rates;
// nil means no contribution.
type Location struct {
	LocationID    string `json:"locationId"`
	Name          string `json:"name"`
	TaxInCents    *int64 `json:"taxInCents,omitempty"`
	TipInCents    *int64 `json:"tipInCents,omitempty"`
	LineItemCount int    `json:"lineItemCount"`
}

// LineItem is a single purchased item. Owners is the set of participant
// names sharing the item; AmountInCents nil counts as zero.
type LineItem struct {
	LineItemID    string   `json:"lineItemId"`
	LocationID    string   `json:"locationId"`
	Name          string   `json:"name"`
	AmountInCents *int64   `json:"amountInCents,omitempty"`
	Owners        []string `json:"owners,omitempty"`
}

// CheckSummary is the listing projection of a check.
type CheckSummary struct {
	CheckID     string `json:"checkId"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// LocationByID returns the location with the given ID, or nil.
func (c *Check) LocationByID(locationID string) *Location {
	for i := range c.Locations {
		if c.Locations[i].LocationID == locationID {
			return &c.Locations[i]
		}
	}
	return nil
}

// LocationByName returns the location with the given name (exact match), or nil.
func (c *Check) LocationByName(name string) *Location {
	for i := range c.Locations {
		if c.Locations[i].Name == name {
			return &c.Locations[i]
		}
	}
	return nil
}

// LineItemByID returns the line item with the given ID, or nil.
func (c *Check) LineItemByID(lineItemID string) *LineItem {
	for i := range c.LineItems {
		if c.LineItems[i].LineItemID == lineItemID {
			return &c.LineItems[i]
		}
	}
	return nil
}

// Summary returns the listing projection of the check.
func (c *Check) Summary() CheckSummary {
	return CheckSummary{
		CheckID:     c.CheckID,
		Description: c.Description,
		Date:        c.Date,
	}
}

// Amount returns the line item's amount, treating nil as zero.
func (li *LineItem) Amount() int64 {
	if li.AmountInCents == nil {
		return 0
	}
	return *li.AmountInCents
}
