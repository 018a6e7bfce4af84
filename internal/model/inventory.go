package model

import "time"

// The four inventory entities share the same shape: an id, the owning user,
// resource-specific fields, and server-assigned timestamps. Visibility and
// mutability of every document is restricted to its owner.

// Appliance is a household appliance with warranty and maintenance tracking.
type Appliance struct {
	ID                  int64     `json:"id"`
	OwnerID             int64     `json:"ownerId"`
	Name                string    `json:"name"`
	Type                string    `json:"type"`
	WarrantyExpiry      Date      `json:"warrantyExpiry"`
	MaintenanceSchedule Date      `json:"maintenanceSchedule"`
	Value               float64   `json:"value"`
	PastMaintenance     DateList  `json:"pastMaintenance"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Clothing is a clothing inventory entry.
type Clothing struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"ownerId"`
	ItemName     string    `json:"itemName"`
	Brand        string    `json:"brand"`
	Quantity     int64     `json:"quantity"`
	PurchaseDate Date      `json:"purchaseDate"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Essential is a household essential with stock and price tracking.
type Essential struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"ownerId"`
	ItemName     string    `json:"itemName"`
	NoOfItems    int64     `json:"noOfItems"`
	ExpiryDate   Date      `json:"expiryDate"`
	Description  string    `json:"description"`
	CurrentPrice float64   `json:"currentPrice"`
	Type         string    `json:"type"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PantryItem is a pantry entry with expiry and quantity tracking.
type PantryItem struct {
	ID         int64     `json:"id"`
	OwnerID    int64     `json:"ownerId"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Price      float64   `json:"price"`
	ExpireDate Date      `json:"expireDate"`
	Quantity   int64     `json:"quantity"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
