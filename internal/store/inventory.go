package store

import (
	"github.com/homemate-app/homemate/internal/model"
)

// The four inventory collections. Each binds a document type to its table
// and columns; all CRUD goes through Collection.

// Appliances holds per-user appliance documents.
var Appliances = &Collection[model.Appliance]{
	Table: "appliances",
	Columns: []string{
		"name", "type", "warranty_expiry", "maintenance_schedule", "value", "past_maintenance",
	},
	Scan: func(s Scanner) (*model.Appliance, error) {
		a := &model.Appliance{}
		err := s.Scan(&a.ID, &a.OwnerID, &a.Name, &a.Type, &a.WarrantyExpiry,
			&a.MaintenanceSchedule, &a.Value, &a.PastMaintenance, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return a, nil
	},
	Values: func(a *model.Appliance) []any {
		return []any{a.Name, a.Type, a.WarrantyExpiry, a.MaintenanceSchedule, a.Value, a.PastMaintenance}
	},
}

// Clothing holds per-user clothing documents.
var Clothing = &Collection[model.Clothing]{
	Table: "clothing",
	Columns: []string{
		"item_name", "brand", "quantity", "purchase_date",
	},
	Scan: func(s Scanner) (*model.Clothing, error) {
		c := &model.Clothing{}
		err := s.Scan(&c.ID, &c.OwnerID, &c.ItemName, &c.Brand, &c.Quantity,
			&c.PurchaseDate, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return c, nil
	},
	Values: func(c *model.Clothing) []any {
		return []any{c.ItemName, c.Brand, c.Quantity, c.PurchaseDate}
	},
}

// Essentials holds per-user household essential documents.
var Essentials = &Collection[model.Essential]{
	Table: "essentials",
	Columns: []string{
		"item_name", "no_of_items", "expiry_date", "description", "current_price", "type",
	},
	Scan: func(s Scanner) (*model.Essential, error) {
		e := &model.Essential{}
		err := s.Scan(&e.ID, &e.OwnerID, &e.ItemName, &e.NoOfItems, &e.ExpiryDate,
			&e.Description, &e.CurrentPrice, &e.Type, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return e, nil
	},
	Values: func(e *model.Essential) []any {
		return []any{e.ItemName, e.NoOfItems, e.ExpiryDate, e.Description, e.CurrentPrice, e.Type}
	},
}

// PantryItems holds per-user pantry documents.
var PantryItems = &Collection[model.PantryItem]{
	Table: "pantry_items",
	Columns: []string{
		"title", "content", "price", "expire_date", "quantity",
	},
	Scan: func(s Scanner) (*model.PantryItem, error) {
		p := &model.PantryItem{}
		err := s.Scan(&p.ID, &p.OwnerID, &p.Title, &p.Content, &p.Price,
			&p.ExpireDate, &p.Quantity, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return p, nil
	},
	Values: func(p *model.PantryItem) []any {
		return []any{p.Title, p.Content, p.Price, p.ExpireDate, p.Quantity}
	},
}
