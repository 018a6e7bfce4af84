package store

import (
	"context"
	"testing"
	"time"

	"github.com/homemate-app/homemate/internal/db"
	"github.com/homemate-app/homemate/internal/model"
)

func testAppliance(name string) *model.Appliance {
	return &model.Appliance{
		Name:                name,
		Type:                "Kitchen Items",
		WarrantyExpiry:      model.NewDate(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)),
		MaintenanceSchedule: model.NewDate(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		Value:               500,
		PastMaintenance:     model.DateList{},
	}
}

func TestInsertAndListByOwner(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, err := Appliances.Insert(ctx, database, 1, testAppliance("Fridge"))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected generated id")
	}
	if created.OwnerID != 1 {
		t.Errorf("expected owner 1, got %d", created.OwnerID)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected server-assigned timestamps")
	}

	docs, err := Appliances.ListByOwner(ctx, database, 1)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0].Name != "Fridge" {
		t.Errorf("expected name 'Fridge', got %q", docs[0].Name)
	}
}

func TestRoundTripFields(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	in := testAppliance("Washer")
	in.PastMaintenance = model.DateList{
		model.NewDate(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
	}

	created, err := Appliances.Insert(ctx, database, 1, in)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := Appliances.Get(ctx, database, created.ID, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("expected document")
	}
	if got.Name != "Washer" || got.Type != "Kitchen Items" || got.Value != 500 {
		t.Errorf("fields changed in round-trip: %+v", got)
	}
	if !got.WarrantyExpiry.Equal(in.WarrantyExpiry.Time) {
		t.Errorf("warranty expiry changed: %v != %v", got.WarrantyExpiry, in.WarrantyExpiry)
	}
	if len(got.PastMaintenance) != 1 || !got.PastMaintenance[0].Equal(in.PastMaintenance[0].Time) {
		t.Errorf("past maintenance changed: %v", got.PastMaintenance)
	}
}

func TestCrossOwnerIsolation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, _ := Appliances.Insert(ctx, database, 1, testAppliance("Fridge"))

	// Owner 2 must not see owner 1's document anywhere.
	docs, _ := Appliances.ListByOwner(ctx, database, 2)
	if len(docs) != 0 {
		t.Errorf("expected empty list for other owner, got %d documents", len(docs))
	}

	got, err := Appliances.Get(ctx, database, created.ID, 2)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Error("expected nil getting another owner's document")
	}

	updated, err := Appliances.Update(ctx, database, created.ID, 2, testAppliance("Stolen"))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated != nil {
		t.Error("expected nil updating another owner's document")
	}

	deleted, err := Appliances.Delete(ctx, database, created.ID, 2)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted {
		t.Error("expected no deletion of another owner's document")
	}

	// The document is untouched for its real owner.
	got, _ = Appliances.Get(ctx, database, created.ID, 1)
	if got == nil || got.Name != "Fridge" {
		t.Errorf("owner's document damaged: %+v", got)
	}
}

func TestUpdateReplacesFields(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, _ := Appliances.Insert(ctx, database, 1, testAppliance("Fridge"))

	replacement := testAppliance("Freezer")
	replacement.Value = 750

	updated, err := Appliances.Update(ctx, database, created.ID, 1, replacement)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated document")
	}
	if updated.Name != "Freezer" || updated.Value != 750 {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.ID != created.ID || updated.OwnerID != 1 {
		t.Errorf("identity changed on update: %+v", updated)
	}
}

func TestDeleteIdempotence(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, _ := Appliances.Insert(ctx, database, 1, testAppliance("Fridge"))

	deleted, err := Appliances.Delete(ctx, database, created.ID, 1)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Fatal("expected deletion")
	}

	// Second delete reports not-found, never errors.
	deleted, err = Appliances.Delete(ctx, database, created.ID, 1)
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if deleted {
		t.Error("expected no deletion the second time")
	}
}

func TestCollectionsIndependent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	Appliances.Insert(ctx, database, 1, testAppliance("Fridge"))
	Clothing.Insert(ctx, database, 1, &model.Clothing{
		ItemName:     "Jacket",
		Brand:        "Acme",
		Quantity:     2,
		PurchaseDate: model.NewDate(time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)),
	})
	PantryItems.Insert(ctx, database, 1, &model.PantryItem{
		Title:      "Rice",
		Content:    "Grains",
		Price:      3.5,
		ExpireDate: model.NewDate(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		Quantity:   4,
	})
	Essentials.Insert(ctx, database, 1, &model.Essential{
		ItemName:     "Detergent",
		NoOfItems:    1,
		ExpiryDate:   model.NewDate(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)),
		Description:  "Laundry detergent",
		CurrentPrice: 9.99,
		Type:         "Cleaning",
	})

	appliances, _ := Appliances.ListByOwner(ctx, database, 1)
	clothing, _ := Clothing.ListByOwner(ctx, database, 1)
	pantry, _ := PantryItems.ListByOwner(ctx, database, 1)
	essentials, _ := Essentials.ListByOwner(ctx, database, 1)

	if len(appliances) != 1 || len(clothing) != 1 || len(pantry) != 1 || len(essentials) != 1 {
		t.Errorf("expected 1 document per collection, got %d/%d/%d/%d",
			len(appliances), len(clothing), len(pantry), len(essentials))
	}
}
