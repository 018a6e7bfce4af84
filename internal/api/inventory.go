package api

import (
	"errors"
	"net/http"

	"github.com/homemate-app/homemate/internal/model"
)

// Request payloads for the inventory resources. Numeric fields are pointers
// so that a missing field is distinguishable from a zero value; any ownerId
// in the payload is ignored.

type applianceRequest struct {
	Name                string         `json:"name"`
	Type                string         `json:"type"`
	WarrantyExpiry      model.Date     `json:"warrantyExpiry"`
	MaintenanceSchedule model.Date     `json:"maintenanceSchedule"`
	Value               *float64       `json:"value"`
	PastMaintenance     model.DateList `json:"pastMaintenance"`
}

func parseAppliance(r *http.Request) (*model.Appliance, error) {
	var req applianceRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, errors.New("Invalid request body")
	}

	switch {
	case req.Name == "":
		return nil, errors.New("name is required")
	case req.Type == "":
		return nil, errors.New("type is required")
	case req.WarrantyExpiry.IsZero():
		return nil, errors.New("warrantyExpiry is required")
	case req.MaintenanceSchedule.IsZero():
		return nil, errors.New("maintenanceSchedule is required")
	case req.Value == nil:
		return nil, errors.New("value is required")
	case *req.Value < 0:
		return nil, errors.New("value must not be negative")
	}

	if req.PastMaintenance == nil {
		req.PastMaintenance = model.DateList{}
	}

	return &model.Appliance{
		Name:                req.Name,
		Type:                req.Type,
		WarrantyExpiry:      req.WarrantyExpiry,
		MaintenanceSchedule: req.MaintenanceSchedule,
		Value:               *req.Value,
		PastMaintenance:     req.PastMaintenance,
	}, nil
}

type clothingRequest struct {
	ItemName     string     `json:"itemName"`
	Brand        string     `json:"brand"`
	Quantity     *int64     `json:"quantity"`
	PurchaseDate model.Date `json:"purchaseDate"`
}

func parseClothing(r *http.Request) (*model.Clothing, error) {
	var req clothingRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, errors.New("Invalid request body")
	}

	switch {
	case req.ItemName == "":
		return nil, errors.New("itemName is required")
	case req.Brand == "":
		return nil, errors.New("brand is required")
	case req.Quantity == nil:
		return nil, errors.New("quantity is required")
	case *req.Quantity < 1:
		return nil, errors.New("quantity must be at least 1")
	case req.PurchaseDate.IsZero():
		return nil, errors.New("purchaseDate is required")
	}

	return &model.Clothing{
		ItemName:     req.ItemName,
		Brand:        req.Brand,
		Quantity:     *req.Quantity,
		PurchaseDate: req.PurchaseDate,
	}, nil
}

type essentialRequest struct {
	ItemName     string     `json:"itemName"`
	NoOfItems    *int64     `json:"noOfItems"`
	ExpiryDate   model.Date `json:"expiryDate"`
	Description  string     `json:"description"`
	CurrentPrice *float64   `json:"currentPrice"`
	Type         string     `json:"type"`
}

func parseEssential(r *http.Request) (*model.Essential, error) {
	var req essentialRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, errors.New("Invalid request body")
	}

	switch {
	case req.ItemName == "":
		return nil, errors.New("itemName is required")
	case req.NoOfItems == nil:
		return nil, errors.New("noOfItems is required")
	case *req.NoOfItems < 1:
		return nil, errors.New("noOfItems must be at least 1")
	case req.ExpiryDate.IsZero():
		return nil, errors.New("expiryDate is required")
	case req.Description == "":
		return nil, errors.New("description is required")
	case req.CurrentPrice == nil:
		return nil, errors.New("currentPrice is required")
	case *req.CurrentPrice < 0:
		return nil, errors.New("currentPrice must not be negative")
	case req.Type == "":
		return nil, errors.New("type is required")
	}

	return &model.Essential{
		ItemName:     req.ItemName,
		NoOfItems:    *req.NoOfItems,
		ExpiryDate:   req.ExpiryDate,
		Description:  req.Description,
		CurrentPrice: *req.CurrentPrice,
		Type:         req.Type,
	}, nil
}

type pantryItemRequest struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Price      *float64   `json:"price"`
	ExpireDate model.Date `json:"expireDate"`
	Quantity   *int64     `json:"quantity"`
}

func parsePantryItem(r *http.Request) (*model.PantryItem, error) {
	var req pantryItemRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, errors.New("Invalid request body")
	}

	switch {
	case req.Title == "":
		return nil, errors.New("title is required")
	case req.Content == "":
		return nil, errors.New("content is required")
	case req.Price == nil:
		return nil, errors.New("price is required")
	case *req.Price < 0:
		return nil, errors.New("price must not be negative")
	case req.ExpireDate.IsZero():
		return nil, errors.New("expireDate is required")
	case req.Quantity == nil:
		return nil, errors.New("quantity is required")
	case *req.Quantity < 1:
		return nil, errors.New("quantity must be at least 1")
	}

	return &model.PantryItem{
		Title:      req.Title,
		Content:    req.Content,
		Price:      *req.Price,
		ExpireDate: req.ExpireDate,
		Quantity:   *req.Quantity,
	}, nil
}
