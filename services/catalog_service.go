package services

import (
	"errors"
	"strings"

	"hotel-pms/models"
	"hotel-pms/pmserr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogService manages the sellable service menu and per-stay charges.
// Charges snapshot the item's name and price at posting time, so later menu
// edits never rewrite past bills.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

func (s *CatalogService) ListItems() ([]models.ServiceItem, error) {
	var items []models.ServiceItem
	if err := s.DB.Order("item_name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CatalogService) CreateItem(name string, price int64) (*models.ServiceItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pmserr.Validation("item_name", "item name is required")
	}
	if price < 0 {
		return nil, pmserr.Validation("price", "price cannot be negative")
	}

	item := models.ServiceItem{ItemName: name, Price: price}
	if err := s.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CatalogService) UpdateItem(id uint, name string, price int64) (*models.ServiceItem, error) {
	var item models.ServiceItem
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pmserr.NotFound("service item", id)
		}
		return nil, err
	}

	if name = strings.TrimSpace(name); name != "" {
		item.ItemName = name
	}
	if price >= 0 {
		item.Price = price
	}
	if err := s.DB.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes a menu entry unless any posted charge still references
// its name. Historical bills keep their snapshots either way; the guard
// keeps the menu honest about what was ever sold.
func (s *CatalogService) DeleteItem(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var item models.ServiceItem
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pmserr.NotFound("service item", id)
			}
			return err
		}

		var referenced int64
		if err := tx.Model(&models.ServiceCharge{}).
			Where("item_name = ?", item.ItemName).
			Count(&referenced).Error; err != nil {
			return err
		}
		if referenced > 0 {
			return pmserr.InvalidState("delete service item", "referenced by posted charges")
		}

		return tx.Delete(&item).Error
	})
}

// AddCharge posts a catalog item to an occupied stay's running bill.
func (s *CatalogService) AddCharge(reservationID, itemID uint, quantity int) (*models.ServiceCharge, error) {
	if quantity < 1 {
		return nil, pmserr.Validation("quantity", "quantity must be at least 1")
	}

	var charge *models.ServiceCharge
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&res, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pmserr.NotFound("reservation", reservationID)
			}
			return err
		}
		if res.Status != models.ReservationOccupied {
			return pmserr.InvalidState("post charge", res.Status)
		}

		var item models.ServiceItem
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pmserr.NotFound("service item", itemID)
			}
			return err
		}

		c := models.ServiceCharge{
			ReservationID: res.ID,
			ItemName:      item.ItemName,
			Quantity:      quantity,
			Price:         item.Price,
		}
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		charge = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return charge, nil
}

// ChargesFor lists a stay's posted charges in posting order.
func (s *CatalogService) ChargesFor(reservationID uint) ([]models.ServiceCharge, error) {
	var charges []models.ServiceCharge
	err := s.DB.Where("reservation_id = ?", reservationID).
		Order("created_at ASC").
		Find(&charges).Error
	if err != nil {
		return nil, err
	}
	return charges, nil
}
