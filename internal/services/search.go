package service

import (
	"strings"

	"github.com/paramatmakhadka/ecommerce-frontend/internal/models"
)

// In-memory dashboard filtering: case-insensitive substring match over the
// fields an admin actually scans for. Never touches the backend.

func matches(query string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), strings.ToLower(query)) {
			return true
		}
	}

	return false
}

func FilterProducts(products []models.Product, query string) []models.Product {

	filtered := make([]models.Product, 0, len(products))

	for _, p := range products {
		if matches(query, p.Name, p.Category) {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

func FilterCategories(categories []models.Category, query string) []models.Category {

	filtered := make([]models.Category, 0, len(categories))

	for _, c := range categories {
		if matches(query, c.Name) {
			filtered = append(filtered, c)
		}
	}

	return filtered
}

func FilterUsers(users []models.User, query string) []models.User {

	filtered := make([]models.User, 0, len(users))

	for _, u := range users {
		if matches(query, u.Name, u.Email) {
			filtered = append(filtered, u)
		}
	}

	return filtered
}

func FilterOrders(orders []models.Order, query string) []models.Order {

	filtered := make([]models.Order, 0, len(orders))

	for _, o := range orders {
		if matches(query, o.ID, o.UserName, o.Status) {
			filtered = append(filtered, o)
		}
	}

	return filtered
}

func FilterCoupons(coupons []models.Coupon, query string) []models.Coupon {

	filtered := make([]models.Coupon, 0, len(coupons))

	for _, c := range coupons {
		if matches(query, c.Code) {
			filtered = append(filtered, c)
		}
	}

	return filtered
}
