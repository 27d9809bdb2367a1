package repository

import "time"

// ProductListFilter filters catalog listings.
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	Search       string
	Status       string
	Featured     *bool
	WithCategory bool
}

// OrderListFilter filters order listings.
type OrderListFilter struct {
	Page          int
	PageSize      int
	CustomerID    uint
	Status        string
	PaymentStatus string
	OrderNumber   string
	Priority      string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}

// UserListFilter filters account listings.
type UserListFilter struct {
	Page      int
	PageSize  int
	Role      string
	Search    string
	IsBlocked *bool
}
