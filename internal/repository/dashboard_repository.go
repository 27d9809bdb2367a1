package repository

import (
	"fmt"
	"time"

	"github.com/flipzokart/api/internal/constants"
	"github.com/flipzokart/api/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository runs the read-only aggregation queries backing the
// admin dashboard. Revenue always means completed payments only.
type DashboardRepository interface {
	GetTotals() (DashboardTotalsRow, error)
	GetWindowStats(startAt time.Time) (DashboardWindowRow, error)
	GetStatusDistribution() ([]DistributionRow, error)
	GetPaymentMethodDistribution() ([]DistributionRow, error)
	GetTopProducts(startAt *time.Time, limit int) ([]TopProductRow, error)
	GetOrderTrend(startAt time.Time) ([]OrderTrendRow, error)
	GetDailySales(startAt, endAt time.Time) ([]SalesBucketRow, error)
	GetMonthlySales(startAt, endAt time.Time) ([]SalesBucketRow, error)
	GetUserRegistrations(startAt, endAt time.Time) ([]RegistrationBucketRow, error)
}

// DashboardTotalsRow carries the all-time overview figures.
type DashboardTotalsRow struct {
	TotalUsers    int64
	TotalProducts int64
	TotalOrders   int64
	TotalRevenue  float64
}

// DashboardWindowRow carries counts and revenue since a window start.
type DashboardWindowRow struct {
	Users   int64
	Orders  int64
	Revenue float64
}

// DistributionRow is one bucket of a group-by count.
type DistributionRow struct {
	Key   string
	Count int64
}

// TopProductRow is one best-seller ranking entry.
type TopProductRow struct {
	ProductID uint
	Name      string
	SKU       string
	TotalSold int64
	Revenue   float64
}

// OrderTrendRow is one time bucket of order volume across all payment
// states.
type OrderTrendRow struct {
	Bucket  string
	Orders  int64
	Revenue float64
}

// SalesBucketRow is one time bucket of the revenue series.
type SalesBucketRow struct {
	Bucket        string
	Revenue       float64
	Orders        int64
	AvgOrderValue float64
}

// RegistrationBucketRow is one time bucket of the signup series.
type RegistrationBucketRow struct {
	Bucket string
	Count  int64
}

// GormDashboardRepository is the GORM implementation.
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates the dashboard repository.
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

func (r *GormDashboardRepository) completedOrderBase() *gorm.DB {
	return r.db.Model(&models.Order{}).
		Where("payment_status = ?", constants.PaymentStatusCompleted)
}

// GetTotals collects the all-time overview counters.
func (r *GormDashboardRepository) GetTotals() (DashboardTotalsRow, error) {
	result := DashboardTotalsRow{}

	if err := r.db.Model(&models.User{}).
		Where("is_blocked = ?", false).
		Count(&result.TotalUsers).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Product{}).
		Where("status = ?", constants.ProductStatusActive).
		Count(&result.TotalProducts).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Order{}).Count(&result.TotalOrders).Error; err != nil {
		return result, err
	}
	if err := r.completedOrderBase().
		Select("COALESCE(SUM(pricing_total), 0)").
		Scan(&result.TotalRevenue).Error; err != nil {
		return result, err
	}
	return result, nil
}

// GetWindowStats collects counts and revenue since startAt.
func (r *GormDashboardRepository) GetWindowStats(startAt time.Time) (DashboardWindowRow, error) {
	result := DashboardWindowRow{}

	if err := r.db.Model(&models.User{}).
		Where("is_blocked = ? AND created_at >= ?", false, startAt).
		Count(&result.Users).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Order{}).
		Where("created_at >= ?", startAt).
		Count(&result.Orders).Error; err != nil {
		return result, err
	}
	if err := r.completedOrderBase().
		Where("created_at >= ?", startAt).
		Select("COALESCE(SUM(pricing_total), 0)").
		Scan(&result.Revenue).Error; err != nil {
		return result, err
	}
	return result, nil
}

// GetStatusDistribution counts orders per status.
func (r *GormDashboardRepository) GetStatusDistribution() ([]DistributionRow, error) {
	var rows []DistributionRow
	if err := r.db.Model(&models.Order{}).
		Select("status as key, COUNT(*) as count").
		Group("status").
		Order("count desc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetPaymentMethodDistribution counts orders per payment method.
func (r *GormDashboardRepository) GetPaymentMethodDistribution() ([]DistributionRow, error) {
	var rows []DistributionRow
	if err := r.db.Model(&models.Order{}).
		Select("payment_method as key, COUNT(*) as count").
		Group("payment_method").
		Order("count desc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetTopProducts ranks line-item snapshots by quantity sold. A nil startAt
// ranks across all time; otherwise only completed-payment orders in the
// window count.
func (r *GormDashboardRepository) GetTopProducts(startAt *time.Time, limit int) ([]TopProductRow, error) {
	if limit <= 0 {
		limit = 5
	}
	query := r.db.Model(&models.OrderItem{}).
		Select("order_items.product_id as product_id, " +
			"MAX(order_items.name) as name, " +
			"MAX(order_items.sku) as sku, " +
			"SUM(order_items.quantity) as total_sold, " +
			"SUM(order_items.unit_price * order_items.quantity) as revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id")
	if startAt != nil {
		query = query.Where("orders.payment_status = ? AND orders.created_at >= ?",
			constants.PaymentStatusCompleted, *startAt)
	}

	var rows []TopProductRow
	if err := query.
		Group("order_items.product_id").
		Order("total_sold desc").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetOrderTrend buckets order count and gross order value per day. Unlike
// the revenue series it includes unpaid orders.
func (r *GormDashboardRepository) GetOrderTrend(startAt time.Time) ([]OrderTrendRow, error) {
	bucketExpr := dayBucketExpr("created_at")
	var rows []OrderTrendRow
	if err := r.db.Model(&models.Order{}).
		Select(fmt.Sprintf("%s as bucket, COUNT(*) as orders, COALESCE(SUM(pricing_total), 0) as revenue", bucketExpr)).
		Where("created_at >= ?", startAt).
		Group(bucketExpr).
		Order("bucket asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetDailySales buckets completed-payment revenue per day.
func (r *GormDashboardRepository) GetDailySales(startAt, endAt time.Time) ([]SalesBucketRow, error) {
	return r.salesSeries(dayBucketExpr("created_at"), startAt, endAt)
}

// GetMonthlySales buckets completed-payment revenue per month.
func (r *GormDashboardRepository) GetMonthlySales(startAt, endAt time.Time) ([]SalesBucketRow, error) {
	return r.salesSeries(monthBucketExpr(r.db, "created_at"), startAt, endAt)
}

func (r *GormDashboardRepository) salesSeries(bucketExpr string, startAt, endAt time.Time) ([]SalesBucketRow, error) {
	var rows []SalesBucketRow
	if err := r.completedOrderBase().
		Select(fmt.Sprintf(
			"%s as bucket, COALESCE(SUM(pricing_total), 0) as revenue, COUNT(*) as orders, COALESCE(AVG(pricing_total), 0) as avg_order_value",
			bucketExpr)).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Group(bucketExpr).
		Order("bucket asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetUserRegistrations buckets signups per day.
func (r *GormDashboardRepository) GetUserRegistrations(startAt, endAt time.Time) ([]RegistrationBucketRow, error) {
	bucketExpr := dayBucketExpr("created_at")
	var rows []RegistrationBucketRow
	if err := r.db.Model(&models.User{}).
		Select(fmt.Sprintf("%s as bucket, COUNT(*) as count", bucketExpr)).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Group(bucketExpr).
		Order("bucket asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
