package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/flipzokart/api/internal/cache"
	"github.com/flipzokart/api/internal/logger"
	"github.com/flipzokart/api/internal/models"
	"github.com/flipzokart/api/internal/repository"
)

const dashboardCacheTTL = 45 * time.Second

// DashboardService computes the admin dashboard aggregates. Revenue in
// every figure counts completed payments only.
type DashboardService struct {
	dashboardRepo repository.DashboardRepository
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	userRepo      repository.UserRepository
	now           func() time.Time
}

// NewDashboardService creates the dashboard service.
func NewDashboardService(dashboardRepo repository.DashboardRepository, orderRepo repository.OrderRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		userRepo:      userRepo,
		now:           time.Now,
	}
}

// ParsePeriod resolves the requested period into a day count. Known
// presets are 7, 30, 90 and 365; any other positive integer is taken
// as an explicit day count; everything else falls back to 30.
func ParsePeriod(raw string) int {
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return 30
	}
	return days
}

// StatsPayload is the response body of the stats endpoint.
type StatsPayload struct {
	Totals        TotalsPayload        `json:"totals"`
	Today         WindowPayload        `json:"today"`
	ThisMonth     WindowPayload        `json:"this_month"`
	ThisYear      WindowPayload        `json:"this_year"`
	RecentOrders  []models.Order       `json:"recent_orders"`
	TopProducts   []TopProductPayload  `json:"top_products"`
	StatusCounts  map[string]int64     `json:"status_distribution"`
	PaymentCounts map[string]int64     `json:"payment_method_distribution"`
	Series        []SeriesPointPayload `json:"series"`
	SeriesBucket  string               `json:"series_bucket"` // daily / monthly
	LowStockCount int64                `json:"low_stock_count"`
	PeriodDays    int                  `json:"period_days"`
}

// TotalsPayload carries the all-time counters.
type TotalsPayload struct {
	Users    int64   `json:"users"`
	Products int64   `json:"products"`
	Orders   int64   `json:"orders"`
	Revenue  float64 `json:"revenue"`
}

// WindowPayload carries counters for one time window.
type WindowPayload struct {
	Users   int64   `json:"users"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// TopProductPayload is one best-seller entry.
type TopProductPayload struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	TotalSold int64   `json:"total_sold"`
	Revenue   float64 `json:"revenue"`
}

// SeriesPointPayload is one bucket of the revenue series.
type SeriesPointPayload struct {
	Bucket        string  `json:"bucket"`
	Revenue       float64 `json:"revenue"`
	Orders        int64   `json:"orders"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

// GetStats builds the dashboard payload for the requested period. Results
// are cached briefly since the queries fan out across several tables.
func (s *DashboardService) GetStats(ctx context.Context, periodDays int) (*StatsPayload, error) {
	if periodDays <= 0 {
		periodDays = 30
	}

	cacheKey := fmt.Sprintf("dashboard:stats:%d", periodDays)
	cached := &StatsPayload{}
	if hit, err := cache.GetJSON(ctx, cacheKey, cached); err == nil && hit {
		return cached, nil
	} else if err != nil {
		logger.Warnw("dashboard cache read failed", "error", err)
	}

	now := s.now()
	payload := &StatsPayload{PeriodDays: periodDays}

	totals, err := s.dashboardRepo.GetTotals()
	if err != nil {
		return nil, err
	}
	payload.Totals = TotalsPayload{
		Users:    totals.TotalUsers,
		Products: totals.TotalProducts,
		Orders:   totals.TotalOrders,
		Revenue:  totals.TotalRevenue,
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfYear := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	for _, window := range []struct {
		start time.Time
		dest  *WindowPayload
	}{
		{startOfDay, &payload.Today},
		{startOfMonth, &payload.ThisMonth},
		{startOfYear, &payload.ThisYear},
	} {
		stats, err := s.dashboardRepo.GetWindowStats(window.start)
		if err != nil {
			return nil, err
		}
		*window.dest = WindowPayload{Users: stats.Users, Orders: stats.Orders, Revenue: stats.Revenue}
	}

	recent, err := s.orderRepo.Recent(10)
	if err != nil {
		return nil, err
	}
	payload.RecentOrders = recent

	periodStart := now.AddDate(0, 0, -periodDays)
	top, err := s.dashboardRepo.GetTopProducts(&periodStart, 5)
	if err != nil {
		return nil, err
	}
	payload.TopProducts = topProductPayloads(top)

	statusRows, err := s.dashboardRepo.GetStatusDistribution()
	if err != nil {
		return nil, err
	}
	payload.StatusCounts = distributionMap(statusRows)

	methodRows, err := s.dashboardRepo.GetPaymentMethodDistribution()
	if err != nil {
		return nil, err
	}
	payload.PaymentCounts = distributionMap(methodRows)

	series, bucket, err := s.salesSeries(periodStart, now, periodDays)
	if err != nil {
		return nil, err
	}
	payload.Series = series
	payload.SeriesBucket = bucket

	lowStock, err := s.productRepo.CountLowStock()
	if err != nil {
		return nil, err
	}
	payload.LowStockCount = lowStock

	if err := cache.SetJSON(ctx, cacheKey, payload, dashboardCacheTTL); err != nil {
		logger.Warnw("dashboard cache write failed", "error", err)
	}
	return payload, nil
}

// salesSeries picks daily buckets for windows up to 90 days and monthly
// buckets beyond that.
func (s *DashboardService) salesSeries(startAt, endAt time.Time, periodDays int) ([]SeriesPointPayload, string, error) {
	var rows []repository.SalesBucketRow
	var err error
	bucket := "daily"
	if periodDays > 90 {
		bucket = "monthly"
		rows, err = s.dashboardRepo.GetMonthlySales(startAt, endAt)
	} else {
		rows, err = s.dashboardRepo.GetDailySales(startAt, endAt)
	}
	if err != nil {
		return nil, "", err
	}

	points := make([]SeriesPointPayload, 0, len(rows))
	for _, row := range rows {
		points = append(points, SeriesPointPayload{
			Bucket:        row.Bucket,
			Revenue:       row.Revenue,
			Orders:        row.Orders,
			AvgOrderValue: row.AvgOrderValue,
		})
	}
	return points, bucket, nil
}

// SalesPayload is the response body of the sales analytics endpoint.
type SalesPayload struct {
	Series      []SeriesPointPayload `json:"series"`
	TopSelling  []TopProductPayload  `json:"top_selling"`
	PeriodDays  int                  `json:"period_days"`
	PeriodStart time.Time            `json:"period_start"`
}

// GetSales builds the sales analytics payload.
func (s *DashboardService) GetSales(ctx context.Context, periodDays int) (*SalesPayload, error) {
	if periodDays <= 0 {
		periodDays = 30
	}

	cacheKey := fmt.Sprintf("dashboard:sales:%d", periodDays)
	cached := &SalesPayload{}
	if hit, err := cache.GetJSON(ctx, cacheKey, cached); err == nil && hit {
		return cached, nil
	}

	now := s.now()
	periodStart := now.AddDate(0, 0, -periodDays)
	series, _, err := s.salesSeries(periodStart, now, periodDays)
	if err != nil {
		return nil, err
	}

	top, err := s.dashboardRepo.GetTopProducts(&periodStart, 10)
	if err != nil {
		return nil, err
	}

	payload := &SalesPayload{
		Series:      series,
		TopSelling:  topProductPayloads(top),
		PeriodDays:  periodDays,
		PeriodStart: periodStart,
	}
	if err := cache.SetJSON(ctx, cacheKey, payload, dashboardCacheTTL); err != nil {
		logger.Warnw("dashboard cache write failed", "error", err)
	}
	return payload, nil
}

// OrdersPayload is the response body of the order analytics endpoint. The
// trend includes unpaid orders; it tracks volume, not realized revenue.
type OrdersPayload struct {
	Trend         []OrderTrendPayload `json:"trend"`
	StatusCounts  map[string]int64    `json:"status_distribution"`
	PaymentCounts map[string]int64    `json:"payment_method_distribution"`
	PeriodDays    int                 `json:"period_days"`
}

// OrderTrendPayload is one bucket of the order volume series.
type OrderTrendPayload struct {
	Bucket  string  `json:"bucket"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// GetOrders builds the order analytics payload.
func (s *DashboardService) GetOrders(ctx context.Context, periodDays int) (*OrdersPayload, error) {
	if periodDays <= 0 {
		periodDays = 30
	}

	periodStart := s.now().AddDate(0, 0, -periodDays)
	rows, err := s.dashboardRepo.GetOrderTrend(periodStart)
	if err != nil {
		return nil, err
	}
	trend := make([]OrderTrendPayload, 0, len(rows))
	for _, row := range rows {
		trend = append(trend, OrderTrendPayload{Bucket: row.Bucket, Orders: row.Orders, Revenue: row.Revenue})
	}

	statusRows, err := s.dashboardRepo.GetStatusDistribution()
	if err != nil {
		return nil, err
	}
	methodRows, err := s.dashboardRepo.GetPaymentMethodDistribution()
	if err != nil {
		return nil, err
	}

	return &OrdersPayload{
		Trend:         trend,
		StatusCounts:  distributionMap(statusRows),
		PaymentCounts: distributionMap(methodRows),
		PeriodDays:    periodDays,
	}, nil
}

// UsersPayload is the response body of the user analytics endpoint.
type UsersPayload struct {
	RoleCounts    map[string]int64      `json:"role_counts"`
	Registrations []RegistrationPayload `json:"registrations"`
	RecentUsers   []models.User         `json:"recent_users"`
	PeriodDays    int                   `json:"period_days"`
}

// RegistrationPayload is one bucket of the signup series.
type RegistrationPayload struct {
	Bucket string `json:"bucket"`
	Count  int64  `json:"count"`
}

// GetUsers builds the user analytics payload.
func (s *DashboardService) GetUsers(ctx context.Context, periodDays int) (*UsersPayload, error) {
	if periodDays <= 0 {
		periodDays = 30
	}

	now := s.now()
	roleCounts, err := s.userRepo.CountByRole()
	if err != nil {
		return nil, err
	}

	periodStart := now.AddDate(0, 0, -periodDays)
	rows, err := s.dashboardRepo.GetUserRegistrations(periodStart, now)
	if err != nil {
		return nil, err
	}
	registrations := make([]RegistrationPayload, 0, len(rows))
	for _, row := range rows {
		registrations = append(registrations, RegistrationPayload{Bucket: row.Bucket, Count: row.Count})
	}

	recent, _, err := s.userRepo.List(repository.UserListFilter{Page: 1, PageSize: 10})
	if err != nil {
		return nil, err
	}

	return &UsersPayload{
		RoleCounts:    roleCounts,
		Registrations: registrations,
		RecentUsers:   recent,
		PeriodDays:    periodDays,
	}, nil
}

func topProductPayloads(rows []repository.TopProductRow) []TopProductPayload {
	out := make([]TopProductPayload, 0, len(rows))
	for _, row := range rows {
		out = append(out, TopProductPayload{
			ProductID: row.ProductID,
			Name:      row.Name,
			SKU:       row.SKU,
			TotalSold: row.TotalSold,
			Revenue:   row.Revenue,
		})
	}
	return out
}

func distributionMap(rows []repository.DistributionRow) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Count
	}
	return out
}
