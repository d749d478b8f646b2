package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ray-remotestate/rms/database/dbhelper"
	"github.com/ray-remotestate/rms/utils"
)

// resolveReportWindow maps the query parameters onto a concrete time window.
// period wins over date; with neither, the window is today so far. Explicit
// dates are interpreted as UTC calendar days.
func resolveReportWindow(period, date string, now time.Time) (start, end time.Time, label string, err error) {
	if period != "" {
		end = now
		switch period {
		case "daily":
			start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		case "weekly":
			start = now.AddDate(0, 0, -7)
		case "monthly":
			start = now.AddDate(0, -1, 0)
		default:
			return start, end, "", fmt.Errorf("period must be daily, weekly or monthly")
		}
		return start, end, period, nil
	}

	if date != "" {
		day, parseErr := time.Parse("2006-01-02", date)
		if parseErr != nil {
			return start, end, "", fmt.Errorf("date must be YYYY-MM-DD")
		}
		start = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		end = start.Add(24*time.Hour - time.Nanosecond)
		return start, end, date, nil
	}

	start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, now, "daily", nil
}

func GetSalesReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, end, label, err := resolveReportWindow(q.Get("period"), q.Get("date"), time.Now())
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	orders, err := dbhelper.ListPaidOrdersBetween(start, end)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to query paid orders")
		return
	}

	var totalSales float64
	for _, o := range orders {
		totalSales += o.Total
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"reportType":  label,
		"totalSales":  fmt.Sprintf("%.2f", totalSales),
		"totalOrders": len(orders),
		"orders":      orders,
	})
}
