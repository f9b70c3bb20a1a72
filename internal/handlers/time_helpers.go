package handlers

import (
	"strconv"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// yearMonth reads a (year, month) pair, using now for any part left empty.
func yearMonth(yearStr, monthStr string, now time.Time) (int, int, error) {
	year, month := now.Year(), int(now.Month())

	if yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil || y < 1 {
			return 0, 0, httperr.ErrBusiness("invalid_month")
		}
		year = y
	}
	if monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, httperr.ErrBusiness("invalid_month")
		}
		month = m
	}

	return year, month, nil
}

func intQuery(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
