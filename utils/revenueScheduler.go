package utils

import (
	"log"
	"time"

	"formaplus/database"
	tracking "formaplus/models/tracking"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REVENUE-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// refreshRevenueSnapshots re-aggregates paid enrollment records and upserts
// one snapshot row per month, so dashboards read monthly totals without
// scanning the record collection.
func refreshRevenueSnapshots() {
	db := database.Database.Db

	report, err := tracking.ComputeRevenue(db, nil)
	if err != nil {
		logScheduler("Error aggregating revenue: " + err.Error())
		return
	}

	generatedAt := time.Now()
	for month, bucket := range report.RevenueByMonth {
		var snapshot tracking.RevenueSnapshot
		err := db.Where("month = ?", month).First(&snapshot).Error
		if err != nil {
			snapshot = tracking.RevenueSnapshot{Month: month}
		}

		snapshot.TotalRevenue = bucket.Total
		snapshot.PlatformShare = bucket.PlatformShare
		snapshot.TrainerShare = bucket.TrainerShare
		snapshot.GeneratedAt = generatedAt

		if err := db.Save(&snapshot).Error; err != nil {
			logScheduler("Error saving snapshot for " + month + ": " + err.Error())
		}
	}

	currentMonth := now.BeginningOfMonth().Format(tracking.MonthKeyLayout)
	logScheduler("Snapshots refreshed through " + currentMonth)
}

// StartRevenueScheduler runs the snapshot refresh every night at 02:00 and
// once at startup so a fresh deployment has data immediately.
func StartRevenueScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("0 2 * * *", refreshRevenueSnapshots); err != nil {
		log.Fatalf("Failed to schedule revenue snapshots: %v", err)
	}

	go refreshRevenueSnapshots()

	c.Start()
	logScheduler("Revenue snapshot scheduler started")
	return c
}
