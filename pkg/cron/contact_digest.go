package cron

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"portfolio_backend/internal/model"
	"portfolio_backend/pkg/database"
	"portfolio_backend/pkg/email"
)

var (
	lastRunTime time.Time
	mutex       sync.Mutex
)

// InitContactDigestCron schedules the daily contact form digest for the site
// owner.
func InitContactDigestCron() {
	c := cron.New()

	// Every day at 19:00
	_, err := c.AddFunc("0 19 * * *", func() {
		mutex.Lock()
		defer mutex.Unlock()

		if time.Since(lastRunTime) < 23*time.Hour {
			log.Printf("Contact digest already sent today, skipping...")
			return
		}

		sendDailyContactDigest()
		lastRunTime = time.Now()
	})

	if err != nil {
		log.Printf("Could not initialize contact digest cron: %v", err)
		return
	}

	c.Start()
	log.Printf("Contact digest cron initialized successfully")
}

func sendDailyContactDigest() {
	if email.GlobalEmailService == nil {
		return
	}

	owner := os.Getenv("ADMIN_EMAIL")
	if owner == "" {
		return
	}

	today := time.Now().Format("2006-01-02")
	log.Printf("Running contact digest for date: %s", today)

	dayStart := time.Now().Truncate(24 * time.Hour)

	var count int64
	err := database.GetDB().Model(&model.ContactSubmission{}).
		Where("created_at >= ?", dayStart).
		Count(&count).Error
	if err != nil {
		log.Printf("Could not count contact submissions: %v", err)
		return
	}

	if count == 0 {
		log.Printf("No contact submissions today, digest skipped")
		return
	}

	err = email.GlobalEmailService.SendContactDigestEmail(owner, email.ContactDigestData{
		Count: count,
		Date:  time.Now(),
	})
	if err != nil {
		log.Printf("Could not send contact digest email: %v", err)
		return
	}

	log.Printf("Contact digest sent: %d submissions", count)
}
