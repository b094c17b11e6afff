package CronJobs

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"Momentum/Ledger"
	"Momentum/Models"
	"Momentum/email"
)

// Scheduler runs the recurring background jobs: the nightly achievement
// sweep and the weekly digest email.
type Scheduler struct {
	cronScheduler *cron.Cron
	db            *gorm.DB
	ledger        *Ledger.Ledger
}

// NewScheduler creates a new Scheduler
func NewScheduler(db *gorm.DB, ledger *Ledger.Ledger) *Scheduler {
	return &Scheduler{
		cronScheduler: cron.New(cron.WithSeconds()),
		db:            db,
		ledger:        ledger,
	}
}

// Start registers and starts the scheduled jobs
func (s *Scheduler) Start() error {
	// Streak milestones can become reachable overnight without any task
	// mutation, so sweep every account once a day.
	if _, err := s.cronScheduler.AddFunc("0 0 1 * * *", func() {
		log.Println("Running nightly achievement sweep")
		s.RunAchievementSweep()
	}); err != nil {
		return fmt.Errorf("error scheduling achievement sweep: %w", err)
	}

	if _, err := s.cronScheduler.AddFunc("0 0 8 * * 1", func() {
		log.Println("Sending weekly digest emails")
		s.RunWeeklyDigest()
	}); err != nil {
		return fmt.Errorf("error scheduling weekly digest: %w", err)
	}

	s.cronScheduler.Start()
	log.Println("Background scheduler started")
	return nil
}

// Stop terminates the scheduler
func (s *Scheduler) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
		log.Println("Background scheduler stopped")
	}
}

// RunAchievementSweep re-evaluates achievements for every user
func (s *Scheduler) RunAchievementSweep() {
	var users []Models.User
	if err := s.db.Find(&users).Error; err != nil {
		log.Printf("Error loading users for achievement sweep: %v", err)
		return
	}

	for _, user := range users {
		awarded, err := s.ledger.EvaluateAchievements(user.ID)
		if err != nil {
			log.Printf("Error evaluating achievements for user %d: %v", user.ID, err)
			continue
		}
		if len(awarded) > 0 {
			log.Printf("Awarded %v to user %s", awarded, user.Username)
		}
	}
}

// RunWeeklyDigest mails each user with an email address a summary of their
// week. Skipped entirely when SMTP is not configured.
func (s *Scheduler) RunWeeklyDigest() {
	config, ok := Models.EmailConfigFromEnv()
	if !ok {
		log.Println("SMTP not configured, skipping weekly digest")
		return
	}

	var users []Models.User
	if err := s.db.Where("email <> ''").Find(&users).Error; err != nil {
		log.Printf("Error loading users for weekly digest: %v", err)
		return
	}

	for _, user := range users {
		stats, err := s.ledger.ComputeStats(user.ID)
		if err != nil {
			log.Printf("Error computing stats for user %d: %v", user.ID, err)
			continue
		}

		message := Models.EmailMessage{
			To:      []string{user.Email},
			Subject: "Your week in Momentum",
			Body:    digestBody(user.Username, stats),
		}
		if err := email.SendEmail(config, message); err != nil {
			log.Printf("Error sending digest to %s: %v", user.Email, err)
		}
	}
}

func digestBody(username string, stats Ledger.Stats) string {
	return fmt.Sprintf(`Hi %s,

Here is your week at a glance:

  Tasks completed this week: %d
  Total completed: %d of %d (%.1f%%)
  Current streak: %d day(s)
  Active goals: %d

Keep it up!
Momentum`,
		username,
		stats.WeekCompleted,
		stats.CompletedTasks,
		stats.TotalTasks,
		stats.CompletionRate,
		stats.Streak,
		stats.ActiveGoals,
	)
}
