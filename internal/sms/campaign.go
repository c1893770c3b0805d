package sms

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
)

var ErrNoRecipients = errors.New("No phone numbers found")

const (
	defaultWorkers = 8
	defaultBody    = "Thank you for shopping with Smartbuy!"
)

// SentLog is the per-message delivery record for campaign sends.
type SentLog struct {
	ID                int64      `gorm:"primaryKey;autoIncrement"`
	Phone             string     `gorm:"type:varchar(32);not null"`
	Body              string     `gorm:"type:varchar(1600)"`
	Status            string     `gorm:"type:varchar(16);not null"` // sent | failed
	ProviderMessageID *string    `gorm:"type:varchar(64)"`
	ErrorMessage      *string    `gorm:"type:varchar(512)"`
	SentAt            *time.Time `gorm:"type:datetime(3)"`
	CreatedAt         time.Time  `gorm:"type:datetime(3)"`
}

func (SentLog) TableName() string { return "sms_sent_logs" }

// PhoneDirectory supplies the recipient list; users.Repo implements it.
type PhoneDirectory interface {
	ActivePhoneNumbers(ctx context.Context) ([]string, error)
}

type CampaignService struct {
	dir      PhoneDirectory
	provider Provider
	db       *gorm.DB // optional, sent-log rows are best effort
	workers  int
	logger   *slog.Logger
}

func NewCampaignService(dir PhoneDirectory, provider Provider, db *gorm.DB, logger *slog.Logger) *CampaignService {
	return &CampaignService{
		dir:      dir,
		provider: provider,
		db:       db,
		workers:  defaultWorkers,
		logger:   logger,
	}
}

// SetWorkers caps the fan-out concurrency. Values below 1 keep the default.
func (s *CampaignService) SetWorkers(n int) {
	if n >= 1 {
		s.workers = n
	}
}

// Result is the per-recipient accounting of one broadcast: how many went
// out, how many failed, and which numbers failed.
type Result struct {
	Sent          int      `json:"sent"`
	Failed        int      `json:"failed"`
	FailedNumbers []string `json:"failed_numbers,omitempty"`
}

// Broadcast sends one message per recipient with bounded concurrency.
// Individual failures are counted, not fatal; only an empty recipient list
// aborts the whole campaign.
func (s *CampaignService) Broadcast(ctx context.Context, message string) (Result, error) {
	phones, err := s.dir.ActivePhoneNumbers(ctx)
	if err != nil {
		return Result{}, err
	}

	recipients := phones[:0]
	for _, p := range phones {
		if strings.TrimSpace(p) != "" {
			recipients = append(recipients, p)
		}
	}
	if len(recipients) == 0 {
		return Result{}, ErrNoRecipients
	}

	body := message
	if strings.TrimSpace(body) == "" {
		body = defaultBody
	}

	var (
		mu     sync.Mutex
		res    Result
		wg     sync.WaitGroup
		tokens = make(chan struct{}, s.workers)
	)

	for _, phone := range recipients {
		wg.Add(1)
		tokens <- struct{}{}
		go func(phone string) {
			defer wg.Done()
			defer func() { <-tokens }()

			msgID, err := s.provider.Send(ctx, phone, body)
			s.log(ctx, phone, body, msgID, err)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				res.Failed++
				res.FailedNumbers = append(res.FailedNumbers, phone)
				s.logger.Warn("campaign send failed", "phone", phone, "error", err)
				return
			}
			res.Sent++
		}(phone)
	}
	wg.Wait()

	sort.Strings(res.FailedNumbers)
	return res, nil
}

func (s *CampaignService) log(ctx context.Context, phone, body, msgID string, sendErr error) {
	if s.db == nil {
		return
	}

	entry := SentLog{
		Phone:     phone,
		Body:      body,
		Status:    "sent",
		CreatedAt: time.Now(),
	}
	if sendErr != nil {
		entry.Status = "failed"
		msg := sendErr.Error()
		entry.ErrorMessage = &msg
	} else {
		now := time.Now()
		entry.SentAt = &now
		if msgID != "" {
			entry.ProviderMessageID = &msgID
		}
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		s.logger.Error("campaign sent-log write failed", "error", err, "phone", phone)
	}
}
