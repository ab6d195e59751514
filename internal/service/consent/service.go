package consent

import (
	"errors"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	// DefaultTTL keeps an acceptance for a year.
	DefaultTTL = 365 * 24 * time.Hour
	// DefaultBannerDelay is how long the site waits before showing the banner.
	DefaultBannerDelay = 2 * time.Second
)

var ErrVisitorRequired = errors.New("visitor id is required")

// Record describes a visitor's cookie consent.
type Record struct {
	VisitorID  string    `json:"visitorId"`
	Accepted   bool      `json:"accepted"`
	AcceptedAt time.Time `json:"acceptedAt,omitempty"`
}

// Service stores the per-visitor "cookies accepted" flag.
type Service struct {
	cache       *gocache.Cache
	ttl         time.Duration
	bannerDelay time.Duration
	now         func() time.Time
}

// NewService creates a consent store whose entries expire after ttl.
func NewService(ttl, bannerDelay time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if bannerDelay < 0 {
		bannerDelay = DefaultBannerDelay
	}
	return &Service{
		cache:       gocache.New(ttl, time.Hour),
		ttl:         ttl,
		bannerDelay: bannerDelay,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// BannerDelay tells the site how long to wait before showing the banner.
func (s *Service) BannerDelay() time.Duration {
	return s.bannerDelay
}

// Accept records consent for the visitor.
func (s *Service) Accept(visitorID string) (Record, error) {
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return Record{}, ErrVisitorRequired
	}

	record := Record{VisitorID: visitorID, Accepted: true, AcceptedAt: s.now()}
	s.cache.Set(visitorID, record, s.ttl)
	return record, nil
}

// Lookup returns the visitor's consent record. Unknown visitors have not accepted.
func (s *Service) Lookup(visitorID string) Record {
	visitorID = strings.TrimSpace(visitorID)
	if val, ok := s.cache.Get(visitorID); ok {
		return val.(Record)
	}
	return Record{VisitorID: visitorID}
}

// Accepted reports whether the visitor has accepted cookies.
func (s *Service) Accepted(visitorID string) bool {
	return s.Lookup(visitorID).Accepted
}

// Revoke forgets the visitor's consent.
func (s *Service) Revoke(visitorID string) {
	s.cache.Delete(strings.TrimSpace(visitorID))
}
