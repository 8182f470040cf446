// Package advisory reads GTFS-Realtime service alerts and matches them to
// network lines. Alerts are informational and never change route ranking.
package advisory

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/randytsao24/mrtroute/internal/cache"
)

const cacheKey = "all"

// Alert is an active service alert affecting one or more lines
type Alert struct {
	ID          string   `json:"id"`
	Lines       []string `json:"lines"`
	Header      string   `json:"header"`
	Description string   `json:"description,omitempty"`
}

// Service fetches and caches alerts from a GTFS-RT feed
type Service struct {
	feedURL string
	client  *http.Client
	cache   *cache.Cache[string, []Alert]
	now     func() time.Time
}

// NewService creates an alert service for a feed URL
func NewService(feedURL string, timeout, cacheTTL time.Duration) *Service {
	return &Service{
		feedURL: feedURL,
		client:  &http.Client{Timeout: timeout},
		cache:   cache.New[string, []Alert](cacheTTL, 1),
		now:     time.Now,
	}
}

// Close releases the service's cache
func (s *Service) Close() {
	s.cache.Close()
}

// ForLines returns active alerts touching any of the given lines.
// With no lines it returns every active alert.
func (s *Service) ForLines(ctx context.Context, lines []string) ([]Alert, error) {
	all, err := s.cache.GetOrLoad(cacheKey, func() ([]Alert, error) {
		return s.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return all, nil
	}

	want := make(map[string]bool, len(lines))
	for _, l := range lines {
		want[l] = true
	}

	var filtered []Alert
	for _, a := range all {
		for _, l := range a.Lines {
			if want[l] {
				filtered = append(filtered, a)
				break
			}
		}
	}
	return filtered, nil
}

func (s *Service) fetch(ctx context.Context) ([]Alert, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building alerts request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching alerts feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alerts feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading alerts response: %w", err)
	}

	feed := &gtfs.FeedMessage{}
	if err := proto.Unmarshal(body, feed); err != nil {
		return nil, fmt.Errorf("parsing alerts protobuf: %w", err)
	}

	return ParseFeed(feed, s.now()), nil
}

// ParseFeed extracts the alerts active at now. Alerts without a header or
// without any route are skipped.
func ParseFeed(feed *gtfs.FeedMessage, now time.Time) []Alert {
	var alerts []Alert
	ts := now.Unix()

	for _, entity := range feed.GetEntity() {
		alert := entity.GetAlert()
		if alert == nil || !activeAt(alert, ts) {
			continue
		}

		var lines []string
		seen := make(map[string]bool)
		for _, ie := range alert.GetInformedEntity() {
			if id := ie.GetRouteId(); id != "" && !seen[id] {
				seen[id] = true
				lines = append(lines, id)
			}
		}
		if len(lines) == 0 {
			continue
		}

		header := translatedText(alert.GetHeaderText())
		if header == "" {
			continue
		}

		alerts = append(alerts, Alert{
			ID:          entity.GetId(),
			Lines:       lines,
			Header:      header,
			Description: translatedText(alert.GetDescriptionText()),
		})
	}

	return alerts
}

func activeAt(alert *gtfs.Alert, ts int64) bool {
	periods := alert.GetActivePeriod()
	if len(periods) == 0 {
		return true
	}
	for _, p := range periods {
		start := int64(p.GetStart())
		end := int64(p.GetEnd())
		if ts >= start && (end == 0 || ts < end) {
			return true
		}
	}
	return false
}

func translatedText(ts *gtfs.TranslatedString) string {
	if ts == nil {
		return ""
	}
	for _, t := range ts.GetTranslation() {
		if t.GetLanguage() == "en" || t.GetLanguage() == "" {
			return t.GetText()
		}
	}
	if len(ts.GetTranslation()) > 0 {
		return ts.GetTranslation()[0].GetText()
	}
	return ""
}
