package advisory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

func text(s string) *gtfs.TranslatedString {
	return &gtfs.TranslatedString{
		Translation: []*gtfs.TranslatedString_Translation{{Text: proto.String(s), Language: proto.String("en")}},
	}
}

func alertEntity(id, header string, routes []string, periods ...*gtfs.TimeRange) *gtfs.FeedEntity {
	informed := make([]*gtfs.EntitySelector, len(routes))
	for i, r := range routes {
		informed[i] = &gtfs.EntitySelector{RouteId: proto.String(r)}
	}
	a := &gtfs.Alert{
		ActivePeriod:   periods,
		InformedEntity: informed,
	}
	if header != "" {
		a.HeaderText = text(header)
		a.DescriptionText = text(header + " details")
	}
	return &gtfs.FeedEntity{Id: proto.String(id), Alert: a}
}

func testFeed(now time.Time) *gtfs.FeedMessage {
	past := uint64(now.Add(-2 * time.Hour).Unix())
	recent := uint64(now.Add(-time.Hour).Unix())
	future := uint64(now.Add(time.Hour).Unix())

	return &gtfs.FeedMessage{
		Header: &gtfs.FeedHeader{GtfsRealtimeVersion: proto.String("2.0")},
		Entity: []*gtfs.FeedEntity{
			alertEntity("always", "EW delays", []string{"EW"}),
			alertEntity("current", "NS and CC works", []string{"NS", "CC", "NS"},
				&gtfs.TimeRange{Start: proto.Uint64(recent), End: proto.Uint64(future)}),
			alertEntity("expired", "Old", []string{"EW"},
				&gtfs.TimeRange{Start: proto.Uint64(past), End: proto.Uint64(recent)}),
			alertEntity("upcoming", "Soon", []string{"DT"},
				&gtfs.TimeRange{Start: proto.Uint64(future)}),
			alertEntity("no-routes", "Systemwide", nil),
			alertEntity("no-header", "", []string{"NE"}),
			{Id: proto.String("vehicle"), Vehicle: &gtfs.VehiclePosition{}},
		},
	}
}

func TestParseFeed(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	alerts := ParseFeed(testFeed(now), now)

	if len(alerts) != 2 {
		t.Fatalf("got %d alerts, want 2: %+v", len(alerts), alerts)
	}

	if a := alerts[0]; a.ID != "always" || a.Header != "EW delays" || a.Description != "EW delays details" {
		t.Errorf("alert 0 = %+v", a)
	}
	if a := alerts[1]; a.ID != "current" || len(a.Lines) != 2 || a.Lines[0] != "NS" || a.Lines[1] != "CC" {
		t.Errorf("alert 1 = %+v, want lines NS,CC", a)
	}
}

func TestTranslatedTextFallsBackToFirst(t *testing.T) {
	ts := &gtfs.TranslatedString{Translation: []*gtfs.TranslatedString_Translation{
		{Text: proto.String("Gangguan"), Language: proto.String("ms")},
		{Text: proto.String("干扰"), Language: proto.String("zh")},
	}}
	if got := translatedText(ts); got != "Gangguan" {
		t.Errorf("translatedText = %q, want first translation", got)
	}
	if got := translatedText(nil); got != "" {
		t.Errorf("translatedText(nil) = %q", got)
	}
}

func feedServer(t *testing.T, feed *gtfs.FeedMessage, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	body, err := proto.Marshal(feed)
	if err != nil {
		t.Fatalf("marshal feed: %v", err)
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/x-protobuf")
		w.Write(body)
	}))
}

func TestServiceForLines(t *testing.T) {
	now := time.Now()
	var hits atomic.Int32
	srv := feedServer(t, testFeed(now), &hits)
	defer srv.Close()

	svc := NewService(srv.URL, 5*time.Second, time.Minute)
	defer svc.Close()

	ctx := context.Background()

	all, err := svc.ForLines(ctx, nil)
	if err != nil {
		t.Fatalf("ForLines: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d alerts, want 2", len(all))
	}

	cc, err := svc.ForLines(ctx, []string{"CC", "DT"})
	if err != nil {
		t.Fatalf("ForLines: %v", err)
	}
	if len(cc) != 1 || cc[0].ID != "current" {
		t.Errorf("CC alerts = %+v", cc)
	}

	none, err := svc.ForLines(ctx, []string{"NE"})
	if err != nil {
		t.Fatalf("ForLines: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("NE alerts = %+v, want none", none)
	}

	if n := hits.Load(); n != 1 {
		t.Errorf("feed fetched %d times, want 1", n)
	}
}

func TestServiceFeedErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"bad status", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusServiceUnavailable)
		}},
		{"not protobuf", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte{0xff, 0xff, 0xff})
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			svc := NewService(srv.URL, 5*time.Second, time.Minute)
			defer svc.Close()

			if _, err := svc.ForLines(context.Background(), []string{"EW"}); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
