package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newStubServer(t *testing.T, feedBody, searchBody string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasPrefix(r.URL.Path, "/feed/"):
			fmt.Fprint(w, feedBody)
		case strings.HasPrefix(r.URL.Path, "/search/"):
			fmt.Fprint(w, searchBody)
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestFetchByCity_OK(t *testing.T) {
	feed := `{"status":"ok","data":{"aqi":42,"iaqi":{"pm25":{"v":10},"o3":{"v":21.5},"wind":{"v":3}},"city":{"name":"Paris"},"dominentpol":"pm25","time":{"iso":"2024-05-01T10:00:00+02:00"}}}`
	srv := newStubServer(t, feed, `{"status":"ok","data":[]}`)
	defer srv.Close()

	client := NewWAQIClientWithBaseURL(srv.URL, "test-token")
	reading, err := client.FetchByCity(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if reading.AQI != 42 {
		t.Errorf("aqi = %v, want 42", reading.AQI)
	}
	if reading.Location != "Paris" {
		t.Errorf("location = %q, want Paris", reading.Location)
	}
	if reading.DominantPollutant != "pm25" {
		t.Errorf("dominant pollutant = %q, want pm25", reading.DominantPollutant)
	}
	if reading.Timestamp != "2024-05-01T10:00:00+02:00" {
		t.Errorf("timestamp = %q", reading.Timestamp)
	}

	// Known keys are remapped to display names, unknown keys dropped.
	if v := reading.Pollutants["PM2.5"]; v != 10 {
		t.Errorf("PM2.5 = %v, want 10", v)
	}
	if v := reading.Pollutants["O3"]; v != 21.5 {
		t.Errorf("O3 = %v, want 21.5", v)
	}
	if _, ok := reading.Pollutants["wind"]; ok {
		t.Error("unmapped pollutant key should be dropped")
	}
	if len(reading.Raw) == 0 {
		t.Error("raw payload should be retained")
	}
}

func TestFetchByCity_UnknownCityReturnsSuggestions(t *testing.T) {
	search := `{"status":"ok","data":[
		{"station":{"name":"London"}},
		{"station":{"name":"London Westminster"}},
		{"station":{"name":"London Bridge"}},
		{"station":{"name":"East London"}},
		{"station":{"name":"North London"}},
		{"station":{"name":"London Docklands"}},
		{"station":{"name":"Londonderry"}}
	]}`
	srv := newStubServer(t, `{"status":"error","data":"Unknown station"}`, search)
	defer srv.Close()

	client := NewWAQIClientWithBaseURL(srv.URL, "test-token")
	_, err := client.FetchByCity(context.Background(), "Lundon")

	var notFound *CityNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected CityNotFoundError, got %v", err)
	}
	if notFound.City != "Lundon" {
		t.Errorf("error city = %q, want Lundon", notFound.City)
	}
	if len(notFound.Suggestions) != 5 {
		t.Fatalf("suggestions truncated to 5, got %d", len(notFound.Suggestions))
	}
	if notFound.Suggestions[0] != "London" {
		t.Errorf("first suggestion = %q, want London", notFound.Suggestions[0])
	}
}

func TestFetchByCity_NonNumericAQIFallsBackToComputed(t *testing.T) {
	feed := `{"status":"ok","data":{"aqi":"-","iaqi":{"pm25":{"v":12}},"city":{"name":"Smalltown"}}}`
	srv := newStubServer(t, feed, `{"status":"ok","data":[]}`)
	defer srv.Close()

	client := NewWAQIClientWithBaseURL(srv.URL, "")
	reading, err := client.FetchByCity(context.Background(), "Smalltown")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	// pm25=12 sits exactly on the first breakpoint.
	if reading.AQI != 50 {
		t.Errorf("computed aqi = %v, want 50", reading.AQI)
	}
}

func TestFetchByCity_NumericStringAQI(t *testing.T) {
	feed := `{"status":"ok","data":{"aqi":"73","iaqi":{"pm25":{"v":12}},"city":{"name":"Smalltown"}}}`
	srv := newStubServer(t, feed, `{"status":"ok","data":[]}`)
	defer srv.Close()

	client := NewWAQIClientWithBaseURL(srv.URL, "")
	reading, err := client.FetchByCity(context.Background(), "Smalltown")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if reading.AQI != 73 {
		t.Errorf("aqi = %v, want 73 from the quoted value", reading.AQI)
	}
}

func TestFetchByCity_MissingAQIFallsBackToComputed(t *testing.T) {
	feed := `{"status":"ok","data":{"iaqi":{"pm25":{"v":12}},"city":{"name":"Smalltown"}}}`
	srv := newStubServer(t, feed, `{"status":"ok","data":[]}`)
	defer srv.Close()

	client := NewWAQIClientWithBaseURL(srv.URL, "")
	reading, err := client.FetchByCity(context.Background(), "Smalltown")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if reading.AQI != 50 {
		t.Errorf("computed aqi = %v, want 50", reading.AQI)
	}
}

func TestFetchByCity_InvalidKeyIsNotCityNotFound(t *testing.T) {
	searchCalled := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/search/") {
			searchCalled = true
		}
		fmt.Fprint(w, `{"status":"error","data":"Invalid key"}`)
	}))
	defer srv.Close()

	client := NewWAQIClientWithBaseURL(srv.URL, "bad-token")
	_, err := client.FetchByCity(context.Background(), "Paris")
	if err == nil {
		t.Fatal("expected error for rejected token")
	}
	var notFound *CityNotFoundError
	if errors.As(err, &notFound) {
		t.Error("a rejected token must not be reported as city-not-found")
	}
	if searchCalled {
		t.Error("suggestions should not be fetched for a non-city error")
	}
}

func TestFetchByCity_SanitizesCityName(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		fmt.Fprint(w, `{"status":"ok","data":{"aqi":10,"iaqi":{},"city":{"name":"Sao Paulo"}}}`)
	}))
	defer srv.Close()

	client := NewWAQIClientWithBaseURL(srv.URL, "t")
	if _, err := client.FetchByCity(context.Background(), "São Paulo!?"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if strings.ContainsAny(gotPath, "!?") {
		t.Errorf("special characters should be stripped from path, got %q", gotPath)
	}
	if !strings.Contains(gotPath, "%20") {
		t.Errorf("space should be URL-encoded, got %q", gotPath)
	}
}

func TestFetchByCity_ProviderOutage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewWAQIClientWithBaseURL(srv.URL, "t")
	_, err := client.FetchByCity(context.Background(), "Paris")
	if err == nil {
		t.Fatal("expected error on provider outage")
	}
	var notFound *CityNotFoundError
	if errors.As(err, &notFound) {
		t.Error("outage must not be reported as city-not-found")
	}
}

func TestSearchByKeyword_SkipsEmptyNames(t *testing.T) {
	search := `{"status":"ok","data":[{"station":{"name":""}},{"station":{"name":"Berlin"}}]}`
	srv := newStubServer(t, `{}`, search)
	defer srv.Close()

	client := NewWAQIClientWithBaseURL(srv.URL, "t")
	suggestions, err := client.SearchByKeyword(context.Background(), "Berlin")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(suggestions) != 1 || suggestions[0] != "Berlin" {
		t.Errorf("suggestions = %v, want [Berlin]", suggestions)
	}
}
