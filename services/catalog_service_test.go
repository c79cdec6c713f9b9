package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mountspa_server/structs"

	"github.com/MonkyMars/gecho"
)

const catalogFixture = `{
	"hottubes": [
		{
			"id": "utopia-monarch",
			"collection": "Utopia",
			"model": "Monarch",
			"price": "45,000",
			"seating": "6 Adults",
			"colors": {
				"shellColors": [{"name": "Platinum"}, {"name": "Alpine White"}],
				"cabinetColors": [{"color": "Parchment"}, {"color": "Java"}]
			}
		},
		{
			"id": "paradise-aruba",
			"collection": "Paradise",
			"model": "Aruba",
			"price": "32,500",
			"seating": "4 Adults",
			"colors": {
				"shellColors": [{"name": "Platinum"}],
				"cabinetColors": [{"color": "Parchment"}]
			}
		}
	],
	"accessories": [{"id": "steps", "name": "Steps", "price": 800}],
	"servicePackages": [{"id": "premium-care", "name": "Premium Care", "price": 2400}]
}`

func testCatalogService(t *testing.T, baseURL string) *CatalogService {
	t.Helper()
	cfg := &structs.Config{
		Catalog: &structs.CatalogConfig{
			BaseURL:        baseURL,
			DefaultLocale:  "pl",
			FallbackLocale: "en",
			FetchTimeout:   5 * time.Second,
		},
		Cache: &structs.CacheConfig{
			CatalogTTL: time.Minute,
		},
	}
	logger := gecho.NewDefaultLogger()
	return NewCatalogService(logger, cfg, NewCacheService(logger, cfg))
}

func TestGetCatalog_FallbackChain(t *testing.T) {
	var requested []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = append(requested, r.URL.Path)
		if r.URL.Path != "/hottubes.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(catalogFixture))
	}))
	defer server.Close()

	cs := testCatalogService(t, server.URL)
	catalog := cs.GetCatalog(context.Background(), "de")

	if len(catalog.HotTubes) != 2 {
		t.Fatalf("hottubes = %d, want 2", len(catalog.HotTubes))
	}
	if cs.State("de") != structs.CatalogReady {
		t.Fatalf("state = %q, want ready", cs.State("de"))
	}

	want := []string{"/hottubes_de.json", "/hottubes_en.json", "/hottubes.json"}
	if len(requested) != len(want) {
		t.Fatalf("requested %v, want %v", requested, want)
	}
	for i := range want {
		if requested[i] != want[i] {
			t.Fatalf("request %d = %q, want %q", i, requested[i], want[i])
		}
	}
}

func TestGetCatalog_AllSourcesFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	cs := testCatalogService(t, server.URL)
	catalog := cs.GetCatalog(context.Background(), "pl")

	if catalog == nil {
		t.Fatal("failed load must still yield an empty catalog")
	}
	if len(catalog.HotTubes) != 0 {
		t.Fatalf("hottubes = %d, want 0", len(catalog.HotTubes))
	}
	if cs.State("pl") != structs.CatalogFailed {
		t.Fatalf("state = %q, want failed", cs.State("pl"))
	}
}

func TestGetCatalog_SnapshotReused(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(catalogFixture))
	}))
	defer server.Close()

	cs := testCatalogService(t, server.URL)
	first := cs.GetCatalog(context.Background(), "pl")
	second := cs.GetCatalog(context.Background(), "pl")

	if first != second {
		t.Fatal("second call must return the in-memory snapshot")
	}
	if hits != 1 {
		t.Fatalf("upstream hits = %d, want 1", hits)
	}
}

func TestGetCatalog_ConcurrentColdLoad(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		time.Sleep(20 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(catalogFixture))
	}))
	defer server.Close()

	cs := testCatalogService(t, server.URL)

	const callers = 8
	start := make(chan struct{})
	results := make([]*structs.Catalog, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i] = cs.GetCatalog(context.Background(), "pl")
		}(i)
	}
	close(start)
	wg.Wait()

	if got := hits.Load(); got != 1 {
		t.Fatalf("upstream hits = %d, want 1 (loads for one locale must coalesce)", got)
	}
	for i, catalog := range results {
		if catalog != results[0] {
			t.Fatalf("caller %d got a different snapshot pointer", i)
		}
	}

	// The Utopia rule must already be in the published snapshot
	utopia := results[0].HotTubes[0]
	if len(utopia.DisallowedPairs) != 1 || utopia.DisallowedPairs[0].Shell != "Platinum" {
		t.Fatalf("snapshot published without the legacy rule: %v", utopia.DisallowedPairs)
	}
}

func TestApplyLegacyColorRules(t *testing.T) {
	catalog := &structs.Catalog{
		HotTubes: []structs.HotTub{
			{
				ID:         "utopia-monarch",
				Collection: "Utopia",
				Colors: structs.Colors{
					ShellColors:   []structs.ShellColor{{Name: "Platinum"}},
					CabinetColors: []structs.CabinetColor{{Color: "Parchment"}},
				},
			},
			{
				ID:         "paradise-aruba",
				Collection: "Paradise",
				Colors: structs.Colors{
					ShellColors:   []structs.ShellColor{{Name: "Platinum"}},
					CabinetColors: []structs.CabinetColor{{Color: "Parchment"}},
				},
			},
			{
				ID:              "utopia-custom",
				Collection:      "Utopia",
				DisallowedPairs: []structs.ColorPair{{Shell: "Midnight", Cabinet: "Java"}},
			},
		},
	}

	applyLegacyColorRules(catalog)

	utopia := catalog.HotTubes[0]
	if len(utopia.DisallowedPairs) != 1 || utopia.DisallowedPairs[0].Shell != "Platinum" || utopia.DisallowedPairs[0].Cabinet != "Parchment" {
		t.Fatalf("Utopia pairs = %v, want the Platinum/Parchment rule", utopia.DisallowedPairs)
	}
	if len(catalog.HotTubes[1].DisallowedPairs) != 0 {
		t.Fatalf("Paradise entry must stay unrestricted, got %v", catalog.HotTubes[1].DisallowedPairs)
	}
	if catalog.HotTubes[2].DisallowedPairs[0].Shell != "Midnight" {
		t.Fatal("explicit pairs must not be overwritten")
	}
}

func TestFilterByCollection(t *testing.T) {
	hottubes := []structs.HotTub{
		{ID: "a", Collection: "Utopia"},
		{ID: "b", Collection: "Paradise"},
		{ID: "c", Collection: "utopia"},
	}

	filtered := FilterByCollection(hottubes, "Utopia")
	if len(filtered) != 2 {
		t.Fatalf("filtered = %d entries, want 2 (case-insensitive)", len(filtered))
	}

	if got := FilterByCollection(hottubes, "Limelight"); len(got) != 0 {
		t.Fatalf("unknown collection yielded %d entries", len(got))
	}
}

func TestSortHelpers(t *testing.T) {
	hottubes := []structs.HotTub{
		{ID: "big", Seating: "7 Adults", BasePrice: "52,000"},
		{ID: "small", Seating: "3 Adults", BasePrice: "28,000"},
		{ID: "mid", Seating: "5 Adults", BasePrice: "39,500"},
	}

	bySeating := SortBySeating(hottubes, true)
	if bySeating[0].ID != "small" || bySeating[2].ID != "big" {
		t.Fatalf("SortBySeating ascending order wrong: %v", bySeating)
	}
	if hottubes[0].ID != "big" {
		t.Fatal("SortBySeating must not mutate its input")
	}

	byPrice := SortByPrice(hottubes, false)
	if byPrice[0].ID != "big" || byPrice[2].ID != "small" {
		t.Fatalf("SortByPrice descending order wrong: %v", byPrice)
	}
}

func TestPriceRangeAndSeatingOptions(t *testing.T) {
	hottubes := []structs.HotTub{
		{Seating: "6 Adults", BasePrice: "45,000"},
		{Seating: "4 Adults", BasePrice: "32,500"},
		{Seating: "6 Adults", BasePrice: "51,000"},
	}

	minPrice, maxPrice := PriceRange(hottubes)
	if minPrice != 32500 || maxPrice != 51000 {
		t.Fatalf("PriceRange = %v/%v, want 32500/51000", minPrice, maxPrice)
	}

	seating := SeatingOptions(hottubes)
	if len(seating) != 2 || seating[0] != 4 || seating[1] != 6 {
		t.Fatalf("SeatingOptions = %v, want [4 6]", seating)
	}
}
