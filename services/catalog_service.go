package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mountspa_server/pricing"
	"mountspa_server/structs"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
)

// CatalogService loads locale-specific catalog files from the static resource
// host and serves immutable snapshots. Caching is two-tier: an in-process
// snapshot map fronted by Redis, so a restarted instance can warm up without
// hitting the resource host.
type CatalogService struct {
	logger       *gecho.Logger
	config       *structs.Config
	cacheService *CacheService
	httpClient   *http.Client

	mu        sync.RWMutex
	snapshots map[string]*catalogEntry
}

type catalogEntry struct {
	state    structs.CatalogState
	catalog  *structs.Catalog
	loadedAt time.Time
	done     chan struct{} // closed by the loading goroutine once state leaves loading
}

func NewCatalogService(logger *gecho.Logger, cfg *structs.Config, cacheService *CacheService) *CatalogService {
	return &CatalogService{
		logger:       logger,
		config:       cfg,
		cacheService: cacheService,
		httpClient: &http.Client{
			Timeout: cfg.Catalog.FetchTimeout,
		},
		snapshots: make(map[string]*catalogEntry),
	}
}

// NormalizeLocale maps an empty or whitespace locale to the configured default
func (cs *CatalogService) NormalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if locale == "" {
		return cs.config.Catalog.DefaultLocale
	}
	return locale
}

// State reports the load lifecycle of a locale's catalog entry
func (cs *CatalogService) State(locale string) structs.CatalogState {
	locale = cs.NormalizeLocale(locale)

	cs.mu.RLock()
	defer cs.mu.RUnlock()

	if entry, ok := cs.snapshots[locale]; ok {
		return entry.state
	}
	return structs.CatalogIdle
}

// GetCatalog returns the catalog snapshot for a locale, loading it on first
// use. A failed load yields an empty catalog, never an error the caller has
// to branch on; the failure is observable through State.
func (cs *CatalogService) GetCatalog(ctx context.Context, locale string) *structs.Catalog {
	locale = cs.NormalizeLocale(locale)

	// Fast path: snapshot already in memory
	cs.mu.RLock()
	if entry, ok := cs.snapshots[locale]; ok && entry.state == structs.CatalogReady {
		cs.mu.RUnlock()
		return entry.catalog
	}
	cs.mu.RUnlock()

	return cs.load(ctx, locale)
}

func (cs *CatalogService) load(ctx context.Context, locale string) *structs.Catalog {
	cs.mu.Lock()
	if entry, ok := cs.snapshots[locale]; ok {
		switch entry.state {
		case structs.CatalogReady:
			cs.mu.Unlock()
			return entry.catalog
		case structs.CatalogLoading:
			// Another request already owns the fetch; wait for it instead
			// of hitting the resource host a second time
			done := entry.done
			cs.mu.Unlock()
			select {
			case <-done:
			case <-ctx.Done():
				return &structs.Catalog{}
			}
			cs.mu.RLock()
			defer cs.mu.RUnlock()
			if entry, ok := cs.snapshots[locale]; ok && entry.catalog != nil {
				return entry.catalog
			}
			return &structs.Catalog{}
		}
	}
	cs.snapshots[locale] = &catalogEntry{state: structs.CatalogLoading, done: make(chan struct{})}
	cs.mu.Unlock()

	start := time.Now()

	// Second tier: Redis survives process restarts
	if cached, err := cs.cacheService.GetCatalog(locale); err != nil {
		cs.logger.Warn("Catalog cache lookup failed, falling back to fetch",
			gecho.Field("locale", locale),
			gecho.Field("error", err.Error()),
		)
	} else if cached != nil {
		cs.logger.Debug("Catalog loaded from cache",
			gecho.Field("locale", locale),
			gecho.Field("duration", time.Since(start)),
		)
		applyLegacyColorRules(cached)
		return cs.finishLoad(locale, structs.CatalogReady, cached)
	}

	catalog, err := cs.fetchWithFallback(ctx, locale)
	if err != nil {
		cs.logger.Error("All catalog sources failed, serving empty catalog",
			gecho.Field("locale", locale),
			gecho.Field("error", err.Error()),
		)
		return cs.finishLoad(locale, structs.CatalogFailed, &structs.Catalog{})
	}

	// Rules must land before anything else reads the catalog; from here on
	// the value is immutable
	applyLegacyColorRules(catalog)

	// Cache asynchronously; a dead Redis must not slow the response down
	go func() {
		if err := cs.cacheService.SetCatalog(locale, catalog); err != nil {
			cs.logger.Warn("Failed to cache catalog",
				gecho.Field("locale", locale),
				gecho.Field("error", err.Error()),
			)
		}
	}()

	cs.logger.Info("Catalog loaded",
		gecho.Field("locale", locale),
		gecho.Field("hottubes", len(catalog.HotTubes)),
		gecho.Field("accessories", len(catalog.Accessories)),
		gecho.Field("duration", time.Since(start)),
	)

	return cs.finishLoad(locale, structs.CatalogReady, catalog)
}

// finishLoad publishes the load result and wakes any request that coalesced
// on the loading entry
func (cs *CatalogService) finishLoad(locale string, state structs.CatalogState, catalog *structs.Catalog) *structs.Catalog {
	cs.mu.Lock()
	old := cs.snapshots[locale]
	cs.snapshots[locale] = &catalogEntry{
		state:    state,
		catalog:  catalog,
		loadedAt: time.Now(),
	}
	cs.mu.Unlock()

	if old != nil && old.done != nil {
		close(old.done)
	}
	return catalog
}

// fetchWithFallback tries the locale file, then the fallback locale, then the
// unqualified default resource. Only when every source fails does it error.
func (cs *CatalogService) fetchWithFallback(ctx context.Context, locale string) (*structs.Catalog, error) {
	base := strings.TrimRight(cs.config.Catalog.BaseURL, "/")
	fallback := cs.config.Catalog.FallbackLocale

	urls := []string{fmt.Sprintf("%s/hottubes_%s.json", base, locale)}
	if fallback != "" && fallback != locale {
		urls = append(urls, fmt.Sprintf("%s/hottubes_%s.json", base, fallback))
	}
	urls = append(urls, fmt.Sprintf("%s/hottubes.json", base))

	var lastErr error
	for _, url := range urls {
		catalog, err := cs.fetchCatalog(ctx, url)
		if err != nil {
			cs.logger.Warn("Catalog source unavailable, trying next",
				gecho.Field("url", url),
				gecho.Field("error", err.Error()),
			)
			lastErr = err
			continue
		}
		return catalog, nil
	}

	return nil, fmt.Errorf("no catalog source available for locale %q: %w", locale, lastErr)
}

func (cs *CatalogService) fetchCatalog(ctx context.Context, url string) (*structs.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := cs.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20)) // 10 MB cap
	if err != nil {
		return nil, err
	}

	catalog := &structs.Catalog{}
	if err := json.Unmarshal(body, catalog); err != nil {
		return nil, fmt.Errorf("invalid catalog payload: %w", err)
	}

	return catalog, nil
}

// Invalidate drops both cache tiers for a locale so the next request
// refetches. An entry mid-load is left alone; its own fetch result replaces
// it and the waiters coalesced on it still get woken.
func (cs *CatalogService) Invalidate(locale string) error {
	locale = cs.NormalizeLocale(locale)

	cs.mu.Lock()
	if entry, ok := cs.snapshots[locale]; ok && entry.state != structs.CatalogLoading {
		delete(cs.snapshots, locale)
	}
	cs.mu.Unlock()

	return cs.cacheService.InvalidateCatalog(locale)
}

// InvalidateAll drops every locale from both cache tiers
func (cs *CatalogService) InvalidateAll() error {
	cs.mu.Lock()
	fresh := make(map[string]*catalogEntry)
	for locale, entry := range cs.snapshots {
		if entry.state == structs.CatalogLoading {
			fresh[locale] = entry
		}
	}
	cs.snapshots = fresh
	cs.mu.Unlock()

	return cs.cacheService.InvalidateAllCatalogs()
}

// applyLegacyColorRules injects the long-standing Utopia rule (Platinum shell
// is incompatible with the Parchment cabinet) into catalog entries that
// predate declarative disallowed pairs. Entries that already carry pairs are
// left alone.
func applyLegacyColorRules(catalog *structs.Catalog) {
	if catalog == nil {
		return
	}
	for i := range catalog.HotTubes {
		tub := &catalog.HotTubes[i]
		if tub.Collection != "Utopia" || len(tub.DisallowedPairs) > 0 {
			continue
		}
		hasPlatinum := false
		for _, shell := range tub.Colors.ShellColors {
			if shell.Name == "Platinum" {
				hasPlatinum = true
				break
			}
		}
		hasParchment := false
		for _, cabinet := range tub.Colors.CabinetColors {
			if cabinet.Color == "Parchment" {
				hasParchment = true
				break
			}
		}
		if hasPlatinum && hasParchment {
			tub.DisallowedPairs = []structs.ColorPair{{Shell: "Platinum", Cabinet: "Parchment"}}
		}
	}
}

// ============================================================================
// Catalog query helpers
// ============================================================================

// FilterByCollection returns the hot tubs belonging to a collection.
// An empty collection returns the input unchanged.
func FilterByCollection(hottubes []structs.HotTub, collection string) []structs.HotTub {
	if collection == "" {
		return hottubes
	}
	filtered := make([]structs.HotTub, 0, len(hottubes))
	for _, tub := range hottubes {
		if strings.EqualFold(tub.Collection, collection) {
			filtered = append(filtered, tub)
		}
	}
	return filtered
}

// seatingCount extracts the adult count from strings like "6 Adults"
func seatingCount(seating string) int {
	fields := strings.Fields(seating)
	if len(fields) == 0 {
		return 0
	}
	count, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return count
}

// SortBySeating returns a copy sorted by seating capacity
func SortBySeating(hottubes []structs.HotTub, ascending bool) []structs.HotTub {
	sorted := make([]structs.HotTub, len(hottubes))
	copy(sorted, hottubes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return seatingCount(sorted[i].Seating) < seatingCount(sorted[j].Seating)
		}
		return seatingCount(sorted[i].Seating) > seatingCount(sorted[j].Seating)
	})
	return sorted
}

// SortByPrice returns a copy sorted by base price
func SortByPrice(hottubes []structs.HotTub, ascending bool) []structs.HotTub {
	sorted := make([]structs.HotTub, len(hottubes))
	copy(sorted, hottubes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return pricing.ParsePrice(sorted[i].BasePrice) < pricing.ParsePrice(sorted[j].BasePrice)
		}
		return pricing.ParsePrice(sorted[i].BasePrice) > pricing.ParsePrice(sorted[j].BasePrice)
	})
	return sorted
}

// PriceRange returns the minimum and maximum base price across the given tubs
func PriceRange(hottubes []structs.HotTub) (min, max float64) {
	if len(hottubes) == 0 {
		return 0, 0
	}
	min = pricing.ParsePrice(hottubes[0].BasePrice)
	max = min
	for _, tub := range hottubes[1:] {
		price := pricing.ParsePrice(tub.BasePrice)
		if price < min {
			min = price
		}
		if price > max {
			max = price
		}
	}
	return min, max
}

// SeatingOptions returns the distinct seating capacities in ascending order
func SeatingOptions(hottubes []structs.HotTub) []int {
	seen := make(map[int]bool)
	var options []int
	for _, tub := range hottubes {
		count := seatingCount(tub.Seating)
		if !seen[count] {
			seen[count] = true
			options = append(options, count)
		}
	}
	sort.Ints(options)
	return options
}
