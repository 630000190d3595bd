package usecase

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/bnema/omnitab/internal/application/port"
	"github.com/bnema/omnitab/internal/domain/entity"
	"github.com/bnema/omnitab/internal/domain/repository"
	"github.com/bnema/omnitab/internal/logging"
)

// DefaultMaxTabs caps the number of open tabs.
const DefaultMaxTabs = 10

// ManageTabsUseCase owns the tab session and keeps the shared renderer
// pointed at the active tab. Rejected operations leave the session unchanged.
type ManageTabsUseCase struct {
	renderer port.Renderer
	store    repository.KeyValueStore
	idGen    entity.IDGenerator
	maxTabs  int
	now      func() time.Time

	// navMu serializes every operation that changes which page the shared
	// renderer should show, from the state change through the renderer call,
	// so the renderer always ends on the active tab. Lock order: navMu, mu.
	navMu sync.Mutex

	// mu guards tabs. The renderer is always called with mu released
	// because it may invoke callbacks synchronously.
	mu   sync.Mutex
	tabs *entity.TabList
}

// NewManageTabsUseCase creates a session holding one blank active tab.
// Restore replaces it with the persisted session.
func NewManageTabsUseCase(
	renderer port.Renderer,
	store repository.KeyValueStore,
	idGen entity.IDGenerator,
	maxTabs int,
) *ManageTabsUseCase {
	if maxTabs <= 0 {
		maxTabs = DefaultMaxTabs
	}
	uc := &ManageTabsUseCase{
		renderer: renderer,
		store:    store,
		idGen:    idGen,
		maxTabs:  maxTabs,
		now:      time.Now,
		tabs:     entity.NewTabList(),
	}
	_ = uc.tabs.Append(entity.NewTab(entity.TabID(idGen()), false, uc.now()), maxTabs)
	return uc
}

// MaxTabs returns the session cap.
func (uc *ManageTabsUseCase) MaxTabs() int {
	return uc.maxTabs
}

// Create appends a blank tab, activates it and clears the renderer.
func (uc *ManageTabsUseCase) Create(ctx context.Context, incognito bool) (entity.TabID, error) {
	uc.navMu.Lock()
	defer uc.navMu.Unlock()

	id, err := uc.create(ctx, incognito)
	if err != nil {
		return "", err
	}
	if err := uc.renderer.Clear(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to clear renderer")
	}
	uc.persist(ctx)
	return id, nil
}

// CreateAndNavigate opens rawURL in a new active tab as one operation.
func (uc *ManageTabsUseCase) CreateAndNavigate(ctx context.Context, incognito bool, rawURL string) (entity.TabID, error) {
	uc.navMu.Lock()
	defer uc.navMu.Unlock()

	id, err := uc.create(ctx, incognito)
	if err != nil {
		return "", err
	}
	return id, uc.navigateActive(ctx, rawURL)
}

func (uc *ManageTabsUseCase) create(ctx context.Context, incognito bool) (entity.TabID, error) {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	tab := entity.NewTab(entity.TabID(uc.idGen()), incognito, uc.now())
	if err := uc.tabs.Append(tab, uc.maxTabs); err != nil {
		count := uc.tabs.Count()
		uc.mu.Unlock()
		log.Debug().Int("count", count).Msg("tab creation rejected")
		return "", fmt.Errorf("failed to create tab: %w", err)
	}
	count := uc.tabs.Count()
	uc.mu.Unlock()

	log.Debug().
		Str("tab_id", string(tab.ID)).
		Bool("incognito", incognito).
		Int("count", count).
		Msg("tab created")
	return tab.ID, nil
}

// SwitchTo activates the tab at index and reloads its page into the renderer.
func (uc *ManageTabsUseCase) SwitchTo(ctx context.Context, index int) error {
	uc.navMu.Lock()
	defer uc.navMu.Unlock()
	return uc.switchTo(ctx, index)
}

func (uc *ManageTabsUseCase) switchTo(ctx context.Context, index int) error {
	uc.mu.Lock()
	if err := uc.tabs.Activate(index); err != nil {
		uc.mu.Unlock()
		return fmt.Errorf("failed to switch to tab %d: %w", index, err)
	}
	target := *uc.tabs.Active()
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("tab_id", string(target.ID)).
		Int("index", index).
		Msg("switched tab")

	uc.showTab(ctx, target)
	return nil
}

// SwitchNext activates the next tab, wrapping around.
func (uc *ManageTabsUseCase) SwitchNext(ctx context.Context) error {
	return uc.switchRelative(ctx, 1)
}

// SwitchPrevious activates the previous tab, wrapping around.
func (uc *ManageTabsUseCase) SwitchPrevious(ctx context.Context) error {
	return uc.switchRelative(ctx, -1)
}

func (uc *ManageTabsUseCase) switchRelative(ctx context.Context, delta int) error {
	uc.navMu.Lock()
	defer uc.navMu.Unlock()

	uc.mu.Lock()
	count := uc.tabs.Count()
	current := uc.tabs.ActiveIndex
	uc.mu.Unlock()

	if count <= 1 {
		return nil
	}
	return uc.switchTo(ctx, ((current+delta)%count+count)%count)
}

// Close removes the tab at index. The last remaining tab cannot be closed.
func (uc *ManageTabsUseCase) Close(ctx context.Context, index int) error {
	uc.navMu.Lock()
	defer uc.navMu.Unlock()
	return uc.closeAt(ctx, index)
}

// CloseActive closes whichever tab is active when the call runs.
func (uc *ManageTabsUseCase) CloseActive(ctx context.Context) error {
	uc.navMu.Lock()
	defer uc.navMu.Unlock()

	uc.mu.Lock()
	index := uc.tabs.ActiveIndex
	uc.mu.Unlock()
	return uc.closeAt(ctx, index)
}

func (uc *ManageTabsUseCase) closeAt(ctx context.Context, index int) error {
	uc.mu.Lock()
	wasActive := index == uc.tabs.ActiveIndex
	removed, err := uc.tabs.RemoveAt(index)
	if err != nil {
		uc.mu.Unlock()
		return fmt.Errorf("failed to close tab %d: %w", index, err)
	}
	active := *uc.tabs.Active()
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("tab_id", string(removed.ID)).
		Str("active_tab_id", string(active.ID)).
		Msg("tab closed")

	if wasActive {
		uc.showTab(ctx, active)
	}
	uc.persist(ctx)
	return nil
}

// Move reorders a tab without changing which tab is active.
func (uc *ManageTabsUseCase) Move(ctx context.Context, from, to int) error {
	uc.mu.Lock()
	err := uc.tabs.Move(from, to)
	uc.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to move tab %d: %w", from, err)
	}
	uc.persist(ctx)
	return nil
}

// NavigateActive points the active tab at rawURL and starts loading it.
func (uc *ManageTabsUseCase) NavigateActive(ctx context.Context, rawURL string) error {
	uc.navMu.Lock()
	defer uc.navMu.Unlock()
	return uc.navigateActive(ctx, rawURL)
}

func (uc *ManageTabsUseCase) navigateActive(ctx context.Context, rawURL string) error {
	uc.mu.Lock()
	active := uc.tabs.Active()
	if active == nil {
		uc.mu.Unlock()
		return fmt.Errorf("failed to navigate: %w", entity.ErrIndexOutOfRange)
	}
	active.Navigate(rawURL, "", false, uc.now())
	id := active.ID
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("tab_id", string(id)).
		Str("url", logging.TruncateURL(rawURL, logURLMaxLen)).
		Msg("navigating active tab")

	uc.persist(ctx)
	if err := uc.renderer.LoadURL(ctx, rawURL); err != nil {
		return fmt.Errorf("failed to load URL: %w", err)
	}
	return nil
}

// ClearActive blanks the shared renderer without touching tab state.
func (uc *ManageTabsUseCase) ClearActive(ctx context.Context) error {
	uc.navMu.Lock()
	defer uc.navMu.Unlock()
	return uc.renderer.Clear(ctx)
}

// Back steps the renderer back in the active tab's history.
func (uc *ManageTabsUseCase) Back(ctx context.Context) (bool, error) {
	uc.navMu.Lock()
	defer uc.navMu.Unlock()
	return uc.renderer.GoBack(ctx)
}

// Forward steps the renderer forward in the active tab's history.
func (uc *ManageTabsUseCase) Forward(ctx context.Context) (bool, error) {
	uc.navMu.Lock()
	defer uc.navMu.Unlock()
	return uc.renderer.GoForward(ctx)
}

// Reload reloads the active page.
func (uc *ManageTabsUseCase) Reload(ctx context.Context) error {
	uc.navMu.Lock()
	defer uc.navMu.Unlock()
	return uc.renderer.Reload(ctx)
}

// UpdateActive records a finished navigation on the active tab.
func (uc *ManageTabsUseCase) UpdateActive(ctx context.Context, rawURL, title string) {
	uc.updateActive(ctx, rawURL, title, true)
}

// URLChanged records a navigation that is still loading, such as a redirect.
func (uc *ManageTabsUseCase) URLChanged(ctx context.Context, rawURL string) {
	uc.updateActive(ctx, rawURL, "", false)
}

// TitleChanged updates the active tab's title only.
func (uc *ManageTabsUseCase) TitleChanged(_ context.Context, title string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if active := uc.tabs.Active(); active != nil && title != "" {
		active.Title = title
	}
}

// SetActiveFavicon stores an opaque favicon reference on the active tab.
func (uc *ManageTabsUseCase) SetActiveFavicon(ref string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if active := uc.tabs.Active(); active != nil {
		active.FaviconRef = ref
	}
}

func (uc *ManageTabsUseCase) updateActive(ctx context.Context, rawURL, title string, finished bool) {
	uc.mu.Lock()
	active := uc.tabs.Active()
	if active == nil {
		uc.mu.Unlock()
		return
	}
	active.Navigate(rawURL, title, finished, uc.now())
	state := active.State
	category := active.Category
	uc.mu.Unlock()

	logging.FromContext(ctx).Trace().
		Str("url", logging.TruncateURL(rawURL, logURLMaxLen)).
		Str("state", state.String()).
		Str("category", string(category)).
		Msg("active tab updated")

	if finished {
		uc.persist(ctx)
	}
}

// AutoGroup recomputes domain groups for all tabs and returns group sizes.
func (uc *ManageTabsUseCase) AutoGroup(ctx context.Context) map[string]int {
	uc.mu.Lock()
	groups := uc.tabs.AutoGroup()
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().Int("groups", len(groups)).Msg("tabs auto-grouped")
	return groups
}

// Groups returns the current group names, sorted.
func (uc *ManageTabsUseCase) Groups() []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	seen := make(map[string]struct{})
	var groups []string
	for _, tab := range uc.tabs.Tabs {
		if tab.Group == "" {
			continue
		}
		if _, ok := seen[tab.Group]; !ok {
			seen[tab.Group] = struct{}{}
			groups = append(groups, tab.Group)
		}
	}
	slices.Sort(groups)
	return groups
}

// TabsByGroup returns the tabs assigned to group, in session order.
func (uc *ManageTabsUseCase) TabsByGroup(group string) []entity.Tab {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var out []entity.Tab
	for _, tab := range uc.tabs.Tabs {
		if tab.Group == group {
			out = append(out, *tab)
		}
	}
	return out
}

// CategoryCounts returns how many tabs fall into each category.
func (uc *ManageTabsUseCase) CategoryCounts() map[entity.TabCategory]int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	counts := make(map[entity.TabCategory]int)
	for _, tab := range uc.tabs.Tabs {
		counts[tab.Category]++
	}
	return counts
}

// List returns copies of all tabs in order.
func (uc *ManageTabsUseCase) List() []entity.Tab {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.tabs.Snapshot()
}

// Active returns a copy of the active tab and its index.
func (uc *ManageTabsUseCase) Active() (entity.Tab, int, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	active := uc.tabs.Active()
	if active == nil {
		return entity.Tab{}, -1, false
	}
	return *active, uc.tabs.ActiveIndex, true
}

// Count returns the number of open tabs.
func (uc *ManageTabsUseCase) Count() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.tabs.Count()
}

// Save persists the non-incognito tabs.
func (uc *ManageTabsUseCase) Save(ctx context.Context) error {
	uc.mu.Lock()
	records := make([]entity.TabRecord, 0, uc.tabs.Count())
	for _, tab := range uc.tabs.Tabs {
		if tab.Incognito {
			continue
		}
		records = append(records, entity.RecordFromTab(tab))
	}
	uc.mu.Unlock()

	if err := uc.store.Put(ctx, repository.KeyTabs, entity.EncodeTabRecords(records)); err != nil {
		return fmt.Errorf("failed to save tabs: %w", err)
	}
	logging.FromContext(ctx).Debug().Int("count", len(records)).Msg("tabs saved")
	return nil
}

// Restore replaces the session with the persisted tabs. Malformed records
// are skipped and store failures yield a blank session; at least one tab
// always exists afterwards and the first tab is active.
func (uc *ManageTabsUseCase) Restore(ctx context.Context) {
	log := logging.FromContext(ctx)

	uc.navMu.Lock()
	defer uc.navMu.Unlock()

	raw, _, err := uc.store.Get(ctx, repository.KeyTabs)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read saved tabs, starting blank")
		raw = ""
	}

	records, skipped := entity.DecodeTabRecords(raw)
	for _, skipErr := range skipped {
		log.Warn().Err(skipErr).Msg("skipping saved tab")
	}
	if len(records) > uc.maxTabs {
		log.Warn().Int("saved", len(records)).Int("max", uc.maxTabs).Msg("dropping saved tabs beyond cap")
		records = records[:uc.maxTabs]
	}

	now := uc.now()
	tabs := entity.NewTabList()
	for _, rec := range records {
		tab := entity.NewTab(entity.TabID(uc.idGen()), false, now)
		if rec.URL != "" {
			tab.Navigate(rec.URL, rec.Title, false, now)
		} else if rec.Title != "" {
			tab.Title = rec.Title
		}
		if !rec.LastVisitAt.IsZero() {
			// The tab existed at least since its last visit.
			tab.LastVisitAt = rec.LastVisitAt
			if rec.LastVisitAt.Before(tab.CreatedAt) {
				tab.CreatedAt = rec.LastVisitAt
			}
		}
		_ = tabs.Append(tab, uc.maxTabs)
	}
	if tabs.Count() == 0 {
		_ = tabs.Append(entity.NewTab(entity.TabID(uc.idGen()), false, now), uc.maxTabs)
	}
	_ = tabs.Activate(0)

	uc.mu.Lock()
	uc.tabs = tabs
	first := *tabs.Active()
	count := tabs.Count()
	uc.mu.Unlock()

	log.Info().Int("count", count).Int("skipped", len(skipped)).Msg("session restored")
	uc.showTab(ctx, first)
}

// persist saves the session after a mutation. Failures are logged only; the
// in-memory session stays authoritative.
func (uc *ManageTabsUseCase) persist(ctx context.Context) {
	if err := uc.Save(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to persist tabs")
	}
}

// showTab loads tab into the shared renderer, or blanks it for a new tab.
func (uc *ManageTabsUseCase) showTab(ctx context.Context, tab entity.Tab) {
	log := logging.FromContext(ctx)
	if tab.URL == "" {
		if err := uc.renderer.Clear(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to clear renderer")
		}
		return
	}
	if err := uc.renderer.LoadURL(ctx, tab.URL); err != nil {
		log.Warn().Err(err).Str("url", logging.TruncateURL(tab.URL, logURLMaxLen)).Msg("failed to load tab")
	}
}
