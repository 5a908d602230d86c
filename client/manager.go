package client

import (
	"log"
	"sync"
	"sync/atomic"

	"restaurant-menu-api/models"
)

// Manager owns the client-side mirror of the catalog, the favorites set and
// the view state. It is safe for concurrent use; fetched responses are
// stamped with a sequence number so a superseded request can never
// overwrite a newer one.
type Manager struct {
	api   *Client
	store FavoriteStore

	mu        sync.Mutex
	items     []models.MenuItem
	qrCode    string
	view      ViewState
	favorites FavoriteSet

	seq     atomic.Uint64
	applied uint64 // guarded by mu
}

func NewManager(api *Client, store FavoriteStore) *Manager {
	m := &Manager{
		api:       api,
		store:     store,
		view:      NewViewState(),
		favorites: FavoriteSet{},
	}
	ids, err := store.Load()
	if err != nil {
		log.Printf("favorites: load failed, starting empty: %v", err)
	}
	m.favorites = NewFavoriteSet(ids)
	return m
}

// Start fetches the catalog and the QR code concurrently. Either fetch
// failing degrades to an empty default with a console diagnostic; there is
// no retry.
func (m *Manager) Start() {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		seq := m.seq.Add(1)
		items, err := m.api.FetchMenu("", "")
		if err != nil {
			log.Printf("menu: initial fetch failed: %v", err)
			items = nil
		}
		m.commit(seq, items)
	}()

	go func() {
		defer wg.Done()
		qr, err := m.api.FetchQRCode()
		if err != nil {
			log.Printf("qrcode: fetch failed: %v", err)
			qr = ""
		}
		m.mu.Lock()
		m.qrCode = qr
		m.mu.Unlock()
	}()

	wg.Wait()
}

// SetSearch updates the search text and refetches once.
func (m *Manager) SetSearch(q string) {
	m.mu.Lock()
	m.view = m.view.WithSearch(q)
	m.mu.Unlock()
	m.refresh()
}

// SetCategory updates the category filter and refetches once.
func (m *Manager) SetCategory(c string) {
	m.mu.Lock()
	m.view = m.view.WithCategory(c)
	m.mu.Unlock()
	m.refresh()
}

// CycleSort advances the price sort. Sorting is purely client-side, so no
// refetch happens.
func (m *Manager) CycleSort() {
	m.mu.Lock()
	m.view = m.view.CycleSort()
	m.mu.Unlock()
}

// Clear resets search, category and sort in one step and refetches.
// Favorites are untouched.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.view = m.view.Cleared()
	m.mu.Unlock()
	m.refresh()
}

// refresh issues exactly one request for the current filters. The response
// is committed only if no newer request has been issued since.
func (m *Manager) refresh() {
	seq := m.seq.Add(1)
	m.mu.Lock()
	view := m.view
	m.mu.Unlock()

	items, err := m.api.FetchMenu(view.Search, view.Category)
	if err != nil {
		log.Printf("menu: fetch failed: %v", err)
		return
	}
	m.commit(seq, items)
}

func (m *Manager) commit(seq uint64, items []models.MenuItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if seq < m.applied {
		return // superseded by a newer request
	}
	m.applied = seq
	m.items = items
}

// Items returns the catalog mirror with the current sort applied.
func (m *Manager) Items() []models.MenuItem {
	m.mu.Lock()
	items, order := m.items, m.view.Sort
	m.mu.Unlock()
	return SortByPrice(items, order)
}

// FavoriteItems returns the favorited items still present in the mirror;
// identifiers of deleted items are silently skipped.
func (m *Manager) FavoriteItems() []models.MenuItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.MenuItem{}
	for _, item := range m.items {
		if m.favorites.Has(item.ID) {
			out = append(out, item)
		}
	}
	return out
}

// ToggleFavorite flips one ID and persists the full set synchronously.
func (m *Manager) ToggleFavorite(id string) error {
	m.mu.Lock()
	m.favorites.Toggle(id)
	ids := m.favorites.IDs()
	m.mu.Unlock()
	return m.store.Save(ids)
}

// IsFavorite reports whether the ID is currently marked.
func (m *Manager) IsFavorite(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.favorites.Has(id)
}

// QRCode returns the fetched data URL, or "" if the fetch failed.
func (m *Manager) QRCode() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.qrCode
}

// View returns the current filter state.
func (m *Manager) View() ViewState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view
}

// ── Admin operations ────────────────────────────────────────────────────
// The key is supplied per call and never stored. On success the mirror is
// updated from the server's returned item; on failure nothing changes.

func (m *Manager) CreateItem(adminKey string, item models.MenuItem) (*models.MenuItem, error) {
	created, err := m.api.CreateItem(adminKey, item)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.items = append(m.items, *created)
	m.mu.Unlock()
	return created, nil
}

func (m *Manager) UpdateItem(adminKey, id string, fields map[string]interface{}) (*models.MenuItem, error) {
	updated, err := m.api.UpdateItem(adminKey, id, fields)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	for i := range m.items {
		if m.items[i].ID == updated.ID {
			m.items[i] = *updated
			break
		}
	}
	m.mu.Unlock()
	return updated, nil
}

func (m *Manager) DeleteItem(adminKey, id string) error {
	if err := m.api.DeleteItem(adminKey, id); err != nil {
		return err
	}
	m.mu.Lock()
	kept := m.items[:0]
	for _, item := range m.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	m.items = kept
	m.mu.Unlock()
	return nil
}
