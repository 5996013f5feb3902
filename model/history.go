package model

import "sort"

// PriceHistory maps item names to the price seen on each invoice date.
// Adding an item for a (name, date) pair that already exists replaces the
// earlier price; no history of overwritten values is kept.
type PriceHistory struct {
	items map[string]map[string]Price
}

// NewPriceHistory creates an empty price history
func NewPriceHistory() *PriceHistory {
	return &PriceHistory{items: make(map[string]map[string]Price)}
}

// Add records an item, overwriting any price for the same name and date
func (h *PriceHistory) Add(item Item) {
	h.Set(item.Name, item.Date, item.Price)
}

// AddAll records items in order
func (h *PriceHistory) AddAll(items []Item) {
	for _, item := range items {
		h.Add(item)
	}
}

// Set records a price for name on date
func (h *PriceHistory) Set(name, date string, price Price) {
	if h.items == nil {
		h.items = make(map[string]map[string]Price)
	}
	dates, ok := h.items[name]
	if !ok {
		dates = make(map[string]Price)
		h.items[name] = dates
	}
	dates[date] = price
}

// Merge copies every entry of other into h. Entries of other win.
func (h *PriceHistory) Merge(other *PriceHistory) {
	if other == nil {
		return
	}
	for name, dates := range other.items {
		for date, price := range dates {
			h.Set(name, date, price)
		}
	}
}

// Get returns the price of name on date
func (h *PriceHistory) Get(name, date string) (Price, bool) {
	p, ok := h.items[name][date]
	return p, ok
}

// Names returns the item names in sorted order
func (h *PriceHistory) Names() []string {
	names := make([]string, 0, len(h.items))
	for name := range h.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dates returns the dates recorded for name in sorted order
func (h *PriceHistory) Dates(name string) []string {
	dates := make([]string, 0, len(h.items[name]))
	for date := range h.items[name] {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// AllDates returns every date recorded for any item, sorted
func (h *PriceHistory) AllDates() []string {
	seen := make(map[string]bool)
	for _, dates := range h.items {
		for date := range dates {
			seen[date] = true
		}
	}
	all := make([]string, 0, len(seen))
	for date := range seen {
		all = append(all, date)
	}
	sort.Strings(all)
	return all
}

// Len returns the number of (name, date) entries
func (h *PriceHistory) Len() int {
	n := 0
	for _, dates := range h.items {
		n += len(dates)
	}
	return n
}

// Items returns every entry as an Item, ordered by name then date
func (h *PriceHistory) Items() []Item {
	items := make([]Item, 0, h.Len())
	for _, name := range h.Names() {
		for _, date := range h.Dates(name) {
			items = append(items, Item{Date: date, Name: name, Price: h.items[name][date]})
		}
	}
	return items
}
