package export

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/tsawler/pricebook/model"
)

type pricePoint struct {
	Date  string `json:"date" yaml:"date"`
	Price string `json:"price" yaml:"price"`
	Cents int64  `json:"cents" yaml:"cents"`
}

type historyEntry struct {
	Name   string       `json:"name" yaml:"name"`
	Prices []pricePoint `json:"prices" yaml:"prices"`
}

type itemRecord struct {
	Date  string `json:"date" yaml:"date"`
	Name  string `json:"name" yaml:"name"`
	Price string `json:"price" yaml:"price"`
	Cents int64  `json:"cents" yaml:"cents"`
}

func point(date string, p model.Price) pricePoint {
	return pricePoint{Date: date, Price: p.Decimal().StringFixed(2), Cents: p.Cents()}
}

func historyRecords(h *model.PriceHistory) []historyEntry {
	out := make([]historyEntry, 0)
	for _, name := range h.Names() {
		e := historyEntry{Name: name}
		for _, d := range h.Dates(name) {
			p, _ := h.Get(name, d)
			e.Prices = append(e.Prices, point(d, p))
		}
		out = append(out, e)
	}
	return out
}

func itemRecords(items []model.Item) []itemRecord {
	out := make([]itemRecord, 0, len(items))
	for _, it := range items {
		pp := point(it.Date, it.Price)
		out = append(out, itemRecord{Date: it.Date, Name: it.Name, Price: pp.Price, Cents: pp.Cents})
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
