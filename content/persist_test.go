package content

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestAdapterRoundTrip(t *testing.T) {
	slot := newMemSlot()
	a := NewAdapter(slot)

	g := DefaultGlobal()
	g.SiteName = "Round Trip"
	g.HeadScripts = `<script>window.x = "<b>&</b>";</script>`
	cities := DefaultCities()
	in := State{
		Cities: cities,
		Global: g,
		Backups: []BackupEntry{{
			ID:        "bk-1",
			Timestamp: 1714557600000,
			Label:     "Before Launch",
			Data:      Snapshot{Cities: DefaultCities(), Global: DefaultGlobal()},
		}},
		Logs: []LogEntry{
			{ID: "2", Timestamp: 1714557600002, Description: "second", Author: LogAuthor},
			{ID: "1", Timestamp: 1714557600001, Description: "first", Author: LogAuthor},
		},
	}

	if err := a.Save(in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	out, err := a.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}

func TestAdapterLoadEmptySlot(t *testing.T) {
	a := NewAdapter(newMemSlot())
	if _, err := a.Load(); !errors.Is(err, ErrNoSavedState) {
		t.Errorf("err = %v, want ErrNoSavedState", err)
	}
}

func TestAdapterMergesMissingGlobalFields(t *testing.T) {
	slot := newMemSlot()
	slot.data[StateKey] = []byte(`{"global":{"siteName":"X"}}`)

	st, err := NewAdapter(slot).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := DefaultGlobal()
	want.SiteName = "X"
	if !reflect.DeepEqual(st.Global, want) {
		t.Errorf("global = %+v, want defaults with siteName X", st.Global)
	}
	if !reflect.DeepEqual(st.Cities, DefaultCities()) {
		t.Error("absent cities should fall back to defaults")
	}
	if st.Backups != nil || st.Logs != nil {
		t.Error("absent backups and logs should be empty")
	}
}

func TestAdapterLoadsLegacyBlob(t *testing.T) {
	blob := `{
	  "cities": {
	    "home": {
	      "id": "home",
	      "name": "Home",
	      "layout": ["hero", "faq"],
	      "hero": {"title": "Enjoy the wedding", "subtitle": "We watch the kids", "imageAlt": "Kids playing", "pillText": "Now booking"},
	      "trust": {"title": "Trusted", "description": "Vetted caregivers"},
	      "testimonials": [{"text": "Great", "author": "A", "location": "Delhi", "rating": 4}],
	      "faqs": [{"question": "Q?", "answer": "A."}],
	      "partners": true,
	      "localInsights": {"title": "Local", "content": ["one", "two"]}
	    }
	  },
	  "global": {"siteName": "Old Site", "googleTagId": "G-123", "robotsTxt": "User-agent: *"},
	  "backups": [],
	  "logs": [{"id": "1700000000000", "timestamp": 1700000000000, "description": "Updated city: Home", "author": "Administrator"}]
	}`
	slot := newMemSlot()
	slot.data[StateKey] = []byte(blob)

	st, err := NewAdapter(slot).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	home, ok := st.Cities["home"]
	if !ok || len(st.Cities) != 1 {
		t.Fatalf("cities = %v, want only home", st.Cities)
	}
	if home.Hero.PillText != "Now booking" || !home.Partners {
		t.Errorf("home decoded wrong: %+v", home)
	}
	if home.LocalInsights == nil || len(home.LocalInsights.Content) != 2 {
		t.Errorf("localInsights decoded wrong: %+v", home.LocalInsights)
	}
	if home.Testimonials[0].Rating != 4 {
		t.Errorf("rating = %d, want 4", home.Testimonials[0].Rating)
	}
	if st.Global.GoogleTagID != "G-123" || st.Global.MetaDescription != DefaultGlobal().MetaDescription {
		t.Errorf("global decoded wrong: %+v", st.Global)
	}
	if len(st.Logs) != 1 || st.Logs[0].Author != "Administrator" {
		t.Errorf("logs decoded wrong: %+v", st.Logs)
	}
}

func TestAdapterSaveUsesCamelCaseKeys(t *testing.T) {
	slot := newMemSlot()
	if err := NewAdapter(slot).Save(State{Cities: DefaultCities(), Global: DefaultGlobal()}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(slot.data[StateKey], &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"siteName", "metaDescription", "googleTagId", "ogImageUrl", "customJs", "sitemapXml", "bookings"} {
		if _, ok := raw["global"][key]; !ok {
			t.Errorf("global missing key %q", key)
		}
	}
}

func TestAdapterSaveWriteFailure(t *testing.T) {
	slot := newMemSlot()
	slot.failPut = errors.New("full")
	err := NewAdapter(slot).Save(State{})
	var pe *PersistenceError
	if !errors.As(err, &pe) || pe.Op != "write" {
		t.Fatalf("err = %v, want write PersistenceError", err)
	}
	if !errors.Is(err, slot.failPut) {
		t.Error("PersistenceError should wrap the slot error")
	}
}
