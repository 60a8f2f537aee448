package id

import (
	"sync"
	"testing"
)

func TestCustomIDsCompareByName(t *testing.T) {
	if New("submit") != New("submit") {
		t.Error("custom IDs with the same name should be equal")
	}
	if New("submit") == New("cancel") {
		t.Error("custom IDs with different names should differ")
	}
}

func TestUniqueIDsNeverRepeat(t *testing.T) {
	const workers = 8
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[ID]struct{}, workers*perWorker)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]ID, 0, perWorker)
			for range perWorker {
				local = append(local, Unique())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, v := range local {
				if _, dup := seen[v]; dup {
					t.Errorf("duplicate unique id %v", v)
				}
				seen[v] = struct{}{}
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Errorf("got %d ids, want %d", len(seen), workers*perWorker)
	}
}

func TestUniqueIsMonotonic(t *testing.T) {
	a, b := Unique(), Unique()
	if b.Number() <= a.Number() {
		t.Errorf("expected %d > %d", b.Number(), a.Number())
	}
	if a.IsCustom() {
		t.Error("unique id reported as custom")
	}
}

func TestMatches(t *testing.T) {
	target := New("list")
	other := New("other")
	if Matches(nil, target) {
		t.Error("nil should never match")
	}
	if !Matches(&target, New("list")) {
		t.Error("expected match")
	}
	if Matches(&other, target) {
		t.Error("unexpected match")
	}
}

func TestString(t *testing.T) {
	if got := New("header").String(); got != "header" {
		t.Errorf("String() = %q", got)
	}
	u := Unique()
	if got := u.String(); got[0] != '#' {
		t.Errorf("unique String() = %q, want # prefix", got)
	}
}
