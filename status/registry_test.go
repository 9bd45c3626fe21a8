package status

import "testing"

func TestRegistryCachesPointers(t *testing.T) {
	r := NewRegistry()

	a := r.Ints.Get(EnemiesSpawned)
	b := r.Ints.Get(EnemiesSpawned)
	if a != b {
		t.Fatal("Get should return the cached pointer")
	}

	a.Add(3)
	r.Ints.Get(GoldCollected).Store(200)
	r.Bools.Get(MatchOver).Store(true)

	snap := r.Snapshot()
	if snap[EnemiesSpawned] != 3 || snap[GoldCollected] != 200 {
		t.Errorf("snapshot = %v", snap)
	}
	if r.TotalCount() != 3 {
		t.Errorf("TotalCount = %d, want 3", r.TotalCount())
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[int]()
	m.Get("b")
	m.Get("a")
	m.Get("c")

	var keys []string
	m.Range(func(key string, _ *int) {
		keys = append(keys, key)
	})

	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("keys = %v", keys)
	}
}
