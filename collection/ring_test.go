package collection

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRing_Enqueue(t *testing.T) {
	testCases := []struct {
		name     string
		capacity int
		in       []string
		want     []string
	}{
		{name: "empty", capacity: 3, in: nil, want: []string{}},
		{name: "not full", capacity: 3, in: []string{"A", "B"}, want: []string{"A", "B"}},
		{name: "exactly full", capacity: 3, in: []string{"A", "B", "C"}, want: []string{"A", "B", "C"}},
		{name: "evicts oldest", capacity: 2, in: []string{"A", "B", "C"}, want: []string{"B", "C"}},
		{name: "wraps twice", capacity: 2, in: []string{"A", "B", "C", "D", "E"}, want: []string{"D", "E"}},
		{name: "capacity one", capacity: 1, in: []string{"A", "B"}, want: []string{"B"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRing[string](tc.capacity)
			for _, v := range tc.in {
				r.Enqueue(v)
			}
			if diff := cmp.Diff(tc.want, r.Items()); diff != "" {
				t.Errorf("Items() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestRing_KeepsLastK checks that after N >= K enqueues the ring holds exactly the last K items.
func TestRing_KeepsLastK(t *testing.T) {
	const k = 10
	for n := k; n < 3*k; n++ {
		r := NewRing[int](k)
		for i := 0; i < n; i++ {
			r.Enqueue(i)
		}
		want := make([]int, 0, k)
		for i := n - k; i < n; i++ {
			want = append(want, i)
		}
		if diff := cmp.Diff(want, r.Items()); diff != "" {
			t.Errorf("after %d enqueues (-want +got):\n%s", n, diff)
		}
		if !r.IsFull() {
			t.Errorf("after %d enqueues IsFull() = false, want true", n)
		}
	}
}

func TestRing_Dequeue(t *testing.T) {
	r := NewRing[string](3)

	r.Dequeue()
	if !r.IsEmpty() {
		t.Fatalf("Dequeue() on empty ring changed IsEmpty() to false")
	}
	if r.Len() != 0 {
		t.Fatalf("Dequeue() on empty ring: Len() = %d, want 0", r.Len())
	}

	for _, v := range []string{"A", "B", "C", "D"} {
		r.Enqueue(v)
	}
	r.Dequeue()
	if diff := cmp.Diff([]string{"C", "D"}, r.Items()); diff != "" {
		t.Errorf("Items() after Dequeue mismatch (-want +got):\n%s", diff)
	}

	r.Enqueue("E")
	r.Enqueue("F")
	if diff := cmp.Diff([]string{"D", "E", "F"}, r.Items()); diff != "" {
		t.Errorf("Items() after refill mismatch (-want +got):\n%s", diff)
	}

	r.Dequeue()
	r.Dequeue()
	r.Dequeue()
	if !r.IsEmpty() {
		t.Errorf("IsEmpty() = false after draining, want true")
	}
}

func TestRing_AllStopsEarly(t *testing.T) {
	r := NewRing[int](4)
	for i := range 6 {
		r.Enqueue(i)
	}
	var got []int
	for v := range r.All() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	if diff := cmp.Diff([]int{2, 3}, got); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRing_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		t.Run(fmt.Sprint(capacity), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewRing(%d) did not panic", capacity)
				}
			}()
			NewRing[string](capacity)
		})
	}
}
