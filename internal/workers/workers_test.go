// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"testing"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Stop were called.
type mockWorker struct {
	runCount  int
	stopCount int
	order     *[]int
	id        int
}

func (m *mockWorker) Run() {
	m.runCount++
	if m.order != nil {
		*m.order = append(*m.order, m.id)
	}
}

func (m *mockWorker) Stop() {
	m.stopCount++
	if m.order != nil {
		*m.order = append(*m.order, -m.id)
	}
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := New(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := New()

	// Should not panic on empty workers list
	ws.Run()
	ws.Stop()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
	ws.Stop()
}

func TestWorkers_StopReversesStartOrder(t *testing.T) {
	order := []int{}

	ws := New(
		&mockWorker{id: 1, order: &order},
		&mockWorker{id: 2, order: &order},
		&mockWorker{id: 3, order: &order},
	)

	ws.Run()
	ws.Stop()

	want := []int{1, 2, 3, -3, -2, -1}
	if len(order) != len(want) {
		t.Fatalf("expected order %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
}
