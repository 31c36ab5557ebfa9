// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
	err      error
}

func (m *mockWorker) Run(context.Context) error {
	m.runCount++
	return m.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	if err := ws.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not fail on empty workers list
	if err := ws.Run(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	if err := ws.Run(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	// orderWorker records its index into the shared order slice
	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := NewWorkers(newOrderWorker(1), newOrderWorker(2), newOrderWorker(3))
	if err := ws.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestWorkers_Run_StopsAtFirstError(t *testing.T) {
	errBoom := errors.New("boom")
	w1 := &mockWorker{}
	w2 := &mockWorker{err: errBoom}
	w3 := &mockWorker{}

	err := NewWorkers(w1, w2, w3).Run(context.Background())

	if !errors.Is(err, errBoom) {
		t.Fatalf("expected errBoom, got %v", err)
	}
	if w3.runCount != 0 {
		t.Errorf("expected worker after the failing one not to run, got runCount=%d", w3.runCount)
	}
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	for range 3 {
		_ = ws.Run(context.Background())
	}

	if w.runCount != 3 {
		t.Errorf("expected runCount=3 after 3 calls, got %d", w.runCount)
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run(context.Context) error {
	*o.order = append(*o.order, o.id)
	return nil
}
