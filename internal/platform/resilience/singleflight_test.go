package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_SharesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	var executions atomic.Int32

	start := make(chan struct{})
	var wg sync.WaitGroup
	results := make([]any, 8)

	for i := range results {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			<-start
			value, err, _ := flight.Do("season:s1", func() (any, error) {
				executions.Add(1)
				time.Sleep(20 * time.Millisecond)
				return "aggregate", nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			results[idx] = value
		}(i)
	}

	close(start)
	wg.Wait()

	if got := executions.Load(); got != 1 {
		t.Fatalf("expected a single execution, got %d", got)
	}
	for idx, value := range results {
		if value != "aggregate" {
			t.Fatalf("caller %d got %v", idx, value)
		}
	}
}

func TestSingleFlight_DistinctKeysDoNotBlock(t *testing.T) {
	t.Parallel()

	var flight SingleFlight

	first, err, shared := flight.Do("a", func() (any, error) { return 1, nil })
	if err != nil || shared || first != 1 {
		t.Fatalf("unexpected first result: %v %v %v", first, err, shared)
	}
	second, err, shared := flight.Do("b", func() (any, error) { return 2, nil })
	if err != nil || shared || second != 2 {
		t.Fatalf("unexpected second result: %v %v %v", second, err, shared)
	}
}
