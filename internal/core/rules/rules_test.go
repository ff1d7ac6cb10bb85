package rules

import (
	"context"
	"errors"
	"testing"
)

func TestRun_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	firstErr := errors.New("first rule failed")
	var laterEvaluated bool

	err := Run(context.Background(), []Rule{
		{Name: "ok", Check: func(context.Context) error { return nil }},
		{Name: "fails", Check: func(context.Context) error { return firstErr }},
		{Name: "unreached", Check: func(context.Context) error {
			laterEvaluated = true
			return errors.New("second rule failed")
		}},
	})

	if !errors.Is(err, firstErr) {
		t.Fatalf("expected first failure, got %v", err)
	}
	if laterEvaluated {
		t.Fatal("rule after first failure must not be evaluated")
	}
}

func TestRun_AllPass(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), []Rule{
		{Name: "a", Check: func(context.Context) error { return nil }},
		{Name: "nil check"},
		{Name: "b", Check: func(context.Context) error { return nil }},
	})

	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
