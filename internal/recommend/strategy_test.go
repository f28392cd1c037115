package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stepsync/companion/internal/game"
	"github.com/stepsync/companion/internal/history"
	"github.com/stepsync/companion/internal/prediction"
)

func TestLocalStrategy(t *testing.T) {
	s := NewLocal(Config{})
	rec := s.Recommend(context.Background(),
		Profile{Age: 22, BMI: 22, RestingBPM: 55, WorkoutFrequency: 6},
		history.Stats{Streak: 8, TotalCount: 25})

	if rec.Difficulty != game.DifficultyHard {
		t.Errorf("difficulty = %s, want hard", rec.Difficulty)
	}
	if rec.Source != "local" {
		t.Errorf("source = %q, want local", rec.Source)
	}
}

func TestRemoteStrategyUsesPrediction(t *testing.T) {
	client := prediction.NewMockClient(prediction.MockResult{
		Result: prediction.Result{PredictedClass: "HARD"},
	})
	s := NewRemote(client, Config{})

	rec := s.Recommend(context.Background(), Profile{Age: 60, RestingBPM: 90}, history.Stats{})

	if rec.Difficulty != game.DifficultyHard {
		t.Errorf("difficulty = %s, want hard from remote", rec.Difficulty)
	}
	if rec.Source != "remote" {
		t.Errorf("source = %q, want remote", rec.Source)
	}
	// Game mode is always local.
	if rec.Mode != game.ModeBeatTheClock {
		t.Errorf("mode = %s, want btc", rec.Mode)
	}
}

func TestRemoteStrategySendsDefaults(t *testing.T) {
	client := prediction.NewMockClient(prediction.MockResult{
		Result: prediction.Result{PredictedClass: "easy"},
	})
	s := NewRemote(client, Config{})

	s.Recommend(context.Background(), Profile{}, history.Stats{})

	if client.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", client.CallCount())
	}
	sent := client.Calls[0]
	if sent.Age != DefaultAge {
		t.Errorf("sent age = %d, want default %d", sent.Age, DefaultAge)
	}
	if sent.RestingBPM != DefaultRestingBPM {
		t.Errorf("sent bpm = %d, want default %d", sent.RestingBPM, DefaultRestingBPM)
	}
}

func TestRemoteStrategyFallsBackOnError(t *testing.T) {
	client := prediction.NewMockClient(prediction.MockResult{
		Err: &prediction.ServiceError{Err: errors.New("connection refused")},
	})
	s := NewRemote(client, Config{})

	// A profile whose local score lands on medium.
	rec := s.Recommend(context.Background(),
		Profile{Age: 30, BMI: 23},
		history.Stats{})

	if rec.Difficulty == "" || rec.Mode == "" {
		t.Fatal("fallback must still produce concrete values")
	}
	if rec.Source != "local" {
		t.Errorf("source = %q, want local after fallback", rec.Source)
	}
}

func TestRemoteStrategyFallsBackOnUnparsableLabel(t *testing.T) {
	client := prediction.NewMockClient(prediction.MockResult{
		Result: prediction.Result{PredictedClass: "banana"},
	})
	s := NewRemote(client, Config{})

	rec := s.Recommend(context.Background(), Profile{Age: 30}, history.Stats{})
	if rec.Source != "local" {
		t.Errorf("source = %q, want local for unusable label", rec.Source)
	}
}

func TestNewStrategySelection(t *testing.T) {
	if _, ok := NewStrategy(nil, Config{}).(Local); !ok {
		t.Error("nil client should select Local")
	}
	if _, ok := NewStrategy(prediction.NewMockClient(), Config{}).(Remote); !ok {
		t.Error("non-nil client should select Remote")
	}
}
