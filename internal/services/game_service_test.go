package services

import (
	"errors"
	"regexp"
	"testing"

	apperrors "github.com/madangclub/mahjong-rating/internal/errors"
)

func validGameInput() map[string]interface{} {
	return map[string]interface{}{
		"player1_name":  "동혁",
		"player2_name":  "민지",
		"player3_name":  "준호",
		"player4_name":  "서연",
		"player1_score": float64(42000),
		"player2_score": float64(31000),
		"player3_score": "18000",
		"player4_score": float64(9000),
	}
}

func validationCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	return appErr.Code
}

func TestGameCreateAndList(t *testing.T) {
	repos := newMockRepos()
	svc := newGameService(repos)

	id, err := svc.Create(validGameInput())
	if err != nil {
		t.Fatalf("failed to create game: %v", err)
	}
	if id != 1 {
		t.Errorf("expected first id 1, got %d", id)
	}

	second, err := svc.Create(validGameInput())
	if err != nil {
		t.Fatalf("failed to create game: %v", err)
	}

	games, err := svc.List()
	if err != nil {
		t.Fatalf("failed to list games: %v", err)
	}
	if len(games) != 2 || games[0].ID != second {
		t.Errorf("expected newest game first, got %+v", games)
	}

	g := games[0]
	if g.Player1Name != "동혁" || g.Player3Score != 18000 {
		t.Errorf("fields did not round-trip: %+v", g)
	}
	if ok, _ := regexp.MatchString(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}$`, g.CreatedAt); !ok {
		t.Errorf("expected minute-precision timestamp, got %q", g.CreatedAt)
	}
}

func TestGameCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]interface{})
		message string
	}{
		{
			name:    "missing score field",
			mutate:  func(in map[string]interface{}) { delete(in, "player4_score") },
			message: "missing fields",
		},
		{
			name:    "missing name field",
			mutate:  func(in map[string]interface{}) { delete(in, "player1_name") },
			message: "missing fields",
		},
		{
			name:    "blank name",
			mutate:  func(in map[string]interface{}) { in["player2_name"] = "   " },
			message: "all player names required",
		},
		{
			name:    "non-numeric score string",
			mutate:  func(in map[string]interface{}) { in["player3_score"] = "많이" },
			message: "scores must be integers",
		},
		{
			name:    "score of wrong type",
			mutate:  func(in map[string]interface{}) { in["player1_score"] = []interface{}{1} },
			message: "scores must be integers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := newMockRepos()
			svc := newGameService(repos)

			input := validGameInput()
			tt.mutate(input)

			_, err := svc.Create(input)
			if err == nil {
				t.Fatal("expected validation error")
			}

			var appErr *apperrors.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("expected AppError, got %v", err)
			}
			if appErr.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, appErr.Message)
			}

			// Rejected input must not leave a row behind
			games, _ := svc.List()
			if len(games) != 0 {
				t.Errorf("expected no games after rejected create, got %d", len(games))
			}
		})
	}
}

func TestGameDelete(t *testing.T) {
	repos := newMockRepos()
	svc := newGameService(repos)

	id, err := svc.Create(validGameInput())
	if err != nil {
		t.Fatalf("failed to create game: %v", err)
	}

	if err := svc.Delete(id); err != nil {
		t.Fatalf("failed to delete game: %v", err)
	}

	err = svc.Delete(id)
	if err == nil {
		t.Fatal("expected not-found on second delete")
	}
	if code := validationCode(t, err); code != apperrors.ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", code)
	}
}
