package services

import (
	"strings"
	"testing"

	"golang.org/x/text/encoding/korean"

	"github.com/madangclub/mahjong-rating/internal/models"
)

func TestExportRatingCSV(t *testing.T) {
	repos := newMockRepos()
	repos.Game.Create(&models.Game{
		CreatedAt:    "2025-03-14T21:07",
		Player1Name:  "동혁",
		Player2Name:  "민지",
		Player3Name:  "준호",
		Player4Name:  "서연",
		Player1Score: 40000,
		Player2Score: 30000,
		Player3Score: 20000,
		Player4Score: 10000,
	})
	repos.Game.Create(&models.Game{
		CreatedAt:    "2025-03-15T09:30",
		Player1Name:  "a", Player2Name: "b", Player3Name: "c", Player4Name: "d",
		Player1Score: 30000, Player2Score: 30000, Player3Score: 30000, Player4Score: 30000,
	})

	svc := newExportService(repos)
	encoded, err := svc.ExportRatingCSV()
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	// The document is CP949-encoded; decode it back for inspection
	decoded, err := korean.EUCKR.NewDecoder().Bytes(encoded)
	if err != nil {
		t.Fatalf("exported bytes are not valid CP949: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(decoded)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}

	wantHeader := "ID,시간,P1 이름,P1 점수,P1 pt,P2 이름,P2 점수,P2 pt,P3 이름,P3 점수,P3 pt,P4 이름,P4 점수,P4 pt"
	if lines[0] != wantHeader {
		t.Errorf("unexpected header:\n got %q\nwant %q", lines[0], wantHeader)
	}

	// Oldest row first, points formatted with one decimal digit
	want1 := "1,2025-03-14T21:07,동혁,40000,60.0,민지,30000,10.0,준호,20000,-20.0,서연,10000,-50.0"
	if lines[1] != want1 {
		t.Errorf("unexpected first row:\n got %q\nwant %q", lines[1], want1)
	}

	// All-tied row resolves ranks by seat order
	want2 := "2,2025-03-15T09:30,a,30000,50.0,b,30000,10.0,c,30000,-10.0,d,30000,-30.0"
	if lines[2] != want2 {
		t.Errorf("unexpected second row:\n got %q\nwant %q", lines[2], want2)
	}
}

func TestExportRatingCSVEmpty(t *testing.T) {
	svc := newExportService(newMockRepos())

	encoded, err := svc.ExportRatingCSV()
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	decoded, err := korean.EUCKR.NewDecoder().Bytes(encoded)
	if err != nil {
		t.Fatalf("exported bytes are not valid CP949: %v", err)
	}
	if !strings.HasPrefix(string(decoded), "ID,시간,") {
		t.Errorf("expected header-only document, got %q", string(decoded))
	}
}
