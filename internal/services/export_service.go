package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"github.com/madangclub/mahjong-rating/internal/repository"
	"github.com/madangclub/mahjong-rating/internal/scoring"
)

// ExportFilename is the fixed attachment filename for the rating CSV
const ExportFilename = "madang_majhong_rating.csv"

// ExportContentType declares the legacy single-byte encoding to Excel
const ExportContentType = "text/csv; charset=cp949"

// ratingHeader is the fixed 14-column header of the rating CSV
var ratingHeader = []string{
	"ID", "시간",
	"P1 이름", "P1 점수", "P1 pt",
	"P2 이름", "P2 점수", "P2 pt",
	"P3 이름", "P3 점수", "P3 pt",
	"P4 이름", "P4 점수", "P4 pt",
}

// exportServiceImpl implements ExportService
type exportServiceImpl struct {
	repos *repository.Repositories
}

// newExportService creates a new export service implementation
func newExportService(repos *repository.Repositories) ExportService {
	return &exportServiceImpl{repos: repos}
}

// ExportRatingCSV serializes all games (oldest first) with computed points
// and transcodes the document to CP949 for Excel compatibility. Runes the
// legacy encoding cannot represent are replaced rather than failing.
func (s *exportServiceImpl) ExportRatingCSV() ([]byte, error) {
	games, err := s.repos.Game.GetAll(repository.OldestFirst)
	if err != nil {
		return nil, fmt.Errorf("failed to load games for export: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(ratingHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, game := range games {
		names := game.Names()
		scores := game.Scores()
		pts := scoring.CalcPoints(scores)

		record := []string{strconv.FormatInt(game.ID, 10), game.CreatedAt}
		for seat := 0; seat < 4; seat++ {
			record = append(record,
				names[seat],
				strconv.Itoa(scores[seat]),
				fmt.Sprintf("%.1f", pts[seat]),
			)
		}

		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	encoder := encoding.ReplaceUnsupported(korean.EUCKR.NewEncoder())
	encoded, _, err := transform.Bytes(encoder, buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to encode csv as cp949: %w", err)
	}

	return encoded, nil
}
