package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"

	apperrors "github.com/madangclub/mahjong-rating/internal/errors"
	"github.com/madangclub/mahjong-rating/internal/logger"
	"github.com/madangclub/mahjong-rating/internal/models"
	"github.com/madangclub/mahjong-rating/internal/repository"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Field aliases checked in priority order: the machine-readable English
// header first, then the Korean display headers the exported file and
// hand-edited spreadsheets use.
var (
	timeAliases = []string{"created_at", "시간"}

	nameAliases = [4][]string{
		{"player1_name", "P1 이름", "P1이름"},
		{"player2_name", "P2 이름", "P2이름"},
		{"player3_name", "P3 이름", "P3이름"},
		{"player4_name", "P4 이름", "P4이름"},
	}

	scoreAliases = [4][]string{
		{"player1_score", "P1 점수", "P1점수"},
		{"player2_score", "P2 점수", "P2점수"},
		{"player3_score", "P3 점수", "P3점수"},
		{"player4_score", "P4 점수", "P4점수"},
	}
)

// importServiceImpl implements ImportService
type importServiceImpl struct {
	repos *repository.Repositories
	log   logger.Logger
}

// newImportService creates a new import service implementation
func newImportService(repos *repository.Repositories, log logger.Logger) ImportService {
	return &importServiceImpl{repos: repos, log: log}
}

// Import decodes and parses an uploaded CSV, then appends one game row per
// resolvable input row. Rows whose four names are all blank are skipped;
// unreadable score fields default to zero. This path deliberately skips the
// strict validation of the JSON create path. The batch runs in a single
// transaction, matching the one-commit-after-the-loop source behavior.
func (s *importServiceImpl) Import(raw []byte) (int, error) {
	text, err := decodeUpload(raw)
	if err != nil {
		return 0, err
	}

	delimiter := sniffDelimiter(text)

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return 0, apperrors.DecodeError("CSV 파일을 해석할 수 없습니다.", err)
	}
	if len(records) < 2 {
		s.log.Info("[import] inserted rows: 0")
		return 0, nil
	}

	headers := headerIndex(records[0])
	rows := records[1:]

	inserted := 0
	err = s.repos.Tx.WithTransaction(func(repos *repository.Repositories) error {
		for _, row := range rows {
			game, ok := mapRow(headers, row)
			if !ok {
				continue
			}
			if _, err := repos.Game.Create(game); err != nil {
				return fmt.Errorf("failed to insert imported row: %w", err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info(fmt.Sprintf("[import] inserted rows: %d", inserted))
	return inserted, nil
}

// decodeUpload turns raw uploaded bytes into text, attempting UTF-8 with
// BOM, plain UTF-8, then EUC-KR (CP949) in that order.
func decodeUpload(raw []byte) (string, error) {
	if bytes.HasPrefix(raw, utf8BOM) {
		body := raw[len(utf8BOM):]
		if utf8.Valid(body) {
			return string(body), nil
		}
	}

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	decoded, err := korean.EUCKR.NewDecoder().Bytes(raw)
	if err == nil && !bytes.ContainsRune(decoded, utf8.RuneError) {
		return string(decoded), nil
	}

	return "", apperrors.DecodeError(
		"알 수 없는 인코딩입니다. UTF-8 또는 CP949로 저장해주세요.", err)
}

// sniffDelimiter picks comma or semicolon by counting occurrences over the
// first five lines. Comma wins ties and empty samples.
func sniffDelimiter(text string) rune {
	lines := strings.SplitN(text, "\n", 6)
	if len(lines) == 6 {
		lines = lines[:5]
	}

	commas, semicolons := 0, 0
	for _, line := range lines {
		commas += strings.Count(line, ",")
		semicolons += strings.Count(line, ";")
	}

	if semicolons > commas {
		return ';'
	}
	return ','
}

// headerIndex maps trimmed header names to their column positions
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	return index
}

// pick returns the first present, non-empty value among the alias columns
func pick(headers map[string]int, row []string, aliases []string) string {
	for _, alias := range aliases {
		idx, ok := headers[alias]
		if !ok || idx >= len(row) {
			continue
		}
		if row[idx] != "" {
			return row[idx]
		}
	}
	return ""
}

// pickInt resolves a score column permissively: decimal-looking values are
// truncated, anything unparseable becomes zero.
func pickInt(headers map[string]int, row []string, aliases []string) int {
	val := pick(headers, row, aliases)
	if val == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return 0
	}
	return int(f)
}

// mapRow resolves one input row into a game record. Returns ok=false for
// rows whose four resolved names are all blank.
func mapRow(headers map[string]int, row []string) (*models.Game, bool) {
	createdAt := pick(headers, row, timeAliases)
	if createdAt == "" {
		createdAt = time.Now().Format(models.TimestampLayout)
	}

	var names [4]string
	for i := 0; i < 4; i++ {
		names[i] = pick(headers, row, nameAliases[i])
	}
	if names[0] == "" && names[1] == "" && names[2] == "" && names[3] == "" {
		return nil, false
	}

	var scores [4]int
	for i := 0; i < 4; i++ {
		scores[i] = pickInt(headers, row, scoreAliases[i])
	}

	return &models.Game{
		CreatedAt:    createdAt,
		Player1Name:  names[0],
		Player2Name:  names[1],
		Player3Name:  names[2],
		Player4Name:  names[3],
		Player1Score: scores[0],
		Player2Score: scores[1],
		Player3Score: scores[2],
		Player4Score: scores[3],
	}, true
}
