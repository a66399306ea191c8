package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "league-results-backend/internal/errors"

	"github.com/dimchansky/utfbom"
	"golang.org/x/text/encoding/unicode"
)

// noLapSentinel is what the simulator writes as bestLap when a driver set no valid lap
const noLapSentinel = math.MaxInt32

// maxLapMs is the largest bestLap that still fits a time.Duration
const maxLapMs = math.MaxInt64 / int64(time.Millisecond)

// decodeResultText turns an uploaded result file into UTF-8 JSON text. A UTF-8 BOM is
// dropped and UTF-16 files (the simulator's native format) are transcoded. Anything
// else has to be valid UTF-8 already.
func decodeResultText(payload []byte) ([]byte, error) {
	rd, enc := utfbom.Skip(bytes.NewReader(payload))
	body, err := io.ReadAll(rd)
	if err != nil {
		return nil, apperrors.NewInvalidPayloadError("unreadable file", err)
	}

	switch enc {
	case utfbom.UTF16LittleEndian:
		return decodeUTF16(body, unicode.LittleEndian)
	case utfbom.UTF16BigEndian:
		return decodeUTF16(body, unicode.BigEndian)
	case utfbom.UTF32LittleEndian, utfbom.UTF32BigEndian:
		return nil, apperrors.NewInvalidPayloadError("unsupported text encoding "+enc.String(), nil)
	}

	if !utf8.Valid(body) {
		return nil, apperrors.NewInvalidPayloadError("file is not UTF-8 text", nil)
	}
	return body, nil
}

func decodeUTF16(body []byte, order unicode.Endianness) ([]byte, error) {
	if len(body)%2 != 0 {
		return nil, apperrors.NewInvalidPayloadError("truncated UTF-16 text", nil)
	}
	text, err := unicode.UTF16(order, unicode.IgnoreBOM).NewDecoder().Bytes(body)
	if err != nil {
		return nil, apperrors.NewInvalidPayloadError("file is not UTF-16 text", err)
	}
	return text, nil
}

// jsonObject is a JSON object whose members are decoded on demand. Getters return
// zero values for members that are missing or of the wrong type.
type jsonObject map[string]json.RawMessage

func (o jsonObject) object(key string) jsonObject {
	raw, ok := o[key]
	if !ok {
		return nil
	}
	var child jsonObject
	if err := json.Unmarshal(raw, &child); err != nil {
		return nil
	}
	return child
}

func (o jsonObject) str(key string) string {
	raw, ok := o[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// integer reads a numeric member. Fractional values are truncated.
func (o jsonObject) integer(key string) (int64, bool) {
	raw, ok := o[key]
	if !ok {
		return 0, false
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return 0, false
	}
	if i, err := n.Int64(); err == nil {
		return i, true
	}
	f, err := n.Float64()
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || math.Abs(f) > math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// leaderboardLines decodes the document and returns sessionResult.leaderBoardLines.
// A missing or mistyped path yields an empty sequence; a document that is not a JSON
// object is an invalid payload.
func leaderboardLines(text []byte) ([]json.RawMessage, error) {
	var root jsonObject
	if err := json.Unmarshal(text, &root); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, apperrors.NewInvalidPayloadError("document root is not an object", err)
		}
		return nil, apperrors.NewInvalidPayloadError("malformed JSON", err)
	}
	if root == nil {
		return nil, apperrors.NewInvalidPayloadError("document root is not an object", nil)
	}

	raw, ok := root.object("sessionResult")["leaderBoardLines"]
	if !ok {
		return nil, nil
	}
	var lines []json.RawMessage
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, nil
	}
	return lines, nil
}

// LeaderboardEntry is the normalized view of one leaderboard line
type LeaderboardEntry struct {
	Index      int
	FirstName  string
	LastName   string
	ShortName  string
	TeamName   string
	CarModel   string
	RaceNumber *int64
	Position   *int64
	BestLapMs  int64
	Raw        json.RawMessage
}

// FullName is "first last" with surrounding whitespace removed
func (e *LeaderboardEntry) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// HasBestLap reports whether the entry carries a usable best lap. Values too large
// for a duration count as no lap.
func (e *LeaderboardEntry) HasBestLap() bool {
	return e.BestLapMs > 0 && e.BestLapMs != noLapSentinel && e.BestLapMs <= maxLapMs
}

// parseLeaderboardEntry reads one line. It fails only when the line is not an object.
func parseLeaderboardEntry(index int, raw json.RawMessage) (*LeaderboardEntry, bool) {
	var line jsonObject
	if err := json.Unmarshal(raw, &line); err != nil || line == nil {
		return nil, false
	}

	driver := line.object("currentDriver")
	car := line.object("car")
	timing := line.object("timing")

	entry := &LeaderboardEntry{
		Index:     index,
		FirstName: driver.str("firstName"),
		LastName:  driver.str("lastName"),
		ShortName: strings.TrimSpace(driver.str("shortName")),
		TeamName:  strings.TrimSpace(car.str("teamName")),
		CarModel:  car.str("carModel"),
		Raw:       raw,
	}
	if entry.CarModel == "" {
		// the simulator's own files carry a numeric model id
		if id, ok := car.integer("carModel"); ok {
			entry.CarModel = strconv.FormatInt(id, 10)
		}
	}
	if n, ok := car.integer("raceNumber"); ok {
		entry.RaceNumber = &n
	}
	if n, ok := line.integer("position"); ok {
		entry.Position = &n
	}
	if n, ok := timing.integer("bestLap"); ok {
		entry.BestLapMs = n
	}
	return entry, true
}
