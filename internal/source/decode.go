package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/timmy/machines-eye/internal/domain"
)

// Document formats.
const (
	FormatJSON    = "json"
	FormatJSONL   = "jsonl"
	FormatParquet = "parquet"
)

// parquetBatchSize is the number of rows read per GenericReader call.
const parquetBatchSize = 128

// DetectFormat picks the document format from an explicit override or the
// name's extension. Unknown extensions are treated as JSON.
func DetectFormat(name, override string) string {
	if override != "" {
		return strings.ToLower(override)
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".parquet":
		return FormatParquet
	case ".jsonl", ".ndjson":
		return FormatJSONL
	default:
		return FormatJSON
	}
}

// DecodeCorpus reads artwork records in the given format.
// Parameters:
//   - r: document bytes.
//   - format: one of FormatJSON, FormatJSONL or FormatParquet.
// Returns:
//   - []domain.ArtworkRecord: records in document order.
//   - error: non-nil if the document is malformed.
func DecodeCorpus(r io.Reader, format string) ([]domain.ArtworkRecord, error) {
	switch format {
	case FormatParquet:
		return decodeCorpusParquet(r)
	case FormatJSONL:
		return decodeCorpusJSONL(r)
	case FormatJSON, "":
		return decodeCorpusJSON(r)
	default:
		return nil, fmt.Errorf("unsupported corpus format: %s (supported: json, jsonl, parquet)", format)
	}
}

// decodeCorpusJSON accepts either {"works": [...]} or a bare array.
func decodeCorpusJSON(r io.Reader) ([]domain.ArtworkRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var works []domain.ArtworkRecord
		if err := json.Unmarshal(trimmed, &works); err != nil {
			return nil, fmt.Errorf("failed to parse corpus: %w", err)
		}
		return works, nil
	}

	var doc domain.CorpusDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse corpus: %w", err)
	}
	if doc.Works == nil {
		return nil, errors.New("failed to parse corpus: missing \"works\" array")
	}
	return doc.Works, nil
}

func decodeCorpusJSONL(r io.Reader) ([]domain.ArtworkRecord, error) {
	var works []domain.ArtworkRecord
	scanner := bufio.NewScanner(r)

	// Increase buffer size for large JSON lines
	const maxCapacity = 10 * 1024 * 1024
	scanner.Buffer(make([]byte, 64*1024), maxCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var record domain.ArtworkRecord
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}
		works = append(works, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading corpus: %w", err)
	}
	return works, nil
}

func decodeCorpusParquet(r io.Reader) ([]domain.ArtworkRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet corpus: %w", err)
	}

	pf, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[domain.ArtworkRecord](pf)
	defer reader.Close()

	works := make([]domain.ArtworkRecord, 0, pf.NumRows())
	rows := make([]domain.ArtworkRecord, parquetBatchSize)
	for {
		n, err := reader.Read(rows)
		works = append(works, rows[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}

	return works, nil
}

// WriteCorpusParquet encodes records as a Parquet file.
func WriteCorpusParquet(w io.Writer, works []domain.ArtworkRecord) error {
	writer := parquet.NewGenericWriter[domain.ArtworkRecord](w)
	if _, err := writer.Write(works); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet: %w", err)
	}
	return nil
}

// DecodeExhibition reads the curated exhibition document.
func DecodeExhibition(r io.Reader) (domain.ExhibitionDocument, error) {
	var doc domain.ExhibitionDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return domain.ExhibitionDocument{}, fmt.Errorf("failed to parse exhibition: %w", err)
	}
	return doc, nil
}
