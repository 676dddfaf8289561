// Package store keeps a history of generated request documents on disk.
//
// Each document is written to <dir>/<id>.xml and indexed in <dir>/requests.csv.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"k8s-profile-api/internal/config"
	"k8s-profile-api/internal/models"
	"k8s-profile-api/internal/utils"
)

const indexFile = "requests.csv"

var header = []string{"ID", "CreatedAt", "NodeCount", "NodeType", "StartKubernetes", "CNI", "KubeProxy", "TempFileSystemSize"}

// ErrNotFound is returned when no record matches the requested id.
var ErrNotFound = errors.New("request not found")

// Store is a CSV-indexed directory of request documents. It is safe for concurrent use.
type Store struct {
	dir string
	mu  sync.Mutex
	now func() time.Time
}

// New opens the store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

// Save writes doc and appends its record to the index.
func (s *Store) Save(params config.Params, doc []byte) (models.RequestRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := models.RequestRecord{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC().Truncate(time.Second),
		Params:    params,
	}

	if err := utils.WriteFile(s.docPath(rec.ID), doc); err != nil {
		return models.RequestRecord{}, fmt.Errorf("failed to write request document: %w", err)
	}
	if err := s.appendRecord(rec); err != nil {
		os.Remove(s.docPath(rec.ID))
		return models.RequestRecord{}, err
	}
	return rec, nil
}

// List returns all records in the order they were saved.
func (s *Store) List() ([]models.RequestRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readRecords()
}

// Get returns the record and document stored under id.
func (s *Store) Get(id string) (models.RequestRecord, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readRecords()
	if err != nil {
		return models.RequestRecord{}, nil, err
	}
	for _, rec := range records {
		if rec.ID != id {
			continue
		}
		doc, err := os.ReadFile(s.docPath(id))
		if err != nil {
			return models.RequestRecord{}, nil, fmt.Errorf("failed to read request document: %w", err)
		}
		return rec, doc, nil
	}
	return models.RequestRecord{}, nil, ErrNotFound
}

// Delete removes the record and document stored under id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readRecords()
	if err != nil {
		return err
	}

	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec.ID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return ErrNotFound
	}

	rows := [][]string{header}
	for _, rec := range kept {
		rows = append(rows, toRow(rec))
	}
	if err := s.writeRows(rows); err != nil {
		return err
	}
	if err := os.Remove(s.docPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove request document: %w", err)
	}
	return nil
}

func (s *Store) docPath(id string) string {
	return filepath.Join(s.dir, id+".xml")
}

func (s *Store) indexPath() string {
	return filepath.Join(s.dir, indexFile)
}

func (s *Store) appendRecord(rec models.RequestRecord) error {
	file, err := os.OpenFile(s.indexPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	fileInfo, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}

	if fileInfo.Size() == 0 {
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("failed to write headers to CSV file: %w", err)
		}
	}

	if err := writer.Write(toRow(rec)); err != nil {
		return fmt.Errorf("failed to write to CSV file: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}
	return nil
}

func (s *Store) writeRows(rows [][]string) error {
	file, err := os.CreateTemp(s.dir, "."+indexFile+"-*")
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer os.Remove(file.Name())

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		file.Close()
		return fmt.Errorf("failed to write CSV file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close CSV file: %w", err)
	}
	if err := os.Rename(file.Name(), s.indexPath()); err != nil {
		return fmt.Errorf("failed to replace CSV file: %w", err)
	}
	return nil
}

func (s *Store) readRecords() ([]models.RequestRecord, error) {
	file, err := os.Open(s.indexPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	var records []models.RequestRecord
	for i, row := range rows {
		if i == 0 {
			continue
		}
		rec, err := fromRow(row)
		if err != nil {
			return nil, fmt.Errorf("invalid CSV record on line %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func toRow(rec models.RequestRecord) []string {
	p := rec.Params
	return []string{
		rec.ID,
		rec.CreatedAt.Format(time.RFC3339),
		strconv.Itoa(p.NodeCount),
		p.NodeType,
		strconv.FormatBool(p.StartKubernetes),
		string(p.CNI),
		string(p.KubeProxy),
		strconv.Itoa(p.TempFileSystemSize),
	}
}

func fromRow(row []string) (models.RequestRecord, error) {
	if len(row) != len(header) {
		return models.RequestRecord{}, fmt.Errorf("expected %d columns, got %d", len(header), len(row))
	}

	createdAt, err := time.Parse(time.RFC3339, row[1])
	if err != nil {
		return models.RequestRecord{}, err
	}
	nodeCount, err := strconv.Atoi(row[2])
	if err != nil {
		return models.RequestRecord{}, err
	}
	startKubernetes, err := strconv.ParseBool(row[4])
	if err != nil {
		return models.RequestRecord{}, err
	}
	size, err := strconv.Atoi(row[7])
	if err != nil {
		return models.RequestRecord{}, err
	}

	return models.RequestRecord{
		ID:        row[0],
		CreatedAt: createdAt,
		Params: config.Params{
			NodeCount:          nodeCount,
			NodeType:           row[3],
			StartKubernetes:    startKubernetes,
			CNI:                config.CNI(row[5]),
			KubeProxy:          config.KubeProxyMode(row[6]),
			TempFileSystemSize: size,
		},
	}, nil
}
