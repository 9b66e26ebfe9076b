package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yumyai/atacrna/pkg/model"

	_ "modernc.org/sqlite"
)

// Store holds the gene (exon) and accessibility-peak reference tables.
type Store struct {
	db   *sql.DB
	path string
}

// Open migrates and opens the sqlite database at path, creating it and its
// directory when missing.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	if err := Migrate(path); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}

	return &Store{db: conn, path: path}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Path() string {
	return s.path
}

// GeneRecords returns the exon rows of gene in insertion order.
func (s *Store) GeneRecords(ctx context.Context, gene string) ([]model.GeneRecord, error) {

	qstring := `SELECT gene_name, start, "end", strand FROM genes WHERE gene_name = ? ORDER BY rowid`

	stm, err := s.db.PrepareContext(ctx, qstring)
	if err != nil {
		return nil, err
	}
	defer stm.Close()

	rows, err := stm.QueryContext(ctx, gene)
	if err != nil {
		return nil, fmt.Errorf("query genes for %s: %w", gene, err)
	}
	defer rows.Close()

	var results []model.GeneRecord
	for rows.Next() {
		var r model.GeneRecord
		if err := rows.Scan(&r.GeneName, &r.Start, &r.End, &r.Strand); err != nil {
			return nil, fmt.Errorf("scan gene row: %w", err)
		}
		results = append(results, r)
	}

	return results, rows.Err()
}

// Peaks returns the accessibility peaks of gene in insertion order.
func (s *Store) Peaks(ctx context.Context, gene string) ([]model.AccessibilityPeak, error) {

	qstring := `SELECT gene_name, sample_id, start, "end" FROM peaks WHERE gene_name = ? ORDER BY rowid`

	stm, err := s.db.PrepareContext(ctx, qstring)
	if err != nil {
		return nil, err
	}
	defer stm.Close()

	rows, err := stm.QueryContext(ctx, gene)
	if err != nil {
		return nil, fmt.Errorf("query peaks for %s: %w", gene, err)
	}
	defer rows.Close()

	var results []model.AccessibilityPeak
	for rows.Next() {
		var p model.AccessibilityPeak
		if err := rows.Scan(&p.GeneName, &p.SampleID, &p.Start, &p.End); err != nil {
			return nil, fmt.Errorf("scan peak row: %w", err)
		}
		results = append(results, p)
	}

	return results, rows.Err()
}

// GeneNames lists every gene with exon records, sorted.
func (s *Store) GeneNames(ctx context.Context) ([]string, error) {

	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT gene_name FROM genes ORDER BY gene_name`)
	if err != nil {
		return nil, fmt.Errorf("query gene names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan gene name: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// InsertGenes appends exon rows in one transaction.
func (s *Store) InsertGenes(ctx context.Context, records []model.GeneRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("fail to begin tx %w", err)
	}
	defer tx.Rollback()

	stm, err := tx.PrepareContext(ctx, `INSERT INTO genes (gene_name, start, "end", strand) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stm.Close()

	for _, r := range records {
		if _, err := stm.ExecContext(ctx, r.GeneName, r.Start, r.End, r.Strand); err != nil {
			return fmt.Errorf("insert gene %s: %w", r.GeneName, err)
		}
	}
	return tx.Commit()
}

// InsertPeaks appends peak rows in one transaction.
func (s *Store) InsertPeaks(ctx context.Context, peaks []model.AccessibilityPeak) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("fail to begin tx %w", err)
	}
	defer tx.Rollback()

	stm, err := tx.PrepareContext(ctx, `INSERT INTO peaks (gene_name, sample_id, start, "end") VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stm.Close()

	for _, p := range peaks {
		if _, err := stm.ExecContext(ctx, p.GeneName, p.SampleID, p.Start, p.End); err != nil {
			return fmt.Errorf("insert peak %s: %w", p.GeneName, err)
		}
	}
	return tx.Commit()
}
