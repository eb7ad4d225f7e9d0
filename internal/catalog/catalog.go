// Package catalog loads seed catalogs of categories and dishes and writes them
// through the service layer.
package catalog

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"foodhub/internal/model"
)

// Record kinds accepted in a seed file.
const (
	KindCategory = "category"
	KindDish     = "dish"
)

// Catalog holds the entries of one seed file in file order.
type Catalog struct {
	Categories []model.CreateCategoryRequest
	Dishes     []model.CreateDishRequest
}

// Size returns the total number of entries.
func (c *Catalog) Size() int {
	return len(c.Categories) + len(c.Dishes)
}

// Loader defines the interface for loading seed catalogs.
type Loader interface {
	// Load reads the named seed file. Names ending in .gz are gzip-compressed.
	Load(ctx context.Context, name string) (*Catalog, error)
}

type recordKind struct {
	Kind string `json:"kind"`
}

// Decode reads newline-delimited JSON records. Blank lines are ignored.
func Decode(ctx context.Context, r io.Reader) (*Catalog, error) {
	cat := &Catalog{
		Categories: []model.CreateCategoryRequest{},
		Dishes:     []model.CreateDishRequest{},
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		if lineNo%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var kind recordKind
		if err := json.Unmarshal(line, &kind); err != nil {
			return nil, fmt.Errorf("line %d: invalid record: %w", lineNo, err)
		}

		switch strings.ToLower(kind.Kind) {
		case KindCategory:
			var req model.CreateCategoryRequest
			if err := json.Unmarshal(line, &req); err != nil {
				return nil, fmt.Errorf("line %d: invalid category: %w", lineNo, err)
			}
			cat.Categories = append(cat.Categories, req)
		case KindDish:
			var req model.CreateDishRequest
			if err := json.Unmarshal(line, &req); err != nil {
				return nil, fmt.Errorf("line %d: invalid dish: %w", lineNo, err)
			}
			cat.Dishes = append(cat.Dishes, req)
		default:
			return nil, fmt.Errorf("line %d: unknown record kind %q", lineNo, kind.Kind)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading seed records: %w", err)
	}

	return cat, nil
}

// decodeNamed decodes r, unwrapping gzip when name ends in .gz.
func decodeNamed(ctx context.Context, name string, r io.Reader) (*Catalog, error) {
	if strings.HasSuffix(name, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	return Decode(ctx, r)
}
