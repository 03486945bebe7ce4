package dataset

import (
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"sales-dashboard/internal/models"
)

const (
	batchSize  = 10000
	maxWorkers = 10
)

var Header = []string{"id", "name", "region", "category", "date", "sales", "profit"}

type LoadResult struct {
	Records []models.Record
	Skipped int
}

// LoadCSV reads a record store from a CSV file whose first row is Header.
// Rows are parsed in batches by a bounded worker pool; invalid rows and
// repeated ids are skipped and counted. The output keeps file order.
func LoadCSV(ctx context.Context, filename string) (LoadResult, error) {
	file, err := os.Open(filename)
	if err != nil {
		return LoadResult{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return ReadCSV(ctx, file)
}

func ReadCSV(ctx context.Context, r io.Reader) (LoadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return LoadResult{}, fmt.Errorf("empty file")
		}
		return LoadResult{}, fmt.Errorf("read header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return LoadResult{}, err
	}

	var result LoadResult
	seen := make(map[int]struct{})
	batch := make([][]string, 0, batchSize)

	for {
		select {
		case <-ctx.Done():
			return LoadResult{}, ctx.Err()
		default:
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if stderrors.As(err, &parseErr) {
				result.Skipped++
				continue
			}
			return LoadResult{}, fmt.Errorf("read row: %w", err)
		}

		batch = append(batch, row)
		if len(batch) >= batchSize {
			if err := processBatch(ctx, batch, seen, &result); err != nil {
				return LoadResult{}, err
			}
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := processBatch(ctx, batch, seen, &result); err != nil {
			return LoadResult{}, err
		}
	}

	if len(result.Records) == 0 {
		return result, fmt.Errorf("no valid records found")
	}
	return result, nil
}

// checkHeader requires the columns of Header in order, ignoring case,
// surrounding space and a leading byte order mark.
func checkHeader(header []string) error {
	got := make([]string, len(header))
	for i, h := range header {
		got[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}
	if !slices.Equal(got, Header) {
		return fmt.Errorf("unexpected header %q, want %q", strings.Join(header, ","), strings.Join(Header, ","))
	}
	return nil
}

// processBatch parses one batch concurrently and merges it in file order.
// A row whose id was already loaded is skipped, so the first occurrence wins.
func processBatch(ctx context.Context, batch [][]string, seen map[int]struct{}, result *LoadResult) error {
	type parsedRow struct {
		record models.Record
		valid  bool
	}

	parsed := make([]parsedRow, len(batch))

	var g errgroup.Group
	g.SetLimit(maxWorkers)

	for i, row := range batch {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			rec, err := parseRecord(row)
			if err != nil {
				return nil
			}
			parsed[i] = parsedRow{record: rec, valid: true}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, p := range parsed {
		if !p.valid {
			result.Skipped++
			continue
		}
		if _, dup := seen[p.record.ID]; dup {
			result.Skipped++
			continue
		}
		seen[p.record.ID] = struct{}{}
		result.Records = append(result.Records, p.record)
	}
	return nil
}

func parseRecord(row []string) (models.Record, error) {
	if len(row) < len(Header) {
		return models.Record{}, fmt.Errorf("insufficient columns")
	}

	id, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return models.Record{}, fmt.Errorf("id: %w", err)
	}

	name := strings.TrimSpace(row[1])
	if name == "" {
		return models.Record{}, fmt.Errorf("empty name")
	}

	region := models.Region(strings.TrimSpace(row[2]))
	if !region.Valid() {
		return models.Record{}, fmt.Errorf("unknown region %q", region)
	}

	category := models.Category(strings.TrimSpace(row[3]))
	if !category.Valid() {
		return models.Record{}, fmt.Errorf("unknown category %q", category)
	}

	date := strings.TrimSpace(row[4])
	if _, err := time.Parse(dateLayout, date); err != nil {
		return models.Record{}, fmt.Errorf("date: %w", err)
	}

	sales, err := strconv.ParseInt(strings.TrimSpace(row[5]), 10, 64)
	if err != nil || sales < 0 {
		return models.Record{}, fmt.Errorf("invalid sales %q", row[5])
	}

	profit, err := strconv.ParseInt(strings.TrimSpace(row[6]), 10, 64)
	if err != nil || profit < 0 {
		return models.Record{}, fmt.Errorf("invalid profit %q", row[6])
	}

	return models.Record{
		ID:       id,
		Name:     name,
		Region:   region,
		Category: category,
		Date:     date,
		Sales:    sales,
		Profit:   profit,
	}, nil
}

// WriteCSV writes records in the layout LoadCSV reads.
func WriteCSV(w io.Writer, records []models.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			r.Name,
			string(r.Region),
			string(r.Category),
			r.Date,
			strconv.FormatInt(r.Sales, 10),
			strconv.FormatInt(r.Profit, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record %d: %w", r.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
