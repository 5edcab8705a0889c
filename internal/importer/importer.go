package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"coffee-subscription/internal/domain"
	"coffee-subscription/internal/validation"

	"github.com/shopspring/decimal"
)

type MachineWriter interface {
	UpsertMachine(ctx context.Context, m domain.Machine) error
}

// CSVImporter reads a machine export and upserts machines. A row with an id
// starts a machine; following rows without id add features to it.
type CSVImporter struct {
	reader *csv.Reader
	repo   MachineWriter
}

func NewCSVImporter(r io.Reader, repo MachineWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{reader: csvr, repo: repo}
}

type csvRow struct {
	ID          string
	Name        string
	Description string
	Image       string
	Price       string
	Monthly24   string
	Monthly36   string
	Monthly48   string
	Capacity    string
	Features    []domain.Feature
}

// Run parses the file and upserts machines in file order.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["id"]; !ok {
		return 0, errors.New("missing id column")
	}

	var (
		current  *csvRow
		imported int
		line     = 1
	)

	for {
		record, err := i.reader.Read()
		line++
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row %d: %w", line, err)
		}

		row := parseRow(record, index)
		if row == nil {
			continue
		}

		if row.ID != "" {
			if current != nil {
				if err := i.save(ctx, current); err != nil {
					return imported, err
				}
				imported++
			}
			current = row
			continue
		}

		if current == nil {
			return imported, fmt.Errorf("row %d: feature row before any machine", line)
		}
		current.Features = append(current.Features, row.Features...)
	}

	if current != nil {
		if err := i.save(ctx, current); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	m, err := row.machine()
	if err != nil {
		return fmt.Errorf("machine %q: %w", row.ID, err)
	}
	if err := i.repo.UpsertMachine(ctx, m); err != nil {
		return fmt.Errorf("upsert machine %q: %w", row.ID, err)
	}
	return nil
}

func (row *csvRow) machine() (domain.Machine, error) {
	m := domain.Machine{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Image:       row.Image,
	}

	var err error
	for _, f := range []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"price", row.Price, &m.Price},
		{"monthlyPrice24", row.Monthly24, &m.MonthlyPrice24},
		{"monthlyPrice36", row.Monthly36, &m.MonthlyPrice36},
		{"monthlyPrice48", row.Monthly48, &m.MonthlyPrice48},
	} {
		if *f.dst, err = parsePrice(f.raw); err != nil {
			return domain.Machine{}, fmt.Errorf("%s: %w", f.name, err)
		}
	}

	// The capacity column wins; otherwise the cup range comes from a "cafe"
	// feature label.
	label := row.Capacity
	if label == "" {
		for _, f := range row.Features {
			if f.Type == domain.FeatureCafe {
				label = f.Label
				break
			}
		}
	}
	m.MinCupsPerDay, m.MaxCupsPerDay = domain.ParseCapacityLabel(label)

	m.Features = append([]domain.Feature(nil), row.Features...)
	if m.HasCapacity() && !m.HasFeature(domain.FeatureCafe) {
		m.Features = append([]domain.Feature{domain.CapacityFeature(m.MinCupsPerDay, m.MaxCupsPerDay)}, m.Features...)
	}
	if m.Features == nil {
		m.Features = []domain.Feature{}
	}

	for _, f := range m.Features {
		if !f.Type.Valid() {
			return domain.Machine{}, fmt.Errorf("unknown feature type %q", f.Type)
		}
	}
	if err := validation.Struct(m); err != nil {
		return domain.Machine{}, err
	}
	return m, nil
}

// parsePrice accepts "2038", "2038.50" and the French "2 038,50".
func parsePrice(raw string) (decimal.Decimal, error) {
	s := strings.NewReplacer(" ", "", "\u00a0", "", "€", "", ",", ".").Replace(strings.TrimSpace(raw))
	if s == "" {
		return decimal.Zero, errors.New("required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", raw)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative amount %q", raw)
	}
	return d, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) *csvRow {
	row := &csvRow{
		ID:          pick(record, index, "id"),
		Name:        pick(record, index, "name"),
		Description: pick(record, index, "description"),
		Image:       pick(record, index, "image"),
		Price:       pick(record, index, "price"),
		Monthly24:   pick(record, index, "monthlyPrice24"),
		Monthly36:   pick(record, index, "monthlyPrice36"),
		Monthly48:   pick(record, index, "monthlyPrice48"),
		Capacity:    pick(record, index, "capacity"),
	}

	featureType := strings.ToLower(pick(record, index, "feature.type"))
	featureLabel := pick(record, index, "feature.label")
	if featureType != "" || featureLabel != "" {
		row.Features = []domain.Feature{{Type: domain.FeatureType(featureType), Label: featureLabel}}
	}

	if row.ID == "" && len(row.Features) == 0 {
		return nil
	}
	return row
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
