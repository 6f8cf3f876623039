package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"

	"staffdeck/internal/engine"
	"staffdeck/internal/model"
)

// ToCSV writes the rows in their current filtered and sorted order, one
// column per grid column. Cells are rendered with the same formatting the
// grid uses.
func ToCSV(path string, cols []model.Column, rows []engine.Row) error {
	if len(rows) == 0 {
		return errors.New("no rows")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.ID
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := make([]string, len(cols))
		for i, c := range cols {
			rec[i] = c.Value(r.User)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// ToNDJSON writes one derived record per line, age included.
func ToNDJSON(path string, rows []engine.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	defer bw.Flush()
	for _, r := range rows {
		b, err := json.Marshal(r.User)
		if err != nil {
			return err
		}
		if _, err := bw.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}
