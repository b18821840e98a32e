package parquetio

import (
	"io"
	"sort"

	"github.com/gyeh/providerstats/internal/model"
	"github.com/gyeh/providerstats/internal/normalize"
)

const readBatch = 1024

// FileStats summarizes a snapshot without loading it into a database.
type FileStats struct {
	Path      string
	SHA256    string
	Rows      int64
	Providers int
	Years     []YearCount
}

// YearCount is the number of rows for one year, newest year first in FileStats.
type YearCount struct {
	Year int
	Rows int64
}

// Stats reads the whole snapshot at path and counts rows per year and
// distinct providers.
func Stats(path string) (*FileStats, error) {
	sum, err := normalize.FileHash(path)
	if err != nil {
		return nil, err
	}

	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	st := &FileStats{Path: path, SHA256: sum}
	byYear := make(map[int]int64)
	npis := make(map[string]struct{})

	buf := make([]model.ServiceLineRow, readBatch)
	for {
		n, readErr := r.Read(buf)
		for i := 0; i < n; i++ {
			st.Rows++
			byYear[int(buf[i].Year)]++
			npis[buf[i].NPI] = struct{}{}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, readErr
		}
	}

	st.Providers = len(npis)
	for y, c := range byYear {
		st.Years = append(st.Years, YearCount{Year: y, Rows: c})
	}
	sort.Slice(st.Years, func(i, j int) bool {
		return st.Years[i].Year > st.Years[j].Year
	})
	return st, nil
}
