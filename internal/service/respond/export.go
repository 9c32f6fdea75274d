package respond

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/domain"

	apperrors "github.com/kapu/contract-assistant-go/pkg/errors"
)

// Exporter writes data tables to disk as CSV and XLSX files. Export failures
// never propagate to the caller: a format that cannot be written is simply
// missing from the result.
type Exporter struct {
	dir    string
	logger *zap.Logger
}

func NewExporter(dir string, logger *zap.Logger) *Exporter {
	e := &Exporter{dir: dir, logger: logger}
	if err := os.MkdirAll(dir, os.FileMode(constants.Export.DirPermissions)); err != nil {
		logger.Error("Failed to create export directory, falling back to temp",
			zap.String("dir", dir), zap.Error(err))
		e.dir = filepath.Join(os.TempDir(), "exports")
		if err := os.MkdirAll(e.dir, os.FileMode(constants.Export.DirPermissions)); err != nil {
			e.logger.Error("Failed to create fallback export directory", zap.Error(err))
		}
	}
	return e
}

// Generate writes both export formats for the table and returns the files
// that were actually written
func (e *Exporter) Generate(table domain.DataTable) []domain.ExportFile {
	base := constants.Export.FilePrefix + "_" + time.Now().Format(constants.Export.TimestampLayout)

	var (
		mu    sync.Mutex
		files []domain.ExportFile
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		file, err := e.writeCSV(table, base+".csv")
		if err != nil {
			e.logger.Error("CSV export failed", zap.Error(err))
			return
		}
		mu.Lock()
		files = append(files, file)
		mu.Unlock()
	})
	wg.Go(func() {
		file, err := e.writeXLSX(table, base+".xlsx")
		if err != nil {
			e.logger.Error("Excel export failed", zap.Error(err))
			return
		}
		mu.Lock()
		files = append(files, file)
		mu.Unlock()
	})
	wg.Wait()

	// CSV first for stable link ordering
	for i, f := range files {
		if f.Format == "csv" && i != 0 {
			files[0], files[i] = files[i], files[0]
		}
	}
	return files
}

func (e *Exporter) writeCSV(table domain.DataTable, filename string) (domain.ExportFile, error) {
	path := filepath.Join(e.dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return domain.ExportFile{}, apperrors.NewExportError("failed to create csv file", "csv", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.Headers); err != nil {
		return domain.ExportFile{}, apperrors.NewExportError("failed to write csv headers", "csv", path, err)
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return domain.ExportFile{}, apperrors.NewExportError("failed to write csv rows", "csv", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return domain.ExportFile{}, apperrors.NewExportError("failed to flush csv", "csv", path, err)
	}

	return e.exportFile(filename, path, "csv"), nil
}

func (e *Exporter) writeXLSX(table domain.DataTable, filename string) (domain.ExportFile, error) {
	path := filepath.Join(e.dir, filename)

	book := excelize.NewFile()
	defer book.Close()

	sheet := book.GetSheetName(0)

	cell, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return domain.ExportFile{}, apperrors.NewExportError("failed to compute header cell", "xlsx", path, err)
	}
	if err := book.SetSheetRow(sheet, cell, &table.Headers); err != nil {
		return domain.ExportFile{}, apperrors.NewExportError("failed to write xlsx headers", "xlsx", path, err)
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return domain.ExportFile{}, apperrors.NewExportError("failed to compute row cell", "xlsx", path, err)
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := book.SetSheetRow(sheet, cell, &values); err != nil {
			return domain.ExportFile{}, apperrors.NewExportError("failed to write xlsx row", "xlsx", path, err)
		}
	}

	if err := book.SaveAs(path); err != nil {
		return domain.ExportFile{}, apperrors.NewExportError("failed to save xlsx", "xlsx", path, err)
	}

	return e.exportFile(filename, path, "xlsx"), nil
}

func (e *Exporter) exportFile(filename, path, format string) domain.ExportFile {
	return domain.ExportFile{
		ID:          uuid.New().String(),
		Filename:    filename,
		Path:        path,
		Format:      format,
		DownloadURL: constants.Export.DownloadPrefix + filename,
		CreatedAt:   time.Now(),
	}
}
