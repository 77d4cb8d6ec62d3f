package checklist

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/dannyyo/checklist-go/pkg/checklist/models"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeTemplate saves a one-sheet workbook with the given cell values.
func writeTemplate(t *testing.T, cells map[string]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for cell, value := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", cell, value))
	}
	path := filepath.Join(t.TempDir(), "template.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func templateOptions(t *testing.T, path string) Options {
	t.Helper()
	opts := DefaultOptions()
	opts.Template = path
	opts.OutputDir = t.TempDir()
	return opts
}

func pngImage(t *testing.T, name string) models.Image {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 12, 8))
	for x := 0; x < 12; x++ {
		img.Set(x, x%8, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return models.Image{Name: name, Data: buf.Bytes()}
}

func openReport(t *testing.T, path string) *excelize.File {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func cellValue(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell)
	require.NoError(t, err)
	return v
}
