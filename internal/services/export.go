package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tupyy/achievement-tracker/internal/models"
)

const (
	defaultSheet   = "Sheet1"
	maxSheetName   = 31
	emptyWorkbook  = "Collections"
	invalidInSheet = `:\/?*[]`
)

var exportHeader = []any{"App ID", "Game", "Achievement API name", "Name", "Icon"}

// Export writes every collection to w as an xlsx workbook, one sheet per collection.
func (c *CollectionService) Export(ctx context.Context, w io.Writer) error {
	collections, err := c.List(ctx)
	if err != nil {
		return err
	}
	return WriteWorkbook(w, collections)
}

// WriteWorkbook renders collections as a workbook. With no collections the
// workbook holds a single sheet with the header row.
func WriteWorkbook(w io.Writer, collections []models.Collection) error {
	f := excelize.NewFile()
	defer f.Close()

	if len(collections) == 0 {
		collections = []models.Collection{{Name: emptyWorkbook}}
	}

	used := make(map[string]struct{}, len(collections))
	first := ""
	for _, col := range collections {
		sheet := uniqueSheetName(col.Name, used)
		if first == "" {
			first = sheet
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
		}

		if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		for i, e := range col.Entries {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			row := []any{e.AppID, e.GameName, e.APIName, e.DisplayName, ResolveIcon(models.MergedAchievement{AppID: e.AppID, Icon: e.Icon})}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return fmt.Errorf("failed to write row %d of %q: %w", i, col.Name, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// uniqueSheetName maps a collection name to a valid sheet name not in used.
func uniqueSheetName(name string, used map[string]struct{}) string {
	base := strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidInSheet, r) {
			return '_'
		}
		return r
	}, strings.Trim(name, "'"))
	if strings.TrimSpace(base) == "" {
		base = emptyWorkbook
	}
	base = truncate(base, maxSheetName)

	candidate := base
	for n := 2; ; n++ {
		if _, ok := used[strings.ToLower(candidate)]; !ok {
			break
		}
		suffix := fmt.Sprintf(" (%d)", n)
		candidate = truncate(base, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(candidate)] = struct{}{}
	return candidate
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
