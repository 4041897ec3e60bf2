package sheetsclient

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// SetCellWrap ativa quebra de linha na célula (os campos de detalhe recebem
// texto multilinha e o template depende do word-wrap do renderizador).
func (c *SheetsClient) SetCellWrap(ctx context.Context, docID, coordinate string) error {
	svc, err := c.sheetsService(ctx)
	if err != nil {
		return err
	}

	gid, err := c.firstSheetID(ctx, svc, docID)
	if err != nil {
		return err
	}

	gridRange, err := a1ToGridRange(coordinate, gid)
	if err != nil {
		return err
	}

	_, err = svc.Spreadsheets.BatchUpdate(docID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				RepeatCell: &sheets.RepeatCellRequest{
					Range: gridRange,
					Cell: &sheets.CellData{
						UserEnteredFormat: &sheets.CellFormat{
							WrapStrategy: "WRAP",
						},
					},
					Fields: "userEnteredFormat.wrapStrategy",
				},
			},
		},
	}).Context(ctx).Do()

	return err
}

// InsertPageBreak insere uma linha vazia no índice dado como marcação visual
// de quebra de página no PDF exportado.
func (c *SheetsClient) InsertPageBreak(ctx context.Context, docID string, rowIndex int64) error {
	svc, err := c.sheetsService(ctx)
	if err != nil {
		return err
	}

	gid, err := c.firstSheetID(ctx, svc, docID)
	if err != nil {
		return err
	}

	_, err = svc.Spreadsheets.BatchUpdate(docID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				InsertDimension: &sheets.InsertDimensionRequest{
					Range: &sheets.DimensionRange{
						SheetId:    gid,
						Dimension:  "ROWS",
						StartIndex: rowIndex,
						EndIndex:   rowIndex + 1,
					},
					InheritFromBefore: false,
				},
			},
		},
	}).Context(ctx).Do()

	return err
}

func (c *SheetsClient) UnmergeCell(ctx context.Context, docID, coordinate string) error {
	svc, err := c.sheetsService(ctx)
	if err != nil {
		return err
	}

	gid, err := c.firstSheetID(ctx, svc, docID)
	if err != nil {
		return err
	}

	gridRange, err := a1ToGridRange(coordinate, gid)
	if err != nil {
		return err
	}

	_, err = svc.Spreadsheets.BatchUpdate(docID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				UnmergeCells: &sheets.UnmergeCellsRequest{
					Range: gridRange,
				},
			},
		},
	}).Context(ctx).Do()

	return err
}

// a1ToGridRange converte uma coordenada A1 de célula única (ex.: "C15") no
// GridRange meio-aberto que a API de formatação espera.
func a1ToGridRange(coordinate string, sheetID int64) (*sheets.GridRange, error) {
	coordinate = strings.ToUpper(strings.TrimSpace(coordinate))

	split := 0
	for split < len(coordinate) && coordinate[split] >= 'A' && coordinate[split] <= 'Z' {
		split++
	}
	if split == 0 || split == len(coordinate) {
		return nil, fmt.Errorf("sheets: invalid A1 coordinate %q", coordinate)
	}

	col := int64(0)
	for _, ch := range coordinate[:split] {
		col = col*26 + int64(ch-'A'+1)
	}

	row, err := strconv.ParseInt(coordinate[split:], 10, 64)
	if err != nil || row < 1 {
		return nil, fmt.Errorf("sheets: invalid A1 coordinate %q", coordinate)
	}

	return &sheets.GridRange{
		SheetId:          sheetID,
		StartRowIndex:    row - 1,
		EndRowIndex:      row,
		StartColumnIndex: col - 1,
		EndColumnIndex:   col,
	}, nil
}
