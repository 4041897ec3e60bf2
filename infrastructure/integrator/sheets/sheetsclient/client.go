package sheetsclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/bitekps/estimate-api/internal/config"
	"github.com/bitekps/estimate-api/internal/domain"
)

type Client interface {
	BatchWriteCells(ctx context.Context, docID string, updates []domain.CellUpdate) error
	AppendRow(ctx context.Context, docID string, row domain.SummaryRow) error
	RenameDocument(ctx context.Context, docID, title string) error
	ExportAsPDF(ctx context.Context, docID, localPath string) error
	SetCellWrap(ctx context.Context, docID, coordinate string) error
	InsertPageBreak(ctx context.Context, docID string, rowIndex int64) error
	UnmergeCell(ctx context.Context, docID, coordinate string) error
}

type SheetsClient struct {
	credentials *config.GoogleCredentialsProvider
	httpClient  *http.Client
}

func NewClient(credentials *config.GoogleCredentialsProvider) Client {
	return &SheetsClient{
		credentials: credentials,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// sheetsService resolve a credencial sob demanda e monta o serviço da API.
// O token expira, então nada é cacheado entre requisições.
func (c *SheetsClient) sheetsService(ctx context.Context) (*sheets.Service, error) {
	ts, err := c.credentials.TokenSource(ctx)
	if err != nil {
		return nil, err
	}
	return sheets.NewService(ctx, option.WithTokenSource(ts))
}

func (c *SheetsClient) driveService(ctx context.Context) (*drive.Service, error) {
	ts, err := c.credentials.TokenSource(ctx)
	if err != nil {
		return nil, err
	}
	return drive.NewService(ctx, option.WithTokenSource(ts))
}

// firstSheetID descobre o gid da primeira aba (o template usa uma aba só).
func (c *SheetsClient) firstSheetID(ctx context.Context, svc *sheets.Service, docID string) (int64, error) {
	spreadsheet, err := svc.Spreadsheets.Get(docID).Context(ctx).Do()
	if err != nil {
		return 0, err
	}
	if len(spreadsheet.Sheets) == 0 {
		return 0, fmt.Errorf("sheets: spreadsheet %s has no sheets", docID)
	}
	return spreadsheet.Sheets[0].Properties.SheetId, nil
}

func (c *SheetsClient) BatchWriteCells(ctx context.Context, docID string, updates []domain.CellUpdate) error {
	svc, err := c.sheetsService(ctx)
	if err != nil {
		return err
	}

	data := make([]*sheets.ValueRange, 0, len(updates))
	for _, u := range updates {
		data = append(data, &sheets.ValueRange{
			Range:  u.Range,
			Values: [][]interface{}{{u.Value}},
		})
	}

	_, err = svc.Spreadsheets.Values.BatchUpdate(docID, &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}).Context(ctx).Do()

	return err
}

// AppendRow acrescenta uma linha ao fim da primeira aba (log de coleta).
func (c *SheetsClient) AppendRow(ctx context.Context, docID string, row domain.SummaryRow) error {
	svc, err := c.sheetsService(ctx)
	if err != nil {
		return err
	}

	_, err = svc.Spreadsheets.Values.Append(docID, "A1", &sheets.ValueRange{
		Values: [][]interface{}{row},
	}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()

	return err
}

func (c *SheetsClient) RenameDocument(ctx context.Context, docID, title string) error {
	svc, err := c.driveService(ctx)
	if err != nil {
		return err
	}

	_, err = svc.Files.Update(docID, &drive.File{Name: title}).
		SupportsAllDrives(true).
		Context(ctx).
		Do()

	return err
}

// ExportAsPDF exporta o documento via files.export do Drive. Quando a API
// recusa, repete pela URL de export do docs.google.com com os parâmetros de
// impressão do template (A4, retrato, sem grade).
func (c *SheetsClient) ExportAsPDF(ctx context.Context, docID, localPath string) error {
	svc, err := c.driveService(ctx)
	if err != nil {
		return err
	}

	resp, err := svc.Files.Export(docID, "application/pdf").Context(ctx).Download()
	if err == nil {
		defer resp.Body.Close()
		return writeBody(localPath, resp.Body)
	}

	return c.exportViaURL(ctx, docID, localPath)
}

func (c *SheetsClient) exportViaURL(ctx context.Context, docID, localPath string) error {
	svc, err := c.sheetsService(ctx)
	if err != nil {
		return err
	}

	gid, err := c.firstSheetID(ctx, svc, docID)
	if err != nil {
		gid = 0
	}

	url := fmt.Sprintf(
		"https://docs.google.com/spreadsheets/d/%s/export?format=pdf"+
			"&gid=%d"+
			"&size=A4"+
			"&portrait=true"+
			"&scale=2"+
			"&top_margin=0.3"+
			"&bottom_margin=0.3"+
			"&left_margin=0.3"+
			"&right_margin=0.3"+
			"&sheetnames=false"+
			"&printtitle=false"+
			"&pagenumbers=false"+
			"&gridlines=false"+
			"&fzr=false",
		docID, gid,
	)

	ts, err := c.credentials.TokenSource(ctx)
	if err != nil {
		return err
	}
	token, err := ts.Token()
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sheets: pdf export failed with status %s", resp.Status)
	}

	return writeBody(localPath, resp.Body)
}

func writeBody(localPath string, body io.Reader) error {
	out, err := os.Create(localPath)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, body)
	return err
}
