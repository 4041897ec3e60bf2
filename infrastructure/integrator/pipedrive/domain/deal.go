package domain

// Visibilidade "empresa inteira" no Pipedrive (1: dono, 3: empresa, 5: público)
const VisibleToCompany = 3

// DealPayload é o corpo de criação de um negócio no pipeline de orçamentos.
type DealPayload struct {
	Title      string `json:"title"`
	Value      int64  `json:"value"`
	Currency   string `json:"currency"`
	PipelineID int    `json:"pipeline_id"`
	StageID    int    `json:"stage_id"`
	UserID     int    `json:"user_id"`
	VisibleTo  int    `json:"visible_to"`
	OrgID      int    `json:"org_id,omitempty"`
	PersonID   int    `json:"person_id,omitempty"`
}

// OrganizationPayload é o corpo de criação de uma organização.
type OrganizationPayload struct {
	Name      string `json:"name"`
	VisibleTo int    `json:"visible_to"`
}

// PersonEmail segue o formato de e-mail estruturado da API de pessoas.
type PersonEmail struct {
	Value   string `json:"value"`
	Primary bool   `json:"primary"`
	Label   string `json:"label"`
}

// PersonPayload é o corpo de criação de uma pessoa de contato.
type PersonPayload struct {
	Name      string        `json:"name"`
	VisibleTo int           `json:"visible_to"`
	Email     []PersonEmail `json:"email,omitempty"`
}

// NotePayload é o corpo de criação de uma nota vinculada a um negócio.
type NotePayload struct {
	Content string `json:"content"`
	DealID  int    `json:"deal_id"`
}

type Pipeline struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active_flag"`
}

type Stage struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	OrderNr int    `json:"order_nr"`
	Active  bool   `json:"active_flag"`
}
