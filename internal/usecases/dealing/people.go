package dealing

import "strings"

// Tabela de roteamento comercial: cada 담당자 do template tem o seu usuário,
// etapa do funil e código de identificação do orçamento no Pipedrive.
type salesPerson struct {
	Name    string
	UserID  int
	StageID int
	Code    string
}

// A ordem importa: a resolução é por substring e devolve o primeiro match.
var salesPeople = []salesPerson{
	{Name: "이훈수", UserID: 23659842, StageID: 47, Code: "A"},
	{Name: "차재원", UserID: 23787233, StageID: 48, Code: "B"},
	{Name: "장진호", UserID: 23823247, StageID: 50, Code: "C"},
	{Name: "하철용", UserID: 23839131, StageID: 51, Code: "D"},
	{Name: "노재익", UserID: 23839109, StageID: 52, Code: "E"},
	{Name: "전준영", UserID: 23839164, StageID: 49, Code: "F"},
}

const (
	defaultStageID    = 47
	defaultPersonCode = "X"
)

func lookupSalesPerson(supplierPerson string) (salesPerson, bool) {
	for _, sp := range salesPeople {
		if strings.Contains(supplierPerson, sp.Name) {
			return sp, true
		}
	}
	return salesPerson{}, false
}

// UserIDFor devolve o usuário do Pipedrive para o 담당자 informado.
func UserIDFor(supplierPerson string) (int, bool) {
	sp, ok := lookupSalesPerson(supplierPerson)
	if !ok {
		return 0, false
	}
	return sp.UserID, true
}

// StageIDFor devolve a etapa do funil, com fallback para a etapa padrão.
func StageIDFor(supplierPerson string) int {
	if sp, ok := lookupSalesPerson(supplierPerson); ok {
		return sp.StageID
	}
	return defaultStageID
}

// PersonCode devolve o código usado na numeração dos orçamentos (DLPyymmdd-X-n).
func PersonCode(supplierPerson string) string {
	if sp, ok := lookupSalesPerson(supplierPerson); ok {
		return sp.Code
	}
	return defaultPersonCode
}
