package ingesting

import "strings"

// Colunas lógicas esperadas no arquivo. Os nomes do cabeçalho são comparados
// em minúsculas, sem espaços nas bordas e aceitando sinônimos comuns de
// exportações de plataformas de anúncios.
const (
	columnCampaign    = "campaign"
	columnDate        = "date"
	columnImpressions = "impressions"
	columnClicks      = "clicks"
	columnConversions = "conversions"
	columnCost        = "cost"
)

var requiredColumns = []string{
	columnCampaign,
	columnDate,
	columnImpressions,
	columnClicks,
	columnConversions,
	columnCost,
}

var columnSynonyms = map[string]string{
	"campaign":      columnCampaign,
	"campaign name": columnCampaign,
	"campaign_name": columnCampaign,

	"date": columnDate,
	"day":  columnDate,

	"impressions": columnImpressions,
	"impression":  columnImpressions,
	"imps":        columnImpressions,

	"clicks": columnClicks,
	"click":  columnClicks,

	"conversions": columnConversions,
	"conversion":  columnConversions,
	"conv":        columnConversions,

	"cost":         columnCost,
	"spend":        columnCost,
	"amount spent": columnCost,
	"amount_spent": columnCost,
}

// Formatos de data aceitos. A inferência permissiva do formato (como um
// parser "lenient" faria) é evitada de propósito: ordens ambíguas de
// dia/mês seriam lidas silenciosamente errado.
var acceptedDateFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"20060102",
}

// mapColumns resolve o cabeçalho do CSV para os campos lógicos.
// Retorna *SchemaError listando todas as colunas obrigatórias ausentes.
func mapColumns(header []string) (map[string]int, error) {
	index := make(map[string]int, len(requiredColumns))

	for i, name := range header {
		// Remove o BOM que planilhas costumam inserir no primeiro cabeçalho
		normalized := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if logical, ok := columnSynonyms[normalized]; ok {
			// A primeira ocorrência vence quando há colunas duplicadas
			if _, exists := index[logical]; !exists {
				index[logical] = i
			}
		}
	}

	missing := make([]string, 0)
	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return nil, &SchemaError{MissingColumns: missing}
	}

	return index, nil
}
