package i18n

var ptBRCatalog = &Catalog{
	locale: "pt-BR",
	messages: map[Code]string{
		CodeWorldInvalidWidth:  "A largura do mundo deve estar entre 1 e {{.Max}}, recebido {{.Value}}",
		CodeWorldInvalidHeight: "A altura do mundo deve estar entre 1 e {{.Max}}, recebido {{.Value}}",
		CodeWorldXOutOfRange:   "A coordenada x={{.Value}} está fora da grade (0..{{.Limit}})",
		CodeWorldYOutOfRange:   "A coordenada y={{.Value}} está fora da grade (0..{{.Limit}})",
		CodeCellNameMissing:    "O nome da célula é obrigatório",
		CodeCellNameBlank:      "O nome da célula não pode ficar em branco",
	},
}
