package template

// The minimal style is the compact profile: no team section, tight budgets,
// meant for quick one-page proposals.
var minimalContract = &Contract{
	Style:    StyleMinimal,
	MinPlans: 1,
	MaxPlans: 3,
	Sections: map[Section]SectionSpec{
		SectionIntroduction: newSectionSpec(`
Escreva uma introdução curta e direta de proposta comercial para o cliente
{clientName}, projeto "{projectName}", setor {sectorName}.
Descrição: {projectDescription}`,
			`{"title": "...", "subtitle": "...", "description": "..."}`,
			map[string]FieldConstraint{
				"title":       {Limit: 50, Mode: ModeMax},
				"subtitle":    {Limit: 100, Mode: ModeMax},
				"description": {Limit: 240, Mode: ModeMax},
			},
			nil,
		),

		SectionAboutUs: newSectionSpec(`
Escreva uma seção "Sobre nós" enxuta.
Sobre a empresa: {companyInfo}
Setor: {sectorName}. Duas ou três frases, sem rodeios.`,
			`{"title": "...", "description": "..."}`,
			map[string]FieldConstraint{
				"title":       {Limit: 40, Mode: ModeMax},
				"description": {Limit: 300, Mode: ModeMax},
			},
			nil,
		),

		SectionSpecialties: newSectionSpec(`
Liste as especialidades essenciais para "{projectName}", setor {sectorName}.
Áreas de domínio: {expertise}`,
			`{"title": "...", "topics": [{"title": "...", "description": "..."}]}`,
			map[string]FieldConstraint{
				"title": {Limit: 40, Mode: ModeMax},
			},
			map[string]CollectionConstraint{
				"topics": {Min: 3, Max: 4, Item: map[string]FieldConstraint{
					"title":       {Limit: 40, Mode: ModeMax},
					"description": {Limit: 90, Mode: ModeMax},
				}},
			},
		),

		SectionSteps: newSectionSpec(`
Descreva as etapas do trabalho para "{projectName}", setor {sectorName},
em poucas palavras por etapa. Estrutura usual: {proposalStructure}`,
			`{"title": "...", "topics": [{"title": "...", "description": "..."}]}`,
			map[string]FieldConstraint{
				"title": {Limit: 40, Mode: ModeMax},
			},
			map[string]CollectionConstraint{
				"topics": {Min: 3, Max: 5, Item: map[string]FieldConstraint{
					"title":       {Limit: 30, Mode: ModeMax},
					"description": {Limit: 140, Mode: ModeMax},
				}},
			},
		),

		SectionInvestment: newSectionSpec(`
Monte a seção de investimento para "{projectName}" com exatamente {planCount}
planos: {selectedPlans}. Modelo de cobrança: {pricingModel}.
Detalhes: {planDetails}
Preços inteiros em reais, sem centavos. O campo "period" deve ser "monthly",
"one-time" ou "yearly".`,
			`{"title": "...", "plans": [{"title": "...", "description": "...", "price": 1800, "period": "one-time", "includedItems": ["..."]}]}`,
			map[string]FieldConstraint{
				"title": {Limit: 50, Mode: ModeMax},
			},
			map[string]CollectionConstraint{
				"plans": {Min: 1, Max: 3,
					Item: map[string]FieldConstraint{
						"title":       {Limit: 25, Mode: ModeMax},
						"description": {Limit: 90, Mode: ModeMax},
					},
					ItemCollections: map[string]CollectionConstraint{
						"includedItems": {Min: 3, Max: 5, Element: &FieldConstraint{Limit: 50, Mode: ModeMax}},
					},
				},
			},
		),

		SectionTerms: newSectionSpec(`
Escreva termos e condições curtos para "{projectName}", setor {sectorName}.
Só o essencial: validade, pagamento, escopo.`,
			`{"items": [{"title": "...", "description": "..."}]}`,
			nil,
			map[string]CollectionConstraint{
				"items": {Min: 2, Max: 4, Item: map[string]FieldConstraint{
					"title":       {Limit: 35, Mode: ModeMax},
					"description": {Limit: 150, Mode: ModeMax},
				}},
			},
		),

		SectionFAQ: newSectionSpec(`
Escreva perguntas frequentes curtas para a proposta de "{projectName}",
setor {sectorName}.`,
			`{"items": [{"question": "...", "answer": "..."}]}`,
			nil,
			map[string]CollectionConstraint{
				"items": {Min: 3, Max: 5, Item: map[string]FieldConstraint{
					"question": {Limit: 80, Mode: ModeMax},
					"answer":   {Limit: 200, Mode: ModeMax},
				}},
			},
		),

		SectionFooter: newSectionSpec(`
Escreva o rodapé da proposta para {clientName}: chamada para ação de uma
frase e validade.`,
			`{"callToAction": "...", "validity": "..."}`,
			map[string]FieldConstraint{
				"callToAction": {Limit: 60, Mode: ModeMax},
				"validity":     {Limit: 30, Mode: ModeMax},
			},
			nil,
		),
	},
}
