package template

// The flash style is the fast, direct proposal profile: short sections, an
// introduction title locked to an exact width for the cover layout, and a
// compact plan table.
var flashContract = &Contract{
	Style:    StyleFlash,
	MinPlans: 1,
	MaxPlans: 3,
	Sections: map[Section]SectionSpec{
		SectionIntroduction: newSectionSpec(`
Escreva a introdução de uma proposta comercial para o cliente {clientName},
sobre o projeto "{projectName}". Setor: {sectorName}.
Descrição do projeto: {projectDescription}
O título deve ser impactante e direto, no tom de {introductionStyle}.`,
			`{"title": "...", "subtitle": "...", "description": "..."}`,
			map[string]FieldConstraint{
				"title":       {Limit: 60, Mode: ModeExact},
				"subtitle":    {Limit: 140, Mode: ModeMax},
				"description": {Limit: 400, Mode: ModeMax},
			},
			nil,
		),

		SectionAboutUs: newSectionSpec(`
Escreva a seção "Sobre nós" de uma proposta comercial.
Sobre a empresa: {companyInfo}
Setor: {sectorName}. Foco: {aboutUsFocus}.
Destaque credibilidade e resultados, sem clichês.`,
			`{"title": "...", "description": "..."}`,
			map[string]FieldConstraint{
				"title":       {Limit: 50, Mode: ModeMax},
				"description": {Limit: 600, Mode: ModeMax},
			},
			nil,
		),

		SectionTeam: newSectionSpec(`
Escreva a seção de equipe de uma proposta comercial do setor {sectorName}.
Sobre a empresa: {companyInfo}
Crie membros de equipe plausíveis para este tipo de projeto, com cargo
condizente com o setor.`,
			`{"title": "...", "description": "...", "members": [{"name": "...", "role": "..."}]}`,
			map[string]FieldConstraint{
				"title":       {Limit: 50, Mode: ModeMax},
				"description": {Limit: 300, Mode: ModeMax},
			},
			map[string]CollectionConstraint{
				"members": {Min: 2, Max: 6, Item: map[string]FieldConstraint{
					"name": {Limit: 40, Mode: ModeMax},
					"role": {Limit: 40, Mode: ModeMax},
				}},
			},
		),

		SectionSpecialties: newSectionSpec(`
Liste as especialidades relevantes para o projeto "{projectName}" do cliente
{clientName}, setor {sectorName}. Abordagem: {specialtiesApproach}.
Áreas de domínio da empresa: {expertise}
Cada especialidade deve conectar a competência ao problema do cliente.`,
			`{"title": "...", "topics": [{"title": "...", "description": "..."}]}`,
			map[string]FieldConstraint{
				"title": {Limit: 50, Mode: ModeMax},
			},
			map[string]CollectionConstraint{
				"topics": {Min: 3, Max: 6, Item: map[string]FieldConstraint{
					"title":       {Limit: 50, Mode: ModeMax},
					"description": {Limit: 120, Mode: ModeMax},
				}},
			},
		),

		SectionSteps: newSectionSpec(`
Descreva as etapas do processo de trabalho para o projeto "{projectName}",
setor {sectorName}. Ênfase: {processEmphasis}.
Estrutura usual deste tipo de proposta: {proposalStructure}
As etapas devem formar uma sequência lógica do kickoff à entrega.`,
			`{"title": "...", "topics": [{"title": "...", "description": "..."}]}`,
			map[string]FieldConstraint{
				"title": {Limit: 50, Mode: ModeMax},
			},
			map[string]CollectionConstraint{
				"topics": {Min: 3, Max: 6, Item: map[string]FieldConstraint{
					"title":       {Limit: 40, Mode: ModeMax},
					"description": {Limit: 240, Mode: ModeMax},
				}},
			},
		),

		SectionInvestment: newSectionSpec(`
Monte a seção de investimento da proposta para "{projectName}" com exatamente
{planCount} planos: {selectedPlans}. Setor: {sectorName}.
Estratégia de precificação: {investmentStrategy}. Modelo de cobrança: {pricingModel}.
Detalhes fornecidos pelo cliente: {planDetails}
Os preços devem ser valores inteiros em reais (sem centavos), coerentes entre
si e com o escopo. O campo "period" de cada plano deve ser "monthly",
"one-time" ou "yearly".`,
			`{"title": "...", "plans": [{"title": "...", "description": "...", "price": 3500, "period": "one-time", "includedItems": ["..."]}]}`,
			map[string]FieldConstraint{
				"title": {Limit: 60, Mode: ModeMax},
			},
			map[string]CollectionConstraint{
				"plans": {Min: 1, Max: 3,
					Item: map[string]FieldConstraint{
						"title":       {Limit: 30, Mode: ModeMax},
						"description": {Limit: 120, Mode: ModeMax},
					},
					ItemCollections: map[string]CollectionConstraint{
						"includedItems": {Min: 3, Max: 6, Element: &FieldConstraint{Limit: 60, Mode: ModeMax}},
					},
				},
			},
		),

		SectionTerms: newSectionSpec(`
Escreva os termos e condições da proposta para o projeto "{projectName}",
setor {sectorName}. Vocabulário do setor: {keyTerms}
Cubra prazo de validade, forma de pagamento, escopo e revisões.`,
			`{"items": [{"title": "...", "description": "..."}]}`,
			nil,
			map[string]CollectionConstraint{
				"items": {Min: 2, Max: 5, Item: map[string]FieldConstraint{
					"title":       {Limit: 40, Mode: ModeMax},
					"description": {Limit: 200, Mode: ModeMax},
				}},
			},
		),

		SectionFAQ: newSectionSpec(`
Escreva as perguntas frequentes da proposta para "{projectName}", cliente
{clientName}, setor {sectorName}.
Antecipe objeções reais: prazos, alterações, suporte, propriedade do material.`,
			`{"items": [{"question": "...", "answer": "..."}]}`,
			nil,
			map[string]CollectionConstraint{
				"items": {Min: 3, Max: 8, Item: map[string]FieldConstraint{
					"question": {Limit: 100, Mode: ModeMax},
					"answer":   {Limit: 300, Mode: ModeMax},
				}},
			},
		),

		SectionFooter: newSectionSpec(`
Escreva o rodapé da proposta para o cliente {clientName}.
Inclua uma chamada para ação curta e o prazo de validade da proposta.`,
			`{"callToAction": "...", "validity": "..."}`,
			map[string]FieldConstraint{
				"callToAction": {Limit: 80, Mode: ModeMax},
				"validity":     {Limit: 40, Mode: ModeMax},
			},
			nil,
		),
	},
}
