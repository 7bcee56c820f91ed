package template

// The prime style is the premium profile: longer narrative sections, a
// dedicated team block, and room for richer plan descriptions.
var primeContract = &Contract{
	Style:    StylePrime,
	MinPlans: 1,
	MaxPlans: 3,
	Sections: map[Section]SectionSpec{
		SectionIntroduction: newSectionSpec(`
Escreva a introdução de uma proposta comercial premium para o cliente
{clientName}, projeto "{projectName}", setor {sectorName}.
Descrição do projeto: {projectDescription}
Tom: {introductionStyle}. Sofisticado, consultivo, sem exageros.`,
			`{"title": "...", "subtitle": "...", "description": "..."}`,
			map[string]FieldConstraint{
				"title":       {Limit: 80, Mode: ModeMax},
				"subtitle":    {Limit: 160, Mode: ModeMax},
				"description": {Limit: 600, Mode: ModeMax},
			},
			nil,
		),

		SectionAboutUs: newSectionSpec(`
Escreva a seção "Sobre nós" de uma proposta premium.
Sobre a empresa: {companyInfo}
Setor: {sectorName}. Foco: {aboutUsFocus}.
Posicione a empresa como parceira estratégica, com histórico e método.`,
			`{"title": "...", "description": "..."}`,
			map[string]FieldConstraint{
				"title":       {Limit: 60, Mode: ModeMax},
				"description": {Limit: 900, Mode: ModeMax},
			},
			nil,
		),

		SectionTeam: newSectionSpec(`
Apresente a equipe responsável pelo projeto "{projectName}", setor
{sectorName}. Sobre a empresa: {companyInfo}
Cada membro deve ter um cargo específico e crível.`,
			`{"title": "...", "description": "...", "members": [{"name": "...", "role": "..."}]}`,
			map[string]FieldConstraint{
				"title":       {Limit: 60, Mode: ModeMax},
				"description": {Limit: 400, Mode: ModeMax},
			},
			map[string]CollectionConstraint{
				"members": {Min: 2, Max: 8, Item: map[string]FieldConstraint{
					"name": {Limit: 40, Mode: ModeMax},
					"role": {Limit: 50, Mode: ModeMax},
				}},
			},
		),

		SectionSpecialties: newSectionSpec(`
Liste as especialidades da empresa relevantes para "{projectName}", cliente
{clientName}, setor {sectorName}. Abordagem: {specialtiesApproach}.
Áreas de domínio: {expertise}
Conecte cada especialidade a um resultado mensurável para o cliente.`,
			`{"title": "...", "topics": [{"title": "...", "description": "..."}]}`,
			map[string]FieldConstraint{
				"title": {Limit: 60, Mode: ModeMax},
			},
			map[string]CollectionConstraint{
				"topics": {Min: 4, Max: 8, Item: map[string]FieldConstraint{
					"title":       {Limit: 60, Mode: ModeMax},
					"description": {Limit: 180, Mode: ModeMax},
				}},
			},
		),

		SectionSteps: newSectionSpec(`
Descreva o processo de trabalho para "{projectName}", setor {sectorName}.
Ênfase: {processEmphasis}. Estrutura usual: {proposalStructure}
Detalhe entregáveis e pontos de validação com o cliente em cada etapa.`,
			`{"title": "...", "topics": [{"title": "...", "description": "..."}]}`,
			map[string]FieldConstraint{
				"title": {Limit: 60, Mode: ModeMax},
			},
			map[string]CollectionConstraint{
				"topics": {Min: 4, Max: 8, Item: map[string]FieldConstraint{
					"title":       {Limit: 50, Mode: ModeMax},
					"description": {Limit: 320, Mode: ModeMax},
				}},
			},
		),

		SectionInvestment: newSectionSpec(`
Monte a seção de investimento da proposta premium para "{projectName}" com
exatamente {planCount} planos: {selectedPlans}. Setor: {sectorName}.
Estratégia: {investmentStrategy}. Modelo de cobrança: {pricingModel}.
Detalhes do cliente: {planDetails}
Preços inteiros em reais, sem centavos, escalonados por valor entregue.
O campo "period" deve ser "monthly", "one-time" ou "yearly".`,
			`{"title": "...", "plans": [{"title": "...", "description": "...", "price": 12000, "period": "one-time", "includedItems": ["..."]}]}`,
			map[string]FieldConstraint{
				"title": {Limit: 80, Mode: ModeMax},
			},
			map[string]CollectionConstraint{
				"plans": {Min: 1, Max: 3,
					Item: map[string]FieldConstraint{
						"title":       {Limit: 40, Mode: ModeMax},
						"description": {Limit: 180, Mode: ModeMax},
					},
					ItemCollections: map[string]CollectionConstraint{
						"includedItems": {Min: 4, Max: 8, Element: &FieldConstraint{Limit: 70, Mode: ModeMax}},
					},
				},
			},
		),

		SectionTerms: newSectionSpec(`
Escreva os termos e condições da proposta premium para "{projectName}",
setor {sectorName}. Vocabulário do setor: {keyTerms}
Cubra validade, pagamento, escopo, revisões, confidencialidade.`,
			`{"items": [{"title": "...", "description": "..."}]}`,
			nil,
			map[string]CollectionConstraint{
				"items": {Min: 3, Max: 6, Item: map[string]FieldConstraint{
					"title":       {Limit: 50, Mode: ModeMax},
					"description": {Limit: 300, Mode: ModeMax},
				}},
			},
		),

		SectionFAQ: newSectionSpec(`
Escreva as perguntas frequentes da proposta premium para "{projectName}",
cliente {clientName}, setor {sectorName}.
Responda com profundidade, antecipando dúvidas de decisores.`,
			`{"items": [{"question": "...", "answer": "..."}]}`,
			nil,
			map[string]CollectionConstraint{
				"items": {Min: 4, Max: 10, Item: map[string]FieldConstraint{
					"question": {Limit: 120, Mode: ModeMax},
					"answer":   {Limit: 400, Mode: ModeMax},
				}},
			},
		),

		SectionFooter: newSectionSpec(`
Escreva o rodapé da proposta premium para o cliente {clientName}.
Chamada para ação consultiva e prazo de validade.`,
			`{"callToAction": "...", "validity": "..."}`,
			map[string]FieldConstraint{
				"callToAction": {Limit: 100, Mode: ModeMax},
				"validity":     {Limit: 40, Mode: ModeMax},
			},
			nil,
		),
	},
}
