package agent

import (
	"fmt"

	"github.com/proposta-ai/propgen/internal/template"
	"github.com/proposta-ai/propgen/prompts"
)

// sectorBase is the style-independent part of a sector profile. The catalog
// expands each base into one Config per template style.
type sectorBase struct {
	sector            Sector
	name              string
	expertise         []string
	commonServices    []string
	pricingModel      PricingModel
	proposalStructure []string
	keyTerms          map[string]string
}

var sectorBases = []sectorBase{
	{
		sector: SectorDesign,
		name:   "Estúdio de Design",
		expertise: []string{
			"Identidade visual", "Design de interfaces", "Design editorial",
			"Branding", "Sistemas de design",
		},
		commonServices: []string{
			"Criação de marca", "Redesign de site", "Material de lançamento",
		},
		pricingModel: PricingProjectBased,
		proposalStructure: []string{
			"Imersão e briefing", "Conceito e direção criativa",
			"Desenvolvimento das peças", "Refinamento com o cliente", "Entrega e manual de uso",
		},
		keyTerms: map[string]string{
			"identidade visual": "conjunto de elementos gráficos que representam a marca",
			"manual de marca":   "documento com as regras de aplicação da identidade",
		},
	},
	{
		sector: SectorArchitecture,
		name:   "Escritório de Arquitetura",
		expertise: []string{
			"Projeto residencial", "Projeto comercial", "Interiores",
			"Compatibilização de projetos", "Acompanhamento de obra",
		},
		commonServices: []string{
			"Projeto executivo", "Reforma de interiores", "Regularização",
		},
		pricingModel: PricingProjectPercentage,
		proposalStructure: []string{
			"Levantamento e programa de necessidades", "Estudo preliminar",
			"Anteprojeto", "Projeto executivo", "Acompanhamento de obra",
		},
		keyTerms: map[string]string{
			"anteprojeto":       "solução espacial consolidada antes do detalhamento",
			"projeto executivo": "desenhos completos para execução da obra",
		},
	},
	{
		sector: SectorMarketing,
		name:   "Agência de Marketing",
		expertise: []string{
			"Mídia paga", "SEO e conteúdo", "Redes sociais",
			"Automação de marketing", "Análise de dados",
		},
		commonServices: []string{
			"Gestão de tráfego", "Planejamento de conteúdo", "Lançamento de produto",
		},
		pricingModel: PricingMonthlyRetainer,
		proposalStructure: []string{
			"Diagnóstico e metas", "Estratégia de canais",
			"Produção e veiculação", "Otimização contínua", "Relatório de resultados",
		},
		keyTerms: map[string]string{
			"funil":     "jornada do público do primeiro contato à compra",
			"tráfego":   "volume de visitantes levados aos canais do cliente",
			"conversão": "percentual de visitantes que realizam a ação desejada",
		},
	},
	{
		sector: SectorDevelopment,
		name:   "Software House",
		expertise: []string{
			"Aplicações web", "APIs e integrações", "Aplicativos móveis",
			"Automação de processos", "Sustentação e evolução",
		},
		commonServices: []string{
			"Desenvolvimento de sistema sob medida", "Integração entre sistemas", "MVP",
		},
		pricingModel: PricingHourlyOrProject,
		proposalStructure: []string{
			"Descoberta e requisitos", "Arquitetura da solução",
			"Desenvolvimento iterativo", "Homologação", "Implantação e suporte",
		},
		keyTerms: map[string]string{
			"MVP":         "versão mínima do produto para validar a ideia",
			"homologação": "validação do sistema pelo cliente antes da entrada em produção",
		},
	},
	{
		sector: SectorConsulting,
		name:   "Consultoria",
		expertise: []string{
			"Diagnóstico organizacional", "Gestão de processos",
			"Planejamento estratégico", "Indicadores de desempenho", "Gestão de mudança",
		},
		commonServices: []string{
			"Diagnóstico executivo", "Desenho de processos", "Acompanhamento de metas",
		},
		pricingModel: PricingConsultationBased,
		proposalStructure: []string{
			"Diagnóstico", "Plano de ação",
			"Implantação assistida", "Medição de resultados", "Transferência de conhecimento",
		},
		keyTerms: map[string]string{
			"governança": "estrutura de papéis e rituais de acompanhamento",
			"indicador":  "métrica acordada para medir o resultado do trabalho",
		},
	},
	{
		sector: SectorPhotography,
		name:   "Estúdio de Fotografia",
		expertise: []string{
			"Fotografia de produto", "Ensaios corporativos", "Cobertura de eventos",
			"Direção de arte", "Tratamento de imagem",
		},
		commonServices: []string{
			"Ensaio de produto para e-commerce", "Retratos corporativos", "Cobertura de evento",
		},
		pricingModel: PricingSessionBased,
		proposalStructure: []string{
			"Briefing e referências", "Pré-produção",
			"Sessão fotográfica", "Seleção e tratamento", "Entrega em alta resolução",
		},
		keyTerms: map[string]string{
			"direitos de uso": "escopo de veiculação autorizado para as imagens",
			"tratamento":      "ajuste profissional de cor, luz e acabamento",
		},
	},
}

// styleProfiles tunes the voice of each template style.
var styleProfiles = map[template.Style]StyleProfile{
	template.StyleFlash: {
		IntroductionStyle:   "direto e enérgico",
		AboutUsFocus:        "agilidade e resultado",
		SpecialtiesApproach: "benefício imediato para o cliente",
		ProcessEmphasis:     "velocidade com qualidade",
		InvestmentStrategy:  "pacotes claros e acessíveis",
	},
	template.StylePrime: {
		IntroductionStyle:   "sofisticado e consultivo",
		AboutUsFocus:        "trajetória e profundidade",
		SpecialtiesApproach: "resultado mensurável e diferenciação",
		ProcessEmphasis:     "método e pontos de validação",
		InvestmentStrategy:  "valor entregue acima de preço",
	},
	template.StyleMinimal: {
		IntroductionStyle:   "simples e objetivo",
		AboutUsFocus:        "o essencial em poucas frases",
		SpecialtiesApproach: "clareza sem jargão",
		ProcessEmphasis:     "poucas etapas bem definidas",
		InvestmentStrategy:  "preço direto, sem letras miúdas",
	},
}

// BuiltinCatalog expands the sector bases into one Config per (sector, style)
// pair. The result is the default static registry content.
func BuiltinCatalog() []*Config {
	configs := make([]*Config, 0, len(sectorBases)*len(styleProfiles))
	for _, base := range sectorBases {
		for _, style := range template.Styles() {
			configs = append(configs, &Config{
				ID:                fmt.Sprintf("%s-%s", base.sector, style),
				Name:              base.name,
				Sector:            base.sector,
				Style:             style,
				SystemPrompt:      prompts.ForSector(string(base.sector)),
				Expertise:         base.expertise,
				CommonServices:    base.commonServices,
				PricingModel:      base.pricingModel,
				ProposalStructure: base.proposalStructure,
				KeyTerms:          base.keyTerms,
				Profile:           styleProfiles[style],
			})
		}
	}
	return configs
}

// DefaultRegistry returns the static registry loaded with the built-in
// catalog.
func DefaultRegistry() *StaticRegistry {
	return NewStaticRegistry(BuiltinCatalog())
}
