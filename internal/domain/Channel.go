package domain

// ChannelType identifica o tipo de canal de vendas.
type ChannelType string

const (
	// Marketplace (seller central): o faturamento reportado inclui imposto,
	// que precisa ser removido para obter a receita líquida.
	Marketplace ChannelType = "marketplace"
	// Wholesale (vendor central): a receita reportada já é líquida.
	Wholesale ChannelType = "wholesale"
)

// Channel descreve as regras de negócio de um tipo de canal como dados:
// qual coluna de receita ler, quantas linhas de cabeçalho pular e se o
// valor bruto carrega imposto embutido.
type Channel struct {
	Type          ChannelType
	RevenueColumn string
	HeaderSkip    int
	TaxAdjusted   bool
}

var (
	// MarketplaceChannel lê apenas a coluna B2C "ordered product sales".
	// Colunas B2B presentes no export são intencionalmente ignoradas.
	MarketplaceChannel = Channel{
		Type:          Marketplace,
		RevenueColumn: "orderedproductsales",
		HeaderSkip:    0,
		TaxAdjusted:   true,
	}

	// WholesaleChannel: exports de vendor central trazem uma linha de banner
	// extra antes do cabeçalho.
	WholesaleChannel = Channel{
		Type:          Wholesale,
		RevenueColumn: "orderedrevenue",
		HeaderSkip:    1,
		TaxAdjusted:   false,
	}
)

// ChannelSource vincula um campo de formulário de upload a uma conta e ao
// seu tipo de canal. Adicionar um canal novo é uma mudança de dados.
type ChannelSource struct {
	FormField string
	Account   string
	Channel   Channel
}

// DefaultChannelSources são as contas aceitas no upload diário de vendas.
var DefaultChannelSources = []ChannelSource{
	{FormField: "aa_file", Account: "Nexlev", Channel: MarketplaceChannel},
	{FormField: "cr_file", Account: "Cambium Retail", Channel: MarketplaceChannel},
	{FormField: "vi_file", Account: "Viomi By Cambium", Channel: MarketplaceChannel},
	{FormField: "vc_file", Account: "Vendor Central", Channel: WholesaleChannel},
}
