package reference

// Namespace prefixes of the enriched columns.
const (
	PrefixShareClass = "SR"
	PrefixCompany    = "MC"
)

// Stage names reported in results and logs.
const (
	StageShareClass = "share_class"
	StageISIN       = "isin"
	StageSymbol     = "symbol"
)

// ShareClassCopyColumns are copied from the security reference source as SR_*.
var ShareClassCopyColumns = []string{
	"CompanyId", "ShareClassId",
	"ISIN", "CUSIP", "Valoren",
	"ExchangeId", "CurrencyId", "MIC",
	"IPODate", "IPOOfferPrice", "IPOOfferPriceRange",
	"IsDepositaryReceipt", "DepositaryReceiptRatio",
	"SecurityType",
	"ShareClassDescription", "ShareClassStatus",
	"IsPrimaryShare", "IsDividendReinvest", "IsDirectInvest",
	"InvestmentId",
	"CommonShareSubType", "ExchangeSubMarketGlobalId",
	"ConversionRatio", "ActiveOrDelisted",
}

// CompanyCopyColumns are copied from the master company source as MC_*.
var CompanyCopyColumns = []string{
	"ISIN",
	"Identifier",
	"ACN", "ABN",
	"HomeMarket",
	"GICSSector", "GICSIndGrp",
	"ASXSector", "ASXSubSector",
	"FormerNames",
	"TradingStatus",
	"ListDate", "DelistDate", "DelistReason",
	"Address", "City", "State", "Postcode",
	"PhoneNumber", "FaxNumber",
	"WebAddress", "EmailAddress",
	"RegistryId", "Template", "ASX300",
}

// OutputColumns is the preferred output order. Columns missing from the merged
// schema are left out.
var OutputColumns = []string{
	// Core identifiers
	"Gcode",
	"SR_CompanyId", "SR_ShareClassId",
	"SR_ISIN", "SR_CUSIP", "SR_Valoren",
	"CompanyTicker", "SecurityTicker",
	"MC_Identifier",
	"MA_Identifier",

	// Company info (SIRCA)
	"FullCompanyName", "AbbrevCompanyName",
	"GICSIndustry",
	"SIRCAIndustryClassCode", "SIRCASectorCode",
	"EarliestListDate", "LatestDelistDate",
	"CompanyDelistReasonCode", "CompanyRelatedGCode",
	"CompanyDelistReasonComment",

	// Security info (SIRCA)
	"SeniorSecurity", "SecurityType",
	"AbreviatedSecurityDescription",
	"ListDate_YMD", "DelistDate_YMD",
	"ListDate", "DelistDate",
	"RecordCount",
	"AlteredLink",

	// Security info (security reference)
	"SR_ExchangeId", "SR_CurrencyId", "SR_MIC",
	"SR_SecurityType",
	"SR_ShareClassDescription", "SR_ShareClassStatus",
	"SR_IsPrimaryShare",
	"SR_IsDepositaryReceipt", "SR_DepositaryReceiptRatio",
	"SR_IPODate", "SR_IPOOfferPrice", "SR_IPOOfferPriceRange",
	"SR_IsDividendReinvest", "SR_IsDirectInvest",
	"SR_InvestmentId",
	"SR_CommonShareSubType", "SR_ExchangeSubMarketGlobalId",
	"SR_ConversionRatio", "SR_ActiveOrDelisted",

	// Company info (master company)
	"MC_ACN", "MC_ABN",
	"MC_HomeMarket",
	"MC_GICSSector", "MC_GICSIndGrp",
	"MC_ASXSector", "MC_ASXSubSector",
	"MC_FormerNames",
	"MC_TradingStatus",
	"MC_ListDate", "MC_DelistDate", "MC_DelistReason",
	"MC_Address", "MC_City", "MC_State", "MC_Postcode",
	"MC_PhoneNumber", "MC_FaxNumber",
	"MC_WebAddress", "MC_EmailAddress",
	"MC_RegistryId", "MC_Template", "MC_ASX300",

	// Traceability IDs
	"MS_CompanyID", "MS_SecurityID",
	"MS_CompanyID2", "MS_SecurityID2",
}

// ExcludedColumns are primary source columns never passed through.
var ExcludedColumns = []string{"join_key", "ListDate_DaysSince", "DelistDate_DaysSince"}

// Options selects the copy lists and output layout of a build.
type Options struct {
	ShareClassColumns []string
	CompanyColumns    []string
	OutputColumns     []string
	ExcludedColumns   []string
}

// DefaultOptions returns the standard master reference layout.
func DefaultOptions() Options {
	return Options{
		ShareClassColumns: ShareClassCopyColumns,
		CompanyColumns:    CompanyCopyColumns,
		OutputColumns:     OutputColumns,
		ExcludedColumns:   ExcludedColumns,
	}
}
